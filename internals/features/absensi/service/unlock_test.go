package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEditable(t *testing.T) {
	t.Parallel()

	now := jam(t, "2026-08-20", "10:00")

	t.Run("hari yang sama selalu boleh", func(t *testing.T) {
		sameDay := tgl(t, "2026-08-20")
		assert.True(t, IsEditable(sameDay, now, false))
		assert.True(t, IsEditable(sameDay, now, true))
	})

	t.Run("hari lain butuh unlock", func(t *testing.T) {
		kemarin := tgl(t, "2026-08-19")
		assert.False(t, IsEditable(kemarin, now, false))
		assert.True(t, IsEditable(kemarin, now, true))
	})

	t.Run("bulan lalu butuh unlock", func(t *testing.T) {
		lama := tgl(t, "2026-07-01")
		assert.False(t, IsEditable(lama, now, false))
		assert.True(t, IsEditable(lama, now, true))
	})

	t.Run("jam berbeda di hari sama tetap sama hari", func(t *testing.T) {
		malam := jam(t, "2026-08-20", "23:59")
		assert.True(t, IsEditable(malam, now, false))
	})
}
