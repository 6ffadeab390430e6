package service

import (
	"errors"
	"testing"
	"time"

	"alhikam_backend/internals/features/absensi/model"
	"alhikam_backend/internals/helpers/dbtime"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tgl(t *testing.T, value string) time.Time {
	t.Helper()
	out, err := time.ParseInLocation("2006-01-02", value, dbtime.Location())
	require.NoError(t, err)
	return out
}

func jam(t *testing.T, tanggal, hhmm string) time.Time {
	t.Helper()
	out, err := time.ParseInLocation("2006-01-02 15:04", tanggal+" "+hhmm, dbtime.Location())
	require.NoError(t, err)
	return out
}

func TestResolveSesi(t *testing.T) {
	t.Parallel()
	tanggal := tgl(t, "2026-08-10")

	t.Run("record menang atas waktu", func(t *testing.T) {
		for _, now := range []time.Time{
			jam(t, "2026-08-10", "06:00"),
			jam(t, "2026-08-10", "07:30"),
			jam(t, "2026-08-20", "07:30"),
		} {
			got, err := ResolveSesi(tanggal, "07:00", "08:30", true, now)
			require.NoError(t, err)
			assert.Equal(t, model.SesiTercatat, got)
		}
	})

	t.Run("sebelum jam mulai", func(t *testing.T) {
		got, err := ResolveSesi(tanggal, "07:00", "08:30", false, jam(t, "2026-08-10", "06:59"))
		require.NoError(t, err)
		assert.Equal(t, model.SesiBelumMulai, got)
		assert.False(t, got.BolehAbsen())
	})

	t.Run("tepat jam mulai sudah berlangsung", func(t *testing.T) {
		got, err := ResolveSesi(tanggal, "07:00", "08:30", false, jam(t, "2026-08-10", "07:00"))
		require.NoError(t, err)
		assert.Equal(t, model.SesiBerlangsung, got)
		assert.True(t, got.BolehAbsen())
	})

	t.Run("lewat jam selesai jadi terlewat tapi tetap bisa absen", func(t *testing.T) {
		got, err := ResolveSesi(tanggal, "07:00", "08:30", false, jam(t, "2026-08-10", "08:31"))
		require.NoError(t, err)
		assert.Equal(t, model.SesiTerlewat, got)
		assert.True(t, got.BolehAbsen())
	})

	t.Run("hari berikutnya terlewat", func(t *testing.T) {
		got, err := ResolveSesi(tanggal, "07:00", "08:30", false, jam(t, "2026-08-11", "07:30"))
		require.NoError(t, err)
		assert.Equal(t, model.SesiTerlewat, got)
	})

	t.Run("jam rusak dilaporkan sebagai error data", func(t *testing.T) {
		for _, bad := range [][2]string{
			{"25:99", "08:30"},
			{"07:00", "banyak"},
			{"", "08:30"},
		} {
			_, err := ResolveSesi(tanggal, bad[0], bad[1], false, jam(t, "2026-08-10", "07:30"))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrData))
		}
	})

	t.Run("jam selesai sebelum jam mulai error data", func(t *testing.T) {
		_, err := ResolveSesi(tanggal, "08:30", "07:00", false, jam(t, "2026-08-10", "07:30"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrData))
	})
}

func TestResolveSesiRange(t *testing.T) {
	t.Parallel()
	mulai := jam(t, "2026-08-10", "08:00")
	berakhir := jam(t, "2026-08-12", "15:00")

	t.Run("record menang", func(t *testing.T) {
		got := ResolveSesiRange(mulai, &berakhir, true, jam(t, "2026-08-01", "09:00"))
		assert.Equal(t, model.SesiTercatat, got)
	})

	t.Run("multi hari masih berlangsung di hari kedua", func(t *testing.T) {
		got := ResolveSesiRange(mulai, &berakhir, false, jam(t, "2026-08-11", "10:00"))
		assert.Equal(t, model.SesiBerlangsung, got)
	})

	t.Run("lewat waktu berakhir terlewat", func(t *testing.T) {
		got := ResolveSesiRange(mulai, &berakhir, false, jam(t, "2026-08-12", "15:01"))
		assert.Equal(t, model.SesiTerlewat, got)
	})

	t.Run("tanpa waktu berakhir dianggap selesai di akhir hari", func(t *testing.T) {
		got := ResolveSesiRange(mulai, nil, false, jam(t, "2026-08-10", "23:00"))
		assert.Equal(t, model.SesiBerlangsung, got)

		got = ResolveSesiRange(mulai, nil, false, jam(t, "2026-08-11", "00:01"))
		assert.Equal(t, model.SesiTerlewat, got)
	})
}

func TestSesiStatusLegacy(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "belum_mulai", model.SesiBelumMulai.Legacy())
	assert.Equal(t, "sedang_berlangsung", model.SesiBerlangsung.Legacy())
	assert.Equal(t, "terlewat", model.SesiTerlewat.Legacy())
	assert.Equal(t, "sudah_absen", model.SesiTercatat.Legacy())
}
