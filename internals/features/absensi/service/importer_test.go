package service

import (
	"testing"

	"alhikam_backend/internals/features/absensi/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPilihPrioritas(t *testing.T) {
	t.Parallel()

	t.Run("status lebih parah menang", func(t *testing.T) {
		status, _, changed := PilihPrioritas(model.KehadiranIzin, model.KehadiranAlpha, "", "")
		assert.Equal(t, model.KehadiranAlpha, status)
		assert.True(t, changed)

		status, _, changed = PilihPrioritas(model.KehadiranSakit, model.KehadiranAlpha, "", "")
		assert.Equal(t, model.KehadiranAlpha, status)
		assert.True(t, changed)
	})

	t.Run("tidak pernah turun", func(t *testing.T) {
		status, _, changed := PilihPrioritas(model.KehadiranAlpha, model.KehadiranIzin, "", "")
		assert.Equal(t, model.KehadiranAlpha, status)
		assert.False(t, changed)

		status, _, changed = PilihPrioritas(model.KehadiranSakit, model.KehadiranHadir, "", "")
		assert.Equal(t, model.KehadiranSakit, status)
		assert.False(t, changed)
	})

	t.Run("status sama tidak berubah", func(t *testing.T) {
		status, ket, changed := PilihPrioritas(model.KehadiranSakit, model.KehadiranSakit, "demam", "demam")
		assert.Equal(t, model.KehadiranSakit, status)
		assert.Equal(t, "demam", ket)
		assert.False(t, changed)
	})

	t.Run("keterangan masuk menang walau status tidak naik", func(t *testing.T) {
		status, ket, changed := PilihPrioritas(model.KehadiranAlpha, model.KehadiranIzin, "", "izin acara keluarga")
		assert.Equal(t, model.KehadiranAlpha, status)
		assert.Equal(t, "izin acara keluarga", ket)
		assert.True(t, changed)
	})

	t.Run("keterangan kosong tidak menimpa", func(t *testing.T) {
		_, ket, changed := PilihPrioritas(model.KehadiranSakit, model.KehadiranSakit, "demam", "  ")
		assert.Equal(t, "demam", ket)
		assert.False(t, changed)
	})
}

func TestPrioritasASIH(t *testing.T) {
	t.Parallel()

	// urutan keparahan: A > S > I > H
	assert.Greater(t, model.KehadiranAlpha.Priority(), model.KehadiranSakit.Priority())
	assert.Greater(t, model.KehadiranSakit.Priority(), model.KehadiranIzin.Priority())
	assert.Greater(t, model.KehadiranIzin.Priority(), model.KehadiranHadir.Priority())
}

func TestParseStatusImport(t *testing.T) {
	t.Parallel()

	cases := []struct {
		raw  string
		want model.Kehadiran
		ok   bool
	}{
		{"HADIR", model.KehadiranHadir, true},
		{"hadir", model.KehadiranHadir, true},
		{"H", model.KehadiranHadir, true},
		{"SAKIT", model.KehadiranSakit, true},
		{"IZIN", model.KehadiranIzin, true},
		{"IJIN", model.KehadiranIzin, true},
		{"ALPA", model.KehadiranAlpha, true},
		{"ALPHA", model.KehadiranAlpha, true},
		{"ALFA", model.KehadiranAlpha, true},
		{" sakit ", model.KehadiranSakit, true},
		{"BOLOS", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.raw, func(t *testing.T) {
			got, ok := parseStatusImport(tc.raw)
			assert.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}

func TestParseTanggalImport(t *testing.T) {
	t.Parallel()

	t.Run("format iso", func(t *testing.T) {
		got, err := parseTanggalImport("2026-08-10")
		require.NoError(t, err)
		assert.Equal(t, "2026-08-10", got.Format("2006-01-02"))
	})

	t.Run("format indonesia", func(t *testing.T) {
		got, err := parseTanggalImport("10/08/2026")
		require.NoError(t, err)
		assert.Equal(t, "2026-08-10", got.Format("2006-01-02"))
	})

	t.Run("tanpa leading zero", func(t *testing.T) {
		got, err := parseTanggalImport("5/8/2026")
		require.NoError(t, err)
		assert.Equal(t, "2026-08-05", got.Format("2006-01-02"))
	})

	t.Run("rusak error", func(t *testing.T) {
		_, err := parseTanggalImport("kemarin")
		require.Error(t, err)
	})
}
