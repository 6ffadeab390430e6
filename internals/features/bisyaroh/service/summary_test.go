package service

import (
	"testing"
	"time"

	absensi "alhikam_backend/internals/features/absensi/model"
	absensisvc "alhikam_backend/internals/features/absensi/service"
	"alhikam_backend/internals/helpers/dbtime"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourceCountAdd(t *testing.T) {
	t.Parallel()

	var c SourceCount
	c.add(absensi.KehadiranHadir)
	c.add(absensi.KehadiranHadir)
	c.add(absensi.KehadiranSakit)
	c.add(absensi.KehadiranIzin)
	c.add(absensi.KehadiranAlpha)
	c.add(absensi.Kehadiran("X")) // tidak dikenal: diabaikan

	assert.Equal(t, 2, c.Hadir)
	assert.Equal(t, 1, c.Sakit)
	assert.Equal(t, 1, c.Izin)
	assert.Equal(t, 1, c.Alpha)
	assert.Equal(t, 5, c.Total)
}

func TestPersenKehadiran(t *testing.T) {
	t.Parallel()

	t.Run("18 dari 20 sesi = 90 persen", func(t *testing.T) {
		sum := MonthlySummary{
			Mengajar: SourceCount{Hadir: 15, Alpha: 1, Total: 16},
			Kegiatan: SourceCount{Hadir: 2, Total: 2},
			Rapat:    SourceCount{Hadir: 1, Sakit: 1, Total: 2},
		}
		sum.hitungTotal()

		assert.Equal(t, 18, sum.TotalHadir)
		assert.Equal(t, 20, sum.TotalSesi)
		assert.InDelta(t, 90.0, sum.PersenKehadiran, 0.001)
	})

	t.Run("tanpa sesi nol persen bukan NaN", func(t *testing.T) {
		sum := MonthlySummary{}
		sum.hitungTotal()
		assert.Equal(t, 0.0, sum.PersenKehadiran)
	})
}

func TestAlphaTanpaRecord(t *testing.T) {
	t.Parallel()

	loc := dbtime.Location()
	hariIni := time.Date(2026, 8, 28, 0, 0, 0, 0, loc)
	now := time.Date(2026, 8, 28, 10, 0, 0, 0, loc)

	t.Run("sesi terlewat hari ini masih bisa diabsen, belum Alpha", func(t *testing.T) {
		// jam 07:00-08:00, sekarang jam 10:00: statusnya terlewat tapi
		// record hari yang sama masih boleh disimpan
		status, err := absensisvc.ResolveSesi(hariIni, "07:00", "08:00", false, now)
		require.NoError(t, err)
		require.Equal(t, absensi.SesiTerlewat, status)
		require.True(t, status.BolehAbsen())

		assert.False(t, alphaTanpaRecord(status, hariIni, now))
	})

	t.Run("sesi terlewat kemarin dihitung Alpha", func(t *testing.T) {
		kemarin := hariIni.AddDate(0, 0, -1)
		status, err := absensisvc.ResolveSesi(kemarin, "07:00", "08:00", false, now)
		require.NoError(t, err)
		require.Equal(t, absensi.SesiTerlewat, status)

		assert.True(t, alphaTanpaRecord(status, kemarin, now))
	})

	t.Run("sesi berlangsung atau belum mulai tidak pernah Alpha", func(t *testing.T) {
		assert.False(t, alphaTanpaRecord(absensi.SesiBerlangsung, hariIni.AddDate(0, 0, -1), now))
		assert.False(t, alphaTanpaRecord(absensi.SesiBelumMulai, hariIni, now))
	})
}
