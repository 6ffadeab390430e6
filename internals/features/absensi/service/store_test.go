package service

import (
	"testing"
	"time"

	"alhikam_backend/internals/features/absensi/model"
	"alhikam_backend/internals/helpers/dbtime"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergePendamping(t *testing.T) {
	t.Parallel()

	now := dbtime.Now()
	guruA := uuid.New()
	guruB := uuid.New()
	lalu := now.Add(-2 * time.Hour)

	t.Run("batch PJ tidak menimpa absen mandiri", func(t *testing.T) {
		existing := []model.PendampingAbsen{
			{GuruID: guruA, Status: model.KehadiranHadir, SelfAttended: true, AttendedAt: &lalu},
		}
		incoming := []PendampingEntri{
			{GuruID: guruA, Status: model.KehadiranAlpha}, // PJ mengira alpha
			{GuruID: guruB, Status: model.KehadiranHadir},
		}

		out := mergePendamping(existing, incoming, now)
		require.Len(t, out, 2)

		var entryA *model.PendampingAbsen
		for i := range out {
			if out[i].GuruID == guruA {
				entryA = &out[i]
			}
		}
		require.NotNil(t, entryA)
		assert.Equal(t, model.KehadiranHadir, entryA.Status)
		assert.True(t, entryA.SelfAttended)
		assert.Equal(t, &lalu, entryA.AttendedAt)
	})

	t.Run("absen mandiri di luar batch tetap ikut", func(t *testing.T) {
		existing := []model.PendampingAbsen{
			{GuruID: guruA, Status: model.KehadiranHadir, SelfAttended: true},
		}
		incoming := []PendampingEntri{
			{GuruID: guruB, Status: model.KehadiranSakit, Keterangan: "demam"},
		}

		out := mergePendamping(existing, incoming, now)
		require.Len(t, out, 2)
	})

	t.Run("entry bukan mandiri ditimpa batch", func(t *testing.T) {
		existing := []model.PendampingAbsen{
			{GuruID: guruA, Status: model.KehadiranHadir, SelfAttended: false},
		}
		incoming := []PendampingEntri{
			{GuruID: guruA, Status: model.KehadiranIzin, Keterangan: "tugas luar"},
		}

		out := mergePendamping(existing, incoming, now)
		require.Len(t, out, 1)
		assert.Equal(t, model.KehadiranIzin, out[0].Status)
		assert.Equal(t, "tugas luar", out[0].Keterangan)
		assert.False(t, out[0].SelfAttended)
	})

	t.Run("batch kosong menyisakan hanya yang mandiri", func(t *testing.T) {
		existing := []model.PendampingAbsen{
			{GuruID: guruA, Status: model.KehadiranHadir, SelfAttended: true},
			{GuruID: guruB, Status: model.KehadiranAlpha, SelfAttended: false},
		}
		out := mergePendamping(existing, nil, now)
		require.Len(t, out, 1)
		assert.Equal(t, guruA, out[0].GuruID)
	})
}

func TestMergePeserta(t *testing.T) {
	t.Parallel()

	now := dbtime.Now()
	guruA := uuid.New()
	guruB := uuid.New()

	existing := []model.PesertaAbsen{
		{GuruID: guruA, Status: model.KehadiranHadir, SelfAttended: true},
	}
	incoming := []PesertaEntri{
		{GuruID: guruA, Status: model.KehadiranAlpha},
		{GuruID: guruB, Status: model.KehadiranHadir},
	}

	out := mergePeserta(existing, incoming, now)
	require.Len(t, out, 2)
	for _, e := range out {
		if e.GuruID == guruA {
			assert.Equal(t, model.KehadiranHadir, e.Status, "absen mandiri peserta tidak boleh ditimpa")
			assert.True(t, e.SelfAttended)
		}
	}
}

func TestMapDupErr(t *testing.T) {
	t.Parallel()

	assert.NoError(t, mapDupErr(nil))

	err := mapDupErr(assert.AnError)
	assert.Equal(t, assert.AnError, err)
}
