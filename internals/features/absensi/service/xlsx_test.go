package service

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func buatXLSX(t *testing.T, rows [][]string) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		for j, cell := range row {
			ref, err := excelize.CoordinatesToCellName(j+1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, ref, cell))
		}
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestParseXLSXAbsensi(t *testing.T) {
	t.Parallel()

	t.Run("header dilewati dan baris terbaca", func(t *testing.T) {
		buf := buatXLSX(t, [][]string{
			{"Tanggal", "Nama", "Kelas", "Status", "Keterangan"},
			{"2026-08-10", "Ahmad Fauzi", "X-A", "SAKIT", "demam"},
			{"2026-08-10", "Siti Aminah", "X-A", "IZIN", ""},
			{"2026-08-11", "Ahmad Fauzi", "X-A", "HADIR", ""},
		})

		rows, err := ParseXLSXAbsensi(buf)
		require.NoError(t, err)
		require.Len(t, rows, 3)
		assert.Equal(t, "Ahmad Fauzi", rows[0].Nama)
		assert.Equal(t, "SAKIT", rows[0].Status)
		assert.Equal(t, "demam", rows[0].Keterangan)
		assert.Equal(t, "X-A", rows[1].Kelas)
	})

	t.Run("tanpa header juga jalan", func(t *testing.T) {
		buf := buatXLSX(t, [][]string{
			{"2026-08-10", "Ahmad Fauzi", "X-A", "ALPA", ""},
		})

		rows, err := ParseXLSXAbsensi(buf)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "ALPA", rows[0].Status)
	})

	t.Run("baris kosong di bawah tabel dilewati", func(t *testing.T) {
		buf := buatXLSX(t, [][]string{
			{"Tanggal", "Nama", "Kelas", "Status", "Keterangan"},
			{"2026-08-10", "Ahmad Fauzi", "X-A", "SAKIT", ""},
			{"", "", "", "", ""},
			{"", "", "Catatan: rekap minggu kedua", "", ""},
		})

		rows, err := ParseXLSXAbsensi(buf)
		require.NoError(t, err)
		assert.Len(t, rows, 1)
	})

	t.Run("file kosong error", func(t *testing.T) {
		buf := buatXLSX(t, [][]string{
			{"Tanggal", "Nama", "Kelas", "Status", "Keterangan"},
		})
		_, err := ParseXLSXAbsensi(buf)
		require.Error(t, err)
	})

	t.Run("bukan xlsx error", func(t *testing.T) {
		_, err := ParseXLSXAbsensi(bytes.NewBufferString("bukan file excel"))
		require.Error(t, err)
	})
}
