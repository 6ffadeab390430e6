package service

import (
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ParseXLSXAbsensi baca file rekap "ABSEN SISWA" dari wali kelas.
// Layout kolom: A=tanggal, B=nama siswa, C=kelas, D=status, E=keterangan.
// Baris pertama dianggap header kalau kolom status bukan nilai yang dikenal;
// baris yang tanggal+nama kosong dilewati (baris catatan di bawah tabel).
func ParseXLSXAbsensi(r io.Reader) ([]ImportRow, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, wrap(ErrData, "file xlsx tidak bisa dibaca: %v", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, wrap(ErrData, "file xlsx tidak punya sheet")
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, wrap(ErrData, "sheet %q tidak bisa dibaca: %v", sheet, err)
	}

	out := make([]ImportRow, 0, len(rows))
	for i, cells := range rows {
		get := func(col int) string {
			if col < len(cells) {
				return strings.TrimSpace(cells[col])
			}
			return ""
		}
		row := ImportRow{
			Tanggal:    get(0),
			Nama:       get(1),
			Kelas:      get(2),
			Status:     get(3),
			Keterangan: get(4),
		}
		if row.Tanggal == "" && row.Nama == "" {
			continue
		}
		if i == 0 {
			if _, ok := parseStatusImport(row.Status); !ok {
				continue // header
			}
		}
		out = append(out, row)
	}
	if len(out) == 0 {
		return nil, wrap(ErrData, "file xlsx tidak berisi baris absensi")
	}
	return out, nil
}
