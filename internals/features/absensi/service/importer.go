package service

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"alhikam_backend/internals/features/absensi/model"
	sekolah "alhikam_backend/internals/features/sekolah/model"
	"alhikam_backend/internals/helpers/dbtime"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ImportRow = satu baris mentah hasil parse file import absensi siswa.
type ImportRow struct {
	Tanggal    string `json:"tanggal"` // YYYY-MM-DD atau DD/MM/YYYY
	Nama       string `json:"nama"`
	Kelas      string `json:"kelas"`
	Status     string `json:"status"` // HADIR/SAKIT/IZIN/ALPA atau H/S/I/A
	Keterangan string `json:"keterangan"`
}

// ImportResult = rekap hasil import untuk ditampilkan ke admin.
type ImportResult struct {
	TotalRows         int `json:"total_rows"`
	Inserted          int `json:"inserted"`
	Updated           int `json:"updated"`
	SkippedSame       int `json:"skipped_same"`
	SkippedHadir      int `json:"skipped_hadir"`
	SkippedNoMatch    int `json:"skipped_no_match"`
	DuplicateResolved int `json:"duplicate_resolved"`

	UnmatchedRows []string `json:"unmatched_rows,omitempty"`
}

// PilihPrioritas memutuskan hasil merge satu record lama dengan satu record
// masuk, mengikuti urutan keparahan ASIH (lihat Kehadiran.Priority). Status
// tidak pernah turun; keterangan masuk yang tidak kosong selalu menang
// (koreksi narasi boleh tanpa eskalasi status).
func PilihPrioritas(lama, masuk model.Kehadiran, ketLama, ketMasuk string) (model.Kehadiran, string, bool) {
	status := lama
	changed := false
	if masuk.Priority() > lama.Priority() {
		status = masuk
		changed = true
	}
	ket := ketLama
	if strings.TrimSpace(ketMasuk) != "" && ketMasuk != ketLama {
		ket = ketMasuk
		changed = true
	}
	return status, ket, changed
}

type importKey struct {
	SiswaID uuid.UUID
	Tanggal string
}

type resolvedRow struct {
	SiswaID    uuid.UUID
	KelasID    uuid.UUID
	Tanggal    time.Time
	Status     model.Kehadiran
	Keterangan string
}

// ImportAbsensiSiswa proses batch import rekap wali kelas. Alur:
//  1. cocokkan (nama, kelas) ke siswa — case-insensitive, trim spasi
//  2. dedup dalam batch per (siswa, tanggal) dengan aturan prioritas
//  3. merge ke DB: insert baru, atau update kalau prioritas naik /
//     keterangan baru; HADIR tidak pernah disimpan
//  4. hitung ulang snapshot jumlah siswa di absensi_mengajar yang kena
func (s *Store) ImportAbsensiSiswa(rows []ImportRow) (*ImportResult, error) {
	res := &ImportResult{TotalRows: len(rows)}
	if len(rows) == 0 {
		return res, nil
	}

	siswaIdx, err := buildSiswaIndex(s.DB)
	if err != nil {
		return nil, err
	}

	// tahap 1+2: match & dedup dalam batch
	batch := make(map[importKey]*resolvedRow, len(rows))
	order := make([]importKey, 0, len(rows))
	for i, r := range rows {
		status, ok := parseStatusImport(r.Status)
		if !ok {
			res.SkippedNoMatch++
			res.UnmatchedRows = append(res.UnmatchedRows,
				fmt.Sprintf("baris %d: status %q tidak dikenal", i+1, r.Status))
			continue
		}
		tanggal, err := parseTanggalImport(r.Tanggal)
		if err != nil {
			res.SkippedNoMatch++
			res.UnmatchedRows = append(res.UnmatchedRows,
				fmt.Sprintf("baris %d: tanggal %q tidak valid", i+1, r.Tanggal))
			continue
		}
		siswa, ok := siswaIdx[siswaKey(r.Nama, r.Kelas)]
		if !ok {
			res.SkippedNoMatch++
			res.UnmatchedRows = append(res.UnmatchedRows,
				fmt.Sprintf("baris %d: siswa %q kelas %q tidak ditemukan", i+1, r.Nama, r.Kelas))
			continue
		}

		key := importKey{SiswaID: siswa.SiswaID, Tanggal: tanggal.Format("2006-01-02")}
		if prev, dup := batch[key]; dup {
			st, ket, _ := PilihPrioritas(prev.Status, status, prev.Keterangan, r.Keterangan)
			prev.Status = st
			prev.Keterangan = ket
			res.DuplicateResolved++
			continue
		}
		batch[key] = &resolvedRow{
			SiswaID:    siswa.SiswaID,
			KelasID:    siswa.SiswaKelasID,
			Tanggal:    tanggal,
			Status:     status,
			Keterangan: strings.TrimSpace(r.Keterangan),
		}
		order = append(order, key)
	}

	// tahap 3: merge ke DB
	affected := make(map[string]resolvedRow) // kelasID|tanggal → sampel untuk recompute
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		for _, key := range order {
			rr := batch[key]

			if rr.Status == model.KehadiranHadir {
				// konvensi hadir-tanpa-row; row lama TIDAK dihapus —
				// import tidak pernah menurunkan status
				res.SkippedHadir++
				continue
			}

			var existing model.AbsensiSiswaModel
			errTake := tx.Where("absensi_siswa_siswa_id = ? AND absensi_siswa_tanggal = ?",
				rr.SiswaID, rr.Tanggal).Take(&existing).Error
			switch {
			case errors.Is(errTake, gorm.ErrRecordNotFound):
				row := model.AbsensiSiswaModel{
					AbsensiSiswaSiswaID:    rr.SiswaID,
					AbsensiSiswaKelasID:    rr.KelasID,
					AbsensiSiswaTanggal:    rr.Tanggal,
					AbsensiSiswaStatus:     rr.Status,
					AbsensiSiswaKeterangan: nilIfEmpty(rr.Keterangan),
				}
				if err := tx.Create(&row).Error; err != nil {
					return mapDupErr(err)
				}
				res.Inserted++
			case errTake != nil:
				return errTake
			default:
				ketLama := ""
				if existing.AbsensiSiswaKeterangan != nil {
					ketLama = *existing.AbsensiSiswaKeterangan
				}
				status, ket, changed := PilihPrioritas(existing.AbsensiSiswaStatus, rr.Status, ketLama, rr.Keterangan)
				if !changed {
					res.SkippedSame++
					continue
				}
				if err := tx.Model(&existing).Updates(map[string]interface{}{
					"absensi_siswa_status":     status,
					"absensi_siswa_keterangan": nilIfEmpty(ket),
				}).Error; err != nil {
					return err
				}
				res.Updated++
			}
			affected[rr.KelasID.String()+"|"+key.Tanggal] = *rr
		}

		// tahap 4: snapshot hitungan di absensi_mengajar
		for _, rr := range affected {
			if err := recomputeSiswaCounts(tx, rr.KelasID, rr.Tanggal); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Printf("[INFO] import absensi siswa: %d baris → insert=%d update=%d same=%d hadir=%d nomatch=%d dup=%d",
		res.TotalRows, res.Inserted, res.Updated, res.SkippedSame,
		res.SkippedHadir, res.SkippedNoMatch, res.DuplicateResolved)
	return res, nil
}

func buildSiswaIndex(db *gorm.DB) (map[string]sekolah.SiswaModel, error) {
	var siswa []sekolah.SiswaModel
	if err := db.Preload("Kelas").Where("siswa_status = ?", "Aktif").Find(&siswa).Error; err != nil {
		return nil, err
	}
	idx := make(map[string]sekolah.SiswaModel, len(siswa))
	for _, sw := range siswa {
		kelas := ""
		if sw.Kelas != nil {
			kelas = sw.Kelas.KelasNama
		}
		idx[siswaKey(sw.SiswaNama, kelas)] = sw
	}
	return idx, nil
}

func siswaKey(nama, kelas string) string {
	norm := func(v string) string {
		return strings.ToLower(strings.Join(strings.Fields(v), " "))
	}
	return norm(nama) + "|" + norm(kelas)
}

// parseStatusImport terima label panjang (rekap wali kelas) maupun kode satu
// huruf.
func parseStatusImport(raw string) (model.Kehadiran, bool) {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "H", "HADIR":
		return model.KehadiranHadir, true
	case "S", "SAKIT":
		return model.KehadiranSakit, true
	case "I", "IZIN", "IJIN":
		return model.KehadiranIzin, true
	case "A", "ALPA", "ALPHA", "ALFA":
		return model.KehadiranAlpha, true
	}
	return "", false
}

var layoutTanggal = []string{"2006-01-02", "02/01/2006", "2/1/2006", "02-01-2006"}

func parseTanggalImport(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	loc := dbtime.Location()
	for _, layout := range layoutTanggal {
		if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return dbtime.StartOfDay(t), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: tanggal %q", ErrData, raw)
}
