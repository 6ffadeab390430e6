package service

import (
	"errors"
	"time"

	absensi "alhikam_backend/internals/features/absensi/model"
	absensisvc "alhikam_backend/internals/features/absensi/service"
	sekolah "alhikam_backend/internals/features/sekolah/model"
	"alhikam_backend/internals/helpers/dbtime"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// hariIndonesia = nama hari yang dipakai kolom jadwal_hari.
var hariIndonesia = map[time.Weekday]string{
	time.Monday:    "Senin",
	time.Tuesday:   "Selasa",
	time.Wednesday: "Rabu",
	time.Thursday:  "Kamis",
	time.Friday:    "Jumat",
	time.Saturday:  "Sabtu",
	time.Sunday:    "Minggu",
}

// SourceCount = hitungan H/S/I/A satu sumber absensi.
type SourceCount struct {
	Hadir int `json:"hadir"`
	Sakit int `json:"sakit"`
	Izin  int `json:"izin"`
	Alpha int `json:"alpha"`
	Total int `json:"total"`
}

func (c *SourceCount) add(k absensi.Kehadiran) {
	switch k {
	case absensi.KehadiranHadir:
		c.Hadir++
	case absensi.KehadiranSakit:
		c.Sakit++
	case absensi.KehadiranIzin:
		c.Izin++
	case absensi.KehadiranAlpha:
		c.Alpha++
	default:
		return
	}
	c.Total++
}

// MonthlySummary = rekap kehadiran satu guru satu bulan, per sumber.
// Sesi yang belum bisa diabsen (hari ini belum selesai, atau masih di masa
// depan) TIDAK masuk penyebut — persentase tidak boleh turun karena sesi
// yang belum terjadi.
type MonthlySummary struct {
	GuruID uuid.UUID `json:"guru_id"`
	Bulan  int       `json:"bulan"`
	Tahun  int       `json:"tahun"`

	Mengajar SourceCount `json:"mengajar"`
	Kegiatan SourceCount `json:"kegiatan"`
	Rapat    SourceCount `json:"rapat"`

	TotalHadir      int     `json:"total_hadir"`
	TotalSesi       int     `json:"total_sesi"`
	PersenKehadiran float64 `json:"persen_kehadiran"`
}

// Summarizer menghitung rekap bulanan dari tiga sumber absensi.
type Summarizer struct {
	DB *gorm.DB
}

func NewSummarizer(db *gorm.DB) *Summarizer { return &Summarizer{DB: db} }

// Summarize hitung rekap kehadiran guru untuk satu periode.
// Aturan per sesi: ada record → statusnya; sesi sudah lewat tanpa record →
// Alpha; belum selesai / masa depan → tidak dihitung sama sekali.
func (s *Summarizer) Summarize(guruID uuid.UUID, bulan, tahun int) (*MonthlySummary, error) {
	now := dbtime.Now()
	sum := &MonthlySummary{GuruID: guruID, Bulan: bulan, Tahun: tahun}

	if err := s.summarizeMengajar(sum, guruID, bulan, tahun, now); err != nil {
		return nil, err
	}
	if err := s.summarizeKegiatan(sum, guruID, bulan, tahun, now); err != nil {
		return nil, err
	}
	if err := s.summarizeRapat(sum, guruID, bulan, tahun, now); err != nil {
		return nil, err
	}

	sum.hitungTotal()
	return sum, nil
}

// alphaTanpaRecord menilai satu kemunculan tanpa record: Alpha hanya untuk
// sesi terlewat yang HARINYA sudah lewat. Sesi terlewat hari ini masih bisa
// diabsen (record hari yang sama selalu boleh disimpan), jadi belum masuk
// penyebut.
func alphaTanpaRecord(status absensi.SesiStatus, tanggal, now time.Time) bool {
	return status == absensi.SesiTerlewat &&
		dbtime.StartOfDay(tanggal).Before(dbtime.StartOfDay(now))
}

// hitungTotal isi agregat lintas sumber. Persentase 0 (bukan NaN) kalau
// belum ada sesi sama sekali.
func (m *MonthlySummary) hitungTotal() {
	m.TotalHadir = m.Mengajar.Hadir + m.Kegiatan.Hadir + m.Rapat.Hadir
	m.TotalSesi = m.Mengajar.Total + m.Kegiatan.Total + m.Rapat.Total
	m.PersenKehadiran = 0
	if m.TotalSesi > 0 {
		m.PersenKehadiran = float64(m.TotalHadir) / float64(m.TotalSesi) * 100
	}
}

// summarizeMengajar enumerasi semua kemunculan jadwal mingguan guru di
// dalam bulan, lalu nilai per kemunculan.
func (s *Summarizer) summarizeMengajar(sum *MonthlySummary, guruID uuid.UUID, bulan, tahun int, now time.Time) error {
	var jadwal []sekolah.JadwalModel
	if err := s.DB.Where("jadwal_guru_id = ? AND jadwal_status = ?", guruID, "Aktif").
		Find(&jadwal).Error; err != nil {
		return err
	}
	if len(jadwal) == 0 {
		return nil
	}

	start, end := dbtime.MonthRange(tahun, bulan)

	var records []absensi.AbsensiMengajarModel
	if err := s.DB.Where(`absensi_mengajar_guru_id = ?
		AND absensi_mengajar_tanggal >= ? AND absensi_mengajar_tanggal < ?`,
		guruID, start, end).Find(&records).Error; err != nil {
		return err
	}
	recIdx := make(map[string]*absensi.AbsensiMengajarModel, len(records))
	for i := range records {
		r := &records[i]
		if r.AbsensiMengajarJadwalID == nil {
			continue
		}
		key := r.AbsensiMengajarJadwalID.String() + "|" + r.AbsensiMengajarTanggal.Format("2006-01-02")
		recIdx[key] = r
	}

	for d := start; d.Before(end); d = d.AddDate(0, 0, 1) {
		hari := hariIndonesia[d.Weekday()]
		for i := range jadwal {
			j := &jadwal[i]
			if j.JadwalHari != hari {
				continue
			}
			key := j.JadwalID.String() + "|" + d.Format("2006-01-02")
			if rec, ok := recIdx[key]; ok {
				sum.Mengajar.add(rec.AbsensiMengajarGuruStatus)
				continue
			}
			status, err := absensisvc.ResolveSesi(d, j.JadwalJamMulai, j.JadwalJamSelesai, false, now)
			if err != nil {
				// jam rusak di master jadwal jangan merobohkan rekap;
				// slot dilewati saja
				continue
			}
			if alphaTanpaRecord(status, d, now) {
				sum.Mengajar.add(absensi.KehadiranAlpha)
			}
			// belum mulai / sedang berlangsung / terlewat hari ini →
			// di luar penyebut
		}
	}
	return nil
}

func (s *Summarizer) summarizeKegiatan(sum *MonthlySummary, guruID uuid.UUID, bulan, tahun int, now time.Time) error {
	start, end := dbtime.MonthRange(tahun, bulan)

	var kegiatan []sekolah.KegiatanModel
	if err := s.DB.Where("kegiatan_waktu_mulai >= ? AND kegiatan_waktu_mulai < ?", start, end).
		Find(&kegiatan).Error; err != nil {
		return err
	}

	for i := range kegiatan {
		k := &kegiatan[i]
		isPJ := k.IsPJ(guruID)
		if !isPJ && !k.IsPendamping(guruID) {
			continue
		}

		var rec absensi.AbsensiKegiatanModel
		hasRecord := true
		err := s.DB.Where("absensi_kegiatan_kegiatan_id = ?", k.KegiatanID).Take(&rec).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			hasRecord = false
		} else if err != nil {
			return err
		}

		if hasRecord {
			if isPJ {
				sum.Kegiatan.add(rec.AbsensiKegiatanPJStatus)
				continue
			}
			if entry := rec.StatusPendamping(guruID); entry != nil {
				sum.Kegiatan.add(entry.Status)
				continue
			}
			// record ada tapi guru ini belum tercatat: nilai seperti tanpa
			// record
		}

		status := absensisvc.ResolveSesiRange(k.KegiatanWaktuMulai, k.KegiatanWaktuBerakhir, false, now)
		if alphaTanpaRecord(status, k.KegiatanWaktuMulai, now) {
			sum.Kegiatan.add(absensi.KehadiranAlpha)
		}
	}
	return nil
}

func (s *Summarizer) summarizeRapat(sum *MonthlySummary, guruID uuid.UUID, bulan, tahun int, now time.Time) error {
	start, end := dbtime.MonthRange(tahun, bulan)

	var rapat []sekolah.RapatModel
	if err := s.DB.Where("rapat_tanggal >= ? AND rapat_tanggal < ?", start, end).
		Find(&rapat).Error; err != nil {
		return err
	}

	for i := range rapat {
		r := &rapat[i]
		isPimpinan := r.IsPimpinan(guruID)
		isSekretaris := r.IsSekretaris(guruID)
		if !isPimpinan && !isSekretaris && !r.IsPeserta(guruID) {
			continue
		}

		var rec absensi.AbsensiRapatModel
		hasRecord := true
		err := s.DB.Where("absensi_rapat_rapat_id = ?", r.RapatID).Take(&rec).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			hasRecord = false
		} else if err != nil {
			return err
		}

		if hasRecord {
			switch {
			case isPimpinan:
				sum.Rapat.add(rec.AbsensiRapatPimpinanStatus)
				continue
			case isSekretaris:
				sum.Rapat.add(rec.AbsensiRapatSekretarisStatus)
				continue
			default:
				if entry := rec.StatusPeserta(guruID); entry != nil {
					sum.Rapat.add(entry.Status)
					continue
				}
			}
		}

		tanggal := dbtime.StartOfDay(r.RapatTanggal)
		status, err := absensisvc.ResolveSesi(tanggal, r.RapatWaktuMulai, r.RapatWaktuSelesai, false, now)
		if err != nil {
			continue
		}
		if alphaTanpaRecord(status, tanggal, now) {
			sum.Rapat.add(absensi.KehadiranAlpha)
		}
	}
	return nil
}
