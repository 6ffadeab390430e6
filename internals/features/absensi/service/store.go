package service

import (
	"errors"
	"strings"
	"time"

	"alhikam_backend/internals/features/absensi/model"
	sekolah "alhikam_backend/internals/features/sekolah/model"
	"alhikam_backend/internals/helpers/dbtime"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Store = pintu tulis absensi. Semua submit jalan dalam satu transaksi;
// unique constraint di DB jadi pagar terakhir saat dua request balapan.
type Store struct {
	DB *gorm.DB
}

func NewStore(db *gorm.DB) *Store { return &Store{DB: db} }

// ===================== MENGAJAR =====================

// SiswaEntri = status satu siswa yang ikut disubmit guru.
type SiswaEntri struct {
	SiswaID    uuid.UUID
	Status     model.Kehadiran
	Keterangan string
}

// MengajarSubmit = payload submit absensi mengajar yang sudah divalidasi DTO.
type MengajarSubmit struct {
	GuruID   uuid.UUID
	JadwalID uuid.UUID
	Tanggal  time.Time

	GuruStatus     model.Kehadiran
	GuruKeterangan string

	// hanya dipakai saat guru I/S
	GuruTugasID *uuid.UUID
	TugasSiswa  string

	RingkasanMateri string
	BeritaAcara     string

	Siswa []SiswaEntri
}

// SubmitMengajar simpan/update absensi mengajar satu slot satu tanggal,
// sekaligus absensi harian siswa kelas tersebut.
func (s *Store) SubmitMengajar(in MengajarSubmit) (*model.AbsensiMengajarModel, error) {
	if !in.GuruStatus.Valid() {
		return nil, wrap(ErrData, "status guru %q tidak dikenal", in.GuruStatus)
	}
	for _, se := range in.Siswa {
		if !se.Status.Valid() {
			return nil, wrap(ErrData, "status siswa %q tidak dikenal", se.Status)
		}
	}

	var jadwal sekolah.JadwalModel
	err := s.DB.Preload("Mapel").Preload("Kelas").Preload("Guru").
		Where("jadwal_id = ?", in.JadwalID).
		Take(&jadwal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, wrap(ErrNotFound, "jadwal tidak ditemukan")
	}
	if err != nil {
		return nil, err
	}
	if jadwal.JadwalGuruID != in.GuruID {
		return nil, wrap(ErrForbidden, "jadwal ini bukan milik Anda")
	}

	now := dbtime.Now()
	tanggal := dbtime.StartOfDay(in.Tanggal)

	var existing model.AbsensiMengajarModel
	hasRecord := true
	err = s.DB.Where("absensi_mengajar_jadwal_id = ? AND absensi_mengajar_tanggal = ?",
		in.JadwalID, tanggal).Take(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		hasRecord = false
	} else if err != nil {
		return nil, err
	}

	status, err := ResolveSesi(tanggal, jadwal.JadwalJamMulai, jadwal.JadwalJamSelesai, hasRecord, now)
	if err != nil {
		return nil, err
	}
	if status == model.SesiBelumMulai {
		return nil, wrap(ErrInvalidTransition, "sesi belum dimulai, absensi dibuka jam %s", jadwal.JadwalJamMulai)
	}
	if err := checkEditable(s.DB, tanggal, now); err != nil {
		return nil, err
	}

	row := model.AbsensiMengajarModel{
		AbsensiMengajarJadwalID:   &in.JadwalID,
		AbsensiMengajarGuruID:     in.GuruID,
		AbsensiMengajarTanggal:    tanggal,
		AbsensiMengajarGuruStatus: in.GuruStatus,
		AbsensiMengajarTime:       &now,
	}
	if in.GuruKeterangan != "" {
		row.AbsensiMengajarGuruKeterangan = &in.GuruKeterangan
	}
	if in.GuruStatus == model.KehadiranIzin || in.GuruStatus == model.KehadiranSakit {
		row.AbsensiMengajarGuruTugasID = in.GuruTugasID
		if in.TugasSiswa != "" {
			row.AbsensiMengajarTugasSiswa = &in.TugasSiswa
		}
	}
	if in.RingkasanMateri != "" {
		row.AbsensiMengajarRingkasanMateri = &in.RingkasanMateri
	}
	if in.BeritaAcara != "" {
		row.AbsensiMengajarBeritaAcara = &in.BeritaAcara
	}

	// snapshot jadwal saat absen
	if jadwal.Kelas != nil {
		row.AbsensiMengajarSnapshotKelas = &jadwal.Kelas.KelasNama
	}
	if jadwal.Mapel != nil {
		row.AbsensiMengajarSnapshotMapel = &jadwal.Mapel.MapelNama
	}
	if jadwal.Guru != nil {
		row.AbsensiMengajarSnapshotGuruNama = &jadwal.Guru.GuruNama
	}
	jam := jadwal.JadwalJamMulai + "-" + jadwal.JadwalJamSelesai
	row.AbsensiMengajarSnapshotJam = &jam
	row.AbsensiMengajarSnapshotHari = &jadwal.JadwalHari

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "absensi_mengajar_jadwal_id"},
				{Name: "absensi_mengajar_tanggal"},
			},
			DoUpdates: clause.AssignmentColumns([]string{
				"absensi_mengajar_guru_status",
				"absensi_mengajar_guru_keterangan",
				"absensi_mengajar_guru_tugas_id",
				"absensi_mengajar_tugas_siswa",
				"absensi_mengajar_ringkasan_materi",
				"absensi_mengajar_berita_acara",
				"absensi_mengajar_snapshot_kelas",
				"absensi_mengajar_snapshot_mapel",
				"absensi_mengajar_snapshot_jam",
				"absensi_mengajar_snapshot_hari",
				"absensi_mengajar_snapshot_guru_nama",
				"absensi_mengajar_time",
			}),
		}).Create(&row).Error; err != nil {
			return mapDupErr(err)
		}

		if err := saveAbsensiSiswaHarian(tx, jadwal.JadwalKelasID, tanggal, in.Siswa); err != nil {
			return err
		}
		return recomputeSiswaCounts(tx, jadwal.JadwalKelasID, tanggal)
	})
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// saveAbsensiSiswaHarian terapkan konvensi hadir-tanpa-row: H menghapus
// record harian siswa, S/I/A di-upsert. Submit langsung guru = last write
// wins (guru sedang mengoreksi); aturan prioritas ASIH hanya untuk import.
func saveAbsensiSiswaHarian(tx *gorm.DB, kelasID uuid.UUID, tanggal time.Time, entri []SiswaEntri) error {
	for _, se := range entri {
		if se.Status == model.KehadiranHadir {
			if err := tx.Where("absensi_siswa_siswa_id = ? AND absensi_siswa_tanggal = ?",
				se.SiswaID, tanggal).
				Delete(&model.AbsensiSiswaModel{}).Error; err != nil {
				return err
			}
			continue
		}

		row := model.AbsensiSiswaModel{
			AbsensiSiswaSiswaID: se.SiswaID,
			AbsensiSiswaKelasID: kelasID,
			AbsensiSiswaTanggal: tanggal,
			AbsensiSiswaStatus:  se.Status,
		}
		if ket := strings.TrimSpace(se.Keterangan); ket != "" {
			row.AbsensiSiswaKeterangan = &ket
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "absensi_siswa_siswa_id"},
				{Name: "absensi_siswa_tanggal"},
			},
			DoUpdates: clause.AssignmentColumns([]string{
				"absensi_siswa_kelas_id",
				"absensi_siswa_status",
				"absensi_siswa_keterangan",
			}),
		}).Create(&row).Error; err != nil {
			return mapDupErr(err)
		}
	}
	return nil
}

// recomputeSiswaCounts isi ulang kolom hitungan siswa di semua record
// mengajar kelas tsb pada tanggal tsb. Hadir = total siswa aktif − row S/I/A.
func recomputeSiswaCounts(tx *gorm.DB, kelasID uuid.UUID, tanggal time.Time) error {
	var totalSiswa int64
	if err := tx.Model(&sekolah.SiswaModel{}).
		Where("siswa_kelas_id = ? AND siswa_status = ?", kelasID, "Aktif").
		Count(&totalSiswa).Error; err != nil {
		return err
	}

	type agg struct {
		Status string
		N      int
	}
	var rows []agg
	if err := tx.Model(&model.AbsensiSiswaModel{}).
		Select("absensi_siswa_status AS status, COUNT(*) AS n").
		Where("absensi_siswa_kelas_id = ? AND absensi_siswa_tanggal = ?", kelasID, tanggal).
		Group("absensi_siswa_status").
		Scan(&rows).Error; err != nil {
		return err
	}

	var sakit, izin, alpha int
	for _, r := range rows {
		switch model.Kehadiran(r.Status) {
		case model.KehadiranSakit:
			sakit = r.N
		case model.KehadiranIzin:
			izin = r.N
		case model.KehadiranAlpha:
			alpha = r.N
		}
	}
	hadir := int(totalSiswa) - sakit - izin - alpha
	if hadir < 0 {
		hadir = 0
	}

	return tx.Model(&model.AbsensiMengajarModel{}).
		Where(`absensi_mengajar_tanggal = ? AND absensi_mengajar_jadwal_id IN (
			SELECT jadwal_id FROM jadwal WHERE jadwal_kelas_id = ?)`, tanggal, kelasID).
		Updates(map[string]interface{}{
			"absensi_mengajar_siswa_hadir": hadir,
			"absensi_mengajar_siswa_sakit": sakit,
			"absensi_mengajar_siswa_izin":  izin,
			"absensi_mengajar_siswa_alpha": alpha,
		}).Error
}

// ===================== KEGIATAN =====================

// PendampingEntri = status satu pendamping yang disubmit PJ.
type PendampingEntri struct {
	GuruID     uuid.UUID
	Status     model.Kehadiran
	Keterangan string
}

// KegiatanSubmit = payload submit batch PJ.
type KegiatanSubmit struct {
	GuruID     uuid.UUID
	KegiatanID uuid.UUID

	PJStatus     model.Kehadiran
	PJKeterangan string

	Pendamping  []PendampingEntri
	Siswa       []SiswaEntri
	BeritaAcara string
	Foto        []string
}

// SubmitKegiatan = submit batch oleh PJ. Entry pendamping yang sudah absen
// sendiri (self_attended) TIDAK ditimpa — absen mandiri menang.
func (s *Store) SubmitKegiatan(in KegiatanSubmit) (*model.AbsensiKegiatanModel, error) {
	if !in.PJStatus.Valid() {
		return nil, wrap(ErrData, "status PJ %q tidak dikenal", in.PJStatus)
	}
	for _, p := range in.Pendamping {
		if !p.Status.Valid() {
			return nil, wrap(ErrData, "status pendamping %q tidak dikenal", p.Status)
		}
	}
	for _, se := range in.Siswa {
		if !se.Status.Valid() {
			return nil, wrap(ErrData, "status siswa %q tidak dikenal", se.Status)
		}
	}

	kegiatan, err := s.loadKegiatan(in.KegiatanID)
	if err != nil {
		return nil, err
	}
	if !kegiatan.IsPJ(in.GuruID) {
		return nil, wrap(ErrForbidden, "hanya penanggung jawab yang bisa submit absensi kegiatan")
	}

	now := dbtime.Now()
	existing, hasRecord, err := s.loadAbsensiKegiatan(in.KegiatanID)
	if err != nil {
		return nil, err
	}

	status := ResolveSesiRange(kegiatan.KegiatanWaktuMulai, kegiatan.KegiatanWaktuBerakhir, hasRecord, now)
	if status == model.SesiBelumMulai {
		return nil, wrap(ErrInvalidTransition, "kegiatan belum dimulai")
	}
	tanggal := dbtime.StartOfDay(kegiatan.KegiatanWaktuMulai)
	if err := checkEditable(s.DB, tanggal, now); err != nil {
		return nil, err
	}

	row := existing
	if !hasRecord {
		row = &model.AbsensiKegiatanModel{
			AbsensiKegiatanKegiatanID:        in.KegiatanID,
			AbsensiKegiatanTanggal:           tanggal,
			AbsensiKegiatanPenanggungJawabID: in.GuruID,
		}
	}
	row.AbsensiKegiatanPJStatus = in.PJStatus
	if in.PJKeterangan != "" {
		ket := in.PJKeterangan
		row.AbsensiKegiatanPJKeterangan = &ket
	} else {
		row.AbsensiKegiatanPJKeterangan = nil
	}

	row.AbsensiKegiatanPendamping = mergePendamping(row.AbsensiKegiatanPendamping, in.Pendamping, now)

	siswa := make([]model.SiswaAbsen, 0, len(in.Siswa))
	for _, se := range in.Siswa {
		siswa = append(siswa, model.SiswaAbsen{
			SiswaID:    se.SiswaID,
			Status:     se.Status,
			Keterangan: se.Keterangan,
		})
	}
	row.AbsensiKegiatanSiswa = siswa

	if in.BeritaAcara != "" {
		ba := in.BeritaAcara
		row.AbsensiKegiatanBeritaAcara = &ba
	}
	if len(in.Foto) > 0 {
		row.AbsensiKegiatanFoto = in.Foto
	}
	row.AbsensiKegiatanStatus = model.AbsensiSubmitted

	if err := s.upsertAbsensiKegiatan(row, hasRecord); err != nil {
		return nil, err
	}
	return row, nil
}

// SubmitKegiatanMandiri = pendamping absen dirinya sendiri. Entry ditandai
// self_attended supaya tidak hilang saat PJ submit batch belakangan.
func (s *Store) SubmitKegiatanMandiri(guruID, kegiatanID uuid.UUID, stat model.Kehadiran, keterangan string) (*model.AbsensiKegiatanModel, error) {
	if !stat.Valid() {
		return nil, wrap(ErrData, "status %q tidak dikenal", stat)
	}

	kegiatan, err := s.loadKegiatan(kegiatanID)
	if err != nil {
		return nil, err
	}
	if !kegiatan.IsPendamping(guruID) {
		return nil, wrap(ErrForbidden, "Anda tidak terdaftar sebagai pendamping kegiatan ini")
	}

	now := dbtime.Now()
	existing, hasRecord, err := s.loadAbsensiKegiatan(kegiatanID)
	if err != nil {
		return nil, err
	}
	status := ResolveSesiRange(kegiatan.KegiatanWaktuMulai, kegiatan.KegiatanWaktuBerakhir, false, now)
	if status == model.SesiBelumMulai {
		return nil, wrap(ErrInvalidTransition, "kegiatan belum dimulai")
	}
	tanggal := dbtime.StartOfDay(kegiatan.KegiatanWaktuMulai)
	if err := checkEditable(s.DB, tanggal, now); err != nil {
		return nil, err
	}

	row := existing
	if !hasRecord {
		row = &model.AbsensiKegiatanModel{
			AbsensiKegiatanKegiatanID:        kegiatanID,
			AbsensiKegiatanTanggal:           tanggal,
			AbsensiKegiatanPenanggungJawabID: kegiatan.KegiatanPenanggungJawabID,
			AbsensiKegiatanPJStatus:          model.KehadiranAlpha,
		}
	}

	entry := model.PendampingAbsen{
		GuruID:       guruID,
		Status:       stat,
		Keterangan:   keterangan,
		SelfAttended: true,
		AttendedAt:   &now,
	}
	replaced := false
	for i := range row.AbsensiKegiatanPendamping {
		if row.AbsensiKegiatanPendamping[i].GuruID == guruID {
			row.AbsensiKegiatanPendamping[i] = entry
			replaced = true
			break
		}
	}
	if !replaced {
		row.AbsensiKegiatanPendamping = append(row.AbsensiKegiatanPendamping, entry)
	}

	if err := s.upsertAbsensiKegiatan(row, hasRecord); err != nil {
		return nil, err
	}
	return row, nil
}

// mergePendamping gabungkan batch PJ dengan entry yang ada; entry
// self_attended dipertahankan apa adanya.
func mergePendamping(existing []model.PendampingAbsen, incoming []PendampingEntri, now time.Time) []model.PendampingAbsen {
	keep := make(map[uuid.UUID]model.PendampingAbsen, len(existing))
	for _, e := range existing {
		if e.SelfAttended {
			keep[e.GuruID] = e
		}
	}

	out := make([]model.PendampingAbsen, 0, len(incoming))
	seen := make(map[uuid.UUID]bool, len(incoming))
	for _, p := range incoming {
		seen[p.GuruID] = true
		if self, ok := keep[p.GuruID]; ok {
			out = append(out, self)
			continue
		}
		out = append(out, model.PendampingAbsen{
			GuruID:     p.GuruID,
			Status:     p.Status,
			Keterangan: p.Keterangan,
			AttendedAt: &now,
		})
	}
	// self-attended yang tidak ada di batch tetap ikut
	for _, e := range existing {
		if e.SelfAttended && !seen[e.GuruID] {
			out = append(out, e)
		}
	}
	return out
}

func (s *Store) loadKegiatan(id uuid.UUID) (*sekolah.KegiatanModel, error) {
	var k sekolah.KegiatanModel
	err := s.DB.Where("kegiatan_id = ?", id).Take(&k).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, wrap(ErrNotFound, "kegiatan tidak ditemukan")
	}
	if err != nil {
		return nil, err
	}
	return &k, nil
}

func (s *Store) loadAbsensiKegiatan(kegiatanID uuid.UUID) (*model.AbsensiKegiatanModel, bool, error) {
	var a model.AbsensiKegiatanModel
	err := s.DB.Where("absensi_kegiatan_kegiatan_id = ?", kegiatanID).Take(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return &a, true, nil
}

func (s *Store) upsertAbsensiKegiatan(row *model.AbsensiKegiatanModel, hasRecord bool) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if hasRecord {
			return tx.Save(row).Error
		}
		if err := tx.Create(row).Error; err != nil {
			return mapDupErr(err)
		}
		return nil
	})
}

// ===================== RAPAT =====================

// PesertaEntri = status satu peserta rapat yang disubmit sekretaris/pimpinan.
type PesertaEntri struct {
	GuruID     uuid.UUID
	Status     model.Kehadiran
	Keterangan string
}

// RapatSubmit = payload submit batch rapat.
type RapatSubmit struct {
	GuruID  uuid.UUID
	RapatID uuid.UUID

	PimpinanStatus       model.Kehadiran
	PimpinanKeterangan   string
	SekretarisStatus     model.Kehadiran
	SekretarisKeterangan string

	Peserta   []PesertaEntri
	Notulensi string
	Foto      []string
}

// SubmitRapat = submit batch oleh sekretaris atau pimpinan. Absen mandiri
// pimpinan yang sudah tercatat tidak ditimpa sekretaris.
func (s *Store) SubmitRapat(in RapatSubmit) (*model.AbsensiRapatModel, error) {
	if !in.PimpinanStatus.Valid() || !in.SekretarisStatus.Valid() {
		return nil, wrap(ErrData, "status pimpinan/sekretaris tidak dikenal")
	}
	for _, p := range in.Peserta {
		if !p.Status.Valid() {
			return nil, wrap(ErrData, "status peserta %q tidak dikenal", p.Status)
		}
	}

	rapat, err := s.loadRapat(in.RapatID)
	if err != nil {
		return nil, err
	}
	if !rapat.IsSekretaris(in.GuruID) && !rapat.IsPimpinan(in.GuruID) {
		return nil, wrap(ErrForbidden, "hanya sekretaris atau pimpinan yang bisa submit absensi rapat")
	}

	now := dbtime.Now()
	existing, hasRecord, err := s.loadAbsensiRapat(in.RapatID)
	if err != nil {
		return nil, err
	}

	tanggal := dbtime.StartOfDay(rapat.RapatTanggal)
	status, err := ResolveSesi(tanggal, rapat.RapatWaktuMulai, rapat.RapatWaktuSelesai, hasRecord, now)
	if err != nil {
		return nil, err
	}
	if status == model.SesiBelumMulai {
		return nil, wrap(ErrInvalidTransition, "rapat belum dimulai, absensi dibuka jam %s", rapat.RapatWaktuMulai)
	}
	if err := checkEditable(s.DB, tanggal, now); err != nil {
		return nil, err
	}

	row := existing
	if !hasRecord {
		row = &model.AbsensiRapatModel{
			AbsensiRapatRapatID: in.RapatID,
			AbsensiRapatTanggal: tanggal,
		}
	}

	if !row.AbsensiRapatPimpinanSelfAttended {
		row.AbsensiRapatPimpinanStatus = in.PimpinanStatus
		row.AbsensiRapatPimpinanKeterangan = nilIfEmpty(in.PimpinanKeterangan)
	}
	row.AbsensiRapatSekretarisStatus = in.SekretarisStatus
	row.AbsensiRapatSekretarisKeterangan = nilIfEmpty(in.SekretarisKeterangan)

	row.AbsensiRapatPeserta = mergePeserta(row.AbsensiRapatPeserta, in.Peserta, now)

	if in.Notulensi != "" {
		row.AbsensiRapatNotulensi = nilIfEmpty(in.Notulensi)
	}
	if len(in.Foto) > 0 {
		row.AbsensiRapatFoto = in.Foto
	}
	row.AbsensiRapatStatus = model.AbsensiSubmitted

	if err := s.upsertAbsensiRapat(row, hasRecord); err != nil {
		return nil, err
	}
	return row, nil
}

// SubmitRapatMandiri = peserta (termasuk pimpinan) absen dirinya sendiri.
func (s *Store) SubmitRapatMandiri(guruID, rapatID uuid.UUID, stat model.Kehadiran, keterangan string) (*model.AbsensiRapatModel, error) {
	if !stat.Valid() {
		return nil, wrap(ErrData, "status %q tidak dikenal", stat)
	}

	rapat, err := s.loadRapat(rapatID)
	if err != nil {
		return nil, err
	}
	isPimpinan := rapat.IsPimpinan(guruID)
	if !isPimpinan && !rapat.IsPeserta(guruID) {
		return nil, wrap(ErrForbidden, "Anda tidak terdaftar di rapat ini")
	}

	now := dbtime.Now()
	existing, hasRecord, err := s.loadAbsensiRapat(rapatID)
	if err != nil {
		return nil, err
	}
	tanggal := dbtime.StartOfDay(rapat.RapatTanggal)
	status, err := ResolveSesi(tanggal, rapat.RapatWaktuMulai, rapat.RapatWaktuSelesai, false, now)
	if err != nil {
		return nil, err
	}
	if status == model.SesiBelumMulai {
		return nil, wrap(ErrInvalidTransition, "rapat belum dimulai, absensi dibuka jam %s", rapat.RapatWaktuMulai)
	}
	if err := checkEditable(s.DB, tanggal, now); err != nil {
		return nil, err
	}

	row := existing
	if !hasRecord {
		row = &model.AbsensiRapatModel{
			AbsensiRapatRapatID:          rapatID,
			AbsensiRapatTanggal:          tanggal,
			AbsensiRapatPimpinanStatus:   model.KehadiranAlpha,
			AbsensiRapatSekretarisStatus: model.KehadiranAlpha,
		}
	}

	if isPimpinan {
		row.AbsensiRapatPimpinanStatus = stat
		row.AbsensiRapatPimpinanKeterangan = nilIfEmpty(keterangan)
		row.AbsensiRapatPimpinanSelfAttended = true
		row.AbsensiRapatPimpinanAttendedAt = &now
	} else {
		entry := model.PesertaAbsen{
			GuruID:       guruID,
			Status:       stat,
			Keterangan:   keterangan,
			SelfAttended: true,
			AttendedAt:   &now,
		}
		replaced := false
		for i := range row.AbsensiRapatPeserta {
			if row.AbsensiRapatPeserta[i].GuruID == guruID {
				row.AbsensiRapatPeserta[i] = entry
				replaced = true
				break
			}
		}
		if !replaced {
			row.AbsensiRapatPeserta = append(row.AbsensiRapatPeserta, entry)
		}
	}

	if err := s.upsertAbsensiRapat(row, hasRecord); err != nil {
		return nil, err
	}
	return row, nil
}

func mergePeserta(existing []model.PesertaAbsen, incoming []PesertaEntri, now time.Time) []model.PesertaAbsen {
	keep := make(map[uuid.UUID]model.PesertaAbsen, len(existing))
	for _, e := range existing {
		if e.SelfAttended {
			keep[e.GuruID] = e
		}
	}

	out := make([]model.PesertaAbsen, 0, len(incoming))
	seen := make(map[uuid.UUID]bool, len(incoming))
	for _, p := range incoming {
		seen[p.GuruID] = true
		if self, ok := keep[p.GuruID]; ok {
			out = append(out, self)
			continue
		}
		out = append(out, model.PesertaAbsen{
			GuruID:     p.GuruID,
			Status:     p.Status,
			Keterangan: p.Keterangan,
			AttendedAt: &now,
		})
	}
	for _, e := range existing {
		if e.SelfAttended && !seen[e.GuruID] {
			out = append(out, e)
		}
	}
	return out
}

func (s *Store) loadRapat(id uuid.UUID) (*sekolah.RapatModel, error) {
	var r sekolah.RapatModel
	err := s.DB.Where("rapat_id = ?", id).Take(&r).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, wrap(ErrNotFound, "rapat tidak ditemukan")
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *Store) loadAbsensiRapat(rapatID uuid.UUID) (*model.AbsensiRapatModel, bool, error) {
	var a model.AbsensiRapatModel
	err := s.DB.Where("absensi_rapat_rapat_id = ?", rapatID).Take(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return &a, true, nil
}

func (s *Store) upsertAbsensiRapat(row *model.AbsensiRapatModel, hasRecord bool) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if hasRecord {
			return tx.Save(row).Error
		}
		if err := tx.Create(row).Error; err != nil {
			return mapDupErr(err)
		}
		return nil
	})
}

// ===================== util =====================

func nilIfEmpty(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}

// mapDupErr petakan pelanggaran unique constraint Postgres ke ErrConflict.
func mapDupErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) ||
		strings.Contains(err.Error(), "duplicate key value") ||
		strings.Contains(err.Error(), "SQLSTATE 23505") {
		return wrap(ErrConflict, "record absensi sudah dibuat oleh request lain")
	}
	return err
}
