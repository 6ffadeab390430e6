package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AbsensiMengajarModel = absensi guru per slot mengajar per tanggal.
// Kolom snapshot_* membekukan info jadwal saat absen supaya riwayat tetap
// benar walau jadwal diubah TU. Maksimal satu record per (jadwal, tanggal);
// data hasil import lama bisa punya jadwal_id NULL dan dicocokkan lewat
// (guru, tanggal, snapshot kelas+mapel).
type AbsensiMengajarModel struct {
	AbsensiMengajarID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:absensi_mengajar_id" json:"absensi_mengajar_id"`

	AbsensiMengajarJadwalID *uuid.UUID `gorm:"type:uuid;column:absensi_mengajar_jadwal_id;uniqueIndex:uq_absensi_mengajar_jadwal_tanggal" json:"absensi_mengajar_jadwal_id,omitempty"`
	AbsensiMengajarGuruID   uuid.UUID  `gorm:"type:uuid;not null;index;column:absensi_mengajar_guru_id" json:"absensi_mengajar_guru_id"`
	AbsensiMengajarTanggal  time.Time  `gorm:"type:date;not null;index;column:absensi_mengajar_tanggal;uniqueIndex:uq_absensi_mengajar_jadwal_tanggal" json:"absensi_mengajar_tanggal"`

	AbsensiMengajarGuruStatus     Kehadiran `gorm:"type:varchar(1);not null;default:'H';column:absensi_mengajar_guru_status" json:"absensi_mengajar_guru_status"`
	AbsensiMengajarGuruKeterangan *string   `gorm:"column:absensi_mengajar_guru_keterangan" json:"absensi_mengajar_guru_keterangan,omitempty"`

	// guru pengganti + tugas siswa, hanya relevan saat guru I/S
	AbsensiMengajarGuruTugasID *uuid.UUID `gorm:"type:uuid;column:absensi_mengajar_guru_tugas_id" json:"absensi_mengajar_guru_tugas_id,omitempty"`
	AbsensiMengajarTugasSiswa  *string    `gorm:"column:absensi_mengajar_tugas_siswa" json:"absensi_mengajar_tugas_siswa,omitempty"`

	AbsensiMengajarRingkasanMateri *string `gorm:"column:absensi_mengajar_ringkasan_materi" json:"absensi_mengajar_ringkasan_materi,omitempty"`
	AbsensiMengajarBeritaAcara     *string `gorm:"column:absensi_mengajar_berita_acara" json:"absensi_mengajar_berita_acara,omitempty"`

	// snapshot jadwal
	AbsensiMengajarSnapshotKelas    *string `gorm:"column:absensi_mengajar_snapshot_kelas" json:"absensi_mengajar_snapshot_kelas,omitempty"`
	AbsensiMengajarSnapshotMapel    *string `gorm:"column:absensi_mengajar_snapshot_mapel" json:"absensi_mengajar_snapshot_mapel,omitempty"`
	AbsensiMengajarSnapshotJam      *string `gorm:"column:absensi_mengajar_snapshot_jam" json:"absensi_mengajar_snapshot_jam,omitempty"`
	AbsensiMengajarSnapshotHari     *string `gorm:"column:absensi_mengajar_snapshot_hari" json:"absensi_mengajar_snapshot_hari,omitempty"`
	AbsensiMengajarSnapshotGuruNama *string `gorm:"column:absensi_mengajar_snapshot_guru_nama" json:"absensi_mengajar_snapshot_guru_nama,omitempty"`

	// snapshot hitungan absensi siswa harian (diisi ulang setiap simpan/import)
	AbsensiMengajarSiswaHadir int `gorm:"not null;default:0;column:absensi_mengajar_siswa_hadir" json:"absensi_mengajar_siswa_hadir"`
	AbsensiMengajarSiswaSakit int `gorm:"not null;default:0;column:absensi_mengajar_siswa_sakit" json:"absensi_mengajar_siswa_sakit"`
	AbsensiMengajarSiswaIzin  int `gorm:"not null;default:0;column:absensi_mengajar_siswa_izin" json:"absensi_mengajar_siswa_izin"`
	AbsensiMengajarSiswaAlpha int `gorm:"not null;default:0;column:absensi_mengajar_siswa_alpha" json:"absensi_mengajar_siswa_alpha"`

	AbsensiMengajarTime      *time.Time     `gorm:"type:timestamptz;column:absensi_mengajar_time" json:"absensi_mengajar_time,omitempty"`
	AbsensiMengajarCreatedAt time.Time      `gorm:"column:absensi_mengajar_created_at;autoCreateTime" json:"absensi_mengajar_created_at"`
	AbsensiMengajarUpdatedAt *time.Time     `gorm:"column:absensi_mengajar_updated_at;autoUpdateTime" json:"absensi_mengajar_updated_at,omitempty"`
	AbsensiMengajarDeletedAt gorm.DeletedAt `gorm:"column:absensi_mengajar_deleted_at;index" json:"absensi_mengajar_deleted_at,omitempty"`
}

func (AbsensiMengajarModel) TableName() string { return "absensi_mengajar" }
