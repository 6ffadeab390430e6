package model

import (
	"time"

	"github.com/google/uuid"
)

// AbsensiSiswaModel = absensi harian siswa. Konvensi lama dipertahankan:
// hanya S/I/A yang disimpan; hadir TIDAK punya row (hadir = tidak ada record).
// Satu row per (siswa, tanggal) — unique constraint jadi pagar race saat dua
// guru submit kelas yang sama bersamaan.
type AbsensiSiswaModel struct {
	AbsensiSiswaID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:absensi_siswa_id" json:"absensi_siswa_id"`

	AbsensiSiswaSiswaID uuid.UUID `gorm:"type:uuid;not null;column:absensi_siswa_siswa_id;uniqueIndex:uq_absensi_siswa_tanggal" json:"absensi_siswa_siswa_id"`
	AbsensiSiswaKelasID uuid.UUID `gorm:"type:uuid;not null;index;column:absensi_siswa_kelas_id" json:"absensi_siswa_kelas_id"`
	AbsensiSiswaTanggal time.Time `gorm:"type:date;not null;index;column:absensi_siswa_tanggal;uniqueIndex:uq_absensi_siswa_tanggal" json:"absensi_siswa_tanggal"`

	AbsensiSiswaStatus     Kehadiran `gorm:"type:varchar(1);not null;column:absensi_siswa_status" json:"absensi_siswa_status"` // S/I/A saja
	AbsensiSiswaKeterangan *string   `gorm:"column:absensi_siswa_keterangan" json:"absensi_siswa_keterangan,omitempty"`

	AbsensiSiswaCreatedAt time.Time  `gorm:"column:absensi_siswa_created_at;autoCreateTime" json:"absensi_siswa_created_at"`
	AbsensiSiswaUpdatedAt *time.Time `gorm:"column:absensi_siswa_updated_at;autoUpdateTime" json:"absensi_siswa_updated_at,omitempty"`
}

func (AbsensiSiswaModel) TableName() string { return "absensi_siswa" }
