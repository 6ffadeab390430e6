package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// JadwalModel = slot mengajar mingguan. Jam disimpan sebagai "HH:MM" string
// persis seperti input TU; resolver status yang memvalidasi formatnya.
type JadwalModel struct {
	JadwalID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:jadwal_id" json:"jadwal_id"`

	JadwalGuruID        uuid.UUID  `gorm:"type:uuid;not null;index;column:jadwal_guru_id" json:"jadwal_guru_id"`
	JadwalMapelID       uuid.UUID  `gorm:"type:uuid;not null;column:jadwal_mapel_id" json:"jadwal_mapel_id"`
	JadwalKelasID       uuid.UUID  `gorm:"type:uuid;not null;column:jadwal_kelas_id" json:"jadwal_kelas_id"`
	JadwalTahunAjaranID *uuid.UUID `gorm:"type:uuid;index;column:jadwal_tahun_ajaran_id" json:"jadwal_tahun_ajaran_id,omitempty"`

	JadwalHari       string `gorm:"type:varchar(10);not null;column:jadwal_hari" json:"jadwal_hari"` // Senin..Minggu
	JadwalJamMulai   string `gorm:"type:varchar(5);not null;column:jadwal_jam_mulai" json:"jadwal_jam_mulai"`
	JadwalJamSelesai string `gorm:"type:varchar(5);not null;column:jadwal_jam_selesai" json:"jadwal_jam_selesai"`
	JadwalJamKe      string `gorm:"type:varchar(10);column:jadwal_jam_ke" json:"jadwal_jam_ke"` // "3" atau "7-8"

	JadwalStatus string `gorm:"type:varchar(10);not null;default:'Aktif';column:jadwal_status" json:"jadwal_status"`

	JadwalCreatedAt time.Time      `gorm:"column:jadwal_created_at;autoCreateTime" json:"jadwal_created_at"`
	JadwalUpdatedAt *time.Time     `gorm:"column:jadwal_updated_at;autoUpdateTime" json:"jadwal_updated_at,omitempty"`
	JadwalDeletedAt gorm.DeletedAt `gorm:"column:jadwal_deleted_at;index" json:"jadwal_deleted_at,omitempty"`

	Mapel *MapelModel `gorm:"foreignKey:JadwalMapelID;references:MapelID" json:"mapel,omitempty"`
	Kelas *KelasModel `gorm:"foreignKey:JadwalKelasID;references:KelasID" json:"kelas,omitempty"`
	Guru  *GuruModel  `gorm:"foreignKey:JadwalGuruID;references:GuruID" json:"guru,omitempty"`
}

func (JadwalModel) TableName() string { return "jadwal" }

// JumlahJam menghitung bobot jam pelajaran dari jam_ke ("7-8" = 2 jam, "3" = 1 jam).
func (j *JadwalModel) JumlahJam() int {
	return HitungJamKe(j.JadwalJamKe)
}
