package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SiswaModel struct {
	SiswaID      uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:siswa_id" json:"siswa_id"`
	SiswaKelasID uuid.UUID `gorm:"type:uuid;not null;index;column:siswa_kelas_id" json:"siswa_kelas_id"`

	SiswaNama   string  `gorm:"not null;column:siswa_nama" json:"siswa_nama"`
	SiswaNIS    *string `gorm:"column:siswa_nis" json:"siswa_nis,omitempty"`
	SiswaStatus string  `gorm:"type:varchar(10);not null;default:'Aktif';column:siswa_status" json:"siswa_status"`

	SiswaCreatedAt time.Time      `gorm:"column:siswa_created_at;autoCreateTime" json:"siswa_created_at"`
	SiswaUpdatedAt *time.Time     `gorm:"column:siswa_updated_at;autoUpdateTime" json:"siswa_updated_at,omitempty"`
	SiswaDeletedAt gorm.DeletedAt `gorm:"column:siswa_deleted_at;index" json:"siswa_deleted_at,omitempty"`

	Kelas *KelasModel `gorm:"foreignKey:SiswaKelasID;references:KelasID" json:"kelas,omitempty"`
}

func (SiswaModel) TableName() string { return "siswa" }
