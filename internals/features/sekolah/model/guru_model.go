package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GuruStatus string

const (
	GuruAktif    GuruStatus = "aktif"
	GuruNonAktif GuruStatus = "nonaktif"
)

type GuruModel struct {
	GuruID     uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:guru_id" json:"guru_id"`
	GuruUserID *uuid.UUID `gorm:"type:uuid;column:guru_user_id;uniqueIndex" json:"guru_user_id,omitempty"`

	GuruNama string  `gorm:"not null;column:guru_nama" json:"guru_nama"`
	GuruNIP  *string `gorm:"column:guru_nip" json:"guru_nip,omitempty"`

	// TMT = tanggal mulai tugas, dasar tunjangan masa kerja
	GuruTMT     *time.Time `gorm:"type:date;column:guru_tmt" json:"guru_tmt,omitempty"`
	GuruJabatan *string    `gorm:"column:guru_jabatan" json:"guru_jabatan,omitempty"`

	GuruStatus GuruStatus `gorm:"type:varchar(10);not null;default:'aktif';column:guru_status" json:"guru_status"`

	GuruCreatedAt time.Time      `gorm:"column:guru_created_at;autoCreateTime" json:"guru_created_at"`
	GuruUpdatedAt *time.Time     `gorm:"column:guru_updated_at;autoUpdateTime" json:"guru_updated_at,omitempty"`
	GuruDeletedAt gorm.DeletedAt `gorm:"column:guru_deleted_at;index" json:"guru_deleted_at,omitempty"`
}

func (GuruModel) TableName() string { return "guru" }
