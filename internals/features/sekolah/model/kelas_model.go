package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type KelasModel struct {
	KelasID   uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:kelas_id" json:"kelas_id"`
	KelasNama string    `gorm:"not null;uniqueIndex;column:kelas_nama" json:"kelas_nama"`

	// wali kelas (homeroom), dipakai lookup tunjangan struktural
	KelasWaliGuruID *uuid.UUID `gorm:"type:uuid;column:kelas_wali_guru_id" json:"kelas_wali_guru_id,omitempty"`

	KelasCreatedAt time.Time      `gorm:"column:kelas_created_at;autoCreateTime" json:"kelas_created_at"`
	KelasUpdatedAt *time.Time     `gorm:"column:kelas_updated_at;autoUpdateTime" json:"kelas_updated_at,omitempty"`
	KelasDeletedAt gorm.DeletedAt `gorm:"column:kelas_deleted_at;index" json:"kelas_deleted_at,omitempty"`
}

func (KelasModel) TableName() string { return "kelas" }
