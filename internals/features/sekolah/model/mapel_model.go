package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MapelModel struct {
	MapelID   uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:mapel_id" json:"mapel_id"`
	MapelNama string    `gorm:"not null;column:mapel_nama" json:"mapel_nama"`
	MapelKode *string   `gorm:"column:mapel_kode" json:"mapel_kode,omitempty"`

	MapelCreatedAt time.Time      `gorm:"column:mapel_created_at;autoCreateTime" json:"mapel_created_at"`
	MapelUpdatedAt *time.Time     `gorm:"column:mapel_updated_at;autoUpdateTime" json:"mapel_updated_at,omitempty"`
	MapelDeletedAt gorm.DeletedAt `gorm:"column:mapel_deleted_at;index" json:"mapel_deleted_at,omitempty"`
}

func (MapelModel) TableName() string { return "mapel" }
