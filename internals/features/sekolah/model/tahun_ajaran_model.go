package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TahunAjaranModel struct {
	TahunAjaranID   uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:tahun_ajaran_id" json:"tahun_ajaran_id"`
	TahunAjaranNama string    `gorm:"not null;uniqueIndex;column:tahun_ajaran_nama" json:"tahun_ajaran_nama"` // contoh: "2025/2026"

	TahunAjaranTanggalMulai   time.Time `gorm:"type:date;not null;column:tahun_ajaran_tanggal_mulai" json:"tahun_ajaran_tanggal_mulai"`
	TahunAjaranTanggalSelesai time.Time `gorm:"type:date;not null;column:tahun_ajaran_tanggal_selesai" json:"tahun_ajaran_tanggal_selesai"`

	TahunAjaranIsCurrent bool `gorm:"not null;default:false;column:tahun_ajaran_is_current" json:"tahun_ajaran_is_current"`

	TahunAjaranCreatedAt time.Time      `gorm:"column:tahun_ajaran_created_at;autoCreateTime" json:"tahun_ajaran_created_at"`
	TahunAjaranUpdatedAt *time.Time     `gorm:"column:tahun_ajaran_updated_at;autoUpdateTime" json:"tahun_ajaran_updated_at,omitempty"`
	TahunAjaranDeletedAt gorm.DeletedAt `gorm:"column:tahun_ajaran_deleted_at;index" json:"tahun_ajaran_deleted_at,omitempty"`
}

func (TahunAjaranModel) TableName() string { return "tahun_ajaran" }

// GetCurrentTahunAjaran ambil tahun ajaran aktif (is_current), nil kalau belum diset.
func GetCurrentTahunAjaran(db *gorm.DB) (*TahunAjaranModel, error) {
	var ta TahunAjaranModel
	err := db.Where("tahun_ajaran_is_current = TRUE").Take(&ta).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ta, nil
}
