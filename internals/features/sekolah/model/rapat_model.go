package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// RapatModel = rapat dinas dengan pimpinan, sekretaris, dan daftar peserta.
type RapatModel struct {
	RapatID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:rapat_id" json:"rapat_id"`

	RapatAgenda  string    `gorm:"not null;column:rapat_agenda" json:"rapat_agenda"`
	RapatTanggal time.Time `gorm:"type:date;not null;index;column:rapat_tanggal" json:"rapat_tanggal"`

	RapatWaktuMulai   string  `gorm:"type:varchar(5);not null;column:rapat_waktu_mulai" json:"rapat_waktu_mulai"`
	RapatWaktuSelesai string  `gorm:"type:varchar(5);not null;column:rapat_waktu_selesai" json:"rapat_waktu_selesai"`
	RapatTempat       *string `gorm:"column:rapat_tempat" json:"rapat_tempat,omitempty"`

	RapatPimpinanID   uuid.UUID      `gorm:"type:uuid;not null;column:rapat_pimpinan_id" json:"rapat_pimpinan_id"`
	RapatSekretarisID uuid.UUID      `gorm:"type:uuid;not null;column:rapat_sekretaris_id" json:"rapat_sekretaris_id"`
	RapatPeserta      pq.StringArray `gorm:"type:text[];column:rapat_peserta" json:"rapat_peserta"`

	RapatCreatedAt time.Time      `gorm:"column:rapat_created_at;autoCreateTime" json:"rapat_created_at"`
	RapatUpdatedAt *time.Time     `gorm:"column:rapat_updated_at;autoUpdateTime" json:"rapat_updated_at,omitempty"`
	RapatDeletedAt gorm.DeletedAt `gorm:"column:rapat_deleted_at;index" json:"rapat_deleted_at,omitempty"`
}

func (RapatModel) TableName() string { return "rapat" }

func (r *RapatModel) IsPimpinan(guruID uuid.UUID) bool   { return r.RapatPimpinanID == guruID }
func (r *RapatModel) IsSekretaris(guruID uuid.UUID) bool { return r.RapatSekretarisID == guruID }

// IsPeserta cek apakah guru ada di daftar peserta rapat.
func (r *RapatModel) IsPeserta(guruID uuid.UUID) bool {
	id := guruID.String()
	for _, p := range r.RapatPeserta {
		if p == id {
			return true
		}
	}
	return false
}
