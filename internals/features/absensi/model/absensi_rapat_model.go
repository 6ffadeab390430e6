package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// PesertaAbsen = entry absensi satu peserta rapat di kolom JSON.
type PesertaAbsen struct {
	GuruID       uuid.UUID  `json:"guru_id"`
	Status       Kehadiran  `json:"status"`
	Keterangan   string     `json:"keterangan,omitempty"`
	SelfAttended bool       `json:"self_attended,omitempty"`
	AttendedAt   *time.Time `json:"attended_at,omitempty"`
}

// AbsensiRapatModel = satu record absensi per rapat. Pimpinan dan sekretaris
// punya kolom status sendiri; peserta lain masuk array JSON.
type AbsensiRapatModel struct {
	AbsensiRapatID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:absensi_rapat_id" json:"absensi_rapat_id"`

	AbsensiRapatRapatID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex;column:absensi_rapat_rapat_id" json:"absensi_rapat_rapat_id"`
	AbsensiRapatTanggal time.Time `gorm:"type:date;not null;column:absensi_rapat_tanggal" json:"absensi_rapat_tanggal"`

	AbsensiRapatPimpinanStatus       Kehadiran  `gorm:"type:varchar(1);not null;column:absensi_rapat_pimpinan_status" json:"absensi_rapat_pimpinan_status"`
	AbsensiRapatPimpinanKeterangan   *string    `gorm:"column:absensi_rapat_pimpinan_keterangan" json:"absensi_rapat_pimpinan_keterangan,omitempty"`
	AbsensiRapatPimpinanSelfAttended bool       `gorm:"not null;default:false;column:absensi_rapat_pimpinan_self_attended" json:"absensi_rapat_pimpinan_self_attended"`
	AbsensiRapatPimpinanAttendedAt   *time.Time `gorm:"type:timestamptz;column:absensi_rapat_pimpinan_attended_at" json:"absensi_rapat_pimpinan_attended_at,omitempty"`

	AbsensiRapatSekretarisStatus     Kehadiran `gorm:"type:varchar(1);not null;column:absensi_rapat_sekretaris_status" json:"absensi_rapat_sekretaris_status"`
	AbsensiRapatSekretarisKeterangan *string   `gorm:"column:absensi_rapat_sekretaris_keterangan" json:"absensi_rapat_sekretaris_keterangan,omitempty"`

	AbsensiRapatPeserta datatypes.JSONSlice[PesertaAbsen] `gorm:"column:absensi_rapat_peserta" json:"absensi_rapat_peserta"`

	AbsensiRapatNotulensi *string                     `gorm:"column:absensi_rapat_notulensi" json:"absensi_rapat_notulensi,omitempty"`
	AbsensiRapatFoto      datatypes.JSONSlice[string] `gorm:"column:absensi_rapat_foto" json:"absensi_rapat_foto"`

	AbsensiRapatStatus AbsensiStatus `gorm:"type:varchar(10);not null;default:'draft';column:absensi_rapat_status" json:"absensi_rapat_status"`

	AbsensiRapatCreatedAt time.Time      `gorm:"column:absensi_rapat_created_at;autoCreateTime" json:"absensi_rapat_created_at"`
	AbsensiRapatUpdatedAt *time.Time     `gorm:"column:absensi_rapat_updated_at;autoUpdateTime" json:"absensi_rapat_updated_at,omitempty"`
	AbsensiRapatDeletedAt gorm.DeletedAt `gorm:"column:absensi_rapat_deleted_at;index" json:"absensi_rapat_deleted_at,omitempty"`
}

func (AbsensiRapatModel) TableName() string { return "absensi_rapat" }

// StatusPeserta cari status seorang peserta; nil kalau belum diabsen.
func (a *AbsensiRapatModel) StatusPeserta(guruID uuid.UUID) *PesertaAbsen {
	for i := range a.AbsensiRapatPeserta {
		if a.AbsensiRapatPeserta[i].GuruID == guruID {
			return &a.AbsensiRapatPeserta[i]
		}
	}
	return nil
}
