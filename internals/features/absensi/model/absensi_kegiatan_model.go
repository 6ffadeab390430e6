package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type AbsensiStatus string

const (
	AbsensiDraft     AbsensiStatus = "draft"
	AbsensiSubmitted AbsensiStatus = "submitted"
)

// PendampingAbsen = entry absensi satu guru pendamping di kolom JSON.
// self_attended menandai guru absen sendiri (bukan diisikan PJ) dan tidak
// boleh hilang saat PJ submit ulang.
type PendampingAbsen struct {
	GuruID       uuid.UUID  `json:"guru_id"`
	Status       Kehadiran  `json:"status"`
	Keterangan   string     `json:"keterangan,omitempty"`
	SelfAttended bool       `json:"self_attended,omitempty"`
	AttendedAt   *time.Time `json:"attended_at,omitempty"`
}

// SiswaAbsen = entry absensi siswa peserta kegiatan di kolom JSON.
type SiswaAbsen struct {
	SiswaID    uuid.UUID `json:"siswa_id"`
	Status     Kehadiran `json:"status"`
	Keterangan string    `json:"keterangan,omitempty"`
}

// AbsensiKegiatanModel = satu record absensi per kegiatan (bukan per hari);
// kegiatan multi-hari tetap satu absensi, mengikuti kebiasaan sekolah.
type AbsensiKegiatanModel struct {
	AbsensiKegiatanID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:absensi_kegiatan_id" json:"absensi_kegiatan_id"`

	AbsensiKegiatanKegiatanID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex;column:absensi_kegiatan_kegiatan_id" json:"absensi_kegiatan_kegiatan_id"`
	AbsensiKegiatanTanggal    time.Time `gorm:"type:date;not null;column:absensi_kegiatan_tanggal" json:"absensi_kegiatan_tanggal"`

	AbsensiKegiatanPenanggungJawabID uuid.UUID `gorm:"type:uuid;not null;column:absensi_kegiatan_penanggung_jawab_id" json:"absensi_kegiatan_penanggung_jawab_id"`
	AbsensiKegiatanPJStatus          Kehadiran `gorm:"type:varchar(1);not null;column:absensi_kegiatan_pj_status" json:"absensi_kegiatan_pj_status"`
	AbsensiKegiatanPJKeterangan      *string   `gorm:"column:absensi_kegiatan_pj_keterangan" json:"absensi_kegiatan_pj_keterangan,omitempty"`

	AbsensiKegiatanPendamping datatypes.JSONSlice[PendampingAbsen] `gorm:"column:absensi_kegiatan_pendamping" json:"absensi_kegiatan_pendamping"`
	AbsensiKegiatanSiswa      datatypes.JSONSlice[SiswaAbsen]      `gorm:"column:absensi_kegiatan_siswa" json:"absensi_kegiatan_siswa"`

	AbsensiKegiatanBeritaAcara *string                     `gorm:"column:absensi_kegiatan_berita_acara" json:"absensi_kegiatan_berita_acara,omitempty"`
	AbsensiKegiatanFoto        datatypes.JSONSlice[string] `gorm:"column:absensi_kegiatan_foto" json:"absensi_kegiatan_foto"`

	AbsensiKegiatanStatus AbsensiStatus `gorm:"type:varchar(10);not null;default:'draft';column:absensi_kegiatan_status" json:"absensi_kegiatan_status"`

	AbsensiKegiatanCreatedAt time.Time      `gorm:"column:absensi_kegiatan_created_at;autoCreateTime" json:"absensi_kegiatan_created_at"`
	AbsensiKegiatanUpdatedAt *time.Time     `gorm:"column:absensi_kegiatan_updated_at;autoUpdateTime" json:"absensi_kegiatan_updated_at,omitempty"`
	AbsensiKegiatanDeletedAt gorm.DeletedAt `gorm:"column:absensi_kegiatan_deleted_at;index" json:"absensi_kegiatan_deleted_at,omitempty"`
}

func (AbsensiKegiatanModel) TableName() string { return "absensi_kegiatan" }

// StatusPendamping cari status seorang pendamping di kolom JSON; nil kalau
// belum pernah diabsen.
func (a *AbsensiKegiatanModel) StatusPendamping(guruID uuid.UUID) *PendampingAbsen {
	for i := range a.AbsensiKegiatanPendamping {
		if a.AbsensiKegiatanPendamping[i].GuruID == guruID {
			return &a.AbsensiKegiatanPendamping[i]
		}
	}
	return nil
}
