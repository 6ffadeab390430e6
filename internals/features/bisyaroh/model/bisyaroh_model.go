package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Semua nilai uang dalam rupiah utuh (int64) — tidak ada floating point di
// jalur perhitungan supaya rekonsiliasi total_penerimaan = jumlah -
// jumlah_potongan selalu eksak.

// DetailMengajarEntry = satu baris log mengajar yang ikut disimpan di slip.
type DetailMengajarEntry struct {
	Tanggal    string    `json:"tanggal"`
	Hari       string    `json:"hari"`
	Jam        string    `json:"jam"`
	Mapel      string    `json:"mapel"`
	Kelas      string    `json:"kelas"`
	GuruStatus string    `json:"guru_status"`
}

// DetailKegiatanEntry = partisipasi guru di satu kegiatan dalam bulan slip.
type DetailKegiatanEntry struct {
	KegiatanID uuid.UUID `json:"kegiatan_id"`
	Nama       string    `json:"nama"`
	Tanggal    string    `json:"tanggal"`
	Peran      string    `json:"peran"` // Koordinator / Pendamping / "-"
	Hadir      int       `json:"hadir"`
	TotalSesi  int       `json:"total_sesi"`
	Tunjangan  int64     `json:"tunjangan"`
}

// DetailRapatEntry = partisipasi guru di satu rapat dalam bulan slip.
type DetailRapatEntry struct {
	RapatID   uuid.UUID `json:"rapat_id"`
	Agenda    string    `json:"agenda"`
	Tanggal   string    `json:"tanggal"`
	Tempat    string    `json:"tempat"`
	Hadir     bool      `json:"hadir"`
	Tunjangan int64     `json:"tunjangan"`
}

type BisyarohStatus string

const (
	BisyarohDraft BisyarohStatus = "draft"
	BisyarohFinal BisyarohStatus = "final"
)

// BisyarohModel = slip bisyaroh satu guru satu bulan. Hasil generate,
// selalu bisa dihitung ulang dari data absensi + settings.
type BisyarohModel struct {
	BisyarohID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:bisyaroh_id" json:"bisyaroh_id"`

	BisyarohGuruID uuid.UUID `gorm:"type:uuid;not null;column:bisyaroh_guru_id;uniqueIndex:uq_bisyaroh_guru_periode" json:"bisyaroh_guru_id"`
	BisyarohBulan  int       `gorm:"not null;column:bisyaroh_bulan;uniqueIndex:uq_bisyaroh_guru_periode" json:"bisyaroh_bulan"`
	BisyarohTahun  int       `gorm:"not null;column:bisyaroh_tahun;uniqueIndex:uq_bisyaroh_guru_periode" json:"bisyaroh_tahun"`

	BisyarohJumlahJam   int `gorm:"not null;default:0;column:bisyaroh_jumlah_jam" json:"bisyaroh_jumlah_jam"`
	BisyarohJumlahHadir int `gorm:"not null;default:0;column:bisyaroh_jumlah_hadir" json:"bisyaroh_jumlah_hadir"`

	BisyarohGajiPokok      int64 `gorm:"not null;default:0;column:bisyaroh_gaji_pokok" json:"bisyaroh_gaji_pokok"`
	BisyarohTunjStruktural int64 `gorm:"not null;default:0;column:bisyaroh_tunj_struktural" json:"bisyaroh_tunj_struktural"`
	BisyarohTunjTransport  int64 `gorm:"not null;default:0;column:bisyaroh_tunj_transport" json:"bisyaroh_tunj_transport"`
	BisyarohTunjMasaKerja  int64 `gorm:"not null;default:0;column:bisyaroh_tunj_masa_kerja" json:"bisyaroh_tunj_masa_kerja"`
	BisyarohTunjKegiatan   int64 `gorm:"not null;default:0;column:bisyaroh_tunj_kegiatan" json:"bisyaroh_tunj_kegiatan"`
	BisyarohTunjRapat      int64 `gorm:"not null;default:0;column:bisyaroh_tunj_rapat" json:"bisyaroh_tunj_rapat"`

	BisyarohJumlah          int64                              `gorm:"not null;default:0;column:bisyaroh_jumlah" json:"bisyaroh_jumlah"`
	BisyarohPotonganDetail  datatypes.JSONType[map[string]int64] `gorm:"column:bisyaroh_potongan_detail" json:"bisyaroh_potongan_detail"`
	BisyarohJumlahPotongan  int64                              `gorm:"not null;default:0;column:bisyaroh_jumlah_potongan" json:"bisyaroh_jumlah_potongan"`
	BisyarohTotalPenerimaan int64                              `gorm:"not null;default:0;column:bisyaroh_total_penerimaan" json:"bisyaroh_total_penerimaan"`

	BisyarohDetailMengajar datatypes.JSONSlice[DetailMengajarEntry] `gorm:"column:bisyaroh_detail_mengajar" json:"bisyaroh_detail_mengajar"`
	BisyarohDetailKegiatan datatypes.JSONSlice[DetailKegiatanEntry] `gorm:"column:bisyaroh_detail_kegiatan" json:"bisyaroh_detail_kegiatan"`
	BisyarohDetailRapat    datatypes.JSONSlice[DetailRapatEntry]    `gorm:"column:bisyaroh_detail_rapat" json:"bisyaroh_detail_rapat"`

	BisyarohStatus BisyarohStatus `gorm:"type:varchar(10);not null;default:'draft';column:bisyaroh_status" json:"bisyaroh_status"`

	BisyarohCreatedAt time.Time      `gorm:"column:bisyaroh_created_at;autoCreateTime" json:"bisyaroh_created_at"`
	BisyarohUpdatedAt *time.Time     `gorm:"column:bisyaroh_updated_at;autoUpdateTime" json:"bisyaroh_updated_at,omitempty"`
	BisyarohDeletedAt gorm.DeletedAt `gorm:"column:bisyaroh_deleted_at;index" json:"bisyaroh_deleted_at,omitempty"`
}

func (BisyarohModel) TableName() string { return "bisyaroh" }
