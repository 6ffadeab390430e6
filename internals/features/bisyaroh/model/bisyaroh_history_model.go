package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// HistorySnapshotEntry = satu baris guru di snapshot riwayat bisyaroh.
type HistorySnapshotEntry struct {
	GuruID          uuid.UUID        `json:"guru_id"`
	Nama            string           `json:"nama"`
	Jabatan         string           `json:"jabatan"`
	JumlahJam       int              `json:"jumlah_jam"`
	JumlahHadir     int              `json:"jumlah_hadir"`
	GajiPokok       int64            `json:"gaji_pokok"`
	TunjStruktural  int64            `json:"tunj_struktural"`
	TunjTransport   int64            `json:"tunj_transport"`
	TunjMasaKerja   int64            `json:"tunj_masa_kerja"`
	TunjKegiatan    int64            `json:"tunj_kegiatan"`
	TunjRapat       int64            `json:"tunj_rapat"`
	Jumlah          int64            `json:"jumlah"`
	PotonganDetail  map[string]int64 `json:"potongan_detail"`
	JumlahPotongan  int64            `json:"jumlah_potongan"`
	TotalPenerimaan int64            `json:"total_penerimaan"`
}

// BisyarohHistoryModel = snapshot bisyaroh satu periode yang disimpan sebagai
// arsip (bisa dikunci supaya tidak terhapus saat generate ulang).
type BisyarohHistoryModel struct {
	BisyarohHistoryID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:bisyaroh_history_id" json:"bisyaroh_history_id"`

	BisyarohHistoryBulan int    `gorm:"not null;index;column:bisyaroh_history_bulan" json:"bisyaroh_history_bulan"`
	BisyarohHistoryTahun int    `gorm:"not null;index;column:bisyaroh_history_tahun" json:"bisyaroh_history_tahun"`
	BisyarohHistoryLabel string `gorm:"not null;column:bisyaroh_history_label" json:"bisyaroh_history_label"`

	BisyarohHistoryData datatypes.JSONSlice[HistorySnapshotEntry] `gorm:"column:bisyaroh_history_data" json:"bisyaroh_history_data"`

	BisyarohHistoryTotalGuru       int   `gorm:"not null;default:0;column:bisyaroh_history_total_guru" json:"bisyaroh_history_total_guru"`
	BisyarohHistoryTotalJumlah     int64 `gorm:"not null;default:0;column:bisyaroh_history_total_jumlah" json:"bisyaroh_history_total_jumlah"`
	BisyarohHistoryTotalPenerimaan int64 `gorm:"not null;default:0;column:bisyaroh_history_total_penerimaan" json:"bisyaroh_history_total_penerimaan"`

	BisyarohHistoryStatus string  `gorm:"type:varchar(10);not null;default:'draft';column:bisyaroh_history_status" json:"bisyaroh_history_status"` // draft|locked
	BisyarohHistoryNotes  *string `gorm:"column:bisyaroh_history_notes" json:"bisyaroh_history_notes,omitempty"`

	BisyarohHistoryCreatedBy *uuid.UUID `gorm:"type:uuid;column:bisyaroh_history_created_by" json:"bisyaroh_history_created_by,omitempty"`
	BisyarohHistoryLockedBy  *uuid.UUID `gorm:"type:uuid;column:bisyaroh_history_locked_by" json:"bisyaroh_history_locked_by,omitempty"`
	BisyarohHistoryLockedAt  *time.Time `gorm:"type:timestamptz;column:bisyaroh_history_locked_at" json:"bisyaroh_history_locked_at,omitempty"`

	BisyarohHistoryCreatedAt time.Time      `gorm:"column:bisyaroh_history_created_at;autoCreateTime" json:"bisyaroh_history_created_at"`
	BisyarohHistoryUpdatedAt *time.Time     `gorm:"column:bisyaroh_history_updated_at;autoUpdateTime" json:"bisyaroh_history_updated_at,omitempty"`
	BisyarohHistoryDeletedAt gorm.DeletedAt `gorm:"column:bisyaroh_history_deleted_at;index" json:"bisyaroh_history_deleted_at,omitempty"`
}

func (BisyarohHistoryModel) TableName() string { return "bisyaroh_histories" }
