package model

import (
	"strconv"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Kategori settings bisyaroh (mengelompokkan tampilan admin).
const (
	KategoriTarifDasar        = "tarif_dasar"
	KategoriTunjanganJabatan  = "tunjangan_jabatan"
	KategoriTunjanganKegiatan = "tunjangan_kegiatan"
	KategoriPotongan          = "potongan"
)

// Key tarif yang dipakai kalkulator.
const (
	KeyBisyarohPerJam    = "bisyaroh_per_jam"
	KeyTransportPerHadir = "transport_per_hadir"
	KeyMasaKerjaPerTahun = "tunjangan_masa_kerja_per_tahun"
	KeyTunjKoordinator   = "tunj_koordinator_kegiatan"
	KeyTunjPendamping    = "tunj_pendamping_kegiatan"
	KeyTunjRapat         = "tunj_rapat"
)

type BisyarohSettingModel struct {
	BisyarohSettingID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:bisyaroh_setting_id" json:"bisyaroh_setting_id"`
	BisyarohSettingKey       string    `gorm:"not null;uniqueIndex;column:bisyaroh_setting_key" json:"bisyaroh_setting_key"`
	BisyarohSettingValue     string    `gorm:"not null;default:'0';column:bisyaroh_setting_value" json:"bisyaroh_setting_value"`
	BisyarohSettingType      string    `gorm:"type:varchar(10);not null;default:'integer';column:bisyaroh_setting_type" json:"bisyaroh_setting_type"`
	BisyarohSettingCategory  string    `gorm:"not null;index;column:bisyaroh_setting_category" json:"bisyaroh_setting_category"`
	BisyarohSettingLabel     string    `gorm:"not null;column:bisyaroh_setting_label" json:"bisyaroh_setting_label"`
	BisyarohSettingSortOrder int       `gorm:"not null;default:0;column:bisyaroh_setting_sort_order" json:"bisyaroh_setting_sort_order"`

	BisyarohSettingCreatedAt time.Time  `gorm:"column:bisyaroh_setting_created_at;autoCreateTime" json:"bisyaroh_setting_created_at"`
	BisyarohSettingUpdatedAt *time.Time `gorm:"column:bisyaroh_setting_updated_at;autoUpdateTime" json:"bisyaroh_setting_updated_at,omitempty"`
}

func (BisyarohSettingModel) TableName() string { return "bisyaroh_settings" }

// IntValue parse nilai integer setting (0 kalau bukan angka).
func (s *BisyarohSettingModel) IntValue() int64 {
	v, err := strconv.ParseInt(s.BisyarohSettingValue, 10, 64)
	if err != nil {
		return 0
	}
	return v
}

// LoadSettingMap ambil seluruh settings sebagai map key → nilai integer.
func LoadSettingMap(db *gorm.DB) (map[string]int64, error) {
	var rows []BisyarohSettingModel
	if err := db.Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make(map[string]int64, len(rows))
	for i := range rows {
		out[rows[i].BisyarohSettingKey] = rows[i].IntValue()
	}
	return out, nil
}

// LoadPotongan ambil daftar potongan (kategori "potongan") urut sort_order.
func LoadPotongan(db *gorm.DB) ([]BisyarohSettingModel, error) {
	var rows []BisyarohSettingModel
	err := db.Where("bisyaroh_setting_category = ?", KategoriPotongan).
		Order("bisyaroh_setting_sort_order").
		Find(&rows).Error
	return rows, err
}
