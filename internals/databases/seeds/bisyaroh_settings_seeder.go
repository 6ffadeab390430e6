package seeds

import (
	"log"

	bisyaroh "alhikam_backend/internals/features/bisyaroh/model"
	settings "alhikam_backend/internals/features/settings/model"

	"gorm.io/gorm"
)

// Tarif default mengikuti SK bisyaroh yang berlaku. Seeder hanya mengisi key
// yang belum ada — nilai yang sudah diubah admin lewat UI tidak disentuh.
var defaultBisyarohSettings = []bisyaroh.BisyarohSettingModel{
	{BisyarohSettingKey: bisyaroh.KeyBisyarohPerJam, BisyarohSettingValue: "30000",
		BisyarohSettingCategory: bisyaroh.KategoriTarifDasar, BisyarohSettingLabel: "Bisyaroh per jam pelajaran", BisyarohSettingSortOrder: 1},
	{BisyarohSettingKey: bisyaroh.KeyTransportPerHadir, BisyarohSettingValue: "7500",
		BisyarohSettingCategory: bisyaroh.KategoriTarifDasar, BisyarohSettingLabel: "Transport per hari hadir", BisyarohSettingSortOrder: 2},
	{BisyarohSettingKey: bisyaroh.KeyMasaKerjaPerTahun, BisyarohSettingValue: "5000",
		BisyarohSettingCategory: bisyaroh.KategoriTarifDasar, BisyarohSettingLabel: "Tunjangan masa kerja per tahun (maks 5 tahun)", BisyarohSettingSortOrder: 3},

	{BisyarohSettingKey: "tunj_kepala_madrasah", BisyarohSettingValue: "150000",
		BisyarohSettingCategory: bisyaroh.KategoriTunjanganJabatan, BisyarohSettingLabel: "Tunjangan Kepala Madrasah", BisyarohSettingSortOrder: 10},
	{BisyarohSettingKey: "tunj_tata_administrasi_i", BisyarohSettingValue: "100000",
		BisyarohSettingCategory: bisyaroh.KategoriTunjanganJabatan, BisyarohSettingLabel: "Tunjangan Tata Administrasi I", BisyarohSettingSortOrder: 11},
	{BisyarohSettingKey: "tunj_tata_administrasi_ii", BisyarohSettingValue: "75000",
		BisyarohSettingCategory: bisyaroh.KategoriTunjanganJabatan, BisyarohSettingLabel: "Tunjangan Tata Administrasi II", BisyarohSettingSortOrder: 12},
	{BisyarohSettingKey: "tunj_waka_kurikulum", BisyarohSettingValue: "100000",
		BisyarohSettingCategory: bisyaroh.KategoriTunjanganJabatan, BisyarohSettingLabel: "Tunjangan Waka Kurikulum", BisyarohSettingSortOrder: 13},
	{BisyarohSettingKey: "tunj_waka_kesiswaan", BisyarohSettingValue: "100000",
		BisyarohSettingCategory: bisyaroh.KategoriTunjanganJabatan, BisyarohSettingLabel: "Tunjangan Waka Kesiswaan", BisyarohSettingSortOrder: 14},
	{BisyarohSettingKey: "tunj_wali_kelas", BisyarohSettingValue: "50000",
		BisyarohSettingCategory: bisyaroh.KategoriTunjanganJabatan, BisyarohSettingLabel: "Tunjangan Wali Kelas", BisyarohSettingSortOrder: 15},
	{BisyarohSettingKey: "tunj_proktor_anbk", BisyarohSettingValue: "50000",
		BisyarohSettingCategory: bisyaroh.KategoriTunjanganJabatan, BisyarohSettingLabel: "Tunjangan Proktor ANBK", BisyarohSettingSortOrder: 16},
	{BisyarohSettingKey: "tunj_teknisi_anbk", BisyarohSettingValue: "50000",
		BisyarohSettingCategory: bisyaroh.KategoriTunjanganJabatan, BisyarohSettingLabel: "Tunjangan Teknisi ANBK", BisyarohSettingSortOrder: 17},

	{BisyarohSettingKey: bisyaroh.KeyTunjKoordinator, BisyarohSettingValue: "50000",
		BisyarohSettingCategory: bisyaroh.KategoriTunjanganKegiatan, BisyarohSettingLabel: "Tunjangan koordinator kegiatan (per kegiatan)", BisyarohSettingSortOrder: 20},
	{BisyarohSettingKey: bisyaroh.KeyTunjPendamping, BisyarohSettingValue: "35000",
		BisyarohSettingCategory: bisyaroh.KategoriTunjanganKegiatan, BisyarohSettingLabel: "Tunjangan pendamping kegiatan (per kegiatan)", BisyarohSettingSortOrder: 21},
	{BisyarohSettingKey: bisyaroh.KeyTunjRapat, BisyarohSettingValue: "25000",
		BisyarohSettingCategory: bisyaroh.KategoriTunjanganKegiatan, BisyarohSettingLabel: "Tunjangan kehadiran rapat (per rapat)", BisyarohSettingSortOrder: 22},

	{BisyarohSettingKey: "potongan_arisan", BisyarohSettingValue: "20000",
		BisyarohSettingCategory: bisyaroh.KategoriPotongan, BisyarohSettingLabel: "Potongan arisan guru", BisyarohSettingSortOrder: 30},
}

// SeedBisyarohSettings isi tarif default + setting aplikasi awal.
func SeedBisyarohSettings(db *gorm.DB) {
	inserted := 0
	for i := range defaultBisyarohSettings {
		s := defaultBisyarohSettings[i]
		s.BisyarohSettingType = "integer"

		var count int64
		if err := db.Model(&bisyaroh.BisyarohSettingModel{}).
			Where("bisyaroh_setting_key = ?", s.BisyarohSettingKey).
			Count(&count).Error; err != nil {
			log.Printf("⚠️ seed setting %s: %v", s.BisyarohSettingKey, err)
			continue
		}
		if count > 0 {
			continue
		}
		if err := db.Create(&s).Error; err != nil {
			log.Printf("⚠️ seed setting %s: %v", s.BisyarohSettingKey, err)
			continue
		}
		inserted++
	}

	// flag unlock global default: terkunci
	var count int64
	if err := db.Model(&settings.AppSettingModel{}).
		Where("app_setting_key = ?", settings.KeyUnlockAllAttendance).
		Count(&count).Error; err == nil && count == 0 {
		_ = settings.SetValue(db, settings.KeyUnlockAllAttendance, "false", "boolean")
	}

	if inserted > 0 {
		log.Printf("🌱 seed bisyaroh settings: %d key baru", inserted)
	}
}
