package database

import (
	"log"

	absensi "alhikam_backend/internals/features/absensi/model"
	bisyaroh "alhikam_backend/internals/features/bisyaroh/model"
	sekolah "alhikam_backend/internals/features/sekolah/model"
	settings "alhikam_backend/internals/features/settings/model"
)

// AutoMigrate jalan saat boot (opsional, matikan dengan DB_AUTO_MIGRATE=false
// di produksi kalau skema dikelola terpisah).
func AutoMigrate() {
	if getenv("DB_AUTO_MIGRATE", "true") != "true" {
		log.Println("⏭️  AutoMigrate dilewati (DB_AUTO_MIGRATE != true)")
		return
	}

	err := DB.AutoMigrate(
		// master sekolah
		&sekolah.GuruModel{},
		&sekolah.KelasModel{},
		&sekolah.SiswaModel{},
		&sekolah.MapelModel{},
		&sekolah.TahunAjaranModel{},
		&sekolah.JadwalModel{},
		&sekolah.KegiatanModel{},
		&sekolah.RapatModel{},

		// absensi
		&absensi.AbsensiMengajarModel{},
		&absensi.AbsensiSiswaModel{},
		&absensi.AbsensiKegiatanModel{},
		&absensi.AbsensiRapatModel{},

		// bisyaroh + settings
		&bisyaroh.BisyarohModel{},
		&bisyaroh.BisyarohSettingModel{},
		&bisyaroh.BisyarohHistoryModel{},
		&settings.AppSettingModel{},
	)
	if err != nil {
		log.Fatalf("❌ AutoMigrate gagal: %v", err)
	}
	log.Println("✅ AutoMigrate selesai.")
}
