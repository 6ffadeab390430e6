package route

import (
	"alhikam_backend/internals/features/absensi/controller"
	"alhikam_backend/internals/middlewares"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AbsensiUserRoutes = rute guru (group /api/u, sudah lewat AuthJWT).
func AbsensiUserRoutes(r fiber.Router, db *gorm.DB) {
	guru := controller.NewAbsensiGuruController(db)
	kegiatan := controller.NewKegiatanController(db)
	rapat := controller.NewRapatController(db)

	absensi := r.Group("/absensi")
	absensi.Get("/jadwal-hari-ini", guru.GetJadwalHariIni)
	absensi.Get("/jadwal-seminggu", guru.GetJadwalSeminggu)
	absensi.Get("/jadwal/:jadwal_id/detail", guru.GetDetail)
	absensi.Post("/jadwal/:jadwal_id/simpan", guru.Simpan)
	absensi.Get("/riwayat", guru.GetRiwayat)

	keg := r.Group("/kegiatan")
	keg.Get("/", kegiatan.GetList)
	keg.Get("/:kegiatan_id/absensi", kegiatan.GetDetail)
	keg.Post("/:kegiatan_id/absensi", kegiatan.Submit)
	keg.Post("/:kegiatan_id/absensi-mandiri", kegiatan.SubmitMandiri)

	rpt := r.Group("/rapat")
	rpt.Get("/", rapat.GetList)
	rpt.Get("/:rapat_id/absensi", rapat.GetDetail)
	rpt.Post("/:rapat_id/absensi", rapat.Submit)
	rpt.Post("/:rapat_id/absensi-mandiri", rapat.SubmitMandiri)
}

// AbsensiAdminRoutes = rute admin (group /api/a, role admin).
func AbsensiAdminRoutes(r fiber.Router, db *gorm.DB) {
	admin := controller.NewAbsensiAdminController(db)

	absensi := r.Group("/absensi")
	absensi.Get("/unlock", admin.GetUnlock)
	absensi.Put("/unlock", admin.SetUnlock)
	absensi.Post("/import", middlewares.ImportRateLimiter(), admin.ImportJSON)
	absensi.Post("/import-xlsx", middlewares.ImportRateLimiter(), admin.ImportXLSX)
}
