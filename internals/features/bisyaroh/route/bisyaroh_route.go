package route

import (
	"alhikam_backend/internals/features/bisyaroh/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// BisyarohUserRoutes = rute guru (group /api/u).
func BisyarohUserRoutes(r fiber.Router, db *gorm.DB) {
	guru := controller.NewBisyarohGuruController(db)

	bis := r.Group("/bisyaroh")
	bis.Get("/", guru.GetSlip)
	bis.Get("/rekap", guru.GetRekap)
}

// BisyarohAdminRoutes = rute admin (group /api/a, role admin).
func BisyarohAdminRoutes(r fiber.Router, db *gorm.DB) {
	admin := controller.NewBisyarohAdminController(db)

	bis := r.Group("/bisyaroh")
	bis.Get("/", admin.GetSlips)
	bis.Delete("/", admin.DeleteSlips)
	bis.Post("/generate", admin.Generate)
	bis.Get("/settings", admin.GetSettings)
	bis.Put("/settings/:key", admin.UpdateSetting)
	bis.Get("/kegiatan-bulan", admin.GetKegiatanBulan)
	bis.Get("/rapat-bulan", admin.GetRapatBulan)
	bis.Get("/history", admin.GetHistory)
	bis.Post("/history", admin.SaveHistory)
	bis.Get("/history/:history_id", admin.ShowHistory)
	bis.Delete("/history/:history_id", admin.DeleteHistory)
	bis.Post("/history/:history_id/lock", admin.LockHistory)
	bis.Post("/history/:history_id/unlock", admin.UnlockHistory)
	bis.Get("/:bisyaroh_id", admin.GetSlipDetail)

	r.Get("/guru/:guru_id/summary", admin.GetGuruSummary)
}
