package route

import (
	"alhikam_backend/internals/configs"
	absensiRoute "alhikam_backend/internals/features/absensi/route"
	bisyarohRoute "alhikam_backend/internals/features/bisyaroh/route"
	authMiddleware "alhikam_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupRoutes pasang semua rute:
//   /api/u → guru login (JWT, profil guru)
//   /api/a → admin (JWT + role admin/tata_usaha)
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	health := func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	}
	app.Get("/health", health)
	app.Get("/healthz", health)

	api := app.Group("/api")

	jwt := authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
		Secret:              configs.JWTSecret,
		AllowCookieFallback: true,
	})

	user := api.Group("/u", jwt)
	absensiRoute.AbsensiUserRoutes(user, db)
	bisyarohRoute.BisyarohUserRoutes(user, db)

	admin := api.Group("/a", jwt, authMiddleware.RequireRoles("admin", "tata_usaha"))
	absensiRoute.AbsensiAdminRoutes(admin, db)
	bisyarohRoute.BisyarohAdminRoutes(admin, db)
}
