package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"

	"alhikam_backend/internals/configs"
	database "alhikam_backend/internals/databases"
	"alhikam_backend/internals/databases/seeds"
	helper "alhikam_backend/internals/helpers"
	"alhikam_backend/internals/middlewares"
	"alhikam_backend/internals/route"
)

func main() {
	configs.LoadEnv()

	database.ConnectDB()
	database.TunePool()
	database.AutoMigrate()
	database.WarmUpQueries()
	seeds.SeedBisyarohSettings(database.DB)

	app := fiber.New(fiber.Config{
		AppName:     "MA Al-Hikam Backend",
		JSONEncoder: sonic.Marshal,
		JSONDecoder: sonic.Unmarshal,
		BodyLimit:   25 * 1024 * 1024, // foto base64 + file import
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return helper.FromFiberError(c, err)
		},
	})

	middlewares.SetupMiddlewares(app)
	route.SetupRoutes(app, database.DB)

	port := configs.GetEnv("PORT", "3000")
	go func() {
		if err := app.Listen(":" + port); err != nil {
			log.Fatalf("❌ Server berhenti: %v", err)
		}
	}()
	log.Printf("🚀 Server jalan di port %s", port)

	// graceful shutdown: tunggu SIGINT/SIGTERM, beri waktu request aktif selesai
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("🛑 Shutdown signal diterima, menutup server...")

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Printf("⚠️ Shutdown tidak mulus: %v", err)
	}
	if sqlDB, err := database.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
	log.Println("👋 Server berhenti.")
}
