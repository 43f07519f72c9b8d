package main

import (
	"log"
	"time"

	"belajaradmin/config"
	"belajaradmin/database"
	authRoutes "belajaradmin/routers/authRoutes"
	curriculumRoutes "belajaradmin/routers/curriculumRoutes"
	dashboardRoutes "belajaradmin/routers/dashboardRoutes"
	planRoutes "belajaradmin/routers/planRoutes"
	shopRoutes "belajaradmin/routers/shopRoutes"
	userRoutes "belajaradmin/routers/userRoutes"
	"belajaradmin/store"
	"belajaradmin/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()

	cacheTTL := time.Duration(config.AppConfig.CacheTTLMinutes) * time.Minute

	if config.AppConfig.SeedMode {
		// In-memory repositories with demo data; nothing touches a database
		repos := store.MemoryRepositories()
		store.Use(repos, cacheTTL)
		database.Seed(repos)
		log.Println("Running in seed mode with in-memory repositories")
	} else {
		database.ConnectDb()
		store.Use(store.GormRepositories(database.Database.Db), cacheTTL)
	}

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	authRoutes.SetupAuthRoutes(app)
	curriculumRoutes.SetupCurriculumRoutes(app)
	planRoutes.SetupPlanRoutes(app)
	userRoutes.SetupUserRoutes(app)
	shopRoutes.SetupShopRoutes(app)
	dashboardRoutes.SetupDashboardRoutes(app)

	scheduler := utils.InitializeMaintenanceScheduler()
	defer scheduler.Stop()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
