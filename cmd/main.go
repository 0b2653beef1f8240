package main

import (
	"fmt"
	"os"

	"github.com/yungbote/koinonia-backend/internal/db"
	"github.com/yungbote/koinonia-backend/internal/handlers"
	"github.com/yungbote/koinonia-backend/internal/logger"
	"github.com/yungbote/koinonia-backend/internal/repos"
	"github.com/yungbote/koinonia-backend/internal/server"
	"github.com/yungbote/koinonia-backend/internal/services"
	"github.com/yungbote/koinonia-backend/internal/utils"
)

func main() {
	// Logger
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Env
	port := utils.GetEnv("PORT", "8080", log)
	seedDir := utils.GetEnv("SEED_DIR", "seed", log)

	// Postgres
	postgresService, err := db.NewPostgresService(log)
	if err != nil {
		log.Fatal("Postgres init failed", "error", err)
	}
	if err := postgresService.AutoMigrateAll(); err != nil {
		log.Fatal("Postgres auto migration failed", "error", err)
	}
	thePG := postgresService.DB()

	// Repos
	log.Info("Setting up Repos from main...")
	taxonomyRepo := repos.NewTaxonomyRepo(thePG, log)
	entryRepo := repos.NewEntryRepo(thePG, log)
	learnerRepo := repos.NewLearnerProfileRepo(thePG, log)
	pathRepo := repos.NewLearningPathRepo(thePG, log)
	moduleRepo := repos.NewLearningModuleRepo(thePG, log)

	// Services
	log.Info("Setting up Services from main...")
	syllabusService := services.NewSyllabusService(thePG, log, taxonomyRepo, entryRepo, learnerRepo, pathRepo, moduleRepo)
	exportService := services.NewExportService(log)

	// Handlers
	syllabusHandler := handlers.NewSyllabusHandler(syllabusService)
	manifestHandler := handlers.NewManifestHandler(exportService, seedDir)

	// Router
	router := server.NewRouter(server.RouterConfig{
		SyllabusHandler: syllabusHandler,
		ManifestHandler: manifestHandler,
	})

	log.Info("Starting server", "port", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatal("Server exited", "error", err)
	}
}
