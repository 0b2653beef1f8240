package main

import (
	"context"
	"fmt"
	"os"

	"github.com/yungbote/koinonia-backend/internal/db"
	"github.com/yungbote/koinonia-backend/internal/logger"
	"github.com/yungbote/koinonia-backend/internal/seed"
	"github.com/yungbote/koinonia-backend/internal/utils"
)

func main() {
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

	seedDir := utils.GetEnv("SEED_DIR", "seed", log)
	if len(os.Args) > 1 {
		seedDir = os.Args[1]
	}

	postgresService, err := db.NewPostgresService(log)
	if err != nil {
		log.Fatal("Postgres init failed", "error", err)
	}
	if err := postgresService.AutoMigrateAll(); err != nil {
		log.Fatal("Postgres auto migration failed", "error", err)
	}

	loader := seed.NewLoader(postgresService.DB(), log)
	rows, err := loader.LoadAll(context.Background(), seedDir)
	if err != nil {
		log.Fatal("Seed load failed", "error", err)
	}
	log.Info("Done", "rows", rows)
}
