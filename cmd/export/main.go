package main

import (
	"fmt"
	"os"

	"github.com/yungbote/koinonia-backend/internal/logger"
	"github.com/yungbote/koinonia-backend/internal/services"
	"github.com/yungbote/koinonia-backend/internal/utils"
)

// Writes data/schema-manifest.json from the registered models and the seed
// directory. No database connection required.
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

	outDir := utils.GetEnv("EXPORT_DIR", "data", log)
	seedDir := utils.GetEnv("SEED_DIR", "seed", log)

	exportService := services.NewExportService(log)
	path, err := exportService.WriteManifest(outDir, seedDir)
	if err != nil {
		log.Fatal("Manifest export failed", "error", err)
	}
	fmt.Printf("Written: %s\n", path)
}
