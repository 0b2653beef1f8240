package services

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"sync"
	"time"

	"gorm.io/gorm/schema"

	"github.com/yungbote/koinonia-backend/internal/logger"
	"github.com/yungbote/koinonia-backend/internal/types"
)

const PackageVersion = "0.5.0"

type ColumnInfo struct {
	Name       string `json:"name"`
	Type       string `json:"type"`
	Nullable   bool   `json:"nullable"`
	PrimaryKey bool   `json:"primary_key"`
}

type ModelInfo struct {
	ModelName   string       `json:"model_name"`
	TableName   string       `json:"table_name"`
	ColumnCount int          `json:"column_count"`
	Columns     []ColumnInfo `json:"columns"`
}

type SchemaManifest struct {
	Models     []ModelInfo `json:"models"`
	ModelCount int         `json:"model_count"`
}

type SeedFileInfo struct {
	Entries int `json:"entries"`
}

type SeedManifest struct {
	SeedDir          string                  `json:"seed_dir"`
	SeedFiles        map[string]SeedFileInfo `json:"seed_files"`
	TotalSeedEntries int                     `json:"total_seed_entries"`
}

// Manifest is the full schema-manifest.json payload.
type Manifest struct {
	GeneratedAt      string                  `json:"generated_at"`
	PackageVersion   string                  `json:"package_version"`
	ModelCount       int                     `json:"model_count"`
	Models           []string                `json:"models"`
	ModelDetails     []ModelInfo             `json:"model_details"`
	SeedFiles        map[string]SeedFileInfo `json:"seed_files"`
	TotalSeedEntries int                     `json:"total_seed_entries"`
}

// ExportService builds static data artifacts from the registered models and
// the seed directory. No database connection is required.
type ExportService interface {
	SchemaManifest() (*SchemaManifest, error)
	SeedManifest(seedDir string) *SeedManifest
	BuildManifest(seedDir string) (*Manifest, error)
	WriteManifest(outDir, seedDir string) (string, error)
}

type exportService struct {
	log *logger.Logger
}

func NewExportService(baseLog *logger.Logger) ExportService {
	return &exportService{log: baseLog.With("service", "ExportService")}
}

func (es *exportService) SchemaManifest() (*SchemaManifest, error) {
	cache := &sync.Map{}
	namer := schema.NamingStrategy{}

	models := []ModelInfo{}
	for _, model := range types.AllModels() {
		parsed, err := schema.Parse(model, cache, namer)
		if err != nil {
			return nil, fmt.Errorf("parse model schema: %w", err)
		}
		columns := []ColumnInfo{}
		for _, field := range parsed.Fields {
			if field.DBName == "" {
				continue
			}
			columns = append(columns, ColumnInfo{
				Name:       field.DBName,
				Type:       string(field.DataType),
				Nullable:   !field.NotNull && !field.PrimaryKey,
				PrimaryKey: field.PrimaryKey,
			})
		}
		models = append(models, ModelInfo{
			ModelName:   reflect.TypeOf(model).Elem().Name(),
			TableName:   parsed.Table,
			ColumnCount: len(columns),
			Columns:     columns,
		})
	}
	return &SchemaManifest{Models: models, ModelCount: len(models)}, nil
}

func (es *exportService) SeedManifest(seedDir string) *SeedManifest {
	manifest := &SeedManifest{
		SeedDir:   seedDir,
		SeedFiles: map[string]SeedFileInfo{},
	}

	paths, err := filepath.Glob(filepath.Join(seedDir, "*.json"))
	if err != nil {
		return manifest
	}
	sort.Strings(paths)

	for _, path := range paths {
		count := 0
		if raw, err := os.ReadFile(path); err == nil {
			count = countSeedEntries(raw)
		}
		manifest.SeedFiles[filepath.Base(path)] = SeedFileInfo{Entries: count}
		manifest.TotalSeedEntries += count
	}
	return manifest
}

func (es *exportService) BuildManifest(seedDir string) (*Manifest, error) {
	schemaManifest, err := es.SchemaManifest()
	if err != nil {
		return nil, err
	}
	seedManifest := es.SeedManifest(seedDir)

	names := make([]string, 0, len(schemaManifest.Models))
	for _, m := range schemaManifest.Models {
		names = append(names, m.ModelName)
	}

	return &Manifest{
		GeneratedAt:      time.Now().UTC().Format(time.RFC3339),
		PackageVersion:   PackageVersion,
		ModelCount:       schemaManifest.ModelCount,
		Models:           names,
		ModelDetails:     schemaManifest.Models,
		SeedFiles:        seedManifest.SeedFiles,
		TotalSeedEntries: seedManifest.TotalSeedEntries,
	}, nil
}

func (es *exportService) WriteManifest(outDir, seedDir string) (string, error) {
	manifest, err := es.BuildManifest(seedDir)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	out := filepath.Join(outDir, "schema-manifest.json")
	raw, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(out, append(raw, '\n'), 0o644); err != nil {
		return "", fmt.Errorf("write manifest: %w", err)
	}
	es.log.Info("Wrote schema manifest", "path", out, "models", manifest.ModelCount)
	return out, nil
}

// countSeedEntries counts top-level entries in a seed JSON document: the
// length of the document itself when it is a list, otherwise the length of
// the first list-valued key.
func countSeedEntries(raw []byte) int {
	var asList []json.RawMessage
	if err := json.Unmarshal(raw, &asList); err == nil {
		return len(asList)
	}
	var asMap map[string]json.RawMessage
	if err := json.Unmarshal(raw, &asMap); err != nil {
		return 0
	}
	keys := make([]string, 0, len(asMap))
	for k := range asMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		var list []json.RawMessage
		if err := json.Unmarshal(asMap[k], &list); err == nil {
			return len(list)
		}
	}
	return 0
}
