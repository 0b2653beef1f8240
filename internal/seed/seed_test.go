package seed

import (
	"context"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/yungbote/koinonia-backend/internal/db"
	"github.com/yungbote/koinonia-backend/internal/logger"
	"github.com/yungbote/koinonia-backend/internal/types"
)

// The loader tests run against the repository's real seed corpus.
const seedDir = "../../seed"

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrateAll(gdb); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return gdb
}

func newTestLoader(t *testing.T) (*Loader, *gorm.DB) {
	t.Helper()
	gdb := newTestDB(t)
	log := &logger.Logger{SugaredLogger: zap.NewNop().Sugar()}
	return NewLoader(gdb, log), gdb
}

func count(t *testing.T, gdb *gorm.DB, model interface{}) int64 {
	t.Helper()
	var n int64
	if err := gdb.Model(model).Count(&n).Error; err != nil {
		t.Fatalf("count %T: %v", model, err)
	}
	return n
}

func TestLoadAll(t *testing.T) {
	loader, gdb := newTestLoader(t)

	rows, err := loader.LoadAll(context.Background(), seedDir)
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if rows == 0 {
		t.Fatal("LoadAll touched zero rows")
	}

	var roots int64
	if err := gdb.Model(&types.TaxonomyNode{}).
		Where("parent_id IS NULL").
		Count(&roots).Error; err != nil {
		t.Fatalf("count roots: %v", err)
	}
	if roots != 8 {
		t.Errorf("taxonomy roots=%d, want 8 organs", roots)
	}

	if n := count(t, gdb, &types.Entry{}); n == 0 {
		t.Error("no reading entries loaded")
	}
	if n := count(t, gdb, &types.SalonSession{}); n != 2 {
		t.Errorf("salon sessions=%d, want 2", n)
	}
	if n := count(t, gdb, &types.Curriculum{}); n != 2 {
		t.Errorf("curricula=%d, want 2", n)
	}
	if n := count(t, gdb, &types.Event{}); n != 2 {
		t.Errorf("community events=%d, want 2", n)
	}
	if n := count(t, gdb, &types.Contributor{}); n != 2 {
		t.Errorf("contributors=%d, want 2", n)
	}

	// Curriculum sessions link to entries through the join table.
	if n := count(t, gdb, &types.SessionEntry{}); n == 0 {
		t.Error("no session-entry links created")
	}
}

func TestLoadAllIdempotent(t *testing.T) {
	loader, gdb := newTestLoader(t)

	if _, err := loader.LoadAll(context.Background(), seedDir); err != nil {
		t.Fatalf("first LoadAll: %v", err)
	}

	before := map[string]int64{
		"taxonomy":     count(t, gdb, &types.TaxonomyNode{}),
		"entries":      count(t, gdb, &types.Entry{}),
		"sessions":     count(t, gdb, &types.SalonSession{}),
		"participants": count(t, gdb, &types.Participant{}),
		"curricula":    count(t, gdb, &types.Curriculum{}),
		"events":       count(t, gdb, &types.Event{}),
		"contributors": count(t, gdb, &types.Contributor{}),
		"contribs":     count(t, gdb, &types.Contribution{}),
	}

	if _, err := loader.LoadAll(context.Background(), seedDir); err != nil {
		t.Fatalf("second LoadAll: %v", err)
	}

	after := map[string]int64{
		"taxonomy":     count(t, gdb, &types.TaxonomyNode{}),
		"entries":      count(t, gdb, &types.Entry{}),
		"sessions":     count(t, gdb, &types.SalonSession{}),
		"participants": count(t, gdb, &types.Participant{}),
		"curricula":    count(t, gdb, &types.Curriculum{}),
		"events":       count(t, gdb, &types.Event{}),
		"contributors": count(t, gdb, &types.Contributor{}),
		"contribs":     count(t, gdb, &types.Contribution{}),
	}

	for name, n := range before {
		if after[name] != n {
			t.Errorf("%s grew from %d to %d on reseed", name, n, after[name])
		}
	}
}

func TestLoadAllMissingDirFails(t *testing.T) {
	loader, gdb := newTestLoader(t)

	if _, err := loader.LoadAll(context.Background(), t.TempDir()); err == nil {
		t.Fatal("LoadAll succeeded against an empty directory")
	}

	// The failed load must leave nothing behind.
	if n := count(t, gdb, &types.TaxonomyNode{}); n != 0 {
		t.Errorf("taxonomy rows=%d after rollback, want 0", n)
	}
}

func TestParseDate(t *testing.T) {
	cases := []struct {
		value string
		ok    bool
	}{
		{"2026-01-14T19:00:00Z", true},
		{"2026-01-14T19:00:00", true},
		{"2026-01-14", true},
		{"14/01/2026", false},
		{"", false},
	}
	for _, tc := range cases {
		_, err := parseDate(tc.value)
		if (err == nil) != tc.ok {
			t.Errorf("parseDate(%q) err=%v, want ok=%v", tc.value, err, tc.ok)
		}
	}
}
