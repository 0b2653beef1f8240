package repos

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

func newTestDB(t *testing.T) (*gorm.DB, *logger.Logger) {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrateAll(gdb); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return gdb, &logger.Logger{SugaredLogger: zap.NewNop().Sugar()}
}

func TestTaxonomyRepoRootsAndChildren(t *testing.T) {
	gdb, log := newTestDB(t)
	repo := NewTaxonomyRepo(gdb, log)
	ctx := context.Background()

	root := &types.TaxonomyNode{Slug: "i-theoria", Label: "Theoria"}
	if _, err := repo.Create(ctx, nil, []*types.TaxonomyNode{root}); err != nil {
		t.Fatalf("create root: %v", err)
	}
	children := []*types.TaxonomyNode{
		{Slug: "i-theoria-logic", Label: "Logic", ParentID: &root.ID},
		{Slug: "i-theoria-metaphysics", Label: "Metaphysics", ParentID: &root.ID},
	}
	if _, err := repo.Create(ctx, nil, children); err != nil {
		t.Fatalf("create children: %v", err)
	}

	roots, err := repo.ListRoots(ctx, nil)
	if err != nil {
		t.Fatalf("ListRoots: %v", err)
	}
	if len(roots) != 1 || roots[0].Slug != "i-theoria" {
		t.Errorf("roots=%v, want only i-theoria", roots)
	}

	kids, err := repo.ListChildren(ctx, nil, root.ID)
	if err != nil {
		t.Fatalf("ListChildren: %v", err)
	}
	if len(kids) != 2 {
		t.Fatalf("children=%d, want 2", len(kids))
	}
	if kids[0].Slug != "i-theoria-logic" || kids[1].Slug != "i-theoria-metaphysics" {
		t.Errorf("children out of insertion order: %v, %v", kids[0].Slug, kids[1].Slug)
	}

	node, err := repo.GetBySlug(ctx, nil, "i-theoria-logic")
	if err != nil {
		t.Fatalf("GetBySlug: %v", err)
	}
	if node.ParentID == nil || *node.ParentID != root.ID {
		t.Errorf("GetBySlug parent=%v, want %d", node.ParentID, root.ID)
	}
}

func TestLearningPathRepoGetByPathID(t *testing.T) {
	gdb, log := newTestDB(t)
	ctx := context.Background()

	learnerRepo := NewLearnerProfileRepo(gdb, log)
	pathRepo := NewLearningPathRepo(gdb, log)
	moduleRepo := NewLearningModuleRepo(gdb, log)

	learner := &types.LearnerProfile{Name: "Ada", Level: types.DifficultyBeginner}
	if _, err := learnerRepo.Create(ctx, nil, []*types.LearnerProfile{learner}); err != nil {
		t.Fatalf("create learner: %v", err)
	}
	path := &types.LearningPath{PathID: "abcd1234", Title: "Learning Path: I", LearnerID: learner.ID, TotalHours: 4.0}
	if _, err := pathRepo.Create(ctx, nil, []*types.LearningPath{path}); err != nil {
		t.Fatalf("create path: %v", err)
	}
	// Insert out of seq order; the lookup must return seq order.
	modules := []*types.LearningModule{
		{PathID: path.ID, ModuleID: "m-b", Title: "B", Organ: "i-theoria", Difficulty: types.DifficultyBeginner, Seq: 1},
		{PathID: path.ID, ModuleID: "m-a", Title: "A", Organ: "i-theoria", Difficulty: types.DifficultyBeginner, Seq: 0},
	}
	if _, err := moduleRepo.Create(ctx, nil, modules); err != nil {
		t.Fatalf("create modules: %v", err)
	}

	got, err := pathRepo.GetByPathID(ctx, nil, "abcd1234")
	if err != nil {
		t.Fatalf("GetByPathID: %v", err)
	}
	if got == nil {
		t.Fatal("GetByPathID returned nil")
	}
	if len(got.Modules) != 2 {
		t.Fatalf("modules=%d, want 2", len(got.Modules))
	}
	if got.Modules[0].Seq != 0 || got.Modules[1].Seq != 1 {
		t.Errorf("modules not in seq order: %d, %d", got.Modules[0].Seq, got.Modules[1].Seq)
	}

	missing, err := pathRepo.GetByPathID(ctx, nil, "ffffffff")
	if err != nil {
		t.Fatalf("GetByPathID missing: %v", err)
	}
	if missing != nil {
		t.Errorf("GetByPathID for unknown token=%v, want nil", missing)
	}
}

func TestEntryRepoGetByTitleAuthor(t *testing.T) {
	gdb, log := newTestDB(t)
	repo := NewEntryRepo(gdb, log)
	ctx := context.Background()

	if _, err := repo.Create(ctx, nil, []*types.Entry{
		{Title: "Rhetoric", Author: "Aristotle", Difficulty: types.DifficultyIntermediate},
	}); err != nil {
		t.Fatalf("create entry: %v", err)
	}

	got, err := repo.GetByTitleAuthor(ctx, nil, "Rhetoric", "Aristotle")
	if err != nil {
		t.Fatalf("GetByTitleAuthor: %v", err)
	}
	if got == nil {
		t.Fatal("existing entry not found")
	}

	none, err := repo.GetByTitleAuthor(ctx, nil, "Rhetoric", "Plato")
	if err != nil {
		t.Fatalf("GetByTitleAuthor miss: %v", err)
	}
	if none != nil {
		t.Errorf("got=%v for unknown author, want nil", none)
	}
}
