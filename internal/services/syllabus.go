package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/yungbote/koinonia-backend/internal/logger"
	"github.com/yungbote/koinonia-backend/internal/repos"
	"github.com/yungbote/koinonia-backend/internal/types"
)

// ModulePlan is the transient view of one generated module, independent of
// the persisted row.
type ModulePlan struct {
	ModuleID       string   `json:"module_id"`
	Title          string   `json:"title"`
	Organ          string   `json:"organ"`
	Difficulty     string   `json:"difficulty"`
	Readings       []string `json:"readings"`
	Questions      []string `json:"questions"`
	EstimatedHours float64  `json:"estimated_hours"`
	Seq            int      `json:"seq"`
}

type PathResult struct {
	PathID     string       `json:"path_id"`
	Title      string       `json:"title"`
	Organs     []string     `json:"organs"`
	Level      string       `json:"level"`
	TotalHours float64      `json:"total_hours"`
	Modules    []ModulePlan `json:"modules"`
}

type SyllabusService interface {
	// GeneratePath assembles a personalized learning path from taxonomy and
	// reading data and persists learner, path, and modules. When tx is nil
	// the whole read+write flow runs in one transaction; otherwise the
	// caller owns commit/rollback.
	GeneratePath(ctx context.Context, tx *gorm.DB, organs []string, level, name string) (*PathResult, error)
	GetPath(ctx context.Context, tx *gorm.DB, pathID string) (*types.LearningPath, error)
}

type syllabusService struct {
	db           *gorm.DB
	log          *logger.Logger
	taxonomyRepo repos.TaxonomyRepo
	entryRepo    repos.EntryRepo
	learnerRepo  repos.LearnerProfileRepo
	pathRepo     repos.LearningPathRepo
	moduleRepo   repos.LearningModuleRepo
}

func NewSyllabusService(
	db *gorm.DB,
	baseLog *logger.Logger,
	taxonomyRepo repos.TaxonomyRepo,
	entryRepo repos.EntryRepo,
	learnerRepo repos.LearnerProfileRepo,
	pathRepo repos.LearningPathRepo,
	moduleRepo repos.LearningModuleRepo,
) SyllabusService {
	return &syllabusService{
		db:           db,
		log:          baseLog.With("service", "SyllabusService"),
		taxonomyRepo: taxonomyRepo,
		entryRepo:    entryRepo,
		learnerRepo:  learnerRepo,
		pathRepo:     pathRepo,
		moduleRepo:   moduleRepo,
	}
}

// organNode is the in-memory snapshot of one taxonomy root and its direct
// children. Deeper nesting is not traversed.
type organNode struct {
	label    string
	children []*types.TaxonomyNode
}

func (ss *syllabusService) GeneratePath(ctx context.Context, tx *gorm.DB, organs []string, level, name string) (*PathResult, error) {
	if tx != nil {
		return ss.generatePath(ctx, tx, organs, level, name)
	}
	var result *PathResult
	err := ss.db.WithContext(ctx).Transaction(func(txn *gorm.DB) error {
		var genErr error
		result, genErr = ss.generatePath(ctx, txn, organs, level, name)
		return genErr
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (ss *syllabusService) generatePath(ctx context.Context, tx *gorm.DB, organs []string, level, name string) (*PathResult, error) {
	taxonomy, err := ss.loadTaxonomy(ctx, tx)
	if err != nil {
		return nil, fmt.Errorf("load taxonomy: %w", err)
	}

	entries, err := ss.entryRepo.ListAll(ctx, tx)
	if err != nil {
		return nil, fmt.Errorf("load reading catalog: %w", err)
	}

	modules := buildModules(taxonomy, entries, organs, level)

	totalHours := 0.0
	for i := range modules {
		modules[i].Seq = i
		totalHours += modules[i].EstimatedHours
	}

	if name == "" {
		name = "anonymous"
	}
	learner := &types.LearnerProfile{
		Name:             name,
		OrgansOfInterest: datatypes.NewJSONSlice(organs),
		Level:            level,
	}
	if _, err := ss.learnerRepo.Create(ctx, tx, []*types.LearnerProfile{learner}); err != nil {
		return nil, fmt.Errorf("create learner profile: %w", err)
	}

	pathID := newPathToken()
	title := "Learning Path: " + strings.Join(organs, ", ")
	path := &types.LearningPath{
		PathID:     pathID,
		Title:      title,
		LearnerID:  learner.ID,
		TotalHours: totalHours,
	}
	if _, err := ss.pathRepo.Create(ctx, tx, []*types.LearningPath{path}); err != nil {
		return nil, fmt.Errorf("create learning path: %w", err)
	}

	rows := make([]*types.LearningModule, 0, len(modules))
	for _, mod := range modules {
		rows = append(rows, &types.LearningModule{
			PathID:         path.ID,
			ModuleID:       mod.ModuleID,
			Title:          mod.Title,
			Organ:          mod.Organ,
			Difficulty:     mod.Difficulty,
			Readings:       datatypes.NewJSONSlice(mod.Readings),
			Questions:      datatypes.NewJSONSlice(mod.Questions),
			EstimatedHours: mod.EstimatedHours,
			Seq:            mod.Seq,
		})
	}
	if _, err := ss.moduleRepo.Create(ctx, tx, rows); err != nil {
		return nil, fmt.Errorf("create learning modules: %w", err)
	}

	ss.log.Info("Generated learning path",
		"path_id", pathID,
		"organs", organs,
		"level", level,
		"modules", len(modules),
		"total_hours", totalHours,
	)

	return &PathResult{
		PathID:     pathID,
		Title:      title,
		Organs:     organs,
		Level:      level,
		TotalHours: totalHours,
		Modules:    modules,
	}, nil
}

func (ss *syllabusService) GetPath(ctx context.Context, tx *gorm.DB, pathID string) (*types.LearningPath, error) {
	return ss.pathRepo.GetByPathID(ctx, tx, pathID)
}

// loadTaxonomy snapshots the two-level taxonomy forest keyed by root slug.
func (ss *syllabusService) loadTaxonomy(ctx context.Context, tx *gorm.DB) (map[string]organNode, error) {
	roots, err := ss.taxonomyRepo.ListRoots(ctx, tx)
	if err != nil {
		return nil, err
	}
	taxonomy := make(map[string]organNode, len(roots))
	for _, root := range roots {
		children, err := ss.taxonomyRepo.ListChildren(ctx, tx, root.ID)
		if err != nil {
			return nil, err
		}
		taxonomy[root.Slug] = organNode{label: root.Label, children: children}
	}
	return taxonomy, nil
}

// buildModules is the pure assembly step: requested organs are resolved in
// order, unknown codes are skipped silently, and one module is emitted per
// child topic of each resolved organ.
func buildModules(taxonomy map[string]organNode, entries []*types.Entry, organs []string, level string) []ModulePlan {
	allowed := types.AllowedDifficulties(level)

	estimatedHours := 2.0
	if level == types.DifficultyAdvanced {
		estimatedHours = 3.0
	}

	modules := []ModulePlan{}
	for _, organCode := range organs {
		organSlug, ok := types.OrganMap[organCode]
		if !ok {
			organSlug = strings.ToLower(organCode)
		}
		organ, ok := taxonomy[organSlug]
		if !ok {
			continue
		}

		readings := filterReadings(entries, organSlug, allowed)
		if len(readings) > 3 {
			readings = readings[:3]
		}
		if len(readings) == 0 {
			readings = []string{fmt.Sprintf("See %s documentation", organ.label)}
		}

		for _, child := range organ.children {
			modules = append(modules, ModulePlan{
				ModuleID:   fmt.Sprintf("%s-%s", child.Slug, level[:3]),
				Title:      child.Label,
				Organ:      organSlug,
				Difficulty: level,
				Readings:   readings,
				Questions: []string{
					fmt.Sprintf("What is the core idea behind %s?", child.Label),
					fmt.Sprintf("How does %s connect to %s?", child.Label, organ.label),
					fmt.Sprintf("What would you build or explore using %s?", child.Label),
				},
				EstimatedHours: estimatedHours,
			})
		}
	}

	// All modules of one invocation share the same level, so this is a
	// no-op today; kept stable for mixed-level batches.
	sort.SliceStable(modules, func(i, j int) bool {
		return types.DifficultyRank(modules[i].Difficulty) < types.DifficultyRank(modules[j].Difficulty)
	})
	return modules
}

// filterReadings returns titles of catalog entries tagged for the organ and
// inside the admissible difficulty window. A tag matches on the exact organ
// slug or on the organ's leading token prefix (slug "i-theoria" matches any
// "i-" tag). Entries without a difficulty count as intermediate.
func filterReadings(entries []*types.Entry, organSlug string, allowed map[string]bool) []string {
	prefix := strings.SplitN(organSlug, "-", 2)[0] + "-"
	titles := []string{}
	for _, entry := range entries {
		matched := false
		for _, tag := range entry.OrganTags {
			if tag == organSlug || strings.HasPrefix(tag, prefix) {
				matched = true
				break
			}
		}
		if !matched {
			continue
		}
		difficulty := entry.Difficulty
		if difficulty == "" {
			difficulty = types.DifficultyIntermediate
		}
		if allowed[difficulty] {
			titles = append(titles, entry.Title)
		}
	}
	return titles
}

// newPathToken mints the short public path identifier. Collisions surface
// as a unique-constraint failure on insert; callers retry the whole
// generation, which mints a fresh token.
func newPathToken() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")[:8]
}
