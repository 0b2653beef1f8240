package repos

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/yungbote/koinonia-backend/internal/logger"
	"github.com/yungbote/koinonia-backend/internal/types"
)

type LearningPathRepo interface {
	Create(ctx context.Context, tx *gorm.DB, paths []*types.LearningPath) ([]*types.LearningPath, error)
	// GetByPathID looks up a path by its public token, with modules
	// preloaded in seq order. Returns nil when no row matches.
	GetByPathID(ctx context.Context, tx *gorm.DB, pathID string) (*types.LearningPath, error)
	ListByLearnerID(ctx context.Context, tx *gorm.DB, learnerID uint) ([]*types.LearningPath, error)
}

type learningPathRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewLearningPathRepo(db *gorm.DB, baseLog *logger.Logger) LearningPathRepo {
	return &learningPathRepo{db: db, log: baseLog.With("repo", "LearningPathRepo")}
}

func (pr *learningPathRepo) Create(ctx context.Context, tx *gorm.DB, paths []*types.LearningPath) ([]*types.LearningPath, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	if len(paths) == 0 {
		return []*types.LearningPath{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&paths).Error; err != nil {
		return nil, err
	}
	return paths, nil
}

func (pr *learningPathRepo) GetByPathID(ctx context.Context, tx *gorm.DB, pathID string) (*types.LearningPath, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	var path types.LearningPath
	err := transaction.WithContext(ctx).
		Preload("Modules", func(db *gorm.DB) *gorm.DB {
			return db.Order("seq")
		}).
		Where("path_id = ?", pathID).
		First(&path).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &path, nil
}

func (pr *learningPathRepo) ListByLearnerID(ctx context.Context, tx *gorm.DB, learnerID uint) ([]*types.LearningPath, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	var results []*types.LearningPath
	if err := transaction.WithContext(ctx).
		Where("learner_id = ?", learnerID).
		Order("id").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
