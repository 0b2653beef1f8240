package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/yungbote/koinonia-backend/internal/logger"
	"github.com/yungbote/koinonia-backend/internal/types"
)

type LearningModuleRepo interface {
	Create(ctx context.Context, tx *gorm.DB, modules []*types.LearningModule) ([]*types.LearningModule, error)
	ListByPathID(ctx context.Context, tx *gorm.DB, pathID uint) ([]*types.LearningModule, error)
}

type learningModuleRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewLearningModuleRepo(db *gorm.DB, baseLog *logger.Logger) LearningModuleRepo {
	return &learningModuleRepo{db: db, log: baseLog.With("repo", "LearningModuleRepo")}
}

func (mr *learningModuleRepo) Create(ctx context.Context, tx *gorm.DB, modules []*types.LearningModule) ([]*types.LearningModule, error) {
	transaction := tx
	if transaction == nil {
		transaction = mr.db
	}
	if len(modules) == 0 {
		return []*types.LearningModule{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&modules).Error; err != nil {
		return nil, err
	}
	return modules, nil
}

func (mr *learningModuleRepo) ListByPathID(ctx context.Context, tx *gorm.DB, pathID uint) ([]*types.LearningModule, error) {
	transaction := tx
	if transaction == nil {
		transaction = mr.db
	}
	var results []*types.LearningModule
	if err := transaction.WithContext(ctx).
		Where("path_id = ?", pathID).
		Order("seq").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
