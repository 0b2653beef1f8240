package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/yungbote/koinonia-backend/internal/logger"
	"github.com/yungbote/koinonia-backend/internal/types"
)

type LearnerProfileRepo interface {
	Create(ctx context.Context, tx *gorm.DB, learners []*types.LearnerProfile) ([]*types.LearnerProfile, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, ids []uint) ([]*types.LearnerProfile, error)
}

type learnerProfileRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewLearnerProfileRepo(db *gorm.DB, baseLog *logger.Logger) LearnerProfileRepo {
	return &learnerProfileRepo{db: db, log: baseLog.With("repo", "LearnerProfileRepo")}
}

func (lr *learnerProfileRepo) Create(ctx context.Context, tx *gorm.DB, learners []*types.LearnerProfile) ([]*types.LearnerProfile, error) {
	transaction := tx
	if transaction == nil {
		transaction = lr.db
	}
	if len(learners) == 0 {
		return []*types.LearnerProfile{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&learners).Error; err != nil {
		return nil, err
	}
	return learners, nil
}

func (lr *learnerProfileRepo) GetByIDs(ctx context.Context, tx *gorm.DB, ids []uint) ([]*types.LearnerProfile, error) {
	transaction := tx
	if transaction == nil {
		transaction = lr.db
	}
	var results []*types.LearnerProfile
	if len(ids) == 0 {
		return results, nil
	}
	if err := transaction.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
