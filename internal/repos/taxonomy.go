package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/yungbote/koinonia-backend/internal/logger"
	"github.com/yungbote/koinonia-backend/internal/types"
)

type TaxonomyRepo interface {
	Create(ctx context.Context, tx *gorm.DB, nodes []*types.TaxonomyNode) ([]*types.TaxonomyNode, error)
	ListRoots(ctx context.Context, tx *gorm.DB) ([]*types.TaxonomyNode, error)
	ListChildren(ctx context.Context, tx *gorm.DB, rootID uint) ([]*types.TaxonomyNode, error)
	GetBySlug(ctx context.Context, tx *gorm.DB, slug string) (*types.TaxonomyNode, error)
}

type taxonomyRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewTaxonomyRepo(db *gorm.DB, baseLog *logger.Logger) TaxonomyRepo {
	return &taxonomyRepo{db: db, log: baseLog.With("repo", "TaxonomyRepo")}
}

func (tr *taxonomyRepo) Create(ctx context.Context, tx *gorm.DB, nodes []*types.TaxonomyNode) ([]*types.TaxonomyNode, error) {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}
	if len(nodes) == 0 {
		return []*types.TaxonomyNode{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&nodes).Error; err != nil {
		return nil, err
	}
	return nodes, nil
}

func (tr *taxonomyRepo) ListRoots(ctx context.Context, tx *gorm.DB) ([]*types.TaxonomyNode, error) {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}
	var results []*types.TaxonomyNode
	if err := transaction.WithContext(ctx).
		Where("parent_id IS NULL").
		Order("id").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (tr *taxonomyRepo) ListChildren(ctx context.Context, tx *gorm.DB, rootID uint) ([]*types.TaxonomyNode, error) {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}
	var results []*types.TaxonomyNode
	if err := transaction.WithContext(ctx).
		Where("parent_id = ?", rootID).
		Order("id").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (tr *taxonomyRepo) GetBySlug(ctx context.Context, tx *gorm.DB, slug string) (*types.TaxonomyNode, error) {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}
	var node types.TaxonomyNode
	if err := transaction.WithContext(ctx).
		Where("slug = ?", slug).
		First(&node).Error; err != nil {
		return nil, err
	}
	return &node, nil
}
