package repos

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/yungbote/koinonia-backend/internal/logger"
	"github.com/yungbote/koinonia-backend/internal/types"
)

type EntryRepo interface {
	Create(ctx context.Context, tx *gorm.DB, entries []*types.Entry) ([]*types.Entry, error)
	// ListAll loads the whole catalog. Fine at current data scale; revisit
	// before the catalog grows past a few thousand rows.
	ListAll(ctx context.Context, tx *gorm.DB) ([]*types.Entry, error)
	GetByTitleAuthor(ctx context.Context, tx *gorm.DB, title, author string) (*types.Entry, error)
}

type entryRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewEntryRepo(db *gorm.DB, baseLog *logger.Logger) EntryRepo {
	return &entryRepo{db: db, log: baseLog.With("repo", "EntryRepo")}
}

func (er *entryRepo) Create(ctx context.Context, tx *gorm.DB, entries []*types.Entry) ([]*types.Entry, error) {
	transaction := tx
	if transaction == nil {
		transaction = er.db
	}
	if len(entries) == 0 {
		return []*types.Entry{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (er *entryRepo) ListAll(ctx context.Context, tx *gorm.DB) ([]*types.Entry, error) {
	transaction := tx
	if transaction == nil {
		transaction = er.db
	}
	var results []*types.Entry
	if err := transaction.WithContext(ctx).
		Order("id").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (er *entryRepo) GetByTitleAuthor(ctx context.Context, tx *gorm.DB, title, author string) (*types.Entry, error) {
	transaction := tx
	if transaction == nil {
		transaction = er.db
	}
	var entry types.Entry
	err := transaction.WithContext(ctx).
		Where("title = ? AND author = ?", title, author).
		First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}
