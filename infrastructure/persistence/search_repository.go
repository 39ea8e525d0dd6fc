package persistence

import (
	"context"
	"fmt"

	"tagtube/domain/model"
	"tagtube/domain/repository"

	"gorm.io/gorm"
)

type SearchRepository struct {
	db *gorm.DB
}

func NewSearchRepository(db *gorm.DB) repository.ISearch {
	return &SearchRepository{db: db}
}

func (r *SearchRepository) Create(ctx context.Context, search *model.Search) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(search).Error; err != nil {
			return fmt.Errorf("log search of user %d: %w", search.UserID, err)
		}
		return nil
	})
}
