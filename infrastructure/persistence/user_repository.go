package persistence

import (
	"context"
	"errors"
	"fmt"

	"tagtube/domain/model"
	"tagtube/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) repository.IUser {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByTag(ctx context.Context, tag string) (model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).Where("tag = ?", tag).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.User{}, repository.ErrUserNotFound
	}
	if err != nil {
		return model.User{}, fmt.Errorf("get user %s: %w", tag, err)
	}
	return user, nil
}

// Save inserts the tag or, when it exists already, overwrites its location.
// The stored row is read back so ID and dates reflect the database.
func (r *UserRepository) Save(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "tag"}},
			DoUpdates: clause.AssignmentColumns([]string{"city", "region", "country", "update_date"}),
		}).Create(user).Error
		if err != nil {
			return fmt.Errorf("save user %s: %w", user.Tag, err)
		}
		var stored model.User
		if err := tx.Where("tag = ?", user.Tag).First(&stored).Error; err != nil {
			return fmt.Errorf("reload user %s: %w", user.Tag, err)
		}
		*user = stored
		return nil
	})
}
