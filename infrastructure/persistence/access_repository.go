package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tagtube/domain/model"
	"tagtube/domain/repository"

	"gorm.io/gorm"
)

type AccessRepository struct {
	db *gorm.DB
}

func NewAccessRepository(db *gorm.DB) repository.IAccess {
	return &AccessRepository{db: db}
}

func (r *AccessRepository) Create(ctx context.Context, access *model.Access) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(access).Error; err != nil {
			return fmt.Errorf("create access for user %d: %w", access.UserID, err)
		}
		return nil
	})
}

func (r *AccessRepository) TouchLatest(ctx context.Context, userID uint, now time.Time) (bool, error) {
	touched := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var latest model.Access
		err := tx.Where("user_id = ?", userID).
			Order("creation_date DESC").
			Order("id DESC").
			Take(&latest).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("find latest access of user %d: %w", userID, err)
		}

		if err := tx.Model(&latest).Updates(map[string]interface{}{
			"is_active":      true,
			"last_heartbeat": now,
		}).Error; err != nil {
			return fmt.Errorf("touch access %d: %w", latest.ID, err)
		}
		touched = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return touched, nil
}

func (r *AccessRepository) DeactivateIdle(ctx context.Context, cutoff, now time.Time) (int64, error) {
	var affected int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.Access{}).
			Where("is_active = ? AND last_heartbeat < ?", true, cutoff).
			Updates(map[string]interface{}{
				"is_active":      false,
				"last_heartbeat": now,
			})
		if res.Error != nil {
			return fmt.Errorf("deactivate idle accesses: %w", res.Error)
		}
		affected = res.RowsAffected
		return nil
	})
	if err != nil {
		return 0, err
	}
	return affected, nil
}
