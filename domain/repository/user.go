package repository

import (
	"context"
	"errors"

	"tagtube/domain/model"
)

type IUser interface {
	GetByTag(ctx context.Context, tag string) (model.User, error)
	// Save registers the tag, or updates the location of an existing tag.
	Save(ctx context.Context, user *model.User) error
}

// ErrUserNotFound is returned when no user carries the requested tag.
var ErrUserNotFound = errors.New("user not found")
