package repository

import (
	"context"

	"tagtube/domain/model"
)

type ISearch interface {
	Create(ctx context.Context, search *model.Search) error
}
