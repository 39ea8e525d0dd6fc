package repository

import (
	"context"

	"tagtube/domain/model"
)

type IAuditPublisher interface {
	Publish(ctx context.Context, event model.AuditEvent) error
}
