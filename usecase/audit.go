package usecase

import (
	"context"
	"errors"

	"tagtube/domain/model"
	"tagtube/domain/repository"
	"tagtube/infrastructure/logger"
)

type auditFanout struct {
	publishers []repository.IAuditPublisher
}

// NewAuditFanout publishes every event to each publisher. Nil publishers
// are skipped. One failing publisher does not stop the others.
func NewAuditFanout(publishers ...repository.IAuditPublisher) repository.IAuditPublisher {
	active := make([]repository.IAuditPublisher, 0, len(publishers))
	for _, p := range publishers {
		if p != nil {
			active = append(active, p)
		}
	}
	return &auditFanout{publishers: active}
}

func (f *auditFanout) Publish(ctx context.Context, event model.AuditEvent) error {
	var errs []error
	for _, p := range f.publishers {
		if err := p.Publish(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// publishAudit is best-effort: failures are logged and dropped.
func publishAudit(ctx context.Context, publisher repository.IAuditPublisher, event model.AuditEvent) {
	if publisher == nil {
		return
	}
	if err := publisher.Publish(ctx, event); err != nil {
		logger.GetLogger().WithFields(map[string]interface{}{
			"error": err,
			"type":  event.Type,
			"user":  event.UserID,
		}).Warn("Failed to publish audit event")
	}
}
