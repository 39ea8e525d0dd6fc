package usecase

import (
	"context"
	"time"

	"tagtube/domain/model"
	"tagtube/domain/repository"
	"tagtube/infrastructure/logger"
	"tagtube/infrastructure/utils"
)

// PresenceCommand is what a heartbeat request asks the tracker to do.
type PresenceCommand int

const (
	PresenceTouch PresenceCommand = iota + 1
	PresenceRecordAccess
)

func (c PresenceCommand) String() string {
	switch c {
	case PresenceTouch:
		return "touch"
	case PresenceRecordAccess:
		return "record_access"
	}
	return "unknown"
}

// IPresenceUsecase tracks whether users are active. Every method reports
// success as a bool; failures are logged, never returned.
type IPresenceUsecase interface {
	Apply(ctx context.Context, user model.User, cmd PresenceCommand) bool
	// Touch refreshes the latest access of the user. Without any access
	// row nothing is written and false is returned.
	Touch(ctx context.Context, user model.User) bool
	// RecordAccess opens a new active access row.
	RecordAccess(ctx context.Context, user model.User) bool
	// Sweep deactivates every access idle for longer than maxIdle.
	Sweep(ctx context.Context, maxIdle time.Duration) bool
}

type presenceUsecase struct {
	accesses repository.IAccess
	audit    repository.IAuditPublisher
	now      func() time.Time
}

func NewPresenceUsecase(accesses repository.IAccess, audit repository.IAuditPublisher) IPresenceUsecase {
	return &presenceUsecase{
		accesses: accesses,
		audit:    audit,
		now:      utils.GetCurrentTime,
	}
}

func (u *presenceUsecase) Apply(ctx context.Context, user model.User, cmd PresenceCommand) bool {
	switch cmd {
	case PresenceTouch:
		return u.Touch(ctx, user)
	case PresenceRecordAccess:
		return u.RecordAccess(ctx, user)
	}
	logger.GetLogger().WithField("command", int(cmd)).Error("Unknown presence command")
	return false
}

func (u *presenceUsecase) Touch(ctx context.Context, user model.User) bool {
	touched, err := u.accesses.TouchLatest(ctx, user.ID, u.now())
	if err != nil {
		logger.GetLogger().WithFields(map[string]interface{}{"error": err, "user": user.ID}).Error("Error while updating heartbeat")
		return false
	}
	if !touched {
		logger.GetLogger().WithField("user", user.ID).Debug("Heartbeat without access record")
	}
	return touched
}

func (u *presenceUsecase) RecordAccess(ctx context.Context, user model.User) bool {
	now := u.now()
	access := &model.Access{
		UserID:        user.ID,
		IsActive:      true,
		LastHeartbeat: now,
		CreationDate:  now,
	}
	if err := u.accesses.Create(ctx, access); err != nil {
		logger.GetLogger().WithFields(map[string]interface{}{"error": err, "user": user.ID}).Error("Error while recording access")
		return false
	}

	publishAudit(ctx, u.audit, model.AuditEvent{
		Type:       model.AuditAccessRecorded,
		UserID:     user.ID,
		Tag:        user.Tag,
		OccurredAt: now,
	})
	return true
}

func (u *presenceUsecase) Sweep(ctx context.Context, maxIdle time.Duration) bool {
	now := u.now()
	deactivated, err := u.accesses.DeactivateIdle(ctx, now.Add(-maxIdle), now)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while deactivating idle accesses")
		return false
	}
	if deactivated > 0 {
		logger.GetLogger().WithField("count", deactivated).Info("Idle accesses deactivated")
	}
	return true
}
