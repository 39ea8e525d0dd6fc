package repository

import (
	"context"
	"time"

	"tagtube/domain/model"
)

type IAccess interface {
	Create(ctx context.Context, access *model.Access) error
	// TouchLatest refreshes the newest access row of the user. It reports
	// false when the user has no access row at all.
	TouchLatest(ctx context.Context, userID uint, now time.Time) (bool, error)
	// DeactivateIdle flips every active row whose heartbeat is older than
	// cutoff in one statement and returns the number of rows changed.
	DeactivateIdle(ctx context.Context, cutoff, now time.Time) (int64, error)
}
