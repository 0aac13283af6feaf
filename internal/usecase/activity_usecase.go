package usecase

import (
	"context"

	"billing/internal/domain/entity"
)

// ActivityPage is one page of the audit trail.
type ActivityPage struct {
	Items []*entity.ActivityLog `json:"items"`
	Total int64                 `json:"total"`
	Page  int                   `json:"page"`
	Limit int                   `json:"limit"`
}

// ActivityUsecase records and browses the audit trail.
type ActivityUsecase interface {
	// Record appends an entry. Failures are logged, never returned.
	Record(ctx context.Context, actor entity.UserRef, description string, metadata map[string]any)

	// List pages through the trail, newest first.
	List(ctx context.Context, filter entity.ActivityLogFilter) (*ActivityPage, error)

	// PurgeAll empties the trail and returns how many entries were removed.
	PurgeAll(ctx context.Context) (int64, error)
}
