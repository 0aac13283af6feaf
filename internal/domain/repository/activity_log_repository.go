package repository

import (
	"context"
	"time"

	"billing/internal/domain/entity"
)

// ActivityLogRepository stores the audit trail. Implemented on PostgreSQL and MongoDB.
type ActivityLogRepository interface {
	// CreateActivityLog appends an entry.
	CreateActivityLog(ctx context.Context, log *entity.ActivityLog) error

	// ListActivityLogs returns a page of entries, newest first, and the total matching count.
	ListActivityLogs(ctx context.Context, filter entity.ActivityLogFilter) ([]*entity.ActivityLog, int64, error)

	// DeleteActivityLogsBefore removes entries created before cutoff.
	DeleteActivityLogsBefore(ctx context.Context, cutoff time.Time) (int64, error)

	// DeleteAllActivityLogs empties the trail.
	DeleteAllActivityLogs(ctx context.Context) (int64, error)
}
