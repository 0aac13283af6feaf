package entity

import (
	"time"

	"github.com/google/uuid"
)

// ActivityLog is one audit trail entry.
type ActivityLog struct {
	ID          uuid.UUID      `json:"id"`
	UserID      uuid.UUID      `json:"user_id"`
	UserType    UserType       `json:"user_type"`
	Description string         `json:"description"`
	Metadata    map[string]any `json:"metadata,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
}

// ActivityLogFilter narrows an activity log listing.
type ActivityLogFilter struct {
	UserType *UserType
	Page     int
	Limit    int
}

// Offset returns the row offset for the requested page (1-based).
func (f ActivityLogFilter) Offset() int {
	if f.Page <= 1 {
		return 0
	}

	return (f.Page - 1) * f.Limit
}
