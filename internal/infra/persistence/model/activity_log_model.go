package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ActivityLogModel is the GORM-specific struct for the 'activity_logs' table.
type ActivityLogModel struct {
	ID          uuid.UUID         `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID      uuid.UUID         `gorm:"type:uuid;not null;index"`
	UserType    string            `gorm:"type:varchar(16);not null;index"`
	Description string            `gorm:"type:text;not null"`
	Metadata    datatypes.JSONMap `gorm:"type:jsonb"`
	CreatedAt   time.Time         `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (ActivityLogModel) TableName() string {
	return "activity_logs"
}
