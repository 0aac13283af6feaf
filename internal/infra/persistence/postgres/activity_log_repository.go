package postgres

import (
	"context"
	"time"

	"billing/internal/domain/entity"
	domainerrors "billing/internal/domain/errors"
	"billing/internal/domain/repository"
	"billing/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// activityLogRepository implements the repository.ActivityLogRepository interface.
type activityLogRepository struct {
	db *gorm.DB
}

// NewActivityLogRepository is the constructor for activityLogRepository.
func NewActivityLogRepository(db *gorm.DB) repository.ActivityLogRepository {
	return &activityLogRepository{
		db: db,
	}
}

// CreateActivityLog appends an entry.
func (repo *activityLogRepository) CreateActivityLog(ctx context.Context, log *entity.ActivityLog) error {
	logM := &model.ActivityLogModel{
		ID:          log.ID,
		UserID:      log.UserID,
		UserType:    string(log.UserType),
		Description: log.Description,
		Metadata:    datatypes.JSONMap(log.Metadata),
		CreatedAt:   log.CreatedAt,
	}

	if err := repo.db.WithContext(ctx).Create(logM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create activity log")
	}

	log.ID = logM.ID
	log.CreatedAt = logM.CreatedAt

	return nil
}

// ListActivityLogs returns a page of entries, newest first, and the total matching count.
func (repo *activityLogRepository) ListActivityLogs(ctx context.Context, filter entity.ActivityLogFilter) ([]*entity.ActivityLog, int64, error) {
	filtered := func() *gorm.DB {
		query := repo.db.WithContext(ctx).Model(&model.ActivityLogModel{})
		if filter.UserType != nil {
			query = query.Where("user_type = ?", string(*filter.UserType))
		}

		return query
	}

	var total int64
	if err := filtered().Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count activity logs")
	}

	var logModels []*model.ActivityLogModel
	if err := filtered().
		Order("created_at DESC").
		Offset(filter.Offset()).
		Limit(filter.Limit).
		Find(&logModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list activity logs")
	}

	logs := make([]*entity.ActivityLog, 0, len(logModels))
	for _, logM := range logModels {
		logs = append(logs, &entity.ActivityLog{
			ID:          logM.ID,
			UserID:      logM.UserID,
			UserType:    entity.UserType(logM.UserType),
			Description: logM.Description,
			Metadata:    map[string]any(logM.Metadata),
			CreatedAt:   logM.CreatedAt,
		})
	}

	return logs, total, nil
}

// DeleteActivityLogsBefore removes entries created before cutoff.
func (repo *activityLogRepository) DeleteActivityLogsBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("created_at < ?", cutoff).
		Delete(&model.ActivityLogModel{})

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to purge activity logs")
	}

	return result.RowsAffected, nil
}

// DeleteAllActivityLogs empties the trail.
func (repo *activityLogRepository) DeleteAllActivityLogs(ctx context.Context) (int64, error) {
	result := repo.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&model.ActivityLogModel{})

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete activity logs")
	}

	return result.RowsAffected, nil
}
