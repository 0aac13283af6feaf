package impl

import (
	"context"
	"log/slog"

	deliverycontext "billing/internal/delivery/context"
	"billing/internal/domain/entity"
	domainerrors "billing/internal/domain/errors"
	"billing/internal/domain/repository"
	"billing/internal/errors"
	"billing/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	defaultActivityPageSize = 20
	maxActivityPageSize     = 100
)

type activityService struct {
	activityRepo repository.ActivityLogRepository
	logger       *slog.Logger
}

// ActivityServiceParams holds dependencies for ActivityService, injected by Fx.
type ActivityServiceParams struct {
	fx.In

	ActivityRepo repository.ActivityLogRepository
	Logger       *slog.Logger
}

// NewActivityService creates the audit trail service.
func NewActivityService(params ActivityServiceParams) usecase.ActivityUsecase {
	return &activityService{
		activityRepo: params.ActivityRepo,
		logger:       params.Logger,
	}
}

func (srv *activityService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Record appends an entry. A failing store never fails the caller.
func (srv *activityService) Record(ctx context.Context, actor entity.UserRef, description string, metadata map[string]any) {
	entry := &entity.ActivityLog{
		ID:          uuid.New(),
		UserID:      actor.ID,
		UserType:    actor.Type,
		Description: description,
		Metadata:    metadata,
		CreatedAt:   nowFunc(),
	}
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		if entry.Metadata == nil {
			entry.Metadata = map[string]any{}
		}
		entry.Metadata["request_id"] = requestID
	}

	if err := srv.activityRepo.CreateActivityLog(ctx, entry); err != nil {
		srv.log(ctx).Warn("Failed to record activity",
			slog.String("actor", actor.String()), slog.String("description", description), slog.Any("error", err))
	}
}

func (srv *activityService) List(ctx context.Context, filter entity.ActivityLogFilter) (*usecase.ActivityPage, error) {
	if filter.UserType != nil && !filter.UserType.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "unknown user type")
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit <= 0 {
		filter.Limit = defaultActivityPageSize
	}
	if filter.Limit > maxActivityPageSize {
		filter.Limit = maxActivityPageSize
	}

	items, total, err := srv.activityRepo.ListActivityLogs(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list activity logs")
	}

	return &usecase.ActivityPage{Items: items, Total: total, Page: filter.Page, Limit: filter.Limit}, nil
}

func (srv *activityService) PurgeAll(ctx context.Context) (int64, error) {
	deleted, err := srv.activityRepo.DeleteAllActivityLogs(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to purge activity logs")
	}

	srv.log(ctx).Info("Activity logs purged", slog.Int64("deleted", deleted))

	return deleted, nil
}
