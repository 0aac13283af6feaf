package postgres

import (
	"context"
	"time"

	"billing/internal/domain/entity"
	domainerrors "billing/internal/domain/errors"
	"billing/internal/domain/repository"
	"billing/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// subscriptionLogRepository implements the repository.SubscriptionLogRepository interface.
type subscriptionLogRepository struct {
	db *gorm.DB
}

// NewSubscriptionLogRepository is the constructor for subscriptionLogRepository.
func NewSubscriptionLogRepository(db *gorm.DB) repository.SubscriptionLogRepository {
	return &subscriptionLogRepository{
		db: db,
	}
}

// CreateLog persists a new ledger entry.
func (repo *subscriptionLogRepository) CreateLog(ctx context.Context, log *entity.SubscriptionLog) error {
	logM := fromSubscriptionLogDomain(log)

	if err := repo.db.WithContext(ctx).Create(logM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateGatewayOrder
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrPlanNotFound.WrapMessage("invalid plan reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create subscription log")
	}

	log.ID = logM.ID
	log.CreatedAt = logM.CreatedAt

	return nil
}

// FindLogByID retrieves a ledger entry by its unique ID.
func (repo *subscriptionLogRepository) FindLogByID(ctx context.Context, id uuid.UUID) (*entity.SubscriptionLog, error) {
	var logM model.SubscriptionLogModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&logM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSubscriptionLogNotFound
		}

		return nil, errors.Wrap(err, "failed to find subscription log by ID")
	}

	return toSubscriptionLogDomain(&logM), nil
}

// FindLogByGatewayOrder retrieves the entry recorded for a gateway order id.
// Reads the primary: a verification retry must see the entry its first attempt wrote.
func (repo *subscriptionLogRepository) FindLogByGatewayOrder(ctx context.Context, orderID string) (*entity.SubscriptionLog, error) {
	var logM model.SubscriptionLogModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("razorpay_order_id = ?", orderID).
		First(&logM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSubscriptionLogNotFound
		}

		return nil, errors.Wrap(err, "failed to find subscription log by order")
	}

	return toSubscriptionLogDomain(&logM), nil
}

// FindLatestLog returns the owner's most recently created entry.
func (repo *subscriptionLogRepository) FindLatestLog(ctx context.Context, owner entity.UserRef) (*entity.SubscriptionLog, error) {
	var logM model.SubscriptionLogModel

	if err := repo.db.WithContext(ctx).
		Where("type_of_user = ? AND user_id = ?", string(owner.Type), owner.ID).
		Order("created_at DESC").
		First(&logM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSubscriptionLogNotFound
		}

		return nil, errors.Wrap(err, "failed to find latest subscription log")
	}

	return toSubscriptionLogDomain(&logM), nil
}

// ListLogs returns the owner's entries, newest first.
func (repo *subscriptionLogRepository) ListLogs(ctx context.Context, owner entity.UserRef) ([]*entity.SubscriptionLog, error) {
	var logModels []*model.SubscriptionLogModel

	if err := repo.db.WithContext(ctx).
		Where("type_of_user = ? AND user_id = ?", string(owner.Type), owner.ID).
		Order("created_at DESC").
		Find(&logModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list subscription logs")
	}

	return toSubscriptionLogDomains(logModels), nil
}

// MarkPaid settles an entry.
func (repo *subscriptionLogRepository) MarkPaid(ctx context.Context, id uuid.UUID, paymentID *string) error {
	updates := map[string]any{
		"payment_status": string(entity.PaymentStatusPaid),
	}
	if paymentID != nil {
		updates["razorpay_payment_id"] = *paymentID
	}

	result := repo.db.WithContext(ctx).
		Model(&model.SubscriptionLogModel{}).
		Where("id = ?", id).
		Updates(updates)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark subscription log paid")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSubscriptionLogNotFound
	}

	return nil
}

// FindEndedLogs returns up to limit entries whose end date is at or before now, skipping exclude.
func (repo *subscriptionLogRepository) FindEndedLogs(ctx context.Context, now time.Time, exclude []uuid.UUID, limit int) ([]*entity.SubscriptionLog, error) {
	var logModels []*model.SubscriptionLogModel

	query := repo.db.WithContext(ctx).Where("end_date <= ?", now)
	if len(exclude) > 0 {
		query = query.Where("id NOT IN ?", exclude)
	}

	if err := query.
		Order("end_date ASC, id ASC").
		Limit(limit).
		Find(&logModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find ended subscription logs")
	}

	return toSubscriptionLogDomains(logModels), nil
}

// DeleteLog removes an entry.
func (repo *subscriptionLogRepository) DeleteLog(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.SubscriptionLogModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete subscription log")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSubscriptionLogNotFound
	}

	return nil
}

// CountLogsByPlan counts entries purchased from a plan.
func (repo *subscriptionLogRepository) CountLogsByPlan(ctx context.Context, planID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.SubscriptionLogModel{}).
		Where("plan_id = ?", planID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count subscription logs by plan")
	}

	return count, nil
}

// CountActivePaid counts paid entries still running at now.
func (repo *subscriptionLogRepository) CountActivePaid(ctx context.Context, now time.Time) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.SubscriptionLogModel{}).
		Where("payment_status = ? AND start_date <= ? AND end_date > ?", string(entity.PaymentStatusPaid), now, now).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count active subscriptions")
	}

	return count, nil
}

// SumPaid sums paid amounts of entries created in [from, to).
func (repo *subscriptionLogRepository) SumPaid(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	var total decimal.NullDecimal

	if err := repo.db.WithContext(ctx).
		Model(&model.SubscriptionLogModel{}).
		Select("SUM(amount)").
		Where("payment_status = ? AND created_at >= ? AND created_at < ?", string(entity.PaymentStatusPaid), from, to).
		Scan(&total).Error; err != nil {
		return decimal.Zero, errors.Wrap(err, "failed to sum subscription revenue")
	}

	if !total.Valid {
		return decimal.Zero, nil
	}

	return total.Decimal, nil
}

type merchantAmountRow struct {
	UserID uuid.UUID
	Total  decimal.Decimal
}

// SumPaidByMerchant sums paid merchant amounts created in [from, to) per merchant.
func (repo *subscriptionLogRepository) SumPaidByMerchant(ctx context.Context, from, to time.Time) (map[uuid.UUID]decimal.Decimal, error) {
	var rows []merchantAmountRow

	if err := repo.db.WithContext(ctx).
		Model(&model.SubscriptionLogModel{}).
		Select("user_id, COALESCE(SUM(amount), 0) AS total").
		Where("type_of_user = ? AND payment_status = ? AND created_at >= ? AND created_at < ?",
			string(entity.UserTypeMerchant), string(entity.PaymentStatusPaid), from, to).
		Group("user_id").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to sum subscription revenue by merchant")
	}

	totals := make(map[uuid.UUID]decimal.Decimal, len(rows))
	for _, row := range rows {
		totals[row.UserID] = row.Total
	}

	return totals, nil
}

// --- Mapper Functions ---

func toSubscriptionLogDomains(data []*model.SubscriptionLogModel) []*entity.SubscriptionLog {
	logs := make([]*entity.SubscriptionLog, 0, len(data))
	for _, logM := range data {
		logs = append(logs, toSubscriptionLogDomain(logM))
	}

	return logs
}

func toSubscriptionLogDomain(data *model.SubscriptionLogModel) *entity.SubscriptionLog {
	if data == nil {
		return nil
	}

	return &entity.SubscriptionLog{
		ID:                data.ID,
		PlanID:            data.PlanID,
		UserID:            data.UserID,
		TypeOfUser:        entity.UserType(data.TypeOfUser),
		Amount:            data.Amount,
		PaymentMode:       entity.PaymentMode(data.PaymentMode),
		StartDate:         data.StartDate,
		EndDate:           data.EndDate,
		PaymentStatus:     entity.PaymentStatus(data.PaymentStatus),
		RazorpayOrderID:   data.RazorpayOrderID,
		RazorpayPaymentID: data.RazorpayPaymentID,
		CreatedAt:         data.CreatedAt,
	}
}

func fromSubscriptionLogDomain(data *entity.SubscriptionLog) *model.SubscriptionLogModel {
	if data == nil {
		return nil
	}

	return &model.SubscriptionLogModel{
		ID:                data.ID,
		PlanID:            data.PlanID,
		UserID:            data.UserID,
		TypeOfUser:        string(data.TypeOfUser),
		Amount:            data.Amount,
		PaymentMode:       string(data.PaymentMode),
		StartDate:         data.StartDate,
		EndDate:           data.EndDate,
		PaymentStatus:     string(data.PaymentStatus),
		RazorpayOrderID:   data.RazorpayOrderID,
		RazorpayPaymentID: data.RazorpayPaymentID,
		CreatedAt:         data.CreatedAt,
	}
}
