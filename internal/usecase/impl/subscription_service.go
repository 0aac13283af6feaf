package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	deliverycontext "billing/internal/delivery/context"
	"billing/internal/domain/billing"
	"billing/internal/domain/entity"
	domainerrors "billing/internal/domain/errors"
	"billing/internal/domain/repository"
	"billing/internal/domain/service"
	"billing/internal/errors"
	"billing/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// Keys of the notes stored on gateway orders.
const (
	noteUserType = "user_type"
	noteUserID   = "user_id"
	notePlanID   = "plan_id"
)

type subscriptionService struct {
	txManager   repository.TransactionManager
	accountRepo repository.AccountRepository
	planRepo    repository.PlanRepository
	logRepo     repository.SubscriptionLogRepository
	pricingRepo repository.PricingRepository
	gateway     service.PaymentGateway
	qrcode      service.QRCodeService
	publisher   service.EventPublisher
	activity    usecase.ActivityUsecase
	logger      *slog.Logger
}

// SubscriptionServiceParams holds dependencies for SubscriptionService, injected by Fx.
type SubscriptionServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	AccountRepo repository.AccountRepository
	PlanRepo    repository.PlanRepository
	LogRepo     repository.SubscriptionLogRepository
	PricingRepo repository.PricingRepository
	Gateway     service.PaymentGateway
	QRCode      service.QRCodeService
	Publisher   service.EventPublisher
	Activity    usecase.ActivityUsecase
	Logger      *slog.Logger
}

// NewSubscriptionService creates the subscription ledger.
func NewSubscriptionService(params SubscriptionServiceParams) usecase.SubscriptionUsecase {
	return &subscriptionService{
		txManager:   params.TxManager,
		accountRepo: params.AccountRepo,
		planRepo:    params.PlanRepo,
		logRepo:     params.LogRepo,
		pricingRepo: params.PricingRepo,
		gateway:     params.Gateway,
		qrcode:      params.QRCode,
		publisher:   params.Publisher,
		activity:    params.Activity,
		logger:      params.Logger,
	}
}

func (srv *subscriptionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Purchase starts buying a plan. Cash writes an unpaid entry right away;
// online only opens a gateway order and writes nothing until verification.
func (srv *subscriptionService) Purchase(ctx context.Context, user entity.UserRef, planID uuid.UUID, mode entity.PaymentMode) (*usecase.PurchaseResult, error) {
	if !mode.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrInvalidPaymentMode, string(mode))
	}
	if !user.Type.CanOwnPricing() {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "only merchants and customers hold subscriptions")
	}

	plan, err := srv.findPlan(ctx, planID, user.Type)
	if err != nil {
		return nil, err
	}
	if !plan.IsActive {
		return nil, errors.Wrap(domainerrors.ErrPlanInactive, plan.ID.String())
	}

	if _, err := srv.accountRepo.FindAccount(ctx, user); err != nil {
		return nil, accountError(user, err)
	}

	if mode == entity.PaymentModeCash {
		return srv.purchaseCash(ctx, user, plan)
	}

	notes := map[string]string{
		noteUserType: string(user.Type),
		noteUserID:   user.ID.String(),
		notePlanID:   plan.ID.String(),
	}
	order, err := srv.gateway.CreateOrder(ctx, plan.Amount, receiptFor(user, plan), notes)
	if err != nil {
		srv.log(ctx).Error("Failed to create gateway order",
			slog.String("user", user.String()), slog.Any("planID", plan.ID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPaymentGatewayFailed, err.Error())
	}

	srv.log(ctx).Debug("Gateway order created", slog.String("user", user.String()), slog.String("orderID", order.OrderID))

	return &usecase.PurchaseResult{Mode: mode, Order: order}, nil
}

func (srv *subscriptionService) purchaseCash(ctx context.Context, user entity.UserRef, plan *entity.SubscriptionPlan) (*usecase.PurchaseResult, error) {
	now := nowFunc()
	start, end, err := nextPeriod(ctx, srv.logRepo, srv.pricingRepo, user, plan.DurationDays, now)
	if err != nil {
		return nil, err
	}

	entry := &entity.SubscriptionLog{
		ID:            uuid.New(),
		PlanID:        plan.ID,
		UserID:        user.ID,
		TypeOfUser:    user.Type,
		Amount:        plan.Amount,
		PaymentMode:   entity.PaymentModeCash,
		StartDate:     start,
		EndDate:       end,
		PaymentStatus: entity.PaymentStatusUnpaid,
		CreatedAt:     now,
	}
	if err := srv.logRepo.CreateLog(ctx, entry); err != nil {
		return nil, errors.Wrap(err, "failed to create subscription log")
	}

	srv.activity.Record(ctx, user, "Cash subscription requested", map[string]any{
		"log_id":  entry.ID.String(),
		"plan_id": plan.ID.String(),
		"amount":  plan.Amount.String(),
	})

	return &usecase.PurchaseResult{Mode: entity.PaymentModeCash, Log: entry}, nil
}

// VerifyPayment checks the checkout signature and records the paid period.
// Nothing is written when the signature does not match.
func (srv *subscriptionService) VerifyPayment(ctx context.Context, user entity.UserRef, input *usecase.PaymentVerification) (*entity.SubscriptionLog, error) {
	if input == nil || !srv.gateway.VerifySignature(input.OrderID, input.PaymentID, input.Signature) {
		srv.log(ctx).Warn("Payment signature rejected", slog.String("user", user.String()))

		return nil, errors.Wrap(domainerrors.ErrInvalidPaymentSignature, "signature mismatch")
	}

	if existing, err := srv.recordedOrder(ctx, user, input.OrderID); err != nil || existing != nil {
		return existing, err
	}

	plan, err := srv.orderedPlan(ctx, user, input)
	if err != nil {
		return nil, err
	}

	now := nowFunc()
	orderID, paymentID := input.OrderID, input.PaymentID
	var entry *entity.SubscriptionLog

	err = srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		account, err := repos.NewAccountRepository().FindAccount(ctx, user)
		if err != nil {
			return accountError(user, err)
		}

		logs := repos.NewSubscriptionLogRepository()
		start, end, err := nextPeriod(ctx, logs, repos.NewPricingRepository(), user, plan.DurationDays, now)
		if err != nil {
			return err
		}

		entry = &entity.SubscriptionLog{
			ID:                uuid.New(),
			PlanID:            plan.ID,
			UserID:            user.ID,
			TypeOfUser:        user.Type,
			Amount:            plan.Amount,
			PaymentMode:       entity.PaymentModeOnline,
			StartDate:         start,
			EndDate:           end,
			PaymentStatus:     entity.PaymentStatusPaid,
			RazorpayOrderID:   &orderID,
			RazorpayPaymentID: &paymentID,
			CreatedAt:         now,
		}
		if err := logs.CreateLog(ctx, entry); err != nil {
			return err
		}

		return attachPricing(ctx, repos, account, entry, now)
	})
	if errors.Is(err, repository.ErrDuplicateGatewayOrder) {
		// A concurrent verification of the same order committed first.
		return srv.recordedOrder(ctx, user, orderID)
	}
	if err != nil {
		srv.log(ctx).Error("Failed to record verified payment",
			slog.String("user", user.String()), slog.String("orderID", orderID), slog.Any("error", err))

		return nil, transactionError(err)
	}

	srv.activated(ctx, entry, "Online subscription activated")

	return entry, nil
}

// orderedPlan resolves the plan a gateway order was opened for. The order must
// belong to user, carry the claimed plan and charge the plan's current amount.
func (srv *subscriptionService) orderedPlan(ctx context.Context, user entity.UserRef, input *usecase.PaymentVerification) (*entity.SubscriptionPlan, error) {
	order, err := srv.gateway.FetchOrder(ctx, input.OrderID)
	if err != nil {
		srv.log(ctx).Error("Failed to fetch gateway order",
			slog.String("orderID", input.OrderID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPaymentGatewayFailed, err.Error())
	}
	if order.Notes[noteUserID] != user.ID.String() || order.Notes[noteUserType] != string(user.Type) {
		srv.log(ctx).Warn("Gateway order belongs to another user",
			slog.String("user", user.String()), slog.String("orderID", input.OrderID))

		return nil, errors.Wrap(domainerrors.ErrOrderNotFound, input.OrderID)
	}
	if order.Notes[notePlanID] != input.PlanID.String() {
		srv.log(ctx).Warn("Gateway order opened for another plan",
			slog.String("orderID", input.OrderID), slog.String("orderPlan", order.Notes[notePlanID]), slog.Any("planID", input.PlanID))

		return nil, errors.Wrapf(domainerrors.ErrOrderMismatch, "order %s was not opened for plan %s", input.OrderID, input.PlanID)
	}

	plan, err := srv.findPlan(ctx, input.PlanID, user.Type)
	if err != nil {
		return nil, err
	}
	if !order.Amount.Equal(plan.Amount) {
		srv.log(ctx).Warn("Gateway order amount differs from plan amount",
			slog.String("orderID", input.OrderID), slog.String("orderAmount", order.Amount.String()), slog.String("planAmount", plan.Amount.String()))

		return nil, errors.Wrapf(domainerrors.ErrOrderMismatch, "order amount %s, plan amount %s", order.Amount, plan.Amount)
	}

	return plan, nil
}

// recordedOrder returns the entry already recorded for a gateway order, or nil.
func (srv *subscriptionService) recordedOrder(ctx context.Context, user entity.UserRef, orderID string) (*entity.SubscriptionLog, error) {
	existing, err := srv.logRepo.FindLogByGatewayOrder(ctx, orderID)
	if errors.Is(err, repository.ErrSubscriptionLogNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find subscription log by gateway order")
	}
	if existing.Owner() != user {
		return nil, errors.Wrap(domainerrors.ErrOrderNotFound, orderID)
	}

	srv.log(ctx).Debug("Gateway order already verified", slog.String("orderID", orderID), slog.Any("logID", existing.ID))

	return existing, nil
}

// ConfirmCashPayment settles an unpaid entry and activates it. Settling a paid entry is a no-op.
func (srv *subscriptionService) ConfirmCashPayment(ctx context.Context, logID uuid.UUID) (*entity.SubscriptionLog, error) {
	var (
		entry     *entity.SubscriptionLog
		activated bool
	)

	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		logs := repos.NewSubscriptionLogRepository()

		var err error
		entry, err = logs.FindLogByID(ctx, logID)
		if errors.Is(err, repository.ErrSubscriptionLogNotFound) {
			return errors.Wrap(domainerrors.ErrSubscriptionLogNotFound, logID.String())
		}
		if err != nil {
			return err
		}
		if entry.IsPaid() {
			return nil
		}

		account, err := repos.NewAccountRepository().FindAccount(ctx, entry.Owner())
		if err != nil {
			return accountError(entry.Owner(), err)
		}

		if err := logs.MarkPaid(ctx, entry.ID, nil); err != nil {
			return err
		}
		entry.PaymentStatus = entity.PaymentStatusPaid
		activated = true

		return attachPricing(ctx, repos, account, entry, nowFunc())
	})
	if err != nil {
		srv.log(ctx).Error("Failed to confirm cash payment", slog.Any("logID", logID), slog.Any("error", err))

		return nil, transactionError(err)
	}

	if activated {
		srv.activated(ctx, entry, "Cash subscription payment confirmed")
	}

	return entry, nil
}

// ListLogs returns the user's ledger, newest first.
func (srv *subscriptionService) ListLogs(ctx context.Context, user entity.UserRef) ([]*entity.SubscriptionLog, error) {
	logs, err := srv.logRepo.ListLogs(ctx, user)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list subscription logs")
	}

	return logs, nil
}

// CheckoutQR renders the checkout QR code of a gateway order the user opened.
func (srv *subscriptionService) CheckoutQR(ctx context.Context, user entity.UserRef, orderID string) ([]byte, error) {
	order, err := srv.gateway.FetchOrder(ctx, orderID)
	if err != nil {
		srv.log(ctx).Warn("Failed to fetch gateway order", slog.String("orderID", orderID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrOrderNotFound, orderID)
	}
	if order.Notes[noteUserID] != user.ID.String() || order.Notes[noteUserType] != string(user.Type) {
		return nil, errors.Wrap(domainerrors.ErrOrderNotFound, orderID)
	}

	png, err := srv.qrcode.GenerateCheckoutQR(order)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInternalError, err.Error())
	}

	return png, nil
}

func (srv *subscriptionService) findPlan(ctx context.Context, planID uuid.UUID, audience entity.UserType) (*entity.SubscriptionPlan, error) {
	plan, err := srv.planRepo.FindPlanByID(ctx, planID)
	if errors.Is(err, repository.ErrPlanNotFound) {
		return nil, errors.Wrap(domainerrors.ErrPlanNotFound, planID.String())
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find subscription plan")
	}
	if plan.Audience != audience {
		return nil, errors.Wrapf(domainerrors.ErrPlanAudienceMismatch, "plan is offered to %s", plan.Audience)
	}

	return plan, nil
}

// activated announces a newly paid period. Both side effects are best effort.
func (srv *subscriptionService) activated(ctx context.Context, entry *entity.SubscriptionLog, description string) {
	event := &entity.BillingEvent{
		Type:       entity.EventSubscriptionActivated,
		Owner:      entry.Owner(),
		LogID:      entry.ID,
		PlanID:     entry.PlanID,
		EndDate:    entry.EndDate,
		OccurredAt: nowFunc(),
	}
	if err := srv.publisher.PublishBillingEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish billing event",
			slog.String("type", string(event.Type)), slog.Any("logID", entry.ID), slog.Any("error", err))
	}

	srv.activity.Record(ctx, entry.Owner(), description, map[string]any{
		"log_id":   entry.ID.String(),
		"plan_id":  entry.PlanID.String(),
		"amount":   entry.Amount.String(),
		"end_date": entry.EndDate.Format(time.RFC3339),
	})
}

// nextPeriod computes the window of a new entry from the owner's latest entry and pricing reference.
func nextPeriod(
	ctx context.Context,
	logs repository.SubscriptionLogRepository,
	pricing repository.PricingRepository,
	owner entity.UserRef,
	durationDays int,
	now time.Time,
) (start, end time.Time, err error) {
	latest, err := logs.FindLatestLog(ctx, owner)
	if errors.Is(err, repository.ErrSubscriptionLogNotFound) {
		latest, err = nil, nil
	}
	if err != nil {
		return start, end, errors.Wrap(err, "failed to find latest subscription log")
	}

	latestRef, err := pricing.FindLatestReference(ctx, owner)
	if errors.Is(err, repository.ErrPricingReferenceNotFound) {
		latestRef, err = nil, nil
	}
	if err != nil {
		return start, end, errors.Wrap(err, "failed to find latest pricing reference")
	}

	start, end = billing.NextPeriod(billing.ChainFrom(latest, latestRef), durationDays, now)

	return start, end, nil
}

// attachPricing switches the owner to the subscription: the commission and its
// reference go, a subscription reference is pushed, and the pricing version is
// bumped from the value account was read with.
func attachPricing(ctx context.Context, repos repository.RepositoryFactory, account *entity.Account, entry *entity.SubscriptionLog, now time.Time) error {
	owner := entry.Owner()
	pricing := repos.NewPricingRepository()

	refs, err := pricing.ListReferences(ctx, owner)
	if err != nil {
		return errors.Wrap(err, "failed to list pricing references")
	}

	if billing.HoldsCommission(refs) {
		commissions := repos.NewCommissionRepository()
		for _, ref := range refs {
			if ref.ModelType != entity.PricingModelCommission {
				continue
			}
			if err := commissions.DeleteCommission(ctx, ref.ModelID); err != nil && !errors.Is(err, repository.ErrCommissionNotFound) {
				return errors.Wrap(err, "failed to delete commission")
			}
		}
		if _, err := pricing.RemoveReferencesByModel(ctx, owner, entity.PricingModelCommission); err != nil {
			return errors.Wrap(err, "failed to remove commission reference")
		}
	}

	ref := &entity.PricingReference{
		ID:        uuid.New(),
		Owner:     owner,
		ModelType: entity.PricingModelSubscription,
		ModelID:   entry.ID,
		CreatedAt: now,
	}
	if err := pricing.AddReference(ctx, ref); err != nil {
		return errors.Wrap(err, "failed to add subscription reference")
	}

	if err := repos.NewAccountRepository().BumpPricingVersion(ctx, owner, account.PricingVersion); err != nil {
		if errors.Is(err, repository.ErrPricingVersionConflict) {
			return errors.Wrap(domainerrors.ErrPricingConflict, owner.String())
		}

		return errors.Wrap(err, "failed to bump pricing version")
	}

	return nil
}

// transactionError keeps AppErrors raised inside a transaction and hides the rest behind ErrTransactionFailed.
func transactionError(err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return err
	}

	return errors.Wrap(domainerrors.ErrTransactionFailed, err.Error())
}

// receiptFor builds a gateway receipt. The gateway caps receipts at 40 characters.
func receiptFor(user entity.UserRef, plan *entity.SubscriptionPlan) string {
	return fmt.Sprintf("sub_%s_%s", shortID(user.ID), shortID(plan.ID))
}

func shortID(id uuid.UUID) string {
	return strings.ReplaceAll(id.String(), "-", "")[:12]
}
