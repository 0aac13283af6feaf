package impl

import (
	"context"
	"net/http"
	"testing"
	"time"

	"billing/internal/domain/billing"
	"billing/internal/domain/entity"
	domainerrors "billing/internal/domain/errors"
	"billing/internal/domain/repository"
	mockRepo "billing/internal/mocks/repository"
	mockSvc "billing/internal/mocks/service"
	mockUsecase "billing/internal/mocks/usecase"
	"billing/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type subscriptionServiceFixtures struct {
	service     usecase.SubscriptionUsecase
	tx          *mockRepo.MockTransactionManager
	accountRepo *mockRepo.MockAccountRepository
	planRepo    *mockRepo.MockPlanRepository
	logRepo     *mockRepo.MockSubscriptionLogRepository
	pricingRepo *mockRepo.MockPricingRepository
	gateway     *mockSvc.MockPaymentGateway
	qrcode      *mockSvc.MockQRCodeService
	publisher   *mockSvc.MockEventPublisher
	activity    *mockUsecase.MockActivityUsecase
}

func createTestSubscriptionService(t *testing.T) subscriptionServiceFixtures {
	fx := subscriptionServiceFixtures{
		tx:          newTxManager(t),
		accountRepo: mockRepo.NewMockAccountRepository(t),
		planRepo:    mockRepo.NewMockPlanRepository(t),
		logRepo:     mockRepo.NewMockSubscriptionLogRepository(t),
		pricingRepo: mockRepo.NewMockPricingRepository(t),
		gateway:     mockSvc.NewMockPaymentGateway(t),
		qrcode:      mockSvc.NewMockQRCodeService(t),
		publisher:   mockSvc.NewMockEventPublisher(t),
		activity:    mockUsecase.NewMockActivityUsecase(t),
	}
	fx.service = NewSubscriptionService(SubscriptionServiceParams{
		TxManager:   fx.tx,
		AccountRepo: fx.accountRepo,
		PlanRepo:    fx.planRepo,
		LogRepo:     fx.logRepo,
		PricingRepo: fx.pricingRepo,
		Gateway:     fx.gateway,
		QRCode:      fx.qrcode,
		Publisher:   fx.publisher,
		Activity:    fx.activity,
		Logger:      newDiscardLogger(),
	})

	return fx
}

func newMerchantPlan(amount int64, days int) *entity.SubscriptionPlan {
	return &entity.SubscriptionPlan{
		ID:           uuid.New(),
		Audience:     entity.UserTypeMerchant,
		Name:         "Monthly",
		Amount:       decimal.NewFromInt(amount),
		DurationDays: days,
		IsActive:     true,
	}
}

// orderFor is the gateway order Purchase opens for owner and plan.
func orderFor(owner entity.UserRef, plan *entity.SubscriptionPlan, orderID string) *entity.GatewayOrder {
	return &entity.GatewayOrder{
		OrderID:  orderID,
		Amount:   plan.Amount,
		Currency: "INR",
		Notes: map[string]string{
			"user_type": string(owner.Type),
			"user_id":   owner.ID.String(),
			"plan_id":   plan.ID.String(),
		},
	}
}

func TestSubscriptionService_Purchase_CashWithoutHistory(t *testing.T) {
	fx := createTestSubscriptionService(t)

	now := time.Date(2026, 5, 1, 9, 30, 0, 0, time.UTC)
	freezeClock(t, now)

	ctx := context.Background()
	merchant := entity.MerchantRef(uuid.New())
	plan := newMerchantPlan(500, 30)

	fx.planRepo.On("FindPlanByID", ctx, plan.ID).Return(plan, nil)
	fx.accountRepo.On("FindAccount", ctx, merchant).Return(&entity.Account{Ref: merchant}, nil)
	fx.logRepo.On("FindLatestLog", ctx, merchant).Return(nil, repository.ErrSubscriptionLogNotFound)
	fx.pricingRepo.On("FindLatestReference", ctx, merchant).Return(nil, repository.ErrPricingReferenceNotFound)
	fx.logRepo.On("CreateLog", ctx, mock.AnythingOfType("*entity.SubscriptionLog")).Return(nil)
	fx.activity.On("Record", ctx, merchant, mock.Anything, mock.Anything).Return()

	result, err := fx.service.Purchase(ctx, merchant, plan.ID, entity.PaymentModeCash)
	require.NoError(t, err)
	require.NotNil(t, result.Log)
	assert.Nil(t, result.Order)

	entry := result.Log
	assert.Equal(t, now, entry.StartDate)
	assert.Equal(t, now.Add(30*billing.Day), entry.EndDate)
	assert.Equal(t, entity.PaymentStatusUnpaid, entry.PaymentStatus)
	assert.Equal(t, entity.PaymentModeCash, entry.PaymentMode)
	assert.True(t, decimal.NewFromInt(500).Equal(entry.Amount))
	assert.Equal(t, merchant, entry.Owner())
	// Cash entries are not attached to pricing until confirmed.
	assert.Zero(t, fx.tx.Calls)
}

func TestSubscriptionService_Purchase_OnlineOpensGatewayOrder(t *testing.T) {
	fx := createTestSubscriptionService(t)

	ctx := context.Background()
	merchant := entity.MerchantRef(uuid.New())
	plan := newMerchantPlan(999, 90)
	order := &entity.GatewayOrder{OrderID: "order_Nx1", Amount: plan.Amount, Currency: "INR", KeyID: "rzp_test"}

	fx.planRepo.On("FindPlanByID", ctx, plan.ID).Return(plan, nil)
	fx.accountRepo.On("FindAccount", ctx, merchant).Return(&entity.Account{Ref: merchant}, nil)
	fx.gateway.On("CreateOrder", ctx, plan.Amount,
		mock.MatchedBy(func(receipt string) bool { return len(receipt) <= 40 }),
		map[string]string{
			"user_type": "Merchant",
			"user_id":   merchant.ID.String(),
			"plan_id":   plan.ID.String(),
		}).Return(order, nil)

	result, err := fx.service.Purchase(ctx, merchant, plan.ID, entity.PaymentModeOnline)
	require.NoError(t, err)
	assert.Equal(t, order, result.Order)
	assert.Nil(t, result.Log)
}

func TestSubscriptionService_Purchase_PlanChecks(t *testing.T) {
	customerPlan := newMerchantPlan(100, 7)
	customerPlan.Audience = entity.UserTypeCustomer
	inactive := newMerchantPlan(100, 7)
	inactive.IsActive = false

	tests := []struct {
		name    string
		plan    *entity.SubscriptionPlan
		findErr error
		wantErr error
	}{
		{name: "missing plan", plan: newMerchantPlan(100, 7), findErr: repository.ErrPlanNotFound, wantErr: domainerrors.ErrPlanNotFound},
		{name: "other audience", plan: customerPlan, wantErr: domainerrors.ErrPlanAudienceMismatch},
		{name: "inactive plan", plan: inactive, wantErr: domainerrors.ErrPlanInactive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestSubscriptionService(t)

			ctx := context.Background()
			if tt.findErr != nil {
				fx.planRepo.On("FindPlanByID", ctx, tt.plan.ID).Return(nil, tt.findErr)
			} else {
				fx.planRepo.On("FindPlanByID", ctx, tt.plan.ID).Return(tt.plan, nil)
			}

			_, err := fx.service.Purchase(ctx, entity.MerchantRef(uuid.New()), tt.plan.ID, entity.PaymentModeCash)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr))
		})
	}
}

func TestSubscriptionService_Purchase_InvalidMode(t *testing.T) {
	fx := createTestSubscriptionService(t)

	_, err := fx.service.Purchase(context.Background(), entity.MerchantRef(uuid.New()), uuid.New(), entity.PaymentMode("Cheque"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidPaymentMode))
}

func TestSubscriptionService_VerifyPayment_ChainsFromPreviousPeriod(t *testing.T) {
	fx := createTestSubscriptionService(t)

	now := time.Date(2026, 5, 1, 9, 30, 0, 0, time.UTC)
	freezeClock(t, now)

	ctx := context.Background()
	merchant := entity.MerchantRef(uuid.New())
	plan := newMerchantPlan(500, 30)
	previousEnd := now.Add(12 * billing.Day)
	previous := &entity.SubscriptionLog{
		ID: uuid.New(), UserID: merchant.ID, TypeOfUser: merchant.Type,
		PaymentStatus: entity.PaymentStatusPaid, EndDate: previousEnd,
	}
	input := &usecase.PaymentVerification{PlanID: plan.ID, OrderID: "order_1", PaymentID: "pay_1", Signature: "sig"}
	repos := fx.tx.Factory

	fx.gateway.On("VerifySignature", "order_1", "pay_1", "sig").Return(true)
	fx.gateway.On("FetchOrder", ctx, "order_1").Return(orderFor(merchant, plan, "order_1"), nil)
	fx.logRepo.On("FindLogByGatewayOrder", ctx, "order_1").Return(nil, repository.ErrSubscriptionLogNotFound)
	fx.planRepo.On("FindPlanByID", ctx, plan.ID).Return(plan, nil)
	repos.Account.On("FindAccount", ctx, merchant).Return(&entity.Account{Ref: merchant, PricingVersion: 4}, nil)
	repos.SubscriptionLog.On("FindLatestLog", ctx, merchant).Return(previous, nil)
	repos.Pricing.On("FindLatestReference", ctx, merchant).Return(&entity.PricingReference{
		ModelType: entity.PricingModelSubscription, ModelID: previous.ID,
	}, nil)
	repos.SubscriptionLog.On("CreateLog", ctx, mock.AnythingOfType("*entity.SubscriptionLog")).Return(nil)
	repos.Pricing.On("ListReferences", ctx, merchant).Return([]*entity.PricingReference{
		{ModelType: entity.PricingModelSubscription, ModelID: previous.ID},
	}, nil)
	repos.Pricing.On("AddReference", ctx, mock.MatchedBy(func(ref *entity.PricingReference) bool {
		return ref.ModelType == entity.PricingModelSubscription && ref.Owner == merchant
	})).Return(nil)
	repos.Account.On("BumpPricingVersion", ctx, merchant, int64(4)).Return(nil)
	fx.publisher.On("PublishBillingEvent", ctx, mock.MatchedBy(func(e *entity.BillingEvent) bool {
		return e.Type == entity.EventSubscriptionActivated && e.Owner == merchant
	})).Return(nil)
	fx.activity.On("Record", ctx, merchant, mock.Anything, mock.Anything).Return()

	entry, err := fx.service.VerifyPayment(ctx, merchant, input)
	require.NoError(t, err)
	assert.Equal(t, previousEnd, entry.StartDate)
	assert.Equal(t, previousEnd.Add(30*billing.Day), entry.EndDate)
	assert.Equal(t, entity.PaymentStatusPaid, entry.PaymentStatus)
	assert.Equal(t, entity.PaymentModeOnline, entry.PaymentMode)
	require.NotNil(t, entry.RazorpayOrderID)
	assert.Equal(t, "order_1", *entry.RazorpayOrderID)
	assert.Equal(t, 1, fx.tx.Calls)
}

func TestSubscriptionService_VerifyPayment_ReplacesCommission(t *testing.T) {
	fx := createTestSubscriptionService(t)

	now := time.Date(2026, 5, 1, 9, 30, 0, 0, time.UTC)
	freezeClock(t, now)

	ctx := context.Background()
	merchant := entity.MerchantRef(uuid.New())
	plan := newMerchantPlan(500, 30)
	commissionID := uuid.New()
	commissionRef := &entity.PricingReference{Owner: merchant, ModelType: entity.PricingModelCommission, ModelID: commissionID}
	input := &usecase.PaymentVerification{PlanID: plan.ID, OrderID: "order_2", PaymentID: "pay_2", Signature: "sig"}
	repos := fx.tx.Factory

	fx.gateway.On("VerifySignature", "order_2", "pay_2", "sig").Return(true)
	fx.gateway.On("FetchOrder", ctx, "order_2").Return(orderFor(merchant, plan, "order_2"), nil)
	fx.logRepo.On("FindLogByGatewayOrder", ctx, "order_2").Return(nil, repository.ErrSubscriptionLogNotFound)
	fx.planRepo.On("FindPlanByID", ctx, plan.ID).Return(plan, nil)
	repos.Account.On("FindAccount", ctx, merchant).Return(&entity.Account{Ref: merchant, PricingVersion: 1}, nil)
	repos.SubscriptionLog.On("FindLatestLog", ctx, merchant).Return(nil, repository.ErrSubscriptionLogNotFound)
	repos.Pricing.On("FindLatestReference", ctx, merchant).Return(commissionRef, nil)
	repos.SubscriptionLog.On("CreateLog", ctx, mock.AnythingOfType("*entity.SubscriptionLog")).Return(nil)
	repos.Pricing.On("ListReferences", ctx, merchant).Return([]*entity.PricingReference{commissionRef}, nil)
	repos.Commission.On("DeleteCommission", ctx, commissionID).Return(nil)
	repos.Pricing.On("RemoveReferencesByModel", ctx, merchant, entity.PricingModelCommission).Return(int64(1), nil)
	repos.Pricing.On("AddReference", ctx, mock.AnythingOfType("*entity.PricingReference")).Return(nil)
	repos.Account.On("BumpPricingVersion", ctx, merchant, int64(1)).Return(nil)
	fx.publisher.On("PublishBillingEvent", ctx, mock.Anything).Return(nil)
	fx.activity.On("Record", ctx, merchant, mock.Anything, mock.Anything).Return()

	entry, err := fx.service.VerifyPayment(ctx, merchant, input)
	require.NoError(t, err)
	assert.Equal(t, now, entry.StartDate)
	assert.Equal(t, now.Add(30*billing.Day), entry.EndDate)
	repos.Commission.AssertCalled(t, "DeleteCommission", ctx, commissionID)
	repos.Pricing.AssertCalled(t, "RemoveReferencesByModel", ctx, merchant, entity.PricingModelCommission)
}

func TestSubscriptionService_VerifyPayment_TamperedSignature(t *testing.T) {
	fx := createTestSubscriptionService(t)

	ctx := context.Background()
	merchant := entity.MerchantRef(uuid.New())
	input := &usecase.PaymentVerification{PlanID: uuid.New(), OrderID: "order_3", PaymentID: "pay_3", Signature: "forged"}

	fx.gateway.On("VerifySignature", "order_3", "pay_3", "forged").Return(false)

	for range 2 {
		entry, err := fx.service.VerifyPayment(ctx, merchant, input)
		require.Error(t, err)
		assert.Nil(t, entry)

		var appErr domainerrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidPaymentSignature))
	}

	assert.Zero(t, fx.tx.Calls)
	fx.logRepo.AssertNotCalled(t, "CreateLog", mock.Anything, mock.Anything)
}

func TestSubscriptionService_VerifyPayment_RejectsOrderForAnotherPlan(t *testing.T) {
	ctx := context.Background()
	merchant := entity.MerchantRef(uuid.New())
	weekly := newMerchantPlan(100, 7)
	yearly := newMerchantPlan(50000, 365)

	tests := []struct {
		name    string
		order   *entity.GatewayOrder
		planID  uuid.UUID
		wantErr error
	}{
		{
			name:    "weekly order claimed as yearly plan",
			order:   orderFor(merchant, weekly, "order_9"),
			planID:  yearly.ID,
			wantErr: domainerrors.ErrOrderMismatch,
		},
		{
			name:    "order opened by another merchant",
			order:   orderFor(entity.MerchantRef(uuid.New()), yearly, "order_9"),
			planID:  yearly.ID,
			wantErr: domainerrors.ErrOrderNotFound,
		},
		{
			name:    "order opened by a customer with the same id",
			order:   orderFor(entity.UserRef{Type: entity.UserTypeCustomer, ID: merchant.ID}, yearly, "order_9"),
			planID:  yearly.ID,
			wantErr: domainerrors.ErrOrderNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestSubscriptionService(t)
			input := &usecase.PaymentVerification{PlanID: tt.planID, OrderID: "order_9", PaymentID: "pay_9", Signature: "sig"}

			fx.gateway.On("VerifySignature", "order_9", "pay_9", "sig").Return(true)
			fx.logRepo.On("FindLogByGatewayOrder", ctx, "order_9").Return(nil, repository.ErrSubscriptionLogNotFound)
			fx.gateway.On("FetchOrder", ctx, "order_9").Return(tt.order, nil)

			entry, err := fx.service.VerifyPayment(ctx, merchant, input)
			require.Error(t, err)
			assert.Nil(t, entry)
			assert.True(t, errors.Is(err, tt.wantErr))
			assert.Zero(t, fx.tx.Calls)
			fx.planRepo.AssertNotCalled(t, "FindPlanByID", mock.Anything, mock.Anything)
		})
	}
}

func TestSubscriptionService_VerifyPayment_RejectsRepricedPlan(t *testing.T) {
	fx := createTestSubscriptionService(t)

	ctx := context.Background()
	merchant := entity.MerchantRef(uuid.New())
	plan := newMerchantPlan(500, 30)
	order := orderFor(merchant, plan, "order_10")
	order.Amount = decimal.NewFromInt(50)
	input := &usecase.PaymentVerification{PlanID: plan.ID, OrderID: "order_10", PaymentID: "pay_10", Signature: "sig"}

	fx.gateway.On("VerifySignature", "order_10", "pay_10", "sig").Return(true)
	fx.logRepo.On("FindLogByGatewayOrder", ctx, "order_10").Return(nil, repository.ErrSubscriptionLogNotFound)
	fx.gateway.On("FetchOrder", ctx, "order_10").Return(order, nil)
	fx.planRepo.On("FindPlanByID", ctx, plan.ID).Return(plan, nil)

	_, err := fx.service.VerifyPayment(ctx, merchant, input)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
	assert.True(t, errors.Is(err, domainerrors.ErrOrderMismatch))
	assert.Zero(t, fx.tx.Calls)
}

func TestSubscriptionService_VerifyPayment_GatewayLookupFails(t *testing.T) {
	fx := createTestSubscriptionService(t)

	ctx := context.Background()
	merchant := entity.MerchantRef(uuid.New())
	input := &usecase.PaymentVerification{PlanID: uuid.New(), OrderID: "order_11", PaymentID: "pay_11", Signature: "sig"}

	fx.gateway.On("VerifySignature", "order_11", "pay_11", "sig").Return(true)
	fx.logRepo.On("FindLogByGatewayOrder", ctx, "order_11").Return(nil, repository.ErrSubscriptionLogNotFound)
	fx.gateway.On("FetchOrder", ctx, "order_11").Return(nil, errors.New("razorpay fetch order: timeout"))

	_, err := fx.service.VerifyPayment(ctx, merchant, input)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPaymentGatewayFailed))
	assert.Zero(t, fx.tx.Calls)
}

func TestSubscriptionService_VerifyPayment_AlreadyRecorded(t *testing.T) {
	fx := createTestSubscriptionService(t)

	ctx := context.Background()
	merchant := entity.MerchantRef(uuid.New())
	orderID := "order_4"
	recorded := &entity.SubscriptionLog{
		ID: uuid.New(), UserID: merchant.ID, TypeOfUser: merchant.Type,
		PaymentStatus: entity.PaymentStatusPaid, RazorpayOrderID: &orderID,
	}
	input := &usecase.PaymentVerification{PlanID: uuid.New(), OrderID: orderID, PaymentID: "pay_4", Signature: "sig"}

	fx.gateway.On("VerifySignature", orderID, "pay_4", "sig").Return(true)
	fx.logRepo.On("FindLogByGatewayOrder", ctx, orderID).Return(recorded, nil)

	entry, err := fx.service.VerifyPayment(ctx, merchant, input)
	require.NoError(t, err)
	assert.Equal(t, recorded, entry)
	assert.Zero(t, fx.tx.Calls)
}

func TestSubscriptionService_VerifyPayment_PricingConflict(t *testing.T) {
	fx := createTestSubscriptionService(t)

	ctx := context.Background()
	merchant := entity.MerchantRef(uuid.New())
	plan := newMerchantPlan(500, 30)
	input := &usecase.PaymentVerification{PlanID: plan.ID, OrderID: "order_5", PaymentID: "pay_5", Signature: "sig"}
	repos := fx.tx.Factory

	fx.gateway.On("VerifySignature", "order_5", "pay_5", "sig").Return(true)
	fx.gateway.On("FetchOrder", ctx, "order_5").Return(orderFor(merchant, plan, "order_5"), nil)
	fx.logRepo.On("FindLogByGatewayOrder", ctx, "order_5").Return(nil, repository.ErrSubscriptionLogNotFound)
	fx.planRepo.On("FindPlanByID", ctx, plan.ID).Return(plan, nil)
	repos.Account.On("FindAccount", ctx, merchant).Return(&entity.Account{Ref: merchant, PricingVersion: 7}, nil)
	repos.SubscriptionLog.On("FindLatestLog", ctx, merchant).Return(nil, repository.ErrSubscriptionLogNotFound)
	repos.Pricing.On("FindLatestReference", ctx, merchant).Return(nil, repository.ErrPricingReferenceNotFound)
	repos.SubscriptionLog.On("CreateLog", ctx, mock.AnythingOfType("*entity.SubscriptionLog")).Return(nil)
	repos.Pricing.On("ListReferences", ctx, merchant).Return([]*entity.PricingReference{}, nil)
	repos.Pricing.On("AddReference", ctx, mock.AnythingOfType("*entity.PricingReference")).Return(nil)
	repos.Account.On("BumpPricingVersion", ctx, merchant, int64(7)).Return(repository.ErrPricingVersionConflict)

	entry, err := fx.service.VerifyPayment(ctx, merchant, input)
	require.Error(t, err)
	assert.Nil(t, entry)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusConflict, appErr.HTTPCode())
	fx.publisher.AssertNotCalled(t, "PublishBillingEvent", mock.Anything, mock.Anything)
}

func TestSubscriptionService_VerifyPayment_ConcurrentDuplicate(t *testing.T) {
	fx := createTestSubscriptionService(t)

	ctx := context.Background()
	merchant := entity.MerchantRef(uuid.New())
	plan := newMerchantPlan(500, 30)
	orderID := "order_6"
	winner := &entity.SubscriptionLog{ID: uuid.New(), UserID: merchant.ID, TypeOfUser: merchant.Type, RazorpayOrderID: &orderID}
	input := &usecase.PaymentVerification{PlanID: plan.ID, OrderID: orderID, PaymentID: "pay_6", Signature: "sig"}
	repos := fx.tx.Factory

	fx.gateway.On("VerifySignature", orderID, "pay_6", "sig").Return(true)
	fx.gateway.On("FetchOrder", ctx, orderID).Return(orderFor(merchant, plan, orderID), nil)
	fx.logRepo.On("FindLogByGatewayOrder", ctx, orderID).Return(nil, repository.ErrSubscriptionLogNotFound).Once()
	fx.logRepo.On("FindLogByGatewayOrder", ctx, orderID).Return(winner, nil).Once()
	fx.planRepo.On("FindPlanByID", ctx, plan.ID).Return(plan, nil)
	repos.Account.On("FindAccount", ctx, merchant).Return(&entity.Account{Ref: merchant}, nil)
	repos.SubscriptionLog.On("FindLatestLog", ctx, merchant).Return(nil, repository.ErrSubscriptionLogNotFound)
	repos.Pricing.On("FindLatestReference", ctx, merchant).Return(nil, repository.ErrPricingReferenceNotFound)
	repos.SubscriptionLog.On("CreateLog", ctx, mock.AnythingOfType("*entity.SubscriptionLog")).Return(repository.ErrDuplicateGatewayOrder)

	entry, err := fx.service.VerifyPayment(ctx, merchant, input)
	require.NoError(t, err)
	assert.Equal(t, winner.ID, entry.ID)
}

func TestSubscriptionService_ConfirmCashPayment(t *testing.T) {
	fx := createTestSubscriptionService(t)

	ctx := context.Background()
	merchant := entity.MerchantRef(uuid.New())
	entry := &entity.SubscriptionLog{
		ID: uuid.New(), PlanID: uuid.New(), UserID: merchant.ID, TypeOfUser: merchant.Type,
		PaymentMode: entity.PaymentModeCash, PaymentStatus: entity.PaymentStatusUnpaid,
	}
	repos := fx.tx.Factory

	repos.SubscriptionLog.On("FindLogByID", ctx, entry.ID).Return(entry, nil)
	repos.Account.On("FindAccount", ctx, merchant).Return(&entity.Account{Ref: merchant, PricingVersion: 2}, nil)
	repos.SubscriptionLog.On("MarkPaid", ctx, entry.ID, (*string)(nil)).Return(nil)
	repos.Pricing.On("ListReferences", ctx, merchant).Return([]*entity.PricingReference{}, nil)
	repos.Pricing.On("AddReference", ctx, mock.AnythingOfType("*entity.PricingReference")).Return(nil)
	repos.Account.On("BumpPricingVersion", ctx, merchant, int64(2)).Return(nil)
	fx.publisher.On("PublishBillingEvent", ctx, mock.Anything).Return(nil)
	fx.activity.On("Record", ctx, merchant, mock.Anything, mock.Anything).Return()

	confirmed, err := fx.service.ConfirmCashPayment(ctx, entry.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusPaid, confirmed.PaymentStatus)
}

func TestSubscriptionService_ConfirmCashPayment_AlreadyPaid(t *testing.T) {
	fx := createTestSubscriptionService(t)

	ctx := context.Background()
	entry := &entity.SubscriptionLog{ID: uuid.New(), TypeOfUser: entity.UserTypeMerchant, PaymentStatus: entity.PaymentStatusPaid}

	fx.tx.Factory.SubscriptionLog.On("FindLogByID", ctx, entry.ID).Return(entry, nil)

	confirmed, err := fx.service.ConfirmCashPayment(ctx, entry.ID)
	require.NoError(t, err)
	assert.Equal(t, entry, confirmed)
	fx.publisher.AssertNotCalled(t, "PublishBillingEvent", mock.Anything, mock.Anything)
}

func TestSubscriptionService_ConfirmCashPayment_NotFound(t *testing.T) {
	fx := createTestSubscriptionService(t)

	ctx := context.Background()
	logID := uuid.New()

	fx.tx.Factory.SubscriptionLog.On("FindLogByID", ctx, logID).Return(nil, repository.ErrSubscriptionLogNotFound)

	_, err := fx.service.ConfirmCashPayment(ctx, logID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrSubscriptionLogNotFound))
}

func TestSubscriptionService_CheckoutQR(t *testing.T) {
	ctx := context.Background()
	merchant := entity.MerchantRef(uuid.New())

	t.Run("owner gets the code", func(t *testing.T) {
		fx := createTestSubscriptionService(t)
		order := &entity.GatewayOrder{OrderID: "order_7", Notes: map[string]string{
			"user_type": "Merchant", "user_id": merchant.ID.String(),
		}}

		fx.gateway.On("FetchOrder", ctx, "order_7").Return(order, nil)
		fx.qrcode.On("GenerateCheckoutQR", order).Return([]byte("png"), nil)

		png, err := fx.service.CheckoutQR(ctx, merchant, "order_7")
		require.NoError(t, err)
		assert.Equal(t, []byte("png"), png)
	})

	t.Run("someone else's order is hidden", func(t *testing.T) {
		fx := createTestSubscriptionService(t)
		order := &entity.GatewayOrder{OrderID: "order_8", Notes: map[string]string{
			"user_type": "Merchant", "user_id": uuid.NewString(),
		}}

		fx.gateway.On("FetchOrder", ctx, "order_8").Return(order, nil)

		_, err := fx.service.CheckoutQR(ctx, merchant, "order_8")
		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrOrderNotFound))
	})
}

func TestReceiptFor_FitsGatewayLimit(t *testing.T) {
	receipt := receiptFor(entity.MerchantRef(uuid.New()), newMerchantPlan(1, 1))
	assert.LessOrEqual(t, len(receipt), 40)
	assert.Regexp(t, `^sub_[0-9a-f]{12}_[0-9a-f]{12}$`, receipt)
}
