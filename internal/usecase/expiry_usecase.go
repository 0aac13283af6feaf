package usecase

import "context"

// SweepReport counts what one sweep removed.
type SweepReport struct {
	MerchantDiscounts int64 `json:"merchant_discounts"`
	ProductDiscounts  int64 `json:"product_discounts"`
	DetachedProducts  int64 `json:"detached_products"`
	PromoCodes        int64 `json:"promo_codes"`
	Subscriptions     int64 `json:"subscriptions"`
	Failed            int64 `json:"failed"`
}

// Deleted is the total number of removed records.
func (r *SweepReport) Deleted() int64 {
	return r.MerchantDiscounts + r.ProductDiscounts + r.PromoCodes + r.Subscriptions
}

// ExpiryUsecase reaps expired billing records.
type ExpiryUsecase interface {
	// Sweep removes expired discounts, promo codes and ended subscription periods.
	Sweep(ctx context.Context) (*SweepReport, error)

	// PurgeActivityLogs removes audit entries older than the retention window.
	PurgeActivityLogs(ctx context.Context) (int64, error)
}
