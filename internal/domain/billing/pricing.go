package billing

import (
	"time"

	"billing/internal/domain/entity"
)

// ActiveSubscription returns the paid entry with the latest end date among those
// still running at now, or nil.
func ActiveSubscription(logs []*entity.SubscriptionLog, now time.Time) *entity.SubscriptionLog {
	var active *entity.SubscriptionLog
	for _, l := range logs {
		if l == nil || !l.CoversBilling(now) {
			continue
		}
		if active == nil || l.EndDate.After(active.EndDate) {
			active = l
		}
	}

	return active
}

// HoldsCommission reports whether the pricing references point at a commission.
func HoldsCommission(refs []*entity.PricingReference) bool {
	for _, r := range refs {
		if r.ModelType == entity.PricingModelCommission {
			return true
		}
	}

	return false
}

// HoldsSubscription reports whether the pricing references point at any subscription.
func HoldsSubscription(refs []*entity.PricingReference) bool {
	for _, r := range refs {
		if r.ModelType == entity.PricingModelSubscription {
			return true
		}
	}

	return false
}

// DayWindow returns [00:00, 24:00) in loc of the calendar day daysBack days before now.
// daysBack 0 is today, 1 is yesterday.
func DayWindow(now time.Time, loc *time.Location, daysBack int) (from, to time.Time) {
	local := now.In(loc)
	midnight := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	from = midnight.AddDate(0, 0, -daysBack)

	return from, from.AddDate(0, 0, 1)
}
