// Package billing holds the pure rules of the subscription and commission lifecycle.
package billing

import (
	"time"

	"billing/internal/domain/entity"
)

// Day is the length of one billed day. Periods are measured in whole 24h days.
const Day = 24 * time.Hour

// NextPeriod computes the window of a newly purchased subscription period.
//
// A new period starts where the previous one ends so consecutive renewals chain
// without gaps or overlap. Without a previous end it starts at now.
func NextPeriod(previousEnd *time.Time, durationDays int, now time.Time) (start, end time.Time) {
	start = now
	if previousEnd != nil {
		start = *previousEnd
	}

	return start, start.Add(time.Duration(durationDays) * Day)
}

// ChainFrom picks the previous end a new period chains from.
//
// latest is the owner's most recent ledger entry and latestRef its most recent
// pricing reference. A commission owner, or one without any ledger entry, starts fresh.
func ChainFrom(latest *entity.SubscriptionLog, latestRef *entity.PricingReference) *time.Time {
	if latest == nil {
		return nil
	}
	if latestRef != nil && latestRef.ModelType == entity.PricingModelCommission {
		return nil
	}
	end := latest.EndDate

	return &end
}
