// internal/service/feecollection/payment_checker.go
package feecollection

import (
	"context"
	"errors"
	"time"

	"gymflow-service/internal/domain/feecollection"
	xerrors "gymflow-service/internal/pkg/errors"
)

// PaymentChecker answers payment-recency questions straight off the fee
// collection repository. The subscription service consumes it through its own
// interface, keeping the dependency one-directional even though fee recording
// itself sits on top of subscriptions.
type PaymentChecker struct {
	repo LatestReader
	now  func() time.Time
}

// LatestReader is the single repository call the checker needs.
type LatestReader interface {
	FindLatestBySubscriptionID(ctx context.Context, subscriptionID int64) (*feecollection.FeeCollection, error)
}

func NewPaymentChecker(repo LatestReader) *PaymentChecker {
	return &PaymentChecker{repo: repo, now: time.Now}
}

// IsUpToDate reports whether the subscription's most recent payment still
// covers now. No payments on record means not up to date.
func (c *PaymentChecker) IsUpToDate(ctx context.Context, subscriptionID int64) (bool, error) {
	latest, err := c.repo.FindLatestBySubscriptionID(ctx, subscriptionID)
	if errors.Is(err, xerrors.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return latest.Covers(c.now()), nil
}
