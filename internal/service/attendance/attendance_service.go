// internal/service/attendance/attendance_service.go
package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gymflow-service/internal/domain/attendance"
	"gymflow-service/internal/domain/state"
	"gymflow-service/internal/domain/subscription"
	xerrors "gymflow-service/internal/pkg/errors"
	"gymflow-service/internal/pkg/metrics"

	"go.uber.org/zap"
)

// Repository is the attendance persistence surface. InsertIfUnderLimit must
// count and insert atomically so concurrent check-ins cannot overrun the
// weekly limit.
type Repository interface {
	InsertIfUnderLimit(ctx context.Context, subscriptionID int64, at, from, to time.Time, limit int) (*attendance.Attendance, bool, error)
	CountForSubscriptionBetween(ctx context.Context, subscriptionID int64, from, to time.Time) (int, error)
	FindBySubscriptionID(ctx context.Context, subscriptionID int64) ([]attendance.Attendance, error)
}

// SubscriptionProvider resolves a client's current subscription, already
// reconciled against payment recency.
type SubscriptionProvider interface {
	GetCurrentSubscription(ctx context.Context, documentNumber string, clientID int64) (*subscription.Subscription, error)
}

// Feed receives admitted check-ins for live fan-out. Optional.
type Feed interface {
	Broadcast(v interface{})
}

type AttendanceService struct {
	repo          Repository
	subscriptions SubscriptionProvider
	feed          Feed
	logger        *zap.Logger
	now           func() time.Time
}

func NewAttendanceService(repo Repository, subscriptions SubscriptionProvider, feed Feed, logger *zap.Logger) *AttendanceService {
	return &AttendanceService{
		repo:          repo,
		subscriptions: subscriptions,
		feed:          feed,
		logger:        logger,
		now:           time.Now,
	}
}

// CheckIn records a gym visit for the client with the given document number.
// Denials are domain outcomes, not errors: the result carries the reason and
// the error return is reserved for infrastructure failures.
func (s *AttendanceService) CheckIn(ctx context.Context, req *attendance.CheckinRequest) (*attendance.CheckinResult, error) {
	sub, err := s.subscriptions.GetCurrentSubscription(ctx, req.DocumentNumber, 0)
	if errors.Is(err, xerrors.ErrNotFound) {
		metrics.CheckinsDenied.WithLabelValues("no_subscription").Inc()
		return attendance.Denied(attendance.ReasonNoSubscription), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to resolve subscription: %w", err)
	}
	if sub == nil {
		metrics.CheckinsDenied.WithLabelValues("no_subscription").Inc()
		return attendance.Denied(attendance.ReasonNoSubscription), nil
	}

	if sub.State == nil || !sub.State.Is(state.NameActive) {
		metrics.CheckinsDenied.WithLabelValues("inactive").Inc()
		return attendance.Denied(attendance.ReasonInactive), nil
	}

	if sub.Membership == nil {
		return nil, fmt.Errorf("subscription %d has no membership loaded", sub.ID)
	}

	now := s.now()
	from, to := attendance.CurrentWeekWindow(now)

	att, admitted, err := s.repo.InsertIfUnderLimit(ctx, sub.ID, now, from, to, sub.Membership.WeeklyAttendanceLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to record attendance: %w", err)
	}
	if !admitted {
		metrics.CheckinsDenied.WithLabelValues("limit_exceeded").Inc()
		return attendance.Denied(attendance.ReasonLimitExceeded), nil
	}

	metrics.CheckinsRecorded.Inc()

	s.logger.Info("check-in recorded",
		zap.Int64("subscription_id", sub.ID),
		zap.Int64("attendance_id", att.ID))

	if s.feed != nil {
		s.feed.Broadcast(map[string]interface{}{
			"event":           "checkin",
			"attendance_id":   att.ID,
			"subscription_id": sub.ID,
			"client_id":       sub.ClientID,
			"date_time":       att.DateTime,
		})
	}

	return attendance.Admitted(att), nil
}

// History returns all attendances recorded for a subscription, newest first
func (s *AttendanceService) History(ctx context.Context, subscriptionID int64) ([]attendance.Attendance, error) {
	return s.repo.FindBySubscriptionID(ctx, subscriptionID)
}

// WeeklyCount returns how many visits a subscription has used in the calendar
// week containing now.
func (s *AttendanceService) WeeklyCount(ctx context.Context, subscriptionID int64) (int, error) {
	from, to := attendance.CurrentWeekWindow(s.now())
	return s.repo.CountForSubscriptionBetween(ctx, subscriptionID, from, to)
}
