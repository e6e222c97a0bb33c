package services

import (
	"context"

	"bazaar/internal/domain/inbox"
	"bazaar/internal/domain/subscriptions"
	"bazaar/internal/notifications"

	"go.uber.org/zap"
)

type SubscribeInput struct {
	PlaceID string `json:"place_id" validate:"required"`
}

type SubscriptionService struct {
	subs   subscriptions.Store
	inbox  inbox.Store
	sender notifications.Sender
	logger *zap.SugaredLogger
}

func NewSubscriptionService(subs subscriptions.Store, box inbox.Store, sender notifications.Sender, logger *zap.SugaredLogger) *SubscriptionService {
	return &SubscriptionService{subs: subs, inbox: box, sender: sender, logger: logger}
}

// Subscribe is idempotent. The welcome message is only written when the subscription is new,
// so repeating the call never duplicates it. Store failures are logged and swallowed; only
// invalid input is reported.
func (s *SubscriptionService) Subscribe(ctx context.Context, userID int64, in SubscribeInput) error {
	if err := validateInput(in); err != nil {
		return err
	}

	created, err := s.subs.Subscribe(ctx, userID, in.PlaceID)
	if err != nil {
		s.logger.Warnw("subscribe failed", "user_id", userID, "place_id", in.PlaceID, "error", err)
		return nil
	}
	if !created {
		return nil
	}

	if err := notifications.SendWelcomeNotification(ctx, s.sender, userID, in.PlaceID); err != nil {
		s.logger.Warnw("welcome notification failed", "user_id", userID, "place_id", in.PlaceID, "error", err)
	}
	return nil
}

func (s *SubscriptionService) ListNotifications(ctx context.Context, userID int64) ([]inbox.Notification, error) {
	list, err := s.inbox.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []inbox.Notification{}
	}
	return list, nil
}

func (s *SubscriptionService) MarkAllRead(ctx context.Context, userID int64) error {
	return s.inbox.MarkAllRead(ctx, userID)
}

func (s *SubscriptionService) UnreadCount(ctx context.Context, userID int64) (int, error) {
	return s.inbox.UnreadCount(ctx, userID)
}
