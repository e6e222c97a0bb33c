package services

import (
	"bazaar/internal/auth"
	"bazaar/internal/domain/storage"
	"bazaar/internal/notifications"

	"go.uber.org/zap"
)

// Services bundles the use cases the HTTP layer delegates to.
type Services struct {
	Auth          *AuthService
	Reviews       *ReviewService
	Votes         *VoteService
	Subscriptions *SubscriptionService
}

func New(store *storage.Container, authenticator auth.Authenticator, logger *zap.SugaredLogger) Services {
	sender := notifications.NewInboxSender(store.Inbox)

	return Services{
		Auth:          NewAuthService(store.Users, authenticator),
		Reviews:       NewReviewService(store.Reviews, store.Subscriptions, sender, logger),
		Votes:         NewVoteService(store.Votes),
		Subscriptions: NewSubscriptionService(store.Subscriptions, store.Inbox, sender, logger),
	}
}
