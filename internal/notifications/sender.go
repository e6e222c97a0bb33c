package notifications

import (
	"context"

	"bazaar/internal/domain/inbox"
)

// Sender delivers one message to one user. Delivery is pull-based: the message lands in the
// user's inbox and is read on the next poll.
type Sender interface {
	Send(ctx context.Context, userID int64, message string) error
}

type InboxSender struct {
	store inbox.Store
}

func NewInboxSender(store inbox.Store) *InboxSender {
	return &InboxSender{store: store}
}

func (s *InboxSender) Send(ctx context.Context, userID int64, message string) error {
	return s.store.Create(ctx, &inbox.Notification{UserID: userID, Message: message})
}
