package notifications

import (
	"context"

	"bazaar/internal/metrics"
)

// SendWelcomeNotification greets a user who just subscribed to placeID.
func SendWelcomeNotification(ctx context.Context, sender Sender, userID int64, placeID string) error {
	if err := sender.Send(ctx, userID, WelcomeMessage(placeID)); err != nil {
		metrics.RecordNotifications(metrics.KindWelcome, 0, 1)
		return err
	}
	metrics.RecordNotifications(metrics.KindWelcome, 1, 0)
	return nil
}
