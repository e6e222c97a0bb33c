package notifications

import (
	"context"
	"errors"
	"fmt"

	"bazaar/internal/domain/subscriptions"
	"bazaar/internal/metrics"
)

// SendReviewNotifications tells every subscriber of placeID, except the author, about a new
// review. It keeps going past individual failures and returns how many messages were stored
// along with the joined errors.
func SendReviewNotifications(ctx context.Context, sender Sender, subs subscriptions.Store, placeID string, authorID int64, comment string) (int, error) {
	subscriberIDs, err := subs.SubscriberIDs(ctx, placeID, authorID)
	if err != nil {
		return 0, fmt.Errorf("list subscribers of %q: %w", placeID, err)
	}

	message := ReviewMessage(placeID, comment)

	var (
		sent int
		errs []error
	)
	for _, userID := range subscriberIDs {
		if err := sender.Send(ctx, userID, message); err != nil {
			errs = append(errs, fmt.Errorf("notify user %d: %w", userID, err))
			continue
		}
		sent++
	}
	metrics.RecordNotifications(metrics.KindReview, sent, len(errs))
	return sent, errors.Join(errs...)
}
