package services

import (
	"context"

	"bazaar/internal/domain/reviews"
	"bazaar/internal/domain/subscriptions"
	"bazaar/internal/notifications"

	"go.uber.org/zap"
)

type CreateReviewInput struct {
	PlaceID string `json:"place_id" validate:"required"`
	Rating  int    `json:"rating" validate:"required"`
	Comment string `json:"comment"`
}

type CreateReviewResult struct {
	ID       int64  `json:"id"`
	UserName string `json:"user_name"`
}

type ReviewService struct {
	reviews reviews.Store
	subs    subscriptions.Store
	sender  notifications.Sender
	logger  *zap.SugaredLogger
}

func NewReviewService(store reviews.Store, subs subscriptions.Store, sender notifications.Sender, logger *zap.SugaredLogger) *ReviewService {
	return &ReviewService{reviews: store, subs: subs, sender: sender, logger: logger}
}

// ListReviews never returns nil on success; a place without reviews yields an empty slice.
func (s *ReviewService) ListReviews(ctx context.Context, placeID string) ([]reviews.Review, error) {
	list, err := s.reviews.GetReviews(ctx, placeID)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []reviews.Review{}
	}
	return list, nil
}

// CreateReview stores the review, then notifies the place's other subscribers. The fan-out is
// best effort and runs outside any transaction: its failures are logged, not returned.
func (s *ReviewService) CreateReview(ctx context.Context, author Identity, in CreateReviewInput) (*CreateReviewResult, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	userID := author.ID
	review := &reviews.Review{
		PlaceID:  in.PlaceID,
		UserID:   &userID,
		UserName: author.Username,
		Rating:   in.Rating,
		Comment:  in.Comment,
	}
	if err := s.reviews.CreateReview(ctx, review); err != nil {
		return nil, err
	}

	sent, err := notifications.SendReviewNotifications(ctx, s.sender, s.subs, in.PlaceID, author.ID, in.Comment)
	if err != nil {
		s.logger.Warnw("review notification fan-out incomplete",
			"review_id", review.ID, "place_id", in.PlaceID, "sent", sent, "error", err)
	} else if sent > 0 {
		s.logger.Infow("review notifications sent", "review_id", review.ID, "place_id", in.PlaceID, "sent", sent)
	}

	return &CreateReviewResult{ID: review.ID, UserName: review.UserName}, nil
}
