package services

import (
	"context"
	"errors"

	"bazaar/internal/domain/votes"
)

type SubmitVoteInput struct {
	PlaceID     string `json:"place_id" validate:"required"`
	VoteType    int    `json:"vote_type" validate:"required,oneof=1 -1"`
	Fingerprint string `json:"user_fingerprint"`
}

type VoteService struct {
	votes votes.Store
}

func NewVoteService(store votes.Store) *VoteService {
	return &VoteService{votes: store}
}

func (s *VoteService) GetVotes(ctx context.Context, placeID string) (votes.Tally, error) {
	return s.votes.Tally(ctx, placeID)
}

// SubmitVote overwrites the fingerprint's earlier vote on the place or records a new one.
// The lookup and the write are separate statements, so two concurrent first votes from the
// same fingerprint can both insert. Callers must not rely on a unique row per fingerprint.
func (s *VoteService) SubmitVote(ctx context.Context, in SubmitVoteInput) error {
	if err := validateInput(in); err != nil {
		return err
	}

	id, err := s.votes.FindByFingerprint(ctx, in.PlaceID, in.Fingerprint)
	switch {
	case err == nil:
		return s.votes.UpdateType(ctx, id, in.VoteType)
	case errors.Is(err, votes.ErrNotFound):
		return s.votes.Create(ctx, &votes.Vote{
			PlaceID:     in.PlaceID,
			VoteType:    in.VoteType,
			Fingerprint: in.Fingerprint,
		})
	default:
		return err
	}
}
