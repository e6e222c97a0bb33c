package services

import (
	"context"
	"testing"

	"bazaar/internal/domain/votes"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitVoteOverwritesSameFingerprint(t *testing.T) {
	env := setupTestServices(t)
	ctx := context.Background()

	require.NoError(t, env.svc.Votes.SubmitVote(ctx, SubmitVoteInput{PlaceID: ttdi, VoteType: votes.Up, Fingerprint: "fp1"}))
	require.NoError(t, env.svc.Votes.SubmitVote(ctx, SubmitVoteInput{PlaceID: ttdi, VoteType: votes.Down, Fingerprint: "fp1"}))

	tally, err := env.svc.Votes.GetVotes(ctx, ttdi)
	require.NoError(t, err)
	assert.Equal(t, votes.Tally{Up: 0, Down: 1}, tally)
}

func TestSubmitVoteDifferentFingerprintsAccumulate(t *testing.T) {
	env := setupTestServices(t)
	ctx := context.Background()

	require.NoError(t, env.svc.Votes.SubmitVote(ctx, SubmitVoteInput{PlaceID: ttdi, VoteType: votes.Up, Fingerprint: "fp1"}))
	require.NoError(t, env.svc.Votes.SubmitVote(ctx, SubmitVoteInput{PlaceID: ttdi, VoteType: votes.Up, Fingerprint: "fp2"}))

	tally, err := env.svc.Votes.GetVotes(ctx, ttdi)
	require.NoError(t, err)
	assert.Equal(t, votes.Tally{Up: 2, Down: 0}, tally)
}

func TestSubmitVoteWithoutFingerprintAlwaysInserts(t *testing.T) {
	env := setupTestServices(t)
	ctx := context.Background()

	require.NoError(t, env.svc.Votes.SubmitVote(ctx, SubmitVoteInput{PlaceID: ttdi, VoteType: votes.Up}))
	require.NoError(t, env.svc.Votes.SubmitVote(ctx, SubmitVoteInput{PlaceID: ttdi, VoteType: votes.Up}))

	tally, err := env.svc.Votes.GetVotes(ctx, ttdi)
	require.NoError(t, err)
	assert.Equal(t, 2, tally.Up)
}

func TestSubmitVoteValidation(t *testing.T) {
	env := setupTestServices(t)
	ctx := context.Background()

	assert.ErrorIs(t, env.svc.Votes.SubmitVote(ctx, SubmitVoteInput{VoteType: votes.Up}), ErrValidation)
	assert.ErrorIs(t, env.svc.Votes.SubmitVote(ctx, SubmitVoteInput{PlaceID: ttdi}), ErrValidation)
	assert.ErrorIs(t, env.svc.Votes.SubmitVote(ctx, SubmitVoteInput{PlaceID: ttdi, VoteType: 5}), ErrValidation)
}

func TestGetVotesUnknownPlace(t *testing.T) {
	env := setupTestServices(t)

	tally, err := env.svc.Votes.GetVotes(context.Background(), "nowhere")
	require.NoError(t, err)
	assert.Equal(t, votes.Tally{}, tally)
}
