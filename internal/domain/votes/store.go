package votes

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

type Store interface {
	Tally(ctx context.Context, placeID string) (Tally, error)
	FindByFingerprint(ctx context.Context, placeID, fingerprint string) (int64, error)
	Create(ctx context.Context, vote *Vote) error
	UpdateType(ctx context.Context, voteID int64, voteType int) error
}

var ErrNotFound = errors.New("vote not found")

type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Store {
	return &Repository{db: db}
}

func (r *Repository) Tally(ctx context.Context, placeID string) (Tally, error) {
	query := `
        SELECT
            COALESCE(SUM(CASE WHEN vote_type = 1 THEN 1 ELSE 0 END), 0),
            COALESCE(SUM(CASE WHEN vote_type = -1 THEN 1 ELSE 0 END), 0)
        FROM votes
        WHERE place_id = $1
    `
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	var t Tally
	err := r.db.QueryRowContext(ctx, query, placeID).Scan(&t.Up, &t.Down)
	return t, err
}

// FindByFingerprint returns the id of the vote cast on placeID by fingerprint.
// An empty fingerprint is stored as NULL and never matches.
func (r *Repository) FindByFingerprint(ctx context.Context, placeID, fingerprint string) (int64, error) {
	query := `SELECT id FROM votes WHERE place_id = $1 AND user_fingerprint = $2`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	var id int64
	err := r.db.QueryRowContext(ctx, query, placeID, nullable(fingerprint)).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrNotFound
		}
		return 0, err
	}
	return id, nil
}

func (r *Repository) Create(ctx context.Context, vote *Vote) error {
	query := `
        INSERT INTO votes (place_id, vote_type, user_fingerprint, created_at)
        VALUES ($1, $2, $3, $4)
        RETURNING id
    `
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	vote.CreatedAt = time.Now().UTC()
	return r.db.QueryRowContext(ctx, query,
		vote.PlaceID,
		vote.VoteType,
		nullable(vote.Fingerprint),
		vote.CreatedAt,
	).Scan(&vote.ID)
}

func (r *Repository) UpdateType(ctx context.Context, voteID int64, voteType int) error {
	query := `UPDATE votes SET vote_type = $1 WHERE id = $2`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	_, err := r.db.ExecContext(ctx, query, voteType, voteID)
	return err
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
