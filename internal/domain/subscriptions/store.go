package subscriptions

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

type Store interface {
	Subscribe(ctx context.Context, userID int64, placeID string) (bool, error)
	SubscriberIDs(ctx context.Context, placeID string, exceptUserID int64) ([]int64, error)
}

type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Store {
	return &Repository{db: db}
}

// Subscribe records the subscription and reports whether a new row was written.
// An existing (user, place) pair is left untouched.
func (r *Repository) Subscribe(ctx context.Context, userID int64, placeID string) (bool, error) {
	query := `
	   INSERT INTO subscriptions (user_id, place_id, created_at) VALUES ($1, $2, $3)
	   ON CONFLICT (user_id, place_id) DO NOTHING
	`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, userID, placeID, time.Now().UTC())
	if err != nil {
		return false, fmt.Errorf("failed to subscribe: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// SubscriberIDs lists users subscribed to placeID, leaving out exceptUserID.
func (r *Repository) SubscriberIDs(ctx context.Context, placeID string, exceptUserID int64) ([]int64, error) {
	query := `SELECT user_id FROM subscriptions WHERE place_id = $1 AND user_id != $2 ORDER BY id`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, placeID, exceptUserID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
