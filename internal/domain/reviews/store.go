package reviews

import (
	"context"
	"database/sql"
	"time"
)

type Store interface {
	CreateReview(context.Context, *Review) error
	GetReviews(context.Context, string) ([]Review, error)
}

type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Store {
	return &Repository{db: db}
}

func (r *Repository) CreateReview(ctx context.Context, review *Review) error {
	query := `
        INSERT INTO reviews (place_id, user_id, user_name, rating, comment, created_at)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id
    `
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	review.CreatedAt = time.Now().UTC()

	var comment sql.NullString
	if review.Comment != "" {
		comment = sql.NullString{String: review.Comment, Valid: true}
	}

	return r.db.QueryRowContext(ctx, query,
		review.PlaceID,
		review.UserID,
		review.UserName,
		review.Rating,
		comment,
		review.CreatedAt,
	).Scan(&review.ID)
}

// GetReviews lists a place's reviews newest first. The reviewer's current username wins over
// the name stored with the review; the stored name is kept when the user row is gone.
func (r *Repository) GetReviews(ctx context.Context, placeID string) ([]Review, error) {
	query := `
        SELECT r.id, r.place_id, r.user_id, COALESCE(u.username, r.user_name), r.rating,
               r.comment, r.created_at, u.username
        FROM reviews r
        LEFT JOIN users u ON u.id = r.user_id
        WHERE r.place_id = $1
        ORDER BY r.created_at DESC, r.id DESC
    `
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, placeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reviews := []Review{}
	for rows.Next() {
		var (
			review   Review
			comment  sql.NullString
			verified sql.NullString
		)
		err := rows.Scan(
			&review.ID,
			&review.PlaceID,
			&review.UserID,
			&review.UserName,
			&review.Rating,
			&comment,
			&review.CreatedAt,
			&verified,
		)
		if err != nil {
			return nil, err
		}
		review.Comment = comment.String
		if verified.Valid {
			review.VerifiedUsername = &verified.String
		}

		reviews = append(reviews, review)
	}
	return reviews, rows.Err()
}
