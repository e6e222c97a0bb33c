package reviews

import "time"

var QueryTimeoutDuration = time.Second * 5

type Review struct {
	ID        int64     `json:"id"`
	PlaceID   string    `json:"place_id"`
	UserID    *int64    `json:"user_id"`
	UserName  string    `json:"user_name"`
	Rating    int       `json:"rating"` // expected 1-5, not enforced
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`

	// Joined fields
	VerifiedUsername *string `json:"verified_username"`
}
