package votes

import "time"

var QueryTimeoutDuration = time.Second * 5

const (
	Up   = 1
	Down = -1
)

type Vote struct {
	ID          int64     `json:"id"`
	PlaceID     string    `json:"place_id"`
	VoteType    int       `json:"vote_type"`
	Fingerprint string    `json:"user_fingerprint,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Tally is the up/down count for one place.
type Tally struct {
	Up   int `json:"up"`
	Down int `json:"down"`
}
