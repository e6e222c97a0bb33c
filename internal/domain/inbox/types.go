package inbox

import "time"

var QueryTimeoutDuration = time.Second * 5

// Notification is one message in a user's pull-based inbox.
type Notification struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}
