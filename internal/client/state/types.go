package state

import "time"

type PlaceType string

const (
	TypeBazaar    PlaceType = "bazaar"
	TypeMosque    PlaceType = "mosque"
	TypeTransport PlaceType = "transport"
)

// Place is a location shown in the directory. Name is its identity across the API:
// votes, reviews and subscriptions are keyed by it.
type Place struct {
	ID      string    `json:"id"`
	Name    string    `json:"name"`
	Address string    `json:"address"`
	Council string    `json:"council,omitempty"`
	MapsURI string    `json:"maps_uri"`
	Type    PlaceType `json:"type"`
}

type Tally struct {
	Up   int `json:"up"`
	Down int `json:"down"`
}

type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type Review struct {
	ID               int64     `json:"id"`
	PlaceID          string    `json:"place_id"`
	UserName         string    `json:"user_name"`
	Rating           int       `json:"rating"`
	Comment          string    `json:"comment"`
	CreatedAt        time.Time `json:"created_at"`
	VerifiedUsername *string   `json:"verified_username"`
}

type Notification struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

type Tab string

const (
	TabAll       Tab = "all"
	TabFavorites Tab = "favorites"
)

type Location struct {
	Lat float64
	Lng float64
}
