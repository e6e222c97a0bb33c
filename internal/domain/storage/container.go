package storage

import (
	"database/sql"

	"bazaar/internal/domain/inbox"
	"bazaar/internal/domain/reviews"
	"bazaar/internal/domain/subscriptions"
	"bazaar/internal/domain/users"
	"bazaar/internal/domain/votes"
)

// Container groups the repositories that share one connection pool.
// Nothing here spans statements in a transaction: multi-step writes (a review and its
// notifications, a subscription and its welcome message) are independent statements.
type Container struct {
	db            *sql.DB
	Users         users.Store
	Reviews       reviews.Store
	Votes         votes.Store
	Subscriptions subscriptions.Store
	Inbox         inbox.Store
}

func NewContainer(db *sql.DB) *Container {
	return &Container{
		db:            db,
		Users:         users.NewRepository(db),
		Reviews:       reviews.NewRepository(db),
		Votes:         votes.NewRepository(db),
		Subscriptions: subscriptions.NewRepository(db),
		Inbox:         inbox.NewRepository(db),
	}
}

// DB exposes the pool for health checks and metrics.
func (c *Container) DB() *sql.DB {
	return c.db
}
