package services

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"bazaar/internal/auth"
	"bazaar/internal/db"
	"bazaar/internal/domain/storage"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type testEnv struct {
	svc   Services
	store *storage.Container
	auth  *auth.JWTAuthenticator
}

func setupTestServices(t *testing.T) *testEnv {
	t.Helper()

	conn, err := db.New(db.DriverSQLite, filepath.Join(t.TempDir(), "test.db"), 1, 1, "15m")
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	require.NoError(t, db.Migrate(context.Background(), conn, db.DialectSQLite))

	store := storage.NewContainer(conn)
	authenticator := auth.NewJWTAuthenticator("test-secret", "bazaar", time.Hour)

	return &testEnv{
		svc:   New(store, authenticator, zap.NewNop().Sugar()),
		store: store,
		auth:  authenticator,
	}
}

func (e *testEnv) signup(t *testing.T, username string) Identity {
	t.Helper()

	res, err := e.svc.Auth.Signup(context.Background(), SignupInput{
		Username: username,
		Email:    username + "@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	return Identity{ID: res.User.ID, Username: res.User.Username}
}
