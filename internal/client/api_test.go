package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"bazaar/internal/client/state"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPClientRequests(t *testing.T) {
	type seen struct {
		method, path, auth string
		body               map[string]any
	}
	var last seen

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		last = seen{method: r.Method, path: r.URL.EscapedPath(), auth: r.Header.Get("Authorization")}
		last.body = nil
		if r.ContentLength > 0 {
			json.NewDecoder(r.Body).Decode(&last.body)
		}

		w.Header().Set("Content-Type", "application/json")
		switch r.URL.EscapedPath() {
		case "/api/auth/login":
			w.Write([]byte(`{"token":"t1","user":{"id":7,"username":"amin","email":"amin@example.com"}}`))
		case "/api/votes/Bazaar%20Ramadhan%20USJ%204":
			w.Write([]byte(`{"up":3,"down":1}`))
		case "/api/reviews/Bazaar%20Ramadhan%20USJ%204":
			w.Write([]byte(`[{"id":1,"place_id":"Bazaar Ramadhan USJ 4","user_name":"amin","rating":5,"comment":"ok","created_at":"2026-03-01T10:00:00Z","verified_username":"amin"}]`))
		case "/api/notifications":
			w.Write([]byte(`[]`))
		case "/api/notifications/unread":
			w.Write([]byte(`{"unread":4}`))
		default:
			w.Write([]byte(`{"success":true}`))
		}
	}))
	defer srv.Close()

	ctx := context.Background()
	c := NewHTTPClient(srv.URL + "/")

	res, err := c.Login(ctx, "amin@example.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, "t1", res.Token)
	assert.Equal(t, state.User{ID: 7, Username: "amin", Email: "amin@example.com"}, res.User)
	assert.Equal(t, "POST", last.method)
	assert.Empty(t, last.auth)

	tally, err := c.Votes(ctx, "Bazaar Ramadhan USJ 4")
	require.NoError(t, err)
	assert.Equal(t, state.Tally{Up: 3, Down: 1}, tally)

	reviews, err := c.Reviews(ctx, "Bazaar Ramadhan USJ 4")
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	require.NotNil(t, reviews[0].VerifiedUsername)
	assert.Equal(t, "amin", *reviews[0].VerifiedUsername)

	require.NoError(t, c.SubmitVote(ctx, "P", -1, "fp"))
	assert.Equal(t, "/api/votes", last.path)
	assert.Equal(t, map[string]any{"place_id": "P", "vote_type": float64(-1), "user_fingerprint": "fp"}, last.body)

	require.NoError(t, c.AddReview(ctx, "t1", "P", 4, "good"))
	assert.Equal(t, "Bearer t1", last.auth)
	assert.Equal(t, "/api/reviews", last.path)

	require.NoError(t, c.Subscribe(ctx, "t1", "P"))
	assert.Equal(t, map[string]any{"place_id": "P"}, last.body)

	list, err := c.Notifications(ctx, "t1")
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)

	unread, err := c.UnreadCount(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, 4, unread)
	assert.Equal(t, "GET", last.method)
	assert.Equal(t, "Bearer t1", last.auth)

	require.NoError(t, c.MarkNotificationsRead(ctx, "t1"))
	assert.Equal(t, "/api/notifications/read", last.path)
	assert.Nil(t, last.body)
}

func TestHTTPClientErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/me":
			w.WriteHeader(http.StatusForbidden)
			w.Write([]byte(`{"success":false,"message":"forbidden","status":403}`))
		default:
			http.Error(w, "gateway down", http.StatusBadGateway)
		}
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL)

	_, err := c.Me(context.Background(), "bad")
	require.Error(t, err)
	assert.True(t, IsUnauthorized(err))
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "forbidden", apiErr.Message)

	_, err = c.Votes(context.Background(), "P")
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.Status)
	assert.Equal(t, "gateway down", apiErr.Message)
	assert.False(t, IsUnauthorized(err))
}
