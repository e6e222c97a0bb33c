package client

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"bazaar/internal/client/state"
)

type fakeAPI struct {
	mu sync.Mutex

	users         map[string]state.User // by token
	votes         map[string]map[string]int
	reviews       map[string][]state.Review
	notifications []state.Notification
	subscribed    []string
	votesErr      map[string]error
	voteCalls     int
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		users:    map[string]state.User{},
		votes:    map[string]map[string]int{},
		reviews:  map[string][]state.Review{},
		votesErr: map[string]error{},
	}
}

func (f *fakeAPI) Signup(_ context.Context, username, email, _ string) (*AuthResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u := state.User{ID: int64(len(f.users) + 1), Username: username, Email: email}
	token := "token-" + username
	f.users[token] = u
	return &AuthResult{Token: token, User: u}, nil
}

func (f *fakeAPI) Login(_ context.Context, email, password string) (*AuthResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for token, u := range f.users {
		if u.Email == email && password == "secret" {
			return &AuthResult{Token: token, User: u}, nil
		}
	}
	return nil, &APIError{Status: http.StatusBadRequest, Message: "invalid credentials"}
}

func (f *fakeAPI) Me(_ context.Context, token string) (*state.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[token]
	if !ok {
		return nil, &APIError{Status: http.StatusForbidden, Message: "forbidden"}
	}
	return &u, nil
}

func (f *fakeAPI) Reviews(_ context.Context, placeID string) ([]state.Review, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]state.Review{}, f.reviews[placeID]...), nil
}

func (f *fakeAPI) AddReview(_ context.Context, token, placeID string, rating int, comment string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[token]
	if !ok {
		return &APIError{Status: http.StatusForbidden}
	}
	r := state.Review{ID: int64(len(f.reviews[placeID]) + 1), PlaceID: placeID, UserName: u.Username, Rating: rating, Comment: comment}
	f.reviews[placeID] = append([]state.Review{r}, f.reviews[placeID]...)
	return nil
}

func (f *fakeAPI) Votes(_ context.Context, placeID string) (state.Tally, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.voteCalls++
	if err := f.votesErr[placeID]; err != nil {
		return state.Tally{}, err
	}
	var t state.Tally
	for _, v := range f.votes[placeID] {
		if v == 1 {
			t.Up++
		} else {
			t.Down++
		}
	}
	return t, nil
}

func (f *fakeAPI) SubmitVote(_ context.Context, placeID string, voteType int, fingerprint string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.votes[placeID] == nil {
		f.votes[placeID] = map[string]int{}
	}
	f.votes[placeID][fingerprint] = voteType
	return nil
}

func (f *fakeAPI) Subscribe(_ context.Context, token, placeID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u := f.users[token]
	f.subscribed = append(f.subscribed, placeID)
	f.notifications = append([]state.Notification{{
		ID: int64(len(f.notifications) + 1), UserID: u.ID, Message: "You are now subscribed to updates for " + placeID,
	}}, f.notifications...)
	return nil
}

func (f *fakeAPI) Notifications(_ context.Context, token string) ([]state.Notification, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[token]; !ok {
		return nil, &APIError{Status: http.StatusForbidden}
	}
	return append([]state.Notification{}, f.notifications...), nil
}

func (f *fakeAPI) UnreadCount(_ context.Context, token string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[token]; !ok {
		return 0, &APIError{Status: http.StatusForbidden}
	}
	return state.UnreadCount(f.notifications), nil
}

func (f *fakeAPI) MarkNotificationsRead(_ context.Context, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.notifications = state.MarkAllRead(f.notifications)
	return nil
}

type fakeProvider struct {
	mu      sync.Mutex
	results map[string][]state.Place
	err     error
	queries []string
}

func (p *fakeProvider) Search(_ context.Context, query string, _ *state.Location) ([]state.Place, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.queries = append(p.queries, query)
	if p.err != nil {
		return nil, p.err
	}
	return p.results[query], nil
}

var errBoom = errors.New("boom")
