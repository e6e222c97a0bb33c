package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"bazaar/internal/client/state"

	"github.com/tidwall/gjson"
)

// API is the subset of the directory server the controller talks to.
type API interface {
	Signup(ctx context.Context, username, email, password string) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	Me(ctx context.Context, token string) (*state.User, error)
	Reviews(ctx context.Context, placeID string) ([]state.Review, error)
	AddReview(ctx context.Context, token, placeID string, rating int, comment string) error
	Votes(ctx context.Context, placeID string) (state.Tally, error)
	SubmitVote(ctx context.Context, placeID string, voteType int, fingerprint string) error
	Subscribe(ctx context.Context, token, placeID string) error
	Notifications(ctx context.Context, token string) ([]state.Notification, error)
	UnreadCount(ctx context.Context, token string) (int, error)
	MarkNotificationsRead(ctx context.Context, token string) error
}

type AuthResult struct {
	Token string     `json:"token"`
	User  state.User `json:"user"`
}

// APIError is a non-2xx answer from the server.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error: http=%d %s", e.Status, e.Message)
}

// IsUnauthorized reports whether err is a 401 or 403 from the server.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.Status == http.StatusUnauthorized || apiErr.Status == http.StatusForbidden
}

// HTTPClient calls the directory's JSON API.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *HTTPClient) do(ctx context.Context, method, path, token string, in, out any) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := gjson.GetBytes(raw, "message").String()
		if msg == "" {
			msg = strings.TrimSpace(string(raw))
		}
		return &APIError{Status: resp.StatusCode, Message: msg}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

func (c *HTTPClient) Signup(ctx context.Context, username, email, password string) (*AuthResult, error) {
	var res AuthResult
	in := map[string]string{"username": username, "email": email, "password": password}
	if err := c.do(ctx, http.MethodPost, "/api/auth/signup", "", in, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	var res AuthResult
	in := map[string]string{"email": email, "password": password}
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", "", in, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) Me(ctx context.Context, token string) (*state.User, error) {
	var u state.User
	if err := c.do(ctx, http.MethodGet, "/api/auth/me", token, nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *HTTPClient) Reviews(ctx context.Context, placeID string) ([]state.Review, error) {
	list := []state.Review{}
	if err := c.do(ctx, http.MethodGet, "/api/reviews/"+url.PathEscape(placeID), "", nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *HTTPClient) AddReview(ctx context.Context, token, placeID string, rating int, comment string) error {
	in := map[string]any{"place_id": placeID, "rating": rating, "comment": comment}
	return c.do(ctx, http.MethodPost, "/api/reviews", token, in, nil)
}

func (c *HTTPClient) Votes(ctx context.Context, placeID string) (state.Tally, error) {
	var t state.Tally
	err := c.do(ctx, http.MethodGet, "/api/votes/"+url.PathEscape(placeID), "", nil, &t)
	return t, err
}

func (c *HTTPClient) SubmitVote(ctx context.Context, placeID string, voteType int, fingerprint string) error {
	in := map[string]any{"place_id": placeID, "vote_type": voteType, "user_fingerprint": fingerprint}
	return c.do(ctx, http.MethodPost, "/api/votes", "", in, nil)
}

func (c *HTTPClient) Subscribe(ctx context.Context, token, placeID string) error {
	return c.do(ctx, http.MethodPost, "/api/subscribe", token, map[string]string{"place_id": placeID}, nil)
}

func (c *HTTPClient) Notifications(ctx context.Context, token string) ([]state.Notification, error) {
	list := []state.Notification{}
	if err := c.do(ctx, http.MethodGet, "/api/notifications", token, nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *HTTPClient) UnreadCount(ctx context.Context, token string) (int, error) {
	var out struct {
		Unread int `json:"unread"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/notifications/unread", token, nil, &out); err != nil {
		return 0, err
	}
	return out.Unread, nil
}

func (c *HTTPClient) MarkNotificationsRead(ctx context.Context, token string) error {
	return c.do(ctx, http.MethodPost, "/api/notifications/read", token, nil, nil)
}
