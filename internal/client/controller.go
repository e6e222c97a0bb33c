// Package client drives the directory from the user's side: it holds the session, keeps the
// state container current and persists preferences between runs.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"bazaar/internal/client/search"
	"bazaar/internal/client/state"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var (
	ErrNoLocation   = errors.New("location is required to search nearby places")
	ErrAuthRequired = errors.New("sign in to continue")
	ErrNoPlace      = errors.New("no place is open")
)

// voteFetchLimit bounds concurrent tally requests.
const voteFetchLimit = 8

type Controller struct {
	api         API
	places      search.Provider
	store       Storage
	logger      *zap.SugaredLogger
	fingerprint string

	mu sync.RWMutex
	st state.State
}

// New seeds the official bazaars and restores preferences from store. It does no network I/O;
// call Init for that.
func New(ctx context.Context, api API, places search.Provider, store Storage, logger *zap.SugaredLogger) (*Controller, error) {
	c := &Controller{
		api:    api,
		places: places,
		store:  store,
		logger: logger,
		st:     state.New(),
	}
	c.st.Places.Bazaars = OfficialBazaars()

	if raw, ok, err := store.Get(ctx, keyFavorites); err != nil {
		return nil, fmt.Errorf("load favorites: %w", err)
	} else if ok {
		var favs []string
		if err := json.Unmarshal([]byte(raw), &favs); err != nil {
			logger.Warnw("discarding unreadable favorites", "error", err)
		} else if favs != nil {
			c.st.Favorites = favs
		}
	}

	theme, _, err := store.Get(ctx, keyTheme)
	if err != nil {
		return nil, fmt.Errorf("load theme: %w", err)
	}
	c.st.UI.DarkMode = theme == "dark"

	tab, _, err := store.Get(ctx, keyTab)
	if err != nil {
		return nil, fmt.Errorf("load tab: %w", err)
	}
	if state.Tab(tab) == state.TabFavorites {
		c.st.UI.Tab = state.TabFavorites
	}

	token, _, err := store.Get(ctx, keyToken)
	if err != nil {
		return nil, fmt.Errorf("load token: %w", err)
	}
	c.st.Auth.Token = token

	fp, ok, err := store.Get(ctx, keyFingerprint)
	if err != nil {
		return nil, fmt.Errorf("load fingerprint: %w", err)
	}
	if !ok || fp == "" {
		fp = uuid.NewString()
		if err := store.Set(ctx, keyFingerprint, fp); err != nil {
			return nil, fmt.Errorf("save fingerprint: %w", err)
		}
	}
	c.fingerprint = fp

	return c, nil
}

// Snapshot returns a copy of the current state.
func (c *Controller) Snapshot() state.State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.st.Clone()
}

func (c *Controller) Fingerprint() string {
	return c.fingerprint
}

// VisibleBazaars applies the active tab to the bazaar list.
func (c *Controller) VisibleBazaars() []state.Place {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return state.FilteredBazaars(c.st.Places.Bazaars, c.st.Favorites, c.st.UI.Tab)
}

// Init loads tallies for the seeded bazaars and restores a saved session.
func (c *Controller) Init(ctx context.Context) error {
	c.mu.RLock()
	missing := state.MissingVotes(c.st.Places.Bazaars, c.st.Votes)
	c.mu.RUnlock()

	voteErr := c.fetchVotes(ctx, missing)
	if voteErr != nil {
		c.logger.Warnw("loading vote tallies", "error", voteErr)
	}

	c.restoreSession(ctx)
	return voteErr
}

func (c *Controller) restoreSession(ctx context.Context) {
	c.mu.RLock()
	token := c.st.Auth.Token
	c.mu.RUnlock()
	if token == "" {
		return
	}

	user, err := c.api.Me(ctx, token)
	if err != nil {
		c.logger.Infow("saved session not restored", "error", err)
		if IsUnauthorized(err) {
			c.dropToken(ctx)
		}
		return
	}

	c.mu.Lock()
	c.st.Auth.User = user
	c.mu.Unlock()

	if err := c.RefreshNotifications(ctx); err != nil {
		c.logger.Warnw("loading notifications", "error", err)
	}
}

// fetchVotes requests every tally concurrently and applies the ones that arrived once all
// requests are done.
func (c *Controller) fetchVotes(ctx context.Context, names []string) error {
	if len(names) == 0 {
		return nil
	}

	tallies := make([]state.Tally, len(names))
	errs := make([]error, len(names))

	var g errgroup.Group
	g.SetLimit(voteFetchLimit)
	for i, name := range names {
		g.Go(func() error {
			tallies[i], errs[i] = c.api.Votes(ctx, name)
			return nil
		})
	}
	_ = g.Wait()

	c.mu.Lock()
	for i, name := range names {
		if errs[i] == nil {
			c.st.Votes = state.SetVotes(c.st.Votes, name, tallies[i])
		}
	}
	c.mu.Unlock()

	return errors.Join(errs...)
}

func (c *Controller) SetLocation(loc state.Location) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.st.UI.Location = &loc
}

func (c *Controller) setLoading(loading bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.st.UI.Loading = loading
}

func (c *Controller) fail(op string, err error) error {
	c.mu.Lock()
	c.st.UI.LastError = err.Error()
	c.mu.Unlock()
	c.logger.Errorw(op+" failed", "error", err)
	return err
}

// Search runs the three category searches around the current location. Bazaars are merged into
// the existing list by name; mosques and transports are replaced.
func (c *Controller) Search(ctx context.Context) error {
	c.mu.RLock()
	loc := c.st.UI.Location
	c.mu.RUnlock()
	if loc == nil {
		return ErrNoLocation
	}

	c.setLoading(true)
	defer c.setLoading(false)

	var bazaars, mosques, transports []state.Place
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		bazaars, err = c.places.Search(gctx, search.QueryBazaars, loc)
		return err
	})
	g.Go(func() (err error) {
		mosques, err = c.places.Search(gctx, search.QueryMosques, loc)
		return err
	})
	g.Go(func() (err error) {
		transports, err = c.places.Search(gctx, search.QueryTransports, loc)
		return err
	})
	if err := g.Wait(); err != nil {
		return c.fail("search", err)
	}

	c.mu.Lock()
	c.st.Places.Bazaars = state.MergeByName(c.st.Places.Bazaars, bazaars)
	c.st.Places.Mosques = mosques
	c.st.Places.Transports = transports
	c.st.UI.LastError = ""
	missing := state.MissingVotes(c.st.Places.Bazaars, c.st.Votes)
	c.mu.Unlock()

	if err := c.fetchVotes(ctx, missing); err != nil {
		c.logger.Warnw("loading vote tallies", "error", err)
	}
	return nil
}

// OpenPlace shows a place's reviews and looks up transport close to it.
func (c *Controller) OpenPlace(ctx context.Context, place state.Place) error {
	c.mu.Lock()
	c.st.Detail = state.Detail{Place: &place, Reviews: []state.Review{}}
	loc := c.st.UI.Location
	c.mu.Unlock()

	c.setLoading(true)
	defer c.setLoading(false)

	near := place.Address
	if near == "" {
		near = place.Name
	}

	var reviews []state.Review
	var transports []state.Place
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		reviews, err = c.api.Reviews(gctx, place.Name)
		return err
	})
	g.Go(func() (err error) {
		transports, err = c.places.Search(gctx, search.TransportNear(near), loc)
		return err
	})
	if err := g.Wait(); err != nil {
		return c.fail("open place", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.st.Detail.Place == nil || c.st.Detail.Place.Name != place.Name {
		// another place was opened meanwhile
		return nil
	}
	c.st.Detail.Reviews = reviews
	if len(transports) > 0 {
		c.st.Places.Transports = transports
	}
	c.st.UI.LastError = ""
	return nil
}

// Vote submits the vote and then re-reads the server tally; the local count is never guessed.
func (c *Controller) Vote(ctx context.Context, placeName string, voteType int) error {
	if err := c.api.SubmitVote(ctx, placeName, voteType, c.fingerprint); err != nil {
		return c.fail("vote", err)
	}

	tally, err := c.api.Votes(ctx, placeName)
	if err != nil {
		return c.fail("vote", err)
	}

	c.mu.Lock()
	c.st.Votes = state.SetVotes(c.st.Votes, placeName, tally)
	c.mu.Unlock()
	return nil
}

func (c *Controller) ToggleFavorite(ctx context.Context, placeName string) error {
	c.mu.Lock()
	c.st.Favorites = state.ToggleFavorite(c.st.Favorites, placeName)
	favs := c.st.Favorites
	c.mu.Unlock()

	raw, err := json.Marshal(favs)
	if err != nil {
		return err
	}
	return c.store.Set(ctx, keyFavorites, string(raw))
}

func (c *Controller) SetTab(ctx context.Context, tab state.Tab) error {
	if tab != state.TabAll && tab != state.TabFavorites {
		return fmt.Errorf("unknown tab %q", tab)
	}
	c.mu.Lock()
	c.st.UI.Tab = tab
	c.mu.Unlock()
	return c.store.Set(ctx, keyTab, string(tab))
}

func (c *Controller) ToggleTheme(ctx context.Context) error {
	c.mu.Lock()
	c.st.UI.DarkMode = !c.st.UI.DarkMode
	dark := c.st.UI.DarkMode
	c.mu.Unlock()

	theme := "light"
	if dark {
		theme = "dark"
	}
	return c.store.Set(ctx, keyTheme, theme)
}

func (c *Controller) Login(ctx context.Context, email, password string) error {
	res, err := c.api.Login(ctx, email, password)
	if err != nil {
		return c.fail("login", err)
	}
	return c.startSession(ctx, res)
}

func (c *Controller) Signup(ctx context.Context, username, email, password string) error {
	res, err := c.api.Signup(ctx, username, email, password)
	if err != nil {
		return c.fail("signup", err)
	}
	return c.startSession(ctx, res)
}

func (c *Controller) startSession(ctx context.Context, res *AuthResult) error {
	if err := c.store.Set(ctx, keyToken, res.Token); err != nil {
		return err
	}

	user := res.User
	c.mu.Lock()
	c.st.Auth = state.Auth{User: &user, Token: res.Token}
	c.st.UI.ShowAuth = false
	c.st.UI.LastError = ""
	c.mu.Unlock()

	if err := c.RefreshNotifications(ctx); err != nil {
		c.logger.Warnw("loading notifications", "error", err)
	}
	return nil
}

// Logout forgets the session locally. Tokens are not revoked server-side.
func (c *Controller) Logout(ctx context.Context) error {
	c.mu.Lock()
	c.st.Auth = state.Auth{}
	c.st.Inbox = []state.Notification{}
	c.mu.Unlock()
	return c.store.Delete(ctx, keyToken)
}

func (c *Controller) dropToken(ctx context.Context) {
	c.mu.Lock()
	c.st.Auth = state.Auth{}
	c.mu.Unlock()
	if err := c.store.Delete(ctx, keyToken); err != nil {
		c.logger.Warnw("removing stale token", "error", err)
	}
}

// session returns the token, or flags the auth prompt when nobody is signed in.
func (c *Controller) session() (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.st.Auth.User == nil || c.st.Auth.Token == "" {
		c.st.UI.ShowAuth = true
		return "", ErrAuthRequired
	}
	return c.st.Auth.Token, nil
}

func (c *Controller) openPlace() (*state.Place, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.st.Detail.Place == nil {
		return nil, ErrNoPlace
	}
	p := *c.st.Detail.Place
	return &p, nil
}

// Subscribe follows the open place. The inbox is reloaded so the welcome message shows up.
func (c *Controller) Subscribe(ctx context.Context) error {
	token, err := c.session()
	if err != nil {
		return err
	}
	place, err := c.openPlace()
	if err != nil {
		return err
	}

	if err := c.api.Subscribe(ctx, token, place.Name); err != nil {
		return c.fail("subscribe", err)
	}
	c.logger.Infow("subscribed", "place", place.Name)

	if err := c.RefreshNotifications(ctx); err != nil {
		c.logger.Warnw("loading notifications", "error", err)
	}
	return nil
}

func (c *Controller) RefreshNotifications(ctx context.Context) error {
	c.mu.RLock()
	token := c.st.Auth.Token
	c.mu.RUnlock()
	if token == "" {
		return ErrAuthRequired
	}

	list, err := c.api.Notifications(ctx, token)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.st.Inbox = list
	c.mu.Unlock()
	return nil
}

// Unread asks the server for the caller's unread badge count.
func (c *Controller) Unread(ctx context.Context) (int, error) {
	token, err := c.session()
	if err != nil {
		return 0, err
	}

	n, err := c.api.UnreadCount(ctx, token)
	if err != nil {
		return 0, c.fail("unread count", err)
	}
	return n, nil
}

func (c *Controller) MarkRead(ctx context.Context) error {
	token, err := c.session()
	if err != nil {
		return err
	}

	if err := c.api.MarkNotificationsRead(ctx, token); err != nil {
		return c.fail("mark read", err)
	}

	c.mu.Lock()
	c.st.Inbox = state.MarkAllRead(c.st.Inbox)
	c.mu.Unlock()
	return nil
}

// SubmitReview posts a review for the open place and reloads its reviews.
func (c *Controller) SubmitReview(ctx context.Context, rating int, comment string) error {
	place, err := c.openPlace()
	if err != nil {
		return err
	}
	token, err := c.session()
	if err != nil {
		return err
	}

	if err := c.api.AddReview(ctx, token, place.Name, rating, comment); err != nil {
		return c.fail("submit review", err)
	}

	reviews, err := c.api.Reviews(ctx, place.Name)
	if err != nil {
		return c.fail("submit review", err)
	}

	c.mu.Lock()
	if c.st.Detail.Place != nil && c.st.Detail.Place.Name == place.Name {
		c.st.Detail.Reviews = reviews
	}
	c.mu.Unlock()
	return nil
}
