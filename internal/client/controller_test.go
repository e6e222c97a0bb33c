package client

import (
	"context"
	"testing"

	"bazaar/internal/client/search"
	"bazaar/internal/client/state"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestController(t *testing.T, api *fakeAPI, provider *fakeProvider, store Storage) *Controller {
	t.Helper()
	if store == nil {
		store = NewMemoryStorage()
	}
	c, err := New(context.Background(), api, provider, store, zap.NewNop().Sugar())
	require.NoError(t, err)
	return c
}

func TestNewSeedsOfficialBazaars(t *testing.T) {
	c := newTestController(t, newFakeAPI(), &fakeProvider{}, nil)
	st := c.Snapshot()

	require.Len(t, st.Places.Bazaars, 8)
	first := st.Places.Bazaars[0]
	assert.Equal(t, "official-0", first.ID)
	assert.Equal(t, "Bazaar Ramadhan Bandar Seri Putra", first.Name)
	assert.Equal(t, "MPKj", first.Council)
	assert.Equal(t, "https://www.google.com/maps/search/?api=1&query=Jalan%20Seri%20Putra%201%2F3%20Bandar%20Seri%20Putra", first.MapsURI)
	assert.Equal(t, state.TabAll, st.UI.Tab)
	assert.False(t, st.UI.DarkMode)
	assert.NotEmpty(t, c.Fingerprint())
}

func TestFingerprintIsPersisted(t *testing.T) {
	store := NewMemoryStorage()
	a := newTestController(t, newFakeAPI(), &fakeProvider{}, store)
	b := newTestController(t, newFakeAPI(), &fakeProvider{}, store)
	assert.Equal(t, a.Fingerprint(), b.Fingerprint())
}

func TestInitLoadsVotesAndRestoresSession(t *testing.T) {
	ctx := context.Background()
	api := newFakeAPI()
	res, err := api.Signup(ctx, "amin", "amin@example.com", "secret")
	require.NoError(t, err)
	require.NoError(t, api.SubmitVote(ctx, "Bazaar Ramadhan TTDI", 1, "someone"))

	store := NewMemoryStorage()
	require.NoError(t, store.Set(ctx, keyToken, res.Token))

	c := newTestController(t, api, &fakeProvider{}, store)
	require.NoError(t, c.Init(ctx))

	st := c.Snapshot()
	assert.Len(t, st.Votes, 8)
	assert.Equal(t, state.Tally{Up: 1}, st.Votes["Bazaar Ramadhan TTDI"])
	require.NotNil(t, st.Auth.User)
	assert.Equal(t, "amin", st.Auth.User.Username)
	assert.NotNil(t, st.Inbox)
}

func TestInitDropsRejectedToken(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStorage()
	require.NoError(t, store.Set(ctx, keyToken, "expired"))

	c := newTestController(t, newFakeAPI(), &fakeProvider{}, store)
	require.NoError(t, c.Init(ctx))

	assert.Nil(t, c.Snapshot().Auth.User)
	_, ok, _ := store.Get(ctx, keyToken)
	assert.False(t, ok)
}

func TestInitKeepsSuccessfulTallies(t *testing.T) {
	api := newFakeAPI()
	api.votesErr["Bazaar Ramadhan TTDI"] = errBoom

	c := newTestController(t, api, &fakeProvider{}, nil)
	err := c.Init(context.Background())
	assert.ErrorIs(t, err, errBoom)

	st := c.Snapshot()
	assert.Len(t, st.Votes, 7)
	assert.NotContains(t, st.Votes, "Bazaar Ramadhan TTDI")
}

func TestSearchRequiresLocation(t *testing.T) {
	provider := &fakeProvider{}
	c := newTestController(t, newFakeAPI(), provider, nil)

	assert.ErrorIs(t, c.Search(context.Background()), ErrNoLocation)
	assert.Empty(t, provider.queries)
}

func TestSearchMergesBazaarsAndReplacesOthers(t *testing.T) {
	api := newFakeAPI()
	provider := &fakeProvider{results: map[string][]state.Place{
		search.QueryBazaars: {
			{ID: "place-bazaar-ramadhan-ttdi-0", Name: "Bazaar Ramadhan TTDI", Type: state.TypeBazaar},
			{ID: "place-bazaar-ramadhan-bangsar-1", Name: "Bazaar Ramadhan Bangsar", Type: state.TypeBazaar},
		},
		search.QueryMosques:    {{ID: "place-masjid-jamek-0", Name: "Masjid Jamek", Type: state.TypeMosque}},
		search.QueryTransports: {{ID: "place-kl-sentral-0", Name: "KL Sentral", Type: state.TypeTransport}},
	}}

	c := newTestController(t, api, provider, nil)
	require.NoError(t, c.Init(context.Background()))
	callsAfterInit := api.voteCalls

	c.SetLocation(state.Location{Lat: 3.13, Lng: 101.68})
	require.NoError(t, c.Search(context.Background()))

	st := c.Snapshot()
	require.Len(t, st.Places.Bazaars, 9)
	assert.Equal(t, "official-2", st.Places.Bazaars[2].ID, "official entry kept")
	assert.Equal(t, "Bazaar Ramadhan Bangsar", st.Places.Bazaars[8].Name)
	assert.Equal(t, "Masjid Jamek", st.Places.Mosques[0].Name)
	assert.Equal(t, "KL Sentral", st.Places.Transports[0].Name)
	assert.Contains(t, st.Votes, "Bazaar Ramadhan Bangsar")
	assert.Equal(t, 1, api.voteCalls-callsAfterInit, "only the new bazaar is fetched")
	assert.False(t, st.UI.Loading)
	assert.ElementsMatch(t, []string{search.QueryBazaars, search.QueryMosques, search.QueryTransports}, provider.queries)
}

func TestSearchFailureIsRecorded(t *testing.T) {
	provider := &fakeProvider{err: errBoom}
	c := newTestController(t, newFakeAPI(), provider, nil)
	c.SetLocation(state.Location{Lat: 1, Lng: 1})

	err := c.Search(context.Background())
	assert.ErrorIs(t, err, errBoom)

	st := c.Snapshot()
	assert.Equal(t, "boom", st.UI.LastError)
	assert.False(t, st.UI.Loading)
	assert.Len(t, st.Places.Bazaars, 8)
}

func TestOpenPlace(t *testing.T) {
	ctx := context.Background()
	api := newFakeAPI()
	api.reviews["Bazaar Ramadhan TTDI"] = []state.Review{{ID: 1, Comment: "Sedap"}}
	provider := &fakeProvider{results: map[string][]state.Place{
		search.TransportNear("Jalan Tun Mohd Fuad 2"): {{Name: "MRT TTDI", Type: state.TypeTransport}},
	}}

	c := newTestController(t, api, provider, nil)
	place := c.Snapshot().Places.Bazaars[2]
	require.NoError(t, c.OpenPlace(ctx, place))

	st := c.Snapshot()
	require.NotNil(t, st.Detail.Place)
	assert.Equal(t, place.Name, st.Detail.Place.Name)
	assert.Len(t, st.Detail.Reviews, 1)
	assert.Equal(t, "MRT TTDI", st.Places.Transports[0].Name)
}

func TestOpenPlaceKeepsTransportsWhenNoneFound(t *testing.T) {
	ctx := context.Background()
	provider := &fakeProvider{results: map[string][]state.Place{
		search.QueryTransports: {{Name: "KL Sentral"}},
	}}
	c := newTestController(t, newFakeAPI(), provider, nil)
	c.SetLocation(state.Location{Lat: 1, Lng: 1})
	require.NoError(t, c.Search(ctx))

	require.NoError(t, c.OpenPlace(ctx, state.Place{Name: "Somewhere"}))

	st := c.Snapshot()
	assert.Equal(t, "KL Sentral", st.Places.Transports[0].Name)
	assert.Contains(t, provider.queries, search.TransportNear("Somewhere"))
	assert.NotNil(t, st.Detail.Reviews)
}

func TestVoteRefetchesTally(t *testing.T) {
	ctx := context.Background()
	api := newFakeAPI()
	c := newTestController(t, api, &fakeProvider{}, nil)

	require.NoError(t, c.Vote(ctx, "Bazaar Ramadhan USJ 4", 1))
	assert.Equal(t, state.Tally{Up: 1}, c.Snapshot().Votes["Bazaar Ramadhan USJ 4"])

	require.NoError(t, c.Vote(ctx, "Bazaar Ramadhan USJ 4", -1))
	assert.Equal(t, state.Tally{Down: 1}, c.Snapshot().Votes["Bazaar Ramadhan USJ 4"])
	assert.Equal(t, -1, api.votes["Bazaar Ramadhan USJ 4"][c.Fingerprint()])
}

func TestPreferencesPersist(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStorage()
	c := newTestController(t, newFakeAPI(), &fakeProvider{}, store)

	require.NoError(t, c.ToggleFavorite(ctx, "Bazaar Ramadhan TTDI"))
	require.NoError(t, c.ToggleFavorite(ctx, "Bazaar Ramadhan Semenyih"))
	require.NoError(t, c.ToggleTheme(ctx))
	require.NoError(t, c.SetTab(ctx, state.TabFavorites))
	assert.Error(t, c.SetTab(ctx, "recent"))

	visible := c.VisibleBazaars()
	require.Len(t, visible, 2)
	assert.Equal(t, "Bazaar Ramadhan Semenyih", visible[0].Name)

	reloaded := newTestController(t, newFakeAPI(), &fakeProvider{}, store)
	st := reloaded.Snapshot()
	assert.Equal(t, []string{"Bazaar Ramadhan TTDI", "Bazaar Ramadhan Semenyih"}, st.Favorites)
	assert.True(t, st.UI.DarkMode)
	assert.Equal(t, state.TabFavorites, st.UI.Tab)
}

func TestActionsRequireAuth(t *testing.T) {
	ctx := context.Background()
	api := newFakeAPI()
	c := newTestController(t, api, &fakeProvider{}, nil)
	require.NoError(t, c.OpenPlace(ctx, state.Place{Name: "Bazaar Ramadhan TTDI"}))

	assert.ErrorIs(t, c.Subscribe(ctx), ErrAuthRequired)
	assert.True(t, c.Snapshot().UI.ShowAuth)

	assert.ErrorIs(t, c.SubmitReview(ctx, 5, "nice"), ErrAuthRequired)
	assert.ErrorIs(t, c.MarkRead(ctx), ErrAuthRequired)
	_, err := c.Unread(ctx)
	assert.ErrorIs(t, err, ErrAuthRequired)
	assert.Empty(t, api.subscribed)
}

func TestSessionFlow(t *testing.T) {
	ctx := context.Background()
	api := newFakeAPI()
	store := NewMemoryStorage()
	c := newTestController(t, api, &fakeProvider{}, store)

	require.NoError(t, c.Signup(ctx, "nur", "nur@example.com", "secret"))
	st := c.Snapshot()
	require.NotNil(t, st.Auth.User)
	assert.Equal(t, "nur", st.Auth.User.Username)
	assert.False(t, st.UI.ShowAuth)
	token, ok, _ := store.Get(ctx, keyToken)
	assert.True(t, ok)
	assert.Equal(t, "token-nur", token)

	assert.ErrorIs(t, c.Subscribe(ctx), ErrNoPlace)

	require.NoError(t, c.OpenPlace(ctx, state.Place{Name: "Bazaar Ramadhan TTDI"}))
	require.NoError(t, c.Subscribe(ctx))
	assert.Equal(t, []string{"Bazaar Ramadhan TTDI"}, api.subscribed)
	assert.Equal(t, 1, state.UnreadCount(c.Snapshot().Inbox))
	unread, err := c.Unread(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, unread)

	require.NoError(t, c.MarkRead(ctx))
	assert.Equal(t, 0, state.UnreadCount(c.Snapshot().Inbox))
	unread, err = c.Unread(ctx)
	require.NoError(t, err)
	assert.Zero(t, unread)

	require.NoError(t, c.SubmitReview(ctx, 5, "Best murtabak"))
	reviews := c.Snapshot().Detail.Reviews
	require.Len(t, reviews, 1)
	assert.Equal(t, "nur", reviews[0].UserName)

	require.NoError(t, c.Logout(ctx))
	assert.Nil(t, c.Snapshot().Auth.User)
	_, ok, _ = store.Get(ctx, keyToken)
	assert.False(t, ok)

	require.NoError(t, c.Login(ctx, "nur@example.com", "secret"))
	assert.NotNil(t, c.Snapshot().Auth.User)

	err = c.Login(ctx, "nur@example.com", "wrong")
	assert.Error(t, err)
	assert.Equal(t, "api error: http=400 invalid credentials", c.Snapshot().UI.LastError)
}
