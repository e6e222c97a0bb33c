// Package state holds the client's view of the directory as plain data. Every update is a
// pure function that returns new values; the controller owns the single mutable copy.
package state

import "slices"

type Auth struct {
	User  *User
	Token string
}

type Places struct {
	Bazaars    []Place
	Mosques    []Place
	Transports []Place
}

type Detail struct {
	Place   *Place
	Reviews []Review
}

type UI struct {
	Loading   bool
	Tab       Tab
	DarkMode  bool
	ShowAuth  bool
	Location  *Location
	LastError string
}

type State struct {
	Auth      Auth
	Places    Places
	Votes     map[string]Tally
	Favorites []string
	Inbox     []Notification
	Detail    Detail
	UI        UI
}

func New() State {
	return State{
		Votes:     map[string]Tally{},
		Favorites: []string{},
		Inbox:     []Notification{},
		UI:        UI{Tab: TabAll},
	}
}

// Clone returns a copy that shares no slices or maps with s.
func (s State) Clone() State {
	c := s
	if s.Auth.User != nil {
		u := *s.Auth.User
		c.Auth.User = &u
	}
	c.Places = Places{
		Bazaars:    slices.Clone(s.Places.Bazaars),
		Mosques:    slices.Clone(s.Places.Mosques),
		Transports: slices.Clone(s.Places.Transports),
	}
	c.Votes = make(map[string]Tally, len(s.Votes))
	for k, v := range s.Votes {
		c.Votes[k] = v
	}
	c.Favorites = slices.Clone(s.Favorites)
	c.Inbox = slices.Clone(s.Inbox)
	if s.Detail.Place != nil {
		p := *s.Detail.Place
		c.Detail.Place = &p
	}
	c.Detail.Reviews = slices.Clone(s.Detail.Reviews)
	if s.UI.Location != nil {
		l := *s.UI.Location
		c.UI.Location = &l
	}
	return c
}

// MergeByName appends results whose name is not already present. Existing entries keep their
// position and win over a result with the same name.
func MergeByName(existing, results []Place) []Place {
	merged := slices.Clone(existing)
	seen := make(map[string]struct{}, len(existing)+len(results))
	for _, p := range existing {
		seen[p.Name] = struct{}{}
	}
	for _, p := range results {
		if _, ok := seen[p.Name]; ok {
			continue
		}
		seen[p.Name] = struct{}{}
		merged = append(merged, p)
	}
	return merged
}

func ToggleFavorite(favorites []string, name string) []string {
	if slices.Contains(favorites, name) {
		return slices.DeleteFunc(slices.Clone(favorites), func(f string) bool { return f == name })
	}
	return append(slices.Clone(favorites), name)
}

func SetVotes(votes map[string]Tally, name string, t Tally) map[string]Tally {
	next := make(map[string]Tally, len(votes)+1)
	for k, v := range votes {
		next[k] = v
	}
	next[name] = t
	return next
}

func MarkAllRead(inbox []Notification) []Notification {
	next := slices.Clone(inbox)
	for i := range next {
		next[i].IsRead = true
	}
	return next
}

func UnreadCount(inbox []Notification) int {
	n := 0
	for _, item := range inbox {
		if !item.IsRead {
			n++
		}
	}
	return n
}

// FilteredBazaars is the list shown for the active tab.
func FilteredBazaars(bazaars []Place, favorites []string, tab Tab) []Place {
	if tab != TabFavorites {
		return bazaars
	}
	out := make([]Place, 0, len(favorites))
	for _, b := range bazaars {
		if slices.Contains(favorites, b.Name) {
			out = append(out, b)
		}
	}
	return out
}

// MissingVotes lists, in order and without repeats, the names that have no tally yet.
func MissingVotes(places []Place, votes map[string]Tally) []string {
	var names []string
	for _, p := range places {
		if _, ok := votes[p.Name]; ok || slices.Contains(names, p.Name) {
			continue
		}
		names = append(names, p.Name)
	}
	return names
}
