package search

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"bazaar/internal/client/state"
)

// Provider finds places of interest around a location. loc may be nil.
type Provider interface {
	Search(ctx context.Context, query string, loc *state.Location) ([]state.Place, error)
}

// Category queries used by the directory.
const (
	QueryBazaars    = "Bazaar Ramadhan"
	QueryMosques    = "Mosque"
	QueryTransports = "Public Transport Station"
)

// TransportNear is the query used to find transit close to a single place.
func TransportNear(addressOrName string) string {
	return "Public transport near " + addressOrName
}

// TypeFor classifies results by the words in the query that produced them.
func TypeFor(query string) state.PlaceType {
	q := strings.ToLower(query)
	switch {
	case strings.Contains(q, "bazaar"):
		return state.TypeBazaar
	case strings.Contains(q, "mosque"):
		return state.TypeMosque
	default:
		return state.TypeTransport
	}
}

var whitespace = regexp.MustCompile(`\s+`)

// PlaceID builds the id given to a search result at position index.
func PlaceID(name string, index int) string {
	return "place-" + strings.ToLower(whitespace.ReplaceAllString(name, "-")) + "-" + strconv.Itoa(index)
}
