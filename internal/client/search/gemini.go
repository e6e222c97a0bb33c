package search

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"bazaar/internal/client/state"

	"github.com/tidwall/gjson"
)

var ErrMissingAPIKey = errors.New("places API key is not configured")

// GeminiProvider asks a Gemini model, grounded with Google Maps, for places near a location.
type GeminiProvider struct {
	apiKey     string
	model      string
	endpoint   string
	httpClient *http.Client
}

func NewGeminiProvider(apiKey, model, endpoint string) (*GeminiProvider, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, ErrMissingAPIKey
	}
	return &GeminiProvider{
		apiKey:     apiKey,
		model:      model,
		endpoint:   strings.TrimRight(endpoint, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}, nil
}

func (g *GeminiProvider) generateURL() string {
	return fmt.Sprintf("%s/models/%s:generateContent", g.endpoint, g.model)
}

func (g *GeminiProvider) Search(ctx context.Context, query string, loc *state.Location) ([]state.Place, error) {
	retrieval := map[string]any{}
	if loc != nil {
		retrieval["latLng"] = map[string]float64{
			"latitude":  loc.Lat,
			"longitude": loc.Lng,
		}
	}

	payload := map[string]any{
		"contents": []map[string]any{{
			"parts": []map[string]string{{
				"text": fmt.Sprintf("Find %s near this location. Return the results as a list of places with their names and addresses.", query),
			}},
		}},
		"tools": []map[string]any{{"googleMaps": map[string]any{}}},
		"toolConfig": map[string]any{
			"retrievalConfig": retrieval,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("gemini marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.generateURL(), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("gemini create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", g.apiKey)

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("gemini request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("gemini read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gemini search failed: http=%d body=%s", resp.StatusCode, string(raw))
	}

	return ParseGroundingChunks(raw, query)
}

// ParseGroundingChunks turns the Maps grounding chunks of the first candidate into places.
// Chunks without a maps URI are skipped and do not consume an index.
func ParseGroundingChunks(raw []byte, query string) ([]state.Place, error) {
	if !gjson.ValidBytes(raw) {
		return nil, errors.New("gemini response is not valid JSON")
	}

	chunks := gjson.GetBytes(raw, "candidates.0.groundingMetadata.groundingChunks")
	kind := TypeFor(query)

	places := []state.Place{}
	chunks.ForEach(func(_, chunk gjson.Result) bool {
		uri := chunk.Get("maps.uri").String()
		if uri == "" {
			return true
		}
		name := chunk.Get("maps.title").String()
		if name == "" {
			name = "Unknown Place"
		}
		places = append(places, state.Place{
			ID:      PlaceID(name, len(places)),
			Name:    name,
			MapsURI: uri,
			Type:    kind,
		})
		return true
	})
	return places, nil
}
