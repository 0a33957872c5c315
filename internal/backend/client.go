// README: HTTP gateway to the festival data backend (name search + event fetch).
package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// SearchKind selects which lookup endpoint a name search hits.
type SearchKind string

const (
	KindCity  SearchKind = "city"
	KindVenue SearchKind = "venue"
	KindGenre SearchKind = "genre"
)

// EventFilter carries the resolved identifiers (and optional ISO date) for
// an events fetch. Empty fields are left out of the query.
type EventFilter struct {
	City  string
	Genre string
	Venue string
	Date  string
}

// Client talks to the festival data API. Search results are taken
// first-match-wins: a deliberate pickFirst policy, kept as a named strategy
// so a ranked disambiguation can replace it without touching callers.
type Client struct {
	baseURL    string
	httpClient *http.Client
	pick       func(ids []string) string
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
		pick:       pickFirst,
	}
}

func pickFirst(ids []string) string {
	if len(ids) == 0 {
		return ""
	}
	return ids[0]
}

// Search resolves a human-readable name to a backend identifier. A miss (no
// match, or the backend answering with an HTML error page) returns "", nil:
// absence, not failure. Genre search prefers a main-genre record when the
// result list has one.
func (c *Client) Search(ctx context.Context, kind SearchKind, term string) (string, error) {
	var path, param string
	switch kind {
	case KindCity:
		path, param = "/cities", "search"
	case KindVenue:
		path, param = "/venues", "name"
	case KindGenre:
		path, param = "/genres/search", "search"
	default:
		return "", fmt.Errorf("backend: unknown search kind %q", kind)
	}

	raw, err := c.get(ctx, path, url.Values{param: {term}})
	if err != nil || raw == nil {
		return "", err
	}

	if kind == KindGenre {
		var genres []genreRecord
		if err := json.Unmarshal(raw, &genres); err != nil || len(genres) == 0 {
			return "", nil
		}
		ids := make([]string, 0, len(genres))
		for _, g := range genres {
			if bool(g.Main) {
				return g.ID.String(), nil
			}
			ids = append(ids, g.ID.String())
		}
		return c.pick(ids), nil
	}

	// City and venue records share the id-plus-name shape.
	var ids []string
	switch kind {
	case KindCity:
		var cities []cityRecord
		if err := json.Unmarshal(raw, &cities); err != nil {
			return "", nil
		}
		for _, r := range cities {
			ids = append(ids, r.ID.String())
		}
	case KindVenue:
		var venues []venueRecord
		if err := json.Unmarshal(raw, &venues); err != nil {
			return "", nil
		}
		for _, r := range venues {
			ids = append(ids, r.ID.String())
		}
	}
	return c.pick(ids), nil
}

// FetchEvents retrieves the raw candidate list for the given identifiers.
func (c *Client) FetchEvents(ctx context.Context, filter EventFilter) ([]Event, error) {
	params := url.Values{}
	if filter.City != "" {
		params.Set("city", filter.City)
	}
	if filter.Genre != "" {
		params.Set("genre", filter.Genre)
	}
	if filter.Venue != "" {
		params.Set("venue", filter.Venue)
	}
	if filter.Date != "" {
		params.Set("date", filter.Date)
	}

	raw, err := c.get(ctx, "/events", params)
	if err != nil || raw == nil {
		return nil, err
	}

	var events []Event
	if err := json.Unmarshal(raw, &events); err != nil {
		return nil, nil
	}
	return events, nil
}

// get issues one lookup call and unwraps the {data: [...]} envelope. A body
// that is not JSON (the backend serves HTML error pages for absent
// endpoints) yields nil, nil.
func (c *Client) get(ctx context.Context, path string, params url.Values) (json.RawMessage, error) {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("backend: build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("backend: %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("backend: read %s: %w", path, err)
	}

	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" || strings.HasPrefix(trimmed, "<") {
		// HTML error page: endpoint absent, report "no result".
		return nil, nil
	}

	var env envelope
	if err := json.Unmarshal([]byte(trimmed), &env); err != nil {
		return nil, nil
	}
	return env.Data, nil
}
