package backend

import (
	"context"
	"fmt"
)

// Tool describes one function-calling tool backed by the gateway. The
// catalog is advertised to the model and introspected by the /tools
// debug endpoint.
type Tool struct {
	Name        string
	Description string
	// Parameters maps parameter name to its description. All parameters
	// are plain strings.
	Parameters map[string]string
	Required   []string
}

// ToolResult is one executed tool call: the payload handed back to the
// model plus any events parsed out of it.
type ToolResult struct {
	Payload map[string]any
	Events  []Event
}

const (
	ToolSearchCities = "search_cities"
	ToolSearchVenues = "search_venues"
	ToolSearchGenres = "search_genres"
	ToolSearchEvents = "search_events"
)

// Tools returns the catalog the gateway can execute.
func (c *Client) Tools() []Tool {
	return []Tool{
		{
			Name:        ToolSearchCities,
			Description: "Zoek een Nederlandse stad op naam en geef het stad-id terug.",
			Parameters:  map[string]string{"search": "Naam van de stad, bijvoorbeeld Amsterdam"},
			Required:    []string{"search"},
		},
		{
			Name:        ToolSearchVenues,
			Description: "Zoek een podium of zaal op naam en geef het podium-id terug.",
			Parameters:  map[string]string{"name": "Naam van het podium, bijvoorbeeld Paradiso"},
			Required:    []string{"name"},
		},
		{
			Name:        ToolSearchGenres,
			Description: "Zoek een muziekgenre op naam en geef het genre-id terug.",
			Parameters:  map[string]string{"search": "Genre, bijvoorbeeld rock of techno"},
			Required:    []string{"search"},
		},
		{
			Name:        ToolSearchEvents,
			Description: "Haal events op voor een combinatie van stad-id, genre-id, podium-id en datum (YYYY-MM-DD). Alle parameters zijn optioneel maar geef er minstens een.",
			Parameters: map[string]string{
				"city":  "Stad-id uit search_cities",
				"genre": "Genre-id uit search_genres",
				"venue": "Podium-id uit search_venues",
				"date":  "ISO datum YYYY-MM-DD",
			},
		},
	}
}

// Call executes one tool invocation issued by the model.
func (c *Client) Call(ctx context.Context, name string, args map[string]any) (ToolResult, error) {
	switch name {
	case ToolSearchCities:
		return c.callSearch(ctx, KindCity, str(args, "search"), "city_id")
	case ToolSearchVenues:
		return c.callSearch(ctx, KindVenue, str(args, "name"), "podium_id")
	case ToolSearchGenres:
		return c.callSearch(ctx, KindGenre, str(args, "search"), "genre_id")
	case ToolSearchEvents:
		events, err := c.FetchEvents(ctx, EventFilter{
			City:  str(args, "city"),
			Genre: str(args, "genre"),
			Venue: str(args, "venue"),
			Date:  str(args, "date"),
		})
		if err != nil {
			return ToolResult{Payload: map[string]any{"status": "error", "message": err.Error()}}, nil
		}
		return ToolResult{
			Payload: map[string]any{"status": "success", "count": len(events)},
			Events:  events,
		}, nil
	default:
		return ToolResult{}, fmt.Errorf("backend: unknown tool %q", name)
	}
}

func (c *Client) callSearch(ctx context.Context, kind SearchKind, term, idField string) (ToolResult, error) {
	id, err := c.Search(ctx, kind, term)
	if err != nil {
		return ToolResult{Payload: map[string]any{"status": "error", "message": err.Error()}}, nil
	}
	if id == "" {
		return ToolResult{Payload: map[string]any{"status": "not_found"}}, nil
	}
	return ToolResult{Payload: map[string]any{"status": "success", idField: id}}, nil
}

func str(args map[string]any, key string) string {
	if v, ok := args[key].(string); ok {
		return v
	}
	return ""
}
