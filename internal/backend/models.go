// README: Festival backend wire types and the active-set rule.
package backend

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Event is one candidate event as the backend returns it. DateTime is a
// single combined "YYYY-MM-DD HH:MM:SS" string; midnight is the backend's
// placeholder for "time not scheduled yet".
type Event struct {
	ID          json.Number `json:"event_id"`
	Title       string      `json:"event_name"`
	DateTime    string      `json:"event_date_time"`
	Venue       string      `json:"podium_name"`
	City        string      `json:"podium_town"`
	Description string      `json:"event_extra_info"`
	SoldOut     Flag        `json:"event_uitverkocht"`
	Cancelled   Flag        `json:"event_afgelast"`
}

// Date returns the calendar part of DateTime.
func (e Event) Date() string {
	if i := strings.IndexByte(e.DateTime, ' '); i >= 0 {
		return e.DateTime[:i]
	}
	return e.DateTime
}

// Clock returns the time part of DateTime, or "00:00:00" when absent.
func (e Event) Clock() string {
	if i := strings.IndexByte(e.DateTime, ' '); i >= 0 {
		return e.DateTime[i+1:]
	}
	return "00:00:00"
}

// Hour returns the clock hour, 0 when unparseable.
func (e Event) Hour() int {
	clock := e.Clock()
	if len(clock) < 2 {
		return 0
	}
	h := 0
	for _, c := range clock[:2] {
		if c < '0' || c > '9' {
			return 0
		}
		h = h*10 + int(c-'0')
	}
	if h > 23 {
		return 0
	}
	return h
}

// Active returns the events that can still be offered: sold-out and
// cancelled instances removed. This is the only set ever shown to a user.
func Active(events []Event) []Event {
	active := make([]Event, 0, len(events))
	for _, e := range events {
		if !bool(e.SoldOut) && !bool(e.Cancelled) {
			active = append(active, e)
		}
	}
	return active
}

// Flag decodes the backend's mixed bool encodings: true/false, 0/1,
// and their string forms.
type Flag bool

func (b *Flag) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch string(data) {
	case "true", "1", `"1"`, `"true"`:
		*b = true
	default:
		*b = false
	}
	return nil
}

// envelope is the backend's response wrapper.
type envelope struct {
	Data json.RawMessage `json:"data"`
}

type cityRecord struct {
	ID   json.Number `json:"city_id"`
	Name string      `json:"city_name"`
}

type venueRecord struct {
	ID   json.Number `json:"podium_id"`
	Name string      `json:"podium_name"`
}

type genreRecord struct {
	ID   json.Number `json:"genre_id"`
	Name string      `json:"genre_name"`
	Main Flag        `json:"genre_is_main"`
}
