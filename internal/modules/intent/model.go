// README: Intent module holds the extracted filter set and its merge rules.
package intent

import "strings"

// TimeOfDay buckets as the extractor emits them.
const (
	Ochtend = "ochtend"
	Middag  = "middag"
	Avond   = "avond"
	Nacht   = "nacht"
)

// EntityFilters is the interpreted intent of one user turn. Every field is
// either a non-empty value or empty, meaning "unconstrained". The literal
// string "null" is treated as empty (models occasionally emit it verbatim).
type EntityFilters struct {
	City      string `json:"city,omitempty"`
	Venue     string `json:"venue,omitempty"`
	Genre     string `json:"genre,omitempty"`
	TimeOfDay string `json:"timeOfDay,omitempty"`
	Date      string `json:"date,omitempty"`
}

// Normalize maps "null" placeholders and surrounding whitespace to absence.
func (f EntityFilters) Normalize() EntityFilters {
	f.City = cleanField(f.City)
	f.Venue = cleanField(f.Venue)
	f.Genre = cleanField(f.Genre)
	f.TimeOfDay = cleanField(f.TimeOfDay)
	f.Date = cleanField(f.Date)
	return f
}

// IsEmpty reports whether no dimension is constrained.
func (f EntityFilters) IsEmpty() bool {
	return f.City == "" && f.Venue == "" && f.Genre == "" && f.TimeOfDay == "" && f.Date == ""
}

// Merge gap-fills current from previous: for each field the previous turn's
// value is used only when the current turn left it absent. No concatenation,
// no list union.
func Merge(current, previous EntityFilters) EntityFilters {
	current = current.Normalize()
	previous = previous.Normalize()
	if current.City == "" {
		current.City = previous.City
	}
	if current.Venue == "" {
		current.Venue = previous.Venue
	}
	if current.Genre == "" {
		current.Genre = previous.Genre
	}
	if current.TimeOfDay == "" {
		current.TimeOfDay = previous.TimeOfDay
	}
	if current.Date == "" {
		current.Date = previous.Date
	}
	return current
}

func cleanField(v string) string {
	v = strings.TrimSpace(v)
	if strings.EqualFold(v, "null") {
		return ""
	}
	return v
}
