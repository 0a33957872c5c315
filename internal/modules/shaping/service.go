// README: Result shaper: deterministic filter and display policy for one turn.
package shaping

import (
	"fmt"
	"strings"

	"festivalchat/internal/backend"
	"festivalchat/internal/modules/intent"
)

// Config carries the shaping thresholds. ListLimit is the largest result set
// that is still listed in full; above it exactly SampleSize diversified
// examples are shown.
type Config struct {
	ListLimit  int
	SampleSize int
	Phrases    Phrases
}

func DefaultConfig() Config {
	return Config{ListLimit: 20, SampleSize: 5, Phrases: DutchPhrases()}
}

// Service applies the result-shaping policy. It is pure: same inputs, same
// reply, no hidden state.
type Service struct {
	cfg Config
}

func NewService(cfg Config) *Service {
	return &Service{cfg: cfg}
}

// Phrases exposes the locale strings for callers that need the apology or
// placeholder texts outside a shaped reply.
func (s *Service) Phrases() Phrases {
	return s.cfg.Phrases
}

// Shape turns the active event set into a reply. The input must already
// have sold-out and cancelled events removed; this layer never re-checks.
//
// Steps: hard requested-date filter, soft time-of-day filter, then branch
// on the remaining count.
func (s *Service) Shape(active []backend.Event, filters intent.EntityFilters, requestedDates []string) Reply {
	events := filterByDates(active, requestedDates)
	events = s.softTimeOfDay(events, filters.TimeOfDay)

	n := len(events)
	p := s.cfg.Phrases

	switch {
	case n == 0:
		return Reply{
			Intro:      p.NothingFound,
			Events:     []DisplayEvent{},
			Outro:      s.broadenOutro(filters),
			TotalCount: 0,
		}
	case n <= s.cfg.ListLimit:
		intro := p.FoundOne
		if n > 1 {
			intro = fmt.Sprintf(p.FoundMany, n)
		}
		return Reply{
			Intro:      intro,
			Events:     s.display(events),
			Outro:      p.TicketOutro,
			TotalCount: n,
		}
	default:
		return Reply{
			Intro:      fmt.Sprintf(p.TooMany, n),
			Events:     s.display(diversify(events, s.cfg.SampleSize)),
			Outro:      p.NarrowOutro,
			TotalCount: n,
		}
	}
}

// filterByDates drops events outside the requested date set. An empty set
// means no restriction. This filter is hard: it may produce zero results.
func filterByDates(events []backend.Event, dates []string) []backend.Event {
	if len(dates) == 0 {
		return events
	}
	wanted := make(map[string]bool, len(dates))
	for _, d := range dates {
		wanted[d] = true
	}
	kept := make([]backend.Event, 0, len(events))
	for _, e := range events {
		if wanted[e.Date()] {
			kept = append(kept, e)
		}
	}
	return kept
}

// softTimeOfDay keeps only events in the requested bucket, unless that
// would leave nothing: time-of-day is a preference, never allowed to zero
// out a non-empty set.
func (s *Service) softTimeOfDay(events []backend.Event, bucket string) []backend.Event {
	if bucket == "" {
		return events
	}
	kept := make([]backend.Event, 0, len(events))
	for _, e := range events {
		if intent.MatchesTimeOfDay(e.Hour(), bucket) {
			kept = append(kept, e)
		}
	}
	if len(kept) == 0 {
		return events
	}
	return kept
}

// diversify picks up to limit events spreading over distinct dates first,
// then distinct cities. Greedy and stable: ties keep backend order, so the
// same input always yields the same sample.
func diversify(events []backend.Event, limit int) []backend.Event {
	if len(events) <= limit {
		return events
	}
	picked := make([]backend.Event, 0, limit)
	used := make([]bool, len(events))
	seenDate := map[string]bool{}
	seenCity := map[string]bool{}

	for len(picked) < limit {
		best, bestScore := -1, -1
		for i, e := range events {
			if used[i] {
				continue
			}
			score := 0
			if !seenDate[e.Date()] {
				score += 2
			}
			if !seenCity[e.City] {
				score++
			}
			if score > bestScore {
				best, bestScore = i, score
			}
		}
		e := events[best]
		used[best] = true
		seenDate[e.Date()] = true
		seenCity[e.City] = true
		picked = append(picked, e)
	}
	return picked
}

func (s *Service) display(events []backend.Event) []DisplayEvent {
	out := make([]DisplayEvent, 0, len(events))
	for _, e := range events {
		out = append(out, DisplayEvent{
			ID:           e.ID.String(),
			Titel:        titleOrDefault(e.Title),
			Datum:        e.Date(),
			Tijd:         s.displayTime(e.Clock()),
			Venue:        e.Venue,
			Stad:         e.City,
			Beschrijving: descriptionOrDefault(e.Description),
		})
	}
	return out
}

// displayTime renders a clock as HH:MM; a literal midnight is the backend's
// "unscheduled" placeholder and is rendered as such.
func (s *Service) displayTime(clock string) string {
	if strings.HasPrefix(clock, "00:00") {
		return s.cfg.Phrases.TimeUnknown
	}
	if len(clock) >= 5 {
		return clock[:5]
	}
	return clock
}

func (s *Service) broadenOutro(filters intent.EntityFilters) string {
	p := s.cfg.Phrases
	var dims []string
	if filters.TimeOfDay != "" {
		dims = append(dims, fmt.Sprintf(p.BroadenTime, filters.TimeOfDay))
	}
	if filters.Venue != "" {
		dims = append(dims, fmt.Sprintf(p.BroadenVenue, filters.Venue))
	}
	if filters.City != "" {
		dims = append(dims, fmt.Sprintf(p.BroadenCity, filters.City))
	}
	if len(dims) == 0 {
		dims = append(dims, p.BroadenGeneric)
	}
	return p.BroadenOffer + " " + strings.Join(dims, ", ") + ". " + p.BroadenQuestion
}

func titleOrDefault(title string) string {
	if title == "" {
		return "Event"
	}
	return title
}

func descriptionOrDefault(desc string) string {
	if desc == "" {
		return "Geen beschrijving beschikbaar"
	}
	return desc
}
