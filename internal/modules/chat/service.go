// README: Chat service orchestrates one stateless turn: LLM, gateway, shaper.
package chat

import (
	"context"
	"errors"
	"log"
	"time"

	"festivalchat/internal/ai"
	"festivalchat/internal/backend"
	"festivalchat/internal/config"
	"festivalchat/internal/modules/intent"
	"festivalchat/internal/modules/shaping"
)

// Gateway is the festival-data surface the service needs. Satisfied by
// *backend.Client; narrowed here so tests can stub it.
type Gateway interface {
	Search(ctx context.Context, kind backend.SearchKind, term string) (string, error)
	FetchEvents(ctx context.Context, filter backend.EventFilter) ([]backend.Event, error)
	Tools() []backend.Tool
	Call(ctx context.Context, name string, args map[string]any) (backend.ToolResult, error)
}

// Request is one inbound turn. History and LastEntities are client-held:
// the server keeps no session state between requests.
type Request struct {
	Message      string
	History      []ai.Message
	LastEntities intent.EntityFilters
}

// Response is either a plain reply or a shaped event listing; exactly one
// of Reply / Shaped is set. Entities echoes the merged filter set so the
// client can replay it next turn.
type Response struct {
	Reply    string
	Shaped   *shaping.Reply
	Entities *intent.EntityFilters
}

// Service handles one turn end to end. All per-turn state is local to
// Handle and discarded at return.
type Service struct {
	llm           ai.Provider
	gateway       Gateway
	shaper        *shaping.Service
	mode          string
	historyWindow int
	now           func() time.Time
}

func NewService(llm ai.Provider, gateway Gateway, shaper *shaping.Service, mode string, historyWindow int) *Service {
	return &Service{
		llm:           llm,
		gateway:       gateway,
		shaper:        shaper,
		mode:          mode,
		historyWindow: historyWindow,
		now:           time.Now,
	}
}

// Handle runs one turn. Upstream failures degrade to fixed replies and
// never surface as errors; only genuinely unexpected conditions return one.
func (s *Service) Handle(ctx context.Context, req Request) (*Response, error) {
	if s.mode == config.ModeExtract {
		return s.handleExtract(ctx, req)
	}
	return s.handleTools(ctx, req)
}

// ToolCatalog exposes the advertised tools for the debug endpoint.
func (s *Service) ToolCatalog() []backend.Tool {
	return s.gateway.Tools()
}

func (s *Service) handleExtract(ctx context.Context, req Request) (*Response, error) {
	p := s.shaper.Phrases()

	filters, err := s.llm.ExtractEntities(ctx, req.Message, s.trimHistory(req.History), s.now())
	if err != nil {
		if errors.Is(err, ai.ErrUnparseable) {
			return &Response{Reply: p.Rephrase}, nil
		}
		log.Printf("chat: extraction failed: %v", err)
		return &Response{Reply: p.Apology}, nil
	}

	merged := intent.Merge(filters, req.LastEntities)

	// The extractor's date wins when present; otherwise the deterministic
	// parser decides, defaulting to today.
	date := merged.Date
	if date == "" {
		date = intent.ResolveDate(req.Message, s.now())
	}

	filter := backend.EventFilter{Date: date}
	filter.City = s.resolve(ctx, backend.KindCity, merged.City)
	filter.Venue = s.resolve(ctx, backend.KindVenue, merged.Venue)
	filter.Genre = s.resolve(ctx, backend.KindGenre, merged.Genre)

	if filter.City == "" && filter.Venue == "" && filter.Genre == "" {
		// Never hit the events endpoint with an empty filter set.
		return &Response{Reply: p.NeedFilter, Entities: &merged}, nil
	}

	events, err := s.gateway.FetchEvents(ctx, filter)
	if err != nil {
		log.Printf("chat: events fetch failed: %v", err)
		return &Response{Reply: p.Apology, Entities: &merged}, nil
	}

	shaped := s.shaper.Shape(backend.Active(events), merged, nil)
	log.Printf("chat: extract turn, %d candidates, %d shown", len(events), len(shaped.Events))
	return &Response{Shaped: &shaped, Entities: &merged}, nil
}

func (s *Service) handleTools(ctx context.Context, req Request) (*Response, error) {
	p := s.shaper.Phrases()

	if len(s.gateway.Tools()) == 0 {
		return &Response{Reply: p.ToolsUnavailable}, nil
	}

	result, err := s.llm.RunToolChat(ctx, req.Message, s.trimHistory(req.History), s.gateway, s.now())
	if err != nil {
		log.Printf("chat: tool session failed: %v", err)
		return &Response{Reply: p.Apology}, nil
	}

	log.Printf("chat: tool turn, %d candidates, requested dates %v", len(result.Events), result.RequestedDates)

	if len(result.Events) == 0 {
		return &Response{Reply: result.Reply}, nil
	}

	shaped := s.shaper.Shape(backend.Active(result.Events), intent.EntityFilters{}, result.RequestedDates)
	return &Response{Shaped: &shaped}, nil
}

// resolve turns a name into a backend identifier; failures and misses both
// collapse to absence, per the containment policy at this boundary.
func (s *Service) resolve(ctx context.Context, kind backend.SearchKind, term string) string {
	if term == "" {
		return ""
	}
	id, err := s.gateway.Search(ctx, kind, term)
	if err != nil {
		log.Printf("chat: %s search %q failed: %v", kind, term, err)
		return ""
	}
	return id
}

func (s *Service) trimHistory(history []ai.Message) []ai.Message {
	if s.historyWindow <= 0 || len(history) <= s.historyWindow {
		return history
	}
	return history[len(history)-s.historyWindow:]
}
