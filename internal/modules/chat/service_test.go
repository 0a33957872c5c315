package chat

import (
	"context"
	"errors"
	"testing"
	"time"

	"festivalchat/internal/ai"
	"festivalchat/internal/backend"
	"festivalchat/internal/config"
	"festivalchat/internal/modules/intent"
	"festivalchat/internal/modules/shaping"
)

type stubProvider struct {
	filters    intent.EntityFilters
	extractErr error

	toolResult *ai.ToolChatResult
	toolErr    error
}

func (s *stubProvider) ExtractEntities(ctx context.Context, message string, history []ai.Message, today time.Time) (intent.EntityFilters, error) {
	return s.filters, s.extractErr
}

func (s *stubProvider) RunToolChat(ctx context.Context, message string, history []ai.Message, exec ai.ToolExecutor, today time.Time) (*ai.ToolChatResult, error) {
	return s.toolResult, s.toolErr
}

type stubGateway struct {
	ids        map[backend.SearchKind]string
	events     []backend.Event
	fetchErr   error
	lastFilter backend.EventFilter
	noTools    bool
}

func (s *stubGateway) Search(ctx context.Context, kind backend.SearchKind, term string) (string, error) {
	return s.ids[kind], nil
}

func (s *stubGateway) FetchEvents(ctx context.Context, filter backend.EventFilter) ([]backend.Event, error) {
	s.lastFilter = filter
	return s.events, s.fetchErr
}

func (s *stubGateway) Tools() []backend.Tool {
	if s.noTools {
		return nil
	}
	return []backend.Tool{{Name: backend.ToolSearchEvents}}
}

func (s *stubGateway) Call(ctx context.Context, name string, args map[string]any) (backend.ToolResult, error) {
	return backend.ToolResult{}, nil
}

func newTestService(p ai.Provider, g Gateway, mode string) *Service {
	svc := NewService(p, g, shaping.NewService(shaping.DefaultConfig()), mode, 16)
	svc.now = func() time.Time { return time.Date(2025, 10, 8, 12, 0, 0, 0, time.UTC) }
	return svc
}

func TestHandleExtractHappyPath(t *testing.T) {
	gw := &stubGateway{
		ids: map[backend.SearchKind]string{backend.KindCity: "12", backend.KindGenre: "3"},
		events: []backend.Event{
			{ID: "1", DateTime: "2025-10-08 20:00:00", City: "Amsterdam"},
			{ID: "2", DateTime: "2025-10-08 21:00:00", City: "Amsterdam", SoldOut: true},
		},
	}
	p := &stubProvider{filters: intent.EntityFilters{City: "Amsterdam", Genre: "rock"}}

	resp, err := newTestService(p, gw, config.ModeExtract).Handle(context.Background(), Request{Message: "rock in Amsterdam vanavond"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if resp.Shaped == nil {
		t.Fatalf("expected a shaped reply, got %+v", resp)
	}
	if resp.Shaped.TotalCount != 1 {
		t.Errorf("sold-out event must not be counted, got %d", resp.Shaped.TotalCount)
	}
	if gw.lastFilter.City != "12" || gw.lastFilter.Genre != "3" {
		t.Errorf("resolved identifiers not forwarded: %+v", gw.lastFilter)
	}
	// No extracted date: the deterministic parser decides ("vanavond").
	if gw.lastFilter.Date != "2025-10-08" {
		t.Errorf("date fallback = %q, want 2025-10-08", gw.lastFilter.Date)
	}
	if resp.Entities == nil || resp.Entities.City != "Amsterdam" {
		t.Errorf("merged entities should be echoed, got %+v", resp.Entities)
	}
}

func TestHandleExtractCarryOver(t *testing.T) {
	gw := &stubGateway{ids: map[backend.SearchKind]string{backend.KindCity: "12", backend.KindGenre: "5"}}
	p := &stubProvider{filters: intent.EntityFilters{Genre: "metal"}}

	resp, err := newTestService(p, gw, config.ModeExtract).Handle(context.Background(), Request{
		Message:      "en metal?",
		LastEntities: intent.EntityFilters{City: "Amsterdam", Date: "2025-10-11"},
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if resp.Entities.City != "Amsterdam" || resp.Entities.Genre != "metal" {
		t.Errorf("gap-fill merge failed: %+v", resp.Entities)
	}
	// The carried-over date wins over the deterministic fallback.
	if gw.lastFilter.Date != "2025-10-11" {
		t.Errorf("date = %q, want carried-over 2025-10-11", gw.lastFilter.Date)
	}
}

func TestHandleExtractUnparseableAsksToRephrase(t *testing.T) {
	p := &stubProvider{extractErr: ai.ErrUnparseable}
	resp, err := newTestService(p, &stubGateway{}, config.ModeExtract).Handle(context.Background(), Request{Message: "???"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if resp.Reply != shaping.DutchPhrases().Rephrase {
		t.Errorf("expected the rephrase reply, got %q", resp.Reply)
	}
}

func TestHandleExtractUpstreamFailureDegrades(t *testing.T) {
	p := &stubProvider{extractErr: errors.New("gemini down")}
	resp, err := newTestService(p, &stubGateway{}, config.ModeExtract).Handle(context.Background(), Request{Message: "iets leuks"})
	if err != nil {
		t.Fatalf("upstream failure must not surface as an error, got %v", err)
	}
	if resp.Reply != shaping.DutchPhrases().Apology {
		t.Errorf("expected the apology reply, got %q", resp.Reply)
	}
}

func TestHandleExtractNoResolvedFiltersAsksForOne(t *testing.T) {
	// Extraction found a city but the backend cannot resolve it.
	p := &stubProvider{filters: intent.EntityFilters{City: "Atlantis"}}
	gw := &stubGateway{}

	resp, err := newTestService(p, gw, config.ModeExtract).Handle(context.Background(), Request{Message: "iets in Atlantis"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if resp.Reply != shaping.DutchPhrases().NeedFilter {
		t.Errorf("expected the need-filter reply, got %q", resp.Reply)
	}
	if gw.lastFilter != (backend.EventFilter{}) {
		t.Errorf("events endpoint must not be called with an empty filter set, got %+v", gw.lastFilter)
	}
}

func TestHandleToolsShapesAccumulatedEvents(t *testing.T) {
	p := &stubProvider{toolResult: &ai.ToolChatResult{
		Reply: "Dit vond ik",
		Events: []backend.Event{
			{ID: "1", DateTime: "2025-10-10 20:00:00"},
			{ID: "2", DateTime: "2025-10-11 20:00:00"},
			{ID: "3", DateTime: "2025-10-10 22:00:00", SoldOut: true},
		},
		RequestedDates: []string{"2025-10-10"},
	}}

	resp, err := newTestService(p, &stubGateway{}, config.ModeTools).Handle(context.Background(), Request{Message: "wat is er vrijdag"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if resp.Shaped == nil {
		t.Fatalf("expected a shaped reply, got %+v", resp)
	}
	// Only the active event on the requested date survives.
	if resp.Shaped.TotalCount != 1 {
		t.Errorf("TotalCount = %d, want 1", resp.Shaped.TotalCount)
	}
}

func TestHandleToolsPlainReplyWithoutEvents(t *testing.T) {
	p := &stubProvider{toolResult: &ai.ToolChatResult{Reply: "Waar wil je heen?"}}
	resp, err := newTestService(p, &stubGateway{}, config.ModeTools).Handle(context.Background(), Request{Message: "hoi"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if resp.Reply != "Waar wil je heen?" || resp.Shaped != nil {
		t.Errorf("expected the model's plain reply, got %+v", resp)
	}
}

func TestHandleToolsUnavailable(t *testing.T) {
	resp, err := newTestService(&stubProvider{}, &stubGateway{noTools: true}, config.ModeTools).Handle(context.Background(), Request{Message: "hoi"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if resp.Reply != shaping.DutchPhrases().ToolsUnavailable {
		t.Errorf("expected the tools-unavailable reply, got %q", resp.Reply)
	}
}
