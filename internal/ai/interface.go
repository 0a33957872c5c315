// README: LLM provider contract for entity extraction and tool-driven chat.
package ai

import (
	"context"
	"errors"
	"time"

	"festivalchat/internal/backend"
	"festivalchat/internal/modules/intent"
)

// ErrUnparseable is returned when no JSON object can be recovered from the
// model's extraction output. Callers ask the user to rephrase instead of
// guessing.
var ErrUnparseable = errors.New("ai: no parseable JSON in model output")

// Message is one prior conversation turn, replayed by the client.
type Message struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

// ToolExecutor is the function-calling surface handed to the model in tool
// mode. Implemented by the backend gateway.
type ToolExecutor interface {
	Tools() []backend.Tool
	Call(ctx context.Context, name string, args map[string]any) (backend.ToolResult, error)
}

// ToolChatResult is the outcome of one tool-calling session: the model's
// final text, every event fetched along the way, and the distinct dates the
// session actually queried for (the requested date set).
type ToolChatResult struct {
	Reply          string
	Events         []backend.Event
	RequestedDates []string
}

// Provider defines the contract for interacting with AI models, so another
// provider can replace Gemini without touching the chat service.
type Provider interface {
	// ExtractEntities analyzes the user's message (with recent history as
	// context) and returns a best-effort structured filter set.
	ExtractEntities(ctx context.Context, message string, history []Message, today time.Time) (intent.EntityFilters, error)

	// RunToolChat drives a multi-turn function-calling session against the
	// executor until the model produces a final natural-language answer.
	RunToolChat(ctx context.Context, message string, history []Message, exec ToolExecutor, today time.Time) (*ToolChatResult, error)
}
