package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"festivalchat/internal/backend"
	"festivalchat/internal/modules/intent"
)

// GeminiProvider implements Provider using Google's Gemini models.
type GeminiProvider struct {
	client    *genai.Client
	modelName string
}

// NewGeminiProvider initializes a new Gemini client.
// apiKey should be provided from environment variables.
func NewGeminiProvider(ctx context.Context, apiKey, modelName string) (*GeminiProvider, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiProvider{client: client, modelName: modelName}, nil
}

// Close cleans up the Gemini client resources.
func (p *GeminiProvider) Close() {
	p.client.Close()
}

// ExtractEntities runs the single-shot extraction call in JSON mode.
func (p *GeminiProvider) ExtractEntities(ctx context.Context, message string, history []Message, today time.Time) (intent.EntityFilters, error) {
	model := p.client.GenerativeModel(p.modelName)
	model.ResponseMIMEType = "application/json"
	model.SetTemperature(0.2)

	resp, err := model.GenerateContent(ctx, genai.Text(extractionPrompt(message, history)))
	if err != nil {
		return intent.EntityFilters{}, fmt.Errorf("gemini generation error: %w", err)
	}

	raw := extractJSONObject(responseText(resp))
	if raw == "" {
		return intent.EntityFilters{}, ErrUnparseable
	}

	var filters intent.EntityFilters
	if err := json.Unmarshal([]byte(raw), &filters); err != nil {
		return intent.EntityFilters{}, ErrUnparseable
	}
	return filters.Normalize(), nil
}

// RunToolChat starts a function-calling session over the executor's catalog
// and loops until the model stops requesting calls. Dates passed to
// search_events are recorded as the requested date set.
func (p *GeminiProvider) RunToolChat(ctx context.Context, message string, history []Message, exec ToolExecutor, today time.Time) (*ToolChatResult, error) {
	model := p.client.GenerativeModel(p.modelName)
	model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(toolSystemPrompt(today))}}
	model.Tools = []*genai.Tool{{FunctionDeclarations: declarations(exec.Tools())}}
	// Tuned for strict instruction following over creativity.
	model.SetTemperature(0.3)
	model.SetTopP(0.8)
	model.SetTopK(40)

	session := model.StartChat()
	session.History = chatHistory(history)

	resp, err := session.SendMessage(ctx, genai.Text(message))
	if err != nil {
		return nil, fmt.Errorf("gemini generation error: %w", err)
	}

	result := &ToolChatResult{}
	seenDates := map[string]bool{}

	for {
		calls := functionCalls(resp)
		if len(calls) == 0 {
			break
		}

		replies := make([]genai.Part, 0, len(calls))
		for _, fc := range calls {
			if fc.Name == backend.ToolSearchEvents {
				if d, ok := fc.Args["date"].(string); ok && d != "" && !seenDates[d] {
					seenDates[d] = true
					result.RequestedDates = append(result.RequestedDates, d)
				}
			}

			res, err := exec.Call(ctx, fc.Name, fc.Args)
			if err != nil {
				// Contained at this boundary: the model sees the failure,
				// the turn continues.
				res.Payload = map[string]any{"status": "error", "message": err.Error()}
			}
			result.Events = append(result.Events, res.Events...)
			replies = append(replies, genai.FunctionResponse{Name: fc.Name, Response: res.Payload})
		}

		resp, err = session.SendMessage(ctx, replies...)
		if err != nil {
			return nil, fmt.Errorf("gemini tool round error: %w", err)
		}
	}

	result.Reply = strings.TrimSpace(responseText(resp))
	if result.Reply == "" {
		result.Reply = "Sorry, ik kon geen antwoord genereren."
	}
	return result, nil
}

func declarations(tools []backend.Tool) []*genai.FunctionDeclaration {
	decls := make([]*genai.FunctionDeclaration, 0, len(tools))
	for _, t := range tools {
		props := make(map[string]*genai.Schema, len(t.Parameters))
		for name, desc := range t.Parameters {
			props[name] = &genai.Schema{Type: genai.TypeString, Description: desc}
		}
		decls = append(decls, &genai.FunctionDeclaration{
			Name:        t.Name,
			Description: t.Description,
			Parameters: &genai.Schema{
				Type:       genai.TypeObject,
				Properties: props,
				Required:   t.Required,
			},
		})
	}
	return decls
}

func chatHistory(history []Message) []*genai.Content {
	contents := make([]*genai.Content, 0, len(history))
	for _, m := range history {
		role := "user"
		if m.Role != "user" {
			role = "model"
		}
		contents = append(contents, &genai.Content{
			Role:  role,
			Parts: []genai.Part{genai.Text(m.Content)},
		})
	}
	return contents
}

func functionCalls(resp *genai.GenerateContentResponse) []genai.FunctionCall {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil
	}
	var calls []genai.FunctionCall
	for _, part := range resp.Candidates[0].Content.Parts {
		if fc, ok := part.(genai.FunctionCall); ok {
			calls = append(calls, fc)
		}
	}
	return calls
}

func responseText(resp *genai.GenerateContentResponse) string {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			b.WriteString(string(txt))
		}
	}
	return b.String()
}

// extractJSONObject pulls the first {...} object out of model output,
// tolerating markdown fences around it.
func extractJSONObject(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")

	start := strings.IndexByte(s, '{')
	end := strings.LastIndexByte(s, '}')
	if start < 0 || end <= start {
		return ""
	}
	return s[start : end+1]
}
