// README: Chat handler (stateless turn endpoint + tool introspection).
package handlers

import (
	"context"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"festivalchat/internal/ai"
	"festivalchat/internal/backend"
	"festivalchat/internal/modules/chat"
	"festivalchat/internal/modules/intent"
	"festivalchat/internal/modules/shaping"
)

// ChatService is the slice of the chat module this handler needs.
type ChatService interface {
	Handle(ctx context.Context, req chat.Request) (*chat.Response, error)
	ToolCatalog() []backend.Tool
}

type ChatHandler struct {
	svc     ChatService
	apology string
}

func NewChatHandler(svc ChatService, apology string) *ChatHandler {
	return &ChatHandler{svc: svc, apology: apology}
}

type chatReq struct {
	Message      string                `json:"message"`
	History      []ai.Message          `json:"history"`
	LastEntities *intent.EntityFilters `json:"lastEntities"`
}

type plainResp struct {
	Reply    string                `json:"reply"`
	Entities *intent.EntityFilters `json:"entities,omitempty"`
}

type structuredResp struct {
	Intro      string                 `json:"intro"`
	Events     []shaping.DisplayEvent `json:"events"`
	Outro      string                 `json:"outro"`
	TotalCount int                    `json:"totalCount"`
	Entities   *intent.EntityFilters  `json:"entities,omitempty"`
}

// Chat handles POST /chat. A tool session can span several model rounds, so
// the turn gets a generous deadline.
func (h *ChatHandler) Chat(c *gin.Context) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json", h.apology)
		return
	}

	req.Message = strings.TrimSpace(req.Message)
	if req.Message == "" {
		writeError(c, http.StatusBadRequest, "missing message", h.apology)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 60*time.Second)
	defer cancel()

	turn := chat.Request{Message: req.Message, History: req.History}
	if req.LastEntities != nil {
		turn.LastEntities = *req.LastEntities
	}

	resp, err := h.svc.Handle(ctx, turn)
	if err != nil {
		writeError(c, http.StatusInternalServerError, err.Error(), h.apology)
		return
	}

	if resp.Shaped != nil {
		writeJSON(c, http.StatusOK, structuredResp{
			Intro:      resp.Shaped.Intro,
			Events:     resp.Shaped.Events,
			Outro:      resp.Shaped.Outro,
			TotalCount: resp.Shaped.TotalCount,
			Entities:   resp.Entities,
		})
		return
	}
	writeJSON(c, http.StatusOK, plainResp{Reply: resp.Reply, Entities: resp.Entities})
}

type toolInfo struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Parameters  []string `json:"parameters"`
}

// Tools handles GET /tools: read-only introspection of the advertised
// tool catalog.
func (h *ChatHandler) Tools(c *gin.Context) {
	catalog := h.svc.ToolCatalog()
	tools := make([]toolInfo, 0, len(catalog))
	for _, t := range catalog {
		params := make([]string, 0, len(t.Parameters))
		for name := range t.Parameters {
			params = append(params, name)
		}
		sort.Strings(params)
		tools = append(tools, toolInfo{Name: t.Name, Description: t.Description, Parameters: params})
	}
	writeJSON(c, http.StatusOK, gin.H{"count": len(tools), "tools": tools})
}
