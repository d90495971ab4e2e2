// Package service drives the extraction pipeline: one user turn in, one
// assistant turn out, with any recovered resume data reconciled into the
// document store along the way.
package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/chatfolio/chatfolio/internal/backend"
	"github.com/chatfolio/chatfolio/internal/config"
	"github.com/chatfolio/chatfolio/internal/domain"
	"github.com/chatfolio/chatfolio/internal/normalizer"
	"github.com/chatfolio/chatfolio/internal/parser"
	"github.com/chatfolio/chatfolio/internal/resume"
	"github.com/chatfolio/chatfolio/internal/session"
	"go.uber.org/zap"
)

// Orchestrator coordinates the session manager, backend router/client,
// response parser, field normalizer and resume store for each turn.
type Orchestrator struct {
	cfg      *config.Config
	sessions *session.Manager
	store    *resume.Store
	router   *backend.Router
	client   *backend.Client
	logger   *zap.Logger

	mu       sync.Mutex
	inFlight map[string]bool
}

// NewOrchestrator creates a new extraction orchestrator
func NewOrchestrator(
	cfg *config.Config,
	sessions *session.Manager,
	store *resume.Store,
	router *backend.Router,
	client *backend.Client,
	logger *zap.Logger,
) *Orchestrator {
	return &Orchestrator{
		cfg:      cfg,
		sessions: sessions,
		store:    store,
		router:   router,
		client:   client,
		logger:   logger,
		inFlight: make(map[string]bool),
	}
}

// Send runs one extraction turn. At most one request per session may be
// outstanding; concurrent submissions get ErrBusy. A failed backend call is
// not an error here: it is answered with a visible assistant error turn and
// the session returns to idle.
func (o *Orchestrator) Send(ctx context.Context, key string, req *domain.SendMessageRequest) (*domain.SendMessageResponse, error) {
	message := strings.TrimSpace(req.Message)
	if message == "" {
		return nil, domain.ErrInvalidRequest
	}

	if !o.begin(key) {
		return nil, domain.ErrBusy
	}
	defer o.end(key)

	role := req.Role
	if role == "" {
		role = o.cfg.Chat.DefaultRole
	}
	model := req.Model
	if model == "" {
		model = o.cfg.Chat.DefaultModel
	}

	// The user turn is appended before the network call resolves.
	history := o.sessions.Append(key, domain.ChatTurn{Role: domain.RoleUser, Content: message})

	route := o.router.Route(model, req.UseOpenRouter, backend.Conversation{
		History:     history,
		UserMessage: message,
		Role:        role,
	})

	resp, err := o.client.Send(ctx, route)
	if err != nil {
		o.logger.Warn("chat backend call failed",
			zap.String("session", key), zap.String("path", route.Path), zap.Error(err))
		reply := fmt.Sprintf("Error: %v. Make sure the backend is running at %s", err, o.client.BaseURL())
		o.sessions.Append(key, domain.ChatTurn{Role: domain.RoleAssistant, Content: reply})
		return &domain.SendMessageResponse{SessionID: key, Reply: reply}, nil
	}

	display := resp.AssistantMessage
	var extracted *domain.ExtractedSection

	if resp.ResumeData != nil && resp.ResumeData.ExtractedData != nil {
		// The backend already parsed the extraction server-side; skip the
		// text-parsing fallback entirely.
		extracted = resp.ResumeData.ExtractedData
		if resp.ResumeData.NextQuestion != "" {
			display = resp.ResumeData.NextQuestion
		}
	} else {
		result := parser.Parse(resp.AssistantMessage)
		display = result.Message
		extracted = result.Extracted
	}

	applied := false
	if extracted != nil && extracted.Section != "" && len(extracted.Fields) > 0 {
		o.store.Apply(key, normalizer.Normalize(extracted.Section, extracted.Fields))
		applied = true
	}

	o.sessions.Append(key, domain.ChatTurn{Role: domain.RoleAssistant, Content: display})

	return &domain.SendMessageResponse{SessionID: key, Reply: display, Extracted: applied}, nil
}

// Turns returns the session's turn log.
func (o *Orchestrator) Turns(key string) []domain.ChatTurn {
	return o.sessions.Turns(key)
}

// Resume returns a snapshot of the session's resume document.
func (o *Orchestrator) Resume(key string) domain.ResumeDocument {
	return o.store.Document(key)
}

// Clear erases the chat log only.
func (o *Orchestrator) Clear(key string) {
	o.sessions.Clear(key)
}

// Reset erases the chat log and restores the resume document to its initial
// empty schema.
func (o *Orchestrator) Reset(key string) {
	o.sessions.Clear(key)
	o.store.Reset(key)
}

// Busy reports whether a request is outstanding for the session.
func (o *Orchestrator) Busy(key string) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.inFlight[key]
}

func (o *Orchestrator) begin(key string) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.inFlight[key] {
		return false
	}
	o.inFlight[key] = true
	return true
}

func (o *Orchestrator) end(key string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	delete(o.inFlight, key)
}
