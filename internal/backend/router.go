// Package backend routes conversation turns to the right chat provider and
// carries them over the wire.
package backend

import (
	"strings"

	"github.com/chatfolio/chatfolio/internal/domain"
)

// Endpoint paths on the chat backend.
const (
	PathChat       = "/api/chat"
	PathOpenRouter = "/api/openrouter"
)

// Conversation is the state a request body is built from. History already
// includes the user turn being sent.
type Conversation struct {
	History     []domain.ChatTurn
	UserMessage string
	Role        string
}

// ChatRequestBody is the request shape of the default provider endpoint.
type ChatRequestBody struct {
	ConversationHistory []domain.ChatTurn `json:"conversationHistory"`
	UserMessage         string            `json:"userMessage"`
	Role                string            `json:"role"`
	Model               string            `json:"model"`
	UseOpenRouter       bool              `json:"useOpenRouter"`
}

// OpenRouterRequestBody is the request shape of the alternate provider
// endpoint.
type OpenRouterRequestBody struct {
	Messages  []domain.ChatTurn `json:"messages"`
	Model     string            `json:"model"`
	SiteURL   string            `json:"site_url"`
	SiteTitle string            `json:"site_title"`
}

// Route is a chosen endpoint plus its provider-specific request body.
type Route struct {
	Path string
	Body any
}

// Router decides which provider endpoint a turn goes to. Pure decision
// logic; no I/O happens here.
type Router struct {
	siteURL   string
	siteTitle string
}

// NewRouter creates a new backend router
func NewRouter(siteURL, siteTitle string) *Router {
	return &Router{siteURL: siteURL, siteTitle: siteTitle}
}

// Route selects the endpoint and builds the request body. A namespaced
// model id (provider/model-name) or the explicit toggle selects the
// alternate provider.
func (r *Router) Route(model string, useOpenRouter bool, conv Conversation) Route {
	if strings.Contains(model, "/") || useOpenRouter {
		return Route{
			Path: PathOpenRouter,
			Body: OpenRouterRequestBody{
				Messages:  conv.History,
				Model:     model,
				SiteURL:   r.siteURL,
				SiteTitle: r.siteTitle,
			},
		}
	}

	return Route{
		Path: PathChat,
		Body: ChatRequestBody{
			ConversationHistory: conv.History,
			UserMessage:         conv.UserMessage,
			Role:                conv.Role,
			Model:               model,
			UseOpenRouter:       useOpenRouter,
		},
	}
}
