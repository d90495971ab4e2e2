package assistant

import (
	"errors"
	"net/http"

	"github.com/chatfolio/chatfolio/internal/domain"
	"github.com/chatfolio/chatfolio/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Handler handles assistant API requests
type Handler struct {
	orchestrator *service.Orchestrator
}

// NewHandler creates a new assistant handler
func NewHandler(orchestrator *service.Orchestrator) *Handler {
	return &Handler{orchestrator: orchestrator}
}

// RegisterRoutes registers assistant routes
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/sessions", h.CreateSession)
	r.GET("/sessions/:session_id", h.GetSession)
	r.POST("/sessions/:session_id/messages", h.SendMessage)
	r.DELETE("/sessions/:session_id", h.ClearSession)
	r.POST("/sessions/:session_id/reset", h.ResetSession)
	r.GET("/sessions/:session_id/resume", h.GetResume)
}

// CreateSession mints a fresh session key and returns its greeting state
func (h *Handler) CreateSession(c *gin.Context) {
	sessionID := uuid.New().String()

	c.JSON(http.StatusCreated, gin.H{
		"session_id": sessionID,
		"turns":      h.orchestrator.Turns(sessionID),
	})
}

// GetSession returns the session's turn log
func (h *Handler) GetSession(c *gin.Context) {
	sessionID := c.Param("session_id")

	c.JSON(http.StatusOK, gin.H{
		"session_id": sessionID,
		"turns":      h.orchestrator.Turns(sessionID),
	})
}

// SendMessage drives one extraction turn
func (h *Handler) SendMessage(c *gin.Context) {
	sessionID := c.Param("session_id")

	var req domain.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.orchestrator.Send(c.Request.Context(), sessionID, &req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidRequest):
			c.JSON(http.StatusBadRequest, gin.H{"error": "message must not be empty"})
		case errors.Is(err, domain.ErrBusy):
			c.JSON(http.StatusConflict, gin.H{"error": "a request is already in flight for this session"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ClearSession removes the chat history, leaving the resume untouched
func (h *Handler) ClearSession(c *gin.Context) {
	sessionID := c.Param("session_id")
	h.orchestrator.Clear(sessionID)

	c.JSON(http.StatusOK, gin.H{"session_id": sessionID, "cleared": true})
}

// ResetSession removes the chat history and resets the resume document
func (h *Handler) ResetSession(c *gin.Context) {
	sessionID := c.Param("session_id")
	h.orchestrator.Reset(sessionID)

	c.JSON(http.StatusOK, gin.H{"session_id": sessionID, "reset": true})
}

// GetResume returns the current canonical resume document
func (h *Handler) GetResume(c *gin.Context) {
	sessionID := c.Param("session_id")

	c.JSON(http.StatusOK, gin.H{
		"session_id": sessionID,
		"resume":     h.orchestrator.Resume(sessionID),
	})
}
