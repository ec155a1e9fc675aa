// Package api exposes the chat workflow over HTTP: synchronous and SSE
// chat endpoints, session history, CSV downloads, and token issuance.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/edu-cockpit/cockpit/pkg/config"
	"github.com/edu-cockpit/cockpit/pkg/database"
	"github.com/edu-cockpit/cockpit/pkg/models"
	"github.com/edu-cockpit/cockpit/pkg/workflow"
)

// historyWindow is how many prior user messages of the session the
// intent node sees.
const historyWindow = 4

// HistoryStore is the chat-history surface the handlers need. Satisfied
// by services.ChatHistoryService.
type HistoryStore interface {
	LastUserMessages(ctx context.Context, adminID int, sessionID string, limit int) ([]string, error)
	ListSessions(ctx context.Context, adminID, offset, limit int) ([]models.SessionPreview, int, error)
	ListMessages(ctx context.Context, adminID int, sessionID string, offset, limit int) ([]models.SessionMessage, int, error)
	DeleteSession(ctx context.Context, adminID int, sessionID string) error
	DeleteAllSessions(ctx context.Context, adminID int) (int, error)
}

// Server is the HTTP server around the workflow engine.
type Server struct {
	settings *config.Settings
	db       *database.Client
	engine   *workflow.Engine
	history  HistoryStore

	httpServer *http.Server
}

// NewServer wires the HTTP server.
func NewServer(settings *config.Settings, db *database.Client, engine *workflow.Engine, history HistoryStore) *Server {
	return &Server{
		settings: settings,
		db:       db,
		engine:   engine,
		history:  history,
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger())

	router.GET("/healthz", s.Healthz)
	router.POST("/api/auth/token", s.IssueToken)

	authed := router.Group("/api", s.requireAuth(false))
	{
		authed.POST("/chat", s.Chat)
		authed.POST("/chat/stream", s.ChatStream)
		authed.POST("/chat/intent", s.Intent)
		authed.GET("/chat/sessions", s.ListSessions)
		authed.GET("/chat/sessions/:id/messages", s.ListSessionMessages)
		authed.DELETE("/chat/sessions/:id", s.DeleteSession)
		authed.DELETE("/chat/sessions", s.DeleteAllSessions)
	}

	// Downloads also accept ?token= so browsers can follow the link
	// embedded in the assistant reply.
	router.GET("/api/chat/downloads/:file", s.requireAuth(true), s.Download)

	return router
}

// Start runs the HTTP server on addr, blocking until shutdown.
func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

// Healthz reports process and database health.
func (s *Server) Healthz(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	dbHealth, err := database.Health(ctx, s.db.DB())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": dbHealth,
			"error":    err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"database": dbHealth,
	})
}
