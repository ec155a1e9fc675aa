package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

func pagination(c *gin.Context) (offset, limit int, ok bool) {
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		respondError(c, http.StatusBadRequest, "invalid offset")
		return 0, 0, false
	}
	limit, err = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultPageLimit)))
	if err != nil || limit <= 0 || limit > maxPageLimit {
		respondError(c, http.StatusBadRequest, "invalid limit")
		return 0, 0, false
	}
	return offset, limit, true
}

// ListSessions handles GET /api/chat/sessions.
func (s *Server) ListSessions(c *gin.Context) {
	offset, limit, ok := pagination(c)
	if !ok {
		return
	}

	sessions, total, err := s.history.ListSessions(c.Request.Context(), currentAdminID(c), offset, limit)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	respondOK(c, gin.H{
		"sessions": sessions,
		"total":    total,
		"offset":   offset,
		"limit":    limit,
	})
}

// ListSessionMessages handles GET /api/chat/sessions/:id/messages.
func (s *Server) ListSessionMessages(c *gin.Context) {
	offset, limit, ok := pagination(c)
	if !ok {
		return
	}

	messages, total, err := s.history.ListMessages(
		c.Request.Context(), currentAdminID(c), c.Param("id"), offset, limit)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	respondOK(c, gin.H{
		"session_id": c.Param("id"),
		"messages":   messages,
		"total":      total,
		"offset":     offset,
		"limit":      limit,
	})
}

// DeleteSession handles DELETE /api/chat/sessions/:id (soft delete).
func (s *Server) DeleteSession(c *gin.Context) {
	if err := s.history.DeleteSession(c.Request.Context(), currentAdminID(c), c.Param("id")); err != nil {
		mapServiceError(c, err)
		return
	}
	respondOK(c, gin.H{"deleted": true})
}

// DeleteAllSessions handles DELETE /api/chat/sessions (soft delete).
func (s *Server) DeleteAllSessions(c *gin.Context) {
	n, err := s.history.DeleteAllSessions(c.Request.Context(), currentAdminID(c))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	respondOK(c, gin.H{"deleted": true, "messages": n})
}
