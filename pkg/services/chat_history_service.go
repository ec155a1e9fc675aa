// Package services contains the persistence service layer over Ent.
package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/edu-cockpit/cockpit/ent"
	"github.com/edu-cockpit/cockpit/ent/chathistory"
	"github.com/edu-cockpit/cockpit/pkg/models"
)

const (
	dbTimeout = 5 * time.Second

	// previewRunes is how much of the first user message a session
	// preview shows before the ellipsis.
	previewRunes = 7
)

// ChatHistoryService reads and soft-deletes chat history. Writes happen
// through WorkflowRecorder so they share the workflow-log transaction.
type ChatHistoryService struct {
	client *ent.Client
}

// NewChatHistoryService creates a ChatHistoryService.
func NewChatHistoryService(client *ent.Client) *ChatHistoryService {
	return &ChatHistoryService{client: client}
}

// LastUserMessages returns up to limit prior user messages of a session,
// oldest first. Implements the workflow history port.
func (s *ChatHistoryService) LastUserMessages(httpCtx context.Context, adminID int, sessionID string, limit int) ([]string, error) {
	if sessionID == "" || limit <= 0 {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(httpCtx, dbTimeout)
	defer cancel()

	rows, err := s.client.ChatHistory.Query().
		Where(
			chathistory.AdminID(adminID),
			chathistory.SessionID(sessionID),
			chathistory.RoleEQ(chathistory.RoleUser),
			chathistory.IsDeleted(false),
		).
		Order(ent.Desc(chathistory.FieldCreatedAt), ent.Desc(chathistory.FieldID)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load session history: %w", err)
	}

	// Reverse into chronological order.
	out := make([]string, len(rows))
	for i, row := range rows {
		out[len(rows)-1-i] = row.Content
	}
	return out, nil
}

// ListSessions returns one preview row per session of the admin, newest
// activity first, plus the total session count.
func (s *ChatHistoryService) ListSessions(httpCtx context.Context, adminID, offset, limit int) ([]models.SessionPreview, int, error) {
	if offset < 0 {
		return nil, 0, NewValidationError("offset", "must be >= 0")
	}
	if limit <= 0 {
		return nil, 0, NewValidationError("limit", "must be > 0")
	}

	ctx, cancel := context.WithTimeout(httpCtx, dbTimeout)
	defer cancel()

	var groups []struct {
		SessionID string    `json:"session_id"`
		Count     int       `json:"count"`
		Min       time.Time `json:"min"`
		Max       time.Time `json:"max"`
	}
	err := s.client.ChatHistory.Query().
		Where(
			chathistory.AdminID(adminID),
			chathistory.IsDeleted(false),
		).
		GroupBy(chathistory.FieldSessionID).
		Aggregate(
			ent.Count(),
			ent.Min(chathistory.FieldCreatedAt),
			ent.Max(chathistory.FieldCreatedAt),
		).
		Scan(ctx, &groups)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list sessions: %w", err)
	}

	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Max.After(groups[j].Max)
	})

	total := len(groups)
	if offset >= total {
		return []models.SessionPreview{}, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}

	previews := make([]models.SessionPreview, 0, end-offset)
	for _, g := range groups[offset:end] {
		preview, err := s.sessionPreviewText(ctx, adminID, g.SessionID)
		if err != nil {
			return nil, 0, err
		}
		previews = append(previews, models.SessionPreview{
			SessionID:    g.SessionID,
			Preview:      preview,
			MessageCount: g.Count,
			CreatedAt:    g.Min.Format(time.RFC3339),
			UpdatedAt:    g.Max.Format(time.RFC3339),
		})
	}
	return previews, total, nil
}

// sessionPreviewText is the first user message of the session truncated
// to previewRunes runes plus an ellipsis.
func (s *ChatHistoryService) sessionPreviewText(ctx context.Context, adminID int, sessionID string) (string, error) {
	first, err := s.client.ChatHistory.Query().
		Where(
			chathistory.AdminID(adminID),
			chathistory.SessionID(sessionID),
			chathistory.RoleEQ(chathistory.RoleUser),
			chathistory.IsDeleted(false),
		).
		Order(ent.Asc(chathistory.FieldCreatedAt), ent.Asc(chathistory.FieldID)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", nil
		}
		return "", fmt.Errorf("failed to load session preview: %w", err)
	}

	runes := []rune(first.Content)
	if len(runes) <= previewRunes {
		return first.Content, nil
	}
	return string(runes[:previewRunes]) + "…", nil
}

// ListMessages returns the ordered messages of one session with the
// session's total message count.
func (s *ChatHistoryService) ListMessages(httpCtx context.Context, adminID int, sessionID string, offset, limit int) ([]models.SessionMessage, int, error) {
	if sessionID == "" {
		return nil, 0, NewValidationError("session_id", "required")
	}
	if offset < 0 {
		return nil, 0, NewValidationError("offset", "must be >= 0")
	}
	if limit <= 0 {
		return nil, 0, NewValidationError("limit", "must be > 0")
	}

	ctx, cancel := context.WithTimeout(httpCtx, dbTimeout)
	defer cancel()

	base := s.client.ChatHistory.Query().
		Where(
			chathistory.AdminID(adminID),
			chathistory.SessionID(sessionID),
			chathistory.IsDeleted(false),
		)

	total, err := base.Clone().Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count session messages: %w", err)
	}
	if total == 0 {
		return nil, 0, ErrNotFound
	}

	rows, err := base.
		Order(ent.Asc(chathistory.FieldCreatedAt), ent.Asc(chathistory.FieldID)).
		Offset(offset).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list session messages: %w", err)
	}

	out := make([]models.SessionMessage, 0, len(rows))
	for _, row := range rows {
		out = append(out, models.SessionMessage{
			ID:        row.ID,
			Role:      string(row.Role),
			Content:   row.Content,
			ModelName: row.ModelName,
			CreatedAt: row.CreatedAt.Format(time.RFC3339),
		})
	}
	return out, total, nil
}

// DeleteSession soft-deletes one session of the admin. Returns
// ErrNotFound when the session has no live rows.
func (s *ChatHistoryService) DeleteSession(httpCtx context.Context, adminID int, sessionID string) error {
	if sessionID == "" {
		return NewValidationError("session_id", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, dbTimeout)
	defer cancel()

	n, err := s.client.ChatHistory.Update().
		Where(
			chathistory.AdminID(adminID),
			chathistory.SessionID(sessionID),
			chathistory.IsDeleted(false),
		).
		SetIsDeleted(true).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteAllSessions soft-deletes every session of the admin and returns
// the number of affected rows.
func (s *ChatHistoryService) DeleteAllSessions(httpCtx context.Context, adminID int) (int, error) {
	ctx, cancel := context.WithTimeout(httpCtx, dbTimeout)
	defer cancel()

	n, err := s.client.ChatHistory.Update().
		Where(
			chathistory.AdminID(adminID),
			chathistory.IsDeleted(false),
		).
		SetIsDeleted(true).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete sessions: %w", err)
	}
	return n, nil
}
