package api

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/edu-cockpit/cockpit/pkg/config"
	"github.com/edu-cockpit/cockpit/pkg/events"
	"github.com/edu-cockpit/cockpit/pkg/models"
	"github.com/edu-cockpit/cockpit/pkg/workflow"
)

// newState validates the request and builds the per-request graph state,
// loading the session's recent user messages.
func (s *Server) newState(ctx context.Context, adminID int, req *models.ChatRequest) (*workflow.State, error) {
	message := strings.TrimSpace(req.Message)
	if message == "" {
		return nil, errEmptyMessage
	}

	sessionID := strings.TrimSpace(req.SessionID)
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	history, err := s.history.LastUserMessages(ctx, adminID, sessionID, historyWindow)
	if err != nil {
		return nil, err
	}

	return &workflow.State{
		AdminID:             adminID,
		SessionID:           sessionID,
		Message:             message,
		HistoryUserMessages: history,
		ModelName:           strings.TrimSpace(req.ModelName),
	}, nil
}

var errEmptyMessage = &emptyMessageError{}

type emptyMessageError struct{}

func (e *emptyMessageError) Error() string { return "message must not be empty" }

// Chat handles POST /api/chat: run the whole workflow synchronously and
// return the outcome.
func (s *Server) Chat(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	s.runSync(c, &req)
}

func (s *Server) runSync(c *gin.Context, req *models.ChatRequest) {
	adminID := currentAdminID(c)

	st, err := s.newState(c.Request.Context(), adminID, req)
	if err != nil {
		if err == errEmptyMessage {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}
		mapServiceError(c, err)
		return
	}

	data, err := s.engine.Run(c.Request.Context(), st, nil)
	if err != nil {
		slog.Error("Workflow failed", "session_id", st.SessionID, "error", err)
		respondError(c, http.StatusInternalServerError, "workflow execution failed")
		return
	}
	respondOK(c, data)
}

// Intent handles POST /api/chat/intent: run only the intent node. Useful
// for UI pre-checks; nothing is persisted.
func (s *Server) Intent(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	st, err := s.newState(c.Request.Context(), currentAdminID(c), &req)
	if err != nil {
		if err == errEmptyMessage {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}
		mapServiceError(c, err)
		return
	}

	result, err := s.engine.IntentOnly(c.Request.Context(), st)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "intent recognition failed")
		return
	}
	respondOK(c, gin.H{"session_id": st.SessionID, "intent_result": result})
}

// ChatStream handles POST /api/chat/stream. In sync mode it degrades to
// the plain JSON response; otherwise a worker goroutine runs the graph
// while the handler relays SSE frames with idle heartbeats.
func (s *Server) ChatStream(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	if s.settings.ChatStreamMode == config.StreamModeSync {
		s.runSync(c, &req)
		return
	}

	adminID := currentAdminID(c)
	st, err := s.newState(c.Request.Context(), adminID, &req)
	if err != nil {
		if err == errEmptyMessage {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}
		mapServiceError(c, err)
		return
	}

	emitter := events.NewEmitter(st.SessionID)

	// The worker outlives a client disconnect: the request must finish
	// and persist even when nobody is left to watch the stream.
	workerCtx := context.WithoutCancel(c.Request.Context())
	go s.runStreamWorker(workerCtx, st, emitter)

	writeSSE(c, emitter)
}

// runStreamWorker executes the graph and feeds the emitter. The stream
// ends with exactly one workflow_end or workflow_error event.
func (s *Server) runStreamWorker(ctx context.Context, st *workflow.State, emitter *events.Emitter) {
	defer emitter.Close()

	emitter.Emit(events.EventWorkflowStart, events.StepWorkflow, events.StatusStart,
		events.WorkflowStartMessage, nil)

	failedStep := ""
	placeholders := s.settings.StepMessagePlaceholders
	listener := func(step, status, errMessage string) {
		switch status {
		case events.StatusStart:
			emitter.Emit(events.EventStepStart, step, status,
				events.StepMessageWith(placeholders, step, status), nil)
		case events.StatusEnd:
			emitter.Emit(events.EventStepEnd, step, status,
				events.StepMessageWith(placeholders, step, status), nil)
		case events.StatusError:
			failedStep = step
		}
	}

	data, err := s.engine.Run(ctx, st, listener)
	if err != nil {
		message := events.WorkflowErrorMessage
		if failedStep != "" {
			message = events.StepErrorMessage(failedStep)
		}
		emitter.Emit(events.EventWorkflowError, events.StepWorkflow, events.StatusError, message, nil)
		return
	}
	emitter.Emit(events.EventWorkflowEnd, events.StepWorkflow, events.StatusEnd,
		events.WorkflowEndMessage, data)
}

// writeSSE relays emitter events as SSE frames until the stream closes,
// interleaving heartbeat comments while idle.
func writeSSE(c *gin.Context, emitter *events.Emitter) {
	h := c.Writer.Header()
	h.Set("Content-Type", "text/event-stream; charset=utf-8")
	h.Set("Cache-Control", "no-cache, no-transform")
	h.Set("Connection", "keep-alive")
	h.Set("X-Accel-Buffering", "no")
	c.Writer.WriteHeader(http.StatusOK)

	// Padding defeats proxy buffering before the first real frame.
	if _, err := io.WriteString(c.Writer, events.PreludeFrame()); err != nil {
		return
	}
	c.Writer.Flush()

	ticker := time.NewTicker(events.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case ev, ok := <-emitter.Events():
			if !ok {
				return
			}
			if _, err := io.WriteString(c.Writer, events.FormatSSE(ev)); err != nil {
				// Client is gone; drain so the worker never blocks.
				go drain(emitter)
				return
			}
			c.Writer.Flush()
		case <-ticker.C:
			if _, err := io.WriteString(c.Writer, events.HeartbeatFrame()); err != nil {
				go drain(emitter)
				return
			}
			c.Writer.Flush()
		}
	}
}

func drain(emitter *events.Emitter) {
	for range emitter.Events() {
	}
}
