package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/edu-cockpit/cockpit/pkg/config"
	"github.com/edu-cockpit/cockpit/pkg/iolog"
	"github.com/edu-cockpit/cockpit/pkg/kb"
	"github.com/edu-cockpit/cockpit/pkg/llm"
	"github.com/edu-cockpit/cockpit/pkg/models"
	"github.com/edu-cockpit/cockpit/pkg/workflow"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// scriptedCompleter replays canned completions in order, repeating the
// last one when exhausted.
type scriptedCompleter struct {
	mu        sync.Mutex
	responses []string
	next      int
}

func (s *scriptedCompleter) Complete(_ context.Context, _ llm.Request) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.next >= len(s.responses) {
		return s.responses[len(s.responses)-1], nil
	}
	resp := s.responses[s.next]
	s.next++
	return resp, nil
}

// fakeHistory is an in-memory HistoryStore with per-method overrides.
type fakeHistory struct {
	userMessages []string

	sessions      []models.SessionPreview
	sessionsTotal int

	messages      []models.SessionMessage
	messagesTotal int

	deletedSessions []string
	deleteAllCount  int

	err error
}

func (f *fakeHistory) LastUserMessages(_ context.Context, _ int, _ string, _ int) ([]string, error) {
	return f.userMessages, f.err
}

func (f *fakeHistory) ListSessions(_ context.Context, _, _, _ int) ([]models.SessionPreview, int, error) {
	return f.sessions, f.sessionsTotal, f.err
}

func (f *fakeHistory) ListMessages(_ context.Context, _ int, _ string, _, _ int) ([]models.SessionMessage, int, error) {
	return f.messages, f.messagesTotal, f.err
}

func (f *fakeHistory) DeleteSession(_ context.Context, _ int, sessionID string) error {
	if f.err != nil {
		return f.err
	}
	f.deletedSessions = append(f.deletedSessions, sessionID)
	return nil
}

func (f *fakeHistory) DeleteAllSessions(_ context.Context, _ int) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.deleteAllCount++
	return 3, nil
}

func testSettings(t *testing.T) *config.Settings {
	t.Helper()
	return &config.Settings{
		IntentModel:               "intent-model",
		SQLModel:                  "sql-model",
		IntentConfidenceThreshold: 0.6,
		HiddenContextMaxRetries:   2,
		ChatExportDir:             t.TempDir(),
		ChatStreamMode:            config.StreamModeStream,
		JWTSecret:                 "test-secret",
		JWTAlgorithm:              "HS256",
		AccessTokenExpires:        time.Hour,
	}
}

func testServerKB() *kb.KB {
	return kb.New([]kb.Table{{
		Name: "student",
		Columns: []kb.Column{
			{Name: "id"},
			{Name: "real_name", Description: "姓名"},
			{Name: "is_deleted"},
		},
	}})
}

// newTestServer wires a Server around a scripted LLM and a fake history
// store. No database is attached; chat tests stick to the small-talk
// path, which never executes SQL.
func newTestServer(t *testing.T, history HistoryStore, responses ...string) (*Server, *gin.Engine) {
	t.Helper()
	settings := testSettings(t)
	if history == nil {
		history = &fakeHistory{}
	}
	engine := workflow.NewEngine(
		testServerKB(),
		&scriptedCompleter{responses: responses},
		nil,
		iolog.NewWriter(""),
		nil,
		workflow.Options{
			Threshold:   settings.IntentConfidenceThreshold,
			MaxRetry:    settings.HiddenContextMaxRetries,
			IntentModel: settings.IntentModel,
			SQLModel:    settings.SQLModel,
			ExportDir:   settings.ChatExportDir,
		})
	srv := NewServer(settings, nil, engine, history)
	return srv, srv.Router()
}

func authToken(t *testing.T, srv *Server, adminID int) string {
	t.Helper()
	token, err := mintToken(srv.settings.JWTSecret, adminID, time.Hour)
	require.NoError(t, err)
	return token
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func dataMap(t *testing.T, env envelope) map[string]any {
	t.Helper()
	m, ok := env.Data.(map[string]any)
	require.True(t, ok, "envelope data is not an object: %T", env.Data)
	return m
}

var _ HistoryStore = (*fakeHistory)(nil)
