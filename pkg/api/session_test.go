package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edu-cockpit/cockpit/pkg/models"
	"github.com/edu-cockpit/cockpit/pkg/services"
)

func TestListSessions(t *testing.T) {
	history := &fakeHistory{
		sessions: []models.SessionPreview{
			{SessionID: "sess-2", Preview: "统计22级各班人…", MessageCount: 4},
			{SessionID: "sess-1", Preview: "你好", MessageCount: 2},
		},
		sessionsTotal: 2,
	}
	srv, router := newTestServer(t, history, "{}")
	token := authToken(t, srv, 7)

	w := doJSON(t, router, http.MethodGet, "/api/chat/sessions", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	data := dataMap(t, decodeEnvelope(t, w))
	assert.Equal(t, float64(2), data["total"])
	assert.Equal(t, float64(0), data["offset"])
	assert.Equal(t, float64(20), data["limit"])

	sessions, ok := data["sessions"].([]any)
	require.True(t, ok)
	require.Len(t, sessions, 2)
	first := sessions[0].(map[string]any)
	assert.Equal(t, "sess-2", first["session_id"])
	assert.Equal(t, "统计22级各班人…", first["preview"])
}

func TestListSessions_PaginationValidation(t *testing.T) {
	srv, router := newTestServer(t, &fakeHistory{}, "{}")
	token := authToken(t, srv, 7)

	for _, path := range []string{
		"/api/chat/sessions?offset=-1",
		"/api/chat/sessions?offset=abc",
		"/api/chat/sessions?limit=0",
		"/api/chat/sessions?limit=101",
	} {
		w := doJSON(t, router, http.MethodGet, path, token, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, path)
	}
}

func TestListSessionMessages(t *testing.T) {
	history := &fakeHistory{
		messages: []models.SessionMessage{
			{ID: 1, Role: "user", Content: "你好"},
			{ID: 2, Role: "assistant", Content: "您好！"},
		},
		messagesTotal: 2,
	}
	srv, router := newTestServer(t, history, "{}")
	token := authToken(t, srv, 7)

	w := doJSON(t, router, http.MethodGet, "/api/chat/sessions/sess-1/messages?limit=50", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	data := dataMap(t, decodeEnvelope(t, w))
	assert.Equal(t, "sess-1", data["session_id"])
	assert.Equal(t, float64(50), data["limit"])

	messages, ok := data["messages"].([]any)
	require.True(t, ok)
	require.Len(t, messages, 2)
	assert.Equal(t, "user", messages[0].(map[string]any)["role"])
}

func TestListSessionMessages_NotFound(t *testing.T) {
	srv, router := newTestServer(t, &fakeHistory{err: services.ErrNotFound}, "{}")
	token := authToken(t, srv, 7)

	w := doJSON(t, router, http.MethodGet, "/api/chat/sessions/missing/messages", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteSession(t *testing.T) {
	history := &fakeHistory{}
	srv, router := newTestServer(t, history, "{}")
	token := authToken(t, srv, 7)

	w := doJSON(t, router, http.MethodDelete, "/api/chat/sessions/sess-1", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	data := dataMap(t, decodeEnvelope(t, w))
	assert.Equal(t, true, data["deleted"])
	assert.Equal(t, []string{"sess-1"}, history.deletedSessions)
}

func TestDeleteSession_NotFound(t *testing.T) {
	srv, router := newTestServer(t, &fakeHistory{err: services.ErrNotFound}, "{}")
	token := authToken(t, srv, 7)

	w := doJSON(t, router, http.MethodDelete, "/api/chat/sessions/missing", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteAllSessions(t *testing.T) {
	history := &fakeHistory{}
	srv, router := newTestServer(t, history, "{}")
	token := authToken(t, srv, 7)

	w := doJSON(t, router, http.MethodDelete, "/api/chat/sessions", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	data := dataMap(t, decodeEnvelope(t, w))
	assert.Equal(t, true, data["deleted"])
	assert.Equal(t, float64(3), data["messages"])
	assert.Equal(t, 1, history.deleteAllCount)
}

func TestServiceErrorMapping(t *testing.T) {
	srv, router := newTestServer(t, &fakeHistory{
		err: services.NewValidationError("limit", "out of range"),
	}, "{}")
	token := authToken(t, srv, 7)

	w := doJSON(t, router, http.MethodGet, "/api/chat/sessions", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
