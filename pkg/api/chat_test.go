package api

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edu-cockpit/cockpit/pkg/config"
	"github.com/edu-cockpit/cockpit/pkg/models"
)

const (
	chatIntentResponse = `{"intent":"chat","is_followup":false,"confidence":0.95,` +
		`"merged_query":"你好","rewritten_query":"你好"}`
	chatSummaryResponse = `{"summary":"您好！我是教务数据查询助手。"}`
)

func TestChat_SmallTalk(t *testing.T) {
	srv, router := newTestServer(t, nil, chatIntentResponse, chatSummaryResponse)
	token := authToken(t, srv, 7)

	w := doJSON(t, router, http.MethodPost, "/api/chat", token,
		models.ChatRequest{SessionID: "sess-1", Message: "你好"})
	require.Equal(t, http.StatusOK, w.Code)

	env := decodeEnvelope(t, w)
	assert.Equal(t, 0, env.Code)
	assert.Equal(t, "ok", env.Message)

	data := dataMap(t, env)
	assert.Equal(t, "sess-1", data["session_id"])
	assert.Equal(t, models.IntentChat, data["intent"])
	assert.Equal(t, true, data["skipped"])
	assert.Equal(t, models.StatusSuccess, data["final_status"])
	assert.Equal(t, "您好！我是教务数据查询助手。", data["summary"])
}

func TestChat_GeneratesSessionID(t *testing.T) {
	srv, router := newTestServer(t, nil, chatIntentResponse, chatSummaryResponse)
	token := authToken(t, srv, 7)

	w := doJSON(t, router, http.MethodPost, "/api/chat", token,
		models.ChatRequest{Message: "你好"})
	require.Equal(t, http.StatusOK, w.Code)

	data := dataMap(t, decodeEnvelope(t, w))
	sid, ok := data["session_id"].(string)
	require.True(t, ok)
	assert.NotEmpty(t, sid)
}

func TestChat_BadRequests(t *testing.T) {
	srv, router := newTestServer(t, nil, "{}")
	token := authToken(t, srv, 7)

	t.Run("missing message", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/chat", token, map[string]any{"session_id": "s"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("whitespace message", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/chat", token,
			models.ChatRequest{Message: "   "})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/chat", "",
			models.ChatRequest{Message: "你好"})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestIntentEndpoint(t *testing.T) {
	response := `{"intent":"business_query","is_followup":false,"confidence":0.9,` +
		`"merged_query":"统计人数","rewritten_query":"统计人数"}`
	srv, router := newTestServer(t, nil, response)
	token := authToken(t, srv, 7)

	w := doJSON(t, router, http.MethodPost, "/api/chat/intent", token,
		models.ChatRequest{SessionID: "sess-1", Message: "统计人数"})
	require.Equal(t, http.StatusOK, w.Code)

	data := dataMap(t, decodeEnvelope(t, w))
	assert.Equal(t, "sess-1", data["session_id"])

	result, ok := data["intent_result"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, models.IntentBusinessQuery, result["intent"])
	assert.Equal(t, 0.9, result["confidence"])
	assert.Equal(t, 0.6, result["threshold"])
}

func TestChatStream_EmitsOrderedEvents(t *testing.T) {
	srv, router := newTestServer(t, nil, chatIntentResponse, chatSummaryResponse)
	token := authToken(t, srv, 7)

	w := doJSON(t, router, http.MethodPost, "/api/chat/stream", token,
		models.ChatRequest{SessionID: "sess-1", Message: "你好"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/event-stream; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Equal(t, "no", w.Header().Get("X-Accel-Buffering"))

	body := w.Body.String()
	assert.True(t, strings.HasPrefix(body, ": "), "stream should open with the padding prelude")

	names := eventNames(body)
	require.NotEmpty(t, names)
	assert.Equal(t, "workflow_start", names[0])
	assert.Equal(t, "workflow_end", names[len(names)-1])
	assert.Contains(t, names, "step_start")
	assert.Contains(t, names, "step_end")
	assert.NotContains(t, names, "workflow_error")

	// The terminal frame carries the workflow outcome.
	payload := lastEventData(t, body)
	assert.Equal(t, "sess-1", payload["session_id"])
	result, ok := payload["result"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, models.StatusSuccess, result["final_status"])
}

func TestChatStream_ErrorEndsStreamWithWorkflowError(t *testing.T) {
	srv, router := newTestServer(t, nil, "这不是JSON")
	token := authToken(t, srv, 7)

	w := doJSON(t, router, http.MethodPost, "/api/chat/stream", token,
		models.ChatRequest{SessionID: "sess-1", Message: "你好"})
	require.Equal(t, http.StatusOK, w.Code)

	names := eventNames(w.Body.String())
	require.NotEmpty(t, names)
	assert.Equal(t, "workflow_error", names[len(names)-1])
	assert.NotContains(t, names, "workflow_end")

	payload := lastEventData(t, w.Body.String())
	assert.Contains(t, payload["message"], "intent_recognition")
}

func TestChatStream_ConfiguredStepMessages(t *testing.T) {
	srv, router := newTestServer(t, nil, chatIntentResponse, chatSummaryResponse)
	srv.settings.StepMessagePlaceholders = map[string]map[string]string{
		"intent_recognition": {"start": "自定义：正在识别意图"},
	}
	token := authToken(t, srv, 7)

	w := doJSON(t, router, http.MethodPost, "/api/chat/stream", token,
		models.ChatRequest{SessionID: "sess-1", Message: "你好"})
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Contains(t, body, "自定义：正在识别意图")

	// Steps without an override keep the built-in texts.
	assert.Contains(t, body, "意图识别完成。")
	assert.Contains(t, body, "正在整理查询结果…")
}

func TestChatStream_SyncModeReturnsJSON(t *testing.T) {
	srv, router := newTestServer(t, nil, chatIntentResponse, chatSummaryResponse)
	srv.settings.ChatStreamMode = config.StreamModeSync
	token := authToken(t, srv, 7)

	w := doJSON(t, router, http.MethodPost, "/api/chat/stream", token,
		models.ChatRequest{SessionID: "sess-1", Message: "你好"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")

	data := dataMap(t, decodeEnvelope(t, w))
	assert.Equal(t, models.StatusSuccess, data["final_status"])
}

// eventNames extracts the `event:` lines of an SSE body in order.
func eventNames(body string) []string {
	var names []string
	for _, line := range strings.Split(body, "\n") {
		if name, ok := strings.CutPrefix(line, "event: "); ok {
			names = append(names, name)
		}
	}
	return names
}

// lastEventData decodes the data frame of the final event in the body.
func lastEventData(t *testing.T, body string) map[string]any {
	t.Helper()
	var last string
	for _, line := range strings.Split(body, "\n") {
		if data, ok := strings.CutPrefix(line, "data: "); ok {
			last = data
		}
	}
	require.NotEmpty(t, last)
	var payload map[string]any
	require.NoError(t, json.Unmarshal([]byte(last), &payload))
	return payload
}
