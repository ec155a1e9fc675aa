package workflow

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edu-cockpit/cockpit/pkg/models"
)

func TestIntentOnly_BusinessQuery(t *testing.T) {
	response := `{"intent":"business_query","is_followup":true,"confidence":0.85,
		"merged_query":"那22级的呢？统计22级各班人数","rewritten_query":"统计22级各班人数"}`
	completer := &fakeCompleter{responses: []string{response}}
	engine := newTestEngineNoDB(t, completer, nil)

	st := &State{
		SessionID:           "sess-1",
		Message:             "那22级的呢？",
		HistoryUserMessages: []string{"统计21级各班人数"},
	}
	result, err := engine.IntentOnly(context.Background(), st)
	require.NoError(t, err)

	assert.Equal(t, models.IntentBusinessQuery, result.Intent)
	assert.True(t, result.IsFollowup)
	assert.Equal(t, 0.85, result.Confidence)
	assert.Equal(t, 0.6, result.Threshold)
	assert.Equal(t, "统计22级各班人数", result.RewrittenQuery)

	// The request carried the configured intent model.
	require.Len(t, completer.requests, 1)
	assert.Equal(t, "intent-model", completer.requests[0].Model)
}

func TestIntentOnly_Failures(t *testing.T) {
	tests := []struct {
		name     string
		response string
		wantKind string
	}{
		{
			name:     "unexpected intent label",
			response: `{"intent":"greeting","is_followup":false,"confidence":0.9}`,
			wantKind: KindIntentInvalid,
		},
		{
			name:     "missing confidence",
			response: `{"intent":"chat","is_followup":false}`,
			wantKind: KindIntentMissingField,
		},
		{
			name:     "confidence out of range",
			response: `{"intent":"chat","is_followup":false,"confidence":1.5}`,
			wantKind: KindIntentMissingField,
		},
		{
			name:     "empty merged and rewritten query",
			response: `{"intent":"business_query","is_followup":false,"confidence":0.9,"merged_query":"","rewritten_query":""}`,
			wantKind: KindIntentMissingField,
		},
		{
			name:     "whitespace rewritten query",
			response: `{"intent":"chat","is_followup":false,"confidence":0.9,"merged_query":"你好","rewritten_query":"   "}`,
			wantKind: KindIntentMissingField,
		},
		{
			name:     "no json object",
			response: "你好！",
			wantKind: KindIntentInvalid,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := newTestEngineNoDB(t, &fakeCompleter{responses: []string{tt.response}}, nil)
			st := &State{SessionID: "sess-1", Message: "测试"}

			_, err := engine.IntentOnly(context.Background(), st)
			require.Error(t, err)

			var nodeErr *NodeError
			require.ErrorAs(t, err, &nodeErr)
			assert.Equal(t, tt.wantKind, nodeErr.Kind)
		})
	}
}
