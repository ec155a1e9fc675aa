package workflow

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/edu-cockpit/cockpit/pkg/events"
	"github.com/edu-cockpit/cockpit/pkg/llm"
	"github.com/edu-cockpit/cockpit/pkg/models"
	"github.com/edu-cockpit/cockpit/pkg/prompt"
)

const intentTimeout = 20 * time.Second

// IntentOnly runs just the intent-recognition node. Nothing beyond the
// node IO artifact is persisted.
func (e *Engine) IntentOnly(ctx context.Context, st *State) (*models.IntentResult, error) {
	if err := e.runIntent(ctx, st); err != nil {
		return nil, err
	}
	return st.Intent, nil
}

// runIntent classifies the message as small talk or a business query and
// rewrites follow-ups into self-contained questions.
func (e *Engine) runIntent(ctx context.Context, st *State) error {
	input := map[string]any{
		"message":               st.Message,
		"history_user_messages": st.HistoryUserMessages,
		"threshold":             e.opts.Threshold,
	}

	raw, err := e.llm.Complete(ctx, llm.Request{
		System:      prompt.IntentSystemPrompt,
		User:        prompt.BuildIntentUserPrompt(st.Message, st.HistoryUserMessages),
		Model:       e.opts.IntentModel,
		Temperature: 0.1,
		Timeout:     intentTimeout,
	})
	if err != nil {
		nodeErr := NewNodeError(KindIntentInvalid, "intent completion failed: %v", err)
		e.record(st, events.StepIntentRecognition, input, nil, nodeErr, RiskLevelLow)
		return nodeErr
	}

	var parsed struct {
		Intent         string   `json:"intent"`
		IsFollowup     bool     `json:"is_followup"`
		Confidence     *float64 `json:"confidence"`
		MergedQuery    string   `json:"merged_query"`
		RewrittenQuery string   `json:"rewritten_query"`
	}
	obj, ok := llm.FirstJSONObject(raw)
	if !ok {
		nodeErr := NewNodeError(KindIntentInvalid, "intent output contains no JSON object")
		e.record(st, events.StepIntentRecognition, input, raw, nodeErr, RiskLevelLow)
		return nodeErr
	}
	if err := json.Unmarshal([]byte(obj), &parsed); err != nil {
		nodeErr := NewNodeError(KindIntentInvalid, "intent output is not valid JSON: %v", err)
		e.record(st, events.StepIntentRecognition, input, obj, nodeErr, RiskLevelLow)
		return nodeErr
	}

	if parsed.Intent != models.IntentChat && parsed.Intent != models.IntentBusinessQuery {
		nodeErr := NewNodeError(KindIntentInvalid, "unexpected intent %q", parsed.Intent)
		e.record(st, events.StepIntentRecognition, input, parsed, nodeErr, RiskLevelLow)
		return nodeErr
	}
	if parsed.Confidence == nil || *parsed.Confidence < 0 || *parsed.Confidence > 1 {
		nodeErr := NewNodeError(KindIntentMissingField, "confidence missing or out of [0,1]")
		e.record(st, events.StepIntentRecognition, input, parsed, nodeErr, RiskLevelLow)
		return nodeErr
	}
	parsed.MergedQuery = strings.TrimSpace(parsed.MergedQuery)
	parsed.RewrittenQuery = strings.TrimSpace(parsed.RewrittenQuery)
	if parsed.MergedQuery == "" || parsed.RewrittenQuery == "" {
		nodeErr := NewNodeError(KindIntentMissingField, "merged_query and rewritten_query must be non-empty")
		e.record(st, events.StepIntentRecognition, input, parsed, nodeErr, RiskLevelLow)
		return nodeErr
	}

	result := &models.IntentResult{
		Intent:         parsed.Intent,
		IsFollowup:     parsed.IsFollowup,
		Confidence:     *parsed.Confidence,
		MergedQuery:    parsed.MergedQuery,
		RewrittenQuery: parsed.RewrittenQuery,
		Threshold:      e.opts.Threshold,
	}

	// A low-confidence business classification is treated as small talk
	// rather than risking a wrong query.
	if result.Intent == models.IntentBusinessQuery && result.Confidence < e.opts.Threshold {
		result.Intent = models.IntentChat
	}

	st.Intent = result
	e.record(st, events.StepIntentRecognition, input, result, nil, RiskLevelLow)
	return nil
}
