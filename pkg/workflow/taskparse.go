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

const taskParseTimeout = 25 * time.Second

// runTaskParse turns the rewritten query into a structured task. Filters
// referencing unknown fields or operators are dropped rather than failing
// the request; structural problems are fatal.
func (e *Engine) runTaskParse(ctx context.Context, st *State) error {
	query := st.Intent.RewrittenQuery
	if query == "" {
		query = st.Intent.MergedQuery
	}
	input := map[string]any{"query": query}

	raw, err := e.llm.Complete(ctx, llm.Request{
		System:      prompt.TaskParseSystemPrompt,
		User:        prompt.BuildTaskParseUserPrompt(query, e.kb),
		Model:       e.opts.IntentModel,
		Temperature: 0.1,
		Timeout:     taskParseTimeout,
	})
	if err != nil {
		nodeErr := NewNodeError(KindTaskParseInvalidIntent, "task parse completion failed: %v", err)
		e.record(st, events.StepTaskParse, input, nil, nodeErr, RiskLevelLow)
		return nodeErr
	}

	obj, ok := llm.FirstJSONObject(raw)
	if !ok {
		nodeErr := NewNodeError(KindTaskParseInvalidIntent, "task parse output contains no JSON object")
		e.record(st, events.StepTaskParse, input, raw, nodeErr, RiskLevelLow)
		return nodeErr
	}
	var parsed struct {
		Intent     string               `json:"intent"`
		Entities   []models.TaskEntity  `json:"entities"`
		Dimensions []string             `json:"dimensions"`
		Metrics    []string             `json:"metrics"`
		Filters    []models.TaskFilter  `json:"filters"`
		TimeRange  models.TaskTimeRange `json:"time_range"`
		Operation  string               `json:"operation"`
		Confidence *float64             `json:"confidence"`
	}
	if err := json.Unmarshal([]byte(obj), &parsed); err != nil {
		nodeErr := NewNodeError(KindTaskParseInvalidIntent, "task parse output is not valid JSON: %v", err)
		e.record(st, events.StepTaskParse, input, obj, nodeErr, RiskLevelLow)
		return nodeErr
	}

	if parsed.Confidence == nil {
		nodeErr := NewNodeError(KindTaskParseMissingConfidence, "task parse output lacks confidence")
		e.record(st, events.StepTaskParse, input, parsed, nodeErr, RiskLevelLow)
		return nodeErr
	}

	operation := strings.ToLower(strings.TrimSpace(parsed.Operation))
	if operation == "" {
		operation = models.OperationDetail
	}
	if _, ok := models.AllowedOperations[operation]; !ok {
		nodeErr := NewNodeError(KindTaskParseInvalidOperation, "unsupported operation %q", parsed.Operation)
		e.record(st, events.StepTaskParse, input, parsed, nodeErr, RiskLevelLow)
		return nodeErr
	}

	timeRange, err := normalizeTimeRange(parsed.TimeRange)
	if err != nil {
		nodeErr := NewNodeError(KindTaskParseInvalidTimeRange, "%v", err)
		e.record(st, events.StepTaskParse, input, parsed, nodeErr, RiskLevelLow)
		return nodeErr
	}

	result := &models.TaskParseResult{
		// The node runs only for business queries; the echoed intent is
		// coerced rather than trusted.
		Intent:     models.IntentBusinessQuery,
		Entities:   trimEntities(parsed.Entities),
		Dimensions: trimStrings(parsed.Dimensions),
		Metrics:    trimStrings(parsed.Metrics),
		Filters:    e.normalizeFilters(parsed.Filters),
		TimeRange:  timeRange,
		Operation:  operation,
		Confidence: *parsed.Confidence,
	}

	st.Task = result
	e.record(st, events.StepTaskParse, input, result, nil, RiskLevelLow)
	return nil
}

// normalizeFilters drops filters outside the field whitelist or the
// operator set and canonicalizes field case.
func (e *Engine) normalizeFilters(filters []models.TaskFilter) []models.TaskFilter {
	out := make([]models.TaskFilter, 0, len(filters))
	for _, f := range filters {
		field := strings.TrimSpace(f.Field)
		op := strings.ToLower(strings.TrimSpace(f.Op))
		canonical, ok := e.kb.Canonical(field)
		if !ok {
			continue
		}
		if _, ok := models.AllowedFilterOps[op]; !ok {
			continue
		}
		value := f.Value
		if s, ok := value.(string); ok {
			value = strings.TrimSpace(s)
		}
		out = append(out, models.TaskFilter{Field: canonical, Op: op, Value: value})
	}
	return out
}

func normalizeTimeRange(tr models.TaskTimeRange) (models.TaskTimeRange, error) {
	out := models.TaskTimeRange{}
	parse := func(p *string) (*string, time.Time, error) {
		if p == nil {
			return nil, time.Time{}, nil
		}
		s := strings.TrimSpace(*p)
		if s == "" {
			return nil, time.Time{}, nil
		}
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			return nil, time.Time{}, err
		}
		return &s, t, nil
	}
	start, startT, err := parse(tr.Start)
	if err != nil {
		return out, err
	}
	end, endT, err := parse(tr.End)
	if err != nil {
		return out, err
	}
	if start != nil && end != nil && startT.After(endT) {
		return out, errStartAfterEnd
	}
	out.Start = start
	out.End = end
	return out, nil
}

var errStartAfterEnd = &NodeError{
	Kind:    KindTaskParseInvalidTimeRange,
	Message: "time_range.start is after time_range.end",
}

func trimStrings(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func trimEntities(entities []models.TaskEntity) []models.TaskEntity {
	out := make([]models.TaskEntity, 0, len(entities))
	for _, en := range entities {
		t := strings.TrimSpace(en.Type)
		v := strings.TrimSpace(en.Value)
		if v == "" {
			continue
		}
		out = append(out, models.TaskEntity{Type: t, Value: v})
	}
	return out
}
