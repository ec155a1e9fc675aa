package prompt

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edu-cockpit/cockpit/pkg/kb"
	"github.com/edu-cockpit/cockpit/pkg/models"
)

func promptKB() *kb.KB {
	return kb.New([]kb.Table{
		{
			Name:        "student",
			Description: "学生信息表",
			Aliases:     []string{"学生"},
			Columns: []kb.Column{
				{Name: "student_no", Description: "学号"},
				{Name: "enroll_year", Description: "入学年份（常见问法：22级）", Aliases: []string{"年级"}},
			},
		},
	})
}

// decode re-parses a built user prompt; every builder must emit one
// valid JSON object.
func decode(t *testing.T, raw string) map[string]any {
	t.Helper()
	var payload map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &payload))
	return payload
}

func TestBuildIntentUserPrompt(t *testing.T) {
	history := []string{"h1", "h2", "h3", "h4", "h5", "h6"}
	payload := decode(t, BuildIntentUserPrompt("统计人数", history))

	assert.Equal(t, "统计人数", payload["message"])

	// Only the last four history messages are carried.
	carried, ok := payload["history_user_messages"].([]any)
	require.True(t, ok)
	assert.Equal(t, []any{"h3", "h4", "h5", "h6"}, carried)

	contract := payload["output_contract"].(map[string]any)
	assert.Equal(t, true, contract["json_only"])

	t.Run("nil history serializes as empty array", func(t *testing.T) {
		payload := decode(t, BuildIntentUserPrompt("你好", nil))
		carried, ok := payload["history_user_messages"].([]any)
		require.True(t, ok)
		assert.Empty(t, carried)
	})
}

func TestBuildTaskParseUserPrompt(t *testing.T) {
	payload := decode(t, BuildTaskParseUserPrompt("统计22级人数", promptKB()))

	assert.Equal(t, "统计22级人数", payload["query"])

	whitelist, ok := payload["kb_field_whitelist"].([]any)
	require.True(t, ok)
	assert.Contains(t, whitelist, "student.student_no")
	assert.Contains(t, whitelist, "student.enroll_year")

	schema := payload["output_schema"].(map[string]any)
	assert.Equal(t, "detail|aggregate|ranking|trend", schema["operation"])
}

func TestBuildSQLGenerationUserPrompt(t *testing.T) {
	task := &models.TaskParseResult{
		Intent:    models.IntentBusinessQuery,
		Operation: models.OperationAggregate,
	}

	t.Run("first round has no hidden context", func(t *testing.T) {
		payload := decode(t, BuildSQLGenerationUserPrompt("统计人数", task, promptKB(), nil))
		assert.Equal(t, "统计人数", payload["rewritten_query"])
		assert.Nil(t, payload["hidden_context"])

		hints, ok := payload["kb_schema_hints"].([]any)
		require.True(t, ok)
		require.NotEmpty(t, hints)
		first := hints[0].(map[string]any)
		assert.Equal(t, "student", first["table"])
	})

	t.Run("retry round carries probes", func(t *testing.T) {
		hidden := &models.HiddenContextResult{
			RetryReason: "invalid_field",
			ProbeSamples: []models.ProbeSample{
				{Field: "student.enroll_year", Values: []string{"2022", "2023"}},
			},
		}
		payload := decode(t, BuildSQLGenerationUserPrompt("统计人数", task, promptKB(), hidden))

		ctx, ok := payload["hidden_context"].(map[string]any)
		require.True(t, ok)
		samples := ctx["probe_samples"].([]any)
		require.Len(t, samples, 1)
		assert.Equal(t, "student.enroll_year", samples[0].(map[string]any)["field"])
	})
}

func TestBuildResultSummaryUserPrompt(t *testing.T) {
	validate := &models.SQLValidateResult{
		IsValid:     true,
		Rows:        2,
		ExecutedSQL: "WITH base AS (SELECT 1) SELECT * FROM base",
	}
	raw := BuildResultSummaryUserPrompt(
		"统计22级人数", "统计2022级学生人数",
		models.StatusSuccess, "",
		&models.TaskParseResult{Intent: models.IntentBusinessQuery},
		validate, 0,
		map[string]string{"student.enroll_year": "入学年份"},
	)
	payload := decode(t, raw)

	assert.Equal(t, "统计22级人数", payload["user_query"])
	assert.Equal(t, models.StatusSuccess, payload["final_status"])
	assert.NotContains(t, payload, "reason_code")

	hintsMap := payload["field_display_hints"].(map[string]any)
	assert.Equal(t, "入学年份", hintsMap["student.enroll_year"])

	t.Run("nil hints serialize as empty object", func(t *testing.T) {
		raw := BuildResultSummaryUserPrompt("q", "q", models.StatusFailed,
			models.ReasonSQLInvalidAfterRetry, nil, nil, 2, nil)
		payload := decode(t, raw)
		assert.Equal(t, models.ReasonSQLInvalidAfterRetry, payload["reason_code"])
		_, ok := payload["field_display_hints"].(map[string]any)
		assert.True(t, ok)
	})
}
