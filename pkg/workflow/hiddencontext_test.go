package workflow

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edu-cockpit/cockpit/pkg/models"
)

func TestClassifyErrorType(t *testing.T) {
	tests := []struct {
		errText string
		want    string
	}{
		{"Unknown column 'student.grade' in 'field list'", models.ErrorTypeUnknownColumn},
		{`ERROR: column "grade" does not exist (SQLSTATE 42703)`, models.ErrorTypeUnknownColumn},
		{`ERROR: relation "students" does not exist`, models.ErrorTypeUnknownTable},
		{"Table 'edu.students' doesn't exist", models.ErrorTypeUnknownTable},
		{"You have an error in your SQL syntax", models.ErrorTypeSyntaxError},
		{"function array_agg2 not found", models.ErrorTypeObjectNotFound},
		{"deadlock detected", models.ErrorTypeExecution},
		{"", models.ErrorTypeExecution},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, classifyErrorType(tt.errText), tt.errText)
	}
}

func TestExtractMissingTokens(t *testing.T) {
	t.Run("quoted mysql token", func(t *testing.T) {
		tokens := extractMissingTokens("Unknown column 'student.grade_year' in 'field list'")
		assert.Equal(t, []string{"student.grade_year"}, tokens)
	})

	t.Run("double quoted postgres token", func(t *testing.T) {
		tokens := extractMissingTokens(`ERROR: column "enroll" does not exist`)
		assert.Equal(t, []string{"enroll"}, tokens)
	})

	t.Run("bare dotted reference", func(t *testing.T) {
		tokens := extractMissingTokens("sql references non-whitelisted fields: student.grade_year, score.points")
		assert.Equal(t, []string{"student.grade_year", "score.points"}, tokens)
	})

	t.Run("non identifier quoted text is skipped", func(t *testing.T) {
		tokens := extractMissingTokens("bad value 'not an identifier'")
		assert.Empty(t, tokens)
	})

	t.Run("empty error", func(t *testing.T) {
		assert.Nil(t, extractMissingTokens(""))
	})
}

func TestMatchValue(t *testing.T) {
	values := []string{"计算机2201班", "计算机2202班", "软件2201班"}

	t.Run("exact", func(t *testing.T) {
		got, strategy := matchValue("计算机2201班", values)
		assert.Equal(t, []string{"计算机2201班"}, got)
		assert.Equal(t, models.MatchExact, strategy)
	})

	t.Run("normalized ignores whitespace", func(t *testing.T) {
		got, strategy := matchValue("计算机 2201 班", values)
		assert.Equal(t, []string{"计算机2201班"}, got)
		assert.Equal(t, models.MatchNormalized, strategy)
	})

	t.Run("fuzzy substring", func(t *testing.T) {
		got, strategy := matchValue("2201", values)
		assert.Equal(t, []string{"计算机2201班", "软件2201班"}, got)
		assert.Equal(t, models.MatchFuzzy, strategy)
	})

	t.Run("fallback top n", func(t *testing.T) {
		many := []string{"a1", "a2", "a3", "a4", "a5", "a6", "a7"}
		got, strategy := matchValue("不存在", many)
		assert.Equal(t, []string{"a1", "a2", "a3", "a4", "a5"}, got)
		assert.Equal(t, models.MatchFallbackProbe, strategy)
	})
}

func TestCandidatesForMissing(t *testing.T) {
	engine := newTestEngineNoDB(t, &fakeCompleter{responses: []string{"{}"}}, nil)

	t.Run("alias match", func(t *testing.T) {
		got := engine.candidatesForMissing("student.grade_year")
		assert.Equal(t, []string{"student.enroll_year"}, got)
	})

	t.Run("suffix match", func(t *testing.T) {
		got := engine.candidatesForMissing("s.class_name")
		assert.Equal(t, []string{"class.class_name"}, got)
	})

	t.Run("falls back to table fields", func(t *testing.T) {
		got := engine.candidatesForMissing("score.points")
		assert.Equal(t, engine.kb.TableFields("score"), got)
	})

	t.Run("nothing matches", func(t *testing.T) {
		assert.Empty(t, engine.candidatesForMissing("nope"))
	})
}

func TestRunHiddenContext_ProbeErrorsAreCapturedPerSample(t *testing.T) {
	engine, mock := newTestEngine(t, &fakeCompleter{responses: []string{"{}"}}, nil)

	probe := "SELECT DISTINCT student.gender AS value FROM student " +
		"WHERE student.gender IS NOT NULL AND student.is_deleted = 0 LIMIT 20"
	mock.ExpectQuery(probe).WillReturnError(assert.AnError)

	st := &State{
		SessionID: "sess-1",
		Intent:    &models.IntentResult{RewrittenQuery: "统计男生人数"},
		Task: &models.TaskParseResult{
			Dimensions: []string{"student.gender"},
		},
		Validate: &models.SQLValidateResult{IsValid: false, Error: "boom", ExecutedSQL: "SELECT 1"},
	}
	require.NoError(t, engine.runHiddenContext(context.Background(), st))

	require.NotNil(t, st.Hidden)
	assert.Equal(t, models.RetryReasonSQLError, st.Hidden.RetryReason)
	assert.Equal(t, 1, st.HiddenContextRetryCount)
	require.Len(t, st.Hidden.ProbeSamples, 1)
	assert.Equal(t, "student.gender", st.Hidden.ProbeSamples[0].Field)
	assert.NotEmpty(t, st.Hidden.ProbeSamples[0].Error)
	assert.Empty(t, st.Hidden.ProbeSamples[0].Values)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunHiddenContext_ZeroMetricReason(t *testing.T) {
	engine, _ := newTestEngine(t, &fakeCompleter{responses: []string{"{}"}}, nil)

	st := &State{
		SessionID: "sess-1",
		Intent:    &models.IntentResult{RewrittenQuery: "统计人数"},
		Validate: &models.SQLValidateResult{
			IsValid:          true,
			ZeroMetricResult: true,
			ExecutedSQL:      "SELECT 1",
		},
	}
	require.NoError(t, engine.runHiddenContext(context.Background(), st))

	assert.Equal(t, models.RetryReasonZeroMetric, st.Hidden.RetryReason)
	assert.Contains(t, st.Hidden.Hints, "retry_sql_generation_with_hidden_context")
}

func TestRunHiddenContext_FieldCandidatesFromErrorText(t *testing.T) {
	engine, mock := newTestEngine(t, &fakeCompleter{responses: []string{"{}"}}, nil)

	probe := "SELECT DISTINCT student.enroll_year AS value FROM student " +
		"WHERE student.enroll_year IS NOT NULL AND student.is_deleted = 0 LIMIT 20"
	mock.ExpectQuery(probe).WillReturnRows(
		sqlmock.NewRows([]string{"value"}).AddRow(2022).AddRow(2023))

	st := &State{
		SessionID: "sess-1",
		Intent:    &models.IntentResult{RewrittenQuery: "统计22级人数"},
		Validate: &models.SQLValidateResult{
			IsValid:     false,
			Error:       "Unknown column 'student.grade_year' in 'field list'",
			ExecutedSQL: "SELECT student.grade_year FROM student",
		},
	}
	require.NoError(t, engine.runHiddenContext(context.Background(), st))

	assert.Equal(t, models.ErrorTypeUnknownColumn, st.Hidden.ErrorType)
	require.Len(t, st.Hidden.FieldCandidates, 1)
	assert.Equal(t, "student.grade_year", st.Hidden.FieldCandidates[0].Missing)
	assert.Equal(t, []string{"student.enroll_year"}, st.Hidden.FieldCandidates[0].Candidates)
	assert.Contains(t, st.Hidden.Hints, "enforce_field_replacements_from_field_candidates")
	assert.Contains(t, st.Hidden.Hints, "missing_tokens=student.grade_year")
	assert.NoError(t, mock.ExpectationsWereMet())
}
