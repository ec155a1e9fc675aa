package workflow

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edu-cockpit/cockpit/pkg/models"
)

func sqlGenState() *State {
	return &State{
		SessionID: "sess-1",
		Intent:    &models.IntentResult{RewrittenQuery: "统计各班人数"},
		Task: &models.TaskParseResult{
			Intent:    models.IntentBusinessQuery,
			Operation: models.OperationAggregate,
		},
	}
}

func TestRunSQLGeneration_AcceptsCTEWithinWhitelist(t *testing.T) {
	sqlText := "WITH base AS (SELECT class.class_name FROM class WHERE class.is_deleted = 0) " +
		"SELECT base.class_name, COUNT(*) AS student_count FROM base GROUP BY base.class_name"
	completer := &fakeCompleter{responses: []string{
		`{"sql":"` + sqlText + `","entity_mappings":[],"sql_fields":[]}`,
	}}
	engine := newTestEngineNoDB(t, completer, nil)

	st := sqlGenState()
	require.NoError(t, engine.runSQLGeneration(context.Background(), st))

	require.NotNil(t, st.SQL)
	assert.False(t, st.SQL.GenerationFailed)
	assert.Equal(t, sqlText, st.SQL.SQL)
	assert.Equal(t, []string{"class.class_name", "class.is_deleted"}, st.SQL.SQLFields)
	assert.Nil(t, st.Validate)
}

func TestRunSQLGeneration_SoftFailures(t *testing.T) {
	tests := []struct {
		name     string
		response string
		wantKind string
	}{
		{
			name:     "no json",
			response: "抱歉，我无法生成SQL",
			wantKind: KindSQLGenMissingSQL,
		},
		{
			name:     "empty sql",
			response: `{"sql":"","entity_mappings":[],"sql_fields":[]}`,
			wantKind: KindSQLGenMissingSQL,
		},
		{
			name:     "not cte form",
			response: `{"sql":"SELECT class.class_name FROM class","entity_mappings":[],"sql_fields":[]}`,
			wantKind: KindSQLGenNotCTE,
		},
		{
			name:     "no whitelisted fields",
			response: `{"sql":"WITH base AS (SELECT 1) SELECT * FROM base","entity_mappings":[],"sql_fields":[]}`,
			wantKind: KindSQLGenNoFields,
		},
		{
			name:     "non whitelisted field",
			response: `{"sql":"WITH base AS (SELECT class.class_name, class.teacher FROM class) SELECT * FROM base","entity_mappings":[],"sql_fields":[]}`,
			wantKind: KindSQLGenInvalidFields,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := newTestEngineNoDB(t, &fakeCompleter{responses: []string{tt.response}}, nil)
			st := sqlGenState()

			// Generation failures are soft: the node installs a synthetic
			// invalid validate result instead of failing the request.
			require.NoError(t, engine.runSQLGeneration(context.Background(), st))

			require.NotNil(t, st.SQL)
			assert.True(t, st.SQL.GenerationFailed)
			assert.Contains(t, st.SQL.GenerationError, tt.wantKind)
			require.NotNil(t, st.Validate)
			assert.False(t, st.Validate.IsValid)
		})
	}
}

func TestRunSQLGeneration_UncoveredEntityFails(t *testing.T) {
	response := `{"sql":"WITH base AS (SELECT class.class_name FROM class) SELECT * FROM base",
		"entity_mappings":[],"sql_fields":[]}`
	engine := newTestEngineNoDB(t, &fakeCompleter{responses: []string{response}}, nil)

	st := sqlGenState()
	st.Task.Entities = []models.TaskEntity{{Type: "class", Value: "计算机2201班"}}

	require.NoError(t, engine.runSQLGeneration(context.Background(), st))
	assert.True(t, st.SQL.GenerationFailed)
	assert.Contains(t, st.SQL.GenerationError, KindSQLGenEntityUnmapped)
}

func TestApplyFieldReplacements_WholeTokenOnly(t *testing.T) {
	engine := newTestEngineNoDB(t, &fakeCompleter{responses: []string{"{}"}}, nil)
	hidden := &models.HiddenContextResult{
		FieldCandidates: []models.FieldCandidate{
			{Missing: "student.grade", Candidates: []string{"student.enroll_year"}},
		},
	}

	// student.grade_year shares the repaired token as a prefix and must
	// survive the rewrite untouched.
	sqlText := "WITH base AS (SELECT student.grade, student.grade_year FROM student) " +
		"SELECT base.grade_year FROM base"
	got, applied := engine.applyFieldReplacements(sqlText, hidden)

	assert.Contains(t, got, "student.enroll_year,")
	assert.Contains(t, got, "student.grade_year")
	assert.NotContains(t, got, "student.enroll_year_year")

	require.Len(t, applied, 1)
	assert.Equal(t, models.FieldReplacement{
		From: "student.grade",
		To:   "student.enroll_year",
	}, applied[0])
}

func TestPickReplacement(t *testing.T) {
	candidates := []models.FieldCandidate{
		{Missing: "student.grade", Candidates: []string{"class.class_name", "student.enroll_year"}},
		{Missing: "score.stu_id", Candidates: []string{"student.id", "score.student_id"}},
		{Missing: "class.teacher", Candidates: []string{"score.course_name"}},
	}

	t.Run("prefers same table", func(t *testing.T) {
		assert.Equal(t, "student.enroll_year", pickReplacement("student.grade", candidates))
	})

	t.Run("id token avoids bare primary key", func(t *testing.T) {
		assert.Equal(t, "score.student_id", pickReplacement("score.stu_id", candidates))
	})

	t.Run("falls back to first candidate", func(t *testing.T) {
		assert.Equal(t, "score.course_name", pickReplacement("class.teacher", candidates))
	})

	t.Run("unknown token yields nothing", func(t *testing.T) {
		assert.Equal(t, "", pickReplacement("student.unknown", candidates))
	})
}

func TestUncoveredEntity(t *testing.T) {
	entities := []models.TaskEntity{{Type: "class", Value: "计算机2201班"}}
	fields := []string{"class.class_name"}

	t.Run("covered", func(t *testing.T) {
		mappings := []models.EntityMapping{{Value: "计算机2201班", Field: "class.class_name"}}
		assert.Equal(t, "", uncoveredEntity(entities, mappings, fields))
	})

	t.Run("mapping field outside sql", func(t *testing.T) {
		mappings := []models.EntityMapping{{Value: "计算机2201班", Field: "student.class_id"}}
		assert.Equal(t, "计算机2201班", uncoveredEntity(entities, mappings, fields))
	})

	t.Run("no mapping at all", func(t *testing.T) {
		assert.Equal(t, "计算机2201班", uncoveredEntity(entities, nil, fields))
	})
}
