package workflow

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edu-cockpit/cockpit/pkg/models"
)

func taskParseState() *State {
	return &State{
		SessionID: "sess-1",
		Intent: &models.IntentResult{
			Intent:         models.IntentBusinessQuery,
			RewrittenQuery: "统计22级各班人数",
		},
	}
}

func TestRunTaskParse_NormalizesTask(t *testing.T) {
	response := `{"intent":"business_query",
		"entities":[{"type":"grade","value":" 22级 "},{"type":"noise","value":"  "}],
		"dimensions":["class.class_name","  "],
		"metrics":["人数"],
		"filters":[
			{"field":"Student.Enroll_Year","op":"=","value":2022},
			{"field":"student.nonexistent","op":"=","value":1},
			{"field":"student.gender","op":"regex","value":"男"},
			{"field":"student.real_name","op":"LIKE","value":" 张 "}],
		"time_range":{},
		"operation":"",
		"confidence":0.88}`
	engine := newTestEngineNoDB(t, &fakeCompleter{responses: []string{response}}, nil)

	st := taskParseState()
	require.NoError(t, engine.runTaskParse(context.Background(), st))

	task := st.Task
	require.NotNil(t, task)
	assert.Equal(t, models.IntentBusinessQuery, task.Intent)
	assert.Equal(t, []models.TaskEntity{{Type: "grade", Value: "22级"}}, task.Entities)
	assert.Equal(t, []string{"class.class_name"}, task.Dimensions)

	// Unknown fields and operators are dropped, surviving filters are
	// canonicalized.
	require.Len(t, task.Filters, 2)
	assert.Equal(t, models.TaskFilter{Field: "student.enroll_year", Op: "=", Value: float64(2022)}, task.Filters[0])
	assert.Equal(t, models.TaskFilter{Field: "student.real_name", Op: "like", Value: "张"}, task.Filters[1])

	// Empty operation defaults to detail.
	assert.Equal(t, models.OperationDetail, task.Operation)
	assert.Equal(t, 0.88, task.Confidence)
}

func TestRunTaskParse_ValidTimeRange(t *testing.T) {
	response := `{"intent":"business_query","entities":[],"dimensions":[],"metrics":[],
		"filters":[],"time_range":{"start":"2026-03-01","end":"2026-03-31"},
		"operation":"aggregate","confidence":0.9}`
	engine := newTestEngineNoDB(t, &fakeCompleter{responses: []string{response}}, nil)

	st := taskParseState()
	require.NoError(t, engine.runTaskParse(context.Background(), st))

	require.NotNil(t, st.Task.TimeRange.Start)
	require.NotNil(t, st.Task.TimeRange.End)
	assert.Equal(t, "2026-03-01", *st.Task.TimeRange.Start)
	assert.Equal(t, "2026-03-31", *st.Task.TimeRange.End)
}

func TestRunTaskParse_Failures(t *testing.T) {
	tests := []struct {
		name     string
		response string
		wantKind string
	}{
		{
			name: "missing confidence",
			response: `{"intent":"business_query","entities":[],"dimensions":[],"metrics":[],
				"filters":[],"time_range":{},"operation":"detail"}`,
			wantKind: KindTaskParseMissingConfidence,
		},
		{
			name: "unsupported operation",
			response: `{"intent":"business_query","entities":[],"dimensions":[],"metrics":[],
				"filters":[],"time_range":{},"operation":"export","confidence":0.9}`,
			wantKind: KindTaskParseInvalidOperation,
		},
		{
			name: "malformed date",
			response: `{"intent":"business_query","entities":[],"dimensions":[],"metrics":[],
				"filters":[],"time_range":{"start":"03/01/2026"},"operation":"detail","confidence":0.9}`,
			wantKind: KindTaskParseInvalidTimeRange,
		},
		{
			name: "start after end",
			response: `{"intent":"business_query","entities":[],"dimensions":[],"metrics":[],
				"filters":[],"time_range":{"start":"2026-04-01","end":"2026-03-01"},"operation":"detail","confidence":0.9}`,
			wantKind: KindTaskParseInvalidTimeRange,
		},
		{
			name:     "no json object",
			response: "解析失败",
			wantKind: KindTaskParseInvalidIntent,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := newTestEngineNoDB(t, &fakeCompleter{responses: []string{tt.response}}, nil)
			st := taskParseState()

			err := engine.runTaskParse(context.Background(), st)
			require.Error(t, err)

			var nodeErr *NodeError
			require.ErrorAs(t, err, &nodeErr)
			assert.Equal(t, tt.wantKind, nodeErr.Kind)
			assert.Nil(t, st.Task)
		})
	}
}
