package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edu-cockpit/cockpit/ent"
	"github.com/edu-cockpit/cockpit/ent/chathistory"
	"github.com/edu-cockpit/cockpit/ent/workflowlog"
	"github.com/edu-cockpit/cockpit/pkg/workflow"
	testdb "github.com/edu-cockpit/cockpit/test/database"
)

func TestPersistOutcome(t *testing.T) {
	entClient := testdb.NewTestClient(t).Client
	recorder := NewWorkflowRecorder(entClient)
	ctx := context.Background()

	outcome := workflow.Outcome{
		AdminID:        7,
		SessionID:      "sess-1",
		UserMessage:    "统计各班人数",
		AssistantReply: "共查询到 2 条结果。",
		ModelName:      "qwen-plus",
		Steps: []workflow.StepLog{
			{
				StepName:   "intent_recognition",
				InputJSON:  `{"message":"统计各班人数"}`,
				OutputJSON: `{"intent":"business_query"}`,
				Status:     workflow.StepStatusSuccess,
			},
			{
				StepName:     "sql_validate",
				InputJSON:    `{"sql":"WITH base AS (SELECT 1) SELECT * FROM base"}`,
				Status:       workflow.StepStatusFailed,
				ErrorMessage: "relation does not exist",
				RiskLevel:    workflow.RiskLevelMedium,
			},
		},
	}
	require.NoError(t, recorder.PersistOutcome(ctx, outcome))

	// Chat pair: user row first, assistant row strictly after it.
	rows, err := entClient.ChatHistory.Query().
		Where(chathistory.SessionID("sess-1")).
		Order(ent.Asc(chathistory.FieldCreatedAt), ent.Asc(chathistory.FieldID)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, chathistory.RoleUser, rows[0].Role)
	assert.Equal(t, "统计各班人数", rows[0].Content)
	assert.Empty(t, rows[0].ModelName)

	assert.Equal(t, chathistory.RoleAssistant, rows[1].Role)
	assert.Equal(t, "共查询到 2 条结果。", rows[1].Content)
	assert.Equal(t, "qwen-plus", rows[1].ModelName)
	assert.True(t, rows[1].CreatedAt.After(rows[0].CreatedAt))

	// Step logs land in the same commit.
	logs, err := entClient.WorkflowLog.Query().
		Where(workflowlog.SessionID("sess-1")).
		Order(ent.Asc(workflowlog.FieldID)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, logs, 2)

	assert.Equal(t, "intent_recognition", logs[0].StepName)
	assert.Equal(t, workflowlog.StatusSuccess, logs[0].Status)
	assert.Equal(t, workflow.RiskLevelLow, logs[0].RiskLevel)

	assert.Equal(t, "sql_validate", logs[1].StepName)
	assert.Equal(t, workflowlog.StatusFailed, logs[1].Status)
	assert.Equal(t, "relation does not exist", logs[1].ErrorMessage)
	assert.Equal(t, workflow.RiskLevelMedium, logs[1].RiskLevel)
}

func TestPersistOutcome_Validation(t *testing.T) {
	entClient := testdb.NewTestClient(t).Client
	recorder := NewWorkflowRecorder(entClient)
	ctx := context.Background()

	err := recorder.PersistOutcome(ctx, workflow.Outcome{AdminID: 7})
	assert.True(t, IsValidationError(err))

	err = recorder.PersistOutcome(ctx, workflow.Outcome{SessionID: "sess-1"})
	assert.True(t, IsValidationError(err))

	// Nothing was written.
	n, countErr := entClient.ChatHistory.Query().Count(ctx)
	require.NoError(t, countErr)
	assert.Equal(t, 0, n)
}

func TestPersistFailure(t *testing.T) {
	entClient := testdb.NewTestClient(t).Client
	recorder := NewWorkflowRecorder(entClient)
	ctx := context.Background()

	err := recorder.PersistFailure(ctx, "sess-1", workflow.StepLog{
		StepName:     "intent_recognition",
		InputJSON:    `{"message":"你好"}`,
		Status:       workflow.StepStatusFailed,
		ErrorMessage: "llm_invalid_output: no JSON object in completion",
	})
	require.NoError(t, err)

	row, err := entClient.WorkflowLog.Query().
		Where(workflowlog.SessionID("sess-1")).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "intent_recognition", row.StepName)
	assert.Equal(t, workflowlog.StatusFailed, row.Status)
	assert.Equal(t, "llm_invalid_output: no JSON object in completion", row.ErrorMessage)
	assert.Equal(t, workflow.RiskLevelLow, row.RiskLevel)

	t.Run("validation", func(t *testing.T) {
		err := recorder.PersistFailure(ctx, "", workflow.StepLog{StepName: "intent_recognition"})
		assert.True(t, IsValidationError(err))
	})
}
