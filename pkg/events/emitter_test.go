package events

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmitter_SequencesEvents(t *testing.T) {
	em := NewEmitter("sess-1")
	em.Emit(EventWorkflowStart, StepWorkflow, StatusStart, WorkflowStartMessage, nil)
	em.Emit(EventStepStart, StepIntentRecognition, StatusStart, StepMessage(StepIntentRecognition, StatusStart), nil)
	em.Emit(EventWorkflowEnd, StepWorkflow, StatusEnd, WorkflowEndMessage, map[string]any{"final_status": "success"})
	em.Close()

	var got []Event
	for ev := range em.Events() {
		got = append(got, ev)
	}
	require.Len(t, got, 3)

	assert.Equal(t, EventWorkflowStart, got[0].Name)
	assert.Equal(t, 1, got[0].Payload.Seq)
	assert.Equal(t, "sess-1", got[0].Payload.SessionID)

	assert.Equal(t, 2, got[1].Payload.Seq)
	assert.Equal(t, "正在识别问题意图…", got[1].Payload.Message)

	assert.Equal(t, 3, got[2].Payload.Seq)
	assert.NotNil(t, got[2].Payload.Result)
	assert.NotEmpty(t, got[2].Payload.Timestamp)
}

func TestFormatSSE(t *testing.T) {
	frame := FormatSSE(Event{
		Name: EventStepEnd,
		Payload: Payload{
			SessionID: "sess-1",
			Step:      StepSQLValidate,
			Status:    StatusEnd,
			Message:   "查询执行完成。",
			Seq:       4,
		},
	})

	assert.True(t, strings.HasPrefix(frame, "event: step_end\ndata: "))
	assert.True(t, strings.HasSuffix(frame, "\n\n"))
	assert.Contains(t, frame, `"session_id":"sess-1"`)
	assert.Contains(t, frame, `"seq":4`)

	// Result is omitted when absent.
	assert.NotContains(t, frame, `"result"`)
}

func TestHeartbeatAndPreludeFrames(t *testing.T) {
	assert.Equal(t, ": heartbeat\n\n", HeartbeatFrame())

	prelude := PreludeFrame()
	assert.True(t, strings.HasPrefix(prelude, ": "))
	assert.True(t, strings.HasSuffix(prelude, "\n\n"))
	assert.GreaterOrEqual(t, len(prelude), PreludePaddingChars)
}

func TestStepMessage(t *testing.T) {
	assert.Equal(t, "正在生成查询语句…", StepMessage(StepSQLGeneration, StatusStart))
	assert.Equal(t, "结果整理完成。", StepMessage(StepResultReturn, StatusEnd))

	// Unknown combinations fall back to a stable placeholder.
	assert.Equal(t, "__STEP_NOPE_START__", StepMessage("nope", StatusStart))

	assert.Equal(t, "sql_validate步骤执行异常，系统已终止本次处理。", StepErrorMessage(StepSQLValidate))
}

func TestStepMessageWith(t *testing.T) {
	overrides := map[string]map[string]string{
		StepIntentRecognition: {StatusStart: "自定义：意图识别中"},
		StepSQLValidate:       {StatusEnd: ""},
	}

	assert.Equal(t, "自定义：意图识别中", StepMessageWith(overrides, StepIntentRecognition, StatusStart))

	// Statuses and steps without an override keep the built-in texts;
	// an empty override counts as absent.
	assert.Equal(t, "意图识别完成。", StepMessageWith(overrides, StepIntentRecognition, StatusEnd))
	assert.Equal(t, "正在整理查询结果…", StepMessageWith(overrides, StepResultReturn, StatusStart))
	assert.Equal(t, "查询执行完成。", StepMessageWith(overrides, StepSQLValidate, StatusEnd))

	assert.Equal(t, "正在校验并执行查询…", StepMessageWith(nil, StepSQLValidate, StatusStart))
	assert.Equal(t, "__STEP_NOPE_END__", StepMessageWith(nil, "nope", StatusEnd))
}
