// Package events defines the step/workflow event stream emitted while a
// chat request executes, and its SSE encoding.
package events

// Event names on the SSE channel.
const (
	EventWorkflowStart = "workflow_start"
	EventStepStart     = "step_start"
	EventStepEnd       = "step_end"
	EventWorkflowError = "workflow_error"
	EventWorkflowEnd   = "workflow_end"
)

// Statuses carried in event payloads.
const (
	StatusStart = "start"
	StatusEnd   = "end"
	StatusError = "error"
)

// Workflow step names, in graph order.
const (
	StepIntentRecognition = "intent_recognition"
	StepTaskParse         = "task_parse"
	StepSQLGeneration     = "sql_generation"
	StepSQLValidate       = "sql_validate"
	StepHiddenContext     = "hidden_context"
	StepResultReturn      = "result_return"
	StepWorkflow          = "workflow"
)

// Payload is the data frame of every stream event. Seq is monotonic and
// starts at 1; Result is present only on workflow_end.
type Payload struct {
	SessionID string `json:"session_id"`
	Step      string `json:"step"`
	Status    string `json:"status"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	Seq       int    `json:"seq"`
	Result    any    `json:"result,omitempty"`
}

// Event pairs an SSE event name with its payload.
type Event struct {
	Name    string
	Payload Payload
}

// StepListener receives node lifecycle callbacks from the graph runner.
// status is one of StatusStart, StatusEnd, StatusError.
type StepListener func(step, status string, errMessage string)
