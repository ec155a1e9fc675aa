// Package workflow implements the conversational query graph: six nodes
// with conditional routing and a bounded hidden-context retry cycle.
package workflow

import "fmt"

// Node error kinds. SQL-generation and validate kinds are retryable via
// hidden-context; the rest fail the request.
const (
	KindIntentInvalid      = "intent_invalid"
	KindIntentMissingField = "intent_missing_field"

	KindTaskParseInvalidIntent     = "task_parse_invalid_intent"
	KindTaskParseInvalidOperation  = "task_parse_invalid_operation"
	KindTaskParseInvalidTimeRange  = "task_parse_invalid_time_range"
	KindTaskParseMissingConfidence = "task_parse_missing_confidence"

	KindSQLGenMissingSQL      = "sql_generation_missing_sql"
	KindSQLGenNotCTE          = "sql_generation_not_cte"
	KindSQLGenNoFields        = "sql_generation_no_fields"
	KindSQLGenInvalidFields   = "sql_generation_invalid_fields"
	KindSQLGenEntityUnmapped  = "sql_generation_entity_unmapped"
	KindSQLGenCompletionError = "sql_generation_completion_error"

	KindSQLValidateMissingSQL        = "sql_validate_missing_sql"
	KindSQLValidateReadonlyViolation = "sql_validate_readonly_violation"

	KindHiddenContextFailed = "hidden_context_failed"
)

// NodeError tags a node failure with its taxonomy kind so the runner can
// decide between failing the request and routing to hidden-context.
type NodeError struct {
	Kind    string
	Message string
}

func (e *NodeError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// NewNodeError creates a NodeError.
func NewNodeError(kind, format string, args ...any) *NodeError {
	return &NodeError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}
