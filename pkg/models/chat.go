// Package models contains request/response models and the records the
// workflow nodes produce and exchange.
package models

// Intent labels.
const (
	IntentChat          = "chat"
	IntentBusinessQuery = "business_query"
)

// Operations a parsed task may request.
const (
	OperationDetail    = "detail"
	OperationAggregate = "aggregate"
	OperationRanking   = "ranking"
	OperationTrend     = "trend"
)

// Final workflow statuses.
const (
	StatusSuccess        = "success"
	StatusPartialSuccess = "partial_success"
	StatusFailed         = "failed"
)

// Reason codes attached to the final status.
const (
	ReasonIntentIsChat          = "intent_is_chat"
	ReasonTaskParseMissing      = "task_parse_missing"
	ReasonSQLValidateMissing    = "sql_validate_missing"
	ReasonEmptyResultAfterRetry = "empty_result_after_retry"
	ReasonZeroMetricAfterRetry  = "zero_metric_after_retry"
	ReasonSQLInvalidAfterRetry  = "sql_invalid_after_retry"
)

// Retry reasons for the hidden-context node.
const (
	RetryReasonSQLError   = "sql_error"
	RetryReasonEmpty      = "empty_result"
	RetryReasonZeroMetric = "zero_metric_result"
)

// Error types classified from database error text.
const (
	ErrorTypeUnknownColumn  = "unknown_column"
	ErrorTypeUnknownTable   = "unknown_table"
	ErrorTypeSyntaxError    = "syntax_error"
	ErrorTypeObjectNotFound = "object_not_found"
	ErrorTypeExecution      = "execution_error"
)

// Value-candidate match strategies, strongest first.
const (
	MatchExact         = "exact"
	MatchNormalized    = "normalized"
	MatchFuzzy         = "fuzzy"
	MatchFallbackProbe = "fallback_probe_topn"
)

// ChatRequest is the body of POST /api/chat and /api/chat/stream.
type ChatRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message" binding:"required"`
	ModelName string `json:"model_name"`
}

// IntentResult is the intent-recognition node output.
type IntentResult struct {
	Intent         string  `json:"intent"`
	IsFollowup     bool    `json:"is_followup"`
	Confidence     float64 `json:"confidence"`
	MergedQuery    string  `json:"merged_query"`
	RewrittenQuery string  `json:"rewritten_query"`
	Threshold      float64 `json:"threshold"`
}

// TaskEntity is one extracted entity of a parsed task.
type TaskEntity struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// TaskFilter is one filter condition of a parsed task. Field must be a
// whitelisted table.field; Op must be one of the allowed operators.
type TaskFilter struct {
	Field string `json:"field"`
	Op    string `json:"op"`
	Value any    `json:"value"`
}

// TaskTimeRange bounds a parsed task in time (YYYY-MM-DD, inclusive).
type TaskTimeRange struct {
	Start *string `json:"start"`
	End   *string `json:"end"`
}

// TaskParseResult is the task-parse node output.
type TaskParseResult struct {
	Intent     string        `json:"intent"`
	Entities   []TaskEntity  `json:"entities"`
	Dimensions []string      `json:"dimensions"`
	Metrics    []string      `json:"metrics"`
	Filters    []TaskFilter  `json:"filters"`
	TimeRange  TaskTimeRange `json:"time_range"`
	Operation  string        `json:"operation"`
	Confidence float64       `json:"confidence"`
}

// EntityMapping records how one task entity maps to a whitelisted field.
type EntityMapping struct {
	Type   string `json:"type"`
	Value  string `json:"value"`
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// FieldReplacement records one automatic table.field rewrite applied
// during SQL post-processing.
type FieldReplacement struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// SQLResult is the SQL-generation node output. SQL is empty when
// generation failed; the graph then routes through hidden-context while
// retry budget remains.
type SQLResult struct {
	SQL                      string             `json:"sql"`
	EntityMappings           []EntityMapping    `json:"entity_mappings"`
	SQLFields                []string           `json:"sql_fields"`
	AppliedFieldReplacements []FieldReplacement `json:"applied_field_replacements,omitempty"`
	GenerationFailed         bool               `json:"generation_failed,omitempty"`
	GenerationError          string             `json:"generation_error,omitempty"`
}

// SQLValidateResult is the SQL-validate node output.
type SQLValidateResult struct {
	IsValid          bool             `json:"is_valid"`
	Error            string           `json:"error,omitempty"`
	Rows             int              `json:"rows"`
	Columns          []string         `json:"columns,omitempty"`
	Result           []map[string]any `json:"result"`
	ExecutedSQL      string           `json:"executed_sql"`
	EmptyResult      bool             `json:"empty_result"`
	ZeroMetricResult bool             `json:"zero_metric_result"`
}

// FieldCandidate suggests whitelisted replacements for a missing field.
type FieldCandidate struct {
	Missing    string   `json:"missing"`
	Candidates []string `json:"candidates"`
}

// ProbeSample captures the observed values of one probed field.
type ProbeSample struct {
	Field    string   `json:"field"`
	ProbeSQL string   `json:"probe_sql"`
	Values   []string `json:"values,omitempty"`
	Error    string   `json:"error,omitempty"`
}

// ValueCandidate maps a filter literal to observed candidate values.
type ValueCandidate struct {
	Field         string   `json:"field"`
	OriginalValue string   `json:"original_value"`
	Candidates    []string `json:"candidates"`
	MatchStrategy string   `json:"match_strategy"`
}

// HiddenContextResult is the hidden-context node output, fed back into
// the next SQL-generation round.
type HiddenContextResult struct {
	RetryReason     string           `json:"retry_reason"`
	ErrorType       string           `json:"error_type"`
	Error           string           `json:"error"`
	FailedSQL       string           `json:"failed_sql"`
	RewrittenQuery  string           `json:"rewritten_query"`
	FieldCandidates []FieldCandidate `json:"field_candidates"`
	ProbeSamples    []ProbeSample    `json:"probe_samples"`
	ValueCandidates []ValueCandidate `json:"value_candidates"`
	Hints           []string         `json:"hints"`
	RetryCount      int              `json:"retry_count"`
}

// ResultReturnResult is the result-return node output.
type ResultReturnResult struct {
	FinalStatus       string            `json:"final_status"`
	ReasonCode        string            `json:"reason_code,omitempty"`
	Summary           string            `json:"summary"`
	AssistantReply    string            `json:"assistant_reply"`
	FieldDisplayHints map[string]string `json:"field_display_hints,omitempty"`
	ExportFile        string            `json:"export_file,omitempty"`
	DownloadURL       string            `json:"download_url,omitempty"`
}

// ChatParseData is the workflow outcome returned to the client.
type ChatParseData struct {
	SessionID               string               `json:"session_id"`
	Intent                  string               `json:"intent"`
	IsFollowup              bool                 `json:"is_followup"`
	MergedQuery             string               `json:"merged_query"`
	RewrittenQuery          string               `json:"rewritten_query"`
	Skipped                 bool                 `json:"skipped"`
	Reason                  string               `json:"reason,omitempty"`
	Task                    *TaskParseResult     `json:"task"`
	SQLResult               *SQLResult           `json:"sql_result"`
	SQLValidateResult       *SQLValidateResult   `json:"sql_validate_result"`
	HiddenContextResult     *HiddenContextResult `json:"hidden_context_result"`
	HiddenContextRetryCount int                  `json:"hidden_context_retry_count"`
	FinalStatus             string               `json:"final_status"`
	ReasonCode              string               `json:"reason_code,omitempty"`
	Summary                 string               `json:"summary"`
	AssistantReply          string               `json:"assistant_reply"`
	DownloadURL             string               `json:"download_url,omitempty"`
}

// SessionPreview is one row of GET /api/chat/sessions.
type SessionPreview struct {
	SessionID    string `json:"session_id"`
	Preview      string `json:"preview"`
	MessageCount int    `json:"message_count"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}

// SessionMessage is one row of GET /api/chat/sessions/:id/messages.
type SessionMessage struct {
	ID        int    `json:"id"`
	Role      string `json:"role"`
	Content   string `json:"content"`
	ModelName string `json:"model_name,omitempty"`
	CreatedAt string `json:"created_at"`
}

// AllowedFilterOps is the closed set of filter operators.
var AllowedFilterOps = map[string]struct{}{
	"=": {}, "!=": {}, "<": {}, ">": {}, "<=": {}, ">=": {},
	"like": {}, "in": {}, "not in": {}, "between": {},
}

// AllowedOperations is the closed set of task operations.
var AllowedOperations = map[string]struct{}{
	OperationDetail: {}, OperationAggregate: {}, OperationRanking: {}, OperationTrend: {},
}
