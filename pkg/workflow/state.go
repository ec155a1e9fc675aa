package workflow

import (
	"context"

	"github.com/edu-cockpit/cockpit/pkg/models"
)

// State is the mutable per-request graph state. A request's graph runs
// on a single goroutine, so node mutations need no synchronization.
type State struct {
	AdminID             int
	SessionID           string
	Message             string
	HistoryUserMessages []string

	// ModelName is the per-request SQL model override; empty means the
	// configured default.
	ModelName string

	Intent   *models.IntentResult
	Task     *models.TaskParseResult
	SQL      *models.SQLResult
	Validate *models.SQLValidateResult
	Hidden   *models.HiddenContextResult
	Result   *models.ResultReturnResult

	// HiddenContextRetryCount increments when the hidden-context node
	// completes; it bounds the generation/validate retry cycle.
	HiddenContextRetryCount int

	// stepLogs accumulates one entry per node invocation for the final
	// workflow-log persistence.
	stepLogs []StepLog
}

// StepLog is one persisted workflow-log row.
type StepLog struct {
	StepName     string
	InputJSON    string
	OutputJSON   string
	Status       string
	ErrorMessage string
	RiskLevel    string
}

// Step statuses and risk levels for workflow logs.
const (
	StepStatusSuccess = "success"
	StepStatusFailed  = "failed"

	RiskLevelLow    = "low"
	RiskLevelMedium = "medium"
)

// HistoryStore persists the user/assistant message pair and reads
// session history. Implemented by the services layer.
type HistoryStore interface {
	LastUserMessages(ctx context.Context, adminID int, sessionID string, limit int) ([]string, error)
}

// Recorder persists the workflow outcome: the chat-history pair plus all
// step logs in one transaction, and best-effort failure rows when that
// transaction cannot commit.
type Recorder interface {
	PersistOutcome(ctx context.Context, outcome Outcome) error
	PersistFailure(ctx context.Context, sessionID string, step StepLog) error
}

// Outcome is everything the result-return node persists atomically.
type Outcome struct {
	AdminID        int
	SessionID      string
	UserMessage    string
	AssistantReply string
	ModelName      string
	Steps          []StepLog
}
