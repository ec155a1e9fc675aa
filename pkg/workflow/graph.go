package workflow

import (
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"

	"github.com/edu-cockpit/cockpit/pkg/events"
	"github.com/edu-cockpit/cockpit/pkg/iolog"
	"github.com/edu-cockpit/cockpit/pkg/kb"
	"github.com/edu-cockpit/cockpit/pkg/llm"
	"github.com/edu-cockpit/cockpit/pkg/models"
)

// Options tunes one Engine. MaxRetry is the hidden-context cycle budget
// per request; zero disables hidden-context entirely.
type Options struct {
	Threshold       float64
	MaxRetry        int
	IntentModel     string
	SQLModel        string
	ExportDir       string
	DownloadBaseURL string
}

// Engine executes the chat workflow graph. One Engine is shared across
// requests; all per-request data lives in State.
type Engine struct {
	kb       *kb.KB
	llm      llm.Completer
	db       *sql.DB
	iolog    *iolog.Writer
	recorder Recorder
	opts     Options
}

// NewEngine wires an Engine.
func NewEngine(knowledge *kb.KB, completer llm.Completer, db *sql.DB, logWriter *iolog.Writer, recorder Recorder, opts Options) *Engine {
	if opts.MaxRetry < 0 {
		opts.MaxRetry = 0
	}
	if opts.DownloadBaseURL == "" {
		opts.DownloadBaseURL = "/api/chat/downloads/"
	}
	return &Engine{
		kb:       knowledge,
		llm:      completer,
		db:       db,
		iolog:    logWriter,
		recorder: recorder,
		opts:     opts,
	}
}

// Run executes the graph for one request. The returned error is fatal
// for the request; soft SQL failures are routed through hidden-context
// internally and surface only in the final status.
func (e *Engine) Run(ctx context.Context, st *State, listener events.StepListener) (*models.ChatParseData, error) {
	node := events.StepIntentRecognition
	for node != "" {
		notify(listener, node, events.StatusStart, "")
		if err := e.executeNode(ctx, node, st); err != nil {
			slog.Error("Workflow node failed",
				"session_id", st.SessionID, "node", node, "error", err)
			notify(listener, node, events.StatusError, err.Error())
			e.persistFailureLogs(ctx, st)
			return nil, err
		}
		notify(listener, node, events.StatusEnd, "")
		if node == events.StepResultReturn {
			break
		}
		node = e.nextNode(node, st)
	}
	return buildOutcome(st), nil
}

func (e *Engine) executeNode(ctx context.Context, node string, st *State) error {
	switch node {
	case events.StepIntentRecognition:
		return e.runIntent(ctx, st)
	case events.StepTaskParse:
		return e.runTaskParse(ctx, st)
	case events.StepSQLGeneration:
		return e.runSQLGeneration(ctx, st)
	case events.StepSQLValidate:
		return e.runSQLValidate(ctx, st)
	case events.StepHiddenContext:
		return e.runHiddenContext(ctx, st)
	case events.StepResultReturn:
		return e.runResultReturn(ctx, st)
	}
	return NewNodeError(KindHiddenContextFailed, "unknown graph node %q", node)
}

// nextNode is the conditional-edge table.
func (e *Engine) nextNode(current string, st *State) string {
	switch current {
	case events.StepIntentRecognition:
		if st.Intent != nil && st.Intent.Intent == "business_query" {
			return events.StepTaskParse
		}
		return events.StepResultReturn

	case events.StepTaskParse:
		return events.StepSQLGeneration

	case events.StepSQLGeneration:
		if st.SQL != nil && !st.SQL.GenerationFailed {
			return events.StepSQLValidate
		}
		if st.HiddenContextRetryCount < e.opts.MaxRetry {
			return events.StepHiddenContext
		}
		return events.StepResultReturn

	case events.StepSQLValidate:
		v := st.Validate
		needsRetry := v == nil || !v.IsValid || v.EmptyResult || v.ZeroMetricResult
		if needsRetry && st.HiddenContextRetryCount < e.opts.MaxRetry {
			return events.StepHiddenContext
		}
		return events.StepResultReturn

	case events.StepHiddenContext:
		// The node increments the counter; over-budget goes straight to
		// result-return.
		if st.HiddenContextRetryCount > e.opts.MaxRetry {
			return events.StepResultReturn
		}
		return events.StepSQLGeneration
	}
	return events.StepResultReturn
}

// record writes the node IO artifact and appends the workflow step log.
func (e *Engine) record(st *State, step string, input, output any, nodeErr error, risk string) {
	status := StepStatusSuccess
	errMsg := ""
	if nodeErr != nil {
		status = StepStatusFailed
		errMsg = nodeErr.Error()
	}
	e.iolog.Write(st.SessionID, step, input, output, status, errMsg)

	st.stepLogs = append(st.stepLogs, StepLog{
		StepName:     step,
		InputJSON:    marshalOrEmpty(input),
		OutputJSON:   marshalOrEmpty(output),
		Status:       status,
		ErrorMessage: errMsg,
		RiskLevel:    risk,
	})
}

func (e *Engine) persistFailureLogs(ctx context.Context, st *State) {
	if e.recorder == nil || len(st.stepLogs) == 0 {
		return
	}
	for _, step := range st.stepLogs {
		if err := e.recorder.PersistFailure(ctx, st.SessionID, step); err != nil {
			slog.Warn("Best-effort failure log write failed",
				"session_id", st.SessionID, "step", step.StepName, "error", err)
			return
		}
	}
}

// buildOutcome assembles the client-facing view of the finished state.
func buildOutcome(st *State) *models.ChatParseData {
	data := &models.ChatParseData{
		SessionID:               st.SessionID,
		Task:                    st.Task,
		SQLResult:               st.SQL,
		SQLValidateResult:       st.Validate,
		HiddenContextResult:     st.Hidden,
		HiddenContextRetryCount: st.HiddenContextRetryCount,
	}
	if st.Intent != nil {
		data.Intent = st.Intent.Intent
		data.IsFollowup = st.Intent.IsFollowup
		data.MergedQuery = st.Intent.MergedQuery
		data.RewrittenQuery = st.Intent.RewrittenQuery
		if st.Intent.Intent == models.IntentChat {
			data.Skipped = true
			data.Reason = models.ReasonIntentIsChat
		}
	}
	if st.Result != nil {
		data.FinalStatus = st.Result.FinalStatus
		data.ReasonCode = st.Result.ReasonCode
		data.Summary = st.Result.Summary
		data.AssistantReply = st.Result.AssistantReply
		data.DownloadURL = st.Result.DownloadURL
	}
	return data
}

func marshalOrEmpty(v any) string {
	if v == nil {
		return ""
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(raw)
}

func notify(listener events.StepListener, step, status, errMsg string) {
	if listener != nil {
		listener(step, status, errMsg)
	}
}
