package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/edu-cockpit/cockpit/ent"
	"github.com/edu-cockpit/cockpit/ent/chathistory"
	"github.com/edu-cockpit/cockpit/ent/workflowlog"
	"github.com/edu-cockpit/cockpit/pkg/workflow"
)

// outcomeTimeout bounds the final-commit transaction. It is wider than
// dbTimeout because one request may carry up to eight step rows.
const outcomeTimeout = 10 * time.Second

// WorkflowRecorder persists finished workflows: the user+assistant chat
// pair and all per-step workflow logs in one transaction. Implements the
// workflow Recorder port.
type WorkflowRecorder struct {
	client *ent.Client
}

// NewWorkflowRecorder creates a WorkflowRecorder.
func NewWorkflowRecorder(client *ent.Client) *WorkflowRecorder {
	return &WorkflowRecorder{client: client}
}

// PersistOutcome writes the chat pair and step logs atomically. On commit
// failure the transaction is rolled back and the step logs are re-written
// best-effort in fresh transactions so the failure stays diagnosable.
func (r *WorkflowRecorder) PersistOutcome(httpCtx context.Context, outcome workflow.Outcome) error {
	if outcome.SessionID == "" {
		return NewValidationError("session_id", "required")
	}
	if outcome.AdminID <= 0 {
		return NewValidationError("admin_id", "must be positive")
	}

	ctx, cancel := context.WithTimeout(httpCtx, outcomeTimeout)
	defer cancel()

	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to open transaction: %w", err)
	}

	if err := r.writeOutcome(ctx, tx, outcome); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			slog.Error("Rollback failed after outcome write error",
				"session_id", outcome.SessionID, "error", rbErr)
		}
		r.bestEffortFailureLogs(outcome)
		return err
	}

	if err := tx.Commit(); err != nil {
		r.bestEffortFailureLogs(outcome)
		return fmt.Errorf("failed to commit workflow outcome: %w", err)
	}
	return nil
}

func (r *WorkflowRecorder) writeOutcome(ctx context.Context, tx *ent.Tx, outcome workflow.Outcome) error {
	now := time.Now()

	_, err := tx.ChatHistory.Create().
		SetAdminID(outcome.AdminID).
		SetSessionID(outcome.SessionID).
		SetRole(chathistory.RoleUser).
		SetContent(outcome.UserMessage).
		SetCreatedAt(now).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to write user message: %w", err)
	}

	_, err = tx.ChatHistory.Create().
		SetAdminID(outcome.AdminID).
		SetSessionID(outcome.SessionID).
		SetRole(chathistory.RoleAssistant).
		SetContent(outcome.AssistantReply).
		SetModelName(outcome.ModelName).
		SetCreatedAt(now.Add(time.Millisecond)).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to write assistant message: %w", err)
	}

	for _, step := range outcome.Steps {
		if _, err := createStepLog(ctx, tx.WorkflowLog.Create(), outcome.SessionID, step); err != nil {
			return fmt.Errorf("failed to write workflow log for step %s: %w", step.StepName, err)
		}
	}
	return nil
}

// PersistFailure writes one failed-step row in its own transaction. Used
// when a node error aborts the request before the outcome commit.
func (r *WorkflowRecorder) PersistFailure(httpCtx context.Context, sessionID string, step workflow.StepLog) error {
	if sessionID == "" {
		return NewValidationError("session_id", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, dbTimeout)
	defer cancel()

	if _, err := createStepLog(ctx, r.client.WorkflowLog.Create(), sessionID, step); err != nil {
		return fmt.Errorf("failed to write failure log: %w", err)
	}
	return nil
}

// bestEffortFailureLogs re-writes the step rows outside the failed
// transaction so a broken commit still leaves a trace. Uses a fresh
// context: the request context may already be dead.
func (r *WorkflowRecorder) bestEffortFailureLogs(outcome workflow.Outcome) {
	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()

	for _, step := range outcome.Steps {
		if _, err := createStepLog(ctx, r.client.WorkflowLog.Create(), outcome.SessionID, step); err != nil {
			slog.Warn("Best-effort workflow log write failed",
				"session_id", outcome.SessionID, "step", step.StepName, "error", err)
			return
		}
	}
}

func createStepLog(ctx context.Context, builder *ent.WorkflowLogCreate, sessionID string, step workflow.StepLog) (*ent.WorkflowLog, error) {
	risk := step.RiskLevel
	if risk == "" {
		risk = workflow.RiskLevelLow
	}
	return builder.
		SetSessionID(sessionID).
		SetStepName(step.StepName).
		SetInputJSON(step.InputJSON).
		SetOutputJSON(step.OutputJSON).
		SetStatus(workflowlog.Status(step.Status)).
		SetErrorMessage(step.ErrorMessage).
		SetRiskLevel(risk).
		Save(ctx)
}
