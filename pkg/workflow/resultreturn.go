package workflow

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/edu-cockpit/cockpit/pkg/events"
	"github.com/edu-cockpit/cockpit/pkg/export"
	"github.com/edu-cockpit/cockpit/pkg/llm"
	"github.com/edu-cockpit/cockpit/pkg/models"
	"github.com/edu-cockpit/cockpit/pkg/prompt"
)

const (
	summaryTimeout = 12 * time.Second

	// inlineRowLimit is the largest result rendered directly into the
	// reply; bigger results go to a CSV export.
	inlineRowLimit = 10
)

// detailGrainColumns indicate per-course or per-event grain; their
// presence disables the student de-duplication guard.
var detailGrainColumns = map[string]struct{}{
	"course_code": {}, "course_name": {}, "course_id": {}, "course_class_id": {},
	"score_value": {}, "score_level": {}, "attend_date": {}, "term": {}, "enroll_time": {},
}

// fallbackSummaries are the deterministic replies used when the summary
// model is unavailable.
var fallbackSummaries = map[string]string{
	models.ReasonIntentIsChat:          "您好！我是教务数据查询助手，可以帮您查询学生、班级、课程、成绩、考勤等数据，请描述您想了解的内容。",
	models.ReasonTaskParseMissing:      "抱歉，系统未能解析您的查询任务，请换一种说法再试。",
	models.ReasonSQLValidateMissing:    "抱歉，系统未能执行本次查询，请稍后重试。",
	models.ReasonEmptyResultAfterRetry: "经过多次尝试，仍未查询到符合条件的数据，请确认查询条件是否准确。",
	models.ReasonZeroMetricAfterRetry:  "查询已执行，但统计结果为 0，请确认查询条件是否准确。",
	models.ReasonSQLInvalidAfterRetry:  "抱歉，本次查询多次尝试后仍未成功，请换一种说法或稍后重试。",
}

const defaultSummary = "查询已完成。"

// runResultReturn settles the final status, shapes the reply, and
// persists the whole request atomically. Persistence failure is the only
// fatal outcome here.
func (e *Engine) runResultReturn(ctx context.Context, st *State) error {
	input := map[string]any{
		"intent":      st.Intent,
		"retry_count": st.HiddenContextRetryCount,
	}

	status, reason := finalStatus(st)

	if st.Validate != nil && st.Task != nil {
		applyStudentDedupe(st.Task, st.Validate)
	}

	hints := e.displayHints(st.Validate)

	result := &models.ResultReturnResult{
		FinalStatus:       status,
		ReasonCode:        reason,
		FieldDisplayHints: hints,
	}
	result.Summary = e.summarize(ctx, st, status, reason, hints)

	reply, exportFile, downloadURL, err := e.buildReply(st, result.Summary, status, hints)
	if err != nil {
		// Export failure degrades to a summary-only reply.
		reply = result.Summary
	}
	result.AssistantReply = reply
	result.ExportFile = exportFile
	result.DownloadURL = downloadURL

	st.Result = result
	e.record(st, events.StepResultReturn, input, result, nil, RiskLevelLow)

	if e.recorder != nil {
		outcome := Outcome{
			AdminID:        st.AdminID,
			SessionID:      st.SessionID,
			UserMessage:    st.Message,
			AssistantReply: result.AssistantReply,
			ModelName:      st.ModelName,
			Steps:          st.stepLogs,
		}
		if err := e.recorder.PersistOutcome(ctx, outcome); err != nil {
			return fmt.Errorf("persisting workflow outcome: %w", err)
		}
	}
	return nil
}

// finalStatus applies the outcome truth table.
func finalStatus(st *State) (string, string) {
	if st.Intent != nil && st.Intent.Intent == models.IntentChat {
		return models.StatusSuccess, models.ReasonIntentIsChat
	}
	if st.Task == nil {
		return models.StatusFailed, models.ReasonTaskParseMissing
	}
	if st.Validate == nil {
		return models.StatusFailed, models.ReasonSQLValidateMissing
	}
	v := st.Validate
	switch {
	case v.IsValid && !v.EmptyResult && !v.ZeroMetricResult:
		return models.StatusSuccess, ""
	case v.IsValid && v.EmptyResult:
		return models.StatusPartialSuccess, models.ReasonEmptyResultAfterRetry
	case v.IsValid && v.ZeroMetricResult:
		return models.StatusPartialSuccess, models.ReasonZeroMetricAfterRetry
	default:
		return models.StatusFailed, models.ReasonSQLInvalidAfterRetry
	}
}

// applyStudentDedupe collapses listing results to one row per student
// when the result is at student grain. Rows at course or event grain are
// left alone.
func applyStudentDedupe(task *models.TaskParseResult, v *models.SQLValidateResult) {
	if task.Operation != models.OperationDetail && task.Operation != models.OperationRanking {
		return
	}
	if len(v.Result) == 0 {
		return
	}
	if _, ok := v.Result[0]["student_no"]; !ok {
		return
	}
	for col := range v.Result[0] {
		if _, detail := detailGrainColumns[strings.ToLower(col)]; detail {
			return
		}
	}

	type group struct {
		index   int
		reasons []string
	}
	byStudent := make(map[string]*group)
	deduped := make([]map[string]any, 0, len(v.Result))
	for _, row := range v.Result {
		key := fmt.Sprint(row["student_no"]) + "\x00" + fmt.Sprint(row["real_name"])
		if g, ok := byStudent[key]; ok {
			if reason, ok := row["reason"].(string); ok && reason != "" && !containsFold(g.reasons, reason) {
				g.reasons = append(g.reasons, reason)
			}
			continue
		}
		g := &group{index: len(deduped)}
		if reason, ok := row["reason"].(string); ok && reason != "" {
			g.reasons = append(g.reasons, reason)
		}
		byStudent[key] = g
		deduped = append(deduped, row)
	}
	for _, g := range byStudent {
		if len(g.reasons) > 1 {
			deduped[g.index]["reason"] = strings.Join(g.reasons, "；")
		}
	}

	v.Result = deduped
	v.Rows = len(deduped)
}

func (e *Engine) displayHints(v *models.SQLValidateResult) map[string]string {
	if v == nil || len(v.Result) == 0 {
		return nil
	}
	keys := v.Columns
	if len(keys) == 0 {
		for k := range v.Result[0] {
			keys = append(keys, k)
		}
	}
	return e.kb.DisplayHints(keys)
}

// summarize asks the summary model for one natural-language sentence,
// falling back to the canned text for the reason code.
func (e *Engine) summarize(ctx context.Context, st *State, status, reason string, hints map[string]string) string {
	rewritten := ""
	if st.Intent != nil {
		rewritten = st.Intent.RewrittenQuery
	}
	raw, err := e.llm.Complete(ctx, llm.Request{
		System: prompt.ResultSummarySystemPrompt,
		User: prompt.BuildResultSummaryUserPrompt(
			st.Message, rewritten, status, reason,
			st.Task, st.Validate, st.HiddenContextRetryCount, hints),
		Model:       e.opts.IntentModel,
		Temperature: 0.1,
		Timeout:     summaryTimeout,
	})
	if err == nil {
		if obj, ok := llm.FirstJSONObject(raw); ok {
			var parsed struct {
				Summary string `json:"summary"`
			}
			if json.Unmarshal([]byte(obj), &parsed) == nil && strings.TrimSpace(parsed.Summary) != "" {
				return strings.TrimSpace(parsed.Summary)
			}
		}
	}
	if text, ok := fallbackSummaries[reason]; ok {
		return text
	}
	return defaultSummary
}

// buildReply renders the final assistant text: inline numbered details
// for small successful results, a CSV download for large ones.
func (e *Engine) buildReply(st *State, summary, status string, hints map[string]string) (reply, exportFile, downloadURL string, err error) {
	v := st.Validate
	if status != models.StatusSuccess || v == nil || len(v.Result) == 0 {
		return summary, "", "", nil
	}

	if len(v.Result) <= inlineRowLimit {
		return summary + "\n\n" + renderDetailBlock(v.Result, v.Columns, hints), "", "", nil
	}

	name := export.FileName(st.AdminID, st.SessionID, time.Now())
	if _, err := export.WriteRows(e.opts.ExportDir, name, v.Result, v.Columns); err != nil {
		return "", "", "", err
	}
	downloadURL = e.opts.DownloadBaseURL + name

	var b strings.Builder
	b.WriteString(summary)
	fmt.Fprintf(&b, "\n\n共查询到 %d 条结果，已为您导出完整数据：%s", len(v.Result), downloadURL)
	fmt.Fprintf(&b, "\n以下展示前 %d 条：\n\n", inlineRowLimit)
	b.WriteString(renderDetailBlock(v.Result[:inlineRowLimit], v.Columns, hints))
	return b.String(), name, downloadURL, nil
}

func renderDetailBlock(rows []map[string]any, columns []string, hints map[string]string) string {
	if len(columns) == 0 && len(rows) > 0 {
		for k := range rows[0] {
			columns = append(columns, k)
		}
	}
	var b strings.Builder
	for i, row := range rows {
		fmt.Fprintf(&b, "%d. ", i+1)
		parts := make([]string, 0, len(columns))
		for _, col := range columns {
			v, ok := row[col]
			if !ok || v == nil {
				continue
			}
			label := col
			if hint, ok := hints[col]; ok && hint != "" {
				label = hint
			}
			parts = append(parts, fmt.Sprintf("%s：%v", label, v))
		}
		b.WriteString(strings.Join(parts, "｜"))
		if i < len(rows)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
