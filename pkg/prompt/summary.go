package prompt

import (
	"encoding/json"

	"github.com/edu-cockpit/cockpit/pkg/models"
)

// ResultSummarySystemPrompt drives the final summary call.
const ResultSummarySystemPrompt = `你是教务查询结果总结助手。
请根据输入的用户问题与查询结果，生成简洁、准确、可直接展示给用户的总结。

硬约束：
1) 只输出一个 JSON 对象，不要输出 markdown、解释或多余文本。
2) JSON 必须包含字段：
   - summary: string
3) summary 使用中文，不超过120字。
4) 若 final_status=success，summary 要直接回答问题。
5) 若 final_status=partial_success 或 failed，summary 要说明当前结果与 reason_code 的含义，并给出简短建议。
6) 不要虚构不存在的数据，只基于输入结果描述。
7) 若输入包含 field_display_hints，summary 引用字段时优先使用其中的中文展示名，不要直接输出 table.field 或 snake_case 技术字段名。`

type resultSummaryUserPayload struct {
	UserQuery               string                    `json:"user_query"`
	RewrittenQuery          string                    `json:"rewritten_query"`
	FinalStatus             string                    `json:"final_status"`
	ReasonCode              string                    `json:"reason_code,omitempty"`
	Task                    *models.TaskParseResult   `json:"task"`
	SQLValidateResult       *models.SQLValidateResult `json:"sql_validate_result"`
	HiddenContextRetryCount int                       `json:"hidden_context_retry_count"`
	FieldDisplayHints       map[string]string         `json:"field_display_hints"`
	OutputSchema            map[string]string         `json:"output_schema"`
}

// BuildResultSummaryUserPrompt assembles the summary user payload. The
// validate result carries the post-dedupe row view.
func BuildResultSummaryUserPrompt(
	userQuery string,
	rewrittenQuery string,
	finalStatus string,
	reasonCode string,
	task *models.TaskParseResult,
	validate *models.SQLValidateResult,
	retryCount int,
	fieldDisplayHints map[string]string,
) string {
	if fieldDisplayHints == nil {
		fieldDisplayHints = map[string]string{}
	}
	payload := resultSummaryUserPayload{
		UserQuery:               userQuery,
		RewrittenQuery:          rewrittenQuery,
		FinalStatus:             finalStatus,
		ReasonCode:              reasonCode,
		Task:                    task,
		SQLValidateResult:       validate,
		HiddenContextRetryCount: retryCount,
		FieldDisplayHints:       fieldDisplayHints,
		OutputSchema:            map[string]string{"summary": "string"},
	}
	raw, _ := json.Marshal(payload)
	return string(raw)
}
