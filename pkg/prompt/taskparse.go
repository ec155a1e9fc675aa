package prompt

import (
	"encoding/json"

	"github.com/edu-cockpit/cockpit/pkg/kb"
)

// TaskParseSystemPrompt drives the task-parse node.
const TaskParseSystemPrompt = `你是教务查询任务解析助手。
请把用户问题解析为结构化任务对象，用于后续 SQL 生成。

硬性要求：
1) 只输出一个 JSON 对象，不要输出 markdown 或解释文字。
2) 字段必须包含：
   - intent: "chat" | "business_query"
   - entities: [{type, value}]
   - dimensions: [string]
   - metrics: [string]
   - filters: [{field, op, value}]
   - time_range: {start, end}
   - operation: "detail" | "aggregate" | "ranking" | "trend"
   - confidence: 0~1
3) filters.field 必须是 table.field 形式。
4) filters.field 必须来自给定知识库字段白名单。
5) 如果问题是闲聊，intent=chat，其他字段尽量置空数组或空值。`

type taskParseUserPayload struct {
	Query            string         `json:"query"`
	KBFieldWhitelist []string       `json:"kb_field_whitelist"`
	AliasHints       []kb.AliasHint `json:"alias_hints"`
	OutputSchema     map[string]any `json:"output_schema"`
}

// BuildTaskParseUserPrompt assembles the task-parse user payload from the
// rewritten query and the knowledge base.
func BuildTaskParseUserPrompt(query string, knowledge *kb.KB) string {
	payload := taskParseUserPayload{
		Query:            query,
		KBFieldWhitelist: knowledge.FieldWhitelist(),
		AliasHints:       knowledge.AliasHints(),
		OutputSchema: map[string]any{
			"intent":     "chat|business_query",
			"entities":   []map[string]string{{"type": "string", "value": "string"}},
			"dimensions": []string{"string"},
			"metrics":    []string{"string"},
			"filters":    []map[string]string{{"field": "table.field", "op": "=", "value": "string|number|boolean"}},
			"time_range": map[string]string{"start": "YYYY-MM-DD|null", "end": "YYYY-MM-DD|null"},
			"operation":  "detail|aggregate|ranking|trend",
			"confidence": "0~1",
		},
	}
	raw, _ := json.Marshal(payload)
	return string(raw)
}
