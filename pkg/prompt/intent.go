// Package prompt builds the (system, user) prompt pairs for each
// LLM-backed workflow node. User prompts are compact JSON payloads; the
// system prompts pin the output contract to a single JSON object.
package prompt

import "encoding/json"

// IntentSystemPrompt drives the intent-recognition node.
const IntentSystemPrompt = `你是教务系统的意图识别助手。
你的任务是判断用户当前问题的意图，并识别是否为追问。

你只能使用：
1) 当前用户问题
2) 历史中最近 4 条 user 消息

字段定义：
- intent：只能是 "chat" 或 "business_query"
- is_followup：当前问题是否依赖历史上下文
- confidence：置信度，范围 [0, 1]
- merged_query：将上下文补全后的独立问题
- rewritten_query：对 merged_query 的业务化改写，可直接用于任务解析

输出要求（严格）：
1) 只返回一个 JSON 对象。
2) 不要输出 markdown、代码块、解释说明或任何额外文本。
3) 不要新增未定义字段。
4) 字段及约束：
   - intent: "chat" 或 "business_query"
   - is_followup: 布尔值
   - confidence: 0 到 1 的数字
   - merged_query: 非空字符串
   - rewritten_query: 非空字符串
5) 如果 is_followup=false，merged_query 应是对当前问题的清晰改写。
6) 如果 is_followup=true，merged_query 必须补全历史上下文，形成可独立理解的问题。

示例输出 A：
{"intent":"chat","is_followup":false,"confidence":0.92,"merged_query":"今天天气怎么样？","rewritten_query":"今天天气怎么样？"}

示例输出 B：
{"intent":"business_query","is_followup":true,"confidence":0.88,"merged_query":"统计 2025-2026-1 学期三班近四周的缺勤率趋势","rewritten_query":"统计 2025-2026-1 学期三班近四周的缺勤率趋势"}`

type intentUserPayload struct {
	Message             string         `json:"message"`
	HistoryUserMessages []string       `json:"history_user_messages"`
	Schema              map[string]any `json:"schema"`
	OutputContract      map[string]any `json:"output_contract"`
}

// BuildIntentUserPrompt assembles the intent user payload. Only the last
// four history user messages are carried.
func BuildIntentUserPrompt(message string, historyUserMessages []string) string {
	if len(historyUserMessages) > 4 {
		historyUserMessages = historyUserMessages[len(historyUserMessages)-4:]
	}
	if historyUserMessages == nil {
		historyUserMessages = []string{}
	}
	payload := intentUserPayload{
		Message:             message,
		HistoryUserMessages: historyUserMessages,
		Schema: map[string]any{
			"intent":          map[string]any{"type": "string", "enum": []string{"chat", "business_query"}},
			"is_followup":     map[string]any{"type": "boolean"},
			"confidence":      map[string]any{"type": "number", "minimum": 0, "maximum": 1},
			"merged_query":    map[string]any{"type": "string", "minLength": 1},
			"rewritten_query": map[string]any{"type": "string", "minLength": 1},
		},
		OutputContract: map[string]any{
			"json_only":                 true,
			"no_markdown_or_extra_text": true,
			"required_keys":             []string{"intent", "is_followup", "confidence", "merged_query", "rewritten_query"},
		},
	}
	raw, _ := json.Marshal(payload)
	return string(raw)
}
