package events

import (
	"fmt"
	"strings"
)

// Fixed workflow-level stream messages.
const (
	WorkflowStartMessage = "工作流已启动，正在处理您的问题。"
	WorkflowEndMessage   = "工作流执行完成。"
	WorkflowErrorMessage = "工作流执行失败，请稍后重试。"
)

// stepErrorTemplate announces a node failure before the stream ends.
const stepErrorTemplate = "%s步骤执行异常，系统已终止本次处理。"

// stepMessages holds the per-step start/end display texts.
var stepMessages = map[string]map[string]string{
	StepIntentRecognition: {
		StatusStart: "正在识别问题意图…",
		StatusEnd:   "意图识别完成。",
	},
	StepTaskParse: {
		StatusStart: "正在解析查询任务…",
		StatusEnd:   "任务解析完成。",
	},
	StepSQLGeneration: {
		StatusStart: "正在生成查询语句…",
		StatusEnd:   "查询语句生成完成。",
	},
	StepSQLValidate: {
		StatusStart: "正在校验并执行查询…",
		StatusEnd:   "查询执行完成。",
	},
	StepHiddenContext: {
		StatusStart: "正在探索数据库上下文…",
		StatusEnd:   "上下文探索完成。",
	},
	StepResultReturn: {
		StatusStart: "正在整理查询结果…",
		StatusEnd:   "结果整理完成。",
	},
}

// StepMessage returns the display text for a step/status pair, falling
// back to a stable placeholder for unknown combinations.
func StepMessage(step, status string) string {
	if m, ok := stepMessages[step]; ok {
		if text, ok := m[status]; ok {
			return text
		}
	}
	return fmt.Sprintf("__STEP_%s_%s__", strings.ToUpper(step), strings.ToUpper(status))
}

// StepMessageWith consults the configured per-step overrides before the
// built-in texts. A nil or partial override map falls through.
func StepMessageWith(overrides map[string]map[string]string, step, status string) string {
	if m, ok := overrides[step]; ok {
		if text, ok := m[status]; ok && text != "" {
			return text
		}
	}
	return StepMessage(step, status)
}

// StepErrorMessage returns the display text for a failed step.
func StepErrorMessage(step string) string {
	return fmt.Sprintf(stepErrorTemplate, step)
}
