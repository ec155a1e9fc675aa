package workflow

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edu-cockpit/cockpit/pkg/models"
)

func TestFinalStatus(t *testing.T) {
	validate := func(valid, empty, zero bool) *models.SQLValidateResult {
		return &models.SQLValidateResult{IsValid: valid, EmptyResult: empty, ZeroMetricResult: zero}
	}
	task := &models.TaskParseResult{}

	tests := []struct {
		name       string
		st         *State
		wantStatus string
		wantReason string
	}{
		{
			name:       "chat",
			st:         &State{Intent: &models.IntentResult{Intent: models.IntentChat}},
			wantStatus: models.StatusSuccess,
			wantReason: models.ReasonIntentIsChat,
		},
		{
			name:       "no task",
			st:         &State{Intent: &models.IntentResult{Intent: models.IntentBusinessQuery}},
			wantStatus: models.StatusFailed,
			wantReason: models.ReasonTaskParseMissing,
		},
		{
			name:       "no validate",
			st:         &State{Intent: &models.IntentResult{Intent: models.IntentBusinessQuery}, Task: task},
			wantStatus: models.StatusFailed,
			wantReason: models.ReasonSQLValidateMissing,
		},
		{
			name:       "clean success",
			st:         &State{Intent: &models.IntentResult{Intent: models.IntentBusinessQuery}, Task: task, Validate: validate(true, false, false)},
			wantStatus: models.StatusSuccess,
			wantReason: "",
		},
		{
			name:       "empty after retry",
			st:         &State{Intent: &models.IntentResult{Intent: models.IntentBusinessQuery}, Task: task, Validate: validate(true, true, false)},
			wantStatus: models.StatusPartialSuccess,
			wantReason: models.ReasonEmptyResultAfterRetry,
		},
		{
			name:       "zero metric after retry",
			st:         &State{Intent: &models.IntentResult{Intent: models.IntentBusinessQuery}, Task: task, Validate: validate(true, false, true)},
			wantStatus: models.StatusPartialSuccess,
			wantReason: models.ReasonZeroMetricAfterRetry,
		},
		{
			name:       "invalid after retry",
			st:         &State{Intent: &models.IntentResult{Intent: models.IntentBusinessQuery}, Task: task, Validate: validate(false, false, false)},
			wantStatus: models.StatusFailed,
			wantReason: models.ReasonSQLInvalidAfterRetry,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, reason := finalStatus(tt.st)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantReason, reason)
		})
	}
}

func TestApplyStudentDedupe(t *testing.T) {
	detailTask := &models.TaskParseResult{Operation: models.OperationDetail}

	t.Run("merges duplicate students and their reasons", func(t *testing.T) {
		v := &models.SQLValidateResult{
			Result: []map[string]any{
				{"student_no": "2022001", "real_name": "张三", "reason": "缺勤超标"},
				{"student_no": "2022001", "real_name": "张三", "reason": "成绩不及格"},
				{"student_no": "2022002", "real_name": "李四", "reason": "缺勤超标"},
			},
			Rows: 3,
		}
		applyStudentDedupe(detailTask, v)

		require.Len(t, v.Result, 2)
		assert.Equal(t, 2, v.Rows)
		assert.Equal(t, "缺勤超标；成绩不及格", v.Result[0]["reason"])
		assert.Equal(t, "缺勤超标", v.Result[1]["reason"])
	})

	t.Run("duplicate reason recorded once", func(t *testing.T) {
		v := &models.SQLValidateResult{
			Result: []map[string]any{
				{"student_no": "2022001", "real_name": "张三", "reason": "缺勤超标"},
				{"student_no": "2022001", "real_name": "张三", "reason": "缺勤超标"},
			},
			Rows: 2,
		}
		applyStudentDedupe(detailTask, v)

		require.Len(t, v.Result, 1)
		assert.Equal(t, "缺勤超标", v.Result[0]["reason"])
	})

	t.Run("course grain rows are left alone", func(t *testing.T) {
		v := &models.SQLValidateResult{
			Result: []map[string]any{
				{"student_no": "2022001", "real_name": "张三", "course_name": "高等数学", "score_value": 55},
				{"student_no": "2022001", "real_name": "张三", "course_name": "大学英语", "score_value": 58},
			},
			Rows: 2,
		}
		applyStudentDedupe(detailTask, v)
		assert.Len(t, v.Result, 2)
	})

	t.Run("aggregate operation is left alone", func(t *testing.T) {
		v := &models.SQLValidateResult{
			Result: []map[string]any{
				{"student_no": "2022001", "real_name": "张三"},
				{"student_no": "2022001", "real_name": "张三"},
			},
			Rows: 2,
		}
		applyStudentDedupe(&models.TaskParseResult{Operation: models.OperationAggregate}, v)
		assert.Len(t, v.Result, 2)
	})

	t.Run("rows without student_no are left alone", func(t *testing.T) {
		v := &models.SQLValidateResult{
			Result: []map[string]any{
				{"class_name": "计算机2201班"},
				{"class_name": "计算机2201班"},
			},
			Rows: 2,
		}
		applyStudentDedupe(detailTask, v)
		assert.Len(t, v.Result, 2)
	})
}

func TestBuildReply_SmallResultRendersInline(t *testing.T) {
	engine := newTestEngineNoDB(t, &fakeCompleter{responses: []string{"{}"}}, nil)

	st := &State{
		AdminID:   7,
		SessionID: "sess-1",
		Validate: &models.SQLValidateResult{
			Result: []map[string]any{
				{"real_name": "张三", "class_name": "计算机2201班"},
				{"real_name": "李四", "class_name": "计算机2202班"},
			},
			Columns: []string{"real_name", "class_name"},
		},
	}
	hints := map[string]string{"real_name": "姓名", "class_name": "班级名称"}

	reply, exportFile, downloadURL, err := engine.buildReply(st, "查询完成。", models.StatusSuccess, hints)
	require.NoError(t, err)

	assert.Empty(t, exportFile)
	assert.Empty(t, downloadURL)
	assert.Contains(t, reply, "查询完成。")
	assert.Contains(t, reply, "1. 姓名：张三｜班级名称：计算机2201班")
	assert.Contains(t, reply, "2. 姓名：李四｜班级名称：计算机2202班")
}

func TestBuildReply_LargeResultExportsCSV(t *testing.T) {
	engine := newTestEngineNoDB(t, &fakeCompleter{responses: []string{"{}"}}, nil)

	rows := make([]map[string]any, 0, 12)
	for i := 0; i < 12; i++ {
		rows = append(rows, map[string]any{
			"student_no": fmt.Sprintf("2022%03d", i),
			"real_name":  fmt.Sprintf("学生%d", i),
		})
	}
	st := &State{
		AdminID:   7,
		SessionID: "sess-1",
		Validate: &models.SQLValidateResult{
			Result:  rows,
			Columns: []string{"student_no", "real_name"},
		},
	}

	reply, exportFile, downloadURL, err := engine.buildReply(st, "查询完成。", models.StatusSuccess, nil)
	require.NoError(t, err)

	require.NotEmpty(t, exportFile)
	assert.True(t, strings.HasPrefix(exportFile, "admin_7_session_sess-1_"))
	assert.Equal(t, "/api/chat/downloads/"+exportFile, downloadURL)
	assert.Contains(t, reply, "共查询到 12 条结果")
	assert.Contains(t, reply, downloadURL)
	assert.Contains(t, reply, "以下展示前 10 条")

	// Only the first inlineRowLimit rows appear inline.
	assert.Contains(t, reply, "学生9")
	assert.NotContains(t, reply, "学生10")

	raw, err := os.ReadFile(filepath.Join(engine.opts.ExportDir, exportFile))
	require.NoError(t, err)
	content := string(raw)
	assert.Contains(t, content, "student_no")
	assert.Contains(t, content, "学生11")
}

func TestBuildReply_NonSuccessFallsBackToSummary(t *testing.T) {
	engine := newTestEngineNoDB(t, &fakeCompleter{responses: []string{"{}"}}, nil)

	st := &State{Validate: &models.SQLValidateResult{Result: []map[string]any{{"a": 1}}}}
	reply, exportFile, downloadURL, err := engine.buildReply(st, "没有结果。", models.StatusFailed, nil)
	require.NoError(t, err)

	assert.Equal(t, "没有结果。", reply)
	assert.Empty(t, exportFile)
	assert.Empty(t, downloadURL)
}

func TestSummarize_FallbackByReasonCode(t *testing.T) {
	engine := newTestEngineNoDB(t, &fakeCompleter{responses: []string{"not json"}}, nil)

	st := &State{Message: "查询"}
	got := engine.summarize(context.Background(), st, models.StatusFailed, models.ReasonSQLInvalidAfterRetry, nil)
	assert.Equal(t, fallbackSummaries[models.ReasonSQLInvalidAfterRetry], got)

	got = engine.summarize(context.Background(), st, models.StatusSuccess, "", nil)
	assert.Equal(t, defaultSummary, got)
}
