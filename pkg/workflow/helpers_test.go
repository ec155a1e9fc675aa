package workflow

import (
	"context"
	"database/sql"
	"sync"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/edu-cockpit/cockpit/pkg/iolog"
	"github.com/edu-cockpit/cockpit/pkg/kb"
	"github.com/edu-cockpit/cockpit/pkg/llm"
)

// fakeCompleter replays canned completions in order and records the
// requests it received.
type fakeCompleter struct {
	mu        sync.Mutex
	responses []string
	errs      []error
	requests  []llm.Request
}

func (f *fakeCompleter) Complete(_ context.Context, req llm.Request) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, req)
	i := len(f.requests) - 1
	if i < len(f.errs) && f.errs[i] != nil {
		return "", f.errs[i]
	}
	if i >= len(f.responses) {
		return f.responses[len(f.responses)-1], nil
	}
	return f.responses[i], nil
}

// recordingRecorder captures persisted outcomes and failure rows.
type recordingRecorder struct {
	outcomes []Outcome
	failures []StepLog
}

func (r *recordingRecorder) PersistOutcome(_ context.Context, outcome Outcome) error {
	r.outcomes = append(r.outcomes, outcome)
	return nil
}

func (r *recordingRecorder) PersistFailure(_ context.Context, _ string, step StepLog) error {
	r.failures = append(r.failures, step)
	return nil
}

func testKB() *kb.KB {
	return kb.New([]kb.Table{
		{
			Name:        "student",
			Description: "学生信息表",
			Aliases:     []string{"学生"},
			Columns: []kb.Column{
				{Name: "id", Description: "主键ID"},
				{Name: "student_no", Description: "学号"},
				{Name: "real_name", Description: "姓名"},
				{Name: "gender", Description: "性别（男/女）", Aliases: []string{"性别"}},
				{Name: "enroll_year", Description: "入学年份（常见问法：22级）", Aliases: []string{"年级", "grade_year"}},
				{Name: "class_id", Description: "班级ID"},
				{Name: "is_deleted", Description: "软删除标记"},
			},
		},
		{
			Name:        "class",
			Description: "班级信息表",
			Aliases:     []string{"班级"},
			Columns: []kb.Column{
				{Name: "id", Description: "主键ID"},
				{Name: "class_name", Description: "班级名称（如：计算机2201班）", Aliases: []string{"班级名"}},
				{Name: "is_deleted", Description: "软删除标记"},
			},
		},
		{
			Name:        "score",
			Description: "成绩表",
			Columns: []kb.Column{
				{Name: "student_id", Description: "学生ID"},
				{Name: "course_name", Description: "课程名称"},
				{Name: "score_value", Description: "分数"},
				{Name: "is_deleted", Description: "软删除标记"},
			},
		},
	})
}

// newTestEngine builds an Engine on a sqlmock database. The mock uses
// exact-string query matching so probe and validate SQL can be pinned.
func newTestEngine(t *testing.T, completer llm.Completer, recorder Recorder) (*Engine, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	engine := NewEngine(testKB(), completer, db, iolog.NewWriter(""), recorder, Options{
		Threshold:   0.6,
		MaxRetry:    2,
		IntentModel: "intent-model",
		SQLModel:    "sql-model",
		ExportDir:   t.TempDir(),
	})
	return engine, mock
}

// newTestEngineNoDB is for node tests that never touch the database.
func newTestEngineNoDB(t *testing.T, completer llm.Completer, recorder Recorder) *Engine {
	t.Helper()
	var db *sql.DB
	return NewEngine(testKB(), completer, db, iolog.NewWriter(""), recorder, Options{
		Threshold:   0.6,
		MaxRetry:    2,
		IntentModel: "intent-model",
		SQLModel:    "sql-model",
		ExportDir:   t.TempDir(),
	})
}
