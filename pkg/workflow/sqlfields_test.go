package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSQL(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "trims surrounding whitespace",
			in:   "  WITH base AS (SELECT 1) SELECT * FROM base\n",
			want: "WITH base AS (SELECT 1) SELECT * FROM base",
		},
		{
			name: "collapses spaced dotted references",
			in:   "SELECT student . real_name FROM student",
			want: "SELECT student.real_name FROM student",
		},
		{
			name: "collapses chained dotted references",
			in:   "SELECT a . b . c FROM t",
			want: "SELECT a.b.c FROM t",
		},
		{
			name: "strips whitespace inside quoted literals",
			in:   "SELECT * FROM class WHERE class.class_name = '计算机 2201 班'",
			want: "SELECT * FROM class WHERE class.class_name = '计算机2201班'",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeSQL(tt.in))
		})
	}
}

func TestExtractFieldTokens(t *testing.T) {
	sql := "WITH base AS (SELECT student.real_name, Student.Real_Name, class.class_name " +
		"FROM student) SELECT base.real_name FROM base WHERE class.class_name = 'a.b'"
	tokens := extractFieldTokens(sql)

	// Case-insensitive dedupe, order preserved, quoted a.b never matches.
	assert.Equal(t, []string{"student.real_name", "class.class_name", "base.real_name"}, tokens)
}

func TestExtractCTENames(t *testing.T) {
	sql := "WITH base AS (SELECT 1), ranked AS (SELECT 2) SELECT * FROM ranked"
	names := extractCTENames(sql)

	assert.Contains(t, names, "base")
	assert.Contains(t, names, "ranked")
	assert.Len(t, names, 2)
}

func TestViolatesReadonly(t *testing.T) {
	tests := []struct {
		name string
		sql  string
		want bool
	}{
		{"plain select", "SELECT * FROM student", false},
		{"cte select", "WITH base AS (SELECT 1) SELECT * FROM base", false},
		{"delete", "DELETE FROM student", true},
		{"cte smuggling delete", "WITH base AS (SELECT 1) DELETE FROM student", true},
		{"update", "UPDATE student SET gender = 'x'", true},
		{"drop", "DROP TABLE student", true},
		{"explain", "EXPLAIN SELECT 1", true},
		{"keyword inside literal is fine", "SELECT * FROM log WHERE msg = 'please delete me'", false},
		{"keyword as substring is fine", "SELECT updated_at FROM student", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, violatesReadonly(tt.sql))
		})
	}
}

func TestHasAggregate(t *testing.T) {
	assert.True(t, hasAggregate("SELECT COUNT(*) FROM student"))
	assert.True(t, hasAggregate("SELECT avg(score.score_value) FROM score"))
	assert.False(t, hasAggregate("SELECT student.real_name FROM student"))
	assert.False(t, hasAggregate("SELECT * FROM t WHERE note = 'count(1)'"))
}

func TestExtractSelectAliases(t *testing.T) {
	sql := "WITH base AS (SELECT 1) SELECT COUNT(*) AS student_count, " +
		"AVG(score.score_value) AS Avg_Score FROM base"
	aliases := extractSelectAliases(sql)

	// CTE declarations (AS followed by a parenthesis) never match.
	assert.Equal(t, []string{"student_count", "avg_score"}, aliases)
}
