package kb

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTables() []Table {
	return []Table{
		{
			Name:        "student",
			Description: "学生信息表",
			Aliases:     []string{"学生"},
			Columns: []Column{
				{Name: "id", Description: "主键ID"},
				{Name: "student_no", Description: "学号"},
				{Name: "real_name", Description: "姓名"},
				{Name: "enroll_year", Description: "入学年份（常见问法：22级）", Aliases: []string{"年级", "grade_year"}},
			},
		},
		{
			Name:    "class",
			Aliases: []string{"班级"},
			Columns: []Column{
				{Name: "class_name", Description: "班级名称（如：计算机2201班）", Aliases: []string{"班级名"}},
			},
		},
	}
}

func TestKB_Whitelist(t *testing.T) {
	kb := New(testTables())

	assert.Equal(t, []string{
		"student.id", "student.student_no", "student.real_name", "student.enroll_year",
		"class.class_name",
	}, kb.FieldWhitelist())

	assert.True(t, kb.Contains("student.enroll_year"))
	assert.True(t, kb.Contains("Student.Enroll_Year"))
	assert.False(t, kb.Contains("student.grade"))

	canonical, ok := kb.Canonical(" Student.REAL_NAME ")
	require.True(t, ok)
	assert.Equal(t, "student.real_name", canonical)

	assert.True(t, kb.HasTable("student"))
	assert.False(t, kb.HasTable("teacher"))
}

func TestKB_AliasLookups(t *testing.T) {
	kb := New(testTables())

	assert.Equal(t, []string{"student.enroll_year"}, kb.FieldsByAlias("年级"))
	assert.Equal(t, []string{"student.enroll_year"}, kb.FieldsByAlias("GRADE_YEAR"))

	// A table alias maps to every field of the table.
	assert.Equal(t, kb.TableFields("student"), kb.FieldsByAlias("学生"))

	assert.Empty(t, kb.FieldsByAlias("未知"))
}

func TestKB_FieldsWithSuffix(t *testing.T) {
	kb := New(testTables())

	assert.Equal(t, []string{"class.class_name"}, kb.FieldsWithSuffix("class_name"))
	assert.Equal(t, []string{"student.id"}, kb.FieldsWithSuffix("id"))
	assert.Empty(t, kb.FieldsWithSuffix("unknown"))
	assert.Empty(t, kb.FieldsWithSuffix(""))
}

func TestKB_DisplayLabels(t *testing.T) {
	kb := New(testTables())

	label, ok := kb.DisplayLabel("class.class_name")
	require.True(t, ok)
	// Example values after （ are trimmed off.
	assert.Equal(t, "班级名称", label)

	label, ok = kb.DisplayLabel("student.enroll_year")
	require.True(t, ok)
	assert.Equal(t, "入学年份", label)

	// Empty description falls back to the column name.
	kb2 := New([]Table{{Name: "t", Columns: []Column{{Name: "col"}}}})
	label, ok = kb2.DisplayLabel("t.col")
	require.True(t, ok)
	assert.Equal(t, "col", label)

	_, ok = kb.DisplayLabel("student.grade")
	assert.False(t, ok)
}

func TestKB_DisplayHints(t *testing.T) {
	kb := New(testTables())

	hints := kb.DisplayHints([]string{"class_name", "student.real_name", "年级", "unknown_col", ""})
	assert.Equal(t, map[string]string{
		"class_name":        "班级名称",
		"student.real_name": "姓名",
		"年级":                "入学年份",
	}, hints)
}

func TestKB_SchemaHints(t *testing.T) {
	kb := New(testTables())

	hints := kb.SchemaHints()
	require.Len(t, hints, 2)
	assert.Equal(t, "student", hints[0].Table)
	assert.Equal(t, "学生信息表", hints[0].Description)
	assert.Len(t, hints[0].Columns, 4)

	aliasHints := kb.AliasHints()
	require.NotEmpty(t, aliasHints)
	var found bool
	for _, h := range aliasHints {
		if h.Alias == "grade_year" {
			found = true
			assert.Equal(t, []string{"student.enroll_year"}, h.Fields)
		}
	}
	assert.True(t, found)
}

func TestLoad(t *testing.T) {
	t.Run("valid artifact", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "kb.json")
		require.NoError(t, os.WriteFile(path, []byte(`{
			"tables": [
				{"name": "student", "columns": [{"name": "id"}, {"name": "real_name", "description": "姓名"}]}
			]
		}`), 0o644))

		kb, err := Load(path)
		require.NoError(t, err)
		assert.True(t, kb.Contains("student.real_name"))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
		assert.Error(t, err)
	})

	t.Run("invalid json", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "kb.json")
		require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))
		_, err := Load(path)
		assert.Error(t, err)
	})

	t.Run("no tables", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "kb.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"tables": []}`), 0o644))
		_, err := Load(path)
		assert.Error(t, err)
	})
}
