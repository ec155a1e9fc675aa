package workflow

import (
	"context"
	"database/sql"
	"strconv"
	"strings"
	"time"

	"github.com/edu-cockpit/cockpit/pkg/events"
	"github.com/edu-cockpit/cockpit/pkg/models"
)

// zeroMetricKeywords mark column aliases whose zero value means the
// query technically ran but answered nothing.
var zeroMetricKeywords = []string{
	"count", "sum", "avg", "total", "num", "cnt",
	"ren_shu", "shu_liang", "zong_shu", "he_ji", "ping_jun", "jun_zhi",
	"ratio", "rate", "percent",
}

// runSQLValidate gates and executes the generated SQL. Database failures
// are captured in the result, never propagated; the graph decides whether
// to retry.
func (e *Engine) runSQLValidate(ctx context.Context, st *State) error {
	sqlText := strings.TrimSpace(st.SQL.SQL)
	input := map[string]any{"sql": sqlText}

	result := &models.SQLValidateResult{ExecutedSQL: sqlText}
	switch {
	case sqlText == "":
		result.Error = KindSQLValidateMissingSQL
	case violatesReadonly(sqlText):
		result.Error = KindSQLValidateReadonlyViolation
	default:
		e.executeSQL(ctx, sqlText, result)
	}

	if result.IsValid {
		result.EmptyResult = result.Rows == 0
		if !result.EmptyResult && hasAggregate(sqlText) && allNullSingleRow(result.Result) {
			// An all-NULL aggregate row means the source set was empty.
			result.Rows = 0
			result.Result = nil
			result.EmptyResult = true
		}
		if !result.EmptyResult {
			result.ZeroMetricResult = hasZeroMetric(sqlText, result.Result[0])
		}
	}

	st.Validate = result
	e.record(st, events.StepSQLValidate, input, result, nil, RiskLevelMedium)
	return nil
}

func (e *Engine) executeSQL(ctx context.Context, sqlText string, result *models.SQLValidateResult) {
	rows, err := e.db.QueryContext(ctx, sqlText)
	if err != nil {
		result.Error = err.Error()
		return
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		result.Error = err.Error()
		return
	}
	result.Columns = columns

	for rows.Next() {
		values := make([]any, len(columns))
		scanTargets := make([]any, len(columns))
		for i := range values {
			scanTargets[i] = &values[i]
		}
		if err := rows.Scan(scanTargets...); err != nil {
			result.Error = err.Error()
			return
		}
		row := make(map[string]any, len(columns))
		for i, col := range columns {
			row[col] = jsonSafeValue(values[i])
		}
		result.Result = append(result.Result, row)
	}
	if err := rows.Err(); err != nil {
		result.Error = err.Error()
		result.Result = nil
		return
	}

	result.IsValid = true
	result.Rows = len(result.Result)
}

// jsonSafeValue converts driver values into JSON-friendly forms:
// timestamps to ISO strings, byte slices to int/float/string.
func jsonSafeValue(v any) any {
	switch val := v.(type) {
	case time.Time:
		if val.Hour() == 0 && val.Minute() == 0 && val.Second() == 0 && val.Nanosecond() == 0 {
			return val.Format("2006-01-02")
		}
		return val.Format("2006-01-02T15:04:05")
	case []byte:
		s := string(val)
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return n
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}
		return s
	case sql.RawBytes:
		return string(val)
	default:
		return v
	}
}

func allNullSingleRow(rows []map[string]any) bool {
	if len(rows) != 1 {
		return false
	}
	for _, v := range rows[0] {
		if v != nil {
			return false
		}
	}
	return true
}

// hasZeroMetric inspects metric-looking aliases of the first row for a
// numeric zero.
func hasZeroMetric(sqlText string, row map[string]any) bool {
	for _, alias := range extractSelectAliases(sqlText) {
		if !containsMetricKeyword(alias) {
			continue
		}
		for col, v := range row {
			if strings.ToLower(col) != alias {
				continue
			}
			if n, ok := numericValue(v); ok && n == 0 {
				return true
			}
		}
	}
	return false
}

func containsMetricKeyword(alias string) bool {
	for _, kw := range zeroMetricKeywords {
		if strings.Contains(alias, kw) {
			return true
		}
	}
	return false
}

func numericValue(v any) (float64, bool) {
	switch n := v.(type) {
	case int64:
		return float64(n), true
	case int:
		return float64(n), true
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		return f, err == nil
	default:
		return 0, false
	}
}
