package workflow

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/edu-cockpit/cockpit/pkg/events"
	"github.com/edu-cockpit/cockpit/pkg/models"
)

// Probe caps. The list stays small enough that one retry round never
// dominates the request budget.
const (
	maxFieldCandidates    = 12
	maxProbesPerMissing   = 6
	maxProbeFields        = 24
	maxProbeValues        = 20
	fallbackValueTopN     = 5
	probeUnlimitedTable   = "class"
	probeValueColumnAlias = "value"
)

var quotedTokenRe = regexp.MustCompile("'([^']+)'|`([^`]+)`|\"([^\"]+)\"")

// runHiddenContext inspects the failed round and gathers schema and value
// context for the next SQL-generation attempt. Probe errors are captured
// per sample and never fail the node.
func (e *Engine) runHiddenContext(ctx context.Context, st *State) error {
	input := map[string]any{
		"sql_validate_result": st.Validate,
		"retry_count":         st.HiddenContextRetryCount,
	}

	result := &models.HiddenContextResult{
		RewrittenQuery: st.Intent.RewrittenQuery,
	}

	v := st.Validate
	switch {
	case v == nil || !v.IsValid:
		result.RetryReason = models.RetryReasonSQLError
	case v.EmptyResult:
		result.RetryReason = models.RetryReasonEmpty
	default:
		result.RetryReason = models.RetryReasonZeroMetric
	}
	if v != nil {
		result.Error = v.Error
		result.FailedSQL = v.ExecutedSQL
	}
	if result.FailedSQL == "" && st.SQL != nil {
		result.FailedSQL = st.SQL.SQL
	}
	result.ErrorType = classifyErrorType(result.Error)

	probeFields := e.collectProbeFields(st)

	missingTokens := extractMissingTokens(result.Error)
	for _, token := range missingTokens {
		candidates := e.candidatesForMissing(token)
		if len(candidates) == 0 {
			continue
		}
		result.FieldCandidates = append(result.FieldCandidates, models.FieldCandidate{
			Missing:    token,
			Candidates: candidates,
		})
		if len(candidates) > maxProbesPerMissing {
			candidates = candidates[:maxProbesPerMissing]
		}
		probeFields = appendFields(probeFields, candidates...)
	}
	if len(probeFields) > maxProbeFields {
		probeFields = probeFields[:maxProbeFields]
	}

	samplesByField := make(map[string][]string)
	for _, field := range probeFields {
		sample := e.probeField(ctx, field)
		result.ProbeSamples = append(result.ProbeSamples, sample)
		if len(sample.Values) > 0 {
			samplesByField[strings.ToLower(field)] = sample.Values
		}
	}

	if st.Task != nil {
		result.ValueCandidates = matchFilterValues(st.Task.Filters, samplesByField)
	}

	result.Hints = buildHints(result, missingTokens)

	if err := ctx.Err(); err != nil {
		nodeErr := NewNodeError(KindHiddenContextFailed, "context probe interrupted: %v", err)
		e.record(st, events.StepHiddenContext, input, result, nodeErr, RiskLevelLow)
		return nodeErr
	}

	st.HiddenContextRetryCount++
	result.RetryCount = st.HiddenContextRetryCount
	st.Hidden = result
	e.record(st, events.StepHiddenContext, input, result, nil, RiskLevelLow)
	return nil
}

// collectProbeFields unions the round's known fields: generated SQL
// fields, task dimensions, filter fields, and dotted tokens embedded in
// metric expressions. Whitelisted only, order-preserving, case-insensitive
// dedupe.
func (e *Engine) collectProbeFields(st *State) []string {
	var out []string
	if st.SQL != nil {
		out = appendFields(out, st.SQL.SQLFields...)
	}
	if st.Task != nil {
		out = e.appendWhitelisted(out, st.Task.Dimensions...)
		for _, f := range st.Task.Filters {
			out = e.appendWhitelisted(out, f.Field)
		}
		for _, metric := range st.Task.Metrics {
			out = e.appendWhitelisted(out, fieldTokenRe.FindAllString(metric, -1)...)
		}
	}
	return out
}

func appendFields(dst []string, fields ...string) []string {
	for _, f := range fields {
		if f == "" || containsFold(dst, f) {
			continue
		}
		dst = append(dst, f)
	}
	return dst
}

func (e *Engine) appendWhitelisted(dst []string, fields ...string) []string {
	for _, f := range fields {
		canonical, ok := e.kb.Canonical(f)
		if !ok || containsFold(dst, canonical) {
			continue
		}
		dst = append(dst, canonical)
	}
	return dst
}

func containsFold(list []string, s string) bool {
	for _, item := range list {
		if strings.EqualFold(item, s) {
			return true
		}
	}
	return false
}

// classifyErrorType buckets a database error message. Both MySQL and
// PostgreSQL phrasings are recognized.
func classifyErrorType(errText string) string {
	if errText == "" {
		return models.ErrorTypeExecution
	}
	lowered := strings.ToLower(errText)
	switch {
	case strings.Contains(lowered, "unknown column"),
		strings.Contains(lowered, "column") && strings.Contains(lowered, "does not exist"):
		return models.ErrorTypeUnknownColumn
	case strings.Contains(lowered, "unknown table"),
		strings.Contains(lowered, "relation") && strings.Contains(lowered, "does not exist"),
		strings.Contains(lowered, "table") && strings.Contains(lowered, "doesn't exist"):
		return models.ErrorTypeUnknownTable
	case strings.Contains(lowered, "syntax"):
		return models.ErrorTypeSyntaxError
	case strings.Contains(lowered, "not found"), strings.Contains(lowered, "no such"):
		return models.ErrorTypeObjectNotFound
	default:
		return models.ErrorTypeExecution
	}
}

// extractMissingTokens pulls identifier-like tokens out of the error
// text: quoted tokens first, then bare a.b references.
func extractMissingTokens(errText string) []string {
	if errText == "" {
		return nil
	}
	var out []string
	for _, m := range quotedTokenRe.FindAllStringSubmatch(errText, -1) {
		token := m[1] + m[2] + m[3]
		if isIdentifierToken(token) {
			out = appendFields(out, token)
		}
	}
	stripped := quotedTokenRe.ReplaceAllString(errText, " ")
	out = appendFields(out, fieldTokenRe.FindAllString(stripped, -1)...)
	return out
}

var identifierTokenRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)?$`)

func isIdentifierToken(token string) bool {
	return identifierTokenRe.MatchString(token)
}

// candidatesForMissing suggests whitelisted replacements for one missing
// token: suffix matches, then alias-substring matches, then same-table
// fields. Capped at maxFieldCandidates.
func (e *Engine) candidatesForMissing(token string) []string {
	lowered := strings.ToLower(token)
	table, column := "", lowered
	if dot := strings.Index(lowered, "."); dot >= 0 {
		table, column = lowered[:dot], lowered[dot+1:]
	}

	out := appendFields(nil, e.kb.FieldsWithSuffix(column)...)

	for _, hint := range e.kb.AliasHints() {
		if strings.Contains(strings.ToLower(hint.Alias), column) {
			out = appendFields(out, hint.Fields...)
		}
	}

	if len(out) == 0 && table != "" {
		out = appendFields(out, e.kb.TableFields(table)...)
	}

	if len(out) > maxFieldCandidates {
		out = out[:maxFieldCandidates]
	}
	return out
}

// probeField samples distinct live values of one whitelisted field. The
// class table is small enough to scan unbounded; everything else is
// LIMITed at the server.
func (e *Engine) probeField(ctx context.Context, field string) models.ProbeSample {
	dot := strings.Index(field, ".")
	table, column := field[:dot], field[dot+1:]

	probeSQL := fmt.Sprintf(
		"SELECT DISTINCT %s.%s AS %s FROM %s WHERE %s.%s IS NOT NULL AND %s.is_deleted = 0",
		table, column, probeValueColumnAlias, table, table, column, table)
	if !strings.EqualFold(table, probeUnlimitedTable) {
		probeSQL += fmt.Sprintf(" LIMIT %d", maxProbeValues)
	}

	sample := models.ProbeSample{Field: field, ProbeSQL: probeSQL}
	if violatesReadonly(probeSQL) {
		sample.Error = KindSQLValidateReadonlyViolation
		return sample
	}

	rows, err := e.db.QueryContext(ctx, probeSQL)
	if err != nil {
		sample.Error = err.Error()
		return sample
	}
	defer rows.Close()

	for rows.Next() && len(sample.Values) < maxProbeValues {
		var v any
		if err := rows.Scan(&v); err != nil {
			sample.Error = err.Error()
			return sample
		}
		if v == nil {
			continue
		}
		sample.Values = append(sample.Values, fmt.Sprint(jsonSafeValue(v)))
	}
	if err := rows.Err(); err != nil {
		sample.Error = err.Error()
	}
	return sample
}

// matchFilterValues maps each filter literal onto probe samples of its
// field, strongest strategy first.
func matchFilterValues(filters []models.TaskFilter, samplesByField map[string][]string) []models.ValueCandidate {
	var out []models.ValueCandidate
	for _, f := range filters {
		values, ok := samplesByField[strings.ToLower(f.Field)]
		if !ok {
			continue
		}
		literal, ok := f.Value.(string)
		if !ok || literal == "" {
			continue
		}
		candidates, strategy := matchValue(literal, values)
		out = append(out, models.ValueCandidate{
			Field:         f.Field,
			OriginalValue: literal,
			Candidates:    candidates,
			MatchStrategy: strategy,
		})
	}
	return out
}

func matchValue(literal string, values []string) ([]string, string) {
	var exact, normalized, fuzzy []string
	litNorm := normalizeValue(literal)
	for _, v := range values {
		switch {
		case strings.EqualFold(v, literal):
			exact = append(exact, v)
		case normalizeValue(v) == litNorm:
			normalized = append(normalized, v)
		case strings.Contains(normalizeValue(v), litNorm) || strings.Contains(litNorm, normalizeValue(v)):
			fuzzy = append(fuzzy, v)
		}
	}
	switch {
	case len(exact) > 0:
		return exact, models.MatchExact
	case len(normalized) > 0:
		return normalized, models.MatchNormalized
	case len(fuzzy) > 0:
		return fuzzy, models.MatchFuzzy
	}
	top := values
	if len(top) > fallbackValueTopN {
		top = top[:fallbackValueTopN]
	}
	return top, models.MatchFallbackProbe
}

func normalizeValue(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), ""))
}

func buildHints(result *models.HiddenContextResult, missingTokens []string) []string {
	hints := []string{"error_type=" + result.ErrorType}
	if len(missingTokens) > 0 {
		hints = append(hints, "missing_tokens="+strings.Join(missingTokens, ","))
	}
	if len(result.FieldCandidates) > 0 {
		hints = append(hints, "enforce_field_replacements_from_field_candidates")
	}
	if hasProbeValues(result.ProbeSamples) {
		hints = append(hints, "use_probe_samples_to_rewrite_filters_or_entities")
	}
	if result.RetryReason == models.RetryReasonEmpty && len(result.ValueCandidates) > 0 {
		hints = append(hints, "prioritize_value_candidates_for_empty_result")
	}
	return append(hints, "retry_sql_generation_with_hidden_context")
}

func hasProbeValues(samples []models.ProbeSample) bool {
	for _, s := range samples {
		if len(s.Values) > 0 {
			return true
		}
	}
	return false
}
