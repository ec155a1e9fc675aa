package workflow

import (
	"context"
	"encoding/json"
	"regexp"
	"strings"
	"time"

	"github.com/edu-cockpit/cockpit/pkg/events"
	"github.com/edu-cockpit/cockpit/pkg/llm"
	"github.com/edu-cockpit/cockpit/pkg/models"
	"github.com/edu-cockpit/cockpit/pkg/prompt"
)

const sqlGenerationTimeout = 30 * time.Second

// runSQLGeneration asks the SQL model for a CTE query and post-processes
// it deterministically. Failure here is never fatal: the node installs a
// synthetic invalid validate result so the graph can route through
// hidden-context while retry budget remains.
func (e *Engine) runSQLGeneration(ctx context.Context, st *State) error {
	model := st.ModelName
	if model == "" {
		model = e.opts.SQLModel
	}
	input := map[string]any{
		"rewritten_query": st.Intent.RewrittenQuery,
		"task":            st.Task,
		"hidden_context":  st.Hidden,
		"model":           model,
	}

	raw, err := e.llm.Complete(ctx, llm.Request{
		System:      prompt.SQLGenerationSystemPrompt,
		User:        prompt.BuildSQLGenerationUserPrompt(st.Intent.RewrittenQuery, st.Task, e.kb, st.Hidden),
		Model:       model,
		Temperature: 0.1,
		Timeout:     sqlGenerationTimeout,
	})
	if err != nil {
		return e.failGeneration(st, input, NewNodeError(KindSQLGenCompletionError, "sql completion failed: %v", err))
	}

	obj, ok := llm.FirstJSONObject(raw)
	if !ok {
		return e.failGeneration(st, input, NewNodeError(KindSQLGenMissingSQL, "sql output contains no JSON object"))
	}
	var parsed struct {
		SQL            string                 `json:"sql"`
		EntityMappings []models.EntityMapping `json:"entity_mappings"`
		SQLFields      []string               `json:"sql_fields"`
	}
	if err := json.Unmarshal([]byte(obj), &parsed); err != nil {
		return e.failGeneration(st, input, NewNodeError(KindSQLGenMissingSQL, "sql output is not valid JSON: %v", err))
	}

	sql := normalizeSQL(parsed.SQL)
	if sql == "" {
		return e.failGeneration(st, input, NewNodeError(KindSQLGenMissingSQL, "model returned empty sql"))
	}
	if !strings.HasPrefix(strings.ToLower(sql), "with") {
		return e.failGeneration(st, input, NewNodeError(KindSQLGenNotCTE, "sql does not begin with WITH"))
	}

	sql, replacements := e.applyFieldReplacements(sql, st.Hidden)

	fields, invalid := e.classifyFieldTokens(sql)
	if len(fields) == 0 {
		return e.failGeneration(st, input, NewNodeError(KindSQLGenNoFields, "sql references no whitelisted fields"))
	}
	if len(invalid) > 0 {
		return e.failGeneration(st, input, NewNodeError(KindSQLGenInvalidFields,
			"sql references non-whitelisted fields: %s", strings.Join(invalid, ", ")))
	}

	if missing := uncoveredEntity(st.Task.Entities, parsed.EntityMappings, fields); missing != "" {
		return e.failGeneration(st, input, NewNodeError(KindSQLGenEntityUnmapped,
			"entity %q has no mapping into the sql", missing))
	}

	result := &models.SQLResult{
		SQL:                      sql,
		EntityMappings:           parsed.EntityMappings,
		SQLFields:                fields,
		AppliedFieldReplacements: replacements,
	}
	st.SQL = result
	st.Validate = nil
	e.record(st, events.StepSQLGeneration, input, result, nil, RiskLevelMedium)
	return nil
}

// failGeneration records the failure and installs the synthetic validate
// result. The returned error is always nil.
func (e *Engine) failGeneration(st *State, input map[string]any, nodeErr *NodeError) error {
	st.SQL = &models.SQLResult{
		GenerationFailed: true,
		GenerationError:  nodeErr.Error(),
	}
	st.Validate = &models.SQLValidateResult{
		IsValid: false,
		Error:   nodeErr.Error(),
	}
	e.record(st, events.StepSQLGeneration, input, st.SQL, nodeErr, RiskLevelMedium)
	return nil
}

// classifyFieldTokens splits the SQL's dotted tokens into canonical
// whitelisted fields and invalid leftovers. Tokens qualified by a CTE
// name are neither.
func (e *Engine) classifyFieldTokens(sql string) (fields, invalid []string) {
	ctes := extractCTENames(sql)
	for _, token := range extractFieldTokens(sql) {
		table := strings.ToLower(token[:strings.Index(token, ".")])
		if _, isCTE := ctes[table]; isCTE {
			continue
		}
		if canonical, ok := e.kb.Canonical(token); ok {
			fields = append(fields, canonical)
			continue
		}
		invalid = append(invalid, token)
	}
	return fields, invalid
}

// applyFieldReplacements rewrites non-whitelisted tokens using the
// hidden-context field candidates.
func (e *Engine) applyFieldReplacements(sql string, hidden *models.HiddenContextResult) (string, []models.FieldReplacement) {
	if hidden == nil || len(hidden.FieldCandidates) == 0 {
		return sql, nil
	}
	var applied []models.FieldReplacement
	_, invalid := e.classifyFieldTokens(sql)
	for _, token := range invalid {
		replacement := pickReplacement(token, hidden.FieldCandidates)
		if replacement == "" {
			continue
		}
		// Whole-token rewrite: a bare ReplaceAll would also mangle
		// longer tokens sharing the prefix (student.grade vs
		// student.grade_year).
		tokenRe := regexp.MustCompile(`\b` + regexp.QuoteMeta(token) + `\b`)
		sql = tokenRe.ReplaceAllLiteralString(sql, replacement)
		applied = append(applied, models.FieldReplacement{From: token, To: replacement})
	}
	return sql, applied
}

// pickReplacement chooses among the candidates suggested for a missing
// token: _id-suffixed tokens prefer _id-suffixed candidates that are not
// a bare primary key, then same-table candidates, then the first.
func pickReplacement(token string, candidates []models.FieldCandidate) string {
	lowered := strings.ToLower(token)
	table := lowered[:strings.Index(lowered, ".")]
	column := lowered[strings.Index(lowered, ".")+1:]

	var pool []string
	for _, fc := range candidates {
		if strings.ToLower(fc.Missing) == lowered {
			pool = fc.Candidates
			break
		}
	}
	if len(pool) == 0 {
		return ""
	}

	if strings.HasSuffix(column, "_id") {
		var idPool []string
		for _, c := range pool {
			lc := strings.ToLower(c)
			dot := strings.Index(lc, ".")
			if strings.HasSuffix(lc, "_id") && lc[dot+1:] != "id" {
				idPool = append(idPool, c)
			}
		}
		if len(idPool) > 0 {
			if same := sameTableCandidate(idPool, table); same != "" {
				return same
			}
			return idPool[0]
		}
	}

	if same := sameTableCandidate(pool, table); same != "" {
		return same
	}
	return pool[0]
}

func sameTableCandidate(pool []string, table string) string {
	for _, c := range pool {
		if strings.HasPrefix(strings.ToLower(c), table+".") {
			return c
		}
	}
	return ""
}

// uncoveredEntity returns the first task entity without an entity mapping
// whose field appears in the sql fields, or "".
func uncoveredEntity(entities []models.TaskEntity, mappings []models.EntityMapping, fields []string) string {
	fieldSet := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		fieldSet[strings.ToLower(f)] = struct{}{}
	}
	for _, en := range entities {
		covered := false
		for _, m := range mappings {
			if !strings.EqualFold(m.Value, en.Value) {
				continue
			}
			if _, ok := fieldSet[strings.ToLower(m.Field)]; ok {
				covered = true
				break
			}
		}
		if !covered {
			return en.Value
		}
	}
	return ""
}
