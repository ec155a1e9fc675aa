package workflow

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	dottedRefRe    = regexp.MustCompile(`([A-Za-z0-9_])\s*\.\s*([A-Za-z_])`)
	fieldTokenRe   = regexp.MustCompile(`\b([A-Za-z_][A-Za-z0-9_]*)\.([A-Za-z_][A-Za-z0-9_]*)\b`)
	cteNameRe      = regexp.MustCompile(`(?i)(?:\bWITH\s+|,\s*)([A-Za-z_][A-Za-z0-9_]*)\s+AS\s*\(`)
	writeKeywordRe = regexp.MustCompile(`\b(insert|update|delete|replace|alter|drop|truncate|create|grant|revoke)\b`)
	aggregateRe    = regexp.MustCompile(`(?i)\b(count|sum|avg|min|max)\s*\(`)
	asAliasRe      = regexp.MustCompile(`(?i)\bAS\s+([A-Za-z_][A-Za-z0-9_]*)`)
)

// normalizeSQL collapses whitespace around dotted references and strips
// whitespace inside single-quoted literals, where LLM output tends to
// smuggle it into Chinese values.
func normalizeSQL(sql string) string {
	sql = strings.TrimSpace(sql)

	var b strings.Builder
	b.Grow(len(sql))
	inQuote := false
	for _, r := range sql {
		if r == '\'' {
			inQuote = !inQuote
			b.WriteRune(r)
			continue
		}
		if inQuote && unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(r)
	}
	sql = b.String()

	// Fixed point: "a . b . c" needs more than one pass because each
	// replacement consumes the shared identifier character.
	for {
		next := dottedRefRe.ReplaceAllString(sql, "$1.$2")
		if next == sql {
			return sql
		}
		sql = next
	}
}

// blankQuoted replaces single-quoted literal contents with spaces so that
// token scans never match inside values.
func blankQuoted(sql string) string {
	out := []rune(sql)
	inQuote := false
	for i, r := range out {
		if r == '\'' {
			inQuote = !inQuote
			continue
		}
		if inQuote {
			out[i] = ' '
		}
	}
	return string(out)
}

// extractFieldTokens returns all table.field tokens outside string
// literals, order-preserving, deduped case-insensitively.
func extractFieldTokens(sql string) []string {
	matches := fieldTokenRe.FindAllString(blankQuoted(sql), -1)
	seen := make(map[string]struct{}, len(matches))
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		key := strings.ToLower(m)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, m)
	}
	return out
}

// extractCTENames returns the lowered names declared as `WITH x AS (` or
// `, x AS (`.
func extractCTENames(sql string) map[string]struct{} {
	names := make(map[string]struct{})
	for _, m := range cteNameRe.FindAllStringSubmatch(blankQuoted(sql), -1) {
		names[strings.ToLower(m[1])] = struct{}{}
	}
	return names
}

// violatesReadonly reports whether the SQL fails the read-only gate:
// it must open with SELECT or WITH and never contain a write keyword as
// a whole token.
func violatesReadonly(sql string) bool {
	lowered := strings.ToLower(strings.TrimSpace(sql))
	if !strings.HasPrefix(lowered, "select") && !strings.HasPrefix(lowered, "with") {
		return true
	}
	return writeKeywordRe.MatchString(blankQuoted(lowered))
}

func hasAggregate(sql string) bool {
	return aggregateRe.MatchString(blankQuoted(sql))
}

// extractSelectAliases returns the lowered column aliases following AS.
// CTE declarations never match: their AS is followed by a parenthesis.
func extractSelectAliases(sql string) []string {
	var out []string
	for _, m := range asAliasRe.FindAllStringSubmatch(blankQuoted(sql), -1) {
		out = append(out, strings.ToLower(m[1]))
	}
	return out
}
