// Package kb loads the curated schema knowledge base artifact and derives
// the lookup structures the workflow nodes share: the table.column field
// whitelist, a case-insensitive alias index, and prompt-ready schema hints.
package kb

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Column describes one whitelisted column of a KB table.
type Column struct {
	Name        string   `json:"name"`
	Type        string   `json:"type,omitempty"`
	Description string   `json:"description,omitempty"`
	Aliases     []string `json:"aliases,omitempty"`
}

// Table describes one whitelisted table of the knowledge base.
type Table struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Aliases     []string `json:"aliases,omitempty"`
	Columns     []Column `json:"columns"`
}

// AliasHint pairs an alias with the whitelisted fields it may refer to.
// Passed verbatim into task-parse and SQL-generation prompts.
type AliasHint struct {
	Alias  string   `json:"alias"`
	Fields []string `json:"fields"`
}

// ColumnHint is the per-column slice of a schema hint.
type ColumnHint struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// SchemaHint carries a table description plus its columns for prompts.
type SchemaHint struct {
	Table       string       `json:"table"`
	Description string       `json:"description,omitempty"`
	Columns     []ColumnHint `json:"columns"`
}

// KB is the loaded knowledge base with precomputed indexes. It is built
// once at startup and shared read-only across requests.
type KB struct {
	Tables []Table `json:"tables"`

	fields      []string            // ordered table.column whitelist
	fieldSet    map[string]string   // lower(table.column) -> canonical
	aliasIndex  map[string][]string // lower(alias) -> fields
	tableFields map[string][]string // lower(table) -> fields
	hints       []SchemaHint
	aliasHints  []AliasHint
}

// Load reads the KB artifact from a JSON file and builds the indexes.
func Load(path string) (*KB, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema KB %s: %w", path, err)
	}
	var kb KB
	if err := json.Unmarshal(raw, &kb); err != nil {
		return nil, fmt.Errorf("failed to parse schema KB %s: %w", path, err)
	}
	if len(kb.Tables) == 0 {
		return nil, fmt.Errorf("schema KB %s contains no tables", path)
	}
	kb.buildIndexes()
	return &kb, nil
}

// New builds a KB from in-memory tables. Used by tests.
func New(tables []Table) *KB {
	kb := &KB{Tables: tables}
	kb.buildIndexes()
	return kb
}

func (kb *KB) buildIndexes() {
	kb.fieldSet = make(map[string]string)
	kb.aliasIndex = make(map[string][]string)
	kb.tableFields = make(map[string][]string)

	addAlias := func(alias, field string) {
		key := strings.ToLower(strings.TrimSpace(alias))
		if key == "" {
			return
		}
		for _, existing := range kb.aliasIndex[key] {
			if existing == field {
				return
			}
		}
		kb.aliasIndex[key] = append(kb.aliasIndex[key], field)
	}

	for _, table := range kb.Tables {
		tableKey := strings.ToLower(table.Name)
		hint := SchemaHint{Table: table.Name, Description: table.Description}
		for _, col := range table.Columns {
			field := table.Name + "." + col.Name
			if _, dup := kb.fieldSet[strings.ToLower(field)]; !dup {
				kb.fields = append(kb.fields, field)
				kb.fieldSet[strings.ToLower(field)] = field
				kb.tableFields[tableKey] = append(kb.tableFields[tableKey], field)
			}
			for _, alias := range col.Aliases {
				addAlias(alias, field)
			}
			hint.Columns = append(hint.Columns, ColumnHint{Name: col.Name, Description: col.Description})
		}
		// Table aliases map to every field of that table, so alias-based
		// candidate collection can widen to the whole table.
		for _, alias := range table.Aliases {
			for _, field := range kb.tableFields[tableKey] {
				addAlias(alias, field)
			}
		}
		kb.hints = append(kb.hints, hint)
	}

	for _, table := range kb.Tables {
		for _, alias := range table.Aliases {
			kb.aliasHints = append(kb.aliasHints, AliasHint{
				Alias:  alias,
				Fields: kb.tableFields[strings.ToLower(table.Name)],
			})
		}
		for _, col := range table.Columns {
			if len(col.Aliases) == 0 {
				continue
			}
			field := table.Name + "." + col.Name
			for _, alias := range col.Aliases {
				kb.aliasHints = append(kb.aliasHints, AliasHint{Alias: alias, Fields: []string{field}})
			}
		}
	}
}

// FieldWhitelist returns the ordered table.column whitelist.
func (kb *KB) FieldWhitelist() []string {
	return kb.fields
}

// Contains reports whether field (table.column, any case) is whitelisted.
func (kb *KB) Contains(field string) bool {
	_, ok := kb.fieldSet[strings.ToLower(strings.TrimSpace(field))]
	return ok
}

// Canonical returns the canonical spelling of a whitelisted field.
func (kb *KB) Canonical(field string) (string, bool) {
	canonical, ok := kb.fieldSet[strings.ToLower(strings.TrimSpace(field))]
	return canonical, ok
}

// HasTable reports whether the KB declares the given table.
func (kb *KB) HasTable(table string) bool {
	_, ok := kb.tableFields[strings.ToLower(strings.TrimSpace(table))]
	return ok
}

// TableFields returns the whitelisted fields of one table, in order.
func (kb *KB) TableFields(table string) []string {
	return kb.tableFields[strings.ToLower(strings.TrimSpace(table))]
}

// FieldsByAlias resolves an alias (case-insensitive) to candidate fields.
func (kb *KB) FieldsByAlias(alias string) []string {
	return kb.aliasIndex[strings.ToLower(strings.TrimSpace(alias))]
}

// FieldsWithSuffix returns whitelisted fields whose column part equals
// suffix (case-insensitive), preserving whitelist order.
func (kb *KB) FieldsWithSuffix(suffix string) []string {
	suffix = strings.ToLower(strings.TrimSpace(suffix))
	if suffix == "" {
		return nil
	}
	var out []string
	for _, field := range kb.fields {
		if strings.HasSuffix(strings.ToLower(field), "."+suffix) {
			out = append(out, field)
		}
	}
	return out
}

// AliasHints returns alias→fields pairs for prompt construction.
func (kb *KB) AliasHints() []AliasHint {
	return kb.aliasHints
}

// SchemaHints returns table/column descriptions for prompt construction.
func (kb *KB) SchemaHints() []SchemaHint {
	return kb.hints
}

// descriptionLeadingPhrase cuts a column description down to its leading
// phrase, dropping example values and related-table tails.
func descriptionLeadingPhrase(desc string) string {
	desc = strings.TrimSpace(desc)
	for _, sep := range []string{"（", "(", "；", ";", "，", ","} {
		if idx := strings.Index(desc, sep); idx >= 0 {
			desc = desc[:idx]
		}
	}
	return strings.TrimSpace(desc)
}

// DisplayLabel returns the human display label of a whitelisted field:
// the leading phrase of its column description, or the bare column name
// when the description is empty.
func (kb *KB) DisplayLabel(field string) (string, bool) {
	canonical, ok := kb.Canonical(field)
	if !ok {
		return "", false
	}
	table, column, _ := strings.Cut(canonical, ".")
	for _, t := range kb.Tables {
		if t.Name != table {
			continue
		}
		for _, col := range t.Columns {
			if col.Name != column {
				continue
			}
			if phrase := descriptionLeadingPhrase(col.Description); phrase != "" {
				return phrase, true
			}
			return col.Name, true
		}
	}
	return "", false
}

// DisplayHints maps result-row keys to display labels. Resolution order:
// exact table.field match, then column-suffix match when it is
// unambiguous across tables, then alias lookup. Keys that resolve to
// nothing are omitted.
func (kb *KB) DisplayHints(keys []string) map[string]string {
	hints := make(map[string]string, len(keys))
	for _, key := range keys {
		trimmed := strings.TrimSpace(key)
		if trimmed == "" {
			continue
		}
		if strings.Contains(trimmed, ".") {
			if label, ok := kb.DisplayLabel(trimmed); ok {
				hints[key] = label
			}
			continue
		}
		if matches := kb.FieldsWithSuffix(trimmed); len(matches) == 1 {
			if label, ok := kb.DisplayLabel(matches[0]); ok {
				hints[key] = label
				continue
			}
		}
		if fields := kb.FieldsByAlias(trimmed); len(fields) > 0 {
			if label, ok := kb.DisplayLabel(fields[0]); ok {
				hints[key] = label
			}
		}
	}
	return hints
}
