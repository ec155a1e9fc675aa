// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ChatHistory is the predicate function for chathistory builders.
type ChatHistory func(*sql.Selector)

// WorkflowLog is the predicate function for workflowlog builders.
type WorkflowLog func(*sql.Selector)
