package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// WorkflowLog holds the schema definition for one workflow step record.
// One row is written per node completion (or failure) of a request.
type WorkflowLog struct {
	ent.Schema
}

// Annotations of the WorkflowLog.
func (WorkflowLog) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "workflow_logs"},
	}
}

// Fields of the WorkflowLog.
func (WorkflowLog) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			Immutable(),
		field.String("step_name").
			Immutable(),
		field.Text("input_json").
			Immutable(),
		field.Text("output_json").
			Optional().
			Immutable(),
		field.Enum("status").
			Values("success", "failed").
			Immutable(),
		field.Text("error_message").
			Optional().
			Immutable(),
		field.String("risk_level").
			Default("low").
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the WorkflowLog.
func (WorkflowLog) Indexes() []ent.Index {
	return []ent.Index{
		// Per-session replay
		index.Fields("session_id", "created_at"),
		index.Fields("step_name", "status"),
	}
}
