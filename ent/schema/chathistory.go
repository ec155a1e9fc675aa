package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ChatHistory holds the schema definition for one chat message.
// One user+assistant pair is appended per completed request.
type ChatHistory struct {
	ent.Schema
}

// Annotations of the ChatHistory.
func (ChatHistory) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "chat_histories"},
	}
}

// Fields of the ChatHistory.
func (ChatHistory) Fields() []ent.Field {
	return []ent.Field{
		field.Int("admin_id").
			Positive().
			Immutable(),
		field.String("session_id").
			Immutable(),
		field.Enum("role").
			Values("user", "assistant").
			Immutable(),
		field.Text("content").
			Immutable(),
		field.String("model_name").
			Optional().
			Comment("LLM model that produced the assistant turn"),
		field.Bool("is_deleted").
			Default(false),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the ChatHistory.
func (ChatHistory) Indexes() []ent.Index {
	return []ent.Index{
		// History load and session listing
		index.Fields("admin_id", "session_id", "created_at"),
		index.Fields("session_id"),
	}
}
