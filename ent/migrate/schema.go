// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ChatHistoriesColumns holds the columns for the "chat_histories" table.
	ChatHistoriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "admin_id", Type: field.TypeInt},
		{Name: "session_id", Type: field.TypeString},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"user", "assistant"}},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "model_name", Type: field.TypeString, Nullable: true},
		{Name: "is_deleted", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ChatHistoriesTable holds the schema information for the "chat_histories" table.
	ChatHistoriesTable = &schema.Table{
		Name:       "chat_histories",
		Columns:    ChatHistoriesColumns,
		PrimaryKey: []*schema.Column{ChatHistoriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "chathistory_admin_id_session_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ChatHistoriesColumns[1], ChatHistoriesColumns[2], ChatHistoriesColumns[7]},
			},
			{
				Name:    "chathistory_session_id",
				Unique:  false,
				Columns: []*schema.Column{ChatHistoriesColumns[2]},
			},
		},
	}
	// WorkflowLogsColumns holds the columns for the "workflow_logs" table.
	WorkflowLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "session_id", Type: field.TypeString},
		{Name: "step_name", Type: field.TypeString},
		{Name: "input_json", Type: field.TypeString, Size: 2147483647},
		{Name: "output_json", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"success", "failed"}},
		{Name: "error_message", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "risk_level", Type: field.TypeString, Default: "low"},
		{Name: "created_at", Type: field.TypeTime},
	}
	// WorkflowLogsTable holds the schema information for the "workflow_logs" table.
	WorkflowLogsTable = &schema.Table{
		Name:       "workflow_logs",
		Columns:    WorkflowLogsColumns,
		PrimaryKey: []*schema.Column{WorkflowLogsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "workflowlog_session_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{WorkflowLogsColumns[1], WorkflowLogsColumns[8]},
			},
			{
				Name:    "workflowlog_step_name_status",
				Unique:  false,
				Columns: []*schema.Column{WorkflowLogsColumns[2], WorkflowLogsColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ChatHistoriesTable,
		WorkflowLogsTable,
	}
)

func init() {
	ChatHistoriesTable.Annotation = &entsql.Annotation{
		Table: "chat_histories",
	}
	WorkflowLogsTable.Annotation = &entsql.Annotation{
		Table: "workflow_logs",
	}
}
