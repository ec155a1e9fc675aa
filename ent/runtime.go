// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/edu-cockpit/cockpit/ent/chathistory"
	"github.com/edu-cockpit/cockpit/ent/schema"
	"github.com/edu-cockpit/cockpit/ent/workflowlog"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	chathistoryFields := schema.ChatHistory{}.Fields()
	_ = chathistoryFields
	// chathistoryDescAdminID is the schema descriptor for admin_id field.
	chathistoryDescAdminID := chathistoryFields[0].Descriptor()
	// chathistory.AdminIDValidator is a validator for the "admin_id" field. It is called by the builders before save.
	chathistory.AdminIDValidator = chathistoryDescAdminID.Validators[0].(func(int) error)
	// chathistoryDescIsDeleted is the schema descriptor for is_deleted field.
	chathistoryDescIsDeleted := chathistoryFields[5].Descriptor()
	// chathistory.DefaultIsDeleted holds the default value on creation for the is_deleted field.
	chathistory.DefaultIsDeleted = chathistoryDescIsDeleted.Default.(bool)
	// chathistoryDescCreatedAt is the schema descriptor for created_at field.
	chathistoryDescCreatedAt := chathistoryFields[6].Descriptor()
	// chathistory.DefaultCreatedAt holds the default value on creation for the created_at field.
	chathistory.DefaultCreatedAt = chathistoryDescCreatedAt.Default.(func() time.Time)
	// chathistoryDescUpdatedAt is the schema descriptor for updated_at field.
	chathistoryDescUpdatedAt := chathistoryFields[7].Descriptor()
	// chathistory.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	chathistory.DefaultUpdatedAt = chathistoryDescUpdatedAt.Default.(func() time.Time)
	// chathistory.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	chathistory.UpdateDefaultUpdatedAt = chathistoryDescUpdatedAt.UpdateDefault.(func() time.Time)
	workflowlogFields := schema.WorkflowLog{}.Fields()
	_ = workflowlogFields
	// workflowlogDescRiskLevel is the schema descriptor for risk_level field.
	workflowlogDescRiskLevel := workflowlogFields[6].Descriptor()
	// workflowlog.DefaultRiskLevel holds the default value on creation for the risk_level field.
	workflowlog.DefaultRiskLevel = workflowlogDescRiskLevel.Default.(string)
	// workflowlogDescCreatedAt is the schema descriptor for created_at field.
	workflowlogDescCreatedAt := workflowlogFields[7].Descriptor()
	// workflowlog.DefaultCreatedAt holds the default value on creation for the created_at field.
	workflowlog.DefaultCreatedAt = workflowlogDescCreatedAt.Default.(func() time.Time)
}
