// Code generated by ent, DO NOT EDIT.

package workflowlog

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/edu-cockpit/cockpit/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldLTE(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldEQ(FieldSessionID, v))
}

// StepName applies equality check predicate on the "step_name" field. It's identical to StepNameEQ.
func StepName(v string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldEQ(FieldStepName, v))
}

// InputJSON applies equality check predicate on the "input_json" field. It's identical to InputJSONEQ.
func InputJSON(v string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldEQ(FieldInputJSON, v))
}

// OutputJSON applies equality check predicate on the "output_json" field. It's identical to OutputJSONEQ.
func OutputJSON(v string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldEQ(FieldOutputJSON, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldEQ(FieldErrorMessage, v))
}

// RiskLevel applies equality check predicate on the "risk_level" field. It's identical to RiskLevelEQ.
func RiskLevel(v string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldEQ(FieldRiskLevel, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldEQ(FieldCreatedAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldContainsFold(FieldSessionID, v))
}

// StepNameEQ applies the EQ predicate on the "step_name" field.
func StepNameEQ(v string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldEQ(FieldStepName, v))
}

// StepNameNEQ applies the NEQ predicate on the "step_name" field.
func StepNameNEQ(v string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldNEQ(FieldStepName, v))
}

// StepNameIn applies the In predicate on the "step_name" field.
func StepNameIn(vs ...string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldIn(FieldStepName, vs...))
}

// StepNameNotIn applies the NotIn predicate on the "step_name" field.
func StepNameNotIn(vs ...string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldNotIn(FieldStepName, vs...))
}

// StepNameGT applies the GT predicate on the "step_name" field.
func StepNameGT(v string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldGT(FieldStepName, v))
}

// StepNameGTE applies the GTE predicate on the "step_name" field.
func StepNameGTE(v string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldGTE(FieldStepName, v))
}

// StepNameLT applies the LT predicate on the "step_name" field.
func StepNameLT(v string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldLT(FieldStepName, v))
}

// StepNameLTE applies the LTE predicate on the "step_name" field.
func StepNameLTE(v string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldLTE(FieldStepName, v))
}

// StepNameContains applies the Contains predicate on the "step_name" field.
func StepNameContains(v string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldContains(FieldStepName, v))
}

// StepNameHasPrefix applies the HasPrefix predicate on the "step_name" field.
func StepNameHasPrefix(v string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldHasPrefix(FieldStepName, v))
}

// StepNameHasSuffix applies the HasSuffix predicate on the "step_name" field.
func StepNameHasSuffix(v string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldHasSuffix(FieldStepName, v))
}

// StepNameEqualFold applies the EqualFold predicate on the "step_name" field.
func StepNameEqualFold(v string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldEqualFold(FieldStepName, v))
}

// StepNameContainsFold applies the ContainsFold predicate on the "step_name" field.
func StepNameContainsFold(v string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldContainsFold(FieldStepName, v))
}

// InputJSONEQ applies the EQ predicate on the "input_json" field.
func InputJSONEQ(v string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldEQ(FieldInputJSON, v))
}

// InputJSONNEQ applies the NEQ predicate on the "input_json" field.
func InputJSONNEQ(v string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldNEQ(FieldInputJSON, v))
}

// InputJSONIn applies the In predicate on the "input_json" field.
func InputJSONIn(vs ...string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldIn(FieldInputJSON, vs...))
}

// InputJSONNotIn applies the NotIn predicate on the "input_json" field.
func InputJSONNotIn(vs ...string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldNotIn(FieldInputJSON, vs...))
}

// InputJSONGT applies the GT predicate on the "input_json" field.
func InputJSONGT(v string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldGT(FieldInputJSON, v))
}

// InputJSONGTE applies the GTE predicate on the "input_json" field.
func InputJSONGTE(v string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldGTE(FieldInputJSON, v))
}

// InputJSONLT applies the LT predicate on the "input_json" field.
func InputJSONLT(v string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldLT(FieldInputJSON, v))
}

// InputJSONLTE applies the LTE predicate on the "input_json" field.
func InputJSONLTE(v string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldLTE(FieldInputJSON, v))
}

// InputJSONContains applies the Contains predicate on the "input_json" field.
func InputJSONContains(v string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldContains(FieldInputJSON, v))
}

// InputJSONHasPrefix applies the HasPrefix predicate on the "input_json" field.
func InputJSONHasPrefix(v string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldHasPrefix(FieldInputJSON, v))
}

// InputJSONHasSuffix applies the HasSuffix predicate on the "input_json" field.
func InputJSONHasSuffix(v string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldHasSuffix(FieldInputJSON, v))
}

// InputJSONEqualFold applies the EqualFold predicate on the "input_json" field.
func InputJSONEqualFold(v string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldEqualFold(FieldInputJSON, v))
}

// InputJSONContainsFold applies the ContainsFold predicate on the "input_json" field.
func InputJSONContainsFold(v string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldContainsFold(FieldInputJSON, v))
}

// OutputJSONEQ applies the EQ predicate on the "output_json" field.
func OutputJSONEQ(v string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldEQ(FieldOutputJSON, v))
}

// OutputJSONNEQ applies the NEQ predicate on the "output_json" field.
func OutputJSONNEQ(v string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldNEQ(FieldOutputJSON, v))
}

// OutputJSONIn applies the In predicate on the "output_json" field.
func OutputJSONIn(vs ...string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldIn(FieldOutputJSON, vs...))
}

// OutputJSONNotIn applies the NotIn predicate on the "output_json" field.
func OutputJSONNotIn(vs ...string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldNotIn(FieldOutputJSON, vs...))
}

// OutputJSONGT applies the GT predicate on the "output_json" field.
func OutputJSONGT(v string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldGT(FieldOutputJSON, v))
}

// OutputJSONGTE applies the GTE predicate on the "output_json" field.
func OutputJSONGTE(v string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldGTE(FieldOutputJSON, v))
}

// OutputJSONLT applies the LT predicate on the "output_json" field.
func OutputJSONLT(v string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldLT(FieldOutputJSON, v))
}

// OutputJSONLTE applies the LTE predicate on the "output_json" field.
func OutputJSONLTE(v string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldLTE(FieldOutputJSON, v))
}

// OutputJSONContains applies the Contains predicate on the "output_json" field.
func OutputJSONContains(v string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldContains(FieldOutputJSON, v))
}

// OutputJSONHasPrefix applies the HasPrefix predicate on the "output_json" field.
func OutputJSONHasPrefix(v string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldHasPrefix(FieldOutputJSON, v))
}

// OutputJSONHasSuffix applies the HasSuffix predicate on the "output_json" field.
func OutputJSONHasSuffix(v string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldHasSuffix(FieldOutputJSON, v))
}

// OutputJSONIsNil applies the IsNil predicate on the "output_json" field.
func OutputJSONIsNil() predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldIsNull(FieldOutputJSON))
}

// OutputJSONNotNil applies the NotNil predicate on the "output_json" field.
func OutputJSONNotNil() predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldNotNull(FieldOutputJSON))
}

// OutputJSONEqualFold applies the EqualFold predicate on the "output_json" field.
func OutputJSONEqualFold(v string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldEqualFold(FieldOutputJSON, v))
}

// OutputJSONContainsFold applies the ContainsFold predicate on the "output_json" field.
func OutputJSONContainsFold(v string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldContainsFold(FieldOutputJSON, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldNotIn(FieldStatus, vs...))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldContainsFold(FieldErrorMessage, v))
}

// RiskLevelEQ applies the EQ predicate on the "risk_level" field.
func RiskLevelEQ(v string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldEQ(FieldRiskLevel, v))
}

// RiskLevelNEQ applies the NEQ predicate on the "risk_level" field.
func RiskLevelNEQ(v string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldNEQ(FieldRiskLevel, v))
}

// RiskLevelIn applies the In predicate on the "risk_level" field.
func RiskLevelIn(vs ...string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldIn(FieldRiskLevel, vs...))
}

// RiskLevelNotIn applies the NotIn predicate on the "risk_level" field.
func RiskLevelNotIn(vs ...string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldNotIn(FieldRiskLevel, vs...))
}

// RiskLevelGT applies the GT predicate on the "risk_level" field.
func RiskLevelGT(v string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldGT(FieldRiskLevel, v))
}

// RiskLevelGTE applies the GTE predicate on the "risk_level" field.
func RiskLevelGTE(v string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldGTE(FieldRiskLevel, v))
}

// RiskLevelLT applies the LT predicate on the "risk_level" field.
func RiskLevelLT(v string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldLT(FieldRiskLevel, v))
}

// RiskLevelLTE applies the LTE predicate on the "risk_level" field.
func RiskLevelLTE(v string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldLTE(FieldRiskLevel, v))
}

// RiskLevelContains applies the Contains predicate on the "risk_level" field.
func RiskLevelContains(v string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldContains(FieldRiskLevel, v))
}

// RiskLevelHasPrefix applies the HasPrefix predicate on the "risk_level" field.
func RiskLevelHasPrefix(v string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldHasPrefix(FieldRiskLevel, v))
}

// RiskLevelHasSuffix applies the HasSuffix predicate on the "risk_level" field.
func RiskLevelHasSuffix(v string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldHasSuffix(FieldRiskLevel, v))
}

// RiskLevelEqualFold applies the EqualFold predicate on the "risk_level" field.
func RiskLevelEqualFold(v string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldEqualFold(FieldRiskLevel, v))
}

// RiskLevelContainsFold applies the ContainsFold predicate on the "risk_level" field.
func RiskLevelContainsFold(v string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldContainsFold(FieldRiskLevel, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.WorkflowLog) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.WorkflowLog) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.WorkflowLog) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.NotPredicates(p))
}
