// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/edu-cockpit/cockpit/ent/chathistory"
	"github.com/edu-cockpit/cockpit/ent/predicate"
	"github.com/edu-cockpit/cockpit/ent/workflowlog"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeChatHistory = "ChatHistory"
	TypeWorkflowLog = "WorkflowLog"
)

// ChatHistoryMutation represents an operation that mutates the ChatHistory nodes in the graph.
type ChatHistoryMutation struct {
	config
	op            Op
	typ           string
	id            *int
	admin_id      *int
	addadmin_id   *int
	session_id    *string
	role          *chathistory.Role
	content       *string
	model_name    *string
	is_deleted    *bool
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*ChatHistory, error)
	predicates    []predicate.ChatHistory
}

var _ ent.Mutation = (*ChatHistoryMutation)(nil)

// chathistoryOption allows management of the mutation configuration using functional options.
type chathistoryOption func(*ChatHistoryMutation)

// newChatHistoryMutation creates new mutation for the ChatHistory entity.
func newChatHistoryMutation(c config, op Op, opts ...chathistoryOption) *ChatHistoryMutation {
	m := &ChatHistoryMutation{
		config:        c,
		op:            op,
		typ:           TypeChatHistory,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withChatHistoryID sets the ID field of the mutation.
func withChatHistoryID(id int) chathistoryOption {
	return func(m *ChatHistoryMutation) {
		var (
			err   error
			once  sync.Once
			value *ChatHistory
		)
		m.oldValue = func(ctx context.Context) (*ChatHistory, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ChatHistory.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withChatHistory sets the old ChatHistory of the mutation.
func withChatHistory(node *ChatHistory) chathistoryOption {
	return func(m *ChatHistoryMutation) {
		m.oldValue = func(context.Context) (*ChatHistory, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ChatHistoryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ChatHistoryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ChatHistoryMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ChatHistoryMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ChatHistory.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAdminID sets the "admin_id" field.
func (m *ChatHistoryMutation) SetAdminID(i int) {
	m.admin_id = &i
	m.addadmin_id = nil
}

// AdminID returns the value of the "admin_id" field in the mutation.
func (m *ChatHistoryMutation) AdminID() (r int, exists bool) {
	v := m.admin_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAdminID returns the old "admin_id" field's value of the ChatHistory entity.
// If the ChatHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatHistoryMutation) OldAdminID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAdminID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAdminID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAdminID: %w", err)
	}
	return oldValue.AdminID, nil
}

// AddAdminID adds i to the "admin_id" field.
func (m *ChatHistoryMutation) AddAdminID(i int) {
	if m.addadmin_id != nil {
		*m.addadmin_id += i
	} else {
		m.addadmin_id = &i
	}
}

// AddedAdminID returns the value that was added to the "admin_id" field in this mutation.
func (m *ChatHistoryMutation) AddedAdminID() (r int, exists bool) {
	v := m.addadmin_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetAdminID resets all changes to the "admin_id" field.
func (m *ChatHistoryMutation) ResetAdminID() {
	m.admin_id = nil
	m.addadmin_id = nil
}

// SetSessionID sets the "session_id" field.
func (m *ChatHistoryMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *ChatHistoryMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the ChatHistory entity.
// If the ChatHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatHistoryMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *ChatHistoryMutation) ResetSessionID() {
	m.session_id = nil
}

// SetRole sets the "role" field.
func (m *ChatHistoryMutation) SetRole(c chathistory.Role) {
	m.role = &c
}

// Role returns the value of the "role" field in the mutation.
func (m *ChatHistoryMutation) Role() (r chathistory.Role, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the ChatHistory entity.
// If the ChatHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatHistoryMutation) OldRole(ctx context.Context) (v chathistory.Role, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *ChatHistoryMutation) ResetRole() {
	m.role = nil
}

// SetContent sets the "content" field.
func (m *ChatHistoryMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *ChatHistoryMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the ChatHistory entity.
// If the ChatHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatHistoryMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *ChatHistoryMutation) ResetContent() {
	m.content = nil
}

// SetModelName sets the "model_name" field.
func (m *ChatHistoryMutation) SetModelName(s string) {
	m.model_name = &s
}

// ModelName returns the value of the "model_name" field in the mutation.
func (m *ChatHistoryMutation) ModelName() (r string, exists bool) {
	v := m.model_name
	if v == nil {
		return
	}
	return *v, true
}

// OldModelName returns the old "model_name" field's value of the ChatHistory entity.
// If the ChatHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatHistoryMutation) OldModelName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModelName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModelName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModelName: %w", err)
	}
	return oldValue.ModelName, nil
}

// ClearModelName clears the value of the "model_name" field.
func (m *ChatHistoryMutation) ClearModelName() {
	m.model_name = nil
	m.clearedFields[chathistory.FieldModelName] = struct{}{}
}

// ModelNameCleared returns if the "model_name" field was cleared in this mutation.
func (m *ChatHistoryMutation) ModelNameCleared() bool {
	_, ok := m.clearedFields[chathistory.FieldModelName]
	return ok
}

// ResetModelName resets all changes to the "model_name" field.
func (m *ChatHistoryMutation) ResetModelName() {
	m.model_name = nil
	delete(m.clearedFields, chathistory.FieldModelName)
}

// SetIsDeleted sets the "is_deleted" field.
func (m *ChatHistoryMutation) SetIsDeleted(b bool) {
	m.is_deleted = &b
}

// IsDeleted returns the value of the "is_deleted" field in the mutation.
func (m *ChatHistoryMutation) IsDeleted() (r bool, exists bool) {
	v := m.is_deleted
	if v == nil {
		return
	}
	return *v, true
}

// OldIsDeleted returns the old "is_deleted" field's value of the ChatHistory entity.
// If the ChatHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatHistoryMutation) OldIsDeleted(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsDeleted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsDeleted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsDeleted: %w", err)
	}
	return oldValue.IsDeleted, nil
}

// ResetIsDeleted resets all changes to the "is_deleted" field.
func (m *ChatHistoryMutation) ResetIsDeleted() {
	m.is_deleted = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ChatHistoryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ChatHistoryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ChatHistory entity.
// If the ChatHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatHistoryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ChatHistoryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ChatHistoryMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ChatHistoryMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ChatHistory entity.
// If the ChatHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatHistoryMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ChatHistoryMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the ChatHistoryMutation builder.
func (m *ChatHistoryMutation) Where(ps ...predicate.ChatHistory) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ChatHistoryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ChatHistoryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ChatHistory, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ChatHistoryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ChatHistoryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ChatHistory).
func (m *ChatHistoryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ChatHistoryMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.admin_id != nil {
		fields = append(fields, chathistory.FieldAdminID)
	}
	if m.session_id != nil {
		fields = append(fields, chathistory.FieldSessionID)
	}
	if m.role != nil {
		fields = append(fields, chathistory.FieldRole)
	}
	if m.content != nil {
		fields = append(fields, chathistory.FieldContent)
	}
	if m.model_name != nil {
		fields = append(fields, chathistory.FieldModelName)
	}
	if m.is_deleted != nil {
		fields = append(fields, chathistory.FieldIsDeleted)
	}
	if m.created_at != nil {
		fields = append(fields, chathistory.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, chathistory.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ChatHistoryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case chathistory.FieldAdminID:
		return m.AdminID()
	case chathistory.FieldSessionID:
		return m.SessionID()
	case chathistory.FieldRole:
		return m.Role()
	case chathistory.FieldContent:
		return m.Content()
	case chathistory.FieldModelName:
		return m.ModelName()
	case chathistory.FieldIsDeleted:
		return m.IsDeleted()
	case chathistory.FieldCreatedAt:
		return m.CreatedAt()
	case chathistory.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ChatHistoryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case chathistory.FieldAdminID:
		return m.OldAdminID(ctx)
	case chathistory.FieldSessionID:
		return m.OldSessionID(ctx)
	case chathistory.FieldRole:
		return m.OldRole(ctx)
	case chathistory.FieldContent:
		return m.OldContent(ctx)
	case chathistory.FieldModelName:
		return m.OldModelName(ctx)
	case chathistory.FieldIsDeleted:
		return m.OldIsDeleted(ctx)
	case chathistory.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case chathistory.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ChatHistory field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChatHistoryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case chathistory.FieldAdminID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAdminID(v)
		return nil
	case chathistory.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case chathistory.FieldRole:
		v, ok := value.(chathistory.Role)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case chathistory.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case chathistory.FieldModelName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModelName(v)
		return nil
	case chathistory.FieldIsDeleted:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsDeleted(v)
		return nil
	case chathistory.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case chathistory.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ChatHistory field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ChatHistoryMutation) AddedFields() []string {
	var fields []string
	if m.addadmin_id != nil {
		fields = append(fields, chathistory.FieldAdminID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ChatHistoryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case chathistory.FieldAdminID:
		return m.AddedAdminID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChatHistoryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case chathistory.FieldAdminID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAdminID(v)
		return nil
	}
	return fmt.Errorf("unknown ChatHistory numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ChatHistoryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(chathistory.FieldModelName) {
		fields = append(fields, chathistory.FieldModelName)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ChatHistoryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ChatHistoryMutation) ClearField(name string) error {
	switch name {
	case chathistory.FieldModelName:
		m.ClearModelName()
		return nil
	}
	return fmt.Errorf("unknown ChatHistory nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ChatHistoryMutation) ResetField(name string) error {
	switch name {
	case chathistory.FieldAdminID:
		m.ResetAdminID()
		return nil
	case chathistory.FieldSessionID:
		m.ResetSessionID()
		return nil
	case chathistory.FieldRole:
		m.ResetRole()
		return nil
	case chathistory.FieldContent:
		m.ResetContent()
		return nil
	case chathistory.FieldModelName:
		m.ResetModelName()
		return nil
	case chathistory.FieldIsDeleted:
		m.ResetIsDeleted()
		return nil
	case chathistory.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case chathistory.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ChatHistory field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ChatHistoryMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ChatHistoryMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ChatHistoryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ChatHistoryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ChatHistoryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ChatHistoryMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ChatHistoryMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ChatHistory unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ChatHistoryMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ChatHistory edge %s", name)
}

// WorkflowLogMutation represents an operation that mutates the WorkflowLog nodes in the graph.
type WorkflowLogMutation struct {
	config
	op            Op
	typ           string
	id            *int
	session_id    *string
	step_name     *string
	input_json    *string
	output_json   *string
	status        *workflowlog.Status
	error_message *string
	risk_level    *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*WorkflowLog, error)
	predicates    []predicate.WorkflowLog
}

var _ ent.Mutation = (*WorkflowLogMutation)(nil)

// workflowlogOption allows management of the mutation configuration using functional options.
type workflowlogOption func(*WorkflowLogMutation)

// newWorkflowLogMutation creates new mutation for the WorkflowLog entity.
func newWorkflowLogMutation(c config, op Op, opts ...workflowlogOption) *WorkflowLogMutation {
	m := &WorkflowLogMutation{
		config:        c,
		op:            op,
		typ:           TypeWorkflowLog,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWorkflowLogID sets the ID field of the mutation.
func withWorkflowLogID(id int) workflowlogOption {
	return func(m *WorkflowLogMutation) {
		var (
			err   error
			once  sync.Once
			value *WorkflowLog
		)
		m.oldValue = func(ctx context.Context) (*WorkflowLog, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().WorkflowLog.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWorkflowLog sets the old WorkflowLog of the mutation.
func withWorkflowLog(node *WorkflowLog) workflowlogOption {
	return func(m *WorkflowLogMutation) {
		m.oldValue = func(context.Context) (*WorkflowLog, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WorkflowLogMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WorkflowLogMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WorkflowLogMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WorkflowLogMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().WorkflowLog.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *WorkflowLogMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *WorkflowLogMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the WorkflowLog entity.
// If the WorkflowLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowLogMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *WorkflowLogMutation) ResetSessionID() {
	m.session_id = nil
}

// SetStepName sets the "step_name" field.
func (m *WorkflowLogMutation) SetStepName(s string) {
	m.step_name = &s
}

// StepName returns the value of the "step_name" field in the mutation.
func (m *WorkflowLogMutation) StepName() (r string, exists bool) {
	v := m.step_name
	if v == nil {
		return
	}
	return *v, true
}

// OldStepName returns the old "step_name" field's value of the WorkflowLog entity.
// If the WorkflowLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowLogMutation) OldStepName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStepName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStepName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStepName: %w", err)
	}
	return oldValue.StepName, nil
}

// ResetStepName resets all changes to the "step_name" field.
func (m *WorkflowLogMutation) ResetStepName() {
	m.step_name = nil
}

// SetInputJSON sets the "input_json" field.
func (m *WorkflowLogMutation) SetInputJSON(s string) {
	m.input_json = &s
}

// InputJSON returns the value of the "input_json" field in the mutation.
func (m *WorkflowLogMutation) InputJSON() (r string, exists bool) {
	v := m.input_json
	if v == nil {
		return
	}
	return *v, true
}

// OldInputJSON returns the old "input_json" field's value of the WorkflowLog entity.
// If the WorkflowLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowLogMutation) OldInputJSON(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputJSON is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputJSON requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputJSON: %w", err)
	}
	return oldValue.InputJSON, nil
}

// ResetInputJSON resets all changes to the "input_json" field.
func (m *WorkflowLogMutation) ResetInputJSON() {
	m.input_json = nil
}

// SetOutputJSON sets the "output_json" field.
func (m *WorkflowLogMutation) SetOutputJSON(s string) {
	m.output_json = &s
}

// OutputJSON returns the value of the "output_json" field in the mutation.
func (m *WorkflowLogMutation) OutputJSON() (r string, exists bool) {
	v := m.output_json
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputJSON returns the old "output_json" field's value of the WorkflowLog entity.
// If the WorkflowLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowLogMutation) OldOutputJSON(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputJSON is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputJSON requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputJSON: %w", err)
	}
	return oldValue.OutputJSON, nil
}

// ClearOutputJSON clears the value of the "output_json" field.
func (m *WorkflowLogMutation) ClearOutputJSON() {
	m.output_json = nil
	m.clearedFields[workflowlog.FieldOutputJSON] = struct{}{}
}

// OutputJSONCleared returns if the "output_json" field was cleared in this mutation.
func (m *WorkflowLogMutation) OutputJSONCleared() bool {
	_, ok := m.clearedFields[workflowlog.FieldOutputJSON]
	return ok
}

// ResetOutputJSON resets all changes to the "output_json" field.
func (m *WorkflowLogMutation) ResetOutputJSON() {
	m.output_json = nil
	delete(m.clearedFields, workflowlog.FieldOutputJSON)
}

// SetStatus sets the "status" field.
func (m *WorkflowLogMutation) SetStatus(w workflowlog.Status) {
	m.status = &w
}

// Status returns the value of the "status" field in the mutation.
func (m *WorkflowLogMutation) Status() (r workflowlog.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the WorkflowLog entity.
// If the WorkflowLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowLogMutation) OldStatus(ctx context.Context) (v workflowlog.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *WorkflowLogMutation) ResetStatus() {
	m.status = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *WorkflowLogMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *WorkflowLogMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the WorkflowLog entity.
// If the WorkflowLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowLogMutation) OldErrorMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *WorkflowLogMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[workflowlog.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *WorkflowLogMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[workflowlog.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *WorkflowLogMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, workflowlog.FieldErrorMessage)
}

// SetRiskLevel sets the "risk_level" field.
func (m *WorkflowLogMutation) SetRiskLevel(s string) {
	m.risk_level = &s
}

// RiskLevel returns the value of the "risk_level" field in the mutation.
func (m *WorkflowLogMutation) RiskLevel() (r string, exists bool) {
	v := m.risk_level
	if v == nil {
		return
	}
	return *v, true
}

// OldRiskLevel returns the old "risk_level" field's value of the WorkflowLog entity.
// If the WorkflowLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowLogMutation) OldRiskLevel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRiskLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRiskLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRiskLevel: %w", err)
	}
	return oldValue.RiskLevel, nil
}

// ResetRiskLevel resets all changes to the "risk_level" field.
func (m *WorkflowLogMutation) ResetRiskLevel() {
	m.risk_level = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *WorkflowLogMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *WorkflowLogMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the WorkflowLog entity.
// If the WorkflowLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowLogMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *WorkflowLogMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the WorkflowLogMutation builder.
func (m *WorkflowLogMutation) Where(ps ...predicate.WorkflowLog) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WorkflowLogMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WorkflowLogMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.WorkflowLog, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WorkflowLogMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WorkflowLogMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (WorkflowLog).
func (m *WorkflowLogMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WorkflowLogMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.session_id != nil {
		fields = append(fields, workflowlog.FieldSessionID)
	}
	if m.step_name != nil {
		fields = append(fields, workflowlog.FieldStepName)
	}
	if m.input_json != nil {
		fields = append(fields, workflowlog.FieldInputJSON)
	}
	if m.output_json != nil {
		fields = append(fields, workflowlog.FieldOutputJSON)
	}
	if m.status != nil {
		fields = append(fields, workflowlog.FieldStatus)
	}
	if m.error_message != nil {
		fields = append(fields, workflowlog.FieldErrorMessage)
	}
	if m.risk_level != nil {
		fields = append(fields, workflowlog.FieldRiskLevel)
	}
	if m.created_at != nil {
		fields = append(fields, workflowlog.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WorkflowLogMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case workflowlog.FieldSessionID:
		return m.SessionID()
	case workflowlog.FieldStepName:
		return m.StepName()
	case workflowlog.FieldInputJSON:
		return m.InputJSON()
	case workflowlog.FieldOutputJSON:
		return m.OutputJSON()
	case workflowlog.FieldStatus:
		return m.Status()
	case workflowlog.FieldErrorMessage:
		return m.ErrorMessage()
	case workflowlog.FieldRiskLevel:
		return m.RiskLevel()
	case workflowlog.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WorkflowLogMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case workflowlog.FieldSessionID:
		return m.OldSessionID(ctx)
	case workflowlog.FieldStepName:
		return m.OldStepName(ctx)
	case workflowlog.FieldInputJSON:
		return m.OldInputJSON(ctx)
	case workflowlog.FieldOutputJSON:
		return m.OldOutputJSON(ctx)
	case workflowlog.FieldStatus:
		return m.OldStatus(ctx)
	case workflowlog.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case workflowlog.FieldRiskLevel:
		return m.OldRiskLevel(ctx)
	case workflowlog.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown WorkflowLog field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkflowLogMutation) SetField(name string, value ent.Value) error {
	switch name {
	case workflowlog.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case workflowlog.FieldStepName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStepName(v)
		return nil
	case workflowlog.FieldInputJSON:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputJSON(v)
		return nil
	case workflowlog.FieldOutputJSON:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputJSON(v)
		return nil
	case workflowlog.FieldStatus:
		v, ok := value.(workflowlog.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case workflowlog.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case workflowlog.FieldRiskLevel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRiskLevel(v)
		return nil
	case workflowlog.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown WorkflowLog field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WorkflowLogMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WorkflowLogMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkflowLogMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown WorkflowLog numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WorkflowLogMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(workflowlog.FieldOutputJSON) {
		fields = append(fields, workflowlog.FieldOutputJSON)
	}
	if m.FieldCleared(workflowlog.FieldErrorMessage) {
		fields = append(fields, workflowlog.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WorkflowLogMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WorkflowLogMutation) ClearField(name string) error {
	switch name {
	case workflowlog.FieldOutputJSON:
		m.ClearOutputJSON()
		return nil
	case workflowlog.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown WorkflowLog nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WorkflowLogMutation) ResetField(name string) error {
	switch name {
	case workflowlog.FieldSessionID:
		m.ResetSessionID()
		return nil
	case workflowlog.FieldStepName:
		m.ResetStepName()
		return nil
	case workflowlog.FieldInputJSON:
		m.ResetInputJSON()
		return nil
	case workflowlog.FieldOutputJSON:
		m.ResetOutputJSON()
		return nil
	case workflowlog.FieldStatus:
		m.ResetStatus()
		return nil
	case workflowlog.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case workflowlog.FieldRiskLevel:
		m.ResetRiskLevel()
		return nil
	case workflowlog.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown WorkflowLog field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WorkflowLogMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WorkflowLogMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WorkflowLogMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WorkflowLogMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WorkflowLogMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WorkflowLogMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WorkflowLogMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown WorkflowLog unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WorkflowLogMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown WorkflowLog edge %s", name)
}
