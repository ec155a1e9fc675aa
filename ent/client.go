// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/edu-cockpit/cockpit/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/edu-cockpit/cockpit/ent/chathistory"
	"github.com/edu-cockpit/cockpit/ent/workflowlog"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// ChatHistory is the client for interacting with the ChatHistory builders.
	ChatHistory *ChatHistoryClient
	// WorkflowLog is the client for interacting with the WorkflowLog builders.
	WorkflowLog *WorkflowLogClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.ChatHistory = NewChatHistoryClient(c.config)
	c.WorkflowLog = NewWorkflowLogClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:         ctx,
		config:      cfg,
		ChatHistory: NewChatHistoryClient(cfg),
		WorkflowLog: NewWorkflowLogClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:         ctx,
		config:      cfg,
		ChatHistory: NewChatHistoryClient(cfg),
		WorkflowLog: NewWorkflowLogClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		ChatHistory.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	c.ChatHistory.Use(hooks...)
	c.WorkflowLog.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.ChatHistory.Intercept(interceptors...)
	c.WorkflowLog.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ChatHistoryMutation:
		return c.ChatHistory.mutate(ctx, m)
	case *WorkflowLogMutation:
		return c.WorkflowLog.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ChatHistoryClient is a client for the ChatHistory schema.
type ChatHistoryClient struct {
	config
}

// NewChatHistoryClient returns a client for the ChatHistory from the given config.
func NewChatHistoryClient(c config) *ChatHistoryClient {
	return &ChatHistoryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `chathistory.Hooks(f(g(h())))`.
func (c *ChatHistoryClient) Use(hooks ...Hook) {
	c.hooks.ChatHistory = append(c.hooks.ChatHistory, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `chathistory.Intercept(f(g(h())))`.
func (c *ChatHistoryClient) Intercept(interceptors ...Interceptor) {
	c.inters.ChatHistory = append(c.inters.ChatHistory, interceptors...)
}

// Create returns a builder for creating a ChatHistory entity.
func (c *ChatHistoryClient) Create() *ChatHistoryCreate {
	mutation := newChatHistoryMutation(c.config, OpCreate)
	return &ChatHistoryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ChatHistory entities.
func (c *ChatHistoryClient) CreateBulk(builders ...*ChatHistoryCreate) *ChatHistoryCreateBulk {
	return &ChatHistoryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ChatHistoryClient) MapCreateBulk(slice any, setFunc func(*ChatHistoryCreate, int)) *ChatHistoryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ChatHistoryCreateBulk{err: fmt.Errorf("calling to ChatHistoryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ChatHistoryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ChatHistoryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ChatHistory.
func (c *ChatHistoryClient) Update() *ChatHistoryUpdate {
	mutation := newChatHistoryMutation(c.config, OpUpdate)
	return &ChatHistoryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ChatHistoryClient) UpdateOne(_m *ChatHistory) *ChatHistoryUpdateOne {
	mutation := newChatHistoryMutation(c.config, OpUpdateOne, withChatHistory(_m))
	return &ChatHistoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ChatHistoryClient) UpdateOneID(id int) *ChatHistoryUpdateOne {
	mutation := newChatHistoryMutation(c.config, OpUpdateOne, withChatHistoryID(id))
	return &ChatHistoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ChatHistory.
func (c *ChatHistoryClient) Delete() *ChatHistoryDelete {
	mutation := newChatHistoryMutation(c.config, OpDelete)
	return &ChatHistoryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ChatHistoryClient) DeleteOne(_m *ChatHistory) *ChatHistoryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ChatHistoryClient) DeleteOneID(id int) *ChatHistoryDeleteOne {
	builder := c.Delete().Where(chathistory.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ChatHistoryDeleteOne{builder}
}

// Query returns a query builder for ChatHistory.
func (c *ChatHistoryClient) Query() *ChatHistoryQuery {
	return &ChatHistoryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeChatHistory},
		inters: c.Interceptors(),
	}
}

// Get returns a ChatHistory entity by its id.
func (c *ChatHistoryClient) Get(ctx context.Context, id int) (*ChatHistory, error) {
	return c.Query().Where(chathistory.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ChatHistoryClient) GetX(ctx context.Context, id int) *ChatHistory {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ChatHistoryClient) Hooks() []Hook {
	return c.hooks.ChatHistory
}

// Interceptors returns the client interceptors.
func (c *ChatHistoryClient) Interceptors() []Interceptor {
	return c.inters.ChatHistory
}

func (c *ChatHistoryClient) mutate(ctx context.Context, m *ChatHistoryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ChatHistoryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ChatHistoryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ChatHistoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ChatHistoryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ChatHistory mutation op: %q", m.Op())
	}
}

// WorkflowLogClient is a client for the WorkflowLog schema.
type WorkflowLogClient struct {
	config
}

// NewWorkflowLogClient returns a client for the WorkflowLog from the given config.
func NewWorkflowLogClient(c config) *WorkflowLogClient {
	return &WorkflowLogClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `workflowlog.Hooks(f(g(h())))`.
func (c *WorkflowLogClient) Use(hooks ...Hook) {
	c.hooks.WorkflowLog = append(c.hooks.WorkflowLog, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `workflowlog.Intercept(f(g(h())))`.
func (c *WorkflowLogClient) Intercept(interceptors ...Interceptor) {
	c.inters.WorkflowLog = append(c.inters.WorkflowLog, interceptors...)
}

// Create returns a builder for creating a WorkflowLog entity.
func (c *WorkflowLogClient) Create() *WorkflowLogCreate {
	mutation := newWorkflowLogMutation(c.config, OpCreate)
	return &WorkflowLogCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of WorkflowLog entities.
func (c *WorkflowLogClient) CreateBulk(builders ...*WorkflowLogCreate) *WorkflowLogCreateBulk {
	return &WorkflowLogCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *WorkflowLogClient) MapCreateBulk(slice any, setFunc func(*WorkflowLogCreate, int)) *WorkflowLogCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &WorkflowLogCreateBulk{err: fmt.Errorf("calling to WorkflowLogClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*WorkflowLogCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &WorkflowLogCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for WorkflowLog.
func (c *WorkflowLogClient) Update() *WorkflowLogUpdate {
	mutation := newWorkflowLogMutation(c.config, OpUpdate)
	return &WorkflowLogUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *WorkflowLogClient) UpdateOne(_m *WorkflowLog) *WorkflowLogUpdateOne {
	mutation := newWorkflowLogMutation(c.config, OpUpdateOne, withWorkflowLog(_m))
	return &WorkflowLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *WorkflowLogClient) UpdateOneID(id int) *WorkflowLogUpdateOne {
	mutation := newWorkflowLogMutation(c.config, OpUpdateOne, withWorkflowLogID(id))
	return &WorkflowLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for WorkflowLog.
func (c *WorkflowLogClient) Delete() *WorkflowLogDelete {
	mutation := newWorkflowLogMutation(c.config, OpDelete)
	return &WorkflowLogDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *WorkflowLogClient) DeleteOne(_m *WorkflowLog) *WorkflowLogDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *WorkflowLogClient) DeleteOneID(id int) *WorkflowLogDeleteOne {
	builder := c.Delete().Where(workflowlog.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &WorkflowLogDeleteOne{builder}
}

// Query returns a query builder for WorkflowLog.
func (c *WorkflowLogClient) Query() *WorkflowLogQuery {
	return &WorkflowLogQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeWorkflowLog},
		inters: c.Interceptors(),
	}
}

// Get returns a WorkflowLog entity by its id.
func (c *WorkflowLogClient) Get(ctx context.Context, id int) (*WorkflowLog, error) {
	return c.Query().Where(workflowlog.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *WorkflowLogClient) GetX(ctx context.Context, id int) *WorkflowLog {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *WorkflowLogClient) Hooks() []Hook {
	return c.hooks.WorkflowLog
}

// Interceptors returns the client interceptors.
func (c *WorkflowLogClient) Interceptors() []Interceptor {
	return c.inters.WorkflowLog
}

func (c *WorkflowLogClient) mutate(ctx context.Context, m *WorkflowLogMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&WorkflowLogCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&WorkflowLogUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&WorkflowLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&WorkflowLogDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown WorkflowLog mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		ChatHistory, WorkflowLog []ent.Hook
	}
	inters struct {
		ChatHistory, WorkflowLog []ent.Interceptor
	}
)
