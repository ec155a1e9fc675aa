// Package database provides database client helpers for tests.
package database

import (
	"testing"

	"github.com/edu-cockpit/cockpit/pkg/database"
	"github.com/edu-cockpit/cockpit/test/util"
)

// NewTestClient creates a test database client.
// In CI (when CI_DATABASE_URL is set): connects to the external PostgreSQL
// service container. In local dev: spins up a PostgreSQL testcontainer.
// The connection is cleaned up when the test ends.
func NewTestClient(t *testing.T) *database.Client {
	entClient, db := util.SetupTestDatabase(t)

	// Cleanup (schema drop and connection close) is handled by SetupTestDatabase
	return database.NewClientFromEnt(entClient, db)
}
