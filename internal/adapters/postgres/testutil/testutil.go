// Package testutil provides database fixtures for the Postgres adapter tests.
package testutil

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/placegram/places-api/internal/adapters/postgres"
)

// OpenMigratedPool connects to the database named by TEST_DATABASE_URL,
// applies the schema, and truncates all tables so each test run starts
// clean. Tests are skipped when the env var is unset.
func OpenMigratedPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping postgres tests")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, dsn, postgres.PoolOptions{})
	if err != nil {
		t.Fatalf("open postgres pool: %v", err)
	}
	t.Cleanup(pool.Close)

	// Exec runs one statement at a time under the extended protocol, so the
	// schema is applied statement by statement.
	for _, stmt := range strings.Split(postgres.SchemaSQL, ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if _, err := pool.Exec(ctx, stmt); err != nil {
			t.Fatalf("apply schema statement: %v", err)
		}
	}
	if _, err := pool.Exec(ctx, `TRUNCATE card_likes, cards, users`); err != nil {
		t.Fatalf("truncate tables: %v", err)
	}
	return pool
}
