package db

import (
	"context"
	"os"
	"testing"
)

// Integration test: exercises the real pool and schema bootstrap when a
// database is available, otherwise skips.
func TestConnectPostgres(t *testing.T) {
	if os.Getenv("DATABASE_URL") == "" {
		t.Skip("DATABASE_URL not set, skipping integration test")
	}

	pool := ConnectPostgres()
	defer pool.Close()

	if err := pool.Ping(context.Background()); err != nil {
		t.Fatalf("ping: %v", err)
	}

	// schema bootstrap is idempotent
	if err := initSchema(pool); err != nil {
		t.Fatalf("initSchema rerun: %v", err)
	}

	for _, table := range []string{"users", "ingredients", "recipes", "meals"} {
		var exists bool
		err := pool.QueryRow(context.Background(),
			"SELECT EXISTS (SELECT 1 FROM information_schema.tables WHERE table_name = $1)", table,
		).Scan(&exists)
		if err != nil {
			t.Fatalf("lookup %s: %v", table, err)
		}
		if !exists {
			t.Errorf("table %s missing", table)
		}
	}
}
