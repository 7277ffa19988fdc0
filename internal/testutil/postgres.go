// Package testutil runs repositories against a throwaway PostgreSQL container.
package testutil

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap/zaptest"

	"github.com/cory-johannsen/geoscape/internal/config"
	"github.com/cory-johannsen/geoscape/internal/storage/postgres"
)

const (
	pgImage = "postgres:16-alpine"
	pgCreds = "test"
)

// NewPool starts a PostgreSQL container, applies every migrations/*.up.sql
// file and returns a connected Pool. The container is removed when t ends.
// The test is skipped in -short mode since it needs Docker.
func NewPool(t *testing.T) *postgres.Pool {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping postgres container test in short mode")
	}
	ctx := context.Background()
	start := time.Now()

	ctr, err := testcontainers.Run(ctx, pgImage,
		testcontainers.WithExposedPorts("5432/tcp"),
		testcontainers.WithEnv(map[string]string{
			"POSTGRES_USER":     pgCreds,
			"POSTGRES_PASSWORD": pgCreds,
			"POSTGRES_DB":       pgCreds,
		}),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	testcontainers.CleanupContainer(t, ctr)
	if err != nil {
		t.Fatalf("starting postgres container: %v [%s]", err, time.Since(start))
	}

	host, err := ctr.Host(ctx)
	if err != nil {
		t.Fatalf("container host: %v", err)
	}
	port, err := ctr.MappedPort(ctx, "5432/tcp")
	if err != nil {
		t.Fatalf("container port: %v", err)
	}

	pool, err := postgres.NewPool(ctx, config.DatabaseConfig{
		Host:            host,
		Port:            port.Int(),
		User:            pgCreds,
		Password:        pgCreds,
		Name:            pgCreds,
		SSLMode:         "disable",
		MaxConns:        5,
		MinConns:        1,
		MaxConnLifetime: 5 * time.Minute,
	}, zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("connecting to test postgres: %v", err)
	}
	t.Cleanup(pool.Close)

	for _, path := range upMigrations(t) {
		sql, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("reading %s: %v", path, err)
		}
		if _, err := pool.DB().Exec(ctx, string(sql)); err != nil {
			t.Fatalf("applying %s: %v", filepath.Base(path), err)
		}
	}
	t.Logf("postgres ready [%s]", time.Since(start))
	return pool
}

// upMigrations lists the repository's up migrations in version order.
func upMigrations(t *testing.T) []string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("locating testutil source")
	}
	dir := filepath.Join(filepath.Dir(file), "..", "..", "migrations")
	paths, err := filepath.Glob(filepath.Join(dir, "*.up.sql"))
	if err != nil || len(paths) == 0 {
		t.Fatalf("no up migrations in %s: %v", dir, err)
	}
	sort.Strings(paths)
	return paths
}
