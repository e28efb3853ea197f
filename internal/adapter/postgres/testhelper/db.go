package testhelper

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	postgres "github.com/heartmarshall/gossip-murmur/internal/adapter/postgres"
)

var (
	once      sync.Once
	serverDSN string
	sharedDSN string
	initErr   error
)

// SetupTestDB starts a shared PostgreSQL container (once for the entire test run),
// applies the embedded goose migrations, and returns a new pgxpool.Pool connected to it.
// The pool is closed via t.Cleanup; the container lives until the process exits.
func SetupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()

	once.Do(func() {
		serverDSN, sharedDSN, initErr = startContainerAndMigrate()
	})
	if initErr != nil {
		t.Fatalf("testhelper: failed to setup test DB: %v", initErr)
	}

	return connect(t, sharedDSN)
}

// SetupIsolatedDB creates a fresh, migrated database on the shared container
// for tests that depend on global table state (group numbering, the oldest
// open group). The database is dropped via t.Cleanup.
func SetupIsolatedDB(t *testing.T) *pgxpool.Pool {
	t.Helper()

	once.Do(func() {
		serverDSN, sharedDSN, initErr = startContainerAndMigrate()
	})
	if initErr != nil {
		t.Fatalf("testhelper: failed to setup test DB: %v", initErr)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	admin, err := pgx.Connect(ctx, serverDSN)
	if err != nil {
		t.Fatalf("testhelper: connect to server: %v", err)
	}
	defer admin.Close(ctx)

	name := "murmur_" + strings.ReplaceAll(uniqueSuffix(), "-", "")
	if _, err := admin.Exec(ctx, "CREATE DATABASE "+pgx.Identifier{name}.Sanitize()); err != nil {
		t.Fatalf("testhelper: create database %s: %v", name, err)
	}

	cfg, err := pgxpool.ParseConfig(serverDSN)
	if err != nil {
		t.Fatalf("testhelper: parse dsn: %v", err)
	}
	cfg.ConnConfig.Database = name

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		t.Fatalf("testhelper: failed to create pgxpool: %v", err)
	}

	t.Cleanup(func() {
		pool.Close()
		dropCtx, dropCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer dropCancel()
		conn, err := pgx.Connect(dropCtx, serverDSN)
		if err != nil {
			return
		}
		defer conn.Close(dropCtx)
		_, _ = conn.Exec(dropCtx, "DROP DATABASE IF EXISTS "+pgx.Identifier{name}.Sanitize()+" WITH (FORCE)")
	})

	if _, err := postgres.Migrate(ctx, pool); err != nil {
		t.Fatalf("testhelper: migrate %s: %v", name, err)
	}

	return pool
}

func connect(t *testing.T, dsn string) *pgxpool.Pool {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("testhelper: failed to create pgxpool: %v", err)
	}

	t.Cleanup(func() {
		pool.Close()
	})

	return pool
}

// startContainerAndMigrate returns the DSN of the server's maintenance
// database and the DSN of the migrated shared test database.
func startContainerAndMigrate() (string, string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:17-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "murmur",
			"POSTGRES_PASSWORD": "murmur",
			"POSTGRES_DB":       "murmur_test",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return "", "", fmt.Errorf("start container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return "", "", fmt.Errorf("get container host: %w", err)
	}

	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		return "", "", fmt.Errorf("get mapped port: %w", err)
	}

	server := fmt.Sprintf("postgres://murmur:murmur@%s:%s/postgres?sslmode=disable", host, port.Port())
	dsn := fmt.Sprintf("postgres://murmur:murmur@%s:%s/murmur_test?sslmode=disable", host, port.Port())

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return "", "", fmt.Errorf("create migration pool: %w", err)
	}
	defer pool.Close()

	if _, err := postgres.Migrate(ctx, pool); err != nil {
		return "", "", fmt.Errorf("migrate: %w", err)
	}

	return server, dsn, nil
}
