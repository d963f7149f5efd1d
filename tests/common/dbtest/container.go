//go:build e2e

package dbtest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const migrationFile = "migrations/001_initial_schema.sql"

var (
	pgOnce sync.Once
	pgPool *pgxpool.Pool
	pgErr  error
)

// Postgres returns a migrated pool backed by one container per test process.
// Callers reset state with ResetDB.
func Postgres(t *testing.T) *pgxpool.Pool {
	t.Helper()

	pgOnce.Do(func() { pgPool, pgErr = startPostgres() })
	require.NoError(t, pgErr, "postgres container setup failed")
	require.NoError(t, ResetDB(pgPool))
	return pgPool
}

func startPostgres() (*pgxpool.Pool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:17",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "test",
				"POSTGRES_PASSWORD": "testpass",
				"POSTGRES_DB":       "cuponera",
			},
			Tmpfs: map[string]string{"/var/lib/postgresql/data": "rw,size=256m"},
			Cmd:   []string{"postgres", "-c", "fsync=off", "-c", "synchronous_commit=off"},
			WaitingFor: wait.ForSQL("5432/tcp", "pgx", func(host string, port nat.Port) string {
				return fmt.Sprintf("postgres://test:testpass@%s:%s/cuponera?sslmode=disable", host, port.Port())
			}).WithStartupTimeout(60 * time.Second),
			Labels: map[string]string{"purpose": "repository-tests"},
		},
		Started: true,
	})
	if err != nil {
		return nil, fmt.Errorf("start container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return nil, err
	}
	port, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		return nil, err
	}

	cfg, err := pgxpool.ParseConfig(fmt.Sprintf(
		"postgres://test:testpass@%s:%s/cuponera?sslmode=disable&timezone=America/Guayaquil", host, port.Port()))
	if err != nil {
		return nil, err
	}
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}

	schema, err := readMigration()
	if err != nil {
		return nil, err
	}
	if _, err := pool.Exec(ctx, string(schema)); err != nil {
		return nil, fmt.Errorf("apply %s: %w", migrationFile, err)
	}
	return pool, nil
}

// readMigration walks up from the package directory to the repo root.
func readMigration() ([]byte, error) {
	path := migrationFile
	for range 5 {
		if b, err := os.ReadFile(path); err == nil {
			return b, nil
		}
		path = filepath.Join("..", path)
	}
	return nil, fmt.Errorf("migration %s not found", migrationFile)
}
