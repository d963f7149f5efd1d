//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// bcrypt("password123"), same as builder.PasswordHash
const passwordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

func CityID(t *testing.T, db DBLike, name string) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(), "SELECT id FROM cities WHERE name = $1", name).Scan(&id)
	require.NoError(t, err, "city %s is not seeded", name)
	return id
}

type ActorFixture struct {
	Email       string
	Role        string
	Responsible *uuid.UUID
	CityIDs     []uuid.UUID
	Inactive    bool
}

func CreateActor(t *testing.T, db DBLike, f ActorFixture) uuid.UUID {
	t.Helper()

	if f.CityIDs == nil {
		f.CityIDs = []uuid.UUID{}
	}
	id := uuid.New()
	_, err := db.Exec(context.Background(),
		`INSERT INTO actors (id, name, email, password_hash, role, responsible_party_id, city_ids, active)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		id, strings.Split(f.Email, "@")[0], f.Email, passwordHash, f.Role, f.Responsible, f.CityIDs, !f.Inactive)
	require.NoError(t, err)
	return id
}

func CreateClient(t *testing.T, db DBLike, email string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		`INSERT INTO clients (id, first_name, identification, email, password_hash)
		 VALUES ($1, $2, $3, $4, $5)`,
		id, strings.Split(email, "@")[0], id.String()[:10], strings.ToLower(email), passwordHash)
	require.NoError(t, err)
	return id
}

func CreateBatch(t *testing.T, db DBLike, name string, ceiling int, cityIDs ...uuid.UUID) uuid.UUID {
	t.Helper()

	if cityIDs == nil {
		cityIDs = []uuid.UUID{}
	}
	id := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO batches (id, name, redemption_ceiling, city_ids) VALUES ($1, $2, $3, $4)",
		id, name, ceiling, cityIDs)
	require.NoError(t, err)
	return id
}

// CreateCoupon inserts an inactive coupon.
func CreateCoupon(t *testing.T, db DBLike, batchID uuid.UUID, sequence int) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO coupons (id, batch_id, sequence) VALUES ($1, $2, $3)", id, batchID, sequence)
	require.NoError(t, err)
	return id
}

func ScanCount(t *testing.T, db DBLike, couponID uuid.UUID) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT scan_count FROM coupons WHERE id = $1", couponID).Scan(&n)
	require.NoError(t, err)
	return n
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO cities (name) VALUES ('Quito'), ('Guayaquil'), ('Cuenca')
		ON CONFLICT (name) DO NOTHING;
	`)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO categories (name) VALUES ('Restaurantes'), ('Cafeterías'), ('Bienestar')
		ON CONFLICT (name) DO NOTHING;
	`)
	return err
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
