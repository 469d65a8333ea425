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

	"restaurant-reservation/internal/pkg/password"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const DefaultPassword = "password123"

// DBLike is satisfied by both a pool and a transaction.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

var (
	hashOnce    sync.Once
	defaultHash string
)

func passwordHash(t *testing.T) string {
	t.Helper()
	hashOnce.Do(func() {
		h, err := password.NewHasher(bcrypt.MinCost).Hash(DefaultPassword)
		require.NoError(t, err)
		defaultHash = h
	})
	return defaultHash
}

func CreateCustomer(t *testing.T, db DBLike, email, name, phone string) int64 {
	t.Helper()
	var id int64
	err := db.QueryRow(context.Background(),
		"INSERT INTO customers (email, password_hash, name, phone_number) VALUES ($1, $2, $3, $4) RETURNING id",
		email, passwordHash(t), name, phone).Scan(&id)
	require.NoError(t, err)
	return id
}

func CreateManager(t *testing.T, db DBLike, email, name, phone string) int64 {
	t.Helper()
	var id int64
	err := db.QueryRow(context.Background(),
		"INSERT INTO managers (email, password_hash, name, phone_number) VALUES ($1, $2, $3, $4) RETURNING id",
		email, passwordHash(t), name, phone).Scan(&id)
	require.NoError(t, err)
	return id
}

func CreateRestaurant(t *testing.T, db DBLike, managerID int64, name string) int64 {
	t.Helper()
	var id int64
	err := db.QueryRow(context.Background(),
		"INSERT INTO restaurants (manager_id, name, location) VALUES ($1, $2, 'Seoul') RETURNING id",
		managerID, name).Scan(&id)
	require.NoError(t, err)
	return id
}

// CreateReservation inserts a row directly, bypassing the future-time rule so tests can stage past slots.
func CreateReservation(t *testing.T, db DBLike, customerID, restaurantID, managerID int64, status string, at time.Time) int64 {
	t.Helper()
	var id int64
	err := db.QueryRow(context.Background(),
		`INSERT INTO reservations (customer_id, restaurant_id, manager_id, people_count, reservation_time, status)
		 VALUES ($1, $2, $3, 2, $4, $5) RETURNING id`,
		customerID, restaurantID, managerID, at, status).Scan(&id)
	require.NoError(t, err)
	return id
}

func ReservationStatus(t *testing.T, db DBLike, id int64) string {
	t.Helper()
	var status string
	err := db.QueryRow(context.Background(), "SELECT status FROM reservations WHERE id = $1", id).Scan(&status)
	require.NoError(t, err)
	return status
}

func CountEvents(t *testing.T, db DBLike, reservationID int64, eventType string) int {
	t.Helper()
	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM reservation_events WHERE reservation_id = $1 AND event_type = $2",
		reservationID, eventType).Scan(&n)
	require.NoError(t, err)
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('atlas_schema_revisions')`)
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
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
