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

	sqlc "seat-redeem/internal/infra/sqlc/generated"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by both the pool and an open transaction.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func InsertVoucher(t *testing.T, db DBLike, v sqlc.Vouchers) {
	t.Helper()

	_, err := db.Exec(context.Background(), `
		INSERT INTO vouchers (code, status, expires_at, has_warranty, warranty_days,
		                      warranty_expires_at, used_by_email, used_resource_id, used_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		v.Code, v.Status, v.ExpiresAt, v.HasWarranty, v.WarrantyDays,
		v.WarrantyExpiresAt, v.UsedByEmail, v.UsedResourceID, v.UsedAt, v.CreatedAt)
	require.NoError(t, err)
}

func InsertResource(t *testing.T, db DBLike, r sqlc.Resources) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(), `
		INSERT INTO resources (name, status, current_members, max_members, expires_at,
		                       credential_encrypted, external_account_id, subscription_plan)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`,
		r.Name, r.Status, r.CurrentMembers, r.MaxMembers, r.ExpiresAt,
		r.CredentialEncrypted, r.ExternalAccountID, r.SubscriptionPlan).Scan(&id)
	require.NoError(t, err)
	return id
}

func InsertUsageRecord(t *testing.T, db DBLike, code, email string, resourceID int64, accountID string, redeemedAt time.Time) {
	t.Helper()

	_, err := db.Exec(context.Background(), `
		INSERT INTO usage_records (email, code, resource_id, external_account_id, redeemed_at)
		VALUES ($1, $2, $3, $4, $5)`,
		email, code, resourceID, accountID, redeemedAt)
	require.NoError(t, err)
}

func VoucherStatus(t *testing.T, db DBLike, code string) string {
	t.Helper()

	var status string
	err := db.QueryRow(context.Background(), "SELECT status FROM vouchers WHERE code = $1", code).Scan(&status)
	require.NoError(t, err)
	return status
}

type ResourceState struct {
	Status         string
	CurrentMembers int32
}

func GetResourceState(t *testing.T, db DBLike, id int64) ResourceState {
	t.Helper()

	var s ResourceState
	err := db.QueryRow(context.Background(),
		"SELECT status, current_members FROM resources WHERE id = $1", id).Scan(&s.Status, &s.CurrentMembers)
	require.NoError(t, err)
	return s
}

func CountUsageRecords(t *testing.T, db DBLike, code string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT COUNT(*) FROM usage_records WHERE code = $1", code).Scan(&n)
	require.NoError(t, err)
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates every application table
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
