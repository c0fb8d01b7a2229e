//go:build e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestUser(t *testing.T, db DBLike, userID int64, fullName string) int64 {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"INSERT INTO users (id, full_name) VALUES ($1, $2) ON CONFLICT (id) DO NOTHING",
		userID, fullName)
	require.NoError(t, err)
	return userID
}

func CreateTestJob(t *testing.T, db DBLike, title string) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(),
		"INSERT INTO jobs (title) VALUES ($1) RETURNING id", title).Scan(&id)
	require.NoError(t, err)
	return id
}

func CreateTestActivity(t *testing.T, db DBLike, title string, start, end time.Time) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(),
		"INSERT INTO activities (title, start_time, end_time) VALUES ($1, $2, $3) RETURNING id",
		title, start, end).Scan(&id)
	require.NoError(t, err)
	return id
}

func CreateJobApplication(t *testing.T, db DBLike, userID, jobID int64) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(),
		"INSERT INTO applications (user_id, job_id) VALUES ($1, $2) RETURNING id",
		userID, jobID).Scan(&id)
	require.NoError(t, err)
	return id
}

func CreateActivityApplication(t *testing.T, db DBLike, userID, activityID int64, status string) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(),
		"INSERT INTO applications (user_id, activity_id, status) VALUES ($1, $2, $3) RETURNING id",
		userID, activityID, status).Scan(&id)
	require.NoError(t, err)
	return id
}

func ReminderRecordExists(t *testing.T, db DBLike, userID, activityID int64, kind string) bool {
	t.Helper()

	var exists bool
	err := db.QueryRow(context.Background(),
		"SELECT EXISTS (SELECT 1 FROM activity_reminders WHERE user_id = $1 AND activity_id = $2 AND reminder_type = $3)",
		userID, activityID, kind).Scan(&exists)
	require.NoError(t, err)
	return exists
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables except the migration ledger
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
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
