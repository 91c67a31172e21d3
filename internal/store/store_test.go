package store

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JonMunkholm/OrderClean/internal/cleaning"
	"github.com/JonMunkholm/OrderClean/internal/orders"
)

func cleanedTable(t *testing.T, data string) *orders.Table {
	t.Helper()
	tbl, err := orders.Decode(strings.NewReader(data))
	require.NoError(t, err)

	p := cleaning.New(cleaning.WithClock(func() time.Time {
		return time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	}))
	return p.Run(context.Background(), tbl).Table
}

func TestOrderRows(t *testing.T) {
	tbl := cleanedTable(t, "order_id,order_date,quantity,price,email\n"+
		"A1,01/15/2024,2,$9.99,bad\n"+
		"A2,,,,a@example.com\n")
	id := pgtype.UUID{Bytes: uuid.New(), Valid: true}

	rows := orderRows(id, tbl)

	require.Len(t, rows, 2)
	for _, r := range rows {
		assert.Len(t, r, len(copyColumns))
		assert.Equal(t, id, r[0])
	}
	assert.Equal(t, int32(1), rows[0][1])
	assert.Equal(t, int32(2), rows[1][1])

	assert.Equal(t, pgtype.Text{String: "A1", Valid: true}, rows[0][2])
	assert.Equal(t, pgtype.Text{}, rows[0][4], "invalid email should be NULL")
	assert.Equal(t, pgtype.Date{Time: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), Valid: true}, rows[0][6])
	assert.Equal(t, pgtype.Int8{Int64: 2, Valid: true}, rows[0][9])
	assert.Equal(t, pgtype.Float8{Float64: 9.99, Valid: true}, rows[0][10])

	// Columns missing from the input are NULL.
	assert.Equal(t, pgtype.Text{}, rows[0][3])
	assert.Equal(t, pgtype.Date{}, rows[1][6])
	assert.Nil(t, rows[0][12])
}

func TestOrderRows_Extras(t *testing.T) {
	tbl := cleanedTable(t, "order_id,notes,channel\nA1,gift,web\nA2,,store\n")

	rows := orderRows(pgtype.UUID{Bytes: uuid.New(), Valid: true}, tbl)

	assert.Equal(t, map[string]string{"notes": "gift", "channel": "web"}, rows[0][12])
	assert.Equal(t, map[string]string{"notes": "", "channel": "store"}, rows[1][12])
}

func TestStore_SaveRun(t *testing.T) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	defer pool.Close()

	s := New(pool)
	require.NoError(t, s.Migrate(ctx))

	run := &Run{
		ID:           uuid.New(),
		Source:       "store_test.csv",
		ProcessedAt:  time.Now().UTC().Truncate(time.Microsecond),
		OriginalRows: 3,
		Changes: []cleaning.Entry{
			{Step: cleaning.StepRemoveDuplicates, Description: "Duplicate rows removed", Count: 1},
		},
		Cleaned: cleanedTable(t, "order_id,price\nA1,$5\nA2,7.25\n"),
	}
	require.NoError(t, s.SaveRun(ctx, run))
	t.Cleanup(func() {
		pool.Exec(ctx, "DELETE FROM cleaning_runs WHERE id = $1", pgtype.UUID{Bytes: run.ID, Valid: true})
	})

	var stored int
	require.NoError(t, pool.QueryRow(ctx,
		"SELECT COUNT(*) FROM cleaned_orders WHERE run_id = $1",
		pgtype.UUID{Bytes: run.ID, Valid: true}).Scan(&stored))
	assert.Equal(t, 2, stored)

	records, err := s.RecentRuns(ctx, 50)
	require.NoError(t, err)

	var found *RunRecord
	for i := range records {
		if records[i].ID == run.ID.String() {
			found = &records[i]
		}
	}
	require.NotNil(t, found)
	assert.Equal(t, 3, found.OriginalRows)
	assert.Equal(t, 2, found.CleanedRows)
	assert.Equal(t, 1, found.Changes)
}
