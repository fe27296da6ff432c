package sqlite

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/sqlbuilder"
)

func newMockStatsDriver(t *testing.T, opts ...StatsOption) (*StatsDriver, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewStatsDriver(OpenDB(db), opts...), mock
}

func TestStatsCounting(t *testing.T) {
	drv, mock := newMockStatsDriver(t)

	mock.ExpectExec("DELETE FROM books;").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT * FROM books;").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))
	mock.ExpectExec("UPDATE books SET price = 0;").WillReturnError(errors.New("locked"))

	ctx := context.Background()
	require.NoError(t, drv.Exec(ctx, sqlbuilder.DeleteFrom("books")))
	_, err := drv.Get(ctx, sqlbuilder.SelectFrom("books"))
	require.NoError(t, err)
	require.Error(t, drv.Exec(ctx, sqlbuilder.UpdateTable("books").Set("price", 0)))

	stats := drv.Stats()
	assert.Equal(t, int64(2), stats.TotalExecs)
	assert.Equal(t, int64(1), stats.TotalQueries)
	assert.Equal(t, int64(1), stats.Errors)
	assert.GreaterOrEqual(t, stats.TotalDuration, time.Duration(0))
	require.NoError(t, mock.ExpectationsWereMet())

	drv.Reset()
	assert.Equal(t, int64(0), drv.Stats().TotalExecs)
}

func TestStatsSlowQueryHook(t *testing.T) {
	var (
		mu   sync.Mutex
		slow []string
	)
	drv, mock := newMockStatsDriver(t,
		// Zero threshold flags every statement as slow.
		WithSlowThreshold(0),
		WithSlowQueryHook(func(_ context.Context, query string, _ time.Duration) {
			mu.Lock()
			slow = append(slow, query)
			mu.Unlock()
		}),
	)

	mock.ExpectQuery("SELECT * FROM books;").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))

	_, err := drv.Get(context.Background(), sqlbuilder.SelectFrom("books"))
	require.NoError(t, err)

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, slow, 1)
	assert.Equal(t, "SELECT * FROM books;", slow[0])
	assert.Equal(t, int64(1), drv.Stats().SlowQueries)
}

func TestStatsTransaction(t *testing.T) {
	drv, mock := newMockStatsDriver(t)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM books;").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	tx, err := drv.Tx(context.Background())
	require.NoError(t, err)
	require.NoError(t, tx.Exec(context.Background(), sqlbuilder.DeleteFrom("books")))
	require.NoError(t, tx.Commit())

	assert.Equal(t, int64(1), drv.Stats().TotalExecs)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStatsSnapshotString(t *testing.T) {
	var s StatsSnapshot
	assert.Equal(t, time.Duration(0), s.AvgDuration())

	s = StatsSnapshot{
		TotalQueries:  2,
		TotalExecs:    2,
		TotalDuration: 4 * time.Second,
		SlowQueries:   1,
		Errors:        1,
	}
	assert.Equal(t, time.Second, s.AvgDuration())
	assert.Equal(t, "queries=2 execs=2 duration=4s avg=1s slow=1 errors=1", s.String())
}
