package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	_ "modernc.org/sqlite" // registers the "sqlite" database/sql driver
)

// Querier renders a complete SQL statement. It is implemented by
// *sqlbuilder.Builder; render errors propagate unchanged from every helper.
type Querier interface {
	SQL() (string, error)
}

// ExecQuerier wraps the standard ExecContext and QueryContext methods shared
// by *sql.DB, *sql.Conn and *sql.Tx.
type ExecQuerier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// Conn provides the statement helpers on top of an ExecQuerier. It is
// embedded by both Driver and Tx, so statements run the same way inside and
// outside a transaction.
type Conn struct {
	ExecQuerier
}

// Driver is a SQLite database handle backed by a pooled database/sql
// connection.
type Driver struct {
	Conn
}

// Open opens a pooled connection to the SQLite database at the given source
// (a file path or DSN understood by modernc.org/sqlite).
func Open(source string) (*Driver, error) {
	db, err := sql.Open("sqlite", source)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open: %w", err)
	}
	return OpenDB(db), nil
}

// OpenDB wraps an existing database/sql pool with a Driver.
func OpenDB(db *sql.DB) *Driver {
	return &Driver{Conn: Conn{ExecQuerier: db}}
}

// DB returns the underlying *sql.DB instance.
func (d *Driver) DB() *sql.DB {
	return d.ExecQuerier.(*sql.DB)
}

// Close closes the underlying connection pool.
func (d *Driver) Close() error {
	return d.DB().Close()
}

// Tx starts and returns a transaction. The returned Tx exposes the same
// statement helpers as the Driver.
func (d *Driver) Tx(ctx context.Context) (*Tx, error) {
	tx, err := d.DB().BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("sqlite: begin: %w", err)
	}
	return &Tx{Conn: Conn{ExecQuerier: tx}, tx: tx}, nil
}

// Tx is a transaction scoped to a single connection.
type Tx struct {
	Conn
	tx *sql.Tx
}

// Commit commits the transaction.
func (t *Tx) Commit() error { return t.tx.Commit() }

// Rollback rolls the transaction back.
func (t *Tx) Rollback() error { return t.tx.Rollback() }

// Exec renders the statement and executes it, discarding any result rows.
func (c Conn) Exec(ctx context.Context, q Querier) error {
	query, err := q.SQL()
	if err != nil {
		return err
	}
	slog.Debug("exec statement", "query", query)
	if _, err := c.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("sqlite: exec: %w", err)
	}
	return nil
}

// Get renders the statement, executes it and returns all rows with each
// cell converted to a JSON-like value (nil, int64 or string).
func (c Conn) Get(ctx context.Context, q Querier) ([][]any, error) {
	rows, err := c.Rows(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var result [][]any
	for rows.Next() {
		row, err := rows.Row()
		if err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: rows: %w", err)
	}
	return result, nil
}

// GetRow renders the statement, executes it and returns the first row
// converted to JSON-like values. An empty result set yields an empty row.
func (c Conn) GetRow(ctx context.Context, q Querier) ([]any, error) {
	rows, err := c.Rows(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("sqlite: rows: %w", err)
		}
		return []any{}, nil
	}
	return rows.Row()
}

// GetValue renders the statement, executes it and returns the first value of
// the first row. ErrNoRows is returned when the result set is empty.
func (c Conn) GetValue(ctx context.Context, q Querier) (any, error) {
	rows, err := c.Rows(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("sqlite: rows: %w", err)
		}
		return nil, ErrNoRows
	}
	row, err := rows.Row()
	if err != nil {
		return nil, err
	}
	if len(row) == 0 {
		return nil, ErrNoRows
	}
	return row[0], nil
}

// GetInt executes the statement and returns the first value as an int64.
func (c Conn) GetInt(ctx context.Context, q Querier) (int64, error) {
	v, err := c.GetValue(ctx, q)
	if err != nil {
		return 0, err
	}
	n, ok := v.(int64)
	if !ok {
		return 0, fmt.Errorf("%w: %T is not an integer", ErrUnsupportedType, v)
	}
	return n, nil
}

// GetString executes the statement and returns the first value as a string.
func (c Conn) GetString(ctx context.Context, q Querier) (string, error) {
	v, err := c.GetValue(ctx, q)
	if err != nil {
		return "", err
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: %T is not a string", ErrUnsupportedType, v)
	}
	return s, nil
}

// Rows renders the statement, executes it and returns a cursor for manual
// iteration. The caller must Close it.
func (c Conn) Rows(ctx context.Context, q Querier) (*Rows, error) {
	query, err := q.SQL()
	if err != nil {
		return nil, err
	}
	slog.Debug("query statement", "query", query)
	rows, err := c.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("sqlite: query: %w", err)
	}
	return &Rows{rows: rows}, nil
}
