package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
)

// Sentinel errors for the execution glue.
var (
	// ErrNoRows is returned when a single-value helper finds an empty
	// result set.
	ErrNoRows = errors.New("sqlite: no rows in result")

	// ErrUnsupportedType is returned when a column value cannot be
	// converted to a JSON-like value.
	ErrUnsupportedType = errors.New("sqlite: unsupported value type")
)

// Rows is a cursor over a query's result set. Each row converts to a slice
// of JSON-like values via Row.
type Rows struct {
	rows *sql.Rows
}

// Next prepares the next row for reading with Row. It returns false when
// there are no more rows.
func (r *Rows) Next() bool { return r.rows.Next() }

// Err returns the error, if any, encountered during iteration.
func (r *Rows) Err() error { return r.rows.Err() }

// Close closes the cursor, releasing its connection back to the pool.
func (r *Rows) Close() error { return r.rows.Close() }

// Columns returns the column names of the result set.
func (r *Rows) Columns() ([]string, error) { return r.rows.Columns() }

// Row scans the current row and converts every cell to a JSON-like value:
// nil, int64 or string. Any other database value type is an
// ErrUnsupportedType error. Converted rows marshal directly with
// encoding/json.
func (r *Rows) Row() ([]any, error) {
	cols, err := r.rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("sqlite: columns: %w", err)
	}
	raw := make([]any, len(cols))
	dest := make([]any, len(cols))
	for i := range raw {
		dest[i] = &raw[i]
	}
	if err := r.rows.Scan(dest...); err != nil {
		return nil, fmt.Errorf("sqlite: scan: %w", err)
	}
	row := make([]any, len(raw))
	for i, v := range raw {
		cv, err := convertValue(v)
		if err != nil {
			return nil, err
		}
		row[i] = cv
	}
	return row, nil
}

// convertValue maps a driver value to a JSON-like value.
// NULL, integer and text columns are supported; everything else is rejected
// at this boundary.
func convertValue(v any) (any, error) {
	switch v := v.(type) {
	case nil:
		return nil, nil
	case int64:
		return v, nil
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedType, v)
	}
}
