package sqlbuilder

import "errors"

// Structural errors reported at render time. Accumulators never fail;
// these are the only checks the builder performs.
var (
	// ErrNoTableName is returned when rendering a statement with an empty
	// table name.
	ErrNoTableName = errors.New("sqlbuilder: no table name")

	// ErrNoValues is returned when rendering an INSERT with neither value
	// tuples nor a select source.
	ErrNoValues = errors.New("sqlbuilder: no values")

	// ErrNoSetFields is returned when rendering an UPDATE with no SET
	// assignments.
	ErrNoSetFields = errors.New("sqlbuilder: no set fields")
)
