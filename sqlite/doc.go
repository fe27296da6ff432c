// Package sqlite executes statements produced by the sqlbuilder package
// against a SQLite database.
//
// It is thin plumbing over database/sql using the CGo-free
// modernc.org/sqlite driver: pooled-connection acquisition, statement
// execution, cursor iteration and row-to-JSON-like value conversion
// (every cell becomes nil, int64 or string).
//
//	drv, err := sqlite.Open("books.db")
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer drv.Close()
//
//	count, err := drv.GetInt(ctx, sqlbuilder.SelectFrom("books").Field("COUNT(id)"))
//
// A Driver can be wrapped with NewStatsDriver to collect execution
// statistics and flag slow statements.
package sqlite
