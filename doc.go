// Package sqlbuilder provides a fluent builder for assembling SQL statements
// as plain text.
//
// A Builder accumulates clauses through chained method calls and renders them
// into a syntactically valid statement string. It performs no parsing and no
// semantic validation: field expressions, conditions and join constraints are
// caller-supplied raw fragments assembled positionally according to fixed
// grammar rules.
//
// # Statement Kinds
//
// Each Builder is created by one of four factories, which fix the statement
// kind for its lifetime:
//
//	sqlbuilder.SelectFrom("books")
//	sqlbuilder.InsertInto("books")
//	sqlbuilder.UpdateTable("books")
//	sqlbuilder.DeleteFrom("books")
//
// # Building Queries
//
// Accumulators return the same *Builder, so calls chain:
//
//	sql, err := sqlbuilder.SelectFrom("books").
//		Field("title").
//		Field("price").
//		AndWhere("price > 100").
//		OrderDesc("price").
//		Limit(10).
//		SQL()
//
//	// SELECT title, price FROM books WHERE price > 100 ORDER BY price DESC LIMIT 10;
//
// Repeated AndWhere calls are parenthesized and joined with AND; the OrWhere
// family extends the most recently added condition instead:
//
//	sqlbuilder.SelectFrom("books").
//		AndWhere("price > 100").
//		OrWhereEq("price", 0).
//		AndWhereLikeLeft("title", "Harry Potter")
//
//	// WHERE (price > 100 OR price = 0) AND (title LIKE 'Harry Potter%')
//
// # Fragments and Subqueries
//
// SQL renders a complete statement terminated with a semicolon. Query renders
// the bare fragment, suitable for UNION branches or as an INSERT source, and
// Subquery/SubqueryAs wrap it in parentheses:
//
//	q, _ := sqlbuilder.SelectFrom("warehouse").Field("title").Query()
//	sql, _ := sqlbuilder.InsertInto("books").Field("title").Select(q).SQL()
//
// # Escaping
//
// The builder never escapes caller-supplied fragments. Embedded string
// literals must be pre-escaped with Esc or Quote:
//
//	sqlbuilder.SelectFrom("books").
//		AndWhereEq("title", sqlbuilder.Quote("O'Brien's Tale"))
//
// Rendering is pure: a Builder may be rendered, mutated further (for example
// with SetFields to swap the projection) and rendered again.
//
// Builders carry no internal synchronization. Sharing one across goroutines
// requires external exclusion.
package sqlbuilder
