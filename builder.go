package sqlbuilder

import (
	"fmt"
	"strings"
)

// kind is the statement kind a Builder renders. It is fixed at construction
// and dispatched on exactly once at render time.
type kind int

const (
	kindSelect kind = iota
	kindInsert
	kindUpdate
	kindDelete
)

// Builder accumulates the clauses of a single SQL statement. It is created
// by one of SelectFrom, InsertInto, UpdateTable or DeleteFrom, mutated
// through chained accumulator calls and consumed by one of the render
// methods (SQL, Query, Subquery, SubqueryAs, QueryValues).
//
// Accumulators never validate their input. Malformed fragments surface only
// as malformed output.
type Builder struct {
	kind     kind
	table    string
	distinct bool
	fields   []string
	joins    []string
	sets     []string
	values   []string
	selects  string // INSERT source query, used instead of VALUES.
	groupBy  []string
	having   string
	wheres   []string
	orderBy  []string
	limit    *int
	offset   *int
	unions   string

	// Pending join modifiers, consumed by the next Join call.
	joinNatural  bool
	joinOperator string
}

// SelectFrom starts a SELECT statement. The table may be a comma separated
// table list or a parenthesized subquery produced by Subquery.
func SelectFrom(table string) *Builder {
	return &Builder{kind: kindSelect, table: table}
}

// InsertInto starts an INSERT statement.
func InsertInto(table string) *Builder {
	return &Builder{kind: kindInsert, table: table}
}

// UpdateTable starts an UPDATE statement.
func UpdateTable(table string) *Builder {
	return &Builder{kind: kindUpdate, table: table}
}

// DeleteFrom starts a DELETE statement.
func DeleteFrom(table string) *Builder {
	return &Builder{kind: kindDelete, table: table}
}

// Distinct sets the DISTINCT flag. Only SELECT rendering consults it.
func (b *Builder) Distinct() *Builder {
	b.distinct = true
	return b
}

// Field appends one field expression to the field list.
// For SELECT the list is the projection, for INSERT the column list.
func (b *Builder) Field(field string) *Builder {
	b.fields = append(b.fields, field)
	return b
}

// Fields appends several field expressions at once.
func (b *Builder) Fields(fields ...string) *Builder {
	b.fields = append(b.fields, fields...)
	return b
}

// SetField replaces the accumulated field list with the given field.
// Together with SetFields it allows reusing one builder for two renders with
// different projections, such as a COUNT query followed by a results query.
func (b *Builder) SetField(field string) *Builder {
	b.fields = append(b.fields[:0], field)
	return b
}

// SetFields replaces the accumulated field list wholesale.
func (b *Builder) SetFields(fields ...string) *Builder {
	b.fields = append(b.fields[:0], fields...)
	return b
}

// Set appends a "field = value" assignment for UPDATE. The value is rendered
// verbatim, so numeric and expression values are not quoted.
func (b *Builder) Set(field string, value any) *Builder {
	b.sets = append(b.sets, fmt.Sprintf("%s = %v", field, value))
	return b
}

// SetStr appends a "field = 'value'" assignment for UPDATE, escaping and
// quoting the value as a string literal.
func (b *Builder) SetStr(field, value string) *Builder {
	b.sets = append(b.sets, field+" = "+Quote(value))
	return b
}

// Values appends one parenthesized value tuple for INSERT.
func (b *Builder) Values(values ...any) *Builder {
	vals := make([]string, len(values))
	for i, v := range values {
		vals[i] = fmt.Sprintf("%v", v)
	}
	b.values = append(b.values, "("+strings.Join(vals, ", ")+")")
	return b
}

// Select stores a query to be used as the INSERT source instead of VALUES.
func (b *Builder) Select(query string) *Builder {
	b.selects = query
	return b
}

// Natural marks the next Join as NATURAL.
func (b *Builder) Natural() *Builder {
	b.joinNatural = true
	return b
}

// Left marks the next Join as LEFT.
func (b *Builder) Left() *Builder {
	b.joinOperator = "LEFT"
	return b
}

// LeftOuter marks the next Join as LEFT OUTER.
func (b *Builder) LeftOuter() *Builder {
	b.joinOperator = "LEFT OUTER"
	return b
}

// Right marks the next Join as RIGHT.
func (b *Builder) Right() *Builder {
	b.joinOperator = "RIGHT"
	return b
}

// RightOuter marks the next Join as RIGHT OUTER.
func (b *Builder) RightOuter() *Builder {
	b.joinOperator = "RIGHT OUTER"
	return b
}

// Inner marks the next Join as INNER.
func (b *Builder) Inner() *Builder {
	b.joinOperator = "INNER"
	return b
}

// Cross marks the next Join as CROSS.
func (b *Builder) Cross() *Builder {
	b.joinOperator = "CROSS"
	return b
}

// Join appends a join with the given table, consuming any pending join
// modifiers set by Natural, Left, LeftOuter, Right, RightOuter, Inner or
// Cross. Attach the constraint with On.
func (b *Builder) Join(table string) *Builder {
	var sb strings.Builder
	if b.joinNatural {
		sb.WriteString("NATURAL ")
	}
	if b.joinOperator != "" {
		sb.WriteString(b.joinOperator)
		sb.WriteByte(' ')
	}
	sb.WriteString("JOIN ")
	sb.WriteString(table)
	b.joins = append(b.joins, sb.String())
	b.joinNatural = false
	b.joinOperator = ""
	return b
}

// On appends an ON constraint to the most recently added join.
// It is a no-op when no join has been added.
func (b *Builder) On(constraint string) *Builder {
	if len(b.joins) > 0 {
		b.joins[len(b.joins)-1] += " ON " + constraint
	}
	return b
}

// GroupBy appends a grouping expression.
func (b *Builder) GroupBy(field string) *Builder {
	b.groupBy = append(b.groupBy, field)
	return b
}

// Having sets the HAVING condition. The renderer emits it whenever set,
// even without GROUP BY, matching SQL's own permissiveness.
func (b *Builder) Having(cond string) *Builder {
	b.having = cond
	return b
}

// AndWhere appends a new independent WHERE condition. Conditions added this
// way are parenthesized and joined with AND once there is more than one.
func (b *Builder) AndWhere(cond string) *Builder {
	b.wheres = append(b.wheres, cond)
	return b
}

// AndWhereEq appends a "field = value" condition.
func (b *Builder) AndWhereEq(field string, value any) *Builder {
	return b.AndWhere(binaryCond(field, "=", value))
}

// AndWhereNe appends a "field <> value" condition.
func (b *Builder) AndWhereNe(field string, value any) *Builder {
	return b.AndWhere(binaryCond(field, "<>", value))
}

// AndWhereGt appends a "field > value" condition.
func (b *Builder) AndWhereGt(field string, value any) *Builder {
	return b.AndWhere(binaryCond(field, ">", value))
}

// AndWhereGe appends a "field >= value" condition.
func (b *Builder) AndWhereGe(field string, value any) *Builder {
	return b.AndWhere(binaryCond(field, ">=", value))
}

// AndWhereLt appends a "field < value" condition.
func (b *Builder) AndWhereLt(field string, value any) *Builder {
	return b.AndWhere(binaryCond(field, "<", value))
}

// AndWhereLe appends a "field <= value" condition.
func (b *Builder) AndWhereLe(field string, value any) *Builder {
	return b.AndWhere(binaryCond(field, "<=", value))
}

// AndWhereLike appends a "field LIKE 'mask'" condition. The mask is used
// verbatim; the caller escapes it if needed.
func (b *Builder) AndWhereLike(field, mask string) *Builder {
	return b.AndWhere(likeCond(field, "LIKE", mask, "", ""))
}

// AndWhereLikeLeft appends a "field LIKE 'mask%'" condition, escaping the
// mask and anchoring it at the start.
func (b *Builder) AndWhereLikeLeft(field, mask string) *Builder {
	return b.AndWhere(likeCond(field, "LIKE", Esc(mask), "", "%"))
}

// AndWhereLikeRight appends a "field LIKE '%mask'" condition, escaping the
// mask and anchoring it at the end.
func (b *Builder) AndWhereLikeRight(field, mask string) *Builder {
	return b.AndWhere(likeCond(field, "LIKE", Esc(mask), "%", ""))
}

// AndWhereLikeAny appends a "field LIKE '%mask%'" condition, escaping the
// mask and matching it anywhere.
func (b *Builder) AndWhereLikeAny(field, mask string) *Builder {
	return b.AndWhere(likeCond(field, "LIKE", Esc(mask), "%", "%"))
}

// AndWhereNotLike appends a "field NOT LIKE 'mask'" condition with the mask
// used verbatim.
func (b *Builder) AndWhereNotLike(field, mask string) *Builder {
	return b.AndWhere(likeCond(field, "NOT LIKE", mask, "", ""))
}

// AndWhereNotLikeLeft appends a "field NOT LIKE 'mask%'" condition.
func (b *Builder) AndWhereNotLikeLeft(field, mask string) *Builder {
	return b.AndWhere(likeCond(field, "NOT LIKE", Esc(mask), "", "%"))
}

// AndWhereNotLikeRight appends a "field NOT LIKE '%mask'" condition.
func (b *Builder) AndWhereNotLikeRight(field, mask string) *Builder {
	return b.AndWhere(likeCond(field, "NOT LIKE", Esc(mask), "%", ""))
}

// AndWhereNotLikeAny appends a "field NOT LIKE '%mask%'" condition.
func (b *Builder) AndWhereNotLikeAny(field, mask string) *Builder {
	return b.AndWhere(likeCond(field, "NOT LIKE", Esc(mask), "%", "%"))
}

// AndWhereIsNull appends a "field IS NULL" condition.
func (b *Builder) AndWhereIsNull(field string) *Builder {
	return b.AndWhere(field + " IS NULL")
}

// AndWhereIsNotNull appends a "field IS NOT NULL" condition.
func (b *Builder) AndWhereIsNotNull(field string) *Builder {
	return b.AndWhere(field + " IS NOT NULL")
}

// OrWhere extends the most recently added WHERE condition with "OR cond".
// OR-chains built this way bind tighter than the implicit AND across
// separate AndWhere calls: each top-level entry is one OR-chain. With no
// prior condition, OrWhere degrades to AndWhere.
func (b *Builder) OrWhere(cond string) *Builder {
	if n := len(b.wheres); n > 0 {
		b.wheres[n-1] += " OR " + cond
		return b
	}
	return b.AndWhere(cond)
}

// OrWhereEq extends the last condition with "OR field = value".
func (b *Builder) OrWhereEq(field string, value any) *Builder {
	return b.OrWhere(binaryCond(field, "=", value))
}

// OrWhereNe extends the last condition with "OR field <> value".
func (b *Builder) OrWhereNe(field string, value any) *Builder {
	return b.OrWhere(binaryCond(field, "<>", value))
}

// OrWhereGt extends the last condition with "OR field > value".
func (b *Builder) OrWhereGt(field string, value any) *Builder {
	return b.OrWhere(binaryCond(field, ">", value))
}

// OrWhereGe extends the last condition with "OR field >= value".
func (b *Builder) OrWhereGe(field string, value any) *Builder {
	return b.OrWhere(binaryCond(field, ">=", value))
}

// OrWhereLt extends the last condition with "OR field < value".
func (b *Builder) OrWhereLt(field string, value any) *Builder {
	return b.OrWhere(binaryCond(field, "<", value))
}

// OrWhereLe extends the last condition with "OR field <= value".
func (b *Builder) OrWhereLe(field string, value any) *Builder {
	return b.OrWhere(binaryCond(field, "<=", value))
}

// OrWhereLike extends the last condition with "OR field LIKE 'mask'".
func (b *Builder) OrWhereLike(field, mask string) *Builder {
	return b.OrWhere(likeCond(field, "LIKE", mask, "", ""))
}

// OrWhereLikeLeft extends the last condition with "OR field LIKE 'mask%'".
func (b *Builder) OrWhereLikeLeft(field, mask string) *Builder {
	return b.OrWhere(likeCond(field, "LIKE", Esc(mask), "", "%"))
}

// OrWhereLikeRight extends the last condition with "OR field LIKE '%mask'".
func (b *Builder) OrWhereLikeRight(field, mask string) *Builder {
	return b.OrWhere(likeCond(field, "LIKE", Esc(mask), "%", ""))
}

// OrWhereLikeAny extends the last condition with "OR field LIKE '%mask%'".
func (b *Builder) OrWhereLikeAny(field, mask string) *Builder {
	return b.OrWhere(likeCond(field, "LIKE", Esc(mask), "%", "%"))
}

// OrWhereNotLike extends the last condition with "OR field NOT LIKE 'mask'".
func (b *Builder) OrWhereNotLike(field, mask string) *Builder {
	return b.OrWhere(likeCond(field, "NOT LIKE", mask, "", ""))
}

// OrWhereNotLikeLeft extends the last condition with "OR field NOT LIKE 'mask%'".
func (b *Builder) OrWhereNotLikeLeft(field, mask string) *Builder {
	return b.OrWhere(likeCond(field, "NOT LIKE", Esc(mask), "", "%"))
}

// OrWhereNotLikeRight extends the last condition with "OR field NOT LIKE '%mask'".
func (b *Builder) OrWhereNotLikeRight(field, mask string) *Builder {
	return b.OrWhere(likeCond(field, "NOT LIKE", Esc(mask), "%", ""))
}

// OrWhereNotLikeAny extends the last condition with "OR field NOT LIKE '%mask%'".
func (b *Builder) OrWhereNotLikeAny(field, mask string) *Builder {
	return b.OrWhere(likeCond(field, "NOT LIKE", Esc(mask), "%", "%"))
}

// OrWhereIsNull extends the last condition with "OR field IS NULL".
func (b *Builder) OrWhereIsNull(field string) *Builder {
	return b.OrWhere(field + " IS NULL")
}

// OrWhereIsNotNull extends the last condition with "OR field IS NOT NULL".
func (b *Builder) OrWhereIsNotNull(field string) *Builder {
	return b.OrWhere(field + " IS NOT NULL")
}

// OrderBy appends an ordering field, descending when desc is true.
func (b *Builder) OrderBy(field string, desc bool) *Builder {
	if desc {
		field += " DESC"
	}
	b.orderBy = append(b.orderBy, field)
	return b
}

// OrderAsc appends an ascending ordering field.
func (b *Builder) OrderAsc(field string) *Builder {
	return b.OrderBy(field, false)
}

// OrderDesc appends a descending ordering field.
func (b *Builder) OrderDesc(field string) *Builder {
	return b.OrderBy(field, true)
}

// Limit sets the LIMIT value. The last write wins.
func (b *Builder) Limit(limit int) *Builder {
	b.limit = &limit
	return b
}

// Offset sets the OFFSET value. The last write wins.
func (b *Builder) Offset(offset int) *Builder {
	b.offset = &offset
	return b
}

// Union appends a trailing "UNION query" after the primary query. The caller
// is responsible for keeping ORDER BY in the final branch only, per SQL rules.
func (b *Builder) Union(query string) *Builder {
	b.unions += " UNION " + query
	return b
}

// UnionAll appends a trailing "UNION ALL query" after the primary query.
func (b *Builder) UnionAll(query string) *Builder {
	b.unions += " UNION ALL " + query
	return b
}

// binaryCond renders "field op value" with the value formatted verbatim.
func binaryCond(field, op string, value any) string {
	return fmt.Sprintf("%s %s %v", field, op, value)
}

// likeCond renders "field op 'prefix+mask+suffix'".
func likeCond(field, op, mask, prefix, suffix string) string {
	return field + " " + op + " '" + prefix + mask + suffix + "'"
}
