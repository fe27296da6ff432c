package sqlbuilder

import (
	"strconv"
	"strings"
)

// SQL renders the complete statement terminated with a semicolon.
// Rendering is pure: the builder may be mutated and rendered again.
func (b *Builder) SQL() (string, error) {
	query, err := b.Query()
	if err != nil {
		return "", err
	}
	return query + ";", nil
}

// Query renders the statement as a bare fragment without the trailing
// semicolon, suitable for embedding as a subquery, an INSERT source or a
// UNION branch.
func (b *Builder) Query() (string, error) {
	switch b.kind {
	case kindInsert:
		return b.insertQuery()
	case kindUpdate:
		return b.updateQuery()
	case kindDelete:
		return b.deleteQuery()
	default:
		return b.selectQuery()
	}
}

// Subquery renders the fragment wrapped in parentheses.
func (b *Builder) Subquery() (string, error) {
	query, err := b.Query()
	if err != nil {
		return "", err
	}
	return "(" + query + ")", nil
}

// SubqueryAs renders the fragment wrapped in parentheses with an alias.
func (b *Builder) SubqueryAs(name string) (string, error) {
	query, err := b.Query()
	if err != nil {
		return "", err
	}
	return "(" + query + ") AS " + name, nil
}

// QueryValues renders a fields-only pseudo-select without a FROM clause,
// for selecting literal values. No table is required.
func (b *Builder) QueryValues() (string, error) {
	return "SELECT " + b.fieldList(), nil
}

func (b *Builder) selectQuery() (string, error) {
	if b.table == "" {
		return "", ErrNoTableName
	}
	var sb strings.Builder
	sb.WriteString("SELECT ")
	if b.distinct {
		sb.WriteString("DISTINCT ")
	}
	sb.WriteString(b.fieldList())
	sb.WriteString(" FROM ")
	sb.WriteString(b.table)
	for _, join := range b.joins {
		sb.WriteByte(' ')
		sb.WriteString(join)
	}
	if len(b.groupBy) > 0 {
		sb.WriteString(" GROUP BY ")
		sb.WriteString(strings.Join(b.groupBy, ", "))
	}
	if b.having != "" {
		sb.WriteString(" HAVING ")
		sb.WriteString(b.having)
	}
	b.writeWhere(&sb)
	if len(b.orderBy) > 0 {
		sb.WriteString(" ORDER BY ")
		sb.WriteString(strings.Join(b.orderBy, ", "))
	}
	if b.limit != nil {
		sb.WriteString(" LIMIT ")
		sb.WriteString(strconv.Itoa(*b.limit))
	}
	if b.offset != nil {
		sb.WriteString(" OFFSET ")
		sb.WriteString(strconv.Itoa(*b.offset))
	}
	sb.WriteString(b.unions)
	return sb.String(), nil
}

func (b *Builder) insertQuery() (string, error) {
	if b.table == "" {
		return "", ErrNoTableName
	}
	if len(b.values) == 0 && b.selects == "" {
		return "", ErrNoValues
	}
	var sb strings.Builder
	sb.WriteString("INSERT INTO ")
	sb.WriteString(b.table)
	if len(b.fields) > 0 {
		sb.WriteString(" (")
		sb.WriteString(strings.Join(b.fields, ", "))
		sb.WriteByte(')')
	}
	if b.selects != "" {
		sb.WriteByte(' ')
		sb.WriteString(b.selects)
	} else {
		sb.WriteString(" VALUES ")
		sb.WriteString(strings.Join(b.values, ", "))
	}
	return sb.String(), nil
}

func (b *Builder) updateQuery() (string, error) {
	if b.table == "" {
		return "", ErrNoTableName
	}
	if len(b.sets) == 0 {
		return "", ErrNoSetFields
	}
	var sb strings.Builder
	sb.WriteString("UPDATE ")
	sb.WriteString(b.table)
	sb.WriteString(" SET ")
	sb.WriteString(strings.Join(b.sets, ", "))
	b.writeWhere(&sb)
	return sb.String(), nil
}

func (b *Builder) deleteQuery() (string, error) {
	if b.table == "" {
		return "", ErrNoTableName
	}
	var sb strings.Builder
	sb.WriteString("DELETE FROM ")
	sb.WriteString(b.table)
	b.writeWhere(&sb)
	return sb.String(), nil
}

// fieldList renders the field list, defaulting to "*" when empty.
func (b *Builder) fieldList() string {
	if len(b.fields) == 0 {
		return "*"
	}
	return strings.Join(b.fields, ", ")
}

// writeWhere renders the shared WHERE clause. A single condition is emitted
// bare; several conditions are each parenthesized and joined with AND.
func (b *Builder) writeWhere(sb *strings.Builder) {
	switch len(b.wheres) {
	case 0:
	case 1:
		sb.WriteString(" WHERE ")
		sb.WriteString(b.wheres[0])
	default:
		sb.WriteString(" WHERE (")
		sb.WriteString(strings.Join(b.wheres, ") AND ("))
		sb.WriteByte(')')
	}
}
