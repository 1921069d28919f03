package querybuilder

type Condition interface {
	write(w *writer)
}

type comparison struct {
	column   string
	operator string
	value    any
}

func (c comparison) write(w *writer) {
	w.raw(c.column, " ", c.operator, " ")
	w.bind(c.value)
}

func Eq(column string, value any) Condition {
	return comparison{column: column, operator: "=", value: value}
}

func Ne(column string, value any) Condition {
	return comparison{column: column, operator: "<>", value: value}
}

func Gte(column string, value any) Condition {
	return comparison{column: column, operator: ">=", value: value}
}

func Lte(column string, value any) Condition {
	return comparison{column: column, operator: "<=", value: value}
}

// Any matches column against a single array parameter, e.g. a
// pq.StringArray. An empty array matches nothing.
func Any(column string, array any) Condition {
	return anyCondition{column: column, array: array}
}

type anyCondition struct {
	column string
	array  any
}

func (c anyCondition) write(w *writer) {
	w.raw(c.column, " = ANY(")
	w.bind(c.array)
	w.raw(")")
}

type inCondition struct {
	column string
	values []any
}

// In expands one placeholder per value. No values renders a false predicate.
func In[T any](column string, values []T) Condition {
	items := make([]any, 0, len(values))
	for _, v := range values {
		items = append(items, v)
	}
	return inCondition{column: column, values: items}
}

func (c inCondition) write(w *writer) {
	if len(c.values) == 0 {
		w.raw("1=0")
		return
	}
	w.raw(c.column, " IN (")
	for i, v := range c.values {
		if i > 0 {
			w.raw(", ")
		}
		w.bind(v)
	}
	w.raw(")")
}

type nullCondition struct {
	column string
	not    bool
}

func IsNull(column string) Condition {
	return nullCondition{column: column}
}

func IsNotNull(column string) Condition {
	return nullCondition{column: column, not: true}
}

func (c nullCondition) write(w *writer) {
	if c.not {
		w.raw(c.column, " IS NOT NULL")
		return
	}
	w.raw(c.column, " IS NULL")
}

type exprCondition struct {
	sql  string
	args []any
}

// Expr embeds raw SQL; every '?' binds the next argument.
func Expr(sql string, args ...any) Condition {
	return exprCondition{sql: sql, args: args}
}

func (c exprCondition) write(w *writer) {
	w.expr(c.sql, c.args)
}

type group struct {
	joiner     string
	conditions []Condition
}

// All joins conditions with AND.
func All(conditions ...Condition) Condition {
	return group{joiner: " AND ", conditions: conditions}
}

// AnyOf joins conditions with OR inside parentheses.
func AnyOf(conditions ...Condition) Condition {
	return group{joiner: " OR ", conditions: conditions}
}

func (g group) write(w *writer) {
	switch len(g.conditions) {
	case 0:
		w.raw("1=1")
		return
	case 1:
		g.conditions[0].write(w)
		return
	}

	wrap := g.joiner == " OR "
	if wrap {
		w.raw("(")
	}
	for i, c := range g.conditions {
		if i > 0 {
			w.raw(g.joiner)
		}
		c.write(w)
	}
	if wrap {
		w.raw(")")
	}
}
