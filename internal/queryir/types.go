package queryir

// Query is a node of the query tree. Sealed to this package.
type Query interface {
	queryNode()
}

// Predicate is a row filter. Sealed to this package.
type Predicate interface {
	predicateNode()
}

// Value is a literal compared against a column. Sealed to this package.
type Value interface {
	valueNode()
}

// Int is an integer literal. Money columns are compared as Int minor units.
type Int int64

// String is a text literal.
type String string

// Bool is a boolean literal.
type Bool bool

func (Int) valueNode()    {}
func (String) valueNode() {}
func (Bool) valueNode()   {}

// Select reads one table, keeps rows matching Filter and projects Bindings.
//
//	SELECT <bindings> FROM <from> WHERE <filter>
//
// Bindings maps a source column to its output name, e.g.
// {"employees.id": "id"}. A nil Filter keeps every row.
type Select struct {
	From     string
	Filter   Predicate
	Bindings map[string]string
}

func (Select) queryNode() {}

// Join is an inner join of two Selects. Filters of both sides apply, and
// the output is the Join's own Bindings (the sides' Bindings are ignored).
//
//	SELECT <bindings> FROM <left> INNER JOIN <right> ON <on>
//
// Output order is left order, then right match order.
type Join struct {
	Left     Select
	Right    Select
	On       Predicate
	Bindings map[string]string
}

func (Join) queryNode() {}

// SortKey is one ordering column.
type SortKey struct {
	Field      string
	Descending bool
}

// OrderBy sorts Source by Keys, first key most significant. Ties under
// every key keep source order.
type OrderBy struct {
	Source Query
	Keys   []SortKey
}

func (OrderBy) queryNode() {}

// Equals holds when Field equals the literal Value.
type Equals struct {
	Field string
	Value Value
}

func (Equals) predicateNode() {}

// FieldEquals holds when two columns are equal. Used for join conditions.
type FieldEquals struct {
	Left  string
	Right string
}

func (FieldEquals) predicateNode() {}

// Greater holds when Field is strictly greater than Value.
type Greater struct {
	Field string
	Value Value
}

func (Greater) predicateNode() {}

// And holds when every predicate holds. Empty And is always true.
type And struct {
	Predicates []Predicate
}

func (And) predicateNode() {}

// Tables returns the tables a query reads, in join order.
func Tables(q Query) []string {
	switch query := q.(type) {
	case Select:
		return []string{query.From}
	case Join:
		return []string{query.Left.From, query.Right.From}
	case OrderBy:
		return Tables(query.Source)
	default:
		return nil
	}
}
