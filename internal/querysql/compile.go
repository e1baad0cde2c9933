package querysql

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/roach88/quarry/internal/queryir"
)

// OrdColumn is the source-position column every table carries. It is the
// final ORDER BY tiebreak, so SQLite returns rows in the order a stable
// in-memory sort would.
const OrdColumn = "ord"

// ErrInvalidQuery is returned for queries that fail queryir.Validate.
var ErrInvalidQuery = errors.New("invalid query")

// SQLCompiler compiles Query IR to parameterized SQL for SQLite.
//
// Values are always bound as parameters; only validated identifiers are
// written into the SQL text. Every query ends with ORDER BY.
type SQLCompiler struct{}

// NewSQLCompiler creates a new SQLCompiler.
func NewSQLCompiler() *SQLCompiler {
	return &SQLCompiler{}
}

// Compile converts a query to SQL and its parameters.
func (c *SQLCompiler) Compile(q queryir.Query) (string, []any, error) {
	if result := queryir.Validate(q); !result.Valid {
		return "", nil, fmt.Errorf("%w: %s", ErrInvalidQuery, strings.Join(result.Problems, "; "))
	}

	var keys []queryir.SortKey
	if ob, ok := q.(queryir.OrderBy); ok {
		keys = ob.Keys
		q = ob.Source
	}

	switch query := q.(type) {
	case queryir.Select:
		return c.compileSelect(query, keys)
	case queryir.Join:
		return c.compileJoin(query, keys)
	default:
		return "", nil, fmt.Errorf("unsupported query type: %T", q)
	}
}

func (c *SQLCompiler) compileSelect(q queryir.Select, keys []queryir.SortKey) (string, []any, error) {
	where, params, err := c.compileWhere(q.Filter)
	if err != nil {
		return "", nil, fmt.Errorf("compile filter: %w", err)
	}

	sql := fmt.Sprintf("SELECT %s FROM %s%s ORDER BY %s",
		compileBindings(q.Bindings),
		q.From,
		where,
		orderBy(keys, q.From))

	return sql, params, nil
}

func (c *SQLCompiler) compileJoin(j queryir.Join, keys []queryir.SortKey) (string, []any, error) {
	on, params, err := c.compilePredicate(j.On)
	if err != nil {
		return "", nil, fmt.Errorf("compile join ON: %w", err)
	}

	filter := queryir.And{}
	for _, side := range []queryir.Select{j.Left, j.Right} {
		if side.Filter != nil {
			filter.Predicates = append(filter.Predicates, side.Filter)
		}
	}
	var where string
	if len(filter.Predicates) > 0 {
		w, filterParams, err := c.compileWhere(filter)
		if err != nil {
			return "", nil, fmt.Errorf("compile join filter: %w", err)
		}
		where = w
		params = append(params, filterParams...)
	}

	sql := fmt.Sprintf("SELECT %s FROM %s INNER JOIN %s ON %s%s ORDER BY %s",
		compileBindings(j.Bindings),
		j.Left.From,
		j.Right.From,
		on,
		where,
		orderBy(keys, j.Left.From, j.Right.From))

	return sql, params, nil
}

func (c *SQLCompiler) compileWhere(p queryir.Predicate) (string, []any, error) {
	if p == nil {
		return "", nil, nil
	}
	sql, params, err := c.compilePredicate(p)
	if err != nil {
		return "", nil, err
	}
	return " WHERE " + sql, params, nil
}

// compileBindings converts bindings to a column list, sorted by source
// column for deterministic output.
func compileBindings(bindings map[string]string) string {
	fields := make([]string, 0, len(bindings))
	for field := range bindings {
		fields = append(fields, field)
	}
	slices.Sort(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		alias := bindings[field]
		if field == alias {
			parts = append(parts, field)
		} else {
			parts = append(parts, fmt.Sprintf("%s AS %s", field, alias))
		}
	}
	return strings.Join(parts, ", ")
}

// orderBy renders the sort keys followed by the ord tiebreak of every
// table, in join order.
func orderBy(keys []queryir.SortKey, tables ...string) string {
	parts := make([]string, 0, len(keys)+len(tables))
	for _, k := range keys {
		dir := "ASC"
		if k.Descending {
			dir = "DESC"
		}
		parts = append(parts, k.Field+" "+dir)
	}
	qualify := len(tables) > 1
	for _, table := range tables {
		col := OrdColumn
		if qualify {
			col = table + "." + OrdColumn
		}
		parts = append(parts, col+" ASC")
	}
	return strings.Join(parts, ", ")
}

func (c *SQLCompiler) compilePredicate(p queryir.Predicate) (string, []any, error) {
	switch pred := p.(type) {
	case queryir.Equals:
		return compareValue(pred.Field, "=", pred.Value)
	case queryir.Greater:
		return compareValue(pred.Field, ">", pred.Value)
	case queryir.FieldEquals:
		return fmt.Sprintf("%s = %s", pred.Left, pred.Right), nil, nil
	case queryir.And:
		return c.compileAnd(pred)
	default:
		return "", nil, fmt.Errorf("unsupported predicate type: %T", p)
	}
}

func compareValue(field, op string, v queryir.Value) (string, []any, error) {
	param, err := valueToParam(v)
	if err != nil {
		return "", nil, fmt.Errorf("convert value for %s: %w", field, err)
	}
	return fmt.Sprintf("%s %s ?", field, op), []any{param}, nil
}

func (c *SQLCompiler) compileAnd(and queryir.And) (string, []any, error) {
	if len(and.Predicates) == 0 {
		return "1 = 1", nil, nil
	}

	parts := make([]string, 0, len(and.Predicates))
	var params []any
	for _, pred := range and.Predicates {
		sql, predParams, err := c.compilePredicate(pred)
		if err != nil {
			return "", nil, err
		}
		parts = append(parts, sql)
		params = append(params, predParams...)
	}
	return strings.Join(parts, " AND "), params, nil
}

// valueToParam converts a literal to its driver parameter. Booleans are
// stored as 0/1 integers.
func valueToParam(v queryir.Value) (any, error) {
	switch val := v.(type) {
	case queryir.Int:
		return int64(val), nil
	case queryir.String:
		return string(val), nil
	case queryir.Bool:
		if val {
			return int64(1), nil
		}
		return int64(0), nil
	default:
		return nil, fmt.Errorf("unsupported value type: %T", v)
	}
}
