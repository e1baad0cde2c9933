package queryir

import (
	"fmt"
	"regexp"
)

// identifier matches a column or table name, optionally table-qualified.
var identifier = regexp.MustCompile(`^[a-z_][a-z0-9_]*(\.[a-z_][a-z0-9_]*)?$`)

// ValidationResult lists structural problems in a query.
type ValidationResult struct {
	// Valid is true when Problems is empty.
	Valid bool

	// Problems describes each rejected node, in traversal order.
	Problems []string
}

// Validate checks that a query is inside the fragment and that every name
// is a plain identifier. Backends interpolate names (never values), so a
// query must validate before it is compiled.
func Validate(query Query) ValidationResult {
	v := &validator{problems: []string{}}
	v.validateQuery(query)

	return ValidationResult{
		Valid:    len(v.problems) == 0,
		Problems: v.problems,
	}
}

type validator struct {
	problems []string
}

func (v *validator) addProblem(format string, args ...any) {
	v.problems = append(v.problems, fmt.Sprintf(format, args...))
}

func (v *validator) name(kind, s string) {
	if !identifier.MatchString(s) {
		v.addProblem("invalid %s name %q", kind, s)
	}
}

func (v *validator) validateQuery(q Query) {
	switch query := q.(type) {
	case nil:
		v.addProblem("nil query")
	case Select:
		v.validateSelect(query)
		v.validateBindings(query.Bindings)
	case Join:
		v.validateJoin(query)
	case OrderBy:
		v.validateOrderBy(query)
	default:
		v.addProblem("unknown query type %T", q)
	}
}

func (v *validator) validateSelect(sel Select) {
	v.name("table", sel.From)
	if sel.Filter != nil {
		v.validatePredicate(sel.Filter)
	}
}

func (v *validator) validateBindings(bindings map[string]string) {
	if len(bindings) == 0 {
		v.addProblem("empty bindings: columns must be listed explicitly")
	}
	for field, alias := range bindings {
		v.name("column", field)
		v.name("alias", alias)
	}
}

func (v *validator) validateJoin(join Join) {
	v.validateSelect(join.Left)
	v.validateSelect(join.Right)
	if join.Left.From == join.Right.From {
		v.addProblem("self join on %q is not supported", join.Left.From)
	}
	if join.On == nil {
		v.addProblem("join without ON condition")
	} else {
		v.validatePredicate(join.On)
	}
	v.validateBindings(join.Bindings)
}

func (v *validator) validateOrderBy(ob OrderBy) {
	if _, nested := ob.Source.(OrderBy); nested {
		v.addProblem("nested OrderBy: add keys to the outer OrderBy instead")
	}
	v.validateQuery(ob.Source)
	if len(ob.Keys) == 0 {
		v.addProblem("OrderBy without keys")
	}
	for _, k := range ob.Keys {
		v.name("sort", k.Field)
	}
}

func (v *validator) validatePredicate(p Predicate) {
	switch pred := p.(type) {
	case Equals:
		v.name("column", pred.Field)
		v.validateValue(pred.Field, pred.Value)
	case Greater:
		v.name("column", pred.Field)
		v.validateValue(pred.Field, pred.Value)
		if _, ok := pred.Value.(Bool); ok {
			v.addProblem("column %q: ordering comparison against a boolean", pred.Field)
		}
	case FieldEquals:
		v.name("column", pred.Left)
		v.name("column", pred.Right)
	case And:
		for _, sub := range pred.Predicates {
			if sub == nil {
				v.addProblem("nil predicate inside And")
				continue
			}
			v.validatePredicate(sub)
		}
	default:
		v.addProblem("unknown predicate type %T", p)
	}
}

func (v *validator) validateValue(field string, val Value) {
	if val == nil {
		v.addProblem("column %q compared to NULL", field)
	}
}
