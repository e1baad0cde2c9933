package queryir

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func managersQuery() Select {
	return Select{
		From:     "employees",
		Filter:   Equals{Field: "is_manager", Value: Bool(true)},
		Bindings: map[string]string{"id": "id"},
	}
}

func detailsQuery() OrderBy {
	return OrderBy{
		Source: Join{
			Left:     Select{From: "employees"},
			Right:    Select{From: "departments"},
			On:       FieldEquals{Left: "employees.department_id", Right: "departments.id"},
			Bindings: map[string]string{"employees.id": "id", "departments.long_name": "department_name"},
		},
		Keys: []SortKey{
			{Field: "employees.department_id"},
			{Field: "employees.salary_minor", Descending: true},
		},
	}
}

func TestValidate_Valid(t *testing.T) {
	tests := []struct {
		name  string
		query Query
	}{
		{"select", managersQuery()},
		{"ordered join", detailsQuery()},
		{"ordered select", OrderBy{Source: managersQuery(), Keys: []SortKey{{Field: "last_name"}}}},
		{"and", Select{
			From: "employees",
			Filter: And{Predicates: []Predicate{
				Greater{Field: "salary_minor", Value: Int(5000000)},
				Equals{Field: "first_name", Value: String("Bob")},
			}},
			Bindings: map[string]string{"id": "id"},
		}},
		{"empty and", Select{From: "employees", Filter: And{}, Bindings: map[string]string{"id": "id"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Validate(tt.query)
			assert.True(t, result.Valid)
			assert.Empty(t, result.Problems)
		})
	}
}

func TestValidate_Problems(t *testing.T) {
	tests := []struct {
		name  string
		query Query
		want  string
	}{
		{"nil query", nil, "nil query"},
		{"empty bindings", Select{From: "employees"}, "empty bindings"},
		{"bad table", Select{From: "employees; DROP TABLE x", Bindings: map[string]string{"id": "id"}}, `invalid table name`},
		{"bad alias", Select{From: "employees", Bindings: map[string]string{"id": "Id Alias"}}, `invalid alias name "Id Alias"`},
		{"null compare", Select{From: "employees", Filter: Equals{Field: "id"}, Bindings: map[string]string{"id": "id"}}, `column "id" compared to NULL`},
		{"bool greater", Select{From: "employees", Filter: Greater{Field: "is_manager", Value: Bool(true)}, Bindings: map[string]string{"id": "id"}}, "ordering comparison against a boolean"},
		{"nil in and", Select{From: "employees", Filter: And{Predicates: []Predicate{nil}}, Bindings: map[string]string{"id": "id"}}, "nil predicate inside And"},
		{"join without on", Join{Left: Select{From: "employees"}, Right: Select{From: "departments"}, Bindings: map[string]string{"id": "id"}}, "join without ON condition"},
		{"self join", Join{Left: Select{From: "employees"}, Right: Select{From: "employees"}, On: FieldEquals{Left: "id", Right: "id"}, Bindings: map[string]string{"id": "id"}}, "self join"},
		{"no keys", OrderBy{Source: managersQuery()}, "OrderBy without keys"},
		{"nested order", OrderBy{Source: OrderBy{Source: managersQuery(), Keys: []SortKey{{Field: "id"}}}, Keys: []SortKey{{Field: "id"}}}, "nested OrderBy"},
		{"bad sort field", OrderBy{Source: managersQuery(), Keys: []SortKey{{Field: "1id"}}}, `invalid sort name "1id"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Validate(tt.query)
			assert.False(t, result.Valid)
			require.NotEmpty(t, result.Problems)

			assert.Contains(t, strings.Join(result.Problems, "\n"), tt.want)
		})
	}
}
