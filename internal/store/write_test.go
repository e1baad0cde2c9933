package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/quarry/internal/roster"
)

func TestLoad_RoundTrip(t *testing.T) {
	s := loadedStore(t)

	ds, err := s.ReadDataset(context.Background())
	require.NoError(t, err)

	sample := roster.Sample()
	require.Len(t, ds.Employees, len(sample.Employees))
	for i, want := range sample.Employees {
		got := ds.Employees[i]
		assert.Equal(t, want.ID, got.ID)
		assert.Equal(t, want.FullName(), got.FullName())
		assert.Equal(t, want.IsManager, got.IsManager)
		assert.Equal(t, want.DepartmentID, got.DepartmentID)
		assert.Zero(t, want.AnnualSalary.Cmp(got.AnnualSalary), "salary of employee %d", want.ID)
	}
	assert.Equal(t, sample.Departments, ds.Departments)
}

func TestLoad_StoresMinorUnits(t *testing.T) {
	s := loadedStore(t)

	var salary int64
	err := s.db.QueryRow("SELECT salary_minor FROM employees WHERE id = 1").Scan(&salary)
	require.NoError(t, err)
	assert.Equal(t, int64(6000030), salary)
}

func TestLoad_ReplacesContents(t *testing.T) {
	s := loadedStore(t)

	small := &roster.Dataset{
		Employees:   []roster.Employee{{ID: 42, FirstName: "A", LastName: "B", DepartmentID: 9}},
		Departments: []roster.Department{},
	}
	require.NoError(t, s.Load(context.Background(), small))

	ds, err := s.ReadDataset(context.Background())
	require.NoError(t, err)
	require.Len(t, ds.Employees, 1)
	assert.Equal(t, 42, ds.Employees[0].ID)
	assert.Empty(t, ds.Departments)
}

func TestLoad_FailureKeepsPreviousContents(t *testing.T) {
	tests := []struct {
		name string
		ds   *roster.Dataset
		want string
	}{
		{
			name: "salary too precise",
			ds: &roster.Dataset{Employees: []roster.Employee{
				{ID: 1, AnnualSalary: roster.MustMoney("10.001")},
			}},
			want: "employee 1 salary",
		},
		{
			name: "duplicate id",
			ds: &roster.Dataset{Employees: []roster.Employee{
				{ID: 1}, {ID: 1},
			}},
			want: "insert employee 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := loadedStore(t)

			err := s.Load(context.Background(), tt.ds)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)

			ds, err := s.ReadDataset(context.Background())
			require.NoError(t, err)
			assert.Len(t, ds.Employees, 12)
		})
	}
}
