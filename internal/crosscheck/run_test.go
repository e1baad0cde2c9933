package crosscheck

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/quarry/internal/queryir"
	"github.com/roach88/quarry/internal/roster"
	"github.com/roach88/quarry/internal/store"
)

func TestRun_DefaultChecksMatchSample(t *testing.T) {
	summary, err := RunInMemory(context.Background(), roster.Sample(), DefaultChecks())
	require.NoError(t, err)

	require.Len(t, summary.Results, len(DefaultChecks()))
	for _, r := range summary.Results {
		assert.True(t, r.Match, "%s: engine %v backend %v\n%s", r.Name, r.Engine, r.Backend, r.SQL)
		assert.NotEmpty(t, r.Engine, r.Name)
	}
	assert.True(t, summary.OK())
	assert.Equal(t, len(DefaultChecks()), summary.Passed)
	assert.Zero(t, summary.Failed)
}

func TestRun_SortMethodOrder(t *testing.T) {
	summary, err := RunInMemory(context.Background(), roster.Sample(), DefaultChecks()[:1])
	require.NoError(t, err)

	r := summary.Results[0]
	assert.Equal(t, "sort-method", r.Name)
	assert.Equal(t, []int{9, 1, 6, 4, 10, 2, 3, 12, 11, 7, 5, 8}, r.Backend)
}

func TestRun_SalaryTiesKeepSourceOrder(t *testing.T) {
	ds := roster.Sample()
	for i := range ds.Employees {
		ds.Employees[i].AnnualSalary = roster.MustMoney("50000")
	}

	summary, err := RunInMemory(context.Background(), ds, DefaultChecks())
	require.NoError(t, err)
	assert.True(t, summary.OK(), "%+v", summary.Results)
	assert.Equal(t, []int{1, 4, 6, 9, 10, 2, 3, 12, 5, 7, 11, 8}, summary.Results[0].Engine)
}

func TestRun_OrphansDroppedOnBothSides(t *testing.T) {
	ds := roster.Sample()
	ds.Employees[2].DepartmentID = 99

	summary, err := RunInMemory(context.Background(), ds, DefaultChecks())
	require.NoError(t, err)
	assert.True(t, summary.OK())
	assert.NotContains(t, summary.Results[0].Backend, 3)
	assert.Contains(t, summary.Results[2].Backend, 2)
}

func TestRun_ReportsMismatch(t *testing.T) {
	checks := []Check{{
		Name: "reversed",
		Plan: queryir.Select{From: "employees", Bindings: map[string]string{"id": "id"}},
		Engine: func(ds *roster.Dataset) []int {
			ids := make([]int, 0, len(ds.Employees))
			for i := len(ds.Employees) - 1; i >= 0; i-- {
				ids = append(ids, ds.Employees[i].ID)
			}
			return ids
		},
	}}

	summary, err := RunInMemory(context.Background(), roster.Sample(), checks)
	require.NoError(t, err)
	assert.False(t, summary.OK())
	assert.Equal(t, 1, summary.Failed)
	assert.False(t, summary.Results[0].Match)
}

func TestRun_EmptyDataset(t *testing.T) {
	summary, err := RunInMemory(context.Background(), &roster.Dataset{}, DefaultChecks())
	require.NoError(t, err)
	assert.True(t, summary.OK())
	for _, r := range summary.Results {
		assert.Empty(t, r.Engine)
		assert.Empty(t, r.Backend)
	}
}

func TestRun_InvalidPlan(t *testing.T) {
	checks := []Check{{
		Name:   "bad",
		Plan:   queryir.Select{From: "employees"},
		Engine: func(*roster.Dataset) []int { return nil },
	}}

	_, err := RunInMemory(context.Background(), roster.Sample(), checks)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "check bad: compile")
}

func TestRun_LoadFailure(t *testing.T) {
	st, err := store.Open("")
	require.NoError(t, err)
	defer st.Close()

	ds := &roster.Dataset{Employees: []roster.Employee{{ID: 1, AnnualSalary: roster.MustMoney("0.001")}}}
	_, err = Run(context.Background(), st, ds, DefaultChecks())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "crosscheck")
}
