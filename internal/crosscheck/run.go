package crosscheck

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/roach88/quarry/internal/querysql"
	"github.com/roach88/quarry/internal/roster"
	"github.com/roach88/quarry/internal/store"
)

// Result is the outcome of one check.
type Result struct {
	Name    string `json:"name"`
	SQL     string `json:"sql"`
	Engine  []int  `json:"engine"`
	Backend []int  `json:"backend"`
	Match   bool   `json:"match"`
}

// Summary is the outcome of a set of checks.
type Summary struct {
	Results []Result `json:"results"`
	Passed  int      `json:"passed"`
	Failed  int      `json:"failed"`
}

// OK reports whether every check matched.
func (s Summary) OK() bool {
	return s.Failed == 0
}

// Run loads ds into st and runs each check against both sides. A check
// whose sides disagree is a failed Result, not an error; errors are
// reserved for checks that could not run at all.
func Run(ctx context.Context, st *store.Store, ds *roster.Dataset, checks []Check) (Summary, error) {
	if err := st.Load(ctx, ds); err != nil {
		return Summary{}, fmt.Errorf("crosscheck: %w", err)
	}

	compiler := querysql.NewSQLCompiler()
	summary := Summary{Results: make([]Result, 0, len(checks))}

	for _, check := range checks {
		sql, params, err := compiler.Compile(check.Plan)
		if err != nil {
			return summary, fmt.Errorf("check %s: compile: %w", check.Name, err)
		}

		backend, err := st.QueryIDs(ctx, sql, params...)
		if err != nil {
			return summary, fmt.Errorf("check %s: %w", check.Name, err)
		}

		engine := check.Engine(ds)
		if engine == nil {
			engine = []int{}
		}

		result := Result{
			Name:    check.Name,
			SQL:     sql,
			Engine:  engine,
			Backend: backend,
			Match:   slices.Equal(engine, backend),
		}
		summary.Results = append(summary.Results, result)

		if result.Match {
			summary.Passed++
			slog.Debug("check matched", "check", check.Name, "rows", len(engine))
		} else {
			summary.Failed++
			slog.Warn("check mismatch",
				"check", check.Name,
				"engine", engine,
				"backend", backend,
			)
		}
	}

	return summary, nil
}

// RunInMemory opens a private in-memory store, runs the checks and closes
// it.
func RunInMemory(ctx context.Context, ds *roster.Dataset, checks []Check) (Summary, error) {
	st, err := store.Open(store.MemoryDSN)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to create in-memory store: %w", err)
	}
	defer st.Close()

	return Run(ctx, st, ds, checks)
}
