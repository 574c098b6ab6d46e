package scenario

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/DjordjeVuckovic/base-checker/internal/session"
)

type Result struct {
	SuiteName string
	Started   time.Time
	Scenarios []ScenarioResult
}

type ScenarioResult struct {
	ID          string
	Diagnostics []session.Diagnostic
	Variables   int
	Mismatches  []string
	Duration    time.Duration
	Error       error
}

func (r ScenarioResult) Passed() bool {
	return r.Error == nil && len(r.Mismatches) == 0
}

func (r *Result) Failed() int {
	n := 0
	for _, sr := range r.Scenarios {
		if !sr.Passed() {
			n++
		}
	}
	return n
}

// Run plays every scenario of s in its own session.
func Run(ctx context.Context, s *Suite) (*Result, error) {
	res := &Result{SuiteName: s.Name, Started: time.Now()}

	for _, sc := range s.Scenarios {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		sr := runScenario(ctx, s.sentinel(), sc)
		if !sr.Passed() {
			slog.Warn("Scenario failed", "scenario", sc.ID, "mismatches", len(sr.Mismatches), "error", sr.Error)
		}
		res.Scenarios = append(res.Scenarios, sr)
	}

	slog.Info("Suite finished", "suite", s.Name, "scenarios", len(res.Scenarios), "failed", res.Failed())
	return res, nil
}

func runScenario(ctx context.Context, sentinel string, sc Scenario) ScenarioResult {
	lines := make([]string, 0, len(sc.Declarations)+2)
	lines = append(lines, sc.Declarations...)
	lines = append(lines, sentinel, sc.Expression)

	sess := session.New(session.WithSentinel(sentinel))
	rec := &session.Recorder{}

	start := time.Now()
	err := sess.Run(ctx, session.NewSliceSource(lines...), rec)

	sr := ScenarioResult{
		ID:          sc.ID,
		Diagnostics: rec.Diagnostics,
		Variables:   sess.Table().Len(),
		Duration:    time.Since(start),
		Error:       err,
	}
	if err == nil {
		sr.Mismatches = compare(sc.Expect, rec.Diagnostics)
	}
	return sr
}

// compare expects one diagnostic per declaration followed by the expression
// diagnostic, which is what a completed session reports.
func compare(want Expectation, got []session.Diagnostic) []string {
	var out []string
	if len(got) == 0 {
		return []string{"no diagnostics recorded"}
	}

	decls, expr := got[:len(got)-1], got[len(got)-1]
	for i, kind := range want.Declarations {
		if i >= len(decls) {
			break
		}
		if decls[i].Kind != kind {
			out = append(out, fmt.Sprintf("declaration %d: want %s, got %s", i+1, kind, decls[i].Kind))
		}
	}
	if want.Expression != nil && expr.Kind != *want.Expression {
		out = append(out, fmt.Sprintf("expression: want %s, got %s", *want.Expression, expr.Kind))
	}
	if want.Undeclared != "" && expr.Subject != want.Undeclared {
		out = append(out, fmt.Sprintf("undeclared: want %q, got %q", want.Undeclared, expr.Subject))
	}
	return out
}
