// Package runner executes report commands against a PCP archive, one at a
// time, collecting stdout into per-report files and diagnostics into the
// run's error log.
package runner

import (
	"context"

	"github.com/vishwab/pcpscan/internal/core"
)

type Runner struct {
	Ctx core.RunContext
	Log *ErrorLog

	// OnStart and OnResult drive per-report console progress; both are
	// optional.
	OnStart  func(rep core.Report)
	OnResult func(rep core.Report, outcome core.Outcome)
}

// Run attempts every report in order. A failed report never stops the batch;
// only cancellation of ctx (user interrupt) does. Reports not attempted
// because of an interrupt are not counted as failures in Outcomes, but Total
// still reflects the full list.
func (r *Runner) Run(ctx context.Context, reports []core.Report) core.Summary {
	summary := core.Summary{Total: len(reports)}

	for _, rep := range reports {
		if ctx.Err() != nil {
			break
		}

		if r.OnStart != nil {
			r.OnStart(rep)
		}

		outcome := Execute(ctx, rep, r.Ctx, r.Log)
		summary.Outcomes = append(summary.Outcomes, outcome)
		if outcome.OK {
			summary.Succeeded++
		}

		if r.OnResult != nil {
			r.OnResult(rep, outcome)
		}
	}

	return summary
}
