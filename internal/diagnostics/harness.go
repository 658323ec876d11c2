package diagnostics

import (
	"context"

	"github.com/specialistvlad/burstarena/internal/ctxlog"
	"github.com/specialistvlad/burstarena/internal/registry"
	"github.com/specialistvlad/burstarena/internal/watchdog"
)

// Record describes one non-passing probe run.
type Record struct {
	Strategy *registry.Strategy
	// Probe is the index of the probe in Report.Probes.
	Probe   int
	Verdict Verdict
	// Kind names the error kind, such as AssertionError or Timeout.
	Kind    string
	Message string
}

// Report is the result of running a battery against a set of strategies.
type Report struct {
	Probes     []Probe
	Strategies []*registry.Strategy
	// Grid holds one row per strategy and one column per probe.
	Grid    [][]Verdict
	Records []Record
}

// Failures returns the number of non-passing probes of the strategy in row.
func (r *Report) Failures(row int) int {
	n := 0
	for _, v := range r.Grid[row] {
		if v != Pass {
			n++
		}
	}
	return n
}

// Run executes every probe against every strategy, one watched call per
// probe. The error is non-nil only when ctx ends before the battery does.
func Run(ctx context.Context, exec *watchdog.Executor, strategies []*registry.Strategy, probes []Probe) (*Report, error) {
	logger := ctxlog.FromContext(ctx)
	report := &Report{
		Probes:     probes,
		Strategies: strategies,
		Grid:       make([][]Verdict, len(strategies)),
	}

	for si, s := range strategies {
		row := make([]Verdict, len(probes))
		for pi, p := range probes {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			_, err := watchdog.Execute(ctx, exec, func(ctx context.Context) (struct{}, error) {
				return struct{}{}, p.Check(ctx, s.Move)
			})
			if err != nil && ctx.Err() != nil {
				return nil, ctx.Err()
			}

			verdict, kind, msg := classify(err)
			row[pi] = verdict
			if verdict != Pass {
				report.Records = append(report.Records, Record{
					Strategy: s,
					Probe:    pi,
					Verdict:  verdict,
					Kind:     kind,
					Message:  msg,
				})
				logger.Debug("Probe did not pass.", "strategy", s.Name(), "probe", p.Name, "verdict", verdict, "error", msg)
			}
		}
		report.Grid[si] = row
		logger.Debug("Strategy diagnosed.", "strategy", s.Name(), "failures", report.Failures(si))
	}
	return report, nil
}
