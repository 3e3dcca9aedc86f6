package verify

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"slices"

	"github.com/davejbax/memalign/internal/math"
	"golang.org/x/sync/errgroup"
)

type suite func(ctx context.Context, cfg *Config, alignments []uint64) ([]Result, error)

var suites = map[string]suite{
	"int8":    intSuite(checkInts[int8]),
	"int16":   intSuite(checkInts[int16]),
	"int32":   intSuite(checkInts[int32]),
	"int64":   intSuite(checkInts[int64]),
	"int":     intSuite(checkInts[int]),
	"uint8":   intSuite(checkInts[uint8]),
	"uint16":  intSuite(checkInts[uint16]),
	"uint32":  intSuite(checkInts[uint32]),
	"uint64":  intSuite(checkInts[uint64]),
	"uint":    intSuite(checkInts[uint]),
	"uintptr": intSuite(checkInts[uintptr]),
}

// TypeNames returns the integer types that can be checked, sorted.
func TypeNames() []string {
	return slices.Sorted(maps.Keys(suites))
}

// intSuite runs check one alignment at a time so cancellation is noticed
// between alignments.
func intSuite(check func(cfg *Config, alignments []uint64) []Result) suite {
	return func(ctx context.Context, cfg *Config, alignments []uint64) ([]Result, error) {
		var results []Result
		for _, a := range alignments {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			results = append(results, check(cfg, []uint64{a})...)
		}

		return results, nil
	}
}

func pointerSuite(ctx context.Context, cfg *Config, alignments []uint64) ([]Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return checkPointers(cfg, alignments), nil
}

// Run checks every configured type against reference arithmetic and returns
// the combined report. Suites run concurrently; results keep the order of
// cfg.Types, followed by the pointer checks.
func Run(ctx context.Context, logger *slog.Logger, cfg *Config) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid check config: %w", err)
	}

	alignments := math.PowersOfTwo(cfg.MaxAlignment)

	names := slices.Clone(cfg.Types)
	if cfg.Pointers {
		names = append(names, pointerType)
	}

	parts := make([][]Result, len(names))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Parallelism)

	for i, name := range names {
		run, ok := suites[name]
		if name == pointerType {
			run, ok = pointerSuite, true
		}
		if !ok {
			return nil, fmt.Errorf("%w: '%s'", errUnknownType, name)
		}

		g.Go(func() error {
			logger.Debug("running checks", "suite", name)

			results, err := run(ctx, cfg, alignments)
			if err != nil {
				return fmt.Errorf("suite '%s': %w", name, err)
			}

			parts[i] = results
			logger.Debug("finished checks", "suite", name, "results", len(results))

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("checks aborted: %w", err)
	}

	report := NewReport(slices.Concat(parts...))

	logger.Info("checks complete",
		"total", len(report.Results),
		"passed", report.Passed,
		"failed", report.Failed,
	)

	return report, nil
}
