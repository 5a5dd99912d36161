package advisor

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"leafcare/internal/diagnose"
)

// IdentifyAll runs IdentifyAndAnalyze over queries with at most parallel
// workers. Reports keep the order of queries. The first error cancels the
// remaining work.
func (s *Service) IdentifyAll(ctx context.Context, queries []string, parallel int) ([]*Report, error) {
	return runAll(ctx, queries, parallel, func(ctx context.Context, q string) (*Report, error) {
		rep, err := s.IdentifyAndAnalyze(ctx, q)
		if err != nil {
			return nil, fmt.Errorf("identify %q: %w", q, err)
		}
		return rep, nil
	})
}

// DiagnoseAll runs Diagnose over inputs with at most parallel workers.
// Reports keep the order of inputs.
func (s *Service) DiagnoseAll(ctx context.Context, inputs []diagnose.Input, parallel int) ([]*DiagnosisReport, error) {
	return runAll(ctx, inputs, parallel, func(ctx context.Context, in diagnose.Input) (*DiagnosisReport, error) {
		rep, err := s.Diagnose(ctx, in)
		if err != nil {
			return nil, fmt.Errorf("diagnose %q: %w", in.PlantName, err)
		}
		return rep, nil
	})
}

func runAll[T, R any](ctx context.Context, items []T, parallel int, fn func(context.Context, T) (R, error)) ([]R, error) {
	if parallel < 1 {
		parallel = 1
	}
	out := make([]R, len(items))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(parallel)
	for i, item := range items {
		g.Go(func() error {
			r, err := fn(gctx, item)
			if err != nil {
				return err
			}
			out[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
