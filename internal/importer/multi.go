package importer

import (
	"context"

	"github.com/credaudit/credaudit/internal/model"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the maximum number of export files parsed at
// once. Parsing is cheap; this mostly bounds open file handles.
const DefaultConcurrency = 4

// ReadFiles parses multiple export files and merges their records.
//
// Files are parsed concurrently with a bounded errgroup, but the merged
// record order is deterministic: records appear in argument order, then
// file order. The first parse error cancels the remaining work.
//
// Design decision: We use errgroup.SetLimit rather than a worker pool
// because it's simpler and errgroup handles the concurrency correctly.
func ReadFiles(ctx context.Context, paths []string) ([]model.Record, error) {
	results := make([][]model.Record, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(DefaultConcurrency)

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			records, err := ReadFile(path)
			if err != nil {
				return err
			}
			results[i] = records
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := make([]model.Record, 0)
	for _, records := range results {
		merged = append(merged, records...)
	}
	return merged, nil
}
