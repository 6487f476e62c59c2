package main

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// errFindings reports that a check ran to completion
// and found problems, which the report already lists.
var errFindings = errors.New("problems found")

// pagePool processes pages concurrently.
type pagePool struct {
	// Jobs is the maximum number of pages processed at once.
	// Zero or less means one at a time.
	Jobs int

	Log *zap.Logger
}

// pageResult is the outcome of processing a single page.
type pageResult[T any] struct {
	Path  string
	Value T
	Err   error
}

// forEachPage calls fn for every page and returns the results
// in the same order as pages, regardless of completion order.
//
// A failure on one page doesn't stop the others;
// it's recorded in that page's result.
func forEachPage[T any](
	ctx context.Context,
	pool *pagePool,
	pages []string,
	fn func(ctx context.Context, path string) (T, error),
) []pageResult[T] {
	results := make([]pageResult[T], len(pages))

	var g errgroup.Group
	g.SetLimit(max(pool.Jobs, 1))
	for i, path := range pages {
		g.Go(func() error {
			res := pageResult[T]{Path: path}
			if err := ctx.Err(); err != nil {
				res.Err = err
			} else {
				res.Value, res.Err = fn(ctx, path)
			}
			if res.Err != nil {
				pool.Log.Debug("page failed", zap.String("page", path), zap.Error(res.Err))
			}
			results[i] = res
			return nil
		})
	}
	_ = g.Wait() // fn's errors are reported per page
	return results
}
