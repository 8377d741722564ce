package telegraph

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
)

// DefaultBatchSize is the number of getViews calls Views runs at once
const DefaultBatchSize = 5

// Views fetches the total view count of every path with at most limit
// requests in flight. The first failure cancels the remaining calls.
func (c *Client) Views(ctx context.Context, paths []string, limit int) (map[string]uint, error) {
	views := make(map[string]uint, len(paths))
	if len(paths) == 0 {
		return views, nil
	}
	if limit <= 0 {
		limit = DefaultBatchSize
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	var mu sync.Mutex
	for _, path := range paths {
		g.Go(func() error {
			pv, err := Send(ctx, c.GetViews().Path(path))
			if err != nil {
				return err
			}

			mu.Lock()
			views[path] = pv.Views
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	c.logger.Debug().Int("pages", len(views)).Msg("Retrieved page views")
	return views, nil
}
