package mock

import (
	"context"

	"github.com/fwojciec/sitemd"
)

var _ sitemd.PageWalker = (*PageWalker)(nil)

// PageWalker is a mock implementation of sitemd.PageWalker.
type PageWalker struct {
	WalkFn func(ctx context.Context, root string) ([]string, error)
}

func (w *PageWalker) Walk(ctx context.Context, root string) ([]string, error) {
	return w.WalkFn(ctx, root)
}
