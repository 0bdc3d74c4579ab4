package sitemd

import "context"

// PageWalker discovers HTML page files under a snapshot root.
// Implementations hide traversal order and depth limiting; callers must not
// depend on ordering beyond stable tie-breaking at synthesis time.
type PageWalker interface {
	// Walk returns the paths of every .html file under root, relative to
	// root. A missing or empty root yields an empty slice, not an error.
	Walk(ctx context.Context, root string) ([]string, error)
}
