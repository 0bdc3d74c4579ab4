package fs

import (
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/sitemd"
)

// ReadSitemapOrder reads a snapshot's sitemap.xml and returns the markdown
// output paths of its URLs in sitemap order. Site snapshots commonly include
// the sitemap the site was mirrored from; consolidation uses it to order
// sections the way the site intended. Returns nil (no error) when the
// snapshot has no sitemap.
func ReadSitemapOrder(dir string) ([]string, error) {
	data, err := os.ReadFile(filepath.Join(dir, "sitemap.xml"))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, sitemd.Errorf(sitemd.EINVALID, "failed to parse sitemap.xml: %v", err)
	}

	root := doc.Root()
	if root == nil || root.Tag != "urlset" {
		return nil, nil
	}

	var order []string
	seen := make(map[string]bool)
	for _, urlEl := range root.SelectElements("url") {
		loc := urlEl.SelectElement("loc")
		if loc == nil {
			continue
		}

		rel, err := URLToPath(strings.TrimSpace(loc.Text()))
		if err != nil {
			continue
		}
		if !seen[rel] {
			seen[rel] = true
			order = append(order, rel)
		}
	}

	return order, nil
}

// URLToPath converts a page URL to the relative markdown path its snapshot
// file converts to. Example: https://example.com/docs/api/users → docs/api/users.md
func URLToPath(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}

	path := u.Path

	// Root or trailing slash → index.md
	if path == "" || path == "/" {
		return "index.md", nil
	}

	path = strings.TrimPrefix(path, "/")

	if strings.HasSuffix(path, "/") {
		return path + "index.md", nil
	}

	if strings.HasSuffix(path, ".html") {
		return PathToMarkdown(path), nil
	}

	return path + ".md", nil
}
