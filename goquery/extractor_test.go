package goquery_test

import (
	"testing"

	"github.com/fwojciec/sitemd"
	"github.com/fwojciec/sitemd/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const extractorPage = `<!DOCTYPE html>
<html>
<head>
<title>About Us | Example</title>
<meta name="description" content="Everything about us.">
</head>
<body>
<nav class="navbar"><a href="/">Home</a></nav>
<main role="main">
<h1>About Us</h1>
<p>We make things.</p>
<img src="team.jpg" alt="Team">
<a href="/contact">Contact us</a>
<form class="signup-form"><input type="email"></form>
</main>
<footer>© Example</footer>
</body>
</html>`

func extractorConfig() *sitemd.Config {
	return &sitemd.Config{
		InputDir:         "in",
		OutputDir:        "out",
		ContentSelector:  `main[role="main"]`,
		ExcludeSelectors: []string{"form", ".navbar"},
		PreserveLinks:    true,
		PreserveImages:   true,
	}
}

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts content matched by the selector", func(t *testing.T) {
		t.Parallel()

		result, err := goquery.NewExtractor(extractorConfig()).Extract(extractorPage)

		require.NoError(t, err)
		assert.Equal(t, "About Us | Example", result.Title)
		assert.Contains(t, result.ContentHTML, "<h1>About Us</h1>")
		assert.Contains(t, result.ContentHTML, "We make things.")
		assert.NotContains(t, result.ContentHTML, "<footer>")
	})

	t.Run("removes excluded selectors from the match", func(t *testing.T) {
		t.Parallel()

		result, err := goquery.NewExtractor(extractorConfig()).Extract(extractorPage)

		require.NoError(t, err)
		assert.NotContains(t, result.ContentHTML, "<form")
		assert.NotContains(t, result.ContentHTML, "signup-form")
	})

	t.Run("tries selectors in order until one matches", func(t *testing.T) {
		t.Parallel()

		config := extractorConfig()
		config.ContentSelector = `article.post, main[role="main"], div.content`

		result, err := goquery.NewExtractor(config).Extract(extractorPage)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "<h1>About Us</h1>")
	})

	t.Run("returns ENOTFOUND when nothing matches", func(t *testing.T) {
		t.Parallel()

		config := extractorConfig()
		config.ContentSelector = "article.missing"

		_, err := goquery.NewExtractor(config).Extract(extractorPage)

		require.Error(t, err)
		assert.Equal(t, sitemd.ENOTFOUND, sitemd.ErrorCode(err))
	})

	t.Run("empty content selector means nothing to extract", func(t *testing.T) {
		t.Parallel()

		config := extractorConfig()
		config.ContentSelector = ""

		_, err := goquery.NewExtractor(config).Extract(extractorPage)

		require.Error(t, err)
		assert.Equal(t, sitemd.ENOTFOUND, sitemd.ErrorCode(err))
	})

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		_, err := goquery.NewExtractor(extractorConfig()).Extract("")

		require.Error(t, err)
		assert.Equal(t, sitemd.EINVALID, sitemd.ErrorCode(err))
	})

	t.Run("drops images when not preserved", func(t *testing.T) {
		t.Parallel()

		config := extractorConfig()
		config.PreserveImages = false

		result, err := goquery.NewExtractor(config).Extract(extractorPage)

		require.NoError(t, err)
		assert.NotContains(t, result.ContentHTML, "<img")
	})

	t.Run("unwraps links to their text when not preserved", func(t *testing.T) {
		t.Parallel()

		config := extractorConfig()
		config.PreserveLinks = false

		result, err := goquery.NewExtractor(config).Extract(extractorPage)

		require.NoError(t, err)
		assert.NotContains(t, result.ContentHTML, "<a ")
		assert.Contains(t, result.ContentHTML, "Contact us")
	})

	t.Run("extracts configured frontmatter fields", func(t *testing.T) {
		t.Parallel()

		config := extractorConfig()
		config.Frontmatter = map[string]string{
			"title":       "title",
			"description": `meta[name="description"]`,
			"missing":     ".no-such-thing",
		}

		result, err := goquery.NewExtractor(config).Extract(extractorPage)

		require.NoError(t, err)
		assert.Equal(t, "About Us | Example", result.Frontmatter["title"])
		assert.Equal(t, "Everything about us.", result.Frontmatter["description"])
		assert.NotContains(t, result.Frontmatter, "missing")
	})
}
