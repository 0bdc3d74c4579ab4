package sitemd

// Config describes one site conversion: where the HTML snapshot lives, where
// markdown goes, and which selectors identify content and boilerplate. It is
// emitted by selector inference and consumed by the conversion and
// consolidation stages.
type Config struct {
	InputDir  string `yaml:"input_dir"`
	OutputDir string `yaml:"output_dir"`

	// ContentSelector is a comma-joined list of CSS selectors tried in
	// order; the first one matching an element on a page wins. An empty
	// string means inference found no content container anywhere.
	ContentSelector string `yaml:"content_selector"`

	// ExcludeSelectors are removed from the matched content before
	// conversion.
	ExcludeSelectors []string `yaml:"exclude_selectors"`

	PreserveLinks  bool `yaml:"preserve_links"`
	PreserveImages bool `yaml:"preserve_images"`

	// MaxDepth limits how many path components below InputDir are
	// processed. Zero means no limit.
	MaxDepth int `yaml:"max_depth,omitempty"`

	// ConsolidatedOutput is the path of the merged markdown document.
	// Defaults to OutputDir/consolidated.md when empty.
	ConsolidatedOutput string `yaml:"consolidated_output,omitempty"`

	// Frontmatter maps frontmatter field names to CSS selectors evaluated
	// against each page (e.g. "title" -> "title").
	Frontmatter map[string]string `yaml:"frontmatter,omitempty"`
}

// Validate returns an error if the config cannot drive a conversion.
func (c *Config) Validate() error {
	if c.InputDir == "" {
		return Errorf(EINVALID, "config input directory required")
	}
	if c.OutputDir == "" {
		return Errorf(EINVALID, "config output directory required")
	}
	return nil
}

// ConfigStore loads and persists conversion configs.
type ConfigStore interface {
	Load(path string) (*Config, error)
	Save(path string, config *Config) error
}
