package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/sitemd"
	main "github.com/fwojciec/sitemd/cmd/sitemd"
	"github.com/fwojciec/sitemd/infer"
	"github.com/fwojciec/sitemd/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateCmd_Run(t *testing.T) {
	t.Parallel()

	newInferrer := func(dir string) *infer.Inferrer {
		return &infer.Inferrer{
			Walker: &mock.PageWalker{
				WalkFn: func(_ context.Context, _ string) ([]string, error) {
					return []string{"index.html"}, nil
				},
			},
			Analyzer: &mock.PageAnalyzer{
				ScoreContainersFn: func(_ string) ([]sitemd.SelectorCandidate, error) {
					return []sitemd.SelectorCandidate{{Selector: "main", Score: 9.5}}, nil
				},
				DetectBoilerplateFn: func(_ string) (*sitemd.BoilerplateSet, error) {
					return sitemd.NewBoilerplateSet(), nil
				},
			},
		}
	}

	t.Run("writes config next to the snapshot by default", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html></html>"), 0o644))

		var savedPath string
		var savedConfig *sitemd.Config
		configs := &mock.ConfigStore{
			SaveFn: func(path string, config *sitemd.Config) error {
				savedPath = path
				savedConfig = config
				return nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   stdout,
			Stderr:   &bytes.Buffer{},
			Configs:  configs,
			Inferrer: newInferrer(dir),
		}

		err := (&main.GenerateCmd{Dir: dir}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "site_config.yaml"), savedPath)
		require.NotNil(t, savedConfig)
		assert.Equal(t, "main", savedConfig.ContentSelector)
		output := stdout.String()
		assert.Contains(t, output, "Analyzed 1 pages")
		assert.Contains(t, output, "Content selector: main")
		assert.Contains(t, output, "Wrote "+savedPath)
	})

	t.Run("honors explicit output path", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html></html>"), 0o644))
		custom := filepath.Join(t.TempDir(), "custom.yaml")

		var savedPath string
		configs := &mock.ConfigStore{
			SaveFn: func(path string, _ *sitemd.Config) error {
				savedPath = path
				return nil
			},
		}

		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   &bytes.Buffer{},
			Stderr:   &bytes.Buffer{},
			Configs:  configs,
			Inferrer: newInferrer(dir),
		}

		err := (&main.GenerateCmd{Dir: dir, Output: custom}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, custom, savedPath)
	})

	t.Run("warns when no selector crosses the threshold", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()

		inferrer := &infer.Inferrer{
			Walker: &mock.PageWalker{
				WalkFn: func(_ context.Context, _ string) ([]string, error) {
					return nil, nil
				},
			},
			Analyzer: &mock.PageAnalyzer{},
		}

		configs := &mock.ConfigStore{
			SaveFn: func(_ string, _ *sitemd.Config) error { return nil },
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   &bytes.Buffer{},
			Stderr:   stderr,
			Configs:  configs,
			Inferrer: inferrer,
		}

		err := (&main.GenerateCmd{Dir: dir}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stderr.String(), "warning: no content selector found")
	})

	t.Run("returns error when save fails", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html></html>"), 0o644))

		configs := &mock.ConfigStore{
			SaveFn: func(_ string, _ *sitemd.Config) error {
				return sitemd.Errorf(sitemd.EINTERNAL, "disk full")
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   &bytes.Buffer{},
			Stderr:   stderr,
			Configs:  configs,
			Inferrer: newInferrer(dir),
		}

		err := (&main.GenerateCmd{Dir: dir}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, sitemd.EINTERNAL, sitemd.ErrorCode(err))
		assert.Contains(t, stderr.String(), "error:")
	})
}
