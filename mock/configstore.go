package mock

import "github.com/fwojciec/sitemd"

var _ sitemd.ConfigStore = (*ConfigStore)(nil)

// ConfigStore is a mock implementation of sitemd.ConfigStore.
type ConfigStore struct {
	LoadFn func(path string) (*sitemd.Config, error)
	SaveFn func(path string, config *sitemd.Config) error
}

func (s *ConfigStore) Load(path string) (*sitemd.Config, error) {
	return s.LoadFn(path)
}

func (s *ConfigStore) Save(path string, config *sitemd.Config) error {
	return s.SaveFn(path, config)
}
