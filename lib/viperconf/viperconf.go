// Package viperconf adapts a spf13/viper instance to the facet Config
// interface.
package viperconf

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Store wraps a viper instance. facet keys use "/" separators while
// viper nests on "."; Get translates, so "catalog/filter/subparts" reads
// the subparts list under catalog.filter in the config file.
type Store struct {
	v *viper.Viper
}

// New wraps an already-configured viper instance.
func New(v *viper.Viper) *Store {
	return &Store{v: v}
}

// Load reads the config file at path into a fresh viper instance with
// FACET_-prefixed environment overrides bound. The file format follows
// the extension (YAML in practice).
func Load(path string) (*Store, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix("FACET")
	v.SetEnvKeyReplacer(strings.NewReplacer("/", "_", ".", "_"))
	v.AutomaticEnv()
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("viperconf: read %s: %w", path, err)
	}
	return &Store{v: v}, nil
}

// Get implements facet.Config.
func (s *Store) Get(key string) (any, bool) {
	k := strings.ReplaceAll(key, "/", ".")
	if !s.v.IsSet(k) {
		return nil, false
	}
	return s.v.Get(k), true
}
