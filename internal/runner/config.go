package runner

import (
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
	"github.com/projectdiscovery/gologger"
)

// FileConfig is the on-disk configuration format for abnfctl, loaded from
// $HOME/.config/abnfctl/config.yaml when present and overridden by any
// --config file passed explicitly.
type FileConfig struct {
	MaxStates int    `yaml:"max_states"`
	Dialect   string `yaml:"dialect"`
}

// DefaultFileConfig mirrors compiler.DefaultConfig's MaxStates and the
// engine's default regex dialect.
var DefaultFileConfig = FileConfig{MaxStates: 1 << 20, Dialect: "ecmascript"}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config/abnfctl/config.yaml")
}

// LoadFileConfig reads path if non-empty, else the default location if it
// exists, falling back to DefaultFileConfig otherwise.
func LoadFileConfig(path string) FileConfig {
	cfg := DefaultFileConfig
	if path == "" {
		path = defaultConfigPath()
	}
	if path == "" {
		return cfg
	}
	bin, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}
	if err := yaml.Unmarshal(bin, &cfg); err != nil {
		gologger.Error().Msgf("abnfctl: malformed config at %s: %v", path, err)
		return DefaultFileConfig
	}
	return cfg
}
