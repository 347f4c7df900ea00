package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/bindle-dev/bindle/pkg/errors"
	"github.com/bindle-dev/bindle/pkg/logging"
	"github.com/bindle-dev/bindle/pkg/rules"
	ktoml "github.com/knadh/koanf/parsers/toml"
	kyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix for environment variable overrides,
// e.g. BINDLE_OUTPUT_PATH=build overrides output.path.
const EnvPrefix = "BINDLE_"

// projectConfigNames are tried in order; the first one found wins
var projectConfigNames = []string{".bindle.toml", "bindle.toml", "bindle.yaml", "bindle.yml"}

// Load reads the effective configuration for the project rooted at dir
func Load(dir string) (*Config, error) {
	return LoadWithOverrides(dir, nil)
}

// LoadWithOverrides is Load with a final layer of explicit overrides,
// used by the CLI to apply flag values on top of everything else
func LoadWithOverrides(dir string, overrides map[string]interface{}) (*Config, error) {
	logger := logging.GetLogger("config.loader")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, ktoml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "loading embedded defaults")
	}

	// 2. Project config file, if present
	if path, parser := findProjectConfig(dir); path != "" {
		logger.Debug().Str("path", path).Msg("loading project config")
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "loading %s", path)
		}
	} else {
		logger.Debug().Str("dir", dir).Msg("no project config file, using defaults")
	}

	// 3. Environment overrides: BINDLE_OUTPUT_PATH -> output.path
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "loading environment overrides")
	}

	// 4. Explicit overrides (CLI flags)
	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "applying overrides")
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "unmarshaling configuration")
	}

	if len(cfg.Module.Rules) == 0 {
		logger.Debug().Msg("no rules configured, using defaults")
		cfg.Module.Rules = rules.DefaultRules()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.Debug().
		Str("entry", cfg.Entry).
		Int("rules", len(cfg.Module.Rules)).
		Int("plugins", len(cfg.Plugins)).
		Msg("configuration loaded")

	return &cfg, nil
}

// findProjectConfig locates the project config file in dir and returns its
// path together with the parser for its format
func findProjectConfig(dir string) (string, koanf.Parser) {
	for _, name := range projectConfigNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if strings.HasSuffix(name, ".toml") {
			return path, ktoml.Parser()
		}
		return path, kyaml.Parser()
	}
	return "", nil
}
