package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/dshills/lintcfg/internal/project"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "LINTCFG_"

// FileNames are the config file names searched for, in order.
var FileNames = []string{"lintcfg.yaml", "lintcfg.yml"}

// maxUpwardSearchLevels limits how far up the directory tree to search for config files.
const maxUpwardSearchLevels = 10

// Config represents the lintcfg configuration.
type Config struct {
	Flavor       string   `koanf:"flavor" yaml:"flavor"`
	Prettier     bool     `koanf:"prettier" yaml:"prettier"`
	Format       string   `koanf:"format" yaml:"format"`
	Out          string   `koanf:"out" yaml:"out,omitempty"`
	RulesetsDir  string   `koanf:"rulesets_dir" yaml:"rulesets_dir,omitempty"`
	Assume       []string `koanf:"assume" yaml:"assume,omitempty"`
	AssumeAbsent []string `koanf:"assume_absent" yaml:"assume_absent,omitempty"`
	LogLevel     string   `koanf:"log_level" yaml:"log_level"`

	// ProjectRoot is the directory holding the host project's package.json.
	ProjectRoot string `koanf:"-" yaml:"-"`
	// File is the config file that was loaded, or "".
	File string `koanf:"-" yaml:"-"`
}

// Default returns a Config with all defaults applied.
func Default() Config {
	return Config{
		Flavor:   "node",
		Format:   "json",
		LogLevel: "warn",
	}
}

func defaults() map[string]any {
	d := Default()
	return map[string]any{
		"flavor":    d.Flavor,
		"prettier":  d.Prettier,
		"format":    d.Format,
		"log_level": d.LogLevel,
	}
}

// listKeys are decoded from comma-separated environment values.
var listKeys = map[string]bool{"assume": true, "assume_absent": true}

// flagKeys maps flag names whose config key differs from the snake_case form.
var flagKeys = map[string]string{
	"rulesets": "rulesets_dir",
}

// skipFlags never reach the config tree.
var skipFlags = map[string]bool{"config": true, "root": true}

// FindFile searches upward from dir for a config file and returns its path,
// or "" when none is found within the search limit.
func FindFile(dir string) string {
	for i := 0; i < maxUpwardSearchLevels; i++ {
		for _, name := range FileNames {
			candidate := filepath.Join(dir, name)
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				return candidate
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return ""
}

// Load builds the effective config by merging: defaults <- file <- env <- flags.
// cfgFile, when set, names the config file explicitly. Only flags that were
// changed on the command line are applied; flags may be nil.
func Load(cfgFile string, flags *pflag.FlagSet) (Config, error) {
	root, err := projectRoot(flags)
	if err != nil {
		return Config{}, err
	}

	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return Config{}, fmt.Errorf("loading defaults: %w", err)
	}

	if cfgFile == "" {
		cfgFile = FindFile(root)
	}
	if cfgFile != "" {
		if err := k.Load(file.Provider(cfgFile), yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("reading config file %s: %w", cfgFile, err)
		}
	}

	if err := k.Load(env.ProviderWithValue(EnvPrefix, ".", envValue), nil); err != nil {
		return Config{}, fmt.Errorf("loading env vars: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, any) {
			if !f.Changed || skipFlags[f.Name] {
				return "", nil
			}
			key := strings.ReplaceAll(f.Name, "-", "_")
			if mapped, ok := flagKeys[f.Name]; ok {
				key = mapped
			}
			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return Config{}, fmt.Errorf("loading flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	cfg.ProjectRoot = root
	cfg.File = cfgFile
	if cfg.RulesetsDir != "" && !filepath.IsAbs(cfg.RulesetsDir) {
		cfg.RulesetsDir = filepath.Join(root, cfg.RulesetsDir)
	}
	return cfg, nil
}

// envValue maps LINTCFG_ASSUME_ABSENT to assume_absent and splits list values.
func envValue(key, value string) (string, any) {
	key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
	if listKeys[key] {
		return key, SplitList(value)
	}
	return key, value
}

// projectRoot resolves --root when it was set, otherwise the nearest
// directory above the working directory holding a package.json.
func projectRoot(flags *pflag.FlagSet) (string, error) {
	if flags != nil && flags.Lookup("root") != nil && flags.Changed("root") {
		dir, _ := flags.GetString("root")
		abs, err := filepath.Abs(dir)
		if err != nil {
			return "", fmt.Errorf("resolving project root: %w", err)
		}
		return abs, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("resolving working directory: %w", err)
	}
	return project.FindRoot(cwd)
}

// Save writes cfg as YAML to path, creating parent directories.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := yamlv3.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// LoadFile reads a single config file without defaults, env or flags.
// A missing file returns a zero Config and nil error.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}
	var cfg Config
	if err := yamlv3.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}

// SetField sets a single config field by key name. Returns error if key is unknown.
func SetField(cfg *Config, key, value string) error {
	switch key {
	case "flavor":
		cfg.Flavor = value
	case "prettier":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("prettier must be a boolean: %w", err)
		}
		cfg.Prettier = b
	case "format":
		cfg.Format = value
	case "out":
		cfg.Out = value
	case "rulesets_dir":
		cfg.RulesetsDir = value
	case "assume":
		cfg.Assume = SplitList(value)
	case "assume_absent":
		cfg.AssumeAbsent = SplitList(value)
	case "log_level":
		cfg.LogLevel = value
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return nil
}

// SplitList splits a comma-separated value, trimming blanks.
func SplitList(s string) []string {
	parts := strings.Split(s, ",")
	var result []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}
