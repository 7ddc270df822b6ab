/*
Package config manages the TOML config of arrowword.
*/
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bastiangx/arrowword/internal/utils"
	"github.com/bastiangx/arrowword/pkg/dictionary"
	"github.com/bastiangx/arrowword/pkg/layout"
	"github.com/bastiangx/arrowword/pkg/words"
	"github.com/charmbracelet/log"
)

// Config holds the entire config structure
type Config struct {
	Engine EngineConfig `toml:"engine"`
	Dict   DictConfig   `toml:"dict"`
	CLI    CliConfig    `toml:"cli"`
}

// EngineConfig has the placement options.
type EngineConfig struct {
	Case            string `toml:"case"`
	Empty           string `toml:"empty"`
	Scan            string `toml:"scan"`
	SkipUnplaceable bool   `toml:"skip_unplaceable"`
	CacheSize       int    `toml:"cache_size"`
}

// DictConfig limits what a word list may contribute.
type DictConfig struct {
	MaxWords        int  `toml:"max_words"`
	MinLength       int  `toml:"min_length"`
	MaxLength       int  `toml:"max_length"`
	AllowDuplicates bool `toml:"allow_duplicates"`
}

// CliConfig holds cli interface options.
type CliConfig struct {
	Color        bool `toml:"color"`
	ShowHints    bool `toml:"show_hints"`
	ShowUnplaced bool `toml:"show_unplaced"`
}

const (
	ScanCrossable = "crossable"
	ScanLetters   = "letters"
)

// GetConfigDir returns the config directory with fallback priority:
// 1. ~/.config/arrowword
// 2. ~/Library/Application Support/arrowword (macOS)
// 3. Current executable dir
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Errorf("Failed to get home directory: %v", err)
		return utils.GetExecutableDir()
	}
	primaryPath := filepath.Join(homeDir, ".config", "arrowword")
	if result := utils.CheckDirStatus(primaryPath); result.Writable {
		return primaryPath, nil
	}
	macOSPath := filepath.Join(homeDir, "Library", "Application Support", "arrowword")
	if result := utils.CheckDirStatus(macOSPath); result.Writable {
		return macOSPath, nil
	}
	execDir, err := utils.GetExecutableDir()
	if err != nil {
		log.Errorf("Failed to get executable directory: %v", err)
		return "", err
	}
	return execDir, nil
}

// GetDefaultConfigPath returns the default path for config.toml
func GetDefaultConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.toml"), nil
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from the -config flag
// 2. Default path: [UserConfigDir]/arrowword/config.toml
// 3. Builtin defaults
func LoadConfigWithPriority(customConfigPath string) (*Config, string, error) {
	if customConfigPath != "" {
		if _, statErr := os.Stat(customConfigPath); statErr == nil {
			config, err := LoadConfig(customConfigPath)
			if err == nil {
				log.Debugf("Loaded config from custom path: %s", customConfigPath)
				return config, customConfigPath, nil
			}
			log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customConfigPath, err)
		} else {
			log.Warnf("Custom config file not found at %s: %v. Trying default path...", customConfigPath, statErr)
		}
	}

	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		log.Warnf("Failed to determine default config path: %v. Using built-in defaults...", err)
		return DefaultConfig(), "", nil
	}
	config, err := InitConfig(defaultPath)
	if err != nil {
		log.Warnf("Failed to load/create config at default path %s: %v. Using builtin defaults...", defaultPath, err)
		return DefaultConfig(), "", nil
	}
	log.Debugf("Loaded config from default path: %s", defaultPath)
	return config, defaultPath, nil
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Engine: EngineConfig{
			Case:            words.CaseLower.String(),
			Empty:           string(layout.DefaultEmpty),
			Scan:            ScanCrossable,
			SkipUnplaceable: false,
			CacheSize:       32,
		},
		Dict: DictConfig{
			MaxWords:        200,
			MinLength:       2,
			MaxLength:       32,
			AllowDuplicates: false,
		},
		CLI: CliConfig{
			Color:        true,
			ShowHints:    true,
			ShowUnplaced: true,
		},
	}
}

// InitConfig loads config from file or creates default if missing
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)

	if err := utils.EnsureDir(configDir); err != nil {
		log.Warnf("Failed to create config directory %s: %v. Using built-in defaults...", configDir, err)
		return DefaultConfig(), nil
	}

	if !utils.FileExists(configPath) {
		config := DefaultConfig()
		if err := SaveConfig(config, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", configPath, err)
			return DefaultConfig(), nil
		}
		log.Debugf("Created default config file at: %s", configPath)
		return config, nil
	}

	config, err := LoadConfig(configPath)
	if err != nil {
		log.Warnf("Failed to load config from %s: %v. Using built-in defaults...", configPath, err)
		return DefaultConfig(), nil
	}
	return config, nil
}

// LoadConfig loads from a TOML file. A file that fails to decode as a whole
// is salvaged key by key.
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()
	if err := utils.LoadTOMLFile(configPath, config); err != nil {
		return tryPartialParse(configPath)
	}
	return config, nil
}

func tryPartialParse(configPath string) (*Config, error) {
	config := DefaultConfig()

	raw, err := utils.ParseTOMLWithRecovery(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return config, nil
	}

	if section, ok := utils.ExtractSection(raw, "engine"); ok {
		extractEngineConfig(section, &config.Engine)
	}
	if section, ok := utils.ExtractSection(raw, "dict"); ok {
		extractDictConfig(section, &config.Dict)
	}
	if section, ok := utils.ExtractSection(raw, "cli"); ok {
		extractCliConfig(section, &config.CLI)
	}
	return config, nil
}

func extractEngineConfig(data map[string]any, engine *EngineConfig) {
	if val, ok := utils.ExtractString(data, "case"); ok {
		engine.Case = val
	}
	if val, ok := utils.ExtractRune(data, "empty"); ok {
		engine.Empty = string(val)
	}
	if val, ok := utils.ExtractString(data, "scan"); ok {
		engine.Scan = val
	}
	if val, ok := utils.ExtractBool(data, "skip_unplaceable"); ok {
		engine.SkipUnplaceable = val
	}
	if val, ok := utils.ExtractInt64(data, "cache_size"); ok {
		engine.CacheSize = val
	}
}

func extractDictConfig(data map[string]any, dict *DictConfig) {
	if val, ok := utils.ExtractInt64(data, "max_words"); ok {
		dict.MaxWords = val
	}
	if val, ok := utils.ExtractInt64(data, "min_length"); ok {
		dict.MinLength = val
	}
	if val, ok := utils.ExtractInt64(data, "max_length"); ok {
		dict.MaxLength = val
	}
	if val, ok := utils.ExtractBool(data, "allow_duplicates"); ok {
		dict.AllowDuplicates = val
	}
}

func extractCliConfig(data map[string]any, cli *CliConfig) {
	if val, ok := utils.ExtractBool(data, "color"); ok {
		cli.Color = val
	}
	if val, ok := utils.ExtractBool(data, "show_hints"); ok {
		cli.ShowHints = val
	}
	if val, ok := utils.ExtractBool(data, "show_unplaced"); ok {
		cli.ShowUnplaced = val
	}
}

// RebuildConfigFile force creates a new config.toml at default
func RebuildConfigFile() error {
	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		return err
	}
	if err := utils.EnsureDir(filepath.Dir(defaultPath)); err != nil {
		return err
	}
	return utils.SaveTOMLFile(DefaultConfig(), defaultPath)
}

// GetActiveConfigPath returns the absolute path of loaded config file
func GetActiveConfigPath(configPath string) string {
	if configPath == "" {
		if defaultPath, err := GetDefaultConfigPath(); err == nil {
			return defaultPath
		}
		return "unknown"
	}
	return utils.GetAbsolutePath(configPath)
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}

// CasePolicy parses Engine.Case.
func (c *Config) CasePolicy() (words.CasePolicy, error) {
	return words.ParseCasePolicy(c.Engine.Case)
}

// LayoutOptions turns the engine section into layout options. The logger is
// left to the caller.
func (c *Config) LayoutOptions() ([]layout.Option, error) {
	var opts []layout.Option

	empty := []rune(c.Engine.Empty)
	switch len(empty) {
	case 0:
	case 1:
		opts = append(opts, layout.WithEmpty(empty[0]))
	default:
		return nil, fmt.Errorf("config: engine.empty must be a single character, got %q", c.Engine.Empty)
	}

	switch c.Engine.Scan {
	case "", ScanCrossable:
	case ScanLetters:
		opts = append(opts, layout.WithLetterScan())
	default:
		return nil, fmt.Errorf("config: unknown engine.scan %q", c.Engine.Scan)
	}

	if c.Engine.SkipUnplaceable {
		opts = append(opts, layout.WithSkipUnplaceable())
	}
	return opts, nil
}

// DictionaryOptions turns the dict section into dictionary options, folding
// words with the engine's case policy.
func (c *Config) DictionaryOptions() ([]dictionary.Option, error) {
	policy, err := c.CasePolicy()
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return []dictionary.Option{
		dictionary.WithLimits(c.Dict.MinLength, c.Dict.MaxLength, c.Dict.MaxWords),
		dictionary.WithDuplicates(c.Dict.AllowDuplicates),
		dictionary.WithCasePolicy(policy),
	}, nil
}
