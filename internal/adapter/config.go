package adapter

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mmcdole/bookcase/internal/catalog"
	"github.com/mmcdole/bookcase/internal/domain"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to environment overrides, e.g. BOOKCASE_UI_THEME
const EnvPrefix = "BOOKCASE"

// Config holds all application configuration
type Config struct {
	Data    DataConfig    `mapstructure:"data"`
	UI      UIConfig      `mapstructure:"ui"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// DataConfig says where the catalog comes from and where it is cached
type DataConfig struct {
	File     string `mapstructure:"file"`      // Catalog file; empty uses the built-in sample
	CacheDir string `mapstructure:"cache_dir"` // bbolt directory; empty keeps the cache in memory
}

// UIConfig holds UI configuration
type UIConfig struct {
	Theme       string `mapstructure:"theme"`        // auto, day or night
	PageSize    int    `mapstructure:"page_size"`    // Books revealed per "show more"
	OpenCommand string `mapstructure:"open_command"` // Cover image viewer; empty for system default
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Data: DataConfig{
			File:     "",
			CacheDir: defaultCachePath(),
		},
		UI: UIConfig{
			Theme:    domain.ThemeAuto,
			PageSize: catalog.DefaultPageSize,
		},
		Logging: LoggingConfig{
			File:  defaultLogPath(),
			Level: "INFO",
		},
	}
}

// defaultLogPath returns the default log file path for the current OS
func defaultLogPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "bookcase", "bookcase.log")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "bookcase", "bookcase.log")
	}
}

// defaultConfigPath returns the default config directory for the current OS
func defaultConfigPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "bookcase")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "bookcase")
	}
}

// defaultCachePath returns the default cache directory path for the current OS
func defaultCachePath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("LOCALAPPDATA"), "bookcase", "cache")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "bookcase", "cache")
	}
}

// DefaultConfigFile is where SaveConfig writes when no path is given
func DefaultConfigFile() string {
	return filepath.Join(defaultConfigPath(), "config.yaml")
}

// newViper registers every key with its default so env overrides reach Unmarshal
func newViper(defaults *Config) *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")

	v.SetDefault("data.file", defaults.Data.File)
	v.SetDefault("data.cache_dir", defaults.Data.CacheDir)
	v.SetDefault("ui.theme", defaults.UI.Theme)
	v.SetDefault("ui.page_size", defaults.UI.PageSize)
	v.SetDefault("ui.open_command", defaults.UI.OpenCommand)
	v.SetDefault("logging.file", defaults.Logging.File)
	v.SetDefault("logging.level", defaults.Logging.Level)

	// Environment variable overrides
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// LoadConfig loads configuration from .env, the config file and environment.
// An empty path searches the default config directory and the working directory.
func LoadConfig(path string) (*Config, error) {
	// .env only fills variables that are not already set
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error reading .env: %w", err)
	}

	cfg := DefaultConfig()
	v := newViper(cfg)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(defaultConfigPath())
		v.AddConfigPath(".")
	}

	// Read config file if it exists
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// normalize validates the theme, clamps the page size and expands ~ in paths
func (c *Config) normalize() error {
	theme, err := domain.ParseTheme(c.UI.Theme)
	if err != nil {
		return fmt.Errorf("error parsing config: %w", err)
	}
	c.UI.Theme = theme

	if c.UI.PageSize <= 0 {
		c.UI.PageSize = catalog.DefaultPageSize
	}

	for _, p := range []*string{&c.Data.File, &c.Data.CacheDir, &c.Logging.File} {
		expanded, err := ExpandPath(*p)
		if err != nil {
			return err
		}
		*p = expanded
	}
	return nil
}

// SaveConfig writes cfg as YAML. An empty path writes DefaultConfigFile().
func SaveConfig(cfg *Config, path string) error {
	if path == "" {
		path = DefaultConfigFile()
	}

	// Ensure config directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	v := viper.New()

	// Set fields individually to ensure correct key names (snake_case)
	v.Set("data.file", cfg.Data.File)
	v.Set("data.cache_dir", cfg.Data.CacheDir)

	v.Set("ui.theme", cfg.UI.Theme)
	v.Set("ui.page_size", cfg.UI.PageSize)
	v.Set("ui.open_command", cfg.UI.OpenCommand)

	v.Set("logging.file", cfg.Logging.File)
	v.Set("logging.level", cfg.Logging.Level)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// ExpandPath replaces a leading ~ with the user's home directory
func ExpandPath(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
