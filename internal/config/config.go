// Package config loads Teacher Bob's settings.
//
// Sources, lowest to highest precedence: built-in defaults, the YAML config file
// (~/.teacherbob/config.yaml), a .env file in the working directory, environment
// variables prefixed TEACHERBOB_, and command-line flags.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/teacherbob/teacherbob/internal/errors"
)

const (
	EnvPrefix       = "TEACHERBOB"
	DefaultEndpoint = "http://127.0.0.1:8000/perguntar"
	DefaultTheme    = "classroom"
	DefaultLogFile  = "/tmp/teacherbob-debug.log"
)

// Keys
const (
	KeyEndpoint       = "endpoint"
	KeyRequestTimeout = "request_timeout"
	KeyTheme          = "theme"
	KeyNotifications  = "notifications"
	KeyLogFile        = "log_file"
	KeyDebug          = "debug"
)

// flagKeys maps command-line flag names to config keys where they differ.
var flagKeys = map[string]string{
	"endpoint": KeyEndpoint,
	"timeout":  KeyRequestTimeout,
	"theme":    KeyTheme,
	"notify":   KeyNotifications,
	"log-file": KeyLogFile,
	"debug":    KeyDebug,
}

// Config holds the application configuration
type Config struct {
	Endpoint             string        `mapstructure:"endpoint" validate:"required,url"`
	RequestTimeout       time.Duration `mapstructure:"request_timeout" validate:"gte=0"`
	Theme                string        `mapstructure:"theme"`
	NotificationsEnabled bool          `mapstructure:"notifications"`
	LogFile              string        `mapstructure:"log_file" validate:"required"`
	Debug                bool          `mapstructure:"debug"`

	mu       sync.RWMutex
	filePath string
}

// Options controls where Load looks. Zero values select the standard locations.
type Options struct {
	ConfigFile string         // YAML config file; default ~/.teacherbob/config.yaml
	DotEnvFile string         // default ./.env
	Flags      *pflag.FlagSet // flags that override every other source
}

// DefaultPath returns the path of the user config file.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".teacherbob", "config.yaml"), nil
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetTypeByDefaultValue(true)
	v.SetDefault(KeyEndpoint, DefaultEndpoint)
	v.SetDefault(KeyRequestTimeout, time.Duration(0))
	v.SetDefault(KeyTheme, DefaultTheme)
	v.SetDefault(KeyNotifications, false)
	v.SetDefault(KeyLogFile, DefaultLogFile)
	v.SetDefault(KeyDebug, false)
	return v
}

// Load resolves the configuration from every source and validates it.
func Load(opts Options) (*Config, error) {
	v := newViper()

	path := opts.ConfigFile
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, errors.ConfigLoadFailed("home directory", err)
		}
		path = p
	}
	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.ConfigLoadFailed(path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, errors.ConfigLoadFailed(path, err)
	}

	// load .env if it exists (ignore if it does not)
	dotEnv := opts.DotEnvFile
	if dotEnv == "" {
		dotEnv = ".env"
	}
	if _, err := os.Stat(dotEnv); err == nil {
		if err := godotenv.Load(dotEnv); err != nil {
			return nil, errors.ConfigLoadFailed(dotEnv, err)
		}
	}
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if opts.Flags != nil {
		for name, key := range flagKeys {
			f := opts.Flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, errors.ConfigLoadFailed("flag --"+name, err)
			}
		}
	}

	cfg := &Config{filePath: path}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.ConfigLoadFailed(path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

var validate = validator.New()

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return errors.ConfigInvalid(err.Error())
	}
	var reasons []string
	for _, fe := range verrs {
		reasons = append(reasons, describe(fe))
	}
	return errors.ConfigInvalid(strings.Join(reasons, "; "))
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "url":
		return fmt.Sprintf("%s must be a URL, got %q", fe.Field(), fe.Value())
	case "gte":
		return fmt.Sprintf("%s must not be negative", fe.Field())
	default:
		return fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag())
	}
}

// Path returns the config file this configuration is saved to.
func (c *Config) Path() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.filePath
}

// SetFilePath changes where Save writes the config file.
func (c *Config) SetFilePath(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.filePath = path
}

// Save writes the user-changeable settings (theme and notifications) back to
// the config file, keeping whatever else the file already holds.
func (c *Config) Save() error {
	c.mu.RLock()
	path, theme, notify := c.filePath, c.Theme, c.NotificationsEnabled
	c.mu.RUnlock()

	if path == "" {
		return errors.ConfigInvalid("no config file path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.E(errors.Op("config.Save"), errors.KindIO, err)
	}

	w := viper.New()
	w.SetConfigFile(path)
	if _, err := os.Stat(path); err == nil {
		if err := w.ReadInConfig(); err != nil {
			return errors.ConfigLoadFailed(path, err)
		}
	}
	w.Set(KeyTheme, theme)
	w.Set(KeyNotifications, notify)
	if err := w.WriteConfigAs(path); err != nil {
		return errors.E(errors.Op("config.Save"), errors.KindIO, fmt.Sprintf("failed to write %s", path), err)
	}
	return nil
}

// GetTheme returns the UI theme name
func (c *Config) GetTheme() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Theme
}

// SetTheme sets the UI theme name
func (c *Config) SetTheme(theme string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Theme = theme
}

// GetNotificationsEnabled reports whether a desktop notification is sent when a
// reply arrives.
func (c *Config) GetNotificationsEnabled() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.NotificationsEnabled
}

// SetNotificationsEnabled sets the notification preference
func (c *Config) SetNotificationsEnabled(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.NotificationsEnabled = enabled
}
