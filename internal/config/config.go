package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"coinmind/internal/eventbus"
)

// Config represents the application configuration
type Config struct {
	Version        int        `toml:"version" mapstructure:"version"`
	BaseURL        string     `toml:"base_url" mapstructure:"base_url"`
	CurrencyAPIURL string     `toml:"currency_api_url" mapstructure:"currency_api_url"`
	SessionFile    string     `toml:"session_file" mapstructure:"session_file"`
	PageSize       int        `toml:"page_size" mapstructure:"page_size"`
	RequestTimeout int        `toml:"request_timeout" mapstructure:"request_timeout"` // seconds
	UISettings     UISettings `toml:"ui" mapstructure:"ui"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	ShowKeypad  bool `toml:"show_keypad" mapstructure:"show_keypad"`
	Markdown    bool `toml:"markdown" mapstructure:"markdown"`
	AdviceDays  int  `toml:"advice_days" mapstructure:"advice_days"`
	HighlightMS int  `toml:"highlight_ms" mapstructure:"highlight_ms"`
	DebounceMS  int  `toml:"debounce_ms" mapstructure:"debounce_ms"`
}

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// NewConfigService creates a new config service. An empty path selects
// the per-user default location.
func NewConfigService(path string) ConfigService {
	if path == "" {
		path = filepath.Join(defaultDir(), "config.toml")
	}
	return &configService{filePath: path}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(path string, bus eventbus.EventBus) ConfigService {
	cs := NewConfigService(path).(*configService)
	cs.bus = bus
	return cs
}

// Path returns the file the service reads and writes
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file, falling back to defaults when
// the file does not exist yet. Environment overrides apply in both cases.
func (cs *configService) Load() (*Config, error) {
	var cfg *Config
	if _, err := os.Stat(cs.filePath); errors.Is(err, os.ErrNotExist) {
		cfg, err = readConfig("")
		if err != nil {
			return nil, err
		}
	} else {
		cfg, err = cs.LoadFromPath(cs.filePath)
		if err != nil {
			return nil, err
		}
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{
			BaseURL: cfg.BaseURL,
			Path:    cs.filePath,
		})
	}
	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}
	return nil
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}
	return readConfig(path)
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// readConfig layers defaults, the optional TOML file and the environment.
func readConfig(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("COINMIND")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// BASE_URL is what the web deployment exported
	_ = v.BindEnv("base_url", "COINMIND_BASE_URL", "BASE_URL")

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("version", d.Version)
	v.SetDefault("base_url", d.BaseURL)
	v.SetDefault("currency_api_url", d.CurrencyAPIURL)
	v.SetDefault("session_file", d.SessionFile)
	v.SetDefault("page_size", d.PageSize)
	v.SetDefault("request_timeout", d.RequestTimeout)
	v.SetDefault("ui.show_keypad", d.UISettings.ShowKeypad)
	v.SetDefault("ui.markdown", d.UISettings.Markdown)
	v.SetDefault("ui.advice_days", d.UISettings.AdviceDays)
	v.SetDefault("ui.highlight_ms", d.UISettings.HighlightMS)
	v.SetDefault("ui.debounce_ms", d.UISettings.DebounceMS)
}

// Validate checks value ranges
func (c *Config) Validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: base_url %q must be an absolute http(s) URL", ErrInvalidConfig, c.BaseURL)
	}
	if c.PageSize < 1 || c.PageSize > 100 {
		return fmt.Errorf("%w: page_size %d out of range [1,100]", ErrInvalidConfig, c.PageSize)
	}
	if c.RequestTimeout < 1 {
		return fmt.Errorf("%w: request_timeout must be positive", ErrInvalidConfig)
	}
	if c.UISettings.AdviceDays < 1 {
		return fmt.Errorf("%w: ui.advice_days must be positive", ErrInvalidConfig)
	}
	return nil
}

// Timeout returns the HTTP request timeout
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.RequestTimeout) * time.Second
}

// HighlightDuration returns how long a key highlight stays on
func (c *Config) HighlightDuration() time.Duration {
	if c.UISettings.HighlightMS <= 0 {
		return 200 * time.Millisecond
	}
	return time.Duration(c.UISettings.HighlightMS) * time.Millisecond
}

// DebounceDuration returns the currency conversion quiet period
func (c *Config) DebounceDuration() time.Duration {
	if c.UISettings.DebounceMS <= 0 {
		return 300 * time.Millisecond
	}
	return time.Duration(c.UISettings.DebounceMS) * time.Millisecond
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version:        1,
		BaseURL:        "http://localhost:8000",
		CurrencyAPIURL: "https://api.frankfurter.app",
		SessionFile:    filepath.Join(defaultDir(), "session.json"),
		PageSize:       20,
		RequestTimeout: 15,
		UISettings: UISettings{
			ShowKeypad:  true,
			Markdown:    true,
			AdviceDays:  30,
			HighlightMS: 200,
			DebounceMS:  300,
		},
	}
}

func defaultDir() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "coinmind")
}
