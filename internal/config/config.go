package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// Values are read by viper from a config file or environment variables.
type Config struct {
	TelegramBotToken string `mapstructure:"TELEGRAM_BOT_TOKEN"`
	// OwnerChatID restricts the bot to a single chat. Zero serves everyone.
	OwnerChatID int64 `mapstructure:"OWNER_CHAT_ID"`

	BadgerDBPath string        `mapstructure:"BADGERDB_PATH"`
	GCInterval   time.Duration `mapstructure:"GC_INTERVAL"`
	LogLevel     string        `mapstructure:"LOG_LEVEL"`

	// Simulated backend latencies.
	SaveDelay            time.Duration `mapstructure:"SAVE_DELAY"`
	FetchDelay           time.Duration `mapstructure:"FETCH_DELAY"`
	ToggleDelay          time.Duration `mapstructure:"TOGGLE_DELAY"`
	SimulatedFailureRate float64       `mapstructure:"SIMULATED_FAILURE_RATE"`

	NotFoundRedirect time.Duration `mapstructure:"NOT_FOUND_REDIRECT"`
	DarkModeDefault  bool          `mapstructure:"DARK_MODE_DEFAULT"`
	SeedDemoLinks    bool          `mapstructure:"SEED_DEMO_LINKS"`

	ScraperEnabled bool          `mapstructure:"SCRAPER_ENABLED"`
	ScrapeTimeout  time.Duration `mapstructure:"SCRAPE_TIMEOUT"`
}

// defaults also registers every key with viper, which is what lets
// Unmarshal see values that only exist in the environment.
var defaults = map[string]any{
	"TELEGRAM_BOT_TOKEN":     "",
	"OWNER_CHAT_ID":          0,
	"BADGERDB_PATH":          "./badger_data",
	"GC_INTERVAL":            5 * time.Minute,
	"LOG_LEVEL":              "info",
	"SAVE_DELAY":             time.Second,
	"FETCH_DELAY":            1200 * time.Millisecond,
	"TOGGLE_DELAY":           800 * time.Millisecond,
	"SIMULATED_FAILURE_RATE": 0.0,
	"NOT_FOUND_REDIRECT":     10 * time.Second,
	"DARK_MODE_DEFAULT":      false,
	"SEED_DEMO_LINKS":        true,
	"SCRAPER_ENABLED":        false,
	"SCRAPE_TIMEOUT":         30 * time.Second,
}

// LoadConfig reads configuration from path/config.yaml and the environment.
// Environment variables win over the file.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	for k, d := range defaults {
		v.SetDefault(k, d)
	}

	if err = v.ReadInConfig(); err != nil {
		// A missing file is fine, everything can come from the environment.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	if err = v.Unmarshal(&config); err != nil {
		return Config{}, fmt.Errorf("unable to decode into struct: %w", err)
	}

	if err = config.validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

func (c Config) validate() error {
	if c.TelegramBotToken == "" {
		return fmt.Errorf("TELEGRAM_BOT_TOKEN is not set")
	}
	if c.SimulatedFailureRate < 0 || c.SimulatedFailureRate > 1 {
		return fmt.Errorf("SIMULATED_FAILURE_RATE must be between 0 and 1, got %v", c.SimulatedFailureRate)
	}
	if c.SaveDelay < 0 || c.FetchDelay < 0 || c.ToggleDelay < 0 || c.NotFoundRedirect < 0 {
		return fmt.Errorf("delays must not be negative")
	}
	if c.GCInterval <= 0 {
		return fmt.Errorf("GC_INTERVAL must be positive")
	}
	if c.ScraperEnabled && c.ScrapeTimeout <= 0 {
		return fmt.Errorf("SCRAPE_TIMEOUT must be positive when the scraper is enabled")
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel.
func (c Config) Level() (logrus.Level, error) {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return 0, fmt.Errorf("invalid LOG_LEVEL %q: %w", c.LogLevel, err)
	}
	return lvl, nil
}
