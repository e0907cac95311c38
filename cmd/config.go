package cmd

import (
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"

	"newsCrawler/domain/adapters/resourceFilter"
	"newsCrawler/domain/adapters/urlFetcherExtractor"
)

const (
	appName   = "newscrawler"
	envPrefix = "NEWSCRAWLER"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

type AppConfig struct {
	StartURL string
	Max      int
	Output   string
	Delay    time.Duration

	Timeout          time.Duration
	Retries          int
	BackoffBase      time.Duration
	BackoffIncrement time.Duration
	UserAgent        string
	MaxBodyBytes     int64

	Workers        int
	RulesFile      string
	SkipExtensions []string
	RespectRobots  bool

	DB       string // empty disables the archive
	Progress bool

	Log LogConfig
}

type LogConfig struct {
	Level       string
	Encoding    string // console or json
	Development bool
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("start_url", "https://tuoitre.vn/")
	v.SetDefault("max", 100)
	v.SetDefault("output", "articles.txt")
	v.SetDefault("delay", 1.0)
	v.SetDefault("timeout", urlFetcherExtractor.DefaultTimeout)
	v.SetDefault("retries", urlFetcherExtractor.DefaultMaxRetries)
	v.SetDefault("backoff_base", urlFetcherExtractor.DefaultBackoffBase)
	v.SetDefault("backoff_increment", urlFetcherExtractor.DefaultBackoffIncrement)
	v.SetDefault("user_agent", urlFetcherExtractor.DefaultUserAgent)
	v.SetDefault("max_body_bytes", urlFetcherExtractor.DefaultMaxBodyBytes)
	v.SetDefault("workers", 1)
	v.SetDefault("rules", "")
	v.SetDefault("skip_extensions", resourceFilter.DefaultExtensions)
	v.SetDefault("respect_robots", false)
	v.SetDefault("db", "")
	v.SetDefault("progress", true)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.encoding", "console")
	v.SetDefault("log.development", false)
}

// initConfig layers the config file and NEWSCRAWLER_* environment variables
// over the defaults. A missing config file is fine unless it was named.
func initConfig(v *viper.Viper, cfgFile string) error {
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath(filepath.Join(xdg.ConfigHome, appName))
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}
	return nil
}

func loadConfig(v *viper.Viper) (AppConfig, error) {
	cfg := AppConfig{
		StartURL: strings.TrimSpace(v.GetString("start_url")),
		Max:      v.GetInt("max"),
		Output:   v.GetString("output"),
		Delay:    time.Duration(v.GetFloat64("delay") * float64(time.Second)),

		Timeout:          v.GetDuration("timeout"),
		Retries:          v.GetInt("retries"),
		BackoffBase:      v.GetDuration("backoff_base"),
		BackoffIncrement: v.GetDuration("backoff_increment"),
		UserAgent:        v.GetString("user_agent"),
		MaxBodyBytes:     v.GetInt64("max_body_bytes"),

		Workers:        v.GetInt("workers"),
		RulesFile:      v.GetString("rules"),
		SkipExtensions: v.GetStringSlice("skip_extensions"),
		RespectRobots:  v.GetBool("respect_robots"),

		DB:       v.GetString("db"),
		Progress: v.GetBool("progress"),

		Log: LogConfig{
			Level:       v.GetString("log.level"),
			Encoding:    v.GetString("log.encoding"),
			Development: v.GetBool("log.development"),
		},
	}
	if err := cfg.Validate(); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

func (c AppConfig) Validate() error {
	u, err := url.Parse(c.StartURL)
	switch {
	case err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Hostname() == "":
		return fmt.Errorf("%w: start_url %q must be an absolute http(s) url", ErrInvalidConfig, c.StartURL)
	case c.Max < 1:
		return fmt.Errorf("%w: max must be at least 1, got %d", ErrInvalidConfig, c.Max)
	case c.Output == "":
		return fmt.Errorf("%w: output must not be empty", ErrInvalidConfig)
	case c.Delay < 0:
		return fmt.Errorf("%w: delay must not be negative, got %s", ErrInvalidConfig, c.Delay)
	case c.Timeout <= 0:
		return fmt.Errorf("%w: timeout must be positive, got %s", ErrInvalidConfig, c.Timeout)
	case c.Retries < 1:
		return fmt.Errorf("%w: retries must be at least 1, got %d", ErrInvalidConfig, c.Retries)
	case c.BackoffBase < 0 || c.BackoffIncrement < 0:
		return fmt.Errorf("%w: backoff_base and backoff_increment must not be negative", ErrInvalidConfig)
	case c.Workers < 1:
		return fmt.Errorf("%w: workers must be at least 1, got %d", ErrInvalidConfig, c.Workers)
	case c.MaxBodyBytes < 1:
		return fmt.Errorf("%w: max_body_bytes must be positive, got %d", ErrInvalidConfig, c.MaxBodyBytes)
	case c.Log.Encoding != "console" && c.Log.Encoding != "json":
		return fmt.Errorf("%w: log.encoding must be console or json, got %q", ErrInvalidConfig, c.Log.Encoding)
	}
	return nil
}
