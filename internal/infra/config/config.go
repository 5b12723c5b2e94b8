package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"gopkg.in/yaml.v3"
)

// Config aggregates runtime configuration used across the service.
type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	NameDay  NameDayConfig  `yaml:"nameDay"`
	SunTimes SunTimesConfig `yaml:"sunTimes"`
	Location LocationConfig `yaml:"location"`
	Refresh  RefreshConfig  `yaml:"refresh"`
	Display  DisplayConfig  `yaml:"display"`
	History  HistoryConfig  `yaml:"history"`
}

// HTTPConfig controls server level behavior.
type HTTPConfig struct {
	Address      string          `yaml:"address"`
	ReadTimeout  time.Duration   `yaml:"readTimeout"`
	WriteTimeout time.Duration   `yaml:"writeTimeout"`
	CORSOrigins  []string        `yaml:"corsOrigins"`
	RateLimit    RateLimitConfig `yaml:"rateLimit"`
}

// RateLimitConfig throttles manual refreshes per client IP.
type RateLimitConfig struct {
	Enabled           bool `yaml:"enabled"`
	RequestsPerMinute int  `yaml:"requestsPerMinute"`
	Burst             int  `yaml:"burst"`
}

// NameDayConfig points at the name-day calendar API.
type NameDayConfig struct {
	APIBaseURL string        `yaml:"apiBaseUrl"`
	Timeout    time.Duration `yaml:"timeout"`
}

// SunTimesConfig points at the sunrise/sunset API.
type SunTimesConfig struct {
	APIBaseURL string        `yaml:"apiBaseUrl"`
	Timeout    time.Duration `yaml:"timeout"`
	Timezone   string        `yaml:"timezone"`
}

// DefaultTimezone is the civil zone used when sunTimes.timezone is blank.
const DefaultTimezone = "Europe/Prague"

// Zone is the configured civil zone name, DefaultTimezone when blank. The
// board, the sun times and the refresh schedule all run in it.
func (c SunTimesConfig) Zone() string {
	if zone := strings.TrimSpace(c.Timezone); zone != "" {
		return zone
	}
	return DefaultTimezone
}

// LocationConfig is the fixed place the board reports on.
type LocationConfig struct {
	Name      string  `yaml:"name"`
	Caption   string  `yaml:"caption"`
	Latitude  float64 `yaml:"latitude"`
	Longitude float64 `yaml:"longitude"`
}

// RefreshConfig controls automatic refreshes.
type RefreshConfig struct {
	OnStartup bool   `yaml:"onStartup"`
	Schedule  string `yaml:"schedule"`
}

// DisplayConfig selects where the board state lives.
type DisplayConfig struct {
	Valkey ValkeyConfig `yaml:"valkey"`
}

// ValkeyConfig contains connection information for the state store.
type ValkeyConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
	Prefix  string `yaml:"prefix"`
}

// HistoryConfig controls the refresh log.
type HistoryConfig struct {
	Limit    int            `yaml:"limit"`
	Postgres PostgresConfig `yaml:"postgres"`
}

// PostgresConfig contains DSN and pooling settings.
type PostgresConfig struct {
	DSN      string `yaml:"dsn"`
	MaxConns int32  `yaml:"maxConns"`
	MinConns int32  `yaml:"minConns"`
}

// Load reads configuration from .env, a YAML file and environment variables.
func Load() (*Config, error) {
	cfg := defaultConfig()

	if err := loadDotEnv(os.Getenv("ENV_FILE")); err != nil {
		return nil, err
	}

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := hydrateFromFile(cfg, path); err != nil {
			return nil, err
		}
	} else if _, err := os.Stat("configs/config.yaml"); err == nil {
		if err := hydrateFromFile(cfg, "configs/config.yaml"); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadDotEnv never overrides variables already set in the environment.
func loadDotEnv(path string) error {
	if path == "" {
		if _, err := os.Stat(".env"); err != nil {
			return nil
		}
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load env file: %w", err)
	}
	return nil
}

func hydrateFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("HTTP_ADDRESS"); v != "" {
		cfg.HTTP.Address = v
	}
	if v := os.Getenv("HTTP_CORS_ORIGINS"); v != "" {
		cfg.HTTP.CORSOrigins = splitList(v)
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_ENABLED"); v != "" {
		cfg.HTTP.RateLimit.Enabled = parseBool(v)
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_RPM"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.RequestsPerMinute = parsed
		}
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_BURST"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.Burst = parsed
		}
	}
	if v := os.Getenv("NAMEDAY_API_BASE_URL"); v != "" {
		cfg.NameDay.APIBaseURL = v
	}
	if v := os.Getenv("NAMEDAY_TIMEOUT"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.NameDay.Timeout = parsed
		}
	}
	if v := os.Getenv("SUNTIMES_API_BASE_URL"); v != "" {
		cfg.SunTimes.APIBaseURL = v
	}
	if v := os.Getenv("SUNTIMES_TIMEOUT"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.SunTimes.Timeout = parsed
		}
	}
	if v := os.Getenv("SUNTIMES_TIMEZONE"); v != "" {
		cfg.SunTimes.Timezone = v
	}
	if v := os.Getenv("LOCATION_NAME"); v != "" {
		cfg.Location.Name = v
	}
	if v := os.Getenv("LOCATION_CAPTION"); v != "" {
		cfg.Location.Caption = v
	}
	if v := os.Getenv("LOCATION_LATITUDE"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Location.Latitude = parsed
		}
	}
	if v := os.Getenv("LOCATION_LONGITUDE"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Location.Longitude = parsed
		}
	}
	if v := os.Getenv("REFRESH_ON_STARTUP"); v != "" {
		cfg.Refresh.OnStartup = parseBool(v)
	}
	if v, ok := os.LookupEnv("REFRESH_SCHEDULE"); ok {
		cfg.Refresh.Schedule = strings.TrimSpace(v)
	}
	if v := os.Getenv("DISPLAY_VALKEY_ENABLED"); v != "" {
		cfg.Display.Valkey.Enabled = parseBool(v)
	}
	if v := os.Getenv("DISPLAY_VALKEY_ADDR"); v != "" {
		cfg.Display.Valkey.Addr = v
	}
	if v := os.Getenv("DISPLAY_VALKEY_PREFIX"); v != "" {
		cfg.Display.Valkey.Prefix = v
	}
	if v := os.Getenv("HISTORY_LIMIT"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.History.Limit = parsed
		}
	}
	if v := os.Getenv("HISTORY_POSTGRES_DSN"); v != "" {
		cfg.History.Postgres.DSN = v
	}
	if v := os.Getenv("HISTORY_POSTGRES_MAX_CONNS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.History.Postgres.MaxConns = int32(parsed)
		}
	}
	if v := os.Getenv("HISTORY_POSTGRES_MIN_CONNS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.History.Postgres.MinConns = int32(parsed)
		}
	}
}

func parseBool(v string) bool {
	return v == "1" || strings.EqualFold(v, "true")
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func defaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Address:      ":8080",
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 30 * time.Second,
			RateLimit: RateLimitConfig{
				Enabled:           true,
				RequestsPerMinute: 12,
				Burst:             4,
			},
		},
		NameDay: NameDayConfig{
			APIBaseURL: "https://svatky.adresa.info/json",
			Timeout:    10 * time.Second,
		},
		SunTimes: SunTimesConfig{
			APIBaseURL: "https://api.sunrise-sunset.org/json",
			Timeout:    10 * time.Second,
			Timezone:   DefaultTimezone,
		},
		Location: LocationConfig{
			Name:      "Olomouc",
			Caption:   "V Olomouci:",
			Latitude:  49.5938,
			Longitude: 17.2509,
		},
		Refresh: RefreshConfig{
			OnStartup: true,
			Schedule:  "1 0 * * *",
		},
		Display: DisplayConfig{
			Valkey: ValkeyConfig{
				Enabled: false,
				Prefix:  "svatek",
			},
		},
		History: HistoryConfig{
			Limit: 50,
			Postgres: PostgresConfig{
				MaxConns: 4,
			},
		},
	}
}

// Validate ensures the configuration is safe to use.
func (c *Config) Validate() error {
	if c.HTTP.Address == "" {
		return errors.New("http.address cannot be empty")
	}
	if strings.TrimSpace(c.NameDay.APIBaseURL) == "" {
		return errors.New("nameDay.apiBaseUrl cannot be empty")
	}
	if strings.TrimSpace(c.SunTimes.APIBaseURL) == "" {
		return errors.New("sunTimes.apiBaseUrl cannot be empty")
	}
	if c.NameDay.Timeout < 0 || c.SunTimes.Timeout < 0 {
		return errors.New("api timeouts cannot be negative")
	}
	if _, err := time.LoadLocation(c.SunTimes.Zone()); err != nil {
		return fmt.Errorf("sunTimes.timezone: %w", err)
	}
	if c.Location.Latitude < -90 || c.Location.Latitude > 90 {
		return errors.New("location.latitude must be within [-90, 90]")
	}
	if c.Location.Longitude < -180 || c.Location.Longitude > 180 {
		return errors.New("location.longitude must be within [-180, 180]")
	}
	if c.Refresh.Schedule != "" {
		if _, err := cron.ParseStandard(c.Refresh.Schedule); err != nil {
			return fmt.Errorf("refresh.schedule: %w", err)
		}
	}
	if c.Display.Valkey.Enabled && strings.TrimSpace(c.Display.Valkey.Addr) == "" {
		return errors.New("display.valkey.addr cannot be empty when valkey is enabled")
	}
	if c.History.Limit <= 0 {
		return errors.New("history.limit must be positive")
	}
	if c.HTTP.RateLimit.Enabled {
		if c.HTTP.RateLimit.RequestsPerMinute <= 0 {
			return errors.New("http.rateLimit.requestsPerMinute must be positive")
		}
		if c.HTTP.RateLimit.Burst <= 0 {
			return errors.New("http.rateLimit.burst must be positive")
		}
	}
	return nil
}
