package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	DataSourceRemote   = "remote"
	DataSourceLocal    = "local"
	DataSourceDatabase = "database"

	DefaultCSVURL = "https://raw.githubusercontent.com/sandeepprasadR/DoctorHubConcientMall/main/doctors_data.csv"
)

var (
	ErrInvalidDataSource = errors.New("invalid data source")
	ErrMissingDBConfig   = errors.New("database data source requires DB_HOST and DB_NAME")
)

type Config struct {
	App       AppConfig
	Server    ServerConfig
	Source    SourceConfig
	Log       LogConfig
	DB        DBConfig
	Redis     RedisConfig
	Analytics AnalyticsConfig
}

type AppConfig struct {
	Host string
	Port string
	Env  string
}

type ServerConfig struct {
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// SourceConfig selects where doctor records are loaded from.
// Kind is fixed for the lifetime of the process.
type SourceConfig struct {
	Kind         string
	CSVURL       string
	CSVPath      string
	FetchTimeout time.Duration
}

type LogConfig struct {
	Level  string
	Format string
}

type DBConfig struct {
	Host        string
	Port        string
	User        string
	Password    string
	Name        string
	SSLMode     string
	AutoMigrate bool
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// Enabled reports whether a Redis host was configured.
func (c RedisConfig) Enabled() bool {
	return c.Host != ""
}

type AnalyticsConfig struct {
	TrendingLimit int
}

// LoadConfig reads .env from the working directory (when present) and the process environment.
func LoadConfig() (*Config, error) {
	return LoadConfigFile(".env")
}

// LoadConfigFile is LoadConfig with an explicit env file path. A missing file is not an error.
func LoadConfigFile(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			v.SetConfigType("env")
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("failed to read %s: %w", path, err)
			}
		}
	}

	config := &Config{
		App: AppConfig{
			Host: v.GetString("APP_HOST"),
			Port: v.GetString("APP_PORT"),
			Env:  v.GetString("APP_ENV"),
		},
		Server: ServerConfig{
			ReadTimeout:  durationOr(v.GetString("SERVER_READ_TIMEOUT"), 15*time.Second),
			WriteTimeout: durationOr(v.GetString("SERVER_WRITE_TIMEOUT"), 30*time.Second),
			IdleTimeout:  durationOr(v.GetString("SERVER_IDLE_TIMEOUT"), 60*time.Second),
		},
		Source: SourceConfig{
			Kind:         strings.ToLower(strings.TrimSpace(v.GetString("DATA_SOURCE"))),
			CSVURL:       v.GetString("CSV_URL"),
			CSVPath:      v.GetString("CSV_PATH"),
			FetchTimeout: durationOr(v.GetString("FETCH_TIMEOUT"), 10*time.Second),
		},
		Log: LogConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
		DB: DBConfig{
			Host:        v.GetString("DB_HOST"),
			Port:        v.GetString("DB_PORT"),
			User:        v.GetString("DB_USER"),
			Password:    v.GetString("DB_PASSWORD"),
			Name:        v.GetString("DB_NAME"),
			SSLMode:     v.GetString("DB_SSLMODE"),
			AutoMigrate: v.GetBool("DB_AUTO_MIGRATE"),
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetString("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Analytics: AnalyticsConfig{
			TrendingLimit: v.GetInt("TRENDING_LIMIT"),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) Validate() error {
	switch c.Source.Kind {
	case DataSourceRemote, DataSourceLocal:
	case DataSourceDatabase:
		if c.DB.Host == "" || c.DB.Name == "" {
			return ErrMissingDBConfig
		}
	default:
		return fmt.Errorf("%w: %q (want remote, local or database)", ErrInvalidDataSource, c.Source.Kind)
	}

	if c.Analytics.TrendingLimit <= 0 {
		c.Analytics.TrendingLimit = 10
	}

	return nil
}

// Addr returns the listen address for http.Server.
func (c AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_HOST", "0.0.0.0")
	v.SetDefault("APP_PORT", "5000")
	v.SetDefault("APP_ENV", "development")

	v.SetDefault("DATA_SOURCE", DataSourceRemote)
	v.SetDefault("CSV_URL", DefaultCSVURL)
	v.SetDefault("CSV_PATH", "./doctors_data.csv")
	v.SetDefault("FETCH_TIMEOUT", "10s")

	v.SetDefault("SERVER_READ_TIMEOUT", "15s")
	v.SetDefault("SERVER_WRITE_TIMEOUT", "30s")
	v.SetDefault("SERVER_IDLE_TIMEOUT", "60s")

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_AUTO_MIGRATE", false)

	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("TRENDING_LIMIT", 10)
}

func durationOr(raw string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
