package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type (
	Config struct {
		Server     ServerConfig     `mapstructure:"server"`
		Database   DatabaseConfig   `mapstructure:"database"`
		Redis      RedisConfig      `mapstructure:"redis"`
		GoogleAPI  GoogleAPIConfig  `mapstructure:"google_api"`
		Asynq      AsynqConfig      `mapstructure:"asynq"`
		Scheduling SchedulingConfig `mapstructure:"scheduling"`
		RateLimit  RateLimitConfig  `mapstructure:"rate_limit"`
		LogLevel   string           `mapstructure:"log_level"`
	}

	ServerConfig struct {
		Host    string `mapstructure:"host"`
		Port    int    `mapstructure:"port"`
		BaseURL string `mapstructure:"base_url"`
	}

	DatabaseConfig struct {
		Host     string `mapstructure:"host"`
		Port     int    `mapstructure:"port"`
		User     string `mapstructure:"user"`
		Password string `mapstructure:"password"`
		DBName   string `mapstructure:"dbname"`
	}

	RedisConfig struct {
		Addr     string `mapstructure:"addr"`
		Password string `mapstructure:"password"`
		DB       int    `mapstructure:"db"`
	}

	GoogleAPIConfig struct {
		ClientID     string `mapstructure:"client_id"`
		ClientSecret string `mapstructure:"client_secret"`
		RedirectURI  string `mapstructure:"redirect_uri"`
	}

	AsynqConfig struct {
		Concurrency int `mapstructure:"concurrency"`
	}

	// SchedulingConfig holds the service reference timezone used to anchor
	// working windows and to derive "today" for date validation.
	SchedulingConfig struct {
		Timezone string `mapstructure:"timezone"`
	}

	RateLimitConfig struct {
		Limit         int `mapstructure:"limit"`
		WindowSeconds int `mapstructure:"window_seconds"`
	}
)

var (
	cfg  *Config
	once sync.Once
)

func Load() (*Config, error) {
	var loadErr error
	once.Do(func() {
		_ = godotenv.Load()

		v := viper.New()
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")

		v.SetEnvPrefix("APP")
		v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		v.AutomaticEnv()

		setDefaults(v)

		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				loadErr = fmt.Errorf("read config: %w", err)
				return
			}
		}

		c := &Config{}
		if err := v.Unmarshal(c); err != nil {
			loadErr = fmt.Errorf("unmarshal config: %w", err)
			return
		}
		cfg = c
	})
	if loadErr != nil {
		return nil, loadErr
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 7070)
	v.SetDefault("server.base_url", "http://localhost:7070")

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "appointments")

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("asynq.concurrency", 5)

	v.SetDefault("scheduling.timezone", "UTC")

	v.SetDefault("rate_limit.limit", 60)
	v.SetDefault("rate_limit.window_seconds", 60)

	v.SetDefault("log_level", "info")
}

// Get panics when configuration has not been loaded. Used by code paths that
// only run after server startup.
func Get() *Config {
	c, err := Load()
	if err != nil {
		panic(err)
	}
	return c
}

func GetSafe() (*Config, error) {
	return Load()
}
