package config

import (
	"errors"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	DB       DBConfig
	Redis    RedisConfig
	Geocoder GeocoderConfig
	Routing  RoutingConfig
}

type AppConfig struct {
	Port string
	Env  string
}

// DBConfig configures the optional audit-trail database. An empty Host
// disables the audit trail entirely.
type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

// RedisConfig configures the optional geocode cache. An empty Host disables
// caching and every lookup goes straight to the provider.
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type GeocoderConfig struct {
	BaseURL       string
	UserAgent     string
	LookupDelay   time.Duration
	LookupTimeout time.Duration
	CacheTTL      time.Duration
}

type RoutingConfig struct {
	RadiusKm    float64
	CapacityMin int
	CapacityMax int
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("GEOCODER_BASE_URL", "https://nominatim.openstreetmap.org")
	viper.SetDefault("GEOCODER_USER_AGENT", "home-visit-planner")
	viper.SetDefault("GEOCODER_LOOKUP_DELAY", "1s")
	viper.SetDefault("GEOCODER_LOOKUP_TIMEOUT", "10s")
	viper.SetDefault("GEOCODER_CACHE_TTL", "24h")
	viper.SetDefault("ROUTING_RADIUS_KM", 5.0)
	viper.SetDefault("ROUTING_CAPACITY_MIN", 4)
	viper.SetDefault("ROUTING_CAPACITY_MAX", 7)

	// A missing .env file is fine; environment variables still apply.
	if err := viper.ReadInConfig(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	config := &Config{
		App: AppConfig{
			Port: viper.GetString("APP_PORT"),
			Env:  viper.GetString("APP_ENV"),
		},
		DB: DBConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Name:     viper.GetString("DB_NAME"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Geocoder: GeocoderConfig{
			BaseURL:       viper.GetString("GEOCODER_BASE_URL"),
			UserAgent:     viper.GetString("GEOCODER_USER_AGENT"),
			LookupDelay:   viper.GetDuration("GEOCODER_LOOKUP_DELAY"),
			LookupTimeout: viper.GetDuration("GEOCODER_LOOKUP_TIMEOUT"),
			CacheTTL:      viper.GetDuration("GEOCODER_CACHE_TTL"),
		},
		Routing: RoutingConfig{
			RadiusKm:    viper.GetFloat64("ROUTING_RADIUS_KM"),
			CapacityMin: viper.GetInt("ROUTING_CAPACITY_MIN"),
			CapacityMax: viper.GetInt("ROUTING_CAPACITY_MAX"),
		},
	}

	return config, nil
}
