package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	AI       AIConfig
	Maps     MapsConfig
	Places   PlacesConfig
	Log      LogConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type DatabaseConfig struct {
	URL string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type AIConfig struct {
	Provider string
	APIKey   string
	Model    string
}

type MapsConfig struct {
	APIKey         string
	BaseURL        string
	RequestTimeout time.Duration
}

type PlacesConfig struct {
	RadiusMeters    int
	MaxResults      int
	Concurrency     int
	GeocodeCacheTTL time.Duration
}

type LogConfig struct {
	Level string
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// A missing .env file is fine, environment variables still apply.
	_ = viper.ReadInConfig()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("AI_PROVIDER", "gemini")
	viper.SetDefault("AI_MODEL", "gemini-2.5-flash")
	viper.SetDefault("MAPS_BASE_URL", "https://maps.googleapis.com/maps/api")
	viper.SetDefault("MAPS_TIMEOUT_SECONDS", 20)
	viper.SetDefault("PLACES_RADIUS_METERS", 5000)
	viper.SetDefault("PLACES_MAX_RESULTS", 3)
	viper.SetDefault("PLACES_CONCURRENCY", 4)
	viper.SetDefault("GEOCODE_CACHE_TTL_HOURS", 168)
	viper.SetDefault("LOG_LEVEL", "info")

	apiKey := viper.GetString("GEMINI_API_KEY")
	if viper.GetString("AI_PROVIDER") == "openai" {
		apiKey = viper.GetString("OPENAI_API_KEY")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: viper.GetString("PORT"),
			Env:  viper.GetString("ENV"),
		},
		Database: DatabaseConfig{
			URL: viper.GetString("POSTGRES_URL"),
		},
		Redis: RedisConfig{
			Addr:     viper.GetString("REDIS_ADDR"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		AI: AIConfig{
			Provider: viper.GetString("AI_PROVIDER"),
			APIKey:   apiKey,
			Model:    viper.GetString("AI_MODEL"),
		},
		Maps: MapsConfig{
			APIKey:         viper.GetString("GOOGLE_MAPS_API_KEY"),
			BaseURL:        viper.GetString("MAPS_BASE_URL"),
			RequestTimeout: time.Duration(viper.GetInt("MAPS_TIMEOUT_SECONDS")) * time.Second,
		},
		Places: PlacesConfig{
			RadiusMeters:    viper.GetInt("PLACES_RADIUS_METERS"),
			MaxResults:      viper.GetInt("PLACES_MAX_RESULTS"),
			Concurrency:     viper.GetInt("PLACES_CONCURRENCY"),
			GeocodeCacheTTL: time.Duration(viper.GetInt("GEOCODE_CACHE_TTL_HOURS")) * time.Hour,
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
	}

	return cfg, nil
}
