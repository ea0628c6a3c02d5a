package config

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config holds the application configuration.
type Config struct {
	DatabaseURL string `mapstructure:"DATABASE_URL"`
	JWTSecret   string `mapstructure:"JWT_SECRET"`
	Port        string `mapstructure:"PORT"`

	// External game feeds, fetched in this order during ingestion.
	FeedXMLURL        string `mapstructure:"FEED_XML_URL"`
	FeedFreeToGameURL string `mapstructure:"FEED_FREETOGAME_URL"`
	FeedMMOBombURL    string `mapstructure:"FEED_MMOBOMB_URL"`

	// Per-feed fetch timeout; expiry counts as that feed failing.
	FeedTimeoutSeconds int `mapstructure:"FEED_TIMEOUT_SECONDS"`

	// Minimum time between ingestion runs triggered by catalog listings.
	CatalogRefreshMinutes int `mapstructure:"CATALOG_REFRESH_MINUTES"`
}

var AppConfig *Config

// LoadConfig loads the configuration from a .env file and environment variables.
func LoadConfig() {
	viper.AddConfigPath(".")
	viper.SetConfigName(".env")
	viper.SetConfigType("env")

	viper.AutomaticEnv()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("FEED_XML_URL", "https://gitlab.eif.urjc.es/cursosweb/2024-2025/final-gamerank/raw/main/listado1.xml")
	viper.SetDefault("FEED_FREETOGAME_URL", "https://www.freetogame.com/api/games")
	viper.SetDefault("FEED_MMOBOMB_URL", "https://www.mmobomb.com/api1/games")
	viper.SetDefault("FEED_TIMEOUT_SECONDS", 10)
	viper.SetDefault("CATALOG_REFRESH_MINUTES", 30)

	if err := viper.ReadInConfig(); err != nil {
		log.Warn(".env file not found, loading from environment variables")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Unable to decode into struct, %v", err)
	}
}
