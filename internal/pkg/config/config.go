package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, security settings)
// - default: Values common across all environments (timeouts, reward amounts)
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	CORS    CORSConfig
	Log     LogConfig
	Catalog CatalogConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" default:"8080"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,X-User-ID"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
}

// CatalogConfig tunes catalog behavior. The verification delay mirrors the
// simulated checks of the source app; rewards are the fixed point amounts.
type CatalogConfig struct {
	VerificationDelay time.Duration `envconfig:"CATALOG_VERIFICATION_DELAY" default:"1500ms"`
	DefaultListLimit  int           `envconfig:"CATALOG_DEFAULT_LIST_LIMIT" default:"20"`
	MaxListLimit      int           `envconfig:"CATALOG_MAX_LIST_LIMIT" default:"200"`
	NearbyRadiusKm    float64       `envconfig:"CATALOG_NEARBY_RADIUS_KM" default:"10"`
	DefaultUserID     string        `envconfig:"CATALOG_DEFAULT_USER_ID" default:"u1"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		Catalog: CatalogConfig{
			VerificationDelay: 10 * time.Millisecond,
			DefaultListLimit:  20,
			MaxListLimit:      200,
			NearbyRadiusKm:    10,
			DefaultUserID:     "u1",
		},
	}
}
