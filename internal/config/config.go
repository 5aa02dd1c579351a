// Package config loads the service configuration from the environment and an optional .env file.
package config

import (
	"strconv"
	"strings"
	"time"

	"github.com/UnknownOlympus/meridian/pkg/spherical"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the configuration settings for the measurement service.
//
// Fields:
// - Env: The current environment (e.g., local, development, production).
// - Port: The port for the monitoring server.
// - ProviderType: The geocoding provider used to resolve the depot address (google, nominatim, visicom).
// - APIKey: The API key of the geocoding provider.
// - Workers: The number of concurrent workers per batch.
// - Interval: The duration between two batches.
// - BatchSize: The maximum number of tasks fetched per batch.
// - Radius: The sphere radius in meters.
// - MaxRange: Tasks further than this many meters from the depot are out of range; 0 disables it.
// - Depot: Where distances and headings are measured from.
// - Database: Configuration settings for the PostgreSQL database.
type Config struct {
	Env          string
	Port         int
	ProviderType string
	APIKey       string
	Workers      int
	Interval     time.Duration
	BatchSize    int
	Radius       float64
	MaxRange     float64
	Depot        DepotConfig
	Database     PostgresConfig
}

// DepotConfig locates the depot either by coordinates or by an address to geocode.
type DepotConfig struct {
	Location *spherical.LatLng // Location is nil unless both coordinates are set.
	Address  string
}

// PostgresConfig struct holds the configuration details for connecting to a PostgreSQL database.
type PostgresConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

// MustLoad reads .env from the working directory, if present, and then the environment.
func MustLoad() *Config {
	return MustLoadFrom(".env")
}

// MustLoadFrom is MustLoad with an explicit env file. Variables already set in
// the environment take precedence over the file. It panics on malformed values.
func MustLoadFrom(envFile string) *Config {
	_ = godotenv.Load(envFile)

	v := viper.New()
	v.SetEnvPrefix("MERIDIAN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("env", "production")
	v.SetDefault("health.port", "8080")
	v.SetDefault("provider.type", "nominatim")
	v.SetDefault("workers", "10")
	v.SetDefault("interval", "10m")
	v.SetDefault("batch.size", "100")
	v.SetDefault("radius", strconv.FormatFloat(spherical.EarthRadius, 'f', -1, 64))
	v.SetDefault("max.range", "0")
	v.SetDefault("db.port", "5432")

	for key, env := range map[string]string{
		"db.host":     "DB_HOST",
		"db.port":     "DB_PORT",
		"db.username": "DB_USERNAME",
		"db.password": "DB_PASSWORD",
		"db.name":     "DB_NAME",
	} {
		_ = v.BindEnv(key, env)
	}

	interval, err := time.ParseDuration(v.GetString("interval"))
	if err != nil {
		panic("failed to parse interval from configuration")
	}

	healthPort, err := strconv.Atoi(v.GetString("health.port"))
	if err != nil {
		panic("failed to parse port for monitoring server from configuration")
	}

	workers, err := strconv.Atoi(v.GetString("workers"))
	if err != nil || workers < 1 {
		panic("failed to parse workers from configuration, must be a positive integer")
	}

	batchSize, err := strconv.Atoi(v.GetString("batch.size"))
	if err != nil || batchSize < 1 {
		panic("failed to parse batch size from configuration, must be a positive integer")
	}

	radius, err := strconv.ParseFloat(v.GetString("radius"), 64)
	if err != nil || radius <= 0 {
		panic("failed to parse sphere radius from configuration, must be a positive number")
	}

	maxRange, err := strconv.ParseFloat(v.GetString("max.range"), 64)
	if err != nil || maxRange < 0 {
		panic("failed to parse max range from configuration, must not be negative")
	}

	return &Config{
		Env:          v.GetString("env"),
		Port:         healthPort,
		ProviderType: v.GetString("provider.type"),
		APIKey:       v.GetString("provider.key"),
		Workers:      workers,
		Interval:     interval,
		BatchSize:    batchSize,
		Radius:       radius,
		MaxRange:     maxRange,
		Depot:        mustLoadDepot(v),
		Database: PostgresConfig{
			Host:     v.GetString("db.host"),
			Port:     v.GetString("db.port"),
			User:     v.GetString("db.username"),
			Password: v.GetString("db.password"),
			Name:     v.GetString("db.name"),
		},
	}
}

func mustLoadDepot(v *viper.Viper) DepotConfig {
	depot := DepotConfig{Address: v.GetString("depot.address")}

	lat, lng := v.GetString("depot.lat"), v.GetString("depot.lng")
	switch {
	case lat == "" && lng == "":
		return depot
	case lat == "" || lng == "":
		panic("depot coordinates require both latitude and longitude")
	}

	location, err := spherical.Convert(map[string]any{"lat": lat, "lng": lng})
	if err != nil {
		panic("failed to parse depot coordinates from configuration")
	}
	depot.Location = &location

	return depot
}
