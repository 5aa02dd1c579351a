package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Flaque/filet"
	"github.com/UnknownOlympus/meridian/internal/config"
	"github.com/UnknownOlympus/meridian/pkg/spherical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_MustLoadFromEnv(t *testing.T) {
	t.Setenv("MERIDIAN_ENV", "local")
	t.Setenv("MERIDIAN_INTERVAL", "30s")
	t.Setenv("MERIDIAN_PROVIDER_TYPE", "google")
	t.Setenv("MERIDIAN_PROVIDER_KEY", "testAPIKey")
	t.Setenv("MERIDIAN_BATCH_SIZE", "25")
	t.Setenv("MERIDIAN_MAX_RANGE", "150000")
	t.Setenv("MERIDIAN_DEPOT_LAT", "50.4501")
	t.Setenv("MERIDIAN_DEPOT_LNG", "390.5234")
	t.Setenv("DB_HOST", "testHost")
	t.Setenv("DB_PORT", "12345")
	t.Setenv("DB_USERNAME", "admin")
	t.Setenv("DB_PASSWORD", "adminpass")
	t.Setenv("DB_NAME", "testName")

	cfg := config.MustLoad()

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, "testHost", cfg.Database.Host)
	assert.Equal(t, "12345", cfg.Database.Port)
	assert.Equal(t, "admin", cfg.Database.User)
	assert.Equal(t, "adminpass", cfg.Database.Password)
	assert.Equal(t, "testName", cfg.Database.Name)
	assert.Equal(t, 30*time.Second, cfg.Interval)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "google", cfg.ProviderType)
	assert.Equal(t, "testAPIKey", cfg.APIKey)
	assert.Equal(t, 10, cfg.Workers)
	assert.Equal(t, 25, cfg.BatchSize)
	assert.InDelta(t, spherical.EarthRadius, cfg.Radius, 0)
	assert.InDelta(t, 150000.0, cfg.MaxRange, 0)
	require.NotNil(t, cfg.Depot.Location)
	assert.InDelta(t, 50.4501, cfg.Depot.Location.Lat(), 1e-9)
	assert.InDelta(t, 30.5234, cfg.Depot.Location.Lng(), 1e-9)
}

func Test_MustLoadDefaults(t *testing.T) {
	cfg := config.MustLoadFrom(filepath.Join(t.TempDir(), "missing.env"))

	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, "nominatim", cfg.ProviderType)
	assert.Equal(t, 10*time.Minute, cfg.Interval)
	assert.Equal(t, 100, cfg.BatchSize)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Nil(t, cfg.Depot.Location)
	assert.Empty(t, cfg.Depot.Address)
}

func Test_MustLoadFromFile(t *testing.T) {
	defer filet.CleanUp(t)
	t.Cleanup(func() {
		os.Unsetenv("MERIDIAN_DEPOT_ADDRESS")
		os.Unsetenv("MERIDIAN_WORKERS")
	})
	t.Setenv("MERIDIAN_RADIUS", "1000")

	dir := filet.TmpDir(t, "")
	envFile := filepath.Join(dir, ".env")
	filet.File(t, envFile, "MERIDIAN_DEPOT_ADDRESS=\"м. Київ, вул. Хрещатик, 1\"\nMERIDIAN_WORKERS=3\nMERIDIAN_RADIUS=5\n")

	cfg := config.MustLoadFrom(envFile)

	assert.Equal(t, "м. Київ, вул. Хрещатик, 1", cfg.Depot.Address)
	assert.Equal(t, 3, cfg.Workers)
	assert.InDelta(t, 1000.0, cfg.Radius, 0, "environment wins over the file")
}

func TestMustLoad_Panics(t *testing.T) {
	tests := []struct {
		name  string
		env   map[string]string
		panic string
	}{
		{
			name:  "interval",
			env:   map[string]string{"MERIDIAN_INTERVAL": "error_value"},
			panic: "failed to parse interval from configuration",
		},
		{
			name:  "port",
			env:   map[string]string{"MERIDIAN_HEALTH_PORT": "error_value"},
			panic: "failed to parse port for monitoring server from configuration",
		},
		{
			name:  "workers",
			env:   map[string]string{"MERIDIAN_WORKERS": "0"},
			panic: "failed to parse workers from configuration, must be a positive integer",
		},
		{
			name:  "batch size",
			env:   map[string]string{"MERIDIAN_BATCH_SIZE": "many"},
			panic: "failed to parse batch size from configuration, must be a positive integer",
		},
		{
			name:  "radius",
			env:   map[string]string{"MERIDIAN_RADIUS": "-1"},
			panic: "failed to parse sphere radius from configuration, must be a positive number",
		},
		{
			name:  "max range",
			env:   map[string]string{"MERIDIAN_MAX_RANGE": "far"},
			panic: "failed to parse max range from configuration, must not be negative",
		},
		{
			name:  "half a depot",
			env:   map[string]string{"MERIDIAN_DEPOT_LAT": "50.45"},
			panic: "depot coordinates require both latitude and longitude",
		},
		{
			name:  "depot coordinates",
			env:   map[string]string{"MERIDIAN_DEPOT_LAT": "50.45", "MERIDIAN_DEPOT_LNG": "east"},
			panic: "failed to parse depot coordinates from configuration",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for key, value := range tt.env {
				t.Setenv(key, value)
			}

			assert.PanicsWithValue(t, tt.panic, func() {
				config.MustLoadFrom(filepath.Join(t.TempDir(), "missing.env"))
			})
		})
	}
}
