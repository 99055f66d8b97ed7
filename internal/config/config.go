package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Defaults for the session dataset. Seed 17 and 6000 rows reproduce the
// reference 2024 campaign portfolio on every start.
const (
	DefaultSeed = 17
	DefaultRows = 6000
	DefaultPort = "3000"
)

// Config holds application configuration.
type Config struct {
	Port           string
	Seed           int64
	Rows           int
	ScenarioPath   string
	TrustedOrigins []string
}

// Load loads configuration from multiple sources with priority:
// 1. Command flags (applied by the caller via LoadWithOverrides)
// 2. Config file (funnelboard.toml in cwd or XDG config dir)
// 3. Environment variables
func Load() (*Config, error) {
	v := newBaseViper()
	_ = v.ReadInConfig()
	return buildConfig(v, Overrides{}), nil
}

// Overrides are flag-level settings that win over every other source.
// Zero values mean "not set".
type Overrides struct {
	Port         string
	Seed         int64
	SeedSet      bool
	Rows         int
	ScenarioPath string
}

// LoadWithOverrides loads config and applies flag overrides.
func LoadWithOverrides(o Overrides) (*Config, error) {
	v := newBaseViper()
	_ = v.ReadInConfig()
	return buildConfig(v, o), nil
}

func newBaseViper() *viper.Viper {
	v := viper.New()
	v.SetConfigName("funnelboard")
	v.SetConfigType("toml")
	v.AddConfigPath(".")

	// XDG Base Directory, resolved manually so tests can repoint it.
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		if home, err := os.UserHomeDir(); err == nil {
			configHome = filepath.Join(home, ".config")
		}
	}
	if configHome != "" {
		v.AddConfigPath(filepath.Join(configHome, "funnelboard"))
	}

	return v
}

func buildConfig(v *viper.Viper, o Overrides) *Config {
	cfg := &Config{
		Port:           DefaultPort,
		Seed:           DefaultSeed,
		Rows:           DefaultRows,
		TrustedOrigins: []string{"localhost"},
	}

	// Config file values
	if v.IsSet("port") {
		cfg.Port = v.GetString("port")
	}
	if v.IsSet("seed") {
		cfg.Seed = v.GetInt64("seed")
	}
	if v.IsSet("rows") {
		cfg.Rows = v.GetInt("rows")
	}
	if v.IsSet("scenario") {
		cfg.ScenarioPath = v.GetString("scenario")
	}
	if v.IsSet("trusted_origins") {
		cfg.TrustedOrigins = parseTrustedOrigins(v.GetString("trusted_origins"))
	}

	// Environment fallback (only if not configured)
	if !v.IsSet("port") {
		if envPort := os.Getenv("PORT"); envPort != "" {
			cfg.Port = envPort
		}
	}
	if !v.IsSet("seed") {
		if envSeed := os.Getenv("FUNNELBOARD_SEED"); envSeed != "" {
			if seed, err := strconv.ParseInt(envSeed, 10, 64); err == nil {
				cfg.Seed = seed
			}
		}
	}
	if !v.IsSet("rows") {
		if envRows := os.Getenv("FUNNELBOARD_ROWS"); envRows != "" {
			if rows, err := strconv.Atoi(envRows); err == nil {
				cfg.Rows = rows
			}
		}
	}
	if cfg.ScenarioPath == "" {
		cfg.ScenarioPath = os.Getenv("FUNNELBOARD_SCENARIO")
	}
	if !v.IsSet("trusted_origins") {
		if envOrigins := os.Getenv("TRUSTED_ORIGINS"); envOrigins != "" {
			cfg.TrustedOrigins = parseTrustedOrigins(envOrigins)
		}
	}

	// Flag overrides win
	if o.Port != "" {
		cfg.Port = o.Port
	}
	if o.SeedSet {
		cfg.Seed = o.Seed
	}
	if o.Rows > 0 {
		cfg.Rows = o.Rows
	}
	if o.ScenarioPath != "" {
		cfg.ScenarioPath = o.ScenarioPath
	}

	return cfg
}

// parseTrustedOrigins parses a comma-separated string into a slice of trimmed, lowercased origins
func parseTrustedOrigins(originsStr string) []string {
	if originsStr == "" {
		return []string{}
	}

	parts := strings.Split(originsStr, ",")
	origins := make([]string, 0, len(parts))

	for _, part := range parts {
		origin, err := SanitizeTrustedDomain(part)
		if err != nil {
			continue
		}
		origins = append(origins, origin)
	}

	return origins
}
