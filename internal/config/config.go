package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Port      string
	Mongo     MongoConfig
	AccessKey string
	RedisURL  string
	CacheTTL  time.Duration
}

type MongoConfig struct {
	URI      string
	Database string
}

var errMissingRequiredEnv = errors.New("missing required environment variables")

// Load reads configuration from the environment. MONGODB_URI and
// ACCESS_KEY are required; everything else has a default.
func Load() (*Config, error) {
	var missing []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}

	cfg := &Config{
		Port: getEnv("PORT", "5000"),
		Mongo: MongoConfig{
			URI:      req("MONGODB_URI"),
			Database: getEnv("MONGODB_DATABASE", "solvingOwl"),
		},
		AccessKey: req("ACCESS_KEY"),
		RedisURL:  getEnv("REDIS_URL", ""),
		CacheTTL:  cacheTTL(),
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}
	return cfg, nil
}

func cacheTTL() time.Duration {
	seconds, err := strconv.Atoi(getEnv("CACHE_TTL_SECONDS", "60"))
	if err != nil || seconds <= 0 {
		seconds = 60
	}
	return time.Duration(seconds) * time.Second
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return strings.TrimSpace(value)
}
