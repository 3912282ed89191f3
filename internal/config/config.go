package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	MongoURI  string
	MongoDB   string
	JWTSecret string
	HTTPPort  string

	// Optional catalog cache. Empty RedisAddr leaves caching disabled.
	RedisAddr string
	RedisPass string
}

// Load reads the process environment (plus an optional .env file) into an
// explicit Config and validates it once, before anything else starts.
// ACCESS_TOKEN has no default on purpose: every token the service issues or
// verifies depends on it.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		MongoURI:  os.Getenv("MONGO_URI"),
		MongoDB:   getEnv("MONGO_DB", "collegeSelectorDb"),
		JWTSecret: os.Getenv("ACCESS_TOKEN"),
		HTTPPort:  getEnv("PORT", "5000"),
		RedisAddr: os.Getenv("REDIS_ADDR"),
		RedisPass: os.Getenv("REDIS_PASSWORD"),
	}

	// Without a full MONGO_URI the address is assembled from the
	// DB_USER/DB_PASS credential pair, the way the hosted deployment
	// configures it.
	if cfg.MongoURI == "" {
		user := os.Getenv("DB_USER")
		pass := os.Getenv("DB_PASS")
		host := getEnv("DB_HOST", "localhost:27017")
		if user != "" {
			cfg.MongoURI = fmt.Sprintf("mongodb://%s:%s@%s/?retryWrites=true&w=majority", user, pass, host)
		} else {
			cfg.MongoURI = "mongodb://" + host
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("ACCESS_TOKEN is not set")
	}
	if _, err := strconv.Atoi(c.HTTPPort); err != nil {
		return fmt.Errorf("PORT %q is not a port number", c.HTTPPort)
	}
	return nil
}

func getEnv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}
