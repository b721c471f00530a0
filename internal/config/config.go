package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"golang.org/x/exp/slices"
)

// Persistence backends.
const (
	PersistenceMemory = "memory"
	PersistenceFile   = "file"
	PersistenceSQLite = "sqlite"
)

var persistenceBackends = []string{PersistenceMemory, PersistenceFile, PersistenceSQLite}

type Config struct {
	// HTTP Server
	Port             string
	APIURL           string
	CORSAllowOrigins []string
	EnablePprof      bool

	// Logging
	LogFormat string

	// Persistence
	Persistence  string
	DataFile     string
	DatabaseFile string
}

// Load reads the configuration from the environment. Variables from a
// .env file in the working directory are loaded first, but never
// override variables that are already set.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:             getEnv("PORT", "8080"),
		APIURL:           getEnv("API_URL", "http://localhost:8080/api"),
		CORSAllowOrigins: strings.Fields(os.Getenv("CORS_ALLOW_ORIGINS")),
		EnablePprof:      getEnvBool("ENABLE_PPROF", false),

		LogFormat: os.Getenv("LOG_FORMAT"),

		Persistence:  getEnv("PERSISTENCE", PersistenceMemory),
		DataFile:     getEnv("DATA_FILE", "data/savings_goals.json"),
		DatabaseFile: getEnv("DATABASE_FILE", "data/gorm.db"),
	}
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		errors = append(errors, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if _, err := c.URL(); err != nil {
		errors = append(errors, err.Error())
	}

	if c.LogFormat != "" && c.LogFormat != "human" && c.LogFormat != "json" {
		errors = append(errors, fmt.Sprintf("invalid log format '%s': must be 'human' or 'json'", c.LogFormat))
	}

	if !slices.Contains(persistenceBackends, c.Persistence) {
		errors = append(errors, fmt.Sprintf("invalid persistence backend '%s': must be one of %v", c.Persistence, persistenceBackends))
	}

	if c.Persistence == PersistenceFile && c.DataFile == "" {
		errors = append(errors, "data file path cannot be empty when using file persistence")
	}

	if c.Persistence == PersistenceSQLite && c.DatabaseFile == "" {
		errors = append(errors, "database file path cannot be empty when using sqlite persistence")
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

// URL returns the parsed external base URL of the API.
func (c *Config) URL() (*url.URL, error) {
	u, err := url.Parse(c.APIURL)
	if err != nil {
		return nil, fmt.Errorf("invalid API URL '%s': %w", c.APIURL, err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid API URL '%s': scheme must be 'http' or 'https'", c.APIURL)
	}

	// Links are built by appending paths
	u.Path = strings.TrimSuffix(u.Path, "/")

	return u, nil
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
