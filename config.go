package localstore

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
)

// Config selects a backend medium and the namespace setup from the
// environment. All variables are optional; the zero configuration is an
// in-memory medium with the default namespace and no cache.
type Config struct {
	Backend    string // "memory", "sqlite" or "redis"
	Name       string
	UseCache   bool
	SQLitePath string
	Redis      RedisConfig
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// LoadConfig reads configuration from the environment, honoring a .env file
// in the working directory if one exists.
//
// Recognized variables:
//
//	LOCALSTORE_BACKEND        memory | sqlite | redis (default memory)
//	LOCALSTORE_NAME           namespace name (default "default")
//	LOCALSTORE_CACHE          enable the in-memory mirror (default false)
//	LOCALSTORE_SQLITE_PATH    sqlite file path (default "localstore.db")
//	LOCALSTORE_REDIS_ADDR     host:port (default "localhost:6379")
//	LOCALSTORE_REDIS_PASSWORD
//	LOCALSTORE_REDIS_DB       numeric database (default 0)
func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	return &Config{
		Backend:    getEnv("LOCALSTORE_BACKEND", "memory"),
		Name:       getEnv("LOCALSTORE_NAME", DefaultName),
		UseCache:   getBoolEnv("LOCALSTORE_CACHE", false),
		SQLitePath: getEnv("LOCALSTORE_SQLITE_PATH", "localstore.db"),
		Redis: RedisConfig{
			Addr:     getEnv("LOCALSTORE_REDIS_ADDR", "localhost:6379"),
			Password: getEnv("LOCALSTORE_REDIS_PASSWORD", ""),
			DB:       getIntEnv("LOCALSTORE_REDIS_DB", 0),
		},
	}, nil
}

// Setup derives the Store setup record from the configuration.
func (c *Config) Setup() Setup {
	return Setup{Name: c.Name, UseCache: c.UseCache}
}

// OpenMedium creates the Medium named by cfg.Backend.
func OpenMedium(cfg *Config) (Medium, error) {
	switch cfg.Backend {
	case "memory", "":
		return NewMemory(), nil
	case "sqlite":
		return NewSQLite(cfg.SQLitePath)
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		return NewRedis(client), nil
	default:
		return nil, fmt.Errorf("localstore: unknown backend %q (supported: memory, sqlite, redis)", cfg.Backend)
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
