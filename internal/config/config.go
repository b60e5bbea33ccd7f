package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

const (
	DialectMySQL    = "mysql"
	DialectPostgres = "postgres"
)

type Config struct {
	Dialect    string // mysql (local) or postgres (hosted)
	MySQLDSN   string
	DBUrl      string // postgres connection string
	JWTSecret  string
	ServerPort string
	RedisAddr  string // empty disables the availability cache
	RedisPass  string
	UploadDir  string
}

func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		Dialect:    getEnv("DB_DIALECT", DialectMySQL),
		DBUrl:      os.Getenv("DATABASE_URL"),
		JWTSecret:  getEnv("JWT_SECRET", "changeme"),
		ServerPort: getEnv("SERVER_PORT", "8080"),
		RedisAddr:  os.Getenv("REDIS_ADDR"),
		RedisPass:  os.Getenv("REDIS_PASSWORD"),
		UploadDir:  getEnv("UPLOAD_DIR", "uploads"),
	}

	// Render-style deployments only set DATABASE_URL.
	if cfg.DBUrl != "" && os.Getenv("DB_DIALECT") == "" {
		cfg.Dialect = DialectPostgres
	}

	switch cfg.Dialect {
	case DialectMySQL:
		cfg.MySQLDSN = fmt.Sprintf(
			"%s:%s@tcp(%s:%s)/%s?parseTime=true&multiStatements=true",
			getEnv("DB_USER", "root"),
			os.Getenv("DB_PASSWORD"),
			getEnv("DB_HOST", "localhost"),
			getEnv("DB_PORT", "3306"),
			getEnv("DB_NAME", "beauty_salon"),
		)
	case DialectPostgres:
		if cfg.DBUrl == "" {
			log.Fatalf("DATABASE_URL is required when DB_DIALECT=postgres")
		}
	default:
		log.Fatalf("unknown DB_DIALECT %q (want mysql or postgres)", cfg.Dialect)
	}

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}
