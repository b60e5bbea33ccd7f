package db

import (
	"context"
	"database/sql"
	"log"
	"time"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/VelvetStudioPL/salon-scheduler/internal/config"
)

// NewAdapter opens the configured database, verifies connectivity and
// initializes the schema. An unreachable database at startup is fatal: the
// process refuses to serve traffic without storage.
func NewAdapter(cfg *config.Config) QueryAdapter {
	var (
		handle *sql.DB
		err    error
	)

	switch cfg.Dialect {
	case config.DialectPostgres:
		handle, err = sql.Open("pgx", cfg.DBUrl)
	default:
		handle, err = sql.Open("mysql", cfg.MySQLDSN)
	}
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}

	handle.SetMaxOpenConns(10)
	handle.SetMaxIdleConns(5)
	handle.SetConnMaxLifetime(30 * time.Minute)
	handle.SetConnMaxIdleTime(10 * time.Minute)

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := handle.PingContext(pingCtx); err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	var adapter QueryAdapter
	if cfg.Dialect == config.DialectPostgres {
		adapter = NewPostgresAdapter(handle)
	} else {
		adapter = NewMySQLAdapter(handle)
	}

	if err := InitSchema(context.Background(), adapter); err != nil {
		log.Fatalf("failed to initialize schema: %v", err)
	}

	log.Printf("connected to %s database", adapter.Dialect())
	return adapter
}
