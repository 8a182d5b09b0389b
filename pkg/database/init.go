package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"github.com/alfassih/praxis_backend/config"
)

// InitializeDatabases creates the application databases if they don't exist.
// It connects to the default 'postgres' database to create the others.
// This should be called once during deployment, before migrations.
func InitializeDatabases(cfg *config.Config) error {
	if len(cfg.Server.Databases) == 0 {
		return fmt.Errorf("no database names provided")
	}

	postgresConfig := Config{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   "postgres",
		SSLMode:  cfg.Database.SSLMode,
	}

	conn, err := openSQLDB(postgresConfig)
	if err != nil {
		return fmt.Errorf("failed to connect to postgres database: %w", err)
	}
	defer conn.Close()

	for _, dbName := range cfg.Server.Databases {
		if err := createDatabaseIfNotExists(conn, dbName); err != nil {
			return fmt.Errorf("failed to create database %q: %w", dbName, err)
		}
	}

	return nil
}

func createDatabaseIfNotExists(conn *sql.DB, dbName string) error {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)`
	err := conn.QueryRowContext(context.Background(), query, dbName).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check if database exists: %w", err)
	}

	if exists {
		return nil
	}

	createQuery := fmt.Sprintf("CREATE DATABASE %s", dbName)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := conn.ExecContext(ctx, createQuery); err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}

	return nil
}
