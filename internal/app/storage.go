package app

import (
	"fmt"

	"property-listings/internal/common/logging"
	"property-listings/internal/storage"
	"property-listings/internal/storage/postgres"
	"property-listings/internal/storage/sqlite"
)

// initializeStorage opens the relational store named by DATABASE_TYPE and
// wraps it so that successful writes publish invalidation events.
func (app *App) initializeStorage() error {
	var store storage.Storage

	switch app.Config.DatabaseType {
	case "postgres", "postgresql":
		app.Logger.Info("Database: PostgreSQL",
			logging.Field{Key: "host", Value: app.Config.PostgresHost},
			logging.Field{Key: "port", Value: app.Config.PostgresPort},
			logging.Field{Key: "database", Value: app.Config.PostgresDB},
		)
		adapter, err := postgres.NewAdapter(&postgres.Config{
			Host:     app.Config.PostgresHost,
			Port:     app.Config.PostgresPort,
			Username: app.Config.PostgresUser,
			Password: app.Config.PostgresPassword,
			Database: app.Config.PostgresDB,
			SSLMode:  app.Config.PostgresSSLMode,
		})
		if err != nil {
			return fmt.Errorf("failed to initialize postgres storage: %w", err)
		}
		store = adapter
	case "sqlite":
		dbPath := app.Config.DatabasePath
		if dbPath == "" {
			dbPath = "./property_listings.db"
		}
		app.Logger.Info("Database: SQLite", logging.Field{Key: "path", Value: dbPath})
		adapter, err := sqlite.NewAdapter(&sqlite.Config{DatabasePath: dbPath})
		if err != nil {
			return fmt.Errorf("failed to initialize sqlite storage: %w", err)
		}
		store = adapter
	default:
		return fmt.Errorf("unsupported database type: %s", app.Config.DatabaseType)
	}

	app.Storage = storage.WithEvents(store, app.Bus)
	return nil
}
