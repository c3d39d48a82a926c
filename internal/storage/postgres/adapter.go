// Package postgres implements the storage contract on PostgreSQL using the
// pgx driver through database/sql.
package postgres

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	apperrors "property-listings/internal/common/errors"
	"property-listings/internal/storage"
)

type Adapter struct {
	db     *sql.DB
	config *Config
}

func NewAdapter(config *Config) (*Adapter, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid PostgreSQL config: %w", err)
	}

	db, err := sql.Open("pgx", config.GetConnectionString())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	adapter := &Adapter{
		db:     db,
		config: config,
	}

	if err := adapter.migrate(); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return adapter, nil
}

func (a *Adapter) Close() error {
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}

func (a *Adapter) Health() error {
	return a.db.Ping()
}

func (a *Adapter) migrate() error {
	query := `CREATE TABLE IF NOT EXISTS properties (
		id BIGSERIAL PRIMARY KEY,
		title TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		price NUMERIC(12,2) NOT NULL,
		location TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL
	)`

	if _, err := a.db.Exec(query); err != nil {
		return fmt.Errorf("failed to create properties table: %w", err)
	}
	return nil
}

func (a *Adapter) ListProperties() ([]storage.Property, error) {
	rows, err := a.db.Query(
		`SELECT id, title, description, price::text, location, created_at
		 FROM properties
		 ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list properties: %w", err)
	}
	defer rows.Close()

	properties := []storage.Property{}
	for rows.Next() {
		var p storage.Property
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.Price, &p.Location, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan property: %w", err)
		}
		properties = append(properties, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate properties: %w", err)
	}

	return properties, nil
}

func (a *Adapter) CountProperties() (int, error) {
	var count int
	if err := a.db.QueryRow(`SELECT COUNT(*) FROM properties`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count properties: %w", err)
	}
	return count, nil
}

func (a *Adapter) GetProperty(id int64) (*storage.Property, error) {
	var p storage.Property
	err := a.db.QueryRow(
		`SELECT id, title, description, price::text, location, created_at
		 FROM properties WHERE id = $1`, id).
		Scan(&p.ID, &p.Title, &p.Description, &p.Price, &p.Location, &p.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, apperrors.NotFoundError("property")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get property: %w", err)
	}
	return &p, nil
}

func (a *Adapter) CreateProperty(property *storage.Property) error {
	now := time.Now().UTC()

	err := a.db.QueryRow(
		`INSERT INTO properties (title, description, price, location, created_at)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		property.Title, property.Description, property.Price, property.Location, now).
		Scan(&property.ID)
	if err != nil {
		return fmt.Errorf("failed to create property: %w", err)
	}

	property.CreatedAt = now
	return nil
}

// UpdateProperty changes every column except created_at, which is immutable.
func (a *Adapter) UpdateProperty(property *storage.Property) error {
	err := a.db.QueryRow(
		`UPDATE properties SET title = $1, description = $2, price = $3, location = $4
		 WHERE id = $5
		 RETURNING created_at`,
		property.Title, property.Description, property.Price, property.Location, property.ID).
		Scan(&property.CreatedAt)
	if err == sql.ErrNoRows {
		return apperrors.NotFoundError("property")
	}
	if err != nil {
		return fmt.Errorf("failed to update property: %w", err)
	}
	return nil
}

func (a *Adapter) DeleteProperty(id int64) error {
	result, err := a.db.Exec(`DELETE FROM properties WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete property: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return apperrors.NotFoundError("property")
	}
	return nil
}
