package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
	apperrors "property-listings/internal/common/errors"
	"property-listings/internal/storage"
)

type Adapter struct {
	db     *sql.DB
	config *Config
}

func NewAdapter(config *Config) (*Adapter, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid SQLite config: %w", err)
	}

	db, err := sql.Open("sqlite3", config.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// An in-memory database exists per connection, so the pool must not
	// open a second one
	if config.DatabasePath == ":memory:" {
		db.SetMaxOpenConns(1)
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
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		price TEXT NOT NULL,
		location TEXT NOT NULL,
		created_at DATETIME NOT NULL
	)`

	if _, err := a.db.Exec(query); err != nil {
		return fmt.Errorf("failed to create properties table: %w", err)
	}
	return nil
}

// ListProperties returns all rows newest first. The ordering is stable so
// cached snapshots compare byte-identical across reads.
func (a *Adapter) ListProperties() ([]storage.Property, error) {
	rows, err := a.db.Query(
		`SELECT id, title, description, price, location, created_at
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
		`SELECT id, title, description, price, location, created_at
		 FROM properties WHERE id = ?`, id).
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

	result, err := a.db.Exec(
		`INSERT INTO properties (title, description, price, location, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		property.Title, property.Description, property.Price, property.Location, now)
	if err != nil {
		return fmt.Errorf("failed to create property: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read new property id: %w", err)
	}

	property.ID = id
	property.CreatedAt = now
	return nil
}

// UpdateProperty changes every column except created_at, which is immutable.
func (a *Adapter) UpdateProperty(property *storage.Property) error {
	result, err := a.db.Exec(
		`UPDATE properties SET title = ?, description = ?, price = ?, location = ?
		 WHERE id = ?`,
		property.Title, property.Description, property.Price, property.Location, property.ID)
	if err != nil {
		return fmt.Errorf("failed to update property: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return apperrors.NotFoundError("property")
	}

	var createdAt time.Time
	if err := a.db.QueryRow(`SELECT created_at FROM properties WHERE id = ?`, property.ID).Scan(&createdAt); err != nil {
		return fmt.Errorf("failed to read created_at: %w", err)
	}
	property.CreatedAt = createdAt
	return nil
}

func (a *Adapter) DeleteProperty(id int64) error {
	result, err := a.db.Exec(`DELETE FROM properties WHERE id = ?`, id)
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
