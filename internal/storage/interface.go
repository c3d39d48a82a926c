// Package storage defines the persistent-store contract for property
// listings and the Property entity itself. Concrete backends live in the
// sqlite and postgres subpackages.
package storage

import (
	"time"
)

// Property is a single listing row. CreatedAt is assigned by the store at
// creation time and never changes afterwards. Price is a fixed-point decimal
// carried as a string with two decimal places so it survives JSON round trips
// without floating-point drift.
type Property struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       string    `json:"price"`
	Location    string    `json:"location"`
	CreatedAt   time.Time `json:"created_at"`
}

// Storage is the persistent-store capability the service consumes.
//
// ListProperties returns every row ordered newest first (created_at DESC,
// id DESC as tiebreak). The ordering is part of the contract: cached
// snapshots must compare byte-identical across reads.
type Storage interface {
	// Connection management
	Close() error
	Health() error

	// Properties
	ListProperties() ([]Property, error)
	CountProperties() (int, error)
	GetProperty(id int64) (*Property, error)
	CreateProperty(property *Property) error
	UpdateProperty(property *Property) error
	DeleteProperty(id int64) error
}

// StorageConfig is implemented by backend-specific configuration types
type StorageConfig interface {
	Validate() error
	GetType() string
	GetConnectionString() string
}
