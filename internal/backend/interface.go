// Package backend selects and wires the concrete data source behind the
// forecast ports.
package backend

import (
	"context"

	"forecast/internal/forecast"
)

// Backend is the unified data source: everything the engine and the report
// service consume.
type Backend interface {
	forecast.AggregateProvider
	forecast.CostCodeEnumerator
}

// CleanupFunc represents a cleanup function for resources
type CleanupFunc func() error

// Result contains the backend instance and optional cleanup function
type Result struct {
	Backend Backend
	Cleanup CleanupFunc
}

// Factory creates backends based on configuration
type Factory interface {
	CreateBackend(ctx context.Context, config Config) (*Result, error)
}

// Config holds configuration for backend creation
type Config struct {
	Type BackendType

	// SQLite specific
	SQLiteDBPath string
}

// BackendType represents the type of backend
type BackendType string

const (
	SQLiteBackend BackendType = "sqlite"
	MemoryBackend BackendType = "memory"
)

// String implements fmt.Stringer
func (bt BackendType) String() string {
	return string(bt)
}

// IsValid returns true if the backend type is valid
func (bt BackendType) IsValid() bool {
	switch bt {
	case SQLiteBackend, MemoryBackend:
		return true
	default:
		return false
	}
}
