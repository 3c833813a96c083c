// Package store keeps the authoritative name to hex mapping behind the
// lookup service. Stores are explicitly constructed and injected; there is
// no package-level instance.
package store

import (
	"context"
	"fmt"

	"color-chooser/internal/colors"
	"color-chooser/internal/config"
)

// Store is the read surface of the lookup service plus the startup seed.
type Store interface {
	// Seed replaces every record with the given list. Readers observe
	// either the old set or the new one, never a mix.
	Seed(ctx context.Context, records []colors.Record) error
	// FindAll returns all records in insertion order.
	FindAll(ctx context.Context) ([]colors.Record, error)
	// FindByName is an exact, case-sensitive lookup.
	FindByName(ctx context.Context, name string) (colors.Record, error)
	// Len reports the number of records.
	Len(ctx context.Context) (int, error)
}

// Open builds the store selected by cfg.StoreDriver.
func Open(cfg *config.Config) (Store, error) {
	switch cfg.StoreDriver {
	case "", config.DriverMemory:
		return NewMemoryStore(), nil
	case config.DriverFile:
		return OpenFileStore(cfg.StorePath)
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}
