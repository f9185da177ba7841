package storage

import (
	"context"
	"fmt"

	"github.com/mcoot/armoury/internal/model"
)

// ID is the surrogate key the store generates for each row
type ID int64

// Entity pairs a stored value with its identifier
type Entity[T any] struct {
	ID   ID
	Data T
}

// Repository defines the CRUD contract every catalogue repository satisfies.
//
// Read returns (nil, nil) when no row has the given id.
// Update and Delete always report failure: the catalogue is read-only.
type Repository[T any] interface {
	Create(ctx context.Context, entity T) (ID, error)
	Read(ctx context.Context, id ID) (*Entity[T], error)
	ReadAll(ctx context.Context) ([]Entity[T], error)
	Update(ctx context.Context, entity Entity[T]) model.OperationResult
	Delete(ctx context.Context, id ID) model.OperationResult
}

// CatalogueStore is implemented by repositories that own tables and fixture rows
type CatalogueStore interface {
	// EnsureSchema creates the store's tables if they do not exist
	EnsureSchema(ctx context.Context) error
	// Seed inserts every fixture row whose natural key is not already stored
	Seed(ctx context.Context) error
}

// ArmourRepository is the armour catalogue
type ArmourRepository interface {
	Repository[model.Armour]
	ReadByName(ctx context.Context, name string) ([]Entity[model.Armour], error)
	ReadDescriptionByName(ctx context.Context, name string) (string, bool, error)
}

// WeaponRepository is the weapon catalogue and its property reference data
type WeaponRepository interface {
	Repository[model.Weapon]
	ReadByName(ctx context.Context, name string) ([]Entity[model.Weapon], error)
	ReadWeaponProperty(ctx context.Context, id ID) (*Entity[model.WeaponProperty], error)
	ReadAllWeaponProperties(ctx context.Context) ([]Entity[model.WeaponProperty], error)
	ReadWeaponPropertyByName(ctx context.Context, name string) ([]Entity[model.WeaponProperty], error)
}

// Initialize prepares each store in order: schema first, then seed rows.
// It is safe to run against a store that is already populated.
func Initialize(ctx context.Context, stores ...CatalogueStore) error {
	for _, s := range stores {
		if err := s.EnsureSchema(ctx); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
		if err := s.Seed(ctx); err != nil {
			return fmt.Errorf("seed: %w", err)
		}
	}
	return nil
}

// Values strips identifiers from a slice of entities
func Values[T any](entities []Entity[T]) []T {
	out := make([]T, 0, len(entities))
	for _, e := range entities {
		out = append(out, e.Data)
	}
	return out
}
