// Package sqlitetest provides seeded in-memory catalogue stores for tests.
package sqlitetest

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mcoot/armoury/internal/catalogue"
	"github.com/mcoot/armoury/internal/storage"
	"github.com/mcoot/armoury/internal/storage/sqlite"
	"github.com/mcoot/armoury/internal/testutil"
)

// Store is an initialised in-memory database and its repositories
type Store struct {
	DB      *sqlite.DB
	Armour  *sqlite.ArmourRepository
	Weapons *sqlite.WeaponRepository
}

// NewStore opens an in-memory database seeded with the standard catalogue.
// The database is closed when the test finishes.
func NewStore(t testing.TB) *Store {
	t.Helper()

	db, err := sqlite.Open(t.Context(), sqlite.MemoryPath, testutil.NopLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	store := &Store{
		DB:      db,
		Armour:  sqlite.NewArmourRepository(db, catalogue.Armours),
		Weapons: sqlite.NewWeaponRepository(db, catalogue.Weapons, catalogue.WeaponProperties),
	}
	require.NoError(t, storage.Initialize(t.Context(), store.Armour, store.Weapons))

	return store
}
