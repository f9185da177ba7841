package sqlite

import (
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/armoury/internal/testutil"
)

func TestOpenCreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "armoury.db")

	db, err := Open(t.Context(), path, testutil.NopLogger())
	require.NoError(t, err)
	defer db.Close()

	assert.Equal(t, path, db.Path())
	assert.FileExists(t, path)
}

func TestOpenEnablesForeignKeys(t *testing.T) {
	db, err := Open(t.Context(), MemoryPath, testutil.NopLogger())
	require.NoError(t, err)
	defer db.Close()

	var enabled int
	require.NoError(t, db.Conn().QueryRowContext(t.Context(), "PRAGMA foreign_keys").Scan(&enabled))
	assert.Equal(t, 1, enabled)
}

func TestCloseIsIdempotent(t *testing.T) {
	db, err := Open(t.Context(), "", testutil.NopLogger())
	require.NoError(t, err)

	assert.NoError(t, db.Close())
	assert.NoError(t, db.Close())
}

func TestWithTxRollsBackOnError(t *testing.T) {
	db, err := Open(t.Context(), MemoryPath, testutil.NopLogger())
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Conn().ExecContext(t.Context(), "CREATE TABLE items (name TEXT)")
	require.NoError(t, err)

	boom := errors.New("boom")
	err = db.WithTx(t.Context(), func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(t.Context(), "INSERT INTO items (name) VALUES ('a')"); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	var count int
	require.NoError(t, db.Conn().QueryRowContext(t.Context(), "SELECT COUNT(*) FROM items").Scan(&count))
	assert.Zero(t, count)
}

func TestLikePatternEscapesWildcards(t *testing.T) {
	assert.Equal(t, "%leather%", likePattern("leather"))
	assert.Equal(t, `%50\%%`, likePattern("50%"))
	assert.Equal(t, `%two\_handed%`, likePattern("two_handed"))
	assert.Equal(t, `%a\\b%`, likePattern(`a\b`))
}
