package factory

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// NewTestApp creates an App backed by a seeded in-memory database.
// The App is closed when the test finishes.
func NewTestApp(t testing.TB) *App {
	t.Helper()

	app, err := New(t.Context(), Config{})
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })

	return app
}
