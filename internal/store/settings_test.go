package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopapi/internal/models"
)

func settingsCount(t *testing.T, s *SettingsStore) int64 {
	t.Helper()
	var n int64
	require.NoError(t, s.db.Model(&models.Settings{}).Count(&n).Error)
	return n
}

func TestSettingsStoreGet(t *testing.T) {
	t.Run("DefaultsWithoutRow", func(t *testing.T) {
		s := NewSettingsStore(newTestDB(t))

		st, err := s.Get(t.Context())
		require.NoError(t, err)
		assert.Equal(t, models.DefaultSettings(), st)

		// reads never persist the defaults
		assert.Equal(t, int64(0), settingsCount(t, s))
	})

	t.Run("StoredRow", func(t *testing.T) {
		s := NewSettingsStore(newTestDB(t))
		require.NoError(t, s.Update(t.Context(), models.Settings{ShopName: "Cloud Corner"}))

		st, err := s.Get(t.Context())
		require.NoError(t, err)
		assert.Equal(t, "Cloud Corner", st.ShopName)
	})
}

func TestSettingsStoreUpdate(t *testing.T) {
	s := NewSettingsStore(newTestDB(t))

	require.NoError(t, s.Update(t.Context(), models.Settings{ShopName: "First", Phone: "123"}))
	assert.Equal(t, int64(1), settingsCount(t, s))

	// a second update mutates the singleton, it never adds a row
	require.NoError(t, s.Update(t.Context(), models.Settings{ShopName: "Second", Email: "a@b.c"}))
	assert.Equal(t, int64(1), settingsCount(t, s))

	st, err := s.Get(t.Context())
	require.NoError(t, err)
	assert.Equal(t, uint(1), st.ID)
	assert.Equal(t, "Second", st.ShopName)
	assert.Equal(t, "a@b.c", st.Email)
}
