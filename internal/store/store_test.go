package store

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"shopapi/internal/models"
	"shopapi/internal/upload"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Product{},
		&models.Settings{},
		&models.ContactMessage{},
	))
	return db
}

func newProductStore(t *testing.T) (*ProductStore, string) {
	t.Helper()
	uploadDir := t.TempDir()
	assets := upload.NewManager(uploadDir, zap.NewNop())
	return NewProductStore(newTestDB(t), assets), uploadDir
}

// writeImage drops a file into the upload dir and returns the storage
// path the way the manager would produce it.
func writeImage(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("fake image bytes"), 0o644))
	return filepath.ToSlash(path)
}

func fileExists(path string) bool {
	_, err := os.Stat(filepath.FromSlash(path))
	return err == nil
}

func seedProducts(t *testing.T, s *ProductStore, dir string, n int) {
	t.Helper()
	for i := 1; i <= n; i++ {
		img := writeImage(t, dir, fmt.Sprintf("seed-%d.png", i))
		_, err := s.Create(t.Context(), CreateProduct{
			Name:        fmt.Sprintf("Product %02d", i),
			Description: fmt.Sprintf("description %d", i),
			Price:       float64(i) * 1.5,
			Stock:       i,
			Image:       img,
		})
		require.NoError(t, err)
	}
}
