package static

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedCatalog(t *testing.T) {
	src, err := Embedded()
	require.NoError(t, err)

	products, err := src.List(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 12)

	assert.Equal(t, int64(1), products[0].ID)
	assert.Equal(t, "Lukather", products[0].Name)
	assert.Equal(t, int64(299), products[0].Price)
}

func TestListReturnsCopy(t *testing.T) {
	src, err := Embedded()
	require.NoError(t, err)

	first, err := src.List(context.Background())
	require.NoError(t, err)
	first[0].Name = "changed"

	second, err := src.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Lukather", second[0].Name)
}

func TestParse(t *testing.T) {
	t.Run("duplicate id -> error", func(t *testing.T) {
		_, err := Parse([]byte("- {id: 1, name: a, price: 1}\n- {id: 1, name: b, price: 2}\n"))
		assert.ErrorContains(t, err, "duplicate id 1")
	})

	t.Run("zero id -> error", func(t *testing.T) {
		_, err := Parse([]byte("- {id: 0, name: a, price: 1}\n"))
		assert.ErrorContains(t, err, "id must be positive")
	})

	t.Run("negative price -> error", func(t *testing.T) {
		_, err := Parse([]byte("- {id: 3, name: a, price: -1}\n"))
		assert.ErrorContains(t, err, "price cannot be negative")
	})

	t.Run("not a list -> error", func(t *testing.T) {
		_, err := Parse([]byte("name: solo\n"))
		assert.Error(t, err)
	})
}

func TestOpen(t *testing.T) {
	t.Run("empty path -> embedded", func(t *testing.T) {
		src, err := Open("  ")
		require.NoError(t, err)
		products, err := src.List(context.Background())
		require.NoError(t, err)
		assert.Len(t, products, 12)
	})

	t.Run("file on disk", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "catalog.yaml")
		require.NoError(t, os.WriteFile(path, []byte("- {id: 7, name: Tele, price: 100}\n"), 0o600))

		src, err := Open(path)
		require.NoError(t, err)
		products, err := src.List(context.Background())
		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, "Tele", products[0].Name)
	})

	t.Run("missing file -> error", func(t *testing.T) {
		_, err := Open(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})
}
