package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/louisbranch/streetview-mcp/internal/streetview"
)

func TestGalleryStoreWritePage(t *testing.T) {
	t.Run("writes a page and creates the directory", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "galleries")
		store := NewGalleryStore(dir)

		path, err := store.WritePage("trip.html", "<html>trip</html>")
		require.NoError(t, err)
		assert.Equal(t, store.Path("trip.html"), path)

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "<html>trip</html>", string(content))
	})

	t.Run("second write with the same name conflicts", func(t *testing.T) {
		store := NewGalleryStore(t.TempDir())
		_, err := store.WritePage("trip.html", "<html>first</html>")
		require.NoError(t, err)

		_, err = store.WritePage("trip.html", "<html>second</html>")
		var cErr *streetview.ConflictError
		require.ErrorAs(t, err, &cErr)

		content, err := os.ReadFile(store.Path("trip.html"))
		require.NoError(t, err)
		assert.Equal(t, "<html>first</html>", string(content), "only the first write may land")
	})
}
