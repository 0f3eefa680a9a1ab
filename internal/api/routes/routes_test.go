package routes_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"bill-reminder-backend/internal/api/routes"
	"bill-reminder-backend/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// staticDir builds a dashboard-shaped directory: index.html at the root and
// scripts under js/
func staticDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>dashboard</html>"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "js"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "js", "app.js"), []byte("console.log('app');"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "styles.css"), []byte("body{}"), 0o644))
	return dir
}

func TestStaticServing(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{StaticDir: staticDir(t)}
	router := routes.SetupRoutes(nil, cfg)

	tests := []struct {
		name string
		path string
		body string
	}{
		{"index at root", "/", "<html>dashboard</html>"},
		{"index by name", "/index.html", "<html>dashboard</html>"},
		{"script in subdirectory", "/js/app.js", "console.log('app');"},
		{"top-level file", "/styles.css", "body{}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.body, w.Body.String())
		})
	}
}

func TestStaticServingMissingDir(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{StaticDir: "does-not-exist"}
	router := routes.SetupRoutes(nil, cfg)

	req := httptest.NewRequest(http.MethodGet, "/js/app.js", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Endpoint not found")
}
