package http

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

// mountStatic serves a built browser renderer from dir with an SPA fallback
// to index.html. It does nothing when dir does not exist.
func mountStatic(router *gin.Engine, dir string) {
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return
	}
	index := filepath.Join(dir, "index.html")

	router.Static("/assets", filepath.Join(dir, "assets"))
	router.GET("/", func(c *gin.Context) {
		c.File(index)
	})

	router.NoRoute(func(c *gin.Context) {
		urlPath := c.Request.URL.Path
		if strings.HasPrefix(urlPath, "/api/") || strings.HasPrefix(urlPath, "/ws/") {
			c.JSON(http.StatusNotFound, gin.H{"error": "not_found"})
			return
		}

		// Serve actual static files if they exist
		path := filepath.Join(dir, filepath.Clean("/"+urlPath))
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			c.File(path)
			return
		}

		// Missing assets are a 404, not the app shell
		if strings.HasPrefix(urlPath, "/assets/") || strings.HasSuffix(urlPath, ".css") || strings.HasSuffix(urlPath, ".js") {
			c.Status(http.StatusNotFound)
			return
		}

		c.File(index)
	})
}
