package handler

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/deppfellow/service-generator/internal/server"
	"github.com/labstack/echo/v4"
)

// StaticDir holds the docs UI and the OpenAPI document.
const StaticDir = "static"

// OpenAPIHandler serves the OpenAPI UI for testing APIs.
//
// The UI is a static HTML page that loads static/openapi.json.
type OpenAPIHandler struct {
	Handler
	staticDir string
}

// NewOpenAPIHandler constructs an OpenAPIHandler reading from StaticDir.
func NewOpenAPIHandler(s *server.Server) *OpenAPIHandler {
	return &OpenAPIHandler{
		Handler:   NewHandler(s),
		staticDir: StaticDir,
	}
}

// ServeOpenAPIUI reads openapi.html and serves it as an HTML response.
//
// Cache-Control is set to "no-cache" so clients do not reuse old docs UI.
func (h *OpenAPIHandler) ServeOpenAPIUI(c echo.Context) error {
	templateBytes, err := os.ReadFile(filepath.Join(h.staticDir, "openapi.html"))

	c.Response().Header().Set("Cache-Control", "no-cache")

	if err != nil {
		return fmt.Errorf("failed to read OpenAPI UI template: %w", err)
	}

	if err := c.HTML(http.StatusOK, string(templateBytes)); err != nil {
		return fmt.Errorf("failed to write HTML response: %w", err)
	}

	return nil
}
