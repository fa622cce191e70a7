package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"
)

// listMetricsHandler handles GET /metrics: the registered metrics with their
// requirement sets.
func (s *Server) listMetricsHandler(c *echo.Context) error {
	return c.JSON(http.StatusOK, s.registry.List())
}
