package api

import (
	"net/http"
	"strconv"

	echo "github.com/labstack/echo/v5"
)

// leaderboardHandler handles GET /leaderboard?metric_name&dataset_name&limit.
func (s *Server) leaderboardHandler(c *echo.Context) error {
	metricName := c.QueryParam("metric_name")
	datasetName := c.QueryParam("dataset_name")

	limit := 0
	if v := c.QueryParam("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid limit")
		}
		limit = n
	}

	board, err := s.leaderboard.Get(c.Request().Context(), metricName, datasetName, limit)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, board)
}
