package api

import (
	"net/http"
	"strconv"

	echo "github.com/labstack/echo/v5"

	"github.com/etalab-ia/evalap/pkg/services"
)

// createDatasetHandler handles POST /dataset.
func (s *Server) createDatasetHandler(c *echo.Context) error {
	var req services.CreateDatasetRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	ds, err := s.datasets.Create(c.Request().Context(), req)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, toDatasetResponse(ds, false))
}

// listDatasetsHandler handles GET /datasets.
func (s *Server) listDatasetsHandler(c *echo.Context) error {
	datasets, err := s.datasets.List(c.Request().Context())
	if err != nil {
		return mapServiceError(err)
	}

	resp := make([]DatasetResponse, 0, len(datasets))
	for _, ds := range datasets {
		resp = append(resp, toDatasetResponse(ds, false))
	}
	return c.JSON(http.StatusOK, resp)
}

// getDatasetHandler handles GET /dataset/:id?with_df=bool.
func (s *Server) getDatasetHandler(c *echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	withDf, _ := strconv.ParseBool(c.QueryParam("with_df"))

	ds, err := s.datasets.Get(c.Request().Context(), id)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, toDatasetResponse(ds, withDf))
}

// patchDatasetHandler handles PATCH /dataset/:id (rename / update readme).
func (s *Server) patchDatasetHandler(c *echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req services.PatchDatasetRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	ds, err := s.datasets.Patch(c.Request().Context(), id, req)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, toDatasetResponse(ds, false))
}

// deleteDatasetHandler handles DELETE /dataset/:id. Removal is rejected
// while experiments still reference the dataset.
func (s *Server) deleteDatasetHandler(c *echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := s.datasets.Remove(c.Request().Context(), id); err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, "ok")
}

// pathID parses the :id path parameter.
func pathID(c *echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}
