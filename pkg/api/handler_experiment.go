package api

import (
	"net/http"
	"strconv"

	echo "github.com/labstack/echo/v5"

	"github.com/etalab-ia/evalap/pkg/services"
)

// createExperimentHandler handles POST /experiment: create, then dispatch.
// If a model is given it generates the output column; otherwise the
// dataset's own output column feeds the metrics directly.
func (s *Server) createExperimentHandler(c *echo.Context) error {
	var req services.CreateExperimentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	exp, err := s.experiments.Create(c.Request().Context(), req)
	if err != nil {
		return mapServiceError(err)
	}

	if err := s.dispatcher.DispatchExperiment(c.Request().Context(), exp.ID); err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, toExperimentResponse(exp))
}

// getExperimentHandler handles
// GET /experiment/:id?with_results&with_answers&with_dataset.
func (s *Server) getExperimentHandler(c *echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	withResults, _ := strconv.ParseBool(c.QueryParam("with_results"))
	withAnswers, _ := strconv.ParseBool(c.QueryParam("with_answers"))
	withDataset, _ := strconv.ParseBool(c.QueryParam("with_dataset"))

	exp, err := s.experiments.Get(c.Request().Context(), id, withResults, withAnswers, withDataset)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, toExperimentResponse(exp))
}

// listExperimentsHandler handles GET /experiments?set_id&limit&orphan.
func (s *Server) listExperimentsHandler(c *echo.Context) error {
	filters := services.ExperimentFilters{}
	if v := c.QueryParam("set_id"); v != "" {
		setID, err := strconv.Atoi(v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid set_id")
		}
		filters.SetID = &setID
	}
	if v := c.QueryParam("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid limit")
		}
		filters.Limit = limit
	}
	filters.Orphan, _ = strconv.ParseBool(c.QueryParam("orphan"))

	experiments, err := s.experiments.List(c.Request().Context(), filters)
	if err != nil {
		return mapServiceError(err)
	}

	resp := make([]ExperimentResponse, 0, len(experiments))
	for _, exp := range experiments {
		resp = append(resp, toExperimentResponse(exp))
	}
	return c.JSON(http.StatusOK, resp)
}

// patchExperimentHandler handles PATCH /experiment/:id: added metrics are
// created (or reset) as pending results; rerun flags redispatch a phase.
func (s *Server) patchExperimentHandler(c *echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req services.PatchExperimentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	ctx := c.Request().Context()
	exp, touched, err := s.experiments.ApplyPatch(ctx, id, req)
	if err != nil {
		return mapServiceError(err)
	}

	needsOutput, err := s.dispatcher.NeedsOutput(ctx, exp.ID)
	if err != nil {
		return mapServiceError(err)
	}

	switch {
	case req.RerunAnswers && needsOutput:
		err = s.dispatcher.DispatchAnswers(ctx, exp.ID, false)
	case req.RerunMetrics || len(touched) > 0:
		err = s.dispatcher.DispatchObservations(ctx, exp.ID, false)
	}
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, toExperimentResponse(exp))
}

// deleteExperimentHandler handles DELETE /experiment/:id (cascade).
func (s *Server) deleteExperimentHandler(c *echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := s.experiments.Remove(c.Request().Context(), id); err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, "ok")
}
