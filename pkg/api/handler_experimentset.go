package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/etalab-ia/evalap/pkg/services"
)

// createExperimentSetHandler handles POST /experiment_set: create the set
// (direct list or grid), then dispatch every member.
func (s *Server) createExperimentSetHandler(c *echo.Context) error {
	var req services.CreateExperimentSetRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	ctx := c.Request().Context()
	set, err := s.sets.Create(ctx, req)
	if err != nil {
		return mapServiceError(err)
	}

	for _, exp := range set.Edges.Experiments {
		if err := s.dispatcher.DispatchExperiment(ctx, exp.ID); err != nil {
			return mapServiceError(err)
		}
	}
	return c.JSON(http.StatusCreated, toExperimentSetResponse(set))
}

// listExperimentSetsHandler handles GET /experiment_sets.
func (s *Server) listExperimentSetsHandler(c *echo.Context) error {
	sets, err := s.sets.List(c.Request().Context())
	if err != nil {
		return mapServiceError(err)
	}

	resp := make([]ExperimentSetResponse, 0, len(sets))
	for _, set := range sets {
		resp = append(resp, toExperimentSetResponse(set))
	}
	return c.JSON(http.StatusOK, resp)
}

// getExperimentSetHandler handles GET /experiment_set/:id.
func (s *Server) getExperimentSetHandler(c *echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	set, err := s.sets.Get(c.Request().Context(), id)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, toExperimentSetResponse(set))
}

// patchExperimentSetHandler handles PATCH /experiment_set/:id: appended
// experiments are renumbered past the highest existing suffix, then
// dispatched.
func (s *Server) patchExperimentSetHandler(c *echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req services.PatchExperimentSetRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	ctx := c.Request().Context()
	created, err := s.sets.Append(ctx, id, req)
	if err != nil {
		return mapServiceError(err)
	}

	for _, exp := range created {
		if err := s.dispatcher.DispatchExperiment(ctx, exp.ID); err != nil {
			return mapServiceError(err)
		}
	}

	set, err := s.sets.Get(ctx, id)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, toExperimentSetResponse(set))
}

// deleteExperimentSetHandler handles DELETE /experiment_set/:id (cascade).
func (s *Server) deleteExperimentSetHandler(c *echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := s.sets.Remove(c.Request().Context(), id); err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, "ok")
}

// retryExperimentSetHandler handles POST /retry/experiment_set/:id: the
// retry planner diffs counters over the finished experiments and re-enqueues
// the missing rows.
func (s *Server) retryExperimentSetHandler(c *echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	plan, err := s.retryPlanner.Retry(c.Request().Context(), id)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, plan)
}
