// Package api provides the HTTP API surface of the evaluation harness.
package api

import (
	"context"
	"net"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"
	"github.com/labstack/echo/v5/middleware"

	"github.com/etalab-ia/evalap/pkg/database"
	"github.com/etalab-ia/evalap/pkg/metrics"
	"github.com/etalab-ia/evalap/pkg/queue"
	"github.com/etalab-ia/evalap/pkg/services"
)

// Server is the HTTP API server.
type Server struct {
	echo       *echo.Echo
	httpServer *http.Server

	dbClient     *database.Client
	registry     *metrics.Registry
	datasets     *services.DatasetService
	experiments  *services.ExperimentService
	sets         *services.ExperimentSetService
	leaderboard  *services.LeaderboardService
	dispatcher   *queue.Dispatcher
	retryPlanner *queue.RetryPlanner
	workerPool   *queue.WorkerPool
}

// NewServer creates a new API server.
func NewServer(
	dbClient *database.Client,
	registry *metrics.Registry,
	datasets *services.DatasetService,
	experiments *services.ExperimentService,
	sets *services.ExperimentSetService,
	leaderboard *services.LeaderboardService,
	dispatcher *queue.Dispatcher,
	retryPlanner *queue.RetryPlanner,
	workerPool *queue.WorkerPool,
) *Server {
	s := &Server{
		echo:         echo.New(),
		dbClient:     dbClient,
		registry:     registry,
		datasets:     datasets,
		experiments:  experiments,
		sets:         sets,
		leaderboard:  leaderboard,
		dispatcher:   dispatcher,
		retryPlanner: retryPlanner,
		workerPool:   workerPool,
	}
	s.setupRoutes()
	return s
}

// setupRoutes registers all API routes.
func (s *Server) setupRoutes() {
	// Dataset payloads are the largest request bodies; anything beyond this
	// is rejected at the HTTP read level before deserialization.
	s.echo.Use(middleware.BodyLimit(16 * 1024 * 1024))

	s.echo.GET("/health", s.healthHandler)

	s.echo.POST("/dataset", s.createDatasetHandler)
	s.echo.GET("/datasets", s.listDatasetsHandler)
	s.echo.GET("/dataset/:id", s.getDatasetHandler)
	s.echo.PATCH("/dataset/:id", s.patchDatasetHandler)
	s.echo.DELETE("/dataset/:id", s.deleteDatasetHandler)

	s.echo.GET("/metrics", s.listMetricsHandler)

	s.echo.POST("/experiment", s.createExperimentHandler)
	s.echo.GET("/experiments", s.listExperimentsHandler)
	s.echo.GET("/experiment/:id", s.getExperimentHandler)
	s.echo.PATCH("/experiment/:id", s.patchExperimentHandler)
	s.echo.DELETE("/experiment/:id", s.deleteExperimentHandler)

	s.echo.POST("/experiment_set", s.createExperimentSetHandler)
	s.echo.GET("/experiment_sets", s.listExperimentSetsHandler)
	s.echo.GET("/experiment_set/:id", s.getExperimentSetHandler)
	s.echo.PATCH("/experiment_set/:id", s.patchExperimentSetHandler)
	s.echo.DELETE("/experiment_set/:id", s.deleteExperimentSetHandler)
	s.echo.POST("/retry/experiment_set/:id", s.retryExperimentSetHandler)

	s.echo.GET("/leaderboard", s.leaderboardHandler)
}

// Start starts the HTTP server on the given address (blocking).
func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{
		Addr:    addr,
		Handler: s.echo,
	}
	return s.httpServer.ListenAndServe()
}

// StartWithListener starts the HTTP server on a pre-created listener.
// Used by test infrastructure to serve on a random OS-assigned port.
func (s *Server) StartWithListener(ln net.Listener) error {
	s.httpServer = &http.Server{Handler: s.echo}
	return s.httpServer.Serve(ln)
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

// healthHandler handles GET /health.
func (s *Server) healthHandler(c *echo.Context) error {
	reqCtx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	dbHealth, err := database.Health(reqCtx, s.dbClient.DB())
	if err != nil {
		return c.JSON(http.StatusServiceUnavailable, &HealthResponse{
			Status:   "unhealthy",
			Database: dbHealth,
		})
	}

	response := &HealthResponse{
		Status:   "healthy",
		Database: dbHealth,
	}
	if s.workerPool != nil {
		response.Runner = s.workerPool.Health()
	}
	return c.JSON(http.StatusOK, response)
}
