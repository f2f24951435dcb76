package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/Theo3883/Hour-Tracking-Application/internal/config"
	"github.com/Theo3883/Hour-Tracking-Application/internal/handler"
	"github.com/Theo3883/Hour-Tracking-Application/internal/middleware"
	"github.com/Theo3883/Hour-Tracking-Application/internal/version"
)

// Server represents the HTTP server
type Server struct {
	cfg    *config.Config
	router *gin.Engine
	mongo  *mongo.Client
	logger *zap.Logger
}

// New creates a new server instance
func New(cfg *config.Config, logger *zap.Logger) (*Server, error) {
	mongoClient, err := Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	db := mongoClient.Database(cfg.Mongo.Database)

	repos := InitRepositories(mongoClient, db)
	services := InitServices(cfg, repos, logger)
	handlers := InitHandlers(services)

	if err := PopulateInitialData(cfg, db, repos, logger); err != nil {
		return nil, fmt.Errorf("failed to populate initial data: %w", err)
	}

	router := setupRouter(cfg, handlers, services, logger)

	return &Server{
		cfg:    cfg,
		router: router,
		mongo:  mongoClient,
		logger: logger,
	}, nil
}

func Connect(cfg *config.Config) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}
	return client, nil
}

// Close disconnects MongoDB client
func (s *Server) Close() error {
	if s.mongo != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return s.mongo.Disconnect(ctx)
	}
	return nil
}

// Run starts the server
func (s *Server) Run() error {
	s.logger.Info("hour-tracking server running",
		zap.String("address", s.cfg.Server.Address()),
		zap.String("env", s.cfg.Server.Env),
		zap.String("version", version.Version))
	return s.router.Run(s.cfg.Server.Address())
}

func setupRouter(cfg *config.Config, h *Handlers, s *Services, logger *zap.Logger) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(middleware.RequestLogger(logger), gin.Recovery())
	r.SetTrustedProxies(nil)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "version": version.Get()})
	})

	api := r.Group("/api")

	// Sign-in exchange (no auth; the Google credential is verified upstream)
	api.POST("/auth/google", h.Auth.GoogleLogin)

	// Report feed for the external renderer (report key, not user auth)
	reports := api.Group("/reports")
	reports.Use(middleware.ReportKeyMiddleware(s.ReportKeys))
	{
		reports.GET("/leaderboard", h.Report.Leaderboards)
		reports.GET("/departments/:departmentId/leaderboard", h.Report.DepartmentLeaderboard)
	}

	// Everything else requires a bearer token
	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(s.Tokens))

	users := protected.Group("/users")
	{
		users.GET("", h.User.List)
		users.GET("/byDepartment/:departmentId", h.User.ListByDepartment)
		users.POST("/addToDepartment", h.User.AddToDepartment)
		users.PUT("/:id", h.User.Update)
	}

	departments := protected.Group("/departments")
	{
		departments.GET("", h.Directory.ListDepartments)
		departments.POST("", h.Directory.CreateDepartment)
		departments.POST("/addCoordinator", h.Directory.AddDepartmentCoordinator)
	}

	projects := protected.Group("/projects")
	{
		projects.GET("", h.Directory.ListProjects)
		projects.POST("", h.Directory.CreateProject)
		projects.POST("/updateCoordinator", h.Directory.UpdateProjectCoordinator)
	}

	teams := protected.Group("/teams")
	{
		teams.GET("", h.Team.List)
		teams.POST("", h.Team.Add)
		teams.DELETE("", h.Team.Remove)
		teams.GET("/byProject/:projectId", h.Team.ListByProject)
		teams.GET("/byUser/:userId", h.Team.ListByUser)
	}

	registerTaskRoutes(protected.Group("/tasks"), h.ProjectTasks)
	registerTaskRoutes(protected.Group("/department-tasks"), h.DepartmentTasks)

	stats := protected.Group("/stats")
	{
		stats.GET("/users/:userId/hours", h.Stats.UserHours)
		stats.GET("/departments/:departmentId/leaderboard", h.Stats.DepartmentLeaderboard)
	}

	keys := protected.Group("/report-keys")
	keys.Use(middleware.RequireAdmin())
	{
		keys.POST("", h.ReportKeys.Generate)
		keys.GET("", h.ReportKeys.List)
		keys.POST("/:id/activate", h.ReportKeys.Activate)
		keys.POST("/:id/deactivate", h.ReportKeys.Deactivate)
		keys.DELETE("/:id", h.ReportKeys.Revoke)
	}

	return r
}

// registerTaskRoutes wires one task namespace; projects and departments share
// the same surface.
func registerTaskRoutes(g *gin.RouterGroup, h *handler.TaskHandler) {
	g.GET("", h.List)
	g.GET("/container/:containerId", h.ListByContainer)
	g.POST("", h.Create)
	g.PATCH("/:id", h.Update)
	g.POST("/:id/approval", h.SetApproval)
	g.DELETE("/:id", h.Delete)
}
