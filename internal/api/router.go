package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"showroom/internal"
)

// Server is the JSON API server
type Server struct {
	engine *gin.Engine
	server *http.Server
	logger *internal.Logger
}

// NewRouter registers the inventory routes on a fresh gin engine
func NewRouter(handler *InventoryHandler, logger *internal.Logger, mode string) *gin.Engine {
	if mode != "" {
		gin.SetMode(mode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestID())
	router.Use(RequestLogger(logger.Zap()))

	router.GET("/healthz", handler.Health)

	v := router.Group("/api")
	{
		v.GET("/vehicles", handler.ListVehicles)
		v.GET("/vehicles/:id", handler.GetVehicle)
		v.GET("/vehicles/summary", handler.Summary)
	}

	return router
}

// NewServer creates an API server listening on port
func NewServer(port string, handler *InventoryHandler, logger *internal.Logger, mode string) *Server {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	engine := NewRouter(handler, logger, mode)
	return &Server{
		engine: engine,
		logger: logger,
		server: &http.Server{
			Addr:              ":" + port,
			Handler:           engine,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// Start blocks serving requests until Shutdown
func (s *Server) Start() error {
	s.logger.Info("Starting showroom API server on %s", s.server.Addr)
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
