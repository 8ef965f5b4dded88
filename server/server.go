package server

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/persimmonlabs/PARA-DAP/internal/logger"
	"github.com/persimmonlabs/PARA-DAP/internal/store"
)

// Server is the REST API server
type Server struct {
	store *store.Store
	echo  *echo.Echo
}

// New creates a new server over an already-opened store
func New(st *store.Store) *Server {
	s := &Server{store: st}
	s.setupEcho()
	return s
}

func (s *Server) setupEcho() {
	e := echo.New()
	e.HideBanner = true

	// Request/response logging middleware
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			req := c.Request()

			err := next(c)

			res := c.Response()
			logger.Info("HTTP",
				logger.F("method", req.Method),
				logger.F("uri", req.RequestURI),
				logger.F("status", res.Status),
				logger.F("size", res.Size),
				logger.F("duration", time.Since(start).String()))

			return err
		}
	})

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.CORS())

	// Health check
	e.GET("/health", s.handleHealth)

	// Items
	e.GET("/items", s.handleListItems)
	e.POST("/items", s.handleCreateItem)
	e.GET("/items/:id", s.handleGetItem)
	e.PATCH("/items/:id", s.handleUpdateItem)
	e.DELETE("/items/:id", s.handleDeleteItem)

	// Projects
	e.GET("/projects", s.handleListProjects)
	e.POST("/projects", s.handleCreateProject)
	e.GET("/projects/:id", s.handleGetProject)
	e.PATCH("/projects/:id", s.handleUpdateProject)
	e.DELETE("/projects/:id", s.handleDeleteProject)

	s.echo = e
}

// Router returns the HTTP handler
func (s *Server) Router() http.Handler {
	return s.echo
}

// Start starts the server
func (s *Server) Start(addr string) error {
	return s.echo.Start(addr)
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
