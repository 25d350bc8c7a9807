package server

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/oncoplate/backend/internal/api"
	"github.com/oncoplate/backend/internal/database"
	"github.com/oncoplate/backend/internal/service"
)

// Server owns the HTTP listener around the assembled route tree.
type Server struct {
	router *gin.Engine
	http   *http.Server
}

// New builds the server from its collaborators. healthDB may be nil.
func New(db *gorm.DB, healthDB *database.DB, auth *service.AuthService, plans *service.PlanService) *Server {
	return &Server{
		router: api.SetupRouter(db, healthDB, auth, plans),
	}
}

// Start begins serving on the given port and blocks until the listener stops.
func (s *Server) Start(port string) error {
	s.http = &http.Server{
		Addr:              ":" + port,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Printf("Listening on :%s", port)
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http != nil {
		return s.http.Shutdown(ctx)
	}
	return nil
}
