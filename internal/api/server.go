package api

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"

	"github.com/NailaFatima/RTSPstream-dragable-overlay/internal/config"
	"github.com/NailaFatima/RTSPstream-dragable-overlay/internal/models"
	"github.com/NailaFatima/RTSPstream-dragable-overlay/internal/services"
	"github.com/NailaFatima/RTSPstream-dragable-overlay/internal/storage"
)

type Server struct {
	router         *gin.Engine
	httpServer     *http.Server
	overlayService *services.OverlayService
	staticDir      string
	streamURL      string
	allowedOrigins []string
}

func NewServer(cfg *config.Config, overlayService *services.OverlayService) *Server {
	if !cfg.DebugMode {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{
		router:         gin.Default(),
		overlayService: overlayService,
		staticDir:      cfg.StaticDir,
		streamURL:      cfg.StreamURL,
		allowedOrigins: cfg.AllowedOrigins,
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.router.Group("/api")
	{
		api.GET("/overlays", s.listOverlays)
		api.POST("/overlays", s.createOverlay)
		api.GET("/overlays/:id", s.getOverlay)
		api.PUT("/overlays/:id", s.updateOverlay)
		api.DELETE("/overlays/:id", s.deleteOverlay)
		api.GET("/config", s.getClientConfig)
	}

	// Anything outside /api is the built client: serve the file when it
	// exists, otherwise hand back the shell so the client-side router
	// can take over.
	s.router.NoRoute(s.serveClient)
}

func (s *Server) listOverlays(c *gin.Context) {
	overlays, err := s.overlayService.ListOverlays(c.Request.Context())
	if err != nil {
		// The list endpoint never hard-fails; an unreachable store reads
		// as an empty collection.
		log.Printf("failed to list overlays: %v", err)
		c.JSON(http.StatusOK, []models.Overlay{})
		return
	}
	if overlays == nil {
		overlays = []models.Overlay{}
	}
	c.JSON(http.StatusOK, overlays)
}

func (s *Server) createOverlay(c *gin.Context) {
	var in models.OverlayInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	overlay, err := s.overlayService.CreateOverlay(c.Request.Context(), in)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, overlay)
}

func (s *Server) getOverlay(c *gin.Context) {
	overlay, err := s.overlayService.GetOverlay(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.renderOverlayError(c, err)
		return
	}
	c.JSON(http.StatusOK, overlay)
}

func (s *Server) updateOverlay(c *gin.Context) {
	var update models.OverlayUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	overlay, err := s.overlayService.UpdateOverlay(c.Request.Context(), c.Param("id"), update)
	if err != nil {
		s.renderOverlayError(c, err)
		return
	}
	c.JSON(http.StatusOK, overlay)
}

func (s *Server) deleteOverlay(c *gin.Context) {
	if err := s.overlayService.DeleteOverlay(c.Request.Context(), c.Param("id")); err != nil {
		s.renderOverlayError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Overlay deleted successfully"})
}

func (s *Server) renderOverlayError(c *gin.Context, err error) {
	if errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Overlay not found"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

func (s *Server) getClientConfig(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"streamUrl": s.streamURL})
}

func (s *Server) serveClient(c *gin.Context) {
	if strings.HasPrefix(c.Request.URL.Path, "/api") {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	requested := filepath.Join(s.staticDir, filepath.Clean("/"+c.Request.URL.Path))
	if info, err := os.Stat(requested); err == nil && !info.IsDir() {
		c.File(requested)
		return
	}
	c.File(filepath.Join(s.staticDir, "index.html"))
}

func (s *Server) Start(addr string) error {
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   s.allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	s.httpServer = &http.Server{
		Addr:    addr,
		Handler: corsHandler.Handler(s.router),
	}
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

// Handler exposes the routed engine for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}
