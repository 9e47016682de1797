// Package server exposes the portfolio over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/mifimn/portfolio/internal/config"
	"github.com/mifimn/portfolio/internal/content"
	"github.com/mifimn/portfolio/internal/logging"
	"github.com/mifimn/portfolio/internal/page"
	"github.com/mifimn/portfolio/internal/projects"
)

// Server serves the page, the projects fragment and the static files.
type Server struct {
	cfg    config.ServerConfig
	brand  content.Brand
	loader *page.Loader
	engine *gin.Engine
}

// New builds the router. The logger attached to ctx becomes the base of every
// request logger.
func New(ctx context.Context, cfg config.ServerConfig, brand content.Brand, loader *page.Loader) (*Server, error) {
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}

	tmpl, err := page.Templates()
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	hasher, err := newClientHasher()
	if err != nil {
		return nil, fmt.Errorf("client hash salt: %w", err)
	}

	s := &Server{cfg: cfg, brand: brand, loader: loader, engine: gin.New()}
	s.engine.Use(gin.Recovery())
	s.engine.Use(requestLogger(logging.FromContext(ctx), hasher))
	s.engine.SetHTMLTemplate(tmpl)
	s.routes()
	return s, nil
}

func (s *Server) routes() {
	s.engine.GET("/", s.index)
	s.engine.GET("/projects", s.projects)
	s.engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	s.engine.GET(s.brand.CV.Path, s.cv)

	s.engine.Static("/static", s.cfg.StaticDir)
	s.engine.StaticFS("/assets", http.FS(page.Assets()))
}

// Handler returns the router as a plain http.Handler.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// index renders the full page with the listing still pending.
func (s *Server) index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", page.Compose(s.brand, projects.Sets{}, page.Pending))
}

// projects performs the listing read and returns the source grid, plus an
// out-of-band live-deployments section when any record is live.
func (s *Server) projects(c *gin.Context) {
	records := s.loader.Load(c.Request.Context())
	sets := projects.Classify(records)
	c.HTML(http.StatusOK, "projects.html", page.Compose(s.brand, sets, page.Resolved))
}

func (s *Server) cv(c *gin.Context) {
	c.FileAttachment(filepath.Join(s.cfg.StaticDir, s.brand.CV.File), s.brand.CV.File)
}

// Run listens on the configured address until ctx is cancelled, then drains
// in-flight requests for at most the shutdown timeout.
func (s *Server) Run(ctx context.Context) error {
	logger := logging.FromContext(ctx)
	srv := &http.Server{
		Addr:              s.cfg.Addr(),
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("listening", "addr", srv.Addr, "mode", gin.Mode())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down", "timeout", s.cfg.ShutdownTimeout)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})
	return g.Wait()
}
