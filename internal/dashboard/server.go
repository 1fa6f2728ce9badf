// Package dashboard hosts a small local HTTP server exposing the latest
// analysis snapshot and recent logs as JSON, for operators who want to watch
// a refresh loop without tailing log files.
package dashboard

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"prunflow/config"
	"prunflow/logger"
)

// Server hosts the monitoring endpoint.
type Server struct {
	cfg        config.DashboardConfig
	log        *logger.Log
	snapshots  *snapshotStore
	logStore   *logStore
	httpServer *http.Server
}

// NewServer constructs the dashboard when the feature is enabled, nil
// otherwise. A nil server is safe to use; all its methods no-op.
func NewServer(cfg config.DashboardConfig, log *logger.Log) *Server {
	if !cfg.Enabled {
		return nil
	}

	cfg.Address = normalizeAddress(cfg.Address)

	ls := newLogStore(cfg.LogHistory)
	log.AddHook(ls)

	return &Server{
		cfg:       cfg,
		log:       log,
		snapshots: newSnapshotStore(),
		logStore:  ls,
	}
}

// Publish replaces the snapshot served to clients.
func (s *Server) Publish(snap *Snapshot) {
	if s == nil {
		return
	}
	s.snapshots.publish(snap)
}

func (s *Server) buildRouter() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/api/snapshot", func(c *gin.Context) {
		c.JSON(http.StatusOK, s.snapshots.snapshot())
	})
	router.GET("/api/planets/:name", func(c *gin.Context) {
		snap := s.snapshots.snapshot()
		report, ok := snap.Planets[c.Param("name")]
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "unknown planet"})
			return
		}
		c.JSON(http.StatusOK, report)
	})
	router.GET("/api/logs", func(c *gin.Context) {
		c.JSON(http.StatusOK, s.logStore.snapshot())
	})
	return router
}

// Run starts the HTTP server and blocks until the context is cancelled or
// the server fails.
func (s *Server) Run(ctx context.Context) error {
	if s == nil {
		return nil
	}
	defer s.logStore.close()

	s.httpServer = &http.Server{
		Addr:    s.cfg.Address,
		Handler: s.buildRouter(),
	}

	errCh := make(chan error, 1)
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()
	s.log.WithComponent("dashboard").WithFields(logger.Fields{"address": s.cfg.Address}).Info("dashboard listening")

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	case err := <-errCh:
		return err
	}
}

func normalizeAddress(addr string) string {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return "127.0.0.1:8788"
	}
	if !strings.Contains(addr, ":") {
		return net.JoinHostPort(addr, "8788")
	}
	return addr
}
