package main

import (
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tidelog/tidelog/internal/config"
	"github.com/tidelog/tidelog/internal/ledger/handler"
	"github.com/tidelog/tidelog/internal/ledger/service"
	"github.com/tidelog/tidelog/internal/ledger/store"
	"github.com/tidelog/tidelog/pkg/logger"
	"github.com/tidelog/tidelog/pkg/metrics"
	"github.com/tidelog/tidelog/pkg/middleware"
)

func main() {
	// initialize logging (can be controlled with LOG_LEVEL env: debug|info|warn|error|fatal)
	logger.Init(os.Getenv("LOG_LEVEL"))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Infof("config loaded: dailyGoalMl=%d goalMlPerKg=%v strictIds=%v dataDir=%s",
		cfg.Goal.DailyGoalMl, cfg.Goal.GoalMlPerKg, cfg.Identity.StrictUserIDs, cfg.Store.DataDir)

	// acquire the ledger document up front: creates the data dir when absent
	// and refuses to start over a corrupt file rather than overwrite it
	st := store.New(cfg.Store.DataDir, cfg.Store.FileName)
	if _, err := st.Load(); err != nil {
		if errors.Is(err, store.ErrCorruptStore) {
			logger.Fatalf("refusing to start: %v (fix or move the file to reinitialize)", err)
		}
		logger.Fatalf("failed to open ledger store: %v", err)
	}
	logger.Infof("ledger store ready at %s", st.Path())

	r := gin.New()

	// Lightweight CORS middleware for dev/test: set common headers and respond to OPTIONS.
	// (Keep this intentionally simple — production should use a stricter policy.)
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(200)
			return
		}
		c.Next()
	})

	// Global middlewares: logging + recovery
	r.Use(gin.Logger(), gin.Recovery())

	if cfg.RateLimit.Enabled {
		r.Use(middleware.RateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
	}

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "healthy")
	})

	svc := service.New(st, cfg)
	handler.RegisterLedgerRoutes(r, svc, cfg)

	// serve the browser UI when a public/ directory is present
	if fi, err := os.Stat("./public"); err == nil && fi.IsDir() {
		r.NoRoute(gin.WrapH(http.FileServer(http.Dir("./public"))))
	}

	// Expose Prometheus metrics
	metrics.RegisterCollectors(prometheus.DefaultRegisterer)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
	logger.Infof("Starting intake service on %s", addr)
	if err := srv.ListenAndServe(); err != nil {
		logger.Fatalf("server failed: %v", err)
	}
}
