package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"citadel_backend/internal/clock"
	"citadel_backend/internal/config"
	"citadel_backend/internal/db"
	"citadel_backend/internal/engine"
	"citadel_backend/internal/events"
	httpServer "citadel_backend/internal/http"
	"citadel_backend/internal/http/middleware"
	"citadel_backend/internal/logger"
	"citadel_backend/internal/matchmaker"
	"citadel_backend/internal/random"
	"citadel_backend/internal/repository"
	"citadel_backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var version = "dev"

func main() {
	cfg := config.Load()
	logger.Init(cfg.LogLevel, cfg.LogJSON)
	service.InitJWT()

	eng := engine.New(clock.System(), random.Crypto(), events.NewLog(), cfg.AdminBootstrapToken)
	if cfg.AdminBootstrapToken == "" {
		// Printed once so the operator can pick it up; never stored.
		logger.Info("minted admin bootstrap token", "token", eng.BootstrapToken())
	}

	// Persistence is optional: no DATABASE_URL means pure in-memory mode.
	var dbPool *pgxpool.Pool
	var recorder *repository.Recorder
	if cfg.DatabaseURL != "" {
		dbPool = db.Connect(cfg.DatabaseURL)
		defer dbPool.Close()

		recorder = repository.NewRecorder(eng,
			repository.NewEventRepository(dbPool),
			repository.NewMatchHistoryRepository(dbPool))
		recorder.Start()
		defer recorder.Stop()
	} else {
		logger.Info("DATABASE_URL not set, history persistence disabled")
	}

	middleware.InitRedisRateLimiter(cfg.RedisAddr, os.Getenv("REDIS_PASSWORD"), cfg.RedisDB)

	// Count every engine event by type for the /metrics scrape.
	go func() {
		ch, cancel := eng.Events().Subscribe()
		defer cancel()
		for ev := range ch {
			middleware.EngineEvents.WithLabelValues(ev.Type).Inc()
		}
	}()

	r := gin.Default()

	// CORS for production (frontend on different domain)
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
			c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Admin-Token")
			c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		}
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	httpServer.RegisterRoutes(r, eng, dbPool, cfg, version)

	var mm *matchmaker.Matchmaker
	if cfg.MatchmakerEnabled {
		mm = matchmaker.New(eng, eng.BootstrapToken(), cfg.MatchmakerPlayers,
			time.Duration(cfg.MatchmakerInterval)*time.Second)
		mm.Start()
		defer mm.Stop()
	}

	srv := &http.Server{
		Addr:    ":" + cfg.AppPort,
		Handler: r,
	}

	go func() {
		logger.Info("server started", "port", cfg.AppPort, "version", version)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("listen failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}
