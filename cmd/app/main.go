package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"todoapp/internal/config"
	"todoapp/internal/db"
	httpServer "todoapp/internal/http"
	"todoapp/internal/http/handlers"
	"todoapp/internal/http/middleware"
	"todoapp/internal/logger"
	"todoapp/internal/storage"
	"todoapp/internal/todo"
	"todoapp/internal/ws"
)

var version = "dev"

func main() {
	cfg := config.Load()
	logger.Init(cfg.LogLevel, cfg.LogJSON)

	store := openStore(cfg)

	todos, err := store.Load(context.Background())
	if err != nil {
		logger.Fatal("failed to load collection", "error", err)
	}
	logger.Info("collection loaded", "backend", cfg.StoreBackend, "todos", len(todos))

	saver := storage.NewAutosaver(store, cfg.SaveDebounce)
	defer saver.Close()
	go func() {
		// Save failures are surfaced but never roll back the in-memory state.
		for err := range saver.Errors() {
			logger.Error("autosave failed", "error", err)
		}
	}()

	engine := todo.NewEngine(todo.WithInsertOrder(todo.InsertOrder(cfg.InsertOrder)))
	hub := ws.NewHub()
	h := handlers.NewHandler(engine, todos, saver, hub)

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error("panic in handler", "panic", recovered)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Internal server error"})
	}))

	// CORS for a frontend served from another origin
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
			c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type")
			c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		}
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	middleware.InitRedisRateLimiter(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	httpServer.RegisterRoutes(r, h, hub, version, httpServer.RateLimitConfig{
		Limit:  cfg.APIRateLimit,
		Window: cfg.APIRateWindow,
	})

	stopSweep := startDueSweep(h, hub, cfg.DueCheckInterval)
	defer stopSweep()

	srv := &http.Server{
		Addr:    ":" + cfg.AppPort,
		Handler: r,
	}

	go func() {
		logger.Info("server started", "port", cfg.AppPort)
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

func openStore(cfg *config.Config) storage.Store {
	switch cfg.StoreBackend {
	case "file":
		return storage.NewFileStore(cfg.StorePath)
	case "redis":
		store, err := storage.NewRedisStore(context.Background(), cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB, "")
		if err != nil {
			logger.Fatal("failed to connect to redis store", "error", err)
		}
		return store
	case "postgres":
		pool := db.Connect(cfg.DatabaseURL)
		store, err := storage.NewPostgresStore(context.Background(), pool)
		if err != nil {
			logger.Fatal("failed to prepare postgres store", "error", err)
		}
		return store
	default:
		return storage.NewMemoryStore()
	}
}

// startDueSweep runs the due-date notification sweep on a ticker. Todos due
// today or overdue are announced on the feed once; the notified latch is set
// through the handler so the change persists.
func startDueSweep(h *handlers.Handler, hub *ws.Hub, interval time.Duration) func() {
	if interval <= 0 {
		return func() {}
	}

	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		sweep := func() {
			due := todo.CheckDue(h.Snapshot(), time.Now())
			if len(due) == 0 {
				return
			}
			ids := make([]string, len(due))
			for i, n := range due {
				ids[i] = n.ID
				hub.Broadcast(ws.NewDueEvent(n))
			}
			h.SetNotified(ids)
			logger.Info("due sweep announced todos", "count", len(due))
		}

		sweep()
		for {
			select {
			case <-ticker.C:
				sweep()
			case <-done:
				return
			}
		}
	}()
	return func() { close(done) }
}
