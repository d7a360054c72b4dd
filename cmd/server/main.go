package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Mahdi-Yadi/Date-Time-Service-Convertor/internal/config"
	"github.com/Mahdi-Yadi/Date-Time-Service-Convertor/internal/handler"
	"github.com/Mahdi-Yadi/Date-Time-Service-Convertor/internal/middleware"
	"github.com/Mahdi-Yadi/Date-Time-Service-Convertor/internal/service"
	"github.com/Mahdi-Yadi/Date-Time-Service-Convertor/pkg/logger"
	"github.com/Mahdi-Yadi/Date-Time-Service-Convertor/pkg/metrics"
	"github.com/Mahdi-Yadi/Date-Time-Service-Convertor/pkg/timezone"
)

func main() {
	log := logger.NewLogger("datetime-service")

	if err := godotenv.Load(); err != nil {
		log.Warnf(".env file not found: %v", err)
	}

	cfg := config.Load()

	resolver := timezone.NewResolver(timezone.LocationProvider{})
	// Warm the cache with the platform's primary zone so the first user
	// request does not pay the lookup.
	if h := resolver.Resolve(cfg.DefaultTimezone); h.Fallback {
		log.WithZone(cfg.DefaultTimezone).Warn("default timezone unknown, conversions fall back to UTC")
	} else {
		log.WithZone(cfg.DefaultTimezone).Info("timezone cache warmed")
	}

	m := metrics.NewMetrics("datetime_service", func() float64 {
		return float64(resolver.Size())
	})

	engine := service.NewDateTimeService(resolver)
	dateTimeHandler := handler.NewDateTimeHandler(engine, m)

	mux := http.NewServeMux()
	dateTimeHandler.Register(mux)
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	var root http.Handler = mux
	root = metrics.Middleware(m)(root)
	root = middleware.RequestLogging(log)(root)
	root = middleware.CORS(root)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           root,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Infof("datetime service listening on port %s", cfg.HTTPPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("failed to serve: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Errorf("forced shutdown: %v", err)
	}
	log.Info("server stopped")
}
