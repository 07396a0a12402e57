// Command pathviz-server serves grid searches over HTTP.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/pathviz/internal/api"
	"github.com/katalvlaran/pathviz/internal/config"
	applog "github.com/katalvlaran/pathviz/internal/log"
)

const shutdownTimeout = 5 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		applog.New(os.Stderr, applog.ParseLevel("info")).WithError(err).Fatal("loading config")
	}
	logger := applog.New(os.Stderr, applog.ParseLevel(cfg.LogLevel))
	gin.SetMode(cfg.GinMode)

	router := api.NewRouter(api.Config{
		Addr:    cfg.HTTPAddr,
		BaseURL: "/api",
		Controllers: []api.Controller{
			api.NewSearchController(cfg.MaxAPICells, applog.Component(logger, "search")),
		},
		Logger: applog.Component(logger, "http"),
	})
	srv := router.Server()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.WithField("addr", cfg.HTTPAddr).Info("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("server failed")
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("shutdown")
	}
}
