// Package api exposes the search engine over HTTP with gin.
package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Router builds the HTTP handler from its controllers.
type Router struct {
	addr        string
	baseURL     string
	controllers []Controller
	log         logrus.FieldLogger
}

// Config holds configuration settings for creating a new Router instance.
type Config struct {
	Addr        string // Address to listen on
	BaseURL     string // Base URL for API routes
	Controllers []Controller
	Logger      logrus.FieldLogger
}

// NewRouter creates a new Router instance with the given configuration.
func NewRouter(config Config) *Router {
	if config.Logger == nil {
		config.Logger = discard()
	}
	return &Router{
		addr:        config.Addr,
		baseURL:     config.BaseURL,
		controllers: config.Controllers,
		log:         config.Logger,
	}
}

// Handler returns the gin engine with every route registered under
// baseURL/v1, plus GET baseURL/v1/health.
func (r *Router) Handler() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), r.requestLogger())

	v1 := router.Group(r.baseURL).Group("/v1")
	{
		v1.GET("/health", func(ctx *gin.Context) {
			ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
		})
		for _, c := range r.controllers {
			c.Register(v1)
		}
	}
	return router
}

// Server returns an http.Server serving Handler on the configured address.
func (r *Router) Server() *http.Server {
	return &http.Server{
		Addr:              r.addr,
		Handler:           r.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
}

// requestLogger logs one line per request at Debug, or Warn for 4xx/5xx.
func (r *Router) requestLogger() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		began := time.Now()
		ctx.Next()

		entry := r.log.WithFields(logrus.Fields{
			"method":  ctx.Request.Method,
			"path":    ctx.FullPath(),
			"status":  ctx.Writer.Status(),
			"latency": time.Since(began),
		})
		if ctx.Writer.Status() >= http.StatusBadRequest {
			entry.Warn("request failed")
			return
		}
		entry.Debug("request")
	}
}
