package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
)

// NewServer creates the HTTP server with all routes configured. siteDir,
// when it exists, is served for every path without a route.
func NewServer(handler *Handler, metricsHandler http.Handler, siteDir string) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	r.Use(gin.LoggerWithConfig(gin.LoggerConfig{
		Formatter: func(param gin.LogFormatterParams) string {
			return fmt.Sprintf("%s - [%s] \"%s %s %s %d %s \"%s\" %s\"\n",
				param.ClientIP,
				param.TimeStamp.Format(time.RFC3339),
				param.Method,
				param.Path,
				param.Request.Proto,
				param.StatusCode,
				param.Latency,
				param.Request.UserAgent(),
				param.ErrorMessage,
			)
		},
		SkipPaths: []string{"/health", "/metrics"},
	}))

	r.Use(gin.Recovery())

	// CORS for the JSON and feed endpoints
	r.Use(corsMiddleware())

	setupRoutes(r, handler, metricsHandler, siteDir)

	return r
}

func setupRoutes(r *gin.Engine, handler *Handler, metricsHandler http.Handler, siteDir string) {
	r.GET("/", handler.GetPage)
	r.GET("/index.html", handler.GetPage)
	r.GET("/feed.xml", handler.GetFeed)

	r.GET("/health", handler.GetHealth)
	if metricsHandler != nil {
		r.GET("/metrics", gin.WrapH(metricsHandler))
	}

	api := r.Group("/api")
	{
		api.GET("/articles", handler.GetArticles)
	}

	if info, err := os.Stat(siteDir); err == nil && info.IsDir() {
		r.NoRoute(gin.WrapH(http.FileServer(http.Dir(siteDir))))
		slog.Debug("Serving static site files", "dir", siteDir)
	} else {
		slog.Warn("Site directory not found, static files disabled", "dir", siteDir)
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Accept")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
