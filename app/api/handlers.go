package api

import (
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lysyi3m/article-index/app/config"
	"github.com/lysyi3m/article-index/app/render"
)

type Handler struct {
	pipeline  PipelineInterface
	generator GeneratorInterface
	site      *config.SiteConfig
	hostPage  string
	baseURL   string
	version   string
}

func NewHandler(pipeline PipelineInterface, generator GeneratorInterface,
	site *config.SiteConfig, hostPage, baseURL, version string) *Handler {
	return &Handler{
		pipeline:  pipeline,
		generator: generator,
		site:      site,
		hostPage:  hostPage,
		baseURL:   baseURL,
		version:   version,
	}
}

// GetPage runs a fresh pass and returns the filled host page
func (h *Handler) GetPage(c *gin.Context) {
	host, err := os.ReadFile(h.hostPage)
	if err != nil {
		slog.Error("Failed to read host page", "path", h.hostPage, "error", err)
		c.Status(http.StatusInternalServerError)
		return
	}

	result, err := h.pipeline.Run(c.Request.Context())
	if err != nil {
		c.String(http.StatusBadGateway, "failed to render articles: %v", err)
		return
	}

	page, stats, err := render.NewPage(host, h.site).Render(result.Articles)
	if err != nil {
		slog.Error("Page rendering error", "pass_id", result.PassID, "error", err)
		c.Status(http.StatusInternalServerError)
		return
	}

	slog.Debug("Page rendered",
		"pass_id", result.PassID,
		"featured", stats.Featured,
		"cards", stats.Cards,
		"placeholders", stats.Placeholders,
		"empty", stats.Empty)

	c.Header("Cache-Control", "no-store")
	c.Header("X-Render-Pass", result.PassID)
	c.Header("X-Articles-Rendered", strconv.Itoa(len(result.Articles)))
	c.Header("X-Articles-Failed", strconv.Itoa(len(result.Failures)))

	c.Data(http.StatusOK, "text/html; charset=utf-8", page)
}

// GetArticles returns the metadata of one fresh pass as JSON
func (h *Handler) GetArticles(c *gin.Context) {
	result, err := h.pipeline.Run(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"error":   "Failed to load articles",
			"details": err.Error(),
		})
		return
	}

	failures := make([]failureView, 0, len(result.Failures))
	for _, failure := range result.Failures {
		failures = append(failures, failureView{Filename: failure.Filename, Error: failure.Err.Error()})
	}

	c.JSON(http.StatusOK, gin.H{
		"pass_id":  result.PassID,
		"articles": result.Articles,
		"failures": failures,
		"total":    len(result.Articles),
	})
}

// GetFeed returns the articles of one fresh pass as RSS
func (h *Handler) GetFeed(c *gin.Context) {
	result, err := h.pipeline.Run(c.Request.Context())
	if err != nil {
		c.Status(http.StatusBadGateway)
		return
	}

	rss, err := h.generator.Run(h.baseURL, result.Articles)
	if err != nil {
		slog.Error("RSS generation error", "pass_id", result.PassID, "error", err)
		c.Status(http.StatusInternalServerError)
		return
	}

	c.Header("Content-Type", "application/xml; charset=utf-8")
	c.Header("X-Feed-Items", strconv.Itoa(len(result.Articles)))

	c.String(http.StatusOK, rss)
}

func (h *Handler) GetHealth(c *gin.Context) {
	health := map[string]interface{}{
		"status":    "ok",
		"version":   h.version,
		"timestamp": time.Now().In(time.Local).Format(time.RFC3339),
	}

	if _, err := os.Stat(h.hostPage); err != nil {
		health["status"] = "degraded"
		health["host_page"] = err.Error()
	}

	c.JSON(http.StatusOK, health)
}
