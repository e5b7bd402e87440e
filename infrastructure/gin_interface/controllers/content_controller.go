package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/toruasakawa/short-video-generator-clean/application/ports/outbound"
	"github.com/toruasakawa/short-video-generator-clean/domain"
	"github.com/toruasakawa/short-video-generator-clean/infrastructure/gin_interface/dto"
)

// ContentController serves the synchronous endpoints around the pipeline:
// topic suggestions, script previews, the style catalog and health.
type ContentController interface {
	SuggestTopics(c *gin.Context)
	PreviewScript(c *gin.Context)
	ListStyles(c *gin.Context)
	Health(c *gin.Context)
	RegisterRoutes(g *gin.Engine)
}

type contentController struct {
	logger          outbound.LoggerPort
	topicSuggester  outbound.TopicSuggesterPort
	scriptGenerator outbound.ScriptGeneratorPort
	audioGenerator  outbound.AudioGeneratorPort
	progressCache   outbound.ProgressCachePort
}

func NewContentController(
	logger outbound.LoggerPort,
	topicSuggester outbound.TopicSuggesterPort,
	scriptGenerator outbound.ScriptGeneratorPort,
	audioGenerator outbound.AudioGeneratorPort,
	progressCache outbound.ProgressCachePort,
) ContentController {
	return &contentController{
		logger:          logger,
		topicSuggester:  topicSuggester,
		scriptGenerator: scriptGenerator,
		audioGenerator:  audioGenerator,
		progressCache:   progressCache,
	}
}

func (cc *contentController) SuggestTopics(c *gin.Context) {
	var req dto.TopicSuggestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	suggestions, err := cc.topicSuggester.Suggest(c.Request.Context(), req.Theme)
	if err != nil {
		cc.logger.Error(err, "Failed to suggest topics")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to suggest topics"})
		return
	}

	c.JSON(http.StatusOK, dto.TopicSuggestResponse{
		Theme:       req.Theme,
		Suggestions: suggestions,
	})
}

func (cc *contentController) PreviewScript(c *gin.Context) {
	var req dto.ScriptPreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	script, err := cc.scriptGenerator.Generate(c.Request.Context(), outbound.GenerateScriptRequest{
		Topic: req.Topic,
		Style: req.Style,
	})
	if err != nil {
		if errors.Is(err, domain.ErrGeneration) {
			c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		cc.logger.Error(err, "Failed to preview the script")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to preview the script"})
		return
	}

	c.JSON(http.StatusOK, dto.NewScriptPreviewResponse(script))
}

func (cc *contentController) ListStyles(c *gin.Context) {
	c.JSON(http.StatusOK, dto.NewStylesResponse(domain.Styles()))
}

func (cc *contentController) Health(c *gin.Context) {
	services := gin.H{
		"voicevox": "ok",
		"redis":    "ok",
	}
	status := http.StatusOK

	if err := cc.audioGenerator.Ping(c.Request.Context()); err != nil {
		services["voicevox"] = err.Error()
		status = http.StatusServiceUnavailable
	}
	if err := cc.progressCache.Ping(c.Request.Context()); err != nil {
		services["redis"] = err.Error()
		status = http.StatusServiceUnavailable
	}

	c.JSON(status, gin.H{
		"status":   healthLabel(status),
		"services": services,
	})
}

func healthLabel(status int) string {
	if status == http.StatusOK {
		return "healthy"
	}
	return "degraded"
}

func (cc *contentController) RegisterRoutes(g *gin.Engine) {
	g.POST("/api/topics/suggest", cc.SuggestTopics)
	g.POST("/api/script/preview", cc.PreviewScript)
	g.GET("/api/styles", cc.ListStyles)
	g.GET("/health", cc.Health)
}
