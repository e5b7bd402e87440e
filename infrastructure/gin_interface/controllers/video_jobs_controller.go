package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/toruasakawa/short-video-generator-clean/application/ports/inbound"
	"github.com/toruasakawa/short-video-generator-clean/application/ports/outbound"
	"github.com/toruasakawa/short-video-generator-clean/domain"
	"github.com/toruasakawa/short-video-generator-clean/infrastructure/gin_interface/dto"
	"github.com/toruasakawa/short-video-generator-clean/middleware"
)

const progressPollInterval = time.Second

type VideoJobsController interface {
	GenerateVideo(c *gin.Context)
	JobStatus(c *gin.Context)
	StreamProgress(c *gin.Context)
	DownloadVideo(c *gin.Context)
	UserHistory(c *gin.Context)
	RegisterRoutes(g *gin.Engine)
}

type videoJobsController struct {
	logger           outbound.LoggerPort
	jobDispatcher    inbound.JobDispatcherPort
	jobQuery         inbound.JobQueryPort
	estimatedSeconds int
}

func NewVideoJobsController(
	logger outbound.LoggerPort,
	jobDispatcher inbound.JobDispatcherPort,
	jobQuery inbound.JobQueryPort,
	estimatedSeconds int,
) VideoJobsController {
	return &videoJobsController{
		logger:           logger,
		jobDispatcher:    jobDispatcher,
		jobQuery:         jobQuery,
		estimatedSeconds: estimatedSeconds,
	}
}

func (v *videoJobsController) GenerateVideo(c *gin.Context) {
	var req dto.GenerateVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := req.UserID
	if authenticated := c.GetString(middleware.ContextUserIDKey); authenticated != "" {
		userID = authenticated
	}

	jobID, err := v.jobDispatcher.Submit(c.Request.Context(), inbound.SubmitJobParams{
		Topic:         req.Topic,
		Style:         req.Style,
		Speaker:       req.SpeakerID,
		EnablePreview: req.EnablePreview,
		UserID:        userID,
	})
	if err != nil {
		if errors.Is(err, domain.ErrUnknownStyle) {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		v.logger.Error(err, "Failed to submit the generation job")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to submit the generation job"})
		return
	}

	c.JSON(http.StatusOK, dto.GenerateVideoResponse{
		GenerationID:  jobID,
		Status:        string(domain.JobPending),
		EstimatedTime: v.estimatedSeconds,
	})
}

func (v *videoJobsController) JobStatus(c *gin.Context) {
	view, err := v.jobQuery.Status(c.Request.Context(), c.Param("generation_id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "generation not found"})
			return
		}
		v.logger.Error(err, "Failed to query the job status")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to query the job status"})
		return
	}

	c.JSON(http.StatusOK, dto.NewJobStatusResponse(view))
}

// StreamProgress pushes a status snapshot every second over SSE until the job
// reaches a terminal state or the client disconnects.
func (v *videoJobsController) StreamProgress(c *gin.Context) {
	jobID := c.Param("generation_id")
	if _, err := v.jobQuery.Status(c.Request.Context(), jobID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "generation not found"})
			return
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to query the job status"})
		return
	}

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	ticker := time.NewTicker(progressPollInterval)
	defer ticker.Stop()
	clientGone := c.Request.Context().Done()

	for {
		view, err := v.jobQuery.Status(c.Request.Context(), jobID)
		if err != nil {
			return
		}
		c.SSEvent("progress", dto.NewJobStatusResponse(view))
		c.Writer.Flush()
		if view.Status.Terminal() {
			return
		}

		select {
		case <-ticker.C:
		case <-clientGone:
			return
		}
	}
}

func (v *videoJobsController) DownloadVideo(c *gin.Context) {
	info, err := v.jobQuery.Download(c.Request.Context(), c.Param("generation_id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "video not found"})
			return
		}
		v.logger.Error(err, "Failed to resolve the download")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to resolve the download"})
		return
	}

	c.Header("Content-Type", "video/mp4")
	c.FileAttachment(info.Path, info.Filename)
}

func (v *videoJobsController) UserHistory(c *gin.Context) {
	userID := c.Param("user_id")
	summaries, err := v.jobQuery.History(c.Request.Context(), userID)
	if err != nil {
		v.logger.Error(err, "Failed to query the user history")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to query the user history"})
		return
	}

	c.JSON(http.StatusOK, dto.NewHistoryResponse(userID, summaries))
}

func (v *videoJobsController) RegisterRoutes(g *gin.Engine) {
	g.POST("/api/video/generate", v.GenerateVideo)
	g.GET("/api/video/status/:generation_id", v.JobStatus)
	g.GET("/api/video/progress/:generation_id", v.StreamProgress)
	g.GET("/api/video/download/:generation_id", v.DownloadVideo)
	g.GET("/api/user/:user_id/history", v.UserHistory)
}
