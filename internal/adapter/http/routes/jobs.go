package routes

import (
	"fixsync/internal/adapter/http/handlers"
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	PathPing = "/ping"
	PathJobs = "/jobs"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET(PathPing, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

func addJobRoutes(rg *gin.RouterGroup, h *handlers.JobHandler) {
	jobs := rg.Group(PathJobs)
	{
		jobs.POST("", h.CreateJob)
		jobs.GET("", h.ListJobs)
		jobs.GET("/dashboard", h.Dashboard)

		jobs.GET("/:job_id", h.GetJob)
		jobs.PATCH("/:job_id", h.UpdateDetails)
		jobs.DELETE("/:job_id", h.DeleteJob)
		jobs.PUT("/:job_id/status", h.SetStatus)
		jobs.POST("/:job_id/claim", h.ClaimJob)
		jobs.POST("/:job_id/assign", h.AssignJob)
		jobs.POST("/:job_id/cancel", h.CancelJob)

		jobs.GET("/:job_id/log", h.ReadLog)
		jobs.POST("/:job_id/messages", h.PostMessage)
		jobs.POST("/:job_id/attachments", h.AddAttachment)
		jobs.POST("/:job_id/attachments/upload", h.UploadAttachment)

		jobs.POST("/:job_id/quotes", h.SubmitQuote)
		jobs.PATCH("/:job_id/quotes/:quote_id/approve", h.ApproveQuote)
		jobs.PATCH("/:job_id/quotes/:quote_id/decline", h.DeclineQuote)
	}
}
