package handlers

import (
	"errors"
	request "fixsync/internal/adapter/http/dto/request"
	response "fixsync/internal/adapter/http/dto/response"
	"fixsync/internal/domain/entities"
	"fixsync/internal/usecase"
	"fixsync/pkg"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	HeaderActorRole     = "X-Actor-Role"
	HeaderActorIdentity = "X-Actor-Identity"

	defaultMaxUploadBytes = 10 << 20
)

var (
	errMissingSession = pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Missing or invalid actor session", http.StatusUnauthorized)
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request payload", http.StatusBadRequest)
	errUploadTooLarge = pkg.NewDomainErrorSimple("UPLOAD_TOO_LARGE", "Upload exceeds the configured size limit", http.StatusRequestEntityTooLarge)
)

// JobHandler exposes the job collaboration engine over HTTP.
//
// The caller's session comes from the X-Actor-Role and X-Actor-Identity
// headers set by the authentication tier in front of this service.
type JobHandler struct {
	usecase        usecase.IJobUseCase
	policy         usecase.AccessPolicy
	maxUploadBytes int64
}

func NewJobHandler(uc usecase.IJobUseCase) *JobHandler {
	return &JobHandler{
		usecase:        uc,
		maxUploadBytes: maxUploadBytesFromEnv(),
	}
}

// CreateJob godoc
// @Summary  Open a new job
// @Tags     jobs
// @Accept   json
// @Produce  json
// @Param    X-Actor-Role      header string                     true  "customer"
// @Param    X-Actor-Identity  header string                     true  "customer identity"
// @Param    payload           body   request.JobDetailsRequest  false "initial details"
// @Success  201 {object} response.JobResponse
// @Failure  400,401,403,503 {object} pkg.HTTPError
// @Router   /jobs [post]
func (h *JobHandler) CreateJob(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}

	var payload request.JobDetailsRequest
	if err := c.ShouldBindJSON(&payload); err != nil && !errors.Is(err, io.EOF) {
		writeError(c, errInvalidPayload)
		return
	}

	job, err := h.usecase.CreateJob(c.Request.Context(), s, payload.ToDetails())
	if err != nil {
		writeError(c, mapJobError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromJob(job))
}

// ListJobs godoc
// @Summary  List jobs visible to the caller
// @Tags     jobs
// @Produce  json
// @Param    status      query string false "status filter"
// @Param    technician  query string false "assigned technician, or 'me'"
// @Param    customer    query string false "customer identity"
// @Param    category    query string false "category"
// @Success  200 {array} response.JobSummaryResponse
// @Router   /jobs [get]
func (h *JobHandler) ListJobs(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}

	var q request.ListJobsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	jobs, err := h.usecase.ListJobs(c.Request.Context(), s, q.ToFilter(s))
	if err != nil {
		writeError(c, mapJobError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromJobList(jobs))
}

// GetJob godoc
// @Summary  Fetch a job with its full history
// @Tags     jobs
// @Produce  json
// @Param    job_id path string true "job id"
// @Success  200 {object} response.JobResponse
// @Failure  403,404 {object} pkg.HTTPError
// @Router   /jobs/{job_id} [get]
func (h *JobHandler) GetJob(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	job, err := h.usecase.GetJob(c.Request.Context(), c.Param("job_id"), s)
	if err != nil {
		writeError(c, mapJobError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromJob(job))
}

// ReadLog godoc
// @Summary  Read the collaboration log
// @Tags     log
// @Produce  json
// @Param    job_id path  string true  "job id"
// @Param    limit  query int    false "only the most recent N entries"
// @Success  200 {object} response.LogResponse
// @Router   /jobs/{job_id}/log [get]
func (h *JobHandler) ReadLog(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}

	window := 0
	if raw := strings.TrimSpace(c.Query("limit")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeError(c, errInvalidPayload)
			return
		}
		window = n
	}

	view, err := h.usecase.ReadLog(c.Request.Context(), c.Param("job_id"), s, window)
	if err != nil {
		writeError(c, mapJobError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromLog(strings.ToUpper(strings.TrimSpace(c.Param("job_id"))), view))
}

// PostMessage godoc
// @Summary  Append a message to the job log
// @Tags     log
// @Accept   json
// @Produce  json
// @Param    job_id   path string                      true "job id"
// @Param    payload  body request.PostMessageRequest  true "message"
// @Success  201 {object} response.JobResponse
// @Router   /jobs/{job_id}/messages [post]
func (h *JobHandler) PostMessage(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	var payload request.PostMessageRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	job, err := h.usecase.PostMessage(c.Request.Context(), c.Param("job_id"), s, payload.Text)
	if err != nil {
		writeError(c, mapJobError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromJob(job))
}

// AddAttachment godoc
// @Summary  Attach an already-stored media reference
// @Tags     log
// @Accept   json
// @Produce  json
// @Param    job_id   path string                        true "job id"
// @Param    payload  body request.AddAttachmentRequest  true "media reference"
// @Success  201 {object} response.JobResponse
// @Router   /jobs/{job_id}/attachments [post]
func (h *JobHandler) AddAttachment(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	var payload request.AddAttachmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	job, err := h.usecase.AddAttachment(c.Request.Context(), c.Param("job_id"), s, payload.MediaRef)
	if err != nil {
		writeError(c, mapJobError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromJob(job))
}

// UploadAttachment godoc
// @Summary  Upload a photo or video and attach it
// @Tags     log
// @Accept   multipart/form-data
// @Produce  json
// @Param    job_id  path     string true "job id"
// @Param    file    formData file   true "media file"
// @Success  201 {object} response.JobResponse
// @Failure  413,503 {object} pkg.HTTPError
// @Router   /jobs/{job_id}/attachments/upload [post]
func (h *JobHandler) UploadAttachment(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes)
	fh, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(c, errUploadTooLarge)
			return
		}
		writeError(c, errInvalidPayload)
		return
	}
	if fh.Size > h.maxUploadBytes {
		writeError(c, errUploadTooLarge)
		return
	}

	f, err := fh.Open()
	if err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	job, err := h.usecase.UploadAttachment(c.Request.Context(), c.Param("job_id"), s, fh.Filename, fh.Header.Get("Content-Type"), data)
	if err != nil {
		writeError(c, mapJobError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromJob(job))
}

// SubmitQuote godoc
// @Summary  Submit a quote (technician)
// @Tags     quotes
// @Accept   json
// @Produce  json
// @Param    job_id   path string                      true "job id"
// @Param    payload  body request.SubmitQuoteRequest  true "quote"
// @Success  201 {object} response.JobResponse
// @Router   /jobs/{job_id}/quotes [post]
func (h *JobHandler) SubmitQuote(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	var payload request.SubmitQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	job, err := h.usecase.SubmitQuote(c.Request.Context(), c.Param("job_id"), s, payload.ToInput())
	if err != nil {
		writeError(c, mapJobError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromJob(job))
}

// ApproveQuote godoc
// @Summary  Approve a pending quote (customer)
// @Tags     quotes
// @Produce  json
// @Param    job_id   path string true "job id"
// @Param    quote_id path string true "quote id"
// @Success  200 {object} response.JobResponse
// @Router   /jobs/{job_id}/quotes/{quote_id}/approve [patch]
func (h *JobHandler) ApproveQuote(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	job, err := h.usecase.ApproveQuote(c.Request.Context(), c.Param("job_id"), s, c.Param("quote_id"))
	if err != nil {
		writeError(c, mapJobError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromJob(job))
}

// DeclineQuote godoc
// @Summary  Decline a pending quote (customer)
// @Tags     quotes
// @Produce  json
// @Param    job_id   path string true "job id"
// @Param    quote_id path string true "quote id"
// @Success  200 {object} response.JobResponse
// @Router   /jobs/{job_id}/quotes/{quote_id}/decline [patch]
func (h *JobHandler) DeclineQuote(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	job, err := h.usecase.DeclineQuote(c.Request.Context(), c.Param("job_id"), s, c.Param("quote_id"))
	if err != nil {
		writeError(c, mapJobError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromJob(job))
}

// UpdateDetails godoc
// @Summary  Edit category, priority, location or description
// @Tags     jobs
// @Accept   json
// @Produce  json
// @Param    job_id   path string                     true "job id"
// @Param    payload  body request.JobDetailsRequest  true "fields to change"
// @Success  200 {object} response.JobResponse
// @Router   /jobs/{job_id} [patch]
func (h *JobHandler) UpdateDetails(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	var payload request.JobDetailsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	job, err := h.usecase.UpdateDetails(c.Request.Context(), c.Param("job_id"), s, payload.ToDetails())
	if err != nil {
		writeError(c, mapJobError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromJob(job))
}

// ClaimJob godoc
// @Summary  Claim an open job (technician)
// @Tags     jobs
// @Produce  json
// @Param    job_id path string true "job id"
// @Success  200 {object} response.JobResponse
// @Router   /jobs/{job_id}/claim [post]
func (h *JobHandler) ClaimJob(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	job, err := h.usecase.ClaimJob(c.Request.Context(), c.Param("job_id"), s)
	if err != nil {
		writeError(c, mapJobError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromJob(job))
}

// AssignJob godoc
// @Summary  Assign a technician (admin)
// @Tags     admin
// @Accept   json
// @Produce  json
// @Param    job_id   path string                    true "job id"
// @Param    payload  body request.AssignJobRequest  true "technician"
// @Success  200 {object} response.JobResponse
// @Router   /jobs/{job_id}/assign [post]
func (h *JobHandler) AssignJob(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	var payload request.AssignJobRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	job, err := h.usecase.AssignJob(c.Request.Context(), c.Param("job_id"), s, payload.Technician)
	if err != nil {
		writeError(c, mapJobError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromJob(job))
}

// CancelJob godoc
// @Summary  Cancel a job
// @Tags     jobs
// @Produce  json
// @Param    job_id path string true "job id"
// @Success  200 {object} response.JobResponse
// @Router   /jobs/{job_id}/cancel [post]
func (h *JobHandler) CancelJob(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	job, err := h.usecase.CancelJob(c.Request.Context(), c.Param("job_id"), s)
	if err != nil {
		writeError(c, mapJobError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromJob(job))
}

// SetStatus godoc
// @Summary  Override the job status (admin)
// @Tags     admin
// @Accept   json
// @Produce  json
// @Param    job_id   path string                    true "job id"
// @Param    payload  body request.SetStatusRequest  true "target status"
// @Success  200 {object} response.JobResponse
// @Router   /jobs/{job_id}/status [put]
func (h *JobHandler) SetStatus(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	var payload request.SetStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	status := entities.JobStatus(strings.ToLower(strings.TrimSpace(payload.Status)))
	job, err := h.usecase.SetStatus(c.Request.Context(), c.Param("job_id"), s, status)
	if err != nil {
		writeError(c, mapJobError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromJob(job))
}

// DeleteJob godoc
// @Summary  Delete a job and its history (admin)
// @Tags     admin
// @Param    job_id path string true "job id"
// @Success  204
// @Router   /jobs/{job_id} [delete]
func (h *JobHandler) DeleteJob(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	if err := h.usecase.DeleteJob(c.Request.Context(), c.Param("job_id"), s); err != nil {
		writeError(c, mapJobError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// Dashboard godoc
// @Summary  Aggregate counters (admin)
// @Tags     admin
// @Produce  json
// @Success  200 {object} response.DashboardResponse
// @Router   /jobs/dashboard [get]
func (h *JobHandler) Dashboard(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	d, err := h.usecase.Dashboard(c.Request.Context(), s)
	if err != nil {
		writeError(c, mapJobError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromDashboard(d))
}

// session builds the caller session from the actor headers and writes a 401
// when they are missing or malformed.
func (h *JobHandler) session(c *gin.Context) (entities.Session, bool) {
	s := entities.Session{
		Role:     entities.Role(strings.ToLower(strings.TrimSpace(c.GetHeader(HeaderActorRole)))),
		Identity: strings.TrimSpace(c.GetHeader(HeaderActorIdentity)),
	}
	if !h.policy.ValidSession(s) {
		writeError(c, errMissingSession)
		return entities.Session{}, false
	}
	return s, true
}

func writeError(c *gin.Context, appErr *pkg.AppError) {
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapJobError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrJobNotFound):
		return pkg.NewDomainErrorSimple("JOB_NOT_FOUND", "Job not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrUnauthorized):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Action not allowed for this session", http.StatusForbidden)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainError("INVALID_TRANSITION", "Status change not allowed", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrQuoteNotPending):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_PENDING", "Quote was already decided", http.StatusConflict)
	case errors.Is(err, usecase.ErrConflict):
		return pkg.NewDomainErrorSimple("CONFLICT", "Job was modified concurrently, retry", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidAmount):
		return pkg.NewDomainErrorSimple("INVALID_AMOUNT", "Quote amount must be a non-negative number", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEmptyMessage):
		return pkg.NewDomainErrorSimple("EMPTY_MESSAGE", "Message text is empty", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidJobID):
		return pkg.NewDomainErrorSimple("INVALID_JOB_ID", "Invalid job id", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidMediaRef):
		return pkg.NewDomainErrorSimple("INVALID_MEDIA_REF", "Invalid media reference", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidInput):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrStorageUnavailable):
		return pkg.NewDomainError("STORAGE_UNAVAILABLE", "Job storage is unavailable", err, http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrMediaStoreUnavailable):
		return pkg.NewDomainError("MEDIA_STORE_UNAVAILABLE", "Media store is unavailable", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func maxUploadBytesFromEnv() int64 {
	raw := strings.TrimSpace(os.Getenv("MAX_UPLOAD_BYTES"))
	if raw == "" {
		return defaultMaxUploadBytes
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n <= 0 {
		return defaultMaxUploadBytes
	}
	return n
}
