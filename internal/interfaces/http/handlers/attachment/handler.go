package attachment

import (
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/infrastructure/storage"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

// Handler implements the presigned upload flow: the dashboard asks for a
// signed URL, PUTs the file against it without a session, then references the
// public URL on the ticket.
type Handler struct {
	presigner *storage.Presigner
	store     *storage.LocalStore
	logger    logger.Interface
}

func NewHandler(presigner *storage.Presigner, store *storage.LocalStore) *Handler {
	return &Handler{
		presigner: presigner,
		store:     store,
		logger:    logger.NewLogger(),
	}
}

type PresignRequest struct {
	Filename string `json:"filename" binding:"required"`
}

type PresignResponse struct {
	Key       string    `json:"key"`
	UploadURL string    `json:"upload_url"`
	PublicURL string    `json:"public_url"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Presign handles POST /attachments/presign
// @Summary Issue a presigned upload URL
// @Tags attachments
// @Accept json
// @Produce json
// @Param body body PresignRequest true "Upload metadata"
// @Success 200 {object} utils.APIResponse
// @Router /attachments/presign [post]
func (h *Handler) Presign(c *gin.Context) {
	var req PresignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	upload, err := h.presigner.Presign(req.Filename)
	if err != nil {
		h.logger.Errorw("failed to presign upload", "error", err)
		utils.ErrorResponseWithError(c, errors.NewInternalError("failed to create upload URL"))
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", PresignResponse{
		Key:       upload.Key,
		UploadURL: upload.UploadURL,
		PublicURL: upload.PublicURL,
		ExpiresAt: upload.ExpiresAt,
	})
}

// Upload handles PUT /uploads/:key. The request is authorized by the URL
// signature instead of a session.
func (h *Handler) Upload(c *gin.Context) {
	key := c.Param("key")

	if err := h.presigner.Verify(key, c.Query("expires"), c.Query("signature")); err != nil {
		h.logger.Warnw("rejected upload", "key", key, "error", err)
		utils.ErrorResponse(c, http.StatusForbidden, "invalid or expired upload URL")
		return
	}

	if err := h.store.Save(key, c.Request.Body); err != nil {
		h.logger.Errorw("failed to store upload", "key", key, "error", err)
		utils.ErrorResponseWithError(c, errors.NewUpstreamStorageError("failed to store upload"))
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Upload completed", gin.H{"key": key})
}

// Serve handles GET /uploads/:key and streams the stored object.
func (h *Handler) Serve(c *gin.Context) {
	key := c.Param("key")

	f, err := h.store.Open(key)
	if err != nil {
		utils.ErrorResponse(c, http.StatusNotFound, "attachment not found")
		return
	}
	defer f.Close()

	contentType := mime.TypeByExtension(filepath.Ext(key))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	c.Header("Content-Type", contentType)
	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, f); err != nil {
		h.logger.Warnw("failed to stream attachment", "key", key, "error", err)
	}
}
