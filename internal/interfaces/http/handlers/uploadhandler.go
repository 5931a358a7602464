package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"smartincident/internal/infrastructure/storage"
	"smartincident/internal/shared/logger"
	"smartincident/internal/shared/utils"
)

// FileStore persists uploaded content and reports its public URL.
type FileStore interface {
	Save(originalName string, r io.Reader) (*storage.StoredFile, error)
}

type UploadHandler struct {
	store  FileStore
	logger logger.Interface
}

func NewUploadHandler(store FileStore, logger logger.Interface) *UploadHandler {
	return &UploadHandler{store: store, logger: logger}
}

// Upload accepts a multipart "file" field and stores it under the public
// uploads directory. Callers reference the returned URL when creating
// incidents or comments out of band.
func (h *UploadHandler) Upload(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "missing file field")
		return
	}
	defer file.Close()

	stored, err := h.store.Save(header.Filename, file)
	if err != nil {
		h.logger.Errorw("failed to store upload", "file", header.Filename, "error", err)
		utils.ErrorResponse(c, http.StatusInternalServerError, "failed to store file")
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"url":  stored.URL,
		"size": stored.Size,
	})
}
