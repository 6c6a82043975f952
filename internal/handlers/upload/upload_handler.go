package upload

import (
	"net/http"

	"zabudowy-service/internal/pkg/response"
	"zabudowy-service/internal/storage"

	"github.com/gin-gonic/gin"
)

type UploadHandler struct {
	store *storage.UploadStore
}

func NewUploadHandler(store *storage.UploadStore) *UploadHandler {
	return &UploadHandler{store: store}
}

// Upload accepts one multipart image under the "file" field and returns its
// public URL.
func (h *UploadHandler) Upload(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		response.ValidationError(c, "no file provided", err)
		return
	}

	url, err := h.store.Save(header)
	if err != nil {
		response.FromError(c, err, "failed to store file")
		return
	}

	response.Success(c, http.StatusCreated, "file uploaded", gin.H{"url": url})
}
