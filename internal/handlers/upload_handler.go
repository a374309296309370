package handlers

import (
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Danskers/Finances-API/internal/config"
	apperrors "github.com/Danskers/Finances-API/internal/errors"
	"github.com/Danskers/Finances-API/internal/storage"
)

// imageContentTypes maps the file extensions accepted by the standalone
// receipt upload endpoint to their content types. Unlike transaction
// receipts, this endpoint takes images only.
var imageContentTypes = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
}

// UploadHandler handles standalone receipt uploads.
type UploadHandler struct {
	store storage.ObjectStore
}

// NewUploadHandler creates a new UploadHandler.
func NewUploadHandler(store storage.ObjectStore) *UploadHandler {
	return &UploadHandler{store: store}
}

// UploadReceipt stores a receipt image and returns its public URL
// without attaching it to any transaction.
// @Summary     Upload a receipt image
// @Tags        uploads
// @Accept      multipart/form-data
// @Produce     json
// @Param       file formData file true "Receipt image (PNG or JPG)"
// @Success     200 {object} map[string]interface{} "Public URL of the stored file"
// @Failure     400 {object} ErrorResponse "Unsupported file type"
// @Failure     500 {object} ErrorResponse "Upload failed"
// @Router      /uploads/upload-factura [post]
func (h *UploadHandler) UploadReceipt(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Falta el archivo"))
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	contentType, ok := imageContentTypes[ext]
	if !ok {
		respondWithError(c, apperrors.ErrUnsupportedFileType)
		return
	}

	src, err := file.Open()
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrStorageUpload, err))
		return
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrStorageUpload, err))
		return
	}

	cfg := config.Get()
	key := fmt.Sprintf("%s-%s", uuid.New().String(), file.Filename)
	if err := h.store.Upload(c.Request.Context(), cfg.SupabaseBucket, key, data, contentType); err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.WithMessage(apperrors.ErrStorageUpload, err.Error()), err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Factura subida exitosamente",
		"file_url": h.store.PublicURL(cfg.SupabaseBucket, key),
	})
}
