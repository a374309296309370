package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func setupUploadRouter(handler *UploadHandler) *gin.Engine {
	r := gin.New()
	auth := r.Group("", injectUserID(1))
	auth.POST("/uploads/upload-factura", handler.UploadReceipt)
	return r
}

func TestUploadHandler_UploadReceipt(t *testing.T) {
	t.Run("stores the file and returns its public URL", func(t *testing.T) {
		store := &fakeObjectStore{}
		r := setupUploadRouter(NewUploadHandler(store))

		rec := doMultipart(r, "/uploads/upload-factura", nil, "file", "recibo.jpg", []byte("jpg-bytes"))

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["message"] != "Factura subida exitosamente" {
			t.Errorf("unexpected message: %v", result["message"])
		}

		if len(store.uploads) != 1 {
			t.Fatalf("expected 1 upload, got %d", len(store.uploads))
		}
		up := store.uploads[0]
		if !strings.HasSuffix(up.Key, "-recibo.jpg") {
			t.Errorf("expected key ending in -recibo.jpg, got %q", up.Key)
		}
		if up.ContentType != "image/jpeg" {
			t.Errorf("expected image/jpeg, got %q", up.ContentType)
		}
		fileURL, _ := result["file_url"].(string)
		if !strings.Contains(fileURL, up.Key) {
			t.Errorf("expected file_url to contain the key, got %q", fileURL)
		}
	})

	t.Run("returns 400 on missing file", func(t *testing.T) {
		r := setupUploadRouter(NewUploadHandler(&fakeObjectStore{}))

		rec := doMultipart(r, "/uploads/upload-factura", map[string]string{"other": "x"}, "", "", nil)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("rejects non-image files", func(t *testing.T) {
		store := &fakeObjectStore{}
		r := setupUploadRouter(NewUploadHandler(store))

		rec := doMultipart(r, "/uploads/upload-factura", nil, "file", "recibo.pdf", []byte("pdf-bytes"))

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "UNSUPPORTED_FILE_TYPE")
		if len(store.uploads) != 0 {
			t.Errorf("expected no uploads, got %d", len(store.uploads))
		}
	})

	t.Run("returns 500 with detail when storage fails", func(t *testing.T) {
		store := &fakeObjectStore{
			uploadFn: func(_ context.Context, _, _ string, _ []byte, _ string) error {
				return errors.New("bucket unavailable")
			},
		}
		r := setupUploadRouter(NewUploadHandler(store))

		rec := doMultipart(r, "/uploads/upload-factura", nil, "file", "recibo.png", []byte("png-bytes"))

		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		assertErrorCode(t, result, "STORAGE_UPLOAD_FAILED")
		errObj := result["error"].(map[string]interface{})
		if msg, _ := errObj["message"].(string); !strings.Contains(msg, "bucket unavailable") {
			t.Errorf("expected underlying storage message, got %q", msg)
		}
	})
}
