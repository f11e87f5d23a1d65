package api

import (
	"errors"
	"log/slog"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/dutchcoders/go-clamd"
	"github.com/gin-gonic/gin"

	"jobboard/internal/banner"
)

// UploadHandler stores banner images through the configured storage backend,
// optionally streaming them through clamd first.
type UploadHandler struct {
	Backend   banner.Backend
	Logger    *slog.Logger
	ClamdAddr string
	MaxBytes  int64
}

// NewUploadHandler returns an UploadHandler with the default size cap.
func NewUploadHandler(backend banner.Backend, logger *slog.Logger, clamdAddr string) *UploadHandler {
	return &UploadHandler{
		Backend:   backend,
		Logger:    logger,
		ClamdAddr: clamdAddr,
		MaxBytes:  banner.MaxUploadBytes,
	}
}

// Upload accepts a single multipart file in field "banner" and responds with
// the opaque storage reference. Type and size are rejected before any bytes
// reach the backend.
func (h *UploadHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("banner")
	if err != nil {
		BadRequest(c, "No file uploaded")
		return
	}

	if file.Size > h.MaxBytes {
		TooLarge(c, "file too large")
		return
	}

	contentType := file.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		BadRequest(c, "Only image files are allowed!")
		return
	}

	if h.ClamdAddr != "" {
		clean, err := h.scan(file)
		if err != nil {
			h.Logger.Error("scan banner", slog.String("error", err.Error()))
			Internal(c, "failed to scan file")
			return
		}
		if !clean {
			BadRequest(c, "malicious file detected")
			return
		}
	}

	reader, err := file.Open()
	if err != nil {
		Internal(c, "failed to open file")
		return
	}
	defer reader.Close()

	ref, err := h.Backend.Store(c.Request.Context(), banner.Upload{
		Filename:    filepath.Base(file.Filename),
		ContentType: contentType,
		Size:        file.Size,
		Reader:      reader,
	})
	switch {
	case errors.Is(err, banner.ErrInvalidUpload):
		BadRequest(c, err.Error())
	case errors.Is(err, banner.ErrTooLarge):
		TooLarge(c, err.Error())
	case err != nil:
		h.Logger.Error("store banner", slog.String("error", err.Error()))
		Internal(c, "failed to upload file")
	default:
		c.JSON(http.StatusOK, gin.H{"filename": ref.String()})
	}
}

func (h *UploadHandler) scan(file *multipart.FileHeader) (bool, error) {
	reader, err := file.Open()
	if err != nil {
		return false, err
	}
	defer reader.Close()

	abort := make(chan bool)
	defer close(abort)

	results, err := clamd.NewClamd(h.ClamdAddr).ScanStream(reader, abort)
	if err != nil {
		return false, err
	}
	for result := range results {
		if result.Status != clamd.RES_OK {
			return false, nil
		}
	}
	return true, nil
}
