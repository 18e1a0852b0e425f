package handlers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/society-service/internal/api/dto"
	"github.com/spec-kit/society-service/internal/config"
	apperrors "github.com/spec-kit/society-service/pkg/util"
)

var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// UploadHandler stores listing images under the public uploads directory.
type UploadHandler struct {
	cfg config.UploadConfig
}

// NewUploadHandler constructs handler.
func NewUploadHandler(cfg config.UploadConfig) *UploadHandler {
	return &UploadHandler{cfg: cfg}
}

// Upload handles POST /upload. The file arrives in the multipart field
// "image"; only common image extensions up to the size cap are accepted.
func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	file, err := c.FormFile("image")
	if err != nil {
		return apperrors.NewValidationError("image file is required", nil)
	}
	if file.Size > h.cfg.MaxSizeBytes {
		return apperrors.NewValidationError("image exceeds size limit", map[string]any{
			"maxSizeBytes": h.cfg.MaxSizeBytes,
		})
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExts[ext] {
		return apperrors.NewValidationError("only jpg, jpeg, png, gif and webp images are allowed", nil)
	}
	contentType := file.Header.Get("Content-Type")
	if contentType != "" && !strings.HasPrefix(contentType, "image/") {
		return apperrors.NewValidationError("file is not an image", nil)
	}

	if err := os.MkdirAll(h.cfg.Dir, 0o755); err != nil {
		return apperrors.NewInternalError(err)
	}

	name := fmt.Sprintf("image-%d%s", time.Now().UnixMilli(), ext)
	if err := c.SaveFile(file, filepath.Join(h.cfg.Dir, name)); err != nil {
		return apperrors.NewInternalError(err)
	}

	return dataResponse(c, http.StatusCreated, dto.UploadResponse{
		ImageURL: h.cfg.PublicPath + "/" + name,
	})
}
