package http

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/rubyautoparts/autoparts-catalog-service/internal/core/domain"
	"github.com/rubyautoparts/autoparts-catalog-service/internal/core/ports"
)

const maxBatchUploads = 10

type UploadHandler struct {
	uploadService ports.UploadService
	logger        ports.LoggerPort
	metrics       ports.MetricsPort
	uploadDir     string
}

func NewUploadHandler(
	uploadService ports.UploadService,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
	uploadDir string,
) *UploadHandler {
	return &UploadHandler{
		uploadService: uploadService,
		logger:        logger,
		metrics:       metrics,
		uploadDir:     uploadDir,
	}
}

// @Summary Upload image
// @Description Upload a single image to the media host, independent of any part
// @Tags upload
// @Accept mpfd
// @Produce json
// @Param image formData file true "Image file"
// @Success 200 {object} successResponse "Hosted asset"
// @Failure 400 {object} errorResponse "No image file provided"
// @Failure 500 {object} errorResponse "Upload failure"
// @Router /api/upload/image [post]
func (h *UploadHandler) UploadImage(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	file, err := c.FormFile("image")
	if err != nil {
		newErrorResponse(c, http.StatusBadRequest, "No image file provided")
		return
	}

	path, cleanup, err := storeUploadedFile(c, file, h.uploadDir)
	if err != nil {
		newErrorResponse(c, http.StatusInternalServerError, "Error saving uploaded file", err)
		return
	}
	defer cleanup()

	asset, err := h.uploadService.UploadImage(c.Request.Context(), domain.UploadFile{
		Path:         path,
		OriginalName: file.Filename,
	})
	if err != nil {
		newErrorResponse(c, http.StatusInternalServerError, "Error uploading image", err)
		return
	}

	newDataResponse(c, http.StatusOK, "Image uploaded successfully", asset)
}

// @Summary Upload images
// @Description Upload up to 10 images; each file is processed independently and failures are skipped
// @Tags upload
// @Accept mpfd
// @Produce json
// @Param images formData file true "Image files"
// @Success 200 {object} successResponse "Hosted assets"
// @Failure 400 {object} errorResponse "No image files provided"
// @Router /api/upload/images [post]
func (h *UploadHandler) UploadImages(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	form, err := c.MultipartForm()
	if err != nil || len(form.File["images"]) == 0 {
		newErrorResponse(c, http.StatusBadRequest, "No image files provided")
		return
	}

	headers := form.File["images"]
	if len(headers) > maxBatchUploads {
		newErrorResponse(c, http.StatusBadRequest,
			fmt.Sprintf("A maximum of %d images can be uploaded at once", maxBatchUploads))
		return
	}

	files := make([]domain.UploadFile, 0, len(headers))
	for _, header := range headers {
		path, cleanup, err := storeUploadedFile(c, header, h.uploadDir)
		if err != nil {
			h.logger.Warn("Skipping unsaveable upload", map[string]interface{}{
				"error":    err.Error(),
				"filename": header.Filename,
			})
			continue
		}
		defer cleanup()
		files = append(files, domain.UploadFile{Path: path, OriginalName: header.Filename})
	}

	assets := h.uploadService.UploadImages(c.Request.Context(), files)

	count := len(assets)
	c.JSON(http.StatusOK, successResponse{
		Success: true,
		Message: fmt.Sprintf("%d image(s) uploaded successfully", count),
		Count:   &count,
		Data:    assets,
	})
}

// saveTempUpload stores the named optional form file in dir. The returned
// cleanup removes the temporary file and is safe to defer on every path;
// a request without that file yields an empty path and a no-op cleanup.
func saveTempUpload(c *gin.Context, field, dir string) (string, func(), error) {
	file, err := c.FormFile(field)
	if err != nil {
		return "", func() {}, nil
	}
	return storeUploadedFile(c, file, dir)
}

func storeUploadedFile(c *gin.Context, file *multipart.FileHeader, dir string) (string, func(), error) {
	name := uuid.NewString() + filepath.Ext(file.Filename)
	path := filepath.Join(dir, name)

	if err := c.SaveUploadedFile(file, path); err != nil {
		return "", func() {}, fmt.Errorf("save uploaded file: %w", err)
	}

	return path, func() { _ = os.Remove(path) }, nil
}
