package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"github.com/rubyautoparts/autoparts-catalog-service/internal/core/domain"
	"github.com/rubyautoparts/autoparts-catalog-service/internal/core/ports"
)

type PartHandler struct {
	partService ports.PartService
	logger      ports.LoggerPort
	metrics     ports.MetricsPort
	uploadDir   string
}

func NewPartHandler(
	partService ports.PartService,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
	uploadDir string,
) *PartHandler {
	return &PartHandler{
		partService: partService,
		logger:      logger,
		metrics:     metrics,
		uploadDir:   uploadDir,
	}
}

// @Summary List parts
// @Description List catalog parts with optional filters and sorting
// @Tags parts
// @Produce json
// @Param category query string false "Exact category tag" example:"engine"
// @Param carBrand query string false "Car brand substring (case-insensitive)" example:"Toyo"
// @Param partBrand query string false "Exact part brand" example:"Bosch"
// @Param search query string false "Substring search across name, number and brands" example:"bosch"
// @Param sortBy query string false "Sort token, field-direction" example:"carBrand-Desc"
// @Success 200 {object} successResponse "Matching parts"
// @Failure 500 {object} errorResponse "Store failure"
// @Router /api/parts [get]
func (h *PartHandler) ListParts(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	filter := domain.PartFilter{
		Category:  c.Query("category"),
		CarBrand:  c.Query("carBrand"),
		PartBrand: c.Query("partBrand"),
		Search:    c.Query("search"),
	}

	parts, err := h.partService.ListParts(c.Request.Context(), filter, c.Query("sortBy"))
	if err != nil {
		newErrorResponse(c, http.StatusInternalServerError, "Error fetching parts", err)
		return
	}

	newListResponse(c, http.StatusOK, len(parts), parts)
}

// @Summary List parts by category
// @Description List all parts belonging to one category
// @Tags parts
// @Produce json
// @Param category path string true "Category tag" example:"brake"
// @Success 200 {object} successResponse "Matching parts"
// @Failure 500 {object} errorResponse "Store failure"
// @Router /api/parts/category/{category} [get]
func (h *PartHandler) ListPartsByCategory(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	filter := domain.PartFilter{Category: c.Param("category")}

	parts, err := h.partService.ListParts(c.Request.Context(), filter, "")
	if err != nil {
		newErrorResponse(c, http.StatusInternalServerError, "Error fetching parts by category", err)
		return
	}

	newListResponse(c, http.StatusOK, len(parts), parts)
}

// @Summary Get part
// @Description Get a single part by its ID
// @Tags parts
// @Produce json
// @Param id path string true "Part ID" example:"3fa85f64-5717-4562-b3fc-2c963f66afa6"
// @Success 200 {object} successResponse "Part found"
// @Failure 404 {object} errorResponse "Part not found"
// @Router /api/parts/{id} [get]
func (h *PartHandler) GetPart(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	id := c.Param("id")

	part, err := h.partService.GetPartByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrPartNotFound) {
			newErrorResponse(c, http.StatusNotFound, "Part not found")
			return
		}
		newErrorResponse(c, http.StatusInternalServerError, "Error fetching part", err)
		return
	}

	newDataResponse(c, http.StatusOK, "", part)
}

// @Summary Create part
// @Description Create a new part from a multipart form, with an optional image attachment
// @Tags parts
// @Accept mpfd
// @Produce json
// @Param category formData string true "Category tag"
// @Param carBrand formData string true "Car brand"
// @Param partBrand formData string true "Part brand"
// @Param partNumber formData string true "Globally unique part number"
// @Param partName formData string true "Part name"
// @Param description formData string false "Description"
// @Param specifications formData string false "Specifications"
// @Param price formData number false "Non-negative price"
// @Param imageUrl formData string false "Externally hosted image URL"
// @Param image formData file false "Image file"
// @Success 201 {object} successResponse "Part created"
// @Failure 400 {object} errorResponse "Validation or duplicate error"
// @Router /api/parts [post]
func (h *PartHandler) CreatePart(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	imagePath, cleanup, err := saveTempUpload(c, "image", h.uploadDir)
	if err != nil {
		newErrorResponse(c, http.StatusBadRequest, "Invalid image attachment", err)
		return
	}
	defer cleanup()

	price, ok := parsePrice(c)
	if !ok {
		return
	}

	in := domain.NewPart{
		Category:       domain.Category(c.PostForm("category")),
		CarBrand:       c.PostForm("carBrand"),
		PartBrand:      c.PostForm("partBrand"),
		PartNumber:     c.PostForm("partNumber"),
		PartName:       c.PostForm("partName"),
		Description:    optionalString(c, "description"),
		Specifications: optionalString(c, "specifications"),
		Price:          price,
		ImageURL:       optionalString(c, "imageUrl"),
		ImageFile:      imagePath,
	}

	created, err := h.partService.CreatePart(c.Request.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicatePartNumber):
			newErrorResponse(c, http.StatusBadRequest, "Part number already exists")
		case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrInvalidCategory):
			newErrorResponse(c, http.StatusBadRequest, "Validation error", err)
		default:
			newErrorResponse(c, http.StatusInternalServerError, "Error creating part", err)
		}
		return
	}

	newDataResponse(c, http.StatusCreated, "Part created successfully", created)
}

// @Summary Update part
// @Description Update a part. Description, specifications and price are overwritten with the supplied value or cleared when absent; identity fields change only when supplied; a new image attachment wins over imageUrl, and omitting both keeps the stored image.
// @Tags parts
// @Accept mpfd
// @Produce json
// @Param id path string true "Part ID"
// @Param category formData string false "Category tag"
// @Param carBrand formData string false "Car brand"
// @Param partBrand formData string false "Part brand"
// @Param partNumber formData string false "Part number"
// @Param partName formData string false "Part name"
// @Param description formData string false "Description"
// @Param specifications formData string false "Specifications"
// @Param price formData number false "Non-negative price"
// @Param imageUrl formData string false "Externally hosted image URL"
// @Param image formData file false "Image file"
// @Success 200 {object} successResponse "Part updated"
// @Failure 400 {object} errorResponse "Validation or duplicate error"
// @Failure 404 {object} errorResponse "Part not found"
// @Router /api/parts/{id} [put]
func (h *PartHandler) UpdatePart(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	id := c.Param("id")

	imagePath, cleanup, err := saveTempUpload(c, "image", h.uploadDir)
	if err != nil {
		newErrorResponse(c, http.StatusBadRequest, "Invalid image attachment", err)
		return
	}
	defer cleanup()

	price, ok := parsePrice(c)
	if !ok {
		return
	}

	in := domain.PartUpdate{
		CarBrand:       optionalString(c, "carBrand"),
		PartBrand:      optionalString(c, "partBrand"),
		PartNumber:     optionalString(c, "partNumber"),
		PartName:       optionalString(c, "partName"),
		Description:    optionalString(c, "description"),
		Specifications: optionalString(c, "specifications"),
		Price:          price,
		ImageURL:       optionalString(c, "imageUrl"),
		ImageFile:      imagePath,
	}
	if v := strings.TrimSpace(c.PostForm("category")); v != "" {
		in.Category = lo.ToPtr(domain.Category(v))
	}

	updated, err := h.partService.UpdatePart(c.Request.Context(), id, in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrPartNotFound):
			newErrorResponse(c, http.StatusNotFound, "Part not found")
		case errors.Is(err, domain.ErrDuplicatePartNumber):
			newErrorResponse(c, http.StatusBadRequest, "Part number already exists")
		case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrInvalidCategory):
			newErrorResponse(c, http.StatusBadRequest, "Validation error", err)
		default:
			newErrorResponse(c, http.StatusInternalServerError, "Error updating part", err)
		}
		return
	}

	newDataResponse(c, http.StatusOK, "Part updated successfully", updated)
}

// @Summary Delete part
// @Description Delete a part; its hosted image is removed best effort
// @Tags parts
// @Produce json
// @Param id path string true "Part ID"
// @Success 200 {object} successResponse "Part deleted"
// @Failure 404 {object} errorResponse "Part not found"
// @Router /api/parts/{id} [delete]
func (h *PartHandler) DeletePart(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	id := c.Param("id")

	if err := h.partService.DeletePart(c.Request.Context(), id); err != nil {
		if errors.Is(err, domain.ErrPartNotFound) {
			newErrorResponse(c, http.StatusNotFound, "Part not found")
			return
		}
		newErrorResponse(c, http.StatusInternalServerError, "Error deleting part", err)
		return
	}

	newDataResponse(c, http.StatusOK, "Part deleted successfully", nil)
}

// @Summary Catalog statistics
// @Description Totals for parts, parts with images, distinct categories and distinct car brands
// @Tags parts
// @Produce json
// @Success 200 {object} successResponse "Statistics summary"
// @Failure 500 {object} errorResponse "Store failure"
// @Router /api/parts/stats/summary [get]
func (h *PartHandler) GetStats(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	stats, err := h.partService.Stats(c.Request.Context())
	if err != nil {
		newErrorResponse(c, http.StatusInternalServerError, "Error fetching statistics", err)
		return
	}

	newDataResponse(c, http.StatusOK, "", stats)
}

func optionalString(c *gin.Context, key string) *string {
	v := strings.TrimSpace(c.PostForm(key))
	if v == "" {
		return nil
	}
	return lo.ToPtr(v)
}

// parsePrice reads the optional price form field; a malformed value answers
// the request itself and reports false.
func parsePrice(c *gin.Context) (*float64, bool) {
	v := strings.TrimSpace(c.PostForm("price"))
	if v == "" {
		return nil, true
	}
	price, err := strconv.ParseFloat(v, 64)
	if err != nil {
		newErrorResponse(c, http.StatusBadRequest, "Validation error", err)
		return nil, false
	}
	return lo.ToPtr(price), true
}
