package handler

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"faktor/internal/domain"
	"faktor/internal/service"
)

// ImageHandler handles the logo and signature image slots.
type ImageHandler struct {
	imageService service.ImageService
}

// NewImageHandler creates a new ImageHandler.
func NewImageHandler(imageService service.ImageService) *ImageHandler {
	return &ImageHandler{imageService: imageService}
}

// Upload handles PUT /api/v1/images/:kind
// @Summary Upload an image
// @Description Upload a PNG into the logo or signature slot, replacing any previous image
// @Tags images
// @Accept multipart/form-data
// @Produce json
// @Param kind path string true "Image kind" Enums(logo, signature)
// @Param file formData file true "PNG image"
// @Success 200 {object} Response "Image uploaded"
// @Failure 400 {object} ErrorResponseBody "Not a PNG or invalid kind"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 413 {object} ErrorResponseBody "Image too large"
// @Security BearerAuth
// @Router /images/{kind} [put]
func (h *ImageHandler) Upload(c *gin.Context) {
	kind := domain.ImageKind(c.Param("kind"))

	fileHeader, err := c.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "file field is required")
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_FILE", "could not read uploaded file")
		return
	}
	defer func() { _ = f.Close() }()

	data, err := io.ReadAll(f)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_FILE", "could not read uploaded file")
		return
	}

	if err := h.imageService.Upload(c.Request.Context(), kind, data); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"kind": kind, "size": len(data)})
}

// Get handles GET /api/v1/images/:kind
// @Summary Download an image
// @Description Download the PNG stored in the logo or signature slot
// @Tags images
// @Produce image/png
// @Param kind path string true "Image kind" Enums(logo, signature)
// @Success 200 {file} binary "PNG image"
// @Failure 400 {object} ErrorResponseBody "Invalid kind"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 404 {object} ErrorResponseBody "Image not found"
// @Security BearerAuth
// @Router /images/{kind} [get]
func (h *ImageHandler) Get(c *gin.Context) {
	kind := domain.ImageKind(c.Param("kind"))

	data, err := h.imageService.Get(c.Request.Context(), kind)
	if err != nil {
		HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=%q", string(kind)+".png"))
	c.Data(http.StatusOK, "image/png", data)
}

// Delete handles DELETE /api/v1/images/:kind
// @Summary Delete an image
// @Description Clear the logo or signature slot; rendered invoices omit the section
// @Tags images
// @Produce json
// @Param kind path string true "Image kind" Enums(logo, signature)
// @Success 200 {object} Response "Image deleted"
// @Failure 400 {object} ErrorResponseBody "Invalid kind"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Security BearerAuth
// @Router /images/{kind} [delete]
func (h *ImageHandler) Delete(c *gin.Context) {
	kind := domain.ImageKind(c.Param("kind"))

	if err := h.imageService.Delete(c.Request.Context(), kind); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"deleted": true})
}
