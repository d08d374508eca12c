package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"faktor/internal/service"
)

// CompanyHandler handles the singleton company profile endpoints.
type CompanyHandler struct {
	companyService service.CompanyService
}

// NewCompanyHandler creates a new CompanyHandler.
func NewCompanyHandler(companyService service.CompanyService) *CompanyHandler {
	return &CompanyHandler{companyService: companyService}
}

// Get handles GET /api/v1/company
// @Summary Get company profile
// @Description Get the seller profile shown on rendered invoices; defaults are returned until configured
// @Tags company
// @Produce json
// @Success 200 {object} Response{data=domain.CompanyInfo} "Company profile"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Security BearerAuth
// @Router /company [get]
func (h *CompanyHandler) Get(c *gin.Context) {
	info, err := h.companyService.Get(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, info)
}

// Update handles PUT /api/v1/company
// @Summary Update company profile
// @Description Update seller profile fields
// @Tags company
// @Accept json
// @Produce json
// @Param request body UpdateCompanyRequest true "Fields to update"
// @Success 200 {object} Response{data=domain.CompanyInfo} "Company profile updated"
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Security BearerAuth
// @Router /company [put]
func (h *CompanyHandler) Update(c *gin.Context) {
	var input service.UpdateCompanyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	info, err := h.companyService.Update(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, info)
}

// Reset handles POST /api/v1/company/reset
// @Summary Reset company profile
// @Description Restore the placeholder seller profile
// @Tags company
// @Produce json
// @Success 200 {object} Response{data=domain.CompanyInfo} "Company profile reset"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Security BearerAuth
// @Router /company/reset [post]
func (h *CompanyHandler) Reset(c *gin.Context) {
	info, err := h.companyService.Reset(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, info)
}
