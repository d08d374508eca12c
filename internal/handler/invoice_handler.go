package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"faktor/internal/domain"
	"faktor/internal/service"
)

// InvoiceHandler handles invoice management endpoints.
type InvoiceHandler struct {
	invoiceService service.InvoiceService
	renderService  service.RenderService
	exportService  service.ExportService
}

// NewInvoiceHandler creates a new InvoiceHandler.
func NewInvoiceHandler(
	invoiceService service.InvoiceService,
	renderService service.RenderService,
	exportService service.ExportService,
) *InvoiceHandler {
	return &InvoiceHandler{
		invoiceService: invoiceService,
		renderService:  renderService,
		exportService:  exportService,
	}
}

// Create handles POST /api/v1/invoices
// @Summary Create an invoice
// @Description Create a new invoice; the customer is snapshotted at creation time
// @Tags invoices
// @Accept json
// @Produce json
// @Param request body CreateInvoiceRequest true "Invoice details"
// @Success 201 {object} Response{data=domain.Invoice} "Invoice created"
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 404 {object} ErrorResponseBody "Customer not found"
// @Failure 409 {object} ErrorResponseBody "Invoice number already exists"
// @Security BearerAuth
// @Router /invoices [post]
func (h *InvoiceHandler) Create(c *gin.Context) {
	var input service.CreateInvoiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	inv, err := h.invoiceService.Create(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, inv)
}

// List handles GET /api/v1/invoices
// @Summary List invoices
// @Description List invoices with optional search and sorting
// @Tags invoices
// @Produce json
// @Param q query string false "Search in number, customer name, notes and item descriptions"
// @Param sort query string false "Sort option" Enums(date_newest, date_oldest, invoice_number, customer_name, total_amount)
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination (max 100)" default(20)
// @Success 200 {object} Response{data=[]domain.Invoice,meta=PagMeta} "List of invoices"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Security BearerAuth
// @Router /invoices [get]
func (h *InvoiceHandler) List(c *gin.Context) {
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	input := service.ListInvoicesInput{
		Query:  c.Query("q"),
		Sort:   domain.InvoiceSortOption(c.Query("sort")),
		Offset: offset,
		Limit:  limit,
	}

	invoices, total, err := h.invoiceService.List(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, invoices, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/invoices/:id
// @Summary Get invoice by ID
// @Description Get invoice details including items and the customer snapshot
// @Tags invoices
// @Produce json
// @Param id path string true "Invoice ID (UUID)"
// @Success 200 {object} Response{data=domain.Invoice} "Invoice details"
// @Failure 400 {object} ErrorResponseBody "Invalid ID"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 404 {object} ErrorResponseBody "Invoice not found"
// @Security BearerAuth
// @Router /invoices/{id} [get]
func (h *InvoiceHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid invoice ID")
		return
	}

	inv, err := h.invoiceService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, inv)
}

// Update handles PUT /api/v1/invoices/:id
// @Summary Update an invoice
// @Description Update invoice fields; a non-null items array replaces the item list
// @Tags invoices
// @Accept json
// @Produce json
// @Param id path string true "Invoice ID (UUID)"
// @Param request body UpdateInvoiceRequest true "Fields to update"
// @Success 200 {object} Response{data=domain.Invoice} "Invoice updated"
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 404 {object} ErrorResponseBody "Invoice not found"
// @Failure 409 {object} ErrorResponseBody "Invoice number already exists"
// @Security BearerAuth
// @Router /invoices/{id} [put]
func (h *InvoiceHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid invoice ID")
		return
	}

	var input service.UpdateInvoiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	inv, err := h.invoiceService.Update(c.Request.Context(), id, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, inv)
}

// Delete handles DELETE /api/v1/invoices/:id
// @Summary Delete an invoice
// @Description Delete an invoice and its items
// @Tags invoices
// @Produce json
// @Param id path string true "Invoice ID (UUID)"
// @Success 200 {object} Response "Invoice deleted"
// @Failure 400 {object} ErrorResponseBody "Invalid ID"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 404 {object} ErrorResponseBody "Invoice not found"
// @Security BearerAuth
// @Router /invoices/{id} [delete]
func (h *InvoiceHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid invoice ID")
		return
	}

	if err := h.invoiceService.Delete(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"deleted": true})
}

// Duplicate handles POST /api/v1/invoices/:id/duplicate
// @Summary Duplicate an invoice
// @Description Clone an invoice under a fresh number with today's date
// @Tags invoices
// @Produce json
// @Param id path string true "Invoice ID (UUID)"
// @Success 201 {object} Response{data=domain.Invoice} "Invoice duplicated"
// @Failure 400 {object} ErrorResponseBody "Invalid ID"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 404 {object} ErrorResponseBody "Invoice not found"
// @Security BearerAuth
// @Router /invoices/{id}/duplicate [post]
func (h *InvoiceHandler) Duplicate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid invoice ID")
		return
	}

	inv, err := h.invoiceService.Duplicate(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, inv)
}

// Stats handles GET /api/v1/invoices/stats
// @Summary Invoice statistics
// @Description Aggregate counts and revenue over the invoice book
// @Tags invoices
// @Produce json
// @Success 200 {object} Response{data=domain.InvoiceStats} "Statistics"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Security BearerAuth
// @Router /invoices/stats [get]
func (h *InvoiceHandler) Stats(c *gin.Context) {
	stats, err := h.invoiceService.Stats(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, stats)
}

// RenderPDF handles GET /api/v1/invoices/:id/pdf
// @Summary Render invoice PDF
// @Description Render the invoice as a single-page A4 PDF
// @Tags invoices
// @Produce application/pdf
// @Param id path string true "Invoice ID (UUID)"
// @Success 200 {file} binary "PDF document"
// @Failure 400 {object} ErrorResponseBody "Invalid ID"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 404 {object} ErrorResponseBody "Invoice not found"
// @Failure 500 {object} ErrorResponseBody "Render failed"
// @Security BearerAuth
// @Router /invoices/{id}/pdf [get]
func (h *InvoiceHandler) RenderPDF(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid invoice ID")
		return
	}

	pdf, filename, err := h.renderService.RenderPDF(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// Send handles POST /api/v1/invoices/:id/send
// @Summary Email invoice to customer
// @Description Render the invoice and email it to the customer as a PDF attachment
// @Tags invoices
// @Produce json
// @Param id path string true "Invoice ID (UUID)"
// @Success 200 {object} Response "Invoice sent"
// @Failure 400 {object} ErrorResponseBody "Customer has no email"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 404 {object} ErrorResponseBody "Invoice not found"
// @Security BearerAuth
// @Router /invoices/{id}/send [post]
func (h *InvoiceHandler) Send(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid invoice ID")
		return
	}

	if err := h.renderService.SendInvoice(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"sent": true})
}

// ExportCSV handles GET /api/v1/invoices/export/csv
// @Summary Export invoices as CSV
// @Description Export all matching invoices as UTF-8 CSV with a BOM
// @Tags invoices
// @Produce text/csv
// @Param q query string false "Search filter"
// @Param sort query string false "Sort option"
// @Success 200 {file} binary "CSV file"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Security BearerAuth
// @Router /invoices/export/csv [get]
func (h *InvoiceHandler) ExportCSV(c *gin.Context) {
	data, filename, err := h.exportService.ExportCSV(
		c.Request.Context(), c.Query("q"), domain.InvoiceSortOption(c.Query("sort")))
	if err != nil {
		HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}

// ExportXLSX handles GET /api/v1/invoices/export/xlsx
// @Summary Export invoices as XLSX
// @Description Export all matching invoices as a single-sheet workbook
// @Tags invoices
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param q query string false "Search filter"
// @Param sort query string false "Sort option"
// @Success 200 {file} binary "XLSX file"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Security BearerAuth
// @Router /invoices/export/xlsx [get]
func (h *InvoiceHandler) ExportXLSX(c *gin.Context) {
	data, filename, err := h.exportService.ExportXLSX(
		c.Request.Context(), c.Query("q"), domain.InvoiceSortOption(c.Query("sort")))
	if err != nil {
		HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
