package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"faktor/internal/domain"
	"faktor/internal/service"
	"faktor/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type invoiceHandlerFixture struct {
	invoiceSvc *mocks.MockInvoiceService
	renderSvc  *mocks.MockRenderService
	exportSvc  *mocks.MockExportService
	router     *gin.Engine
}

func newInvoiceHandlerFixture() *invoiceHandlerFixture {
	f := &invoiceHandlerFixture{
		invoiceSvc: new(mocks.MockInvoiceService),
		renderSvc:  new(mocks.MockRenderService),
		exportSvc:  new(mocks.MockExportService),
	}
	h := NewInvoiceHandler(f.invoiceSvc, f.renderSvc, f.exportSvc)

	f.router = gin.New()
	g := f.router.Group("/api/v1/invoices")
	g.POST("", h.Create)
	g.GET("", h.List)
	g.GET("/stats", h.Stats)
	g.GET("/export/csv", h.ExportCSV)
	g.GET("/export/xlsx", h.ExportXLSX)
	g.GET("/:id", h.GetByID)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
	g.POST("/:id/duplicate", h.Duplicate)
	g.GET("/:id/pdf", h.RenderPDF)
	g.POST("/:id/send", h.Send)
	return f
}

func (f *invoiceHandlerFixture) do(method, path string, body []byte) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) APIResponse {
	t.Helper()
	var resp APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestInvoiceHandler_Create(t *testing.T) {
	f := newInvoiceHandlerFixture()

	customerID := uuid.New()
	inv := &domain.Invoice{ID: uuid.New(), InvoiceNumber: "INV-1234"}
	f.invoiceSvc.On("Create", mock.Anything, mock.MatchedBy(func(in service.CreateInvoiceInput) bool {
		return in.CustomerID == customerID
	})).Return(inv, nil)

	body, _ := json.Marshal(gin.H{
		"customer_id": customerID,
		"items": []gin.H{
			{"description": "طراحی وب‌سایت", "quantity": 1, "unit_price": 5000000},
		},
	})
	w := f.do(http.MethodPost, "/api/v1/invoices", body)

	assert.Equal(t, http.StatusCreated, w.Code)
	resp := decodeEnvelope(t, w)
	assert.True(t, resp.Success)
	f.invoiceSvc.AssertExpectations(t)
}

func TestInvoiceHandler_Create_ValidationError(t *testing.T) {
	f := newInvoiceHandlerFixture()

	// customer_id is required
	w := f.do(http.MethodPost, "/api/v1/invoices", []byte(`{}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeEnvelope(t, w)
	assert.False(t, resp.Success)
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
	f.invoiceSvc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestInvoiceHandler_Create_UnknownCustomer(t *testing.T) {
	f := newInvoiceHandlerFixture()

	f.invoiceSvc.On("Create", mock.Anything, mock.Anything).Return(nil, domain.ErrNotFound)

	body, _ := json.Marshal(gin.H{"customer_id": uuid.New()})
	w := f.do(http.MethodPost, "/api/v1/invoices", body)

	assert.Equal(t, http.StatusNotFound, w.Code)
	resp := decodeEnvelope(t, w)
	assert.Equal(t, "NOT_FOUND", resp.Error.Code)
}

func TestInvoiceHandler_List_ClampsPagination(t *testing.T) {
	f := newInvoiceHandlerFixture()

	f.invoiceSvc.On("List", mock.Anything, service.ListInvoicesInput{
		Query:  "رضایی",
		Sort:   domain.SortTotalAmount,
		Offset: 0,
		Limit:  20,
	}).Return([]domain.Invoice{}, 0, nil)

	// limit above the cap and a negative offset both fall back to defaults
	w := f.do(http.MethodGet, "/api/v1/invoices?q=رضایی&sort=total_amount&limit=500&offset=-3", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeEnvelope(t, w)
	require.NotNil(t, resp.Meta)
	assert.Equal(t, 20, resp.Meta.Limit)
	assert.Equal(t, 0, resp.Meta.Offset)
	f.invoiceSvc.AssertExpectations(t)
}

func TestInvoiceHandler_GetByID_InvalidID(t *testing.T) {
	f := newInvoiceHandlerFixture()

	w := f.do(http.MethodGet, "/api/v1/invoices/not-a-uuid", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeEnvelope(t, w)
	assert.Equal(t, "INVALID_ID", resp.Error.Code)
}

func TestInvoiceHandler_Update_DuplicateNumber(t *testing.T) {
	f := newInvoiceHandlerFixture()

	id := uuid.New()
	f.invoiceSvc.On("Update", mock.Anything, id, mock.Anything).
		Return(nil, domain.ErrDuplicateInvoiceNumber)

	body, _ := json.Marshal(gin.H{"invoice_number": "INV-1111"})
	w := f.do(http.MethodPut, "/api/v1/invoices/"+id.String(), body)

	assert.Equal(t, http.StatusConflict, w.Code)
	resp := decodeEnvelope(t, w)
	assert.Equal(t, "DUPLICATE_INVOICE_NUMBER", resp.Error.Code)
}

func TestInvoiceHandler_Delete(t *testing.T) {
	f := newInvoiceHandlerFixture()

	id := uuid.New()
	f.invoiceSvc.On("Delete", mock.Anything, id).Return(nil)

	w := f.do(http.MethodDelete, "/api/v1/invoices/"+id.String(), nil)

	assert.Equal(t, http.StatusOK, w.Code)
	f.invoiceSvc.AssertExpectations(t)
}

func TestInvoiceHandler_Duplicate(t *testing.T) {
	f := newInvoiceHandlerFixture()

	id := uuid.New()
	dup := &domain.Invoice{ID: uuid.New(), InvoiceNumber: "INV-9876", Status: domain.InvoiceStatusDraft}
	f.invoiceSvc.On("Duplicate", mock.Anything, id).Return(dup, nil)

	w := f.do(http.MethodPost, "/api/v1/invoices/"+id.String()+"/duplicate", nil)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestInvoiceHandler_Stats(t *testing.T) {
	f := newInvoiceHandlerFixture()

	f.invoiceSvc.On("Stats", mock.Anything).
		Return(&domain.InvoiceStats{TotalCount: 12, TotalRevenue: 42000000, CountThisMonth: 3}, nil)

	w := f.do(http.MethodGet, "/api/v1/invoices/stats", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total_count":12`)
}

func TestInvoiceHandler_RenderPDF(t *testing.T) {
	f := newInvoiceHandlerFixture()

	id := uuid.New()
	f.renderSvc.On("RenderPDF", mock.Anything, id).
		Return([]byte("%PDF-1.4 fake"), "Invoice_INV-1234.pdf", nil)

	w := f.do(http.MethodGet, "/api/v1/invoices/"+id.String()+"/pdf", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="Invoice_INV-1234.pdf"`, w.Header().Get("Content-Disposition"))
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")))
}

func TestInvoiceHandler_RenderPDF_Failure(t *testing.T) {
	f := newInvoiceHandlerFixture()

	id := uuid.New()
	f.renderSvc.On("RenderPDF", mock.Anything, id).Return(nil, "", domain.ErrRenderFailed)

	w := f.do(http.MethodGet, "/api/v1/invoices/"+id.String()+"/pdf", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	resp := decodeEnvelope(t, w)
	assert.Equal(t, "RENDER_FAILED", resp.Error.Code)
}

func TestInvoiceHandler_Send_MissingEmail(t *testing.T) {
	f := newInvoiceHandlerFixture()

	id := uuid.New()
	f.renderSvc.On("SendInvoice", mock.Anything, id).Return(domain.ErrCustomerMissingEmail)

	w := f.do(http.MethodPost, "/api/v1/invoices/"+id.String()+"/send", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeEnvelope(t, w)
	assert.Equal(t, "CUSTOMER_MISSING_EMAIL", resp.Error.Code)
}

func TestInvoiceHandler_ExportCSV(t *testing.T) {
	f := newInvoiceHandlerFixture()

	f.exportSvc.On("ExportCSV", mock.Anything, "", domain.InvoiceSortOption("")).
		Return([]byte("Invoice Number\n"), "invoices_2025-06-01.csv", nil)

	w := f.do(http.MethodGet, "/api/v1/invoices/export/csv", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="invoices_2025-06-01.csv"`, w.Header().Get("Content-Disposition"))
}

func TestInvoiceHandler_ExportXLSX(t *testing.T) {
	f := newInvoiceHandlerFixture()

	f.exportSvc.On("ExportXLSX", mock.Anything, "paid", domain.SortDateOldest).
		Return([]byte("PK fake"), "invoices_2025-06-01.xlsx", nil)

	w := f.do(http.MethodGet, "/api/v1/invoices/export/xlsx?q=paid&sort=date_oldest", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		w.Header().Get("Content-Type"))
}
