package handler

import (
	"github.com/google/uuid"
)

// Swagger type definitions for API documentation.
// These types are used by swag to generate OpenAPI documentation.

// --- Request Types ---

// RegisterRequest represents the registration request body.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required" example:"ali@example.com"`
	Password string `json:"password" binding:"required" example:"securepassword123"`
	FullName string `json:"full_name" binding:"required" example:"علی رضایی"`
}

// LoginRequest represents the login request body.
type LoginRequest struct {
	Email    string `json:"email" binding:"required" example:"ali@example.com"`
	Password string `json:"password" binding:"required" example:"securepassword123"`
}

// RefreshRequest represents the token refresh request body.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
}

// InvoiceItemRequest represents one line in an invoice request.
type InvoiceItemRequest struct {
	Description string  `json:"description" binding:"required" example:"طراحی وب‌سایت"`
	Quantity    float64 `json:"quantity" binding:"required" example:"1"`
	UnitPrice   float64 `json:"unit_price" example:"5000000"`
}

// CreateInvoiceRequest represents the create invoice request body.
type CreateInvoiceRequest struct {
	InvoiceNumber string               `json:"invoice_number" example:"INV-1001"`
	CustomerID    uuid.UUID            `json:"customer_id" binding:"required" example:"550e8400-e29b-41d4-a716-446655440000"`
	Date          string               `json:"date" example:"2025-03-21T00:00:00Z"`
	DueDate       string               `json:"due_date" example:"2025-04-20T00:00:00Z"`
	Items         []InvoiceItemRequest `json:"items"`
	Notes         string               `json:"notes" example:"پرداخت ظرف ۳۰ روز"`
	TaxRate       float64              `json:"tax_rate" example:"9"`
	DiscountRate  float64              `json:"discount_rate" example:"5"`
	Currency      string               `json:"currency" example:"toman"`
	AccountNumber string               `json:"account_number" example:"6037-9911-2233-4455"`
}

// UpdateInvoiceRequest represents the update invoice request body.
type UpdateInvoiceRequest struct {
	InvoiceNumber *string              `json:"invoice_number" example:"INV-1002"`
	Status        *string              `json:"status" example:"paid"`
	Date          *string              `json:"date" example:"2025-03-21T00:00:00Z"`
	DueDate       *string              `json:"due_date" example:"2025-04-20T00:00:00Z"`
	Items         []InvoiceItemRequest `json:"items"`
	Notes         *string              `json:"notes" example:"تسویه شد"`
	TaxRate       *float64             `json:"tax_rate" example:"9"`
	DiscountRate  *float64             `json:"discount_rate" example:"0"`
	Currency      *string              `json:"currency" example:"rial"`
	AccountNumber *string              `json:"account_number" example:"IR06 0120 0000 0000 1234 5678 90"`
}

// CreateCustomerRequest represents the create customer request body.
type CreateCustomerRequest struct {
	Name       string `json:"name" binding:"required" example:"شرکت نمونه"`
	Email      string `json:"email" example:"billing@customer.com"`
	Phone      string `json:"phone" example:"۰۲۱-۸۸۷۷۶۶۵۵"`
	Address    string `json:"address" example:"خیابان ولیعصر، پلاک ۱۰"`
	City       string `json:"city" example:"تهران"`
	PostalCode string `json:"postal_code" example:"1234567890"`
}

// UpdateCustomerRequest represents the update customer request body.
type UpdateCustomerRequest struct {
	Name       *string `json:"name" example:"شرکت نمونه"`
	Email      *string `json:"email" example:"billing@customer.com"`
	Phone      *string `json:"phone" example:"۰۲۱-۸۸۷۷۶۶۵۵"`
	Address    *string `json:"address" example:"خیابان ولیعصر، پلاک ۱۰"`
	City       *string `json:"city" example:"تهران"`
	PostalCode *string `json:"postal_code" example:"1234567890"`
}

// UpdateCompanyRequest represents the update company profile request body.
type UpdateCompanyRequest struct {
	Name    *string `json:"name" example:"شرکت فناوری پارس"`
	Address *string `json:"address" example:"خیابان آزادی، پلاک ۵"`
	City    *string `json:"city" example:"تهران، ایران"`
	Phone   *string `json:"phone" example:"تلفن: ۰۲۱۱۲۳۴۵۶۷۸"`
	Email   *string `json:"email" example:"info@pars-tech.ir"`
	Website *string `json:"website" example:"www.pars-tech.ir"`
}

// --- Generic Response Wrappers ---

// Response wraps a successful response with data.
type Response struct {
	Success bool        `json:"success" example:"true"`
	Data    interface{} `json:"data,omitempty"`
	Meta    *PagMeta    `json:"meta,omitempty"`
}

// ErrorResponseBody wraps an error response.
type ErrorResponseBody struct {
	Success bool      `json:"success" example:"false"`
	Error   *APIError `json:"error"`
}
