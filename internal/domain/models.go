package domain

import (
	"time"

	"github.com/google/uuid"
)

// CompanyInfo is the issuing company's profile. It is a singleton: exactly
// one row exists and updates overwrite it in place.
type CompanyInfo struct {
	Name      string    `db:"name" json:"name"`
	Address   string    `db:"address" json:"address"`
	City      string    `db:"city" json:"city"`
	Phone     string    `db:"phone" json:"phone"`
	Email     string    `db:"email" json:"email"`
	Website   string    `db:"website" json:"website"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// DefaultCompanyInfo returns the placeholder profile used until the company
// configures its own details.
func DefaultCompanyInfo() *CompanyInfo {
	return &CompanyInfo{
		Name:    "شرکت شما",
		Address: "آدرس شرکت",
		City:    "شهر، کشور",
		Phone:   "تلفن: ۰۹۱۲۳۴۵۶۷۸۹",
		Email:   "info@company.com",
		Website: "www.company.com",
	}
}

// Customer represents a billable party.
type Customer struct {
	ID         uuid.UUID `db:"id" json:"id"`
	Name       string    `db:"name" json:"name"`
	Email      string    `db:"email" json:"email"`
	Phone      string    `db:"phone" json:"phone"`
	Address    string    `db:"address" json:"address"`
	City       string    `db:"city" json:"city"`
	PostalCode string    `db:"postal_code" json:"postal_code"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`
}

// InvoiceItem is one billable row on an invoice.
type InvoiceItem struct {
	ID          uuid.UUID `db:"id" json:"id"`
	InvoiceID   uuid.UUID `db:"invoice_id" json:"invoice_id"`
	Position    int       `db:"position" json:"position"`
	Description string    `db:"description" json:"description"`
	Quantity    float64   `db:"quantity" json:"quantity"`
	UnitPrice   float64   `db:"unit_price" json:"unit_price"`
}

// Total returns quantity × unit price. It is derived, never stored.
func (i *InvoiceItem) Total() float64 {
	return i.Quantity * i.UnitPrice
}

// Invoice is the billing document aggregate. The customer is a snapshot
// copied at creation time: editing the customer record afterwards does not
// change historical invoices.
//
// All monetary totals are derived from the stored items and rates; none of
// them is persisted independently.
type Invoice struct {
	ID            uuid.UUID     `db:"id" json:"id"`
	InvoiceNumber string        `db:"invoice_number" json:"invoice_number"`
	Status        InvoiceStatus `db:"status" json:"status"`
	Date          time.Time     `db:"date" json:"date"`
	DueDate       time.Time     `db:"due_date" json:"due_date"`
	Customer      Customer      `db:"-" json:"customer"`
	Items         []InvoiceItem `db:"-" json:"items"`
	Notes         string        `db:"notes" json:"notes"`
	TaxRate       float64       `db:"tax_rate" json:"tax_rate"`
	DiscountRate  float64       `db:"discount_rate" json:"discount_rate"`
	Currency      Currency      `db:"currency" json:"currency"`
	AccountNumber string        `db:"account_number" json:"account_number"`
	CreatedAt     time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time     `db:"updated_at" json:"updated_at"`
}

// Subtotal returns the sum of all item totals. Zero for an empty item list.
func (inv *Invoice) Subtotal() float64 {
	var sum float64
	for i := range inv.Items {
		sum += inv.Items[i].Total()
	}
	return sum
}

// DiscountAmount returns subtotal × discountRate/100.
func (inv *Invoice) DiscountAmount() float64 {
	return inv.Subtotal() * (inv.DiscountRate / 100)
}

// SubtotalAfterDiscount returns the subtotal with the discount applied.
func (inv *Invoice) SubtotalAfterDiscount() float64 {
	return inv.Subtotal() - inv.DiscountAmount()
}

// TaxAmount returns the tax computed on the discounted subtotal. Tax always
// applies after discount, never before.
func (inv *Invoice) TaxAmount() float64 {
	return inv.SubtotalAfterDiscount() * (inv.TaxRate / 100)
}

// Total returns the final payable amount.
func (inv *Invoice) Total() float64 {
	return inv.SubtotalAfterDiscount() + inv.TaxAmount()
}

// User represents an authenticated user of the invoicing backend.
type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	FullName     string    `db:"full_name" json:"full_name"`
	Role         UserRole  `db:"role" json:"role"`
	IsActive     bool      `db:"is_active" json:"is_active"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// InvoiceStats summarizes the stored invoices.
type InvoiceStats struct {
	TotalCount     int     `json:"total_count"`
	TotalRevenue   float64 `json:"total_revenue"`
	CountThisMonth int     `json:"count_this_month"`
}
