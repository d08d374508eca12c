package domain

// Currency is a supported invoicing currency. The two units differ only in
// their Persian display label, which is appended to formatted amounts.
type Currency string

const (
	CurrencyToman Currency = "toman"
	CurrencyRial  Currency = "rial"
)

// CurrencyLabels maps each currency to its Persian display label.
var CurrencyLabels = map[Currency]string{
	CurrencyToman: "تومان",
	CurrencyRial:  "ریال",
}

// Label returns the Persian display label for the currency. Unknown values
// fall back to the toman label.
func (c Currency) Label() string {
	if l, ok := CurrencyLabels[c]; ok {
		return l
	}
	return CurrencyLabels[CurrencyToman]
}

// Valid reports whether the currency is one of the supported units.
func (c Currency) Valid() bool {
	_, ok := CurrencyLabels[c]
	return ok
}

// InvoiceStatus represents the lifecycle of an invoice.
type InvoiceStatus string

const (
	InvoiceStatusDraft     InvoiceStatus = "draft"
	InvoiceStatusSent      InvoiceStatus = "sent"
	InvoiceStatusPaid      InvoiceStatus = "paid"
	InvoiceStatusOverdue   InvoiceStatus = "overdue"
	InvoiceStatusCancelled InvoiceStatus = "cancelled"
)

// ValidInvoiceStatuses is the closed set of invoice statuses.
var ValidInvoiceStatuses = map[InvoiceStatus]bool{
	InvoiceStatusDraft:     true,
	InvoiceStatusSent:      true,
	InvoiceStatusPaid:      true,
	InvoiceStatusOverdue:   true,
	InvoiceStatusCancelled: true,
}

// InvoiceSortOption selects an ordering for invoice listings.
type InvoiceSortOption string

const (
	SortDateNewest    InvoiceSortOption = "date_newest"
	SortDateOldest    InvoiceSortOption = "date_oldest"
	SortInvoiceNumber InvoiceSortOption = "invoice_number"
	SortCustomerName  InvoiceSortOption = "customer_name"
	SortTotalAmount   InvoiceSortOption = "total_amount"
)

// UserRole defines the role hierarchy.
type UserRole string

const (
	RoleAdmin  UserRole = "admin"
	RoleMember UserRole = "member"
)

// ImageKind identifies one of the two stored raster images. Each is
// independently present or absent.
type ImageKind string

const (
	ImageLogo      ImageKind = "logo"
	ImageSignature ImageKind = "signature"
)

// ImageObjectKeys maps each image kind to its object storage key.
var ImageObjectKeys = map[ImageKind]string{
	ImageLogo:      "company_logo.png",
	ImageSignature: "signature.png",
}

// Valid reports whether the image kind is known.
func (k ImageKind) Valid() bool {
	_, ok := ImageObjectKeys[k]
	return ok
}
