package service

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"faktor/internal/domain"
	"faktor/internal/port"
)

// InvoiceItemInput is one billable line in a create or update request.
type InvoiceItemInput struct {
	Description string  `json:"description" binding:"required"`
	Quantity    float64 `json:"quantity" binding:"required,gt=0"`
	UnitPrice   float64 `json:"unit_price" binding:"gte=0"`
}

// CreateInvoiceInput is the DTO for creating an invoice. The customer is
// snapshotted at creation time.
type CreateInvoiceInput struct {
	InvoiceNumber string             `json:"invoice_number"`
	CustomerID    uuid.UUID          `json:"customer_id" binding:"required"`
	Date          time.Time          `json:"date"`
	DueDate       time.Time          `json:"due_date"`
	Items         []InvoiceItemInput `json:"items"`
	Notes         string             `json:"notes"`
	TaxRate       float64            `json:"tax_rate" binding:"gte=0,lte=100"`
	DiscountRate  float64            `json:"discount_rate" binding:"gte=0,lte=100"`
	Currency      domain.Currency    `json:"currency"`
	AccountNumber string             `json:"account_number"`
}

// UpdateInvoiceInput is the DTO for updating an invoice. Nil fields are left
// unchanged; a non-nil Items slice replaces the item list wholesale.
type UpdateInvoiceInput struct {
	InvoiceNumber *string               `json:"invoice_number"`
	Status        *domain.InvoiceStatus `json:"status"`
	Date          *time.Time            `json:"date"`
	DueDate       *time.Time            `json:"due_date"`
	Items         []InvoiceItemInput    `json:"items"`
	Notes         *string               `json:"notes"`
	TaxRate       *float64              `json:"tax_rate"`
	DiscountRate  *float64              `json:"discount_rate"`
	Currency      *domain.Currency      `json:"currency"`
	AccountNumber *string               `json:"account_number"`
}

// ListInvoicesInput bundles search, sort and pagination parameters.
type ListInvoicesInput struct {
	Query  string
	Sort   domain.InvoiceSortOption
	Offset int
	Limit  int
}

// InvoiceService defines the invoice management contract.
type InvoiceService interface {
	Create(ctx context.Context, input CreateInvoiceInput) (*domain.Invoice, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Invoice, error)
	List(ctx context.Context, input ListInvoicesInput) ([]domain.Invoice, int, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateInvoiceInput) (*domain.Invoice, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Duplicate(ctx context.Context, id uuid.UUID) (*domain.Invoice, error)
	Stats(ctx context.Context) (*domain.InvoiceStats, error)
}

type invoiceService struct {
	repo         port.InvoiceRepository
	customerRepo port.CustomerRepository
}

// NewInvoiceService creates a new InvoiceService implementation.
func NewInvoiceService(repo port.InvoiceRepository, customerRepo port.CustomerRepository) InvoiceService {
	return &invoiceService{repo: repo, customerRepo: customerRepo}
}

// NewInvoiceNumber returns a fresh invoice number of the form INV-NNNN.
func NewInvoiceNumber() string {
	return fmt.Sprintf("INV-%04d", 1000+rand.Intn(9000))
}

func (s *invoiceService) Create(ctx context.Context, input CreateInvoiceInput) (*domain.Invoice, error) {
	customer, err := s.customerRepo.GetByID(ctx, input.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("invoice.Create: %w", err)
	}

	currency := input.Currency
	if currency == "" {
		currency = domain.CurrencyToman
	}
	if !currency.Valid() {
		return nil, domain.ErrInvalidCurrency
	}

	now := time.Now()
	date := input.Date
	if date.IsZero() {
		date = now
	}
	dueDate := input.DueDate
	if dueDate.IsZero() {
		dueDate = date.AddDate(0, 0, 30)
	}
	number := input.InvoiceNumber
	if number == "" {
		number = NewInvoiceNumber()
	}

	inv := &domain.Invoice{
		InvoiceNumber: number,
		Status:        domain.InvoiceStatusDraft,
		Date:          date,
		DueDate:       dueDate,
		Customer:      *customer,
		Items:         buildItems(input.Items),
		Notes:         input.Notes,
		TaxRate:       input.TaxRate,
		DiscountRate:  input.DiscountRate,
		Currency:      currency,
		AccountNumber: input.AccountNumber,
	}
	if err := s.repo.Create(ctx, inv); err != nil {
		return nil, err
	}
	return inv, nil
}

func (s *invoiceService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Invoice, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *invoiceService) List(ctx context.Context, input ListInvoicesInput) ([]domain.Invoice, int, error) {
	sort := input.Sort
	if sort == "" {
		sort = domain.SortDateNewest
	}
	return s.repo.List(ctx, input.Query, sort, input.Offset, input.Limit)
}

func (s *invoiceService) Update(ctx context.Context, id uuid.UUID, input UpdateInvoiceInput) (*domain.Invoice, error) {
	inv, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.InvoiceNumber != nil {
		inv.InvoiceNumber = *input.InvoiceNumber
	}
	if input.Status != nil {
		if !domain.ValidInvoiceStatuses[*input.Status] {
			return nil, domain.ErrInvalidStatus
		}
		inv.Status = *input.Status
	}
	if input.Date != nil {
		inv.Date = *input.Date
	}
	if input.DueDate != nil {
		inv.DueDate = *input.DueDate
	}
	if input.Items != nil {
		inv.Items = buildItems(input.Items)
	}
	if input.Notes != nil {
		inv.Notes = *input.Notes
	}
	if input.TaxRate != nil {
		inv.TaxRate = *input.TaxRate
	}
	if input.DiscountRate != nil {
		inv.DiscountRate = *input.DiscountRate
	}
	if input.Currency != nil {
		if !input.Currency.Valid() {
			return nil, domain.ErrInvalidCurrency
		}
		inv.Currency = *input.Currency
	}
	if input.AccountNumber != nil {
		inv.AccountNumber = *input.AccountNumber
	}

	if err := s.repo.Update(ctx, inv); err != nil {
		return nil, err
	}
	return inv, nil
}

func (s *invoiceService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// Duplicate clones an invoice under a fresh number with today's date. The
// customer snapshot, items, rates and notes are copied as-is; the copy
// always starts as a draft.
func (s *invoiceService) Duplicate(ctx context.Context, id uuid.UUID) (*domain.Invoice, error) {
	src, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	copyInv := &domain.Invoice{
		InvoiceNumber: NewInvoiceNumber(),
		Status:        domain.InvoiceStatusDraft,
		Date:          now,
		DueDate:       now.Add(src.DueDate.Sub(src.Date)),
		Customer:      src.Customer,
		Notes:         src.Notes,
		TaxRate:       src.TaxRate,
		DiscountRate:  src.DiscountRate,
		Currency:      src.Currency,
		AccountNumber: src.AccountNumber,
	}
	copyInv.Items = make([]domain.InvoiceItem, len(src.Items))
	for i, item := range src.Items {
		copyInv.Items[i] = domain.InvoiceItem{
			Position:    i,
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		}
	}

	if err := s.repo.Create(ctx, copyInv); err != nil {
		return nil, err
	}
	return copyInv, nil
}

func (s *invoiceService) Stats(ctx context.Context) (*domain.InvoiceStats, error) {
	return s.repo.Stats(ctx)
}

func buildItems(inputs []InvoiceItemInput) []domain.InvoiceItem {
	items := make([]domain.InvoiceItem, len(inputs))
	for i, in := range inputs {
		items[i] = domain.InvoiceItem{
			Position:    i,
			Description: in.Description,
			Quantity:    in.Quantity,
			UnitPrice:   in.UnitPrice,
		}
	}
	return items
}
