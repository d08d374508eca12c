package port

import (
	"context"

	"github.com/google/uuid"

	"faktor/internal/domain"
)

// InvoiceRepository defines the contract for invoice persistence. An
// invoice and its items are written atomically; the embedded customer
// snapshot is stored with the invoice, never resolved back to the customer
// table.
type InvoiceRepository interface {
	Create(ctx context.Context, inv *domain.Invoice) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Invoice, error)
	List(ctx context.Context, query string, sort domain.InvoiceSortOption, offset, limit int) ([]domain.Invoice, int, error)
	Update(ctx context.Context, inv *domain.Invoice) error
	Delete(ctx context.Context, id uuid.UUID) error
	Stats(ctx context.Context) (*domain.InvoiceStats, error)
}

// CustomerRepository defines the contract for customer persistence.
type CustomerRepository interface {
	Create(ctx context.Context, c *domain.Customer) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Customer, error)
	List(ctx context.Context, query string, offset, limit int) ([]domain.Customer, int, error)
	Update(ctx context.Context, c *domain.Customer) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// CompanyInfoRepository persists the singleton company profile. Get returns
// the defaults when nothing has been saved yet.
type CompanyInfoRepository interface {
	Get(ctx context.Context) (*domain.CompanyInfo, error)
	Save(ctx context.Context, info *domain.CompanyInfo) error
	Reset(ctx context.Context) (*domain.CompanyInfo, error)
}

// UserRepository defines the contract for user persistence.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
}
