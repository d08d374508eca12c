package service

import (
	"context"

	"github.com/google/uuid"

	"faktor/internal/domain"
	"faktor/internal/port"
)

// CreateCustomerInput is the DTO for creating a customer.
type CreateCustomerInput struct {
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"omitempty,email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
}

// UpdateCustomerInput is the DTO for updating a customer. Nil fields are
// left unchanged.
type UpdateCustomerInput struct {
	Name       *string `json:"name"`
	Email      *string `json:"email" binding:"omitempty,email"`
	Phone      *string `json:"phone"`
	Address    *string `json:"address"`
	City       *string `json:"city"`
	PostalCode *string `json:"postal_code"`
}

// CustomerService defines the customer management contract.
type CustomerService interface {
	Create(ctx context.Context, input CreateCustomerInput) (*domain.Customer, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Customer, error)
	List(ctx context.Context, query string, offset, limit int) ([]domain.Customer, int, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateCustomerInput) (*domain.Customer, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type customerService struct {
	repo port.CustomerRepository
}

// NewCustomerService creates a new CustomerService implementation.
func NewCustomerService(repo port.CustomerRepository) CustomerService {
	return &customerService{repo: repo}
}

func (s *customerService) Create(ctx context.Context, input CreateCustomerInput) (*domain.Customer, error) {
	c := &domain.Customer{
		Name:       input.Name,
		Email:      input.Email,
		Phone:      input.Phone,
		Address:    input.Address,
		City:       input.City,
		PostalCode: input.PostalCode,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *customerService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *customerService) List(ctx context.Context, query string, offset, limit int) ([]domain.Customer, int, error) {
	return s.repo.List(ctx, query, offset, limit)
}

func (s *customerService) Update(ctx context.Context, id uuid.UUID, input UpdateCustomerInput) (*domain.Customer, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		c.Name = *input.Name
	}
	if input.Email != nil {
		c.Email = *input.Email
	}
	if input.Phone != nil {
		c.Phone = *input.Phone
	}
	if input.Address != nil {
		c.Address = *input.Address
	}
	if input.City != nil {
		c.City = *input.City
	}
	if input.PostalCode != nil {
		c.PostalCode = *input.PostalCode
	}

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *customerService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
