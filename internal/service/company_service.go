package service

import (
	"context"

	"faktor/internal/domain"
	"faktor/internal/port"
)

// UpdateCompanyInput is the DTO for updating the company profile. Nil fields
// are left unchanged.
type UpdateCompanyInput struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
	City    *string `json:"city"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email" binding:"omitempty,email"`
	Website *string `json:"website"`
}

// CompanyService manages the singleton company profile that appears in the
// seller block of every rendered invoice.
type CompanyService interface {
	Get(ctx context.Context) (*domain.CompanyInfo, error)
	Update(ctx context.Context, input UpdateCompanyInput) (*domain.CompanyInfo, error)
	Reset(ctx context.Context) (*domain.CompanyInfo, error)
}

type companyService struct {
	repo port.CompanyInfoRepository
}

// NewCompanyService creates a new CompanyService implementation.
func NewCompanyService(repo port.CompanyInfoRepository) CompanyService {
	return &companyService{repo: repo}
}

func (s *companyService) Get(ctx context.Context) (*domain.CompanyInfo, error) {
	return s.repo.Get(ctx)
}

func (s *companyService) Update(ctx context.Context, input UpdateCompanyInput) (*domain.CompanyInfo, error) {
	info, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		info.Name = *input.Name
	}
	if input.Address != nil {
		info.Address = *input.Address
	}
	if input.City != nil {
		info.City = *input.City
	}
	if input.Phone != nil {
		info.Phone = *input.Phone
	}
	if input.Email != nil {
		info.Email = *input.Email
	}
	if input.Website != nil {
		info.Website = *input.Website
	}

	if err := s.repo.Save(ctx, info); err != nil {
		return nil, err
	}
	return info, nil
}

func (s *companyService) Reset(ctx context.Context) (*domain.CompanyInfo, error) {
	return s.repo.Reset(ctx)
}
