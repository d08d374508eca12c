package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"faktor/internal/domain"
)

// MockCompanyInfoRepo is a mock implementation of port.CompanyInfoRepository.
type MockCompanyInfoRepo struct {
	mock.Mock
}

func (m *MockCompanyInfoRepo) Get(ctx context.Context) (*domain.CompanyInfo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CompanyInfo), args.Error(1)
}

func (m *MockCompanyInfoRepo) Save(ctx context.Context, info *domain.CompanyInfo) error {
	args := m.Called(ctx, info)
	return args.Error(0)
}

func (m *MockCompanyInfoRepo) Reset(ctx context.Context) (*domain.CompanyInfo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CompanyInfo), args.Error(1)
}
