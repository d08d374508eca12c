package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"faktor/internal/domain"
	"faktor/internal/service"
	"faktor/mocks"
)

func TestCompanyService_Update_PartialFields(t *testing.T) {
	repo := new(mocks.MockCompanyInfoRepo)
	svc := service.NewCompanyService(repo)

	existing := domain.DefaultCompanyInfo()
	repo.On("Get", mock.Anything).Return(existing, nil)
	repo.On("Save", mock.Anything, mock.AnythingOfType("*domain.CompanyInfo")).Return(nil)

	name := "آریا تجارت"
	phone := "۰۲۱۸۸۷۷۶۶۵۵"
	info, err := svc.Update(context.Background(), service.UpdateCompanyInput{
		Name:  &name,
		Phone: &phone,
	})
	require.NoError(t, err)

	assert.Equal(t, "آریا تجارت", info.Name)
	assert.Equal(t, "۰۲۱۸۸۷۷۶۶۵۵", info.Phone)
	assert.Equal(t, "info@company.com", info.Email)
	repo.AssertExpectations(t)
}

func TestCompanyService_Update_GetFailure(t *testing.T) {
	repo := new(mocks.MockCompanyInfoRepo)
	svc := service.NewCompanyService(repo)

	repo.On("Get", mock.Anything).Return(nil, assert.AnError)

	_, err := svc.Update(context.Background(), service.UpdateCompanyInput{})
	assert.ErrorIs(t, err, assert.AnError)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestCompanyService_Reset(t *testing.T) {
	repo := new(mocks.MockCompanyInfoRepo)
	svc := service.NewCompanyService(repo)

	repo.On("Reset", mock.Anything).Return(domain.DefaultCompanyInfo(), nil)

	info, err := svc.Reset(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "شرکت شما", info.Name)
}
