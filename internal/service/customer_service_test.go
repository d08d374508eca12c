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

func TestCustomerService_Create(t *testing.T) {
	repo := new(mocks.MockCustomerRepo)
	svc := service.NewCustomerService(repo)

	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Customer")).Return(nil)

	c, err := svc.Create(context.Background(), service.CreateCustomerInput{
		Name:  "مریم احمدی",
		Email: "maryam@example.com",
		City:  "اصفهان",
	})
	require.NoError(t, err)
	assert.Equal(t, "مریم احمدی", c.Name)
	assert.Equal(t, "اصفهان", c.City)
	repo.AssertExpectations(t)
}

func TestCustomerService_Update_PartialFields(t *testing.T) {
	repo := new(mocks.MockCustomerRepo)
	svc := service.NewCustomerService(repo)

	existing := sampleCustomer()
	repo.On("GetByID", mock.Anything, existing.ID).Return(existing, nil)
	repo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Customer")).Return(nil)

	city := "شیراز"
	c, err := svc.Update(context.Background(), existing.ID, service.UpdateCustomerInput{
		City: &city,
	})
	require.NoError(t, err)
	assert.Equal(t, "شیراز", c.City)
	assert.Equal(t, "علی رضایی", c.Name)
}

func TestCustomerService_Update_NotFound(t *testing.T) {
	repo := new(mocks.MockCustomerRepo)
	svc := service.NewCustomerService(repo)

	id := sampleCustomer().ID
	repo.On("GetByID", mock.Anything, id).Return(nil, domain.ErrNotFound)

	_, err := svc.Update(context.Background(), id, service.UpdateCustomerInput{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCustomerService_Delete(t *testing.T) {
	repo := new(mocks.MockCustomerRepo)
	svc := service.NewCustomerService(repo)

	id := sampleCustomer().ID
	repo.On("Delete", mock.Anything, id).Return(nil)

	require.NoError(t, svc.Delete(context.Background(), id))
	repo.AssertExpectations(t)
}
