package service

import (
	"context"

	"address-book-api/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockAddressRepository is a mock implementation of the AddressRepository interface
type MockAddressRepository struct {
	mock.Mock
}

func (m *MockAddressRepository) CreateAddress(ctx context.Context, in models.AddressInput) (*models.Address, error) {
	args := m.Called(ctx, in)
	addr, _ := args.Get(0).(*models.Address)
	return addr, args.Error(1)
}

func (m *MockAddressRepository) ListAddresses(ctx context.Context) ([]models.Address, error) {
	args := m.Called(ctx)
	addresses, _ := args.Get(0).([]models.Address)
	return addresses, args.Error(1)
}

func (m *MockAddressRepository) GetAddress(ctx context.Context, id int64) (*models.Address, error) {
	args := m.Called(ctx, id)
	addr, _ := args.Get(0).(*models.Address)
	return addr, args.Error(1)
}

func (m *MockAddressRepository) UpdateAddress(ctx context.Context, id int64, patch models.AddressPatch) (*models.Address, error) {
	args := m.Called(ctx, id, patch)
	addr, _ := args.Get(0).(*models.Address)
	return addr, args.Error(1)
}

func (m *MockAddressRepository) DeleteAddress(ctx context.Context, id int64) (*models.Address, error) {
	args := m.Called(ctx, id)
	addr, _ := args.Get(0).(*models.Address)
	return addr, args.Error(1)
}

func ptr(f float64) *float64 { return &f }
