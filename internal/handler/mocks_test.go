package handler

import (
	"context"

	"address-book-api/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockAddressService is a mock implementation of the AddressService interface
type MockAddressService struct {
	mock.Mock
}

func (m *MockAddressService) CreateAddress(ctx context.Context, in models.AddressInput) (*models.Address, error) {
	args := m.Called(ctx, in)
	addr, _ := args.Get(0).(*models.Address)
	return addr, args.Error(1)
}

func (m *MockAddressService) ListAddresses(ctx context.Context) ([]models.Address, error) {
	args := m.Called(ctx)
	addresses, _ := args.Get(0).([]models.Address)
	return addresses, args.Error(1)
}

func (m *MockAddressService) GetAddress(ctx context.Context, id int64) (*models.Address, error) {
	args := m.Called(ctx, id)
	addr, _ := args.Get(0).(*models.Address)
	return addr, args.Error(1)
}

func (m *MockAddressService) UpdateAddress(ctx context.Context, id int64, patch models.AddressPatch) (*models.Address, error) {
	args := m.Called(ctx, id, patch)
	addr, _ := args.Get(0).(*models.Address)
	return addr, args.Error(1)
}

func (m *MockAddressService) DeleteAddress(ctx context.Context, id int64) (*models.Address, error) {
	args := m.Called(ctx, id)
	addr, _ := args.Get(0).(*models.Address)
	return addr, args.Error(1)
}

// MockNearbyService is a mock implementation of the NearbyService interface
type MockNearbyService struct {
	mock.Mock
}

func (m *MockNearbyService) FindNearby(ctx context.Context, q models.NearbyQuery) ([]models.Address, error) {
	args := m.Called(ctx, q)
	addresses, _ := args.Get(0).([]models.Address)
	return addresses, args.Error(1)
}

// MockPinger is a mock implementation of the Pinger interface
type MockPinger struct {
	mock.Mock
}

func (m *MockPinger) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
