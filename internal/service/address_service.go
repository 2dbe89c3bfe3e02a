package service

import (
	"context"
	"fmt"

	"address-book-api/internal/models"

	"github.com/rs/zerolog"
)

// AddressService contains the business logic for managing stored addresses
type AddressService struct {
	repo AddressRepository
}

// AddressRepository interface for dependency injection
type AddressRepository interface {
	CreateAddress(ctx context.Context, in models.AddressInput) (*models.Address, error)
	ListAddresses(ctx context.Context) ([]models.Address, error)
	GetAddress(ctx context.Context, id int64) (*models.Address, error)
	UpdateAddress(ctx context.Context, id int64, patch models.AddressPatch) (*models.Address, error)
	DeleteAddress(ctx context.Context, id int64) (*models.Address, error)
}

// NewAddressService creates a new address service
func NewAddressService(repo AddressRepository) *AddressService {
	return &AddressService{repo: repo}
}

// CreateAddress validates the input and stores a new address
func (s *AddressService) CreateAddress(ctx context.Context, in models.AddressInput) (*models.Address, error) {
	in, err := NormalizeAddressInput(in)
	if err != nil {
		return nil, err
	}

	addr, err := s.repo.CreateAddress(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("service: failed to create address: %w", err)
	}

	zerolog.Ctx(ctx).Info().Int64("address_id", addr.ID).Msg("address created")
	return addr, nil
}

// ListAddresses returns every stored address in insertion order
func (s *AddressService) ListAddresses(ctx context.Context) ([]models.Address, error) {
	addresses, err := s.repo.ListAddresses(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list addresses: %w", err)
	}
	return addresses, nil
}

// GetAddress returns a single address
func (s *AddressService) GetAddress(ctx context.Context, id int64) (*models.Address, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}

	addr, err := s.repo.GetAddress(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get address %d: %w", id, err)
	}
	return addr, nil
}

// UpdateAddress applies a partial update. Fields absent from the patch keep their value.
func (s *AddressService) UpdateAddress(ctx context.Context, id int64, patch models.AddressPatch) (*models.Address, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}

	patch, err := NormalizeAddressPatch(patch)
	if err != nil {
		return nil, err
	}

	addr, err := s.repo.UpdateAddress(ctx, id, patch)
	if err != nil {
		return nil, fmt.Errorf("service: failed to update address %d: %w", id, err)
	}

	zerolog.Ctx(ctx).Info().Int64("address_id", id).Msg("address updated")
	return addr, nil
}

// DeleteAddress removes an address and returns what was stored
func (s *AddressService) DeleteAddress(ctx context.Context, id int64) (*models.Address, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}

	addr, err := s.repo.DeleteAddress(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: failed to delete address %d: %w", id, err)
	}

	zerolog.Ctx(ctx).Info().Int64("address_id", id).Msg("address deleted")
	return addr, nil
}

func validateID(id int64) error {
	if id <= 0 {
		return models.NewValidationError("id", "id must be a positive integer")
	}
	return nil
}
