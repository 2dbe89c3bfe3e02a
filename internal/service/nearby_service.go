package service

import (
	"context"
	"fmt"

	"address-book-api/internal/geo"
	"address-book-api/internal/models"

	"github.com/rs/zerolog"
)

// NearbyService finds stored addresses within a radius of a point
type NearbyService struct {
	repo NearbyRepository
}

// NearbyRepository interface for dependency injection
type NearbyRepository interface {
	ListAddresses(ctx context.Context) ([]models.Address, error)
}

// NewNearbyService creates a new nearby service
func NewNearbyService(repo NearbyRepository) *NearbyService {
	return &NearbyService{repo: repo}
}

// FindNearby returns every address whose great-circle distance to the query point
// is at most q.Distance kilometers, in store order. The query is validated before
// the store is touched.
func (s *NearbyService) FindNearby(ctx context.Context, q models.NearbyQuery) ([]models.Address, error) {
	if err := ValidateNearbyQuery(q); err != nil {
		return nil, err
	}

	addresses, err := s.repo.ListAddresses(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list addresses: %w", err)
	}

	origin := q.Coordinate()
	nearby := make([]models.Address, 0)
	for _, addr := range addresses {
		if geo.Within(origin, addr.Coordinate(), q.Distance) {
			nearby = append(nearby, addr)
		}
	}

	zerolog.Ctx(ctx).Debug().
		Int("scanned", len(addresses)).
		Int("matched", len(nearby)).
		Float64("distance_km", q.Distance).
		Msg("nearby search finished")

	return nearby, nil
}
