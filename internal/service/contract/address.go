package contract

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/checkpoint-estagio/checkpoint-backend-go/internal/domain/address"
	"github.com/checkpoint-estagio/checkpoint-backend-go/internal/pkg/geocode"
)

type AddressServiceImpl struct {
	address.AddressRepository
	geocoder geocode.Provider
	logger   *slog.Logger
}

func NewAddressService(addressRepository address.AddressRepository, geocoder geocode.Provider, logger *slog.Logger) address.AddressService {
	return &AddressServiceImpl{
		AddressRepository: addressRepository,
		geocoder:          geocoder,
		logger:            logger,
	}
}

// Create implements address.AddressService. The geocoding lookup is
// best-effort: on error or miss the address is stored without coordinates
// and geofence checks on it fail open.
func (s *AddressServiceImpl) Create(ctx context.Context, req address.CreateAddressRequest) (address.AddressResponse, error) {
	newAddress := address.Address{
		CEP:          req.CEP,
		Street:       req.Street,
		City:         req.City,
		State:        req.State,
		Number:       req.Number,
		Neighborhood: req.Neighborhood,
	}

	if s.geocoder != nil {
		coords, err := s.geocoder.Lookup(ctx, formatForLookup(req))
		if err != nil {
			s.logger.Warn("geocoding lookup failed, storing address without coordinates",
				"error", err, "cidade", req.City)
		} else if coords != nil {
			newAddress.Latitude = &coords.Latitude
			newAddress.Longitude = &coords.Longitude
		}
	}

	created, err := s.AddressRepository.Create(ctx, newAddress)
	if err != nil {
		return address.AddressResponse{}, fmt.Errorf("failed to create address: %w", err)
	}

	return address.ToResponse(created), nil
}

// Get implements address.AddressService.
func (s *AddressServiceImpl) Get(ctx context.Context, id int64) (address.AddressResponse, error) {
	found, err := s.AddressRepository.GetByID(ctx, id)
	if err != nil {
		return address.AddressResponse{}, err
	}
	return address.ToResponse(found), nil
}

func formatForLookup(req address.CreateAddressRequest) string {
	parts := []string{req.Street}
	if req.Number != nil && *req.Number != "" {
		parts = append(parts, *req.Number)
	}
	if req.Neighborhood != nil && *req.Neighborhood != "" {
		parts = append(parts, *req.Neighborhood)
	}
	parts = append(parts, req.City, req.State)
	if req.CEP != nil && *req.CEP != "" {
		parts = append(parts, *req.CEP)
	}
	return strings.Join(parts, ", ")
}
