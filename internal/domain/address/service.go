package address

import "context"

// AddressService creates and reads internship locations. Creation runs a
// best-effort geocoding lookup; a failed lookup leaves coordinates null and
// never fails the request.
type AddressService interface {
	Create(ctx context.Context, req CreateAddressRequest) (AddressResponse, error)
	Get(ctx context.Context, id int64) (AddressResponse, error)
}
