package address

import "context"

// AddressRepository defines data access methods for internship locations.
type AddressRepository interface {
	Create(ctx context.Context, a Address) (Address, error)
	GetByID(ctx context.Context, id int64) (Address, error)
}
