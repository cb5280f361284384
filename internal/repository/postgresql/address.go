package postgresql

import (
	"context"
	"errors"

	"github.com/checkpoint-estagio/checkpoint-backend-go/internal/domain/address"
	"github.com/checkpoint-estagio/checkpoint-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type addressRepositoryImpl struct {
	db *database.DB
}

func NewAddressRepository(db *database.DB) address.AddressRepository {
	return &addressRepositoryImpl{db: db}
}

// Create implements address.AddressRepository.
func (r *addressRepositoryImpl) Create(ctx context.Context, a address.Address) (address.Address, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO enderecos (cep, logradouro, cidade, estado, numero, bairro, lat, long)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, cep, logradouro, cidade, estado, numero, bairro, lat, long
	`

	var created address.Address
	err := q.QueryRow(ctx, query,
		a.CEP,
		a.Street,
		a.City,
		a.State,
		a.Number,
		a.Neighborhood,
		a.Latitude,
		a.Longitude,
	).Scan(
		&created.ID,
		&created.CEP,
		&created.Street,
		&created.City,
		&created.State,
		&created.Number,
		&created.Neighborhood,
		&created.Latitude,
		&created.Longitude,
	)
	if err != nil {
		return address.Address{}, err
	}

	return created, nil
}

// GetByID implements address.AddressRepository.
func (r *addressRepositoryImpl) GetByID(ctx context.Context, id int64) (address.Address, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, cep, logradouro, cidade, estado, numero, bairro, lat, long
		FROM enderecos
		WHERE id = $1
	`

	var found address.Address
	err := q.QueryRow(ctx, query, id).Scan(
		&found.ID,
		&found.CEP,
		&found.Street,
		&found.City,
		&found.State,
		&found.Number,
		&found.Neighborhood,
		&found.Latitude,
		&found.Longitude,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return address.Address{}, address.ErrAddressNotFound
		}
		return address.Address{}, err
	}

	return found, nil
}
