package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/checkpoint-estagio/checkpoint-backend-go/internal/domain/document"
	"github.com/checkpoint-estagio/checkpoint-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type documentRepositoryImpl struct {
	db *database.DB
}

func NewDocumentRepository(db *database.DB) document.DocumentRepository {
	return &documentRepositoryImpl{db: db}
}

const documentColumns = `id, id_contrato, nome, arquivo_url, tipo, status,
			   comentario_resolucao, enviado_em, atualizado_em`

func scanDocument(row pgx.Row) (document.Document, error) {
	var found document.Document
	err := row.Scan(
		&found.ID,
		&found.ContractID,
		&found.Name,
		&found.FileURL,
		&found.Type,
		&found.Status,
		&found.ResolutionComment,
		&found.SubmittedAt,
		&found.UpdatedAt,
	)
	return found, err
}

// Create implements document.DocumentRepository.
func (r *documentRepositoryImpl) Create(ctx context.Context, d document.Document) (document.Document, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO documentos (id_contrato, nome, arquivo_url, tipo, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + documentColumns

	created, err := scanDocument(q.QueryRow(ctx, query,
		d.ContractID,
		d.Name,
		d.FileURL,
		d.Type,
		d.Status,
	))
	if err != nil {
		return document.Document{}, err
	}

	return created, nil
}

// GetByID implements document.DocumentRepository.
func (r *documentRepositoryImpl) GetByID(ctx context.Context, id int64) (document.Document, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + documentColumns + ` FROM documentos WHERE id = $1`

	found, err := scanDocument(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return document.Document{}, document.ErrDocumentNotFound
		}
		return document.Document{}, err
	}

	return found, nil
}

// Update implements document.DocumentRepository.
func (r *documentRepositoryImpl) Update(ctx context.Context, d document.Document) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE documentos
		SET status = $1, comentario_resolucao = $2, atualizado_em = NOW()
		WHERE id = $3
	`

	tag, err := q.Exec(ctx, query, d.Status, d.ResolutionComment, d.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return document.ErrDocumentNotFound
	}

	return nil
}

// List implements document.DocumentRepository.
func (r *documentRepositoryImpl) List(ctx context.Context, filter document.ListFilter) ([]document.Document, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + documentColumns + ` FROM documentos WHERE 1=1`
	args := []interface{}{}

	if filter.ContractID != nil {
		args = append(args, *filter.ContractID)
		query += fmt.Sprintf(" AND id_contrato = $%d", len(args))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}

	query += " ORDER BY enviado_em DESC"

	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if filter.Offset > 0 {
		args = append(args, filter.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	documents := []document.Document{}
	for rows.Next() {
		found, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		documents = append(documents, found)
	}

	return documents, rows.Err()
}
