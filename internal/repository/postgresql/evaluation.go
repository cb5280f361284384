package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/checkpoint-estagio/checkpoint-backend-go/internal/domain/evaluation"
	"github.com/checkpoint-estagio/checkpoint-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type evaluationRepositoryImpl struct {
	db *database.DB
}

func NewEvaluationRepository(db *database.DB) evaluation.EvaluationRepository {
	return &evaluationRepositoryImpl{db: db}
}

const evaluationColumns = `id, id_contrato, id_avaliador, periodo, notas, feedback, plano_acao,
			   status, exportado, data_referencia, criado_em, atualizado_em`

func scanEvaluation(row pgx.Row) (evaluation.Evaluation, error) {
	var found evaluation.Evaluation
	err := row.Scan(
		&found.ID,
		&found.ContractID,
		&found.EvaluatorID,
		&found.Period,
		&found.Grades,
		&found.Feedback,
		&found.ActionPlan,
		&found.Status,
		&found.Exported,
		&found.ReferenceDate,
		&found.CreatedAt,
		&found.UpdatedAt,
	)
	return found, err
}

// Create implements evaluation.EvaluationRepository.
func (r *evaluationRepositoryImpl) Create(ctx context.Context, e evaluation.Evaluation) (evaluation.Evaluation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO avaliacoes (
			id_contrato, id_avaliador, periodo, notas, feedback, plano_acao, status, data_referencia
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + evaluationColumns

	created, err := scanEvaluation(q.QueryRow(ctx, query,
		e.ContractID,
		e.EvaluatorID,
		e.Period,
		e.Grades,
		e.Feedback,
		e.ActionPlan,
		e.Status,
		e.ReferenceDate,
	))
	if err != nil {
		return evaluation.Evaluation{}, err
	}

	return created, nil
}

// GetByID implements evaluation.EvaluationRepository.
func (r *evaluationRepositoryImpl) GetByID(ctx context.Context, id int64) (evaluation.Evaluation, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + evaluationColumns + ` FROM avaliacoes WHERE id = $1`

	found, err := scanEvaluation(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return evaluation.Evaluation{}, evaluation.ErrEvaluationNotFound
		}
		return evaluation.Evaluation{}, err
	}

	return found, nil
}

// Update implements evaluation.EvaluationRepository.
func (r *evaluationRepositoryImpl) Update(ctx context.Context, e evaluation.Evaluation) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE avaliacoes
		SET periodo = $1, notas = $2, feedback = $3, plano_acao = $4, status = $5,
			exportado = $6, data_referencia = $7, atualizado_em = NOW()
		WHERE id = $8
	`

	tag, err := q.Exec(ctx, query,
		e.Period,
		e.Grades,
		e.Feedback,
		e.ActionPlan,
		e.Status,
		e.Exported,
		e.ReferenceDate,
		e.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return evaluation.ErrEvaluationNotFound
	}

	return nil
}

// List implements evaluation.EvaluationRepository.
func (r *evaluationRepositoryImpl) List(ctx context.Context, filter evaluation.ListFilter) ([]evaluation.Evaluation, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + evaluationColumns + ` FROM avaliacoes WHERE 1=1`
	args := []interface{}{}

	if filter.ContractID != nil {
		args = append(args, *filter.ContractID)
		query += fmt.Sprintf(" AND id_contrato = $%d", len(args))
	}
	if filter.EvaluatorID != nil {
		args = append(args, *filter.EvaluatorID)
		query += fmt.Sprintf(" AND id_avaliador = $%d", len(args))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}

	query += " ORDER BY criado_em DESC"

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

	return collectEvaluations(rows)
}

// ListByContractAndDate implements evaluation.EvaluationRepository.
func (r *evaluationRepositoryImpl) ListByContractAndDate(ctx context.Context, contractID int64, date time.Time) ([]evaluation.Evaluation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + evaluationColumns + `
		FROM avaliacoes
		WHERE id_contrato = $1 AND data_referencia = $2
		ORDER BY criado_em
	`

	rows, err := q.Query(ctx, query, contractID, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectEvaluations(rows)
}

func collectEvaluations(rows pgx.Rows) ([]evaluation.Evaluation, error) {
	items := []evaluation.Evaluation{}
	for rows.Next() {
		found, err := scanEvaluation(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, found)
	}
	return items, rows.Err()
}
