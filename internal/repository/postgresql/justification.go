package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/checkpoint-estagio/checkpoint-backend-go/internal/domain/justification"
	"github.com/checkpoint-estagio/checkpoint-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type justificationRepositoryImpl struct {
	db *database.DB
}

func NewJustificationRepository(db *database.DB) justification.JustificationRepository {
	return &justificationRepositoryImpl{db: db}
}

const justificationColumns = `id, id_aluno, id_contrato, id_ponto, tipo, motivo, status,
			   comentario_resolucao, evidencia_url, data_referencia, prazo_resposta,
			   resolvido_em, criado_automaticamente, criado_em, atualizado_em`

func scanJustification(row pgx.Row) (justification.Justification, error) {
	var found justification.Justification
	err := row.Scan(
		&found.ID,
		&found.StudentID,
		&found.ContractID,
		&found.PontoID,
		&found.Type,
		&found.Reason,
		&found.Status,
		&found.ResolutionComment,
		&found.EvidenceURL,
		&found.ReferenceDate,
		&found.ResponseDeadline,
		&found.ResolvedAt,
		&found.AutoCreated,
		&found.CreatedAt,
		&found.UpdatedAt,
	)
	return found, err
}

// Create implements justification.JustificationRepository.
func (r *justificationRepositoryImpl) Create(ctx context.Context, j justification.Justification) (justification.Justification, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO justificativas (
			id_aluno, id_contrato, id_ponto, tipo, motivo, status, evidencia_url,
			data_referencia, prazo_resposta, criado_automaticamente
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + justificationColumns

	created, err := scanJustification(q.QueryRow(ctx, query,
		j.StudentID,
		j.ContractID,
		j.PontoID,
		j.Type,
		j.Reason,
		j.Status,
		j.EvidenceURL,
		j.ReferenceDate,
		j.ResponseDeadline,
		j.AutoCreated,
	))
	if err != nil {
		return justification.Justification{}, err
	}

	return created, nil
}

// GetByID implements justification.JustificationRepository.
func (r *justificationRepositoryImpl) GetByID(ctx context.Context, id int64) (justification.Justification, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + justificationColumns + ` FROM justificativas WHERE id = $1`

	found, err := scanJustification(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return justification.Justification{}, justification.ErrJustificationNotFound
		}
		return justification.Justification{}, err
	}

	return found, nil
}

// Update implements justification.JustificationRepository.
func (r *justificationRepositoryImpl) Update(ctx context.Context, j justification.Justification) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE justificativas
		SET status = $1, comentario_resolucao = $2, resolvido_em = $3, atualizado_em = NOW()
		WHERE id = $4
	`

	tag, err := q.Exec(ctx, query, j.Status, j.ResolutionComment, j.ResolvedAt, j.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return justification.ErrJustificationNotFound
	}

	return nil
}

// List implements justification.JustificationRepository.
func (r *justificationRepositoryImpl) List(ctx context.Context, filter justification.ListFilter) ([]justification.Justification, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + justificationColumns + ` FROM justificativas WHERE 1=1`
	args := []interface{}{}

	if filter.StudentID != nil {
		args = append(args, *filter.StudentID)
		query += fmt.Sprintf(" AND id_aluno = $%d", len(args))
	}
	if filter.ContractID != nil {
		args = append(args, *filter.ContractID)
		query += fmt.Sprintf(" AND id_contrato = $%d", len(args))
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

	return collectJustifications(rows)
}

// ListByStudentAndDate implements justification.JustificationRepository.
func (r *justificationRepositoryImpl) ListByStudentAndDate(ctx context.Context, studentID int64, date time.Time) ([]justification.Justification, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + justificationColumns + `
		FROM justificativas
		WHERE id_aluno = $1 AND data_referencia = $2
		ORDER BY criado_em
	`

	rows, err := q.Query(ctx, query, studentID, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectJustifications(rows)
}

// ExpireOverdue implements justification.JustificationRepository. The update
// and its audit rows run as one statement, so a concurrent sweep sees the
// rows already expired and changes nothing.
func (r *justificationRepositoryImpl) ExpireOverdue(ctx context.Context, now time.Time) ([]int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		WITH expired AS (
			UPDATE justificativas
			SET status = $1, atualizado_em = $2
			WHERE status = $3 AND prazo_resposta < $2
			RETURNING id
		)
		INSERT INTO justificativa_logs (justificativa_id, status, mensagem)
		SELECT id, $1, 'response deadline expired' FROM expired
		RETURNING justificativa_id
	`

	rows, err := q.Query(ctx, query, justification.StatusExpired, now, justification.StatusPending)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := []int64{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

// AppendLog implements justification.JustificationRepository.
func (r *justificationRepositoryImpl) AppendLog(ctx context.Context, log justification.Log) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO justificativa_logs (justificativa_id, status, mensagem)
		VALUES ($1, $2, $3)
	`

	_, err := q.Exec(ctx, query, log.JustificationID, log.Status, log.Message)
	return err
}

// ListLogs implements justification.JustificationRepository.
func (r *justificationRepositoryImpl) ListLogs(ctx context.Context, justificationID int64) ([]justification.Log, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, justificativa_id, status, mensagem, criado_em
		FROM justificativa_logs
		WHERE justificativa_id = $1
		ORDER BY criado_em
	`

	rows, err := q.Query(ctx, query, justificationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	logs := []justification.Log{}
	for rows.Next() {
		var log justification.Log
		if err := rows.Scan(&log.ID, &log.JustificationID, &log.Status, &log.Message, &log.CreatedAt); err != nil {
			return nil, err
		}
		logs = append(logs, log)
	}

	return logs, rows.Err()
}

func collectJustifications(rows pgx.Rows) ([]justification.Justification, error) {
	items := []justification.Justification{}
	for rows.Next() {
		found, err := scanJustification(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, found)
	}
	return items, rows.Err()
}
