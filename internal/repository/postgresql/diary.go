package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/checkpoint-estagio/checkpoint-backend-go/internal/domain/diary"
	"github.com/checkpoint-estagio/checkpoint-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type diaryRepositoryImpl struct {
	db *database.DB
}

func NewDiaryRepository(db *database.DB) diary.DiaryRepository {
	return &diaryRepositoryImpl{db: db}
}

const diaryColumns = `id, id_aluno, id_contrato, data_referencia, resumo, detalhes, anexo_url,
			   status, comentario_avaliador, criado_em, atualizado_em`

func scanDiary(row pgx.Row) (diary.DiaryEntry, error) {
	var found diary.DiaryEntry
	err := row.Scan(
		&found.ID,
		&found.StudentID,
		&found.ContractID,
		&found.ReferenceDate,
		&found.Summary,
		&found.Details,
		&found.AttachmentURL,
		&found.Status,
		&found.ReviewerComment,
		&found.CreatedAt,
		&found.UpdatedAt,
	)
	return found, err
}

// Create implements diary.DiaryRepository.
func (r *diaryRepositoryImpl) Create(ctx context.Context, d diary.DiaryEntry) (diary.DiaryEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO diarios_atividade (
			id_aluno, id_contrato, data_referencia, resumo, detalhes, anexo_url, status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + diaryColumns

	created, err := scanDiary(q.QueryRow(ctx, query,
		d.StudentID,
		d.ContractID,
		d.ReferenceDate,
		d.Summary,
		d.Details,
		d.AttachmentURL,
		d.Status,
	))
	if err != nil {
		return diary.DiaryEntry{}, err
	}

	return created, nil
}

// GetByID implements diary.DiaryRepository.
func (r *diaryRepositoryImpl) GetByID(ctx context.Context, id int64) (diary.DiaryEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + diaryColumns + ` FROM diarios_atividade WHERE id = $1`

	found, err := scanDiary(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return diary.DiaryEntry{}, diary.ErrDiaryNotFound
		}
		return diary.DiaryEntry{}, err
	}

	return found, nil
}

// Update implements diary.DiaryRepository.
func (r *diaryRepositoryImpl) Update(ctx context.Context, d diary.DiaryEntry) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE diarios_atividade
		SET resumo = $1, detalhes = $2, anexo_url = $3, status = $4,
			comentario_avaliador = $5, atualizado_em = NOW()
		WHERE id = $6
	`

	tag, err := q.Exec(ctx, query,
		d.Summary,
		d.Details,
		d.AttachmentURL,
		d.Status,
		d.ReviewerComment,
		d.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return diary.ErrDiaryNotFound
	}

	return nil
}

// List implements diary.DiaryRepository.
func (r *diaryRepositoryImpl) List(ctx context.Context, filter diary.ListFilter) ([]diary.DiaryEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + diaryColumns + ` FROM diarios_atividade WHERE 1=1`
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

	query += " ORDER BY data_referencia DESC, id DESC"

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

	return collectDiaries(rows)
}

// ListByStudentAndDate implements diary.DiaryRepository.
func (r *diaryRepositoryImpl) ListByStudentAndDate(ctx context.Context, studentID int64, date time.Time) ([]diary.DiaryEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + diaryColumns + `
		FROM diarios_atividade
		WHERE id_aluno = $1 AND data_referencia = $2
		ORDER BY criado_em
	`

	rows, err := q.Query(ctx, query, studentID, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectDiaries(rows)
}

func collectDiaries(rows pgx.Rows) ([]diary.DiaryEntry, error) {
	entries := []diary.DiaryEntry{}
	for rows.Next() {
		found, err := scanDiary(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, found)
	}
	return entries, rows.Err()
}
