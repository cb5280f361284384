package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/checkpoint-estagio/checkpoint-backend-go/internal/domain/contract"
	"github.com/checkpoint-estagio/checkpoint-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type contractRepositoryImpl struct {
	db *database.DB
}

func NewContractRepository(db *database.DB) contract.ContractRepository {
	return &contractRepositoryImpl{db: db}
}

// Expected times are TIME columns; they travel as "HH:MM" strings so
// to_char on the way out and a ::time cast on the way in keep the mapping
// explicit.
const contractSelect = `
	SELECT c.id, c.id_aluno, c.id_professor, c.id_endereco, c.id_turma, c.id_convenio,
		   c.id_supervisor_externo, c.data_inicio, c.data_final, c.status,
		   to_char(c.hora_inicio_prevista, 'HH24:MI'),
		   to_char(c.hora_fim_prevista, 'HH24:MI'),
		   c.tolerancia_minutos, c.raio_permitido_metros,
		   a.nome, p.nome
	FROM contratos c
	JOIN usuarios a ON a.id = c.id_aluno
	JOIN usuarios p ON p.id = c.id_professor
`

func scanContract(row pgx.Row) (contract.Contract, error) {
	var found contract.Contract
	err := row.Scan(
		&found.ID,
		&found.StudentID,
		&found.ProfessorID,
		&found.AddressID,
		&found.ClassID,
		&found.AgreementID,
		&found.ExternalSupervisorID,
		&found.StartDate,
		&found.EndDate,
		&found.Active,
		&found.ExpectedStart,
		&found.ExpectedEnd,
		&found.ToleranceMinutes,
		&found.AllowedRadiusMeters,
		&found.StudentName,
		&found.ProfessorName,
	)
	return found, err
}

// Create implements contract.ContractRepository.
func (r *contractRepositoryImpl) Create(ctx context.Context, c contract.Contract) (contract.Contract, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO contratos (
			id_aluno, id_professor, id_endereco, id_turma, id_convenio,
			id_supervisor_externo, data_inicio, data_final, status,
			hora_inicio_prevista, hora_fim_prevista, tolerancia_minutos, raio_permitido_metros
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10::time, $11::time, $12, $13)
		RETURNING id
	`

	var id int64
	err := q.QueryRow(ctx, query,
		c.StudentID,
		c.ProfessorID,
		c.AddressID,
		c.ClassID,
		c.AgreementID,
		c.ExternalSupervisorID,
		c.StartDate,
		c.EndDate,
		c.Active,
		c.ExpectedStart,
		c.ExpectedEnd,
		c.ToleranceMinutes,
		c.AllowedRadiusMeters,
	).Scan(&id)
	if err != nil {
		return contract.Contract{}, err
	}

	return r.GetByID(ctx, id)
}

// GetByID implements contract.ContractRepository.
func (r *contractRepositoryImpl) GetByID(ctx context.Context, id int64) (contract.Contract, error) {
	q := GetQuerier(ctx, r.db)

	found, err := scanContract(q.QueryRow(ctx, contractSelect+` WHERE c.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return contract.Contract{}, contract.ErrContractNotFound
		}
		return contract.Contract{}, err
	}

	return found, nil
}

// GetActiveByStudent implements contract.ContractRepository.
func (r *contractRepositoryImpl) GetActiveByStudent(ctx context.Context, studentID int64) (contract.Contract, error) {
	q := GetQuerier(ctx, r.db)

	query := contractSelect + ` WHERE c.id_aluno = $1 AND c.status ORDER BY c.id DESC LIMIT 1`

	found, err := scanContract(q.QueryRow(ctx, query, studentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return contract.Contract{}, contract.ErrNoActiveContract
		}
		return contract.Contract{}, err
	}

	return found, nil
}

// List implements contract.ContractRepository.
func (r *contractRepositoryImpl) List(ctx context.Context, filter contract.ListFilter) ([]contract.Contract, error) {
	q := GetQuerier(ctx, r.db)

	query := contractSelect + ` WHERE 1=1`
	args := []interface{}{}

	if filter.StudentID != nil {
		args = append(args, *filter.StudentID)
		query += fmt.Sprintf(" AND c.id_aluno = $%d", len(args))
	}
	if filter.ProfessorID != nil {
		args = append(args, *filter.ProfessorID)
		query += fmt.Sprintf(" AND c.id_professor = $%d", len(args))
	}
	if filter.Active != nil {
		args = append(args, *filter.Active)
		query += fmt.Sprintf(" AND c.status = $%d", len(args))
	}

	query += " ORDER BY c.id DESC"

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

	contracts := []contract.Contract{}
	for rows.Next() {
		found, err := scanContract(rows)
		if err != nil {
			return nil, err
		}
		contracts = append(contracts, found)
	}

	return contracts, rows.Err()
}

// Update implements contract.ContractRepository.
func (r *contractRepositoryImpl) Update(ctx context.Context, c contract.Contract) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE contratos
		SET id_endereco = $1, id_turma = $2, id_convenio = $3, id_supervisor_externo = $4,
			data_inicio = $5, data_final = $6, status = $7,
			hora_inicio_prevista = $8::time, hora_fim_prevista = $9::time,
			tolerancia_minutos = $10, raio_permitido_metros = $11
		WHERE id = $12
	`

	tag, err := q.Exec(ctx, query,
		c.AddressID,
		c.ClassID,
		c.AgreementID,
		c.ExternalSupervisorID,
		c.StartDate,
		c.EndDate,
		c.Active,
		c.ExpectedStart,
		c.ExpectedEnd,
		c.ToleranceMinutes,
		c.AllowedRadiusMeters,
		c.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return contract.ErrContractNotFound
	}

	return nil
}
