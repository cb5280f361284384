package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/checkpoint-estagio/checkpoint-backend-go/internal/domain/clock"
	"github.com/checkpoint-estagio/checkpoint-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type clockRepositoryImpl struct {
	db *database.DB
}

func NewClockRepository(db *database.DB) clock.ClockRepository {
	return &clockRepositoryImpl{db: db}
}

const clockColumns = `id, id_contrato, data, hora_entrada, hora_saida, tempo_trabalhado_minutos,
			   ativo, entrada_latitude, entrada_longitude, saida_latitude, saida_longitude,
			   validado_localizacao, alerta`

func scanClockEntry(row pgx.Row) (clock.ClockEntry, error) {
	var entry clock.ClockEntry
	err := row.Scan(
		&entry.ID,
		&entry.ContractID,
		&entry.Date,
		&entry.EntryTime,
		&entry.ExitTime,
		&entry.WorkedMinutes,
		&entry.Active,
		&entry.EntryLatitude,
		&entry.EntryLongitude,
		&entry.ExitLatitude,
		&entry.ExitLongitude,
		&entry.GeofenceValidated,
		&entry.Alert,
	)
	return entry, err
}

// Create implements clock.ClockRepository. The partial unique index on
// (id_contrato) WHERE ativo rejects a second open entry at the schema level,
// so concurrent clock-ins cannot both succeed.
func (r *clockRepositoryImpl) Create(ctx context.Context, entry clock.ClockEntry) (clock.ClockEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO pontos (
			id_contrato, data, hora_entrada, ativo, entrada_latitude, entrada_longitude,
			validado_localizacao, alerta
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + clockColumns

	created, err := scanClockEntry(q.QueryRow(ctx, query,
		entry.ContractID,
		entry.Date,
		entry.EntryTime,
		entry.Active,
		entry.EntryLatitude,
		entry.EntryLongitude,
		entry.GeofenceValidated,
		entry.Alert,
	))
	if err != nil {
		return clock.ClockEntry{}, err
	}

	return created, nil
}

// GetOpenByContract implements clock.ClockRepository.
func (r *clockRepositoryImpl) GetOpenByContract(ctx context.Context, contractID int64) (clock.ClockEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + clockColumns + ` FROM pontos WHERE id_contrato = $1 AND ativo`

	entry, err := scanClockEntry(q.QueryRow(ctx, query, contractID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return clock.ClockEntry{}, clock.ErrNoOpenEntry
		}
		return clock.ClockEntry{}, err
	}

	return entry, nil
}

// Update implements clock.ClockRepository.
func (r *clockRepositoryImpl) Update(ctx context.Context, entry clock.ClockEntry) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE pontos
		SET hora_saida = $1, tempo_trabalhado_minutos = $2, ativo = $3,
			saida_latitude = $4, saida_longitude = $5, validado_localizacao = $6, alerta = $7
		WHERE id = $8
	`

	tag, err := q.Exec(ctx, query,
		entry.ExitTime,
		entry.WorkedMinutes,
		entry.Active,
		entry.ExitLatitude,
		entry.ExitLongitude,
		entry.GeofenceValidated,
		entry.Alert,
		entry.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return clock.ErrPontoNotFound
	}

	return nil
}

// ListByContractAndDate implements clock.ClockRepository.
func (r *clockRepositoryImpl) ListByContractAndDate(ctx context.Context, contractID int64, date time.Time) ([]clock.ClockEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + clockColumns + `
		FROM pontos
		WHERE id_contrato = $1 AND data = $2
		ORDER BY hora_entrada
	`

	rows, err := q.Query(ctx, query, contractID, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectClockEntries(rows)
}

// ListByContractRange implements clock.ClockRepository.
func (r *clockRepositoryImpl) ListByContractRange(ctx context.Context, contractID int64, from, to time.Time) ([]clock.ClockEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + clockColumns + `
		FROM pontos
		WHERE id_contrato = $1 AND data BETWEEN $2 AND $3
		ORDER BY data, hora_entrada
	`

	rows, err := q.Query(ctx, query, contractID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectClockEntries(rows)
}

func collectClockEntries(rows pgx.Rows) ([]clock.ClockEntry, error) {
	entries := []clock.ClockEntry{}
	for rows.Next() {
		entry, err := scanClockEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
