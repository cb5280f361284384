package clock

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/checkpoint-estagio/checkpoint-backend-go/internal/config"
	"github.com/checkpoint-estagio/checkpoint-backend-go/internal/domain/address"
	"github.com/checkpoint-estagio/checkpoint-backend-go/internal/domain/clock"
	"github.com/checkpoint-estagio/checkpoint-backend-go/internal/domain/contract"
	"github.com/checkpoint-estagio/checkpoint-backend-go/internal/domain/diary"
	"github.com/checkpoint-estagio/checkpoint-backend-go/internal/domain/evaluation"
	"github.com/checkpoint-estagio/checkpoint-backend-go/internal/domain/justification"
)

type ClockServiceImpl struct {
	entries        clock.ClockRepository
	contracts      contract.ContractRepository
	addresses      address.AddressRepository
	justifications justification.JustificationService
	diaries        diary.DiaryRepository
	evaluations    evaluation.EvaluationRepository
	policy         config.AttendanceConfig
	logger         *slog.Logger
	now            func() time.Time
}

func NewClockService(
	clockRepository clock.ClockRepository,
	contractRepository contract.ContractRepository,
	addressRepository address.AddressRepository,
	justificationService justification.JustificationService,
	diaryRepository diary.DiaryRepository,
	evaluationRepository evaluation.EvaluationRepository,
	policy config.AttendanceConfig,
	logger *slog.Logger,
) clock.ClockService {
	return &ClockServiceImpl{
		entries:        clockRepository,
		contracts:      contractRepository,
		addresses:      addressRepository,
		justifications: justificationService,
		diaries:        diaryRepository,
		evaluations:    evaluationRepository,
		policy:         policy,
		logger:         logger,
		now:            time.Now,
	}
}

// Toggle implements clock.ClockService. With an open entry the call closes
// it; without one it opens a new entry after the geofence check. Races
// between two opens are settled by the partial unique index on open
// entries, not by this method.
func (s *ClockServiceImpl) Toggle(ctx context.Context, studentID int64, req clock.ToggleRequest) (clock.ToggleResponse, error) {
	contractData, err := s.contracts.GetActiveByStudent(ctx, studentID)
	if err != nil {
		return clock.ToggleResponse{}, err
	}

	open, err := s.entries.GetOpenByContract(ctx, contractData.ID)
	if err == nil {
		closed, err := s.close(ctx, open, &req.Latitude, &req.Longitude)
		if err != nil {
			return clock.ToggleResponse{}, err
		}
		return clock.ToggleResponse{Action: clock.ActionClosed, Entry: clock.ToResponse(closed)}, nil
	}
	if !errors.Is(err, clock.ErrNoOpenEntry) {
		return clock.ToggleResponse{}, fmt.Errorf("failed to get open entry: %w", err)
	}

	opened, err := s.open(ctx, studentID, contractData, req)
	if err != nil {
		return clock.ToggleResponse{}, err
	}
	return clock.ToggleResponse{Action: clock.ActionOpened, Entry: clock.ToResponse(opened)}, nil
}

func (s *ClockServiceImpl) open(ctx context.Context, studentID int64, contractData contract.Contract, req clock.ToggleRequest) (clock.ClockEntry, error) {
	addr, err := s.addresses.GetByID(ctx, contractData.AddressID)
	if err != nil {
		return clock.ClockEntry{}, err
	}

	radius := contractData.EffectiveRadiusMeters(s.policy.DefaultRadiusMeters)
	verdict := evaluateGeofence(addr, req.Latitude, req.Longitude, radius)

	if !verdict.Inside {
		// The entry is rejected, but a pending justification is opened so
		// the attempt can still be reviewed and adjusted by staff.
		reason := fmt.Sprintf("registro de ponto fora da area permitida: distancia %.1fm, raio %dm", *verdict.DistanceMeters, radius)
		created, err := s.justifications.CreateAutomatic(ctx, studentID, contractData.ID, reason)
		if err != nil {
			return clock.ClockEntry{}, fmt.Errorf("failed to open justification for geofence violation: %w", err)
		}

		s.logger.Warn("clock-in rejected by geofence",
			"student_id", studentID, "contract_id", contractData.ID,
			"distance_m", *verdict.DistanceMeters, "radius_m", radius,
			"justification_id", created.ID)

		return clock.ClockEntry{}, &clock.GeofenceViolationError{
			JustificationID: created.ID,
			DistanceMeters:  *verdict.DistanceMeters,
			AllowedRadius:   radius,
		}
	}

	now := s.now().UTC()
	tolerance := contractData.EffectiveToleranceMinutes(s.policy.DefaultToleranceMinutes)

	alert := evaluateWindow(contractData.ExpectedStart, tolerance, now)
	if alert == nil {
		alert = verdict.Alert
	}

	entry := clock.ClockEntry{
		ContractID:        contractData.ID,
		Date:              now.Truncate(24 * time.Hour),
		EntryTime:         now,
		Active:            true,
		EntryLatitude:     &req.Latitude,
		EntryLongitude:    &req.Longitude,
		GeofenceValidated: verdict.Validated,
		Alert:             alert,
	}

	created, err := s.entries.Create(ctx, entry)
	if err != nil {
		return clock.ClockEntry{}, fmt.Errorf("failed to create clock entry: %w", err)
	}
	return created, nil
}

func (s *ClockServiceImpl) close(ctx context.Context, entry clock.ClockEntry, latitude, longitude *float64) (clock.ClockEntry, error) {
	now := s.now().UTC()
	worked := workedMinutes(entry.EntryTime, now, s.policy.RoundingMinutes)

	entry.ExitTime = &now
	entry.WorkedMinutes = &worked
	entry.Active = false
	entry.ExitLatitude = latitude
	entry.ExitLongitude = longitude

	if err := s.entries.Update(ctx, entry); err != nil {
		return clock.ClockEntry{}, fmt.Errorf("failed to close clock entry: %w", err)
	}
	return entry, nil
}

// CloseOpen implements clock.ClockService.
func (s *ClockServiceImpl) CloseOpen(ctx context.Context, studentID int64) (clock.ClockEntryResponse, error) {
	contractData, err := s.contracts.GetActiveByStudent(ctx, studentID)
	if err != nil {
		return clock.ClockEntryResponse{}, err
	}

	open, err := s.entries.GetOpenByContract(ctx, contractData.ID)
	if err != nil {
		return clock.ClockEntryResponse{}, err
	}

	closed, err := s.close(ctx, open, nil, nil)
	if err != nil {
		return clock.ClockEntryResponse{}, err
	}
	return clock.ToResponse(closed), nil
}

// GetOpen implements clock.ClockService.
func (s *ClockServiceImpl) GetOpen(ctx context.Context, studentID int64) (clock.ClockEntryResponse, error) {
	contractData, err := s.contracts.GetActiveByStudent(ctx, studentID)
	if err != nil {
		return clock.ClockEntryResponse{}, err
	}

	open, err := s.entries.GetOpenByContract(ctx, contractData.ID)
	if err != nil {
		return clock.ClockEntryResponse{}, err
	}
	return clock.ToResponse(open), nil
}

// CheckLocation implements clock.ClockService.
func (s *ClockServiceImpl) CheckLocation(ctx context.Context, studentID int64, req clock.CheckLocationRequest) (clock.LocationCheckResult, error) {
	contractData, err := s.contracts.GetActiveByStudent(ctx, studentID)
	if err != nil {
		return clock.LocationCheckResult{}, err
	}

	addr, err := s.addresses.GetByID(ctx, contractData.AddressID)
	if err != nil {
		return clock.LocationCheckResult{}, err
	}

	radius := contractData.EffectiveRadiusMeters(s.policy.DefaultRadiusMeters)
	return evaluateGeofence(addr, req.Latitude, req.Longitude, radius), nil
}

// Timeline implements clock.ClockService.
func (s *ClockServiceImpl) Timeline(ctx context.Context, studentID int64, date time.Time) (clock.TimelineResponse, error) {
	date = date.UTC().Truncate(24 * time.Hour)
	response := clock.TimelineResponse{
		Date:           date.Format("2006-01-02"),
		Entries:        []clock.ClockEntryResponse{},
		Justifications: []justification.JustificationResponse{},
		DiaryEntries:   []diary.DiaryResponse{},
		Evaluations:    []evaluation.EvaluationResponse{},
	}

	justifications, err := s.justifications.ListForDay(ctx, studentID, date)
	if err != nil {
		return clock.TimelineResponse{}, err
	}
	response.Justifications = append(response.Justifications, justifications...)

	diaries, err := s.diaries.ListByStudentAndDate(ctx, studentID, date)
	if err != nil {
		return clock.TimelineResponse{}, fmt.Errorf("failed to list diary entries: %w", err)
	}
	for _, d := range diaries {
		response.DiaryEntries = append(response.DiaryEntries, diary.ToResponse(d))
	}

	contractData, err := s.contracts.GetActiveByStudent(ctx, studentID)
	if err != nil {
		if errors.Is(err, contract.ErrNoActiveContract) {
			return response, nil
		}
		return clock.TimelineResponse{}, err
	}
	response.ContractID = &contractData.ID

	entries, err := s.entries.ListByContractAndDate(ctx, contractData.ID, date)
	if err != nil {
		return clock.TimelineResponse{}, fmt.Errorf("failed to list clock entries: %w", err)
	}

	now := s.now().UTC()
	total := 0
	for _, e := range entries {
		response.Entries = append(response.Entries, clock.ToResponse(e))
		total += e.ElapsedMinutes(now)
	}
	response.TotalWorkedMinutes = total

	evaluations, err := s.evaluations.ListByContractAndDate(ctx, contractData.ID, date)
	if err != nil {
		return clock.TimelineResponse{}, fmt.Errorf("failed to list evaluations: %w", err)
	}
	for _, e := range evaluations {
		response.Evaluations = append(response.Evaluations, evaluation.ToResponse(e))
	}

	if expected := expectedMinutes(contractData); expected != nil {
		balance := total - *expected
		response.ExpectedMinutes = expected
		response.BalanceMinutes = &balance
	}

	return response, nil
}

// expectedMinutes derives the planned daily load from the contract's
// expected start and end times. Nil when either side is missing.
func expectedMinutes(c contract.Contract) *int {
	if c.ExpectedStart == nil || c.ExpectedEnd == nil {
		return nil
	}
	start, err := time.Parse("15:04", *c.ExpectedStart)
	if err != nil {
		return nil
	}
	end, err := time.Parse("15:04", *c.ExpectedEnd)
	if err != nil {
		return nil
	}
	minutes := int(end.Sub(start).Minutes())
	if minutes < 0 {
		return nil
	}
	return &minutes
}
