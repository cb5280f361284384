package clock

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/checkpoint-estagio/checkpoint-backend-go/internal/config"
	"github.com/checkpoint-estagio/checkpoint-backend-go/internal/domain/address"
	"github.com/checkpoint-estagio/checkpoint-backend-go/internal/domain/clock"
	"github.com/checkpoint-estagio/checkpoint-backend-go/internal/domain/contract"
	"github.com/checkpoint-estagio/checkpoint-backend-go/internal/domain/diary"
	"github.com/checkpoint-estagio/checkpoint-backend-go/internal/domain/evaluation"
	"github.com/checkpoint-estagio/checkpoint-backend-go/internal/domain/justification"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Roughly 137m north of the base coordinates.
const (
	baseLat   = -23.5505
	baseLong  = -46.6333
	farLat    = baseLat + 0.00123207
	testLat   = baseLat
	testLong  = baseLong
	contractA = int64(10)
	studentA  = int64(1)
)

type fakeClockRepository struct {
	nextID  int64
	entries map[int64]clock.ClockEntry
}

func newFakeClockRepository() *fakeClockRepository {
	return &fakeClockRepository{nextID: 1, entries: map[int64]clock.ClockEntry{}}
}

func (f *fakeClockRepository) Create(ctx context.Context, entry clock.ClockEntry) (clock.ClockEntry, error) {
	entry.ID = f.nextID
	f.nextID++
	f.entries[entry.ID] = entry
	return entry, nil
}

func (f *fakeClockRepository) GetOpenByContract(ctx context.Context, contractID int64) (clock.ClockEntry, error) {
	for _, e := range f.entries {
		if e.ContractID == contractID && e.Active {
			return e, nil
		}
	}
	return clock.ClockEntry{}, clock.ErrNoOpenEntry
}

func (f *fakeClockRepository) Update(ctx context.Context, entry clock.ClockEntry) error {
	if _, ok := f.entries[entry.ID]; !ok {
		return clock.ErrPontoNotFound
	}
	f.entries[entry.ID] = entry
	return nil
}

func (f *fakeClockRepository) ListByContractAndDate(ctx context.Context, contractID int64, date time.Time) ([]clock.ClockEntry, error) {
	entries := []clock.ClockEntry{}
	for _, e := range f.entries {
		if e.ContractID == contractID && e.Date.Equal(date) {
			entries = append(entries, e)
		}
	}
	return entries, nil
}

func (f *fakeClockRepository) ListByContractRange(ctx context.Context, contractID int64, from, to time.Time) ([]clock.ClockEntry, error) {
	entries := []clock.ClockEntry{}
	for _, e := range f.entries {
		if e.ContractID == contractID && !e.Date.Before(from) && !e.Date.After(to) {
			entries = append(entries, e)
		}
	}
	return entries, nil
}

type fakeContractRepository struct {
	contracts map[int64]contract.Contract
}

func (f *fakeContractRepository) Create(ctx context.Context, c contract.Contract) (contract.Contract, error) {
	return c, nil
}

func (f *fakeContractRepository) GetByID(ctx context.Context, id int64) (contract.Contract, error) {
	if c, ok := f.contracts[id]; ok {
		return c, nil
	}
	return contract.Contract{}, contract.ErrContractNotFound
}

func (f *fakeContractRepository) GetActiveByStudent(ctx context.Context, studentID int64) (contract.Contract, error) {
	for _, c := range f.contracts {
		if c.StudentID == studentID && c.Active {
			return c, nil
		}
	}
	return contract.Contract{}, contract.ErrNoActiveContract
}

func (f *fakeContractRepository) List(ctx context.Context, filter contract.ListFilter) ([]contract.Contract, error) {
	return nil, nil
}

func (f *fakeContractRepository) Update(ctx context.Context, c contract.Contract) error {
	return nil
}

type fakeAddressRepository struct {
	addresses map[int64]address.Address
}

func (f *fakeAddressRepository) Create(ctx context.Context, a address.Address) (address.Address, error) {
	return a, nil
}

func (f *fakeAddressRepository) GetByID(ctx context.Context, id int64) (address.Address, error) {
	if a, ok := f.addresses[id]; ok {
		return a, nil
	}
	return address.Address{}, address.ErrAddressNotFound
}

type fakeJustificationService struct {
	nextID  int64
	created []justification.Justification
}

func (f *fakeJustificationService) Create(ctx context.Context, studentID int64, req justification.CreateJustificationRequest) (justification.JustificationResponse, error) {
	return justification.JustificationResponse{}, nil
}

func (f *fakeJustificationService) CreateAutomatic(ctx context.Context, studentID, contractID int64, reason string) (justification.Justification, error) {
	f.nextID++
	j := justification.Justification{
		ID:          f.nextID,
		StudentID:   studentID,
		ContractID:  contractID,
		Type:        justification.TypeLocationAdjustment,
		Reason:      reason,
		Status:      justification.StatusPending,
		AutoCreated: true,
	}
	f.created = append(f.created, j)
	return j, nil
}

func (f *fakeJustificationService) Review(ctx context.Context, reviewerID int64, req justification.ReviewJustificationRequest) (justification.JustificationResponse, error) {
	return justification.JustificationResponse{}, nil
}

func (f *fakeJustificationService) Get(ctx context.Context, id int64) (justification.JustificationResponse, error) {
	return justification.JustificationResponse{}, nil
}

func (f *fakeJustificationService) Logs(ctx context.Context, id int64) ([]justification.LogResponse, error) {
	return nil, nil
}

func (f *fakeJustificationService) List(ctx context.Context, filter justification.ListFilter) ([]justification.JustificationResponse, error) {
	responses := []justification.JustificationResponse{}
	for _, j := range f.created {
		if filter.StudentID == nil || j.StudentID == *filter.StudentID {
			responses = append(responses, justification.ToResponse(j))
		}
	}
	return responses, nil
}

func (f *fakeJustificationService) ListForDay(ctx context.Context, studentID int64, date time.Time) ([]justification.JustificationResponse, error) {
	day := date.Format("2006-01-02")
	responses := []justification.JustificationResponse{}
	for _, j := range f.created {
		resp := justification.ToResponse(j)
		if j.StudentID == studentID && resp.ReferenceDate == day {
			responses = append(responses, resp)
		}
	}
	return responses, nil
}

func (f *fakeJustificationService) ExpireOverdue(ctx context.Context, now time.Time) (int, error) {
	return 0, nil
}

type fakeDiaryRepository struct {
	items []diary.DiaryEntry
}

func (f *fakeDiaryRepository) Create(ctx context.Context, d diary.DiaryEntry) (diary.DiaryEntry, error) {
	f.items = append(f.items, d)
	return d, nil
}

func (f *fakeDiaryRepository) GetByID(ctx context.Context, id int64) (diary.DiaryEntry, error) {
	return diary.DiaryEntry{}, diary.ErrDiaryNotFound
}

func (f *fakeDiaryRepository) Update(ctx context.Context, d diary.DiaryEntry) error {
	return nil
}

func (f *fakeDiaryRepository) List(ctx context.Context, filter diary.ListFilter) ([]diary.DiaryEntry, error) {
	return f.items, nil
}

func (f *fakeDiaryRepository) ListByStudentAndDate(ctx context.Context, studentID int64, date time.Time) ([]diary.DiaryEntry, error) {
	items := []diary.DiaryEntry{}
	for _, d := range f.items {
		if d.StudentID == studentID && d.ReferenceDate.Equal(date) {
			items = append(items, d)
		}
	}
	return items, nil
}

type fakeEvaluationRepository struct{}

func (fakeEvaluationRepository) Create(ctx context.Context, e evaluation.Evaluation) (evaluation.Evaluation, error) {
	return e, nil
}

func (fakeEvaluationRepository) GetByID(ctx context.Context, id int64) (evaluation.Evaluation, error) {
	return evaluation.Evaluation{}, evaluation.ErrEvaluationNotFound
}

func (fakeEvaluationRepository) Update(ctx context.Context, e evaluation.Evaluation) error {
	return nil
}

func (fakeEvaluationRepository) List(ctx context.Context, filter evaluation.ListFilter) ([]evaluation.Evaluation, error) {
	return nil, nil
}

func (fakeEvaluationRepository) ListByContractAndDate(ctx context.Context, contractID int64, date time.Time) ([]evaluation.Evaluation, error) {
	return nil, nil
}

type testHarness struct {
	svc            *ClockServiceImpl
	entries        *fakeClockRepository
	justifications *fakeJustificationService
	diaries        *fakeDiaryRepository
	clock          *time.Time
}

func (h *testHarness) setNow(t time.Time) { *h.clock = t }

func newHarness(withCoords bool) *testHarness {
	lat, long := baseLat, baseLong
	addr := address.Address{ID: 5, Street: "Av. Paulista", City: "Sao Paulo", State: "SP"}
	if withCoords {
		addr.Latitude = &lat
		addr.Longitude = &long
	}

	expectedStart := "09:00"
	expectedEnd := "12:00"
	radius := 100
	contracts := &fakeContractRepository{contracts: map[int64]contract.Contract{
		contractA: {
			ID:                  contractA,
			StudentID:           studentA,
			ProfessorID:         2,
			AddressID:           addr.ID,
			Active:              true,
			ExpectedStart:       &expectedStart,
			ExpectedEnd:         &expectedEnd,
			AllowedRadiusMeters: &radius,
		},
	}}

	entries := newFakeClockRepository()
	justifications := &fakeJustificationService{}
	diaries := &fakeDiaryRepository{}

	svc := NewClockService(
		entries,
		contracts,
		&fakeAddressRepository{addresses: map[int64]address.Address{addr.ID: addr}},
		justifications,
		diaries,
		fakeEvaluationRepository{},
		config.AttendanceConfig{
			DefaultRadiusMeters:     200,
			DefaultToleranceMinutes: 10,
			RoundingMinutes:         5,
			JustificationSLAHours:   48,
		},
		slog.Default(),
	).(*ClockServiceImpl)

	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	h := &testHarness{svc: svc, entries: entries, justifications: justifications, diaries: diaries, clock: &now}
	svc.now = func() time.Time { return *h.clock }
	return h
}

func TestToggle_OpensThenCloses(t *testing.T) {
	ctx := context.Background()
	h := newHarness(true)
	h.setNow(time.Date(2025, 3, 10, 10, 2, 0, 0, time.UTC))

	opened, err := h.svc.Toggle(ctx, studentA, clock.ToggleRequest{Latitude: testLat, Longitude: testLong})
	require.NoError(t, err)
	assert.Equal(t, clock.ActionOpened, opened.Action)
	assert.True(t, opened.Entry.Active)
	assert.True(t, opened.Entry.GeofenceValidated)
	assert.Nil(t, opened.Entry.WorkedMinutes)

	h.setNow(time.Date(2025, 3, 10, 10, 58, 0, 0, time.UTC))

	closed, err := h.svc.Toggle(ctx, studentA, clock.ToggleRequest{Latitude: testLat, Longitude: testLong})
	require.NoError(t, err)
	assert.Equal(t, clock.ActionClosed, closed.Action)
	assert.False(t, closed.Entry.Active)
	require.NotNil(t, closed.Entry.WorkedMinutes)
	assert.Equal(t, 60, *closed.Entry.WorkedMinutes)
	require.NotNil(t, closed.Entry.ExitTime)
}

func TestToggle_GeofenceViolation(t *testing.T) {
	ctx := context.Background()
	h := newHarness(true)

	_, err := h.svc.Toggle(ctx, studentA, clock.ToggleRequest{Latitude: farLat, Longitude: baseLong})
	require.Error(t, err)

	var violation *clock.GeofenceViolationError
	require.ErrorAs(t, err, &violation)
	assert.Greater(t, violation.DistanceMeters, 100.0)
	assert.InDelta(t, 137.0, violation.DistanceMeters, 2.0)
	assert.Equal(t, 100, violation.AllowedRadius)

	// Exactly one justification opened, no entry created.
	require.Len(t, h.justifications.created, 1)
	assert.Equal(t, violation.JustificationID, h.justifications.created[0].ID)
	assert.True(t, h.justifications.created[0].AutoCreated)
	assert.Empty(t, h.entries.entries)
}

func TestToggle_FailsOpenWithoutCoordinates(t *testing.T) {
	ctx := context.Background()
	h := newHarness(false)

	opened, err := h.svc.Toggle(ctx, studentA, clock.ToggleRequest{Latitude: farLat, Longitude: baseLong})
	require.NoError(t, err)
	assert.Equal(t, clock.ActionOpened, opened.Action)
	assert.False(t, opened.Entry.GeofenceValidated)
	require.NotNil(t, opened.Entry.Alert)
	assert.Empty(t, h.justifications.created)
}

func TestToggle_WindowAlerts(t *testing.T) {
	ctx := context.Background()

	t.Run("early clock-in is flagged", func(t *testing.T) {
		h := newHarness(true)
		h.setNow(time.Date(2025, 3, 10, 8, 49, 0, 0, time.UTC))

		opened, err := h.svc.Toggle(ctx, studentA, clock.ToggleRequest{Latitude: testLat, Longitude: testLong})
		require.NoError(t, err)
		require.NotNil(t, opened.Entry.Alert)
		assert.Contains(t, *opened.Entry.Alert, "antes")
	})

	t.Run("clock-in inside tolerance is clean", func(t *testing.T) {
		h := newHarness(true)
		h.setNow(time.Date(2025, 3, 10, 8, 51, 0, 0, time.UTC))

		opened, err := h.svc.Toggle(ctx, studentA, clock.ToggleRequest{Latitude: testLat, Longitude: testLong})
		require.NoError(t, err)
		assert.Nil(t, opened.Entry.Alert)
	})

	t.Run("late clock-in is flagged", func(t *testing.T) {
		h := newHarness(true)
		h.setNow(time.Date(2025, 3, 10, 9, 11, 0, 0, time.UTC))

		opened, err := h.svc.Toggle(ctx, studentA, clock.ToggleRequest{Latitude: testLat, Longitude: testLong})
		require.NoError(t, err)
		require.NotNil(t, opened.Entry.Alert)
		assert.Contains(t, *opened.Entry.Alert, "apos")
	})
}

func TestToggle_NoActiveContract(t *testing.T) {
	h := newHarness(true)

	_, err := h.svc.Toggle(context.Background(), 999, clock.ToggleRequest{Latitude: testLat, Longitude: testLong})
	assert.ErrorIs(t, err, contract.ErrNoActiveContract)
}

func TestCheckLocation_DoesNotTouchState(t *testing.T) {
	ctx := context.Background()
	h := newHarness(true)

	result, err := h.svc.CheckLocation(ctx, studentA, clock.CheckLocationRequest{Latitude: farLat, Longitude: baseLong})
	require.NoError(t, err)
	assert.False(t, result.Inside)
	assert.False(t, result.Validated)
	require.NotNil(t, result.DistanceMeters)
	assert.InDelta(t, 137.0, *result.DistanceMeters, 2.0)
	assert.Equal(t, 100, result.AllowedRadius)

	assert.Empty(t, h.entries.entries)
	assert.Empty(t, h.justifications.created)
}

func TestCheckLocation_Inside(t *testing.T) {
	h := newHarness(true)

	result, err := h.svc.CheckLocation(context.Background(), studentA, clock.CheckLocationRequest{Latitude: testLat, Longitude: testLong})
	require.NoError(t, err)
	assert.True(t, result.Inside)
	assert.True(t, result.Validated)
}

func TestCloseOpen(t *testing.T) {
	ctx := context.Background()
	h := newHarness(true)
	h.setNow(time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC))

	_, err := h.svc.Toggle(ctx, studentA, clock.ToggleRequest{Latitude: testLat, Longitude: testLong})
	require.NoError(t, err)

	h.setNow(time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC))

	closed, err := h.svc.CloseOpen(ctx, studentA)
	require.NoError(t, err)
	assert.False(t, closed.Active)
	require.NotNil(t, closed.WorkedMinutes)
	assert.Equal(t, 180, *closed.WorkedMinutes)

	_, err = h.svc.CloseOpen(ctx, studentA)
	assert.ErrorIs(t, err, clock.ErrNoOpenEntry)
}

func TestTimeline(t *testing.T) {
	ctx := context.Background()
	h := newHarness(true)
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	h.setNow(time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC))
	_, err := h.svc.Toggle(ctx, studentA, clock.ToggleRequest{Latitude: testLat, Longitude: testLong})
	require.NoError(t, err)

	h.setNow(time.Date(2025, 3, 10, 11, 0, 0, 0, time.UTC))
	_, err = h.svc.Toggle(ctx, studentA, clock.ToggleRequest{Latitude: testLat, Longitude: testLong})
	require.NoError(t, err)

	_, err = h.diaries.Create(ctx, diary.DiaryEntry{
		StudentID: studentA, ContractID: contractA, ReferenceDate: day,
		Summary: "acompanhamento de consultas", Status: diary.StatusPending,
	})
	require.NoError(t, err)

	timeline, err := h.svc.Timeline(ctx, studentA, day)
	require.NoError(t, err)
	assert.Equal(t, "2025-03-10", timeline.Date)
	require.NotNil(t, timeline.ContractID)
	assert.Equal(t, contractA, *timeline.ContractID)
	assert.Len(t, timeline.Entries, 1)
	assert.Len(t, timeline.DiaryEntries, 1)
	assert.Equal(t, 120, timeline.TotalWorkedMinutes)

	// Expected 09:00-12:00 is 180 minutes; worked 120 leaves -60.
	require.NotNil(t, timeline.ExpectedMinutes)
	assert.Equal(t, 180, *timeline.ExpectedMinutes)
	require.NotNil(t, timeline.BalanceMinutes)
	assert.Equal(t, -60, *timeline.BalanceMinutes)
}

func TestTimeline_NoActiveContract(t *testing.T) {
	h := newHarness(true)

	timeline, err := h.svc.Timeline(context.Background(), 999, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Nil(t, timeline.ContractID)
	assert.Empty(t, timeline.Entries)
	assert.Equal(t, 0, timeline.TotalWorkedMinutes)
}
