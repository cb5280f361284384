package justification

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/checkpoint-estagio/checkpoint-backend-go/internal/domain/contract"
	"github.com/checkpoint-estagio/checkpoint-backend-go/internal/domain/justification"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeJustificationRepository struct {
	nextID int64
	items  map[int64]justification.Justification
	logs   []justification.Log
}

func newFakeJustificationRepository() *fakeJustificationRepository {
	return &fakeJustificationRepository{nextID: 1, items: map[int64]justification.Justification{}}
}

func (f *fakeJustificationRepository) Create(ctx context.Context, j justification.Justification) (justification.Justification, error) {
	j.ID = f.nextID
	f.nextID++
	j.CreatedAt = time.Now()
	j.UpdatedAt = j.CreatedAt
	f.items[j.ID] = j
	return j, nil
}

func (f *fakeJustificationRepository) GetByID(ctx context.Context, id int64) (justification.Justification, error) {
	if j, ok := f.items[id]; ok {
		return j, nil
	}
	return justification.Justification{}, justification.ErrJustificationNotFound
}

func (f *fakeJustificationRepository) Update(ctx context.Context, j justification.Justification) error {
	if _, ok := f.items[j.ID]; !ok {
		return justification.ErrJustificationNotFound
	}
	f.items[j.ID] = j
	return nil
}

func (f *fakeJustificationRepository) List(ctx context.Context, filter justification.ListFilter) ([]justification.Justification, error) {
	items := []justification.Justification{}
	for _, j := range f.items {
		if filter.StudentID != nil && j.StudentID != *filter.StudentID {
			continue
		}
		if filter.Status != nil && j.Status != *filter.Status {
			continue
		}
		items = append(items, j)
	}
	return items, nil
}

func (f *fakeJustificationRepository) ListByStudentAndDate(ctx context.Context, studentID int64, date time.Time) ([]justification.Justification, error) {
	items := []justification.Justification{}
	for _, j := range f.items {
		if j.StudentID == studentID && j.ReferenceDate.Equal(date) {
			items = append(items, j)
		}
	}
	return items, nil
}

func (f *fakeJustificationRepository) ExpireOverdue(ctx context.Context, now time.Time) ([]int64, error) {
	expired := []int64{}
	for id, j := range f.items {
		if j.Status == justification.StatusPending && j.ResponseDeadline.Before(now) {
			j.Status = justification.StatusExpired
			f.items[id] = j
			message := "response deadline expired"
			f.logs = append(f.logs, justification.Log{JustificationID: id, Status: justification.StatusExpired, Message: &message})
			expired = append(expired, id)
		}
	}
	return expired, nil
}

func (f *fakeJustificationRepository) AppendLog(ctx context.Context, log justification.Log) error {
	log.ID = int64(len(f.logs) + 1)
	log.CreatedAt = time.Now()
	f.logs = append(f.logs, log)
	return nil
}

func (f *fakeJustificationRepository) ListLogs(ctx context.Context, justificationID int64) ([]justification.Log, error) {
	logs := []justification.Log{}
	for _, l := range f.logs {
		if l.JustificationID == justificationID {
			logs = append(logs, l)
		}
	}
	return logs, nil
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
	return contract.Contract{}, contract.ErrNoActiveContract
}

func (f *fakeContractRepository) List(ctx context.Context, filter contract.ListFilter) ([]contract.Contract, error) {
	return nil, nil
}

func (f *fakeContractRepository) Update(ctx context.Context, c contract.Contract) error {
	return nil
}

func newTestService(repo *fakeJustificationRepository, now func() time.Time) *JustificationServiceImpl {
	contracts := &fakeContractRepository{contracts: map[int64]contract.Contract{
		10: {ID: 10, StudentID: 1, ProfessorID: 2, Active: true},
	}}
	svc := NewJustificationService(repo, contracts, 48, slog.Default()).(*JustificationServiceImpl)
	if now != nil {
		svc.now = now
	}
	return svc
}

func TestCreateJustification(t *testing.T) {
	ctx := context.Background()
	repo := newFakeJustificationRepository()
	base := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	svc := newTestService(repo, func() time.Time { return base })

	resp, err := svc.Create(ctx, 1, justification.CreateJustificationRequest{
		ContractID: 10,
		Type:       "falta",
		Reason:     "consulta medica",
	})
	require.NoError(t, err)
	assert.Equal(t, string(justification.StatusPending), resp.Status)
	assert.False(t, resp.AutoCreated)

	// Deadline is creation time plus the SLA.
	stored := repo.items[resp.ID]
	assert.Equal(t, base.Add(48*time.Hour), stored.ResponseDeadline)

	// Creation leaves an audit row.
	logs, err := svc.Logs(ctx, resp.ID)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, string(justification.StatusPending), logs[0].Status)
}

func TestCreateJustification_WrongStudent(t *testing.T) {
	svc := newTestService(newFakeJustificationRepository(), nil)

	_, err := svc.Create(context.Background(), 99, justification.CreateJustificationRequest{
		ContractID: 10,
		Type:       "falta",
		Reason:     "x",
	})
	assert.ErrorIs(t, err, contract.ErrContractNotFound)
}

func TestCreateAutomatic(t *testing.T) {
	ctx := context.Background()
	repo := newFakeJustificationRepository()
	svc := newTestService(repo, nil)

	created, err := svc.CreateAutomatic(ctx, 1, 10, "clock-in 137.0m outside the 100m radius")
	require.NoError(t, err)
	assert.True(t, created.AutoCreated)
	assert.Equal(t, justification.TypeLocationAdjustment, created.Type)
	assert.Equal(t, justification.StatusPending, created.Status)
}

func TestReview(t *testing.T) {
	ctx := context.Background()
	repo := newFakeJustificationRepository()
	base := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	svc := newTestService(repo, func() time.Time { return base })

	created, err := svc.Create(ctx, 1, justification.CreateJustificationRequest{ContractID: 10, Type: "falta", Reason: "x"})
	require.NoError(t, err)

	comment := "evidence checked"
	resp, err := svc.Review(ctx, 2, justification.ReviewJustificationRequest{ID: created.ID, Status: string(justification.StatusApproved), Comment: &comment})
	require.NoError(t, err)
	assert.Equal(t, string(justification.StatusApproved), resp.Status)
	require.NotNil(t, resp.ResolvedAt)

	// Second review is rejected.
	_, err = svc.Review(ctx, 2, justification.ReviewJustificationRequest{ID: created.ID, Status: string(justification.StatusRejected)})
	assert.ErrorIs(t, err, justification.ErrAlreadyResolved)

	logs, err := svc.Logs(ctx, created.ID)
	require.NoError(t, err)
	assert.Len(t, logs, 2)
}

func TestReview_PastDeadlineExpires(t *testing.T) {
	ctx := context.Background()
	repo := newFakeJustificationRepository()
	current := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	svc := newTestService(repo, func() time.Time { return current })

	created, err := svc.Create(ctx, 1, justification.CreateJustificationRequest{ContractID: 10, Type: "falta", Reason: "x"})
	require.NoError(t, err)

	current = current.Add(49 * time.Hour)

	_, err = svc.Review(ctx, 2, justification.ReviewJustificationRequest{ID: created.ID, Status: string(justification.StatusApproved)})
	assert.ErrorIs(t, err, justification.ErrAlreadyResolved)
	assert.Equal(t, justification.StatusExpired, repo.items[created.ID].Status)
}

func TestExpireOverdue_Idempotent(t *testing.T) {
	ctx := context.Background()
	repo := newFakeJustificationRepository()
	current := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	svc := newTestService(repo, func() time.Time { return current })

	first, err := svc.Create(ctx, 1, justification.CreateJustificationRequest{ContractID: 10, Type: "falta", Reason: "a"})
	require.NoError(t, err)

	current = current.Add(24 * time.Hour)
	second, err := svc.Create(ctx, 1, justification.CreateJustificationRequest{ContractID: 10, Type: "falta", Reason: "b"})
	require.NoError(t, err)

	// 49h after the first, 25h after the second: only the first expires.
	sweepTime := time.Date(2025, 3, 12, 13, 0, 0, 0, time.UTC)
	count, err := svc.ExpireOverdue(ctx, sweepTime)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Equal(t, justification.StatusExpired, repo.items[first.ID].Status)
	assert.Equal(t, justification.StatusPending, repo.items[second.ID].Status)

	// Running the sweep again changes nothing.
	count, err = svc.ExpireOverdue(ctx, sweepTime)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestList_RunsSweepFirst(t *testing.T) {
	ctx := context.Background()
	repo := newFakeJustificationRepository()
	current := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	svc := newTestService(repo, func() time.Time { return current })

	created, err := svc.Create(ctx, 1, justification.CreateJustificationRequest{ContractID: 10, Type: "falta", Reason: "a"})
	require.NoError(t, err)

	current = current.Add(72 * time.Hour)

	items, err := svc.List(ctx, justification.ListFilter{})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, string(justification.StatusExpired), items[0].Status)
	assert.Equal(t, created.ID, items[0].ID)
}

func TestListForDay(t *testing.T) {
	ctx := context.Background()
	repo := newFakeJustificationRepository()
	current := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	svc := newTestService(repo, func() time.Time { return current })

	dayA := "2025-03-10"
	dayB := "2025-03-11"
	onDay, err := svc.Create(ctx, 1, justification.CreateJustificationRequest{ContractID: 10, Type: "falta", Reason: "a", ReferenceDate: &dayA})
	require.NoError(t, err)
	_, err = svc.Create(ctx, 1, justification.CreateJustificationRequest{ContractID: 10, Type: "falta", Reason: "b", ReferenceDate: &dayB})
	require.NoError(t, err)

	current = current.Add(72 * time.Hour)

	items, err := svc.ListForDay(ctx, 1, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, onDay.ID, items[0].ID)
	assert.Equal(t, dayA, items[0].ReferenceDate)

	// The sweep runs before the read, so the overdue item comes back expired.
	assert.Equal(t, string(justification.StatusExpired), items[0].Status)

	items, err = svc.ListForDay(ctx, 2, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Empty(t, items)
}
