package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"
	"time"

	"github.com/checkpoint-estagio/checkpoint-backend-go/internal/domain/clock"
	"github.com/checkpoint-estagio/checkpoint-backend-go/internal/domain/contract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type fakeClockRepository struct {
	entries []clock.ClockEntry
}

func (f *fakeClockRepository) Create(ctx context.Context, entry clock.ClockEntry) (clock.ClockEntry, error) {
	return entry, nil
}

func (f *fakeClockRepository) GetOpenByContract(ctx context.Context, contractID int64) (clock.ClockEntry, error) {
	return clock.ClockEntry{}, clock.ErrNoOpenEntry
}

func (f *fakeClockRepository) Update(ctx context.Context, entry clock.ClockEntry) error {
	return nil
}

func (f *fakeClockRepository) ListByContractAndDate(ctx context.Context, contractID int64, date time.Time) ([]clock.ClockEntry, error) {
	return nil, nil
}

func (f *fakeClockRepository) ListByContractRange(ctx context.Context, contractID int64, from, to time.Time) ([]clock.ClockEntry, error) {
	var out []clock.ClockEntry
	for _, e := range f.entries {
		if e.ContractID == contractID && !e.Date.Before(from) && !e.Date.After(to) {
			out = append(out, e)
		}
	}
	return out, nil
}

type fakeContractRepository struct {
	contracts map[int64]contract.Contract
}

func (f *fakeContractRepository) Create(ctx context.Context, c contract.Contract) (contract.Contract, error) {
	return c, nil
}

func (f *fakeContractRepository) GetByID(ctx context.Context, id int64) (contract.Contract, error) {
	c, ok := f.contracts[id]
	if !ok {
		return contract.Contract{}, contract.ErrContractNotFound
	}
	return c, nil
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

func day(value string) time.Time {
	d, _ := time.Parse("2006-01-02", value)
	return d
}

func stamp(value string) time.Time {
	t, _ := time.Parse("2006-01-02 15:04", value)
	return t
}

func newTestReportService() ReportService {
	studentName := "Maria Silva"
	worked := 180
	exitOne := stamp("2026-03-02 12:00")
	alert := "entrada apos a janela prevista (09:00)"

	entries := &fakeClockRepository{
		entries: []clock.ClockEntry{
			{
				ID:                1,
				ContractID:        10,
				Date:              day("2026-03-02"),
				EntryTime:         stamp("2026-03-02 09:00"),
				ExitTime:          &exitOne,
				WorkedMinutes:     &worked,
				GeofenceValidated: true,
			},
			{
				ID:                2,
				ContractID:        10,
				Date:              day("2026-03-03"),
				EntryTime:         stamp("2026-03-03 09:15"),
				Active:            true,
				GeofenceValidated: true,
				Alert:             &alert,
			},
			{
				ID:         3,
				ContractID: 99,
				Date:       day("2026-03-02"),
				EntryTime:  stamp("2026-03-02 08:00"),
			},
		},
	}
	contracts := &fakeContractRepository{
		contracts: map[int64]contract.Contract{
			10: {ID: 10, StudentID: 1, StudentName: &studentName, Active: true},
		},
	}

	return NewReportService(entries, contracts)
}

func TestAttendanceReport(t *testing.T) {
	svc := newTestReportService()

	report, err := svc.AttendanceReport(context.Background(), 10, day("2026-03-01"), day("2026-03-31"))
	require.NoError(t, err)

	assert.Equal(t, int64(10), report.ContractID)
	assert.Equal(t, "Maria Silva", report.StudentName)
	assert.Equal(t, "2026-03-01", report.PeriodStart)
	assert.Equal(t, "2026-03-31", report.PeriodEnd)
	require.Len(t, report.Rows, 2)

	assert.Equal(t, "2026-03-02", report.Rows[0].Date)
	assert.Equal(t, "09:00", report.Rows[0].EntryTime)
	assert.Equal(t, "12:00", report.Rows[0].ExitTime)
	assert.Equal(t, 180, report.Rows[0].WorkedMinutes)

	assert.Equal(t, "2026-03-03", report.Rows[1].Date)
	assert.Empty(t, report.Rows[1].ExitTime)
	assert.Zero(t, report.Rows[1].WorkedMinutes)
	assert.Contains(t, report.Rows[1].Alert, "apos")

	assert.Equal(t, 180, report.TotalMinutes)
}

func TestAttendanceReport_ContractNotFound(t *testing.T) {
	svc := newTestReportService()

	_, err := svc.AttendanceReport(context.Background(), 77, day("2026-03-01"), day("2026-03-31"))
	assert.ErrorIs(t, err, contract.ErrContractNotFound)
}

func TestAttendanceReport_RangeFiltering(t *testing.T) {
	svc := newTestReportService()

	report, err := svc.AttendanceReport(context.Background(), 10, day("2026-03-03"), day("2026-03-03"))
	require.NoError(t, err)
	require.Len(t, report.Rows, 1)
	assert.Equal(t, "2026-03-03", report.Rows[0].Date)
	assert.Zero(t, report.TotalMinutes)
}

func TestWriteCSV(t *testing.T) {
	svc := newTestReportService()

	report, err := svc.AttendanceReport(context.Background(), 10, day("2026-03-01"), day("2026-03-31"))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, svc.WriteCSV(report, &buf))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, reportHeader, records[0])
	assert.Equal(t, []string{"2026-03-02", "09:00", "12:00", "180", "true", ""}, records[1])
	assert.Equal(t, "2026-03-03", records[2][0])
	assert.Equal(t, "0", records[2][3])
}

func TestWriteXLSX(t *testing.T) {
	svc := newTestReportService()

	report, err := svc.AttendanceReport(context.Background(), 10, day("2026-03-01"), day("2026-03-31"))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, svc.WriteXLSX(report, &buf))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	require.Contains(t, f.GetSheetList(), "Frequencia")

	rows, err := f.GetRows("Frequencia")
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(rows), 3)

	assert.Equal(t, "data", rows[0][0])
	assert.Equal(t, "2026-03-02", rows[1][0])
	assert.Equal(t, "180", rows[1][3])

	total, err := f.GetCellValue("Frequencia", "B5")
	require.NoError(t, err)
	assert.Equal(t, "180", total)
}
