package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/bgibson72/employee-schedule-manager/internal/config"
	"github.com/bgibson72/employee-schedule-manager/pkg/db"
)

type mockShiftInserter struct {
	inserted []db.Shift
	err      error
}

func (m *mockShiftInserter) InsertShifts(_ context.Context, shifts []db.Shift) error {
	if m.err != nil {
		return m.err
	}
	m.inserted = append(m.inserted, shifts...)
	return nil
}

func TestSeedShifts_WeeklyTemplate(t *testing.T) {
	store := &mockShiftInserter{}
	templates := []config.ShiftTemplate{
		{
			RRule:        "FREQ=WEEKLY;BYDAY=MO",
			EmployeeID:   "emp-e",
			EmployeeName: "Erin Example",
			StartTime:    "09:00",
			EndTime:      "17:00",
			Count:        4,
		},
	}

	// 2025-05-12 is a Monday
	from := time.Date(2025, 5, 12, 0, 0, 0, 0, time.UTC)

	shifts, err := SeedShifts(context.Background(), store, templates, zap.NewNop(), from)
	require.NoError(t, err)
	require.Len(t, shifts, 4)
	assert.Len(t, store.inserted, 4)

	expectedDates := []string{"2025-05-12", "2025-05-19", "2025-05-26", "2025-06-02"}
	for i, shift := range shifts {
		assert.Equal(t, expectedDates[i], shift.Date)
		assert.Equal(t, "09:00", shift.StartTime)
		assert.Equal(t, "17:00", shift.EndTime)
		assert.Equal(t, "emp-e", shift.EmployeeID)
		assert.NotEmpty(t, shift.ID)
	}
}

func TestSeedShifts_DefaultCount(t *testing.T) {
	store := &mockShiftInserter{}
	templates := []config.ShiftTemplate{
		{
			RRule:        "FREQ=DAILY",
			EmployeeID:   "emp-f",
			EmployeeName: "Frank Fixture",
			StartTime:    "13:00",
			EndTime:      "21:00",
		},
	}

	from := time.Date(2025, 5, 12, 0, 0, 0, 0, time.UTC)

	shifts, err := SeedShifts(context.Background(), store, templates, zap.NewNop(), from)
	require.NoError(t, err)
	assert.Len(t, shifts, defaultTemplateOccurrences)
}

func TestSeedShifts_InvalidRRule(t *testing.T) {
	store := &mockShiftInserter{}
	templates := []config.ShiftTemplate{
		{RRule: "NOT_A_RULE", EmployeeID: "emp-e", EmployeeName: "Erin Example", StartTime: "09:00", EndTime: "17:00"},
	}

	_, err := SeedShifts(context.Background(), store, templates, zap.NewNop(), time.Now())
	require.Error(t, err)
	assert.Equal(t, KindInvalidArgument, KindOf(err))
	assert.Empty(t, store.inserted)
}
