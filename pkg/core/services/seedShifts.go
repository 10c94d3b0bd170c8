package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/teambition/rrule-go"
	"go.uber.org/zap"

	"github.com/bgibson72/employee-schedule-manager/internal/config"
	"github.com/bgibson72/employee-schedule-manager/pkg/db"
)

// defaultTemplateOccurrences caps how many shifts a template without an
// explicit count expands to
const defaultTemplateOccurrences = 12

// SeedShiftsStore defines the database operations needed to seed shifts
type SeedShiftsStore interface {
	InsertShifts(ctx context.Context, shifts []db.Shift) error
}

// SeedShifts expands the configured shift templates into dated shift rows
// starting from the given date and inserts them. Returns the inserted
// shifts.
func SeedShifts(
	ctx context.Context,
	store SeedShiftsStore,
	templates []config.ShiftTemplate,
	logger *zap.Logger,
	from time.Time,
) ([]db.Shift, error) {
	var shifts []db.Shift

	for i, template := range templates {
		rule, err := rrule.StrToRRule(template.RRule)
		if err != nil {
			return nil, newError(KindInvalidArgument, "invalid rrule in template %d: %v", i, err)
		}
		rule.DTStart(from)

		count := template.Count
		if count == 0 {
			count = defaultTemplateOccurrences
		}

		occurrences := 0
		iterator := rule.Iterator()
		for date, ok := iterator(); ok && occurrences < count; date, ok = iterator() {
			shifts = append(shifts, db.Shift{
				ID:           uuid.New().String(),
				EmployeeID:   template.EmployeeID,
				EmployeeName: template.EmployeeName,
				Date:         date.Format("2006-01-02"),
				StartTime:    template.StartTime,
				EndTime:      template.EndTime,
			})
			occurrences++
		}

		logger.Debug("Expanded shift template",
			zap.Int("template", i),
			zap.String("employee_id", template.EmployeeID),
			zap.Int("occurrences", occurrences))
	}

	if err := store.InsertShifts(ctx, shifts); err != nil {
		return nil, internalError(err, "failed to insert seeded shifts")
	}

	logger.Info("Seeded shifts", zap.Int("count", len(shifts)))

	return shifts, nil
}
