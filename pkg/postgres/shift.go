package postgres

import (
	"context"
	"fmt"

	"github.com/bgibson72/employee-schedule-manager/pkg/db"
)

const shiftColumns = `id, employee_id, employee_name, shift_date, start_time, end_time`

// GetShift retrieves a shift by id
func (d *DB) GetShift(ctx context.Context, id string) (*db.Shift, error) {
	var shift db.Shift
	err := d.pool.QueryRow(ctx, `
		SELECT `+shiftColumns+`
		FROM shift
		WHERE id = $1
	`, id).Scan(&shift.ID, &shift.EmployeeID, &shift.EmployeeName,
		&shift.Date, &shift.StartTime, &shift.EndTime)
	if err != nil {
		if isNoRows(err) {
			return nil, db.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get shift: %w", err)
	}

	return &shift, nil
}

// GetShiftsByEmployeeAndDate retrieves all shifts belonging to an employee
// on a single date (the collision-detection query)
func (d *DB) GetShiftsByEmployeeAndDate(ctx context.Context, employeeID, date string) ([]db.Shift, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT `+shiftColumns+`
		FROM shift
		WHERE employee_id = $1 AND shift_date = $2
	`, employeeID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to query shifts: %w", err)
	}
	defer rows.Close()

	return collectShifts(rows)
}

// ListShiftsByEmployee retrieves all shifts belonging to an employee
func (d *DB) ListShiftsByEmployee(ctx context.Context, employeeID string) ([]db.Shift, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT `+shiftColumns+`
		FROM shift
		WHERE employee_id = $1
		ORDER BY shift_date, start_time
	`, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query shifts: %w", err)
	}
	defer rows.Close()

	return collectShifts(rows)
}

// InsertShifts inserts shift records in a single transaction
func (d *DB) InsertShifts(ctx context.Context, shifts []db.Shift) error {
	if len(shifts) == 0 {
		return nil
	}

	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, shift := range shifts {
		_, err := tx.Exec(ctx, `
			INSERT INTO shift (id, employee_id, employee_name, shift_date, start_time, end_time)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, shift.ID, shift.EmployeeID, shift.EmployeeName, shift.Date, shift.StartTime, shift.EndTime)
		if err != nil {
			return fmt.Errorf("failed to insert shift: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

type shiftRows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func collectShifts(rows shiftRows) ([]db.Shift, error) {
	var shifts []db.Shift
	for rows.Next() {
		var shift db.Shift
		if err := rows.Scan(&shift.ID, &shift.EmployeeID, &shift.EmployeeName,
			&shift.Date, &shift.StartTime, &shift.EndTime); err != nil {
			return nil, fmt.Errorf("failed to scan shift: %w", err)
		}
		shifts = append(shifts, shift)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating shifts: %w", err)
	}

	return shifts, nil
}
