package postgres

import (
	"context"
	"fmt"

	"github.com/bgibson72/employee-schedule-manager/pkg/db"
)

// GetEmployeeByUsername retrieves an employee account for the login path
func (d *DB) GetEmployeeByUsername(ctx context.Context, username string) (*db.Employee, error) {
	var employee db.Employee
	err := d.pool.QueryRow(ctx, `
		SELECT id, username, display_name, role, password_hash
		FROM employee
		WHERE username = $1
	`, username).Scan(&employee.ID, &employee.Username, &employee.DisplayName,
		&employee.Role, &employee.PasswordHash)
	if err != nil {
		if isNoRows(err) {
			return nil, db.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	return &employee, nil
}

// InsertEmployee inserts an employee account (used by seeding)
func (d *DB) InsertEmployee(ctx context.Context, employee *db.Employee) error {
	_, err := d.pool.Exec(ctx, `
		INSERT INTO employee (id, username, display_name, role, password_hash)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (username) DO NOTHING
	`, employee.ID, employee.Username, employee.DisplayName, employee.Role, employee.PasswordHash)
	if err != nil {
		return fmt.Errorf("failed to insert employee: %w", err)
	}

	return nil
}
