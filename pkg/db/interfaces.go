package db

import "context"

// CoverageStore defines the interface for coverage request operations.
// Every transition appends its audit entry in the same atomic update that
// changes the request's status.
type CoverageStore interface {
	GetCoverageRequest(ctx context.Context, id string) (*CoverageRequest, error)
	InsertCoverageRequest(ctx context.Context, request *CoverageRequest) error
	ListCoverageRequests(ctx context.Context, status string) ([]CoverageRequest, error)
	ClaimCoverageRequest(ctx context.Context, id, claimantID, claimantName string, entry AuditEntry) error
	ReturnCoverageRequest(ctx context.Context, id, claimantID string, entry AuditEntry) error
	CompleteCoverageRequest(ctx context.Context, id string, entry AuditEntry) error
}

// ShiftStore defines the interface for shift operations
type ShiftStore interface {
	GetShift(ctx context.Context, id string) (*Shift, error)
	GetShiftsByEmployeeAndDate(ctx context.Context, employeeID, date string) ([]Shift, error)
	ListShiftsByEmployee(ctx context.Context, employeeID string) ([]Shift, error)
	InsertShifts(ctx context.Context, shifts []Shift) error
}

// EmployeeStore defines the interface for employee lookups
type EmployeeStore interface {
	GetEmployeeByUsername(ctx context.Context, username string) (*Employee, error)
}

// Database defines the interface for all database operations.
// postgres.DB implements this interface.
type Database interface {
	CoverageStore
	ShiftStore
	EmployeeStore
}
