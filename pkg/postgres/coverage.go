package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/bgibson72/employee-schedule-manager/pkg/db"
)

// InsertCoverageRequest inserts a new coverage request together with its
// initial audit trail in a single statement
func (d *DB) InsertCoverageRequest(ctx context.Context, request *db.CoverageRequest) error {
	trail, err := json.Marshal(request.AuditTrail)
	if err != nil {
		return fmt.Errorf("failed to marshal audit trail: %w", err)
	}

	_, err = d.pool.Exec(ctx, `
		INSERT INTO coverage_request (
			id, shift_id, original_owner_id, original_owner_name,
			shift_date, start_time, end_time,
			requested_coverage_start, requested_coverage_end,
			status, audit_trail
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`, request.ID, request.ShiftID, request.OriginalOwnerID, request.OriginalOwnerName,
		request.Date, request.StartTime, request.EndTime,
		request.RequestedCoverageStart, request.RequestedCoverageEnd,
		request.Status, trail)
	if err != nil {
		return fmt.Errorf("failed to insert coverage request: %w", err)
	}

	return nil
}

// GetCoverageRequest retrieves a coverage request by id
func (d *DB) GetCoverageRequest(ctx context.Context, id string) (*db.CoverageRequest, error) {
	row := d.pool.QueryRow(ctx, `
		SELECT id, shift_id, original_owner_id, original_owner_name,
		       shift_date, start_time, end_time,
		       requested_coverage_start, requested_coverage_end,
		       status, claimed_by_id, claimed_by_name, audit_trail
		FROM coverage_request
		WHERE id = $1
	`, id)

	request, err := scanCoverageRequest(row)
	if err != nil {
		if isNoRows(err) {
			return nil, db.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get coverage request: %w", err)
	}

	return request, nil
}

// ListCoverageRequests retrieves coverage requests, optionally filtered by
// status. An empty status returns all requests.
func (d *DB) ListCoverageRequests(ctx context.Context, status string) ([]db.CoverageRequest, error) {
	query := `
		SELECT id, shift_id, original_owner_id, original_owner_name,
		       shift_date, start_time, end_time,
		       requested_coverage_start, requested_coverage_end,
		       status, claimed_by_id, claimed_by_name, audit_trail
		FROM coverage_request
	`
	args := []any{}
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}
	query += ` ORDER BY shift_date, start_time`

	rows, err := d.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query coverage requests: %w", err)
	}
	defer rows.Close()

	var requests []db.CoverageRequest
	for rows.Next() {
		request, err := scanCoverageRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan coverage request: %w", err)
		}
		requests = append(requests, *request)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating coverage requests: %w", err)
	}

	return requests, nil
}

// ClaimCoverageRequest flips an Open request to Claimed and appends the
// audit entry, all in one conditional update so concurrent claims are
// serialized by the row and only one can succeed.
func (d *DB) ClaimCoverageRequest(ctx context.Context, id, claimantID, claimantName string, entry db.AuditEntry) error {
	appended, err := marshalEntry(entry)
	if err != nil {
		return err
	}

	tag, err := d.pool.Exec(ctx, `
		UPDATE coverage_request
		SET status = $2,
		    claimed_by_id = $3,
		    claimed_by_name = $4,
		    audit_trail = audit_trail || $5::jsonb
		WHERE id = $1 AND status = $6
	`, id, db.StatusClaimed, claimantID, claimantName, appended, db.StatusOpen)
	if err != nil {
		return fmt.Errorf("failed to claim coverage request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return d.conflictOrNotFound(ctx, id)
	}

	return nil
}

// ReturnCoverageRequest flips a Claimed request back to Open and clears the
// claimant fields. Only the current claimant's id matches the condition.
func (d *DB) ReturnCoverageRequest(ctx context.Context, id, claimantID string, entry db.AuditEntry) error {
	appended, err := marshalEntry(entry)
	if err != nil {
		return err
	}

	tag, err := d.pool.Exec(ctx, `
		UPDATE coverage_request
		SET status = $2,
		    claimed_by_id = NULL,
		    claimed_by_name = NULL,
		    audit_trail = audit_trail || $3::jsonb
		WHERE id = $1 AND status = $4 AND claimed_by_id = $5
	`, id, db.StatusOpen, appended, db.StatusClaimed, claimantID)
	if err != nil {
		return fmt.Errorf("failed to return coverage request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return d.conflictOrNotFound(ctx, id)
	}

	return nil
}

// CompleteCoverageRequest flips a Claimed request to Completed. The
// claimant fields are left intact as the record of who covered the shift.
func (d *DB) CompleteCoverageRequest(ctx context.Context, id string, entry db.AuditEntry) error {
	appended, err := marshalEntry(entry)
	if err != nil {
		return err
	}

	tag, err := d.pool.Exec(ctx, `
		UPDATE coverage_request
		SET status = $2,
		    audit_trail = audit_trail || $3::jsonb
		WHERE id = $1 AND status = $4
	`, id, db.StatusCompleted, appended, db.StatusClaimed)
	if err != nil {
		return fmt.Errorf("failed to complete coverage request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return d.conflictOrNotFound(ctx, id)
	}

	return nil
}

// conflictOrNotFound distinguishes a conditional update that matched no
// rows because the request is missing from one that matched no rows
// because the request is in the wrong state
func (d *DB) conflictOrNotFound(ctx context.Context, id string) error {
	var exists bool
	err := d.pool.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM coverage_request WHERE id = $1)
	`, id).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check coverage request existence: %w", err)
	}
	if !exists {
		return db.ErrNotFound
	}
	return db.ErrConflict
}

// marshalEntry serializes a single audit entry as a one-element JSON array
// so the jsonb concatenation always appends exactly one element
func marshalEntry(entry db.AuditEntry) ([]byte, error) {
	appended, err := json.Marshal([]db.AuditEntry{entry})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal audit entry: %w", err)
	}
	return appended, nil
}

// rowScanner matches both pgx.Row and pgx.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

// scanCoverageRequest scans one coverage request row, mapping the nullable
// claimant columns and unmarshalling the audit trail
func scanCoverageRequest(row rowScanner) (*db.CoverageRequest, error) {
	var request db.CoverageRequest
	var claimedByID, claimedByName *string
	var trail []byte

	if err := row.Scan(
		&request.ID, &request.ShiftID, &request.OriginalOwnerID, &request.OriginalOwnerName,
		&request.Date, &request.StartTime, &request.EndTime,
		&request.RequestedCoverageStart, &request.RequestedCoverageEnd,
		&request.Status, &claimedByID, &claimedByName, &trail,
	); err != nil {
		return nil, err
	}

	if claimedByID != nil {
		request.ClaimedByID = *claimedByID
	}
	if claimedByName != nil {
		request.ClaimedByName = *claimedByName
	}
	if err := json.Unmarshal(trail, &request.AuditTrail); err != nil {
		return nil, fmt.Errorf("failed to unmarshal audit trail: %w", err)
	}

	return &request, nil
}
