package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/bgibson72/employee-schedule-manager/pkg/core/model"
	"github.com/bgibson72/employee-schedule-manager/pkg/db"
)

// collisionMessage is shown to the caller when a claim would overlap one of
// their existing shifts and force was not set
const collisionMessage = "This shift overlaps with one of your existing shifts. Do you still want to cover this shift?"

// ClaimCoverageInput holds the payload for claiming a coverage request.
// Force re-runs a claim after the caller confirmed a collision warning.
type ClaimCoverageInput struct {
	RequestID string
	Force     bool
}

// ClaimCoverageResult reports either a successful claim or a collision
// warning. On the warned path no state has been mutated; the caller may
// re-invoke with Force set after user confirmation.
type ClaimCoverageResult struct {
	Collision bool
	Message   string
}

// ClaimCoverageStore defines the database operations needed to claim a
// coverage request
type ClaimCoverageStore interface {
	GetCoverageRequest(ctx context.Context, id string) (*db.CoverageRequest, error)
	GetShiftsByEmployeeAndDate(ctx context.Context, employeeID, date string) ([]db.Shift, error)
	ClaimCoverageRequest(ctx context.Context, id, claimantID, claimantName string, entry db.AuditEntry) error
}

// ClaimCoverage transitions an Open coverage request to Claimed by the
// actor. The actor's existing shifts on the request's date are checked
// against the offered window; an overlap without Force returns a collision
// warning instead of mutating state.
func ClaimCoverage(
	ctx context.Context,
	store ClaimCoverageStore,
	actor model.Actor,
	logger *zap.Logger,
	input ClaimCoverageInput,
) (*ClaimCoverageResult, error) {
	if actor.ID == "" {
		return nil, newError(KindUnauthenticated, "must be logged in")
	}
	if input.RequestID == "" {
		return nil, newError(KindInvalidArgument, "missing requestId")
	}

	request, err := store.GetCoverageRequest(ctx, input.RequestID)
	if err != nil {
		if err == db.ErrNotFound {
			return nil, newError(KindNotFound, "request not found")
		}
		return nil, internalError(err, "failed to load coverage request %s", input.RequestID)
	}
	if request.Status != db.StatusOpen {
		return nil, newError(KindFailedPrecondition, "request is not open")
	}

	// Collision detection against the claimant's own shifts on that date
	shifts, err := store.GetShiftsByEmployeeAndDate(ctx, actor.ID, request.Date)
	if err != nil {
		return nil, internalError(err, "failed to load shifts for %s on %s", actor.ID, request.Date)
	}

	collision := false
	for _, shift := range shifts {
		if Overlaps(shift.StartTime, shift.EndTime, request.RequestedCoverageStart, request.RequestedCoverageEnd) {
			collision = true
			break
		}
	}

	if collision && !input.Force {
		logger.Info("Claim blocked by collision warning",
			zap.String("request_id", input.RequestID),
			zap.String("claimant_id", actor.ID))
		return &ClaimCoverageResult{Collision: true, Message: collisionMessage}, nil
	}

	entry := db.AuditEntry{
		Action:    db.ActionClaimed,
		UserID:    actor.ID,
		UserName:  actor.Name,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	if err := store.ClaimCoverageRequest(ctx, input.RequestID, actor.ID, actor.Name, entry); err != nil {
		switch err {
		case db.ErrNotFound:
			return nil, newError(KindNotFound, "request not found")
		case db.ErrConflict:
			// Lost a race with another claimant between the read and the
			// conditional update.
			return nil, newError(KindFailedPrecondition, "request is not open")
		}
		return nil, internalError(err, "failed to claim coverage request %s", input.RequestID)
	}

	logger.Info("Coverage request claimed",
		zap.String("request_id", input.RequestID),
		zap.String("claimant_id", actor.ID),
		zap.Bool("forced", input.Force))

	return &ClaimCoverageResult{}, nil
}
