package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/bgibson72/employee-schedule-manager/pkg/core/model"
	"github.com/bgibson72/employee-schedule-manager/pkg/db"
)

// RequestCoverageInput holds the payload for posting a shift for coverage
type RequestCoverageInput struct {
	ShiftID   string
	Date      string // yyyy-MM-dd
	StartTime string // HH:mm
	EndTime   string // HH:mm
}

// RequestCoverageStore defines the database operations needed to post a
// shift for coverage
type RequestCoverageStore interface {
	GetShift(ctx context.Context, id string) (*db.Shift, error)
	InsertCoverageRequest(ctx context.Context, request *db.CoverageRequest) error
}

// RequestCoverage creates a new coverage request for one of the actor's own
// shifts. The request starts Open with the full shift bounds offered for
// coverage and a single Requested audit entry. Returns the new request's id.
func RequestCoverage(
	ctx context.Context,
	store RequestCoverageStore,
	actor model.Actor,
	logger *zap.Logger,
	input RequestCoverageInput,
) (string, error) {
	if actor.ID == "" {
		return "", newError(KindUnauthenticated, "must be logged in")
	}
	if input.ShiftID == "" || input.Date == "" || input.StartTime == "" || input.EndTime == "" {
		return "", newError(KindInvalidArgument, "missing required fields")
	}

	shift, err := store.GetShift(ctx, input.ShiftID)
	if err != nil {
		if err == db.ErrNotFound {
			return "", newError(KindNotFound, "shift not found")
		}
		return "", internalError(err, "failed to load shift %s", input.ShiftID)
	}
	if shift.EmployeeID != actor.ID {
		return "", newError(KindPermissionDenied, "you can only put your own shift up for coverage")
	}

	request := &db.CoverageRequest{
		ID:                     uuid.New().String(),
		ShiftID:                input.ShiftID,
		OriginalOwnerID:        actor.ID,
		OriginalOwnerName:      actor.Name,
		Date:                   input.Date,
		StartTime:              input.StartTime,
		EndTime:                input.EndTime,
		RequestedCoverageStart: input.StartTime,
		RequestedCoverageEnd:   input.EndTime,
		Status:                 db.StatusOpen,
		AuditTrail: []db.AuditEntry{
			{
				Action:    db.ActionRequested,
				UserID:    actor.ID,
				UserName:  actor.Name,
				Timestamp: time.Now().UTC().Format(time.RFC3339),
			},
		},
	}

	if err := store.InsertCoverageRequest(ctx, request); err != nil {
		return "", internalError(err, "failed to insert coverage request")
	}

	logger.Info("Coverage request created",
		zap.String("request_id", request.ID),
		zap.String("shift_id", input.ShiftID),
		zap.String("owner_id", actor.ID))

	return request.ID, nil
}
