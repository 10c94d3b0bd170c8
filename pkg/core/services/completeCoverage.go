package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/bgibson72/employee-schedule-manager/pkg/core/model"
	"github.com/bgibson72/employee-schedule-manager/pkg/db"
)

// CompleteCoverageStore defines the database operations needed to complete
// a coverage request
type CompleteCoverageStore interface {
	GetCoverageRequest(ctx context.Context, id string) (*db.CoverageRequest, error)
	CompleteCoverageRequest(ctx context.Context, id string, entry db.AuditEntry) error
}

// CompleteCoverage transitions a Claimed coverage request to Completed, a
// terminal state. Only an administrator or the original owner may complete
// it. The claimant fields stay intact as the record of who covered the
// shift.
func CompleteCoverage(
	ctx context.Context,
	store CompleteCoverageStore,
	actor model.Actor,
	logger *zap.Logger,
	requestID string,
) error {
	if actor.ID == "" {
		return newError(KindUnauthenticated, "must be logged in")
	}
	if requestID == "" {
		return newError(KindInvalidArgument, "missing requestId")
	}

	request, err := store.GetCoverageRequest(ctx, requestID)
	if err != nil {
		if err == db.ErrNotFound {
			return newError(KindNotFound, "request not found")
		}
		return internalError(err, "failed to load coverage request %s", requestID)
	}
	if !actor.IsAdmin() && actor.ID != request.OriginalOwnerID {
		return newError(KindPermissionDenied, "not authorized")
	}
	if request.Status != db.StatusClaimed {
		return newError(KindFailedPrecondition, "request is not claimed")
	}

	entry := db.AuditEntry{
		Action:    db.ActionCompleted,
		UserID:    actor.ID,
		UserName:  actor.Name,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	if err := store.CompleteCoverageRequest(ctx, requestID, entry); err != nil {
		switch err {
		case db.ErrNotFound:
			return newError(KindNotFound, "request not found")
		case db.ErrConflict:
			return newError(KindFailedPrecondition, "request is not claimed")
		}
		return internalError(err, "failed to complete coverage request %s", requestID)
	}

	logger.Info("Coverage request completed",
		zap.String("request_id", requestID),
		zap.String("completed_by", actor.ID))

	return nil
}
