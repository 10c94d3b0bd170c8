package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/bgibson72/employee-schedule-manager/pkg/core/model"
	"github.com/bgibson72/employee-schedule-manager/pkg/db"
)

// ReturnCoverageStore defines the database operations needed to return a
// claimed coverage request
type ReturnCoverageStore interface {
	GetCoverageRequest(ctx context.Context, id string) (*db.CoverageRequest, error)
	ReturnCoverageRequest(ctx context.Context, id, claimantID string, entry db.AuditEntry) error
}

// ReturnCoverage transitions a Claimed coverage request back to Open. Only
// the current claimant may return it; the claimant fields are removed, not
// nulled, so a returned request carries no claimant at all.
func ReturnCoverage(
	ctx context.Context,
	store ReturnCoverageStore,
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
	if request.Status != db.StatusClaimed || request.ClaimedByID != actor.ID {
		return newError(KindFailedPrecondition, "you cannot return this request")
	}

	entry := db.AuditEntry{
		Action:    db.ActionReturned,
		UserID:    actor.ID,
		UserName:  actor.Name,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	if err := store.ReturnCoverageRequest(ctx, requestID, actor.ID, entry); err != nil {
		switch err {
		case db.ErrNotFound:
			return newError(KindNotFound, "request not found")
		case db.ErrConflict:
			return newError(KindFailedPrecondition, "you cannot return this request")
		}
		return internalError(err, "failed to return coverage request %s", requestID)
	}

	logger.Info("Coverage request returned",
		zap.String("request_id", requestID),
		zap.String("claimant_id", actor.ID))

	return nil
}
