package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/bgibson72/employee-schedule-manager/pkg/core/model"
	"github.com/bgibson72/employee-schedule-manager/pkg/db"
)

// ListCoverageStore defines the database operations needed to list
// coverage requests
type ListCoverageStore interface {
	ListCoverageRequests(ctx context.Context, status string) ([]db.CoverageRequest, error)
}

// ListCoverage returns coverage requests for the request board, optionally
// filtered by status. An empty status returns everything.
func ListCoverage(
	ctx context.Context,
	store ListCoverageStore,
	actor model.Actor,
	logger *zap.Logger,
	status string,
) ([]db.CoverageRequest, error) {
	if actor.ID == "" {
		return nil, newError(KindUnauthenticated, "must be logged in")
	}
	if status != "" {
		switch status {
		case db.StatusOpen, db.StatusClaimed, db.StatusReturned, db.StatusCancelled, db.StatusCompleted:
		default:
			return nil, newError(KindInvalidArgument, "unknown status %q", status)
		}
	}

	requests, err := store.ListCoverageRequests(ctx, status)
	if err != nil {
		return nil, internalError(err, "failed to list coverage requests")
	}

	logger.Debug("Listed coverage requests",
		zap.String("status", status),
		zap.Int("count", len(requests)))

	return requests, nil
}
