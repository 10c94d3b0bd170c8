package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/bgibson72/employee-schedule-manager/pkg/core/model"
	"github.com/bgibson72/employee-schedule-manager/pkg/db"
)

func claimedRequest(store *mockStore, claimant model.Actor) {
	store.openRequest("req-1", "shift-1", employeeE.ID, employeeE.Name, "2025-05-12", "09:00", "12:00")
	_, err := ClaimCoverage(context.Background(), store, claimant, zap.NewNop(), ClaimCoverageInput{RequestID: "req-1"})
	if err != nil {
		panic(err)
	}
}

func TestReturnCoverage_ByClaimant(t *testing.T) {
	store := newMockStore()
	claimedRequest(store, employeeF)

	err := ReturnCoverage(context.Background(), store, employeeF, zap.NewNop(), "req-1")
	require.NoError(t, err)

	returned := store.requests["req-1"]
	assert.Equal(t, db.StatusOpen, returned.Status)
	assert.Empty(t, returned.ClaimedByID)
	assert.Empty(t, returned.ClaimedByName)

	require.Len(t, returned.AuditTrail, 3)
	assert.Equal(t, db.ActionReturned, returned.AuditTrail[2].Action)
	assert.Equal(t, employeeF.ID, returned.AuditTrail[2].UserID)
}

func TestReturnCoverage_NotClaimant(t *testing.T) {
	store := newMockStore()
	claimedRequest(store, employeeF)

	err := ReturnCoverage(context.Background(), store, employeeG, zap.NewNop(), "req-1")
	require.Error(t, err)
	assert.Equal(t, KindFailedPrecondition, KindOf(err))
	assert.Equal(t, db.StatusClaimed, store.requests["req-1"].Status)
}

func TestReturnCoverage_OwnerCannotReturn(t *testing.T) {
	store := newMockStore()
	claimedRequest(store, employeeF)

	err := ReturnCoverage(context.Background(), store, employeeE, zap.NewNop(), "req-1")
	require.Error(t, err)
	assert.Equal(t, KindFailedPrecondition, KindOf(err))
}

func TestReturnCoverage_OpenRequest(t *testing.T) {
	store := newMockStore()
	store.openRequest("req-1", "shift-1", employeeE.ID, employeeE.Name, "2025-05-12", "09:00", "12:00")

	err := ReturnCoverage(context.Background(), store, employeeF, zap.NewNop(), "req-1")
	require.Error(t, err)
	assert.Equal(t, KindFailedPrecondition, KindOf(err))
}

func TestReturnCoverage_NotFound(t *testing.T) {
	store := newMockStore()

	err := ReturnCoverage(context.Background(), store, employeeF, zap.NewNop(), "missing")
	require.Error(t, err)
	assert.Equal(t, KindNotFound, KindOf(err))
}

func TestReturnCoverage_Unauthenticated(t *testing.T) {
	store := newMockStore()

	err := ReturnCoverage(context.Background(), store, model.Actor{}, zap.NewNop(), "req-1")
	require.Error(t, err)
	assert.Equal(t, KindUnauthenticated, KindOf(err))
}
