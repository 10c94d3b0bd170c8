package services

import (
	"context"
	"time"

	"github.com/bgibson72/employee-schedule-manager/pkg/db"
)

// mockStore is an in-memory test double for the coverage and shift stores.
// Its conditional transitions mirror the store contract: zero side effects
// and db.ErrConflict when the request is not in the expected state.
type mockStore struct {
	shifts   []db.Shift
	requests map[string]*db.CoverageRequest

	getShiftErr    error
	getRequestErr  error
	insertErr      error
	queryShiftsErr error
	listErr        error
}

func newMockStore() *mockStore {
	return &mockStore{requests: make(map[string]*db.CoverageRequest)}
}

func (m *mockStore) GetShift(_ context.Context, id string) (*db.Shift, error) {
	if m.getShiftErr != nil {
		return nil, m.getShiftErr
	}
	for _, shift := range m.shifts {
		if shift.ID == id {
			copied := shift
			return &copied, nil
		}
	}
	return nil, db.ErrNotFound
}

func (m *mockStore) GetShiftsByEmployeeAndDate(_ context.Context, employeeID, date string) ([]db.Shift, error) {
	if m.queryShiftsErr != nil {
		return nil, m.queryShiftsErr
	}
	var matched []db.Shift
	for _, shift := range m.shifts {
		if shift.EmployeeID == employeeID && shift.Date == date {
			matched = append(matched, shift)
		}
	}
	return matched, nil
}

func (m *mockStore) InsertCoverageRequest(_ context.Context, request *db.CoverageRequest) error {
	if m.insertErr != nil {
		return m.insertErr
	}
	copied := *request
	m.requests[request.ID] = &copied
	return nil
}

func (m *mockStore) GetCoverageRequest(_ context.Context, id string) (*db.CoverageRequest, error) {
	if m.getRequestErr != nil {
		return nil, m.getRequestErr
	}
	request, ok := m.requests[id]
	if !ok {
		return nil, db.ErrNotFound
	}
	copied := *request
	return &copied, nil
}

func (m *mockStore) ListCoverageRequests(_ context.Context, status string) ([]db.CoverageRequest, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var requests []db.CoverageRequest
	for _, request := range m.requests {
		if status == "" || request.Status == status {
			requests = append(requests, *request)
		}
	}
	return requests, nil
}

func (m *mockStore) ClaimCoverageRequest(_ context.Context, id, claimantID, claimantName string, entry db.AuditEntry) error {
	request, ok := m.requests[id]
	if !ok {
		return db.ErrNotFound
	}
	if request.Status != db.StatusOpen {
		return db.ErrConflict
	}
	request.Status = db.StatusClaimed
	request.ClaimedByID = claimantID
	request.ClaimedByName = claimantName
	request.AuditTrail = append(request.AuditTrail, entry)
	return nil
}

func (m *mockStore) ReturnCoverageRequest(_ context.Context, id, claimantID string, entry db.AuditEntry) error {
	request, ok := m.requests[id]
	if !ok {
		return db.ErrNotFound
	}
	if request.Status != db.StatusClaimed || request.ClaimedByID != claimantID {
		return db.ErrConflict
	}
	request.Status = db.StatusOpen
	request.ClaimedByID = ""
	request.ClaimedByName = ""
	request.AuditTrail = append(request.AuditTrail, entry)
	return nil
}

func (m *mockStore) CompleteCoverageRequest(_ context.Context, id string, entry db.AuditEntry) error {
	request, ok := m.requests[id]
	if !ok {
		return db.ErrNotFound
	}
	if request.Status != db.StatusClaimed {
		return db.ErrConflict
	}
	request.Status = db.StatusCompleted
	request.AuditTrail = append(request.AuditTrail, entry)
	return nil
}

// openRequest seeds an Open coverage request with its Requested entry
func (m *mockStore) openRequest(id, shiftID, ownerID, ownerName, date, start, end string) *db.CoverageRequest {
	request := &db.CoverageRequest{
		ID:                     id,
		ShiftID:                shiftID,
		OriginalOwnerID:        ownerID,
		OriginalOwnerName:      ownerName,
		Date:                   date,
		StartTime:              start,
		EndTime:                end,
		RequestedCoverageStart: start,
		RequestedCoverageEnd:   end,
		Status:                 db.StatusOpen,
		AuditTrail: []db.AuditEntry{
			{
				Action:    db.ActionRequested,
				UserID:    ownerID,
				UserName:  ownerName,
				Timestamp: time.Now().UTC().Format(time.RFC3339),
			},
		},
	}
	m.requests[id] = request
	return request
}
