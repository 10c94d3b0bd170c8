package db

// Coverage request statuses. Returned and Cancelled exist in the status
// domain for the UI but no workflow transition currently produces them.
const (
	StatusOpen      = "Open"
	StatusClaimed   = "Claimed"
	StatusReturned  = "Returned"
	StatusCancelled = "Cancelled"
	StatusCompleted = "Completed"
)

// Audit actions, one per workflow transition.
const (
	ActionRequested = "Requested"
	ActionClaimed   = "Claimed"
	ActionReturned  = "Returned"
	ActionCancelled = "Cancelled"
	ActionCompleted = "Completed"
)

// AuditEntry is a single immutable entry in a coverage request's audit trail.
// Timestamp is an ISO-8601 string; insertion order is chronological order.
type AuditEntry struct {
	Action    string `json:"action"`
	UserID    string `json:"userId"`
	UserName  string `json:"userName"`
	Timestamp string `json:"timestamp"`
	Details   string `json:"details"`
}

// CoverageRequest represents a posting that offers part or all of a shift
// to other employees. ClaimedByID/ClaimedByName are set only while the
// request is Claimed and are removed again when it is returned.
type CoverageRequest struct {
	ID                     string       `json:"id"`
	ShiftID                string       `json:"shiftId"`
	OriginalOwnerID        string       `json:"originalOwnerId"`
	OriginalOwnerName      string       `json:"originalOwnerName"`
	Date                   string       `json:"date"`      // yyyy-MM-dd
	StartTime              string       `json:"startTime"` // HH:mm
	EndTime                string       `json:"endTime"`   // HH:mm
	RequestedCoverageStart string       `json:"requestedCoverageStart"`
	RequestedCoverageEnd   string       `json:"requestedCoverageEnd"`
	Status                 string       `json:"status"`
	ClaimedByID            string       `json:"claimedById,omitempty"`
	ClaimedByName          string       `json:"claimedByName,omitempty"`
	AuditTrail             []AuditEntry `json:"auditTrail"`
}

// Shift represents a scheduled shift instance owned by one employee
type Shift struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employeeId"`
	EmployeeName string `json:"employeeName"`
	Date         string `json:"date"`      // yyyy-MM-dd
	StartTime    string `json:"startTime"` // HH:mm
	EndTime      string `json:"endTime"`   // HH:mm
}

// Employee represents an employee account used for authentication
type Employee struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	DisplayName  string `json:"displayName"`
	Role         string `json:"role"` // "admin" or "employee"
	PasswordHash string `json:"-"`
}
