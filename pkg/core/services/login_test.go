package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/bgibson72/employee-schedule-manager/pkg/db"
)

type mockEmployeeStore struct {
	employees map[string]*db.Employee
}

func (m *mockEmployeeStore) GetEmployeeByUsername(_ context.Context, username string) (*db.Employee, error) {
	if employee, ok := m.employees[username]; ok {
		return employee, nil
	}
	return nil, db.ErrNotFound
}

type mockIssuer struct {
	issued string
}

func (m *mockIssuer) GenerateToken(userID, name, role string) (string, error) {
	m.issued = "token-for-" + userID
	return m.issued, nil
}

func employeeStoreWith(t *testing.T, username, password string) *mockEmployeeStore {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &mockEmployeeStore{employees: map[string]*db.Employee{
		username: {
			ID:           "emp-1",
			Username:     username,
			DisplayName:  "Erin Example",
			Role:         "employee",
			PasswordHash: string(hash),
		},
	}}
}

func TestLogin_Success(t *testing.T) {
	store := employeeStoreWith(t, "erin", "hunter2hunter2")
	issuer := &mockIssuer{}

	result, err := Login(context.Background(), store, issuer, zap.NewNop(), "erin", "hunter2hunter2")
	require.NoError(t, err)
	assert.Equal(t, issuer.issued, result.Token)
	assert.Equal(t, "emp-1", result.Employee.ID)
}

func TestLogin_WrongPassword(t *testing.T) {
	store := employeeStoreWith(t, "erin", "hunter2hunter2")

	_, err := Login(context.Background(), store, &mockIssuer{}, zap.NewNop(), "erin", "wrong")
	require.Error(t, err)
	assert.Equal(t, KindUnauthenticated, KindOf(err))
}

func TestLogin_UnknownUser(t *testing.T) {
	store := &mockEmployeeStore{employees: map[string]*db.Employee{}}

	_, err := Login(context.Background(), store, &mockIssuer{}, zap.NewNop(), "ghost", "whatever")
	require.Error(t, err)
	assert.Equal(t, KindUnauthenticated, KindOf(err))
}

func TestLogin_MissingCredentials(t *testing.T) {
	store := &mockEmployeeStore{employees: map[string]*db.Employee{}}

	_, err := Login(context.Background(), store, &mockIssuer{}, zap.NewNop(), "", "")
	require.Error(t, err)
	assert.Equal(t, KindInvalidArgument, KindOf(err))
}
