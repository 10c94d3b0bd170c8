package services

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/bgibson72/employee-schedule-manager/pkg/db"
)

// LoginStore defines the database operations needed to authenticate an
// employee
type LoginStore interface {
	GetEmployeeByUsername(ctx context.Context, username string) (*db.Employee, error)
}

// TokenIssuer mints an access token for an authenticated employee
type TokenIssuer interface {
	GenerateToken(userID, name, role string) (string, error)
}

// LoginResult carries the issued token and the employee it identifies
type LoginResult struct {
	Token    string
	Employee *db.Employee
}

// Login verifies an employee's credentials and issues an access token.
// A missing account and a wrong password both surface as Unauthenticated so
// the response does not reveal which usernames exist.
func Login(
	ctx context.Context,
	store LoginStore,
	issuer TokenIssuer,
	logger *zap.Logger,
	username, password string,
) (*LoginResult, error) {
	if username == "" || password == "" {
		return nil, newError(KindInvalidArgument, "missing username or password")
	}

	employee, err := store.GetEmployeeByUsername(ctx, username)
	if err != nil {
		if err == db.ErrNotFound {
			return nil, newError(KindUnauthenticated, "invalid credentials")
		}
		return nil, internalError(err, "failed to load employee %s", username)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(employee.PasswordHash), []byte(password)); err != nil {
		return nil, newError(KindUnauthenticated, "invalid credentials")
	}

	token, err := issuer.GenerateToken(employee.ID, employee.DisplayName, employee.Role)
	if err != nil {
		return nil, internalError(err, "failed to issue token")
	}

	logger.Info("Employee logged in",
		zap.String("employee_id", employee.ID),
		zap.String("role", employee.Role))

	return &LoginResult{Token: token, Employee: employee}, nil
}
