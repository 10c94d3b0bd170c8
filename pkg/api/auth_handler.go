package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/bgibson72/employee-schedule-manager/pkg/core/services"
	"github.com/bgibson72/employee-schedule-manager/pkg/db"
	"github.com/bgibson72/employee-schedule-manager/pkg/response"
)

// AuthHandler exposes the login endpoint
type AuthHandler struct {
	store  db.EmployeeStore
	issuer services.TokenIssuer
	logger *zap.Logger
}

// NewAuthHandler creates an AuthHandler
func NewAuthHandler(store db.EmployeeStore, issuer services.TokenIssuer, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{store: store, issuer: issuer, logger: logger}
}

type loginBody struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login verifies credentials and issues an access token
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var body loginBody
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, "missing username or password")
		return
	}

	result, err := services.Login(c.Request.Context(), h.store, h.issuer, h.logger, body.Username, body.Password)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": result.Token,
		"user": gin.H{
			"id":          result.Employee.ID,
			"displayName": result.Employee.DisplayName,
			"role":        result.Employee.Role,
		},
	})
}
