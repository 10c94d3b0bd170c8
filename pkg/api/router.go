package api

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/bgibson72/employee-schedule-manager/pkg/auth"
	"github.com/bgibson72/employee-schedule-manager/pkg/db"
)

// NewRouter assembles the HTTP API. Every coverage and shift route sits
// behind the auth middleware; only login is public.
func NewRouter(store db.Database, manager *auth.Manager, logger *zap.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestLogger(logger))

	authHandler := NewAuthHandler(store, manager, logger)
	coverageHandler := NewCoverageHandler(store, logger)
	shiftHandler := NewShiftHandler(store, logger)

	v1 := router.Group("/api/v1")
	{
		v1.POST("/auth/login", authHandler.Login)

		authed := v1.Group("")
		authed.Use(Auth(manager))
		{
			authed.POST("/coverage", coverageHandler.RequestCoverage)
			authed.GET("/coverage", coverageHandler.ListCoverage)
			authed.POST("/coverage/:id/claim", coverageHandler.ClaimCoverage)
			authed.POST("/coverage/:id/return", coverageHandler.ReturnCoverage)
			authed.POST("/coverage/:id/complete", coverageHandler.CompleteCoverage)

			authed.GET("/shifts/my", shiftHandler.MyShifts)
		}
	}

	return router
}
