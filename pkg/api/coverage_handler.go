package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/bgibson72/employee-schedule-manager/pkg/core/services"
	"github.com/bgibson72/employee-schedule-manager/pkg/db"
	"github.com/bgibson72/employee-schedule-manager/pkg/response"
)

// CoverageHandler exposes the shift-coverage workflow operations
type CoverageHandler struct {
	store  db.Database
	logger *zap.Logger
}

// NewCoverageHandler creates a CoverageHandler
func NewCoverageHandler(store db.Database, logger *zap.Logger) *CoverageHandler {
	return &CoverageHandler{store: store, logger: logger}
}

type requestCoverageBody struct {
	ShiftID   string `json:"shiftId" binding:"required"`
	Date      string `json:"date" binding:"required,datetime=2006-01-02"`
	StartTime string `json:"startTime" binding:"required,datetime=15:04"`
	EndTime   string `json:"endTime" binding:"required,datetime=15:04"`
}

type claimCoverageBody struct {
	Force bool `json:"force"`
}

// RequestCoverage posts one of the caller's shifts for coverage
// POST /api/v1/coverage
func (h *CoverageHandler) RequestCoverage(c *gin.Context) {
	var body requestCoverageBody
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, "missing or malformed required fields")
		return
	}

	id, err := services.RequestCoverage(c.Request.Context(), h.store, actorFrom(c), h.logger, services.RequestCoverageInput{
		ShiftID:   body.ShiftID,
		Date:      body.Date,
		StartTime: body.StartTime,
		EndTime:   body.EndTime,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id})
}

// ClaimCoverage claims an open coverage request, optionally forcing past a
// collision warning
// POST /api/v1/coverage/:id/claim
func (h *CoverageHandler) ClaimCoverage(c *gin.Context) {
	var body claimCoverageBody
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&body); err != nil {
			response.BadRequest(c, "malformed request body")
			return
		}
	}

	result, err := services.ClaimCoverage(c.Request.Context(), h.store, actorFrom(c), h.logger, services.ClaimCoverageInput{
		RequestID: c.Param("id"),
		Force:     body.Force,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	if result.Collision {
		c.JSON(http.StatusOK, gin.H{"collision": true, "message": result.Message})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ReturnCoverage returns the caller's claimed coverage request
// POST /api/v1/coverage/:id/return
func (h *CoverageHandler) ReturnCoverage(c *gin.Context) {
	if err := services.ReturnCoverage(c.Request.Context(), h.store, actorFrom(c), h.logger, c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// CompleteCoverage marks a claimed coverage request as completed
// POST /api/v1/coverage/:id/complete
func (h *CoverageHandler) CompleteCoverage(c *gin.Context) {
	if err := services.CompleteCoverage(c.Request.Context(), h.store, actorFrom(c), h.logger, c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ListCoverage lists coverage requests for the request board
// GET /api/v1/coverage?status=Open
func (h *CoverageHandler) ListCoverage(c *gin.Context) {
	requests, err := services.ListCoverage(c.Request.Context(), h.store, actorFrom(c), h.logger, c.Query("status"))
	if err != nil {
		response.Error(c, err)
		return
	}

	if requests == nil {
		requests = []db.CoverageRequest{}
	}
	c.JSON(http.StatusOK, gin.H{"requests": requests})
}
