package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/bgibson72/employee-schedule-manager/pkg/db"
	"github.com/bgibson72/employee-schedule-manager/pkg/response"
)

// ShiftHandler exposes shift listings used by the schedule views
type ShiftHandler struct {
	store  db.ShiftStore
	logger *zap.Logger
}

// NewShiftHandler creates a ShiftHandler
func NewShiftHandler(store db.ShiftStore, logger *zap.Logger) *ShiftHandler {
	return &ShiftHandler{store: store, logger: logger}
}

// MyShifts lists the caller's own shifts
// GET /api/v1/shifts/my
func (h *ShiftHandler) MyShifts(c *gin.Context) {
	actor := actorFrom(c)

	shifts, err := h.store.ListShiftsByEmployee(c.Request.Context(), actor.ID)
	if err != nil {
		h.logger.Error("Failed to list shifts", zap.String("employee_id", actor.ID), zap.Error(err))
		response.Error(c, err)
		return
	}

	if shifts == nil {
		shifts = []db.Shift{}
	}
	c.JSON(http.StatusOK, gin.H{"shifts": shifts})
}
