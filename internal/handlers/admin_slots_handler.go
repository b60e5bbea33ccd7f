package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/VelvetStudioPL/salon-scheduler/internal/httperr"
	"github.com/VelvetStudioPL/salon-scheduler/internal/httpresp"
	"github.com/VelvetStudioPL/salon-scheduler/internal/middleware"
	ucBooking "github.com/VelvetStudioPL/salon-scheduler/internal/usecase/booking"
)

type AdminSlotsHandler struct {
	slotsUC        *ucBooking.ManageSlots
	availabilityUC *ucBooking.Availability
}

func NewAdminSlotsHandler(
	slotsUC *ucBooking.ManageSlots,
	availabilityUC *ucBooking.Availability,
) *AdminSlotsHandler {
	return &AdminSlotsHandler{
		slotsUC:        slotsUC,
		availabilityUC: availabilityUC,
	}
}

// GET /api/admin/slots/:date — free times plus who holds the booked ones.
func (h *AdminSlotsHandler) Day(c *gin.Context) {
	available, booked, err := h.availabilityUC.AdminDay(c.Request.Context(), c.Param("date"))
	if err != nil {
		httperr.WriteError(c, err)
		return
	}
	httpresp.OK(c, gin.H{
		"available": available,
		"booked":    booked,
	})
}

type openSlotRequest struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

// POST /api/admin/slots
func (h *AdminSlotsHandler) Open(c *gin.Context) {
	var req openSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Nieprawidłowe dane")
		return
	}

	if err := h.slotsUC.Open(c.Request.Context(), middleware.UserID(c), req.Date, req.Time); err != nil {
		httperr.WriteError(c, err)
		return
	}
	httpresp.OK(c, gin.H{"success": true})
}

// DELETE /api/admin/slots/:date/:time
func (h *AdminSlotsHandler) Close(c *gin.Context) {
	if err := h.slotsUC.Close(
		c.Request.Context(),
		middleware.UserID(c),
		c.Param("date"),
		c.Param("time"),
	); err != nil {
		httperr.WriteError(c, err)
		return
	}
	httpresp.OK(c, gin.H{"success": true})
}
