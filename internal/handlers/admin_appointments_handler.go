package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/VelvetStudioPL/salon-scheduler/internal/httperr"
	"github.com/VelvetStudioPL/salon-scheduler/internal/httpresp"
	"github.com/VelvetStudioPL/salon-scheduler/internal/middleware"
	ucBooking "github.com/VelvetStudioPL/salon-scheduler/internal/usecase/booking"
)

type AdminAppointmentsHandler struct {
	appointmentsUC *ucBooking.ManageAppointments
	manualUC       *ucBooking.ManualAppointment
}

func NewAdminAppointmentsHandler(
	appointmentsUC *ucBooking.ManageAppointments,
	manualUC *ucBooking.ManualAppointment,
) *AdminAppointmentsHandler {
	return &AdminAppointmentsHandler{
		appointmentsUC: appointmentsUC,
		manualUC:       manualUC,
	}
}

// GET /api/admin/appointments?date=&search=
func (h *AdminAppointmentsHandler) List(c *gin.Context) {
	appointments, err := h.appointmentsUC.List(
		c.Request.Context(),
		c.Query("date"),
		c.Query("search"),
	)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}
	httpresp.OK(c, gin.H{"appointments": appointments})
}

// PATCH /api/admin/appointments/:id/confirm
func (h *AdminAppointmentsHandler) Confirm(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "Nieprawidłowe dane")
		return
	}

	message, err := h.appointmentsUC.Confirm(c.Request.Context(), middleware.UserID(c), id)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}
	httpresp.Success(c, message)
}

// DELETE /api/admin/appointments/:id
func (h *AdminAppointmentsHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "Nieprawidłowe dane")
		return
	}

	message, err := h.appointmentsUC.Delete(c.Request.Context(), middleware.UserID(c), id)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}
	httpresp.Success(c, message)
}

type manualAppointmentRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Notes     string `json:"notes"`
}

// POST /api/admin/appointments/manual
func (h *AdminAppointmentsHandler) CreateManual(c *gin.Context) {
	var req manualAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Wszystkie pola są wymagane")
		return
	}

	message, err := h.manualUC.Execute(c.Request.Context(), ucBooking.ManualAppointmentInput{
		AdminID:   middleware.UserID(c),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Email:     req.Email,
		Date:      req.Date,
		Time:      req.Time,
		Notes:     req.Notes,
	})
	if err != nil {
		httperr.WriteError(c, err)
		return
	}
	httpresp.Success(c, message)
}
