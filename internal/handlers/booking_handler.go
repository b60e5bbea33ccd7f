package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/VelvetStudioPL/salon-scheduler/internal/httperr"
	"github.com/VelvetStudioPL/salon-scheduler/internal/httpresp"
	"github.com/VelvetStudioPL/salon-scheduler/internal/middleware"
	ucBooking "github.com/VelvetStudioPL/salon-scheduler/internal/usecase/booking"
)

// BookingHandler is the customer-facing side: the public availability
// calendar, booking, and the "my appointments" list.
type BookingHandler struct {
	bookUC         *ucBooking.BookAppointment
	availabilityUC *ucBooking.Availability
	appointmentsUC *ucBooking.ManageAppointments
}

func NewBookingHandler(
	bookUC *ucBooking.BookAppointment,
	availabilityUC *ucBooking.Availability,
	appointmentsUC *ucBooking.ManageAppointments,
) *BookingHandler {
	return &BookingHandler{
		bookUC:         bookUC,
		availabilityUC: availabilityUC,
		appointmentsUC: appointmentsUC,
	}
}

// GET /api/available-dates
func (h *BookingHandler) AvailableDates(c *gin.Context) {
	dates, err := h.availabilityUC.Dates(c.Request.Context())
	if err != nil {
		httperr.WriteError(c, err)
		return
	}
	httpresp.OK(c, gin.H{"dates": dates})
}

// GET /api/available-slots/:date
func (h *BookingHandler) AvailableSlots(c *gin.Context) {
	slots, err := h.availabilityUC.SlotsForDate(c.Request.Context(), c.Param("date"))
	if err != nil {
		httperr.WriteError(c, err)
		return
	}
	httpresp.OK(c, gin.H{"slots": slots})
}

type bookRequest struct {
	Date  string `json:"date"`
	Time  string `json:"time"`
	Notes string `json:"notes"`
}

// POST /api/book-appointment
func (h *BookingHandler) Book(c *gin.Context) {
	var req bookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Nieprawidłowe dane")
		return
	}

	message, err := h.bookUC.Execute(c.Request.Context(), ucBooking.BookAppointmentInput{
		UserID: middleware.UserID(c),
		Date:   req.Date,
		Time:   req.Time,
		Notes:  req.Notes,
	})
	if err != nil {
		httperr.WriteError(c, err)
		return
	}
	httpresp.Success(c, message)
}

// GET /api/user/appointments
func (h *BookingHandler) MyAppointments(c *gin.Context) {
	appointments, err := h.appointmentsUC.ListForUser(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		httperr.WriteError(c, err)
		return
	}
	httpresp.OK(c, gin.H{"appointments": appointments})
}
