package handlers

import (
	"errors"
	"net/http"

	"doctorsportal/middleware"
	"doctorsportal/models"
	"doctorsportal/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type BookingHandler struct {
	BookingSvc booking.BookingService
	Logger     *zap.Logger
}

func NewBookingHandler(bs booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{BookingSvc: bs, Logger: logger}
}

// GetAvailable handles GET /available?date=.
func (h *BookingHandler) GetAvailable(c *gin.Context) {
	services, err := h.BookingSvc.Available(c.Request.Context(), c.Query("date"))
	if err != nil {
		if errors.Is(err, booking.ErrMissingDate) {
			respondError(c, h.Logger, http.StatusBadRequest, err.Error(), nil)
			return
		}
		respondError(c, h.Logger, http.StatusInternalServerError, "failed to compute available slots", err)
		return
	}
	c.JSON(http.StatusOK, services)
}

// CreateBooking handles POST /booking. A duplicate is reported with success=false and status 200.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var candidate models.Booking
	if err := c.ShouldBindJSON(&candidate); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "invalid booking", "details": err.Error()})
		return
	}

	res, err := h.BookingSvc.Admit(c.Request.Context(), candidate)
	if err != nil {
		if errors.Is(err, booking.ErrInvalidBooking) {
			respondError(c, h.Logger, http.StatusBadRequest, err.Error(), nil)
			return
		}
		respondError(c, h.Logger, http.StatusInternalServerError, "failed to create booking", err)
		return
	}

	if !res.Accepted {
		c.JSON(http.StatusOK, gin.H{"success": false, "booking": res.Conflicting})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "result": res.Result})
}

// GetPatientBookings handles GET /booking?patient=. Patients may only read their own bookings.
func (h *BookingHandler) GetPatientBookings(c *gin.Context) {
	patient := c.Query("patient")
	if patient == "" || patient != c.GetString(middleware.EmailKey) {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "forbidden"})
		return
	}

	bookings, err := h.BookingSvc.ListForPatient(c.Request.Context(), patient)
	if err != nil {
		respondError(c, h.Logger, http.StatusInternalServerError, "failed to fetch bookings", err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}
