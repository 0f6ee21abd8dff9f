package handlers

import (
	"errors"
	"net/http"

	"weddify/models"
	"weddify/services/booking"
	"weddify/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking engine endpoints.
type BookingHandler struct {
	BookingService booking.BookingService
}

func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{BookingService: svc}
}

// CreateBookingHandler handles POST /bookings.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	logger := utils.GetLogger()
	idStr, ok := callerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var input models.BookingRequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	record, err := h.BookingService.CreateVendorPackageBooking(c.Request.Context(), idStr, input)
	if err != nil {
		h.writeBookingError(c, err)
		return
	}

	logger.Info("Booking request accepted",
		zap.String("bookingID", record.ID), zap.String("userID", idStr))
	c.JSON(http.StatusCreated, record)
}

// GetBookingHandler handles GET /bookings/:id.
func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	idStr, ok := callerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	record, err := h.BookingService.GetBooking(c.Request.Context(), c.Param("id"), idStr)
	if err != nil {
		h.writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

// ListUserBookingsHandler handles GET /bookings.
func (h *BookingHandler) ListUserBookingsHandler(c *gin.Context) {
	idStr, ok := callerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	records, err := h.BookingService.ListUserBookings(c.Request.Context(), idStr)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": records})
}

// ListVendorBookingsHandler handles GET /vendors/me/bookings.
func (h *BookingHandler) ListVendorBookingsHandler(c *gin.Context) {
	idStr, ok := callerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	records, err := h.BookingService.ListVendorBookings(c.Request.Context(), idStr)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": records})
}

// ConfirmBookingHandler handles POST /vendors/me/bookings/:id/confirm.
func (h *BookingHandler) ConfirmBookingHandler(c *gin.Context) {
	idStr, ok := callerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	record, err := h.BookingService.ConfirmBooking(c.Request.Context(), c.Param("id"), idStr)
	if err != nil {
		h.writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

// CancelBookingHandler handles POST /bookings/:id/cancel.
func (h *BookingHandler) CancelBookingHandler(c *gin.Context) {
	idStr, ok := callerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.BookingService.CancelBooking(c.Request.Context(), c.Param("id"), idStr); err != nil {
		h.writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking cancelled"})
}

// writeBookingError maps engine errors onto HTTP statuses. Validation
// failures carry the full violation list so clients can show every
// problem at once.
func (h *BookingHandler) writeBookingError(c *gin.Context, err error) {
	var vErr *booking.ValidationError
	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":      "booking request failed validation",
			"violations": vErr.Violations,
		})
	case errors.Is(err, booking.ErrPackageNotFound),
		errors.Is(err, booking.ErrVenueNotFound),
		errors.Is(err, booking.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, booking.ErrCapacityExceeded):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, booking.ErrNotOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		utils.GetLogger().Error("Booking operation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "booking operation failed"})
	}
}
