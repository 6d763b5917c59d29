package api

import (
	"errors"
	"net/http"

	"booking-engine/internal/domain/booking"
	reqdto "booking-engine/internal/handler/dto/request"
	resdto "booking-engine/internal/handler/dto/response"
	"booking-engine/internal/handler/middleware"
	"booking-engine/internal/pkg/errs"
	"booking-engine/internal/usecase/commands"
	"booking-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
}

func NewBookingHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
	}
}

// @Summary Create booking
// @Description Book a property for a half-open [from, to) date range
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]any
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	holderID, ok := middleware.GetHolderID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	bookingView, err := h.bookingCommands.CreateBooking(c.Request.Context(), req.ToParams(holderID))
	if err != nil {
		respondBookingError(c, err, req.From, req.To)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBookingView(bookingView))
}

// @Summary Get booking
// @Description Get booking by ID
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	bookingView, err := h.bookingQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(bookingView))
}

// @Summary List own bookings
// @Description List the authenticated holder's bookings, optionally filtered by "upcoming" or "past"
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param filter query string false "upcoming / past / all"
// @Success 200 {array} resdto.BookingListResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /bookings [get]
func (h *BookingHandler) ListOwnBookings(c *gin.Context) {
	holderID, ok := middleware.GetHolderID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	items, err := h.bookingQueries.ListByHolder(c.Request.Context(), holderID, c.Query("filter"))
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidListFilter):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Filter must be one of: upcoming, past, all",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingListItems(items))
}

// @Summary Cancel booking
// @Description Cancel a booking held by the authenticated holder, freeing its dates
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/cancel [post]
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	holderID, ok := middleware.GetHolderID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	bookingView, err := h.bookingCommands.CancelBooking(c.Request.Context(), id, holderID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		case errors.Is(err, errs.ErrNotBookingHolder):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Booking belongs to another holder",
			})
		case errors.Is(err, errs.ErrInvalidStatusTransition):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Booking can no longer be cancelled",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(bookingView))
}

// respondBookingError maps create/commit failures shared by the booking and
// quote endpoints. Conflict responses list the taken ranges when the engine
// reported them; otherwise the requested range is echoed back.
func respondBookingError(c *gin.Context, err error, from, to string) {
	switch {
	case errors.Is(err, errs.ErrPropertyNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Property not found",
		})
	case errors.Is(err, errs.ErrInvalidStayRange):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
	case errors.Is(err, errs.ErrBookingConflict), errors.Is(err, errs.ErrDatesUnavailable):
		conflicts := conflictRanges(err, from, to)
		c.JSON(http.StatusConflict, gin.H{
			"error":     "Requested dates are not available",
			"conflicts": conflicts,
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}

func conflictRanges(err error, from, to string) []resdto.ConflictingRangeResponse {
	var conflictErr *commands.ConflictError
	if errors.As(err, &conflictErr) && len(conflictErr.Conflicts) > 0 {
		out := make([]resdto.ConflictingRangeResponse, len(conflictErr.Conflicts))
		for i, stay := range conflictErr.Conflicts {
			out[i] = resdto.ConflictingRangeResponse{
				From: stay.From().Format(booking.DateLayout),
				To:   stay.To().Format(booking.DateLayout),
			}
		}
		return out
	}
	if from == "" || to == "" {
		return nil
	}
	return []resdto.ConflictingRangeResponse{{From: from, To: to}}
}
