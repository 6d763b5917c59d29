package api

import (
	"errors"
	"net/http"

	resdto "booking-engine/internal/handler/dto/response"
	"booking-engine/internal/pkg/errs"
	"booking-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PropertyHandler struct {
	propertyQueries queries.PropertyQueries
	bookingQueries  queries.BookingQueries
}

func NewPropertyHandler(propertyQueries queries.PropertyQueries, bookingQueries queries.BookingQueries) *PropertyHandler {
	return &PropertyHandler{
		propertyQueries: propertyQueries,
		bookingQueries:  bookingQueries,
	}
}

// @Summary Get property
// @Description Get property by ID
// @Tags properties
// @Produce json
// @Param id path string true "Property ID"
// @Success 200 {object} resdto.PropertyResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /properties/{id} [get]
func (h *PropertyHandler) GetProperty(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid property ID format",
		})
		return
	}

	propertyView, err := h.propertyQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrPropertyNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Property not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromPropertyView(propertyView))
}

// @Summary List property bookings
// @Description List bookings for a property, optionally skipping stays that ended before a date
// @Tags properties
// @Produce json
// @Param id path string true "Property ID"
// @Param from query string false "Drop stays that ended before this date (YYYY-MM-DD)"
// @Success 200 {array} resdto.BookingListResponse
// @Failure 400 {object} map[string]string
// @Router /properties/{id}/bookings [get]
func (h *PropertyHandler) ListPropertyBookings(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid property ID format",
		})
		return
	}

	items, err := h.bookingQueries.ListByProperty(c.Request.Context(), id, c.Query("from"))
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidStayRange):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid from date, expected YYYY-MM-DD",
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
