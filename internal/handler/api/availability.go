package api

import (
	"errors"
	"net/http"

	reqdto "booking-engine/internal/handler/dto/request"
	resdto "booking-engine/internal/handler/dto/response"
	"booking-engine/internal/pkg/errs"
	"booking-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AvailabilityHandler struct {
	availability queries.AvailabilityQueries
}

func NewAvailabilityHandler(availability queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{
		availability: availability,
	}
}

// @Summary Check availability
// @Description Check whether a property is free for a half-open [from, to) date range. The answer is a snapshot; a concurrent booking can invalidate it.
// @Tags availability
// @Produce json
// @Param id path string true "Property ID"
// @Param from query string true "Start date (YYYY-MM-DD, inclusive)"
// @Param to query string true "End date (YYYY-MM-DD, exclusive)"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /properties/{id}/availability [get]
func (h *AvailabilityHandler) CheckAvailability(c *gin.Context) {
	propertyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid property ID format",
		})
		return
	}

	from := c.Query("from")
	to := c.Query("to")
	if from == "" || to == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Query parameters from and to are required",
		})
		return
	}

	result, err := h.availability.CheckSingle(c.Request.Context(), propertyID, from, to)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrPropertyNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Property not found",
			})
		case errors.Is(err, errs.ErrInvalidStayRange):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": err.Error(),
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromAvailabilityResult(result))
}

// @Summary Check availability for multiple ranges
// @Description Check several date ranges in one call. A range that fails validation is reported in place and does not abort the others.
// @Tags availability
// @Accept json
// @Produce json
// @Param id path string true "Property ID"
// @Param request body reqdto.BulkAvailabilityRequest true "Ranges to check"
// @Success 200 {object} resdto.BulkAvailabilityResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /properties/{id}/availability/bulk [post]
func (h *AvailabilityHandler) CheckBulkAvailability(c *gin.Context) {
	propertyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid property ID format",
		})
		return
	}

	var req reqdto.BulkAvailabilityRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	results, err := h.availability.CheckBulk(c.Request.Context(), propertyID, req.ToInputs())
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

	c.JSON(http.StatusOK, resdto.FromBulkRangeResults(results))
}
