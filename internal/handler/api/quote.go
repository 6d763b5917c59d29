package api

import (
	"errors"
	"net/http"

	reqdto "booking-engine/internal/handler/dto/request"
	resdto "booking-engine/internal/handler/dto/response"
	"booking-engine/internal/handler/middleware"
	"booking-engine/internal/pkg/errs"
	"booking-engine/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type QuoteHandler struct {
	quoteCommands commands.QuoteCommands
}

func NewQuoteHandler(quoteCommands commands.QuoteCommands) *QuoteHandler {
	return &QuoteHandler{
		quoteCommands: quoteCommands,
	}
}

// @Summary Quote a stay
// @Description Price a stay without reserving it. Quoting places no hold, so the dates can be taken by the time the quote is committed.
// @Tags quotes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.QuoteRequest true "Quote request"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]any
// @Router /quotes [post]
func (h *QuoteHandler) Quote(c *gin.Context) {
	holderID, ok := middleware.GetHolderID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.QuoteRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	quote, err := h.quoteCommands.Quote(c.Request.Context(), holderID, req.PropertyID, req.From, req.To)
	if err != nil {
		respondBookingError(c, err, req.From, req.To)
		return
	}

	c.JSON(http.StatusOK, resdto.FromQuote(quote))
}

// @Summary Commit a quoted stay
// @Description Book the quoted dates. The conflict check reruns from scratch, so a commit can fail even right after a successful quote.
// @Tags quotes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CommitQuoteRequest true "Commit request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]any
// @Router /quotes/commit [post]
func (h *QuoteHandler) Commit(c *gin.Context) {
	holderID, ok := middleware.GetHolderID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CommitQuoteRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	bookingView, err := h.quoteCommands.Commit(c.Request.Context(), holderID, req.PropertyID, req.From, req.To)
	if err != nil {
		respondBookingError(c, err, req.From, req.To)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBookingView(bookingView))
}

// @Summary Commit the last quote
// @Description Book the dates of the holder's most recent quote without restating them.
// @Tags quotes
// @Produce json
// @Security BearerAuth
// @Success 201 {object} resdto.BookingResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]any
// @Router /quotes/commit-last [post]
func (h *QuoteHandler) CommitLast(c *gin.Context) {
	holderID, ok := middleware.GetHolderID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	bookingView, err := h.quoteCommands.CommitLast(c.Request.Context(), holderID)
	if err != nil {
		if errors.Is(err, errs.ErrNoCachedQuote) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "No cached quote for this holder",
			})
			return
		}
		respondBookingError(c, err, "", "")
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBookingView(bookingView))
}
