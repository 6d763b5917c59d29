package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"booking-engine/internal/handler/api"
	"booking-engine/internal/handler/middleware"
	"booking-engine/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	bookingHandler *api.BookingHandler,
	quoteHandler *api.QuoteHandler,
	availabilityHandler *api.AvailabilityHandler,
	propertyHandler *api.PropertyHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, bookingHandler, quoteHandler, availabilityHandler, propertyHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	bookingHandler *api.BookingHandler,
	quoteHandler *api.QuoteHandler,
	availabilityHandler *api.AvailabilityHandler,
	propertyHandler *api.PropertyHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		properties := apiGroup.Group("/properties")
		{
			addRoutes(properties, []route{
				{Method: http.MethodGet, Path: "/:id", Handler: propertyHandler.GetProperty},
				{Method: http.MethodGet, Path: "/:id/bookings", Handler: propertyHandler.ListPropertyBookings},
				{Method: http.MethodGet, Path: "/:id/availability", Handler: availabilityHandler.CheckAvailability},
				{Method: http.MethodPost, Path: "/:id/availability/bulk", Handler: availabilityHandler.CheckBulkAvailability},
			})
		}

		bookings := apiGroup.Group("/bookings")
		bookings.Use(authMiddleware.RequireAuth())
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: bookingHandler.CreateBooking},
				{Method: http.MethodGet, Path: "", Handler: bookingHandler.ListOwnBookings},
				{Method: http.MethodGet, Path: "/:id", Handler: bookingHandler.GetBooking},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: bookingHandler.CancelBooking},
			})
		}

		quotes := apiGroup.Group("/quotes")
		quotes.Use(authMiddleware.RequireAuth())
		{
			addRoutes(quotes, []route{
				{Method: http.MethodPost, Path: "", Handler: quoteHandler.Quote},
				{Method: http.MethodPost, Path: "/commit", Handler: quoteHandler.Commit},
				{Method: http.MethodPost, Path: "/commit-last", Handler: quoteHandler.CommitLast},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
