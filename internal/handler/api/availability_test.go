//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"booking-engine/internal/handler/api"
	resdto "booking-engine/internal/handler/dto/response"
	"booking-engine/internal/pkg/errs"
	"booking-engine/internal/usecase/queries"
	"booking-engine/tests/common/httptest"
	queriesmock "booking-engine/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AvailabilityHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockAvailabilityQueries
	handler     *api.AvailabilityHandler
}

func (s *AvailabilityHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockAvailabilityQueries(s.mockCtrl)
	s.handler = api.NewAvailabilityHandler(s.mockQueries)

	s.router.GET("/properties/:id/availability", s.handler.CheckAvailability)
	s.router.POST("/properties/:id/availability/bulk", s.handler.CheckBulkAvailability)
}

func (s *AvailabilityHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAvailabilityHandlerSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityHandlerTestSuite))
}

func (s *AvailabilityHandlerTestSuite) TestCheckAvailability() {
	propertyID := uuid.New()
	baseURL := "/properties/" + propertyID.String() + "/availability"

	s.Run("success: available range", func() {
		s.mockQueries.EXPECT().CheckSingle(gomock.Any(), propertyID, "2026-03-10", "2026-03-13").
			Return(&queries.AvailabilityResult{Available: true}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, baseURL+"?from=2026-03-10&to=2026-03-13", nil, "")
		s.Equal(http.StatusOK, rec.Code)

		var resp resdto.AvailabilityResponse
		_ = httptest.DecodeResponseBody(s.T(), rec.Body, &resp)
		s.True(resp.Available)
		s.Empty(resp.Conflicts)
	})

	s.Run("success: unavailable range lists conflicts", func() {
		conflicts := []queries.ConflictingRange{{
			From: time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC),
			To:   time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		}}
		s.mockQueries.EXPECT().CheckSingle(gomock.Any(), propertyID, "2026-03-10", "2026-03-13").
			Return(&queries.AvailabilityResult{Available: false, Conflicts: conflicts}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, baseURL+"?from=2026-03-10&to=2026-03-13", nil, "")
		s.Equal(http.StatusOK, rec.Code)

		var resp resdto.AvailabilityResponse
		_ = httptest.DecodeResponseBody(s.T(), rec.Body, &resp)
		s.False(resp.Available)
		s.Require().Len(resp.Conflicts, 1)
		s.Equal("2026-03-11", resp.Conflicts[0].From)
		s.Equal("2026-03-14", resp.Conflicts[0].To)
	})

	s.Run("bad request: missing query parameters", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, baseURL+"?from=2026-03-10", nil, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("bad request: malformed property id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/properties/nope/availability?from=2026-03-10&to=2026-03-13", nil, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("bad request: invalid range", func() {
		s.mockQueries.EXPECT().CheckSingle(gomock.Any(), propertyID, "2026-03-13", "2026-03-10").
			Return(nil, errs.Mark(errs.New("inverted"), errs.ErrInvalidStayRange)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, baseURL+"?from=2026-03-13&to=2026-03-10", nil, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("not found: unknown property", func() {
		s.mockQueries.EXPECT().CheckSingle(gomock.Any(), propertyID, "2026-03-10", "2026-03-13").
			Return(nil, errs.Mark(errs.New("missing"), errs.ErrPropertyNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, baseURL+"?from=2026-03-10&to=2026-03-13", nil, "")
		s.Equal(http.StatusNotFound, rec.Code)
	})
}

func (s *AvailabilityHandlerTestSuite) TestCheckBulkAvailability() {
	propertyID := uuid.New()
	url := "/properties/" + propertyID.String() + "/availability/bulk"

	s.Run("success: mixes valid and invalid ranges", func() {
		rangeErr := "stay start date must be before end date: got [2026-03-13, 2026-03-10)"
		results := []queries.BulkRangeResult{
			{From: "2026-03-10", To: "2026-03-13", Available: true},
			{From: "2026-03-13", To: "2026-03-10", Error: &rangeErr},
		}
		s.mockQueries.EXPECT().CheckBulk(gomock.Any(), propertyID, gomock.Len(2)).
			Return(results, nil).Times(1)

		body := map[string]any{
			"ranges": []map[string]string{
				{"from": "2026-03-10", "to": "2026-03-13"},
				{"from": "2026-03-13", "to": "2026-03-10"},
			},
		}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		s.Equal(http.StatusOK, rec.Code)

		var resp resdto.BulkAvailabilityResponse
		_ = httptest.DecodeResponseBody(s.T(), rec.Body, &resp)
		s.Require().Len(resp.Results, 2)
		s.True(resp.Results[0].Available)
		s.Require().NotNil(resp.Results[1].Error)
		s.Equal(rangeErr, *resp.Results[1].Error)
	})

	s.Run("bad request: empty range list", func() {
		body := map[string]any{"ranges": []map[string]string{}}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("not found: unknown property", func() {
		s.mockQueries.EXPECT().CheckBulk(gomock.Any(), propertyID, gomock.Any()).
			Return(nil, errs.Mark(errs.New("missing"), errs.ErrPropertyNotFound)).Times(1)

		body := map[string]any{
			"ranges": []map[string]string{{"from": "2026-03-10", "to": "2026-03-13"}},
		}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		s.Equal(http.StatusNotFound, rec.Code)
	})
}
