//go:build e2e

package quote_test

import (
	"net/http"
	"testing"
	"time"

	"booking-engine/internal/handler/dto/request"
	"booking-engine/internal/handler/dto/response"
	"booking-engine/tests/common/dbtest"
	"booking-engine/tests/common/httptest"
	"booking-engine/tests/e2e"
	"booking-engine/tests/e2e/common/helper"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	bookingsURL   = "/api/bookings"
	quotesURL     = "/api/quotes"
	commitURL     = "/api/quotes/commit"
	commitLastURL = "/api/quotes/commit-last"
	nightlyRate   = int64(25000)
)

type QuoteSuite struct {
	e2e.SharedSuite
}

func TestQuoteSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(QuoteSuite))
}

func day(offset int) string {
	return time.Now().UTC().AddDate(0, 0, offset).Format("2006-01-02")
}

// =============================================================================
// TestQuote - Quote API tests
// =============================================================================

func (s *QuoteSuite) TestQuote() {
	s.Run("Normal case: Quote prices the stay without reserving it", func() {
		t := s.T()

		propertyID := dbtest.CreateTestProperty(t, s.DB, "Harbor Loft", nightlyRate)
		token := helper.IssueToken(t, s.Config.JWT, uuid.New())

		reqBody := request.QuoteRequest{PropertyID: propertyID, From: day(30), To: day(34)}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, quotesURL, reqBody, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var quote response.QuoteResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &quote))
		require.Equal(t, 4, quote.Nights)
		require.Equal(t, 4*nightlyRate, quote.TotalPriceCents)
		require.Equal(t, "Harbor Loft", quote.PropertyName)

		// No hold: the range stays bookable by anyone
		var count int
		err := s.DB.QueryRow(t.Context(), "SELECT count(*) FROM bookings").Scan(&count)
		require.NoError(t, err)
		require.Zero(t, count, "quote must not create a booking row")
	})

	s.Run("Error case: Quoting taken dates returns 409 with conflicts", func() {
		t := s.T()

		propertyID := dbtest.CreateTestProperty(t, s.DB, "Harbor Loft", nightlyRate)
		dbtest.CreateTestBooking(t, s.DB, propertyID, uuid.New(), day(30), day(34), "confirmed", 4*nightlyRate)

		token := helper.IssueToken(t, s.Config.JWT, uuid.New())
		reqBody := request.QuoteRequest{PropertyID: propertyID, From: day(32), To: day(36)}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, quotesURL, reqBody, token)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())

		var body struct {
			Conflicts []response.ConflictingRangeResponse `json:"conflicts"`
		}
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &body))
		require.Len(t, body.Conflicts, 1)
		require.Equal(t, day(30), body.Conflicts[0].From)
	})

	s.Run("Error case: Unknown property returns 404", func() {
		t := s.T()

		token := helper.IssueToken(t, s.Config.JWT, uuid.New())
		reqBody := request.QuoteRequest{PropertyID: uuid.New(), From: day(30), To: day(34)}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, quotesURL, reqBody, token)
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

// =============================================================================
// TestCommit - Quote commit API tests
// =============================================================================

func (s *QuoteSuite) TestCommit() {
	s.Run("Normal case: Commit books the quoted stay at the quoted price", func() {
		t := s.T()

		propertyID := dbtest.CreateTestProperty(t, s.DB, "Harbor Loft", nightlyRate)
		holderID := uuid.New()
		token := helper.IssueToken(t, s.Config.JWT, holderID)

		qw := httptest.PerformRequest(t, s.Router, http.MethodPost, quotesURL,
			request.QuoteRequest{PropertyID: propertyID, From: day(30), To: day(34)}, token)
		require.Equal(t, http.StatusOK, qw.Code)

		var quote response.QuoteResponse
		require.NoError(t, httptest.DecodeResponseBody(t, qw.Body, &quote))

		cw := httptest.PerformRequest(t, s.Router, http.MethodPost, commitURL,
			request.CommitQuoteRequest{PropertyID: propertyID, From: day(30), To: day(34)}, token)
		require.Equal(t, http.StatusCreated, cw.Code, cw.Body.String())

		var booked response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, cw.Body, &booked))
		require.Equal(t, quote.TotalPriceCents, booked.TotalPriceCents)
		require.Equal(t, holderID, booked.HolderID)
		require.Equal(t, "confirmed", booked.Status)
	})

	s.Run("Error case: A competing booking between quote and commit wins", func() {
		t := s.T()

		propertyID := dbtest.CreateTestProperty(t, s.DB, "Harbor Loft", nightlyRate)
		token := helper.IssueToken(t, s.Config.JWT, uuid.New())

		qw := httptest.PerformRequest(t, s.Router, http.MethodPost, quotesURL,
			request.QuoteRequest{PropertyID: propertyID, From: day(30), To: day(34)}, token)
		require.Equal(t, http.StatusOK, qw.Code)

		// A competitor takes the range while the quote sits unconfirmed
		competitorToken := helper.IssueToken(t, s.Config.JWT, uuid.New())
		bw := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
			request.CreateBookingRequest{PropertyID: propertyID, From: day(30), To: day(34)}, competitorToken)
		require.Equal(t, http.StatusCreated, bw.Code)

		cw := httptest.PerformRequest(t, s.Router, http.MethodPost, commitURL,
			request.CommitQuoteRequest{PropertyID: propertyID, From: day(30), To: day(34)}, token)
		require.Equal(t, http.StatusConflict, cw.Code, cw.Body.String())

		var body struct {
			Conflicts []response.ConflictingRangeResponse `json:"conflicts"`
		}
		require.NoError(t, httptest.DecodeResponseBody(t, cw.Body, &body))
		require.NotEmpty(t, body.Conflicts)
	})
}

// =============================================================================
// TestCommitLast - Cached quote replay API tests
// =============================================================================

func (s *QuoteSuite) TestCommitLast() {
	s.Run("Normal case: Commit-last replays the most recent quote", func() {
		t := s.T()

		propertyID := dbtest.CreateTestProperty(t, s.DB, "Harbor Loft", nightlyRate)
		holderID := uuid.New()
		token := helper.IssueToken(t, s.Config.JWT, holderID)

		qw := httptest.PerformRequest(t, s.Router, http.MethodPost, quotesURL,
			request.QuoteRequest{PropertyID: propertyID, From: day(30), To: day(34)}, token)
		require.Equal(t, http.StatusOK, qw.Code)

		cw := httptest.PerformRequest(t, s.Router, http.MethodPost, commitLastURL, nil, token)
		require.Equal(t, http.StatusCreated, cw.Code, cw.Body.String())

		var booked response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, cw.Body, &booked))
		require.Equal(t, day(30), booked.From)
		require.Equal(t, day(34), booked.To)
		require.Equal(t, holderID, booked.HolderID)

		// The cached quote is consumed by a successful commit
		rw := httptest.PerformRequest(t, s.Router, http.MethodPost, commitLastURL, nil, token)
		require.Equal(t, http.StatusNotFound, rw.Code)
	})

	s.Run("Error case: Commit-last without a prior quote returns 404", func() {
		t := s.T()

		token := helper.IssueToken(t, s.Config.JWT, uuid.New())
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, commitLastURL, nil, token)
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}
