//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"booking-engine/internal/domain/booking"
	"booking-engine/internal/infra"
	"booking-engine/internal/infra/quotecache"
	"booking-engine/internal/pkg/clock"
	"booking-engine/internal/pkg/errs"
	"booking-engine/internal/usecase/commands"
	"booking-engine/internal/usecase/queries"
	"booking-engine/internal/usecase/shared"
	"booking-engine/tests/common/builder"
	commandsmock "booking-engine/tests/mock/commands"
	queriesmock "booking-engine/tests/mock/queries"
	sharedmock "booking-engine/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type QuoteCommandsTestSuite struct {
	suite.Suite
	ctx          context.Context
	mockCtrl     *gomock.Controller
	uow          *sharedmock.MockUnitOfWork
	reads        *sharedmock.MockCommandReads
	availability *queriesmock.MockAvailabilityQueries
	bookings     *commandsmock.MockBookingCommands
	cache        *quotecache.MemoryCache
	commands     commands.QuoteCommands
}

func (s *QuoteCommandsTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.mockCtrl = gomock.NewController(s.T())
	s.uow = sharedmock.NewMockUnitOfWork(s.mockCtrl)
	s.reads = sharedmock.NewMockCommandReads(s.mockCtrl)
	s.availability = queriesmock.NewMockAvailabilityQueries(s.mockCtrl)
	s.bookings = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.cache = quotecache.NewMemoryCache()

	factory := booking.NewFactory(clock.NewFixedClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)))
	s.commands = commands.NewQuoteCommands(s.uow, factory, s.availability, s.bookings, s.cache)
}

func (s *QuoteCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestQuoteCommandsSuite(t *testing.T) {
	suite.Run(t, new(QuoteCommandsTestSuite))
}

func (s *QuoteCommandsTestSuite) TestQuote() {
	b := builder.NewBookingBuilder()
	snap := &shared.PropertySnapshot{ID: b.PropertyID, Name: b.PropertyName, NightlyRateCents: b.NightlyRateCents}

	s.Run("success: prices the stay and caches the quote", func() {
		s.uow.EXPECT().CommandReads().Return(s.reads).Times(1)
		s.reads.EXPECT().PropertyByID(gomock.Any(), b.PropertyID).Return(snap, nil).Times(1)
		s.availability.EXPECT().CheckSingle(gomock.Any(), b.PropertyID, b.From, b.To).
			Return(&queries.AvailabilityResult{Available: true}, nil).Times(1)

		quote, err := s.commands.Quote(s.ctx, b.HolderID, b.PropertyID, b.From, b.To)
		s.Require().NoError(err)
		s.Equal(b.PropertyID, quote.PropertyID)
		s.Equal(b.PropertyName, quote.PropertyName)
		s.Equal(3, quote.Nights)
		s.Equal(int64(30000), quote.TotalPriceCents)

		cached, err := s.cache.Get(s.ctx, b.HolderID)
		s.Require().NoError(err)
		s.Require().NotNil(cached)
		s.Equal(*quote, *cached)
	})

	s.Run("unavailable: reports the blocking ranges without caching", func() {
		s.uow.EXPECT().CommandReads().Return(s.reads).Times(1)
		s.reads.EXPECT().PropertyByID(gomock.Any(), b.PropertyID).Return(snap, nil).Times(1)
		s.availability.EXPECT().CheckSingle(gomock.Any(), b.PropertyID, b.From, b.To).
			Return(&queries.AvailabilityResult{
				Available: false,
				Conflicts: []queries.ConflictingRange{{
					From: time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC),
					To:   time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
				}},
			}, nil).Times(1)

		holderID := uuid.New()
		_, err := s.commands.Quote(s.ctx, holderID, b.PropertyID, b.From, b.To)
		s.Require().ErrorIs(err, errs.ErrDatesUnavailable)

		var conflictErr *commands.ConflictError
		s.Require().True(errors.As(err, &conflictErr))
		s.Require().Len(conflictErr.Conflicts, 1)
		s.Equal("2026-03-11/2026-03-14", conflictErr.Conflicts[0].String())

		cached, err := s.cache.Get(s.ctx, holderID)
		s.Require().NoError(err)
		s.Nil(cached)
	})

	s.Run("invalid range: rejected before any read", func() {
		_, err := s.commands.Quote(s.ctx, b.HolderID, b.PropertyID, "2026-03-13", "2026-03-10")
		s.ErrorIs(err, errs.ErrInvalidStayRange)
	})

	s.Run("unknown property", func() {
		s.uow.EXPECT().CommandReads().Return(s.reads).Times(1)
		s.reads.EXPECT().PropertyByID(gomock.Any(), b.PropertyID).
			Return(nil, infra.WrapRepoErr("property not found", nil, infra.KindNotFound)).Times(1)

		_, err := s.commands.Quote(s.ctx, b.HolderID, b.PropertyID, b.From, b.To)
		s.ErrorIs(err, errs.ErrPropertyNotFound)
	})
}

func (s *QuoteCommandsTestSuite) TestCommit() {
	b := builder.NewBookingBuilder()
	returnView := b.BuildView()

	s.Run("delegates to the conflict-safe create path", func() {
		s.bookings.EXPECT().CreateBooking(gomock.Any(), commands.CreateBookingParams{
			PropertyID: b.PropertyID,
			HolderID:   b.HolderID,
			From:       b.From,
			To:         b.To,
		}).Return(returnView, nil).Times(1)

		view, err := s.commands.Commit(s.ctx, b.HolderID, b.PropertyID, b.From, b.To)
		s.Require().NoError(err)
		s.Equal(returnView.ID, view.ID)
	})

	s.Run("conflict surfaces unchanged", func() {
		s.bookings.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(&commands.ConflictError{}, errs.ErrBookingConflict)).Times(1)

		_, err := s.commands.Commit(s.ctx, b.HolderID, b.PropertyID, b.From, b.To)
		s.ErrorIs(err, errs.ErrBookingConflict)
	})
}

func (s *QuoteCommandsTestSuite) TestCommitLast() {
	b := builder.NewBookingBuilder()
	returnView := b.BuildView()
	cachedQuote := &commands.Quote{
		PropertyID:      b.PropertyID,
		PropertyName:    b.PropertyName,
		From:            b.From,
		To:              b.To,
		Nights:          3,
		TotalPriceCents: 30000,
	}

	s.Run("no cached quote", func() {
		_, err := s.commands.CommitLast(s.ctx, uuid.New())
		s.ErrorIs(err, errs.ErrNoCachedQuote)
	})

	s.Run("replays the cached quote and clears it on success", func() {
		holderID := uuid.New()
		s.Require().NoError(s.cache.Put(s.ctx, holderID, cachedQuote))

		s.bookings.EXPECT().CreateBooking(gomock.Any(), commands.CreateBookingParams{
			PropertyID: b.PropertyID,
			HolderID:   holderID,
			From:       b.From,
			To:         b.To,
		}).Return(returnView, nil).Times(1)

		view, err := s.commands.CommitLast(s.ctx, holderID)
		s.Require().NoError(err)
		s.Equal(returnView.ID, view.ID)

		cached, err := s.cache.Get(s.ctx, holderID)
		s.Require().NoError(err)
		s.Nil(cached, "successful commit must clear the cached quote")
	})

	s.Run("failed commit keeps the cached quote for retry", func() {
		holderID := uuid.New()
		s.Require().NoError(s.cache.Put(s.ctx, holderID, cachedQuote))

		s.bookings.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(&commands.ConflictError{}, errs.ErrBookingConflict)).Times(1)

		_, err := s.commands.CommitLast(s.ctx, holderID)
		s.Require().ErrorIs(err, errs.ErrBookingConflict)

		cached, err := s.cache.Get(s.ctx, holderID)
		s.Require().NoError(err)
		s.NotNil(cached)
	})
}
