//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"booking-engine/internal/domain/booking"
	"booking-engine/internal/infra"
	"booking-engine/internal/pkg/clock"
	"booking-engine/internal/pkg/errs"
	"booking-engine/internal/usecase/commands"
	"booking-engine/internal/usecase/shared"
	"booking-engine/tests/common/builder"
	queriesmock "booking-engine/tests/mock/queries"
	sharedmock "booking-engine/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingCommandsTestSuite struct {
	suite.Suite
	ctx          context.Context
	mockCtrl     *gomock.Controller
	uow          *sharedmock.MockUnitOfWork
	tx           *sharedmock.MockTx
	reads        *sharedmock.MockCommandReads
	bookingRepo  *sharedmock.MockBookingRepository
	propertyRepo *sharedmock.MockPropertyRepository
	queries      *queriesmock.MockBookingQueries
	commands     commands.BookingCommands
}

func (s *BookingCommandsTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.mockCtrl = gomock.NewController(s.T())
	s.uow = sharedmock.NewMockUnitOfWork(s.mockCtrl)
	s.tx = sharedmock.NewMockTx(s.mockCtrl)
	s.reads = sharedmock.NewMockCommandReads(s.mockCtrl)
	s.bookingRepo = sharedmock.NewMockBookingRepository(s.mockCtrl)
	s.propertyRepo = sharedmock.NewMockPropertyRepository(s.mockCtrl)
	s.queries = queriesmock.NewMockBookingQueries(s.mockCtrl)

	factory := booking.NewFactory(clock.NewFixedClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)))
	s.commands = commands.NewBookingCommands(s.uow, factory, s.queries)

	s.tx.EXPECT().Bookings().Return(s.bookingRepo).AnyTimes()
	s.tx.EXPECT().Properties().Return(s.propertyRepo).AnyTimes()
	s.tx.EXPECT().Reads().Return(s.reads).AnyTimes()
	s.tx.EXPECT().DB().Return(nil).AnyTimes()
}

func (s *BookingCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingCommandsSuite(t *testing.T) {
	suite.Run(t, new(BookingCommandsTestSuite))
}

func (s *BookingCommandsTestSuite) expectWithin() {
	s.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, s.tx)
		},
	).Times(1)
}

func (s *BookingCommandsTestSuite) propertySnapshot(id uuid.UUID) *shared.PropertySnapshot {
	return &shared.PropertySnapshot{ID: id, Name: "Seaside Cottage", NightlyRateCents: 10000}
}

func (s *BookingCommandsTestSuite) TestCreateBooking() {
	b := builder.NewBookingBuilder()
	params := commands.CreateBookingParams{
		PropertyID: b.PropertyID,
		HolderID:   b.HolderID,
		From:       b.From,
		To:         b.To,
	}

	s.Run("success: locks, checks, inserts and returns the view", func() {
		returnView := b.BuildView()
		s.uow.EXPECT().CommandReads().Return(s.reads).Times(1)
		s.reads.EXPECT().PropertyByID(gomock.Any(), b.PropertyID).
			Return(s.propertySnapshot(b.PropertyID), nil).Times(1)
		s.expectWithin()
		s.propertyRepo.EXPECT().LockForBooking(gomock.Any(), gomock.Any(), b.PropertyID).
			Return(s.propertySnapshot(b.PropertyID), nil).Times(1)
		s.bookingRepo.EXPECT().FindBlocking(gomock.Any(), gomock.Any(), b.PropertyID, gomock.Any(), gomock.Nil()).
			Return(nil, nil).Times(1)
		s.bookingRepo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, created *booking.Booking) (uuid.UUID, error) {
				s.Equal(b.PropertyID, created.PropertyID())
				s.Equal(b.HolderID, created.HolderID())
				s.Equal(booking.StatusConfirmed, created.Status())
				s.Equal(int64(30000), created.TotalPrice().Cents())
				return returnView.ID, nil
			}).Times(1)
		s.queries.EXPECT().GetByID(gomock.Any(), returnView.ID).Return(returnView, nil).Times(1)

		view, err := s.commands.CreateBooking(s.ctx, params)
		s.Require().NoError(err)
		s.Equal(returnView.ID, view.ID)
	})

	s.Run("conflict: blocking booking reports its range", func() {
		blockingStay, err := booking.ParseStayRange("2026-03-11", "2026-03-14")
		s.Require().NoError(err)

		s.uow.EXPECT().CommandReads().Return(s.reads).Times(1)
		s.reads.EXPECT().PropertyByID(gomock.Any(), b.PropertyID).
			Return(s.propertySnapshot(b.PropertyID), nil).Times(1)
		s.expectWithin()
		s.propertyRepo.EXPECT().LockForBooking(gomock.Any(), gomock.Any(), b.PropertyID).
			Return(s.propertySnapshot(b.PropertyID), nil).Times(1)
		s.bookingRepo.EXPECT().FindBlocking(gomock.Any(), gomock.Any(), b.PropertyID, gomock.Any(), gomock.Nil()).
			Return([]shared.BlockingBooking{{
				ID:       uuid.New(),
				HolderID: uuid.New(),
				Stay:     blockingStay,
				Status:   booking.StatusConfirmed,
			}}, nil).Times(1)

		_, err = s.commands.CreateBooking(s.ctx, params)
		s.Require().ErrorIs(err, errs.ErrBookingConflict)

		var conflictErr *commands.ConflictError
		s.Require().True(errors.As(err, &conflictErr))
		s.Require().Len(conflictErr.Conflicts, 1)
		s.Equal("2026-03-11/2026-03-14", conflictErr.Conflicts[0].String())
	})

	s.Run("conflict: exclusion constraint backstop maps to the same error", func() {
		s.uow.EXPECT().CommandReads().Return(s.reads).Times(1)
		s.reads.EXPECT().PropertyByID(gomock.Any(), b.PropertyID).
			Return(s.propertySnapshot(b.PropertyID), nil).Times(1)
		s.expectWithin()
		s.propertyRepo.EXPECT().LockForBooking(gomock.Any(), gomock.Any(), b.PropertyID).
			Return(s.propertySnapshot(b.PropertyID), nil).Times(1)
		s.bookingRepo.EXPECT().FindBlocking(gomock.Any(), gomock.Any(), b.PropertyID, gomock.Any(), gomock.Nil()).
			Return(nil, nil).Times(1)
		s.bookingRepo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(uuid.Nil, infra.WrapRepoErr("overlapping booking exists", nil, infra.KindConflict)).Times(1)

		_, err := s.commands.CreateBooking(s.ctx, params)
		s.ErrorIs(err, errs.ErrBookingConflict)
	})

	s.Run("unknown property: fails before opening a transaction", func() {
		s.uow.EXPECT().CommandReads().Return(s.reads).Times(1)
		s.reads.EXPECT().PropertyByID(gomock.Any(), b.PropertyID).
			Return(nil, infra.WrapRepoErr("property not found", nil, infra.KindNotFound)).Times(1)

		_, err := s.commands.CreateBooking(s.ctx, params)
		s.ErrorIs(err, errs.ErrPropertyNotFound)
	})

	s.Run("invalid range: rejected before any read", func() {
		bad := params
		bad.From = "2026-03-13"
		bad.To = "2026-03-10"

		_, err := s.commands.CreateBooking(s.ctx, bad)
		s.ErrorIs(err, errs.ErrInvalidStayRange)
	})

	s.Run("unparsable date: rejected before any read", func() {
		bad := params
		bad.From = "March 10th"

		_, err := s.commands.CreateBooking(s.ctx, bad)
		s.ErrorIs(err, errs.ErrInvalidStayRange)
	})

	s.Run("stay in the past: rejected before the property read", func() {
		bad := params
		bad.From = "2026-02-01"
		bad.To = "2026-02-05"

		_, err := s.commands.CreateBooking(s.ctx, bad)
		s.ErrorIs(err, errs.ErrInvalidStayRange)
	})

	s.Run("stay in the past on an unknown property: range error wins", func() {
		bad := params
		bad.PropertyID = uuid.New()
		bad.From = "2026-02-01"
		bad.To = "2026-02-05"

		// No read expectations: the range rules run first, so the missing
		// property is never consulted.
		_, err := s.commands.CreateBooking(s.ctx, bad)
		s.ErrorIs(err, errs.ErrInvalidStayRange)
		s.NotErrorIs(err, errs.ErrPropertyNotFound)
	})
}

func (s *BookingCommandsTestSuite) TestCancelBooking() {
	b := builder.NewBookingBuilder()
	bookingID := uuid.New()
	stay, err := booking.ParseStayRange(b.From, b.To)
	s.Require().NoError(err)

	snapshot := func(holderID uuid.UUID, status booking.Status) *shared.BookingSnapshot {
		return &shared.BookingSnapshot{
			ID:         bookingID,
			PropertyID: b.PropertyID,
			HolderID:   holderID,
			Stay:       stay,
			Status:     status,
		}
	}

	s.Run("success: confirmed booking is cancelled", func() {
		cancelled := b.BuildView()
		cancelled.Status = "cancelled"

		s.expectWithin()
		s.reads.EXPECT().BookingByID(gomock.Any(), bookingID).
			Return(snapshot(b.HolderID, booking.StatusConfirmed), nil).Times(1)
		s.bookingRepo.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), bookingID, booking.StatusCancelled).
			Return(nil).Times(1)
		s.queries.EXPECT().GetByID(gomock.Any(), bookingID).Return(cancelled, nil).Times(1)

		view, err := s.commands.CancelBooking(s.ctx, bookingID, b.HolderID)
		s.Require().NoError(err)
		s.Equal("cancelled", view.Status)
	})

	s.Run("forbidden: someone else's booking is untouched", func() {
		s.expectWithin()
		s.reads.EXPECT().BookingByID(gomock.Any(), bookingID).
			Return(snapshot(uuid.New(), booking.StatusConfirmed), nil).Times(1)

		_, err := s.commands.CancelBooking(s.ctx, bookingID, b.HolderID)
		s.ErrorIs(err, errs.ErrNotBookingHolder)
	})

	s.Run("completed booking cannot be cancelled", func() {
		s.expectWithin()
		s.reads.EXPECT().BookingByID(gomock.Any(), bookingID).
			Return(snapshot(b.HolderID, booking.StatusCompleted), nil).Times(1)

		_, err := s.commands.CancelBooking(s.ctx, bookingID, b.HolderID)
		s.ErrorIs(err, errs.ErrInvalidStatusTransition)
	})

	s.Run("cancelling twice fails on the second attempt", func() {
		s.expectWithin()
		s.reads.EXPECT().BookingByID(gomock.Any(), bookingID).
			Return(snapshot(b.HolderID, booking.StatusCancelled), nil).Times(1)

		_, err := s.commands.CancelBooking(s.ctx, bookingID, b.HolderID)
		s.ErrorIs(err, errs.ErrInvalidStatusTransition)
	})

	s.Run("unknown booking", func() {
		s.expectWithin()
		s.reads.EXPECT().BookingByID(gomock.Any(), bookingID).
			Return(nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)).Times(1)

		_, err := s.commands.CancelBooking(s.ctx, bookingID, b.HolderID)
		s.ErrorIs(err, errs.ErrBookingNotFound)
	})
}
