package queries

import (
	"context"
	"time"

	"room-reservation/internal/domain/reservation"
	"room-reservation/internal/infra"
	"room-reservation/internal/pkg/clock"
	"room-reservation/internal/pkg/errs"
	"room-reservation/internal/usecase"

	"github.com/google/uuid"
)

var (
	ErrReservationNotFound = errs.ErrReservationNotFound
)

type ReservationQueries interface {
	GetByID(ctx context.Context, id uuid.UUID, requester reservation.Requester) (*ReservationView, error)
	// ListUpcoming: active reservations not yet over, by start ascending
	ListUpcoming(ctx context.Context, filter ListFilter) ([]*ReservationView, error)
	// ListCanceledOrPast: finished or cancelled reservations, by start ascending
	ListCanceledOrPast(ctx context.Context, filter ListFilter) ([]*ReservationView, error)
	CheckAvailability(ctx context.Context, roomID uuid.UUID, slot reservation.TimeSlot, excludeID *uuid.UUID) (bool, error)
}

type ReservationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	ListUpcoming(ctx context.Context, now time.Time, ownerID *uuid.UUID) ([]*ReservationView, error)
	ListCanceledOrPast(ctx context.Context, now time.Time, ownerID *uuid.UUID) ([]*ReservationView, error)
}

type reservationQueriesImpl struct {
	readStore    ReservationReadStore
	availability *usecase.AvailabilityChecker
	clock        clock.Clock
}

func NewReservationQueries(readStore ReservationReadStore, availability *usecase.AvailabilityChecker, clock clock.Clock) ReservationQueries {
	return &reservationQueriesImpl{
		readStore:    readStore,
		availability: availability,
		clock:        clock,
	}
}

// GetByID also returns cancelled reservations. Other owners' reservations
// are reported as not found to non-privileged requesters.
func (q *reservationQueriesImpl) GetByID(ctx context.Context, id uuid.UUID, requester reservation.Requester) (*ReservationView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrReservationNotFound)
		}
		return nil, err
	}

	if !requester.Privileged && view.UserID != requester.ID {
		return nil, ErrReservationNotFound
	}
	return view, nil
}

func (q *reservationQueriesImpl) ListUpcoming(ctx context.Context, filter ListFilter) ([]*ReservationView, error) {
	return q.readStore.ListUpcoming(ctx, q.clock.Now(), filter.OwnerID)
}

func (q *reservationQueriesImpl) ListCanceledOrPast(ctx context.Context, filter ListFilter) ([]*ReservationView, error) {
	return q.readStore.ListCanceledOrPast(ctx, q.clock.Now(), filter.OwnerID)
}

func (q *reservationQueriesImpl) CheckAvailability(ctx context.Context, roomID uuid.UUID, slot reservation.TimeSlot, excludeID *uuid.UUID) (bool, error) {
	return q.availability.IsAvailable(ctx, roomID, slot, excludeID)
}
