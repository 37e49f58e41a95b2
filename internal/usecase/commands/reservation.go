package commands

import (
	"context"
	"log/slog"

	"room-reservation/internal/domain/reservation"
	"room-reservation/internal/infra"
	"room-reservation/internal/pkg/clock"
	"room-reservation/internal/pkg/errs"
	"room-reservation/internal/pkg/patch"
	"room-reservation/internal/usecase"
	"room-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrReservationNotFound = errs.ErrReservationNotFound
	ErrRoomNotFound        = errs.ErrRoomNotFound
	ErrRoomUnavailable     = errs.ErrRoomUnavailable
	ErrInvalidTimeSlot     = errs.ErrInvalidTimeSlot
	ErrForbidden           = errs.ErrForbidden
	ErrOwnerNotFound       = errs.ErrOwnerNotFound
)

type ReservationCommands interface {
	Create(ctx context.Context, in CreateReservationInput) (*reservation.Reservation, error)
	Update(ctx context.Context, in UpdateReservationInput) (*reservation.Reservation, error)
	Cancel(ctx context.Context, in CancelReservationInput) error
}

type reservationCommandsImpl struct {
	uow          shared.UnitOfWork
	availability *usecase.AvailabilityChecker
	notifier     shared.Notifier
	clock        clock.Clock
}

func NewReservationCommands(
	uow shared.UnitOfWork,
	availability *usecase.AvailabilityChecker,
	notifier shared.Notifier,
	clock clock.Clock,
) ReservationCommands {
	return &reservationCommandsImpl{
		uow:          uow,
		availability: availability,
		notifier:     notifier,
		clock:        clock,
	}
}

func (c *reservationCommandsImpl) Create(ctx context.Context, in CreateReservationInput) (*reservation.Reservation, error) {
	slot, err := reservation.NewTimeSlot(in.Start, in.End)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidTimeSlot)
	}

	var (
		created *reservation.Reservation
		room    *shared.RoomSnapshot
		owner   *shared.UserContact
	)
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		room, err = c.reserveRoom(ctx, tx, in.RoomID, slot, nil)
		if err != nil {
			return err
		}

		owner, err = tx.Reads().UserContactByID(ctx, in.OwnerID)
		if err != nil {
			return errs.Wrap(err, "failed to load owner")
		}

		res, err := reservation.NewReservation(in.RoomID, in.OwnerID, slot, c.clock.Now())
		if err != nil {
			return errs.Wrap(err, "failed to build reservation")
		}

		if err := tx.Reservations().Create(ctx, res); err != nil {
			return mapWriteErr(err, "failed to create reservation")
		}
		created = res
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "reservation created",
		"reservation_id", created.ID(),
		"room_id", created.RoomID(),
		"owner_id", created.OwnerID())

	c.notify(ctx, shared.EventReservationCreated, created, room, owner)
	return created, nil
}

func (c *reservationCommandsImpl) Update(ctx context.Context, in UpdateReservationInput) (*reservation.Reservation, error) {
	var updated *reservation.Reservation
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := c.loadModifiable(ctx, tx.Reads(), in.ReservationID, in.Requester)
		if err != nil {
			return err
		}

		slot, err := reservation.NewTimeSlot(in.Start, in.End)
		if err != nil {
			return errs.Mark(err, ErrInvalidTimeSlot)
		}

		roomID := patch.Coalesce(in.RoomID, res.RoomID())
		excludeID := res.ID()
		if _, err := c.reserveRoom(ctx, tx, roomID, slot, &excludeID); err != nil {
			return err
		}

		if err := res.Reschedule(roomID, slot, c.clock.Now()); err != nil {
			return errs.Mark(err, ErrReservationNotFound)
		}

		if err := tx.Reservations().Update(ctx, res); err != nil {
			return mapWriteErr(err, "failed to update reservation")
		}
		updated = res
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "reservation updated",
		"reservation_id", updated.ID(),
		"room_id", updated.RoomID(),
		"requester_id", in.Requester.ID)

	return updated, nil
}

func (c *reservationCommandsImpl) Cancel(ctx context.Context, in CancelReservationInput) error {
	var (
		cancelled *reservation.Reservation
		room      *shared.RoomSnapshot
		owner     *shared.UserContact
	)
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := c.loadModifiable(ctx, tx.Reads(), in.ReservationID, in.Requester)
		if err != nil {
			return err
		}

		if err := res.Cancel(c.clock.Now()); err != nil {
			return errs.Mark(err, ErrReservationNotFound)
		}

		if err := tx.Reservations().SoftDelete(ctx, res); err != nil {
			return mapWriteErr(err, "failed to cancel reservation")
		}

		// lookups for the notification only; a failure here must not undo the cancel
		if room, err = tx.Reads().RoomByID(ctx, res.RoomID()); err != nil {
			slog.WarnContext(ctx, "room lookup for notification failed", "room_id", res.RoomID(), "error", err.Error())
		}
		if owner, err = tx.Reads().UserContactByID(ctx, res.OwnerID()); err != nil {
			slog.WarnContext(ctx, "owner lookup for notification failed", "owner_id", res.OwnerID(), "error", err.Error())
		}

		cancelled = res
		return nil
	})
	if err != nil {
		return err
	}

	slog.InfoContext(ctx, "reservation cancelled",
		"reservation_id", cancelled.ID(),
		"requester_id", in.Requester.ID)

	c.notify(ctx, shared.EventReservationCancelled, cancelled, room, owner)
	return nil
}

// reserveRoom locks the room for the rest of the transaction, checks it
// exists and that slot is free on it.
func (c *reservationCommandsImpl) reserveRoom(ctx context.Context, tx shared.Tx, roomID uuid.UUID, slot reservation.TimeSlot, excludeID *uuid.UUID) (*shared.RoomSnapshot, error) {
	if err := tx.Reservations().LockRoom(ctx, roomID); err != nil {
		return nil, errs.Wrap(err, "failed to lock room")
	}

	room, err := tx.Reads().RoomByID(ctx, roomID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrRoomNotFound)
		}
		return nil, errs.Wrap(err, "failed to load room")
	}

	available, err := c.availability.IsAvailableWithin(ctx, tx.Reads(), roomID, slot, excludeID)
	if err != nil {
		return nil, err
	}
	if !available {
		return nil, ErrRoomUnavailable
	}
	return room, nil
}

// loadModifiable only sees active reservations, so a cancelled one is NotFound.
func (c *reservationCommandsImpl) loadModifiable(ctx context.Context, reads shared.CommandReads, id uuid.UUID, requester reservation.Requester) (*reservation.Reservation, error) {
	res, err := reads.ActiveReservationByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrReservationNotFound)
		}
		return nil, errs.Wrap(err, "failed to load reservation")
	}

	if !requester.CanModify(res) {
		slog.WarnContext(ctx, "reservation change refused",
			"reservation_id", id,
			"requester_id", requester.ID)
		return nil, ErrForbidden
	}
	return res, nil
}

func (c *reservationCommandsImpl) notify(ctx context.Context, kind shared.EventKind, res *reservation.Reservation, room *shared.RoomSnapshot, owner *shared.UserContact) {
	if owner == nil || owner.Email == "" {
		slog.WarnContext(ctx, "notification skipped: no recipient", "kind", kind, "reservation_id", res.ID())
		return
	}

	n := shared.Notification{
		Kind:          kind,
		ReservationID: res.ID(),
		Start:         res.Slot().Start(),
		End:           res.Slot().End(),
		Recipient:     *owner,
	}
	if room != nil {
		n.RoomName = room.Name
	}

	// detached from the request so an early client disconnect does not cancel delivery
	c.notifier.Notify(context.WithoutCancel(ctx), n)
}

// storage-level overlap rejection is the same outcome as a failed availability check
func mapWriteErr(err error, msg string) error {
	switch {
	case infra.IsKind(err, infra.KindConflict):
		return errs.Mark(err, ErrRoomUnavailable)
	case infra.IsKind(err, infra.KindForeignKeyViolated):
		switch infra.ViolatedConstraint(err) {
		case infra.ConstraintReservationRoom:
			return errs.Mark(err, ErrRoomNotFound)
		case infra.ConstraintReservationUser:
			return errs.Mark(errs.Wrap(err, "reservation owner does not exist"), ErrOwnerNotFound)
		default:
			return errs.Wrap(err, msg)
		}
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, ErrReservationNotFound)
	default:
		return errs.Wrap(err, msg)
	}
}
