package usecase

import (
	"context"

	"room-reservation/internal/domain/reservation"
	"room-reservation/internal/pkg/errs"
	"room-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

// AvailabilityChecker answers whether a room is free for a slot. It always
// reads current state; an unknown room is vacuously free.
type AvailabilityChecker struct {
	uow shared.UnitOfWork
}

func NewAvailabilityChecker(uow shared.UnitOfWork) *AvailabilityChecker {
	return &AvailabilityChecker{uow: uow}
}

func (c *AvailabilityChecker) IsAvailable(ctx context.Context, roomID uuid.UUID, slot reservation.TimeSlot, excludeID *uuid.UUID) (bool, error) {
	return c.IsAvailableWithin(ctx, c.uow.CommandReads(), roomID, slot, excludeID)
}

// IsAvailableWithin runs the check against the given reads, typically those of an open transaction.
func (c *AvailabilityChecker) IsAvailableWithin(ctx context.Context, reads shared.CommandReads, roomID uuid.UUID, slot reservation.TimeSlot, excludeID *uuid.UUID) (bool, error) {
	existing, err := reads.ActiveReservationsByRoom(ctx, roomID)
	if err != nil {
		return false, errs.Wrap(err, "failed to load active reservations")
	}
	return reservation.IsAvailable(existing, roomID, slot, excludeID), nil
}
