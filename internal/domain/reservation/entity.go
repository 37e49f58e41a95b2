package reservation

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidTimeSlot   = errors.New("invalid time slot: end must be after start")
	ErrInvalidDateFormat = errors.New("invalid date format")
	ErrAlreadyCancelled  = errors.New("reservation is already cancelled")
	ErrMissingReference  = errors.New("reservation requires a room and an owner")
)

type Reservation struct {
	id          uuid.UUID
	roomID      uuid.UUID
	ownerID     uuid.UUID
	slot        TimeSlot
	cancelledAt *time.Time
	createdAt   time.Time
	updatedAt   time.Time
}

func NewReservation(roomID, ownerID uuid.UUID, slot TimeSlot, now time.Time) (*Reservation, error) {
	if roomID == uuid.Nil || ownerID == uuid.Nil {
		return nil, ErrMissingReference
	}

	return &Reservation{
		id:        uuid.New(),
		roomID:    roomID,
		ownerID:   ownerID,
		slot:      slot,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructReservation(
	id, roomID, ownerID uuid.UUID,
	slot TimeSlot,
	cancelledAt *time.Time,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:          id,
		roomID:      roomID,
		ownerID:     ownerID,
		slot:        slot,
		cancelledAt: cancelledAt,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (r *Reservation) ID() uuid.UUID           { return r.id }
func (r *Reservation) RoomID() uuid.UUID       { return r.roomID }
func (r *Reservation) OwnerID() uuid.UUID      { return r.ownerID }
func (r *Reservation) Slot() TimeSlot          { return r.slot }
func (r *Reservation) CancelledAt() *time.Time { return r.cancelledAt }
func (r *Reservation) CreatedAt() time.Time    { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time    { return r.updatedAt }

func (r *Reservation) Status() Status {
	if r.cancelledAt != nil {
		return StatusCancelled
	}
	return StatusActive
}

func (r *Reservation) IsActive() bool {
	return r.cancelledAt == nil
}

// Reschedule moves the reservation in place; id and owner never change.
func (r *Reservation) Reschedule(roomID uuid.UUID, slot TimeSlot, now time.Time) error {
	if !r.IsActive() {
		return ErrAlreadyCancelled
	}
	if roomID == uuid.Nil {
		return ErrMissingReference
	}
	r.roomID = roomID
	r.slot = slot
	r.updatedAt = now
	return nil
}

// Cancel is a soft delete: the record stays, stamped with the cancellation time.
func (r *Reservation) Cancel(now time.Time) error {
	if !r.IsActive() {
		return ErrAlreadyCancelled
	}
	at := now
	r.cancelledAt = &at
	r.updatedAt = now
	return nil
}
