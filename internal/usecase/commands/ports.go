package commands

import (
	"time"

	"room-reservation/internal/domain/reservation"

	"github.com/google/uuid"
)

// Command inputs carry already-parsed instants; wall-clock parsing happens at the HTTP boundary.
type CreateReservationInput struct {
	RoomID  uuid.UUID
	OwnerID uuid.UUID
	Start   time.Time
	End     time.Time
}

type UpdateReservationInput struct {
	ReservationID uuid.UUID
	Requester     reservation.Requester
	// nil keeps the current room
	RoomID *uuid.UUID
	Start  time.Time
	End    time.Time
}

type CancelReservationInput struct {
	ReservationID uuid.UUID
	Requester     reservation.Requester
}

type LoginInput struct {
	Email    string
	Password string
}
