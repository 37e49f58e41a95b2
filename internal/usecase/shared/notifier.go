package shared

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type EventKind string

const (
	EventReservationCreated   EventKind = "reservation.created"
	EventReservationCancelled EventKind = "reservation.cancelled"
)

type Notification struct {
	Kind          EventKind
	ReservationID uuid.UUID
	RoomName      string
	Start         time.Time
	End           time.Time
	Recipient     UserContact
}

// Notifier is fire-and-forget: implementations must not block the caller on
// delivery and have no way to report failures back.
type Notifier interface {
	Notify(ctx context.Context, n Notification)
}
