package shared

import (
	"context"
	"time"

	"room-reservation/internal/domain/reservation"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Reservations() ReservationRepository
	Users() UserRepository
	Reads() CommandReads
}

// CommandReads always reflect committed state (or the enclosing transaction's own writes).
type CommandReads interface {
	RoomByID(ctx context.Context, id uuid.UUID) (*RoomSnapshot, error)
	UserContactByID(ctx context.Context, id uuid.UUID) (*UserContact, error)
	// ActiveReservationByID only finds reservations that are not cancelled.
	ActiveReservationByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	ActiveReservationsByRoom(ctx context.Context, roomID uuid.UUID) ([]*reservation.Reservation, error)
}

type ReservationRepository interface {
	// LockRoom serializes writers on the same room until the transaction ends.
	LockRoom(ctx context.Context, roomID uuid.UUID) error
	Create(ctx context.Context, res *reservation.Reservation) error
	Update(ctx context.Context, res *reservation.Reservation) error
	SoftDelete(ctx context.Context, res *reservation.Reservation) error
}

type UserRepository interface {
	UpdateLastLogin(ctx context.Context, userID uuid.UUID, at time.Time) error
}
