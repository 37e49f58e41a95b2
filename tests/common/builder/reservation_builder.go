//go:build unit || e2e

package builder

import (
	"time"

	"room-reservation/internal/domain/reservation"
	reqdto "room-reservation/internal/handler/dto/request"
	"room-reservation/internal/pkg/config"
	"room-reservation/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	ID        uuid.UUID
	RoomID    uuid.UUID
	RoomName  string
	OwnerID   uuid.UUID
	OwnerName string
	Email     string
	Start     time.Time
	End       time.Time
	Cancelled bool
}

func NewReservationBuilder() *ReservationBuilder {
	start := time.Now().UTC().Add(24 * time.Hour).Truncate(time.Hour)
	return &ReservationBuilder{
		ID:        uuid.New(),
		RoomID:    uuid.New(),
		RoomName:  "Salle Lumière",
		OwnerID:   uuid.New(),
		OwnerName: "Camille Martin",
		Email:     "test@example.com",
		Start:     start,
		End:       start.Add(time.Hour),
	}
}

func (r *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(r)
	return r
}

func (r *ReservationBuilder) WithRoom(roomID uuid.UUID) *ReservationBuilder {
	r.RoomID = roomID
	return r
}

func (r *ReservationBuilder) WithOwner(ownerID uuid.UUID) *ReservationBuilder {
	r.OwnerID = ownerID
	return r
}

func (r *ReservationBuilder) WithSlot(start, end time.Time) *ReservationBuilder {
	r.Start = start
	r.End = end
	return r
}

func (r *ReservationBuilder) AsCancelled() *ReservationBuilder {
	r.Cancelled = true
	return r
}

// BuildDomain panics on an invalid slot; builders are for valid fixtures.
func (r *ReservationBuilder) BuildDomain() *reservation.Reservation {
	slot, err := reservation.NewTimeSlot(r.Start, r.End)
	if err != nil {
		panic(err)
	}
	created := r.Start.Add(-48 * time.Hour)
	var cancelledAt *time.Time
	if r.Cancelled {
		at := created.Add(time.Hour)
		cancelledAt = &at
	}
	return reservation.ReconstructReservation(r.ID, r.RoomID, r.OwnerID, slot, cancelledAt, created, created)
}

func (r *ReservationBuilder) BuildView() *queries.ReservationView {
	created := r.Start.Add(-48 * time.Hour)
	view := &queries.ReservationView{
		ID:        r.ID,
		RoomID:    r.RoomID,
		RoomName:  r.RoomName,
		UserID:    r.OwnerID,
		UserName:  r.OwnerName,
		UserEmail: r.Email,
		StartTime: r.Start,
		EndTime:   r.End,
		Status:    string(reservation.StatusActive),
		CreatedAt: created,
		UpdatedAt: created,
	}
	if r.Cancelled {
		at := created.Add(time.Hour)
		view.Status = string(reservation.StatusCancelled)
		view.CancelledAt = &at
	}
	return view
}

// BuildCreateRequestDTO renders the slot as wall-clock time in loc.
func (r *ReservationBuilder) BuildCreateRequestDTO(loc *time.Location) reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		RoomID:    r.RoomID.String(),
		StartTime: r.Start.In(loc).Format(config.LocalDateTimeLayout),
		EndTime:   r.End.In(loc).Format(config.LocalDateTimeLayout),
	}
}
