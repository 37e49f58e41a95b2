package request

import (
	"time"

	"room-reservation/internal/domain/reservation"
	"room-reservation/internal/pkg/config"
	"room-reservation/internal/usecase/commands"

	"github.com/google/uuid"
)

// Times are wall-clock values in the application time zone, e.g. 2026-03-02T09:30.
type CreateReservationRequest struct {
	RoomID    string `json:"room_id" binding:"required,uuid"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}

func (r CreateReservationRequest) ToInput(ownerID uuid.UUID, loc *time.Location) (commands.CreateReservationInput, error) {
	slot, err := reservation.ParseLocalTimeSlot(r.StartTime, r.EndTime, config.LocalDateTimeLayout, loc)
	if err != nil {
		return commands.CreateReservationInput{}, err
	}

	return commands.CreateReservationInput{
		RoomID:  uuid.MustParse(r.RoomID),
		OwnerID: ownerID,
		Start:   slot.Start(),
		End:     slot.End(),
	}, nil
}

type UpdateReservationRequest struct {
	RoomID    *string `json:"room_id" binding:"omitempty,uuid"`
	StartTime string  `json:"start_time" binding:"required"`
	EndTime   string  `json:"end_time" binding:"required"`
}

func (r UpdateReservationRequest) ToInput(id uuid.UUID, requester reservation.Requester, loc *time.Location) (commands.UpdateReservationInput, error) {
	slot, err := reservation.ParseLocalTimeSlot(r.StartTime, r.EndTime, config.LocalDateTimeLayout, loc)
	if err != nil {
		return commands.UpdateReservationInput{}, err
	}

	in := commands.UpdateReservationInput{
		ReservationID: id,
		Requester:     requester,
		Start:         slot.Start(),
		End:           slot.End(),
	}
	if r.RoomID != nil {
		roomID := uuid.MustParse(*r.RoomID)
		in.RoomID = &roomID
	}
	return in, nil
}

type ListReservationsQuery struct {
	OwnerID string `form:"owner_id" binding:"omitempty,uuid"`
}

func (q ListReservationsQuery) OwnerFilter() *uuid.UUID {
	if q.OwnerID == "" {
		return nil
	}
	id := uuid.MustParse(q.OwnerID)
	return &id
}

type AvailabilityQuery struct {
	Start   string `form:"start" binding:"required"`
	End     string `form:"end" binding:"required"`
	Exclude string `form:"exclude" binding:"omitempty,uuid"`
}

func (q AvailabilityQuery) ToSlot(loc *time.Location) (reservation.TimeSlot, error) {
	return reservation.ParseLocalTimeSlot(q.Start, q.End, config.LocalDateTimeLayout, loc)
}

func (q AvailabilityQuery) ExcludeID() *uuid.UUID {
	if q.Exclude == "" {
		return nil
	}
	id := uuid.MustParse(q.Exclude)
	return &id
}
