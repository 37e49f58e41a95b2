package converter

import (
	"room-reservation/internal/domain/reservation"
	sqlc "room-reservation/internal/infra/sqlc/generated"
	"room-reservation/internal/pkg/pgconv"
)

func ReservationToCreateParams(res *reservation.Reservation) sqlc.CreateReservationParams {
	return sqlc.CreateReservationParams{
		ID:        res.ID(),
		RoomID:    res.RoomID(),
		UserID:    res.OwnerID(),
		StartTime: pgconv.TimeToPgtype(res.Slot().Start()),
		EndTime:   pgconv.TimeToPgtype(res.Slot().End()),
		CreatedAt: pgconv.TimeToPgtype(res.CreatedAt()),
		UpdatedAt: pgconv.TimeToPgtype(res.UpdatedAt()),
	}
}

func ReservationToUpdateParams(res *reservation.Reservation) sqlc.UpdateReservationSlotParams {
	return sqlc.UpdateReservationSlotParams{
		ID:        res.ID(),
		RoomID:    res.RoomID(),
		StartTime: pgconv.TimeToPgtype(res.Slot().Start()),
		EndTime:   pgconv.TimeToPgtype(res.Slot().End()),
		UpdatedAt: pgconv.TimeToPgtype(res.UpdatedAt()),
	}
}

// ReservationFromInfra rebuilds the aggregate. Rows violating end > start
// cannot exist because of the table CHECK constraint.
func ReservationFromInfra(row sqlc.Reservations) (*reservation.Reservation, error) {
	slot, err := reservation.NewTimeSlot(row.StartTime.Time, row.EndTime.Time)
	if err != nil {
		return nil, err
	}

	return reservation.ReconstructReservation(
		row.ID,
		row.RoomID,
		row.UserID,
		slot,
		pgconv.TimePtrFromPgtype(row.DeletedAt),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
