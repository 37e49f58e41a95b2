package response

import (
	"time"

	"room-reservation/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationResponse struct {
	ID          uuid.UUID  `json:"id"`
	RoomID      uuid.UUID  `json:"roomId"`
	RoomName    string     `json:"roomName"`
	UserID      uuid.UUID  `json:"userId"`
	UserName    string     `json:"userName"`
	UserEmail   string     `json:"userEmail"`
	StartTime   time.Time  `json:"startTime"`
	EndTime     time.Time  `json:"endTime"`
	Status      string     `json:"status"`
	CancelledAt *time.Time `json:"cancelledAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// FromReservationView renders instants in loc so clients see local offsets.
func FromReservationView(v *queries.ReservationView, loc *time.Location) *ReservationResponse {
	resp := &ReservationResponse{
		ID:        v.ID,
		RoomID:    v.RoomID,
		RoomName:  v.RoomName,
		UserID:    v.UserID,
		UserName:  v.UserName,
		UserEmail: v.UserEmail,
		StartTime: v.StartTime.In(loc),
		EndTime:   v.EndTime.In(loc),
		Status:    v.Status,
		CreatedAt: v.CreatedAt.In(loc),
		UpdatedAt: v.UpdatedAt.In(loc),
	}
	if v.CancelledAt != nil {
		at := v.CancelledAt.In(loc)
		resp.CancelledAt = &at
	}
	return resp
}

func FromReservationViews(views []*queries.ReservationView, loc *time.Location) []*ReservationResponse {
	out := make([]*ReservationResponse, 0, len(views))
	for _, v := range views {
		out = append(out, FromReservationView(v, loc))
	}
	return out
}

type AvailabilityResponse struct {
	RoomID    uuid.UUID `json:"roomId"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Available bool      `json:"available"`
}
