//go:build unit || e2e

package builder

import (
	"time"

	"room-reservation/internal/domain/room"
	"room-reservation/internal/usecase/queries"

	"github.com/google/uuid"
)

type RoomBuilder struct {
	ID       uuid.UUID
	Name     string
	Capacity int
	Area     float64
}

func NewRoomBuilder() *RoomBuilder {
	return &RoomBuilder{
		ID:       uuid.New(),
		Name:     "Salle Lumière",
		Capacity: 8,
		Area:     24.5,
	}
}

func (r *RoomBuilder) With(mutate func(*RoomBuilder)) *RoomBuilder {
	mutate(r)
	return r
}

func (r *RoomBuilder) WithName(name string) *RoomBuilder {
	r.Name = name
	return r
}

func (r *RoomBuilder) BuildDomain() (*room.Room, error) {
	return room.NewRoom(r.ID, r.Name, r.Capacity, r.Area)
}

func (r *RoomBuilder) BuildView() *queries.RoomView {
	now := time.Now()
	return &queries.RoomView{
		ID:        r.ID,
		Name:      r.Name,
		Capacity:  r.Capacity,
		Area:      r.Area,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
