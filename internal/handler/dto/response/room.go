package response

import (
	"time"

	"room-reservation/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type RoomResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Capacity  int       `json:"capacity"`
	Area      float64   `json:"area"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func FromRoomView(v *queries.RoomView) (*RoomResponse, error) {
	var resp RoomResponse
	if err := copier.Copy(&resp, v); err != nil {
		return nil, err
	}
	return &resp, nil
}

func FromRoomViews(views []*queries.RoomView) ([]*RoomResponse, error) {
	out := make([]*RoomResponse, 0, len(views))
	for _, v := range views {
		resp, err := FromRoomView(v)
		if err != nil {
			return nil, err
		}
		out = append(out, resp)
	}
	return out, nil
}
