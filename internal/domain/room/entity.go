package room

import (
	"errors"
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

var (
	ErrInvalidName     = errors.New("room name must be 1 to 255 characters")
	ErrInvalidCapacity = errors.New("room capacity must be at least 1")
	ErrInvalidArea     = errors.New("room area must be a non-negative number")
)

const (
	MaxNameLength = 255
)

type Room struct {
	id        uuid.UUID
	name      string
	capacity  int
	area      float64
	createdAt time.Time
	updatedAt time.Time
}

func NewRoom(id uuid.UUID, name string, capacity int, area float64) (*Room, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}

	if capacity < 1 {
		return nil, ErrInvalidCapacity
	}

	if area < 0 || math.IsNaN(area) || math.IsInf(area, 0) {
		return nil, ErrInvalidArea
	}

	return &Room{
		id:       id,
		name:     strings.TrimSpace(name),
		capacity: capacity,
		area:     area,
	}, nil
}

func ReconstructRoom(id uuid.UUID, name string, capacity int, area float64, createdAt, updatedAt time.Time) *Room {
	return &Room{
		id:        id,
		name:      name,
		capacity:  capacity,
		area:      area,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (r *Room) ID() uuid.UUID        { return r.id }
func (r *Room) Name() string         { return r.name }
func (r *Room) Capacity() int        { return r.capacity }
func (r *Room) Area() float64        { return r.area }
func (r *Room) CreatedAt() time.Time { return r.createdAt }
func (r *Room) UpdatedAt() time.Time { return r.updatedAt }

func validateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" || utf8.RuneCountInString(name) > MaxNameLength {
		return ErrInvalidName
	}
	return nil
}
