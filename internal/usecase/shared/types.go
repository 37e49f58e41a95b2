package shared

import (
	"github.com/google/uuid"
)

// Minimal snapshots for command read operations
type RoomSnapshot struct {
	ID       uuid.UUID
	Name     string
	Capacity int
}

type UserContact struct {
	ID    uuid.UUID
	Name  string
	Email string
}
