package reservation

import "github.com/google/uuid"

// FindConflicts returns the active reservations of roomID whose slot overlaps
// slot. The reservation with id excludeID, if given, is ignored.
func FindConflicts(existing []*Reservation, roomID uuid.UUID, slot TimeSlot, excludeID *uuid.UUID) []*Reservation {
	var conflicts []*Reservation
	for _, r := range existing {
		if r == nil || !r.IsActive() || r.roomID != roomID {
			continue
		}
		if excludeID != nil && r.id == *excludeID {
			continue
		}
		if r.slot.Overlaps(slot) {
			conflicts = append(conflicts, r)
		}
	}
	return conflicts
}

func IsAvailable(existing []*Reservation, roomID uuid.UUID, slot TimeSlot, excludeID *uuid.UUID) bool {
	return len(FindConflicts(existing, roomID, slot, excludeID)) == 0
}
