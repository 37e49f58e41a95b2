package reservation

import (
	"fmt"
	"strings"
	"time"
)

// TimeSlot is the half-open interval [start, end).
type TimeSlot struct {
	start time.Time
	end   time.Time
}

func NewTimeSlot(start, end time.Time) (TimeSlot, error) {
	if !end.After(start) {
		return TimeSlot{}, ErrInvalidTimeSlot
	}

	return TimeSlot{
		start: start,
		end:   end,
	}, nil
}

// ParseLocalTimeSlot reads both bounds as wall-clock times in loc. Unparsable
// input is ErrInvalidDateFormat; an empty or reversed range is ErrInvalidTimeSlot.
func ParseLocalTimeSlot(start, end, layout string, loc *time.Location) (TimeSlot, error) {
	s, err := time.ParseInLocation(layout, strings.TrimSpace(start), loc)
	if err != nil {
		return TimeSlot{}, fmt.Errorf("%w: start %q: %w", ErrInvalidDateFormat, start, err)
	}
	e, err := time.ParseInLocation(layout, strings.TrimSpace(end), loc)
	if err != nil {
		return TimeSlot{}, fmt.Errorf("%w: end %q: %w", ErrInvalidDateFormat, end, err)
	}
	return NewTimeSlot(s, e)
}

func (ts TimeSlot) Start() time.Time {
	return ts.start
}

func (ts TimeSlot) End() time.Time {
	return ts.end
}

func (ts TimeSlot) Duration() time.Duration {
	return ts.end.Sub(ts.start)
}

// Overlaps is symmetric; slots that only touch at a bound do not overlap.
func (ts TimeSlot) Overlaps(other TimeSlot) bool {
	return ts.start.Before(other.end) && ts.end.After(other.start)
}

func (ts TimeSlot) EndsBefore(t time.Time) bool {
	return ts.end.Before(t)
}

func (ts TimeSlot) Equal(other TimeSlot) bool {
	return ts.start.Equal(other.start) && ts.end.Equal(other.end)
}

func (ts TimeSlot) In(loc *time.Location) TimeSlot {
	return TimeSlot{start: ts.start.In(loc), end: ts.end.In(loc)}
}

func (ts TimeSlot) ToTstzrange() string {
	return fmt.Sprintf("[%s,%s)", ts.start.Format(time.RFC3339), ts.end.Format(time.RFC3339))
}

func (ts TimeSlot) String() string {
	return ts.ToTstzrange()
}
