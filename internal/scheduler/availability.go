// Package scheduler answers availability questions over room and reservation
// lists already fetched from the backend.
package scheduler

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/example/reservation-console/internal/booking"
)

const (
	// DateLayout is the calendar date format used by reservations.
	DateLayout = "2006-01-02"
	// TimeLayout is the time-of-day format used by reservations.
	TimeLayout = "15:04"
)

// ErrInvalidSlot is returned when a requested slot cannot be parsed or ends
// before it starts.
var ErrInvalidSlot = errors.New("scheduler: invalid slot")

// Slot is a half-open [Start, End) interval on a single date.
type Slot struct {
	Start time.Time
	End   time.Time
}

// ParseSlot builds a slot from a date and two times of day.
func ParseSlot(date, start, end string) (Slot, error) {
	s, err := parseInstant(date, start)
	if err != nil {
		return Slot{}, fmt.Errorf("%w: start: %v", ErrInvalidSlot, err)
	}
	e, err := parseInstant(date, end)
	if err != nil {
		return Slot{}, fmt.Errorf("%w: end: %v", ErrInvalidSlot, err)
	}
	if !e.After(s) {
		return Slot{}, fmt.Errorf("%w: end must be after start", ErrInvalidSlot)
	}
	return Slot{Start: s, End: e}, nil
}

// Date reports the calendar date of the slot.
func (s Slot) Date() string {
	return s.Start.Format(DateLayout)
}

// Overlaps reports whether two slots share any instant.
func Overlaps(a, b Slot) bool {
	return a.Start.Before(b.End) && b.Start.Before(a.End)
}

// FreeRooms returns the rooms without a reservation overlapping slot, in the
// order they were given. A reservation on the slot's date whose times cannot
// be parsed blocks its room.
func FreeRooms(rooms []booking.Room, reservations []booking.Reservation, slot Slot) []booking.Room {
	busy := make(map[int]struct{})
	for _, r := range reservations {
		if !sameDate(r.Date, slot) {
			continue
		}
		reserved, err := ParseSlot(r.Date, r.StartTime, r.EndTime)
		if err != nil || Overlaps(reserved, slot) {
			busy[r.RoomID] = struct{}{}
		}
	}

	free := make([]booking.Room, 0, len(rooms))
	for _, room := range rooms {
		if _, taken := busy[room.ID]; !taken {
			free = append(free, room)
		}
	}
	return free
}

// RoomAgenda returns the reservations of roomID on date ordered by start time.
func RoomAgenda(reservations []booking.Reservation, roomID int, date string) []booking.Reservation {
	date = strings.TrimSpace(date)
	agenda := make([]booking.Reservation, 0)
	for _, r := range reservations {
		if r.RoomID == roomID && strings.TrimSpace(r.Date) == date {
			agenda = append(agenda, r)
		}
	}
	sort.SliceStable(agenda, func(i, j int) bool {
		return agenda[i].StartTime < agenda[j].StartTime
	})
	return agenda
}

func sameDate(date string, slot Slot) bool {
	d, err := time.Parse(DateLayout, strings.TrimSpace(date))
	if err != nil {
		return false
	}
	return d.Format(DateLayout) == slot.Date()
}

func parseInstant(date, clock string) (time.Time, error) {
	return time.Parse(DateLayout+" "+TimeLayout, strings.TrimSpace(date)+" "+strings.TrimSpace(clock))
}
