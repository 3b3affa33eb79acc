// Package booking holds the records exchanged with the reservation backend.
//
// JSON keys use the backend's PascalCase field names. Decoding is
// case-insensitive, so lists emitted with lowercase keys are read as well.
package booking

// Room is a reservable resource with a seating capacity.
type Room struct {
	ID       int    `json:"ID"`
	Name     string `json:"Name"`
	Capacity int    `json:"Capacity"`
}

// Reservation books a room for a date and a start/end time of day.
type Reservation struct {
	ID        int    `json:"ID"`
	RoomID    int    `json:"RoomID"`
	Date      string `json:"Date"`
	StartTime string `json:"StartTime"`
	EndTime   string `json:"EndTime"`
}

// NewRoom is the body of an add-room submission.
type NewRoom struct {
	Name     string   `json:"Name"`
	Capacity LooseInt `json:"Capacity"`
}

// NewReservation is the body of a create-reservation submission.
type NewReservation struct {
	RoomID    LooseInt `json:"RoomID"`
	Date      string   `json:"Date"`
	StartTime string   `json:"StartTime"`
	EndTime   string   `json:"EndTime"`
}

// RoomFromForm builds an add-room body from raw form values.
func RoomFromForm(name, capacity string) NewRoom {
	return NewRoom{Name: name, Capacity: ParseLooseInt(capacity)}
}

// ReservationFromForm builds a create-reservation body from raw form values.
// Only the room id is parsed; date and times are sent as typed.
func ReservationFromForm(roomID, date, startTime, endTime string) NewReservation {
	return NewReservation{
		RoomID:    ParseLooseInt(roomID),
		Date:      date,
		StartTime: startTime,
		EndTime:   endTime,
	}
}
