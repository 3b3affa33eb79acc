package persistence

// Room represents a stored room row.
type Room struct {
	ID       int
	Name     string
	Capacity int
}

// Reservation represents a stored reservation row. Date and times are kept as
// the text submitted by clients.
type Reservation struct {
	ID        int
	RoomID    int
	Date      string
	StartTime string
	EndTime   string
}
