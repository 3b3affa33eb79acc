package booking

// Backend endpoint paths.
const (
	PathRooms              = "/rooms"
	PathReservations       = "/reservations"
	PathAddRoom            = "/addRoom"
	PathCreateReservation  = "/createReservation"
	PathAddReservation     = "/addReservation"
	PathDeleteRoom         = "/deleteRoom"
	PathDeleteReservation  = "/deleteReservation"
	PathExportReservations = "/exportReservations"
)

// Export formats accepted by PathExportReservations.
const (
	ExportJSON = "json"
	ExportCSV  = "csv"
)
