// Package http provides HTTP handlers and middleware for the reference
// reservation backend.
//
// The router exposes the following endpoints:
//   - GET /rooms, GET /reservations: JSON arrays of the stored records ordered by
//     id, using the `roomDTO` and `reservationDTO` payloads.
//   - POST /addRoom: body {"Name","Capacity"}. Responds 201 Created.
//   - POST /createReservation (alias POST /addReservation): body
//     {"RoomID","Date","StartTime","EndTime"}. Responds 201 Created.
//   - DELETE /deleteRoom?id=<int>, DELETE /deleteReservation?id=<int>: respond
//     200 OK, including when no record matched.
//   - GET /exportReservations?format=json|csv: the reservation list as a JSON
//     document or a CSV attachment.
//
// Malformed bodies and identifiers yield 400, storage failures 500, both with
// the {"message"} error envelope. Request/response DTOs live alongside their
// respective handlers.
package http
