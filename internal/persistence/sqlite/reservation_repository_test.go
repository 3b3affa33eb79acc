package sqlite

import (
	"context"
	"testing"

	"github.com/example/reservation-console/internal/persistence"
)

func TestReservationRepository(t *testing.T) {
	ctx := context.Background()
	storage := newTestStorage(t)

	created, err := storage.CreateReservation(ctx, persistence.Reservation{
		RoomID:    3,
		Date:      "2024-05-01",
		StartTime: "09:00",
		EndTime:   "10:00",
	})
	if err != nil {
		t.Fatalf("CreateReservation failed: %v", err)
	}
	if created.ID == 0 {
		t.Fatalf("expected an assigned id")
	}

	other, err := storage.CreateReservation(ctx, persistence.Reservation{
		RoomID:    1,
		Date:      "2024-05-02",
		StartTime: "14:00",
		EndTime:   "15:30",
	})
	if err != nil {
		t.Fatalf("CreateReservation failed: %v", err)
	}

	reservations, err := storage.ListReservations(ctx)
	if err != nil {
		t.Fatalf("ListReservations failed: %v", err)
	}
	if len(reservations) != 2 || reservations[0] != created || reservations[1] != other {
		t.Fatalf("unexpected reservations: %#v", reservations)
	}

	if err := storage.DeleteReservation(ctx, created.ID); err != nil {
		t.Fatalf("DeleteReservation failed: %v", err)
	}
	if err := storage.DeleteReservation(ctx, created.ID); err != nil {
		t.Fatalf("repeated DeleteReservation failed: %v", err)
	}

	reservations, err = storage.ListReservations(ctx)
	if err != nil {
		t.Fatalf("ListReservations failed: %v", err)
	}
	if len(reservations) != 1 || reservations[0].ID != other.ID {
		t.Fatalf("expected only the second reservation, got %#v", reservations)
	}
}
