package services

import (
	"errors"
	"sync"
	"testing"
	"time"

	"gorm.io/datatypes"

	"hotel-reservations/models"
	"hotel-reservations/repositories"
)

func fixedClock() time.Time {
	return time.Date(2030, 1, 1, 12, 0, 0, 0, time.UTC)
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

type reservationFixture struct {
	service      *ReservationService
	users        *mockUserRepository
	rooms        *mockRoomRepository
	reservations *mockReservationRepository
	guest        *models.User
	room         *models.Room
}

func newReservationFixture(t *testing.T) *reservationFixture {
	t.Helper()

	users := newMockUserRepository()
	rooms := newMockRoomRepository()
	reservations := newMockReservationRepository(users, rooms)

	guest := &models.User{Email: "guest@example.com", Password: "x", Enabled: true, Role: models.RoleUser}
	if err := users.Create(guest); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	room := &models.Room{RoomNumber: 101, Type: models.RoomTypeDouble, PricePerNight: 100.00, Capacity: 2}
	if err := rooms.Create(room); err != nil {
		t.Fatalf("seed room: %v", err)
	}

	service := NewReservationService(reservations, rooms, users).WithClock(fixedClock)
	return &reservationFixture{
		service:      service,
		users:        users,
		rooms:        rooms,
		reservations: reservations,
		guest:        guest,
		room:         room,
	}
}

func (f *reservationFixture) seedReservation(t *testing.T, status models.ReservationStatus, checkIn, checkOut time.Time) uint {
	t.Helper()
	f.reservations.mu.Lock()
	defer f.reservations.mu.Unlock()
	f.reservations.seq++
	id := f.reservations.seq
	f.reservations.reservations[id] = models.Reservation{
		ID:           id,
		UserID:       f.guest.ID,
		RoomID:       f.room.ID,
		CheckInDate:  datatypes.Date(checkIn),
		CheckOutDate: datatypes.Date(checkOut),
		Status:       status,
		CreatedAt:    fixedClock(),
	}
	return id
}

func TestCreateReservation(t *testing.T) {
	f := newReservationFixture(t)

	got, err := f.service.Create(f.guest.ID, f.room.ID, day(2030, time.January, 10), day(2030, time.January, 12))
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if got.Status != string(models.StatusPending) {
		t.Errorf("status = %q, want %q", got.Status, models.StatusPending)
	}
	if got.TotalPrice != 200.00 {
		t.Errorf("total price = %.2f, want 200.00", got.TotalPrice)
	}
	if got.RoomNumber != 101 {
		t.Errorf("room number = %d, want 101", got.RoomNumber)
	}
	if got.Email != "guest@example.com" {
		t.Errorf("email = %q, want guest@example.com", got.Email)
	}
	if got.CheckInDate != "2030-01-10" || got.CheckOutDate != "2030-01-12" {
		t.Errorf("dates = %s..%s, want 2030-01-10..2030-01-12", got.CheckInDate, got.CheckOutDate)
	}
}

func TestCreateReservationDateValidation(t *testing.T) {
	f := newReservationFixture(t)

	cases := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		want     error
	}{
		{"past check-in", day(2029, time.December, 30), day(2030, time.January, 2), ErrCheckInInPast},
		{"check-out before check-in", day(2030, time.January, 12), day(2030, time.January, 10), ErrCheckOutBeforeCheckIn},
		{"same-day stay", day(2030, time.January, 10), day(2030, time.January, 10), ErrMinimumStayOneNight},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.service.Create(f.guest.ID, f.room.ID, tc.checkIn, tc.checkOut)
			if !errors.Is(err, tc.want) {
				t.Errorf("Create() error = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestCreateReservationSameDayWestOfUTC(t *testing.T) {
	f := newReservationFixture(t)
	// Noon on the check-in day in a zone behind UTC; the request dates are
	// UTC midnights. Same calendar day, so the booking is valid.
	west := time.FixedZone("UTC-5", -5*60*60)
	f.service.WithClock(func() time.Time {
		return time.Date(2030, 1, 1, 12, 0, 0, 0, west)
	})

	if _, err := f.service.Create(f.guest.ID, f.room.ID, day(2030, time.January, 1), day(2030, time.January, 3)); err != nil {
		t.Errorf("same-day Create() error = %v, want nil", err)
	}
}

func TestCreateReservationUnknownRoom(t *testing.T) {
	f := newReservationFixture(t)

	_, err := f.service.Create(f.guest.ID, 99, day(2030, time.January, 10), day(2030, time.January, 12))
	if !errors.Is(err, repositories.ErrRoomNotFound) {
		t.Errorf("Create() error = %v, want %v", err, repositories.ErrRoomNotFound)
	}
}

func TestCreateReservationConflict(t *testing.T) {
	f := newReservationFixture(t)
	f.seedReservation(t, models.StatusConfirmed, day(2030, time.January, 10), day(2030, time.January, 14))

	_, err := f.service.Create(f.guest.ID, f.room.ID, day(2030, time.January, 12), day(2030, time.January, 16))
	if !errors.Is(err, repositories.ErrRoomNotAvailable) {
		t.Errorf("overlapping Create() error = %v, want %v", err, repositories.ErrRoomNotAvailable)
	}
}

func TestCreateReservationBackToBack(t *testing.T) {
	f := newReservationFixture(t)
	f.seedReservation(t, models.StatusConfirmed, day(2030, time.January, 10), day(2030, time.January, 12))

	// Checking in on the previous guest's check-out day is not a conflict.
	if _, err := f.service.Create(f.guest.ID, f.room.ID, day(2030, time.January, 12), day(2030, time.January, 14)); err != nil {
		t.Errorf("back-to-back Create() error = %v, want nil", err)
	}
}

func TestCreateReservationCancelledDoesNotBlock(t *testing.T) {
	f := newReservationFixture(t)
	f.seedReservation(t, models.StatusCancelled, day(2030, time.January, 10), day(2030, time.January, 14))

	if _, err := f.service.Create(f.guest.ID, f.room.ID, day(2030, time.January, 10), day(2030, time.January, 14)); err != nil {
		t.Errorf("Create() over cancelled reservation error = %v, want nil", err)
	}
}

func TestConfirmReservation(t *testing.T) {
	f := newReservationFixture(t)
	id := f.seedReservation(t, models.StatusPending, day(2030, time.January, 10), day(2030, time.January, 12))

	got, err := f.service.Confirm(id)
	if err != nil {
		t.Fatalf("Confirm returned error: %v", err)
	}
	if got.Status != string(models.StatusConfirmed) {
		t.Errorf("status = %q, want %q", got.Status, models.StatusConfirmed)
	}

	if _, err := f.service.Confirm(id); !errors.Is(err, ErrInvalidReservationStatus) {
		t.Errorf("second Confirm() error = %v, want %v", err, ErrInvalidReservationStatus)
	}
}

func TestConfirmCancelledReservation(t *testing.T) {
	f := newReservationFixture(t)
	id := f.seedReservation(t, models.StatusCancelled, day(2030, time.January, 10), day(2030, time.January, 12))

	if _, err := f.service.Confirm(id); !errors.Is(err, ErrInvalidReservationStatus) {
		t.Errorf("Confirm() error = %v, want %v", err, ErrInvalidReservationStatus)
	}
}

func TestCancelReservation(t *testing.T) {
	f := newReservationFixture(t)
	id := f.seedReservation(t, models.StatusConfirmed, day(2030, time.January, 10), day(2030, time.January, 12))

	got, err := f.service.Cancel(id)
	if err != nil {
		t.Fatalf("Cancel returned error: %v", err)
	}
	if got.Status != string(models.StatusCancelled) {
		t.Errorf("status = %q, want %q", got.Status, models.StatusCancelled)
	}
}

func TestCancelTerminalReservation(t *testing.T) {
	f := newReservationFixture(t)

	for _, status := range []models.ReservationStatus{models.StatusCancelled, models.StatusCompleted} {
		id := f.seedReservation(t, status, day(2030, time.January, 10), day(2030, time.January, 12))
		if _, err := f.service.Cancel(id); !errors.Is(err, ErrInvalidReservationStatus) {
			t.Errorf("Cancel() of %s reservation error = %v, want %v", status, err, ErrInvalidReservationStatus)
		}
	}
}

func TestCancelReservationTooLate(t *testing.T) {
	f := newReservationFixture(t)

	// Check-in today or tomorrow-minus is inside the cut-off window.
	id := f.seedReservation(t, models.StatusPending, day(2030, time.January, 1), day(2030, time.January, 3))
	if _, err := f.service.Cancel(id); !errors.Is(err, ErrCancellationTooLate) {
		t.Errorf("Cancel() error = %v, want %v", err, ErrCancellationTooLate)
	}

	// Check-in tomorrow is the earliest cancellable stay.
	id = f.seedReservation(t, models.StatusPending, day(2030, time.January, 2), day(2030, time.January, 4))
	if _, err := f.service.Cancel(id); err != nil {
		t.Errorf("Cancel() of tomorrow's stay error = %v, want nil", err)
	}
}

func TestCancelCutoffWestOfUTC(t *testing.T) {
	f := newReservationFixture(t)
	west := time.FixedZone("UTC-5", -5*60*60)
	f.service.WithClock(func() time.Time {
		return time.Date(2030, 1, 1, 20, 0, 0, 0, west)
	})

	// Check-in is tomorrow by the calendar, so the stay is still cancellable
	// no matter the zone the clock reports in.
	id := f.seedReservation(t, models.StatusPending, day(2030, time.January, 2), day(2030, time.January, 4))
	if _, err := f.service.Cancel(id); err != nil {
		t.Errorf("Cancel() of tomorrow's stay error = %v, want nil", err)
	}
}

func TestTotalPriceCountsCalendarNights(t *testing.T) {
	f := newReservationFixture(t)

	// A stay whose stored endpoints carry different UTC offsets (as around a
	// clock change) is still priced by calendar nights, not elapsed hours.
	before := time.FixedZone("UTC+1", 60*60)
	after := time.FixedZone("UTC+2", 2*60*60)
	f.reservations.mu.Lock()
	f.reservations.seq++
	id := f.reservations.seq
	f.reservations.reservations[id] = models.Reservation{
		ID:           id,
		UserID:       f.guest.ID,
		RoomID:       f.room.ID,
		CheckInDate:  datatypes.Date(time.Date(2030, 3, 29, 0, 0, 0, 0, before)),
		CheckOutDate: datatypes.Date(time.Date(2030, 4, 1, 0, 0, 0, 0, after)),
		Status:       models.StatusConfirmed,
		CreatedAt:    fixedClock(),
	}
	f.reservations.mu.Unlock()

	got, err := f.service.ListForUser(f.guest.ID)
	if err != nil {
		t.Fatalf("ListForUser returned error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d reservations, want 1", len(got))
	}
	if got[0].TotalPrice != 300.00 {
		t.Errorf("total price = %.2f, want 300.00 (3 nights x 100)", got[0].TotalPrice)
	}
	if got[0].CheckInDate != "2030-03-29" || got[0].CheckOutDate != "2030-04-01" {
		t.Errorf("dates = %s..%s, want 2030-03-29..2030-04-01", got[0].CheckInDate, got[0].CheckOutDate)
	}
}

func TestSweepCompleted(t *testing.T) {
	f := newReservationFixture(t)

	pastConfirmed := f.seedReservation(t, models.StatusConfirmed, day(2029, time.December, 20), day(2029, time.December, 25))
	futureConfirmed := f.seedReservation(t, models.StatusConfirmed, day(2030, time.January, 10), day(2030, time.January, 12))
	pastPending := f.seedReservation(t, models.StatusPending, day(2029, time.December, 20), day(2029, time.December, 25))

	count, err := f.service.SweepCompleted()
	if err != nil {
		t.Fatalf("SweepCompleted returned error: %v", err)
	}
	if count != 1 {
		t.Fatalf("sweep count = %d, want 1", count)
	}

	assertStatus := func(id uint, want models.ReservationStatus) {
		t.Helper()
		reservation, err := f.reservations.GetByID(id)
		if err != nil {
			t.Fatalf("GetByID(%d): %v", id, err)
		}
		if reservation.Status != want {
			t.Errorf("reservation %d status = %q, want %q", id, reservation.Status, want)
		}
	}
	assertStatus(pastConfirmed, models.StatusCompleted)
	assertStatus(futureConfirmed, models.StatusConfirmed)
	assertStatus(pastPending, models.StatusPending)

	// Re-running finds nothing new.
	count, err = f.service.SweepCompleted()
	if err != nil {
		t.Fatalf("second SweepCompleted returned error: %v", err)
	}
	if count != 0 {
		t.Errorf("second sweep count = %d, want 0", count)
	}
}

func TestIsOwner(t *testing.T) {
	f := newReservationFixture(t)
	other := &models.User{Email: "other@example.com", Password: "x", Enabled: true, Role: models.RoleUser}
	if err := f.users.Create(other); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	id := f.seedReservation(t, models.StatusPending, day(2030, time.January, 10), day(2030, time.January, 12))

	owner, err := f.service.IsOwner(f.guest.ID, id)
	if err != nil {
		t.Fatalf("IsOwner returned error: %v", err)
	}
	if !owner {
		t.Error("IsOwner = false for the owning user, want true")
	}

	owner, err = f.service.IsOwner(other.ID, id)
	if err != nil {
		t.Fatalf("IsOwner returned error: %v", err)
	}
	if owner {
		t.Error("IsOwner = true for another user, want false")
	}

	if _, err := f.service.IsOwner(f.guest.ID, 999); !errors.Is(err, repositories.ErrReservationNotFound) {
		t.Errorf("IsOwner() error = %v, want %v", err, repositories.ErrReservationNotFound)
	}
}

func TestConcurrentCreateOnlyOneSucceeds(t *testing.T) {
	f := newReservationFixture(t)

	const attempts = 8
	var wg sync.WaitGroup
	errs := make([]error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := f.service.Create(f.guest.ID, f.room.ID, day(2030, time.January, 10), day(2030, time.January, 12))
			errs[i] = err
		}(i)
	}
	wg.Wait()

	successes := 0
	for _, err := range errs {
		switch {
		case err == nil:
			successes++
		case errors.Is(err, repositories.ErrRoomNotAvailable):
		default:
			t.Errorf("unexpected error: %v", err)
		}
	}
	if successes != 1 {
		t.Errorf("successful creates = %d, want exactly 1", successes)
	}
}
