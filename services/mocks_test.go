package services

import (
	"sort"
	"sync"
	"time"

	"hotel-reservations/models"
	"hotel-reservations/repositories"
)

// In-memory repository doubles. They reproduce the lookup and conflict
// semantics of the GORM implementations, including the atomic
// check-and-insert in CreateIfAvailable.

type mockUserRepository struct {
	mu    sync.Mutex
	seq   uint
	users map[uint]models.User
}

func newMockUserRepository() *mockUserRepository {
	return &mockUserRepository{users: make(map[uint]models.User)}
}

func (m *mockUserRepository) Create(user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.users {
		if existing.Email == user.Email {
			return repositories.ErrDuplicateEmail
		}
	}
	m.seq++
	user.ID = m.seq
	m.users[user.ID] = *user
	return nil
}

func (m *mockUserRepository) GetByID(id uint) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := m.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	return &user, nil
}

func (m *mockUserRepository) GetByEmail(email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, user := range m.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (m *mockUserRepository) ExistsByEmail(email string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, user := range m.users {
		if user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockUserRepository) Update(user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[user.ID]; !ok {
		return repositories.ErrUserNotFound
	}
	m.users[user.ID] = *user
	return nil
}

func (m *mockUserRepository) GetAll() ([]models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	users := make([]models.User, 0, len(m.users))
	for _, user := range m.users {
		users = append(users, user)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

type mockRoomRepository struct {
	mu    sync.Mutex
	seq   uint
	rooms map[uint]models.Room
}

func newMockRoomRepository() *mockRoomRepository {
	return &mockRoomRepository{rooms: make(map[uint]models.Room)}
}

func (m *mockRoomRepository) Create(room *models.Room) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.rooms {
		if existing.RoomNumber == room.RoomNumber {
			return repositories.ErrDuplicateRoomNumber
		}
	}
	m.seq++
	room.ID = m.seq
	m.rooms[room.ID] = *room
	return nil
}

func (m *mockRoomRepository) GetByID(id uint) (*models.Room, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	room, ok := m.rooms[id]
	if !ok {
		return nil, repositories.ErrRoomNotFound
	}
	return &room, nil
}

func (m *mockRoomRepository) GetByNumber(roomNumber int) (*models.Room, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, room := range m.rooms {
		if room.RoomNumber == roomNumber {
			r := room
			return &r, nil
		}
	}
	return nil, repositories.ErrRoomNotFound
}

func (m *mockRoomRepository) ExistsByNumber(roomNumber int) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, room := range m.rooms {
		if room.RoomNumber == roomNumber {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockRoomRepository) Update(room *models.Room) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rooms[room.ID]; !ok {
		return repositories.ErrRoomNotFound
	}
	for _, existing := range m.rooms {
		if existing.ID != room.ID && existing.RoomNumber == room.RoomNumber {
			return repositories.ErrDuplicateRoomNumber
		}
	}
	m.rooms[room.ID] = *room
	return nil
}

func (m *mockRoomRepository) Delete(id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rooms[id]; !ok {
		return repositories.ErrRoomNotFound
	}
	delete(m.rooms, id)
	return nil
}

func (m *mockRoomRepository) GetAll() ([]models.Room, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rooms := make([]models.Room, 0, len(m.rooms))
	for _, room := range m.rooms {
		rooms = append(rooms, room)
	}
	sort.Slice(rooms, func(i, j int) bool { return rooms[i].RoomNumber < rooms[j].RoomNumber })
	return rooms, nil
}

type mockReservationRepository struct {
	mu           sync.Mutex
	seq          uint
	reservations map[uint]models.Reservation
	users        *mockUserRepository
	rooms        *mockRoomRepository
}

func newMockReservationRepository(users *mockUserRepository, rooms *mockRoomRepository) *mockReservationRepository {
	return &mockReservationRepository{
		reservations: make(map[uint]models.Reservation),
		users:        users,
		rooms:        rooms,
	}
}

func isNonTerminal(status models.ReservationStatus) bool {
	return status == models.StatusPending || status == models.StatusConfirmed
}

func overlaps(existing models.Reservation, checkIn, checkOut time.Time) bool {
	existingIn := time.Time(existing.CheckInDate)
	existingOut := time.Time(existing.CheckOutDate)
	return existingIn.Before(checkOut) && existingOut.After(checkIn)
}

func (m *mockReservationRepository) CreateIfAvailable(reservation *models.Reservation) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, err := m.rooms.GetByID(reservation.RoomID); err != nil {
		return err
	}
	checkIn := time.Time(reservation.CheckInDate)
	checkOut := time.Time(reservation.CheckOutDate)
	for _, existing := range m.reservations {
		if existing.RoomID != reservation.RoomID || !isNonTerminal(existing.Status) {
			continue
		}
		if overlaps(existing, checkIn, checkOut) {
			return repositories.ErrRoomNotAvailable
		}
	}
	m.seq++
	reservation.ID = m.seq
	m.reservations[reservation.ID] = *reservation
	return nil
}

func (m *mockReservationRepository) GetByID(id uint) (*models.Reservation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	reservation, ok := m.reservations[id]
	if !ok {
		return nil, repositories.ErrReservationNotFound
	}
	m.preload(&reservation)
	return &reservation, nil
}

func (m *mockReservationRepository) GetByUserID(userID uint) ([]models.Reservation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var result []models.Reservation
	for _, reservation := range m.reservations {
		if reservation.UserID == userID {
			m.preload(&reservation)
			result = append(result, reservation)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	return result, nil
}

func (m *mockReservationRepository) GetActiveRangesByRoomID(roomID uint) ([]models.Reservation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var result []models.Reservation
	for _, reservation := range m.reservations {
		if reservation.RoomID == roomID && isNonTerminal(reservation.Status) {
			result = append(result, reservation)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return time.Time(result[i].CheckInDate).Before(time.Time(result[j].CheckInDate))
	})
	return result, nil
}

func (m *mockReservationRepository) GetAll() ([]models.Reservation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	result := make([]models.Reservation, 0, len(m.reservations))
	for _, reservation := range m.reservations {
		m.preload(&reservation)
		result = append(result, reservation)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	return result, nil
}

func (m *mockReservationRepository) Update(reservation *models.Reservation) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.reservations[reservation.ID]; !ok {
		return repositories.ErrReservationNotFound
	}
	stored := *reservation
	stored.User = models.User{}
	stored.Room = models.Room{}
	m.reservations[reservation.ID] = stored
	return nil
}

func (m *mockReservationRepository) HasConflict(roomID uint, checkIn, checkOut time.Time) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, reservation := range m.reservations {
		if reservation.RoomID != roomID || !isNonTerminal(reservation.Status) {
			continue
		}
		if overlaps(reservation, checkIn, checkOut) {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockReservationRepository) ExistsByRoomAndStatus(roomID uint, status models.ReservationStatus) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, reservation := range m.reservations {
		if reservation.RoomID == roomID && reservation.Status == status {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockReservationRepository) GetByStatusAndCheckOutBefore(status models.ReservationStatus, day time.Time) ([]models.Reservation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var result []models.Reservation
	for _, reservation := range m.reservations {
		if reservation.Status == status && time.Time(reservation.CheckOutDate).Before(day) {
			result = append(result, reservation)
		}
	}
	return result, nil
}

func (m *mockReservationRepository) UpdateAll(reservations []models.Reservation) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, reservation := range reservations {
		if _, ok := m.reservations[reservation.ID]; !ok {
			return repositories.ErrReservationNotFound
		}
		reservation.User = models.User{}
		reservation.Room = models.Room{}
		m.reservations[reservation.ID] = reservation
	}
	return nil
}

func (m *mockReservationRepository) preload(reservation *models.Reservation) {
	if user, ok := m.users.users[reservation.UserID]; ok {
		reservation.User = user
	}
	if room, ok := m.rooms.rooms[reservation.RoomID]; ok {
		reservation.Room = room
	}
}

// Interface conformance.
var (
	_ repositories.UserRepository        = (*mockUserRepository)(nil)
	_ repositories.RoomRepository        = (*mockRoomRepository)(nil)
	_ repositories.ReservationRepository = (*mockReservationRepository)(nil)
)
