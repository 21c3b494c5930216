package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/deppfellow/barbershop-api/internal/model/booking"
	"github.com/deppfellow/barbershop-api/internal/model/catalog"
	"github.com/deppfellow/barbershop-api/internal/model/user"
)

type MockBookingRepo struct {
	mock.Mock
}

func (m *MockBookingRepo) ListByUser(ctx context.Context, userID int) ([]booking.UserBooking, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]booking.UserBooking), args.Error(1)
}

func (m *MockBookingRepo) ListRecent(ctx context.Context, limit int) ([]booking.AdminBooking, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]booking.AdminBooking), args.Error(1)
}

func (m *MockBookingRepo) Create(ctx context.Context, payload *booking.CreateBookingPayload) (int, error) {
	args := m.Called(ctx, payload)
	return args.Int(0), args.Error(1)
}

func (m *MockBookingRepo) UpdateStatus(ctx context.Context, bookingID int, status string) error {
	args := m.Called(ctx, bookingID, status)
	return args.Error(0)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) EnqueueBookingConfirmation(ctx context.Context, bookingID int) error {
	return m.Called(ctx, bookingID).Error(0)
}

func (m *MockNotifier) EnqueueBookingStatusChanged(ctx context.Context, bookingID int) error {
	return m.Called(ctx, bookingID).Error(0)
}

type MockCatalogRepo struct {
	mock.Mock
}

func (m *MockCatalogRepo) rows(args mock.Arguments) ([]catalog.Row, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Row), args.Error(1)
}

func (m *MockCatalogRepo) ListSalons(ctx context.Context) ([]catalog.Row, error) {
	return m.rows(m.Called(ctx))
}

func (m *MockCatalogRepo) ListMasters(ctx context.Context, salonID int) ([]catalog.Row, error) {
	return m.rows(m.Called(ctx, salonID))
}

func (m *MockCatalogRepo) ListServices(ctx context.Context) ([]catalog.Row, error) {
	return m.rows(m.Called(ctx))
}

func (m *MockCatalogRepo) ListActivePromotions(ctx context.Context) ([]catalog.Row, error) {
	return m.rows(m.Called(ctx))
}

type MockCatalogCache struct {
	mock.Mock
}

func (m *MockCatalogCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	args := m.Called(ctx, key)
	var b []byte
	if v := args.Get(0); v != nil {
		b = v.([]byte)
	}
	return b, args.Bool(1), args.Error(2)
}

func (m *MockCatalogCache) Set(ctx context.Context, key string, value []byte) error {
	return m.Called(ctx, key, value).Error(0)
}

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) one(args mock.Arguments) (*user.User, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepo) GetByID(ctx context.Context, userID int) (*user.User, error) {
	return m.one(m.Called(ctx, userID))
}

func (m *MockUserRepo) GetByPhone(ctx context.Context, phone string) (*user.User, error) {
	return m.one(m.Called(ctx, phone))
}

func (m *MockUserRepo) ListBonusHistory(ctx context.Context, userID, limit int) ([]user.BonusHistory, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]user.BonusHistory), args.Error(1)
}

func (m *MockUserRepo) Upsert(ctx context.Context, phone, name string, email *string) (*user.User, error) {
	return m.one(m.Called(ctx, phone, name, email))
}

func (m *MockUserRepo) AdjustBonusPoints(ctx context.Context, userID, delta int) (*user.User, error) {
	return m.one(m.Called(ctx, userID, delta))
}
