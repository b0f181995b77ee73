package services

import (
	"context"
	"testing"
	"time"

	"staybook-backend/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Hotel{},
		&models.Room{},
		&models.Booking{},
		&models.Review{},
	))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, username string, role models.Role) *models.User {
	t.Helper()
	user := &models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "not-a-real-hash",
		Role:     role,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedHotel(t *testing.T, db *gorm.DB, ownerID uint, city string) *models.Hotel {
	t.Helper()
	hotel := &models.Hotel{
		OwnerID: ownerID,
		Name:    "Test Hotel",
		Address: "1 Test Street",
		Contact: "555-0100",
		City:    city,
	}
	require.NoError(t, db.Create(hotel).Error)
	return hotel
}

func seedRoom(t *testing.T, db *gorm.DB, hotelID uint, price float64) *models.Room {
	t.Helper()
	room := &models.Room{
		HotelID:       hotelID,
		RoomType:      "Double Bed",
		PricePerNight: price,
		IsAvailable:   true,
	}
	require.NoError(t, db.Create(room).Error)
	return room
}

func seedBooking(t *testing.T, db *gorm.DB, b models.Booking) *models.Booking {
	t.Helper()
	require.NoError(t, db.Create(&b).Error)
	return &b
}

// date builds a UTC midnight timestamp, matching the YYYY-MM-DD wire format.
func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// futureDate returns midnight n days from now, safely past the
// no-past-check-in validation.
func futureDate(n int) time.Time {
	now := time.Now().AddDate(0, 0, n)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// fakeGateway is a deterministic PaymentGateway for tests.
type fakeGateway struct {
	err   error
	calls int
}

func (g *fakeGateway) ProcessPayment(ctx context.Context, amount float64, method string) (*PaymentResult, error) {
	g.calls++
	if g.err != nil {
		return nil, g.err
	}
	return &PaymentResult{PaymentID: "pay_test12345", Amount: amount, PaymentMethod: method}, nil
}

func (g *fakeGateway) RefundPayment(ctx context.Context, paymentID string) (*RefundResult, error) {
	return &RefundResult{RefundID: "re_test12345"}, nil
}
