package services

import (
	"testing"

	"staybook-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterHotel(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "newowner", models.RoleUser)
	svc := NewHotelService(db)

	in := RegisterHotelInput{
		Name:    "Seaside Inn",
		Address: "2 Harbor Road",
		Contact: "555-0200",
		City:    "Faro",
		Location: models.Location{
			Lat: 37.0194,
			Lng: -7.9304,
		},
	}

	hotel, err := svc.RegisterHotel(user.ID, in)
	require.NoError(t, err)
	assert.Equal(t, "Seaside Inn", hotel.Name)
	assert.Equal(t, user.ID, hotel.OwnerID)

	t.Run("registering promotes the account", func(t *testing.T) {
		var got models.User
		require.NoError(t, db.First(&got, user.ID).Error)
		assert.Equal(t, models.RoleHotelOwner, got.Role)
	})

	t.Run("second hotel for same owner rejected", func(t *testing.T) {
		_, err := svc.RegisterHotel(user.ID, in)
		assert.ErrorIs(t, err, ErrHotelExists)
	})
}

func TestUpdateHotel(t *testing.T) {
	db := newTestDB(t)
	owner := seedUser(t, db, "owner", models.RoleHotelOwner)
	seedHotel(t, db, owner.ID, "Faro")
	svc := NewHotelService(db)

	loc := models.Location{Lat: 38.7169, Lng: -9.1399}
	_, err := svc.UpdateHotel(owner.ID, UpdateHotelInput{
		Name:     "Renamed Inn",
		City:     "Lisbon",
		Location: &loc,
	})
	require.NoError(t, err)

	got, err := svc.GetProfile(owner.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed Inn", got.Name)
	assert.Equal(t, "Lisbon", got.City)
	assert.Equal(t, 38.7169, got.Location.Lat)
	assert.Equal(t, "1 Test Street", got.Address)

	t.Run("no hotel to update", func(t *testing.T) {
		stranger := seedUser(t, db, "stranger", models.RoleUser)
		_, err := svc.UpdateHotel(stranger.ID, UpdateHotelInput{Name: "Nope"})
		assert.ErrorIs(t, err, ErrHotelNotFound)
	})
}

func TestListHotels(t *testing.T) {
	db := newTestDB(t)
	a := seedUser(t, db, "a", models.RoleHotelOwner)
	b := seedUser(t, db, "b", models.RoleHotelOwner)
	seedHotel(t, db, a.ID, "Lisbon")
	seedHotel(t, db, b.ID, "Porto")
	svc := NewHotelService(db)

	all, err := svc.ListHotels("")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	filtered, err := svc.ListHotels("lis")
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "Lisbon", filtered[0].City)
}

func TestGetDashboardRevenueCountsConfirmedPaidOnly(t *testing.T) {
	db := newTestDB(t)
	owner := seedUser(t, db, "owner", models.RoleHotelOwner)
	hotel := seedHotel(t, db, owner.ID, "Faro")
	room := seedRoom(t, db, hotel.ID, 100)
	guest := seedUser(t, db, "guest", models.RoleUser)

	seedBooking(t, db, models.Booking{
		UserID: guest.ID, RoomID: room.ID, HotelID: hotel.ID,
		CheckInDate: futureDate(5), CheckOutDate: futureDate(7),
		Guests: 1, TotalPrice: 200,
		Status: models.BookingConfirmed, IsPaid: true,
	})
	// Paid but still pending: counted as paid, excluded from revenue.
	seedBooking(t, db, models.Booking{
		UserID: guest.ID, RoomID: room.ID, HotelID: hotel.ID,
		CheckInDate: futureDate(10), CheckOutDate: futureDate(12),
		Guests: 1, TotalPrice: 200,
		Status: models.BookingPending, IsPaid: true,
	})

	svc := NewHotelService(db)
	_, stats, err := svc.GetDashboard(owner.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalBookings)
	assert.Equal(t, 2, stats.PaidBookings)
	assert.Equal(t, 200.0, stats.TotalRevenue)
}
