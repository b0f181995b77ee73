package services

import (
	"context"
	"testing"

	"staybook-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBooking(t *testing.T) {
	db := newTestDB(t)
	owner := seedUser(t, db, "owner", models.RoleHotelOwner)
	hotel := seedHotel(t, db, owner.ID, "Porto")
	room := seedRoom(t, db, hotel.ID, 150)
	guest := seedUser(t, db, "guest", models.RoleUser)

	svc := NewBookingService(db, &fakeGateway{})

	booking, err := svc.CreateBooking(guest.ID, room.ID, futureDate(7), futureDate(10), 2)
	require.NoError(t, err)

	assert.Equal(t, models.BookingPending, booking.Status)
	assert.False(t, booking.IsPaid)
	assert.Equal(t, 450.0, booking.TotalPrice)
	assert.Equal(t, hotel.ID, booking.HotelID)
	assert.NotZero(t, booking.ID)
}

func TestCreateBookingValidation(t *testing.T) {
	db := newTestDB(t)
	owner := seedUser(t, db, "owner", models.RoleHotelOwner)
	hotel := seedHotel(t, db, owner.ID, "Porto")
	room := seedRoom(t, db, hotel.ID, 150)
	guest := seedUser(t, db, "guest", models.RoleUser)

	svc := NewBookingService(db, &fakeGateway{})

	t.Run("zero guests", func(t *testing.T) {
		_, err := svc.CreateBooking(guest.ID, room.ID, futureDate(7), futureDate(10), 0)
		assert.ErrorIs(t, err, ErrInvalidGuests)
	})

	t.Run("check-out before check-in", func(t *testing.T) {
		_, err := svc.CreateBooking(guest.ID, room.ID, futureDate(10), futureDate(7), 2)
		assert.ErrorIs(t, err, ErrInvalidDateRange)
	})

	t.Run("check-in in the past", func(t *testing.T) {
		_, err := svc.CreateBooking(guest.ID, room.ID, futureDate(-3), futureDate(2), 2)
		assert.ErrorIs(t, err, ErrInvalidDateRange)
	})

	t.Run("unknown room", func(t *testing.T) {
		_, err := svc.CreateBooking(guest.ID, 9999, futureDate(7), futureDate(10), 2)
		assert.ErrorIs(t, err, ErrRoomNotFound)
	})
}

func TestCreateBookingConflicts(t *testing.T) {
	db := newTestDB(t)
	owner := seedUser(t, db, "owner", models.RoleHotelOwner)
	hotel := seedHotel(t, db, owner.ID, "Porto")
	room := seedRoom(t, db, hotel.ID, 150)
	guest := seedUser(t, db, "guest", models.RoleUser)
	other := seedUser(t, db, "other", models.RoleUser)

	svc := NewBookingService(db, &fakeGateway{})

	_, err := svc.CreateBooking(guest.ID, room.ID, futureDate(7), futureDate(10), 2)
	require.NoError(t, err)

	t.Run("overlapping booking rejected", func(t *testing.T) {
		_, err := svc.CreateBooking(other.ID, room.ID, futureDate(9), futureDate(12), 1)
		assert.ErrorIs(t, err, ErrRoomUnavailable)
	})

	t.Run("shared boundary day rejected", func(t *testing.T) {
		_, err := svc.CreateBooking(other.ID, room.ID, futureDate(10), futureDate(12), 1)
		assert.ErrorIs(t, err, ErrRoomUnavailable)
	})

	t.Run("disjoint range allowed", func(t *testing.T) {
		_, err := svc.CreateBooking(other.ID, room.ID, futureDate(20), futureDate(22), 1)
		assert.NoError(t, err)
	})

	t.Run("toggled-off room rejected", func(t *testing.T) {
		require.NoError(t, db.Model(room).Update("is_available", false).Error)
		_, err := svc.CreateBooking(other.ID, room.ID, futureDate(30), futureDate(32), 1)
		assert.ErrorIs(t, err, ErrRoomUnavailable)
	})
}

func TestUpdateStatus(t *testing.T) {
	db := newTestDB(t)
	owner := seedUser(t, db, "owner", models.RoleHotelOwner)
	hotel := seedHotel(t, db, owner.ID, "Porto")
	room := seedRoom(t, db, hotel.ID, 150)
	guest := seedUser(t, db, "guest", models.RoleUser)
	stranger := seedUser(t, db, "stranger", models.RoleUser)

	svc := NewBookingService(db, &fakeGateway{})
	booking, err := svc.CreateBooking(guest.ID, room.ID, futureDate(7), futureDate(10), 2)
	require.NoError(t, err)

	confirmed := models.BookingConfirmed
	cancelled := models.BookingCancelled
	pending := models.BookingPending
	bogus := models.BookingStatus("archived")
	paid := true

	t.Run("non-owner rejected", func(t *testing.T) {
		_, err := svc.UpdateStatus(booking.ID, stranger.ID, UpdateStatusInput{Status: &confirmed})
		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("invalid status rejected", func(t *testing.T) {
		_, err := svc.UpdateStatus(booking.ID, owner.ID, UpdateStatusInput{Status: &bogus})
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("owner confirms and marks paid", func(t *testing.T) {
		_, err := svc.UpdateStatus(booking.ID, owner.ID, UpdateStatusInput{Status: &confirmed, IsPaid: &paid})
		require.NoError(t, err)

		var got models.Booking
		require.NoError(t, db.First(&got, booking.ID).Error)
		assert.Equal(t, models.BookingConfirmed, got.Status)
		assert.True(t, got.IsPaid)
	})

	t.Run("cancelled is terminal", func(t *testing.T) {
		_, err := svc.UpdateStatus(booking.ID, owner.ID, UpdateStatusInput{Status: &cancelled})
		require.NoError(t, err)

		_, err = svc.UpdateStatus(booking.ID, owner.ID, UpdateStatusInput{Status: &pending})
		assert.ErrorIs(t, err, ErrBookingCancelled)
	})

	t.Run("unknown booking", func(t *testing.T) {
		_, err := svc.UpdateStatus(9999, owner.ID, UpdateStatusInput{Status: &confirmed})
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})
}

func TestProcessPayment(t *testing.T) {
	db := newTestDB(t)
	owner := seedUser(t, db, "owner", models.RoleHotelOwner)
	hotel := seedHotel(t, db, owner.ID, "Porto")
	room := seedRoom(t, db, hotel.ID, 150)
	guest := seedUser(t, db, "guest", models.RoleUser)
	stranger := seedUser(t, db, "stranger", models.RoleUser)

	gateway := &fakeGateway{}
	svc := NewBookingService(db, gateway)
	booking, err := svc.CreateBooking(guest.ID, room.ID, futureDate(7), futureDate(10), 2)
	require.NoError(t, err)

	ctx := context.Background()

	t.Run("only the guest may pay", func(t *testing.T) {
		_, err := svc.ProcessPayment(ctx, booking.ID, stranger.ID, "card")
		assert.ErrorIs(t, err, ErrUnauthorized)
		assert.Zero(t, gateway.calls)
	})

	t.Run("successful payment confirms the booking", func(t *testing.T) {
		result, err := svc.ProcessPayment(ctx, booking.ID, guest.ID, "card")
		require.NoError(t, err)
		assert.Equal(t, booking.TotalPrice, result.Amount)
		assert.Equal(t, 1, gateway.calls)

		var got models.Booking
		require.NoError(t, db.First(&got, booking.ID).Error)
		assert.True(t, got.IsPaid)
		assert.Equal(t, models.BookingConfirmed, got.Status)
		assert.Equal(t, "card", got.PaymentMethod)
	})

	t.Run("second payment attempt rejected", func(t *testing.T) {
		_, err := svc.ProcessPayment(ctx, booking.ID, guest.ID, "card")
		assert.ErrorIs(t, err, ErrAlreadyPaid)
		assert.Equal(t, 1, gateway.calls)
	})

	t.Run("unknown booking", func(t *testing.T) {
		_, err := svc.ProcessPayment(ctx, 9999, guest.ID, "card")
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})
}

func TestProcessPaymentDeclineLeavesBookingUntouched(t *testing.T) {
	db := newTestDB(t)
	owner := seedUser(t, db, "owner", models.RoleHotelOwner)
	hotel := seedHotel(t, db, owner.ID, "Porto")
	room := seedRoom(t, db, hotel.ID, 150)
	guest := seedUser(t, db, "guest", models.RoleUser)

	gateway := &fakeGateway{err: &GatewayError{Message: "Payment processing failed. Please try again."}}
	svc := NewBookingService(db, gateway)
	booking, err := svc.CreateBooking(guest.ID, room.ID, futureDate(7), futureDate(10), 2)
	require.NoError(t, err)

	_, err = svc.ProcessPayment(context.Background(), booking.ID, guest.ID, "card")
	var gwErr *GatewayError
	require.ErrorAs(t, err, &gwErr)

	var got models.Booking
	require.NoError(t, db.First(&got, booking.ID).Error)
	assert.False(t, got.IsPaid)
	assert.Equal(t, models.BookingPending, got.Status)

	// Decline is retryable; the next attempt goes through.
	gateway.err = nil
	_, err = svc.ProcessPayment(context.Background(), booking.ID, guest.ID, "card")
	assert.NoError(t, err)
}

func TestProcessPaymentCancelledBooking(t *testing.T) {
	db := newTestDB(t)
	owner := seedUser(t, db, "owner", models.RoleHotelOwner)
	hotel := seedHotel(t, db, owner.ID, "Porto")
	room := seedRoom(t, db, hotel.ID, 150)
	guest := seedUser(t, db, "guest", models.RoleUser)

	gateway := &fakeGateway{}
	svc := NewBookingService(db, gateway)
	booking, err := svc.CreateBooking(guest.ID, room.ID, futureDate(7), futureDate(10), 2)
	require.NoError(t, err)

	cancelled := models.BookingCancelled
	_, err = svc.UpdateStatus(booking.ID, owner.ID, UpdateStatusInput{Status: &cancelled})
	require.NoError(t, err)

	_, err = svc.ProcessPayment(context.Background(), booking.ID, guest.ID, "card")
	assert.ErrorIs(t, err, ErrBookingCancelled)
	assert.Zero(t, gateway.calls)
}

func TestGetUserBookings(t *testing.T) {
	db := newTestDB(t)
	owner := seedUser(t, db, "owner", models.RoleHotelOwner)
	hotel := seedHotel(t, db, owner.ID, "Porto")
	room := seedRoom(t, db, hotel.ID, 150)
	guest := seedUser(t, db, "guest", models.RoleUser)
	other := seedUser(t, db, "other", models.RoleUser)

	svc := NewBookingService(db, &fakeGateway{})
	_, err := svc.CreateBooking(guest.ID, room.ID, futureDate(7), futureDate(10), 2)
	require.NoError(t, err)
	_, err = svc.CreateBooking(guest.ID, room.ID, futureDate(20), futureDate(22), 1)
	require.NoError(t, err)
	_, err = svc.CreateBooking(other.ID, room.ID, futureDate(30), futureDate(31), 1)
	require.NoError(t, err)

	bookings, err := svc.GetUserBookings(guest.ID)
	require.NoError(t, err)
	require.Len(t, bookings, 2)
	for _, b := range bookings {
		assert.Equal(t, guest.ID, b.UserID)
		assert.Equal(t, room.ID, b.Room.ID)
	}
}

func TestGetHotelBookings(t *testing.T) {
	db := newTestDB(t)
	owner := seedUser(t, db, "owner", models.RoleHotelOwner)
	hotel := seedHotel(t, db, owner.ID, "Porto")
	room := seedRoom(t, db, hotel.ID, 100)
	guest := seedUser(t, db, "guest", models.RoleUser)

	seedBooking(t, db, models.Booking{
		UserID: guest.ID, RoomID: room.ID, HotelID: hotel.ID,
		CheckInDate: futureDate(5), CheckOutDate: futureDate(7),
		Guests: 1, TotalPrice: 200,
		Status: models.BookingConfirmed, IsPaid: true,
	})
	seedBooking(t, db, models.Booking{
		UserID: guest.ID, RoomID: room.ID, HotelID: hotel.ID,
		CheckInDate: futureDate(10), CheckOutDate: futureDate(12),
		Guests: 1, TotalPrice: 200,
		Status: models.BookingPending,
	})
	seedBooking(t, db, models.Booking{
		UserID: guest.ID, RoomID: room.ID, HotelID: hotel.ID,
		CheckInDate: futureDate(15), CheckOutDate: futureDate(16),
		Guests: 1, TotalPrice: 100,
		Status: models.BookingCancelled, IsPaid: true,
	})

	svc := NewBookingService(db, &fakeGateway{})

	bookings, stats, err := svc.GetHotelBookings(owner.ID)
	require.NoError(t, err)
	require.Len(t, bookings, 3)

	assert.Equal(t, 3, stats.TotalBookings)
	assert.Equal(t, 1, stats.ConfirmedBookings)
	assert.Equal(t, 1, stats.PendingBookings)
	assert.Equal(t, 1, stats.CancelledBookings)
	assert.Equal(t, 2, stats.PaidBookings)
	assert.Equal(t, 1, stats.UnpaidBookings)
	assert.Equal(t, 300.0, stats.TotalRevenue)
	assert.Equal(t, 1, stats.RoomsCount)

	t.Run("no hotel for requester", func(t *testing.T) {
		_, _, err := svc.GetHotelBookings(guest.ID)
		assert.ErrorIs(t, err, ErrHotelNotFound)
	})
}
