package controllers

import (
	"net/http"

	"staybook-backend/middleware"
	"staybook-backend/models"
	"staybook-backend/services"
	"staybook-backend/utils"

	"github.com/gin-gonic/gin"
)

type BookingController struct {
	BookingSvc      *services.BookingService
	AvailabilitySvc *services.AvailabilityService
}

func NewBookingController(bookingSvc *services.BookingService, availabilitySvc *services.AvailabilityService) *BookingController {
	return &BookingController{BookingSvc: bookingSvc, AvailabilitySvc: availabilitySvc}
}

type CheckAvailabilityRequest struct {
	Room         uint   `json:"room" binding:"required"`
	CheckInDate  string `json:"checkInDate" binding:"required"`
	CheckOutDate string `json:"checkOutDate" binding:"required"`
}

// CheckAvailability handles POST /api/bookings/check-availability.
func (bc *BookingController) CheckAvailability(c *gin.Context) {
	var req CheckAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "room, checkInDate and checkOutDate are required")
		return
	}

	checkIn, err := parseDate(req.CheckInDate)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid checkInDate")
		return
	}
	checkOut, err := parseDate(req.CheckOutDate)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid checkOutDate")
		return
	}

	available, err := bc.AvailabilitySvc.CheckAvailability(req.Room, checkIn, checkOut)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"isAvailable": available})
}

type CreateBookingRequest struct {
	Room         uint   `json:"room" binding:"required"`
	CheckInDate  string `json:"checkInDate" binding:"required"`
	CheckOutDate string `json:"checkOutDate" binding:"required"`
	Guests       int    `json:"guests" binding:"required"`
}

// CreateBooking handles POST /api/bookings/book.
func (bc *BookingController) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "room, checkInDate, checkOutDate and guests are required")
		return
	}

	checkIn, err := parseDate(req.CheckInDate)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid checkInDate")
		return
	}
	checkOut, err := parseDate(req.CheckOutDate)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid checkOutDate")
		return
	}

	booking, err := bc.BookingSvc.CreateBooking(middleware.CurrentUserID(c), req.Room, checkIn, checkOut, req.Guests)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, gin.H{
		"message": "Booking created successfully",
		"booking": booking,
	})
}

// GetUserBookings handles GET /api/bookings/user.
func (bc *BookingController) GetUserBookings(c *gin.Context) {
	bookings, err := bc.BookingSvc.GetUserBookings(middleware.CurrentUserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"bookings": bookings})
}

// GetHotelBookings handles GET /api/bookings/hotel.
func (bc *BookingController) GetHotelBookings(c *gin.Context) {
	bookings, stats, err := bc.BookingSvc.GetHotelBookings(middleware.CurrentUserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"bookings":      bookings,
		"dashboardData": stats,
	})
}

type UpdateStatusRequest struct {
	BookingID uint    `json:"bookingId" binding:"required"`
	Status    *string `json:"status"`
	IsPaid    *bool   `json:"isPaid"`
}

// UpdateStatus handles POST /api/bookings/update-status.
func (bc *BookingController) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "bookingId is required")
		return
	}

	in := services.UpdateStatusInput{IsPaid: req.IsPaid}
	if req.Status != nil {
		status := models.BookingStatus(*req.Status)
		in.Status = &status
	}

	booking, err := bc.BookingSvc.UpdateStatus(req.BookingID, middleware.CurrentUserID(c), in)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"message": "Booking updated successfully",
		"booking": booking,
	})
}

type ProcessPaymentRequest struct {
	BookingID     uint   `json:"bookingId" binding:"required"`
	PaymentMethod string `json:"paymentMethod" binding:"required"`
}

// ProcessPayment handles POST /api/bookings/process-payment.
func (bc *BookingController) ProcessPayment(c *gin.Context) {
	var req ProcessPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "bookingId and paymentMethod are required")
		return
	}

	result, err := bc.BookingSvc.ProcessPayment(c.Request.Context(), req.BookingID, middleware.CurrentUserID(c), req.PaymentMethod)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"message": "Payment processed successfully",
		"payment": result,
	})
}
