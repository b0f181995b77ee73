package controllers

import (
	"net/http"

	"staybook-backend/middleware"
	"staybook-backend/models"
	"staybook-backend/services"
	"staybook-backend/utils"

	"github.com/gin-gonic/gin"
)

type HotelController struct {
	HotelSvc *services.HotelService
}

func NewHotelController(svc *services.HotelService) *HotelController {
	return &HotelController{HotelSvc: svc}
}

type RegisterHotelRequest struct {
	Name        string           `json:"name" binding:"required"`
	Address     string           `json:"address" binding:"required"`
	Contact     string           `json:"contact" binding:"required"`
	City        string           `json:"city" binding:"required"`
	Destination string           `json:"destination"`
	Location    *models.Location `json:"location"`
}

// RegisterHotel handles POST /api/hotels.
func (hc *HotelController) RegisterHotel(c *gin.Context) {
	var req RegisterHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "name, address, contact and city are required")
		return
	}

	in := services.RegisterHotelInput{
		Name:        req.Name,
		Address:     req.Address,
		Contact:     req.Contact,
		City:        req.City,
		Destination: req.Destination,
	}
	if req.Location != nil {
		in.Location = *req.Location
	}

	hotel, err := hc.HotelSvc.RegisterHotel(middleware.CurrentUserID(c), in)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, gin.H{
		"message": "Hotel registered successfully",
		"hotel":   hotel,
	})
}

// GetProfile handles GET /api/hotels/profile.
func (hc *HotelController) GetProfile(c *gin.Context) {
	hotel, err := hc.HotelSvc.GetProfile(middleware.CurrentUserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"hotel": hotel})
}

type UpdateHotelRequest struct {
	Name        string           `json:"name"`
	Address     string           `json:"address"`
	Contact     string           `json:"contact"`
	City        string           `json:"city"`
	Destination *string          `json:"destination"`
	Location    *models.Location `json:"location"`
}

// UpdateHotel handles PUT /api/hotels/update.
func (hc *HotelController) UpdateHotel(c *gin.Context) {
	var req UpdateHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	hotel, err := hc.HotelSvc.UpdateHotel(middleware.CurrentUserID(c), services.UpdateHotelInput{
		Name:        req.Name,
		Address:     req.Address,
		Contact:     req.Contact,
		City:        req.City,
		Destination: req.Destination,
		Location:    req.Location,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"message": "Hotel profile updated successfully",
		"hotel":   hotel,
	})
}

// ListHotels handles GET /api/hotels.
func (hc *HotelController) ListHotels(c *gin.Context) {
	hotels, err := hc.HotelSvc.ListHotels(c.Query("city"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"hotels": hotels})
}

// GetDashboard handles GET /api/hotels/dashboard.
func (hc *HotelController) GetDashboard(c *gin.Context) {
	bookings, stats, err := hc.HotelSvc.GetDashboard(middleware.CurrentUserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"bookings":      bookings,
		"dashboardData": stats,
	})
}
