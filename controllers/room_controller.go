package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"staybook-backend/middleware"
	"staybook-backend/services"
	"staybook-backend/utils"

	"github.com/gin-gonic/gin"
)

type RoomController struct {
	RoomSvc *services.RoomService
}

func NewRoomController(svc *services.RoomService) *RoomController {
	return &RoomController{RoomSvc: svc}
}

// CreateRoom handles POST /api/rooms. Multipart form: roomType,
// pricePerNight, amenities (JSON array string) and image files.
func (rc *RoomController) CreateRoom(c *gin.Context) {
	roomType := c.PostForm("roomType")
	priceStr := c.PostForm("pricePerNight")
	if roomType == "" || priceStr == "" {
		utils.JSONError(c, http.StatusBadRequest, "roomType and pricePerNight are required")
		return
	}

	price, err := strconv.ParseFloat(priceStr, 64)
	if err != nil || price <= 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid pricePerNight")
		return
	}

	var amenities []string
	if raw := c.PostForm("amenities"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &amenities); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "amenities must be a JSON array of strings")
			return
		}
	}

	var images []string
	if form, err := c.MultipartForm(); err == nil && form != nil {
		files := form.File["images"]
		if len(files) > 4 {
			files = files[:4]
		}
		images, err = services.SaveUploadedImages(c, files, "rooms")
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, err.Error())
			return
		}
	}

	room, err := rc.RoomSvc.CreateRoom(middleware.CurrentUserID(c), roomType, price, amenities, images)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, gin.H{
		"message": "Room created successfully",
		"room":    room,
	})
}

// GetRooms handles GET /api/rooms with optional city/minPrice/maxPrice.
func (rc *RoomController) GetRooms(c *gin.Context) {
	filters := services.RoomFilters{City: c.Query("city")}
	if v := c.Query("minPrice"); v != "" {
		p, err := strconv.ParseFloat(v, 64)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid minPrice")
			return
		}
		filters.MinPrice = &p
	}
	if v := c.Query("maxPrice"); v != "" {
		p, err := strconv.ParseFloat(v, 64)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid maxPrice")
			return
		}
		filters.MaxPrice = &p
	}

	rooms, err := rc.RoomSvc.GetRooms(filters)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"rooms": rooms})
}

// GetOwnerRooms handles GET /api/rooms/owner.
func (rc *RoomController) GetOwnerRooms(c *gin.Context) {
	rooms, err := rc.RoomSvc.GetOwnerRooms(middleware.CurrentUserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"rooms": rooms})
}

// GetRoomByID handles GET /api/rooms/:id.
func (rc *RoomController) GetRoomByID(c *gin.Context) {
	roomID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid room id")
		return
	}

	room, err := rc.RoomSvc.GetRoomByID(uint(roomID))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"room": room})
}

type ToggleAvailabilityRequest struct {
	RoomID uint `json:"roomId" binding:"required"`
}

// ToggleAvailability handles POST /api/rooms/toggle-availability.
func (rc *RoomController) ToggleAvailability(c *gin.Context) {
	var req ToggleAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "roomId is required")
		return
	}

	room, err := rc.RoomSvc.ToggleAvailability(req.RoomID, middleware.CurrentUserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"message": "Room availability updated",
		"room":    room,
	})
}

type UpdateRoomRequest struct {
	RoomType      string   `json:"roomType"`
	PricePerNight *float64 `json:"pricePerNight"`
	Amenities     []string `json:"amenities"`
	Images        []string `json:"images"`
}

// UpdateRoom handles PUT /api/rooms/:id.
func (rc *RoomController) UpdateRoom(c *gin.Context) {
	roomID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid room id")
		return
	}

	var req UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	room, err := rc.RoomSvc.UpdateRoom(uint(roomID), middleware.CurrentUserID(c), services.UpdateRoomInput{
		RoomType:      req.RoomType,
		PricePerNight: req.PricePerNight,
		Amenities:     req.Amenities,
		Images:        req.Images,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"message": "Room updated successfully",
		"room":    room,
	})
}
