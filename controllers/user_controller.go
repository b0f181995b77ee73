package controllers

import (
	"net/http"

	"staybook-backend/middleware"
	"staybook-backend/services"
	"staybook-backend/utils"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	UserSvc *services.UserService
}

func NewUserController(svc *services.UserService) *UserController {
	return &UserController{UserSvc: svc}
}

// GetProfile handles GET /api/user.
func (uc *UserController) GetProfile(c *gin.Context) {
	user, err := uc.UserSvc.GetProfile(middleware.CurrentUserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"user":                 user,
		"role":                 user.Role,
		"recentSearchedCities": services.RecentSearchedCities(user),
	})
}

type StoreRecentSearchRequest struct {
	City string `json:"recentSearchedCity" binding:"required"`
}

// StoreRecentSearch handles POST /api/user/store-recent-search.
func (uc *UserController) StoreRecentSearch(c *gin.Context) {
	var req StoreRecentSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "recentSearchedCity is required")
		return
	}

	cities, err := uc.UserSvc.StoreRecentSearchedCity(middleware.CurrentUserID(c), req.City)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"message":              "City stored successfully",
		"recentSearchedCities": cities,
	})
}
