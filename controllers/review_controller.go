package controllers

import (
	"net/http"
	"strconv"
	"time"

	"staybook-backend/middleware"
	"staybook-backend/services"
	"staybook-backend/utils"

	"github.com/gin-gonic/gin"
)

type ReviewController struct {
	ReviewSvc *services.ReviewService
}

func NewReviewController(svc *services.ReviewService) *ReviewController {
	return &ReviewController{ReviewSvc: svc}
}

type CreateReviewRequest struct {
	RoomID   uint   `json:"roomId" binding:"required"`
	Rating   int    `json:"rating" binding:"required"`
	Comment  string `json:"comment" binding:"required"`
	StayDate string `json:"stayDate"`
}

// CreateReview handles POST /api/reviews.
func (rc *ReviewController) CreateReview(c *gin.Context) {
	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "roomId, rating and comment are required")
		return
	}

	stayDate := time.Now()
	if req.StayDate != "" {
		parsed, err := parseDate(req.StayDate)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid stayDate")
			return
		}
		stayDate = parsed
	}

	review, err := rc.ReviewSvc.CreateReview(middleware.CurrentUserID(c), req.RoomID, req.Rating, req.Comment, stayDate)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, gin.H{"review": review})
}

// GetRoomReviews handles GET /api/reviews/room/:roomId.
func (rc *ReviewController) GetRoomReviews(c *gin.Context) {
	roomID, err := strconv.ParseUint(c.Param("roomId"), 10, 64)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid room id")
		return
	}

	reviews, stats, err := rc.ReviewSvc.GetRoomReviews(uint(roomID))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"reviews": reviews, "stats": stats})
}

// GetUserReviews handles GET /api/reviews/user.
func (rc *ReviewController) GetUserReviews(c *gin.Context) {
	reviews, err := rc.ReviewSvc.GetUserReviews(middleware.CurrentUserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"reviews": reviews})
}

// GetHotelReviews handles GET /api/reviews/hotel.
func (rc *ReviewController) GetHotelReviews(c *gin.Context) {
	reviews, stats, err := rc.ReviewSvc.GetHotelReviews(middleware.CurrentUserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"reviews": reviews, "stats": stats})
}

// GetFeaturedReviews handles GET /api/reviews/featured.
func (rc *ReviewController) GetFeaturedReviews(c *gin.Context) {
	reviews, err := rc.ReviewSvc.GetFeaturedReviews()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"reviews": reviews})
}

type UpdateReviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// UpdateReview handles PUT /api/reviews/:id.
func (rc *ReviewController) UpdateReview(c *gin.Context) {
	reviewID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid review id")
		return
	}

	var req UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	review, err := rc.ReviewSvc.UpdateReview(uint(reviewID), middleware.CurrentUserID(c), req.Rating, req.Comment)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"review": review})
}

// DeleteReview handles DELETE /api/reviews/:id.
func (rc *ReviewController) DeleteReview(c *gin.Context) {
	reviewID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid review id")
		return
	}

	if err := rc.ReviewSvc.DeleteReview(uint(reviewID), middleware.CurrentUserID(c)); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "Review deleted successfully"})
}
