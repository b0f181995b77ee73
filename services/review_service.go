package services

import (
	"errors"
	"fmt"
	"time"

	"staybook-backend/models"

	"gorm.io/gorm"
)

// ReviewService gates reviews behind confirmed stays and enforces
// one review per guest per room.
type ReviewService struct {
	DB *gorm.DB
}

func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{DB: db}
}

// CreateReview records a guest's review of a room. The guest must have a
// confirmed booking for that room, and may review each room only once.
func (s *ReviewService) CreateReview(userID, roomID uint, rating int, comment string, stayDate time.Time) (*models.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, ErrInvalidRating
	}

	var room models.Room
	if err := s.DB.First(&room, roomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to load room: %w", err)
	}

	var stays int64
	err := s.DB.Model(&models.Booking{}).
		Where("user_id = ? AND room_id = ? AND status = ?", userID, roomID, models.BookingConfirmed).
		Count(&stays).Error
	if err != nil {
		return nil, fmt.Errorf("failed to check stay history: %w", err)
	}
	if stays == 0 {
		return nil, ErrNotEligible
	}

	review := models.Review{
		UserID:   userID,
		RoomID:   roomID,
		HotelID:  room.HotelID,
		Rating:   rating,
		Comment:  comment,
		StayDate: stayDate,
	}
	if err := s.DB.Create(&review).Error; err != nil {
		if isDuplicateKey(err) {
			return nil, ErrDuplicateReview
		}
		return nil, fmt.Errorf("failed to create review: %w", err)
	}
	return &review, nil
}

// UpdateReview changes rating and/or comment. Author only; zero values
// leave the field untouched.
func (s *ReviewService) UpdateReview(reviewID, requesterID uint, rating int, comment string) (*models.Review, error) {
	var review models.Review
	if err := s.DB.First(&review, reviewID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, fmt.Errorf("failed to load review: %w", err)
	}
	if review.UserID != requesterID {
		return nil, ErrUnauthorized
	}

	if rating != 0 {
		if rating < 1 || rating > 5 {
			return nil, ErrInvalidRating
		}
		review.Rating = rating
	}
	if comment != "" {
		review.Comment = comment
	}
	if err := s.DB.Save(&review).Error; err != nil {
		return nil, fmt.Errorf("failed to update review: %w", err)
	}
	return &review, nil
}

// DeleteReview removes the requester's own review.
func (s *ReviewService) DeleteReview(reviewID, requesterID uint) error {
	var review models.Review
	if err := s.DB.First(&review, reviewID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrReviewNotFound
		}
		return fmt.Errorf("failed to load review: %w", err)
	}
	if review.UserID != requesterID {
		return ErrUnauthorized
	}
	if err := s.DB.Delete(&review).Error; err != nil {
		return fmt.Errorf("failed to delete review: %w", err)
	}
	return nil
}

// ReviewStats aggregates ratings for a room or hotel.
type ReviewStats struct {
	TotalReviews  int           `json:"totalReviews"`
	AverageRating float64       `json:"averageRating"`
	RatingCounts  map[int]int64 `json:"ratingCounts,omitempty"`
}

func buildStats(reviews []models.Review, withCounts bool) *ReviewStats {
	stats := &ReviewStats{TotalReviews: len(reviews)}
	if withCounts {
		stats.RatingCounts = map[int]int64{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}
	}
	var sum int
	for _, r := range reviews {
		sum += r.Rating
		if withCounts {
			stats.RatingCounts[r.Rating]++
		}
	}
	if len(reviews) > 0 {
		stats.AverageRating = float64(sum) / float64(len(reviews))
	}
	return stats
}

// GetRoomReviews lists a room's reviews, newest first, with rating stats.
func (s *ReviewService) GetRoomReviews(roomID uint) ([]models.Review, *ReviewStats, error) {
	var reviews []models.Review
	err := s.DB.
		Preload("User").
		Where("room_id = ?", roomID).
		Order("created_at DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch reviews: %w", err)
	}
	return reviews, buildStats(reviews, true), nil
}

// GetUserReviews lists the reviews written by a guest, newest first.
func (s *ReviewService) GetUserReviews(userID uint) ([]models.Review, error) {
	var reviews []models.Review
	err := s.DB.
		Preload("Room").
		Preload("Hotel").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reviews: %w", err)
	}
	return reviews, nil
}

// GetHotelReviews lists reviews for the requester's hotel with stats.
func (s *ReviewService) GetHotelReviews(ownerID uint) ([]models.Review, *ReviewStats, error) {
	var hotel models.Hotel
	if err := s.DB.Where("owner_id = ?", ownerID).First(&hotel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrHotelNotFound
		}
		return nil, nil, fmt.Errorf("failed to load hotel: %w", err)
	}

	var reviews []models.Review
	err := s.DB.
		Preload("User").
		Preload("Room").
		Where("hotel_id = ?", hotel.ID).
		Order("created_at DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch reviews: %w", err)
	}
	return reviews, buildStats(reviews, false), nil
}

// GetFeaturedReviews returns up to six top-rated recent reviews.
func (s *ReviewService) GetFeaturedReviews() ([]models.Review, error) {
	var reviews []models.Review
	err := s.DB.
		Preload("User").
		Preload("Room").
		Preload("Hotel").
		Where("rating >= ?", 4).
		Order("rating DESC, created_at DESC").
		Limit(6).
		Find(&reviews).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch featured reviews: %w", err)
	}
	return reviews, nil
}
