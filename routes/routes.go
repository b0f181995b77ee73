package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"staybook-backend/controllers"
	"staybook-backend/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires the controllers into the gin engine.
func SetupRouter(
	ac *controllers.AuthController,
	uc *controllers.UserController,
	hc *controllers.HotelController,
	rmc *controllers.RoomController,
	bc *controllers.BookingController,
	rvc *controllers.ReviewController,
	jwtSecret []byte,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger())
	r.Static("/uploads", "./uploads")

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	auth := middleware.RequireAuth(jwtSecret)

	api := r.Group("/api")
	{
		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/register", ac.Register)
			authRoutes.POST("/login", ac.Login)
		}

		user := api.Group("/user", auth)
		{
			user.GET("", uc.GetProfile)
			user.POST("/store-recent-search", uc.StoreRecentSearch)
		}

		hotels := api.Group("/hotels")
		{
			hotels.GET("", hc.ListHotels)
			hotels.POST("", auth, hc.RegisterHotel)
			hotels.GET("/profile", auth, hc.GetProfile)
			hotels.PUT("/update", auth, hc.UpdateHotel)
			hotels.GET("/dashboard", auth, hc.GetDashboard)
		}

		rooms := api.Group("/rooms")
		{
			rooms.GET("", rmc.GetRooms)

			// must stay before /:id
			rooms.GET("/owner", auth, rmc.GetOwnerRooms)

			rooms.GET("/:id", rmc.GetRoomByID)
			rooms.POST("", auth, rmc.CreateRoom)
			rooms.PUT("/:id", auth, rmc.UpdateRoom)
			rooms.POST("/toggle-availability", auth, rmc.ToggleAvailability)
		}

		bookings := api.Group("/bookings")
		{
			bookings.POST("/check-availability", bc.CheckAvailability)
			bookings.POST("/book", auth, bc.CreateBooking)
			bookings.GET("/user", auth, bc.GetUserBookings)
			bookings.GET("/hotel", auth, bc.GetHotelBookings)
			bookings.POST("/update-status", auth, bc.UpdateStatus)
			bookings.POST("/process-payment", auth, bc.ProcessPayment)
		}

		reviews := api.Group("/reviews")
		{
			reviews.POST("", auth, rvc.CreateReview)
			reviews.GET("/room/:roomId", rvc.GetRoomReviews)
			reviews.GET("/featured", rvc.GetFeaturedReviews)
			reviews.GET("/user", auth, rvc.GetUserReviews)
			reviews.GET("/hotel", auth, rvc.GetHotelReviews)
			reviews.PUT("/:id", auth, rvc.UpdateReview)
			reviews.DELETE("/:id", auth, rvc.DeleteReview)
		}
	}

	return r
}
