package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"hotel-reservations/controllers"
	"hotel-reservations/middleware"
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

func SetupRouter(
	ac *controllers.AuthController,
	rc *controllers.RoomController,
	resc *controllers.ReservationController,
	uc *controllers.UserController,
) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestLogger(), gin.Recovery())

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

	auth := r.Group("/auth")
	{
		auth.POST("/register", ac.Register)
		auth.POST("/login", ac.Login)
		auth.POST("/verify", ac.Verify)
		auth.POST("/resend", ac.Resend)
	}

	rooms := r.Group("/rooms")
	{
		rooms.GET("", rc.Search)
		rooms.POST("", middleware.AuthRequired(), middleware.AdminRequired(), rc.Create)
		rooms.PATCH("/:roomId", middleware.AuthRequired(), middleware.AdminRequired(), rc.Update)
		rooms.DELETE("/:roomId", middleware.AuthRequired(), middleware.AdminRequired(), rc.Delete)
	}

	reservations := r.Group("/reservations", middleware.AuthRequired())
	{
		reservations.GET("", middleware.AdminRequired(), resc.ListAll)
		reservations.GET("/my-reservations", resc.MyReservations)
		reservations.POST("/reserve-room", resc.Reserve)
		reservations.POST("/confirm-reservation/:reservationId", resc.Confirm)
		reservations.POST("/cancel-reservation/:reservationId", resc.Cancel)
	}

	users := r.Group("/users", middleware.AuthRequired())
	{
		users.GET("/me", uc.Me)
		users.GET("/me/reservations", resc.MyReservations)
		users.GET("", middleware.AdminRequired(), uc.GetAll)
		users.GET("/:userId", middleware.AdminRequired(), uc.GetByID)
		users.GET("/:userId/reservations", middleware.AdminRequired(), resc.ListForUser)
	}

	return r
}
