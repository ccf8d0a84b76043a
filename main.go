package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"hotel-reservations/config"
	"hotel-reservations/controllers"
	"hotel-reservations/repositories"
	"hotel-reservations/routes"
	"hotel-reservations/services"
	"hotel-reservations/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, using environment variables")
	}

	if os.Getenv("JWT_SECRET") == "" {
		log.Println("⚠️ JWT_SECRET is not set, falling back to the built-in default")
	}

	config.ConnectDatabase()
	config.SeedDatabase(config.DB)

	userRepo := repositories.NewUserRepository(config.DB)
	roomRepo := repositories.NewRoomRepository(config.DB)
	reservationRepo := repositories.NewReservationRepository(config.DB)

	authService := services.NewAuthService(userRepo)
	userService := services.NewUserService(userRepo)
	roomService := services.NewRoomService(roomRepo, reservationRepo)
	reservationService := services.NewReservationService(reservationRepo, roomRepo, userRepo)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	services.NewSweeper(reservationService).Start(ctx)

	router := routes.SetupRouter(
		controllers.NewAuthController(authService),
		controllers.NewRoomController(roomService),
		controllers.NewReservationController(reservationService, userService),
		controllers.NewUserController(userService),
	)

	port := utils.EnvOrDefault("PORT", "8080")
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("✅ Server listening on port %s", port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("❌ Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("❌ Forced shutdown: %v", err)
	}
	log.Println("✅ Server stopped cleanly")
}
