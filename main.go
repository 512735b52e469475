package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"rental-backend/config"
	"rental-backend/controllers"
	"rental-backend/routes"
	"rental-backend/services"
	"rental-backend/utils"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println(".env not found or couldn't load it; continuing with environment variables")
	}

	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("database connect failed: %v", err)
	}
	db := config.DB
	log.Println("database connection established, migrations applied")

	// Confirmation chain collaborators
	renderer := utils.NewAgreementRenderer()
	if err := renderer.CheckFont(); err != nil {
		log.Fatalf("%v", err)
	}
	mailer := utils.NewConfirmMailer()
	store := utils.NewAgreementStore()

	// Services
	bookingService := services.NewBookingService(db, renderer, mailer, store)
	unitService := services.NewUnitService(db)
	blockedDateService := services.NewBlockedDateService(db)
	calendarService := services.NewCalendarService(db)
	settingsService := services.NewSettingsService(db)

	// Controllers
	bookingController := controllers.NewBookingController(bookingService, settingsService)
	unitController := controllers.NewUnitController(unitService)
	blockedDateController := controllers.NewBlockedDateController(blockedDateService)
	calendarController := controllers.NewCalendarController(calendarService)
	settingsController := controllers.NewSettingsController(settingsService)
	agreementController := controllers.NewAgreementController(store)

	router := routes.SetupRouter(
		bookingController,
		unitController,
		blockedDateController,
		calendarController,
		settingsController,
		agreementController,
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("server stopped gracefully")
}
