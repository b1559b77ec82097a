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

	"fitlife/fitness-backend/internal/api"
	"fitlife/fitness-backend/internal/config"
	"fitlife/fitness-backend/internal/repository/mongo"
	"fitlife/fitness-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// @title FitLife Backend API
// @version 1.0
// @description Fitness management backend: trainer appointment booking, nutrition and workout logs, payments, messages and reminders.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	log.Println("Starting FitLife backend...")

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}
	log.Println("Configuration loaded.")

	// --- Database Connection ---
	dbClient, err := mongo.ConnectDB(cfg.Database.URI)
	if err != nil {
		log.Fatalf("FATAL: Could not connect to MongoDB: %v", err)
	}
	defer func() {
		log.Println("Disconnecting MongoDB...")
		if err := mongo.DisconnectDB(dbClient); err != nil {
			log.Printf("ERROR: Failed to disconnect MongoDB: %v", err)
		}
	}()
	appDB := dbClient.Database(cfg.Database.Name)
	log.Println("Database connection established.")

	// --- Ensure Indexes ---
	// The appointment slot indexes enforce the no-double-booking invariants,
	// so they matter beyond query speed.
	log.Println("Ensuring database indexes...")
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
		defer cancel()
		mongo.EnsureUserIndexes(ctx, appDB.Collection("users"))
		mongo.EnsureTrainerIndexes(ctx, appDB.Collection("trainers"))
		mongo.EnsureAppointmentIndexes(ctx, appDB.Collection("appointments"))
		mongo.EnsureNutritionIndexes(ctx, appDB.Collection("nutrition_logs"))
		mongo.EnsureWorkoutIndexes(ctx, appDB.Collection("workout_logs"))
		mongo.EnsurePaymentIndexes(ctx, appDB.Collection("payments"))
		mongo.EnsureMessageIndexes(ctx, appDB.Collection("messages"))
		mongo.EnsureReminderIndexes(ctx, appDB.Collection("reminders"))
		mongo.EnsureRatingIndexes(ctx, appDB.Collection("ratings"))
		log.Println("Index creation process completed.")
	}()

	// --- Initialize Repositories ---
	log.Println("Initializing repositories...")
	userRepo := mongo.NewMongoUserRepository(appDB)
	trainerRepo := mongo.NewMongoTrainerRepository(appDB)
	appointmentRepo := mongo.NewMongoAppointmentRepository(appDB)
	nutritionRepo := mongo.NewMongoNutritionRepository(appDB)
	workoutRepo := mongo.NewMongoWorkoutRepository(appDB)
	paymentRepo := mongo.NewMongoPaymentRepository(appDB)
	messageRepo := mongo.NewMongoMessageRepository(appDB)
	reminderRepo := mongo.NewMongoReminderRepository(appDB)
	ratingRepo := mongo.NewMongoRatingRepository(appDB)

	// --- Initialize Services ---
	log.Println("Initializing services...")
	assigner := service.NewRandomAssigner(trainerRepo)
	authService := service.NewAuthService(userRepo, assigner, cfg.JWT.Secret, cfg.JWT.Expiration)
	userService := service.NewUserService(userRepo)
	trainerService := service.NewTrainerService(trainerRepo)
	bookingService := service.NewBookingService(appointmentRepo, userRepo, trainerRepo)
	nutritionService := service.NewNutritionService(nutritionRepo, userRepo)
	workoutService := service.NewWorkoutService(workoutRepo, userRepo)
	paymentService := service.NewPaymentService(paymentRepo, userRepo)
	messageService := service.NewMessageService(messageRepo)
	reminderService := service.NewReminderService(reminderRepo)
	ratingService := service.NewRatingService(ratingRepo, userRepo, trainerRepo)

	// --- Reminder Scheduler ---
	log.Printf("Starting reminder scheduler (%q)...", cfg.Reminder.CronSpec)
	stopScheduler, err := reminderService.StartScheduler(cfg.Reminder.CronSpec)
	if err != nil {
		log.Fatalf("FATAL: Could not start reminder scheduler: %v", err)
	}
	defer stopScheduler()

	// --- Initialize Gin Engine ---
	// gin.SetMode(gin.ReleaseMode) // Uncomment for production
	router := gin.Default() // Includes Logger and Recovery middleware

	// --- Setup Routes ---
	log.Println("Setting up API routes...")
	api.SetupRoutes(router, cfg.JWT.Secret, cfg.Server.AllowedOrigin, api.Services{
		Auth:      authService,
		User:      userService,
		Trainer:   trainerService,
		Booking:   bookingService,
		Nutrition: nutritionService,
		Workout:   workoutService,
		Payment:   paymentService,
		Message:   messageService,
		Reminder:  reminderService,
		Rating:    ratingService,
	})

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	log.Printf("Server starting on %s", cfg.Server.Address)

	// --- Graceful Shutdown ---
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("FATAL: ListenAndServe Error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatalf("FATAL: Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting.")
}
