package api

import (
	"net/http"
	"time"

	"fitlife/fitness-backend/internal/domain"
	"fitlife/fitness-backend/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Services bundles everything SetupRoutes wires into handlers.
type Services struct {
	Auth      service.AuthService
	User      service.UserService
	Trainer   service.TrainerService
	Booking   service.BookingService
	Nutrition service.NutritionService
	Workout   service.WorkoutService
	Payment   service.PaymentService
	Message   service.MessageService
	Reminder  service.ReminderService
	Rating    service.RatingService
}

func SetupRoutes(router *gin.Engine, jwtSecret, allowedOrigin string, services Services) {

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{allowedOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	authHandler := NewAuthHandler(services.Auth)
	userHandler := NewUserHandler(services.User)
	trainerHandler := NewTrainerHandler(services.Trainer)
	appointmentHandler := NewAppointmentHandler(services.Booking)
	nutritionHandler := NewNutritionHandler(services.Nutrition, services.User)
	workoutHandler := NewWorkoutHandler(services.Workout, services.User)
	paymentHandler := NewPaymentHandler(services.Payment, services.User)
	messageHandler := NewMessageHandler(services.Message)
	reminderHandler := NewReminderHandler(services.Reminder)
	ratingHandler := NewRatingHandler(services.Rating)

	authMiddleware := AuthMiddleware(jwtSecret)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")
	{
		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
		}
	}

	protected := apiV1.Group("")
	protected.Use(authMiddleware)
	{
		// --- Profile ---
		userGroup := protected.Group("/users")
		{
			userGroup.GET("/me", userHandler.GetProfile)
			userGroup.PUT("/me", userHandler.UpdateProfile)
		}

		// --- Trainers ---
		trainerGroup := protected.Group("/trainers")
		{
			trainerGroup.GET("", trainerHandler.GetAllTrainers)
			trainerGroup.GET("/:id", trainerHandler.GetTrainerByID)
			trainerGroup.GET("/:id/ratings", ratingHandler.GetTrainerRatings)
			trainerGroup.POST("", RoleMiddleware(domain.RoleAdmin), trainerHandler.CreateTrainer)
			trainerGroup.PUT("/:id", RoleMiddleware(domain.RoleAdmin), trainerHandler.UpdateTrainer)
			trainerGroup.DELETE("/:id", RoleMiddleware(domain.RoleAdmin), trainerHandler.DeleteTrainer)
		}

		// --- Appointments (booking engine) ---
		appointmentGroup := protected.Group("/appointments")
		{
			appointmentGroup.POST("", appointmentHandler.CreateAppointment)
			appointmentGroup.GET("", appointmentHandler.GetAppointments)
			appointmentGroup.PUT("/:id/reschedule", appointmentHandler.RescheduleAppointment)
			appointmentGroup.PUT("/:id/cancel", appointmentHandler.CancelAppointment)
			appointmentGroup.PUT("/:id/respond", appointmentHandler.RespondToAppointment)
		}

		// --- Nutrition ---
		nutritionGroup := protected.Group("/nutrition")
		{
			nutritionGroup.POST("", nutritionHandler.CreateLog)
			nutritionGroup.GET("", nutritionHandler.GetLogs)
		}

		// --- Workouts ---
		workoutGroup := protected.Group("/workouts")
		{
			workoutGroup.POST("", workoutHandler.LogWorkouts)
			workoutGroup.GET("", workoutHandler.GetLog)
		}

		// --- Payments ---
		paymentGroup := protected.Group("/payments")
		{
			paymentGroup.POST("", paymentHandler.RecordPayment)
			paymentGroup.GET("", paymentHandler.GetPayments)
			paymentGroup.PUT("/:id/status", paymentHandler.UpdateStatus)
		}

		// --- Messages ---
		messageGroup := protected.Group("/messages")
		{
			messageGroup.POST("", messageHandler.SendMessage)
			messageGroup.GET("/:withId", messageHandler.GetConversation)
			messageGroup.PUT("/:id/read", messageHandler.MarkRead)
		}

		// --- Ratings ---
		ratingGroup := protected.Group("/ratings")
		{
			ratingGroup.POST("", ratingHandler.SubmitRating)
		}

		// --- Reminders ---
		reminderGroup := protected.Group("/reminders")
		{
			reminderGroup.POST("", reminderHandler.CreateReminder)
			reminderGroup.GET("", reminderHandler.GetReminders)
			reminderGroup.PUT("/:id/snooze", reminderHandler.SnoozeReminder)
			reminderGroup.DELETE("/:id", reminderHandler.DeleteReminder)
		}
	}
}
