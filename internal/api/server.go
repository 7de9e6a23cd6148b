package api

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"github.com/Dustin-Locke/HealthAndwellness/internal/service"
)

type Server struct {
	mx              *chi.Mux
	srv             *http.Server
	userService     service.UserServiceI
	exerciseService service.ExerciseServiceI
	workoutService  service.WorkoutServiceI
	weighInService  service.WeighInServiceI
	foodService     service.FoodServiceI
	mealService     service.MealServiceI
	reminderService service.ReminderServiceI
	jwtService      JWTServiceI
	allowedOrigins  []string
}

type ServicesList struct {
	UserService     service.UserServiceI
	ExerciseService service.ExerciseServiceI
	WorkoutService  service.WorkoutServiceI
	WeighInService  service.WeighInServiceI
	FoodService     service.FoodServiceI
	MealService     service.MealServiceI
	ReminderService service.ReminderServiceI
	JwtService      JWTServiceI
	// Origins allowed by CORS, empty means any
	AllowedOrigins []string
}

func New(servicesOptions *ServicesList) *Server {
	s := &Server{
		mx:              chi.NewMux(),
		userService:     servicesOptions.UserService,
		exerciseService: servicesOptions.ExerciseService,
		workoutService:  servicesOptions.WorkoutService,
		weighInService:  servicesOptions.WeighInService,
		foodService:     servicesOptions.FoodService,
		mealService:     servicesOptions.MealService,
		reminderService: servicesOptions.ReminderService,
		jwtService:      servicesOptions.JwtService,
		allowedOrigins:  servicesOptions.AllowedOrigins,
	}
	s.mountEndpoints()
	return s
}

func (s *Server) mountEndpoints() {
	s.mx.Use(s.RequestIDMiddleware, s.SettingUpLoggerMiddleware, s.RecovererMiddleware)
	s.mx.Handle("/metrics", promhttp.Handler())
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", s.Register)
			r.Post("/pre-register", s.PreRegister)
			r.Post("/verify-code", s.VerifyCode)
			r.Post("/complete-registration", s.CompleteRegistration)
			r.Post("/login", s.Login)
			r.Post("/forgot-password", s.ForgotPassword)
			r.Post("/verify-reset-code", s.VerifyResetCode)
			r.Post("/reset-password", s.ResetPassword)
			r.Group(func(r chi.Router) {
				r.Use(s.AuthMiddleware, s.LoggerExtensionMiddleware)
				r.Post("/send-verification-email", s.SendEmailVerification)
				r.Post("/verify-email", s.VerifyEmail)
			})
		})
		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware, s.LoggerExtensionMiddleware)

			r.Get("/profile/me", s.GetProfile)
			r.Put("/profile", s.UpdateProfile)
			r.Put("/me/password", s.ChangePassword)
			r.Delete("/me", s.DeleteAccount)

			r.Post("/exercises", s.CreateExercise)
			r.Get("/exercises", s.ListExercises)
			r.Get("/exercises/by-name/{name}", s.GetExerciseByName)
			r.Get("/exercises/{id}", s.GetExercise)
			r.Put("/exercises/{id}", s.UpdateExercise)
			r.Delete("/exercises/{id}", s.DeleteExercise)

			r.Post("/workouts", s.CreateWorkout)
			r.Get("/workouts", s.ListWorkouts)
			r.Get("/workouts/{id}", s.GetWorkout)
			r.Put("/workouts/{id}", s.UpdateWorkout)
			r.Delete("/workouts/{id}", s.DeleteWorkout)

			r.Post("/weigh-ins", s.CreateWeighIn)
			r.Get("/weigh-ins", s.ListWeighIns)
			r.Get("/weigh-ins/{id}", s.GetWeighIn)
			r.Put("/weigh-ins/{id}", s.UpdateWeighIn)
			r.Delete("/weigh-ins/{id}", s.DeleteWeighIn)

			r.Post("/foods", s.CreateFood)
			r.Get("/foods", s.ListFoods)
			r.Get("/foods/{id}", s.GetFood)
			r.Put("/foods/{id}", s.UpdateFood)
			r.Delete("/foods/{id}", s.DeleteFood)

			r.Post("/meals", s.CreateMeal)
			r.Get("/meals", s.ListMeals)
			r.Get("/meals/{id}", s.GetMeal)
			r.Put("/meals/{id}", s.UpdateMeal)
			r.Delete("/meals/{id}", s.DeleteMeal)
			r.Get("/meals/{id}/calories", s.MealCalories)
			r.Get("/meals/{id}/foods", s.ListMealFoods)
			r.Post("/meals/{id}/foods", s.AddMealFood)
			r.Put("/meal-foods/{id}", s.UpdateMealFood)
			r.Delete("/meal-foods/{id}", s.RemoveMealFood)

			r.Post("/reminders", s.CreateReminder)
			r.Get("/reminders", s.ListReminders)
			r.Get("/reminders/upcoming", s.UpcomingReminders)
			r.Get("/reminders/{id}", s.GetReminder)
			r.Put("/reminders/{id}", s.UpdateReminder)
			r.Delete("/reminders/{id}", s.DeleteReminder)
			r.Post("/reminders/{id}/notified", s.MarkReminderNotified)
			r.Get("/reminders/{id}/status", s.ReminderStatus)
		})
	})
}

// Handler wraps the router with CORS.
func (s *Server) Handler() http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins:   s.allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}).Handler(s.mx)
}

// Run blocks until the server stops. After Shutdown it returns http.ErrServerClosed.
func (s *Server) Run(address string) error {
	s.srv = &http.Server{
		Addr:              address,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return s.srv.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.srv == nil {
		return nil
	}
	return s.srv.Shutdown(ctx)
}
