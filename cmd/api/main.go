// @title Health and wellness API
// @description API for tracking workouts, weigh-ins, meals and reminders
// @BasePath /api/v1
// @schemes http
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Dustin-Locke/HealthAndwellness/internal/api"
	"github.com/Dustin-Locke/HealthAndwellness/internal/jobs"
	"github.com/Dustin-Locke/HealthAndwellness/internal/repository"
	"github.com/Dustin-Locke/HealthAndwellness/internal/scheduler"
	"github.com/Dustin-Locke/HealthAndwellness/internal/service"
	"github.com/Dustin-Locke/HealthAndwellness/pkg/cleanup"
	"github.com/Dustin-Locke/HealthAndwellness/pkg/config"
	jwtservice "github.com/Dustin-Locke/HealthAndwellness/pkg/jwt_service"
	"github.com/Dustin-Locke/HealthAndwellness/pkg/mailer"
)

const shutdownTimeout = 10 * time.Second

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}
	pool := repository.NewPool(&dbCfg)
	usersRepo := repository.NewUsersRepoWithConn(pool)
	exercisesRepo := repository.NewExercisesRepoWithConn(pool)
	remindersRepo := repository.NewRemindersRepoWithConn(pool)

	loc, err := time.LoadLocation(cfg.GetStringOr("REMINDER_TIMEZONE", "UTC"))
	if err != nil {
		log.Fatal("loading reminder timezone error: " + err.Error())
	}

	var m mailer.Mailer
	if host := cfg.GetString("SMTP_HOST"); host != "" {
		m = mailer.NewSMTPMailer(mailer.SMTPConfig{
			Host:     host,
			Port:     cfg.GetStringOr("SMTP_PORT", "587"),
			Sender:   cfg.GetString("SMTP_SENDER"),
			Password: cfg.GetString("SMTP_PASSWORD"),
		})
	} else {
		logger.Warn("SMTP_HOST is not set, e-mails will only be logged")
		m = mailer.NewLogMailer(logger)
	}

	serv := api.New(&api.ServicesList{
		UserService: service.NewUserService(usersRepo,
			service.WithMailer(m),
			service.WithCodeTTL(cfg.GetDuration("VERIFICATION_CODE_TTL", 15*time.Minute)),
		),
		ExerciseService: service.NewExerciseService(exercisesRepo),
		WorkoutService:  service.NewWorkoutService(repository.NewUserExercisesRepoWithConn(pool), exercisesRepo, usersRepo),
		WeighInService:  service.NewWeighInService(repository.NewWeighInsRepoWithConn(pool), usersRepo),
		FoodService:     service.NewFoodService(repository.NewFoodsRepoWithConn(pool)),
		MealService:     service.NewMealService(repository.NewMealsRepoWithConn(pool)),
		ReminderService: service.NewReminderService(remindersRepo, loc),
		JwtService:      jwtservice.New(cfg.GetString("JWT_SECRET")),
		AllowedOrigins:  cfg.GetList("CORS_ALLOWED_ORIGINS", []string{"*"}),
	})

	job := jobs.NewReminderJob(remindersRepo, m, jobs.WithLocation(loc), jobs.WithLogger(logger))
	c, err := scheduler.Start(scheduler.Config{
		Spec:     cfg.GetStringOr("REMINDER_CRON", scheduler.DefaultSpec),
		Location: loc,
		Timeout:  5 * time.Minute,
		Logger:   logger,
	}, job)
	if err != nil {
		log.Fatal("starting reminder scheduler error: " + err.Error())
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	go func() {
		address := cfg.GetString("API_ADDRESS")
		logger.Info("server started", slog.String("address", address))
		if err := serv.Run(address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.String("error", err.Error()))
			stop()
		}
	}()
	<-ctx.Done()

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := serv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.String("error", err.Error()))
	}
	<-c.Stop().Done()
	cleanup.CleanUp()
}
