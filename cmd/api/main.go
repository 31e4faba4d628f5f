package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"internbridge/internal/app"
	"internbridge/internal/config"
	"internbridge/internal/database"
	apphttp "internbridge/internal/http"
	"internbridge/internal/http/handlers"
	"internbridge/internal/http/metrics"
	"internbridge/internal/http/response"
	"internbridge/internal/observability"
	"internbridge/internal/repository/postgres"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	logger := observability.NewLogger(cfg.LogLevel)
	slog.SetDefault(logger)

	db := database.NewPostgres(database.PostgresConfig{
		DSN:             cfg.PostgresDSN,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxIdle:     cfg.DBConnMaxIdle,
		ConnMaxLifetime: cfg.DBConnMaxLife,
	})
	defer db.Close()

	studentRepo := postgres.NewStudentRepository(db)
	companyRepo := postgres.NewCompanyRepository(db)
	internshipRepo := postgres.NewInternshipRepository(db)
	applicationRepo := postgres.NewApplicationRepository(db)
	notificationRepo := postgres.NewNotificationRepository(db)

	notificationService := app.NewNotificationService(notificationRepo, logger)
	applicationService := app.NewApplicationService(applicationRepo, studentRepo, internshipRepo, companyRepo, notificationService)
	companyService := app.NewCompanyService(companyRepo)
	internshipService := app.NewInternshipService(internshipRepo, companyRepo)
	studentService := app.NewStudentService(studentRepo)

	collector := metrics.NewCollector()
	response.SetErrorCollector(collector)

	router := apphttp.NewRouter(apphttp.RouterDependencies{
		ApplicationHandler:  handlers.NewApplicationHandler(applicationService),
		NotificationHandler: handlers.NewNotificationHandler(notificationService),
		CompanyHandler:      handlers.NewCompanyHandler(companyService),
		InternshipHandler:   handlers.NewInternshipHandler(internshipService),
		StudentHandler:      handlers.NewStudentHandler(studentService),
		Metrics:             collector,
		Logger:              logger,
		RequestTimeout:      cfg.RequestTimeout,
	})
	server := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("API started on :" + cfg.HTTPPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Fatal(err)
	}
}
