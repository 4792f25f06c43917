package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ymerta/vardiya/internal/config"
	appHTTP "github.com/ymerta/vardiya/internal/handler/http"
	"github.com/ymerta/vardiya/internal/pkg/cron"
	"github.com/ymerta/vardiya/internal/pkg/database"
	"github.com/ymerta/vardiya/internal/pkg/jwt"
	"github.com/ymerta/vardiya/internal/pkg/sse"
	"github.com/ymerta/vardiya/internal/repository/postgresql"
	authService "github.com/ymerta/vardiya/internal/service/auth"
	employeeService "github.com/ymerta/vardiya/internal/service/employee"
	exportService "github.com/ymerta/vardiya/internal/service/export"
	reportService "github.com/ymerta/vardiya/internal/service/report"
	shiftService "github.com/ymerta/vardiya/internal/service/shift"
	timesheetService "github.com/ymerta/vardiya/internal/service/timesheet"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		os.Exit(1)
	}
	defer db.Close()

	loc := cfg.Location()

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)
	timesheetRepo := postgresql.NewTimesheetRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	hub := sse.NewHub()

	timesheetSvc := timesheetService.NewTimesheetService(db, timesheetRepo, shiftRepo, employeeRepo, loc)
	authSvc := authService.NewAuthService(userRepo, jwtService)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, hub)
	shiftSvc := shiftService.NewShiftService(shiftRepo, employeeRepo, timesheetSvc, hub, loc)
	reportSvc := reportService.NewReportService(shiftRepo, employeeRepo, timesheetSvc, loc, cfg.Shop.Name)
	exportSvc := exportService.NewExportService()

	scheduler := cron.NewScheduler()
	scheduler.AddJob("timesheet-reconcile", time.Hour, func(ctx context.Context) error {
		return timesheetSvc.ReconcileMonth(ctx, time.Now().In(loc))
	})
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		cfg,
		jwtService,
		appHTTP.NewAuthHandler(authSvc, jwtService),
		appHTTP.NewEmployeeHandler(employeeSvc),
		appHTTP.NewShiftHandler(shiftSvc),
		appHTTP.NewReportHandler(reportSvc, exportSvc),
		appHTTP.NewEventsHandler(hub, jwtService),
	)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: router,
	}

	go func() {
		slog.Info("Server starting", "port", cfg.App.Port, "env", cfg.App.Env)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Shutdown error", "error", err)
	}
}
