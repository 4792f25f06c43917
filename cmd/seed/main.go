package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/ymerta/vardiya/internal/config"
	"github.com/ymerta/vardiya/internal/fixtures"
	"github.com/ymerta/vardiya/internal/pkg/database"
	"github.com/ymerta/vardiya/internal/pkg/sse"
	"github.com/ymerta/vardiya/internal/repository/postgresql"
	employeeService "github.com/ymerta/vardiya/internal/service/employee"
	shiftService "github.com/ymerta/vardiya/internal/service/shift"
	timesheetService "github.com/ymerta/vardiya/internal/service/timesheet"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		os.Exit(1)
	}
	defer db.Close()

	loc := cfg.Location()

	employeeRepo := postgresql.NewEmployeeRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)
	timesheetRepo := postgresql.NewTimesheetRepository(db)

	hub := sse.NewHub()
	timesheetSvc := timesheetService.NewTimesheetService(db, timesheetRepo, shiftRepo, employeeRepo, loc)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, hub)
	shiftSvc := shiftService.NewShiftService(shiftRepo, employeeRepo, timesheetSvc, hub, loc)

	result, err := fixtures.SeedDemoData(ctx, employeeSvc, shiftSvc)
	if err != nil {
		fmt.Println("Seed error:", err)
		os.Exit(1)
	}

	fmt.Printf("Seeded %d employees and %d shifts\n", result.EmployeeCount, result.ShiftCount)
}
