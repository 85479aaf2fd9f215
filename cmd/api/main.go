package main

import (
	"fmt"
	"net/http"

	"github.com/timepick-app/timepick-backend-go/internal/config"
	appHTTP "github.com/timepick-app/timepick-backend-go/internal/handler/http"
	"github.com/timepick-app/timepick-backend-go/internal/pkg/cache"
	"github.com/timepick-app/timepick-backend-go/internal/pkg/cron"
	"github.com/timepick-app/timepick-backend-go/internal/pkg/database"
	"github.com/timepick-app/timepick-backend-go/internal/pkg/jwt"
	"github.com/timepick-app/timepick-backend-go/internal/repository/postgresql"
	applicationService "github.com/timepick-app/timepick-backend-go/internal/service/application"
	availabilityService "github.com/timepick-app/timepick-backend-go/internal/service/availability"
	jobService "github.com/timepick-app/timepick-backend-go/internal/service/job"
	matchingService "github.com/timepick-app/timepick-backend-go/internal/service/matching"
	payrollService "github.com/timepick-app/timepick-backend-go/internal/service/payroll"
	shiftService "github.com/timepick-app/timepick-backend-go/internal/service/shift"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn, cfg.Database.MaxConns, cfg.Database.MinConns)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	availabilityRepo := postgresql.NewAvailabilityRepository(db)
	jobRepo := postgresql.NewJobRepository(db)
	appliedJobRepo := postgresql.NewAppliedJobRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	matchCache := cache.NewRedisCache(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)

	matchingSvc := matchingService.NewMatchingService(availabilityRepo, jobRepo, matchCache)
	availabilitySvc := availabilityService.NewAvailabilityService(availabilityRepo, matchingSvc)
	jobSvc := jobService.NewJobService(jobRepo)
	applicationSvc := applicationService.NewApplicationService(appliedJobRepo, jobRepo)
	shiftSvc := shiftService.NewShiftService(shiftRepo)
	payrollSvc := payrollService.NewPayrollService(shiftRepo)

	availabilityHandler := appHTTP.NewAvailabilityHandler(availabilitySvc)
	jobHandler := appHTTP.NewJobHandler(jobSvc, matchingSvc)
	applicationHandler := appHTTP.NewApplicationHandler(applicationSvc)
	shiftHandler := appHTTP.NewShiftHandler(shiftSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)

	scheduler := cron.NewScheduler()
	postingJobs := cron.NewPostingJobs(jobRepo)
	postingJobs.RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		jwtService,
		availabilityHandler,
		jobHandler,
		applicationHandler,
		shiftHandler,
		payrollHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
