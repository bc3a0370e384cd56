package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/worklens/worklens-backend-go/internal/config"
	appHTTP "github.com/worklens/worklens-backend-go/internal/handler/http"
	"github.com/worklens/worklens-backend-go/internal/pkg/cron"
	"github.com/worklens/worklens-backend-go/internal/pkg/database"
	"github.com/worklens/worklens-backend-go/internal/pkg/jwt"
	"github.com/worklens/worklens-backend-go/internal/repository/postgresql"
	idleService "github.com/worklens/worklens-backend-go/internal/service/idle"
	reportService "github.com/worklens/worklens-backend-go/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(context.Background(), cfg.DatabaseURL(), int32(cfg.Database.MaxConns))
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	factRepo := postgresql.NewFactRepository(db)
	idleRepo := postgresql.NewIdleRepository(db)
	referenceRepo := postgresql.NewReferenceRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	reportSvc := reportService.NewReportService(factRepo)
	idleSvc := idleService.NewIdleService(idleRepo, referenceRepo, cfg.Idle.ThresholdMinutes, cfg.Idle.PendingFloorMinutes)

	scheduler := cron.NewScheduler()
	idleJobs := cron.NewIdleDetectionJobs(
		idleRepo,
		idleSvc,
		referenceRepo.ListOrgIDs,
		time.Duration(cfg.Idle.SweepLookbackDays)*24*time.Hour,
	)
	idleJobs.RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	reportHandler := appHTTP.NewReportHandler(reportSvc)
	idleHandler := appHTTP.NewIdleHandler(idleSvc)
	referenceHandler := appHTTP.NewReferenceHandler(referenceRepo)

	router := appHTTP.NewRouter(
		JWTService,
		reportHandler,
		idleHandler,
		referenceHandler,
		cfg.App.Env,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
