package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/tomato-writer-2024/PulseOpti-HR-sub007/internal/config"
	appHTTP "github.com/tomato-writer-2024/PulseOpti-HR-sub007/internal/handler/http"
	"github.com/tomato-writer-2024/PulseOpti-HR-sub007/internal/pkg/database"
	"github.com/tomato-writer-2024/PulseOpti-HR-sub007/internal/pkg/inference"
	"github.com/tomato-writer-2024/PulseOpti-HR-sub007/internal/pkg/jwt"
	"github.com/tomato-writer-2024/PulseOpti-HR-sub007/internal/repository/postgresql"
	featureService "github.com/tomato-writer-2024/PulseOpti-HR-sub007/internal/service/feature"
	turnoverService "github.com/tomato-writer-2024/PulseOpti-HR-sub007/internal/service/turnover"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	performanceRepo := postgresql.NewPerformanceRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	interviewRepo := postgresql.NewInterviewRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret)

	chatModel, err := inference.NewChatModel(context.Background(), cfg.Inference)
	if err != nil {
		log.Fatal("Failed to initialize inference chat model:", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	extractor := featureService.NewFeatureExtractor(employeeRepo, performanceRepo, attendanceRepo, interviewRepo)
	turnoverSvc := turnoverService.NewTurnoverService(
		employeeRepo,
		extractor,
		chatModel,
		cfg.Inference.FallbackPolicy,
		cfg.Batch.Concurrency,
		logger,
	)

	turnoverHandler := appHTTP.NewTurnoverHandler(turnoverSvc)

	router := appHTTP.NewRouter(JWTService, turnoverHandler, cfg.App.Env)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
