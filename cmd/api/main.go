package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/edutrack/edutrack-backend-go/internal/config"
	appHTTP "github.com/edutrack/edutrack-backend-go/internal/handler/http"
	"github.com/edutrack/edutrack-backend-go/internal/pkg/database"
	"github.com/edutrack/edutrack-backend-go/internal/pkg/email"
	"github.com/edutrack/edutrack-backend-go/internal/pkg/jwt"
	"github.com/edutrack/edutrack-backend-go/internal/pkg/oauth"
	"github.com/edutrack/edutrack-backend-go/internal/pkg/sheets"
	"github.com/edutrack/edutrack-backend-go/internal/repository/postgresql"
	sheetsRepo "github.com/edutrack/edutrack-backend-go/internal/repository/sheets"
	applicationService "github.com/edutrack/edutrack-backend-go/internal/service/application"
	attendanceService "github.com/edutrack/edutrack-backend-go/internal/service/attendance"
	serviceAuth "github.com/edutrack/edutrack-backend-go/internal/service/auth"
	rosterService "github.com/edutrack/edutrack-backend-go/internal/service/roster"
	userService "github.com/edutrack/edutrack-backend-go/internal/service/user"
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

	userRepo := postgresql.NewUserRepository(db)
	rosterRepo := postgresql.NewRosterRepository(db)
	applicationRepo := postgresql.NewApplicationRepository(db)
	JWTRepository := postgresql.NewJWTRepository(db)

	ledgerClient := sheets.NewClient(cfg.Ledger)
	ledgerRepo := sheetsRepo.NewLedgerRepository(ledgerClient)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	GoogleService := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)
	emailService, err := email.NewEmailService(cfg.SMTP)
	if err != nil {
		log.Fatal("Failed to initialize email service:", err)
	}

	authService := serviceAuth.NewAuthService(db, userRepo, JWTService, JWTRepository)
	attendanceSvc := attendanceService.NewAttendanceService(ledgerRepo, userRepo, rosterRepo)
	rosterSvc := rosterService.NewRosterService(rosterRepo, ledgerRepo)
	userSvc := userService.NewUserService(db, userRepo)
	applicationSvc := applicationService.NewApplicationService(
		db,
		applicationRepo,
		userRepo,
		emailService,
		cfg.App.FrontendURL,
	)

	authHandler := appHTTP.NewAuthHandler(JWTService, authService, GoogleService, cfg.App.FrontendURL)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	rosterHandler := appHTTP.NewRosterHandler(rosterSvc)
	userHandler := appHTTP.NewUserHandler(userSvc)
	applicationHandler := appHTTP.NewApplicationHandler(applicationSvc)

	router := appHTTP.NewRouter(
		JWTService,
		authHandler,
		attendanceHandler,
		rosterHandler,
		userHandler,
		applicationHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
