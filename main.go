package main

import (
	"log"
	"os"

	"github.com/BiblioCore/BiblioCore-Backend/src/db"
	"github.com/BiblioCore/BiblioCore-Backend/src/middleware"
	"github.com/BiblioCore/BiblioCore-Backend/src/models"
	"github.com/BiblioCore/BiblioCore-Backend/src/routes"
	"github.com/BiblioCore/BiblioCore-Backend/src/seed"
	"github.com/BiblioCore/BiblioCore-Backend/src/services"
	"github.com/BiblioCore/BiblioCore-Backend/src/workers"
	"github.com/gin-gonic/gin"
)

func main() {

	// Database connection
	db, err := db.Connect()
	if err != nil {
		log.Fatalf("Error connecting to database: %v\n", err)
	}

	// Auto-migrate models
	if err := db.AutoMigrate(
		&models.StaffModel{},
		&models.ReaderModel{},
		&models.LibraryCardModel{},
		&models.BookTitleModel{},
		&models.BookCopyModel{},
		&models.LoanTransactionModel{},
		&models.LoanDetailModel{},
		&models.PaymentModel{},
		&models.ReservationModel{},
		&models.SystemSettingModel{},
	); err != nil {
		log.Fatalf("Error during auto-migration: %v\n", err)
	}

	// JWT secret setup
	middleware.SetSecretKey(os.Getenv("JWT_SECRET"))

	// Port and host setup
	host := os.Getenv("SERVER_HOST")
	if host == "" {
		host = ":8080"
	}

	// Gin router setup
	router := gin.Default()
	router.Use(middleware.SetupCORS())

	// Services setup
	cardLocks := services.NewCardLocks()
	settingService := services.NewSettingService(db)
	reservationService := services.NewReservationService(db)
	loanService := services.NewLoanService(db, settingService, cardLocks)
	renewalService := services.NewRenewalService(db, settingService)
	returnService := services.NewReturnService(db, settingService, cardLocks, reservationService)
	bookService := services.NewBookService(db)
	readerService := services.NewReaderService(db)
	cardService := services.NewCardService(db, cardLocks)
	paymentService := services.NewPaymentService(db)
	staffService := services.NewStaffService(db)
	reportService := services.NewReportService(db)

	// Seed default settings and admin account
	if os.Getenv("SEED") == "true" {
		seed.Seed(db)
	}

	// Routes setup
	routes.SetupStaffRoutes(router, staffService)
	routes.SetupBookRoutes(router, bookService)
	routes.SetupReaderRoutes(router, readerService)
	routes.SetupCardRoutes(router, cardService)
	routes.SetupLoanRoutes(router, loanService, renewalService, returnService)
	routes.SetupReservationRoutes(router, reservationService)
	routes.SetupPaymentRoutes(router, paymentService)
	routes.SetupSettingRoutes(router, settingService)
	routes.SetupReportRoutes(router, reportService)

	router.GET("/", func(c *gin.Context) {
		c.String(200, "BiblioCore backend is up")
	})

	// Background overdue sweep
	overdueWorker := workers.NewOverdueWorker(db)
	overdueWorker.Start()

	// Server run
	if err := router.Run(host); err != nil {
		log.Fatalf("Error starting server on %s: %v\n", host, err)
	}
}
