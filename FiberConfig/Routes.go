package FiberConfig

import (
	"fmt"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/template/html"
	"gorm.io/gorm"

	"Sparkle/Controllers"
	"Sparkle/Models"
	"Sparkle/PreviewData"
	"Sparkle/Reports"
	"Sparkle/middleware"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// Initialize handlers
	premiseController := Controllers.NewPremiseController(db)
	serviceController := Controllers.NewServiceController(db)
	bookingController := Controllers.NewBookingController(db)
	feedbackController := Controllers.NewFeedbackController(db)
	inspectionController := Controllers.NewInspectionController(db)
	reportController := Controllers.NewReportController(db, Reports.LoadCompanyInfo("company.json5"))

	// Auth
	app.Post("/api/Register", Controllers.Register)
	app.Post("/api/Login", Controllers.Login)
	app.Get("/api/User", middleware.Verify(1), Controllers.User)
	app.Post("/api/Logout", Controllers.Logout)
	app.Get("/api/validate-token", middleware.Verify(1), Controllers.ValidateToken)
	app.Post("/api/UpdateToken", middleware.Verify(1), Models.UpdateToken)

	api := app.Group("/api")

	// Premise routes
	premises := api.Group("/premises", middleware.Verify(1))
	premises.Get("/", premiseController.GetPremises)
	premises.Get("/:id", premiseController.GetPremise)
	premises.Post("/", middleware.Verify(3), premiseController.CreatePremise)
	premises.Put("/:id", middleware.Verify(3), premiseController.UpdatePremise)
	premises.Delete("/:id", middleware.Verify(3), premiseController.DeletePremise)
	premises.Post("/:id/photo", middleware.Verify(3), premiseController.UploadPremisePhoto)

	// Report pipeline routes - premise list feeds the reports screen
	premises.Get("/:id/reports", middleware.Verify(2), reportController.GetPremiseReports)

	// Service catalogue
	services := api.Group("/services")
	services.Get("/", serviceController.GetServices)
	services.Get("/:id", serviceController.GetService)
	services.Post("/", middleware.Verify(3), serviceController.CreateService)
	services.Put("/:id", middleware.Verify(3), serviceController.UpdateService)
	services.Delete("/:id", middleware.Verify(3), serviceController.DeleteService)

	// Booking routes
	bookings := api.Group("/bookings", middleware.Verify(1))
	bookings.Get("/", bookingController.GetBookings)
	bookings.Get("/:id", bookingController.GetBooking)
	bookings.Post("/", bookingController.CreateBooking)
	bookings.Patch("/:id/status", bookingController.UpdateBookingStatus)
	bookings.Delete("/:id", bookingController.DeleteBooking)

	// Feedback routes
	feedback := api.Group("/feedback", middleware.Verify(1))
	feedback.Post("/", feedbackController.CreateFeedback)
	feedback.Get("/", middleware.Verify(3), feedbackController.GetFeedback)
	feedback.Delete("/:id", middleware.Verify(3), feedbackController.DeleteFeedback)

	// Inspection report routes
	inspections := api.Group("/inspections", middleware.Verify(2))
	inspections.Post("/", inspectionController.CreateInspection)
	inspections.Get("/:id", inspectionController.GetInspection)
	inspections.Delete("/:id", middleware.Verify(3), inspectionController.DeleteInspection)

	// Export routes - capability-gated inside the controller
	reports := api.Group("/reports", middleware.Verify(2))
	reports.Get("/:id/export/html", reportController.ExportHTML)
	reports.Get("/:id/export/xlsx", reportController.ExportXLSX)

	// Server-rendered admin overview
	app.Get("/ShowAllReports", middleware.Verify(3), PreviewData.ShowAllReports)
}

func FiberConfig() {
	fmt.Println("Server Up...")
	engine := html.New("./Templates", ".html")
	app := fiber.New(fiber.Config{
		Views: engine,
	})
	app.Use(middleware.RequestLogger())
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestCompression,
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins:     "*",
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS,PATCH",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Requested-With",
		AllowCredentials: true,
		MaxAge:           300,
	}))

	SetupRoutes(app, Models.DB)

	// Serve uploaded site photos and static assets
	app.Static("/static", "static/")
	app.Static("/PremisePhotos", "./PremisePhotos", fiber.Static{Compress: true, CacheDuration: time.Second * 10})

	port := os.Getenv("PORT")
	if port == "" {
		port = "3001"
	}
	app.Listen(":" + port)
}
