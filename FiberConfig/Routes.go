package FiberConfig

import (
	"TravelPro/Controllers"
	"TravelPro/Models"
	"TravelPro/httperr"
	"TravelPro/middleware"
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// Initialize controllers
	saleController := Controllers.NewSaleController(db)
	saleStatsController := Controllers.NewSaleStatsController(db)
	paymentController := Controllers.NewPaymentController(db)
	supplierPaymentController := Controllers.NewSupplierPaymentController(db)
	clientController := Controllers.NewClientController(db)
	supplierController := Controllers.NewSupplierController(db)
	operatorController := Controllers.NewOperatorController(db)
	classificationController := Controllers.NewClassificationController(db)
	passengerController := Controllers.NewPassengerController(db)
	currencyRateController := Controllers.NewCurrencyRateController(db)
	exportController := Controllers.NewExportController(db)

	api := app.Group("/api")

	// Auth
	api.Post("/login", Controllers.Login)
	api.Post("/logout", Controllers.Logout)
	api.Get("/validate-token", middleware.Verify(), Controllers.ValidateToken)
	api.Get("/me", middleware.Verify(), Controllers.User)
	api.Post("/users", middleware.Verify(Models.RoleAdmin), Controllers.RegisterUser)
	api.Get("/users", middleware.Verify(Models.RoleAdmin), Controllers.FetchUsers)

	// Sale routes. Static paths must come before the :id routes.
	sales := api.Group("/sales")
	sales.Get("/total", middleware.Verify(), saleStatsController.GetSalesTotal)
	sales.Get("/stats", middleware.Verify(), saleStatsController.GetSalesStats)
	sales.Get("/stats-by-type", middleware.Verify(), saleStatsController.GetSalesStatsByType)
	sales.Get("/upcoming-departures", middleware.Verify(), saleStatsController.GetUpcomingDepartures)
	sales.Get("/sales-overview", middleware.Verify(), saleStatsController.GetSalesOverview)
	sales.Get("/export", middleware.Verify(Models.RoleAdmin), exportController.ExportSales)

	sales.Get("/", middleware.Verify(Models.RoleAdmin, Models.RoleSales), saleController.GetSales)
	sales.Post("/", middleware.Verify(Models.RoleSales, Models.RoleAdmin), saleController.CreateSale)
	sales.Get("/:id", middleware.Verify(), saleController.GetSale)
	sales.Put("/:id", middleware.Verify(Models.RoleSales, Models.RoleAdmin), saleController.UpdateSale)
	sales.Patch("/:id/status", middleware.Verify(Models.RoleSales, Models.RoleAdmin), saleController.UpdateSaleStatus)
	sales.Delete("/:id", middleware.Verify(), saleController.DeleteSale)
	sales.Get("/:id/payments", middleware.Verify(), paymentController.GetSalePayments)

	// Payment routes
	payments := api.Group("/payments", middleware.Verify())
	payments.Get("/", paymentController.GetPayments)
	payments.Post("/", paymentController.CreatePayment)
	payments.Get("/:id", paymentController.GetPayment)
	payments.Patch("/:id/status", paymentController.TogglePaymentStatus)
	payments.Delete("/:id", paymentController.DeletePayment)

	// Supplier payment routes, admin only
	supplierPayments := api.Group("/supplier-payments", middleware.Verify(Models.RoleAdmin))
	supplierPayments.Get("/", supplierPaymentController.GetSupplierPayments)
	supplierPayments.Post("/", supplierPaymentController.CreateSupplierPayment)
	supplierPayments.Put("/:id", supplierPaymentController.UpdateSupplierPayment)
	supplierPayments.Delete("/:id", supplierPaymentController.DeleteSupplierPayment)

	// Reference entities
	clients := api.Group("/clients", middleware.Verify())
	clients.Get("/", clientController.GetClients)
	clients.Post("/", clientController.CreateClient)
	clients.Get("/:id", clientController.GetClient)
	clients.Put("/:id", clientController.UpdateClient)
	clients.Delete("/:id", clientController.DeleteClient)

	suppliers := api.Group("/suppliers", middleware.Verify())
	suppliers.Get("/", supplierController.GetSuppliers)
	suppliers.Post("/", supplierController.CreateSupplier)
	suppliers.Get("/:id", supplierController.GetSupplier)
	suppliers.Put("/:id", supplierController.UpdateSupplier)
	suppliers.Delete("/:id", supplierController.DeleteSupplier)
	suppliers.Get("/:id/balance", middleware.Verify(Models.RoleAdmin), supplierPaymentController.GetSupplierBalance)
	suppliers.Get("/:id/sales", middleware.Verify(Models.RoleAdmin), supplierPaymentController.GetSupplierSales)

	operators := api.Group("/operators", middleware.Verify())
	operators.Get("/", operatorController.GetOperators)
	operators.Post("/", operatorController.CreateOperator)
	operators.Get("/:id", operatorController.GetOperator)
	operators.Put("/:id", operatorController.UpdateOperator)
	operators.Delete("/:id", operatorController.DeleteOperator)

	classifications := api.Group("/classifications", middleware.Verify())
	classifications.Get("/", classificationController.GetClassifications)
	classifications.Post("/", classificationController.CreateClassification)
	classifications.Get("/:id", classificationController.GetClassification)
	classifications.Put("/:id", classificationController.UpdateClassification)
	classifications.Delete("/:id", classificationController.DeleteClassification)

	passengers := api.Group("/passengers", middleware.Verify())
	passengers.Get("/", passengerController.GetPassengers)
	passengers.Post("/", passengerController.CreatePassenger)
	passengers.Get("/:id", passengerController.GetPassenger)
	passengers.Put("/:id", passengerController.UpdatePassenger)
	passengers.Delete("/:id", passengerController.DeletePassenger)

	// Currency rates, admin only
	rates := api.Group("/currency-rates", middleware.Verify(Models.RoleAdmin))
	rates.Get("/", currencyRateController.GetRates)
	rates.Post("/", currencyRateController.CreateRate)
	rates.Put("/:id", currencyRateController.UpdateRate)
	rates.Delete("/:id", currencyRateController.DeleteRate)
}

func FiberConfig() {
	log.Println("Server Up...")
	app := fiber.New(fiber.Config{
		ErrorHandler: httperr.ErrorHandler,
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

	port := os.Getenv("PORT")
	if port == "" {
		port = "3001"
	}
	app.Listen(":" + port)
}
