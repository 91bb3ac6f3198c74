package FiberConfig

import (
	"DocuKeeper/Controllers"
	"DocuKeeper/Models"
	"DocuKeeper/middleware"
	"fmt"
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// Initialize handlers
	clientController := Controllers.NewClientController(db)
	documentController := Controllers.NewDocumentController(db)
	poController := Controllers.NewPurchaseOrderController(db)
	invoiceController := Controllers.NewInvoiceController(db)
	userController := Controllers.NewUserController(db)
	dashboardController := Controllers.NewDashboardController(db)
	reportController := Controllers.NewReportController(db)

	// API group
	api := app.Group("/api")

	// Session routes
	api.Post("/Login", Controllers.Login)
	api.Post("/Register", Controllers.Register)
	api.Post("/Logout", Controllers.Logout)
	api.Get("/User", Controllers.User)
	api.Get("/validate-token", Controllers.ValidateToken)

	// Clients and documents share the documents module permission
	clients := api.Group("/clients", middleware.Verify(Models.ModuleDocuments))
	clients.Get("/", clientController.GetClients)
	clients.Post("/", clientController.CreateClient)
	clients.Get("/:id", clientController.GetClient)
	clients.Put("/:id", clientController.UpdateClient)
	clients.Delete("/:id", clientController.DeleteClient)

	documents := api.Group("/documents", middleware.Verify(Models.ModuleDocuments))
	documents.Get("/", documentController.GetDocuments)
	documents.Post("/", documentController.CreateDocument)
	documents.Get("/:id", documentController.GetDocument)
	documents.Get("/:id/accrual", documentController.GetDocumentAccrual)
	documents.Put("/:id", documentController.UpdateDocument)
	documents.Delete("/:id", documentController.DeleteDocument)

	// POs and their invoices are gated together
	pos := api.Group("/purchase-orders", middleware.Verify(Models.ModulePurchaseOrders))
	pos.Get("/", poController.GetPurchaseOrders)
	pos.Post("/", poController.CreatePurchaseOrder)
	pos.Get("/:id", poController.GetPurchaseOrder)
	pos.Get("/:id/balance", poController.GetPurchaseOrderBalance)
	pos.Put("/:id", poController.UpdatePurchaseOrder)
	pos.Delete("/:id", poController.DeletePurchaseOrder)

	invoices := api.Group("/invoices", middleware.Verify(Models.ModulePurchaseOrders))
	invoices.Get("/", invoiceController.GetInvoices)
	invoices.Post("/", invoiceController.CreateInvoice)
	invoices.Get("/:id", invoiceController.GetInvoice)
	invoices.Put("/:id", invoiceController.UpdateInvoice)
	invoices.Delete("/:id", invoiceController.DeleteInvoice)

	// Users admin screen
	users := api.Group("/users", middleware.Verify(Models.ModuleUsers))
	users.Get("/", userController.FetchUsers)
	users.Post("/", userController.RegisterUser)
	users.Put("/:id", userController.UpdateUser)
	users.Delete("/:id", userController.DeleteUser)

	// Dashboard only needs a valid session
	dashboard := api.Group("/dashboard", middleware.Authenticated())
	dashboard.Get("/stats", dashboardController.GetStats)
	dashboard.Get("/expiring", dashboardController.GetExpiring)

	// Reports read document data, same gate as documents
	reports := api.Group("/reports", middleware.Verify(Models.ModuleDocuments))
	reports.Get("/contracts.xlsx", reportController.ExportContracts)
}

func FiberConfig() {
	fmt.Println("Server Up...")
	app := fiber.New()
	app.Use(middleware.RequestLogger())
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestCompression, // 2
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigins(),
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS,PATCH",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Requested-With",
		AllowCredentials: true, // Important for cookies
		MaxAge:           300,  // Max age for preflight requests caching (5 minutes)
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	SetupRoutes(app, Models.DB)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := app.Listen(":" + port); err != nil {
		log.Fatal(err)
	}
}

func corsOrigins() string {
	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		return origins
	}
	return "http://localhost:5173"
}
