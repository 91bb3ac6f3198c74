package Controllers

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"DocuKeeper/Models"
)

// DashboardController serves the derived figures on the home screen.
type DashboardController struct {
	DB *gorm.DB
}

// NewDashboardController creates a new DashboardController
func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

// GetStats returns the widget counters: active clients, active documents,
// portfolio accrual over active documents and how many items expire
// within the horizon.
// GET /api/dashboard/stats
func (ctl *DashboardController) GetStats(ctx *fiber.Ctx) error {
	var activeClients int64
	if err := ctl.DB.Model(&Models.Client{}).Where("active = ?", true).Count(&activeClients).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	var docs []Models.Document
	if err := ctl.DB.Find(&docs).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	activeDocs := 0
	for i := range docs {
		if docs[i].Active {
			activeDocs++
		}
	}

	expiring := Models.ExpiringDocuments(docs, time.Now(), Models.DefaultExpirationHorizonDays)

	return ctx.JSON(fiber.Map{
		"clientesAtivos":   activeClients,
		"documentosAtivos": activeDocs,
		"valorAcumulado":   Models.PortfolioAccrual(docs),
		"aVencer":          len(expiring),
	})
}

// GetExpiring returns active documents and purchase orders ending within
// the horizon, earliest first, with urgency band and progress.
// GET /api/dashboard/expiring?horizon=
func (ctl *DashboardController) GetExpiring(ctx *fiber.Ctx) error {
	horizon := Models.DefaultExpirationHorizonDays
	if raw := ctx.Query("horizon"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "horizon must be a positive number of days"})
		}
		horizon = parsed
	}

	var docs []Models.Document
	if err := ctl.DB.Find(&docs).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	var pos []Models.PurchaseOrder
	if err := ctl.DB.Find(&pos).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	now := time.Now()
	return ctx.JSON(fiber.Map{
		"documents":      Models.ExpiringDocuments(docs, now, horizon),
		"purchaseOrders": Models.ExpiringPurchaseOrders(pos, now, horizon),
	})
}
