package Controllers

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"DocuKeeper/Models"
)

// InvoiceController handles faturamento-related API endpoints
type InvoiceController struct {
	DB *gorm.DB
}

// NewInvoiceController creates a new InvoiceController
func NewInvoiceController(db *gorm.DB) *InvoiceController {
	return &InvoiceController{DB: db}
}

type InvoiceRequest struct {
	PurchaseOrderID  uint    `json:"purchaseOrderId" validate:"required"`
	NFDate           string  `json:"dataNF" validate:"required"`
	NFNumber         string  `json:"numeroNF" validate:"required"`
	ServiceValue     float64 `json:"valorServico" validate:"gte=0"`
	PassthroughValue float64 `json:"valorRepasse" validate:"gte=0"`
	CompetencyMonth  string  `json:"mesCompetencia" validate:"required"` // YYYY-MM
	Description      string  `json:"descricao"`
}

// GetInvoices retrieves all invoices, optionally filtered by PO.
// GET /api/invoices?purchaseOrderId=
func (ctl *InvoiceController) GetInvoices(ctx *fiber.Ctx) error {
	query := ctl.DB.Model(&Models.Invoice{})
	if poID := ctx.Query("purchaseOrderId"); poID != "" {
		query = query.Where("purchase_order_id = ?", poID)
	}

	var invoices []Models.Invoice
	if result := query.Order("nf_date ASC").Find(&invoices); result.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve invoices"})
	}
	return ctx.JSON(invoices)
}

// GetInvoice retrieves a single invoice by ID
func (ctl *InvoiceController) GetInvoice(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid invoice ID"})
	}

	var invoice Models.Invoice
	if result := ctl.DB.First(&invoice, id); result.Error != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Invoice not found"})
	}
	return ctx.JSON(invoice)
}

// CreateInvoice bills an amount against a purchase order. The balance is
// never stored; readers recompute it from the invoice set.
func (ctl *InvoiceController) CreateInvoice(ctx *fiber.Ctx) error {
	var req InvoiceRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := validate.Struct(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Validation failed",
			"message": err.Error(),
		})
	}

	nfDate, err := time.Parse(dateLayout, req.NFDate)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Invalid date format",
			"message": "dataNF must be in YYYY-MM-DD format",
		})
	}

	competency, err := time.Parse("2006-01", req.CompetencyMonth)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Invalid date format",
			"message": "mesCompetencia must be in YYYY-MM format",
		})
	}

	var po Models.PurchaseOrder
	if result := ctl.DB.First(&po, req.PurchaseOrderID); result.Error != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Purchase order not found"})
	}

	invoice := Models.Invoice{
		PurchaseOrderID:  req.PurchaseOrderID,
		NFDate:           nfDate,
		NFNumber:         req.NFNumber,
		ServiceValue:     req.ServiceValue,
		PassthroughValue: req.PassthroughValue,
		CompetencyMonth:  competency,
		Description:      req.Description,
	}

	if result := ctl.DB.Create(&invoice); result.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create invoice"})
	}

	return ctx.Status(fiber.StatusCreated).JSON(invoice)
}

// UpdateInvoice corrects a billed invoice
func (ctl *InvoiceController) UpdateInvoice(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid invoice ID"})
	}

	var invoice Models.Invoice
	if result := ctl.DB.First(&invoice, id); result.Error != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Invoice not found"})
	}

	var req InvoiceRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := validate.Struct(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Validation failed",
			"message": err.Error(),
		})
	}

	nfDate, err := time.Parse(dateLayout, req.NFDate)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Invalid date format",
			"message": "dataNF must be in YYYY-MM-DD format",
		})
	}
	competency, err := time.Parse("2006-01", req.CompetencyMonth)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Invalid date format",
			"message": "mesCompetencia must be in YYYY-MM format",
		})
	}

	// Moving an invoice to another PO is not supported; corrections stay
	// within the PO it was billed against.
	if req.PurchaseOrderID != invoice.PurchaseOrderID {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invoices cannot be moved between purchase orders",
		})
	}

	invoice.NFDate = nfDate
	invoice.NFNumber = req.NFNumber
	invoice.ServiceValue = req.ServiceValue
	invoice.PassthroughValue = req.PassthroughValue
	invoice.CompetencyMonth = competency
	invoice.Description = req.Description

	if result := ctl.DB.Save(&invoice); result.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update invoice"})
	}

	return ctx.JSON(invoice)
}

// DeleteInvoice removes an invoice; the PO balance recovers on the next
// recomputation.
func (ctl *InvoiceController) DeleteInvoice(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid invoice ID"})
	}

	var invoice Models.Invoice
	if result := ctl.DB.First(&invoice, id); result.Error != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Invoice not found"})
	}

	ctl.DB.Delete(&invoice)

	return ctx.JSON(fiber.Map{"message": "Invoice deleted successfully"})
}
