package Controllers

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"DocuKeeper/Models"
)

// PurchaseOrderController handles PO-related API endpoints
type PurchaseOrderController struct {
	DB *gorm.DB
}

// NewPurchaseOrderController creates a new PurchaseOrderController
func NewPurchaseOrderController(db *gorm.DB) *PurchaseOrderController {
	return &PurchaseOrderController{DB: db}
}

type PurchaseOrderRequest struct {
	ClientID   uint   `json:"clienteId" validate:"required"`
	DocumentID *uint  `json:"documentoId"`
	PONumber   string `json:"numeroPO" validate:"required"`

	Value       float64 `json:"valor" validate:"required,gt=0"`
	Description string  `json:"descricao"`
	StartDate   string  `json:"dataInicio" validate:"required"`
	EndDate     string  `json:"dataFim" validate:"required"`

	Models.NFRouting
}

func (req *PurchaseOrderRequest) apply(po *Models.PurchaseOrder, start, end time.Time) {
	po.ClientID = req.ClientID
	po.DocumentID = req.DocumentID
	po.PONumber = req.PONumber
	po.Value = req.Value
	po.Description = req.Description
	po.StartDate = start
	po.EndDate = end
	po.NFRouting = req.NFRouting
}

// GetPurchaseOrders retrieves all POs, optionally filtered by client or
// document.
// GET /api/purchase-orders?clientId=&documentId=
func (ctl *PurchaseOrderController) GetPurchaseOrders(ctx *fiber.Ctx) error {
	query := ctl.DB.Model(&Models.PurchaseOrder{})
	if clientID := ctx.Query("clientId"); clientID != "" {
		query = query.Where("client_id = ?", clientID)
	}
	if documentID := ctx.Query("documentId"); documentID != "" {
		query = query.Where("document_id = ?", documentID)
	}

	var pos []Models.PurchaseOrder
	if result := query.Find(&pos); result.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve purchase orders"})
	}
	return ctx.JSON(pos)
}

// GetPurchaseOrder retrieves a single PO by ID
func (ctl *PurchaseOrderController) GetPurchaseOrder(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid purchase order ID"})
	}

	var po Models.PurchaseOrder
	if result := ctl.DB.First(&po, id); result.Error != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Purchase order not found"})
	}
	return ctx.JSON(po)
}

// GetPurchaseOrderBalance returns the remaining unbilled ceiling. A
// missing PO is a 404, not a zero balance.
// GET /api/purchase-orders/:id/balance
func (ctl *PurchaseOrderController) GetPurchaseOrderBalance(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid purchase order ID"})
	}

	balance, err := Models.POBalance(ctl.DB, uint(id))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Purchase order not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	return ctx.JSON(fiber.Map{
		"purchaseOrderId": id,
		"balance":         balance,
	})
}

// CreatePurchaseOrder creates a new PO
func (ctl *PurchaseOrderController) CreatePurchaseOrder(ctx *fiber.Ctx) error {
	var req PurchaseOrderRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := validate.Struct(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Validation failed",
			"message": err.Error(),
		})
	}

	start, end, err := validateDates(req.StartDate, req.EndDate)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Invalid entity",
			"message": err.Error(),
		})
	}

	var client Models.Client
	if result := ctl.DB.First(&client, req.ClientID); result.Error != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Client not found"})
	}

	if req.DocumentID != nil {
		var doc Models.Document
		if result := ctl.DB.First(&doc, *req.DocumentID); result.Error != nil {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Document not found"})
		}
	}

	var po Models.PurchaseOrder
	req.apply(&po, start, end)

	if result := ctl.DB.Create(&po); result.Error != nil {
		if isUniqueViolation(result.Error) {
			return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "A purchase order with this number already exists for the client",
			})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create purchase order"})
	}

	return ctx.Status(fiber.StatusCreated).JSON(po)
}

// UpdatePurchaseOrder overwrites the editable fields of a PO
func (ctl *PurchaseOrderController) UpdatePurchaseOrder(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid purchase order ID"})
	}

	var po Models.PurchaseOrder
	if result := ctl.DB.First(&po, id); result.Error != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Purchase order not found"})
	}

	var req PurchaseOrderRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := validate.Struct(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Validation failed",
			"message": err.Error(),
		})
	}

	start, end, err := validateDates(req.StartDate, req.EndDate)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Invalid entity",
			"message": err.Error(),
		})
	}

	req.apply(&po, start, end)

	if result := ctl.DB.Save(&po); result.Error != nil {
		if isUniqueViolation(result.Error) {
			return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "A purchase order with this number already exists for the client",
			})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update purchase order"})
	}

	return ctx.JSON(po)
}

// DeletePurchaseOrder removes a PO unless invoices were billed against it.
func (ctl *PurchaseOrderController) DeletePurchaseOrder(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid purchase order ID"})
	}

	var po Models.PurchaseOrder
	if result := ctl.DB.First(&po, id); result.Error != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Purchase order not found"})
	}

	hasInvoices, err := po.HasInvoices(ctl.DB)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	if hasInvoices {
		return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Purchase order has invoices billed against it",
		})
	}

	// Hard delete: a soft-deleted row would keep holding the per-client
	// number under the unique index and block ever reusing it.
	ctl.DB.Unscoped().Delete(&po)

	return ctx.JSON(fiber.Map{"message": "Purchase order deleted successfully"})
}
