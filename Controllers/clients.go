package Controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"DocuKeeper/Models"
)

// ClientController handles client-related API endpoints
type ClientController struct {
	DB *gorm.DB
}

// NewClientController creates a new ClientController
func NewClientController(db *gorm.DB) *ClientController {
	return &ClientController{DB: db}
}

type ClientRequest struct {
	LegalName     string `json:"razaoSocial" validate:"required"`
	TradeName     string `json:"nomeFantasia"`
	EconomicGroup string `json:"grupoEconomico"`
	Active        *bool  `json:"ativo"`
}

// GetClients retrieves all clients
func (ctl *ClientController) GetClients(ctx *fiber.Ctx) error {
	var clients []Models.Client
	if result := ctl.DB.Find(&clients); result.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve clients"})
	}
	return ctx.JSON(clients)
}

// GetClient retrieves a single client by ID
func (ctl *ClientController) GetClient(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid client ID"})
	}

	var client Models.Client
	if result := ctl.DB.First(&client, id); result.Error != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Client not found"})
	}
	return ctx.JSON(client)
}

// CreateClient creates a new client
func (ctl *ClientController) CreateClient(ctx *fiber.Ctx) error {
	var req ClientRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := validate.Struct(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Validation failed",
			"message": err.Error(),
		})
	}

	client := Models.Client{
		LegalName:     req.LegalName,
		TradeName:     req.TradeName,
		EconomicGroup: req.EconomicGroup,
		Active:        true,
	}
	if req.Active != nil {
		client.Active = *req.Active
	}

	if result := ctl.DB.Create(&client); result.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create client"})
	}

	return ctx.Status(fiber.StatusCreated).JSON(client)
}

// UpdateClient updates an existing client. CreatedAt is never touched;
// gorm bumps UpdatedAt on write.
func (ctl *ClientController) UpdateClient(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid client ID"})
	}

	var client Models.Client
	if result := ctl.DB.First(&client, id); result.Error != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Client not found"})
	}

	var req ClientRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if req.LegalName != "" {
		client.LegalName = req.LegalName
	}
	if req.TradeName != "" {
		client.TradeName = req.TradeName
	}
	if req.EconomicGroup != "" {
		client.EconomicGroup = req.EconomicGroup
	}
	if req.Active != nil {
		client.Active = *req.Active
	}

	if result := ctl.DB.Save(&client); result.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update client"})
	}

	return ctx.JSON(client)
}

// DeleteClient removes a client. Deletion is blocked while documents or
// purchase orders still reference it; deactivation via the ativo flag is
// the supported soft path.
func (ctl *ClientController) DeleteClient(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid client ID"})
	}

	var client Models.Client
	if result := ctl.DB.First(&client, id); result.Error != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Client not found"})
	}

	hasChildren, err := client.HasChildren(ctl.DB)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	if hasChildren {
		return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Client has documents or purchase orders; deactivate it instead",
		})
	}

	ctl.DB.Delete(&client)

	return ctx.JSON(fiber.Map{"message": "Client deleted successfully"})
}
