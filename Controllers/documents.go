package Controllers

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"DocuKeeper/Models"
)

// DocumentController handles document-related API endpoints
type DocumentController struct {
	DB *gorm.DB
}

// NewDocumentController creates a new DocumentController
func NewDocumentController(db *gorm.DB) *DocumentController {
	return &DocumentController{DB: db}
}

// DocumentRequest carries the full edit form. The SPA always submits every
// field, so create and update share the same shape.
type DocumentRequest struct {
	ClientID uint  `json:"clienteId" validate:"required"`
	Active   *bool `json:"ativo"`

	ProjectName       string `json:"nomeProjeto" validate:"required"`
	Scope             string `json:"escopo"`
	FormalizationType string `json:"tipoFormalizacao" validate:"required,oneof=Contrato Email PO"`
	ContractStatus    string `json:"statusContrato" validate:"omitempty,oneof=Assinado 'Em Troca de Minutas'"`
	AutoRenewal       bool   `json:"renovacaoAutomatica"`
	NeedsPO           bool   `json:"precisaPO"`
	POInfo            string `json:"infoPO"`
	EngagementType    string `json:"tipo" validate:"required,oneof=Projeto Ongoing"`

	Value       float64 `json:"valor" validate:"required,gt=0"`
	BillingType string  `json:"valorTipo" validate:"required,oneof=Mensal Total"`
	StartDate   string  `json:"dataInicio" validate:"required"`
	EndDate     string  `json:"dataFim" validate:"required"`

	BillingCondition string `json:"condicaoFaturamento"`
	PaymentTerm      string `json:"prazoPagamento"`

	PreviousReference  bool  `json:"referenciaAnterior"`
	PreviousDocumentID *uint `json:"documentoAnteriorId"`

	Fines                     bool   `json:"multas"`
	FinesInfo                 string `json:"multasInfo"`
	CancellationRule          bool   `json:"regraCancelamento"`
	CancellationRuleInfo      string `json:"regraCancelamentoInfo"`
	Warranty                  bool   `json:"garantia"`
	WarrantyInfo              string `json:"garantiaInfo"`
	NoHireClause              bool   `json:"proibirContratacao"`
	NoHireClauseInfo          string `json:"proibirContratacaoInfo"`
	LiabilityCap              bool   `json:"limiteResponsabilidade"`
	LiabilityCapInfo          string `json:"limiteResponsabilidadeInfo"`
	FormalizedPassthrough     bool   `json:"repasseFormalizado"`
	FormalizedPassthroughInfo string `json:"repasseFormalizadoInfo"`
	BrandUsage                bool   `json:"usoMarca"`
	BrandUsageInfo            string `json:"usoMarcaInfo"`
	Exclusivity               bool   `json:"exclusividade"`
	ExclusivityInfo           string `json:"exclusividadeInfo"`

	Models.NFRouting
}

// apply copies the validated form onto a document. Dates must already be
// range-checked by validateDates.
func (req *DocumentRequest) apply(doc *Models.Document, start, end time.Time) {
	doc.ClientID = req.ClientID
	if req.Active != nil {
		doc.Active = *req.Active
	}
	doc.ProjectName = req.ProjectName
	doc.Scope = req.Scope
	doc.FormalizationType = req.FormalizationType
	doc.ContractStatus = req.ContractStatus
	doc.AutoRenewal = req.AutoRenewal
	doc.NeedsPO = req.NeedsPO
	doc.POInfo = req.POInfo
	doc.EngagementType = req.EngagementType
	doc.Value = req.Value
	doc.BillingType = req.BillingType
	doc.StartDate = start
	doc.EndDate = end
	doc.BillingCondition = req.BillingCondition
	doc.PaymentTerm = req.PaymentTerm
	doc.PreviousReference = req.PreviousReference
	doc.PreviousDocumentID = req.PreviousDocumentID
	doc.Fines = req.Fines
	doc.FinesInfo = req.FinesInfo
	doc.CancellationRule = req.CancellationRule
	doc.CancellationRuleInfo = req.CancellationRuleInfo
	doc.Warranty = req.Warranty
	doc.WarrantyInfo = req.WarrantyInfo
	doc.NoHireClause = req.NoHireClause
	doc.NoHireClauseInfo = req.NoHireClauseInfo
	doc.LiabilityCap = req.LiabilityCap
	doc.LiabilityCapInfo = req.LiabilityCapInfo
	doc.FormalizedPassthrough = req.FormalizedPassthrough
	doc.FormalizedPassthroughInfo = req.FormalizedPassthroughInfo
	doc.BrandUsage = req.BrandUsage
	doc.BrandUsageInfo = req.BrandUsageInfo
	doc.Exclusivity = req.Exclusivity
	doc.ExclusivityInfo = req.ExclusivityInfo
	doc.NFRouting = req.NFRouting
}

// GetDocuments retrieves all documents, optionally filtered by client.
// GET /api/documents?clientId=
func (ctl *DocumentController) GetDocuments(ctx *fiber.Ctx) error {
	query := ctl.DB.Model(&Models.Document{})
	if clientID := ctx.Query("clientId"); clientID != "" {
		query = query.Where("client_id = ?", clientID)
	}

	var docs []Models.Document
	if result := query.Find(&docs); result.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve documents"})
	}
	return ctx.JSON(docs)
}

// GetDocument retrieves a single document by ID
func (ctl *DocumentController) GetDocument(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid document ID"})
	}

	var doc Models.Document
	if result := ctl.DB.First(&doc, id); result.Error != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Document not found"})
	}
	return ctx.JSON(doc)
}

// GetDocumentAccrual returns the total value the document represents over
// its period.
// GET /api/documents/:id/accrual
func (ctl *DocumentController) GetDocumentAccrual(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid document ID"})
	}

	var doc Models.Document
	if result := ctl.DB.First(&doc, id); result.Error != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Document not found"})
	}

	return ctx.JSON(fiber.Map{
		"documentId": doc.ID,
		"accrued":    doc.AccruedValue(),
	})
}

// CreateDocument creates a new document
func (ctl *DocumentController) CreateDocument(ctx *fiber.Ctx) error {
	var req DocumentRequest
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

	doc := Models.Document{Active: true}
	req.apply(&doc, start, end)

	if result := ctl.DB.Create(&doc); result.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create document"})
	}

	return ctx.Status(fiber.StatusCreated).JSON(doc)
}

// UpdateDocument overwrites the editable fields of a document
func (ctl *DocumentController) UpdateDocument(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid document ID"})
	}

	var doc Models.Document
	if result := ctl.DB.First(&doc, id); result.Error != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Document not found"})
	}

	var req DocumentRequest
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

	req.apply(&doc, start, end)

	if result := ctl.DB.Save(&doc); result.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update document"})
	}

	return ctx.JSON(doc)
}

// DeleteDocument removes a document unless purchase orders still
// reference it.
func (ctl *DocumentController) DeleteDocument(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid document ID"})
	}

	var doc Models.Document
	if result := ctl.DB.First(&doc, id); result.Error != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Document not found"})
	}

	hasPOs, err := doc.HasPurchaseOrders(ctl.DB)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	if hasPOs {
		return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Document has purchase orders; deactivate it instead",
		})
	}

	ctl.DB.Delete(&doc)

	return ctx.JSON(fiber.Map{"message": "Document deleted successfully"})
}
