package Controllers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"DocuKeeper/Models"
)

// ReportController exports the reports screen data as spreadsheets.
type ReportController struct {
	DB *gorm.DB
}

// NewReportController creates a new ReportController
func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{DB: db}
}

// ExportContracts writes an xlsx with one sheet of documents and one of
// purchase order balances.
// GET /api/reports/contracts.xlsx?clientId=&from=&to=
func (ctl *ReportController) ExportContracts(ctx *fiber.Ctx) error {
	docQuery := ctl.DB.Model(&Models.Document{})
	poQuery := ctl.DB.Model(&Models.PurchaseOrder{})

	if clientID := ctx.Query("clientId"); clientID != "" {
		docQuery = docQuery.Where("client_id = ?", clientID)
		poQuery = poQuery.Where("client_id = ?", clientID)
	}
	if from := ctx.Query("from"); from != "" {
		fromDate, err := time.Parse(dateLayout, from)
		if err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "from must be in YYYY-MM-DD format"})
		}
		docQuery = docQuery.Where("end_date >= ?", fromDate)
		poQuery = poQuery.Where("end_date >= ?", fromDate)
	}
	if to := ctx.Query("to"); to != "" {
		toDate, err := time.Parse(dateLayout, to)
		if err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "to must be in YYYY-MM-DD format"})
		}
		docQuery = docQuery.Where("start_date <= ?", toDate)
		poQuery = poQuery.Where("start_date <= ?", toDate)
	}

	var docs []Models.Document
	if err := docQuery.Find(&docs).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	var pos []Models.PurchaseOrder
	if err := poQuery.Find(&pos).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	clientNames, err := ctl.clientNames()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	f := excelize.NewFile()
	defer f.Close()

	const docSheet = "Contratos"
	f.SetSheetName("Sheet1", docSheet)
	docHeaders := []interface{}{"Cliente", "Projeto", "Formalização", "Tipo",
		"Faturamento", "Valor", "Valor Acumulado", "Início", "Fim", "Ativo"}
	f.SetSheetRow(docSheet, "A1", &docHeaders)

	for i := range docs {
		d := &docs[i]
		row := []interface{}{
			clientNames[d.ClientID],
			d.ProjectName,
			d.FormalizationType,
			d.EngagementType,
			d.BillingType,
			d.Value,
			d.AccruedValue(),
			d.StartDate.Format(dateLayout),
			d.EndDate.Format(dateLayout),
			d.Active,
		}
		f.SetSheetRow(docSheet, fmt.Sprintf("A%d", i+2), &row)
	}

	const poSheet = "Saldos PO"
	f.NewSheet(poSheet)
	poHeaders := []interface{}{"Cliente", "Número PO", "Valor", "Saldo", "Início", "Fim"}
	f.SetSheetRow(poSheet, "A1", &poHeaders)

	for i := range pos {
		po := &pos[i]
		balance, err := Models.POBalance(ctl.DB, po.ID)
		if err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
		}
		row := []interface{}{
			clientNames[po.ClientID],
			po.PONumber,
			po.Value,
			balance,
			po.StartDate.Format(dateLayout),
			po.EndDate.Format(dateLayout),
		}
		f.SetSheetRow(poSheet, fmt.Sprintf("A%d", i+2), &row)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to build report"})
	}

	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="contracts-report.xlsx"`)
	return ctx.Send(buf.Bytes())
}

func (ctl *ReportController) clientNames() (map[uint]string, error) {
	var clients []Models.Client
	if err := ctl.DB.Find(&clients).Error; err != nil {
		return nil, err
	}
	names := make(map[uint]string, len(clients))
	for i := range clients {
		names[clients[i].ID] = clients[i].LegalName
	}
	return names, nil
}
