package Models

import (
	"time"

	"gorm.io/gorm"
)

// Formalization types for a document
const (
	FormalizationContract = "Contrato"
	FormalizationEmail    = "Email"
	FormalizationPO       = "PO"
)

// Contract status values (only meaningful for FormalizationContract)
const (
	ContractSigned   = "Assinado"
	ContractInDrafts = "Em Troca de Minutas"
)

// Billing types
const (
	BillingMonthly = "Mensal"
	BillingTotal   = "Total"
)

// Engagement types
const (
	EngagementProject = "Projeto"
	EngagementOngoing = "Ongoing"
)

// Document is the contract/email/PO-governing record tying a client to a
// billing arrangement over a date range.
type Document struct {
	gorm.Model
	ClientID uint `json:"clienteId" gorm:"not null;index"`
	Active   bool `json:"ativo" gorm:"default:true"`

	ProjectName       string `json:"nomeProjeto" gorm:"not null"`
	Scope             string `json:"escopo" gorm:"type:text"`
	FormalizationType string `json:"tipoFormalizacao"` // Contrato, Email or PO
	ContractStatus    string `json:"statusContrato,omitempty"`
	AutoRenewal       bool   `json:"renovacaoAutomatica"`
	NeedsPO           bool   `json:"precisaPO"`
	POInfo            string `json:"infoPO,omitempty"`
	EngagementType    string `json:"tipo"` // Projeto or Ongoing

	Value       float64   `json:"valor"`
	BillingType string    `json:"valorTipo"` // Mensal or Total
	StartDate   time.Time `json:"dataInicio"`
	EndDate     time.Time `json:"dataFim"`

	BillingCondition string `json:"condicaoFaturamento"`
	PaymentTerm      string `json:"prazoPagamento"`

	PreviousReference  bool  `json:"referenciaAnterior"`
	PreviousDocumentID *uint `json:"documentoAnteriorId,omitempty"`

	// Relevant clauses. Each flag is paired with free-text detail.
	Fines                     bool   `json:"multas"`
	FinesInfo                 string `json:"multasInfo,omitempty"`
	CancellationRule          bool   `json:"regraCancelamento"`
	CancellationRuleInfo      string `json:"regraCancelamentoInfo,omitempty"`
	Warranty                  bool   `json:"garantia"`
	WarrantyInfo              string `json:"garantiaInfo,omitempty"`
	NoHireClause              bool   `json:"proibirContratacao"`
	NoHireClauseInfo          string `json:"proibirContratacaoInfo,omitempty"`
	LiabilityCap              bool   `json:"limiteResponsabilidade"`
	LiabilityCapInfo          string `json:"limiteResponsabilidadeInfo,omitempty"`
	FormalizedPassthrough     bool   `json:"repasseFormalizado"`
	FormalizedPassthroughInfo string `json:"repasseFormalizadoInfo,omitempty"`
	BrandUsage                bool   `json:"usoMarca"`
	BrandUsageInfo            string `json:"usoMarcaInfo,omitempty"`
	Exclusivity               bool   `json:"exclusividade"`
	ExclusivityInfo           string `json:"exclusividadeInfo,omitempty"`

	NFRouting
}

// NFRouting carries the invoice-issuing guidance attached to documents and
// purchase orders. A PO may override its document's routing.
type NFRouting struct {
	RecipientName     string `json:"destinatarioNome"`
	RecipientEmail    string `json:"destinatarioEmail"`
	RecipientInfo     string `json:"destinatarioInfo,omitempty"`
	SpecificSubject   bool   `json:"assuntoEmailEspecifico"`
	SpecificSubjInfo  string `json:"assuntoEmailInfo,omitempty"`
	SpecificBody      bool   `json:"corpoEmailEspecifico"`
	SpecificBodyInfo  string `json:"corpoEmailInfo,omitempty"`
	NFDateRestriction bool   `json:"restricaoDataNF"`
	NFDateInfo        string `json:"restricaoDataNFInfo,omitempty"`
}

// AccruedValue is the total the document represents over its full period.
// Monthly billing accrues value once per calendar month, counting both
// endpoint months. The count is calendar arithmetic on year/month only:
// Jan 31 to Feb 1 is two months, Jan 1 to Jan 31 is one.
func (d *Document) AccruedValue() float64 {
	if d.BillingType != BillingMonthly {
		return d.Value
	}
	months := (d.EndDate.Year()-d.StartDate.Year())*12 +
		int(d.EndDate.Month()) - int(d.StartDate.Month()) + 1
	return d.Value * float64(months)
}

// PortfolioAccrual sums AccruedValue over active documents only.
func PortfolioAccrual(docs []Document) float64 {
	var total float64
	for i := range docs {
		if docs[i].Active {
			total += docs[i].AccruedValue()
		}
	}
	return total
}

// HasPurchaseOrders reports whether any PO still references the document.
func (d *Document) HasPurchaseOrders(db *gorm.DB) (bool, error) {
	var count int64
	if err := db.Model(&PurchaseOrder{}).Where("document_id = ?", d.ID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
