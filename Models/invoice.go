package Models

import (
	"time"

	"gorm.io/gorm"
)

// Invoice (faturamento) is a billed amount consumed against a purchase
// order's ceiling. Invoices are created append-only in the normal flow;
// the PO balance is always recalculated from the full set.
type Invoice struct {
	gorm.Model
	PurchaseOrderID uint `json:"purchaseOrderId" gorm:"not null;index"`

	NFDate           time.Time `json:"dataNF"`
	NFNumber         string    `json:"numeroNF"`
	ServiceValue     float64   `json:"valorServico"`
	PassthroughValue float64   `json:"valorRepasse"`
	CompetencyMonth  time.Time `json:"mesCompetencia"` // only year/month are meaningful
	Description      string    `json:"descricao" gorm:"type:text"`
}

// TableName keeps the table aligned with the product vocabulary.
func (Invoice) TableName() string {
	return "faturamentos"
}
