package Models

import (
	"time"

	"gorm.io/gorm"
)

// PurchaseOrder is a spending ceiling authorized by a client, optionally
// governed by a document. PONumber is the human-facing identifier and must
// be unique within a client.
type PurchaseOrder struct {
	gorm.Model
	ClientID   uint   `json:"clienteId" gorm:"not null;index;uniqueIndex:idx_client_po_number"`
	DocumentID *uint  `json:"documentoId,omitempty" gorm:"index"`
	PONumber   string `json:"numeroPO" gorm:"not null;uniqueIndex:idx_client_po_number"`

	Value       float64   `json:"valor"`
	Description string    `json:"descricao" gorm:"type:text"`
	StartDate   time.Time `json:"dataInicio"`
	EndDate     time.Time `json:"dataFim"`

	NFRouting
}

// POBalance returns the remaining unbilled ceiling: the PO value minus the
// sum of service and passthrough values over its invoices. Recomputed from
// the full invoice set on every call so it always reflects the latest
// writes. A missing PO surfaces gorm.ErrRecordNotFound, never a zero.
// Over-invoicing yields a negative balance; it is reported, not rejected.
func POBalance(db *gorm.DB, id uint) (float64, error) {
	var po PurchaseOrder
	if err := db.First(&po, id).Error; err != nil {
		return 0, err
	}

	var billed float64
	err := db.Model(&Invoice{}).
		Where("purchase_order_id = ?", id).
		Select("COALESCE(SUM(service_value + passthrough_value), 0)").
		Scan(&billed).Error
	if err != nil {
		return 0, err
	}

	return po.Value - billed, nil
}

// HasInvoices reports whether any invoice was billed against the PO.
func (po *PurchaseOrder) HasInvoices(db *gorm.DB) (bool, error) {
	var count int64
	if err := db.Model(&Invoice{}).Where("purchase_order_id = ?", po.ID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
