package Models

import (
	"gorm.io/gorm"
)

// Client is the root aggregate: documents and purchase orders reference it
// by id. Deactivation through Active is the normal retirement path; hard
// deletes are blocked while children exist.
type Client struct {
	gorm.Model
	LegalName     string `json:"razaoSocial" gorm:"not null"`
	TradeName     string `json:"nomeFantasia"`
	EconomicGroup string `json:"grupoEconomico"`
	Active        bool   `json:"ativo" gorm:"default:true"`
}

// HasChildren reports whether any document or purchase order still
// references the client.
func (c *Client) HasChildren(db *gorm.DB) (bool, error) {
	var docs int64
	if err := db.Model(&Document{}).Where("client_id = ?", c.ID).Count(&docs).Error; err != nil {
		return false, err
	}
	if docs > 0 {
		return true, nil
	}

	var pos int64
	if err := db.Model(&PurchaseOrder{}).Where("client_id = ?", c.ID).Count(&pos).Error; err != nil {
		return false, err
	}
	return pos > 0, nil
}
