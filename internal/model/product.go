package model

// Product is a catalog item referenced by purchase and invoice lines.
// Each product has at most one Stock row (one-to-one, enforced by the
// unique index on stock.product_id).
type Product struct {
	Base
	Name     string `gorm:"type:varchar(65);index;not null"`
	PackSize string `gorm:"type:varchar(65)"`

	Stock *Stock `gorm:"foreignKey:ProductID"`
}
