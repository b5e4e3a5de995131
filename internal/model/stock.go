package model

import "github.com/google/uuid"

// Stock is the running on-hand quantity of one product. The unique index on
// product_id backs the insert-or-increment upsert, so concurrent purchase
// events for the same product cannot race into duplicate rows.
type Stock struct {
	Base
	ProductID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	Quantity  int       `gorm:"not null;default:0"`

	Product *Product `gorm:"foreignKey:ProductID"`
}

// TableName keeps the singular table name of the original schema.
func (Stock) TableName() string { return "stock" }
