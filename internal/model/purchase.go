package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Purchase types — "Cash" settles immediately, "BAYER" is bought on credit
// and posts a receivable to the ledger.
const (
	PurchaseTypeCash  = "Cash"
	PurchaseTypeBayer = "BAYER"
)

// Purchase is the header of a goods acquisition.
type Purchase struct {
	Base
	PurchaseDate time.Time       `gorm:"type:date;not null"`
	TotalPrice   decimal.Decimal `gorm:"type:decimal(20,6);not null;default:0"`
	Type         string          `gorm:"type:varchar(100);not null"`

	Details []PurchaseDetail `gorm:"foreignKey:PurchaseID"`
}

// PurchaseDetail is one line of a purchase.
type PurchaseDetail struct {
	Base
	PurchaseID uuid.UUID       `gorm:"type:uuid;index;not null"`
	ProductID  uuid.UUID       `gorm:"type:uuid;index;not null"`
	Quantity   int             `gorm:"not null"`
	UnitPrice  decimal.Decimal `gorm:"type:decimal(20,6);not null;default:0"`

	Product *Product `gorm:"foreignKey:ProductID"`
}
