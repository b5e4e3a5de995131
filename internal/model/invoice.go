package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	PaymentPaid   = "Paid"
	PaymentUnpaid = "Unpaid"

	PaymentTypeCash = "Cash"
)

// Invoice is the header of a sale against a client.
// PaidAmount never exceeds TotalMRP; once PaidAmount == TotalMRP the
// Payment status is "Paid" and CreditPeriod is cleared.
type Invoice struct {
	Base
	// InvoiceNo is the human-facing identifier, date prefix + sequence
	// (e.g. 20260828-000042). Unique by construction.
	InvoiceNo    string     `gorm:"type:varchar(65);uniqueIndex;not null"`
	ClientID     uuid.UUID  `gorm:"type:uuid;index;not null"`
	OrderDate    time.Time  `gorm:"type:date;not null"`
	ShippingDate time.Time  `gorm:"type:date;not null"`
	Platform     string     `gorm:"type:varchar(255)"`
	Payment      string     `gorm:"type:varchar(255);not null;default:'Unpaid'"`
	PaymentType  string     `gorm:"type:varchar(255);not null"`
	CreditPeriod *time.Time `gorm:"type:date"`

	TotalTP         decimal.Decimal `gorm:"type:decimal(20,6);not null;default:0"`
	TotalMRP        decimal.Decimal `gorm:"type:decimal(20,6);not null;default:0"`
	TotalCommission decimal.Decimal `gorm:"type:decimal(20,6);not null;default:0"`
	TotalProfit     decimal.Decimal `gorm:"type:decimal(20,6);not null;default:0"`
	Others          decimal.Decimal `gorm:"type:decimal(20,6);not null;default:0"`
	PaidAmount      decimal.Decimal `gorm:"type:decimal(20,6);not null;default:0"`

	Client  *Client         `gorm:"foreignKey:ClientID"`
	Details []InvoiceDetail `gorm:"foreignKey:InvoiceID"`
}

// InvoiceDetail is one line of an invoice.
type InvoiceDetail struct {
	Base
	InvoiceID uuid.UUID       `gorm:"type:uuid;index;not null"`
	ProductID uuid.UUID       `gorm:"type:uuid;index;not null"`
	Quantity  int             `gorm:"not null"`
	UnitTP    decimal.Decimal `gorm:"type:decimal(20,6);not null;default:0"`
	UnitMRP   decimal.Decimal `gorm:"type:decimal(20,6);not null;default:0"`
	Discount  decimal.Decimal `gorm:"type:decimal(20,6);not null;default:0"`

	Product *Product `gorm:"foreignKey:ProductID"`
}
