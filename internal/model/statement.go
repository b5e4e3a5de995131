package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Ledger purposes posted by the workflows. The purposes lookup table is
// user-managed and relates to these by string equality only.
const (
	PurposeCustomerPayable = "Customer Payable"
	PurposePaidByCustomer  = "Paid by Customer"
	PurposePurchasedCash   = "Purchased on Cash"
	PurposeBayerReceivable = "BAYER Receivable"
)

// Reference types tag which document a statement points at.
const (
	ReferencePurchase = "purchase"
	ReferenceInvoice  = "invoice"
)

// Statement is a single financial posting in the ledger. Workflows append
// them on document creation and payment; removing a document soft-deletes
// its postings via the (reference_type, reference_id) pair.
type Statement struct {
	Base
	Purpose       string          `gorm:"type:varchar(255);index;not null"`
	Amount        decimal.Decimal `gorm:"type:decimal(20,6);not null;default:0"`
	ReferenceType string          `gorm:"type:varchar(20);index:idx_statements_reference"`
	ReferenceID   uuid.UUID       `gorm:"type:uuid;index:idx_statements_reference"`
}
