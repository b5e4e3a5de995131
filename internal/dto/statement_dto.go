package dto

import "github.com/shopspring/decimal"

type CreateStatementRequest struct {
	Purpose       string          `json:"purpose"       validate:"required,max=255"`
	Amount        decimal.Decimal `json:"amount"        validate:"required"`
	ReferenceType string          `json:"referenceType" validate:"omitempty,oneof=purchase invoice"`
	ReferenceID   string          `json:"referenceID"   validate:"omitempty,uuid"`
}

type UpdateStatementRequest struct {
	Purpose *string          `json:"purpose" validate:"omitempty,max=255"`
	Amount  *decimal.Decimal `json:"amount"`
}

type StatementResponse struct {
	ID            string          `json:"id"`
	Purpose       string          `json:"purpose"`
	Amount        decimal.Decimal `json:"amount"`
	ReferenceType string          `json:"referenceType,omitempty"`
	ReferenceID   string          `json:"referenceID,omitempty"`
	CreatedAt     string          `json:"createdAt"`
}

type StatementListResponse struct {
	Data  []StatementResponse `json:"data"`
	Total int64               `json:"total"`
	Page  int                 `json:"page"`
	Limit int                 `json:"limit"`
}
