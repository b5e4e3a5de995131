package dto

import "github.com/shopspring/decimal"

type CreatePurposeRequest struct {
	Name string `json:"name" validate:"required,max=65"`
}

type UpdatePurposeRequest struct {
	Name string `json:"name" validate:"required,max=65"`
}

type PurposeResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type PurposeListResponse struct {
	Data  []PurposeResponse `json:"data"`
	Total int64             `json:"total"`
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
}

// PurposeSummary is one row of the ledger summary report: total posted amount
// per purpose, zero for categories with no postings.
type PurposeSummary struct {
	Purpose string          `json:"purpose"`
	Total   decimal.Decimal `json:"total"`
}
