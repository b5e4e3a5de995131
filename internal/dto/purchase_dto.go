package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type PurchaseLineRequest struct {
	ProductID string          `json:"productID" validate:"required,uuid"`
	Quantity  int             `json:"quantity"  validate:"required,min=1"`
	UnitPrice decimal.Decimal `json:"unitPrice" validate:"min=0"`
}

type CreatePurchaseRequest struct {
	PurchaseDate string                `json:"purchaseDate" validate:"required,datetime=2006-01-02"`
	Type         string                `json:"type"         validate:"required,oneof=Cash BAYER"`
	TotalPrice   decimal.Decimal       `json:"totalPrice"   validate:"required"`
	Lines        []PurchaseLineRequest `json:"lines"        validate:"required,min=1,dive"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type PurchaseLineResponse struct {
	ProductID string          `json:"productID"`
	Product   string          `json:"product"`
	PackSize  string          `json:"packSize"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

type PurchaseResponse struct {
	ID           string                 `json:"id"`
	PurchaseDate string                 `json:"purchaseDate"`
	Type         string                 `json:"type"`
	TotalPrice   decimal.Decimal        `json:"totalPrice"`
	Lines        []PurchaseLineResponse `json:"lines"`
	CreatedAt    string                 `json:"createdAt"`
}

type PurchaseListResponse struct {
	Data  []PurchaseResponse `json:"data"`
	Total int64              `json:"total"`
	Page  int                `json:"page"`
	Limit int                `json:"limit"`
}

// DeleteResponse reports whether a soft-delete touched any rows.
type DeleteResponse struct {
	Deleted bool `json:"deleted"`
}
