package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type InvoiceLineRequest struct {
	ProductID string          `json:"productID" validate:"required,uuid"`
	Quantity  int             `json:"quantity"  validate:"required,min=1"`
	UnitTP    decimal.Decimal `json:"unitTP"    validate:"min=0"`
	UnitMRP   decimal.Decimal `json:"unitMRP"   validate:"min=0"`
	Discount  decimal.Decimal `json:"discount"  validate:"min=0"`
}

type CreateInvoiceRequest struct {
	ClientID     string          `json:"clientID"     validate:"required,uuid"`
	OrderDate    string          `json:"orderDate"    validate:"required,datetime=2006-01-02"`
	ShippingDate string          `json:"shippingDate" validate:"required,datetime=2006-01-02"`
	Platform     string          `json:"platform"     validate:"max=255"`
	PaymentType  string          `json:"paymentType"  validate:"required,max=255"`
	CreditPeriod *string         `json:"creditPeriod" validate:"omitempty,datetime=2006-01-02"`
	TotalTP      decimal.Decimal `json:"totalTP"      validate:"min=0"`
	TotalMRP     decimal.Decimal `json:"totalMRP"     validate:"required"`
	Commission   decimal.Decimal `json:"totalCommission" validate:"min=0"`
	TotalProfit  decimal.Decimal `json:"totalProfit"  validate:"min=0"`
	Others       decimal.Decimal `json:"others"       validate:"min=0"`

	Lines []InvoiceLineRequest `json:"lines" validate:"required,min=1,dive"`
}

type PartialPaymentRequest struct {
	Amount decimal.Decimal `json:"amount" validate:"required"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type InvoiceLineResponse struct {
	ProductID string          `json:"productID"`
	Product   string          `json:"product"`
	PackSize  string          `json:"packSize"`
	Quantity  int             `json:"quantity"`
	UnitTP    decimal.Decimal `json:"unitTP"`
	UnitMRP   decimal.Decimal `json:"unitMRP"`
	Discount  decimal.Decimal `json:"discount"`
}

type InvoiceResponse struct {
	ID           string          `json:"id"`
	InvoiceNo    string          `json:"invoiceNo"`
	OrderDate    string          `json:"orderDate"`
	ShippingDate string          `json:"shippingDate"`
	Platform     string          `json:"platform"`
	Payment      string          `json:"payment"`
	PaymentType  string          `json:"paymentType"`
	CreditPeriod *string         `json:"creditPeriod"`
	TotalTP      decimal.Decimal `json:"totalTP"`
	TotalMRP     decimal.Decimal `json:"totalMRP"`
	Commission   decimal.Decimal `json:"totalCommission"`
	TotalProfit  decimal.Decimal `json:"totalProfit"`
	Others       decimal.Decimal `json:"others"`
	PaidAmount   decimal.Decimal `json:"paidAmount"`

	Client *ClientResponse       `json:"client,omitempty"`
	Lines  []InvoiceLineResponse `json:"lines"`
}

type InvoiceListResponse struct {
	Data  []InvoiceResponse `json:"data"`
	Total int64             `json:"total"`
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
}

// PaymentResponse is returned by the paid / partial-payment endpoints.
type PaymentResponse struct {
	Success bool `json:"success"`
}

// MonthlySales is one row of the monthly revenue chart.
type MonthlySales struct {
	Year  int             `json:"year"`
	Month int             `json:"month"`
	Total decimal.Decimal `json:"total"`
}
