package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateClientRequest struct {
	Code       string `json:"code"       validate:"required,max=65"`
	Name       string `json:"name"       validate:"required,max=255"`
	Proprietor string `json:"proprietor" validate:"max=255"`
	Cell       string `json:"cell"       validate:"max=20"`
	Email      string `json:"email"      validate:"omitempty,email"`
	Billing    string `json:"billing"    validate:"max=255"`
	Shipping   string `json:"shipping"   validate:"max=255"`
	Production string `json:"production" validate:"max=255"`
}

type UpdateClientRequest struct {
	Code       *string `json:"code"       validate:"omitempty,max=65"`
	Name       *string `json:"name"       validate:"omitempty,max=255"`
	Proprietor *string `json:"proprietor" validate:"omitempty,max=255"`
	Cell       *string `json:"cell"       validate:"omitempty,max=20"`
	Email      *string `json:"email"      validate:"omitempty,email"`
	Billing    *string `json:"billing"    validate:"omitempty,max=255"`
	Shipping   *string `json:"shipping"   validate:"omitempty,max=255"`
	Production *string `json:"production" validate:"omitempty,max=255"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ClientResponse struct {
	ID         string `json:"id"`
	Code       string `json:"code"`
	Name       string `json:"name"`
	Proprietor string `json:"proprietor"`
	Cell       string `json:"cell"`
	Email      string `json:"email"`
	Billing    string `json:"billing"`
	Shipping   string `json:"shipping"`
	Production string `json:"production"`
}

type ClientListResponse struct {
	Data  []ClientResponse `json:"data"`
	Total int64            `json:"total"`
	Page  int              `json:"page"`
	Limit int              `json:"limit"`
}
