package dto

type CreateProductRequest struct {
	Name     string `json:"name"     validate:"required,max=65"`
	PackSize string `json:"packSize" validate:"max=65"`
}

type UpdateProductRequest struct {
	Name     *string `json:"name"     validate:"omitempty,max=65"`
	PackSize *string `json:"packSize" validate:"omitempty,max=65"`
}

type ProductResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	PackSize string `json:"packSize"`
}

type ProductListResponse struct {
	Data  []ProductResponse `json:"data"`
	Total int64             `json:"total"`
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
}
