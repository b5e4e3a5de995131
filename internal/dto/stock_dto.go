package dto

// CreateStockRequest adds quantity to a product's stock by hand, outside the
// purchase workflow. Repeated posts for the same product accumulate.
type CreateStockRequest struct {
	ProductID string `json:"productID" validate:"required,uuid"`
	Quantity  int    `json:"quantity"  validate:"required,gt=0"`
}

type StockResponse struct {
	ID        string `json:"id"`
	ProductID string `json:"productID"`
	Product   string `json:"product"`
	PackSize  string `json:"packSize"`
	Quantity  int    `json:"quantity"`
}

type StockListResponse struct {
	Data  []StockResponse `json:"data"`
	Total int64           `json:"total"`
	Page  int             `json:"page"`
	Limit int             `json:"limit"`
}
