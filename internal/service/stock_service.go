package service

import (
	"context"
	"errors"

	"github.com/tahrim-ahmed/invoice-api/internal/apierror"
	"github.com/tahrim-ahmed/invoice-api/internal/dto"
	"github.com/tahrim-ahmed/invoice-api/internal/model"
	"github.com/tahrim-ahmed/invoice-api/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// StockService maintains the per-product stock levels. Increments arrive
// asynchronously from the purchase workflow via the worker pool.
type StockService interface {
	Increment(ctx context.Context, productID uuid.UUID, quantity int) error
	Create(ctx context.Context, req dto.CreateStockRequest) (*dto.StockResponse, error)
	FindByID(ctx context.Context, id uuid.UUID) (*dto.StockResponse, error)
	Search(ctx context.Context, page, limit int, search string) (*dto.StockListResponse, error)
	Paginate(ctx context.Context, q dto.PageQuery) (*dto.StockListResponse, error)
	Remove(ctx context.Context, id uuid.UUID) (bool, error)
}

type stockService struct {
	stockRepo   repository.StockRepository
	productRepo repository.ProductRepository
}

func NewStockService(stockRepo repository.StockRepository, productRepo repository.ProductRepository) StockService {
	return &stockService{stockRepo: stockRepo, productRepo: productRepo}
}

// Increment adds quantity to the product's stock, creating the row on first
// receipt. The upsert is atomic on the product_id unique index, so concurrent
// deliveries for the same product never lose an update.
func (s *stockService) Increment(ctx context.Context, productID uuid.UUID, quantity int) error {
	if quantity <= 0 {
		return apierror.BadRequest("quantity must be positive")
	}
	if _, err := s.productRepo.FindByID(ctx, productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NotFound("product not found")
		}
		return err
	}
	if err := s.stockRepo.UpsertIncrement(ctx, productID, quantity); err != nil {
		return err
	}
	log.Debug().
		Str("product_id", productID.String()).
		Int("quantity", quantity).
		Msg("stock incremented")
	return nil
}

// Create is the manual counterpart of the purchase-driven increment: the
// quantity is added to the product's existing stock row, or a new row is
// created on first receipt.
func (s *stockService) Create(ctx context.Context, req dto.CreateStockRequest) (*dto.StockResponse, error) {
	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return nil, apierror.BadRequest("invalid product id")
	}
	if err := s.Increment(ctx, productID, req.Quantity); err != nil {
		return nil, err
	}
	st, err := s.stockRepo.FindByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	return stockToResponse(st), nil
}

func (s *stockService) FindByID(ctx context.Context, id uuid.UUID) (*dto.StockResponse, error) {
	st, err := s.stockRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("stock entry not found")
		}
		return nil, err
	}
	return stockToResponse(st), nil
}

func (s *stockService) Search(ctx context.Context, page, limit int, search string) (*dto.StockListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 200 {
		limit = 10
	}
	stock, total, err := s.stockRepo.Search(ctx, page, limit, search)
	if err != nil {
		return nil, err
	}
	return stockListResponse(stock, total, page, limit), nil
}

func (s *stockService) Paginate(ctx context.Context, q dto.PageQuery) (*dto.StockListResponse, error) {
	q.Defaults()
	stock, total, err := s.stockRepo.Paginate(ctx, q)
	if err != nil {
		return nil, err
	}
	return stockListResponse(stock, total, q.Page, q.Limit), nil
}

func (s *stockService) Remove(ctx context.Context, id uuid.UUID) (bool, error) {
	return s.stockRepo.SoftDelete(ctx, id)
}

// ─── Mapping ─────────────────────────────────────────────────────────────────

func stockToResponse(st *model.Stock) *dto.StockResponse {
	resp := &dto.StockResponse{
		ID:        st.ID.String(),
		ProductID: st.ProductID.String(),
		Quantity:  st.Quantity,
	}
	if st.Product != nil {
		resp.Product = st.Product.Name
		resp.PackSize = st.Product.PackSize
	}
	return resp
}

func stockListResponse(stock []model.Stock, total int64, page, limit int) *dto.StockListResponse {
	data := make([]dto.StockResponse, len(stock))
	for i := range stock {
		data[i] = *stockToResponse(&stock[i])
	}
	return &dto.StockListResponse{Data: data, Total: total, Page: page, Limit: limit}
}
