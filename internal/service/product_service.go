package service

import (
	"context"
	"errors"

	"github.com/tahrim-ahmed/invoice-api/internal/apierror"
	"github.com/tahrim-ahmed/invoice-api/internal/dto"
	"github.com/tahrim-ahmed/invoice-api/internal/model"
	"github.com/tahrim-ahmed/invoice-api/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductService interface {
	Create(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error)
	FindByID(ctx context.Context, id uuid.UUID) (*dto.ProductResponse, error)
	Search(ctx context.Context, page, limit int, search string) (*dto.ProductListResponse, error)
	Paginate(ctx context.Context, q dto.PageQuery) (*dto.ProductListResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateProductRequest) (*dto.ProductResponse, error)
	Remove(ctx context.Context, id uuid.UUID) (bool, error)
}

type productService struct {
	productRepo repository.ProductRepository
}

func NewProductService(productRepo repository.ProductRepository) ProductService {
	return &productService{productRepo: productRepo}
}

func (s *productService) Create(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error) {
	p := &model.Product{Name: req.Name, PackSize: req.PackSize}
	if err := s.productRepo.Create(ctx, p); err != nil {
		return nil, err
	}
	return productToResponse(p), nil
}

func (s *productService) FindByID(ctx context.Context, id uuid.UUID) (*dto.ProductResponse, error) {
	p, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("product not found")
		}
		return nil, err
	}
	return productToResponse(p), nil
}

func (s *productService) Search(ctx context.Context, page, limit int, search string) (*dto.ProductListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 200 {
		limit = 10
	}
	products, total, err := s.productRepo.Search(ctx, page, limit, search)
	if err != nil {
		return nil, err
	}
	return productListResponse(products, total, page, limit), nil
}

func (s *productService) Paginate(ctx context.Context, q dto.PageQuery) (*dto.ProductListResponse, error) {
	q.Defaults()
	products, total, err := s.productRepo.Paginate(ctx, q)
	if err != nil {
		return nil, err
	}
	return productListResponse(products, total, q.Page, q.Limit), nil
}

func (s *productService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	p, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("product not found")
		}
		return nil, err
	}
	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.PackSize != nil {
		p.PackSize = *req.PackSize
	}
	if err := s.productRepo.Update(ctx, p); err != nil {
		return nil, err
	}
	return productToResponse(p), nil
}

func (s *productService) Remove(ctx context.Context, id uuid.UUID) (bool, error) {
	return s.productRepo.SoftDelete(ctx, id)
}

// ─── Mapping ─────────────────────────────────────────────────────────────────

func productToResponse(p *model.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:       p.ID.String(),
		Name:     p.Name,
		PackSize: p.PackSize,
	}
}

func productListResponse(products []model.Product, total int64, page, limit int) *dto.ProductListResponse {
	data := make([]dto.ProductResponse, len(products))
	for i := range products {
		data[i] = *productToResponse(&products[i])
	}
	return &dto.ProductListResponse{Data: data, Total: total, Page: page, Limit: limit}
}
