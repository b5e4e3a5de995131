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

type ClientService interface {
	Create(ctx context.Context, req dto.CreateClientRequest) (*dto.ClientResponse, error)
	FindByID(ctx context.Context, id uuid.UUID) (*dto.ClientResponse, error)
	Search(ctx context.Context, page, limit int, search string) (*dto.ClientListResponse, error)
	Paginate(ctx context.Context, q dto.PageQuery) (*dto.ClientListResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateClientRequest) (*dto.ClientResponse, error)
	Remove(ctx context.Context, id uuid.UUID) (bool, error)
}

type clientService struct {
	clientRepo repository.ClientRepository
}

func NewClientService(clientRepo repository.ClientRepository) ClientService {
	return &clientService{clientRepo: clientRepo}
}

func (s *clientService) Create(ctx context.Context, req dto.CreateClientRequest) (*dto.ClientResponse, error) {
	// Code is the business identifier; reject duplicates up front for a clean
	// 409 instead of surfacing the unique-index violation.
	if _, err := s.clientRepo.FindByCode(ctx, req.Code); err == nil {
		return nil, apierror.Conflict("client code already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	c := &model.Client{
		Code:       req.Code,
		Name:       req.Name,
		Proprietor: req.Proprietor,
		Cell:       req.Cell,
		Email:      req.Email,
		Billing:    req.Billing,
		Shipping:   req.Shipping,
		Production: req.Production,
	}
	if err := s.clientRepo.Create(ctx, c); err != nil {
		return nil, err
	}
	return clientToResponse(c), nil
}

func (s *clientService) FindByID(ctx context.Context, id uuid.UUID) (*dto.ClientResponse, error) {
	c, err := s.clientRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("client not found")
		}
		return nil, err
	}
	return clientToResponse(c), nil
}

func (s *clientService) Search(ctx context.Context, page, limit int, search string) (*dto.ClientListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 200 {
		limit = 10
	}
	clients, total, err := s.clientRepo.Search(ctx, page, limit, search)
	if err != nil {
		return nil, err
	}
	return clientListResponse(clients, total, page, limit), nil
}

func (s *clientService) Paginate(ctx context.Context, q dto.PageQuery) (*dto.ClientListResponse, error) {
	q.Defaults()
	clients, total, err := s.clientRepo.Paginate(ctx, q)
	if err != nil {
		return nil, err
	}
	return clientListResponse(clients, total, q.Page, q.Limit), nil
}

func (s *clientService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	c, err := s.clientRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("client not found")
		}
		return nil, err
	}

	if req.Code != nil && *req.Code != c.Code {
		if _, err := s.clientRepo.FindByCode(ctx, *req.Code); err == nil {
			return nil, apierror.Conflict("client code already exists")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		c.Code = *req.Code
	}
	if req.Name != nil {
		c.Name = *req.Name
	}
	if req.Proprietor != nil {
		c.Proprietor = *req.Proprietor
	}
	if req.Cell != nil {
		c.Cell = *req.Cell
	}
	if req.Email != nil {
		c.Email = *req.Email
	}
	if req.Billing != nil {
		c.Billing = *req.Billing
	}
	if req.Shipping != nil {
		c.Shipping = *req.Shipping
	}
	if req.Production != nil {
		c.Production = *req.Production
	}

	if err := s.clientRepo.Update(ctx, c); err != nil {
		return nil, err
	}
	return clientToResponse(c), nil
}

func (s *clientService) Remove(ctx context.Context, id uuid.UUID) (bool, error) {
	return s.clientRepo.SoftDelete(ctx, id)
}

// ─── Mapping ─────────────────────────────────────────────────────────────────

func clientToResponse(c *model.Client) *dto.ClientResponse {
	return &dto.ClientResponse{
		ID:         c.ID.String(),
		Code:       c.Code,
		Name:       c.Name,
		Proprietor: c.Proprietor,
		Cell:       c.Cell,
		Email:      c.Email,
		Billing:    c.Billing,
		Shipping:   c.Shipping,
		Production: c.Production,
	}
}

func clientListResponse(clients []model.Client, total int64, page, limit int) *dto.ClientListResponse {
	data := make([]dto.ClientResponse, len(clients))
	for i := range clients {
		data[i] = *clientToResponse(&clients[i])
	}
	return &dto.ClientListResponse{Data: data, Total: total, Page: page, Limit: limit}
}
