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

// PurposeService manages the ledger category lookup. Statements relate to
// purposes by name only, so renaming a purpose does not rewrite history.
type PurposeService interface {
	Create(ctx context.Context, req dto.CreatePurposeRequest) (*dto.PurposeResponse, error)
	FindByID(ctx context.Context, id uuid.UUID) (*dto.PurposeResponse, error)
	Search(ctx context.Context, page, limit int, search string) (*dto.PurposeListResponse, error)
	Paginate(ctx context.Context, q dto.PageQuery) (*dto.PurposeListResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdatePurposeRequest) (*dto.PurposeResponse, error)
	Remove(ctx context.Context, id uuid.UUID) (bool, error)
}

type purposeService struct {
	purposeRepo repository.PurposeRepository
}

func NewPurposeService(purposeRepo repository.PurposeRepository) PurposeService {
	return &purposeService{purposeRepo: purposeRepo}
}

func (s *purposeService) Create(ctx context.Context, req dto.CreatePurposeRequest) (*dto.PurposeResponse, error) {
	if _, err := s.purposeRepo.FindByName(ctx, req.Name); err == nil {
		return nil, apierror.Conflict("purpose already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	p := &model.Purpose{Name: req.Name}
	if err := s.purposeRepo.Create(ctx, p); err != nil {
		return nil, err
	}
	return purposeToResponse(p), nil
}

func (s *purposeService) FindByID(ctx context.Context, id uuid.UUID) (*dto.PurposeResponse, error) {
	p, err := s.purposeRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("purpose not found")
		}
		return nil, err
	}
	return purposeToResponse(p), nil
}

func (s *purposeService) Search(ctx context.Context, page, limit int, search string) (*dto.PurposeListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 200 {
		limit = 10
	}
	purposes, total, err := s.purposeRepo.Search(ctx, page, limit, search)
	if err != nil {
		return nil, err
	}
	return purposeListResponse(purposes, total, page, limit), nil
}

func (s *purposeService) Paginate(ctx context.Context, q dto.PageQuery) (*dto.PurposeListResponse, error) {
	q.Defaults()
	purposes, total, err := s.purposeRepo.Paginate(ctx, q)
	if err != nil {
		return nil, err
	}
	return purposeListResponse(purposes, total, q.Page, q.Limit), nil
}

func (s *purposeService) Update(ctx context.Context, id uuid.UUID, req dto.UpdatePurposeRequest) (*dto.PurposeResponse, error) {
	p, err := s.purposeRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("purpose not found")
		}
		return nil, err
	}

	if req.Name != p.Name {
		if _, err := s.purposeRepo.FindByName(ctx, req.Name); err == nil {
			return nil, apierror.Conflict("purpose already exists")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}
	p.Name = req.Name

	if err := s.purposeRepo.Update(ctx, p); err != nil {
		return nil, err
	}
	return purposeToResponse(p), nil
}

func (s *purposeService) Remove(ctx context.Context, id uuid.UUID) (bool, error) {
	return s.purposeRepo.SoftDelete(ctx, id)
}

// ─── Mapping ─────────────────────────────────────────────────────────────────

func purposeToResponse(p *model.Purpose) *dto.PurposeResponse {
	return &dto.PurposeResponse{ID: p.ID.String(), Name: p.Name}
}

func purposeListResponse(purposes []model.Purpose, total int64, page, limit int) *dto.PurposeListResponse {
	data := make([]dto.PurposeResponse, len(purposes))
	for i := range purposes {
		data[i] = *purposeToResponse(&purposes[i])
	}
	return &dto.PurposeListResponse{Data: data, Total: total, Page: page, Limit: limit}
}
