package service

import (
	"context"
	"errors"
	"time"

	"github.com/tahrim-ahmed/invoice-api/internal/apierror"
	"github.com/tahrim-ahmed/invoice-api/internal/dto"
	"github.com/tahrim-ahmed/invoice-api/internal/model"
	"github.com/tahrim-ahmed/invoice-api/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StatementService manages the financial ledger. Workflow postings (invoice
// and purchase creation, payments) go through the purchase / invoice services
// inside their transactions; this service covers manual entries and reads.
type StatementService interface {
	Create(ctx context.Context, req dto.CreateStatementRequest) (*dto.StatementResponse, error)
	FindByID(ctx context.Context, id uuid.UUID) (*dto.StatementResponse, error)
	ListByReference(ctx context.Context, refType string, refID uuid.UUID) ([]dto.StatementResponse, error)
	Search(ctx context.Context, page, limit int, search string) (*dto.StatementListResponse, error)
	Paginate(ctx context.Context, q dto.PageQuery) (*dto.StatementListResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateStatementRequest) (*dto.StatementResponse, error)
	Remove(ctx context.Context, id uuid.UUID) (bool, error)
	SummaryByPurpose(ctx context.Context) ([]dto.PurposeSummary, error)
}

type statementService struct {
	statementRepo repository.StatementRepository
}

func NewStatementService(statementRepo repository.StatementRepository) StatementService {
	return &statementService{statementRepo: statementRepo}
}

func (s *statementService) Create(ctx context.Context, req dto.CreateStatementRequest) (*dto.StatementResponse, error) {
	st := &model.Statement{
		Purpose: req.Purpose,
		Amount:  req.Amount,
	}
	if req.ReferenceType != "" && req.ReferenceID != "" {
		refID, err := uuid.Parse(req.ReferenceID)
		if err != nil {
			return nil, apierror.BadRequest("invalid reference id")
		}
		st.ReferenceType = req.ReferenceType
		st.ReferenceID = refID
	}
	if err := s.statementRepo.Create(ctx, st); err != nil {
		return nil, err
	}
	return statementToResponse(st), nil
}

func (s *statementService) FindByID(ctx context.Context, id uuid.UUID) (*dto.StatementResponse, error) {
	st, err := s.statementRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("statement not found")
		}
		return nil, err
	}
	return statementToResponse(st), nil
}

func (s *statementService) ListByReference(ctx context.Context, refType string, refID uuid.UUID) ([]dto.StatementResponse, error) {
	if refType != model.ReferencePurchase && refType != model.ReferenceInvoice {
		return nil, apierror.BadRequest("unknown reference type")
	}
	statements, err := s.statementRepo.ListByReference(ctx, refType, refID)
	if err != nil {
		return nil, err
	}
	data := make([]dto.StatementResponse, len(statements))
	for i := range statements {
		data[i] = *statementToResponse(&statements[i])
	}
	return data, nil
}

func (s *statementService) Search(ctx context.Context, page, limit int, search string) (*dto.StatementListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 200 {
		limit = 10
	}
	statements, total, err := s.statementRepo.Search(ctx, page, limit, search)
	if err != nil {
		return nil, err
	}
	return statementListResponse(statements, total, page, limit), nil
}

func (s *statementService) Paginate(ctx context.Context, q dto.PageQuery) (*dto.StatementListResponse, error) {
	q.Defaults()
	statements, total, err := s.statementRepo.Paginate(ctx, q)
	if err != nil {
		return nil, err
	}
	return statementListResponse(statements, total, q.Page, q.Limit), nil
}

func (s *statementService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateStatementRequest) (*dto.StatementResponse, error) {
	st, err := s.statementRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("statement not found")
		}
		return nil, err
	}
	// Workflow postings are owned by their document; edits would desync the
	// ledger from the invoice or purchase they mirror.
	if st.ReferenceType != "" {
		return nil, apierror.Forbidden("statement belongs to a document and cannot be edited")
	}
	if req.Purpose != nil {
		st.Purpose = *req.Purpose
	}
	if req.Amount != nil {
		st.Amount = *req.Amount
	}
	if err := s.statementRepo.Update(ctx, st); err != nil {
		return nil, err
	}
	return statementToResponse(st), nil
}

func (s *statementService) Remove(ctx context.Context, id uuid.UUID) (bool, error) {
	return s.statementRepo.SoftDelete(ctx, id)
}

func (s *statementService) SummaryByPurpose(ctx context.Context) ([]dto.PurposeSummary, error) {
	return s.statementRepo.SummaryByPurpose(ctx)
}

// ─── Mapping ─────────────────────────────────────────────────────────────────

func statementToResponse(st *model.Statement) *dto.StatementResponse {
	resp := &dto.StatementResponse{
		ID:        st.ID.String(),
		Purpose:   st.Purpose,
		Amount:    st.Amount,
		CreatedAt: st.CreatedAt.Format(time.RFC3339),
	}
	if st.ReferenceType != "" {
		resp.ReferenceType = st.ReferenceType
		resp.ReferenceID = st.ReferenceID.String()
	}
	return resp
}

func statementListResponse(statements []model.Statement, total int64, page, limit int) *dto.StatementListResponse {
	data := make([]dto.StatementResponse, len(statements))
	for i := range statements {
		data[i] = *statementToResponse(&statements[i])
	}
	return &dto.StatementListResponse{Data: data, Total: total, Page: page, Limit: limit}
}
