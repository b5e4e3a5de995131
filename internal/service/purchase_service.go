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
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

// StockNotifier emits stock-increment events after a purchase commits.
// Implemented by worker.Dispatcher; nil disables notifications (tests).
type StockNotifier interface {
	EnqueueStockIncrement(ctx context.Context, productID uuid.UUID, quantity int) error
}

// PurchaseService records goods acquisitions. Creating a purchase posts one
// ledger entry whose purpose depends on the purchase type, then notifies the
// stock worker per line. Removing a purchase reverses the ledger postings but
// deliberately leaves stock untouched: the goods are physically present and
// a later inventory correction is the operator's call.
type PurchaseService interface {
	Create(ctx context.Context, req dto.CreatePurchaseRequest) (*dto.PurchaseResponse, error)
	FindByID(ctx context.Context, id uuid.UUID) (*dto.PurchaseResponse, error)
	Search(ctx context.Context, page, limit int, search string) (*dto.PurchaseListResponse, error)
	Paginate(ctx context.Context, q dto.PageQuery) (*dto.PurchaseListResponse, error)
	Remove(ctx context.Context, id uuid.UUID) (bool, error)
}

type purchaseService struct {
	purchaseRepo  repository.PurchaseRepository
	productRepo   repository.ProductRepository
	statementRepo repository.StatementRepository
	notifier      StockNotifier
	db            *gorm.DB
}

func NewPurchaseService(
	purchaseRepo repository.PurchaseRepository,
	productRepo repository.ProductRepository,
	statementRepo repository.StatementRepository,
	notifier StockNotifier,
	db *gorm.DB,
) PurchaseService {
	return &purchaseService{
		purchaseRepo:  purchaseRepo,
		productRepo:   productRepo,
		statementRepo: statementRepo,
		notifier:      notifier,
		db:            db,
	}
}

func (s *purchaseService) Create(ctx context.Context, req dto.CreatePurchaseRequest) (*dto.PurchaseResponse, error) {
	purchaseDate, err := time.Parse(dateLayout, req.PurchaseDate)
	if err != nil {
		return nil, apierror.BadRequest("invalid purchase date")
	}

	// Pre-flight: resolve every product before opening the transaction.
	details := make([]model.PurchaseDetail, 0, len(req.Lines))
	for _, line := range req.Lines {
		productID, err := uuid.Parse(line.ProductID)
		if err != nil {
			return nil, apierror.BadRequest("invalid product id")
		}
		if _, err := s.productRepo.FindByID(ctx, productID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apierror.NotFound("product not found")
			}
			return nil, err
		}
		details = append(details, model.PurchaseDetail{
			ProductID: productID,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
		})
	}

	purchase := &model.Purchase{
		PurchaseDate: purchaseDate,
		TotalPrice:   req.TotalPrice,
		Type:         req.Type,
		Details:      details,
	}

	err = runTx(ctx, s.db, func(tx *gorm.DB) error {
		if err := s.purchaseRepo.CreateTx(ctx, tx, purchase); err != nil {
			return err
		}
		purpose := model.PurposePurchasedCash
		if purchase.Type == model.PurchaseTypeBayer {
			purpose = model.PurposeBayerReceivable
		}
		return s.statementRepo.CreateTx(ctx, tx, &model.Statement{
			Purpose:       purpose,
			Amount:        purchase.TotalPrice,
			ReferenceType: model.ReferencePurchase,
			ReferenceID:   purchase.ID,
		})
	})
	if err != nil {
		return nil, err
	}

	// Fire-and-forget: stock increments ride the queue. A lost event leaves
	// stock short, never the ledger — acceptable per the async design.
	if s.notifier != nil {
		for _, d := range purchase.Details {
			if err := s.notifier.EnqueueStockIncrement(ctx, d.ProductID, d.Quantity); err != nil {
				log.Error().Err(err).
					Str("purchase_id", purchase.ID.String()).
					Str("product_id", d.ProductID.String()).
					Msg("failed to enqueue stock increment")
			}
		}
	}

	created, err := s.purchaseRepo.FindByID(ctx, purchase.ID)
	if err != nil {
		// Created but not reloadable; map what we have.
		return purchaseToResponse(purchase), nil
	}
	return purchaseToResponse(created), nil
}

func (s *purchaseService) FindByID(ctx context.Context, id uuid.UUID) (*dto.PurchaseResponse, error) {
	purchase, err := s.purchaseRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("purchase not found")
		}
		return nil, err
	}
	return purchaseToResponse(purchase), nil
}

func (s *purchaseService) Search(ctx context.Context, page, limit int, search string) (*dto.PurchaseListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 200 {
		limit = 10
	}
	purchases, total, err := s.purchaseRepo.Search(ctx, page, limit, search)
	if err != nil {
		return nil, err
	}
	return purchaseListResponse(purchases, total, page, limit), nil
}

func (s *purchaseService) Paginate(ctx context.Context, q dto.PageQuery) (*dto.PurchaseListResponse, error) {
	q.Defaults()
	purchases, total, err := s.purchaseRepo.Paginate(ctx, q)
	if err != nil {
		return nil, err
	}
	return purchaseListResponse(purchases, total, q.Page, q.Limit), nil
}

// Remove soft-deletes the purchase and its ledger postings in one transaction.
// Stock is not decremented.
func (s *purchaseService) Remove(ctx context.Context, id uuid.UUID) (bool, error) {
	if _, err := s.purchaseRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, apierror.NotFound("purchase not found")
		}
		return false, err
	}

	var deleted bool
	err := runTx(ctx, s.db, func(tx *gorm.DB) error {
		var err error
		deleted, err = s.purchaseRepo.SoftDeleteTx(ctx, tx, id)
		if err != nil {
			return err
		}
		if !deleted {
			return nil
		}
		_, err = s.statementRepo.RemoveByReferenceTx(ctx, tx, model.ReferencePurchase, id)
		return err
	})
	return deleted, err
}

// ─── Mapping ─────────────────────────────────────────────────────────────────

func purchaseToResponse(p *model.Purchase) *dto.PurchaseResponse {
	lines := make([]dto.PurchaseLineResponse, len(p.Details))
	for i, d := range p.Details {
		lines[i] = dto.PurchaseLineResponse{
			ProductID: d.ProductID.String(),
			Quantity:  d.Quantity,
			UnitPrice: d.UnitPrice,
		}
		if d.Product != nil {
			lines[i].Product = d.Product.Name
			lines[i].PackSize = d.Product.PackSize
		}
	}
	return &dto.PurchaseResponse{
		ID:           p.ID.String(),
		PurchaseDate: p.PurchaseDate.Format(dateLayout),
		Type:         p.Type,
		TotalPrice:   p.TotalPrice,
		Lines:        lines,
		CreatedAt:    p.CreatedAt.Format(time.RFC3339),
	}
}

func purchaseListResponse(purchases []model.Purchase, total int64, page, limit int) *dto.PurchaseListResponse {
	data := make([]dto.PurchaseResponse, len(purchases))
	for i := range purchases {
		data[i] = *purchaseToResponse(&purchases[i])
	}
	return &dto.PurchaseListResponse{Data: data, Total: total, Page: page, Limit: limit}
}
