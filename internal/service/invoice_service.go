package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tahrim-ahmed/invoice-api/internal/apierror"
	"github.com/tahrim-ahmed/invoice-api/internal/dto"
	"github.com/tahrim-ahmed/invoice-api/internal/model"
	"github.com/tahrim-ahmed/invoice-api/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// InvoiceService is the heart of the sales workflow: invoice creation posts
// the receivable to the ledger, payment endpoints move the paid amount toward
// the invoice total, and removal reverses the postings.
//
// Invariants held across every operation:
//   - PaidAmount never exceeds TotalMRP.
//   - Payment is "Paid" exactly when PaidAmount equals TotalMRP, and a paid
//     invoice carries no credit period.
//   - Every taka paid has a matching "Paid by Customer" posting referencing
//     the invoice.
type InvoiceService interface {
	Create(ctx context.Context, req dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error)
	FindByID(ctx context.Context, id uuid.UUID) (*dto.InvoiceResponse, error)
	MarkPaid(ctx context.Context, id uuid.UUID) (bool, error)
	PartialPayment(ctx context.Context, id uuid.UUID, amount decimal.Decimal) (bool, error)
	Search(ctx context.Context, page, limit int, search string) (*dto.InvoiceListResponse, error)
	Paginate(ctx context.Context, q dto.PageQuery) (*dto.InvoiceListResponse, error)
	Remove(ctx context.Context, id uuid.UUID) (bool, error)
	Chart(ctx context.Context) ([]dto.MonthlySales, error)
}

type invoiceService struct {
	invoiceRepo   repository.InvoiceRepository
	clientRepo    repository.ClientRepository
	productRepo   repository.ProductRepository
	statementRepo repository.StatementRepository
	db            *gorm.DB
}

func NewInvoiceService(
	invoiceRepo repository.InvoiceRepository,
	clientRepo repository.ClientRepository,
	productRepo repository.ProductRepository,
	statementRepo repository.StatementRepository,
	db *gorm.DB,
) InvoiceService {
	return &invoiceService{
		invoiceRepo:   invoiceRepo,
		clientRepo:    clientRepo,
		productRepo:   productRepo,
		statementRepo: statementRepo,
		db:            db,
	}
}

func (s *invoiceService) Create(ctx context.Context, req dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	clientID, err := uuid.Parse(req.ClientID)
	if err != nil {
		return nil, apierror.BadRequest("invalid client id")
	}
	if _, err := s.clientRepo.FindByID(ctx, clientID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("client not found")
		}
		return nil, err
	}

	orderDate, err := time.Parse(dateLayout, req.OrderDate)
	if err != nil {
		return nil, apierror.BadRequest("invalid order date")
	}
	shippingDate, err := time.Parse(dateLayout, req.ShippingDate)
	if err != nil {
		return nil, apierror.BadRequest("invalid shipping date")
	}

	// Pre-flight product resolution, outside the transaction.
	details := make([]model.InvoiceDetail, 0, len(req.Lines))
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
		details = append(details, model.InvoiceDetail{
			ProductID: productID,
			Quantity:  line.Quantity,
			UnitTP:    line.UnitTP,
			UnitMRP:   line.UnitMRP,
			Discount:  line.Discount,
		})
	}

	inv := &model.Invoice{
		ClientID:        clientID,
		OrderDate:       orderDate,
		ShippingDate:    shippingDate,
		Platform:        req.Platform,
		Payment:         model.PaymentUnpaid,
		PaymentType:     req.PaymentType,
		TotalTP:         req.TotalTP,
		TotalMRP:        req.TotalMRP,
		TotalCommission: req.Commission,
		TotalProfit:     req.TotalProfit,
		Others:          req.Others,
		PaidAmount:      decimal.Zero,
		Details:         details,
	}

	// Cash settles on the spot: fully paid, no credit period.
	if req.PaymentType == model.PaymentTypeCash {
		inv.Payment = model.PaymentPaid
		inv.PaidAmount = req.TotalMRP
	} else if req.CreditPeriod != nil {
		cp, err := time.Parse(dateLayout, *req.CreditPeriod)
		if err != nil {
			return nil, apierror.BadRequest("invalid credit period")
		}
		inv.CreditPeriod = &cp
	}

	err = runTx(ctx, s.db, func(tx *gorm.DB) error {
		seq, err := s.invoiceRepo.NextInvoiceSeq(ctx, tx)
		if err != nil {
			return err
		}
		inv.InvoiceNo = fmt.Sprintf("%s-%06d", time.Now().Format("20060102"), seq)

		if err := s.invoiceRepo.CreateTx(ctx, tx, inv); err != nil {
			return err
		}

		// The sale itself: what the customer owes.
		if err := s.statementRepo.CreateTx(ctx, tx, &model.Statement{
			Purpose:       model.PurposeCustomerPayable,
			Amount:        inv.TotalMRP,
			ReferenceType: model.ReferenceInvoice,
			ReferenceID:   inv.ID,
		}); err != nil {
			return err
		}

		// Cash invoices also record the immediate settlement.
		if inv.PaymentType == model.PaymentTypeCash {
			return s.statementRepo.CreateTx(ctx, tx, &model.Statement{
				Purpose:       model.PurposePaidByCustomer,
				Amount:        inv.TotalMRP,
				ReferenceType: model.ReferenceInvoice,
				ReferenceID:   inv.ID,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("invoice_id", inv.ID.String()).
		Str("invoice_no", inv.InvoiceNo).
		Str("payment_type", inv.PaymentType).
		Msg("invoice created")

	created, err := s.invoiceRepo.FindByID(ctx, inv.ID)
	if err != nil {
		return invoiceToResponse(inv), nil
	}
	return invoiceToResponse(created), nil
}

func (s *invoiceService) FindByID(ctx context.Context, id uuid.UUID) (*dto.InvoiceResponse, error) {
	inv, err := s.invoiceRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("invoice not found")
		}
		return nil, err
	}
	return invoiceToResponse(inv), nil
}

// MarkPaid settles the remaining balance in full.
func (s *invoiceService) MarkPaid(ctx context.Context, id uuid.UUID) (bool, error) {
	inv, err := s.invoiceRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, apierror.NotFound("invoice not found")
		}
		return false, err
	}
	if inv.Payment == model.PaymentPaid {
		return false, apierror.Forbidden("invoice is already paid")
	}

	remaining := inv.TotalMRP.Sub(inv.PaidAmount)
	inv.Payment = model.PaymentPaid
	inv.PaidAmount = inv.TotalMRP
	inv.CreditPeriod = nil

	err = runTx(ctx, s.db, func(tx *gorm.DB) error {
		if err := s.invoiceRepo.UpdateTx(ctx, tx, inv); err != nil {
			return err
		}
		if remaining.IsZero() {
			return nil
		}
		return s.statementRepo.CreateTx(ctx, tx, &model.Statement{
			Purpose:       model.PurposePaidByCustomer,
			Amount:        remaining,
			ReferenceType: model.ReferenceInvoice,
			ReferenceID:   inv.ID,
		})
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

// PartialPayment applies amount toward the invoice. A payment exceeding the
// remaining balance is rejected; one exactly covering it settles the invoice.
func (s *invoiceService) PartialPayment(ctx context.Context, id uuid.UUID, amount decimal.Decimal) (bool, error) {
	if !amount.IsPositive() {
		return false, apierror.BadRequest("payment amount must be positive")
	}

	inv, err := s.invoiceRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, apierror.NotFound("invoice not found")
		}
		return false, err
	}
	if inv.Payment == model.PaymentPaid {
		return false, apierror.Forbidden("invoice is already paid")
	}

	remaining := inv.TotalMRP.Sub(inv.PaidAmount)
	if amount.GreaterThan(remaining) {
		return false, apierror.Conflict("payment exceeds remaining balance")
	}

	inv.PaidAmount = inv.PaidAmount.Add(amount)
	if inv.PaidAmount.Equal(inv.TotalMRP) {
		inv.Payment = model.PaymentPaid
		inv.CreditPeriod = nil
	}

	err = runTx(ctx, s.db, func(tx *gorm.DB) error {
		if err := s.invoiceRepo.UpdateTx(ctx, tx, inv); err != nil {
			return err
		}
		return s.statementRepo.CreateTx(ctx, tx, &model.Statement{
			Purpose:       model.PurposePaidByCustomer,
			Amount:        amount,
			ReferenceType: model.ReferenceInvoice,
			ReferenceID:   inv.ID,
		})
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *invoiceService) Search(ctx context.Context, page, limit int, search string) (*dto.InvoiceListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 200 {
		limit = 10
	}
	invoices, total, err := s.invoiceRepo.Search(ctx, page, limit, search)
	if err != nil {
		return nil, err
	}
	return invoiceListResponse(invoices, total, page, limit), nil
}

func (s *invoiceService) Paginate(ctx context.Context, q dto.PageQuery) (*dto.InvoiceListResponse, error) {
	q.Defaults()
	invoices, total, err := s.invoiceRepo.Paginate(ctx, q)
	if err != nil {
		return nil, err
	}
	return invoiceListResponse(invoices, total, q.Page, q.Limit), nil
}

// Remove soft-deletes the invoice and every ledger posting referencing it,
// including payment postings.
func (s *invoiceService) Remove(ctx context.Context, id uuid.UUID) (bool, error) {
	if _, err := s.invoiceRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, apierror.NotFound("invoice not found")
		}
		return false, err
	}

	var deleted bool
	err := runTx(ctx, s.db, func(tx *gorm.DB) error {
		var err error
		deleted, err = s.invoiceRepo.SoftDeleteTx(ctx, tx, id)
		if err != nil {
			return err
		}
		if !deleted {
			return nil
		}
		_, err = s.statementRepo.RemoveByReferenceTx(ctx, tx, model.ReferenceInvoice, id)
		return err
	})
	return deleted, err
}

func (s *invoiceService) Chart(ctx context.Context) ([]dto.MonthlySales, error) {
	return s.invoiceRepo.MonthlySales(ctx)
}

// ─── Mapping ─────────────────────────────────────────────────────────────────

func invoiceToResponse(inv *model.Invoice) *dto.InvoiceResponse {
	lines := make([]dto.InvoiceLineResponse, len(inv.Details))
	for i, d := range inv.Details {
		lines[i] = dto.InvoiceLineResponse{
			ProductID: d.ProductID.String(),
			Quantity:  d.Quantity,
			UnitTP:    d.UnitTP,
			UnitMRP:   d.UnitMRP,
			Discount:  d.Discount,
		}
		if d.Product != nil {
			lines[i].Product = d.Product.Name
			lines[i].PackSize = d.Product.PackSize
		}
	}

	resp := &dto.InvoiceResponse{
		ID:           inv.ID.String(),
		InvoiceNo:    inv.InvoiceNo,
		OrderDate:    inv.OrderDate.Format(dateLayout),
		ShippingDate: inv.ShippingDate.Format(dateLayout),
		Platform:     inv.Platform,
		Payment:      inv.Payment,
		PaymentType:  inv.PaymentType,
		TotalTP:      inv.TotalTP,
		TotalMRP:     inv.TotalMRP,
		Commission:   inv.TotalCommission,
		TotalProfit:  inv.TotalProfit,
		Others:       inv.Others,
		PaidAmount:   inv.PaidAmount,
		Lines:        lines,
	}
	if inv.CreditPeriod != nil {
		cp := inv.CreditPeriod.Format(dateLayout)
		resp.CreditPeriod = &cp
	}
	if inv.Client != nil {
		resp.Client = clientToResponse(inv.Client)
	}
	return resp
}

func invoiceListResponse(invoices []model.Invoice, total int64, page, limit int) *dto.InvoiceListResponse {
	data := make([]dto.InvoiceResponse, len(invoices))
	for i := range invoices {
		data[i] = *invoiceToResponse(&invoices[i])
	}
	return &dto.InvoiceListResponse{Data: data, Total: total, Page: page, Limit: limit}
}
