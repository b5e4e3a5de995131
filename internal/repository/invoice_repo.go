package repository

import (
	"context"

	"github.com/tahrim-ahmed/invoice-api/internal/dto"
	"github.com/tahrim-ahmed/invoice-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InvoiceRepository interface {
	CreateTx(ctx context.Context, tx *gorm.DB, inv *model.Invoice) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Invoice, error)
	UpdateTx(ctx context.Context, tx *gorm.DB, inv *model.Invoice) error
	// NextInvoiceSeq pulls the next value of the invoice number sequence.
	// Runs inside the creation transaction so numbering stays gapless per tx.
	NextInvoiceSeq(ctx context.Context, tx *gorm.DB) (int64, error)
	Search(ctx context.Context, page, limit int, search string) ([]model.Invoice, int64, error)
	Paginate(ctx context.Context, q dto.PageQuery) ([]model.Invoice, int64, error)
	SoftDeleteTx(ctx context.Context, tx *gorm.DB, id uuid.UUID) (bool, error)
	MonthlySales(ctx context.Context) ([]dto.MonthlySales, error)
	DB() *gorm.DB
}

// Columns are qualified: the pagination query joins clients, which shares
// the created_at / updated_at column names.
var invoiceSortColumns = map[string]string{
	"invoiceNo":    "invoices.invoice_no",
	"orderDate":    "invoices.order_date",
	"shippingDate": "invoices.shipping_date",
	"platform":     "invoices.platform",
	"payment":      "invoices.payment",
	"totalMRP":     "invoices.total_mrp",
	"paidAmount":   "invoices.paid_amount",
	"createdAt":    "invoices.created_at",
	"updatedAt":    "invoices.updated_at",
}

type invoiceRepo struct{ db *gorm.DB }

func NewInvoiceRepository(db *gorm.DB) InvoiceRepository { return &invoiceRepo{db: db} }

func (r *invoiceRepo) DB() *gorm.DB { return r.db }

func (r *invoiceRepo) CreateTx(ctx context.Context, tx *gorm.DB, inv *model.Invoice) error {
	return tx.WithContext(ctx).Create(inv).Error
}

func (r *invoiceRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Invoice, error) {
	var inv model.Invoice
	err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Details.Product").
		First(&inv, "id = ?", id).Error
	return &inv, err
}

func (r *invoiceRepo) UpdateTx(ctx context.Context, tx *gorm.DB, inv *model.Invoice) error {
	// Save would cascade the preloaded associations; update the header only.
	return tx.WithContext(ctx).Omit("Client", "Details").Save(inv).Error
}

func (r *invoiceRepo) NextInvoiceSeq(ctx context.Context, tx *gorm.DB) (int64, error) {
	var seq int64
	err := tx.WithContext(ctx).Raw("SELECT nextval('invoices_invoice_no_seq')").Scan(&seq).Error
	return seq, err
}

func (r *invoiceRepo) Search(ctx context.Context, page, limit int, search string) ([]model.Invoice, int64, error) {
	var invoices []model.Invoice
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Invoice{}).
		Joins("JOIN clients ON clients.id = invoices.client_id AND clients.deleted_at IS NULL")
	if search != "" {
		q = q.Where("invoices.invoice_no ILIKE ? OR clients.code ILIKE ? OR clients.name ILIKE ?",
			"%"+search+"%", "%"+search+"%", "%"+search+"%")
	}
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Preload("Client").
		Order("invoices.order_date DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&invoices).Error
	return invoices, total, err
}

func (r *invoiceRepo) Paginate(ctx context.Context, pq dto.PageQuery) ([]model.Invoice, int64, error) {
	var invoices []model.Invoice
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Invoice{}).
		Joins("JOIN clients ON clients.id = invoices.client_id")
	if pq.Deleted {
		q = q.Unscoped()
	}
	if pq.StartDate != "" && pq.EndDate != "" {
		q = q.Where("DATE(invoices.order_date) BETWEEN ? AND ?", pq.StartDate, pq.EndDate)
	}
	if pq.Search != "" {
		q = q.Where("invoices.invoice_no ILIKE ? OR clients.code ILIKE ? OR clients.name ILIKE ?",
			"%"+pq.Search+"%", "%"+pq.Search+"%", "%"+pq.Search+"%")
	}
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Preload("Client").Preload("Details.Product").
		Order(orderClause(invoiceSortColumns, pq.Sort, pq.Order)).
		Offset((pq.Page - 1) * pq.Limit).Limit(pq.Limit).
		Find(&invoices).Error
	return invoices, total, err
}

func (r *invoiceRepo) SoftDeleteTx(ctx context.Context, tx *gorm.DB, id uuid.UUID) (bool, error) {
	res := tx.WithContext(ctx).Delete(&model.Invoice{}, "id = ?", id)
	return res.RowsAffected > 0, res.Error
}

// MonthlySales sums invoiced MRP per calendar month, newest first.
func (r *invoiceRepo) MonthlySales(ctx context.Context) ([]dto.MonthlySales, error) {
	var rows []dto.MonthlySales
	err := r.db.WithContext(ctx).Raw(`
		SELECT EXTRACT(YEAR FROM order_date)::int  AS year,
		       EXTRACT(MONTH FROM order_date)::int AS month,
		       SUM(total_mrp)                      AS total
		FROM invoices
		WHERE deleted_at IS NULL
		GROUP BY 1, 2
		ORDER BY 1 DESC, 2 DESC`).
		Scan(&rows).Error
	return rows, err
}
