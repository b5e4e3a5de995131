package repository

import (
	"context"

	"github.com/tahrim-ahmed/invoice-api/internal/dto"
	"github.com/tahrim-ahmed/invoice-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PurchaseRepository interface {
	CreateTx(ctx context.Context, tx *gorm.DB, p *model.Purchase) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Purchase, error)
	Search(ctx context.Context, page, limit int, search string) ([]model.Purchase, int64, error)
	Paginate(ctx context.Context, q dto.PageQuery) ([]model.Purchase, int64, error)
	SoftDeleteTx(ctx context.Context, tx *gorm.DB, id uuid.UUID) (bool, error)
	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

var purchaseSortColumns = map[string]string{
	"purchaseDate": "purchase_date",
	"totalPrice":   "total_price",
	"type":         "type",
	"createdAt":    "created_at",
	"updatedAt":    "updated_at",
}

type purchaseRepo struct{ db *gorm.DB }

func NewPurchaseRepository(db *gorm.DB) PurchaseRepository { return &purchaseRepo{db: db} }

func (r *purchaseRepo) DB() *gorm.DB { return r.db }

// CreateTx inserts the header and all detail lines in one go; GORM cascades
// the association inside the caller's transaction.
func (r *purchaseRepo) CreateTx(ctx context.Context, tx *gorm.DB, p *model.Purchase) error {
	return tx.WithContext(ctx).Create(p).Error
}

func (r *purchaseRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Purchase, error) {
	var p model.Purchase
	err := r.db.WithContext(ctx).Preload("Details.Product").First(&p, "id = ?", id).Error
	return &p, err
}

func (r *purchaseRepo) Search(ctx context.Context, page, limit int, search string) ([]model.Purchase, int64, error) {
	var purchases []model.Purchase
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Purchase{})
	if search != "" {
		q = q.Where("type ILIKE ?", "%"+search+"%")
	}
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Order("purchase_date DESC").Offset((page - 1) * limit).Limit(limit).Find(&purchases).Error
	return purchases, total, err
}

func (r *purchaseRepo) Paginate(ctx context.Context, pq dto.PageQuery) ([]model.Purchase, int64, error) {
	var purchases []model.Purchase
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Purchase{})
	if pq.Deleted {
		q = q.Unscoped()
	}
	if pq.StartDate != "" && pq.EndDate != "" {
		q = q.Where("DATE(purchase_date) BETWEEN ? AND ?", pq.StartDate, pq.EndDate)
	}
	if pq.Search != "" {
		q = q.Where("type ILIKE ?", "%"+pq.Search+"%")
	}
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Preload("Details.Product").
		Order(orderClause(purchaseSortColumns, pq.Sort, pq.Order)).
		Offset((pq.Page - 1) * pq.Limit).Limit(pq.Limit).
		Find(&purchases).Error
	return purchases, total, err
}

func (r *purchaseRepo) SoftDeleteTx(ctx context.Context, tx *gorm.DB, id uuid.UUID) (bool, error) {
	res := tx.WithContext(ctx).Delete(&model.Purchase{}, "id = ?", id)
	return res.RowsAffected > 0, res.Error
}
