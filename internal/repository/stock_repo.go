package repository

import (
	"context"

	"github.com/tahrim-ahmed/invoice-api/internal/dto"
	"github.com/tahrim-ahmed/invoice-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type StockRepository interface {
	// UpsertIncrement atomically inserts a stock row for the product or adds
	// delta to the existing quantity. Keyed on the product_id unique index,
	// so concurrent increments cannot create duplicate rows or lose updates.
	UpsertIncrement(ctx context.Context, productID uuid.UUID, delta int) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Stock, error)
	FindByProduct(ctx context.Context, productID uuid.UUID) (*model.Stock, error)
	Search(ctx context.Context, page, limit int, search string) ([]model.Stock, int64, error)
	Paginate(ctx context.Context, q dto.PageQuery) ([]model.Stock, int64, error)
	SoftDelete(ctx context.Context, id uuid.UUID) (bool, error)
}

var stockSortColumns = map[string]string{
	"quantity":  "stock.quantity",
	"createdAt": "stock.created_at",
	"updatedAt": "stock.updated_at",
}

type stockRepo struct{ db *gorm.DB }

func NewStockRepository(db *gorm.DB) StockRepository { return &stockRepo{db: db} }

func (r *stockRepo) UpsertIncrement(ctx context.Context, productID uuid.UUID, delta int) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "product_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity":   gorm.Expr("stock.quantity + ?", delta),
			"updated_at": gorm.Expr("NOW()"),
		}),
	}).Create(&model.Stock{ProductID: productID, Quantity: delta}).Error
}

func (r *stockRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Stock, error) {
	var s model.Stock
	err := r.db.WithContext(ctx).Preload("Product").First(&s, "id = ?", id).Error
	return &s, err
}

func (r *stockRepo) FindByProduct(ctx context.Context, productID uuid.UUID) (*model.Stock, error) {
	var s model.Stock
	err := r.db.WithContext(ctx).Preload("Product").Where("product_id = ?", productID).First(&s).Error
	return &s, err
}

func (r *stockRepo) Search(ctx context.Context, page, limit int, search string) ([]model.Stock, int64, error) {
	var stock []model.Stock
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Stock{}).
		Joins("JOIN products ON products.id = stock.product_id AND products.deleted_at IS NULL")
	if search != "" {
		q = q.Where("products.name ILIKE ?", "%"+search+"%")
	}
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Preload("Product").
		Order("products.name ASC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&stock).Error
	return stock, total, err
}

func (r *stockRepo) Paginate(ctx context.Context, pq dto.PageQuery) ([]model.Stock, int64, error) {
	var stock []model.Stock
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Stock{}).
		Joins("JOIN products ON products.id = stock.product_id AND products.deleted_at IS NULL")
	if pq.Search != "" {
		q = q.Where("products.name ILIKE ?", "%"+pq.Search+"%")
	}
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Preload("Product").
		Order(orderClause(stockSortColumns, pq.Sort, pq.Order)).
		Offset((pq.Page - 1) * pq.Limit).Limit(pq.Limit).
		Find(&stock).Error
	return stock, total, err
}

func (r *stockRepo) SoftDelete(ctx context.Context, id uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&model.Stock{}, "id = ?", id)
	return res.RowsAffected > 0, res.Error
}
