package repository

import (
	"context"

	"github.com/tahrim-ahmed/invoice-api/internal/dto"
	"github.com/tahrim-ahmed/invoice-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PurposeRepository interface {
	Create(ctx context.Context, p *model.Purpose) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Purpose, error)
	FindByName(ctx context.Context, name string) (*model.Purpose, error)
	Search(ctx context.Context, page, limit int, search string) ([]model.Purpose, int64, error)
	Paginate(ctx context.Context, q dto.PageQuery) ([]model.Purpose, int64, error)
	Update(ctx context.Context, p *model.Purpose) error
	SoftDelete(ctx context.Context, id uuid.UUID) (bool, error)
}

var purposeSortColumns = map[string]string{
	"name":      "name",
	"createdAt": "created_at",
	"updatedAt": "updated_at",
}

type purposeRepo struct{ db *gorm.DB }

func NewPurposeRepository(db *gorm.DB) PurposeRepository { return &purposeRepo{db: db} }

func (r *purposeRepo) Create(ctx context.Context, p *model.Purpose) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *purposeRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Purpose, error) {
	var p model.Purpose
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	return &p, err
}

func (r *purposeRepo) FindByName(ctx context.Context, name string) (*model.Purpose, error) {
	var p model.Purpose
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&p).Error
	return &p, err
}

func (r *purposeRepo) Search(ctx context.Context, page, limit int, search string) ([]model.Purpose, int64, error) {
	var purposes []model.Purpose
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Purpose{})
	if search != "" {
		q = q.Where("name ILIKE ?", "%"+search+"%")
	}
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Order("name ASC").Offset((page - 1) * limit).Limit(limit).Find(&purposes).Error
	return purposes, total, err
}

func (r *purposeRepo) Paginate(ctx context.Context, pq dto.PageQuery) ([]model.Purpose, int64, error) {
	var purposes []model.Purpose
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Purpose{})
	if pq.Search != "" {
		q = q.Where("name ILIKE ?", "%"+pq.Search+"%")
	}
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Order(orderClause(purposeSortColumns, pq.Sort, pq.Order)).
		Offset((pq.Page - 1) * pq.Limit).Limit(pq.Limit).
		Find(&purposes).Error
	return purposes, total, err
}

func (r *purposeRepo) Update(ctx context.Context, p *model.Purpose) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *purposeRepo) SoftDelete(ctx context.Context, id uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&model.Purpose{}, "id = ?", id)
	return res.RowsAffected > 0, res.Error
}
