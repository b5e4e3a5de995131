package repository

import (
	"context"

	"github.com/tahrim-ahmed/invoice-api/internal/dto"
	"github.com/tahrim-ahmed/invoice-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StatementRepository is the ledger store. Workflow postings run inside the
// caller's transaction — those methods take the tx instance explicitly.
type StatementRepository interface {
	Create(ctx context.Context, s *model.Statement) error
	CreateTx(ctx context.Context, tx *gorm.DB, s *model.Statement) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Statement, error)
	ListByReference(ctx context.Context, refType string, refID uuid.UUID) ([]model.Statement, error)
	Search(ctx context.Context, page, limit int, search string) ([]model.Statement, int64, error)
	Paginate(ctx context.Context, q dto.PageQuery) ([]model.Statement, int64, error)
	Update(ctx context.Context, s *model.Statement) error
	SoftDelete(ctx context.Context, id uuid.UUID) (bool, error)
	// RemoveByReferenceTx soft-deletes every posting tied to a document.
	// Used when the originating purchase / invoice is removed.
	RemoveByReferenceTx(ctx context.Context, tx *gorm.DB, refType string, refID uuid.UUID) (bool, error)
	SummaryByPurpose(ctx context.Context) ([]dto.PurposeSummary, error)
}

var statementSortColumns = map[string]string{
	"purpose":   "purpose",
	"amount":    "amount",
	"createdAt": "created_at",
	"updatedAt": "updated_at",
}

type statementRepo struct{ db *gorm.DB }

func NewStatementRepository(db *gorm.DB) StatementRepository { return &statementRepo{db: db} }

func (r *statementRepo) Create(ctx context.Context, s *model.Statement) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *statementRepo) CreateTx(ctx context.Context, tx *gorm.DB, s *model.Statement) error {
	return tx.WithContext(ctx).Create(s).Error
}

func (r *statementRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Statement, error) {
	var s model.Statement
	err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error
	return &s, err
}

func (r *statementRepo) ListByReference(ctx context.Context, refType string, refID uuid.UUID) ([]model.Statement, error) {
	var statements []model.Statement
	err := r.db.WithContext(ctx).
		Where("reference_type = ? AND reference_id = ?", refType, refID).
		Order("created_at ASC").
		Find(&statements).Error
	return statements, err
}

func (r *statementRepo) Search(ctx context.Context, page, limit int, search string) ([]model.Statement, int64, error) {
	var statements []model.Statement
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Statement{})
	if search != "" {
		q = q.Where("purpose ILIKE ? OR amount::text ILIKE ?", "%"+search+"%", "%"+search+"%")
	}
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Order("purpose DESC").Offset((page - 1) * limit).Limit(limit).Find(&statements).Error
	return statements, total, err
}

func (r *statementRepo) Paginate(ctx context.Context, pq dto.PageQuery) ([]model.Statement, int64, error) {
	var statements []model.Statement
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Statement{})
	if pq.Deleted {
		q = q.Unscoped()
	}
	if pq.Search != "" {
		q = q.Where("purpose ILIKE ? OR amount::text ILIKE ?", "%"+pq.Search+"%", "%"+pq.Search+"%")
	}
	if pq.StartDate != "" && pq.EndDate != "" {
		q = q.Where("DATE(created_at) BETWEEN ? AND ?", pq.StartDate, pq.EndDate)
	}
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Order(orderClause(statementSortColumns, pq.Sort, pq.Order)).
		Offset((pq.Page - 1) * pq.Limit).Limit(pq.Limit).
		Find(&statements).Error
	return statements, total, err
}

func (r *statementRepo) Update(ctx context.Context, s *model.Statement) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *statementRepo) SoftDelete(ctx context.Context, id uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&model.Statement{}, "id = ?", id)
	return res.RowsAffected > 0, res.Error
}

func (r *statementRepo) RemoveByReferenceTx(ctx context.Context, tx *gorm.DB, refType string, refID uuid.UUID) (bool, error) {
	res := tx.WithContext(ctx).
		Where("reference_type = ? AND reference_id = ?", refType, refID).
		Delete(&model.Statement{})
	return res.RowsAffected > 0, res.Error
}

// SummaryByPurpose aggregates posted amounts per ledger category. Categories
// from the purposes lookup with no postings appear with a zero total.
func (r *statementRepo) SummaryByPurpose(ctx context.Context) ([]dto.PurposeSummary, error) {
	var rows []dto.PurposeSummary
	err := r.db.WithContext(ctx).Raw(`
		SELECT p.name AS purpose, COALESCE(SUM(s.amount), 0) AS total
		FROM purposes p
		LEFT JOIN statements s
		  ON s.purpose = p.name AND s.deleted_at IS NULL
		WHERE p.deleted_at IS NULL
		GROUP BY p.name
		ORDER BY p.name ASC`).
		Scan(&rows).Error
	return rows, err
}
