package service

import (
	"context"
	"sort"

	"github.com/tahrim-ahmed/invoice-api/internal/dto"
	"github.com/tahrim-ahmed/invoice-api/internal/model"
	"github.com/tahrim-ahmed/invoice-api/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ── In-memory repository stubs ───────────────────────────────────────────────
// All stubs return gorm.ErrRecordNotFound for misses so the services map them
// to 404s exactly as with the real repositories. Tx parameters are nil in
// tests; runTx passes the function straight through.

type stubProductRepo struct {
	products map[uuid.UUID]*model.Product
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{products: make(map[uuid.UUID]*model.Product)}
}

func (r *stubProductRepo) seed(name, packSize string) *model.Product {
	p := &model.Product{Name: name, PackSize: packSize}
	p.ID = uuid.New()
	r.products[p.ID] = p
	return p
}

func (r *stubProductRepo) Create(_ context.Context, p *model.Product) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.products[p.ID] = p
	return nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *stubProductRepo) Search(_ context.Context, _, _ int, _ string) ([]model.Product, int64, error) {
	out := make([]model.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (r *stubProductRepo) Paginate(_ context.Context, _ dto.PageQuery) ([]model.Product, int64, error) {
	return r.Search(context.Background(), 1, 10, "")
}

func (r *stubProductRepo) Update(_ context.Context, p *model.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *stubProductRepo) SoftDelete(_ context.Context, id uuid.UUID) (bool, error) {
	if _, ok := r.products[id]; !ok {
		return false, nil
	}
	delete(r.products, id)
	return true, nil
}

var _ repository.ProductRepository = (*stubProductRepo)(nil)

type stubClientRepo struct {
	clients map[uuid.UUID]*model.Client
}

func newStubClientRepo() *stubClientRepo {
	return &stubClientRepo{clients: make(map[uuid.UUID]*model.Client)}
}

func (r *stubClientRepo) seed(code, name string) *model.Client {
	c := &model.Client{Code: code, Name: name}
	c.ID = uuid.New()
	r.clients[c.ID] = c
	return c
}

func (r *stubClientRepo) Create(_ context.Context, c *model.Client) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.clients[c.ID] = c
	return nil
}

func (r *stubClientRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Client, error) {
	c, ok := r.clients[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (r *stubClientRepo) FindByCode(_ context.Context, code string) (*model.Client, error) {
	for _, c := range r.clients {
		if c.Code == code {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubClientRepo) Search(_ context.Context, _, _ int, _ string) ([]model.Client, int64, error) {
	out := make([]model.Client, 0, len(r.clients))
	for _, c := range r.clients {
		out = append(out, *c)
	}
	return out, int64(len(out)), nil
}

// Paginate mirrors the real repository's offset/limit slicing, ordered by
// code so pages are deterministic.
func (r *stubClientRepo) Paginate(_ context.Context, q dto.PageQuery) ([]model.Client, int64, error) {
	all := make([]model.Client, 0, len(r.clients))
	for _, c := range r.clients {
		all = append(all, *c)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Code < all[j].Code })

	total := int64(len(all))
	offset := (q.Page - 1) * q.Limit
	if offset >= len(all) {
		return nil, total, nil
	}
	end := offset + q.Limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (r *stubClientRepo) Update(_ context.Context, c *model.Client) error {
	r.clients[c.ID] = c
	return nil
}

func (r *stubClientRepo) SoftDelete(_ context.Context, id uuid.UUID) (bool, error) {
	if _, ok := r.clients[id]; !ok {
		return false, nil
	}
	delete(r.clients, id)
	return true, nil
}

var _ repository.ClientRepository = (*stubClientRepo)(nil)

type stubPurposeRepo struct {
	purposes map[uuid.UUID]*model.Purpose
}

func newStubPurposeRepo() *stubPurposeRepo {
	return &stubPurposeRepo{purposes: make(map[uuid.UUID]*model.Purpose)}
}

func (r *stubPurposeRepo) Create(_ context.Context, p *model.Purpose) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.purposes[p.ID] = p
	return nil
}

func (r *stubPurposeRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Purpose, error) {
	p, ok := r.purposes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *stubPurposeRepo) FindByName(_ context.Context, name string) (*model.Purpose, error) {
	for _, p := range r.purposes {
		if p.Name == name {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubPurposeRepo) Search(_ context.Context, _, _ int, _ string) ([]model.Purpose, int64, error) {
	out := make([]model.Purpose, 0, len(r.purposes))
	for _, p := range r.purposes {
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (r *stubPurposeRepo) Paginate(_ context.Context, _ dto.PageQuery) ([]model.Purpose, int64, error) {
	return r.Search(context.Background(), 1, 10, "")
}

func (r *stubPurposeRepo) Update(_ context.Context, p *model.Purpose) error {
	r.purposes[p.ID] = p
	return nil
}

func (r *stubPurposeRepo) SoftDelete(_ context.Context, id uuid.UUID) (bool, error) {
	if _, ok := r.purposes[id]; !ok {
		return false, nil
	}
	delete(r.purposes, id)
	return true, nil
}

var _ repository.PurposeRepository = (*stubPurposeRepo)(nil)

type stubStatementRepo struct {
	statements map[uuid.UUID]*model.Statement
}

func newStubStatementRepo() *stubStatementRepo {
	return &stubStatementRepo{statements: make(map[uuid.UUID]*model.Statement)}
}

// byReference returns live postings for a document, insertion order not
// guaranteed — assertions should not depend on it.
func (r *stubStatementRepo) byReference(refType string, refID uuid.UUID) []model.Statement {
	var out []model.Statement
	for _, s := range r.statements {
		if s.ReferenceType == refType && s.ReferenceID == refID {
			out = append(out, *s)
		}
	}
	return out
}

func (r *stubStatementRepo) Create(_ context.Context, s *model.Statement) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	r.statements[s.ID] = s
	return nil
}

func (r *stubStatementRepo) CreateTx(_ context.Context, _ *gorm.DB, s *model.Statement) error {
	return r.Create(context.Background(), s)
}

func (r *stubStatementRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Statement, error) {
	s, ok := r.statements[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return s, nil
}

func (r *stubStatementRepo) ListByReference(_ context.Context, refType string, refID uuid.UUID) ([]model.Statement, error) {
	return r.byReference(refType, refID), nil
}

func (r *stubStatementRepo) Search(_ context.Context, _, _ int, _ string) ([]model.Statement, int64, error) {
	out := make([]model.Statement, 0, len(r.statements))
	for _, s := range r.statements {
		out = append(out, *s)
	}
	return out, int64(len(out)), nil
}

func (r *stubStatementRepo) Paginate(_ context.Context, _ dto.PageQuery) ([]model.Statement, int64, error) {
	return r.Search(context.Background(), 1, 10, "")
}

func (r *stubStatementRepo) Update(_ context.Context, s *model.Statement) error {
	r.statements[s.ID] = s
	return nil
}

func (r *stubStatementRepo) SoftDelete(_ context.Context, id uuid.UUID) (bool, error) {
	if _, ok := r.statements[id]; !ok {
		return false, nil
	}
	delete(r.statements, id)
	return true, nil
}

func (r *stubStatementRepo) RemoveByReferenceTx(_ context.Context, _ *gorm.DB, refType string, refID uuid.UUID) (bool, error) {
	var removed bool
	for id, s := range r.statements {
		if s.ReferenceType == refType && s.ReferenceID == refID {
			delete(r.statements, id)
			removed = true
		}
	}
	return removed, nil
}

func (r *stubStatementRepo) SummaryByPurpose(_ context.Context) ([]dto.PurposeSummary, error) {
	return nil, nil
}

var _ repository.StatementRepository = (*stubStatementRepo)(nil)

type stubPurchaseRepo struct {
	purchases map[uuid.UUID]*model.Purchase
}

func newStubPurchaseRepo() *stubPurchaseRepo {
	return &stubPurchaseRepo{purchases: make(map[uuid.UUID]*model.Purchase)}
}

func (r *stubPurchaseRepo) CreateTx(_ context.Context, _ *gorm.DB, p *model.Purchase) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	for i := range p.Details {
		if p.Details[i].ID == uuid.Nil {
			p.Details[i].ID = uuid.New()
		}
		p.Details[i].PurchaseID = p.ID
	}
	r.purchases[p.ID] = p
	return nil
}

func (r *stubPurchaseRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Purchase, error) {
	p, ok := r.purchases[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *stubPurchaseRepo) Search(_ context.Context, _, _ int, _ string) ([]model.Purchase, int64, error) {
	out := make([]model.Purchase, 0, len(r.purchases))
	for _, p := range r.purchases {
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (r *stubPurchaseRepo) Paginate(_ context.Context, _ dto.PageQuery) ([]model.Purchase, int64, error) {
	return r.Search(context.Background(), 1, 10, "")
}

func (r *stubPurchaseRepo) SoftDeleteTx(_ context.Context, _ *gorm.DB, id uuid.UUID) (bool, error) {
	if _, ok := r.purchases[id]; !ok {
		return false, nil
	}
	delete(r.purchases, id)
	return true, nil
}

func (r *stubPurchaseRepo) DB() *gorm.DB { return nil }

var _ repository.PurchaseRepository = (*stubPurchaseRepo)(nil)

type stubInvoiceRepo struct {
	invoices map[uuid.UUID]*model.Invoice
	seq      int64
}

func newStubInvoiceRepo() *stubInvoiceRepo {
	return &stubInvoiceRepo{invoices: make(map[uuid.UUID]*model.Invoice)}
}

func (r *stubInvoiceRepo) CreateTx(_ context.Context, _ *gorm.DB, inv *model.Invoice) error {
	if inv.ID == uuid.Nil {
		inv.ID = uuid.New()
	}
	for i := range inv.Details {
		if inv.Details[i].ID == uuid.Nil {
			inv.Details[i].ID = uuid.New()
		}
		inv.Details[i].InvoiceID = inv.ID
	}
	r.invoices[inv.ID] = inv
	return nil
}

func (r *stubInvoiceRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Invoice, error) {
	inv, ok := r.invoices[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return inv, nil
}

func (r *stubInvoiceRepo) UpdateTx(_ context.Context, _ *gorm.DB, inv *model.Invoice) error {
	if _, ok := r.invoices[inv.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.invoices[inv.ID] = inv
	return nil
}

func (r *stubInvoiceRepo) NextInvoiceSeq(_ context.Context, _ *gorm.DB) (int64, error) {
	r.seq++
	return r.seq, nil
}

func (r *stubInvoiceRepo) Search(_ context.Context, _, _ int, _ string) ([]model.Invoice, int64, error) {
	out := make([]model.Invoice, 0, len(r.invoices))
	for _, inv := range r.invoices {
		out = append(out, *inv)
	}
	return out, int64(len(out)), nil
}

func (r *stubInvoiceRepo) Paginate(_ context.Context, _ dto.PageQuery) ([]model.Invoice, int64, error) {
	return r.Search(context.Background(), 1, 10, "")
}

func (r *stubInvoiceRepo) SoftDeleteTx(_ context.Context, _ *gorm.DB, id uuid.UUID) (bool, error) {
	if _, ok := r.invoices[id]; !ok {
		return false, nil
	}
	delete(r.invoices, id)
	return true, nil
}

func (r *stubInvoiceRepo) MonthlySales(_ context.Context) ([]dto.MonthlySales, error) {
	return nil, nil
}

func (r *stubInvoiceRepo) DB() *gorm.DB { return nil }

var _ repository.InvoiceRepository = (*stubInvoiceRepo)(nil)

type stubStockRepo struct {
	byProduct map[uuid.UUID]*model.Stock
}

func newStubStockRepo() *stubStockRepo {
	return &stubStockRepo{byProduct: make(map[uuid.UUID]*model.Stock)}
}

func (r *stubStockRepo) UpsertIncrement(_ context.Context, productID uuid.UUID, delta int) error {
	if s, ok := r.byProduct[productID]; ok {
		s.Quantity += delta
		return nil
	}
	s := &model.Stock{ProductID: productID, Quantity: delta}
	s.ID = uuid.New()
	r.byProduct[productID] = s
	return nil
}

func (r *stubStockRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Stock, error) {
	for _, s := range r.byProduct {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubStockRepo) FindByProduct(_ context.Context, productID uuid.UUID) (*model.Stock, error) {
	s, ok := r.byProduct[productID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return s, nil
}

func (r *stubStockRepo) Search(_ context.Context, _, _ int, _ string) ([]model.Stock, int64, error) {
	out := make([]model.Stock, 0, len(r.byProduct))
	for _, s := range r.byProduct {
		out = append(out, *s)
	}
	return out, int64(len(out)), nil
}

func (r *stubStockRepo) Paginate(_ context.Context, _ dto.PageQuery) ([]model.Stock, int64, error) {
	return r.Search(context.Background(), 1, 10, "")
}

func (r *stubStockRepo) SoftDelete(_ context.Context, id uuid.UUID) (bool, error) {
	for pid, s := range r.byProduct {
		if s.ID == id {
			delete(r.byProduct, pid)
			return true, nil
		}
	}
	return false, nil
}

var _ repository.StockRepository = (*stubStockRepo)(nil)

// stubNotifier records enqueued stock events for assertion.
type stubNotifier struct {
	events []struct {
		ProductID uuid.UUID
		Quantity  int
	}
}

func (n *stubNotifier) EnqueueStockIncrement(_ context.Context, productID uuid.UUID, quantity int) error {
	n.events = append(n.events, struct {
		ProductID uuid.UUID
		Quantity  int
	}{productID, quantity})
	return nil
}

var _ StockNotifier = (*stubNotifier)(nil)

type stubUserRepo struct {
	users map[string]*model.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*model.User)}
}

func (r *stubUserRepo) Create(_ context.Context, u *model.User) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	r.users[u.Username] = u
	return nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*model.User, error) {
	u, ok := r.users[username]
	if !ok || !u.Active {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

var _ repository.UserRepository = (*stubUserRepo)(nil)
