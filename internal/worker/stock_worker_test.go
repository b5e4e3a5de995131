package worker

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/tahrim-ahmed/invoice-api/internal/dto"
	"github.com/tahrim-ahmed/invoice-api/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubStockService records increments; other methods are unused by the worker.
type stubStockService struct {
	increments map[uuid.UUID]int
	err        error
}

func (s *stubStockService) Increment(_ context.Context, productID uuid.UUID, quantity int) error {
	if s.err != nil {
		return s.err
	}
	if s.increments == nil {
		s.increments = make(map[uuid.UUID]int)
	}
	s.increments[productID] += quantity
	return nil
}

func (s *stubStockService) Create(_ context.Context, _ dto.CreateStockRequest) (*dto.StockResponse, error) {
	return nil, nil
}

func (s *stubStockService) FindByID(_ context.Context, _ uuid.UUID) (*dto.StockResponse, error) {
	return nil, nil
}

func (s *stubStockService) Search(_ context.Context, _, _ int, _ string) (*dto.StockListResponse, error) {
	return nil, nil
}

func (s *stubStockService) Paginate(_ context.Context, _ dto.PageQuery) (*dto.StockListResponse, error) {
	return nil, nil
}

func (s *stubStockService) Remove(_ context.Context, _ uuid.UUID) (bool, error) {
	return false, nil
}

var _ service.StockService = (*stubStockService)(nil)

func TestStockWorkerProcess_AppliesIncrement(t *testing.T) {
	svc := &stubStockService{}
	w := NewStockWorker(svc, nil)
	productID := uuid.New()

	payload, err := json.Marshal(StockJobPayload{ProductID: productID.String(), Quantity: 30})
	require.NoError(t, err)

	w.Process(context.Background(), payload)
	assert.Equal(t, 30, svc.increments[productID])
}

func TestStockWorkerProcess_InvalidPayload(t *testing.T) {
	svc := &stubStockService{}
	w := NewStockWorker(svc, nil)

	// Malformed JSON and a bad UUID both drop the job without panicking.
	w.Process(context.Background(), json.RawMessage(`{`))
	w.Process(context.Background(), json.RawMessage(`{"product_id":"nope","quantity":5}`))
	assert.Empty(t, svc.increments)
}
