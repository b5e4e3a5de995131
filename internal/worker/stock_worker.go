package worker

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/tahrim-ahmed/invoice-api/internal/apierror"
	"github.com/tahrim-ahmed/invoice-api/internal/service"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// StockWorker applies stock-increment notifications emitted by the purchase
// workflow. Delivery is at-least-once; the underlying upsert is additive, so
// a redelivered job after a crash mid-queue is the accepted failure mode.
type StockWorker struct {
	stockSvc service.StockService
	rdb      *redis.Client
}

func NewStockWorker(stockSvc service.StockService, rdb *redis.Client) *StockWorker {
	return &StockWorker{stockSvc: stockSvc, rdb: rdb}
}

// Process handles a single stock-increment job.
func (w *StockWorker) Process(ctx context.Context, raw json.RawMessage) {
	var payload StockJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("stock_worker: invalid payload")
		return
	}

	productID, err := uuid.Parse(payload.ProductID)
	if err != nil {
		log.Error().Str("product_id", payload.ProductID).Msg("stock_worker: invalid product_id")
		return
	}

	if err := w.stockSvc.Increment(ctx, productID, payload.Quantity); err != nil {
		if apierror.IsStatus(err, http.StatusNotFound) {
			// Product vanished — park the job instead of retrying forever.
			SendToDLQ(ctx, w.rdb, QueueStock, "stock_increment", raw, err.Error(), 1)
			return
		}
		log.Error().Err(err).
			Str("product_id", payload.ProductID).
			Int("quantity", payload.Quantity).
			Msg("stock_worker: increment failed")
		return
	}

	log.Debug().
		Str("product_id", payload.ProductID).
		Int("quantity", payload.Quantity).
		Msg("stock_worker: stock incremented")
}
