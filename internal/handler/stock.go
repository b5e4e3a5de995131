package handler

import (
	"net/http"

	"github.com/tahrim-ahmed/invoice-api/internal/apierror"
	"github.com/tahrim-ahmed/invoice-api/internal/dto"
	"github.com/tahrim-ahmed/invoice-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// StockHandler exposes stock queries plus manual adjustments. The purchase
// workflow updates quantities asynchronously through the worker pool.
type StockHandler struct{ svc service.StockService }

func NewStockHandler(svc service.StockService) *StockHandler {
	return &StockHandler{svc: svc}
}

// Create godoc
// @Summary      Manually add stock for a product
// @Description  Repeated posts for the same product accumulate.
// @Tags         stock
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CreateStockRequest true "Stock data"
// @Success      201 {object} dto.StockResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/stock [post]
func (h *StockHandler) Create(c *gin.Context) {
	var req dto.CreateStockRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Remove godoc
// @Summary      Soft-delete a stock entry
// @Tags         stock
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Stock UUID"
// @Success      200 {object} dto.DeleteResponse
// @Router       /v1/stock/{id} [delete]
func (h *StockHandler) Remove(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid id"))
		return
	}
	deleted, err := h.svc.Remove(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.DeleteResponse{Deleted: deleted})
}

// Find godoc
// @Summary      Get a stock entry by id
// @Tags         stock
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Stock UUID"
// @Success      200 {object} dto.StockResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/stock/{id} [get]
func (h *StockHandler) Find(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid id"))
		return
	}
	resp, err := h.svc.FindByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Search godoc
// @Summary      Search stock by product name
// @Tags         stock
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.StockListResponse
// @Router       /v1/stock/search [get]
func (h *StockHandler) Search(c *gin.Context) {
	var q dto.PageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.Search(c.Request.Context(), q.Page, q.Limit, q.Search)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Paginate godoc
// @Summary      Paginated stock list with sorting
// @Tags         stock
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.StockListResponse
// @Router       /v1/stock/pagination [get]
func (h *StockHandler) Paginate(c *gin.Context) {
	var q dto.PageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.Paginate(c.Request.Context(), q)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
