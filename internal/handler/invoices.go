package handler

import (
	"net/http"

	"github.com/tahrim-ahmed/invoice-api/internal/apierror"
	"github.com/tahrim-ahmed/invoice-api/internal/dto"
	"github.com/tahrim-ahmed/invoice-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type InvoicesHandler struct{ svc service.InvoiceService }

func NewInvoicesHandler(svc service.InvoiceService) *InvoicesHandler {
	return &InvoicesHandler{svc: svc}
}

// Create godoc
// @Summary      Create an invoice
// @Description  Creates the invoice with its lines and posts "Customer Payable" to the ledger. Cash invoices settle immediately: fully paid, plus a "Paid by Customer" posting.
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CreateInvoiceRequest true "Invoice with lines"
// @Success      201 {object} dto.InvoiceResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/invoices [post]
func (h *InvoicesHandler) Create(c *gin.Context) {
	var req dto.CreateInvoiceRequest
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

// Find godoc
// @Summary      Get an invoice by id
// @Tags         invoices
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Invoice UUID"
// @Success      200 {object} dto.InvoiceResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/invoices/{id} [get]
func (h *InvoicesHandler) Find(c *gin.Context) {
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

// MarkPaid godoc
// @Summary      Settle an invoice in full
// @Description  Posts the remaining balance as "Paid by Customer" and marks the invoice Paid. Fails with 403 if already paid.
// @Tags         invoices
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Invoice UUID"
// @Success      200 {object} dto.PaymentResponse
// @Failure      403 {object} apierror.APIError
// @Router       /v1/invoices/{id}/paid [patch]
func (h *InvoicesHandler) MarkPaid(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid id"))
		return
	}
	ok, err := h.svc.MarkPaid(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.PaymentResponse{Success: ok})
}

// PartialPayment godoc
// @Summary      Apply a partial payment
// @Description  Applies the amount toward the invoice and posts it as "Paid by Customer". A payment exceeding the remaining balance is rejected with 409; one exactly covering it settles the invoice.
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string                    true "Invoice UUID"
// @Param        body body dto.PartialPaymentRequest true "Payment amount"
// @Success      200 {object} dto.PaymentResponse
// @Failure      403 {object} apierror.APIError
// @Failure      409 {object} apierror.APIError
// @Router       /v1/invoices/{id}/partial-payment [patch]
func (h *InvoicesHandler) PartialPayment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid id"))
		return
	}
	var req dto.PartialPaymentRequest
	if !bindAndValidate(c, &req) {
		return
	}
	ok, err := h.svc.PartialPayment(c.Request.Context(), id, req.Amount)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.PaymentResponse{Success: ok})
}

// Search godoc
// @Summary      Search invoices by number or client
// @Tags         invoices
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.InvoiceListResponse
// @Router       /v1/invoices/search [get]
func (h *InvoicesHandler) Search(c *gin.Context) {
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
// @Summary      Paginated invoice list with sorting and date range
// @Tags         invoices
// @Produce      json
// @Security     BearerAuth
// @Param        startDate query string false "YYYY-MM-DD"
// @Param        endDate   query string false "YYYY-MM-DD"
// @Param        deleted   query bool   false "Include soft-deleted rows"
// @Success      200 {object} dto.InvoiceListResponse
// @Router       /v1/invoices/pagination [get]
func (h *InvoicesHandler) Paginate(c *gin.Context) {
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

// Chart godoc
// @Summary      Monthly sales totals
// @Tags         invoices
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.MonthlySales
// @Router       /v1/invoices/chart [get]
func (h *InvoicesHandler) Chart(c *gin.Context) {
	resp, err := h.svc.Chart(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Remove godoc
// @Summary      Remove an invoice
// @Description  Soft-deletes the invoice and every ledger posting referencing it, payments included.
// @Tags         invoices
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Invoice UUID"
// @Success      200 {object} dto.DeleteResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/invoices/{id} [delete]
func (h *InvoicesHandler) Remove(c *gin.Context) {
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
