package handler

import (
	"net/http"

	"github.com/tahrim-ahmed/invoice-api/internal/apierror"
	"github.com/tahrim-ahmed/invoice-api/internal/dto"
	"github.com/tahrim-ahmed/invoice-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type StatementsHandler struct{ svc service.StatementService }

func NewStatementsHandler(svc service.StatementService) *StatementsHandler {
	return &StatementsHandler{svc: svc}
}

// Create godoc
// @Summary      Create a manual ledger entry
// @Tags         statements
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CreateStatementRequest true "Statement data"
// @Success      201 {object} dto.StatementResponse
// @Router       /v1/statements [post]
func (h *StatementsHandler) Create(c *gin.Context) {
	var req dto.CreateStatementRequest
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
// @Summary      Get a statement by id
// @Tags         statements
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Statement UUID"
// @Success      200 {object} dto.StatementResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/statements/{id} [get]
func (h *StatementsHandler) Find(c *gin.Context) {
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
// @Summary      Search statements by purpose or amount
// @Tags         statements
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.StatementListResponse
// @Router       /v1/statements/search [get]
func (h *StatementsHandler) Search(c *gin.Context) {
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
// @Summary      Paginated ledger with sorting and date range
// @Tags         statements
// @Produce      json
// @Security     BearerAuth
// @Param        startDate query string false "YYYY-MM-DD"
// @Param        endDate   query string false "YYYY-MM-DD"
// @Param        deleted   query bool   false "Include soft-deleted postings"
// @Success      200 {object} dto.StatementListResponse
// @Router       /v1/statements/pagination [get]
func (h *StatementsHandler) Paginate(c *gin.Context) {
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

// Summary godoc
// @Summary      Total posted amount per purpose
// @Tags         statements
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.PurposeSummary
// @Router       /v1/statements/summary [get]
func (h *StatementsHandler) Summary(c *gin.Context) {
	resp, err := h.svc.SummaryByPurpose(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListByReference godoc
// @Summary      Postings tied to a document
// @Tags         statements
// @Produce      json
// @Security     BearerAuth
// @Param        type path string true "purchase | invoice"
// @Param        id   path string true "Document UUID"
// @Success      200 {array} dto.StatementResponse
// @Router       /v1/statements/reference/{type}/{id} [get]
func (h *StatementsHandler) ListByReference(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid id"))
		return
	}
	resp, err := h.svc.ListByReference(c.Request.Context(), c.Param("type"), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Update godoc
// @Summary      Edit a manual ledger entry
// @Description  Entries owned by a document (invoice / purchase) cannot be edited.
// @Tags         statements
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string                     true "Statement UUID"
// @Param        body body dto.UpdateStatementRequest true "Fields to update"
// @Success      200 {object} dto.StatementResponse
// @Failure      403 {object} apierror.APIError
// @Router       /v1/statements/{id} [put]
func (h *StatementsHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid id"))
		return
	}
	var req dto.UpdateStatementRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Remove godoc
// @Summary      Soft-delete a statement
// @Tags         statements
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Statement UUID"
// @Success      200 {object} dto.DeleteResponse
// @Router       /v1/statements/{id} [delete]
func (h *StatementsHandler) Remove(c *gin.Context) {
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
