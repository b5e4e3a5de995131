package handler

import (
	"net/http"

	"github.com/tahrim-ahmed/invoice-api/internal/apierror"
	"github.com/tahrim-ahmed/invoice-api/internal/dto"
	"github.com/tahrim-ahmed/invoice-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PurposesHandler struct{ svc service.PurposeService }

func NewPurposesHandler(svc service.PurposeService) *PurposesHandler {
	return &PurposesHandler{svc: svc}
}

// Create godoc
// @Summary      Create a ledger purpose
// @Tags         purposes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CreatePurposeRequest true "Purpose data"
// @Success      201 {object} dto.PurposeResponse
// @Failure      409 {object} apierror.APIError
// @Router       /v1/purposes [post]
func (h *PurposesHandler) Create(c *gin.Context) {
	var req dto.CreatePurposeRequest
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
// @Summary      Get a purpose by id
// @Tags         purposes
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Purpose UUID"
// @Success      200 {object} dto.PurposeResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/purposes/{id} [get]
func (h *PurposesHandler) Find(c *gin.Context) {
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
// @Summary      Search purposes by name
// @Tags         purposes
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.PurposeListResponse
// @Router       /v1/purposes/search [get]
func (h *PurposesHandler) Search(c *gin.Context) {
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
// @Summary      Paginated purpose list with sorting
// @Tags         purposes
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.PurposeListResponse
// @Router       /v1/purposes/pagination [get]
func (h *PurposesHandler) Paginate(c *gin.Context) {
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

// Update godoc
// @Summary      Rename a purpose
// @Tags         purposes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string                   true "Purpose UUID"
// @Param        body body dto.UpdatePurposeRequest true "New name"
// @Success      200 {object} dto.PurposeResponse
// @Failure      409 {object} apierror.APIError
// @Router       /v1/purposes/{id} [put]
func (h *PurposesHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid id"))
		return
	}
	var req dto.UpdatePurposeRequest
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
// @Summary      Soft-delete a purpose
// @Tags         purposes
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Purpose UUID"
// @Success      200 {object} dto.DeleteResponse
// @Router       /v1/purposes/{id} [delete]
func (h *PurposesHandler) Remove(c *gin.Context) {
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
