package handler

import (
	"net/http"

	"github.com/josebazania/restaurantepos/internal/dto"
	"github.com/josebazania/restaurantepos/internal/service"

	"github.com/gin-gonic/gin"
)

type ProductsHandler struct{ svc service.CatalogService }

func NewProductsHandler(svc service.CatalogService) *ProductsHandler {
	return &ProductsHandler{svc: svc}
}

// List godoc
// @Summary Lista el catalogo
// @Tags products
// @Produce json
// @Security BearerAuth
// @Param category query string false "Categoria"
// @Param search query string false "Busqueda por nombre"
// @Success 200 {array} dto.ProductResponse
// @Router /v1/products [get]
func (h *ProductsHandler) List(c *gin.Context) {
	var filter dto.ProductFilter
	if !bindQuery(c, &filter) {
		return
	}
	c.JSON(http.StatusOK, dto.NewProductList(h.svc.List(c.Request.Context(), filter.Category, filter.Search)))
}

func (h *ProductsHandler) Get(c *gin.Context) {
	p, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewProductResponse(p))
}

// Create godoc
// @Summary Alta de producto
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.ProductRequest true "Producto"
// @Success 201 {object} dto.ProductResponse
// @Failure 422 {object} apierror.ValidationError
// @Router /v1/products [post]
func (h *ProductsHandler) Create(c *gin.Context) {
	var req dto.ProductRequest
	if !bindAndValidate(c, &req) {
		return
	}
	p, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewProductResponse(p))
}

func (h *ProductsHandler) Update(c *gin.Context) {
	var req dto.ProductRequest
	if !bindAndValidate(c, &req) {
		return
	}
	p, err := h.svc.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewProductResponse(p))
}

func (h *ProductsHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// SetStock godoc
// @Summary Edicion directa de stock (negativos se llevan a cero)
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID de producto"
// @Param body body dto.StockRequest true "Stock"
// @Success 200 {object} dto.ProductResponse
// @Router /v1/products/{id}/stock [patch]
func (h *ProductsHandler) SetStock(c *gin.Context) {
	var req dto.StockRequest
	if !bindAndValidate(c, &req) {
		return
	}
	p, err := h.svc.SetStock(c.Request.Context(), c.Param("id"), req.Stock)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewProductResponse(p))
}
