package handler

import (
	"net/http"

	"github.com/josebazania/restaurantepos/internal/dto"
	"github.com/josebazania/restaurantepos/internal/service"

	"github.com/gin-gonic/gin"
)

// OrdersHandler serves the per-table cart and the order ledger.
type OrdersHandler struct{ svc service.OrderService }

func NewOrdersHandler(svc service.OrderService) *OrdersHandler { return &OrdersHandler{svc: svc} }

func (h *OrdersHandler) cart(c *gin.Context, resp dto.CartResponse, err error) {
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetCart godoc
// @Summary Carrito de la mesa (se siembra desde su pedido activo)
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID de mesa"
// @Success 200 {object} dto.CartResponse
// @Router /v1/tables/{id}/cart [get]
func (h *OrdersHandler) GetCart(c *gin.Context) {
	resp, err := h.svc.OpenCart(c.Request.Context(), c.Param("id"))
	h.cart(c, resp, err)
}

func (h *OrdersHandler) AddItem(c *gin.Context) {
	var req dto.AddItemRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.AddItem(c.Request.Context(), c.Param("id"), req.ProductID)
	h.cart(c, resp, err)
}

func (h *OrdersHandler) AdjustItem(c *gin.Context) {
	var req dto.AdjustItemRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.AdjustItem(c.Request.Context(), c.Param("id"), c.Param("product_id"), req.Delta)
	h.cart(c, resp, err)
}

func (h *OrdersHandler) SetNote(c *gin.Context) {
	var req dto.NoteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.SetNote(c.Request.Context(), c.Param("id"), c.Param("product_id"), req.Notes)
	h.cart(c, resp, err)
}

func (h *OrdersHandler) RemoveItem(c *gin.Context) {
	resp, err := h.svc.RemoveItem(c.Request.Context(), c.Param("id"), c.Param("product_id"))
	h.cart(c, resp, err)
}

func (h *OrdersHandler) ClearCart(c *gin.Context) {
	if err := h.svc.ClearCart(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Hold godoc
// @Summary Guarda el carrito como pedido Pending sin avisar a cocina
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID de mesa"
// @Success 200 {object} model.Order
// @Failure 422 {object} apierror.APIError
// @Router /v1/tables/{id}/order/hold [post]
func (h *OrdersHandler) Hold(c *gin.Context) {
	o, err := h.svc.HoldOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, o)
}

// SendToKitchen godoc
// @Summary Envia el pedido de la mesa a cocina
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID de mesa"
// @Success 200 {object} model.Order
// @Failure 409 {object} apierror.APIError
// @Failure 422 {object} apierror.APIError
// @Router /v1/tables/{id}/order/kitchen [post]
func (h *OrdersHandler) SendToKitchen(c *gin.Context) {
	o, err := h.svc.SendToKitchen(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, o)
}

// MarkReady godoc
// @Summary Cocina marca el pedido como listo
// @Tags kitchen
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID de pedido"
// @Success 200 {object} model.Order
// @Failure 409 {object} apierror.APIError
// @Router /v1/kitchen/orders/{id}/ready [post]
func (h *OrdersHandler) MarkReady(c *gin.Context) {
	o, err := h.svc.MarkReady(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, o)
}

func (h *OrdersHandler) ListActive(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.ListActive(c.Request.Context()))
}

func (h *OrdersHandler) KitchenQueue(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.KitchenQueue(c.Request.Context()))
}
