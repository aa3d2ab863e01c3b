package handler

import (
	"fmt"
	"net/http"

	"github.com/josebazania/restaurantepos/internal/dto"
	"github.com/josebazania/restaurantepos/internal/service"

	"github.com/gin-gonic/gin"
)

type SalesHandler struct {
	checkout service.CheckoutService
	invoices service.InvoiceService
}

func NewSalesHandler(checkout service.CheckoutService, invoices service.InvoiceService) *SalesHandler {
	return &SalesHandler{checkout: checkout, invoices: invoices}
}

// Checkout godoc
// @Summary Cobra la mesa y libera el pedido
// @Tags pos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CheckoutRequest true "Mesa y forma de pago"
// @Success 201 {object} dto.CheckoutResponse
// @Failure 409 {object} apierror.APIError
// @Failure 422 {object} apierror.APIError
// @Router /v1/pos/checkout [post]
func (h *SalesHandler) Checkout(c *gin.Context) {
	var req dto.CheckoutRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.checkout.Checkout(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Invoice godoc
// @Summary Descarga la factura PDF de una venta
// @Tags pos
// @Produce application/pdf
// @Security BearerAuth
// @Param id path string true "ID de venta"
// @Success 200 {file} binary
// @Failure 404 {object} apierror.APIError
// @Router /v1/sales/{id}/invoice [get]
func (h *SalesHandler) Invoice(c *gin.Context) {
	pdf, name, err := h.invoices.Render(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, name))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
