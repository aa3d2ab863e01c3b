package handler

import (
	"net/http"

	"github.com/josebazania/restaurantepos/internal/dto"
	"github.com/josebazania/restaurantepos/internal/middleware"
	"github.com/josebazania/restaurantepos/internal/service"

	"github.com/gin-gonic/gin"
)

type CashHandler struct{ svc service.CashService }

func NewCashHandler(svc service.CashService) *CashHandler { return &CashHandler{svc: svc} }

// Open godoc
// @Summary Abre la sesion de caja
// @Tags cash
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.OpenCashRequest true "Fondo inicial"
// @Success 201 {object} model.CashSession
// @Failure 409 {object} apierror.APIError
// @Router /v1/cash/open [post]
func (h *CashHandler) Open(c *gin.Context) {
	var req dto.OpenCashRequest
	if !bindAndValidate(c, &req) {
		return
	}
	sess, err := h.svc.Open(c.Request.Context(), middleware.GetUser(c), req.OpeningBalance)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, sess)
}

// Current godoc
// @Summary Sesion de caja abierta
// @Tags cash
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.CashSession
// @Failure 409 {object} apierror.APIError
// @Router /v1/cash/current [get]
func (h *CashHandler) Current(c *gin.Context) {
	sess, err := h.svc.Current(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sess)
}

// Close godoc
// @Summary Cierra la caja y devuelve la diferencia contra lo contado
// @Tags cash
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CloseCashRequest true "Efectivo contado"
// @Success 200 {object} model.CloseReport
// @Failure 409 {object} apierror.APIError
// @Router /v1/cash/close [post]
func (h *CashHandler) Close(c *gin.Context) {
	var req dto.CloseCashRequest
	if !bindAndValidate(c, &req) {
		return
	}
	report, err := h.svc.Close(c.Request.Context(), req.CountedAmount)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}
