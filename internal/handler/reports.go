package handler

import (
	"net/http"

	"github.com/josebazania/restaurantepos/internal/service"

	"github.com/gin-gonic/gin"
)

type ReportsHandler struct{ svc service.ReportService }

func NewReportsHandler(svc service.ReportService) *ReportsHandler { return &ReportsHandler{svc: svc} }

// Dashboard godoc
// @Summary Ventas del dia, cola de cocina y ultimas ventas
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.DashboardResponse
// @Router /v1/dashboard [get]
func (h *ReportsHandler) Dashboard(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Dashboard(c.Request.Context()))
}

func (h *ReportsHandler) SalesByHour(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.SalesByHour(c.Request.Context()))
}

func (h *ReportsHandler) PaymentTotals(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.PaymentTotals(c.Request.Context()))
}
