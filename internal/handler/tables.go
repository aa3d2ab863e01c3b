package handler

import (
	"net/http"

	"github.com/josebazania/restaurantepos/internal/dto"
	"github.com/josebazania/restaurantepos/internal/service"

	"github.com/gin-gonic/gin"
)

type TablesHandler struct{ svc service.TableService }

func NewTablesHandler(svc service.TableService) *TablesHandler { return &TablesHandler{svc: svc} }

// List godoc
// @Summary Mesas con su pedido activo
// @Tags tables
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.TableResponse
// @Router /v1/tables [get]
func (h *TablesHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.List(c.Request.Context()))
}

func (h *TablesHandler) Get(c *gin.Context) {
	t, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

// SetStatus godoc
// @Summary Cambio manual de estado (Occupied→Bill, Free→Cleaning, Cleaning→Free)
// @Tags tables
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID de mesa"
// @Param body body dto.TableStatusRequest true "Estado"
// @Success 200 {object} model.Table
// @Failure 409 {object} apierror.APIError
// @Router /v1/tables/{id}/status [patch]
func (h *TablesHandler) SetStatus(c *gin.Context) {
	var req dto.TableStatusRequest
	if !bindAndValidate(c, &req) {
		return
	}
	t, err := h.svc.SetStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}
