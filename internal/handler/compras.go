package handler

import (
	"net/http"

	"gestor/internal/apierror"
	"gestor/internal/dto"
	"gestor/internal/infra"
	"gestor/internal/service"

	"github.com/gin-gonic/gin"
)

type ComprasHandler struct {
	svc        service.CompraService
	reciboPath string
}

func NewComprasHandler(svc service.CompraService, reciboPath string) *ComprasHandler {
	return &ComprasHandler{svc: svc, reciboPath: reciboPath}
}

func (h *ComprasHandler) Crear(c *gin.Context) {
	var form dto.CompraFormData
	if !bindAndValidate(c, &form) {
		return
	}
	compra, err := h.svc.Crear(c.Request.Context(), form)
	if err != nil {
		writeServiceError(c, err, "Compra no encontrada")
		return
	}
	c.JSON(http.StatusCreated, compra)
}

func (h *ComprasHandler) Listar(c *gin.Context) {
	compras := h.svc.Buscar(c.Request.Context(), c.Query("q"))
	c.JSON(http.StatusOK, gin.H{"data": compras, "total": len(compras)})
}

func (h *ComprasHandler) ObtenerPorID(c *gin.Context) {
	compra, err := h.svc.ObtenerPorID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("Compra no encontrada"))
		return
	}
	c.JSON(http.StatusOK, compra)
}

// ObtenerDetalle returns the purchase with customer and products resolved.
// Dangling references come back null so the client renders a placeholder.
func (h *ComprasHandler) ObtenerDetalle(c *gin.Context) {
	detalle, err := h.svc.ObtenerDetalle(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("Compra no encontrada"))
		return
	}
	c.JSON(http.StatusOK, detalle)
}

func (h *ComprasHandler) Actualizar(c *gin.Context) {
	var form dto.CompraFormData
	if !bindAndValidate(c, &form) {
		return
	}
	compra, err := h.svc.Actualizar(c.Request.Context(), c.Param("id"), form)
	if err != nil {
		writeServiceError(c, err, "Compra no encontrada")
		return
	}
	c.JSON(http.StatusOK, compra)
}

func (h *ComprasHandler) ActualizarEstado(c *gin.Context) {
	var req dto.ActualizarEstadoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	compra, err := h.svc.ActualizarEstado(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		writeServiceError(c, err, "Compra no encontrada")
		return
	}
	c.JSON(http.StatusOK, compra)
}

func (h *ComprasHandler) Eliminar(c *gin.Context) {
	if !h.svc.Eliminar(c.Request.Context(), c.Param("id")) {
		c.JSON(http.StatusNotFound, apierror.New("Compra no encontrada"))
		return
	}
	c.Status(http.StatusNoContent)
}

// DescargarRecibo generates the PDF receipt for a purchase and streams it
// back. Line items whose product was deleted print a placeholder name.
func (h *ComprasHandler) DescargarRecibo(c *gin.Context) {
	detalle, err := h.svc.ObtenerDetalle(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("Compra no encontrada"))
		return
	}
	path, err := infra.GenerateReciboPDF(detalle, h.reciboPath)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error generando el recibo"))
		return
	}
	c.FileAttachment(path, "recibo_"+detalle.ID+".pdf")
}
