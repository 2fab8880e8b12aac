package handler

import (
	"net/http"

	"gestor/internal/apierror"
	"gestor/internal/dto"
	"gestor/internal/service"

	"github.com/gin-gonic/gin"
)

type ProductosHandler struct{ svc service.ProductoService }

func NewProductosHandler(svc service.ProductoService) *ProductosHandler {
	return &ProductosHandler{svc: svc}
}

func (h *ProductosHandler) Crear(c *gin.Context) {
	var form dto.ProductoFormData
	if !bindAndValidate(c, &form) {
		return
	}
	producto, err := h.svc.Crear(c.Request.Context(), form)
	if err != nil {
		writeServiceError(c, err, "Producto no encontrado")
		return
	}
	c.JSON(http.StatusCreated, producto)
}

func (h *ProductosHandler) Listar(c *gin.Context) {
	productos := h.svc.Buscar(c.Request.Context(), c.Query("q"))
	c.JSON(http.StatusOK, gin.H{"data": productos, "total": len(productos)})
}

// Disponibles returns only products with stock on hand — the selectable set
// for the purchase form.
func (h *ProductosHandler) Disponibles(c *gin.Context) {
	productos := h.svc.Disponibles(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"data": productos, "total": len(productos)})
}

func (h *ProductosHandler) ObtenerPorID(c *gin.Context) {
	producto, err := h.svc.ObtenerPorID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("Producto no encontrado"))
		return
	}
	c.JSON(http.StatusOK, producto)
}

func (h *ProductosHandler) Actualizar(c *gin.Context) {
	var form dto.ProductoFormData
	if !bindAndValidate(c, &form) {
		return
	}
	producto, err := h.svc.Actualizar(c.Request.Context(), c.Param("id"), form)
	if err != nil {
		writeServiceError(c, err, "Producto no encontrado")
		return
	}
	c.JSON(http.StatusOK, producto)
}

// Eliminar always succeeds for an existing product, even when purchases
// still reference it — historical purchases keep the dangling id and render
// a placeholder.
func (h *ProductosHandler) Eliminar(c *gin.Context) {
	if !h.svc.Eliminar(c.Request.Context(), c.Param("id")) {
		c.JSON(http.StatusNotFound, apierror.New("Producto no encontrado"))
		return
	}
	c.Status(http.StatusNoContent)
}
