package handler

import (
	"net/http"

	"gestor/internal/apierror"
	"gestor/internal/dto"
	"gestor/internal/service"

	"github.com/gin-gonic/gin"
)

type ContactosHandler struct{ svc service.ContactoService }

func NewContactosHandler(svc service.ContactoService) *ContactosHandler {
	return &ContactosHandler{svc: svc}
}

func (h *ContactosHandler) Crear(c *gin.Context) {
	var form dto.ContactoFormData
	if !bindAndValidate(c, &form) {
		return
	}
	contacto, err := h.svc.Crear(c.Request.Context(), form)
	if err != nil {
		writeServiceError(c, err, "Contacto no encontrado")
		return
	}
	c.JSON(http.StatusCreated, contacto)
}

// Listar returns the search view: ?q= filters by substring, empty q returns
// the whole collection.
func (h *ContactosHandler) Listar(c *gin.Context) {
	contactos := h.svc.Buscar(c.Request.Context(), c.Query("q"))
	c.JSON(http.StatusOK, gin.H{"data": contactos, "total": len(contactos)})
}

func (h *ContactosHandler) ObtenerPorID(c *gin.Context) {
	contacto, err := h.svc.ObtenerPorID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("Contacto no encontrado"))
		return
	}
	c.JSON(http.StatusOK, contacto)
}

func (h *ContactosHandler) Actualizar(c *gin.Context) {
	var form dto.ContactoFormData
	if !bindAndValidate(c, &form) {
		return
	}
	contacto, err := h.svc.Actualizar(c.Request.Context(), c.Param("id"), form)
	if err != nil {
		writeServiceError(c, err, "Contacto no encontrado")
		return
	}
	c.JSON(http.StatusOK, contacto)
}

func (h *ContactosHandler) Eliminar(c *gin.Context) {
	if !h.svc.Eliminar(c.Request.Context(), c.Param("id")) {
		c.JSON(http.StatusNotFound, apierror.New("Contacto no encontrado"))
		return
	}
	c.Status(http.StatusNoContent)
}
