package handler

import (
	"net/http"

	"gestor/internal/apierror"
	"gestor/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// bindAndValidate binds the JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if binding or validation
// fails — the caller should return immediately without writing another
// response. Domain-level form rules run later in the service layer.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON invalido: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// writeServiceError maps service errors onto the API envelope: validation
// failures become a 422 with the field map, stale ids a 404.
func writeServiceError(c *gin.Context, err error, notFoundMsg string) {
	if ve, ok := service.AsValidation(err); ok {
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(ve.Fields))
		return
	}
	if err == service.ErrNoEncontrado {
		c.JSON(http.StatusNotFound, apierror.New(notFoundMsg))
		return
	}
	c.JSON(http.StatusInternalServerError, apierror.New("Error interno del servidor"))
}
