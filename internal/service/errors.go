package service

import "errors"

// ErrNoEncontrado signals a stale id on update/status operations. Handlers
// map it to a 404; it is never fatal — the store tolerates stale ids as
// no-ops.
var ErrNoEncontrado = errors.New("registro no encontrado")

// ValidationError carries the field-keyed messages produced when a form
// submission is rejected. The submission is aborted before any store
// mutation; the map is surfaced to the caller for inline display.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string { return "error de validacion" }

// AsValidation unwraps err into a *ValidationError when it is one.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
