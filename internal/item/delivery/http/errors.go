package http

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"item-service/internal/item"
	pkgErrors "item-service/pkg/errors"
	"item-service/pkg/response"
)

var (
	errItemNotFound = pkgErrors.NewHTTPError(http.StatusNotFound, "item not found")
	errInvalidItem  = pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid item")
	errInvalidID    = pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid item id")
	errInvalidBody  = pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid request body")
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
// Anything not listed here is reported as an internal error.
func (h *handler) mapError(err error) error {
	var verr *item.ValidationError
	switch {
	case errors.As(err, &verr):
		return errInvalidItem.WithFields(verr.Fields)
	case errors.Is(err, item.ErrInvalidItem):
		return errInvalidItem
	case errors.Is(err, item.ErrItemNotFound):
		return errItemNotFound
	case errors.Is(err, item.ErrInvalidID):
		return errInvalidID
	default:
		return pkgErrors.ErrInternalServerError
	}
}

// bindError keeps field-level binding failures and hides decoder details.
func (h *handler) bindError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return errInvalidBody.WithFields(response.FieldErrors(verrs))
	}
	return errInvalidBody
}
