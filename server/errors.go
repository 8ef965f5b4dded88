package server

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/persimmonlabs/PARA-DAP/internal/logger"
	"github.com/persimmonlabs/PARA-DAP/internal/store"
)

var errInvalidBody = errors.New("invalid request body")

// fail maps store errors onto the API's status codes: validation failures
// are 400, missing ids are 404, anything else is a storage error (500).
func fail(c echo.Context, err error) error {
	var ve *store.ValidationError
	switch {
	case errors.As(err, &ve):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": ve.Error()})
	case errors.Is(err, store.ErrNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	default:
		logger.Error("storage error", logger.F("error", err))
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
}

func badRequest(c echo.Context, msg string) error {
	return c.JSON(http.StatusBadRequest, map[string]string{"error": msg})
}
