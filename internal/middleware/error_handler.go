package middleware

import (
	"errors"
	"net/http"

	"github.com/ahmed-faraz22/Bite-Xplore-sub000/domain"
	"github.com/ahmed-faraz22/Bite-Xplore-sub000/pkg/logger"
	jsonres "github.com/ahmed-faraz22/Bite-Xplore-sub000/pkg/response"

	"github.com/labstack/echo/v4"
)

// ErrorHandler maps domain errors onto HTTP responses. Business rejections
// keep their user-facing message; everything unexpected is logged and
// surfaced opaquely.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	if pe, ok := domain.AsPrecondition(err); ok {
		_ = c.JSON(http.StatusConflict, jsonres.Error(pe.Code, pe.Message, map[string]any{
			"amount": pe.Amount,
		}))
		return
	}

	if errors.Is(err, domain.ErrNotFound) {
		_ = c.JSON(http.StatusNotFound, jsonres.Error("NOT_FOUND", err.Error(), nil))
		return
	}

	if errors.Is(err, domain.ErrPaymentUnverified) {
		_ = c.JSON(http.StatusBadRequest, jsonres.Error("PAYMENT_UNVERIFIED", err.Error(), nil))
		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		_ = c.JSON(httpErr.Code, jsonres.Error("HTTP_ERROR", httpErr.Error(), nil))
		return
	}

	logger.Error("unhandled error", "path", c.Path(), "error", err)
	_ = c.JSON(http.StatusInternalServerError, jsonres.Error("INTERNAL", "internal server error", nil))
}
