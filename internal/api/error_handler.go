package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/sampledata/user-sampler/internal/api/metrics"
	"github.com/sampledata/user-sampler/internal/core/codec"
	"github.com/sampledata/user-sampler/internal/core/domain"
	"github.com/sampledata/user-sampler/internal/core/generator"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps the decode taxonomy and generator/service errors to their
//     appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Decode taxonomy → deterministic codes. A bad envelope or malformed
	// body is a bad request; a recognized document with bad contents is
	// unprocessable.
	var tagErr *codec.UnknownTagError
	var missingErr *codec.MissingFieldError
	var mismatchErr *codec.TypeMismatchError
	var tsErr *codec.InvalidTimestampError
	switch {
	case errors.Is(err, codec.ErrMalformed):
		metrics.DecodeErrorsTotal.WithLabelValues("malformed").Inc()
		return http.StatusBadRequest, err.Error()
	case errors.As(err, &tagErr):
		metrics.DecodeErrorsTotal.WithLabelValues("unknown_tag").Inc()
		return http.StatusBadRequest, tagErr.Error()
	case errors.As(err, &missingErr):
		metrics.DecodeErrorsTotal.WithLabelValues("missing_field").Inc()
		return http.StatusUnprocessableEntity, missingErr.Error()
	case errors.As(err, &mismatchErr):
		metrics.DecodeErrorsTotal.WithLabelValues("type_mismatch").Inc()
		return http.StatusUnprocessableEntity, mismatchErr.Error()
	case errors.As(err, &tsErr):
		metrics.DecodeErrorsTotal.WithLabelValues("invalid_timestamp").Inc()
		return http.StatusUnprocessableEntity, tsErr.Error()
	}

	// Generator/service errors.
	switch {
	case errors.Is(err, generator.ErrNegativeDepth):
		metrics.SampleErrorsTotal.WithLabelValues("negative_depth").Inc()
		return http.StatusBadRequest, "depth budget must not be negative"
	case errors.Is(err, domain.ErrDepthTooLarge):
		metrics.SampleErrorsTotal.WithLabelValues("depth_too_large").Inc()
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrUnknownKind):
		return http.StatusNotFound, err.Error()
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
