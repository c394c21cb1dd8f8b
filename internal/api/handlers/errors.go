package handlers

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/maardu-realty/internal/apperrors"
	"github.com/donaldgifford/maardu-realty/internal/session"
)

// toHTTPError maps domain error kinds onto HTTP problem responses. details
// are appended to the problem's error list.
func toHTTPError(err error, details ...error) error {
	var (
		validation *apperrors.ValidationError
		conflict   *apperrors.ConflictError
		notFound   *apperrors.NotFoundError
		rejection  *apperrors.ServerRejection
		network    *apperrors.NetworkError
	)

	switch {
	case errors.Is(err, session.ErrNoSession):
		return huma.Error401Unauthorized(err.Error(), details...)
	case errors.As(err, &validation):
		field := &huma.ErrorDetail{Message: validation.Message, Location: validation.Field}
		return huma.Error422UnprocessableEntity(validation.Error(), append([]error{field}, details...)...)
	case errors.As(err, &conflict):
		return huma.Error409Conflict(err.Error(), details...)
	case errors.As(err, &notFound):
		return huma.Error404NotFound(notFound.Error(), details...)
	case errors.As(err, &rejection), errors.As(err, &network):
		return huma.Error502BadGateway(err.Error(), details...)
	case errors.Is(err, context.DeadlineExceeded):
		return huma.Error504GatewayTimeout(err.Error(), details...)
	default:
		return huma.Error500InternalServerError("internal error", details...)
	}
}
