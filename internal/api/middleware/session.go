package middleware

import (
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"github.com/labstack/echo/v4"

	"github.com/donaldgifford/maardu-realty/internal/session"
	domain "github.com/donaldgifford/maardu-realty/pkg/types"
)

// Authenticator resolves a bearer token to a user.
type Authenticator interface {
	Authenticate(token string) (*domain.User, error)
}

// Session returns Echo middleware that resolves the bearer token in the
// Authorization header and stores the user in the request context. Requests
// without the header pass through anonymously; a malformed or invalid token
// is rejected with 401.
func Session(auth Authenticator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return next(c)
			}

			scheme, token, ok := strings.Cut(header, " ")
			token = strings.TrimSpace(token)
			if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" {
				return unauthorized(c, "malformed authorization header")
			}

			user, err := auth.Authenticate(token)
			if err != nil {
				return unauthorized(c, session.ErrInvalidToken.Error())
			}

			req := c.Request()
			c.SetRequest(req.WithContext(session.WithUser(req.Context(), user)))
			return next(c)
		}
	}
}

func unauthorized(c echo.Context, detail string) error {
	c.Response().Header().Set("WWW-Authenticate", `Bearer realm="maardu-realty"`)
	return c.JSON(http.StatusUnauthorized, &huma.ErrorModel{
		Title:  http.StatusText(http.StatusUnauthorized),
		Status: http.StatusUnauthorized,
		Detail: detail,
	})
}
