// Package session resolves the authenticated marketplace user from bearer
// tokens and decides which portal features that user may reach.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	domain "github.com/donaldgifford/maardu-realty/pkg/types"
)

var (
	// ErrInvalidToken is returned for malformed, expired, or wrongly signed
	// tokens.
	ErrInvalidToken = errors.New("invalid session token")

	// ErrNoSession is returned when an operation needs a user and none is
	// present.
	ErrNoSession = errors.New("authentication required")
)

// Claims is the token payload issued by the marketplace auth service.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email,omitempty"`
	Name  string `json:"name,omitempty"`
}

// Authenticator verifies and issues HS256 session tokens.
type Authenticator struct {
	secret []byte
	issuer string
	now    func() time.Time
}

// Option configures an Authenticator.
type Option func(*Authenticator)

// WithClock overrides the time source used for expiry checks and issuing.
func WithClock(now func() time.Time) Option {
	return func(a *Authenticator) {
		a.now = now
	}
}

// NewAuthenticator creates an Authenticator. When issuer is non-empty,
// tokens must carry a matching iss claim.
func NewAuthenticator(secret []byte, issuer string, opts ...Option) *Authenticator {
	a := &Authenticator{
		secret: secret,
		issuer: issuer,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Authenticate verifies tokenString and returns the user it names.
func (a *Authenticator) Authenticate(tokenString string) (*domain.User, error) {
	parserOpts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(a.now),
	}
	if a.issuer != "" {
		parserOpts = append(parserOpts, jwt.WithIssuer(a.issuer))
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return a.secret, nil
	}, parserOpts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if !token.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}

	return &domain.User{
		ID:    claims.Subject,
		Email: claims.Email,
		Name:  claims.Name,
	}, nil
}

// IssueToken signs a token for user valid for ttl.
func (a *Authenticator) IssueToken(user *domain.User, ttl time.Duration) (string, error) {
	if user == nil || user.ID == "" {
		return "", errors.New("issuing token: user id required")
	}

	now := a.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			Issuer:    a.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Email: user.Email,
		Name:  user.Name,
	})

	signed, err := token.SignedString(a.secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return signed, nil
}

type userKey struct{}

// WithUser returns a copy of ctx carrying user.
func WithUser(ctx context.Context, user *domain.User) context.Context {
	return context.WithValue(ctx, userKey{}, user)
}

// UserFromContext returns the user stored in ctx, or nil for anonymous
// requests.
func UserFromContext(ctx context.Context) *domain.User {
	u, _ := ctx.Value(userKey{}).(*domain.User)
	return u
}

// RequireUser returns the user in ctx or ErrNoSession.
func RequireUser(ctx context.Context) (*domain.User, error) {
	u := UserFromContext(ctx)
	if u == nil {
		return nil, ErrNoSession
	}
	return u, nil
}
