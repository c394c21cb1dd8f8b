package session

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/donaldgifford/maardu-realty/pkg/types"
)

var testSecret = []byte("test-secret")

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestAuthenticator_RoundTrip(t *testing.T) {
	t.Parallel()

	a := NewAuthenticator(testSecret, "marketplace")
	user := &domain.User{ID: "u-1", Email: "mari@example.ee", Name: "Mari"}

	token, err := a.IssueToken(user, time.Hour)
	require.NoError(t, err)

	got, err := a.Authenticate(token)
	require.NoError(t, err)
	assert.Equal(t, user, got)
}

func TestAuthenticator_Rejects(t *testing.T) {
	t.Parallel()

	issuedAt := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	issuer := NewAuthenticator(testSecret, "marketplace", WithClock(fixedClock(issuedAt)))
	valid, err := issuer.IssueToken(&domain.User{ID: "u-1"}, time.Hour)
	require.NoError(t, err)

	otherIssuer, err := NewAuthenticator(testSecret, "elsewhere", WithClock(fixedClock(issuedAt))).
		IssueToken(&domain.User{ID: "u-1"}, time.Hour)
	require.NoError(t, err)

	otherSecret, err := NewAuthenticator([]byte("other"), "marketplace", WithClock(fixedClock(issuedAt))).
		IssueToken(&domain.User{ID: "u-1"}, time.Hour)
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "u-1", Issuer: "marketplace"},
	}).SignedString(testSecret)
	require.NoError(t, err)

	noSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "marketplace",
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(time.Hour)),
		},
	}).SignedString(testSecret)
	require.NoError(t, err)

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "u-1",
			Issuer:    "marketplace",
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(time.Hour)),
		},
	}).SignedString(testSecret)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
		now   time.Time
	}{
		{name: "expired", token: valid, now: issuedAt.Add(2 * time.Hour)},
		{name: "malformed", token: "not-a-jwt", now: issuedAt},
		{name: "empty", token: "", now: issuedAt},
		{name: "wrong issuer", token: otherIssuer, now: issuedAt},
		{name: "wrong secret", token: otherSecret, now: issuedAt},
		{name: "missing expiry", token: noExpiry, now: issuedAt},
		{name: "missing subject", token: noSubject, now: issuedAt},
		{name: "unexpected algorithm", token: hs512, now: issuedAt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			a := NewAuthenticator(testSecret, "marketplace", WithClock(fixedClock(tt.now)))
			user, err := a.Authenticate(tt.token)
			require.ErrorIs(t, err, ErrInvalidToken)
			assert.Nil(t, user)
		})
	}
}

func TestAuthenticator_NoIssuerCheck(t *testing.T) {
	t.Parallel()

	token, err := NewAuthenticator(testSecret, "anything").IssueToken(&domain.User{ID: "u-2"}, time.Minute)
	require.NoError(t, err)

	user, err := NewAuthenticator(testSecret, "").Authenticate(token)
	require.NoError(t, err)
	assert.Equal(t, "u-2", user.ID)
}

func TestIssueToken_RequiresUser(t *testing.T) {
	t.Parallel()

	a := NewAuthenticator(testSecret, "")
	_, err := a.IssueToken(nil, time.Minute)
	require.Error(t, err)
	_, err = a.IssueToken(&domain.User{}, time.Minute)
	require.Error(t, err)
}

func TestContextUser(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	assert.Nil(t, UserFromContext(ctx))

	_, err := RequireUser(ctx)
	require.ErrorIs(t, err, ErrNoSession)

	user := &domain.User{ID: "u-1"}
	ctx = WithUser(ctx, user)
	assert.Same(t, user, UserFromContext(ctx))

	got, err := RequireUser(ctx)
	require.NoError(t, err)
	assert.Same(t, user, got)
}

func TestFeatures(t *testing.T) {
	t.Parallel()

	anon := Features(nil)
	assert.ElementsMatch(t, []domain.Feature{
		domain.FeatureSearch, domain.FeatureFilter, domain.FeatureAuth,
	}, anon)
	assert.False(t, Allows(nil, domain.FeaturePayment))
	assert.False(t, Allows(nil, domain.FeatureInvoiceTypeSelector))

	user := &domain.User{ID: "u-1"}
	assert.ElementsMatch(t, []domain.Feature{
		domain.FeatureSearch, domain.FeatureFilter, domain.FeatureAuth,
		domain.FeatureDashboard, domain.FeaturePaymentHistory,
		domain.FeatureInvoiceTypeSelector, domain.FeaturePayment,
	}, Features(user))
	assert.True(t, Allows(user, domain.FeaturePayment))

	// Callers may not mutate the shared feature tables.
	anon[0] = domain.FeaturePayment
	assert.Equal(t, domain.FeatureSearch, Features(nil)[0])
}
