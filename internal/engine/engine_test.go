package engine

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	ptestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/maardu-realty/internal/apperrors"
	apiMocks "github.com/donaldgifford/maardu-realty/internal/marketplace/mocks"
	"github.com/donaldgifford/maardu-realty/internal/metrics"
	"github.com/donaldgifford/maardu-realty/internal/notify"
	notifyMocks "github.com/donaldgifford/maardu-realty/internal/notify/mocks"
	storeMocks "github.com/donaldgifford/maardu-realty/internal/store/mocks"
	"github.com/donaldgifford/maardu-realty/pkg/logger"
	domain "github.com/donaldgifford/maardu-realty/pkg/types"
)

var testNow = time.Date(2026, 5, 4, 21, 15, 0, 0, time.UTC)

func quietLogger() *slog.Logger {
	return logger.Discard()
}

func newTestEngine(api *apiMocks.MockAPI, ms *storeMocks.MockStore, mn *notifyMocks.MockNotifier) *Engine {
	return NewEngine(api, ms, mn,
		WithLogger(quietLogger()),
		WithClock(func() time.Time { return testNow }),
	)
}

func expiredListings(ids ...string) []domain.Listing {
	out := make([]domain.Listing, 0, len(ids))
	for _, id := range ids {
		out = append(out, domain.Listing{ID: id, UserID: "owner-" + id, Title: "Listing " + id})
	}
	return out
}

func TestCheckExpiredListings_SendsOnePerListing(t *testing.T) {
	api := apiMocks.NewMockAPI(t)
	ms := storeMocks.NewMockStore(t)
	mn := notifyMocks.NewMockNotifier(t)
	eng := newTestEngine(api, ms, mn)

	day := time.Date(2026, 5, 4, 0, 0, 0, 0, time.UTC)
	api.EXPECT().CheckExpiredListings(mock.Anything).
		Return(expiredListings("a", "b", "c"), nil).Once()

	var (
		mu   sync.Mutex
		sent [][2]string
	)
	for _, id := range []string{"a", "b", "c"} {
		ms.EXPECT().ClaimExpirationNotice(mock.Anything, id, "owner-"+id, day).Return(true, nil).Once()
	}
	api.EXPECT().SendExpirationEmail(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, userID, listingID string) error {
			mu.Lock()
			defer mu.Unlock()
			sent = append(sent, [2]string{userID, listingID})
			return nil
		}).Times(3)
	mn.EXPECT().NotifyExpirationDigest(mock.Anything, mock.MatchedBy(func(d *notify.ExpirationDigest) bool {
		return d.Expired == 3 && d.Sent == 3 && d.Failed == 0 && d.Day.Equal(day)
	})).Return(nil).Once()

	sentBefore := ptestutil.ToFloat64(metrics.ExpirationEmailsSentTotal)
	seenBefore := ptestutil.ToFloat64(metrics.ExpiredListingsSeenTotal)

	summary, err := eng.CheckExpiredListings(context.Background())
	require.NoError(t, err)

	assert.Equal(t, &ExpirationSummary{Day: day, Expired: 3, Sent: 3}, summary)
	assert.Equal(t, [][2]string{
		{"owner-a", "a"},
		{"owner-b", "b"},
		{"owner-c", "c"},
	}, sent)
	assert.InDelta(t, 3, ptestutil.ToFloat64(metrics.ExpirationEmailsSentTotal)-sentBefore, 0.001)
	assert.InDelta(t, 3, ptestutil.ToFloat64(metrics.ExpiredListingsSeenTotal)-seenBefore, 0.001)
}

func TestCheckExpiredListings_SkipsAlreadyNotified(t *testing.T) {
	api := apiMocks.NewMockAPI(t)
	ms := storeMocks.NewMockStore(t)
	mn := notifyMocks.NewMockNotifier(t)
	eng := newTestEngine(api, ms, mn)

	api.EXPECT().CheckExpiredListings(mock.Anything).Return(expiredListings("a", "b"), nil).Once()
	ms.EXPECT().ClaimExpirationNotice(mock.Anything, "a", "owner-a", mock.Anything).Return(false, nil).Once()
	ms.EXPECT().ClaimExpirationNotice(mock.Anything, "b", "owner-b", mock.Anything).Return(true, nil).Once()
	api.EXPECT().SendExpirationEmail(mock.Anything, "owner-b", "b").Return(nil).Once()
	mn.EXPECT().NotifyExpirationDigest(mock.Anything, mock.Anything).Return(nil).Once()

	skippedBefore := ptestutil.ToFloat64(metrics.ExpirationEmailsSkippedTotal)

	summary, err := eng.CheckExpiredListings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Sent)
	assert.Equal(t, 1, summary.Skipped)
	assert.InDelta(t, 1, ptestutil.ToFloat64(metrics.ExpirationEmailsSkippedTotal)-skippedBefore, 0.001)
}

func TestCheckExpiredListings_SendFailureReleasesClaim(t *testing.T) {
	api := apiMocks.NewMockAPI(t)
	ms := storeMocks.NewMockStore(t)
	mn := notifyMocks.NewMockNotifier(t)
	eng := newTestEngine(api, ms, mn)

	sendErr := apperrors.NewServerRejection("send_expiration_email", 500, "smtp down")

	api.EXPECT().CheckExpiredListings(mock.Anything).Return(expiredListings("a", "b"), nil).Once()
	ms.EXPECT().ClaimExpirationNotice(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(true, nil).Times(2)
	api.EXPECT().SendExpirationEmail(mock.Anything, "owner-a", "a").Return(sendErr).Once()
	api.EXPECT().SendExpirationEmail(mock.Anything, "owner-b", "b").Return(nil).Once()
	ms.EXPECT().ReleaseExpirationNotice(mock.Anything, "a", mock.Anything).Return(nil).Once()
	mn.EXPECT().NotifyExpirationDigest(mock.Anything, mock.MatchedBy(func(d *notify.ExpirationDigest) bool {
		return d.Failed == 1 && len(d.FailedListings) == 1 && d.FailedListings[0] == "a"
	})).Return(nil).Once()

	failuresBefore := ptestutil.ToFloat64(metrics.ExpirationEmailFailuresTotal)

	summary, err := eng.CheckExpiredListings(context.Background())
	require.Error(t, err)

	var rejection *apperrors.ServerRejection
	require.ErrorAs(t, err, &rejection)
	assert.Equal(t, 1, summary.Sent)
	assert.Equal(t, 1, summary.Failed)
	assert.InDelta(t, 1, ptestutil.ToFloat64(metrics.ExpirationEmailFailuresTotal)-failuresBefore, 0.001)
}

func TestCheckExpiredListings_ClaimError(t *testing.T) {
	api := apiMocks.NewMockAPI(t)
	ms := storeMocks.NewMockStore(t)
	mn := notifyMocks.NewMockNotifier(t)
	eng := newTestEngine(api, ms, mn)

	api.EXPECT().CheckExpiredListings(mock.Anything).Return(expiredListings("a"), nil).Once()
	ms.EXPECT().ClaimExpirationNotice(mock.Anything, "a", "owner-a", mock.Anything).
		Return(false, errors.New("connection reset")).Once()
	mn.EXPECT().NotifyExpirationDigest(mock.Anything, mock.Anything).Return(nil).Once()

	summary, err := eng.CheckExpiredListings(context.Background())
	require.ErrorContains(t, err, "claiming notice for listing a")
	assert.Equal(t, 1, summary.Failed)
	assert.Zero(t, summary.Sent)
}

func TestCheckExpiredListings_MissingOwner(t *testing.T) {
	api := apiMocks.NewMockAPI(t)
	ms := storeMocks.NewMockStore(t)
	mn := notifyMocks.NewMockNotifier(t)
	eng := newTestEngine(api, ms, mn)

	api.EXPECT().CheckExpiredListings(mock.Anything).
		Return([]domain.Listing{{ID: "orphan"}}, nil).Once()
	mn.EXPECT().NotifyExpirationDigest(mock.Anything, mock.Anything).Return(nil).Once()

	summary, err := eng.CheckExpiredListings(context.Background())
	require.ErrorContains(t, err, "missing id or owner")
	assert.Equal(t, 1, summary.Failed)
}

func TestCheckExpiredListings_FetchError(t *testing.T) {
	t.Parallel()

	api := apiMocks.NewMockAPI(t)
	ms := storeMocks.NewMockStore(t)
	mn := notifyMocks.NewMockNotifier(t)
	eng := newTestEngine(api, ms, mn)

	netErr := apperrors.NewNetworkError("check_expired_listings", errors.New("connection refused"))
	api.EXPECT().CheckExpiredListings(mock.Anything).Return(nil, netErr).Once()

	summary, err := eng.CheckExpiredListings(context.Background())
	require.ErrorIs(t, err, netErr)
	assert.Zero(t, summary.Expired)
}

func TestCheckExpiredListings_NoneExpired(t *testing.T) {
	t.Parallel()

	api := apiMocks.NewMockAPI(t)
	ms := storeMocks.NewMockStore(t)
	mn := notifyMocks.NewMockNotifier(t)
	eng := newTestEngine(api, ms, mn)

	api.EXPECT().CheckExpiredListings(mock.Anything).Return([]domain.Listing{}, nil).Once()

	summary, err := eng.CheckExpiredListings(context.Background())
	require.NoError(t, err)
	assert.Zero(t, summary.Expired)
	mn.AssertNotCalled(t, "NotifyExpirationDigest", mock.Anything, mock.Anything)
}

func TestCheckExpiredListings_DigestFailureIgnored(t *testing.T) {
	api := apiMocks.NewMockAPI(t)
	ms := storeMocks.NewMockStore(t)
	mn := notifyMocks.NewMockNotifier(t)
	eng := newTestEngine(api, ms, mn)

	api.EXPECT().CheckExpiredListings(mock.Anything).Return(expiredListings("a"), nil).Once()
	ms.EXPECT().ClaimExpirationNotice(mock.Anything, "a", "owner-a", mock.Anything).Return(true, nil).Once()
	api.EXPECT().SendExpirationEmail(mock.Anything, "owner-a", "a").Return(nil).Once()
	mn.EXPECT().NotifyExpirationDigest(mock.Anything, mock.Anything).
		Return(errors.New("webhook down")).Once()

	summary, err := eng.CheckExpiredListings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Sent)
}

func TestCheckExpiredListings_CancelledStopsSending(t *testing.T) {
	api := apiMocks.NewMockAPI(t)
	ms := storeMocks.NewMockStore(t)
	mn := notifyMocks.NewMockNotifier(t)
	eng := newTestEngine(api, ms, mn)

	ctx, cancel := context.WithCancel(context.Background())

	api.EXPECT().CheckExpiredListings(mock.Anything).Return(expiredListings("a", "b"), nil).Once()
	ms.EXPECT().ClaimExpirationNotice(mock.Anything, "a", "owner-a", mock.Anything).Return(true, nil).Once()
	api.EXPECT().SendExpirationEmail(mock.Anything, "owner-a", "a").
		RunAndReturn(func(context.Context, string, string) error {
			cancel()
			return nil
		}).Once()
	mn.EXPECT().NotifyExpirationDigest(mock.Anything, mock.Anything).Return(nil).Once()

	summary, err := eng.CheckExpiredListings(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, summary.Sent)
}
