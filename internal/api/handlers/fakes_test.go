package handlers_test

import (
	"context"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/maardu-realty/internal/engine"
	"github.com/donaldgifford/maardu-realty/internal/pipeline"
	"github.com/donaldgifford/maardu-realty/internal/portal"
	"github.com/donaldgifford/maardu-realty/internal/session"
	domain "github.com/donaldgifford/maardu-realty/pkg/types"
)

// fakeApp is a test double for the portal application state.
type fakeApp struct {
	searchResult *portal.SearchResult
	searchErr    error
	gotCriteria  domain.FilterCriteria

	refreshCount int
	refreshErr   error

	run        *domain.PipelineRun
	runs       []domain.PipelineRun
	invoice    *domain.Invoice
	paymentErr error
	gotRequest pipeline.Request
	gotUser    *domain.User
	gotRunID   string
	gotLimit   int

	summary       *engine.ExpirationSummary
	expirationErr error
}

func (f *fakeApp) Search(c domain.FilterCriteria) (*portal.SearchResult, error) {
	f.gotCriteria = c
	return f.searchResult, f.searchErr
}

func (f *fakeApp) RefreshListings(context.Context) (int, error) {
	return f.refreshCount, f.refreshErr
}

func (*fakeApp) Session(user *domain.User) *portal.SessionView {
	return &portal.SessionView{
		User:          user,
		Authenticated: user != nil,
		Features:      session.Features(user),
	}
}

func (f *fakeApp) HandlePaymentSuccess(
	_ context.Context,
	user *domain.User,
	req pipeline.Request,
) (*domain.PipelineRun, error) {
	f.gotUser, f.gotRequest = user, req
	return f.run, f.paymentErr
}

func (f *fakeApp) PaymentHistory(_ context.Context, user *domain.User, limit int) ([]domain.PipelineRun, error) {
	f.gotUser, f.gotLimit = user, limit
	return f.runs, f.paymentErr
}

func (f *fakeApp) Payment(_ context.Context, user *domain.User, runID string) (*domain.PipelineRun, error) {
	f.gotUser, f.gotRunID = user, runID
	return f.run, f.paymentErr
}

func (f *fakeApp) Invoice(_ context.Context, user *domain.User, runID string) (*domain.Invoice, error) {
	f.gotUser, f.gotRunID = user, runID
	return f.invoice, f.paymentErr
}

func (f *fakeApp) ResumePayment(_ context.Context, user *domain.User, runID string) (*domain.PipelineRun, error) {
	f.gotUser, f.gotRunID = user, runID
	return f.run, f.paymentErr
}

func (f *fakeApp) CheckExpirations(context.Context) (*engine.ExpirationSummary, error) {
	return f.summary, f.expirationErr
}

// signedIn makes every operation registered afterwards see user as the
// session user, as the Echo session middleware does in the server.
func signedIn(api huma.API, user *domain.User) {
	api.UseMiddleware(func(ctx huma.Context, next func(huma.Context)) {
		next(huma.WithContext(ctx, session.WithUser(ctx.Context(), user)))
	})
}
