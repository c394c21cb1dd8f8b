// Package main implements a mock marketplace server for local development.
// It keeps listings in memory and implements the listing, activation,
// invoicing, and email endpoints the portal calls, so the full payment and
// expiration flows can run without the real marketplace.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"
)

type listing struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Price     float64    `json:"price"`
	IsActive  bool       `json:"isActive"`
	UserID    string     `json:"userId"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
}

type paymentInfo struct {
	ListingID string  `json:"listingId"`
	PaymentID string  `json:"paymentId,omitempty"`
	Amount    float64 `json:"amount,omitempty"`
	Currency  string  `json:"currency,omitempty"`
}

type invoice struct {
	ID        string    `json:"id"`
	Number    string    `json:"number"`
	IssuedAt  time.Time `json:"issuedAt"`
	UserID    string    `json:"userId"`
	ListingID string    `json:"listingId"`
	Amount    float64   `json:"amount"`
	Currency  string    `json:"currency"`
}

// marketplace is the in-memory state behind the mock endpoints.
type marketplace struct {
	mu        sync.Mutex
	listings  []listing
	invoices  int
	emails    []string
	failing   map[string]bool
	token     string
	activeFor time.Duration
	now       func() time.Time
	logger    *slog.Logger
}

func main() {
	port := flag.Int("port", 8089, "port to listen on")
	fixtureFile := flag.String("fixture", "", "path to a JSON array of listings (default: built-in sample)")
	token := flag.String("token", "", "require this bearer service token")
	fail := flag.String("fail", "", "comma-separated endpoint paths that answer 502")
	activeFor := flag.Duration("active-for", 30*24*time.Hour, "listing lifetime after activation")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	seed := sampleListings(time.Now())
	if *fixtureFile != "" {
		loaded, err := loadFixture(*fixtureFile)
		if err != nil {
			logger.Error("failed to load fixture", "path", *fixtureFile, "error", err)
			os.Exit(1)
		}
		seed = loaded
	}
	logger.Info("loaded listings", "count", len(seed))

	m := newMarketplace(seed, *token, splitPaths(*fail), *activeFor, logger)

	addr := fmt.Sprintf(":%d", *port)
	logger.Info("starting mock marketplace", "addr", addr, "failing", *fail)

	srv := &http.Server{
		Addr:         addr,
		Handler:      requestLogger(logger, m.routes()),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func newMarketplace(
	seed []listing,
	token string,
	failing map[string]bool,
	activeFor time.Duration,
	logger *slog.Logger,
) *marketplace {
	return &marketplace{
		listings:  seed,
		failing:   failing,
		token:     token,
		activeFor: activeFor,
		now:       time.Now,
		logger:    logger,
	}
}

func (m *marketplace) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/listings", m.handleListings)
	mux.HandleFunc("POST /api/activate-listing", m.handleActivate)
	mux.HandleFunc("POST /api/generate-invoice", m.handleGenerateInvoice)
	mux.HandleFunc("POST /api/send-payment-confirmation-email", m.handlePaymentEmail)
	mux.HandleFunc("GET /api/check-expired-listings", m.handleExpired)
	mux.HandleFunc("POST /api/send-expiration-email", m.handleExpirationEmail)
	return m.guard(mux)
}

// guard enforces the service token and injected failures.
func (m *marketplace) guard(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.token != "" && r.Header.Get("Authorization") != "Bearer "+m.token {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid service token"})
			return
		}
		if m.failing[r.URL.Path] {
			m.logger.Warn("injected failure", "path", r.URL.Path)
			writeJSON(w, http.StatusBadGateway, map[string]string{"error": "injected failure"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (m *marketplace) handleListings(w http.ResponseWriter, _ *http.Request) {
	m.mu.Lock()
	out := make([]listing, len(m.listings))
	copy(out, m.listings)
	m.mu.Unlock()

	writeJSON(w, http.StatusOK, out)
}

func (m *marketplace) handleActivate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserID    string `json:"userId"`
		ListingID string `json:"listingId"`
	}
	if !decode(w, r, &req) {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.listings {
		l := &m.listings[i]
		if l.ID != req.ListingID {
			continue
		}
		expires := m.now().Add(m.activeFor)
		l.IsActive = true
		l.UserID = req.UserID
		l.ExpiresAt = &expires
		m.logger.Info("activated listing", "listing_id", l.ID, "user_id", req.UserID)
		writeJSON(w, http.StatusOK, l)
		return
	}
	writeJSON(w, http.StatusNotFound, map[string]string{"error": "listing not found"})
}

func (m *marketplace) handleGenerateInvoice(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserID      string      `json:"userId"`
		PaymentInfo paymentInfo `json:"paymentInfo"`
	}
	if !decode(w, r, &req) {
		return
	}

	m.mu.Lock()
	m.invoices++
	seq := m.invoices
	m.mu.Unlock()

	now := m.now().UTC()
	inv := invoice{
		ID:        fmt.Sprintf("inv-%d-%04d", now.Unix(), seq),
		Number:    fmt.Sprintf("MR-%d-%04d", now.Year(), seq),
		IssuedAt:  now,
		UserID:    req.UserID,
		ListingID: req.PaymentInfo.ListingID,
		Amount:    req.PaymentInfo.Amount,
		Currency:  req.PaymentInfo.Currency,
	}
	m.logger.Info("generated invoice", "number", inv.Number, "listing_id", inv.ListingID)
	writeJSON(w, http.StatusOK, map[string]invoice{"invoice": inv})
}

func (m *marketplace) handlePaymentEmail(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserID  string          `json:"userId"`
		Invoice json.RawMessage `json:"invoice"`
	}
	if !decode(w, r, &req) {
		return
	}
	if len(req.Invoice) == 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invoice required"})
		return
	}
	m.recordEmail("payment:" + req.UserID)
	w.WriteHeader(http.StatusNoContent)
}

func (m *marketplace) handleExpired(w http.ResponseWriter, _ *http.Request) {
	now := m.now()

	m.mu.Lock()
	expired := []listing{}
	for _, l := range m.listings {
		if l.ExpiresAt != nil && l.ExpiresAt.Before(now) {
			expired = append(expired, l)
		}
	}
	m.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string][]listing{"expiredListings": expired})
}

func (m *marketplace) handleExpirationEmail(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserID    string `json:"userId"`
		ListingID string `json:"listingId"`
	}
	if !decode(w, r, &req) {
		return
	}
	if req.UserID == "" || req.ListingID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "userId and listingId required"})
		return
	}
	m.recordEmail("expiration:" + req.UserID + ":" + req.ListingID)
	w.WriteHeader(http.StatusNoContent)
}

func (m *marketplace) recordEmail(kind string) {
	m.mu.Lock()
	m.emails = append(m.emails, kind)
	m.mu.Unlock()
	m.logger.Info("sent email", "kind", kind)
}

func decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
	json.NewEncoder(w).Encode(v)
}

func loadFixture(path string) ([]listing, error) {
	data, err := os.ReadFile(path) //nolint:gosec // fixture path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading fixture: %w", err)
	}
	var out []listing
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("parsing fixture: %w", err)
	}
	return out, nil
}

// sampleListings returns a small mixed set: active, inactive, and one
// listing that expired yesterday.
func sampleListings(now time.Time) []listing {
	future := now.Add(14 * 24 * time.Hour)
	past := now.Add(-24 * time.Hour)
	return []listing{
		{ID: "l-1001", Title: "Two-room flat with sea view", Price: 89000, IsActive: true, UserID: "u-1", ExpiresAt: &future},
		{ID: "l-1002", Title: "Family house near Maardu lake", Price: 245000, IsActive: true, UserID: "u-2", ExpiresAt: &future},
		{ID: "l-1003", Title: "Studio flat, renovated", Price: 52000, IsActive: false, UserID: "u-1"},
		{ID: "l-1004", Title: "Garage box", Price: 7500, IsActive: true, UserID: "u-3", ExpiresAt: &past},
	}
}

func splitPaths(s string) map[string]bool {
	out := map[string]bool{}
	for p := range strings.SplitSeq(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out[p] = true
		}
	}
	return out
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("request", "method", r.Method, "path", r.URL.Path, "query", r.URL.RawQuery)
		next.ServeHTTP(w, r)
	})
}
