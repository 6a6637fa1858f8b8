// Package server exposes the finch engine as a JSON HTTP API. There is one
// logical writer (the local user), so every mutating handler runs under a
// single mutex and follows the same shape: load, apply, recompute derived
// health fields, save.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/finchapp/finch/internal/advisor"
	"github.com/finchapp/finch/internal/health"
	"github.com/finchapp/finch/internal/model"
	"github.com/finchapp/finch/internal/store"
	"github.com/finchapp/finch/pkg/constants"
	"github.com/finchapp/finch/pkg/debt"
	"github.com/finchapp/finch/pkg/goals"
	"github.com/finchapp/finch/pkg/ids"
	"go.uber.org/zap"
)

type handler struct {
	logger  *zap.Logger
	store   *store.Store
	advisor *advisor.Client
	ids     ids.Generator
	now     func() time.Time
	maxBody int64
	version string

	// Guards every read-modify-write against the store.
	mu sync.Mutex
}

// Options configures the API handler.
type Options struct {
	Logger  *zap.Logger
	Store   *store.Store
	Advisor *advisor.Client
	IDs     ids.Generator
	Now     func() time.Time
	MaxBody int64
	Version string
}

// NewHandler constructs the HTTP handler that serves the finch API.
func NewHandler(opts Options) http.Handler {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.IDs == nil {
		opts.IDs = ids.UUID{}
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.MaxBody <= 0 {
		opts.MaxBody = constants.DefaultMaxBodyBytes
	}
	version := strings.TrimSpace(opts.Version)
	if version == "" {
		version = "dev"
	}

	h := &handler{
		logger:  opts.Logger,
		store:   opts.Store,
		advisor: opts.Advisor,
		ids:     opts.IDs,
		now:     opts.Now,
		maxBody: opts.MaxBody,
		version: version,
	}

	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/summary", h.handleSummary)
	mux.HandleFunc("GET /api/version", h.handleVersion)

	mux.HandleFunc("GET /api/accounts", h.handleAccountsList)
	mux.HandleFunc("POST /api/accounts", h.handleAccountCreate)
	mux.HandleFunc("PUT /api/accounts/{id}", h.handleAccountUpdate)
	mux.HandleFunc("DELETE /api/accounts/{id}", h.handleAccountDelete)
	mux.HandleFunc("POST /api/accounts/briefing", h.handleBriefing)

	mux.HandleFunc("PUT /api/health", h.handleHealthUpdate)
	mux.HandleFunc("POST /api/checkin", h.handleCheckIn)
	mux.HandleFunc("POST /api/gig-income", h.handleGigIncome)

	mux.HandleFunc("GET /api/goals", h.handleGoalsList)
	mux.HandleFunc("POST /api/goals", h.handleGoalCreate)
	mux.HandleFunc("POST /api/goals/{id}/contribute", h.handleGoalContribute)
	mux.HandleFunc("POST /api/goals/{id}/launch", h.handleGoalLaunch)
	mux.HandleFunc("POST /api/goals/{id}/skip", h.handleGoalSkip)

	mux.HandleFunc("GET /api/subscriptions", h.handleSubscriptionsList)
	mux.HandleFunc("POST /api/subscriptions", h.handleSubscriptionCreate)
	mux.HandleFunc("POST /api/subscriptions/{id}/kill", h.handleSubscriptionKill)

	mux.HandleFunc("GET /api/bills", h.handleBillsList)
	mux.HandleFunc("POST /api/bills", h.handleBillCreate)

	mux.HandleFunc("POST /api/debt/plan", h.handleDebtPlan)
	mux.HandleFunc("GET /api/hecs", h.handleHecs)
	mux.HandleFunc("GET /api/abn", h.handleABN)
	mux.HandleFunc("GET /api/depreciation", h.handleDepreciation)

	mux.HandleFunc("POST /api/advice", h.handleAdvice)
	mux.HandleFunc("POST /api/scan/bill", h.handleScanBill)
	mux.HandleFunc("POST /api/import/transactions", h.handleImportTransactions)
	mux.HandleFunc("POST /api/detect/subscriptions", h.handleDetectSubscriptions)
	mux.HandleFunc("GET /api/transactions", h.handleTransactionsList)

	return mux
}

type summaryResponse struct {
	Health              model.FinancialHealth `json:"health"`
	NetWorth            float64               `json:"netWorth"`
	Surplus             float64               `json:"surplus"`
	MonthlyCommitments  float64               `json:"monthlyCommitments"`
	Goals               []goalWithStatus      `json:"goals"`
	DaysUntilIndexation int                   `json:"daysUntilIndexation"`
}

type goalWithStatus struct {
	model.Goal
	Status goals.GoalStatus `json:"status"`
}

func (h *handler) handleSummary(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	now := h.now()
	accounts := h.store.LoadAccounts()
	record := health.Recompute(accounts, h.store.LoadHealth())
	goalList := h.store.LoadGoals()
	subs := h.store.LoadSubscriptions()
	bills := h.store.LoadBills()

	statuses := make([]goalWithStatus, 0, len(goalList))
	for _, g := range goalList {
		statuses = append(statuses, goalWithStatus{
			Goal:   g,
			Status: goals.Project(g.TargetAmount, g.CurrentAmount, g.Deadline, now),
		})
	}

	h.writeJSON(w, http.StatusOK, summaryResponse{
		Health:              record,
		NetWorth:            record.NetWorth(),
		Surplus:             health.Surplus(record, subs, bills),
		MonthlyCommitments:  health.MonthlyCommitments(subs, bills),
		Goals:               statuses,
		DaysUntilIndexation: debt.DaysUntilIndexation(now),
	})
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

// recomputeAndSave persists the account collection together with the freshly
// derived health record. The two writes happen before the lock is released,
// so callers never observe stale derived fields.
func (h *handler) recomputeAndSave(accounts []model.AccountItem) (model.FinancialHealth, error) {
	record := health.Recompute(accounts, h.store.LoadHealth())
	if err := h.store.SaveAccounts(accounts); err != nil {
		return record, err
	}
	if err := h.store.SaveHealth(record); err != nil {
		return record, err
	}
	return record, nil
}

// decodeJSON reads a size-limited JSON request body into v.
func (h *handler) decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBody)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return fmt.Errorf("request exceeds limit of %d bytes", h.maxBody)
		}
		return fmt.Errorf("failed to decode request: %v", err)
	}
	return nil
}

func (h *handler) respondError(w http.ResponseWriter, status int, msg string, op string) {
	h.logger.Error("request failed",
		zap.String("op", op),
		zap.Int("status", status),
		zap.String("error", msg),
	)

	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}
