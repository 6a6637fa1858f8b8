package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/finchapp/finch/internal/advisor"
	"github.com/finchapp/finch/internal/health"
	"github.com/finchapp/finch/internal/model"
	"github.com/finchapp/finch/pkg/compliance"
	"github.com/finchapp/finch/pkg/debt"
)

// Debt plan modes.
const (
	modeByDate   = "BY_DATE"
	modeByBudget = "BY_BUDGET"
)

type debtPlanRequest struct {
	// AccountID takes balance and interest rate from a stored account;
	// otherwise Balance/InterestRate are used directly.
	AccountID    string  `json:"accountId"`
	Balance      float64 `json:"balance"`
	InterestRate float64 `json:"interestRate"`
	Mode         string  `json:"mode"`
	Months       int     `json:"months"`
	Payment      float64 `json:"payment"`
}

type debtPlanResponse struct {
	Plan    debt.Plan `json:"plan"`
	Warning string    `json:"warning,omitempty"`
}

func (h *handler) handleDebtPlan(w http.ResponseWriter, r *http.Request) {
	var req debtPlanRequest
	if err := h.decodeJSON(w, r, &req); err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error(), "server.handleDebtPlan")
		return
	}

	balance := req.Balance
	rate := req.InterestRate
	if req.AccountID != "" {
		h.mu.Lock()
		accounts := h.store.LoadAccounts()
		h.mu.Unlock()

		found := false
		for _, account := range accounts {
			if account.ID == req.AccountID {
				balance = account.Balance
				// HECS indexes with inflation and projects at 0% interest.
				if account.Type.InterestBearing() {
					rate = account.InterestRate
				} else {
					rate = 0
				}
				found = true
				break
			}
		}
		if !found {
			h.respondError(w, http.StatusNotFound, fmt.Sprintf("no account with id %s", req.AccountID), "server.handleDebtPlan")
			return
		}
	}

	var plan debt.Plan
	switch req.Mode {
	case modeByDate:
		plan = debt.AmortizeByDate(balance, rate, req.Months, h.now())
	case modeByBudget:
		plan = debt.AmortizeByBudget(balance, rate, req.Payment, h.now())
	default:
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("mode must be %s or %s", modeByDate, modeByBudget), "server.handleDebtPlan")
		return
	}

	resp := debtPlanResponse{Plan: plan}
	if !plan.PaysOff {
		resp.Warning = "payment does not cover the monthly interest accrual; the balance will never pay off"
	}
	h.writeJSON(w, http.StatusOK, resp)
}

type hecsResponse struct {
	HecsDebt            float64               `json:"hecsDebt"`
	RepaymentRate       float64               `json:"repaymentRate"`
	CompulsoryRepayment float64               `json:"compulsoryRepayment"`
	DaysUntilIndexation int                   `json:"daysUntilIndexation"`
	Comparison          debt.OffsetComparison `json:"comparison"`
}

func (h *handler) handleHecs(w http.ResponseWriter, r *http.Request) {
	extra := queryFloat(r, "extra", 0)
	indexationRate := queryFloat(r, "indexationRate", 4.0)
	loanRate := queryFloat(r, "loanRate", 6.0)

	h.mu.Lock()
	record := health.Recompute(h.store.LoadAccounts(), h.store.LoadHealth())
	h.mu.Unlock()

	now := h.now()
	h.writeJSON(w, http.StatusOK, hecsResponse{
		HecsDebt:            record.HecsDebt,
		RepaymentRate:       debt.RepaymentRate(record.AnnualSalary),
		CompulsoryRepayment: debt.CompulsoryRepayment(record.AnnualSalary, record.HecsDebt),
		DaysUntilIndexation: debt.DaysUntilIndexation(now),
		Comparison:          debt.CompareHecsVsOffset(extra, indexationRate, loanRate),
	})
}

func (h *handler) handleABN(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, compliance.ValidateABN(r.URL.Query().Get("value")))
}

func (h *handler) handleDepreciation(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, compliance.SearchDepreciation(r.URL.Query().Get("q")))
}

type adviceRequest struct {
	Prompt  string            `json:"prompt"`
	History []advisor.Message `json:"history"`
}

// handleAdvice forwards a coaching prompt with the current health snapshot.
// An unavailable or failing advisor yields an empty text, never an error.
func (h *handler) handleAdvice(w http.ResponseWriter, r *http.Request) {
	var req adviceRequest
	if err := h.decodeJSON(w, r, &req); err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error(), "server.handleAdvice")
		return
	}

	h.mu.Lock()
	record := health.Recompute(h.store.LoadAccounts(), h.store.LoadHealth())
	h.mu.Unlock()

	text := h.advisor.Advise(r.Context(), req.Prompt, record, req.History)
	h.writeJSON(w, http.StatusOK, map[string]string{"text": text})
}

type documentRequest struct {
	Text string `json:"text"`
}

func (h *handler) handleScanBill(w http.ResponseWriter, r *http.Request) {
	var req documentRequest
	if err := h.decodeJSON(w, r, &req); err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error(), "server.handleScanBill")
		return
	}

	result := h.advisor.ScanBill(r.Context(), req.Text)
	h.writeJSON(w, http.StatusOK, map[string]*model.BillScanResult{"result": result})
}

func (h *handler) handleImportTransactions(w http.ResponseWriter, r *http.Request) {
	var req documentRequest
	if err := h.decodeJSON(w, r, &req); err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error(), "server.handleImportTransactions")
		return
	}

	extracted := h.advisor.ExtractTransactions(r.Context(), req.Text)
	for i := range extracted {
		if extracted[i].ID == "" {
			extracted[i].ID = h.ids.NewID()
		}
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	txs := append(h.store.LoadTransactions(), extracted...)
	if len(extracted) > 0 {
		if err := h.store.SaveTransactions(txs); err != nil {
			h.respondError(w, http.StatusInternalServerError, err.Error(), "server.handleImportTransactions")
			return
		}
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"imported":     extracted,
		"transactions": txs,
	})
}

func (h *handler) handleDetectSubscriptions(w http.ResponseWriter, r *http.Request) {
	var req documentRequest
	if err := h.decodeJSON(w, r, &req); err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error(), "server.handleDetectSubscriptions")
		return
	}

	detected := h.advisor.DetectSubscriptions(r.Context(), req.Text)
	h.writeJSON(w, http.StatusOK, map[string][]model.Subscription{"detected": detected})
}

func (h *handler) handleTransactionsList(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.writeJSON(w, http.StatusOK, h.store.LoadTransactions())
}

func queryFloat(r *http.Request, key string, fallback float64) float64 {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fallback
	}
	return value
}
