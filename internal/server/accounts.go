package server

import (
	"fmt"
	"net/http"

	"github.com/finchapp/finch/internal/health"
	"github.com/finchapp/finch/internal/model"
)

type accountRequest struct {
	Name         string            `json:"name"`
	Type         model.AccountType `json:"type"`
	Balance      float64           `json:"balance"`
	InterestRate float64           `json:"interestRate"`
}

type accountResponse struct {
	Account  model.AccountItem     `json:"account"`
	Accounts []model.AccountItem   `json:"accounts"`
	Health   model.FinancialHealth `json:"health"`
}

func (h *handler) handleAccountsList(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.writeJSON(w, http.StatusOK, h.store.LoadAccounts())
}

func (h *handler) handleAccountCreate(w http.ResponseWriter, r *http.Request) {
	var req accountRequest
	if err := h.decodeJSON(w, r, &req); err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error(), "server.handleAccountCreate")
		return
	}
	if !req.Type.Valid() {
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("unknown account type %q", req.Type), "server.handleAccountCreate")
		return
	}
	if req.Balance < 0 {
		h.respondError(w, http.StatusBadRequest, "balance must not be negative", "server.handleAccountCreate")
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	account := model.AccountItem{
		ID:           h.ids.NewID(),
		Name:         req.Name,
		Type:         req.Type,
		Balance:      req.Balance,
		InterestRate: req.InterestRate,
	}
	accounts := append(h.store.LoadAccounts(), account)

	record, err := h.recomputeAndSave(accounts)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, err.Error(), "server.handleAccountCreate")
		return
	}

	h.writeJSON(w, http.StatusCreated, accountResponse{Account: account, Accounts: accounts, Health: record})
}

func (h *handler) handleAccountUpdate(w http.ResponseWriter, r *http.Request) {
	var req accountRequest
	if err := h.decodeJSON(w, r, &req); err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error(), "server.handleAccountUpdate")
		return
	}
	if req.Balance < 0 {
		h.respondError(w, http.StatusBadRequest, "balance must not be negative", "server.handleAccountUpdate")
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	id := r.PathValue("id")
	accounts := h.store.LoadAccounts()
	idx := -1
	for i := range accounts {
		if accounts[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		h.respondError(w, http.StatusNotFound, fmt.Sprintf("no account with id %s", id), "server.handleAccountUpdate")
		return
	}

	if req.Name != "" {
		accounts[idx].Name = req.Name
	}
	if req.Type != "" {
		if !req.Type.Valid() {
			h.respondError(w, http.StatusBadRequest, fmt.Sprintf("unknown account type %q", req.Type), "server.handleAccountUpdate")
			return
		}
		accounts[idx].Type = req.Type
	}
	accounts[idx].Balance = req.Balance
	accounts[idx].InterestRate = req.InterestRate

	record, err := h.recomputeAndSave(accounts)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, err.Error(), "server.handleAccountUpdate")
		return
	}

	h.writeJSON(w, http.StatusOK, accountResponse{Account: accounts[idx], Accounts: accounts, Health: record})
}

func (h *handler) handleAccountDelete(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := r.PathValue("id")
	accounts := h.store.LoadAccounts()
	remaining := accounts[:0]
	found := false
	for _, account := range accounts {
		if account.ID == id {
			found = true
			continue
		}
		remaining = append(remaining, account)
	}
	if !found {
		h.respondError(w, http.StatusNotFound, fmt.Sprintf("no account with id %s", id), "server.handleAccountDelete")
		return
	}

	record, err := h.recomputeAndSave(remaining)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, err.Error(), "server.handleAccountDelete")
		return
	}

	h.writeJSON(w, http.StatusOK, accountResponse{Accounts: remaining, Health: record})
}

type briefingRequest struct {
	// Balances maps account IDs to their updated balances.
	Balances map[string]float64 `json:"balances"`
}

// handleBriefing applies a bulk balance update from the periodic briefing
// flow: all edits land, then the derived fields recompute once.
func (h *handler) handleBriefing(w http.ResponseWriter, r *http.Request) {
	var req briefingRequest
	if err := h.decodeJSON(w, r, &req); err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error(), "server.handleBriefing")
		return
	}
	for id, balance := range req.Balances {
		if balance < 0 {
			h.respondError(w, http.StatusBadRequest, fmt.Sprintf("balance for account %s must not be negative", id), "server.handleBriefing")
			return
		}
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	accounts := h.store.LoadAccounts()
	for i := range accounts {
		if balance, ok := req.Balances[accounts[i].ID]; ok {
			accounts[i].Balance = balance
		}
	}

	record, err := h.recomputeAndSave(accounts)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, err.Error(), "server.handleBriefing")
		return
	}

	h.writeJSON(w, http.StatusOK, accountResponse{Accounts: accounts, Health: record})
}

type healthUpdateRequest struct {
	AnnualSalary    *float64 `json:"annualSalary"`
	MonthlyIncome   *float64 `json:"monthlyIncome"`
	SalarySacrifice *float64 `json:"salarySacrifice"`
	MonthlyExpenses *float64 `json:"monthlyExpenses"`
	SurvivalNumber  *float64 `json:"survivalNumber"`
}

// handleHealthUpdate edits the income and cashflow fields. The derived
// fields are never writable here; they are recomputed from the accounts.
func (h *handler) handleHealthUpdate(w http.ResponseWriter, r *http.Request) {
	var req healthUpdateRequest
	if err := h.decodeJSON(w, r, &req); err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error(), "server.handleHealthUpdate")
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	record := h.store.LoadHealth()
	if req.AnnualSalary != nil {
		record.AnnualSalary = *req.AnnualSalary
	}
	if req.MonthlyIncome != nil {
		record.MonthlyIncome = *req.MonthlyIncome
	}
	if req.SalarySacrifice != nil {
		record.SalarySacrifice = *req.SalarySacrifice
	}
	if req.MonthlyExpenses != nil {
		record.MonthlyExpenses = *req.MonthlyExpenses
	}
	if req.SurvivalNumber != nil {
		record.SurvivalNumber = *req.SurvivalNumber
	}

	record = health.Recompute(h.store.LoadAccounts(), record)
	if err := h.store.SaveHealth(record); err != nil {
		h.respondError(w, http.StatusInternalServerError, err.Error(), "server.handleHealthUpdate")
		return
	}

	h.writeJSON(w, http.StatusOK, record)
}

func (h *handler) handleCheckIn(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	record := health.CheckIn(h.store.LoadHealth(), h.now())
	if err := h.store.SaveHealth(record); err != nil {
		h.respondError(w, http.StatusInternalServerError, err.Error(), "server.handleCheckIn")
		return
	}

	h.writeJSON(w, http.StatusOK, record)
}

type gigIncomeRequest struct {
	Amount float64  `json:"amount"`
	Rate   *float64 `json:"rate"`
}

func (h *handler) handleGigIncome(w http.ResponseWriter, r *http.Request) {
	var req gigIncomeRequest
	if err := h.decodeJSON(w, r, &req); err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error(), "server.handleGigIncome")
		return
	}
	if req.Amount <= 0 {
		h.respondError(w, http.StatusBadRequest, "amount must be positive", "server.handleGigIncome")
		return
	}
	rate := defaultGigTaxRate
	if req.Rate != nil {
		rate = *req.Rate
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	record := health.QuarantineGigIncome(h.store.LoadHealth(), req.Amount, rate)
	if err := h.store.SaveHealth(record); err != nil {
		h.respondError(w, http.StatusInternalServerError, err.Error(), "server.handleGigIncome")
		return
	}

	h.writeJSON(w, http.StatusOK, record)
}

// defaultGigTaxRate is the fraction of gig income quarantined when the
// request does not specify one.
const defaultGigTaxRate = 0.30
