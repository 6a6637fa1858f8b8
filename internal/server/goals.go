package server

import (
	"fmt"
	"net/http"

	"github.com/finchapp/finch/internal/health"
	"github.com/finchapp/finch/internal/model"
	"github.com/finchapp/finch/pkg/goals"
)

type goalRequest struct {
	Name         string         `json:"name"`
	TargetAmount float64        `json:"targetAmount"`
	Deadline     string         `json:"deadline"`
	GoalType     model.GoalType `json:"goalType"`
	ValueTag     string         `json:"valueTag"`
	Emoji        string         `json:"emoji"`
}

func (h *handler) handleGoalsList(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	now := h.now()
	goalList := h.store.LoadGoals()
	statuses := make([]goalWithStatus, 0, len(goalList))
	for _, g := range goalList {
		statuses = append(statuses, goalWithStatus{
			Goal:   g,
			Status: goals.Project(g.TargetAmount, g.CurrentAmount, g.Deadline, now),
		})
	}

	h.writeJSON(w, http.StatusOK, statuses)
}

func (h *handler) handleGoalCreate(w http.ResponseWriter, r *http.Request) {
	var req goalRequest
	if err := h.decodeJSON(w, r, &req); err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error(), "server.handleGoalCreate")
		return
	}
	if req.TargetAmount <= 0 {
		h.respondError(w, http.StatusBadRequest, "targetAmount must be positive", "server.handleGoalCreate")
		return
	}
	goalType := req.GoalType
	if goalType == "" {
		goalType = model.GoalRocket
		if req.Deadline == "" {
			goalType = model.GoalImpulse
		}
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	goal := model.Goal{
		ID:           h.ids.NewID(),
		Name:         req.Name,
		TargetAmount: req.TargetAmount,
		Deadline:     req.Deadline,
		GoalType:     goalType,
		ValueTag:     req.ValueTag,
		Emoji:        req.Emoji,
	}
	goalList := append(h.store.LoadGoals(), goal)
	if err := h.store.SaveGoals(goalList); err != nil {
		h.respondError(w, http.StatusInternalServerError, err.Error(), "server.handleGoalCreate")
		return
	}

	h.writeJSON(w, http.StatusCreated, goalWithStatus{
		Goal:   goal,
		Status: goals.Project(goal.TargetAmount, goal.CurrentAmount, goal.Deadline, h.now()),
	})
}

type contributeRequest struct {
	Amount float64 `json:"amount"`
	// Max contributes the current monthly surplus instead of a fixed amount.
	Max bool `json:"max"`
}

type contributeResponse struct {
	Goal    model.Goal       `json:"goal"`
	Applied float64          `json:"applied"`
	Status  goals.GoalStatus `json:"status"`
}

func (h *handler) handleGoalContribute(w http.ResponseWriter, r *http.Request) {
	var req contributeRequest
	if err := h.decodeJSON(w, r, &req); err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error(), "server.handleGoalContribute")
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	id := r.PathValue("id")
	goalList := h.store.LoadGoals()
	idx := goalIndex(goalList, id)
	if idx < 0 {
		h.respondError(w, http.StatusNotFound, fmt.Sprintf("no goal with id %s", id), "server.handleGoalContribute")
		return
	}

	amount := req.Amount
	if req.Max {
		record := health.Recompute(h.store.LoadAccounts(), h.store.LoadHealth())
		amount = health.Surplus(record, h.store.LoadSubscriptions(), h.store.LoadBills())
	}
	if amount <= 0 && !req.Max {
		h.respondError(w, http.StatusBadRequest, "amount must be positive", "server.handleGoalContribute")
		return
	}

	applied := goalList[idx].Contribute(amount)
	if err := h.store.SaveGoals(goalList); err != nil {
		h.respondError(w, http.StatusInternalServerError, err.Error(), "server.handleGoalContribute")
		return
	}

	g := goalList[idx]
	h.writeJSON(w, http.StatusOK, contributeResponse{
		Goal:    g,
		Applied: applied,
		Status:  goals.Project(g.TargetAmount, g.CurrentAmount, g.Deadline, h.now()),
	})
}

type goalTerminalResponse struct {
	Health model.FinancialHealth `json:"health"`
	Goals  []model.Goal          `json:"goals"`
}

// handleGoalLaunch completes a goal: the health aggregate transition and the
// goal removal persist together.
func (h *handler) handleGoalLaunch(w http.ResponseWriter, r *http.Request) {
	h.terminateGoal(w, r, "server.handleGoalLaunch", health.LaunchGoal)
}

// handleGoalSkip abandons a goal, refunding the accumulated amount.
func (h *handler) handleGoalSkip(w http.ResponseWriter, r *http.Request) {
	h.terminateGoal(w, r, "server.handleGoalSkip", health.SkipGoal)
}

func (h *handler) terminateGoal(w http.ResponseWriter, r *http.Request, op string,
	transition func(model.FinancialHealth, model.Goal) model.FinancialHealth) {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := r.PathValue("id")
	goalList := h.store.LoadGoals()
	idx := goalIndex(goalList, id)
	if idx < 0 {
		h.respondError(w, http.StatusNotFound, fmt.Sprintf("no goal with id %s", id), op)
		return
	}

	record := transition(h.store.LoadHealth(), goalList[idx])
	remaining := append(goalList[:idx:idx], goalList[idx+1:]...)

	if err := h.store.SaveGoals(remaining); err != nil {
		h.respondError(w, http.StatusInternalServerError, err.Error(), op)
		return
	}
	if err := h.store.SaveHealth(record); err != nil {
		h.respondError(w, http.StatusInternalServerError, err.Error(), op)
		return
	}

	h.writeJSON(w, http.StatusOK, goalTerminalResponse{Health: record, Goals: remaining})
}

func goalIndex(goalList []model.Goal, id string) int {
	for i := range goalList {
		if goalList[i].ID == id {
			return i
		}
	}
	return -1
}

type subscriptionRequest struct {
	Name          string      `json:"name"`
	Amount        float64     `json:"amount"`
	Cycle         model.Cycle `json:"cycle"`
	NextDueDate   string      `json:"nextDueDate"`
	Category      string      `json:"category"`
	IsOptimizable bool        `json:"isOptimizable"`
}

func (h *handler) handleSubscriptionsList(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.writeJSON(w, http.StatusOK, h.store.LoadSubscriptions())
}

func (h *handler) handleSubscriptionCreate(w http.ResponseWriter, r *http.Request) {
	var req subscriptionRequest
	if err := h.decodeJSON(w, r, &req); err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error(), "server.handleSubscriptionCreate")
		return
	}
	if req.Amount < 0 {
		h.respondError(w, http.StatusBadRequest, "amount must not be negative", "server.handleSubscriptionCreate")
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	sub := model.Subscription{
		ID:            h.ids.NewID(),
		Name:          req.Name,
		Amount:        req.Amount,
		Cycle:         req.Cycle,
		NextDueDate:   req.NextDueDate,
		Category:      req.Category,
		IsOptimizable: req.IsOptimizable,
	}
	subs := append(h.store.LoadSubscriptions(), sub)
	if err := h.store.SaveSubscriptions(subs); err != nil {
		h.respondError(w, http.StatusInternalServerError, err.Error(), "server.handleSubscriptionCreate")
		return
	}

	h.writeJSON(w, http.StatusCreated, sub)
}

type subscriptionKillResponse struct {
	Health        model.FinancialHealth `json:"health"`
	Subscriptions []model.Subscription  `json:"subscriptions"`
}

func (h *handler) handleSubscriptionKill(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := r.PathValue("id")
	subs := h.store.LoadSubscriptions()
	remaining := subs[:0]
	found := false
	for _, sub := range subs {
		if sub.ID == id {
			found = true
			continue
		}
		remaining = append(remaining, sub)
	}
	if !found {
		h.respondError(w, http.StatusNotFound, fmt.Sprintf("no subscription with id %s", id), "server.handleSubscriptionKill")
		return
	}

	record := health.KillSubscription(h.store.LoadHealth())
	if err := h.store.SaveSubscriptions(remaining); err != nil {
		h.respondError(w, http.StatusInternalServerError, err.Error(), "server.handleSubscriptionKill")
		return
	}
	if err := h.store.SaveHealth(record); err != nil {
		h.respondError(w, http.StatusInternalServerError, err.Error(), "server.handleSubscriptionKill")
		return
	}

	h.writeJSON(w, http.StatusOK, subscriptionKillResponse{Health: record, Subscriptions: remaining})
}

type billRequest struct {
	Name        string      `json:"name"`
	Amount      float64     `json:"amount"`
	Cycle       model.Cycle `json:"cycle"`
	NextDueDate string      `json:"nextDueDate"`
	Category    string      `json:"category"`
}

func (h *handler) handleBillsList(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.writeJSON(w, http.StatusOK, h.store.LoadBills())
}

func (h *handler) handleBillCreate(w http.ResponseWriter, r *http.Request) {
	var req billRequest
	if err := h.decodeJSON(w, r, &req); err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error(), "server.handleBillCreate")
		return
	}
	if req.Amount < 0 {
		h.respondError(w, http.StatusBadRequest, "amount must not be negative", "server.handleBillCreate")
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	bill := model.Bill{
		ID:          h.ids.NewID(),
		Name:        req.Name,
		Amount:      req.Amount,
		Cycle:       req.Cycle,
		NextDueDate: req.NextDueDate,
		Category:    req.Category,
	}
	bills := append(h.store.LoadBills(), bill)
	if err := h.store.SaveBills(bills); err != nil {
		h.respondError(w, http.StatusInternalServerError, err.Error(), "server.handleBillCreate")
		return
	}

	h.writeJSON(w, http.StatusCreated, bill)
}
