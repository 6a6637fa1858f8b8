package store

import (
	"path/filepath"
	"testing"

	"github.com/finchapp/finch/internal/model"
	"go.uber.org/zap"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "finch.db"), zap.NewNop())
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestOpenCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "finch.db")
	s, err := Open(path, nil)
	if err != nil {
		t.Fatalf("Open with nested path returned error: %v", err)
	}
	_ = s.Close()
}

func TestHealthRoundTrip(t *testing.T) {
	s := newTestStore(t)

	h := model.DefaultFinancialHealth()
	h.MonthlyIncome = 6500
	h.Savings = 12000
	h.HecsDebt = 24000
	h.WillpowerPoints = 150

	if err := s.SaveHealth(h); err != nil {
		t.Fatalf("SaveHealth returned error: %v", err)
	}

	loaded := s.LoadHealth()
	if loaded.MonthlyIncome != 6500 || loaded.Savings != 12000 || loaded.HecsDebt != 24000 {
		t.Errorf("loaded health %+v does not match saved record", loaded)
	}
	if loaded.WillpowerPoints != 150 {
		t.Errorf("WillpowerPoints = %d, expected 150", loaded.WillpowerPoints)
	}
}

func TestLoadHealthFirstRunDefaults(t *testing.T) {
	s := newTestStore(t)

	h := s.LoadHealth()
	want := model.DefaultFinancialHealth()
	if h.Score != want.Score {
		t.Errorf("first-run Score = %d, expected %d", h.Score, want.Score)
	}
}

func TestAccountsRoundTrip(t *testing.T) {
	s := newTestStore(t)

	accounts := []model.AccountItem{
		{ID: "a1", Name: "Everyday", Type: model.AccountCash, Balance: 1500},
		{ID: "a2", Name: "Visa", Type: model.AccountCreditCard, Balance: 800, InterestRate: 20.99},
	}
	if err := s.SaveAccounts(accounts); err != nil {
		t.Fatalf("SaveAccounts returned error: %v", err)
	}

	loaded := s.LoadAccounts()
	if len(loaded) != 2 {
		t.Fatalf("loaded %d accounts, expected 2", len(loaded))
	}
	if loaded[1].InterestRate != 20.99 {
		t.Errorf("InterestRate = %v, expected 20.99", loaded[1].InterestRate)
	}
}

func TestSaveOverwritesPriorSnapshot(t *testing.T) {
	s := newTestStore(t)

	if err := s.SaveGoals([]model.Goal{{ID: "g1", Name: "Bike", TargetAmount: 900}}); err != nil {
		t.Fatalf("SaveGoals returned error: %v", err)
	}
	if err := s.SaveGoals([]model.Goal{
		{ID: "g1", Name: "Bike", TargetAmount: 900, CurrentAmount: 300},
		{ID: "g2", Name: "Trip", TargetAmount: 4000},
	}); err != nil {
		t.Fatalf("second SaveGoals returned error: %v", err)
	}

	loaded := s.LoadGoals()
	if len(loaded) != 2 {
		t.Fatalf("loaded %d goals, expected 2", len(loaded))
	}
	if loaded[0].CurrentAmount != 300 {
		t.Errorf("CurrentAmount = %v, expected the overwritten value 300", loaded[0].CurrentAmount)
	}
}

func TestLoadEmptyCollections(t *testing.T) {
	s := newTestStore(t)

	if got := s.LoadSubscriptions(); len(got) != 0 {
		t.Errorf("LoadSubscriptions on empty store returned %d items", len(got))
	}
	if got := s.LoadBills(); len(got) != 0 {
		t.Errorf("LoadBills on empty store returned %d items", len(got))
	}
	if got := s.LoadTransactions(); len(got) != 0 {
		t.Errorf("LoadTransactions on empty store returned %d items", len(got))
	}
}

func TestCorruptPayloadFallsBackToDefaults(t *testing.T) {
	s := newTestStore(t)

	if err := s.SaveHealth(model.FinancialHealth{Score: 90, Savings: 99999}); err != nil {
		t.Fatalf("SaveHealth returned error: %v", err)
	}
	if _, err := s.db.Exec("UPDATE snapshots SET payload = ? WHERE key = ?",
		[]byte("{not json"), KeyHealth); err != nil {
		t.Fatalf("corrupting payload: %v", err)
	}

	h := s.LoadHealth()
	want := model.DefaultFinancialHealth()
	if h.Score != want.Score || h.Savings != 0 {
		t.Errorf("corrupt payload loaded %+v, expected first-run defaults", h)
	}
}
