// Package store provides a SQLite-backed snapshot store for user data.
// Collections are saved whole as JSON payloads keyed by a fixed set of
// logical names; writes are last-write-wins with no conflict detection, and
// unreadable payloads are treated as missing data rather than errors.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/finchapp/finch/internal/model"
	"go.uber.org/zap"

	_ "modernc.org/sqlite" // register sqlite driver
)

// Logical snapshot keys.
const (
	KeyHealth        = "financial_health"
	KeyAccounts      = "accounts"
	KeyGoals         = "goals"
	KeySubscriptions = "subscriptions"
	KeyBills         = "bills"
	KeyTransactions  = "transactions"
)

// Store persists whole-collection snapshots in SQLite.
type Store struct {
	db     *sql.DB
	logger *zap.Logger
}

// Open opens or creates the snapshot database at the given path.
func Open(dbPath string, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("creating store dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)")
	if err != nil {
		return nil, fmt.Errorf("opening store db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db, logger: logger}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// save marshals v and upserts it under key.
func (s *Store) save(key string, v interface{}) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s snapshot: %w", key, err)
	}

	_, err = s.db.Exec(`INSERT OR REPLACE INTO snapshots (key, payload, saved_at)
		VALUES (?, ?, ?)`, key, payload, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("saving %s snapshot: %w", key, err)
	}
	return nil
}

// load unmarshals the snapshot under key into v. It returns false when the
// snapshot is missing or unreadable; a corrupt payload is logged and treated
// as no data.
func (s *Store) load(key string, v interface{}) bool {
	var payload []byte
	err := s.db.QueryRow("SELECT payload FROM snapshots WHERE key = ?", key).Scan(&payload)
	if err == sql.ErrNoRows {
		return false
	}
	if err != nil {
		s.logger.Warn("failed to read snapshot, falling back to defaults",
			zap.String("op", "store.load"),
			zap.String("key", key),
			zap.Error(err),
		)
		return false
	}

	if err := json.Unmarshal(payload, v); err != nil {
		s.logger.Warn("corrupt snapshot, falling back to defaults",
			zap.String("op", "store.load"),
			zap.String("key", key),
			zap.Error(err),
		)
		return false
	}
	return true
}

// SaveHealth persists the financial health record.
func (s *Store) SaveHealth(h model.FinancialHealth) error {
	return s.save(KeyHealth, h)
}

// LoadHealth returns the persisted health record, or the first-run defaults
// when none is readable.
func (s *Store) LoadHealth() model.FinancialHealth {
	h := model.DefaultFinancialHealth()
	if !s.load(KeyHealth, &h) {
		return model.DefaultFinancialHealth()
	}
	return h
}

// SaveAccounts persists the account collection.
func (s *Store) SaveAccounts(accounts []model.AccountItem) error {
	return s.save(KeyAccounts, accounts)
}

// LoadAccounts returns the persisted account collection, empty when none is
// readable.
func (s *Store) LoadAccounts() []model.AccountItem {
	var accounts []model.AccountItem
	s.load(KeyAccounts, &accounts)
	return accounts
}

// SaveGoals persists the goal collection.
func (s *Store) SaveGoals(goals []model.Goal) error {
	return s.save(KeyGoals, goals)
}

// LoadGoals returns the persisted goal collection.
func (s *Store) LoadGoals() []model.Goal {
	var goals []model.Goal
	s.load(KeyGoals, &goals)
	return goals
}

// SaveSubscriptions persists the subscription collection.
func (s *Store) SaveSubscriptions(subs []model.Subscription) error {
	return s.save(KeySubscriptions, subs)
}

// LoadSubscriptions returns the persisted subscription collection.
func (s *Store) LoadSubscriptions() []model.Subscription {
	var subs []model.Subscription
	s.load(KeySubscriptions, &subs)
	return subs
}

// SaveBills persists the bill collection.
func (s *Store) SaveBills(bills []model.Bill) error {
	return s.save(KeyBills, bills)
}

// LoadBills returns the persisted bill collection.
func (s *Store) LoadBills() []model.Bill {
	var bills []model.Bill
	s.load(KeyBills, &bills)
	return bills
}

// SaveTransactions persists the transaction collection.
func (s *Store) SaveTransactions(txs []model.Transaction) error {
	return s.save(KeyTransactions, txs)
}

// LoadTransactions returns the persisted transaction collection.
func (s *Store) LoadTransactions() []model.Transaction {
	var txs []model.Transaction
	s.load(KeyTransactions, &txs)
	return txs
}
