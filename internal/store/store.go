// Package store persists the user-defined merchant-to-category mapping
// rules. Rules pin a row's category ahead of automatic classification and
// are kept in two YAML files, one per transaction kind.
package store

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"moabook/cardsheet/internal/logging"
	"moabook/cardsheet/internal/models"
)

const rulesFilePermission = 0600

// RuleStore manages loading and saving of mapping rules. Lookups are
// case-insensitive and whitespace-insensitive on the merchant name.
type RuleStore struct {
	ExpenseRulesFile string
	IncomeRulesFile  string

	mu           sync.RWMutex
	expenseRules map[string]string
	incomeRules  map[string]string
	dirtyExpense bool
	dirtyIncome  bool
	log          logging.Logger
}

// NewRuleStore creates a store over the two rule files.
func NewRuleStore(expenseFile, incomeFile string, logger logging.Logger) *RuleStore {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &RuleStore{
		ExpenseRulesFile: expenseFile,
		IncomeRulesFile:  incomeFile,
		expenseRules:     make(map[string]string),
		incomeRules:      make(map[string]string),
		log:              logger,
	}
}

// Load reads both rule files. A missing file is not an error; the store
// simply starts empty for that kind.
func (s *RuleStore) Load() error {
	expense, err := loadRulesFile(s.ExpenseRulesFile)
	if err != nil {
		return fmt.Errorf("loading expense rules: %w", err)
	}
	income, err := loadRulesFile(s.IncomeRulesFile)
	if err != nil {
		return fmt.Errorf("loading income rules: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.expenseRules = make(map[string]string, len(expense))
	for merchant, category := range expense {
		s.expenseRules[normalizeMerchant(merchant)] = category
	}
	s.incomeRules = make(map[string]string, len(income))
	for merchant, category := range income {
		s.incomeRules[normalizeMerchant(merchant)] = category
	}

	s.log.WithFields(
		logging.Field{Key: "expense_rules", Value: len(s.expenseRules)},
		logging.Field{Key: "income_rules", Value: len(s.incomeRules)},
	).Debug("Loaded mapping rules")
	return nil
}

// Lookup returns the pinned category for a merchant, if a rule exists.
func (s *RuleStore) Lookup(kind models.TransactionKind, merchant string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	category, found := s.rulesFor(kind)[normalizeMerchant(merchant)]
	return category, found
}

// Update records or replaces a rule and marks the kind's file dirty.
func (s *RuleStore) Update(kind models.TransactionKind, merchant, category string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rulesFor(kind)[normalizeMerchant(merchant)] = category
	if kind == models.KindIncome {
		s.dirtyIncome = true
	} else {
		s.dirtyExpense = true
	}
}

// Rules returns a copy of the rule map for a kind.
func (s *RuleStore) Rules(kind models.TransactionKind) map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rules := s.rulesFor(kind)
	out := make(map[string]string, len(rules))
	for merchant, category := range rules {
		out[merchant] = category
	}
	return out
}

// Save writes any modified rule maps back to their YAML files.
func (s *RuleStore) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.dirtyExpense {
		if err := saveRulesFile(s.ExpenseRulesFile, s.expenseRules); err != nil {
			return fmt.Errorf("saving expense rules: %w", err)
		}
		s.dirtyExpense = false
	}
	if s.dirtyIncome {
		if err := saveRulesFile(s.IncomeRulesFile, s.incomeRules); err != nil {
			return fmt.Errorf("saving income rules: %w", err)
		}
		s.dirtyIncome = false
	}
	return nil
}

func (s *RuleStore) rulesFor(kind models.TransactionKind) map[string]string {
	if kind == models.KindIncome {
		return s.incomeRules
	}
	return s.expenseRules
}

func loadRulesFile(path string) (map[string]string, error) {
	if path == "" {
		return map[string]string{}, nil
	}
	data, err := os.ReadFile(path) // #nosec G304 -- rule files are user-configured paths
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, err
	}
	rules := make(map[string]string)
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return nil, err
	}
	return rules, nil
}

func saveRulesFile(path string, rules map[string]string) error {
	if path == "" {
		return nil
	}
	data, err := yaml.Marshal(rules)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, rulesFilePermission)
}

func normalizeMerchant(merchant string) string {
	return strings.ToLower(strings.Join(strings.Fields(merchant), ""))
}
