package repositories

import (
	"sync"

	"debt-portal/internal/models"
)

// memoryFallbackStore keeps fallback records in process memory.
//
// The mutex only keeps the maps memory-safe. Two merges on the same account
// still interleave field by field with last write winning; there is no
// version check between a read and a later merge.
type memoryFallbackStore struct {
	mu       sync.RWMutex
	accounts map[string]*models.AccountRecord
	debts    map[string]*models.DebtSummary
	order    []string
}

// NewMemoryFallbackStore creates an empty in-memory fallback store
func NewMemoryFallbackStore() FallbackStoreInterface {
	return &memoryFallbackStore{
		accounts: make(map[string]*models.AccountRecord),
		debts:    make(map[string]*models.DebtSummary),
	}
}

func (s *memoryFallbackStore) Seed(accounts []models.AccountRecord, summaries []models.DebtSummary) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range accounts {
		s.accounts[accounts[i].AccountNumber] = accounts[i].Clone()
	}

	for i := range summaries {
		summary := summaries[i].Clone()
		for j := range summary.Debts {
			summary.Debts[j].AccountNumber = summary.AccountNumber
			summary.Debts[j].Position = j
		}
		if _, exists := s.debts[summary.AccountNumber]; !exists {
			s.order = append(s.order, summary.AccountNumber)
		}
		s.debts[summary.AccountNumber] = summary
	}

	return nil
}

func (s *memoryFallbackStore) GetAccount(accountID string) (*models.AccountRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	account, ok := s.accounts[accountID]
	if !ok {
		return nil, ErrAccountNotFound
	}
	return account.Clone(), nil
}

func (s *memoryFallbackStore) MergeAccount(accountID string, update models.AccountUpdate) (*models.AccountRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, ok := s.accounts[accountID]
	if !ok {
		return nil, ErrAccountNotFound
	}
	account.Apply(update)
	return account.Clone(), nil
}

func (s *memoryFallbackStore) GetDebtSummary(accountID string) (*models.DebtSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	summary, ok := s.debts[accountID]
	if !ok {
		return nil, ErrDebtsNotFound
	}
	return summary.Clone(), nil
}

// FindDebt scans every account's debts in seed order and returns the first match.
func (s *memoryFallbackStore) FindDebt(debtID string) (*models.DebtRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, accountID := range s.order {
		for _, debt := range s.debts[accountID].Debts {
			if debt.DebtID == debtID {
				found := debt
				if debt.DueDate != nil {
					due := *debt.DueDate
					found.DueDate = &due
				}
				return &found, nil
			}
		}
	}
	return nil, ErrDebtNotFound
}
