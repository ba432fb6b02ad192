package accounts

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cleared-dev/ledger/internal/model"
)

// Service indexes a chart of accounts by account ID. It is read-only once
// built and safe for concurrent use.
type Service struct {
	chart    []model.Category
	accounts []model.Account
	byID     map[string]model.Account
}

// NewService indexes chart. Accounts keep the chart's declared order.
func NewService(chart []model.Category) *Service {
	s := &Service{
		chart: chart,
		byID:  make(map[string]model.Account),
	}
	for _, c := range chart {
		for _, a := range c.Accounts() {
			s.accounts = append(s.accounts, a.Account)
			s.byID[a.AccountID] = a.Account
		}
	}
	return s
}

// LoadFile parses the chart YAML at path.
func LoadFile(path string) (*Service, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening chart of accounts: %w", err)
	}
	defer f.Close()

	chart, err := ReadChart(f)
	if err != nil {
		return nil, fmt.Errorf("reading chart of accounts %s: %w", path, err)
	}
	return NewService(chart), nil
}

// Categories returns the chart in declared order.
func (s *Service) Categories() []model.Category { return s.chart }

// All returns every account in declared order.
func (s *Service) All() []model.Account { return s.accounts }

// Get looks an account up by ID.
func (s *Service) Get(id string) (model.Account, bool) {
	a, ok := s.byID[id]
	return a, ok
}

// Exists implements journal.AccountChecker.
func (s *Service) Exists(id string) bool {
	_, ok := s.byID[id]
	return ok
}

// SaveFile writes the chart as YAML to path, creating parent directories.
func (s *Service) SaveFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating chart dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating chart file: %w", err)
	}
	defer f.Close()

	if err := WriteChart(f, s.chart); err != nil {
		return fmt.Errorf("writing chart of accounts: %w", err)
	}
	return f.Close()
}
