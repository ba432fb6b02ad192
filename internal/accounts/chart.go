package accounts

import (
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/cleared-dev/ledger/internal/model"
)

// chartFile is the on-disk shape of chart-of-accounts.yaml.
type chartFile struct {
	Categories []model.Category `yaml:"categories"`
}

// ReadChart reads chart-of-accounts.yaml and validates it.
func ReadChart(r io.Reader) ([]model.Category, error) {
	var cf chartFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cf); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("decoding chart YAML: %w", err)
	}
	if err := ValidateChart(cf.Categories); err != nil {
		return nil, err
	}
	return cf.Categories, nil
}

// WriteChart writes chart-of-accounts.yaml.
func WriteChart(w io.Writer, chart []model.Category) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(chartFile{Categories: chart}); err != nil {
		return fmt.Errorf("encoding chart YAML: %w", err)
	}
	return enc.Close()
}

// ValidateChart rejects empty, non-numeric and duplicate account IDs and
// duplicate category IDs.
func ValidateChart(chart []model.Category) error {
	categories := make(map[string]bool)
	accounts := make(map[string]string)
	for _, c := range chart {
		if c.ID == "" {
			return fmt.Errorf("category %q has no id", c.Name)
		}
		if categories[c.ID] {
			return fmt.Errorf("duplicate category %q", c.ID)
		}
		categories[c.ID] = true

		for _, a := range c.Accounts() {
			if a.AccountID == "" {
				return fmt.Errorf("category %s: account %q has no id", c.ID, a.Name)
			}
			if _, err := strconv.Atoi(a.AccountID); err != nil {
				return fmt.Errorf("category %s: account id %q is not numeric", c.ID, a.AccountID)
			}
			if prev, ok := accounts[a.AccountID]; ok {
				return fmt.Errorf("account %s declared in both %s and %s", a.AccountID, prev, c.ID)
			}
			accounts[a.AccountID] = c.ID
		}
	}
	return nil
}
