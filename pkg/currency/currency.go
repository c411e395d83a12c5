// Package currency holds the static currency conversion table used to
// normalize vacancy salaries to rubles.
package currency

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrUnknownCurrency is returned when a salary currency code has no entry
// in the conversion table.
var ErrUnknownCurrency = errors.New("unknown currency code")

// Table maps a currency code to its RUB conversion rate.
type Table map[string]float64

// DefaultTable is the built-in code→RUB table. Rates are fixed; this tool
// never fetches live exchange rates.
var DefaultTable = Table{
	"AZN": 35.68,
	"BYR": 23.91,
	"EUR": 59.90,
	"GEL": 21.74,
	"KGS": 0.76,
	"KZT": 0.13,
	"RUR": 1,
	"UAH": 1.64,
	"USD": 60.66,
	"UZS": 0.0055,
}

// Rate returns the RUB conversion rate for code.
func (t Table) Rate(code string) (float64, error) {
	rate, ok := t[code]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownCurrency, code)
	}
	return rate, nil
}

// Load reads a replacement conversion table from a YAML file. The file is a
// flat mapping of currency code to rate and fully replaces DefaultTable.
func Load(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rates file: %w", err)
	}

	table := Table{}
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("failed to parse rates file: %w", err)
	}
	if len(table) == 0 {
		return nil, fmt.Errorf("rates file %s defines no currencies", path)
	}

	return table, nil
}
