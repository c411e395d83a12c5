// Package models defines shared data structures and runtime configuration.
package models

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/ybocharov/salary-trends/pkg/currency"
)

// ErrMalformedDate is returned when a published_at value does not start with
// a four-digit year.
var ErrMalformedDate = errors.New("malformed publication date")

// Vacancy is one normalized vacancy row. It lives only long enough to update
// the chunk accumulators and is never retained.
type Vacancy struct {
	Name           string
	SalaryFrom     int
	SalaryTo       int
	SalaryCurrency string
	SalaryAverage  float64
	AreaName       string
	Year           int
}

// NewVacancy builds a Vacancy from one raw CSV row. Salary bounds may be
// fractional in the source and are truncated toward zero; the average is
// converted to rubles through the injected rate table. The year is the
// leading four digits of published_at.
func NewVacancy(row map[string]string, rates currency.Table) (*Vacancy, error) {
	from, err := parseSalary(row["salary_from"])
	if err != nil {
		return nil, fmt.Errorf("salary_from: %w", err)
	}
	to, err := parseSalary(row["salary_to"])
	if err != nil {
		return nil, fmt.Errorf("salary_to: %w", err)
	}

	code := row["salary_currency"]
	rate, err := rates.Rate(code)
	if err != nil {
		return nil, err
	}

	year, err := parseYear(row["published_at"])
	if err != nil {
		return nil, err
	}

	return &Vacancy{
		Name:           row["name"],
		SalaryFrom:     from,
		SalaryTo:       to,
		SalaryCurrency: code,
		SalaryAverage:  rate * float64(from+to) / 2,
		AreaName:       row["area_name"],
		Year:           year,
	}, nil
}

func parseSalary(value string) (int, error) {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse salary value %q: %w", value, err)
	}
	return int(f), nil
}

func parseYear(date string) (int, error) {
	if len(date) < 4 {
		return 0, fmt.Errorf("%w: %q", ErrMalformedDate, date)
	}
	year, err := strconv.Atoi(date[:4])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedDate, date)
	}
	return year, nil
}
