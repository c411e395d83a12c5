package stats

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// ErrNoVacancies is returned when finalization runs over an accumulator with
// zero valid rows; area shares would otherwise divide by zero.
var ErrNoVacancies = errors.New("no vacancies found")

// Statistics is the finalized output contract: four year-keyed mappings.
type Statistics struct {
	SalaryByYear          map[int]int
	VacanciesByYear       map[int]int
	TargetSalaryByYear    map[int]int
	TargetVacanciesByYear map[int]int
}

// AreaShare is one area's fraction of all vacancies.
type AreaShare struct {
	Area  string
	Share float64
}

// AreaSalary is one retained area's integer-averaged salary.
type AreaSalary struct {
	Area   string
	Salary int
}

// AreaReport ranks areas holding at least 1% of all vacancies. Both slices
// are ordered by rank: shares by share descending, salaries by salary
// descending, each with area name ascending as the tie-break so output is
// reproducible.
type AreaReport struct {
	Shares   []AreaShare
	Salaries []AreaSalary
}

// Finalize turns a merged accumulator into the printed statistics and the
// area ranking. Averages truncate (floor over non-negative sums). When no
// row anywhere matched the target profession, both target mappings carry
// every year key from the overall track with value 0.
func Finalize(m *ChunkStats) (*Statistics, *AreaReport, error) {
	if m.VacancyCount == 0 {
		return nil, nil, fmt.Errorf("%w: cannot compute statistics over an empty dataset", ErrNoVacancies)
	}

	result := &Statistics{
		SalaryByYear:          averageByKey(m.SalaryByYear),
		VacanciesByYear:       countByKey(m.SalaryByYear),
		TargetSalaryByYear:    averageByKey(m.TargetSalaryByYear),
		TargetVacanciesByYear: countByKey(m.TargetSalaryByYear),
	}

	if len(m.TargetSalaryByYear) == 0 {
		for year := range m.SalaryByYear {
			result.TargetSalaryByYear[year] = 0
			result.TargetVacanciesByYear[year] = 0
		}
	}

	return result, areaReport(m), nil
}

func averageByKey[K comparable](data map[K][]float64) map[K]int {
	result := make(map[K]int, len(data))
	for key, values := range data {
		sum := 0.0
		for _, v := range values {
			sum += v
		}
		result[key] = int(sum / float64(len(values)))
	}
	return result
}

func countByKey[K comparable](data map[K][]float64) map[K]int {
	result := make(map[K]int, len(data))
	for key, values := range data {
		result[key] = len(values)
	}
	return result
}

func areaReport(m *ChunkStats) *AreaReport {
	report := &AreaReport{}

	retained := make(map[string]bool, len(m.SalaryByArea))
	for area, salaries := range m.SalaryByArea {
		share := round4(float64(len(salaries)) / float64(m.VacancyCount))
		if share >= 0.01 {
			report.Shares = append(report.Shares, AreaShare{Area: area, Share: share})
			retained[area] = true
		}
	}
	sort.Slice(report.Shares, func(i, j int) bool {
		if report.Shares[i].Share != report.Shares[j].Share {
			return report.Shares[i].Share > report.Shares[j].Share
		}
		return report.Shares[i].Area < report.Shares[j].Area
	})

	areaSalaries := averageByKey(m.SalaryByArea)
	for area, salary := range areaSalaries {
		if retained[area] {
			report.Salaries = append(report.Salaries, AreaSalary{Area: area, Salary: salary})
		}
	}
	sort.Slice(report.Salaries, func(i, j int) bool {
		if report.Salaries[i].Salary != report.Salaries[j].Salary {
			return report.Salaries[i].Salary > report.Salaries[j].Salary
		}
		return report.Salaries[i].Area < report.Salaries[j].Area
	})

	return report
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
