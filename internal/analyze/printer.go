package analyze

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/pterm/pterm"
	"github.com/ybocharov/salary-trends/pkg/stats"
)

// printStatistics renders the four finalized mappings as labeled lines,
// year-sorted ascending.
func printStatistics(s *stats.Statistics, profession string) {
	pterm.Printf("%s %s\n", pterm.LightCyan("Average salary by year:"), formatYearMap(s.SalaryByYear))
	pterm.Printf("%s %s\n", pterm.LightCyan("Vacancy count by year:"), formatYearMap(s.VacanciesByYear))
	pterm.Printf("%s %s\n", pterm.LightCyan(fmt.Sprintf("Average salary by year for %q:", profession)), formatYearMap(s.TargetSalaryByYear))
	pterm.Printf("%s %s\n", pterm.LightCyan(fmt.Sprintf("Vacancy count by year for %q:", profession)), formatYearMap(s.TargetVacanciesByYear))
}

// printAreaReport renders the share ranking and the retained areas' salary
// averages as tables.
func printAreaReport(report *stats.AreaReport) {
	shareData := pterm.TableData{{"Area", "Share of vacancies"}}
	for _, s := range report.Shares {
		shareData = append(shareData, []string{s.Area, fmt.Sprintf("%.2f%%", s.Share*100)})
	}
	_ = pterm.DefaultTable.WithHasHeader().WithData(shareData).Render()

	salaryData := pterm.TableData{{"Area", "Average salary"}}
	for _, s := range report.Salaries {
		salaryData = append(salaryData, []string{s.Area, humanize.Comma(int64(s.Salary))})
	}
	_ = pterm.DefaultTable.WithHasHeader().WithData(salaryData).Render()
}

func formatYearMap(data map[int]int) string {
	years := make([]int, 0, len(data))
	for year := range data {
		years = append(years, year)
	}
	sort.Ints(years)

	var sb strings.Builder
	sb.WriteString("{")
	for i, year := range years {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%d: %d", year, data[year])
	}
	sb.WriteString("}")
	return sb.String()
}
