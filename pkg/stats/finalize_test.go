package stats

import (
	"errors"
	"fmt"
	"reflect"
	"testing"
)

// The reference scenario: two single-row chunks, one matching the target.
func TestFinalize_SampleScenario(t *testing.T) {
	chunk1 := NewChunkStats()
	chunk1.Add(vacancy("Программист", 2020, 150, "Москва"), "Программист")
	chunk2 := NewChunkStats()
	chunk2.Add(vacancy("Аналитик", 2020, 606.6, "Омск"), "Программист")

	result, _, err := Finalize(Merge([]*ChunkStats{chunk1, chunk2}))
	if err != nil {
		t.Fatalf("Finalize() failed: %v", err)
	}

	// (150 + 606.6) / 2 = 378.3, truncated.
	if got := result.SalaryByYear[2020]; got != 378 {
		t.Errorf("SalaryByYear[2020] = %d, want 378", got)
	}
	if got := result.VacanciesByYear[2020]; got != 2 {
		t.Errorf("VacanciesByYear[2020] = %d, want 2", got)
	}
	if got := result.TargetSalaryByYear[2020]; got != 150 {
		t.Errorf("TargetSalaryByYear[2020] = %d, want 150", got)
	}
	if got := result.TargetVacanciesByYear[2020]; got != 1 {
		t.Errorf("TargetVacanciesByYear[2020] = %d, want 1", got)
	}
}

func TestFinalize_AverageTruncates(t *testing.T) {
	acc := NewChunkStats()
	acc.Add(vacancy("Dev", 2020, 100, "Москва"), "Dev")
	acc.Add(vacancy("Dev", 2020, 101, "Москва"), "Dev")

	result, _, err := Finalize(acc)
	if err != nil {
		t.Fatalf("Finalize() failed: %v", err)
	}
	// 100.5 truncates to 100, never rounds up.
	if got := result.SalaryByYear[2020]; got != 100 {
		t.Errorf("SalaryByYear[2020] = %d, want 100", got)
	}
}

func TestFinalize_EmptyTargetFallback(t *testing.T) {
	acc := NewChunkStats()
	acc.Add(vacancy("Аналитик", 2019, 100, "Москва"), "Программист")
	acc.Add(vacancy("Тестировщик", 2020, 200, "Омск"), "Программист")

	result, _, err := Finalize(acc)
	if err != nil {
		t.Fatalf("Finalize() failed: %v", err)
	}

	wantZero := map[int]int{2019: 0, 2020: 0}
	if !reflect.DeepEqual(result.TargetSalaryByYear, wantZero) {
		t.Errorf("TargetSalaryByYear = %v, want %v", result.TargetSalaryByYear, wantZero)
	}
	if !reflect.DeepEqual(result.TargetVacanciesByYear, wantZero) {
		t.Errorf("TargetVacanciesByYear = %v, want %v", result.TargetVacanciesByYear, wantZero)
	}
}

func TestFinalize_PartialTargetYearsStayAbsent(t *testing.T) {
	acc := NewChunkStats()
	acc.Add(vacancy("Программист", 2019, 100, "Москва"), "Программист")
	acc.Add(vacancy("Аналитик", 2020, 200, "Омск"), "Программист")

	result, _, err := Finalize(acc)
	if err != nil {
		t.Fatalf("Finalize() failed: %v", err)
	}

	if _, ok := result.TargetSalaryByYear[2020]; ok {
		t.Error("2020 has no target match and must be absent, not zero")
	}
	if got := result.TargetSalaryByYear[2019]; got != 100 {
		t.Errorf("TargetSalaryByYear[2019] = %d, want 100", got)
	}
}

func TestFinalize_NoVacancies(t *testing.T) {
	_, _, err := Finalize(NewChunkStats())
	if !errors.Is(err, ErrNoVacancies) {
		t.Errorf("Finalize() error = %v, want ErrNoVacancies", err)
	}
}

func TestAreaReport_ShareBoundary(t *testing.T) {
	// 99 of 100 rows in one area, 1 in another: 0.01 is retained.
	acc := NewChunkStats()
	for i := 0; i < 99; i++ {
		acc.Add(vacancy("Dev", 2020, 100, "Москва"), "Dev")
	}
	acc.Add(vacancy("Dev", 2020, 100, "Омск"), "Dev")

	_, report, err := Finalize(acc)
	if err != nil {
		t.Fatalf("Finalize() failed: %v", err)
	}
	if len(report.Shares) != 2 {
		t.Fatalf("retained %d areas, want 2", len(report.Shares))
	}
	if report.Shares[1].Area != "Омск" || report.Shares[1].Share != 0.01 {
		t.Errorf("boundary area = %+v, want Омск at 0.01", report.Shares[1])
	}

	// 1 of 101 rows rounds to 0.0099 and is excluded.
	acc.Add(vacancy("Dev", 2020, 100, "Москва"), "Dev")
	_, report, err = Finalize(acc)
	if err != nil {
		t.Fatalf("Finalize() failed: %v", err)
	}
	if len(report.Shares) != 1 || report.Shares[0].Area != "Москва" {
		t.Errorf("Shares = %+v, want only Москва", report.Shares)
	}
}

func TestAreaReport_Ordering(t *testing.T) {
	acc := NewChunkStats()
	for i := 0; i < 3; i++ {
		acc.Add(vacancy("Dev", 2020, 100, "Казань"), "Dev")
	}
	for i := 0; i < 3; i++ {
		acc.Add(vacancy("Dev", 2020, 200, "Омск"), "Dev")
	}
	for i := 0; i < 6; i++ {
		acc.Add(vacancy("Dev", 2020, 300, "Москва"), "Dev")
	}

	_, report, err := Finalize(acc)
	if err != nil {
		t.Fatalf("Finalize() failed: %v", err)
	}

	wantShares := []AreaShare{
		{Area: "Москва", Share: 0.5},
		{Area: "Казань", Share: 0.25}, // equal shares tie-break by area name
		{Area: "Омск", Share: 0.25},
	}
	if !reflect.DeepEqual(report.Shares, wantShares) {
		t.Errorf("Shares = %+v, want %+v", report.Shares, wantShares)
	}

	wantSalaries := []AreaSalary{
		{Area: "Москва", Salary: 300},
		{Area: "Омск", Salary: 200},
		{Area: "Казань", Salary: 100},
	}
	if !reflect.DeepEqual(report.Salaries, wantSalaries) {
		t.Errorf("Salaries = %+v, want %+v", report.Salaries, wantSalaries)
	}
}

func TestAreaReport_SalariesFilteredToRetained(t *testing.T) {
	acc := NewChunkStats()
	for i := 0; i < 200; i++ {
		acc.Add(vacancy("Dev", 2020, 100, fmt.Sprintf("Area-%d", i%2)), "Dev")
	}
	acc.Add(vacancy("Dev", 2020, 9999, "Тула"), "Dev") // 1/201 < 1%

	_, report, err := Finalize(acc)
	if err != nil {
		t.Fatalf("Finalize() failed: %v", err)
	}
	for _, s := range report.Salaries {
		if s.Area == "Тула" {
			t.Error("salary list must be filtered to retained areas")
		}
	}
}
