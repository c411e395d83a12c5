// Package stats implements the salary-statistics engine: per-chunk streaming
// aggregation, the merge of per-chunk partial results, and finalization into
// the printed mappings.
package stats

import (
	"fmt"
	"io"
	"strings"

	"github.com/ybocharov/salary-trends/models"
	"github.com/ybocharov/salary-trends/pkg/chunkcsv"
	"github.com/ybocharov/salary-trends/pkg/currency"
)

// ChunkStats is one chunk's partial accumulator. Salary lists hold raw
// per-row averages in row order; averaging is deferred to Finalize so that
// merging chunks of uneven size stays associative.
type ChunkStats struct {
	SalaryByYear       map[int][]float64
	TargetSalaryByYear map[int][]float64
	SalaryByArea       map[string][]float64
	VacancyCount       int
}

// NewChunkStats returns an empty accumulator.
func NewChunkStats() *ChunkStats {
	return &ChunkStats{
		SalaryByYear:       make(map[int][]float64),
		TargetSalaryByYear: make(map[int][]float64),
		SalaryByArea:       make(map[string][]float64),
	}
}

// Add folds one normalized vacancy into the accumulator. The target track is
// updated only when the vacancy name contains the profession substring
// (case-sensitive, like the source data's own filtering).
func (s *ChunkStats) Add(v *models.Vacancy, profession string) {
	s.SalaryByYear[v.Year] = append(s.SalaryByYear[v.Year], v.SalaryAverage)
	if strings.Contains(v.Name, profession) {
		s.TargetSalaryByYear[v.Year] = append(s.TargetSalaryByYear[v.Year], v.SalaryAverage)
	}
	s.SalaryByArea[v.AreaName] = append(s.SalaryByArea[v.AreaName], v.SalaryAverage)
	s.VacancyCount++
}

// AggregateChunk streams one chunk file into a fresh accumulator. Rows that
// fail screening are dropped by the reader; a row that survives screening but
// fails normalization (unknown currency, malformed date) aborts the whole
// chunk, since that is corrupt data rather than expected noise.
func AggregateChunk(path, profession string, rates currency.Table) (*ChunkStats, error) {
	reader, err := chunkcsv.Open(path)
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	acc := NewChunkStats()
	for {
		row, err := reader.Next()
		if err == io.EOF {
			return acc, nil
		}
		if err != nil {
			return nil, fmt.Errorf("chunk %s: %w", path, err)
		}

		vacancy, err := models.NewVacancy(row, rates)
		if err != nil {
			return nil, fmt.Errorf("chunk %s: %w", path, err)
		}
		acc.Add(vacancy, profession)
	}
}
