package analyze

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/cheggaaa/pb/v3"
	"github.com/ybocharov/salary-trends/models"
	"github.com/ybocharov/salary-trends/pkg/currency"
	"github.com/ybocharov/salary-trends/pkg/stats"
)

// run fans chunk files out to a single bounded worker pool, collects every
// partial accumulator, then merges and finalizes on this goroutine only. The
// first failed chunk aborts the run; a partial merge would silently
// under-count.
func run(logger *slog.Logger, config *models.AnalyzeConfig, files []string, rates currency.Table, showProgress bool) (*stats.Statistics, *stats.AreaReport, error) {
	logger.Info("Starting concurrent aggregation phase", "chunk_count", len(files), "workers", config.Workers, "profession", config.Profession)

	var wg sync.WaitGroup
	jobs := make(chan Job, len(files))
	results := make(chan Result, len(files))

	var bar *pb.ProgressBar
	if showProgress {
		bar = pb.StartNew(len(files))
	}

	for w := 1; w <= config.Workers; w++ {
		wg.Add(1)
		go worker(w, logger, config.Profession, rates, &wg, jobs, results, bar)
	}

	for _, path := range files {
		jobs <- Job{Path: path}
	}
	close(jobs)

	wg.Wait()
	close(results)
	if bar != nil {
		bar.Finish()
	}
	logger.Info("All aggregation workers finished")

	parts := make([]*stats.ChunkStats, 0, len(files))
	for result := range results {
		if result.Error != nil {
			return nil, nil, fmt.Errorf("chunk aggregation failed: %w", result.Error)
		}
		parts = append(parts, result.Stats)
	}

	logger.Info("Starting merge phase", "partial_results", len(parts))
	merged := stats.Merge(parts)

	return stats.Finalize(merged)
}

// worker aggregates chunks from the jobs channel and sends the partial
// accumulators to the results channel.
func worker(id int, logger *slog.Logger, profession string, rates currency.Table, wg *sync.WaitGroup, jobs <-chan Job, results chan<- Result, bar *pb.ProgressBar) {
	defer wg.Done()
	for job := range jobs {
		logger.Info("Worker started chunk", "worker_id", id, "path", job.Path)

		chunk, err := stats.AggregateChunk(job.Path, profession, rates)
		if err != nil {
			logger.Error("Error aggregating chunk", "worker_id", id, "path", job.Path, "error", err)
		} else {
			logger.Info("Worker finished chunk", "worker_id", id, "path", job.Path, "rows", chunk.VacancyCount)
		}

		results <- Result{Path: job.Path, Stats: chunk, Error: err}
		if bar != nil {
			bar.Increment()
		}
	}
}
