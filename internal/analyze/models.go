package analyze

import (
	"github.com/ybocharov/salary-trends/pkg/stats"
)

// Job is one chunk file handed to a worker.
type Job struct {
	Path string
}

// Result holds the outcome of one aggregated chunk.
type Result struct {
	Path  string
	Stats *stats.ChunkStats
	Error error
}
