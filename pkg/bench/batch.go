package bench

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

// Verbosity levels for RunAll progress logging.
const (
	// Silent emits nothing.
	Silent = 0
	// PerProcedure emits one line per procedure.
	PerProcedure = 1
	// PerCell emits one line per procedure and one per measured cell.
	PerCell = 2
)

// BatchConfig controls a full table run.
type BatchConfig struct {
	// Duration is the per-cell measurement window.
	Duration time.Duration
	// Runs forces an explicit repetition count for every cell and skips
	// calibration when positive.
	Runs int
	// DisableGC stops the garbage collector inside each measurement window.
	DisableGC bool
	// Verbosity is one of Silent, PerProcedure or PerCell.
	Verbosity int
	// Logger is the progress sink. Nil falls back to a logger writing to
	// standard output.
	Logger *logrus.Logger
}

// DefaultBatchConfig returns the batch defaults: one second per cell, GC
// suppression on, per-cell progress to standard output.
func DefaultBatchConfig() BatchConfig {
	return BatchConfig{
		Duration:  time.Second,
		DisableGC: true,
		Verbosity: PerCell,
		Logger:    nil,
	}
}

// RunAll benchmarks every (procedure, configuration) pair and returns the
// populated table. Procedures iterate in the outer loop, configurations in
// the inner one; cells are measured strictly sequentially so no other cell
// competes for the CPU during a timing window.
//
// A procedure failure aborts the batch. The partially populated table is
// returned alongside the error so the caller can inspect whatever was
// already written; cells past the failure keep their zero defaults.
func RunAll(procs []Procedure, configs []Config, batchConfig BatchConfig) (*Table, error) {
	log := batchConfig.Logger
	if log == nil {
		log = logrus.New()
		log.Out = os.Stdout
	}

	runConfig := RunConfig{
		Duration:  batchConfig.Duration,
		Runs:      batchConfig.Runs,
		DisableGC: batchConfig.DisableGC,
	}

	table := NewTable(configs, procs)
	for j, proc := range procs {
		if batchConfig.Verbosity >= PerProcedure {
			log.Infof("benchmarking %s ...", proc.Name())
		}
		for i, cfg := range configs {
			runs, elapsed, err := Run(proc, cfg, runConfig)
			if err != nil {
				return table, err
			}
			table.setCell(i, j, runs, elapsed)
			if batchConfig.Verbosity >= PerCell {
				log.Infof("  %s with cfg = %s: runs = %d, elapsed = %.4f sec", proc.Name(), cfg.Name(), runs, elapsed)
			}
		}
	}

	return table, nil
}
