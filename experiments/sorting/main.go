package main

import (
	"math/rand"
	"os"
	"sort"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/lindahua/benchlite/pkg/bench"
	"github.com/lindahua/benchlite/pkg/conf"
	"github.com/lindahua/benchlite/pkg/metadata"
	"github.com/lindahua/benchlite/pkg/metrics"
	"github.com/lindahua/benchlite/pkg/metrics/uploaders"
	"github.com/lindahua/benchlite/pkg/utils/errutil"
	"github.com/lindahua/benchlite/pkg/utils/uuid"
	"github.com/lindahua/benchlite/pkg/visualization"
)

// insertionSortLimit keeps the quadratic procedure away from sizes where a
// single execution would dominate the whole batch.
const insertionSortLimit = 1 << 16

// sortProcedure benchmarks one way of sorting a random []int.
type sortProcedure struct {
	name     string
	sortFunc func([]int)
	maxSize  int
}

// sortState holds the pristine input and a scratch slice reused across
// repetitions.
type sortState struct {
	input []int
	work  []int
}

func (p *sortProcedure) Name() string {
	return p.name
}

func (p *sortProcedure) ProblemLength(cfg bench.Config) int {
	return int(cfg.(bench.IntConfig))
}

func (p *sortProcedure) IsValid(cfg bench.Config) bool {
	return p.maxSize == 0 || int(cfg.(bench.IntConfig)) <= p.maxSize
}

func (p *sortProcedure) Setup(cfg bench.Config) (bench.State, error) {
	size := int(cfg.(bench.IntConfig))
	if size <= 0 {
		return nil, errors.Errorf("invalid problem size %d", size)
	}

	rng := rand.New(rand.NewSource(42))
	state := &sortState{
		input: make([]int, size),
		work:  make([]int, size),
	}
	for i := range state.input {
		state.input[i] = rng.Int()
	}
	return state, nil
}

func (p *sortProcedure) Execute(cfg bench.Config, state bench.State) error {
	s := state.(*sortState)
	copy(s.work, s.input)
	p.sortFunc(s.work)
	return nil
}

func (p *sortProcedure) Teardown(cfg bench.Config, state bench.State) error {
	return nil
}

func insertionSort(data []int) {
	for i := 1; i < len(data); i++ {
		v := data[i]
		j := i - 1
		for j >= 0 && data[j] > v {
			data[j+1] = data[j]
			j--
		}
		data[j+1] = v
	}
}

func procedures() []bench.Procedure {
	return []bench.Procedure{
		&sortProcedure{name: "sort.Ints", sortFunc: sort.Ints},
		&sortProcedure{name: "insertion", sortFunc: insertionSort, maxSize: insertionSortLimit},
	}
}

func configurations() []bench.Config {
	return []bench.Config{
		bench.IntConfig(1 << 10),
		bench.IntConfig(1 << 14),
		bench.IntConfig(1 << 18),
	}
}

// storeRun records the run environment and uploads every measured cell to
// the configured backend.
func storeRun(runID string, table *bench.Table) error {
	meta, err := metadata.NewDefault(runID)
	if err != nil {
		return err
	}
	if err := metadata.RecordRuntimeEnv(meta, time.Now()); err != nil {
		return err
	}

	uploader, err := uploaders.NewDefault()
	if err != nil {
		return err
	}
	return metrics.SendAll(uploader, metrics.FromTable(runID, table))
}

func main() {
	conf.SetAppName("sorting-benchmark")
	conf.SetHelp(`Benchmarks sort implementations over a range of input sizes and renders
the calibrated timing results as a table. Results can be exported to CSV
and uploaded to Cassandra or InfluxDB.`)

	errutil.Check(conf.ParseFlags())
	logrus.SetLevel(conf.LogLevel())

	unit, err := bench.ParseUnit(conf.Unit.Value())
	errutil.Check(err)

	runID := uuid.New()

	logger := logrus.New()
	logger.Out = os.Stdout
	table, err := bench.RunAll(procedures(), configurations(), bench.BatchConfig{
		Duration:  conf.Duration.Value(),
		Runs:      conf.Runs.Value(),
		DisableGC: conf.DisableGC.Value(),
		Verbosity: conf.Verbosity.Value(),
		Logger:    logger,
	})
	errutil.CheckWithContext(err, "benchmark batch failed")

	visualization.PrintRunMetadata(os.Stdout, visualization.NewRunMetadata(runID))
	if conf.PrettyTable.Value() {
		err = visualization.DrawTable(os.Stdout, visualization.NewBenchmarkTable(table, unit, "config"))
	} else {
		err = bench.Render(os.Stdout, table, unit, "config")
	}
	errutil.Check(err)

	if path := conf.CSVFile.Value(); path != "" {
		file, err := os.Create(path)
		errutil.CheckWithContext(err, "creating CSV file failed")
		errutil.Check(bench.WriteCSV(file, table))
		errutil.Check(file.Close())
	}

	if conf.StoreResults.Value() {
		errutil.CheckWithContext(storeRun(runID, table), "storing results failed")
	}
}
