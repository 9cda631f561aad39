package bench

import (
	"math"
	"runtime/debug"
	"time"

	"github.com/pkg/errors"
)

// RunConfig controls a single measurement.
type RunConfig struct {
	// Duration is the wall-clock window the calibrated batch aims to fill.
	Duration time.Duration
	// Runs forces an explicit repetition count and skips calibration when
	// positive.
	Runs int
	// DisableGC stops the garbage collector for the measurement window so
	// collection pauses do not pollute the timing. It is restored on every
	// exit path.
	DisableGC bool
}

// DefaultRunConfig returns the measurement defaults: a one second window,
// calibrated repetition count and GC suppression on.
func DefaultRunConfig() RunConfig {
	return RunConfig{
		Duration:  time.Second,
		Runs:      0,
		DisableGC: true,
	}
}

// timeNow is replaced in tests to drive calibration with a synthetic clock.
var timeNow = time.Now

// Run measures one procedure under one configuration and returns the
// repetition count together with the elapsed wall-clock seconds of the whole
// timed batch.
//
// An invalid (procedure, configuration) pair is a skip, not an error: Run
// returns (0, 0, nil) without calling Setup. Otherwise Run performs setup,
// one discarded warm-up execution, calibrates the repetition count unless an
// explicit one was given, times runs consecutive Execute calls as a single
// interval and tears the state down. Any failure from Setup, Execute or
// Teardown aborts the measurement; there are no retries.
func Run(proc Procedure, cfg Config, runConfig RunConfig) (runs int, elapsed float64, err error) {
	if !proc.IsValid(cfg) {
		return 0, 0, nil
	}

	duration := runConfig.Duration
	if duration <= 0 {
		duration = time.Second
	}

	state, err := proc.Setup(cfg)
	if err != nil {
		return 0, 0, errors.Wrapf(err, "setup of %q failed for configuration %q", proc.Name(), cfg.Name())
	}
	defer func() {
		terr := proc.Teardown(cfg, state)
		if terr != nil && err == nil {
			runs, elapsed = 0, 0
			err = errors.Wrapf(terr, "teardown of %q failed for configuration %q", proc.Name(), cfg.Name())
		}
	}()

	// One discarded warm-up execution absorbs one-time costs like lazy
	// initialization and cache warming.
	if execErr := proc.Execute(cfg, state); execErr != nil {
		return 0, 0, errors.Wrapf(execErr, "warm-up of %q failed for configuration %q", proc.Name(), cfg.Name())
	}

	if runConfig.DisableGC {
		defer debug.SetGCPercent(debug.SetGCPercent(-1))
	}

	runs = runConfig.Runs
	if runs <= 0 {
		runs, err = calibrate(proc, cfg, state, duration.Seconds())
		if err != nil {
			return 0, 0, err
		}
	}

	start := timeNow()
	for k := 0; k < runs; k++ {
		if execErr := proc.Execute(cfg, state); execErr != nil {
			return 0, 0, errors.Wrapf(execErr, "execution of %q failed for configuration %q", proc.Name(), cfg.Name())
		}
	}
	elapsed = timeNow().Sub(start).Seconds()

	return runs, elapsed, nil
}

// calibrate estimates how many repetitions fill the target window. A single
// probe execution is measured first; when the probe is too fast for the
// timer to resolve reliably (under 1/500th of the window) the estimate is
// refined with a batch sized to fill that 1/500th slice.
func calibrate(proc Procedure, cfg Config, state State, target float64) (int, error) {
	start := timeNow()
	if err := proc.Execute(cfg, state); err != nil {
		return 0, errors.Wrapf(err, "calibration of %q failed for configuration %q", proc.Name(), cfg.Name())
	}
	et := timeNow().Sub(start).Seconds()

	if et < target/500 {
		batch := 2
		if et > 0 {
			if n := int(math.Ceil(target / 500 / et)); n > batch {
				batch = n
			}
		}
		start = timeNow()
		for k := 0; k < batch; k++ {
			if err := proc.Execute(cfg, state); err != nil {
				return 0, errors.Wrapf(err, "calibration of %q failed for configuration %q", proc.Name(), cfg.Name())
			}
		}
		et = timeNow().Sub(start).Seconds() / float64(batch)
	}

	if et <= 0 {
		// Timer resolution floor. Even a no-op cannot run more often than
		// once per nanosecond of wall clock.
		et = 1.0e-9
	}

	runs := int(math.Ceil(target / et))
	if runs < 1 {
		runs = 1
	}
	return runs, nil
}
