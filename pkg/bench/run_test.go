package bench

import (
	"runtime/debug"
	"testing"
	"time"

	"github.com/pkg/errors"
	. "github.com/smartystreets/goconvey/convey"
)

func TestRunSkipsInvalidPairs(t *testing.T) {
	Convey("While running a procedure which rejects the configuration", t, func() {
		proc := &fakeProcedure{name: "invalid", invalid: true}

		runs, elapsed, err := Run(proc, IntConfig(10), DefaultRunConfig())

		Convey("The cell should be recorded as the zero sentinel", func() {
			So(err, ShouldBeNil)
			So(runs, ShouldEqual, 0)
			So(elapsed, ShouldEqual, 0.0)
		})

		Convey("Setup, Execute and Teardown should never be called", func() {
			So(proc.setupCalls, ShouldEqual, 0)
			So(proc.executeCalls, ShouldEqual, 0)
			So(proc.teardownCalls, ShouldEqual, 0)
		})
	})
}

func TestRunWithExplicitRepetitions(t *testing.T) {
	Convey("While running with an explicit repetition count", t, func() {
		clock := &fakeClock{now: time.Unix(0, 0)}
		proc := &fakeProcedure{name: "explicit", clock: clock, cost: time.Millisecond}

		var runs int
		var elapsed float64
		var err error
		withFakeClock(clock, func() {
			runs, elapsed, err = Run(proc, IntConfig(10), RunConfig{Duration: time.Second, Runs: 5, DisableGC: true})
		})

		Convey("Calibration should be skipped and the count honored", func() {
			So(err, ShouldBeNil)
			So(runs, ShouldEqual, 5)
			// One warm-up execution on top of the timed batch.
			So(proc.executeCalls, ShouldEqual, 6)
		})

		Convey("Elapsed time should cover the whole timed batch", func() {
			So(elapsed, ShouldAlmostEqual, 0.005, 1e-12)
		})

		Convey("Setup and Teardown should each run exactly once", func() {
			So(proc.setupCalls, ShouldEqual, 1)
			So(proc.teardownCalls, ShouldEqual, 1)
		})
	})
}

func TestCalibrationConvergence(t *testing.T) {
	Convey("While calibrating procedures spanning orders of magnitude in cost", t, func() {
		target := time.Second

		// From nanoseconds up to ten milliseconds per call.
		costs := []time.Duration{
			time.Nanosecond,
			100 * time.Nanosecond,
			10 * time.Microsecond,
			time.Millisecond,
			10 * time.Millisecond,
		}

		for _, cost := range costs {
			clock := &fakeClock{now: time.Unix(0, 0)}
			proc := &fakeProcedure{name: "costed", clock: clock, cost: cost}
			state, err := proc.Setup(IntConfig(10))
			So(err, ShouldBeNil)

			var runs int
			withFakeClock(clock, func() {
				runs, err = calibrate(proc, IntConfig(10), state, target.Seconds())
			})

			So(err, ShouldBeNil)
			So(runs, ShouldBeGreaterThanOrEqualTo, 1)

			// The timed batch should fill the target window within 20%.
			total := time.Duration(runs) * cost
			So(total.Seconds(), ShouldBeGreaterThanOrEqualTo, target.Seconds()*0.8)
			So(total.Seconds(), ShouldBeLessThanOrEqualTo, target.Seconds()*1.2)
		}

		Convey("A full calibrated run should fill the window as well", func() {
			clock := &fakeClock{now: time.Unix(0, 0)}
			proc := &fakeProcedure{name: "costed", clock: clock, cost: time.Millisecond}

			var runs int
			var elapsed float64
			var err error
			withFakeClock(clock, func() {
				runs, elapsed, err = Run(proc, IntConfig(10), RunConfig{Duration: target, DisableGC: false})
			})

			So(err, ShouldBeNil)
			So(runs, ShouldEqual, 1000)
			So(elapsed, ShouldAlmostEqual, 1.0, 1e-9)
		})
	})
}

func TestRunRestoresGC(t *testing.T) {
	Convey("While measuring with GC suppression", t, func() {
		previous := debug.SetGCPercent(100)
		defer debug.SetGCPercent(previous)

		Convey("The GC setting should be restored after a successful run", func() {
			proc := &fakeProcedure{name: "plain"}
			_, _, err := Run(proc, IntConfig(10), RunConfig{Duration: time.Millisecond, Runs: 1, DisableGC: true})
			So(err, ShouldBeNil)
			So(debug.SetGCPercent(100), ShouldEqual, 100)
		})

		Convey("The GC setting should be restored when execution fails", func() {
			proc := &fakeProcedure{name: "failing"}
			_, _, err := Run(proc, IntConfig(10), RunConfig{Duration: time.Millisecond, Runs: 1, DisableGC: true})
			So(err, ShouldBeNil)

			proc.executeErr = errors.New("boom")
			_, _, err = Run(proc, IntConfig(10), RunConfig{Duration: time.Millisecond, Runs: 1, DisableGC: true})
			So(err, ShouldNotBeNil)
			So(debug.SetGCPercent(100), ShouldEqual, 100)
		})
	})
}

func TestRunFailures(t *testing.T) {
	Convey("While running failing procedures", t, func() {
		Convey("A setup failure should abort before any execution", func() {
			proc := &fakeProcedure{name: "nosetup", setupErr: errors.New("no memory")}
			runs, elapsed, err := Run(proc, IntConfig(10), DefaultRunConfig())

			So(err, ShouldNotBeNil)
			So(runs, ShouldEqual, 0)
			So(elapsed, ShouldEqual, 0.0)
			So(proc.executeCalls, ShouldEqual, 0)
			So(proc.teardownCalls, ShouldEqual, 0)
		})

		Convey("An execution failure should abort and still tear down", func() {
			proc := &fakeProcedure{name: "noexec", executeErr: errors.New("boom")}
			runs, _, err := Run(proc, IntConfig(10), DefaultRunConfig())

			So(err, ShouldNotBeNil)
			So(runs, ShouldEqual, 0)
			So(proc.teardownCalls, ShouldEqual, 1)
		})

		Convey("A teardown failure should surface as an error", func() {
			proc := &fakeProcedure{name: "noteardown", teardownErr: errors.New("leak")}
			runs, _, err := Run(proc, IntConfig(10), RunConfig{Duration: time.Millisecond, Runs: 1})

			So(err, ShouldNotBeNil)
			So(runs, ShouldEqual, 0)
		})
	})
}

func TestRunAgainstWallClock(t *testing.T) {
	Convey("While measuring a real procedure against the wall clock", t, func() {
		proc := &scaledProcedure{name: "double", factor: 2}

		runs, elapsed, err := Run(proc, IntConfig(1000), RunConfig{Duration: 5 * time.Millisecond, DisableGC: true})

		Convey("A valid pair should always yield at least one repetition", func() {
			So(err, ShouldBeNil)
			So(runs, ShouldBeGreaterThanOrEqualTo, 1)
			So(elapsed, ShouldBeGreaterThanOrEqualTo, 0.0)
		})
	})
}
