package bench

import (
	"math"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestParseUnit(t *testing.T) {
	Convey("While parsing unit selectors", t, func() {
		Convey("Every known selector should round-trip through String", func() {
			for _, name := range []string{"sec", "msec", "usec", "nsec", "ups", "kps", "mps", "gps"} {
				unit, err := ParseUnit(name)
				So(err, ShouldBeNil)
				So(unit.String(), ShouldEqual, name)
			}
		})

		Convey("An unknown selector should be rejected", func() {
			_, err := ParseUnit("parsec")
			So(err, ShouldNotBeNil)

			_, err = ParseUnit("")
			So(err, ShouldNotBeNil)
		})
	})
}

func TestUnitConversion(t *testing.T) {
	entry := Entry{ProblemLength: 1000, Runs: 4, Elapsed: 2.0}

	Convey("While converting a measured entry", t, func() {
		Convey("Time units should report the per-call duration", func() {
			So(Sec.Convert(entry), ShouldEqual, 0.5)
			So(Msec.Convert(entry), ShouldEqual, 500.0)
			So(Usec.Convert(entry), ShouldEqual, 500000.0)
			So(Nsec.Convert(entry), ShouldEqual, 500000000.0)
		})

		Convey("Milliseconds should equal seconds times 1000 exactly", func() {
			So(Msec.Convert(entry), ShouldEqual, Sec.Convert(entry)*1000)
		})

		Convey("Throughput units should report scaled items per second", func() {
			So(Ups.Convert(entry), ShouldEqual, 2000.0)
			So(Kps.Convert(entry), ShouldAlmostEqual, 2.0, 1e-12)
			So(Mps.Convert(entry), ShouldAlmostEqual, 0.002, 1e-15)
		})

		Convey("Conversion should be a pure function of entry and unit", func() {
			for _, unit := range []Unit{Sec, Msec, Usec, Nsec, Ups, Kps, Mps, Gps} {
				So(unit.Convert(entry), ShouldEqual, unit.Convert(entry))
			}
		})

		Convey("Throughput should be strictly ordered by scale", func() {
			So(Gps.Convert(entry), ShouldBeLessThan, Mps.Convert(entry))
			So(Mps.Convert(entry), ShouldBeLessThan, Kps.Convert(entry))
			So(Kps.Convert(entry), ShouldBeLessThan, Ups.Convert(entry))
		})
	})

	Convey("While converting a skipped cell", t, func() {
		skipped := Entry{ProblemLength: 1000, Runs: 0, Elapsed: 0}

		Convey("Per-call time should be NaN instead of failing", func() {
			So(math.IsNaN(Sec.Convert(skipped)), ShouldBeTrue)
			So(math.IsNaN(Msec.Convert(skipped)), ShouldBeTrue)
		})

		Convey("Throughput with zero elapsed but positive runs should be Inf", func() {
			instant := Entry{ProblemLength: 1000, Runs: 3, Elapsed: 0}
			So(math.IsInf(Ups.Convert(instant), 1), ShouldBeTrue)
		})
	})
}
