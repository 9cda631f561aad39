package bench

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestTable(t *testing.T) {
	procs := []Procedure{
		&fakeProcedure{name: "alpha"},
		&fakeProcedure{name: "beta"},
		&fakeProcedure{name: "gamma"},
	}
	configs := []Config{IntConfig(10), IntConfig(100)}

	Convey("While constructing a benchmark table", t, func() {
		table := NewTable(configs, procs)

		Convey("Dimensions should follow configurations and procedures", func() {
			m, n := table.Size()
			So(m, ShouldEqual, len(configs))
			So(n, ShouldEqual, len(procs))
		})

		Convey("Problem lengths should be computed eagerly for every cell", func() {
			for i := range configs {
				for j := range procs {
					So(table.EntryAt(i, j).ProblemLength, ShouldEqual, procs[j].ProblemLength(configs[i]))
				}
			}
		})

		Convey("Cells should default to the not-yet-run sentinel", func() {
			entry := table.EntryAt(1, 2)
			So(entry.Runs, ShouldEqual, 0)
			So(entry.Elapsed, ShouldEqual, 0.0)
		})

		Convey("A written cell should be readable through EntryAt", func() {
			table.setCell(1, 2, 7, 0.25)
			entry := table.EntryAt(1, 2)
			So(entry.Runs, ShouldEqual, 7)
			So(entry.Elapsed, ShouldEqual, 0.25)

			Convey("And other cells should stay untouched", func() {
				So(table.EntryAt(0, 0).Runs, ShouldEqual, 0)
			})
		})

		Convey("Out of range access should panic", func() {
			So(func() { table.EntryAt(2, 0) }, ShouldPanic)
			So(func() { table.EntryAt(0, 3) }, ShouldPanic)
			So(func() { table.EntryAt(-1, 0) }, ShouldPanic)
		})
	})
}
