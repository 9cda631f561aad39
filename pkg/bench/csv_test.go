package bench

import (
	"bytes"
	"strings"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func TestWriteCSV(t *testing.T) {
	Convey("While exporting a populated 2x2 table", t, func() {
		buffer := &bytes.Buffer{}
		So(WriteCSV(buffer, renderedTable()), ShouldBeNil)

		lines := strings.Split(strings.TrimRight(buffer.String(), "\n"), "\n")

		Convey("Output should hold the fixed header and one row per pair", func() {
			So(len(lines), ShouldEqual, 5)
			So(lines[0], ShouldEqual, "proc,cfg,length,nruns,elapsed")
		})

		Convey("Rows should be quoted and in procedure-major order", func() {
			So(lines[1], ShouldEqual, `"double","10",10,4,2`)
			So(lines[2], ShouldEqual, `"double","100",100,2,3`)
			So(lines[3], ShouldEqual, `"square","10",10,8,2`)
			So(lines[4], ShouldEqual, `"square","100",100,1,3`)
		})
	})

	Convey("While exporting a freshly run table end to end", t, func() {
		procs := []Procedure{
			&scaledProcedure{name: "double", factor: 2},
			&scaledProcedure{name: "square", factor: 4},
		}
		configs := []Config{IntConfig(10), IntConfig(100)}

		table, err := RunAll(procs, configs, BatchConfig{
			Duration:  2 * time.Millisecond,
			Verbosity: Silent,
			Logger:    testLogger(&bytes.Buffer{}),
		})
		So(err, ShouldBeNil)

		buffer := &bytes.Buffer{}
		So(WriteCSV(buffer, table), ShouldBeNil)

		lines := strings.Split(strings.TrimRight(buffer.String(), "\n"), "\n")
		So(len(lines), ShouldEqual, 5)
		for _, line := range lines[1:] {
			So(strings.Count(line, ","), ShouldEqual, 4)
		}
	})
}
