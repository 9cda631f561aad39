package bench

import "github.com/pkg/errors"

// Unit selects how a table cell is reported: as time per call or as
// throughput in items per second.
type Unit int

// The closed set of reporting units.
const (
	// Sec reports seconds per call.
	Sec Unit = iota
	// Msec reports milliseconds per call.
	Msec
	// Usec reports microseconds per call.
	Usec
	// Nsec reports nanoseconds per call.
	Nsec
	// Ups reports items processed per second.
	Ups
	// Kps reports thousands of items processed per second.
	Kps
	// Mps reports millions of items processed per second.
	Mps
	// Gps reports billions of items processed per second.
	Gps
)

var unitNames = [...]string{"sec", "msec", "usec", "nsec", "ups", "kps", "mps", "gps"}

// ParseUnit resolves a unit selector such as "sec" or "mps". An unknown
// selector is an error.
func ParseUnit(name string) (Unit, error) {
	for u, unitName := range unitNames {
		if name == unitName {
			return Unit(u), nil
		}
	}
	return Sec, errors.Errorf("unknown benchmark unit %q", name)
}

// String returns the unit selector.
func (u Unit) String() string {
	if !u.valid() {
		return "invalid"
	}
	return unitNames[u]
}

func (u Unit) valid() bool {
	return u >= Sec && u <= Gps
}

// Convert maps a table cell to a single number under the unit. It is a pure
// function of the entry and the unit. For cells recorded as skipped (zero
// runs and zero elapsed time) throughput and per-call conversions divide by
// zero and yield NaN or Inf under IEEE semantics instead of failing;
// callers rendering such cells see the float formatting of those values.
func (u Unit) Convert(e Entry) float64 {
	switch u {
	case Sec:
		return e.Elapsed / float64(e.Runs)
	case Msec:
		return e.Elapsed / float64(e.Runs) * 1.0e3
	case Usec:
		return e.Elapsed / float64(e.Runs) * 1.0e6
	case Nsec:
		return e.Elapsed / float64(e.Runs) * 1.0e9
	case Ups:
		return float64(e.ProblemLength) * float64(e.Runs) / e.Elapsed
	case Kps:
		return float64(e.ProblemLength) * float64(e.Runs) / e.Elapsed * 1.0e-3
	case Mps:
		return float64(e.ProblemLength) * float64(e.Runs) / e.Elapsed * 1.0e-6
	case Gps:
		return float64(e.ProblemLength) * float64(e.Runs) / e.Elapsed * 1.0e-9
	}
	panic(errors.Errorf("conversion with invalid benchmark unit %d", int(u)))
}
