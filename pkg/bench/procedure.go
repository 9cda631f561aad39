package bench

import "strconv"

// Config is an opaque, caller-defined benchmark configuration (typically a
// problem size) identified by a display name. The harness never inspects a
// configuration beyond its name; ordering among configurations is
// caller-supplied and preserved.
type Config interface {
	// Name returns the configuration display name.
	Name() string
}

// State is an opaque resource handle created by Procedure.Setup and reused
// across repeated Execute calls of a single measurement.
type State interface{}

// Procedure defines the interface which shall be provided by user code for
// each implementation under test.
type Procedure interface {
	// Name returns the procedure display name. It must not vary across
	// configurations of the same procedure.
	Name() string
	// ProblemLength returns the size metric (e.g. element count) used for
	// throughput unit conversion. It must be deterministic and positive for
	// valid configurations.
	ProblemLength(cfg Config) int
	// IsValid tells whether the procedure can run under the configuration.
	// Invalid combinations are skipped, not failed.
	IsValid(cfg Config) bool
	// Setup allocates resources needed for repeated execution, e.g. input
	// buffers. It is excluded from timing.
	Setup(cfg Config) (State, error)
	// Execute performs one unit of work. This is the only call whose
	// duration is measured. An error aborts the measurement.
	Execute(cfg Config, state State) error
	// Teardown releases resources created by Setup. Excluded from timing.
	Teardown(cfg Config, state State) error
}

// IntConfig is a ready-made Config for the common case of an integer problem
// size.
type IntConfig int

// Name returns the decimal representation of the size.
func (c IntConfig) Name() string {
	return strconv.Itoa(int(c))
}
