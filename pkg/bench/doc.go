// Package bench is a micro-benchmarking harness. Given a set of procedures
// (implementations under test) and a set of configurations (problem sizes or
// parameterizations) it measures wall-clock execution time for every
// (procedure, configuration) pair, calibrates the number of repetitions
// needed for a stable measurement, and collects the results in a table which
// can be rendered or exported to CSV.
//
// The measurement path is strictly sequential. Wall-clock accuracy requires
// that nothing else (including other benchmark cells) competes for the CPU
// inside a timing window, so there is no concurrency and no cancellation in
// this package. A Table is written by a single writer during RunAll and is
// safe to share only after RunAll returns.
package bench
