package metadata

import (
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/lindahua/benchlite/pkg/conf"
)

// RecordRuntimeEnv stores the run environment information in the configured
// backend: the flag based configuration, the BENCHLITE_ environment
// variables, the host identity and the platform characteristics.
func RecordRuntimeEnv(metadata Metadata, runStart time.Time) error {
	// Store configuration.
	err := recordFlags(metadata)
	if err != nil {
		return err
	}

	// Store BENCHLITE_ environment configuration.
	err = recordEnv(metadata, conf.EnvironmentPrefix)
	if err != nil {
		return err
	}

	hostname, err := os.Hostname()
	if err != nil {
		return errors.Wrap(err, "cannot retrieve hostname")
	}
	// Store hostname and start time.
	err = metadata.RecordMap(map[string]string{"time": runStart.Format(time.RFC822Z), "host": hostname}, TypeEmpty)
	if err != nil {
		return err
	}

	// Store hardware & runtime details.
	return recordPlatformMetrics(metadata)
}

// recordFlags saves the whole flag based configuration in the metadata
// information.
func recordFlags(metadata Metadata) error {
	flags := conf.GetFlags()
	return metadata.RecordMap(flags, TypeFlags)
}

// recordEnv adds all OS environment variables that start with the given
// prefix to the metadata information.
func recordEnv(metadata Metadata, prefix string) error {
	envMetadata := map[string]string{}
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, prefix) {
			fields := strings.SplitN(env, "=", 2)
			envMetadata[fields[0]] = fields[1]
		}
	}
	return metadata.RecordMap(envMetadata, TypeEnviron)
}

// recordPlatformMetrics stores platform specific metadata of
// TypePlatform kind.
func recordPlatformMetrics(metadata Metadata) error {
	platformMetrics := GetPlatformMetrics()
	return metadata.RecordMap(platformMetrics, TypePlatform)
}

// GetPlatformMetrics returns the platform characteristics which influence
// benchmark results: CPU count, operating system, architecture and the Go
// runtime version.
func GetPlatformMetrics() map[string]string {
	return map[string]string{
		"cpu_count":  strconv.Itoa(runtime.NumCPU()),
		"os":         runtime.GOOS,
		"arch":       runtime.GOARCH,
		"go_version": runtime.Version(),
	}
}
