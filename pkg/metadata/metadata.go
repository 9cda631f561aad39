package metadata

import (
	"fmt"

	"github.com/lindahua/benchlite/pkg/conf"
)

// Predefined kinds of metadata.
// This selector allows to group metadata by their common characteristics:
// Flags for the parameters passed to the harness, Environ for environment
// variables and Platform for recorded host characteristics like the number
// of CPUs. Note that a kind is just a string and each run can record its
// own personalized kinds of metadata.
const (
	TypeEmpty    = ""
	TypeFlags    = "flags"
	TypeEnviron  = "environ"
	TypePlatform = "platform"
)

// Metadata interface defines methods which must be supported by a DB
// backend.
type Metadata interface {
	// Record stores a key and value and associates them with the run id.
	Record(key string, value string, kind string) error
	// RecordMap stores a key and value map and associates it with the run id.
	RecordMap(metadata map[string]string, kind string) error
	// GetByKind retrieves a single metadata kind from the database.
	// Returns an error if no kind or too many groups are found.
	GetByKind(kind string) (map[string]string, error)
	// Clear deletes all metadata entries associated with the current run id.
	Clear() error
}

// NewDefault initializes the metadata backend selected by the metadata_db
// flag or environment variable.
func NewDefault(runID string) (Metadata, error) {
	if conf.DefaultMetadataDB.Value() == "cassandra" {
		return NewCassandra(runID, DefaultCassandraConfig())
	}

	if conf.DefaultMetadataDB.Value() == "influxdb" {
		return NewInfluxDB(runID, DefaultInfluxDBConfig())
	}

	return nil, fmt.Errorf("unsupported database for metadata: %s", conf.DefaultMetadataDB.Value())
}
