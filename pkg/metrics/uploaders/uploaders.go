// Package uploaders provides metrics.Uploader implementations backed by
// Cassandra and InfluxDB.
package uploaders

import (
	"github.com/pkg/errors"

	"github.com/lindahua/benchlite/pkg/conf"
	"github.com/lindahua/benchlite/pkg/metrics"
)

// NewDefault initializes the uploader selected by the metadata_db flag or
// environment variable.
func NewDefault() (metrics.Uploader, error) {
	switch conf.DefaultMetadataDB.Value() {
	case "cassandra":
		return NewCassandra(DefaultCassandraConfig())
	case "influxdb":
		return NewInfluxDB(DefaultInfluxDBConfig())
	}

	return nil, errors.Errorf("unsupported database for results: %s", conf.DefaultMetadataDB.Value())
}
