package metadata

import (
	"fmt"
	"time"

	client "github.com/influxdata/influxdb1-client/v2"
	"github.com/pkg/errors"

	"github.com/lindahua/benchlite/pkg/conf"
)

const influxMetadata = "metadata"

// InfluxDBConfig holds configuration for InfluxDB.
type InfluxDBConfig struct {
	httpConfig client.HTTPConfig
	dbName     string
}

// InfluxDB is a helper struct which keeps the InfluxDB session alive, holds
// the active configuration and the run id to tag the metadata with.
type InfluxDB struct {
	runID   string
	session client.Client
	config  InfluxDBConfig
}

// DefaultInfluxDBConfig applies the InfluxDB settings from the command line
// flags and environment variables.
func DefaultInfluxDBConfig() InfluxDBConfig {
	return InfluxDBConfig{
		dbName: conf.InfluxDBName.Value(),
		httpConfig: client.HTTPConfig{
			Addr:               fmt.Sprintf("http://%s:%d", conf.InfluxDBAddress.Value(), conf.InfluxDBPort.Value()),
			Username:           conf.InfluxDBUsername.Value(),
			Password:           conf.InfluxDBPassword.Value(),
			InsecureSkipVerify: conf.InfluxDBInsecureSkipVerify.Value(),
		},
	}
}

// NewInfluxDB returns the Metadata helper from a run id and configuration.
func NewInfluxDB(runID string, config InfluxDBConfig) (Metadata, error) {
	var err error

	metadata := &InfluxDB{
		runID:  runID,
		config: config,
	}

	metadata.session, err = client.NewHTTPClient(metadata.config.httpConfig)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot create influx client for run %s", runID)
	}

	if conf.InfluxDBCreateDatabase.Value() {
		response, err := metadata.session.Query(client.Query{
			Command:  fmt.Sprintf("CREATE DATABASE %s", config.dbName),
			Database: ""})
		if err != nil {
			return nil, errors.Wrapf(err, "cannot create influx database for run %s", runID)
		}
		if response.Error() != nil {
			return nil, errors.Wrapf(response.Error(), "response contains error for run %s", runID)
		}
	}

	return metadata, nil
}

// influxDBStoreMap writes metadata to the database with tags attached to it.
func influxDBStoreMap(m *InfluxDB, metadata map[string]string, kind string) error {
	batch, err := client.NewBatchPoints(client.BatchPointsConfig{
		Database:  m.config.dbName,
		Precision: "ns",
	})
	if err != nil {
		return errors.Wrapf(err, "cannot create batch points for metadata of kind %q", kind)
	}

	tags := map[string]string{
		"run_id": m.runID,
		"kind":   kind,
	}
	fields := map[string]interface{}{}
	for key, value := range metadata {
		fields[key] = value
	}

	point, err := client.NewPoint(influxMetadata, tags, fields, time.Now())
	if err != nil {
		return errors.Wrapf(err, "cannot create metadata point of kind %q", kind)
	}
	batch.AddPoint(point)

	err = m.session.Write(batch)
	return errors.Wrapf(err, "cannot publish metadata of kind %q", kind)
}

// Record stores a key and value and associates them with the run id.
func (m *InfluxDB) Record(key, value, kind string) error {
	return influxDBStoreMap(m, map[string]string{key: value}, kind)
}

// RecordMap stores a key and value map and associates it with the run id.
func (m *InfluxDB) RecordMap(metadata map[string]string, kind string) error {
	return influxDBStoreMap(m, metadata, kind)
}

// GetByKind retrieves a single metadata kind from the database.
// Returns an error if no kind or too many groups are found.
func (m *InfluxDB) GetByKind(kind string) (map[string]string, error) {
	command := fmt.Sprintf("SELECT * FROM %s WHERE run_id = '%s' AND kind = '%s'", influxMetadata, m.runID, kind)
	response, err := m.session.Query(client.Query{
		Command:  command,
		Database: m.config.dbName,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "cannot retrieve metadata of kind %q", kind)
	}
	if response.Error() != nil {
		return nil, errors.Wrapf(response.Error(), "cannot retrieve metadata of kind %q", kind)
	}

	if len(response.Results) != 1 || len(response.Results[0].Series) != 1 {
		return nil, fmt.Errorf("cannot retrieve metadata for run id %q and kind %q", m.runID, kind)
	}

	series := response.Results[0].Series[0]
	if len(series.Values) != 1 {
		return nil, fmt.Errorf("cannot retrieve metadata for run id %q and kind %q", m.runID, kind)
	}

	metadata := map[string]string{}
	for i, column := range series.Columns {
		switch column {
		case "time", "run_id", "kind":
			continue
		}
		if value := series.Values[0][i]; value != nil {
			metadata[column] = fmt.Sprintf("%v", value)
		}
	}
	return metadata, nil
}

// Clear deletes all metadata entries associated with the current run id.
func (m *InfluxDB) Clear() error {
	response, err := m.session.Query(client.Query{
		Command:  fmt.Sprintf("DELETE FROM %s WHERE run_id = '%s'", influxMetadata, m.runID),
		Database: m.config.dbName,
	})
	if err != nil {
		return errors.Wrap(err, "cannot clear metadata")
	}
	return errors.Wrap(response.Error(), "cannot clear metadata")
}
