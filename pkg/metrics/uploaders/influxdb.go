package uploaders

import (
	"fmt"
	"time"

	client "github.com/influxdata/influxdb1-client/v2"
	"github.com/pkg/errors"

	"github.com/lindahua/benchlite/pkg/conf"
	"github.com/lindahua/benchlite/pkg/metrics"
)

const resultsMeasurement = "benchmark"

// InfluxDBConfig holds the configuration of the InfluxDB results uploader.
type InfluxDBConfig struct {
	HTTPConfig     client.HTTPConfig
	DBName         string
	CreateDatabase bool
}

// DefaultInfluxDBConfig applies the InfluxDB settings from the command line
// flags and environment variables.
func DefaultInfluxDBConfig() InfluxDBConfig {
	return InfluxDBConfig{
		DBName:         conf.InfluxDBName.Value(),
		CreateDatabase: conf.InfluxDBCreateDatabase.Value(),
		HTTPConfig: client.HTTPConfig{
			Addr:               fmt.Sprintf("http://%s:%d", conf.InfluxDBAddress.Value(), conf.InfluxDBPort.Value()),
			Username:           conf.InfluxDBUsername.Value(),
			Password:           conf.InfluxDBPassword.Value(),
			InsecureSkipVerify: conf.InfluxDBInsecureSkipVerify.Value(),
		},
	}
}

type influxDB struct {
	session client.Client
	config  InfluxDBConfig
}

// NewInfluxDB creates a new InfluxDB results uploader.
func NewInfluxDB(config InfluxDBConfig) (metrics.Uploader, error) {
	session, err := client.NewHTTPClient(config.HTTPConfig)
	if err != nil {
		return nil, errors.Wrap(err, "cannot create influx client")
	}

	if config.CreateDatabase {
		response, err := session.Query(client.Query{
			Command: fmt.Sprintf("CREATE DATABASE %s", config.DBName),
		})
		if err != nil {
			return nil, errors.Wrap(err, "cannot create influx database")
		}
		if response.Error() != nil {
			return nil, errors.Wrap(response.Error(), "create database response contains error")
		}
	}

	return &influxDB{session: session, config: config}, nil
}

// SendResult implements the metrics.Uploader interface.
func (i *influxDB) SendResult(result metrics.Result) error {
	batch, err := client.NewBatchPoints(client.BatchPointsConfig{
		Database:  i.config.DBName,
		Precision: "ns",
	})
	if err != nil {
		return errors.Wrap(err, "cannot create batch points")
	}

	tags := map[string]string{
		"run_id": result.Tags.RunID,
		"proc":   result.Tags.Procedure,
		"cfg":    result.Tags.Configuration,
	}
	fields := map[string]interface{}{
		"length":         result.ProblemLength,
		"nruns":          result.Runs,
		"elapsed":        result.ElapsedSeconds,
		"seconds_per_op": result.SecondsPerOp(),
	}

	point, err := client.NewPoint(resultsMeasurement, tags, fields, time.Now())
	if err != nil {
		return errors.Wrap(err, "cannot create result point")
	}
	batch.AddPoint(point)

	err = i.session.Write(batch)
	return errors.Wrapf(err, "cannot publish result for procedure %q and configuration %q",
		result.Tags.Procedure, result.Tags.Configuration)
}
