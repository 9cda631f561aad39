package uploaders

import (
	"fmt"
	"time"

	"github.com/gocql/gocql"
	"github.com/pkg/errors"

	"github.com/lindahua/benchlite/pkg/conf"
	"github.com/lindahua/benchlite/pkg/metrics"
)

const resultsTable = "results"

// CassandraConfig stores the Cassandra connection settings for the results
// uploader.
type CassandraConfig struct {
	Address           string
	Port              int
	Username          string
	Password          string
	KeyspaceName      string
	CreateKeyspace    bool
	Timeout           time.Duration
	ConnectionTimeout time.Duration
}

// DefaultCassandraConfig applies the Cassandra settings from the command
// line flags and environment variables.
func DefaultCassandraConfig() CassandraConfig {
	return CassandraConfig{
		Address:           conf.CassandraAddress.Value(),
		Port:              conf.CassandraPort.Value(),
		Username:          conf.CassandraUsername.Value(),
		Password:          conf.CassandraPassword.Value(),
		KeyspaceName:      conf.CassandraKeyspaceName.Value(),
		CreateKeyspace:    conf.CassandraCreateKeyspace.Value(),
		Timeout:           conf.CassandraTimeout.Value(),
		ConnectionTimeout: conf.CassandraConnectionTimeout.Value(),
	}
}

type cassandra struct {
	session  *gocql.Session
	keyspace string
}

// NewCassandra creates a new Cassandra results uploader. It connects to the
// cluster and makes sure the keyspace and results table exist.
func NewCassandra(config CassandraConfig) (metrics.Uploader, error) {
	cluster := gocql.NewCluster(config.Address)
	cluster.Port = config.Port
	cluster.ProtoVersion = 4
	cluster.Timeout = config.Timeout
	cluster.ConnectTimeout = config.ConnectionTimeout

	if config.Username != "" && config.Password != "" {
		cluster.Authenticator = gocql.PasswordAuthenticator{
			Username: config.Username,
			Password: config.Password,
		}
	}

	session, err := cluster.CreateSession()
	if err != nil {
		return nil, errors.Wrap(err, "creating gocql session failed")
	}

	if config.CreateKeyspace {
		query := fmt.Sprintf("CREATE KEYSPACE IF NOT EXISTS %s WITH REPLICATION = {'class': 'SimpleStrategy', 'replication_factor': 1};", config.KeyspaceName)
		if err := session.Query(query).Exec(); err != nil {
			session.Close()
			return nil, errors.Wrap(err, "cannot create keyspace")
		}
	}

	query := fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s.%s (run_id text, proc text, cfg text, length bigint, nruns bigint, elapsed double, PRIMARY KEY ((run_id), proc, cfg));", config.KeyspaceName, resultsTable)
	if err := session.Query(query).Exec(); err != nil {
		session.Close()
		return nil, errors.Wrap(err, "cannot create results table")
	}

	return &cassandra{session: session, keyspace: config.KeyspaceName}, nil
}

// SendResult implements the metrics.Uploader interface.
func (c *cassandra) SendResult(result metrics.Result) error {
	query := fmt.Sprintf("INSERT INTO %s.%s (run_id, proc, cfg, length, nruns, elapsed) VALUES (?, ?, ?, ?, ?, ?)", c.keyspace, resultsTable)
	err := c.session.Query(query,
		result.Tags.RunID,
		result.Tags.Procedure,
		result.Tags.Configuration,
		result.ProblemLength,
		result.Runs,
		result.ElapsedSeconds,
	).Exec()

	return errors.Wrapf(err, "cannot publish result for procedure %q and configuration %q",
		result.Tags.Procedure, result.Tags.Configuration)
}
