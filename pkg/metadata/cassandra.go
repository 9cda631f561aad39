package metadata

import (
	"fmt"
	"time"

	"github.com/gocql/gocql"
	"github.com/pkg/errors"

	"github.com/lindahua/benchlite/pkg/conf"
)

// CassandraConfig encodes the settings for connecting to the database.
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

// Cassandra is a helper struct which keeps the Cassandra session alive,
// holds the active configuration and the run id to tag the metadata with.
type Cassandra struct {
	runID   string
	config  CassandraConfig
	session *gocql.Session
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

// NewCassandra returns the Metadata helper from a run id and configuration.
func NewCassandra(runID string, config CassandraConfig) (Metadata, error) {
	metadata := &Cassandra{
		runID:  runID,
		config: config,
	}
	err := connect(metadata)
	if err != nil {
		return nil, err
	}

	return metadata, nil
}

// getClusterConfig prepares configuration of the Cassandra cluster.
func getClusterConfig(m *Cassandra) *gocql.ClusterConfig {
	cluster := gocql.NewCluster(m.config.Address)

	cluster.Consistency = gocql.LocalOne
	cluster.SerialConsistency = gocql.LocalSerial

	cluster.ProtoVersion = 4
	cluster.Port = m.config.Port
	cluster.ConnectTimeout = m.config.ConnectionTimeout
	cluster.Timeout = m.config.Timeout

	return cluster
}

func createKeyspace(m *Cassandra, clusterConfig *gocql.ClusterConfig) error {
	session, err := clusterConfig.CreateSession()
	if err != nil {
		return errors.Wrap(err, "cannot create session for creating keyspace")
	}
	defer session.Close()

	query := fmt.Sprintf("CREATE KEYSPACE IF NOT EXISTS %s WITH REPLICATION = {'class': 'SimpleStrategy', 'replication_factor': 1};", m.config.KeyspaceName)

	return errors.Wrap(session.Query(query).Exec(), "cannot create keyspace")
}

// connect creates a session to the Cassandra cluster. This function should
// only be called once.
func connect(m *Cassandra) error {
	cluster := getClusterConfig(m)

	if m.config.Username != "" && m.config.Password != "" {
		cluster.Authenticator = gocql.PasswordAuthenticator{
			Username: m.config.Username,
			Password: m.config.Password,
		}
	}

	if m.config.CreateKeyspace {
		if err := createKeyspace(m, cluster); err != nil {
			return err
		}
	}

	cluster.Keyspace = m.config.KeyspaceName

	session, err := cluster.CreateSession()
	if err != nil {
		return err
	}

	m.session = session

	if err = session.Query("CREATE TABLE IF NOT EXISTS metadata (run_id text, kind text, time timestamp, timeuuid TIMEUUID, metadata map<text,text>, PRIMARY KEY ((run_id), timeuuid)) WITH CLUSTERING ORDER BY (timeuuid DESC);").Exec(); err != nil {
		return err
	}

	return nil
}

func storeMap(m *Cassandra, metadata map[string]string, kind string) error {
	err := m.session.Query(`INSERT INTO metadata (run_id, kind, time, timeuuid, metadata) VALUES (?, ?, ?, ?, ?)`, m.runID, kind, time.Now(), gocql.TimeUUID(), metadata).Exec()
	return errors.Wrapf(err, "cannot publish metadata of kind %q", kind)
}

// Record stores a key and value and associates them with the run id.
func (m *Cassandra) Record(key, value, kind string) error {
	metadata := map[string]string{}
	metadata[key] = value
	return storeMap(m, metadata, kind)
}

// RecordMap stores a key and value map and associates it with the run id.
func (m *Cassandra) RecordMap(metadata map[string]string, kind string) error {
	return storeMap(m, metadata, kind)
}

// GetByKind retrieves a single metadata kind from the database.
// Returns an error if no kind or too many groups are found.
func (m *Cassandra) GetByKind(kind string) (map[string]string, error) {
	var metadata map[string]string

	maps := []map[string]string{}

	iter := m.session.Query(`SELECT metadata FROM metadata WHERE run_id = ? AND kind = ? ALLOW FILTERING`, m.runID, kind).Iter()
	for iter.Scan(&metadata) {
		maps = append(maps, metadata)
	}
	if err := iter.Close(); err != nil {
		return nil, err
	}

	// Make sure that only one map per run exists.
	if len(maps) != 1 {
		return nil, fmt.Errorf("cannot retrieve metadata for run id %q and kind %q", m.runID, kind)
	}
	return maps[0], nil
}

// Clear deletes all metadata entries associated with the current run id.
func (m *Cassandra) Clear() error {
	return m.session.Query(`DELETE FROM metadata WHERE run_id = ?`, m.runID).Exec()
}
