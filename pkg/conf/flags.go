package conf

import "time"

// Measurement flags.
var (
	// Duration represents the per-cell measurement window flag.
	Duration = NewDurationFlag("duration", "Target duration of a single measurement window", time.Second)
	// Runs represents the explicit repetition count flag. Zero enables calibration.
	Runs = NewIntFlag("nruns", "Explicit number of repetitions per cell (0 calibrates automatically)", 0)
	// Verbosity represents the progress logging level flag.
	Verbosity = NewIntFlag("verbosity", "Progress verbosity: 0 silent, 1 per procedure, 2 per cell", 2)
	// DisableGC represents the GC suppression flag.
	DisableGC = NewBoolFlag("disable_gc", "Stop the garbage collector inside measurement windows", true)
)

// Reporting flags.
var (
	// Unit represents the reporting unit flag.
	Unit = NewStringFlag("unit", "Reporting unit: sec, msec, usec, nsec, ups, kps, mps, gps", "sec")
	// CSVFile represents the CSV export path flag. Empty disables the export.
	CSVFile = NewStringFlag("csv_file", "Path for CSV export of the result table (empty disables)", "")
	// PrettyTable enables the boxed table view instead of the plain aligned one.
	PrettyTable = NewBoolFlag("pretty_table", "Render the result table with box drawing instead of plain alignment", false)
)

// Result and metadata storage flags.
var (
	// DefaultMetadataDB represents the metadata backend selection flag.
	DefaultMetadataDB = NewStringFlag("metadata_db", "Metadata and result storage backend: cassandra or influxdb", "cassandra")
	// StoreResults enables uploading measured cells to the selected backend.
	StoreResults = NewBoolFlag("store_results", "Upload measured cells and run metadata to the storage backend", false)

	// CassandraAddress represents the Cassandra address flag.
	CassandraAddress = NewStringFlag("cassandra_address", "Address of Cassandra DB endpoint", "127.0.0.1")
	// CassandraPort represents the Cassandra port flag.
	CassandraPort = NewIntFlag("cassandra_port", "Port of Cassandra DB endpoint", 9042)
	// CassandraUsername represents the Cassandra username flag.
	CassandraUsername = NewStringFlag("cassandra_username", "Username for Cassandra authentication", "")
	// CassandraPassword represents the Cassandra password flag.
	CassandraPassword = NewStringFlag("cassandra_password", "Password for Cassandra authentication", "")
	// CassandraKeyspaceName represents the Cassandra keyspace flag.
	CassandraKeyspaceName = NewStringFlag("cassandra_keyspace", "Keyspace for benchmark results and metadata", "benchlite")
	// CassandraCreateKeyspace makes the connector create the keyspace when missing.
	CassandraCreateKeyspace = NewBoolFlag("cassandra_create_keyspace", "Create the keyspace when it does not exist", true)
	// CassandraTimeout represents the Cassandra query timeout flag.
	CassandraTimeout = NewDurationFlag("cassandra_timeout", "Query timeout for Cassandra", 5*time.Second)
	// CassandraConnectionTimeout represents the Cassandra connection timeout flag.
	CassandraConnectionTimeout = NewDurationFlag("cassandra_connection_timeout", "Connection timeout for Cassandra", 5*time.Second)

	// InfluxDBAddress represents the InfluxDB address flag.
	InfluxDBAddress = NewStringFlag("influxdb_address", "Address of InfluxDB endpoint", "127.0.0.1")
	// InfluxDBPort represents the InfluxDB port flag.
	InfluxDBPort = NewIntFlag("influxdb_port", "Port of InfluxDB endpoint", 8086)
	// InfluxDBUsername represents the InfluxDB username flag.
	InfluxDBUsername = NewStringFlag("influxdb_username", "Username for InfluxDB authentication", "")
	// InfluxDBPassword represents the InfluxDB password flag.
	InfluxDBPassword = NewStringFlag("influxdb_password", "Password for InfluxDB authentication", "")
	// InfluxDBName represents the InfluxDB database name flag.
	InfluxDBName = NewStringFlag("influxdb_name", "Database for benchmark results and metadata", "benchlite")
	// InfluxDBCreateDatabase makes the connector create the database when missing.
	InfluxDBCreateDatabase = NewBoolFlag("influxdb_create_database", "Create the database when it does not exist", true)
	// InfluxDBInsecureSkipVerify disables TLS certificate verification.
	InfluxDBInsecureSkipVerify = NewBoolFlag("influxdb_insecure_skip_verify", "Skip TLS certificate verification for InfluxDB", false)
)
