// conf is a helper for benchlite configuration from both the command line
// interface and environment variables.
// It gives ability to register arguments which will be fetched from
// CLI input OR environment variable.
// By default it registers the following option:
// <BENCHLITE_LOG> --log <Log level: debug, info, warn, error, fatal, panic> Default: error
//
// When `ParseEnv` is executed, only the environment arguments are parsed and
// ready to be used in flag variables. It can be run multiple times.
//
// When `ParseFlags` is executed, the arguments from both CLI and Env are
// parsed. In case of --help option it prints help. It is recommended to run
// it only once, after all packages registered their options, so the help
// output shows the whole configuration.
package conf

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"
)

// EnvironmentPrefix is prepended to upper-cased flag names to form the
// corresponding environment variable, e.g. "cassandra_address" becomes
// "BENCHLITE_CASSANDRA_ADDRESS".
const EnvironmentPrefix = "BENCHLITE"

var (
	app = kingpin.New("benchlite", "No help available")

	logLevelFlag = NewStringFlag(
		"log",
		"Log level: debug, info, warn, error, fatal, panic",
		"error",
	)
	isEnvParsed = false
)

// SetHelp sets the help message for the CLI.
// We need to expose this function so other packages can set the app help.
func SetHelp(help string) {
	app.Help = help
}

// SetAppName sets application name for CLI output.
// We need to expose this function so other packages can set the app name.
func SetAppName(name string) {
	app.Name = name
}

// AppName returns specified app name.
func AppName() string {
	return app.Name
}

// LogLevel returns the configured log level from the input option or env
// variable. If the value cannot be parsed, it falls back to the default.
func LogLevel() logrus.Level {
	level, err := logrus.ParseLevel(logLevelFlag.Value())
	if err == nil {
		return level
	}

	level, err = logrus.ParseLevel(logLevelFlag.defaultValue)
	if err == nil {
		return level
	}

	// Programmer error.
	panic(errors.Wrap(err, "parsing log level failed"))
}

// ParseFlags parses both the command line flags of the process and
// environment variables.
func ParseFlags() error {
	_, err := app.Parse(os.Args[1:])
	if err == nil {
		isEnvParsed = true
		return nil
	}

	return errors.Wrap(err, "could not parse command line flags")
}

// ParseEnv parses the environment for arguments.
func ParseEnv() error {
	_, err := app.Parse([]string{})
	if err == nil {
		isEnvParsed = true
		return nil
	}

	return errors.Wrap(err, "could not parse environment flags")
}

// flagsDefinition returns name, current value, default and description for
// every registered flag, in registration order.
func flagsDefinition() (flags []struct{ Name, Value, Default, Help string }) {
	for _, model := range app.Model().Flags {
		// Skip kingpin builtin flags (--help and friends) which are not
		// compatible with environment based configuration.
		registered, ok := definedFlags[model.Name]
		if !ok {
			continue
		}

		flags = append(flags, struct{ Name, Value, Default, Help string }{
			Name:    model.Name,
			Help:    model.Help,
			Default: strings.Join(model.Default, ","),
			Value:   registered.stringValue(),
		})
	}

	return flags
}

// DumpConfig dumps environment based configuration with current values of
// flags.
func DumpConfig() string {
	return DumpConfigMap(nil)
}

// DumpConfigMap dumps environment based configuration with current values
// overwritten by the given map. Includes "allexport" directives for bash.
func DumpConfigMap(flagMap map[string]string) string {
	buffer := &bytes.Buffer{}

	buffer.WriteString("# Exported values.\n")
	buffer.WriteString("set -o allexport\n")

	for _, fd := range flagsDefinition() {
		fmt.Fprintf(buffer, "\n# %s\n", fd.Help)
		if fd.Default != "" {
			fmt.Fprintf(buffer, "# Default: %s\n", fd.Default)
		}

		value := fd.Value
		if mapValue, ok := flagMap[fd.Name]; ok {
			value = mapValue
		}

		fmt.Fprintf(buffer, "%s_%s=%v\n", EnvironmentPrefix, strings.ToUpper(fd.Name), value)
	}

	buffer.WriteString("set +o allexport")
	return buffer.String()
}

// GetFlags returns all registered flags as a map with current values.
func GetFlags() map[string]string {
	flagsMap := map[string]string{}
	for _, flag := range flagsDefinition() {
		flagsMap[flag.Name] = flag.Value
	}
	return flagsMap
}
