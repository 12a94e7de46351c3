// Package internal holds the process wide configuration of comms.
//
// Every setting is exposed as a persistent command line flag whose default
// is read from the environment variable named by the flag.
package internal

import (
	"os"
	"strconv"

	"comms/internal/pkg/validate"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// Flag is a string command line flag backed by an environment variable.
type Flag struct {
	Name    string
	EnvVar  string
	Default string
	Usage   string

	value string
}

// Value returns the current value of the flag.
func (f *Flag) Value() string {
	return f.value
}

// Flag definitions.
var (
	EnvFlag = Flag{
		Name:    "env",
		EnvVar:  "COMMS_ENV",
		Default: "development",
		Usage:   "The environment to run in (development or production).",
	}
	LogLevelFlag = Flag{
		Name:    "log-level",
		EnvVar:  "COMMS_LOG_LEVEL",
		Default: "info",
		Usage:   "The log level (trace, debug, info, warn or error).",
	}
	ClientIPFlag = Flag{
		Name:    "client-ip",
		EnvVar:  "COMMS_CLIENT_IP",
		Default: "10.0.0.1",
		Usage:   "The ip the client announces in its handshakes.",
	}
	ServerAddrFlag = Flag{
		Name:    "server-addr",
		EnvVar:  "COMMS_SERVER_ADDR",
		Default: "197.0.0.1",
		Usage:   "The address the client opens a connection to.",
	}
	ServerNameFlag = Flag{
		Name:    "server-name",
		EnvVar:  "COMMS_SERVER_NAME",
		Default: "TestServer",
		Usage:   "The name of the server behind the connection.",
	}
	ServerLimitFlag = Flag{
		Name:    "server-limit",
		EnvVar:  "COMMS_SERVER_LIMIT",
		Default: "2",
		Usage:   "The number of posts the server accepts.",
	}
)

// Validated configuration, populated by ValidateEnv.
var (
	Env         string
	LogLevel    string
	ClientIP    string
	ServerAddr  string
	ServerName  string
	ServerLimit uint32
)

type environment struct {
	Env         string `validate:"oneof=development production"`
	LogLevel    string `validate:"oneof=trace debug info warn error"`
	ClientIP    string `validate:"required"`
	ServerAddr  string `validate:"required,ip|hostname_rfc1123"`
	ServerName  string `validate:"required"`
	ServerLimit string `validate:"required,number"`
}

// RegisterCommandFlags registers the flags as persistent flags of cmd.
func RegisterCommandFlags(cmd *cobra.Command, flags []*Flag) error {
	for _, f := range flags {
		if cmd.PersistentFlags().Lookup(f.Name) != nil {
			return errors.Errorf("flag %s already registered", f.Name)
		}
		def := f.Default
		if v, ok := os.LookupEnv(f.EnvVar); ok {
			def = v
		}
		cmd.PersistentFlags().StringVar(&f.value, f.Name, def, f.Usage)
	}
	return nil
}

// ValidateEnv validates the flag values and publishes them.
func ValidateEnv() error {
	env := environment{
		Env:         EnvFlag.value,
		LogLevel:    LogLevelFlag.value,
		ClientIP:    ClientIPFlag.value,
		ServerAddr:  ServerAddrFlag.value,
		ServerName:  ServerNameFlag.value,
		ServerLimit: ServerLimitFlag.value,
	}
	if err := validate.Validate().Struct(env); err != nil {
		return errors.Wrap(err, "validate environment failed")
	}
	limit, err := strconv.ParseUint(env.ServerLimit, 10, 32)
	if err != nil {
		return errors.Wrap(err, "parse server limit failed")
	}
	Env = env.Env
	LogLevel = env.LogLevel
	ClientIP = env.ClientIP
	ServerAddr = env.ServerAddr
	ServerName = env.ServerName
	ServerLimit = uint32(limit)
	return nil
}
