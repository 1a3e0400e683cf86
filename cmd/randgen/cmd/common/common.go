// Package common implements the configuration and initialization shared
// by all randgen sub-commands.
package common

import (
	"fmt"
	"os"
	"strings"
	"sync"

	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/oasisprotocol/randgen/common/logging"
)

const (
	// CfgConfigFile is the flag used to specify a config file.
	CfgConfigFile = "config"

	envPrefix = "RANDGEN"
)

var (
	// RootFlags has the flags common to every sub-command.
	RootFlags = flag.NewFlagSet("", flag.ContinueOnError)

	cfgFile string

	initOnce sync.Once
	initErr  error

	rootLog = logging.GetLogger("cmd/randgen")
)

// InitConfig initializes the command configuration: the config file if one
// is given, then RANDGEN_ prefixed environment variables, then logging.
//
// WARNING: This is exposed for the benefit of tests and the interface is
// not guaranteed to be stable.
func InitConfig() {
	initOnce.Do(func() {
		initErr = initConfig()
	})
	if initErr != nil {
		EarlyLogAndExit(initErr)
	}
}

func initConfig() error {
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if cfgFile != "" {
		// Read the config file if one is provided, otherwise it is assumed
		// that the combination of default values, command line flags and
		// env vars is sufficient.
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if err := initLogging(); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}

	rootLog.Debug("common initialization complete",
		"config_file", cfgFile,
	)
	return nil
}

// Cleanup releases what InitConfig acquired, such as the log file. It is
// called once the command has finished.
func Cleanup() {
	closeLogFile()
}

// EarlyLogAndExit logs the error and exits.
//
// Note: This routine should only be used prior to the logging system
// being initialized.
func EarlyLogAndExit(err error) {
	_, _ = fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

func init() {
	RootFlags.StringVar(&cfgFile, CfgConfigFile, "", "config file")
	initLoggingFlags()
	initMetricsFlags()

	RootFlags.AddFlagSet(loggingFlags)
	RootFlags.AddFlagSet(metricsFlags)
}
