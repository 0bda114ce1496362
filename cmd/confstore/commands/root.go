// Package commands provides the CLI commands for confstore.
package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	confstore "github.com/telnet2/go-confstore"
	"github.com/telnet2/go-confstore/internal/logging"
)

var (
	// Version information set at build time
	Version   = "0.1.0"
	BuildTime = "dev"
)

// ExitUnhealthyConfig is the exit status for a configuration store
// that is unhealthy at startup. Distinct from the generic failure
// status so supervisors can tell a broken config apart from a failed
// command.
const ExitUnhealthyConfig = 3

// Global flags
var (
	configPath string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "confstore",
	Short: "confstore - inspect and edit JSON configuration files",
	Long: `confstore reads and writes JSON configuration files through
slash-delimited paths, e.g. /editor/tabSize. Input files may contain
comments and trailing commas; output is always plain JSON.`,
	Version: Version,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default: user config dir)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (DEBUG|INFO|WARN|ERROR)")

	rootCmd.SetVersionTemplate(fmt.Sprintf("confstore %s (%s)\n", Version, BuildTime))

	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(dumpCmd)
	rootCmd.AddCommand(resetCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// effectiveConfigPath returns the config file from the flag or the
// per-user default location.
func effectiveConfigPath() string {
	if configPath != "" {
		return configPath
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "config.json"
	}
	return filepath.Join(dir, "confstore", "config.json")
}

// openStore constructs the global store and wires logging from it. An
// unhealthy store at startup is fatal.
func openStore(persistOnClose bool) *confstore.Store {
	st := confstore.Open(effectiveConfigPath(), persistOnClose)

	cfg := logging.FromStore(st)
	if logLevel != "" {
		cfg.Level = logging.ParseLevel(logLevel)
	}
	if err := logging.Init(cfg); err != nil {
		logging.Warn().Err(err).Msg("log file sink unavailable")
	}

	if !st.IsHealthy() {
		logging.Error().Str("path", st.SourcePath()).Msg("configuration store is unhealthy")
		os.Exit(ExitUnhealthyConfig)
	}
	return st
}
