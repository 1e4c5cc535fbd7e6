package cmd

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var appVersion = "dev"

func SetVersion(v string) {
	appVersion = v
}

var (
	flagVerbose bool
	flagQuiet   bool
	flagConfig  string
)

var rootCmd = &cobra.Command{
	Use:   "nodehub",
	Short: "Turn any MCP server into workflow node bundles",
	Long:  "nodehub connects to an MCP server, extracts its tool schemas, and generates importable workflow node bundles.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.BoolVar(&flagVerbose, "verbose", false, "show detailed progress")
	pf.BoolVar(&flagQuiet, "quiet", false, "suppress all output except errors")
	pf.StringVar(&flagConfig, "config", "", "path to a nodehub config file (YAML or JSON)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.SetVersionTemplate(fmt.Sprintf("nodehub v%s\n", appVersion))
}

func Execute() error {
	rootCmd.Version = appVersion
	return rootCmd.Execute()
}

// newLogger builds the process logger. Diagnostics go to stderr so that
// stdout stays reserved for command output.
func newLogger() *zap.Logger {
	if flagQuiet {
		return zap.NewNop()
	}
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if flagVerbose {
		cfg = zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger.With(zap.String("run_id", uuid.NewString()))
}

// verbose prints a progress message when --verbose is set.
func verbose(format string, args ...any) {
	if flagVerbose && !flagQuiet {
		fmt.Printf(format+"\n", args...)
	}
}
