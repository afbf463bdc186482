// Package cli implements the kdiag command line tool.
package cli

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/kdiag/config"
)

// Exit codes for CLI commands.
const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
)

// rootOptions carries state shared by every subcommand
type rootOptions struct {
	configPath string
	verbose    bool
	noColor    bool

	cfg config.Config
	log *zap.Logger
}

// NewRootCmd creates the kdiag command tree
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{log: zap.NewNop()}

	cmd := &cobra.Command{
		Use:   "kdiag",
		Short: "Exercise a bounded kernel-style diagnostic log",
		Long: `kdiag drives a fixed-size, severity-filtered circular log through a
printk-style front end. Messages are rendered into a bounded scratch
buffer, stored with eviction of the oldest entry, and read back newest
first through a severity ceiling.`,
		SilenceUsage:  true,
		SilenceErrors: true,

		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.setup()
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = opts.log.Sync()
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "path to a YAML config file")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log CLI activity to stderr")
	flags.BoolVar(&opts.noColor, "no-color", false, "disable colored table output")

	cmd.AddCommand(
		newEmitCmd(opts),
		newFormatCmd(opts),
		newConvCmd(opts),
		newLevelsCmd(opts),
	)
	return cmd
}

// setup loads configuration and builds the CLI logger
func (o *rootOptions) setup() error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	o.cfg = cfg

	if o.noColor {
		text.DisableColors()
	}

	log, err := newZapLogger(o.verbose || cfg.Development)
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	o.log = log
	o.log.Debug("configuration loaded",
		zap.String("path", o.configPath),
		zap.String("level", cfg.Level),
		zap.Int("capacity", cfg.Capacity),
		zap.Int("message_len", cfg.MessageLen),
	)
	return nil
}

// newZapLogger logs to stderr; development mode is human readable and
// includes debug output
func newZapLogger(development bool) (*zap.Logger, error) {
	var zc zap.Config
	if development {
		zc = zap.NewDevelopmentConfig()
	} else {
		zc = zap.NewProductionConfig()
		zc.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		zc.Sampling = nil
	}
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}
	return zc.Build()
}

// Execute runs the CLI and returns the process exit code
func Execute() int {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return ExitCodeError
	}
	return ExitCodeSuccess
}
