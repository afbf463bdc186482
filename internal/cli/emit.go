package cli

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/philipp01105/kdiag/config"
	"github.com/philipp01105/kdiag/core"
	"github.com/philipp01105/kdiag/handler"
	"github.com/philipp01105/kdiag/handler/zaphandler"
	"github.com/philipp01105/kdiag/logger"
)

type emitOptions struct {
	level      string
	capacity   int
	messageLen int
	bufferSize int
	output     string
	priority   bool
	mirror     bool
	readLevel  string
	stats      bool
}

func newEmitCmd(root *rootOptions) *cobra.Command {
	eo := &emitOptions{}

	cmd := &cobra.Command{
		Use:   "emit [MESSAGE...]",
		Short: "Write messages through printk and read the store back",
		Long: `Write each MESSAGE through printk, then dump the store newest first.

A message may start with a syslog style priority "<N>", N from 0 (EMERG)
to 7 (DEBUG); without one the default level applies. Messages are printk
formats without arguments, so conversions stay visible as written. With
no arguments, messages are read from stdin one per line.`,
		Example: `  kdiag emit "<3>disk failure" "<6>link up" "no prefix"
  dmesg | kdiag emit --capacity 20 --read-level err -o table`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEmit(cmd, root, eo, args)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&eo.level, "level", "l", "", "default level for unprefixed messages")
	f.IntVar(&eo.capacity, "capacity", 0, "number of entries the store keeps")
	f.IntVar(&eo.messageLen, "message-len", 0, "maximum stored message length")
	f.IntVar(&eo.bufferSize, "buffer-size", 0, "printk scratch buffer size")
	f.StringVarP(&eo.output, "output", "o", "", "output format: text, json or table")
	f.BoolVar(&eo.priority, "priority", false, "prefix text output with <N>")
	f.BoolVar(&eo.mirror, "mirror", false, "also log stored entries through zap")
	f.StringVarP(&eo.readLevel, "read-level", "r", "debug", "least severe level to show")
	f.BoolVar(&eo.stats, "stats", false, "print store counters after the dump")
	return cmd
}

// apply overlays explicitly set flags on the loaded configuration
func (eo *emitOptions) apply(cmd *cobra.Command, cfg config.Config) config.Config {
	flags := cmd.Flags()
	if flags.Changed("level") {
		cfg.Level = eo.level
	}
	if flags.Changed("capacity") {
		cfg.Capacity = eo.capacity
	}
	if flags.Changed("message-len") {
		cfg.MessageLen = eo.messageLen
	}
	if flags.Changed("buffer-size") {
		cfg.BufferSize = eo.bufferSize
	}
	if flags.Changed("output") {
		cfg.Output = eo.output
	}
	if flags.Changed("priority") {
		cfg.ShowPriority = eo.priority
	}
	if flags.Changed("mirror") {
		cfg.Mirror = eo.mirror
	}
	return cfg
}

func runEmit(cmd *cobra.Command, root *rootOptions, eo *emitOptions, args []string) error {
	cfg := eo.apply(cmd, root.cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}
	readLevel, err := core.ParseLevel(eo.readLevel)
	if err != nil {
		return err
	}

	messages := args
	if len(messages) == 0 {
		scanner := bufio.NewScanner(cmd.InOrStdin())
		for scanner.Scan() {
			messages = append(messages, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
	}

	var mirror handler.Handler
	if cfg.Mirror {
		mirror = zaphandler.New(root.log.Named("mirror"))
	}

	store := cfg.NewStore()
	log := logger.NewBuilder().
		WithStore(store).
		WithBufferSize(cfg.BufferSize).
		WithHandler(mirror).
		Build()
	defer func() { _ = log.Close() }()

	for _, m := range messages {
		log.Printk(kernPrefix(m))
	}
	root.log.Debug("messages emitted",
		zap.Int("count", len(messages)),
		zap.Int("live", store.Len()),
		zap.Uint64("dropped", log.Dropped()),
	)

	out := cmd.OutOrStdout()
	if _, err := dumpStore(out, store, readLevel, cfg); err != nil {
		return err
	}
	if eo.stats {
		statsTable(out, store.Stats(), store.Len(), store.Cap())
	}
	return nil
}
