package logger_test

import (
	"fmt"
	"os"

	"github.com/philipp01105/kdiag/core"
	"github.com/philipp01105/kdiag/formatter"
	"github.com/philipp01105/kdiag/handler/consolehandler"
	"github.com/philipp01105/kdiag/logger"
	"github.com/philipp01105/kdiag/logstore"
)

// Emit a tagged message and read it back from the store.
func Example() {
	log := logger.NewBuilder().
		WithStore(logstore.New(logstore.WithMessageLen(80))).
		Build()

	log.Printk(logger.KernErr+"disk %s failed: %d", logger.Str("sda"), logger.Int(-5))
	log.Printk("no prefix uses the default")

	entries, _ := log.Store().Recent(core.LevelDebug)
	for _, e := range entries {
		fmt.Println(e.Level, e.Message)
	}
	// Output:
	// WARNING no prefix uses the default
	// ERR disk sda failed: -5
}

// Mirror every stored entry to stdout.
func ExampleBuilder_WithHandler() {
	ch := consolehandler.New(consolehandler.Config{
		Writer:    os.Stdout,
		Formatter: formatter.NewTextFormatter(formatter.Config{ShowPriority: true}),
	})

	log := logger.NewBuilder().
		WithHandler(ch).
		Build()
	defer log.Close()

	log.Crit("temp %uC", logger.Uint32(97))
	log.Printk(logger.KernInfo + "a message too long for the store")
	// Output:
	// <2>[CRIT] temp 97C
	// <6>[INFO] a messa...
}

// Printf accepts ordinary Go values.
func ExampleLogger_Printf() {
	log := logger.NewBuilder().
		WithStore(logstore.New(logstore.WithMessageLen(40))).
		Build()

	log.Printf(logger.KernNotice+"%s up, mtu %d, id %x", "eth0", 1500, uint32(0xbeef))

	entries, _ := log.Store().Recent(core.LevelDebug)
	fmt.Println(entries[0].Message)
	// Output: eth0 up, mtu 1500, id beef
}
