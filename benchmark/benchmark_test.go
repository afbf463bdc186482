package benchmark

import (
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/philipp01105/kdiag/core"
	"github.com/philipp01105/kdiag/formatter"
	"github.com/philipp01105/kdiag/handler"
	"github.com/philipp01105/kdiag/handler/consolehandler"
	"github.com/philipp01105/kdiag/logger"
	"github.com/philipp01105/kdiag/logstore"
	"github.com/philipp01105/kdiag/numconv"
)

var (
	sinkInt   int
	sinkBytes []byte
)

// Benchmark the printk path without any mirror handler
func BenchmarkPrintkStoreOnly(b *testing.B) {
	l := logger.NewBuilder().Build()

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		l.Printk(logger.KernErr+"link %s down: %d", logger.Str("eth0"), logger.Int(-3))
	}
}

// Benchmark the printk path with a no-op mirror
func BenchmarkPrintkNoopHandler(b *testing.B) {
	l := logger.NewBuilder().WithHandler(newNoopHandler()).Build()

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		l.Printk(logger.KernErr+"link %s down: %d", logger.Str("eth0"), logger.Int(-3))
	}
}

func BenchmarkLogLevels(b *testing.B) {
	l := logger.NewBuilder().Build()
	emit := map[string]func(string, ...core.Arg){
		"Emerg":   l.Emerg,
		"Err":     l.Err,
		"Warning": l.Warning,
		"Debug":   l.Debug,
	}
	for name, fn := range emit {
		b.Run(name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				fn("level message")
			}
		})
	}
}

func BenchmarkBufferSizes(b *testing.B) {
	long := strings.Repeat("x", 512)
	for _, size := range []int{16, 82, 256, 1024} {
		b.Run(fmt.Sprintf("size_%d", size), func(b *testing.B) {
			l := logger.NewBuilder().
				WithBufferSize(size).
				WithStore(logstore.New(logstore.WithMessageLen(size))).
				Build()
			b.ResetTimer()
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				l.Info("%s", logger.Str(long))
			}
		})
	}
}

func BenchmarkRenderSpecifiers(b *testing.B) {
	var buf [82]byte
	cases := []struct {
		name   string
		format string
		args   []core.Arg
	}{
		{"plain", "no conversions at all", nil},
		{"decimal", "%d %u", []core.Arg{logger.Int32(-12345), logger.Uint32(67890)}},
		{"long_long", "%lld %llu", []core.Arg{logger.Int64(-1 << 50), logger.Uint64(1 << 63)}},
		{"hex", "%x %X", []core.Arg{logger.Hex(0xdeadbeef), logger.Hex(0xc0ffee)}},
		{"string", "%s", []core.Arg{logger.Str("a moderately sized string argument")}},
		{"pointer_dump", "%p %ph", []core.Arg{logger.Ptr(0xb8000), logger.Mem([]byte{1, 2, 3, 4})}},
	}
	for _, c := range cases {
		b.Run(c.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				sinkInt = formatter.Render(buf[:], c.format, c.args...)
			}
		})
	}
}

func BenchmarkNumconv(b *testing.B) {
	dst := make([]byte, 0, 64)
	alphabets := map[string]numconv.Alphabet{
		"binary":  numconv.Binary,
		"decimal": numconv.Decimal,
		"hex":     numconv.HexLower,
	}
	for name, a := range alphabets {
		b.Run(name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				sinkBytes = numconv.AppendUint64(dst[:0], uint64(i)*2654435761, a)
			}
		})
	}
}

func BenchmarkStoreWriteEvicting(b *testing.B) {
	s := logstore.New(logstore.WithCapacity(5), logstore.WithMessageLen(10))

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = s.Write(core.LevelErr, "a message long enough to truncate")
	}
}

func BenchmarkStoreReadSession(b *testing.B) {
	s := logstore.New(logstore.WithCapacity(64))
	for i := 0; i < 64; i++ {
		_, _ = s.Write(core.Level(i%8+1), "entry")
	}

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if err := s.ReadStart(core.LevelWarning); err != nil {
			b.Fatal(err)
		}
		for {
			if _, err := s.ReadNext(); err != nil {
				break
			}
		}
		s.ReadEnd()
	}
}

func BenchmarkFormatters(b *testing.B) {
	entry := core.Entry{Level: core.LevelErr, Message: "disk \"sda\" failed"}
	formatters := map[string]formatter.Formatter{
		"text": formatter.NewTextFormatter(formatter.Config{ShowPriority: true}),
		"json": formatter.NewJSONFormatter(formatter.Config{}),
	}
	for name, f := range formatters {
		b.Run(name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				sinkBytes, _ = f.Format(&entry)
			}
		})
	}
}

func BenchmarkMultiHandlerCount(b *testing.B) {
	for _, count := range []int{1, 2, 4, 8} {
		b.Run(fmt.Sprintf("handlers_%d", count), func(b *testing.B) {
			hs := make([]handler.Handler, count)
			for i := range hs {
				hs[i] = consolehandler.New(consolehandler.Config{Writer: io.Discard})
			}
			multi := handler.NewMultiHandler(hs...)
			defer multi.Close()
			entry := core.Entry{Level: core.LevelInfo, Message: "fan out"}

			b.ResetTimer()
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = multi.Handle(entry)
			}
		})
	}
}

func BenchmarkDump(b *testing.B) {
	s := logstore.New(logstore.WithCapacity(32))
	for i := 0; i < 32; i++ {
		_, _ = s.Write(core.LevelErr, "entry")
	}
	h := newNoopHandler()

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkInt, _ = handler.Dump(s, core.LevelDebug, h)
	}
}
