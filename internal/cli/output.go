package cli

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/philipp01105/kdiag/config"
	"github.com/philipp01105/kdiag/core"
	"github.com/philipp01105/kdiag/formatter"
	"github.com/philipp01105/kdiag/handler"
	"github.com/philipp01105/kdiag/handler/consolehandler"
	"github.com/philipp01105/kdiag/logstore"
)

// createTable creates a new table with standard styling
func createTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	return t
}

func header(cols ...string) table.Row {
	row := make(table.Row, len(cols))
	for i, c := range cols {
		row[i] = text.FgHiCyan.Sprint(c)
	}
	return row
}

// levelColor picks a color by severity
func levelColor(l core.Level) text.Colors {
	switch {
	case l.AtLeast(core.LevelErr):
		return text.Colors{text.FgHiRed}
	case l == core.LevelWarning:
		return text.Colors{text.FgYellow}
	case l == core.LevelDebug:
		return text.Colors{text.FgHiBlack}
	default:
		return text.Colors{text.FgGreen}
	}
}

// dumpStore writes every entry at least as severe as level, newest first
func dumpStore(w io.Writer, store *logstore.Store, level core.Level, cfg config.Config) (int, error) {
	if cfg.Output == config.OutputTable {
		return dumpTable(w, store, level)
	}

	var f formatter.Formatter
	if cfg.Output == config.OutputJSON {
		f = formatter.NewJSONFormatter(formatter.Config{ShowPriority: cfg.ShowPriority})
	} else {
		f = formatter.NewTextFormatter(formatter.Config{ShowPriority: cfg.ShowPriority})
	}

	h := consolehandler.New(consolehandler.Config{Writer: w, Formatter: f})
	defer h.Close()
	return handler.Dump(store, level, h)
}

func dumpTable(w io.Writer, store *logstore.Store, level core.Level) (int, error) {
	t := createTable(w)
	t.AppendHeader(header("#", "PRIO", "LEVEL", "MESSAGE"))

	n, err := handler.Dump(store, level, handler.Func(func(e core.Entry) error {
		t.AppendRow(table.Row{
			t.Length() + 1,
			e.Level.Priority(),
			levelColor(e.Level).Sprint(e.Level.String()),
			e.Message,
		})
		return nil
	}))
	if err != nil {
		return n, err
	}

	if n == 0 {
		fmt.Fprintln(w, text.FgYellow.Sprint("No entries"))
		return 0, nil
	}
	t.Render()
	return n, nil
}

func statsTable(w io.Writer, s logstore.Stats, live, capacity int) {
	t := createTable(w)
	t.AppendHeader(header("WRITTEN", "TRUNCATED", "EVICTED", "REJECTED", "LIVE"))
	t.AppendRow(table.Row{s.Written, s.Truncated, s.Evicted, s.Rejected, fmt.Sprintf("%d/%d", live, capacity)})
	t.Render()
}
