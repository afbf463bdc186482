package cli

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/philipp01105/kdiag/core"
)

func newLevelsCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "levels",
		Short: "List severity levels and their printk prefixes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			t := createTable(cmd.OutOrStdout())
			t.AppendHeader(header("LEVEL", "VALUE", "PRIORITY", "PREFIX", "DEFAULT"))
			def := root.cfg.DefaultLevel()
			for l := core.LevelEmerg; l <= core.LevelDebug; l++ {
				mark := ""
				if l == def {
					mark = "*"
				}
				t.AppendRow(table.Row{
					levelColor(l).Sprint(l.String()),
					int(l),
					l.Priority(),
					fmt.Sprintf(`\001%d`, l.Priority()),
					mark,
				})
			}
			t.Render()
			return nil
		},
	}
}
