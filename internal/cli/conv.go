package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/philipp01105/kdiag/config"
	"github.com/philipp01105/kdiag/numconv"
)

type convOptions struct {
	alphabet string
	bits     int
	output   string
}

func newConvCmd(root *rootOptions) *cobra.Command {
	co := &convOptions{}

	cmd := &cobra.Command{
		Use:   "conv VALUE...",
		Short: "Convert integers to text in several radixes",
		Long: `Convert each VALUE (decimal, 0x hex, 0o octal or 0b binary) with the
radix-N converter. Negative values are converted as signed; --alphabet
adds a column for a custom digit set whose length is the radix.`,
		Example: `  kdiag conv 255 -1 0xdead
  kdiag conv --bits 64 --alphabet 0123456789abcdefghijklmnopqrstuvwxyz 1000000`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConv(cmd, root, co, args)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&co.alphabet, "alphabet", "a", "", "custom digit alphabet")
	f.IntVarP(&co.bits, "bits", "b", 32, "integer width: 32 or 64")
	f.StringVarP(&co.output, "output", "o", "", "output format: text or table")
	return cmd
}

// convRow is one value in every radix
type convRow struct {
	input  string
	digits []string
}

func runConv(cmd *cobra.Command, root *rootOptions, co *convOptions, args []string) error {
	if co.bits != 32 && co.bits != 64 {
		return fmt.Errorf("bits must be 32 or 64, got %d", co.bits)
	}

	alphabets := []numconv.Alphabet{numconv.Decimal, numconv.HexLower, numconv.Octal, numconv.Binary}
	cols := []string{"VALUE", "DEC", "HEX", "OCT", "BIN"}
	if co.alphabet != "" {
		a, err := numconv.NewAlphabet(co.alphabet)
		if err != nil {
			return err
		}
		alphabets = append(alphabets, a)
		cols = append(cols, fmt.Sprintf("BASE%d", a.Radix()))
	}

	rows := make([]convRow, 0, len(args))
	for _, arg := range args {
		row, err := convert(arg, co.bits, alphabets)
		if err != nil {
			return err
		}
		rows = append(rows, row)
	}

	output := root.cfg.Output
	if cmd.Flags().Changed("output") {
		output = co.output
	}

	out := cmd.OutOrStdout()
	if output == config.OutputTable {
		t := createTable(out)
		t.AppendHeader(header(cols...))
		for _, r := range rows {
			row := table.Row{r.input}
			for _, d := range r.digits {
				row = append(row, d)
			}
			t.AppendRow(row)
		}
		t.Render()
		return nil
	}

	for _, r := range rows {
		parts := make([]string, len(r.digits))
		for i, d := range r.digits {
			parts[i] = strings.ToLower(cols[i+1]) + "=" + d
		}
		fmt.Fprintf(out, "%s %s\n", r.input, strings.Join(parts, " "))
	}
	return nil
}

// convert parses s at the given width and renders it in every alphabet
func convert(s string, bits int, alphabets []numconv.Alphabet) (convRow, error) {
	row := convRow{input: s, digits: make([]string, len(alphabets))}

	if strings.HasPrefix(s, "-") {
		v, err := strconv.ParseInt(s, 0, bits)
		if err != nil {
			return convRow{}, fmt.Errorf("value %q: %w", s, err)
		}
		for i, a := range alphabets {
			if bits == 32 {
				row.digits[i] = numconv.FormatInt32(int32(v), a)
			} else {
				row.digits[i] = numconv.FormatInt64(v, a)
			}
		}
		return row, nil
	}

	v, err := strconv.ParseUint(s, 0, bits)
	if err != nil {
		return convRow{}, fmt.Errorf("value %q: %w", s, err)
	}
	for i, a := range alphabets {
		if bits == 32 {
			row.digits[i] = numconv.FormatUint32(uint32(v), a)
		} else {
			row.digits[i] = numconv.FormatUint64(v, a)
		}
	}
	return row, nil
}
