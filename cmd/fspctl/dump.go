package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/firmworks/fspkit/hob"
	"github.com/firmworks/fspkit/hob/printer"
	"github.com/firmworks/fspkit/internal/mmfile"
)

var (
	dumpBase         string
	dumpPayloadBytes bool
	dumpMaxPayload   int
)

func init() {
	cmd := newDumpCmd()
	cmd.Flags().StringVar(&dumpBase, "base", "0", "Physical address of the first record (decimal or 0x-hex)")
	cmd.Flags().BoolVar(&dumpPayloadBytes, "payload-bytes", false, "Include a hex preview of GUID payload data")
	cmd.Flags().IntVar(&dumpMaxPayload, "max-payload-bytes", 32, "Limit payload preview length")
	rootCmd.AddCommand(cmd)
}

func newDumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump <hob-list>",
		Short: "Dump the records of a captured hand-off block list",
		Long: `The dump command walks a hand-off block (HOB) list captured to a file
and prints one line per record with its address, type, and length, plus the
typed detail for resource descriptors and GUID extension records.

The --base flag supplies the physical address the list occupied so record
addresses match what the platform saw.

Example:
  fspctl dump hobs.bin --base 0x7FBFF000
  fspctl dump hobs.bin --base 0x7FBFF000 --payload-bytes --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(args)
		},
	}
	return cmd
}

func runDump(args []string) error {
	path := args[0]

	base, err := parseAddr(dumpBase)
	if err != nil {
		return err
	}

	printVerbose("Mapping list: %s\n", path)
	data, cleanup, err := mmfile.Map(path)
	if err != nil {
		return fmt.Errorf("failed to map list: %w", err)
	}
	defer cleanup()

	l := hob.NewList(data, base)
	if l == nil {
		return fmt.Errorf("%s is empty", path)
	}

	opts := printer.DefaultOptions()
	opts.ShowPayloadBytes = dumpPayloadBytes
	opts.MaxPayloadBytes = dumpMaxPayload
	if jsonOut {
		opts.Format = printer.FormatJSON
	}

	p := printer.New(l, os.Stdout, opts)
	if err := p.PrintTypeStructure(); err != nil {
		return fmt.Errorf("list traversal failed: %w", err)
	}
	return nil
}
