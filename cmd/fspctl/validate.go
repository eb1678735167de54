package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/firmworks/fspkit/hob"
	"github.com/firmworks/fspkit/hob/verify"
	"github.com/firmworks/fspkit/internal/format"
	"github.com/firmworks/fspkit/internal/mmfile"
)

var validateBase string

func init() {
	cmd := newValidateCmd()
	cmd.Flags().StringVar(&validateBase, "base", "0", "Physical address of the first record (decimal or 0x-hex)")
	rootCmd.AddCommand(cmd)
}

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <hob-list>",
		Short: "Validate the structural invariants of a hand-off block list",
		Long: `The validate command walks a captured hand-off block (HOB) list and
checks its structural invariants: every record at least header-sized, no
record running past the buffer end, and an end-of-list marker within the
bounded record count. On success it summarizes the list contents.

Example:
  fspctl validate hobs.bin
  fspctl validate hobs.bin --base 0x7FBFF000 --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(args)
		},
	}
	return cmd
}

func runValidate(args []string) error {
	path := args[0]

	base, err := parseAddr(validateBase)
	if err != nil {
		return err
	}

	printVerbose("Validating list: %s\n", path)
	data, cleanup, err := mmfile.Map(path)
	if err != nil {
		return fmt.Errorf("failed to map list: %w", err)
	}
	defer cleanup()

	rep, err := verify.List(hob.NewList(data, base))

	passStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	failStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	if noColor {
		passStyle = lipgloss.NewStyle()
		failStyle = lipgloss.NewStyle()
	}

	if err != nil {
		if jsonOut {
			out := map[string]interface{}{"valid": false, "error": err.Error()}
			if verr, ok := err.(*verify.ValidationError); ok {
				out["type"] = verr.Type
				out["offset"] = verr.Offset
			}
			return printJSON(out)
		}
		printInfo("%s %s\n", failStyle.Render("FAIL"), path)
		printError("%v\n", err)
		return fmt.Errorf("validation failed")
	}

	if jsonOut {
		return printJSON(map[string]interface{}{"valid": true, "report": rep})
	}

	printInfo("%s %s\n", passStyle.Render("PASS"), path)
	printInfo("  Records: %d (end at offset 0x%X)\n", rep.RecordCount, rep.EndOffset)
	printInfo("  Resource descriptors: %d\n", rep.ByType[format.HOBTypeResourceDescriptor])
	printInfo("  GUID extensions: %d\n", rep.ByType[format.HOBTypeGUIDExtension])
	for _, r := range rep.Resources {
		printInfo("    resource %s: 0x%016X + 0x%X\n", r.Owner, r.PhysicalStart, r.Length)
	}
	for _, p := range rep.Payloads {
		printInfo("    payload %s: %d bytes\n", p.Name, p.DataLen)
	}
	return nil
}
