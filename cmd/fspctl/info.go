package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/firmworks/fspkit/fsp"
	"github.com/firmworks/fspkit/internal/mmfile"
)

func init() {
	rootCmd.AddCommand(newInfoCmd())
}

func newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info <fsp-binary>",
		Short: "Locate an FSP information header and report its metadata",
		Long: `The info command scans an FSP binary for its information header and
displays the decoded metadata: image identifier, revision, size, attributes,
and the configuration region and entry point offsets.

Example:
  fspctl info fsp.bin
  fspctl info fsp.bin --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(args)
		},
	}
	return cmd
}

func runInfo(args []string) error {
	path := args[0]

	printVerbose("Mapping image: %s\n", path)
	data, cleanup, err := mmfile.Map(path)
	if err != nil {
		return fmt.Errorf("failed to map image: %w", err)
	}
	defer cleanup()

	im, err := fsp.OpenImage(data)
	if err != nil {
		return fmt.Errorf("failed to open image: %w", err)
	}
	h := im.Header()

	if jsonOut {
		return printJSON(map[string]interface{}{
			"image_id":           h.ImageIDString(),
			"image_revision":     h.ImageRevision,
			"image_size":         h.ImageSize,
			"image_base":         h.ImageBase,
			"header_revision":    h.HeaderRevision,
			"graphics_supported": h.GraphicsSupported(),
			"cfg_region_offset":  h.CfgRegionOffset,
			"cfg_region_size":    h.CfgRegionSize,
			"memory_init_entry":  h.MemoryInitEntry,
			"silicon_init_entry": h.SiliconInitEntry,
		})
	}

	printInfo("\nFSP Information:\n")
	printInfo("  File: %s\n", path)
	if stat, err := os.Stat(path); err == nil {
		printInfo("  File size: %d bytes\n", stat.Size())
	}
	printInfo("  Image ID: %s\n", h.ImageIDString())
	printInfo("  Image revision: 0x%08X\n", h.ImageRevision)
	printInfo("  Image size: 0x%X\n", h.ImageSize)
	printInfo("  Image base: 0x%X\n", h.ImageBase)
	printInfo("  Header revision: %d\n", h.HeaderRevision)
	printInfo("  Graphics support: %t\n", h.GraphicsSupported())
	printInfo("  Cfg region: offset 0x%X size 0x%X\n", h.CfgRegionOffset, h.CfgRegionSize)
	printInfo("  MemoryInit entry: 0x%X\n", h.MemoryInitEntry)
	printInfo("  SiliconInit entry: 0x%X\n", h.SiliconInitEntry)

	return nil
}
