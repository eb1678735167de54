package printer

import (
	"encoding/hex"
	"fmt"
	"io"

	"github.com/firmworks/fspkit/internal/format"
)

// typeName maps HOB type codes to their conventional display names.
func typeName(t uint16) string {
	switch t {
	case format.HOBTypeHandoff:
		return "HANDOFF"
	case format.HOBTypeMemoryAllocation:
		return "MEMORY_ALLOCATION"
	case format.HOBTypeResourceDescriptor:
		return "RESOURCE_DESCRIPTOR"
	case format.HOBTypeGUIDExtension:
		return "GUID_EXTENSION"
	case format.HOBTypeFirmwareVolume:
		return "FIRMWARE_VOLUME"
	case format.HOBTypeCPU:
		return "CPU"
	case format.HOBTypeMemoryPool:
		return "MEMORY_POOL"
	case format.HOBTypeFirmwareVolume2:
		return "FIRMWARE_VOLUME2"
	case format.HOBTypeUEFICapsule:
		return "UEFI_CAPSULE"
	case format.HOBTypeUnused:
		return "UNUSED"
	case format.HOBTypeEndOfList:
		return "END_OF_HOB_LIST"
	default:
		return fmt.Sprintf("TYPE_%04X", t)
	}
}

func (p *Printer) printText() error {
	fmt.Fprintf(p.writer, "HOB list at 0x%016X:\n", p.list.Base())

	it := p.list.Records()
	for {
		rec, err := it.Next()
		if err == io.EOF {
			fmt.Fprintf(p.writer, "  %-20s\n", typeName(format.HOBTypeEndOfList))
			return nil
		}
		if err != nil {
			return err
		}

		fmt.Fprintf(p.writer, "  0x%016X  %-20s len=%d\n", rec.Addr(), typeName(rec.Type), rec.Length)

		switch rec.Type {
		case format.HOBTypeResourceDescriptor:
			d, derr := rec.Resource()
			if derr != nil {
				return derr
			}
			fmt.Fprintf(p.writer, "    owner: %s\n", d.Owner)
			fmt.Fprintf(p.writer, "    region: 0x%016X + 0x%X (type %d)\n",
				d.PhysicalStart, d.ResourceLength, d.ResourceType)
		case format.HOBTypeGUIDExtension:
			g, gerr := rec.Payload()
			if gerr != nil {
				return gerr
			}
			fmt.Fprintf(p.writer, "    name: %s (%d bytes)\n", g.Name, g.DataLen())
			if p.opts.ShowPayloadBytes && g.DataLen() > 0 {
				data := g.Data()
				if len(data) > p.opts.MaxPayloadBytes {
					data = data[:p.opts.MaxPayloadBytes]
				}
				fmt.Fprintf(p.writer, "    data: %s\n", hex.EncodeToString(data))
			}
		}
	}
}
