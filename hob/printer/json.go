package printer

import (
	"encoding/hex"
	"encoding/json"
	"io"

	"github.com/firmworks/fspkit/internal/format"
)

// jsonRecord represents one hand-off record in JSON output.
type jsonRecord struct {
	Addr   uint64 `json:"addr"`
	Type   string `json:"type"`
	Length int    `json:"length"`

	// Resource descriptor detail.
	Owner         string `json:"owner,omitempty"`
	PhysicalStart uint64 `json:"physical_start,omitempty"`
	ResourceLen   uint64 `json:"resource_length,omitempty"`

	// GUID payload detail.
	Name    string `json:"name,omitempty"`
	DataLen int    `json:"data_len,omitempty"`
	Data    string `json:"data,omitempty"`
}

func (p *Printer) printJSON() error {
	var out struct {
		Base    uint64       `json:"base"`
		Records []jsonRecord `json:"records"`
	}
	out.Base = p.list.Base()

	it := p.list.Records()
	for {
		rec, err := it.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}

		jr := jsonRecord{
			Addr:   rec.Addr(),
			Type:   typeName(rec.Type),
			Length: rec.Length,
		}
		switch rec.Type {
		case format.HOBTypeResourceDescriptor:
			d, derr := rec.Resource()
			if derr != nil {
				return derr
			}
			jr.Owner = d.Owner.String()
			jr.PhysicalStart = d.PhysicalStart
			jr.ResourceLen = d.ResourceLength
		case format.HOBTypeGUIDExtension:
			g, gerr := rec.Payload()
			if gerr != nil {
				return gerr
			}
			jr.Name = g.Name.String()
			jr.DataLen = g.DataLen()
			if p.opts.ShowPayloadBytes && g.DataLen() > 0 {
				data := g.Data()
				if len(data) > p.opts.MaxPayloadBytes {
					data = data[:p.opts.MaxPayloadBytes]
				}
				jr.Data = hex.EncodeToString(data)
			}
		}
		out.Records = append(out.Records, jr)
	}

	enc := json.NewEncoder(p.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
