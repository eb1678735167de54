// Package verify provides structural validation for hand-off record lists.
// These helpers back the fspctl validate command and are used in tests to
// check list invariants independently of the boot-stage verdict logic.
package verify

import (
	"fmt"
	"io"

	"github.com/firmworks/fspkit/hob"
	"github.com/firmworks/fspkit/internal/format"
)

// ValidationError describes a single structural violation.
type ValidationError struct {
	Type    string
	Message string
	Offset  int
}

func (e *ValidationError) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("%s at offset 0x%X: %s", e.Type, e.Offset, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Report summarizes a structurally valid list.
type Report struct {
	RecordCount int            `json:"record_count"`
	ByType      map[uint16]int `json:"by_type"`
	EndOffset   int            `json:"end_offset"`

	Resources []ResourceSummary `json:"resources,omitempty"`
	Payloads  []PayloadSummary  `json:"payloads,omitempty"`
}

// ResourceSummary captures one resource descriptor for reporting.
type ResourceSummary struct {
	Owner         string `json:"owner"`
	ResourceType  uint32 `json:"resource_type"`
	PhysicalStart uint64 `json:"physical_start"`
	Length        uint64 `json:"length"`
}

// PayloadSummary captures one GUID extension record for reporting.
type PayloadSummary struct {
	Name    string `json:"name"`
	DataLen int    `json:"data_len"`
}

// List walks the entire hand-off list and validates its structural
// invariants: every record at least header-sized, no record past the buffer
// end, and an end-of-list marker within the bounded record count. On success
// it returns a Report with per-type counts and typed summaries.
func List(l *hob.List) (*Report, error) {
	if l == nil {
		return nil, &ValidationError{
			Type:    "List",
			Message: "no hand-off list",
			Offset:  -1,
		}
	}

	rep := &Report{ByType: make(map[uint16]int)}
	it := l.Records()
	for {
		rec, err := it.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &ValidationError{
				Type:    "List",
				Message: err.Error(),
				Offset:  rep.EndOffset,
			}
		}
		rep.RecordCount++
		rep.ByType[rec.Type]++
		rep.EndOffset = rec.Offset + rec.Length

		switch rec.Type {
		case format.HOBTypeResourceDescriptor:
			d, derr := rec.Resource()
			if derr != nil {
				return nil, &ValidationError{
					Type:    "ResourceDescriptor",
					Message: derr.Error(),
					Offset:  rec.Offset,
				}
			}
			rep.Resources = append(rep.Resources, ResourceSummary{
				Owner:         d.Owner.String(),
				ResourceType:  d.ResourceType,
				PhysicalStart: d.PhysicalStart,
				Length:        d.ResourceLength,
			})
		case format.HOBTypeGUIDExtension:
			p, perr := rec.Payload()
			if perr != nil {
				return nil, &ValidationError{
					Type:    "GUIDExtension",
					Message: perr.Error(),
					Offset:  rec.Offset,
				}
			}
			rep.Payloads = append(rep.Payloads, PayloadSummary{
				Name:    p.Name.String(),
				DataLen: p.DataLen(),
			})
		}
	}

	if rep.RecordCount == 0 {
		return nil, &ValidationError{
			Type:    "List",
			Message: "list contains no records before the end marker",
			Offset:  -1,
		}
	}
	return rep, nil
}
