package hob

import (
	"io"

	"github.com/firmworks/fspkit/internal/format"
)

// FindResource returns the first resource descriptor record whose owner GUID
// matches owner. Absence is a normal outcome: ok is false and err is nil. A
// nil list is treated as absence. err is non-nil only when the list violates
// a traversal invariant (wraps format.ErrListCorrupt).
func (l *List) FindResource(owner format.GUID) (ResourceDescriptor, bool, error) {
	var zero ResourceDescriptor
	if l == nil {
		return zero, false, nil
	}
	it := l.Records()
	for {
		rec, err := it.Next()
		if err == io.EOF {
			return zero, false, nil
		}
		if err != nil {
			return zero, false, err
		}
		if rec.Type != format.HOBTypeResourceDescriptor {
			continue
		}
		d, err := rec.Resource()
		if err != nil {
			return zero, false, err
		}
		if d.Owner == owner {
			return d, true, nil
		}
	}
}

// FindPayload returns the first GUID extension record whose name GUID matches
// name. Semantics match FindResource: absence is (zero, false, nil), and only
// a corrupt list yields an error.
func (l *List) FindPayload(name format.GUID) (GUIDPayload, bool, error) {
	var zero GUIDPayload
	if l == nil {
		return zero, false, nil
	}
	it := l.Records()
	for {
		rec, err := it.Next()
		if err == io.EOF {
			return zero, false, nil
		}
		if err != nil {
			return zero, false, err
		}
		if rec.Type != format.HOBTypeGUIDExtension {
			continue
		}
		p, err := rec.Payload()
		if err != nil {
			return zero, false, err
		}
		if p.Name == name {
			return p, true, nil
		}
	}
}
