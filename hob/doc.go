// Package hob provides read-only access to FSP hand-off block (HOB) lists.
//
// # Overview
//
// After each invocation, the external initialization module reports its
// results through a HOB list: a self-describing sequence of variable-length,
// tagged records laid out back to back in a module-owned buffer. This package
// implements zero-copy traversal and typed lookup over that buffer. Nothing
// here ever writes to the list; the buffer belongs to the module for the
// duration of one invocation and records needed later must be copied out.
//
// # Key Types
//
//   - List: a view over one hand-off buffer plus its physical base address
//   - Iterator: bounded forward traversal, one record at a time
//   - Record: the generic record view (type code, length, payload)
//   - ResourceDescriptor: a record claiming a physical memory region
//   - GUIDPayload: a record carrying opaque bytes under a published name GUID
//
// # Traversal
//
// The list is walked by adding each record's declared length to its offset
// until an end-of-list record appears. Traversal is bounded: a list that
// declares an undersized record, runs past its buffer, or fails to terminate
// within format.MaxListRecords steps is reported as corrupt, never walked
// indefinitely. Iteration ends with io.EOF; corruption is a distinct error.
//
// # Lookup
//
// FindResource and FindPayload return the first record matching a published
// name GUID. Absence is a normal outcome reported through the ok boolean, not
// an error; only a corrupt list produces a non-nil error.
//
// # Related Packages
//
//   - github.com/firmworks/fspkit/hob/verify: structural verification reports
//   - github.com/firmworks/fspkit/hob/printer: type-structure display
//   - github.com/firmworks/fspkit/fsp: the boot-stage orchestration consuming
//     this package's views
package hob
