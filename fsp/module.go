package fsp

import "github.com/firmworks/fspkit/hob"

// Status is the module's returned status code. Zero is success; every other
// value is a module-defined failure.
type Status uint32

// StatusSuccess is the module's success code.
const StatusSuccess Status = 0

// Success reports whether s is the success code.
func (s Status) Success() bool {
	return s == StatusSuccess
}

// RuntimeBuffer is the caller-assembled runtime portion of a memory init
// invocation: the boot mode, the caller-owned working copy of the module's
// configuration, and the size of the boot loader's reserved region at the
// top of low usable memory.
type RuntimeBuffer struct {
	BootMode            Mode
	UPDData             []byte
	BootLoaderTolumSize uint32
}

// MemoryInitParams is the parameter block handed to the module's memory init
// entry. HOBList is the output slot: the module populates it on success with
// the hand-off record list it produced.
type MemoryInitParams struct {
	// NvsBuffer is the saved configuration payload from a previous boot,
	// nil on a full-configuration boot.
	NvsBuffer []byte

	// Runtime is the runtime buffer described above.
	Runtime *RuntimeBuffer

	// HOBList receives the hand-off record list. A nil list despite a
	// success status is itself a fatal contract violation, checked
	// explicitly by the orchestrator.
	HOBList *hob.List
}

// Module is the external initialization module boundary: opaque,
// vendor-supplied, invoked through its fixed entry convention. Both calls
// block with no timeout or cancellation available at this layer, and each is
// invoked at most once per boot stage; the module's state after a failure is
// undefined, so nothing is retried.
type Module interface {
	// MemoryInit brings up the memory controller. It consumes the working
	// configuration copy in p.Runtime and, on success, stores the
	// hand-off record list in p.HOBList.
	MemoryInit(p *MemoryInitParams) Status

	// SiliconInit completes chipset silicon initialization using the
	// working copy of its configuration sub-structure.
	SiliconInit(upd []byte) Status
}
