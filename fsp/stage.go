package fsp

import (
	"github.com/firmworks/fspkit/hob"
	"github.com/firmworks/fspkit/internal/format"
)

// ReservedMemoryBlockID is the accounting-subsystem identifier under which
// the boot loader tracks the module's reserved memory block.
const ReservedMemoryBlockID uint32 = 0x46535052 // 'FSPR'

// Accounting is the boot loader's memory bookkeeping collaborator. The
// validator asks it where the module's reserved block actually landed and
// compares that against the module's self-reported placement.
type Accounting interface {
	// InitializeEmpty rebuilds the table from scratch and reserves size
	// bytes for id, returning the block's start address. Fresh-boot path.
	InitializeEmpty(id uint32, size uint64) uint64

	// Recover checks that a block for id survived in retained memory, as
	// required on the resume path. A failed recovery is fatal: memory
	// cannot be rebuilt without destroying the state being resumed.
	Recover(id uint32, size uint64) error

	// Find returns the start address of the tracked block for id.
	Find(id uint32) (uint64, bool)

	// Overhead returns the bookkeeping bytes the accounting claims at the
	// top of low usable memory, reported to the module as the boot
	// loader's reserved-region size.
	Overhead() uint32
}

// SMMRegionFn reports the protected-execution memory region when the
// platform has one configured. ok is false on platforms without one.
type SMMRegionFn func() (base, size uint64, ok bool)

// Hook adjusts a working configuration copy before invocation. Hooks never
// see the module's original defaults, only the caller-owned copy.
type Hook func(ctx *BootContext, upd []byte)

// Hooks are the ordered customization points applied to working
// configuration copies: platform-specific first, then board-specific.
type Hooks struct {
	SoCMemoryInit    Hook
	BoardMemoryInit  Hook
	SoCSiliconInit   func(upd []byte)
	BoardSiliconInit func(upd []byte)
}

// Stage owns the state of one boot stage: the module image, the collaborator
// handles, and the hand-off record list located by the most recent
// invocation. A Stage replaces what a global cached record-table pointer
// would otherwise be; it is initialized once and passed by reference.
type Stage struct {
	Image  *Image
	Module Module
	Acct   Accounting

	// SMMRegion is optional; when nil the protected-execution placement
	// check is skipped, matching platforms without such a region.
	SMMRegion SMMRegionFn

	Hooks Hooks

	// Post, when non-nil, receives progress and diagnostic post codes.
	Post func(PostCode)

	hobs     *hob.List
	graphics *GraphicsInfo
}

// HOBs returns the hand-off record list from the most recent successful
// invocation. The list is valid only until the next invocation of the same
// module stage; data needed beyond that must be copied out.
func (s *Stage) HOBs() *hob.List {
	return s.hobs
}

func (s *Stage) post(c PostCode) {
	if s.Post != nil {
		s.Post(c)
	}
}

// RamInit runs the memory init stage end to end: mode selection, working
// configuration assembly, customization hooks, module invocation, accounting
// initialization, hand-off verification, and configuration persistence.
//
// Any returned error is a *HaltError; boot must not continue past one.
func (s *Stage) RamInit(ctx *BootContext) error {
	if ctx == nil {
		return haltf(PostRAMFailure, "ram init: nil boot context")
	}
	if s.Image == nil || s.Module == nil || s.Acct == nil {
		return haltf(PostRAMFailure, "ram init: stage not fully wired")
	}

	defaults, err := s.Image.MemoryInitUPD()
	if err != nil {
		return err
	}

	// Working copy: the module's defaults are never mutated in place.
	upd := make([]byte, len(defaults))
	copy(upd, defaults)

	rt := &RuntimeBuffer{
		BootMode:            SelectMode(ctx),
		UPDData:             upd,
		BootLoaderTolumSize: s.Acct.Overhead(),
	}

	if s.Hooks.SoCMemoryInit != nil {
		s.Hooks.SoCMemoryInit(ctx, upd)
	}
	if s.Hooks.BoardMemoryInit != nil {
		s.Hooks.BoardMemoryInit(ctx, upd)
	}

	params := &MemoryInitParams{
		NvsBuffer: ctx.SavedData,
		Runtime:   rt,
	}

	s.post(PostMemoryInit)
	status := s.Module.MemoryInit(params)
	s.post(PostMemoryInitDone)

	if !status.Success() {
		return haltf(PostRAMFailure, "memory init failed with status %#08x", uint32(status))
	}
	if params.HOBList == nil {
		return haltf(PostRAMFailure, "memory init succeeded but produced no hand-off list")
	}
	s.hobs = params.HOBList

	// The module's reserved size feeds the accounting before validation;
	// a missing descriptor leaves it zero and is reported by the
	// validator as part of the aggregate verdict.
	var reserved uint64
	if d, ok, ferr := s.hobs.FindResource(format.FSPReservedMemoryGUID); ferr == nil && ok {
		reserved = d.ResourceLength
	}

	if ctx.Resuming() {
		if rerr := s.Acct.Recover(ReservedMemoryBlockID, reserved); rerr != nil {
			return haltf(PostRAMFailure, "failed to recover memory accounting on resume: %v", rerr)
		}
	} else {
		s.Acct.InitializeEmpty(ReservedMemoryBlockID, reserved)
	}

	verdict, herr := s.Validate(ctx)
	if herr != nil {
		return herr
	}
	if verdict.Failed() {
		return haltf(PostInvalidVendorBinary,
			"module violated its hand-off contract: %s", verdict.Summary())
	}

	s.Persist(ctx)
	return nil
}
