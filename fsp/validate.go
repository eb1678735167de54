package fsp

import (
	"fmt"
	"strings"

	"github.com/firmworks/fspkit/internal/format"
)

// Check identifies one consistency check of the hand-off verification.
type Check uint8

const (
	// CheckReservedMemory requires the module's self-reported reserved
	// memory descriptor.
	CheckReservedMemory Check = iota + 1
	// CheckBoundary requires the descriptor marking the boot loader's
	// reserved low-memory region.
	CheckBoundary
	// CheckMemoryInfo requires the memory topology payload.
	CheckMemoryInfo
	// CheckSavedConfig requires the saved configuration payload on boots
	// that did not already supply saved data.
	CheckSavedConfig
	// CheckPlacement requires the boundary region to sit above the
	// module's reserved region in the address space.
	CheckPlacement
	// CheckAccounting requires the accounting subsystem's tracked block
	// to match the module's self-reported placement.
	CheckAccounting
	// CheckStructure reports a hand-off list that could not be traversed.
	CheckStructure
)

func (c Check) String() string {
	switch c {
	case CheckReservedMemory:
		return "reserved-memory"
	case CheckBoundary:
		return "boundary"
	case CheckMemoryInfo:
		return "memory-info"
	case CheckSavedConfig:
		return "saved-config"
	case CheckPlacement:
		return "placement"
	case CheckAccounting:
		return "accounting"
	case CheckStructure:
		return "structure"
	default:
		return "unknown"
	}
}

// Finding is one itemized verification failure.
type Finding struct {
	Check  Check
	Detail string
}

// Verdict is the aggregate result of hand-off verification. Findings
// accumulate across all checks; the verdict is consulted only after every
// check has run, so the diagnostics reflect the complete picture rather than
// the first failure found.
type Verdict struct {
	Findings []Finding
}

func (v *Verdict) add(c Check, detail string, args ...any) {
	v.Findings = append(v.Findings, Finding{Check: c, Detail: fmt.Sprintf(detail, args...)})
}

// Failed reports whether any check failed.
func (v *Verdict) Failed() bool {
	return len(v.Findings) > 0
}

// Summary joins the itemized findings into one diagnostic line.
func (v *Verdict) Summary() string {
	if len(v.Findings) == 0 {
		return "ok"
	}
	parts := make([]string, len(v.Findings))
	for i, f := range v.Findings {
		parts[i] = fmt.Sprintf("%s: %s", f.Check, f.Detail)
	}
	return strings.Join(parts, "; ")
}

// Validate cross-checks the hand-off record list against the boot context
// and the accounting subsystem. All checks run and report into the verdict
// without short-circuiting.
//
// The one exception is the protected-execution under-allocation branch: when
// the accounting mismatch coincides with a configured protected region, the
// function returns a *HaltError immediately, because continuing would let
// unrelated code overwrite protected execution memory. That is a safety
// violation, not a bookkeeping discrepancy.
func (s *Stage) Validate(ctx *BootContext) (*Verdict, error) {
	v := &Verdict{}
	list := s.hobs

	// A traversal error from any lookup fails the verdict. One structure
	// finding covers the whole list: the same corruption repeats for every
	// lookup behind it, and a cascade of identical findings would drown
	// the summary.
	structural := false
	corrupt := func(err error) {
		if !structural {
			v.add(CheckStructure, "%v", err)
			structural = true
		}
	}

	// Check 1: the module's self-reported reserved memory region.
	fspMem, haveFSPMem, err := list.FindResource(format.FSPReservedMemoryGUID)
	if err != nil {
		corrupt(err)
	} else if !haveFSPMem {
		v.add(CheckReservedMemory, "reserved-memory descriptor missing")
	}

	// Check 2: the boot loader's reserved-region boundary.
	tolum, haveTolum, err := list.FindResource(format.BootloaderTolumGUID)
	if err != nil {
		corrupt(err)
	} else if !haveTolum {
		v.add(CheckBoundary, "boundary descriptor missing")
	}

	// Check 3: memory topology. Nothing in this stage consumes it, but
	// strict verification policy counts its absence as a hard failure.
	if _, ok, err := list.FindPayload(format.SMBIOSMemoryInfoGUID); err != nil {
		corrupt(err)
	} else if !ok {
		v.add(CheckMemoryInfo, "memory topology payload missing")
	}

	// Check 4: saved configuration. Tolerated when the caller already
	// supplied saved data (resume or fast path); required otherwise.
	if _, ok, err := list.FindPayload(format.NonVolatileStorageGUID); err != nil {
		corrupt(err)
	} else if !ok && !ctx.HasSavedData() {
		v.add(CheckSavedConfig, "saved configuration payload missing")
	}

	// Check 5: placement. The boundary region must sit above the module's
	// reserved region in the address space.
	if haveFSPMem && haveTolum {
		if tolum.PhysicalStart <= fspMem.PhysicalStart {
			v.add(CheckPlacement,
				"module reserved region %#x not below boundary region %#x",
				fspMem.PhysicalStart, tolum.PhysicalStart)
		}
	}

	// Check 6: the accounting subsystem must track the module's block at
	// exactly the address the module reported.
	if haveFSPMem {
		addr, tracked := s.Acct.Find(ReservedMemoryBlockID)
		if !tracked || addr != fspMem.PhysicalStart {
			v.add(CheckAccounting,
				"tracked reserved block %#x (found=%t) does not match reported %#x",
				addr, tracked, fspMem.PhysicalStart)

			if s.SMMRegion != nil && haveTolum {
				if smmBase, _, ok := s.SMMRegion(); ok {
					delta := smmBase - tolum.PhysicalStart - tolum.ResourceLength
					return v, haltf(PostInvalidVendorBinary,
						"protected-execution region under-allocation (chipset reserved %#x bytes)",
						delta)
				}
			}
		}
	}

	return v, nil
}
