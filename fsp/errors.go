package fsp

import (
	"errors"
	"fmt"
)

// PostCode is the diagnostic code emitted on a fatal halt path. A collaborator
// records it for post-mortem inspection; none of these conditions are
// recoverable.
type PostCode uint8

const (
	// PostMemoryInit marks entry into the module's memory init.
	PostMemoryInit PostCode = 0x92
	// PostMemoryInitDone marks return from the module's memory init.
	PostMemoryInitDone PostCode = 0x37
	// PostSiliconInit marks entry into the module's silicon init.
	PostSiliconInit PostCode = 0x93

	// PostInvalidVendorBinary reports a malformed or contract-violating
	// module image: unresolvable configuration regions, missing mandatory
	// hand-off records, or inconsistent memory placement.
	PostInvalidVendorBinary PostCode = 0xE0
	// PostRAMFailure reports a failed or incoherent memory init: module
	// failure status, missing record list, or lost accounting on resume.
	PostRAMFailure PostCode = 0xE3
	// PostHWInitFailure reports a failed silicon init.
	PostHWInitFailure PostCode = 0xEA
)

// HaltError is a fatal boot condition. The platform does not continue past
// one: callers surface the post code and message and stop the boot flow.
type HaltError struct {
	Code PostCode
	Msg  string
}

func (e *HaltError) Error() string {
	return fmt.Sprintf("halt (post %#02x): %s", uint8(e.Code), e.Msg)
}

// haltf builds a HaltError with a formatted message.
func haltf(code PostCode, format string, args ...any) *HaltError {
	return &HaltError{Code: code, Msg: fmt.Sprintf(format, args...)}
}

// AsHalt extracts the HaltError from err's chain.
func AsHalt(err error) (*HaltError, bool) {
	var he *HaltError
	if errors.As(err, &he) {
		return he, true
	}
	return nil, false
}
