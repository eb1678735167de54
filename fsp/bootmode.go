package fsp

// Mode is the invocation mode requested from the external module. The values
// are the module interface's published boot-mode codes.
type Mode uint8

const (
	// ModeFullConfig runs complete memory training from scratch.
	ModeFullConfig Mode = 0x00
	// ModeNoConfigChange reuses saved training results from a prior boot.
	ModeNoConfigChange Mode = 0x03
	// ModeResumeFromSleep preserves retained memory contents on a wake
	// from suspend-to-RAM.
	ModeResumeFromSleep Mode = 0x11
)

func (m Mode) String() string {
	switch m {
	case ModeFullConfig:
		return "full-config"
	case ModeNoConfigChange:
		return "no-config-change"
	case ModeResumeFromSleep:
		return "resume-from-sleep"
	default:
		return "unknown"
	}
}

// SelectMode decides the invocation mode from prior platform state.
//
// The ordering is a hard contract: resume-from-sleep dominates even when
// saved configuration data is also present, because re-running configuration
// over live memory contents is unsafe. Only then does the presence of saved
// data select the fast path; otherwise full configuration runs.
func SelectMode(ctx *BootContext) Mode {
	if ctx.Resuming() {
		return ModeResumeFromSleep
	}
	if ctx.HasSavedData() {
		return ModeNoConfigChange
	}
	return ModeFullConfig
}
